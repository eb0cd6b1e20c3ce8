package payload

import (
	"fmt"

	"github.com/DRSN-tech/kiosk-printer/internal/domain"
	"github.com/DRSN-tech/kiosk-printer/pkg/e"
	"github.com/shopspring/decimal"
)

func toOrder(m *orderModel) (*domain.Order, error) {
	if m.ID == nil {
		return nil, missingField("id")
	}

	lines, err := toOrderLines(m.Items, "items")
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		ID:                 string(*m.ID),
		CreatedAt:          m.CreatedAt,
		PreferredReadyTime: m.PreferredReadyTime,
		Type:               domain.OrderType(m.Type),
		AddressExtra:       m.AddressExtra,
		Lines:              lines,
	}

	if m.Customer != nil {
		order.Customer = domain.Customer{
			ID:          string(m.Customer.ID),
			FirstName:   m.Customer.FirstName,
			LastName:    m.Customer.LastName,
			PhoneNumber: m.Customer.PhoneNumber,
		}
	}

	if m.Payment != nil {
		order.Payment = &domain.Payment{Status: m.Payment.Status}
	}

	if m.Address != nil {
		order.Address = &domain.Address{
			StreetName:       m.Address.StreetName,
			HouseNumber:      m.Address.HouseNumber,
			BoxNumber:        m.Address.BoxNumber,
			Postcode:         m.Address.Postcode,
			MunicipalityName: m.Address.MunicipalityName,
		}
	}

	return order, nil
}

func toOrderLines(models []orderLineModel, path string) ([]domain.OrderLine, error) {
	lines := make([]domain.OrderLine, 0, len(models))
	for i, m := range models {
		line, err := toOrderLine(m, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func toOrderLine(m orderLineModel, path string) (domain.OrderLine, error) {
	if m.Product == nil {
		return domain.OrderLine{}, missingField(path + ".product")
	}
	if m.Quantity == nil {
		return domain.OrderLine{}, missingField(path + ".quantity")
	}

	var category domain.Category
	if m.Product.Category != nil {
		category = domain.NewCategory(string(m.Product.Category.ID), m.Product.Category.Name)
	}

	var code string
	if m.Product.Code != nil {
		code = *m.Product.Code
	}

	product := domain.NewProduct(string(m.Product.ID), code, m.Product.Name, category)
	return domain.NewOrderLine(product, *m.Quantity, decimalOrZero(m.UnitPrice), decimalOrZero(m.TotalPrice)), nil
}

func decimalOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

func missingField(path string) error {
	return e.Wrap(fmt.Sprintf("missing required field %q", path), e.ErrParse)
}
