package payload

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Модели JSON-представления заказа. Указатели нужны, чтобы отличать отсутствующее поле от нулевого.

type orderModel struct {
	ID                 *idModel         `json:"id"`
	CreatedAt          string           `json:"createdAt"`
	PreferredReadyTime *string          `json:"preferredReadyTime"`
	Type               string           `json:"type"`
	Customer           *customerModel   `json:"customer"`
	Payment            *paymentModel    `json:"payment"`
	Address            *addressModel    `json:"address"`
	AddressExtra       *string          `json:"addressExtra"`
	Items              []orderLineModel `json:"items"`
}

type customerModel struct {
	ID          idModel `json:"id"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	PhoneNumber *string `json:"phoneNumber"`
}

type paymentModel struct {
	Status string `json:"status"`
}

type addressModel struct {
	StreetName       string  `json:"streetName"`
	HouseNumber      string  `json:"houseNumber"`
	BoxNumber        *string `json:"boxNumber"`
	Postcode         string  `json:"postcode"`
	MunicipalityName string  `json:"municipalityName"`
}

type orderLineModel struct {
	Product    *productModel    `json:"product"`
	Quantity   *int             `json:"quantity"`
	UnitPrice  *decimal.Decimal `json:"unitPrice"`
	TotalPrice *decimal.Decimal `json:"totalPrice"`
}

type productModel struct {
	ID       idModel        `json:"id"`
	Code     *string        `json:"code"`
	Name     string         `json:"name"`
	Category *categoryModel `json:"category"`
}

type categoryModel struct {
	ID   idModel `json:"id"`
	Name string  `json:"name"`
}

// idModel — идентификатор, который панель присылает строкой (UUID) или числом.
type idModel string

func (id *idModel) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = idModel(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or a number: %w", err)
	}
	*id = idModel(n.String())
	return nil
}
