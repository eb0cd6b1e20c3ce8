package domain

import "github.com/shopspring/decimal"

type OrderType string

const (
	OrderTypeDelivery OrderType = "DELIVERY"
	OrderTypePickup   OrderType = "PICKUP"
)

// Customer описывает клиента
type Customer struct {
	ID          string
	FirstName   string
	LastName    string
	PhoneNumber *string
}

// Payment — статус оплаты. Отсутствие Payment в заказе означает «не оплачено».
type Payment struct {
	Status string
}

type Address struct {
	StreetName       string
	HouseNumber      string
	BoxNumber        *string
	Postcode         string
	MunicipalityName string
}

// Order — заказ, который печатается на чеке.
// CreatedAt и PreferredReadyTime хранятся сырыми ISO-8601 строками: форматирование делает receipt.
type Order struct {
	ID                 string
	CreatedAt          string
	PreferredReadyTime *string
	Type               OrderType
	Customer           Customer
	Payment            *Payment
	Address            *Address
	AddressExtra       *string
	Lines              []OrderLine

	// Legacy — заказ собран из плоского списка строк без метаданных.
	Legacy bool
}

// NewLegacyOrder собирает заказ из плоского списка строк.
func NewLegacyOrder(lines []OrderLine) *Order {
	return &Order{
		Lines:  lines,
		Legacy: true,
	}
}

// Total возвращает сумму TotalPrice по всем строкам.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range o.Lines {
		total = total.Add(line.TotalPrice)
	}
	return total
}
