package receipt

import (
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/DRSN-tech/kiosk-printer/internal/domain"
	"github.com/DRSN-tech/kiosk-printer/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"
)

// Labels — локализованные подписи на чеке.
type Labels struct {
	Delivery    string
	Pickup      string
	Unpaid      string
	ASAP        string
	Customer    string
	Phone       string
	Address     string
	HeaderCode  string
	HeaderName  string
	HeaderQty   string
	HeaderPrice string
	Total       string
}

// FormatPolicy изолирует всё, что зависит от локали: десятичный разделитель, формат даты, часовой пояс и подписи.
type FormatPolicy struct {
	DecimalSeparator string
	DateLayout       string
	Location         *time.Location
	Labels           Labels
}

const (
	DefaultLocation   = "Europe/Brussels"
	DefaultDateLayout = "02/01/2006 à 15:04"
)

// FrenchLabels — подписи для ресторанов в Бельгии.
func FrenchLabels() Labels {
	return Labels{
		Delivery:    "LIVRAISON",
		Pickup:      "À EMPORTER",
		Unpaid:      "NON PAYÉ",
		ASAP:        "Dès que possible",
		Customer:    "Client: ",
		Phone:       "Tél: ",
		Address:     "Adresse de livraison:",
		HeaderCode:  "Code",
		HeaderName:  "Nom",
		HeaderQty:   "Qté",
		HeaderPrice: "Prix",
		Total:       "TOTAL:",
	}
}

// NewFormatPolicy создаёт французскую политику для указанного часового пояса.
func NewFormatPolicy(location string) (FormatPolicy, error) {
	if location == "" {
		location = DefaultLocation
	}

	loc, err := time.LoadLocation(location)
	if err != nil {
		return FormatPolicy{}, e.Wrap(whereami.WhereAmI(), err)
	}

	return FormatPolicy{
		DecimalSeparator: ",",
		DateLayout:       DefaultDateLayout,
		Location:         loc,
		Labels:           FrenchLabels(),
	}, nil
}

// FormatMoney форматирует сумму с двумя знаками после запятой.
func (p FormatPolicy) FormatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	if p.DecimalSeparator == "" || p.DecimalSeparator == "." {
		return s
	}
	return strings.Replace(s, ".", p.DecimalSeparator, 1)
}

// FormatTimestamp переводит ISO-8601 время в локальное. При ошибке разбора возвращает исходную строку
// и ошибку, оборачивающую e.ErrFormatFallback.
func (p FormatPolicy) FormatTimestamp(raw string) (string, error) {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw, e.Wrap(whereami.WhereAmI(), e.Wrap(err.Error(), e.ErrFormatFallback))
	}

	loc := p.Location
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(p.DateLayout), nil
}

// OrderTypeLabel возвращает подпись типа заказа. Неизвестный тип печатается как есть.
func (p FormatPolicy) OrderTypeLabel(t domain.OrderType) string {
	switch t {
	case domain.OrderTypeDelivery:
		return p.Labels.Delivery
	case domain.OrderTypePickup:
		return p.Labels.Pickup
	default:
		return string(t)
	}
}
