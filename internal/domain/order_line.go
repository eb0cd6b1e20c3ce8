package domain

import "github.com/shopspring/decimal"

// OrderLine — строка заказа. TotalPrice приходит с фронта и не пересчитывается.
type OrderLine struct {
	Product    Product
	Quantity   int
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}

func NewOrderLine(product Product, quantity int, unitPrice, totalPrice decimal.Decimal) OrderLine {
	return OrderLine{
		Product:    product,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		TotalPrice: totalPrice,
	}
}
