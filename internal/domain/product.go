package domain

// Product описывает продукт в строке заказа
type Product struct {
	ID       string
	Code     string // Короткий код для сортировки (A1, B12). Может быть пустым
	Name     string
	Category Category
}

func NewProduct(id, code, name string, category Category) Product {
	return Product{
		ID:       id,
		Code:     code,
		Name:     name,
		Category: category,
	}
}
