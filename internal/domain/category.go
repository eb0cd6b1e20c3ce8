package domain

// Category описывает категорию продукта. Значение неизменяемое, копируется в Product.
type Category struct {
	ID   string
	Name string
}

func NewCategory(id, name string) Category {
	return Category{ID: id, Name: name}
}
