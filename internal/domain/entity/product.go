package entity

import "github.com/shopspring/decimal"

// Product producto del catálogo remoto. La consola solo mantiene copias efímeras.
type Product struct {
	ID          int64
	Name        string
	Description string
	UnitPrice   decimal.Decimal
	Stock       int
	Status      Status
}

// ProductInput datos editables de un producto (formulario crear/editar).
type ProductInput struct {
	Name        string
	Description string
	UnitPrice   decimal.Decimal
	Stock       int
}
