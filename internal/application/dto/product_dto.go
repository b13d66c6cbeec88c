package dto

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain/entity"
)

// ProductForm formulario crear/editar producto.
type ProductForm struct {
	Nombre      string `form:"nombre"`
	Descripcion string `form:"descripcion"`
	Precio      string `form:"precio"`
	Stock       string `form:"stock"`
}

// ToInput convierte el formulario. Precio y stock deben ser numéricos.
func (f ProductForm) ToInput() (entity.ProductInput, error) {
	in := entity.ProductInput{Name: f.Nombre, Description: f.Descripcion}
	price, err := decimal.NewFromString(strings.TrimSpace(f.Precio))
	if err != nil {
		return in, domain.Invalid("precio", "El precio debe ser mayor a 0")
	}
	in.UnitPrice = price
	stock, err := parseInt(f.Stock)
	if err != nil {
		return in, domain.Invalid("stock", "El stock debe ser un número entero")
	}
	in.Stock = stock
	return in, nil
}

// ProductFormFrom rellena el formulario con un producto existente.
func ProductFormFrom(p entity.Product) ProductForm {
	return ProductForm{
		Nombre:      p.Name,
		Descripcion: p.Description,
		Precio:      p.UnitPrice.StringFixed(2),
		Stock:       itoa(p.Stock),
	}
}
