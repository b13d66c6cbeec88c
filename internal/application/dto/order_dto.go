package dto

import "github.com/Jumata96/InventarioInteligenteFrontend/internal/domain"

// DraftClientForm selección de cliente del borrador.
type DraftClientForm struct {
	ClienteID int64 `form:"clienteId"`
}

// DraftCountryForm selección de país del borrador.
type DraftCountryForm struct {
	PaisID int64 `form:"paisId"`
}

// DraftLineForm agregar o modificar una línea del borrador. La cantidad llega
// como texto y se valida en Quantity.
type DraftLineForm struct {
	ProductoID int64  `form:"productoId"`
	Cantidad   string `form:"cantidad"`
}

// Quantity cantidad entera del formulario; vacía equivale a 0 y la rechaza el
// borrador.
func (f DraftLineForm) Quantity() (int, error) {
	n, err := parseInt(f.Cantidad)
	if err != nil {
		return 0, domain.Invalid("cantidad", "La cantidad debe ser al menos 1")
	}
	return n, nil
}
