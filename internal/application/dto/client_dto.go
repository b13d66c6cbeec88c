package dto

import (
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain/entity"
)

// ClientForm formulario crear/editar cliente.
type ClientForm struct {
	Ruc       string `form:"ruc"`
	Nombre    string `form:"nombre"`
	Email     string `form:"email"`
	Telefono  string `form:"telefono"`
	Direccion string `form:"direccion"`
	PaisID    int64  `form:"paisId"`
}

// ToInput convierte el formulario.
func (f ClientForm) ToInput() entity.ClientInput {
	return entity.ClientInput{
		TaxID:     f.Ruc,
		Name:      f.Nombre,
		Email:     f.Email,
		Phone:     f.Telefono,
		Address:   f.Direccion,
		CountryID: f.PaisID,
	}
}

// ClientFormFrom rellena el formulario con un cliente existente.
func ClientFormFrom(c entity.Client) ClientForm {
	return ClientForm{
		Ruc:       c.TaxID,
		Nombre:    c.Name,
		Email:     c.Email,
		Telefono:  c.Phone,
		Direccion: c.Address,
		PaisID:    c.CountryID,
	}
}
