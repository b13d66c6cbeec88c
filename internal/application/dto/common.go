// Package dto formularios y parámetros de las vistas de la consola.
package dto

// PageRequest paginación y filtro de los listados (query string).
type PageRequest struct {
	Page     int    `query:"page"`
	PageSize int    `query:"pageSize"`
	Q        string `query:"q"`
}

// ErrorResponse cuerpo de error HTTP (respuestas JSON).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ConfirmForm confirmación explícita de una acción destructiva.
type ConfirmForm struct {
	Confirm string `form:"confirm"`
}

// Confirmed el operador marcó la confirmación.
func (f ConfirmForm) Confirmed() bool {
	return f.Confirm == "yes" || f.Confirm == "true" || f.Confirm == "on"
}
