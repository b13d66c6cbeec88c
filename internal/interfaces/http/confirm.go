package http

import "context"

// confirmView datos de confirm.html.
type confirmView struct {
	Message string
	Action  string
	Cancel  string
}

// statusFunc habilitar o deshabilitar una fila.
type statusFunc func(ctx context.Context, id int64) error
