package repository

import "context"

// AuthRepository puerto de autenticación contra la API remota.
type AuthRepository interface {
	Login(ctx context.Context, email, password string) (token string, err error)
	Register(ctx context.Context, email, password string) error
}
