package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain/repository"
)

// AuthRepository implementa repository.AuthRepository sobre /api/Auth.
type AuthRepository struct {
	c *Client
}

var _ repository.AuthRepository = (*AuthRepository)(nil)

// NewAuthRepository construye el repositorio.
func NewAuthRepository(c *Client) *AuthRepository {
	return &AuthRepository{c: c}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login devuelve el token emitido por la API.
func (r *AuthRepository) Login(ctx context.Context, email, password string) (string, error) {
	raw, err := r.c.do(ctx, http.MethodPost, "/Auth/login", nil, credentials{Email: email, Password: password})
	if err != nil {
		return "", err
	}
	token := gjson.GetBytes(raw, "token")
	if !token.Exists() {
		token = gjson.GetBytes(raw, "Token")
	}
	if token.String() == "" {
		return "", fmt.Errorf("apiclient: la respuesta de login no contiene token")
	}
	return token.String(), nil
}

// Register crea una cuenta de operador.
func (r *AuthRepository) Register(ctx context.Context, email, password string) error {
	return r.c.doJSON(ctx, http.MethodPost, "/Auth/register", nil, credentials{Email: email, Password: password}, nil)
}
