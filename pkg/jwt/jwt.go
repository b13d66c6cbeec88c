// Package jwt lee los claims del token de sesión emitido por la API remota.
//
// La consola no conoce el secreto de firma: la API es la única que valida el token.
// Los claims se leen sin verificar y solo se usan para mostrar información (email,
// expiración); nunca para decidir si la sesión está autenticada.
package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims claims estándar más los que suele emitir la API (.NET usa nombres largos).
type Claims struct {
	jwt.RegisteredClaims
	Email       string `json:"email,omitempty"`
	EmailDotNet string `json:"http://schemas.xmlsoap.org/ws/2005/05/identity/claims/emailaddress,omitempty"`
}

// Info datos de la sesión extraídos del token.
type Info struct {
	Subject   string
	Email     string
	ExpiresAt time.Time // cero si el token no trae "exp"
}

// Expired indica si el token ya venció en el instante now. Sin "exp" nunca vence.
func (i Info) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && now.After(i.ExpiresAt)
}

// Inspect decodifica el token sin verificar la firma.
func Inspect(token string) (Info, error) {
	if token == "" {
		return Info{}, fmt.Errorf("jwt: token vacío")
	}
	var claims Claims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return Info{}, fmt.Errorf("jwt: token ilegible: %w", err)
	}
	info := Info{Subject: claims.Subject, Email: claims.Email}
	if info.Email == "" {
		info.Email = claims.EmailDotNet
	}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info, nil
}
