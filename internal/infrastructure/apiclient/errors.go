package apiclient

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain"
)

// APIError fallo reportado por la API: estado HTTP y mensaje del servidor.
type APIError struct {
	Method  string
	Path    string
	Status  int
	Message string // vacío si el servidor no envió mensaje
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API %s %s: %d %s", e.Method, e.Path, e.Status, e.Message)
	}
	return fmt.Sprintf("API %s %s: %d", e.Method, e.Path, e.Status)
}

// Unwrap clasifica el estado HTTP en un error de dominio.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusForbidden:
		return domain.ErrForbidden
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusConflict:
		return domain.ErrConflict
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.ErrInvalidInput
	default:
		return nil
	}
}

// Message devuelve el mensaje del servidor contenido en err, o fallback.
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// serverMessage extrae el mensaje de un cuerpo de error: {message}, {Message},
// ProblemDetails {title, errors{campo:[...]}}, {error} o texto plano corto.
func serverMessage(raw []byte) string {
	body := strings.TrimSpace(string(raw))
	if body == "" {
		return ""
	}
	if !gjson.Valid(body) {
		if len(body) > 300 || strings.HasPrefix(body, "<") {
			return ""
		}
		return body
	}
	res := gjson.Parse(body)
	if res.Type == gjson.String {
		return res.String()
	}
	for _, key := range []string{"message", "Message", "mensaje", "error", "detail"} {
		if v := res.Get(key); v.Exists() && v.Type == gjson.String && v.String() != "" {
			return v.String()
		}
	}
	// Validación ASP.NET: primer mensaje del primer campo.
	var first string
	res.Get("errors").ForEach(func(_, value gjson.Result) bool {
		if value.IsArray() && len(value.Array()) > 0 {
			first = value.Array()[0].String()
		} else if value.Type == gjson.String {
			first = value.String()
		}
		return first == ""
	})
	if first != "" {
		return first
	}
	return res.Get("title").String()
}
