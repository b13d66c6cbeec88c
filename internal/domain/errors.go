package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrPasswordMismatch  = errors.New("las contraseñas no coinciden")
	ErrMissingClient     = errors.New("seleccione un cliente")
	ErrMissingCountry    = errors.New("seleccione un país")
	ErrEmptyOrder        = errors.New("agregue al menos un producto")
	ErrNotConfirmed      = errors.New("la operación requiere confirmación")
	ErrRowLocked         = errors.New("el registro está eliminado y no admite acciones")
)

// ValidationError error de validación local: se muestra al usuario tal cual y
// conserva el error de dominio para clasificarlo con errors.Is.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return e.Err }

// Invalid construye un ValidationError sobre ErrInvalidInput.
func Invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message, Err: ErrInvalidInput}
}

// userMessages textos visibles de los errores locales.
var userMessages = []struct {
	err error
	msg string
}{
	{ErrInsufficientStock, "La cantidad supera el stock disponible"},
	{ErrPasswordMismatch, "Las contraseñas no coinciden"},
	{ErrMissingClient, "Seleccione un cliente"},
	{ErrMissingCountry, "Seleccione un país"},
	{ErrEmptyOrder, "Agregue al menos un producto"},
	{ErrNotConfirmed, "Confirme la operación"},
	{ErrRowLocked, "El registro está eliminado y no admite acciones"},
}

// UserMessage devuelve el mensaje a mostrar para un error local, o fallback si el
// error no es de validación.
func UserMessage(err error, fallback string) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	for _, known := range userMessages {
		if errors.Is(err, known.err) {
			return known.msg
		}
	}
	return fallback
}
