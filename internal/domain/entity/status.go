package entity

// Status ciclo de vida de productos y clientes (códigos de la API).
type Status int

const (
	StatusDeleted  Status = 0
	StatusActive   Status = 1
	StatusDisabled Status = 2
)

// Label etiqueta visible del estado.
func (s Status) Label() string {
	switch s {
	case StatusActive:
		return "Activo"
	case StatusDisabled:
		return "Deshabilitado"
	case StatusDeleted:
		return "Eliminado"
	default:
		return "Desconocido"
	}
}

// Locked indica que la fila no admite acciones (eliminada).
func (s Status) Locked() bool { return s == StatusDeleted }

// Toggleable indica si el estado admite habilitar/deshabilitar.
func (s Status) Toggleable() bool { return s == StatusActive || s == StatusDisabled }
