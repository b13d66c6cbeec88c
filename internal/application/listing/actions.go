package listing

import "github.com/Jumata96/InventarioInteligenteFrontend/internal/domain/entity"

// Action acción disponible en una fila.
type Action string

const (
	ActionEdit    Action = "edit"
	ActionDelete  Action = "delete"
	ActionEnable  Action = "enable"
	ActionDisable Action = "disable"
)

// RowActions acciones de una fila según su estado. Las filas eliminadas no
// exponen acciones.
func RowActions(s entity.Status) []Action {
	switch s {
	case entity.StatusActive:
		return []Action{ActionEdit, ActionDelete, ActionDisable}
	case entity.StatusDisabled:
		return []Action{ActionEdit, ActionDelete, ActionEnable}
	default:
		return nil
	}
}

// Allows indica si la acción está disponible para el estado.
func Allows(s entity.Status, a Action) bool {
	for _, x := range RowActions(s) {
		if x == a {
			return true
		}
	}
	return false
}

// ToggleAction acción de habilitar/deshabilitar correspondiente al estado.
func ToggleAction(s entity.Status) (Action, bool) {
	if !s.Toggleable() {
		return "", false
	}
	if s == entity.StatusActive {
		return ActionDisable, true
	}
	return ActionEnable, true
}
