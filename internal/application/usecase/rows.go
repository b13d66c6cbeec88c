package usecase

import (
	"context"
	"fmt"

	"github.com/Jumata96/InventarioInteligenteFrontend/internal/application/listing"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain/entity"
)

// statusEndpoints llamadas de ciclo de vida comunes a productos y clientes.
type statusEndpoints interface {
	Enable(ctx context.Context, id int64) error
	Disable(ctx context.Context, id int64) error
}

// findRow busca una fila en la página cargada.
func findRow[T any](snap listing.Snapshot[T], id int64, idOf func(T) int64) (T, bool) {
	for _, row := range snap.Rows {
		if idOf(row) == id {
			return row, true
		}
	}
	var zero T
	return zero, false
}

// checkAction valida la acción contra el estado conocido de la fila. Si la
// fila no está en la página cargada se delega la decisión a la API.
func checkAction(status entity.Status, known bool, action listing.Action) error {
	if !known {
		return nil
	}
	if status.Locked() {
		return domain.ErrRowLocked
	}
	if !listing.Allows(status, action) {
		return fmt.Errorf("acción %s no disponible en estado %s: %w", action, status.Label(), domain.ErrConflict)
	}
	return nil
}

// callStatus invoca el endpoint de habilitar/deshabilitar.
func callStatus(ctx context.Context, ep statusEndpoints, id int64, action listing.Action) error {
	switch action {
	case listing.ActionEnable:
		return ep.Enable(ctx, id)
	case listing.ActionDisable:
		return ep.Disable(ctx, id)
	default:
		return fmt.Errorf("acción %s: %w", action, domain.ErrInvalidInput)
	}
}
