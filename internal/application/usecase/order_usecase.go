package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Jumata96/InventarioInteligenteFrontend/internal/application/listing"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain/entity"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain/repository"
	"github.com/Jumata96/InventarioInteligenteFrontend/pkg/logger"
)

const (
	MsgOrderDeleteFailed = "No se pudo eliminar el pedido"
	MsgOrderLoadFailed   = "No se pudieron cargar los pedidos"
)

// OrderUseCase listado paginado de pedidos.
type OrderUseCase struct {
	repo repository.OrderRepository
	list *listing.Controller[entity.Order]
	log  *logger.Logger
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository, pageSize int, debounce time.Duration, log *logger.Logger) *OrderUseCase {
	log = log.Named("orders")
	return &OrderUseCase{
		repo: repo,
		list: listing.New[entity.Order](repo.ListPaged, pageSize, debounce, log),
		log:  log,
	}
}

// List controlador del listado.
func (uc *OrderUseCase) List() *listing.Controller[entity.Order] { return uc.list }

// Get obtiene el pedido con su detalle.
func (uc *OrderUseCase) Get(ctx context.Context, id int64) (*entity.Order, error) {
	o, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener pedido %d: %w", id, err)
	}
	return o, nil
}

// Delete elimina el pedido; exige confirmación explícita.
func (uc *OrderUseCase) Delete(ctx context.Context, id int64, confirmed bool) error {
	if !confirmed {
		return domain.ErrNotConfirmed
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("eliminar pedido %d: %w", id, err)
	}
	uc.log.Info().Int64("id", id).Msg("pedido eliminado")
	return uc.Refresh(ctx)
}

// Refresh recarga la página actual; un fallo queda registrado en el listado.
func (uc *OrderUseCase) Refresh(ctx context.Context) error {
	if err := uc.list.Refresh(ctx); err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo recargar el listado")
	}
	return nil
}
