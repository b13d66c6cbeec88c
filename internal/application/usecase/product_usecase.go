package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Jumata96/InventarioInteligenteFrontend/internal/application/listing"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain/entity"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain/repository"
	"github.com/Jumata96/InventarioInteligenteFrontend/pkg/logger"
)

// Mensajes de respaldo cuando la API no envía uno propio.
const (
	MsgProductSaveFailed   = "No se pudo guardar el producto"
	MsgProductDeleteFailed = "No se pudo eliminar el producto"
	MsgProductStatusFailed = "No se pudo cambiar el estado del producto"
	MsgProductLoadFailed   = "No se pudieron cargar los productos"
)

// ProductUseCase listado paginado y CRUD de productos sobre la API.
type ProductUseCase struct {
	repo repository.ProductRepository
	list *listing.Controller[entity.Product]
	log  *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, pageSize int, debounce time.Duration, log *logger.Logger) *ProductUseCase {
	log = log.Named("products")
	return &ProductUseCase{
		repo: repo,
		list: listing.New[entity.Product](repo.ListPaged, pageSize, debounce, log),
		log:  log,
	}
}

// List controlador del listado.
func (uc *ProductUseCase) List() *listing.Controller[entity.Product] { return uc.list }

// ValidateProduct valida el formulario: nombre no vacío, precio > 0, stock ≥ 0.
func ValidateProduct(in entity.ProductInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return domain.Invalid("nombre", "El nombre es obligatorio")
	}
	if !in.UnitPrice.IsPositive() {
		return domain.Invalid("precio", "El precio debe ser mayor a 0")
	}
	if in.Stock < 0 {
		return domain.Invalid("stock", "El stock no puede ser negativo")
	}
	return nil
}

// Save crea (id == 0) o actualiza el producto y recarga la página actual.
// Si la validación local falla no se llama a la API.
func (uc *ProductUseCase) Save(ctx context.Context, id int64, in entity.ProductInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if err := ValidateProduct(in); err != nil {
		return err
	}
	var err error
	if id == 0 {
		err = uc.repo.Create(ctx, in)
	} else {
		err = uc.repo.Update(ctx, id, in)
	}
	if err != nil {
		return fmt.Errorf("guardar producto: %w", err)
	}
	uc.log.Info().Int64("id", id).Str("nombre", in.Name).Msg("producto guardado")
	return uc.refresh(ctx)
}

// Delete elimina el producto; exige confirmación explícita.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64, confirmed bool) error {
	if !confirmed {
		return domain.ErrNotConfirmed
	}
	if row, ok := uc.Find(id); ok && row.Status.Locked() {
		return domain.ErrRowLocked
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("eliminar producto %d: %w", id, err)
	}
	uc.log.Info().Int64("id", id).Msg("producto eliminado")
	return uc.refresh(ctx)
}

// Enable habilita un producto deshabilitado.
func (uc *ProductUseCase) Enable(ctx context.Context, id int64) error {
	return uc.setStatus(ctx, id, listing.ActionEnable)
}

// Disable deshabilita un producto activo.
func (uc *ProductUseCase) Disable(ctx context.Context, id int64) error {
	return uc.setStatus(ctx, id, listing.ActionDisable)
}

// Toggle elige el endpoint según el estado actual de la fila.
func (uc *ProductUseCase) Toggle(ctx context.Context, id int64) error {
	row, ok := uc.Find(id)
	if !ok {
		return domain.ErrNotFound
	}
	action, ok := listing.ToggleAction(row.Status)
	if !ok {
		return domain.ErrRowLocked
	}
	return uc.setStatus(ctx, id, action)
}

// Find busca el producto en la página cargada.
func (uc *ProductUseCase) Find(id int64) (entity.Product, bool) {
	return findRow(uc.list.Snapshot(), id, func(p entity.Product) int64 { return p.ID })
}

// Catalog productos activos para el selector del constructor de pedidos.
func (uc *ProductUseCase) Catalog(ctx context.Context) ([]entity.Product, error) {
	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	active := make([]entity.Product, 0, len(all))
	for _, p := range all {
		if p.Status == entity.StatusActive {
			active = append(active, p)
		}
	}
	return active, nil
}

// CatalogItem producto activo con su stock actual.
func (uc *ProductUseCase) CatalogItem(ctx context.Context, id int64) (entity.Product, error) {
	products, err := uc.Catalog(ctx)
	if err != nil {
		return entity.Product{}, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return entity.Product{}, domain.ErrNotFound
}

func (uc *ProductUseCase) setStatus(ctx context.Context, id int64, action listing.Action) error {
	row, known := uc.Find(id)
	if err := checkAction(row.Status, known, action); err != nil {
		return err
	}
	if err := callStatus(ctx, uc.repo, id, action); err != nil {
		return fmt.Errorf("cambiar estado del producto %d: %w", id, err)
	}
	return uc.refresh(ctx)
}

// refresh la recarga posterior a una mutación no invalida la mutación: el
// fallo queda en el estado del listado.
func (uc *ProductUseCase) refresh(ctx context.Context) error {
	if err := uc.list.Refresh(ctx); err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo recargar el listado")
	}
	return nil
}
