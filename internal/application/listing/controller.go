// Package listing controlador genérico de listados paginados con búsqueda.
// Productos, Clientes y Pedidos comparten la misma máquina de estados.
package listing

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain/repository"
	"github.com/Jumata96/InventarioInteligenteFrontend/pkg/logger"
)

// State estado de carga del listado.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return "idle"
	}
}

// ErrSuperseded una búsqueda más reciente reemplazó a esta antes de ejecutarse.
var ErrSuperseded = errors.New("listing: búsqueda reemplazada por otra más reciente")

// Fetcher obtiene una página del recurso remoto.
type Fetcher[T any] func(ctx context.Context, q repository.PageQuery) (repository.Page[T], error)

// Snapshot copia inmutable del estado para las vistas.
type Snapshot[T any] struct {
	State      State
	Query      repository.PageQuery
	Rows       []T
	TotalCount int
	TotalPages int
	Err        error
}

// HasPrev / HasNext navegación de páginas.
func (s Snapshot[T]) HasPrev() bool { return s.Query.Page > 1 }
func (s Snapshot[T]) HasNext() bool { return s.Query.Page < s.TotalPages }

// Controller listado paginado. Cada fetch toma un número de generación y solo
// la respuesta de la última generación se aplica al estado.
type Controller[T any] struct {
	fetch           Fetcher[T]
	defaultPageSize int
	debounce        time.Duration
	log             *logger.Logger

	mu         sync.Mutex
	state      State
	query      repository.PageQuery
	rows       []T
	total      int
	err        error
	generation uint64
	searchSeq  uint64
}

// New construye el controlador en estado Idle en la página 1.
func New[T any](fetch Fetcher[T], pageSize int, debounce time.Duration, log *logger.Logger) *Controller[T] {
	if pageSize <= 0 {
		pageSize = 5
	}
	return &Controller[T]{
		fetch:           fetch,
		defaultPageSize: pageSize,
		debounce:        debounce,
		log:             log,
		query:           repository.PageQuery{Page: 1, PageSize: pageSize},
	}
}

// Refresh vuelve a pedir la página actual.
func (c *Controller[T]) Refresh(ctx context.Context) error {
	return c.load(ctx, nil)
}

// SetPage cambia de página (1-based) y recarga.
func (c *Controller[T]) SetPage(ctx context.Context, page int) error {
	return c.load(ctx, func(q *repository.PageQuery) {
		q.Page = page
	})
}

// Navigate aplica página, tamaño y búsqueda de una sola vez (query string de la vista).
// Un cambio de búsqueda o tamaño vuelve a la primera página.
func (c *Controller[T]) Navigate(ctx context.Context, q repository.PageQuery) error {
	return c.load(ctx, func(cur *repository.PageQuery) {
		search := strings.TrimSpace(q.Search)
		size := q.PageSize
		if size <= 0 {
			size = cur.PageSize
		}
		page := q.Page
		if search != cur.Search || size != cur.PageSize {
			page = 1
		}
		*cur = repository.PageQuery{Page: page, PageSize: size, Search: search}
	})
}

// Search aplica el filtro de inmediato: primera página y recarga.
func (c *Controller[T]) Search(ctx context.Context, search string) error {
	c.mu.Lock()
	c.searchSeq++
	c.mu.Unlock()
	return c.applySearch(ctx, search)
}

// SearchDebounced espera la ventana de debounce; si otra búsqueda llegó en ese
// lapso devuelve ErrSuperseded sin pedir nada. Si no, aplica el filtro.
func (c *Controller[T]) SearchDebounced(ctx context.Context, search string) error {
	c.mu.Lock()
	c.searchSeq++
	mine := c.searchSeq
	c.mu.Unlock()

	if c.debounce > 0 {
		timer := time.NewTimer(c.debounce)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	c.mu.Lock()
	superseded := mine != c.searchSeq
	c.mu.Unlock()
	if superseded {
		return ErrSuperseded
	}
	return c.applySearch(ctx, search)
}

func (c *Controller[T]) applySearch(ctx context.Context, search string) error {
	return c.load(ctx, func(q *repository.PageQuery) {
		q.Search = strings.TrimSpace(search)
		q.Page = 1
	})
}

// load muta la consulta bajo lock, pide la página fuera del lock y aplica la
// respuesta solo si sigue siendo la última generación.
func (c *Controller[T]) load(ctx context.Context, mutate func(*repository.PageQuery)) error {
	c.mu.Lock()
	if mutate != nil {
		mutate(&c.query)
	}
	c.query = c.query.Normalize(c.defaultPageSize)
	c.generation++
	gen := c.generation
	q := c.query
	c.state = StateLoading
	c.mu.Unlock()

	page, err := c.fetch(ctx, q)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		c.log.Debug().Uint64("generation", gen).Uint64("latest", c.generation).Msg("respuesta obsoleta descartada")
		return nil
	}
	if err != nil {
		c.state = StateFailed
		c.err = err
		return err
	}
	c.state = StateLoaded
	c.err = nil
	c.rows = page.Items
	c.total = page.TotalCount
	return nil
}

// Snapshot devuelve una copia del estado actual.
func (c *Controller[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	rows := make([]T, len(c.rows))
	copy(rows, c.rows)
	page := repository.Page[T]{TotalCount: c.total}
	return Snapshot[T]{
		State:      c.state,
		Query:      c.query,
		Rows:       rows,
		TotalCount: c.total,
		TotalPages: page.TotalPages(c.query.PageSize),
		Err:        c.err,
	}
}

// Query consulta vigente.
func (c *Controller[T]) Query() repository.PageQuery {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}
