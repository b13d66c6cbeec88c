package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Jumata96/InventarioInteligenteFrontend/internal/application/listing"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain/entity"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain/repository"
	"github.com/Jumata96/InventarioInteligenteFrontend/pkg/logger"
)

const (
	MsgClientSaveFailed   = "No se pudo guardar el cliente"
	MsgClientDeleteFailed = "No se pudo eliminar el cliente"
	MsgClientStatusFailed = "No se pudo cambiar el estado del cliente"
	MsgClientLoadFailed   = "No se pudieron cargar los clientes"
	MsgCountriesFailed    = "No se pudieron cargar los países"
)

// ClientUseCase listado paginado y CRUD de clientes. Mantiene en caché el
// catálogo de países para el selector y para resolver el nombre del país.
type ClientUseCase struct {
	repo      repository.ClientRepository
	countries repository.CountryRepository
	list      *listing.Controller[entity.Client]
	log       *logger.Logger

	mu           sync.RWMutex
	countryCache []entity.Country
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository, countries repository.CountryRepository, pageSize int, debounce time.Duration, log *logger.Logger) *ClientUseCase {
	log = log.Named("clients")
	uc := &ClientUseCase{repo: repo, countries: countries, log: log}
	uc.list = listing.New[entity.Client](uc.fetchPage, pageSize, debounce, log)
	return uc
}

// List controlador del listado.
func (uc *ClientUseCase) List() *listing.Controller[entity.Client] { return uc.list }

// fetchPage pide la página y completa el nombre del país cuando la API no lo envía.
func (uc *ClientUseCase) fetchPage(ctx context.Context, q repository.PageQuery) (repository.Page[entity.Client], error) {
	page, err := uc.repo.ListPaged(ctx, q)
	if err != nil {
		return page, err
	}
	missing := false
	for _, c := range page.Items {
		if c.CountryName == "" && c.CountryID != 0 {
			missing = true
			break
		}
	}
	if !missing {
		return page, nil
	}
	countries, err := uc.Countries(ctx)
	if err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo resolver el nombre de los países")
		return page, nil
	}
	names := make(map[int64]string, len(countries))
	for _, c := range countries {
		names[c.ID] = c.Name
	}
	for i := range page.Items {
		if page.Items[i].CountryName == "" {
			page.Items[i].CountryName = names[page.Items[i].CountryID]
		}
	}
	return page, nil
}

// Countries catálogo de países (se pide una vez y queda en caché).
func (uc *ClientUseCase) Countries(ctx context.Context) ([]entity.Country, error) {
	uc.mu.RLock()
	cached := uc.countryCache
	uc.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}
	countries, err := uc.countries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar países: %w", err)
	}
	if countries == nil {
		countries = []entity.Country{}
	}
	uc.mu.Lock()
	uc.countryCache = countries
	uc.mu.Unlock()
	return countries, nil
}

// ValidateClient valida el formulario: RUC, nombre y país obligatorios.
func ValidateClient(in entity.ClientInput) error {
	if strings.TrimSpace(in.TaxID) == "" {
		return domain.Invalid("ruc", "Completa todos los campos obligatorios")
	}
	if strings.TrimSpace(in.Name) == "" {
		return domain.Invalid("nombre", "Completa todos los campos obligatorios")
	}
	if in.CountryID <= 0 {
		return domain.Invalid("paisId", "Completa todos los campos obligatorios")
	}
	return nil
}

// Save crea (id == 0) o actualiza el cliente y recarga la página actual.
func (uc *ClientUseCase) Save(ctx context.Context, id int64, in entity.ClientInput) error {
	in.TaxID = strings.TrimSpace(in.TaxID)
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Address = strings.TrimSpace(in.Address)
	if err := ValidateClient(in); err != nil {
		return err
	}
	var err error
	if id == 0 {
		err = uc.repo.Create(ctx, in)
	} else {
		err = uc.repo.Update(ctx, id, in)
	}
	if err != nil {
		return fmt.Errorf("guardar cliente: %w", err)
	}
	uc.log.Info().Int64("id", id).Str("ruc", in.TaxID).Msg("cliente guardado")
	return uc.refresh(ctx)
}

// Delete elimina el cliente; exige confirmación explícita.
func (uc *ClientUseCase) Delete(ctx context.Context, id int64, confirmed bool) error {
	if !confirmed {
		return domain.ErrNotConfirmed
	}
	if row, ok := uc.Find(id); ok && row.Status.Locked() {
		return domain.ErrRowLocked
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("eliminar cliente %d: %w", id, err)
	}
	uc.log.Info().Int64("id", id).Msg("cliente eliminado")
	return uc.refresh(ctx)
}

func (uc *ClientUseCase) Enable(ctx context.Context, id int64) error {
	return uc.setStatus(ctx, id, listing.ActionEnable)
}

func (uc *ClientUseCase) Disable(ctx context.Context, id int64) error {
	return uc.setStatus(ctx, id, listing.ActionDisable)
}

// Toggle elige el endpoint según el estado actual de la fila.
func (uc *ClientUseCase) Toggle(ctx context.Context, id int64) error {
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

// Find busca el cliente en la página cargada.
func (uc *ClientUseCase) Find(id int64) (entity.Client, bool) {
	return findRow(uc.list.Snapshot(), id, func(c entity.Client) int64 { return c.ID })
}

// All lista completa de clientes (selector del constructor de pedidos).
func (uc *ClientUseCase) All(ctx context.Context) ([]entity.Client, error) {
	clients, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar clientes: %w", err)
	}
	return clients, nil
}

// Get cliente por ID (desde la lista completa).
func (uc *ClientUseCase) Get(ctx context.Context, id int64) (entity.Client, error) {
	clients, err := uc.All(ctx)
	if err != nil {
		return entity.Client{}, err
	}
	for _, c := range clients {
		if c.ID == id {
			return c, nil
		}
	}
	return entity.Client{}, domain.ErrNotFound
}

// Country país por ID (desde el catálogo en caché).
func (uc *ClientUseCase) Country(ctx context.Context, id int64) (entity.Country, error) {
	countries, err := uc.Countries(ctx)
	if err != nil {
		return entity.Country{}, err
	}
	for _, c := range countries {
		if c.ID == id {
			return c, nil
		}
	}
	return entity.Country{}, domain.ErrNotFound
}

func (uc *ClientUseCase) setStatus(ctx context.Context, id int64, action listing.Action) error {
	row, known := uc.Find(id)
	if err := checkAction(row.Status, known, action); err != nil {
		return err
	}
	if err := callStatus(ctx, uc.repo, id, action); err != nil {
		return fmt.Errorf("cambiar estado del cliente %d: %w", id, err)
	}
	return uc.refresh(ctx)
}

func (uc *ClientUseCase) refresh(ctx context.Context) error {
	if err := uc.list.Refresh(ctx); err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo recargar el listado")
	}
	return nil
}
