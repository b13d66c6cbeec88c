package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/url"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/Jumata96/InventarioInteligenteFrontend/internal/application/listing"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/application/navigation"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain/entity"
	"github.com/Jumata96/InventarioInteligenteFrontend/pkg/money"
)

//go:embed views/*.html
var viewsFS embed.FS

// Páginas de la consola (archivo en views/).
const (
	pageLogin    = "login.html"
	pageRegister = "register.html"
	pageProducts = "products.html"
	pageClients  = "clients.html"
	pageOrders   = "orders.html"
	pageOrder    = "order.html"
	pageConfirm  = "confirm.html"
)

var pages = []string{pageLogin, pageRegister, pageProducts, pageClients, pageOrders, pageOrder, pageConfirm}

// Alert aviso bloqueante mostrado en la parte superior de la vista.
type Alert struct {
	Kind    string // error | success
	Message string
}

// PageData datos comunes a todas las vistas.
type PageData struct {
	Title         string
	Path          string
	Email         string
	ExpiresAt     time.Time // cero si el token no trae "exp"
	Authenticated bool
	Alert         *Alert
	Data          any
}

// Renderer compila las plantillas una vez (layout + parciales + página).
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer compila todas las vistas embebidas.
func NewRenderer(format *money.Formatter) (*Renderer, error) {
	funcs := template.FuncMap{
		"money":     func(d decimal.Decimal) string { return format.Format(d) },
		"percent":   func(d decimal.Decimal) string { return format.Percent(d) },
		"actions":   listing.RowActions,
		"menu":      navigation.Menu,
		"active":    navigation.Active,
		"add":       func(a, b int) int { return a + b },
		"pageSizes": func() []int { return []int{5, 10, 20, 50} },
		"statusClass": func(s entity.Status) string {
			switch s {
			case entity.StatusActive:
				return "ok"
			case entity.StatusDisabled:
				return "warn"
			default:
				return "off"
			}
		},
	}
	r := &Renderer{pages: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		t, err := template.New(name).Funcs(funcs).ParseFS(viewsFS, "views/layout.html", "views/partials.html", "views/"+name)
		if err != nil {
			return nil, fmt.Errorf("render: compilar %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Page renderiza la página completa dentro del layout.
func (r *Renderer) Page(c *fiber.Ctx, status int, name string, data PageData) error {
	return r.execute(c, status, name, "layout", data)
}

// Fragment renderiza solo un bloque de la página (p. ej. la tabla de resultados).
func (r *Renderer) Fragment(c *fiber.Ctx, name, block string, data PageData) error {
	return r.execute(c, fiber.StatusOK, name, block, data)
}

// Alert renderiza solo el aviso (respuesta de error de un fragmento).
func (r *Renderer) Alert(c *fiber.Ctx, status int, name string, alert *Alert) error {
	return r.execute(c, status, name, "alert", alert)
}

func (r *Renderer) execute(c *fiber.Ctx, status int, name, block string, data any) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("render: vista %s no registrada", name)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, block, data); err != nil {
		return fmt.Errorf("render: %s/%s: %w", name, block, err)
	}
	c.Type("html", "utf-8")
	return c.Status(status).Send(buf.Bytes())
}

// ─── Paginación ───────────────────────────────────────────────────────────────

// Pager datos de paginación para el parcial "pager".
type Pager struct {
	Base       string
	Page       int
	PageSize   int
	Search     string
	TotalCount int
	TotalPages int
	HasPrev    bool
	HasNext    bool
}

// URL enlace a la página p conservando tamaño y filtro.
func (p Pager) URL(page int) string {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(p.PageSize))
	if p.Search != "" {
		q.Set("q", p.Search)
	}
	return p.Base + "?" + q.Encode()
}

func newPager[T any](base string, snap listing.Snapshot[T]) Pager {
	return Pager{
		Base:       base,
		Page:       snap.Query.Page,
		PageSize:   snap.Query.PageSize,
		Search:     snap.Query.Search,
		TotalCount: snap.TotalCount,
		TotalPages: snap.TotalPages,
		HasPrev:    snap.HasPrev(),
		HasNext:    snap.HasNext(),
	}
}
