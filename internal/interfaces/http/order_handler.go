package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Jumata96/InventarioInteligenteFrontend/internal/application/billing"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/application/dto"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/application/listing"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/application/navigation"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/application/ordering"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/application/usecase"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain/entity"
)

// ordersView datos de orders.html: borrador, selectores y listado.
type ordersView struct {
	List      listing.Snapshot[entity.Order]
	Pager     Pager
	Draft     ordering.Draft
	Clients   []entity.Client
	Countries []entity.Country
	Products  []entity.Product
}

// OrderDeps dependencias del handler de pedidos.
type OrderDeps struct {
	Orders   *usecase.OrderUseCase
	Products *usecase.ProductUseCase
	Clients  *usecase.ClientUseCase
	Builder  *ordering.Builder
	Invoices *billing.InvoiceFlow
	Proforma *billing.ProformaUseCase
}

// OrderHandler constructor de pedidos, listado y facturación.
type OrderHandler struct {
	views
	deps OrderDeps
}

// NewOrderHandler construye el handler.
func NewOrderHandler(v views, deps OrderDeps) *OrderHandler {
	return &OrderHandler{views: v, deps: deps}
}

// ─── Listado ──────────────────────────────────────────────────────────────────

// List GET /orders?page=&pageSize=&q=
func (h *OrderHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()
	list := h.deps.Orders.List()
	var alerts []error
	if err := list.Navigate(ctx, pageQuery(c, list.Query())); err != nil {
		alerts = append(alerts, err)
	}

	snap := list.Snapshot()
	view := ordersView{List: snap, Pager: newPager(navigation.RouteOrders, snap), Draft: h.deps.Builder.Snapshot()}
	var err error
	if view.Clients, err = h.deps.Clients.All(ctx); err != nil {
		alerts = append(alerts, err)
	}
	if view.Countries, err = h.deps.Clients.Countries(ctx); err != nil {
		alerts = append(alerts, err)
	}
	if view.Products, err = h.deps.Products.Catalog(ctx); err != nil {
		alerts = append(alerts, err)
	}

	var alert *Alert
	if len(alerts) > 0 {
		first := alerts[0]
		if isUnauthorized(c, first) {
			return h.fail(c, first, usecase.MsgOrderLoadFailed, navigation.RouteLogin)
		}
		alert = errorAlert(first, usecase.MsgOrderLoadFailed)
	}
	return h.page(c, fiber.StatusOK, pageOrders, "Pedidos", alert, view)
}

// Search GET /orders/search?q=
func (h *OrderHandler) Search(c *fiber.Ctx) error {
	err := h.deps.Orders.List().SearchDebounced(c.UserContext(), c.Query("q"))
	switch {
	case errors.Is(err, listing.ErrSuperseded):
		return c.SendStatus(fiber.StatusNoContent)
	case isUnauthorized(c, err):
		return c.SendStatus(fiber.StatusUnauthorized)
	case err != nil:
		return h.searchFail(c, pageOrders, err, usecase.MsgOrderLoadFailed)
	}
	snap := h.deps.Orders.List().Snapshot()
	return h.fragment(c, pageOrders, "table", ordersView{List: snap, Pager: newPager(navigation.RouteOrders, snap)})
}

// Detail GET /orders/:id
func (h *OrderHandler) Detail(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	order, err := h.deps.Orders.Get(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err, usecase.MsgOrderLoadFailed, navigation.RouteOrders)
	}
	return h.page(c, fiber.StatusOK, pageOrder, fmt.Sprintf("Pedido #%d", order.ID), nil, order)
}

// ConfirmDelete GET /orders/:id/delete
func (h *OrderHandler) ConfirmDelete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	return h.page(c, fiber.StatusOK, pageConfirm, "Eliminar pedido", nil, confirmView{
		Message: fmt.Sprintf("¿Eliminar el pedido #%d?", id),
		Action:  fmt.Sprintf("%s/%d/delete", navigation.RouteOrders, id),
		Cancel:  navigation.RouteOrders,
	})
}

// Delete POST /orders/:id/delete (requiere confirm=yes).
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var form dto.ConfirmForm
	err = parseForm(c, &form)
	if err == nil {
		err = h.deps.Orders.Delete(c.UserContext(), id, form.Confirmed())
	}
	if err != nil {
		return h.fail(c, err, usecase.MsgOrderDeleteFailed, navigation.RouteOrders)
	}
	return successRedirect(c, navigation.RouteOrders, "Pedido eliminado")
}

// Invoice POST /orders/:id/invoice: abre el PDF de la factura del pedido,
// emitiéndola si aún no existe.
func (h *OrderHandler) Invoice(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	pdfURL, err := h.deps.Invoices.Open(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err, billing.MsgInvoiceFailed, navigation.RouteOrders)
	}
	return c.Redirect(pdfURL, fiber.StatusSeeOther)
}

// ─── Borrador ─────────────────────────────────────────────────────────────────

// SelectClient POST /orders/draft/client
func (h *OrderHandler) SelectClient(c *fiber.Ctx) error {
	var form dto.DraftClientForm
	if err := parseForm(c, &form); err != nil || form.ClienteID <= 0 {
		return h.draftFail(c, domain.ErrMissingClient)
	}
	ctx := c.UserContext()
	client, err := h.deps.Clients.Get(ctx, form.ClienteID)
	if err == nil && client.CountryID != 0 && client.CountryName == "" {
		if country, cerr := h.deps.Clients.Country(ctx, client.CountryID); cerr == nil {
			client.CountryName = country.Name
		}
	}
	if err == nil {
		err = h.deps.Builder.SelectClient(ctx, client)
	}
	return h.draftDone(c, err)
}

// SelectCountry POST /orders/draft/country
func (h *OrderHandler) SelectCountry(c *fiber.Ctx) error {
	var form dto.DraftCountryForm
	if err := parseForm(c, &form); err != nil || form.PaisID <= 0 {
		return h.draftFail(c, domain.ErrMissingCountry)
	}
	ctx := c.UserContext()
	country, err := h.deps.Clients.Country(ctx, form.PaisID)
	if err == nil {
		err = h.deps.Builder.SelectCountry(ctx, country)
	}
	return h.draftDone(c, err)
}

// AddLine POST /orders/draft/lines
func (h *OrderHandler) AddLine(c *fiber.Ctx) error {
	var form dto.DraftLineForm
	if err := parseForm(c, &form); err != nil {
		return h.draftFail(c, err)
	}
	qty, err := form.Quantity()
	if err != nil {
		return h.draftFail(c, err)
	}
	ctx := c.UserContext()
	product, err := h.deps.Products.CatalogItem(ctx, form.ProductoID)
	if errors.Is(err, domain.ErrNotFound) {
		err = domain.Invalid("producto", "El producto no está disponible")
	}
	if err == nil {
		err = h.deps.Builder.AddLine(ctx, product, qty)
	}
	return h.draftDone(c, err)
}

// SetQuantity POST /orders/draft/lines/:productId
func (h *OrderHandler) SetQuantity(c *fiber.Ctx) error {
	id, err := paramID(c, "productId")
	if err != nil {
		return err
	}
	var form dto.DraftLineForm
	if err := parseForm(c, &form); err != nil {
		return h.draftFail(c, err)
	}
	qty, err := form.Quantity()
	if err != nil {
		return h.draftFail(c, err)
	}
	return h.draftDone(c, h.deps.Builder.SetQuantity(c.UserContext(), id, qty))
}

// RemoveLine POST /orders/draft/lines/:productId/delete
func (h *OrderHandler) RemoveLine(c *fiber.Ctx) error {
	id, err := paramID(c, "productId")
	if err != nil {
		return err
	}
	return h.draftDone(c, h.deps.Builder.RemoveLine(c.UserContext(), id))
}

// Submit POST /orders/draft/submit
func (h *OrderHandler) Submit(c *fiber.Ctx) error {
	ctx := c.UserContext()
	order, err := h.deps.Builder.Submit(ctx)
	if err != nil {
		return h.fail(c, err, ordering.MsgSubmitFailed, navigation.RouteOrders)
	}
	_ = h.deps.Orders.Refresh(ctx)
	return successRedirect(c, navigation.RouteOrders, fmt.Sprintf("Pedido #%d registrado", order.ID))
}

// Reset POST /orders/draft/reset
func (h *OrderHandler) Reset(c *fiber.Ctx) error {
	h.deps.Builder.Reset()
	return c.Redirect(navigation.RouteOrders, fiber.StatusSeeOther)
}

// Proforma GET /orders/draft/proforma.pdf
func (h *OrderHandler) Proforma(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.deps.Proforma.Download()
	if err != nil {
		return h.fail(c, err, "No se pudo generar la proforma", navigation.RouteOrders)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Attachment(filename)
	return c.Send(pdfBytes)
}

// draftDone vuelve a /orders; el error de una operación del borrador se
// muestra como aviso. Un fallo al calcular totales deja la línea aplicada.
func (h *OrderHandler) draftDone(c *fiber.Ctx, err error) error {
	if err != nil {
		return h.draftFail(c, err)
	}
	return c.Redirect(navigation.RouteOrders, fiber.StatusSeeOther)
}

func (h *OrderHandler) draftFail(c *fiber.Ctx, err error) error {
	return h.fail(c, err, ordering.MsgTotalsFailed, navigation.RouteOrders)
}
