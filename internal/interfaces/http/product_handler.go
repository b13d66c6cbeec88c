package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Jumata96/InventarioInteligenteFrontend/internal/application/dto"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/application/listing"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/application/navigation"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/application/usecase"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain/entity"
)

// productsView datos de products.html.
type productsView struct {
	List   listing.Snapshot[entity.Product]
	Pager  Pager
	Form   dto.ProductForm
	EditID int64
}

// ProductHandler vistas del catálogo de productos.
type ProductHandler struct {
	views
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(v views, uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{views: v, uc: uc}
}

// List GET /products?page=&pageSize=&q=&edit=
func (h *ProductHandler) List(c *fiber.Ctx) error {
	list := h.uc.List()
	var alert *Alert
	if err := list.Navigate(c.UserContext(), pageQuery(c, list.Query())); err != nil {
		if isUnauthorized(c, err) {
			return h.fail(c, err, usecase.MsgProductLoadFailed, navigation.RouteLogin)
		}
		alert = errorAlert(err, usecase.MsgProductLoadFailed)
	}
	view := h.view()
	if id := int64(c.QueryInt("edit")); id > 0 {
		if p, ok := h.uc.Find(id); ok && !p.Status.Locked() {
			view.EditID = id
			view.Form = dto.ProductFormFrom(p)
		}
	}
	return h.page(c, fiber.StatusOK, pageProducts, "Productos", alert, view)
}

// Search GET /products/search?q= (fragmento de la tabla, con debounce). Si
// otra búsqueda la reemplazó responde 204 sin cuerpo.
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	err := h.uc.List().SearchDebounced(c.UserContext(), c.Query("q"))
	switch {
	case errors.Is(err, listing.ErrSuperseded):
		return c.SendStatus(fiber.StatusNoContent)
	case isUnauthorized(c, err):
		return c.SendStatus(fiber.StatusUnauthorized)
	case err != nil:
		return h.searchFail(c, pageProducts, err, usecase.MsgProductLoadFailed)
	}
	return h.fragment(c, pageProducts, "table", h.view())
}

// Create POST /products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	return h.save(c, 0)
}

// Update POST /products/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	return h.save(c, id)
}

func (h *ProductHandler) save(c *fiber.Ctx, id int64) error {
	var form dto.ProductForm
	var in entity.ProductInput
	err := parseForm(c, &form)
	if err == nil {
		in, err = form.ToInput()
	}
	if err == nil {
		err = h.uc.Save(c.UserContext(), id, in)
	}
	if err != nil {
		if isValidation(err) {
			view := h.view()
			view.Form, view.EditID = form, id
			return h.page(c, fiber.StatusUnprocessableEntity, pageProducts, "Productos",
				errorAlert(err, usecase.MsgProductSaveFailed), view)
		}
		return h.fail(c, err, usecase.MsgProductSaveFailed, navigation.RouteProducts)
	}
	return successRedirect(c, navigation.RouteProducts, "Producto guardado")
}

// ConfirmDelete GET /products/:id/delete
func (h *ProductHandler) ConfirmDelete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	name := fmt.Sprintf("#%d", id)
	if p, ok := h.uc.Find(id); ok {
		name = p.Name
	}
	return h.page(c, fiber.StatusOK, pageConfirm, "Eliminar producto", nil, confirmView{
		Message: fmt.Sprintf("¿Eliminar el producto %s?", name),
		Action:  fmt.Sprintf("%s/%d/delete", navigation.RouteProducts, id),
		Cancel:  navigation.RouteProducts,
	})
}

// Delete POST /products/:id/delete (requiere confirm=yes).
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var form dto.ConfirmForm
	err = parseForm(c, &form)
	if err == nil {
		err = h.uc.Delete(c.UserContext(), id, form.Confirmed())
	}
	if err != nil {
		return h.fail(c, err, usecase.MsgProductDeleteFailed, navigation.RouteProducts)
	}
	return successRedirect(c, navigation.RouteProducts, "Producto eliminado")
}

// Enable POST /products/:id/enable
func (h *ProductHandler) Enable(c *fiber.Ctx) error {
	return h.setStatus(c, h.uc.Enable)
}

// Disable POST /products/:id/disable
func (h *ProductHandler) Disable(c *fiber.Ctx) error {
	return h.setStatus(c, h.uc.Disable)
}

// Toggle POST /products/:id/toggle (habilita o deshabilita según el estado).
func (h *ProductHandler) Toggle(c *fiber.Ctx) error {
	return h.setStatus(c, h.uc.Toggle)
}

func (h *ProductHandler) setStatus(c *fiber.Ctx, apply statusFunc) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := apply(c.UserContext(), id); err != nil {
		return h.fail(c, err, usecase.MsgProductStatusFailed, navigation.RouteProducts)
	}
	return c.Redirect(navigation.RouteProducts, fiber.StatusSeeOther)
}

func (h *ProductHandler) view() productsView {
	snap := h.uc.List().Snapshot()
	return productsView{List: snap, Pager: newPager(navigation.RouteProducts, snap)}
}
