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

// clientsView datos de clients.html.
type clientsView struct {
	List      listing.Snapshot[entity.Client]
	Pager     Pager
	Form      dto.ClientForm
	EditID    int64
	Countries []entity.Country
}

// ClientHandler vistas de clientes.
type ClientHandler struct {
	views
	uc *usecase.ClientUseCase
}

// NewClientHandler construye el handler.
func NewClientHandler(v views, uc *usecase.ClientUseCase) *ClientHandler {
	return &ClientHandler{views: v, uc: uc}
}

// List GET /clients?page=&pageSize=&q=&edit=
func (h *ClientHandler) List(c *fiber.Ctx) error {
	list := h.uc.List()
	var alert *Alert
	if err := list.Navigate(c.UserContext(), pageQuery(c, list.Query())); err != nil {
		if isUnauthorized(c, err) {
			return h.fail(c, err, usecase.MsgClientLoadFailed, navigation.RouteLogin)
		}
		alert = errorAlert(err, usecase.MsgClientLoadFailed)
	}
	view, err := h.view(c)
	if err != nil {
		if isUnauthorized(c, err) {
			return h.fail(c, err, usecase.MsgCountriesFailed, navigation.RouteLogin)
		}
		if alert == nil {
			alert = errorAlert(err, usecase.MsgCountriesFailed)
		}
	}
	if id := int64(c.QueryInt("edit")); id > 0 {
		if cl, ok := h.uc.Find(id); ok && !cl.Status.Locked() {
			view.EditID = id
			view.Form = dto.ClientFormFrom(cl)
		}
	}
	return h.page(c, fiber.StatusOK, pageClients, "Clientes", alert, view)
}

// Search GET /clients/search?q=
func (h *ClientHandler) Search(c *fiber.Ctx) error {
	err := h.uc.List().SearchDebounced(c.UserContext(), c.Query("q"))
	switch {
	case errors.Is(err, listing.ErrSuperseded):
		return c.SendStatus(fiber.StatusNoContent)
	case isUnauthorized(c, err):
		return c.SendStatus(fiber.StatusUnauthorized)
	case err != nil:
		return h.searchFail(c, pageClients, err, usecase.MsgClientLoadFailed)
	}
	snap := h.uc.List().Snapshot()
	return h.fragment(c, pageClients, "table", clientsView{List: snap, Pager: newPager(navigation.RouteClients, snap)})
}

// Create POST /clients
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	return h.save(c, 0)
}

// Update POST /clients/:id
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	return h.save(c, id)
}

func (h *ClientHandler) save(c *fiber.Ctx, id int64) error {
	var form dto.ClientForm
	err := parseForm(c, &form)
	if err == nil {
		err = h.uc.Save(c.UserContext(), id, form.ToInput())
	}
	if err != nil {
		if isValidation(err) {
			view, _ := h.view(c)
			view.Form, view.EditID = form, id
			return h.page(c, fiber.StatusUnprocessableEntity, pageClients, "Clientes",
				errorAlert(err, usecase.MsgClientSaveFailed), view)
		}
		return h.fail(c, err, usecase.MsgClientSaveFailed, navigation.RouteClients)
	}
	return successRedirect(c, navigation.RouteClients, "Cliente guardado")
}

// ConfirmDelete GET /clients/:id/delete
func (h *ClientHandler) ConfirmDelete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	name := fmt.Sprintf("#%d", id)
	if cl, ok := h.uc.Find(id); ok {
		name = cl.Name
	}
	return h.page(c, fiber.StatusOK, pageConfirm, "Eliminar cliente", nil, confirmView{
		Message: fmt.Sprintf("¿Eliminar el cliente %s?", name),
		Action:  fmt.Sprintf("%s/%d/delete", navigation.RouteClients, id),
		Cancel:  navigation.RouteClients,
	})
}

// Delete POST /clients/:id/delete (requiere confirm=yes).
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
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
		return h.fail(c, err, usecase.MsgClientDeleteFailed, navigation.RouteClients)
	}
	return successRedirect(c, navigation.RouteClients, "Cliente eliminado")
}

// Enable POST /clients/:id/enable
func (h *ClientHandler) Enable(c *fiber.Ctx) error {
	return h.setStatus(c, h.uc.Enable)
}

// Disable POST /clients/:id/disable
func (h *ClientHandler) Disable(c *fiber.Ctx) error {
	return h.setStatus(c, h.uc.Disable)
}

// Toggle POST /clients/:id/toggle (habilita o deshabilita según el estado).
func (h *ClientHandler) Toggle(c *fiber.Ctx) error {
	return h.setStatus(c, h.uc.Toggle)
}

func (h *ClientHandler) setStatus(c *fiber.Ctx, apply statusFunc) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := apply(c.UserContext(), id); err != nil {
		return h.fail(c, err, usecase.MsgClientStatusFailed, navigation.RouteClients)
	}
	return c.Redirect(navigation.RouteClients, fiber.StatusSeeOther)
}

// view listado actual más el catálogo de países del formulario.
func (h *ClientHandler) view(c *fiber.Ctx) (clientsView, error) {
	snap := h.uc.List().Snapshot()
	view := clientsView{List: snap, Pager: newPager(navigation.RouteClients, snap)}
	countries, err := h.uc.Countries(c.UserContext())
	view.Countries = countries
	return view, err
}
