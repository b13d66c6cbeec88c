package http

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Jumata96/InventarioInteligenteFrontend/internal/application/dto"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/application/navigation"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain/repository"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/infrastructure/apiclient"
	"github.com/Jumata96/InventarioInteligenteFrontend/pkg/logger"
)

// Claves de query string con el aviso a mostrar tras una redirección.
const (
	queryError   = "err"
	querySuccess = "ok"
)

// errInvalidForm el cuerpo del formulario no se pudo leer (p. ej. texto en un
// campo numérico). Se trata como cualquier otra validación local.
var errInvalidForm = domain.Invalid("formulario", "Formulario inválido")

// parseForm lee el formulario; un cuerpo ilegible devuelve errInvalidForm.
func parseForm(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return errInvalidForm
	}
	return nil
}

// views base común de los handlers: renderiza vistas y traduce errores en
// avisos.
type views struct {
	render  *Renderer
	session SessionReader
	log     *logger.Logger
}

// page renderiza la vista completa. Si alert es nil se toma el aviso de la
// query string (patrón post/redirect/get).
func (v views) page(c *fiber.Ctx, status int, name, title string, alert *Alert, data any) error {
	if alert == nil {
		alert = alertFromQuery(c)
	}
	return v.render.Page(c, status, name, PageData{
		Title:         title,
		Path:          c.Path(),
		Email:         GetEmail(c),
		ExpiresAt:     v.session.ExpiresAt(),
		Authenticated: v.session.IsAuthenticated(),
		Alert:         alert,
		Data:          data,
	})
}

// fragment renderiza solo el bloque indicado de la vista.
func (v views) fragment(c *fiber.Ctx, name, block string, data any) error {
	return v.render.Fragment(c, name, block, PageData{Path: c.Path(), Data: data})
}

// searchFail fragmento con el aviso de una búsqueda fallida. El script del
// layout lo muestra en lugar de la tabla.
func (v views) searchFail(c *fiber.Ctx, name string, err error, fallback string) error {
	msg := errorMessage(err, fallback)
	v.log.Warn().Err(err).Str("path", c.Path()).Str("q", c.Query("q")).Msg(msg)
	return v.render.Alert(c, fiber.StatusBadGateway, name, &Alert{Kind: "error", Message: msg})
}

// fail redirige a back con el aviso del error. Ante un 401 de la API la
// sesión ya fue invalidada y se redirige a /login.
func (v views) fail(c *fiber.Ctx, err error, fallback, back string) error {
	msg := errorMessage(err, fallback)
	if errors.Is(err, domain.ErrUnauthorized) {
		if to, ok := navigation.AfterUnauthorized(c.Path()); ok {
			v.log.Warn().Str("path", c.Path()).Msg("sesión expirada, redirigiendo a login")
			return redirectWith(c, to, queryError, msg)
		}
	}
	v.log.Warn().Err(err).Str("path", c.Path()).Msg(msg)
	return redirectWith(c, back, queryError, msg)
}

// errorMessage texto visible de un error: validación local, mensaje del
// servidor o fallback, en ese orden.
func errorMessage(err error, fallback string) string {
	return domain.UserMessage(err, apiclient.Message(err, fallback))
}

func errorAlert(err error, fallback string) *Alert {
	return &Alert{Kind: "error", Message: errorMessage(err, fallback)}
}

func successRedirect(c *fiber.Ctx, to, msg string) error {
	return redirectWith(c, to, querySuccess, msg)
}

func redirectWith(c *fiber.Ctx, to, key, msg string) error {
	sep := "?"
	if strings.Contains(to, "?") {
		sep = "&"
	}
	return c.Redirect(to+sep+url.Values{key: {msg}}.Encode(), fiber.StatusSeeOther)
}

func alertFromQuery(c *fiber.Ctx) *Alert {
	if m := c.Query(queryError); m != "" {
		return &Alert{Kind: "error", Message: m}
	}
	if m := c.Query(querySuccess); m != "" {
		return &Alert{Kind: "success", Message: m}
	}
	return nil
}

// isUnauthorized el error exige volver a /login.
func isUnauthorized(c *fiber.Ctx, err error) bool {
	if !errors.Is(err, domain.ErrUnauthorized) {
		return false
	}
	_, redirect := navigation.AfterUnauthorized(c.Path())
	return redirect
}

// isValidation error de validación local (se vuelve a mostrar el formulario).
func isValidation(err error) bool {
	var ve *domain.ValidationError
	return errors.As(err, &ve)
}

// paramID lee un ID numérico de la ruta.
func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "id inválido")
	}
	return id, nil
}

// pageQuery combina la consulta actual del listado con los parámetros
// presentes en la URL (el listado vuelve a la página 1 si cambia el filtro).
func pageQuery(c *fiber.Ctx, current repository.PageQuery) repository.PageQuery {
	var req dto.PageRequest
	if err := c.QueryParser(&req); err != nil {
		return current
	}
	q := current
	args := c.Context().QueryArgs()
	if args.Has("q") {
		q.Search = strings.TrimSpace(req.Q)
	}
	if args.Has("pageSize") && req.PageSize > 0 {
		q.PageSize = req.PageSize
	}
	if args.Has("page") {
		q.Page = req.Page
	}
	return q
}
