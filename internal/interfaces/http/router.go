package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Jumata96/InventarioInteligenteFrontend/internal/application/auth"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/application/dto"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/application/navigation"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/application/usecase"
	"github.com/Jumata96/InventarioInteligenteFrontend/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Renderer  *Renderer
	Session   SessionReader
	AuthUC    *auth.AuthUseCase
	ProductUC *usecase.ProductUseCase
	ClientUC  *usecase.ClientUseCase
	Orders    OrderDeps
	Log       *logger.Logger
	AppName   string
}

// Router registra las vistas de la consola.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	v := views{render: deps.Renderer, session: deps.Session, log: log.Named("http")}

	app.Use(RequestLogger(v.log))
	app.Use(SessionGuard(deps.Session))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName, "authenticated": deps.Session.IsAuthenticated()})
	})

	// Auth (público)
	authHandler := NewAuthHandler(v, deps.AuthUC)
	app.Get(navigation.RouteLogin, authHandler.ShowLogin)
	app.Post(navigation.RouteLogin, authHandler.Login)
	app.Get(navigation.RouteRegister, authHandler.ShowRegister)
	app.Post(navigation.RouteRegister, authHandler.Register)
	app.Post(navigation.RouteLogout, authHandler.Logout)

	// Products
	products := app.Group(navigation.RouteProducts)
	productHandler := NewProductHandler(v, deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/search", productHandler.Search)
	products.Post("/", productHandler.Create)
	products.Post("/:id<int>", productHandler.Update)
	products.Get("/:id<int>/delete", productHandler.ConfirmDelete)
	products.Post("/:id<int>/delete", productHandler.Delete)
	products.Post("/:id<int>/enable", productHandler.Enable)
	products.Post("/:id<int>/disable", productHandler.Disable)
	products.Post("/:id<int>/toggle", productHandler.Toggle)

	// Clients
	clients := app.Group(navigation.RouteClients)
	clientHandler := NewClientHandler(v, deps.ClientUC)
	clients.Get("/", clientHandler.List)
	clients.Get("/search", clientHandler.Search)
	clients.Post("/", clientHandler.Create)
	clients.Post("/:id<int>", clientHandler.Update)
	clients.Get("/:id<int>/delete", clientHandler.ConfirmDelete)
	clients.Post("/:id<int>/delete", clientHandler.Delete)
	clients.Post("/:id<int>/enable", clientHandler.Enable)
	clients.Post("/:id<int>/disable", clientHandler.Disable)
	clients.Post("/:id<int>/toggle", clientHandler.Toggle)

	// Orders: borrador, listado y facturación
	orders := app.Group(navigation.RouteOrders)
	orderHandler := NewOrderHandler(v, deps.Orders)
	orders.Get("/", orderHandler.List)
	orders.Get("/search", orderHandler.Search)
	orders.Get("/:id<int>", orderHandler.Detail)
	orders.Get("/:id<int>/delete", orderHandler.ConfirmDelete)
	orders.Post("/:id<int>/delete", orderHandler.Delete)
	orders.Post("/:id<int>/invoice", orderHandler.Invoice)
	orders.Post("/draft/client", orderHandler.SelectClient)
	orders.Post("/draft/country", orderHandler.SelectCountry)
	orders.Post("/draft/lines", orderHandler.AddLine)
	orders.Post("/draft/lines/:productId<int>", orderHandler.SetQuantity)
	orders.Post("/draft/lines/:productId<int>/delete", orderHandler.RemoveLine)
	orders.Post("/draft/submit", orderHandler.Submit)
	orders.Post("/draft/reset", orderHandler.Reset)
	orders.Get("/draft/proforma.pdf", orderHandler.Proforma)

	// Cualquier ruta sin handler, incluso bajo una sección del panel.
	app.Use(func(c *fiber.Ctx) error {
		return c.Redirect(navigation.RouteLogin, fiber.StatusSeeOther)
	})
}

// ErrorHandler responde los errores no manejados por los handlers.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}
		msg := errorMessage(err, "Error interno")
		if code < fiber.StatusInternalServerError && fe != nil {
			msg = fe.Message
		}
		if code >= fiber.StatusInternalServerError {
			log.Error().Err(err).Str("path", c.Path()).Msg("error no manejado")
		}
		return c.Status(code).JSON(dto.ErrorResponse{Code: errorCode(code), Message: msg})
	}
}

func errorCode(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	default:
		return "INTERNAL"
	}
}
