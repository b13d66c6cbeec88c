package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Jumata96/InventarioInteligenteFrontend/internal/application/navigation"
	"github.com/Jumata96/InventarioInteligenteFrontend/pkg/logger"
)

// Locals keys en Fiber.
const (
	LocalEmail     = "email"
	LocalRequestID = "request_id"
)

// SessionReader lectura de la sesión del operador.
type SessionReader interface {
	IsAuthenticated() bool
	Email() string
	ExpiresAt() time.Time
}

// SessionGuard aplica la tabla de rutas: la raíz lleva a /products, lo
// desconocido a /login y las vistas del panel exigen sesión. /health queda
// fuera de la guardia.
func SessionGuard(session SessionReader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Path() == "/health" {
			return c.Next()
		}
		authenticated := session.IsAuthenticated()
		if to, ok := navigation.Guard(c.Path(), authenticated); !ok {
			return c.Redirect(to, fiber.StatusSeeOther)
		}
		if authenticated {
			c.Locals(LocalEmail, session.Email())
		}
		return c.Next()
	}
}

// RequestLogger registra cada petición con su ID, estado y duración.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalRequestID, id)
		c.Set(fiber.HeaderXRequestID, id)

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		ev := log.Debug()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error().Err(err)
		}
		ev.Str("request_id", id).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("petición atendida")
		return err
	}
}

// GetEmail devuelve el email del operador (después de SessionGuard).
func GetEmail(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalEmail).(string)
	return s
}
