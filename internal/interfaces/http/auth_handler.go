package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Jumata96/InventarioInteligenteFrontend/internal/application/auth"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/application/dto"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/application/navigation"
)

// AuthHandler maneja login, registro y cierre de sesión.
type AuthHandler struct {
	views
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(v views, uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{views: v, uc: uc}
}

// ShowLogin GET /login.
func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	return h.page(c, fiber.StatusOK, pageLogin, "Iniciar sesión", nil, dto.LoginForm{})
}

// Login POST /login. Con credenciales válidas guarda la sesión y abre
// /products; si no, vuelve a mostrar el formulario con el aviso.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginForm
	err := parseForm(c, &in)
	if err == nil {
		err = h.uc.Login(c.UserContext(), auth.LoginRequest{Email: in.Email, Password: in.Password})
	}
	if err != nil {
		h.log.Warn().Err(err).Str("email", in.Email).Msg("login rechazado")
		in.Password = ""
		return h.page(c, fiber.StatusUnprocessableEntity, pageLogin, "Iniciar sesión",
			errorAlert(err, auth.MsgLoginFailed), in)
	}
	return c.Redirect(navigation.RouteProducts, fiber.StatusSeeOther)
}

// ShowRegister GET /register.
func (h *AuthHandler) ShowRegister(c *fiber.Ctx) error {
	return h.page(c, fiber.StatusOK, pageRegister, "Registro", nil, dto.RegisterForm{})
}

// Register POST /register. No inicia sesión: lleva a /login con el aviso.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterForm
	err := parseForm(c, &in)
	if err == nil {
		err = h.uc.Register(c.UserContext(), auth.RegisterRequest{
			Email:           in.Email,
			Password:        in.Password,
			ConfirmPassword: in.ConfirmPassword,
		})
	}
	if err != nil {
		in.Password, in.ConfirmPassword = "", ""
		return h.page(c, fiber.StatusUnprocessableEntity, pageRegister, "Registro",
			errorAlert(err, auth.MsgRegisterFailed), in)
	}
	return successRedirect(c, navigation.RouteLogin, "Usuario registrado, ya puede iniciar sesión")
}

// Logout POST /logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(c.UserContext()); err != nil {
		h.log.Error().Err(err).Msg("cerrar sesión")
	}
	return c.Redirect(navigation.RouteLogin, fiber.StatusSeeOther)
}
