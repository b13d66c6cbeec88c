// Package auth flujos de inicio de sesión, registro y cierre de sesión.
package auth

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain/repository"
	"github.com/Jumata96/InventarioInteligenteFrontend/pkg/logger"
)

// Mensajes de respaldo cuando la API no envía uno propio.
const (
	MsgLoginFailed    = "Credenciales inválidas"
	MsgRegisterFailed = "No se pudo registrar el usuario"
)

// SessionWriter único escritor de la sesión.
type SessionWriter interface {
	Login(ctx context.Context, token, email string) error
	Logout(ctx context.Context) error
}

// LoginRequest credenciales del formulario de login.
type LoginRequest struct {
	Email    string
	Password string
}

// RegisterRequest formulario de registro.
type RegisterRequest struct {
	Email           string
	Password        string
	ConfirmPassword string
}

// AuthUseCase casos de uso de autenticación contra la API remota.
type AuthUseCase struct {
	repo    repository.AuthRepository
	session SessionWriter
	log     *logger.Logger
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(repo repository.AuthRepository, session SessionWriter, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{repo: repo, session: session, log: log.Named("auth")}
}

// Login valida el formulario, pide el token a la API y lo guarda en la sesión
// junto con el email ingresado.
func (uc *AuthUseCase) Login(ctx context.Context, in LoginRequest) error {
	email := strings.TrimSpace(in.Email)
	if err := validateCredentials(email, in.Password); err != nil {
		return err
	}
	token, err := uc.repo.Login(ctx, email, in.Password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if err := uc.session.Login(ctx, token, email); err != nil {
		return fmt.Errorf("login: guardar sesión: %w", err)
	}
	return nil
}

// Register valida el formulario (la confirmación debe coincidir) y registra
// la cuenta. No inicia sesión: el operador vuelve a /login.
func (uc *AuthUseCase) Register(ctx context.Context, in RegisterRequest) error {
	email := strings.TrimSpace(in.Email)
	if err := validateCredentials(email, in.Password); err != nil {
		return err
	}
	if in.Password != in.ConfirmPassword {
		return domain.ErrPasswordMismatch
	}
	if err := uc.repo.Register(ctx, email, in.Password); err != nil {
		return fmt.Errorf("registro: %w", err)
	}
	uc.log.Info().Str("email", email).Msg("usuario registrado")
	return nil
}

// Logout cierra la sesión local.
func (uc *AuthUseCase) Logout(ctx context.Context) error {
	return uc.session.Logout(ctx)
}

func validateCredentials(email, password string) error {
	if email == "" {
		return domain.Invalid("email", "El email es obligatorio")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return domain.Invalid("email", "El email no es válido")
	}
	if password == "" {
		return domain.Invalid("password", "La contraseña es obligatoria")
	}
	return nil
}
