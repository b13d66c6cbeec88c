// Package session mantiene la sesión del operador: único escritor (Login/Logout),
// lectores de solo lectura (cliente HTTP, guardia de rutas, vistas).
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain/entity"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain/repository"
	"github.com/Jumata96/InventarioInteligenteFrontend/pkg/jwt"
	"github.com/Jumata96/InventarioInteligenteFrontend/pkg/logger"
)

// Claves fijas del almacenamiento durable.
const (
	KeyToken = "token"
	KeyEmail = "email"
)

// Store sesión en memoria reflejada en almacenamiento durable.
type Store struct {
	writeMu sync.Mutex // serializa Login/Logout
	mu      sync.RWMutex
	current entity.Session
	storage repository.Storage
	log     *logger.Logger
}

// Open construye el store y recupera la sesión persistida, si la hay.
func Open(ctx context.Context, storage repository.Storage, log *logger.Logger) (*Store, error) {
	s := &Store{storage: storage, log: log}

	token, _, err := storage.Get(ctx, KeyToken)
	if err != nil {
		return nil, fmt.Errorf("session: leer token: %w", err)
	}
	email, _, err := storage.Get(ctx, KeyEmail)
	if err != nil {
		return nil, fmt.Errorf("session: leer email: %w", err)
	}
	s.current = entity.Session{Token: token, Email: email}
	if s.current.IsAuthenticated() {
		log.Info().Str("email", email).Msg("sesión restaurada")
		// Solo informativo: la sesión sigue activa hasta que la API responda 401.
		if info, err := jwt.Inspect(token); err == nil && info.Expired(time.Now()) {
			log.Warn().Time("exp", info.ExpiresAt).Msg("el token restaurado está vencido")
		}
	}
	return s, nil
}

// Login persiste la sesión y solo entonces la publica; no valida el formato
// del token. Si email viene vacío se intenta tomar del claim del token.
// Si el almacenamiento falla la consola queda sin sesión.
func (s *Store) Login(ctx context.Context, token, email string) error {
	if email == "" {
		if info, err := jwt.Inspect(token); err == nil {
			email = info.Email
		}
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.persist(ctx, token, email); err != nil {
		s.mu.Lock()
		s.current = entity.Session{}
		s.mu.Unlock()
		if derr := s.storage.Delete(ctx, KeyToken, KeyEmail); derr != nil {
			s.log.Error().Err(derr).Msg("no se pudo limpiar el almacenamiento tras el fallo")
		}
		return err
	}

	s.mu.Lock()
	s.current = entity.Session{Token: token, Email: email}
	s.mu.Unlock()
	s.log.Info().Str("email", email).Msg("sesión iniciada")
	return nil
}

func (s *Store) persist(ctx context.Context, token, email string) error {
	if err := s.storage.Set(ctx, KeyToken, token); err != nil {
		return fmt.Errorf("session: guardar token: %w", err)
	}
	if email != "" {
		if err := s.storage.Set(ctx, KeyEmail, email); err != nil {
			return fmt.Errorf("session: guardar email: %w", err)
		}
	} else if err := s.storage.Delete(ctx, KeyEmail); err != nil {
		return fmt.Errorf("session: limpiar email: %w", err)
	}
	return nil
}

// Logout limpia la sesión en memoria y en el almacenamiento durable.
func (s *Store) Logout(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	wasAuthenticated := s.current.IsAuthenticated()
	s.current = entity.Session{}
	s.mu.Unlock()

	if err := s.storage.Delete(ctx, KeyToken, KeyEmail); err != nil {
		return fmt.Errorf("session: limpiar almacenamiento: %w", err)
	}
	if wasAuthenticated {
		s.log.Info().Msg("sesión cerrada")
	}
	return nil
}

// HandleUnauthorized listener de la señal 401 del cliente HTTP.
func (s *Store) HandleUnauthorized() {
	s.log.Warn().Msg("la API respondió 401: se invalida la sesión")
	// La señal llega fuera de cualquier request de la consola.
	if err := s.Logout(context.Background()); err != nil {
		s.log.Error().Err(err).Msg("no se pudo limpiar la sesión")
	}
}

// Snapshot copia de la sesión actual.
func (s *Store) Snapshot() entity.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Token implementa apiclient.TokenSource.
func (s *Store) Token() string { return s.Snapshot().Token }

// Email del operador autenticado.
func (s *Store) Email() string { return s.Snapshot().Email }

// IsAuthenticated hay sesión si hay token.
func (s *Store) IsAuthenticated() bool { return s.Snapshot().IsAuthenticated() }

// ExpiresAt expiración informativa del token (cero si no se puede leer).
func (s *Store) ExpiresAt() time.Time {
	info, err := jwt.Inspect(s.Token())
	if err != nil {
		return time.Time{}
	}
	return info.ExpiresAt
}
