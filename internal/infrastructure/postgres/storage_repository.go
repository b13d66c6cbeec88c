package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain/repository"
)

var _ repository.Storage = (*StorageRepo)(nil)

// Querier subconjunto de pgxpool.Pool / pgx.Tx que usa el repositorio.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const createStorageTable = `
	CREATE TABLE IF NOT EXISTS console_storage (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`

// StorageRepo implementación de repository.Storage sobre PostgreSQL.
type StorageRepo struct {
	q Querier
}

// NewStorageRepository construye el adaptador y crea la tabla si no existe.
func NewStorageRepository(ctx context.Context, q Querier) (*StorageRepo, error) {
	if _, err := q.Exec(ctx, createStorageTable); err != nil {
		return nil, fmt.Errorf("crear tabla console_storage: %w", err)
	}
	return &StorageRepo{q: q}, nil
}

// Get lee una clave.
func (r *StorageRepo) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.q.QueryRow(ctx, `SELECT value FROM console_storage WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get storage %q: %w", key, err)
	}
	return value, true, nil
}

// Set inserta o reemplaza una clave.
func (r *StorageRepo) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO console_storage (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
	if _, err := r.q.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("set storage %q: %w", key, err)
	}
	return nil
}

// Delete elimina las claves indicadas; las inexistentes se ignoran.
func (r *StorageRepo) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM console_storage WHERE key = ANY($1)`, keys); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	return nil
}
