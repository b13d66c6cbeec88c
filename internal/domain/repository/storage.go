package repository

import "context"

// Storage almacenamiento durable clave/valor de la consola.
// Get devuelve ("", false, nil) si la clave no existe.
type Storage interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}
