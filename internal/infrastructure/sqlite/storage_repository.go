// Package sqlite implementa el almacenamiento durable por defecto de la consola
// (un archivo SQLite junto al binario) usando GORM.
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain/repository"
)

var _ repository.Storage = (*StorageRepo)(nil)

// storageEntry fila clave/valor.
type storageEntry struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

func (storageEntry) TableName() string { return "console_storage" }

// Open abre (o crea) la base SQLite en path y migra la tabla de almacenamiento.
// path ":memory:" sirve para tests.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite %q: %w", path, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite: %w", err)
	}
	// Una sola conexión: con ":memory:" cada conexión sería una base distinta.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&storageEntry{}); err != nil {
		return nil, fmt.Errorf("migrar console_storage: %w", err)
	}
	return db, nil
}

// StorageRepo implementación de repository.Storage sobre GORM.
type StorageRepo struct {
	db *gorm.DB
}

// NewStorageRepository construye el adaptador.
func NewStorageRepository(db *gorm.DB) *StorageRepo {
	return &StorageRepo{db: db}
}

// Get lee una clave.
func (r *StorageRepo) Get(ctx context.Context, key string) (string, bool, error) {
	var e storageEntry
	err := r.db.WithContext(ctx).Where("key = ?", key).Take(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get storage %q: %w", key, err)
	}
	return e.Value, true, nil
}

// Set inserta o reemplaza una clave.
func (r *StorageRepo) Set(ctx context.Context, key, value string) error {
	e := storageEntry{Key: key, Value: value, UpdatedAt: time.Now()}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&e).Error
	if err != nil {
		return fmt.Errorf("set storage %q: %w", key, err)
	}
	return nil
}

// Delete elimina las claves indicadas; las inexistentes se ignoran.
func (r *StorageRepo) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Where("key IN ?", keys).Delete(&storageEntry{}).Error; err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	return nil
}
