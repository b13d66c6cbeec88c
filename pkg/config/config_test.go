package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "https://localhost:7231", cfg.API.BaseURL)
	assert.Equal(t, 0, cfg.API.PageBase)
	assert.Equal(t, StorageSQLite, cfg.Storage.Driver)
	assert.Equal(t, 5, cfg.UI.PageSize)
	assert.Equal(t, 500*time.Millisecond, cfg.UI.SearchDebounce)
	assert.Equal(t, "127.0.0.1:5173", cfg.HTTP.Addr())
}

func TestFromViper_ViteBaseURLFallback(t *testing.T) {
	v := viper.New()
	v.Set("VITE_API_BASE_URL", "https://api.example.test/")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.test", cfg.API.BaseURL, "se elimina la barra final")
}

func TestFromViper_APIBaseURLTienePrioridad(t *testing.T) {
	v := viper.New()
	v.Set("VITE_API_BASE_URL", "https://vite.example.test")
	v.Set("API_BASE_URL", "https://api.example.test")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.test", cfg.API.BaseURL)
}

func TestFromViper_ValoresDesdeStrings(t *testing.T) {
	v := viper.New()
	v.Set("API_PAGE_BASE", "1")
	v.Set("SEARCH_DEBOUNCE_MS", "250")
	v.Set("API_INSECURE_SKIP_VERIFY", "true")
	v.Set("LIST_PAGE_SIZE", "20")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.API.PageBase)
	assert.Equal(t, 250*time.Millisecond, cfg.UI.SearchDebounce)
	assert.True(t, cfg.API.InsecureSkipVerify)
	assert.Equal(t, 20, cfg.UI.PageSize)
}

func TestFromViper_PageBaseInvalido(t *testing.T) {
	v := viper.New()
	v.Set("API_PAGE_BASE", 2)

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestFromViper_PostgresRequiereURL(t *testing.T) {
	v := viper.New()
	v.Set("STORAGE_DRIVER", "postgres")

	_, err := fromViper(v)
	assert.Error(t, err)

	v.Set("STORAGE_DATABASE_URL", "postgres://u:p@localhost:5432/console?sslmode=disable")
	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, StoragePostgres, cfg.Storage.Driver)
}
