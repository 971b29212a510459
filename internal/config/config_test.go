package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CART_STORE_PATH", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "brands", cfg.Database.DBName)
	assert.Equal(t, "brands", cfg.Database.Schema)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "http://localhost:5000/api", cfg.Catalog.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Catalog.Timeout)
	assert.Equal(t, CartStoreFile, cfg.Cart.Store)
	assert.Equal(t, "fashionhive_cart", cfg.Cart.StorageKey)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://shop.example.com, https://admin.example.com")
	t.Setenv("CATALOG_API_URL", "https://api.example.com/api/")
	t.Setenv("CATALOG_API_TIMEOUT", "3s")
	t.Setenv("CART_STORE", "sqlite")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, []string{"https://shop.example.com", "https://admin.example.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "https://api.example.com/api", cfg.Catalog.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Catalog.Timeout)
	assert.Equal(t, CartStoreSQLite, cfg.Cart.Store)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	t.Setenv("CART_STORE", "localStorage")
	_, err := Load()
	assert.ErrorContains(t, err, "CART_STORE")

	t.Setenv("CART_STORE", "file")
	t.Setenv("CATALOG_API_TIMEOUT", "soon")
	_, err = Load()
	assert.ErrorContains(t, err, "CATALOG_API_TIMEOUT")

	t.Setenv("CATALOG_API_TIMEOUT", "15s")
	t.Setenv("CORS_ALLOWED_ORIGINS", " , ")
	_, err = Load()
	assert.ErrorContains(t, err, "CORS_ALLOWED_ORIGINS")
}
