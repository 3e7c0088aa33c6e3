package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"sendsafe/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, StoreDriverSQLite, cfg.StoreDriver)
	assert.Equal(t, services.DefaultTariffs(), cfg.Tariffs())
	assert.Equal(t, "https://wa.me", cfg.HandOffTarget().BaseURL)
}

func TestLoadConfig_FromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("STORE_DRIVER=memory\nINSTANT_PRICE=NGN 7,000\n"), 0o600))
	t.Setenv("HTTP_PORT", "9090")
	t.Cleanup(func() {
		_ = os.Unsetenv("STORE_DRIVER")
		_ = os.Unsetenv("INSTANT_PRICE")
	})

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, StoreDriverMemory, cfg.StoreDriver)
	assert.Equal(t, "NGN 7,000", cfg.Tariffs().Instant.Price)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "cassandra")
		_, err := LoadConfig("")
		assert.ErrorContains(t, err, "cassandra")
	})
	t.Run("bad redis db", func(t *testing.T) {
		t.Setenv("REDIS_DB", "zero")
		_, err := LoadConfig("")
		assert.ErrorContains(t, err, "parse env")
	})
}

func TestNewCompositionRoot_Memory(t *testing.T) {
	t.Setenv("STORE_DRIVER", StoreDriverMemory)
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	root, err := NewCompositionRoot(context.Background(), cfg, discardLogger())
	require.NoError(t, err)
	defer root.Close()

	assert.NotNil(t, root.CreateFlushPendingOrdersCommandHandler())
}

func TestNewCompositionRoot_SQLite(t *testing.T) {
	t.Setenv("STORE_DRIVER", StoreDriverSQLite)
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "orders.db"))
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	root, err := NewCompositionRoot(context.Background(), cfg, discardLogger())
	require.NoError(t, err)
	assert.NoError(t, root.Close())
}
