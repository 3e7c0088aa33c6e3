package postgres_test

import (
	"testing"

	"sendsafe/internal/adapters/out/postgres"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	dsn := postgres.DSN("db", "5432", "sendsafe", "secret", "orders", "disable")

	assert.Equal(t, "host=db port=5432 user=sendsafe password=secret dbname=orders sslmode=disable", dsn)
}

func TestOpen_UnreachableServer(t *testing.T) {
	dsn := postgres.DSN("127.0.0.1", "1", "sendsafe", "secret", "orders", "disable") + " connect_timeout=2"

	db, err := postgres.Open(dsn)

	require.ErrorContains(t, err, "verify postgres connection")
	assert.Nil(t, db)
}
