package kv_test

import (
	"context"
	"path/filepath"
	"testing"

	"sendsafe/internal/adapters/out/kv"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// StoreTestSuite runs the same contract against every surface.
type StoreTestSuite struct {
	suite.Suite
	open  func(t *testing.T) kv.Store
	store kv.Store
}

func (s *StoreTestSuite) SetupTest() {
	s.store = s.open(s.T())
}

func (s *StoreTestSuite) TestGetMissingKey() {
	value, found, err := s.store.Get(context.Background(), "missing")

	s.Require().NoError(err)
	s.False(found)
	s.Nil(value)
}

func (s *StoreTestSuite) TestPutThenGet() {
	ctx := context.Background()

	s.Require().NoError(s.store.Put(ctx, "sendsafe_orders", []byte(`[]`)))
	value, found, err := s.store.Get(ctx, "sendsafe_orders")

	s.Require().NoError(err)
	s.True(found)
	s.Equal(`[]`, string(value))
}

func (s *StoreTestSuite) TestPutOverwrites() {
	ctx := context.Background()

	s.Require().NoError(s.store.Put(ctx, "k", []byte("first")))
	s.Require().NoError(s.store.Put(ctx, "k", []byte("second")))
	value, _, err := s.store.Get(ctx, "k")

	s.Require().NoError(err)
	s.Equal("second", string(value))
}

func TestMemoryStore(t *testing.T) {
	suite.Run(t, &StoreTestSuite{open: func(*testing.T) kv.Store { return kv.NewMemoryStore() }})
}

func TestSQLiteStore(t *testing.T) {
	suite.Run(t, &StoreTestSuite{open: func(t *testing.T) kv.Store {
		store, err := kv.OpenSQLite(filepath.Join(t.TempDir(), "orders.db"))
		require.NoError(t, err)
		t.Cleanup(func() { _ = store.Close() })
		return store
	}})
}

func TestRedisStore(t *testing.T) {
	suite.Run(t, &StoreTestSuite{open: func(t *testing.T) kv.Store {
		srv := miniredis.RunT(t)
		store, err := kv.OpenRedis(context.Background(), srv.Addr(), "", 0)
		require.NoError(t, err)
		t.Cleanup(func() { _ = store.Close() })
		return store
	}})
}

func TestOpenSQLite_BlankPath(t *testing.T) {
	_, err := kv.OpenSQLite("  ")
	assert.Error(t, err)
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.db")
	ctx := context.Background()

	first, err := kv.OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, first.Put(ctx, "k", []byte("v")))
	require.NoError(t, first.Close())

	second, err := kv.OpenSQLite(path)
	require.NoError(t, err)
	defer second.Close()

	value, found, err := second.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v", string(value))
}

func TestOpenRedis_Unreachable(t *testing.T) {
	srv := miniredis.RunT(t)
	addr := srv.Addr()
	srv.Close()

	_, err := kv.OpenRedis(context.Background(), addr, "", 0)
	assert.Error(t, err)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	value := []byte("abc")
	require.NoError(t, store.Put(ctx, "k", value))
	value[0] = 'x'

	got, _, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}
