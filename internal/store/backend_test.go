package store_test

import (
	"context"
	"testing"

	"github.com/pageza/mixmaster/backend/internal/logger"
	"github.com/pageza/mixmaster/backend/internal/store"
	"github.com/pageza/mixmaster/backend/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseBackend(t *testing.T, backend store.Backend) {
	ctx := testContext(t)

	t.Run("missing key", func(t *testing.T) {
		_, ok, err := backend.Get(ctx, "@mm_nothing")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("put then get", func(t *testing.T) {
		require.NoError(t, backend.Put(ctx, store.KeyFavorites, []byte(`{"gin-001":true}`)))
		raw, ok, err := backend.Get(ctx, store.KeyFavorites)
		require.NoError(t, err)
		require.True(t, ok)
		assert.JSONEq(t, `{"gin-001":true}`, string(raw))
	})

	t.Run("put replaces", func(t *testing.T) {
		require.NoError(t, backend.Put(ctx, store.KeyRecentSearches, []byte(`["gin"]`)))
		require.NoError(t, backend.Put(ctx, store.KeyRecentSearches, []byte(`["rum","gin"]`)))
		raw, ok, err := backend.Get(ctx, store.KeyRecentSearches)
		require.NoError(t, err)
		require.True(t, ok)
		assert.JSONEq(t, `["rum","gin"]`, string(raw))
	})

	t.Run("mirror round trip", func(t *testing.T) {
		first := store.NewMirror(backend, logger.Nop())
		mine := []map[string]any{{"id": "mine-2", "name": "B"}, {"id": "mine-1", "name": "A"}}
		first.Set(store.KeyMine, mine)
		require.NoError(t, first.Close(ctx))

		second := store.NewMirror(backend, logger.Nop())
		defer func() { _ = second.Close(context.Background()) }()
		second.Hydrate(ctx, store.KeyMine)
		require.NoError(t, second.WaitReady(ctx))

		var got []map[string]any
		require.True(t, second.Get(store.KeyMine, &got))
		require.Len(t, got, 2)
		assert.Equal(t, "mine-2", got[0]["id"])
		assert.Equal(t, "mine-1", got[1]["id"])
	})
}

func TestMemoryBackend(t *testing.T) {
	exerciseBackend(t, store.NewMemoryBackend())
}

func TestGormBackendSQLite(t *testing.T) {
	exerciseBackend(t, store.NewGormBackend(testhelpers.SetupSQLite(t)))
}

func TestGormBackendPostgres(t *testing.T) {
	exerciseBackend(t, store.NewGormBackend(testhelpers.SetupPostgres(t)))
}

func TestRedisBackend(t *testing.T) {
	exerciseBackend(t, store.NewRedisBackend(testhelpers.SetupRedis(t), "mixmaster-test:"))
}
