package tokenstore

import (
	"context"
	"database/sql"
	"testing"

	"nivlek-client/internal/app/contracts"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

func newTestStore(t *testing.T) contracts.TokenStore {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store, err := NewSQLiteTokenStore(db, zap.NewNop())
	assert.NoError(t, err)
	return store
}

func TestSQLiteTokenStore(t *testing.T) {
	ctx := context.Background()

	t.Run("SetAndGet", func(t *testing.T) {
		store := newTestStore(t)

		assert.NoError(t, store.Set(ctx, "token", "abc123"))

		value, err := store.Get(ctx, "token")
		assert.NoError(t, err)
		assert.Equal(t, "abc123", value)
	})

	t.Run("GetAbsentKeyReturnsEmpty", func(t *testing.T) {
		store := newTestStore(t)

		value, err := store.Get(ctx, "missing")
		assert.NoError(t, err)
		assert.Equal(t, "", value)
	})

	t.Run("SetOverwrites", func(t *testing.T) {
		store := newTestStore(t)

		assert.NoError(t, store.Set(ctx, "token", "first"))
		assert.NoError(t, store.Set(ctx, "token", "second"))

		value, err := store.Get(ctx, "token")
		assert.NoError(t, err)
		assert.Equal(t, "second", value)
	})

	t.Run("RemoveThenGet", func(t *testing.T) {
		store := newTestStore(t)

		assert.NoError(t, store.Set(ctx, "token", "abc123"))
		assert.NoError(t, store.Remove(ctx, "token"))

		value, err := store.Get(ctx, "token")
		assert.NoError(t, err)
		assert.Equal(t, "", value)
	})

	t.Run("RemoveAbsentKeyIsNoOp", func(t *testing.T) {
		store := newTestStore(t)
		assert.NoError(t, store.Remove(ctx, "never-set"))
	})

	t.Run("KeysAreIndependent", func(t *testing.T) {
		store := newTestStore(t)

		assert.NoError(t, store.Set(ctx, "token", "user-token"))
		assert.NoError(t, store.Set(ctx, "adminToken", "admin-token"))
		assert.NoError(t, store.Remove(ctx, "token"))

		value, err := store.Get(ctx, "adminToken")
		assert.NoError(t, err)
		assert.Equal(t, "admin-token", value)
	})
}
