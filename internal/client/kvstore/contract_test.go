package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runStoreContract exercises the behaviour every backend must share.
func runStoreContract(t *testing.T, newStore func(t *testing.T) Store) {
	ctx := context.Background()

	t.Run("get absent returns nil nil", func(t *testing.T) {
		s := newStore(t)
		v, err := s.Get(ctx, "absent")
		require.NoError(t, err)
		require.Nil(t, v)
	})

	t.Run("set then get", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "currentUser", []byte("a@x.com")))
		v, err := s.Get(ctx, "currentUser")
		require.NoError(t, err)
		require.Equal(t, "a@x.com", string(v))
	})

	t.Run("set upserts", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "wren_a@x.com", []byte("3")))
		require.NoError(t, s.Set(ctx, "wren_a@x.com", []byte("4")))
		v, err := s.Get(ctx, "wren_a@x.com")
		require.NoError(t, err)
		require.Equal(t, "4", string(v))
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "x", []byte("1")))
		require.NoError(t, s.Delete(ctx, "x"))
		v, err := s.Get(ctx, "x")
		require.NoError(t, err)
		require.Nil(t, v)
		require.NoError(t, s.Delete(ctx, "x"))
	})

	t.Run("list and clear", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "a", []byte("1")))
		require.NoError(t, s.Set(ctx, "b", []byte(`{"k":"v"}`)))

		m, err := s.List(ctx)
		require.NoError(t, err)
		assert.Len(t, m, 2)
		assert.Equal(t, "1", string(m["a"]))
		assert.Equal(t, `{"k":"v"}`, string(m["b"]))

		require.NoError(t, s.Clear(ctx))
		m, err = s.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, m)
	})

	t.Run("replace swaps the whole snapshot", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "old", []byte("gone")))

		require.NoError(t, s.Replace(ctx, map[string][]byte{
			"users":       []byte("{}"),
			"currentUser": []byte("a@x.com"),
		}))

		m, err := s.List(ctx)
		require.NoError(t, err)
		assert.Len(t, m, 2)
		assert.NotContains(t, m, "old")
		assert.Equal(t, "a@x.com", string(m["currentUser"]))
	})
}
