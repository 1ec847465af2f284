package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/habitkeeper/internal/client/kvstore"
	"github.com/dmitrijs2005/habitkeeper/internal/client/models"
	"github.com/dmitrijs2005/habitkeeper/internal/common"
	"github.com/dmitrijs2005/habitkeeper/internal/logging"
	"github.com/stretchr/testify/require"
)

var errStoreDown = errors.New("store down")

// failingStore wraps a MemoryStore and fails the operations named in fail.
type failingStore struct {
	*kvstore.MemoryStore
	fail map[string]bool
}

func newFailingStore(ops ...string) *failingStore {
	f := &failingStore{MemoryStore: kvstore.NewMemoryStore(), fail: map[string]bool{}}
	for _, op := range ops {
		f.fail[op] = true
	}
	return f
}

func (f *failingStore) Get(ctx context.Context, key string) ([]byte, error) {
	if f.fail["get"] {
		return nil, errStoreDown
	}
	return f.MemoryStore.Get(ctx, key)
}

func (f *failingStore) Set(ctx context.Context, key string, value []byte) error {
	if f.fail["set"] || f.fail["set:"+key] {
		return errStoreDown
	}
	return f.MemoryStore.Set(ctx, key, value)
}

func (f *failingStore) Delete(ctx context.Context, key string) error {
	if f.fail["delete"] {
		return errStoreDown
	}
	return f.MemoryStore.Delete(ctx, key)
}

func (f *failingStore) List(ctx context.Context) (map[string][]byte, error) {
	if f.fail["list"] {
		return nil, errStoreDown
	}
	return f.MemoryStore.List(ctx)
}

func (f *failingStore) Replace(ctx context.Context, snapshot map[string][]byte) error {
	if f.fail["replace"] {
		return errStoreDown
	}
	return f.MemoryStore.Replace(ctx, snapshot)
}

func nopLog() logging.Logger { return logging.Nop() }

func getRaw(t *testing.T, s kvstore.Store, key string) string {
	t.Helper()
	v, err := s.Get(context.Background(), key)
	require.NoError(t, err)
	return string(v)
}

func putRaw(t *testing.T, s kvstore.Store, key, value string) {
	t.Helper()
	require.NoError(t, s.Set(context.Background(), key, []byte(value)))
}

func loadUsers(t *testing.T, s kvstore.Store) models.UsersTable {
	t.Helper()
	users, err := models.DecodeUsers([]byte(getRaw(t, s, models.KeyUsers)))
	if !errors.Is(err, common.ErrorDamagedRecord) {
		require.NoError(t, err)
	}
	return users
}
