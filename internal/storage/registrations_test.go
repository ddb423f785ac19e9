package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"event-portal/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteKV(t *testing.T) *SQLiteKV {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?cache=shared&mode=rwc", filepath.Join(t.TempDir(), "portal.db"))
	kv, err := OpenSQLite(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })
	return kv
}

func stores(t *testing.T) map[string]KV {
	return map[string]KV{
		"memory": NewMemoryKV(),
		"sqlite": newSQLiteKV(t),
	}
}

func TestRegistrationStore_EmptyList(t *testing.T) {
	for name, kv := range stores(t) {
		t.Run(name, func(t *testing.T) {
			list, err := NewRegistrationStore(kv).List(context.Background())
			require.NoError(t, err)
			assert.NotNil(t, list)
			assert.Empty(t, list)
		})
	}
}

func TestRegistrationStore_AppendPreservesOrder(t *testing.T) {
	for name, kv := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := NewRegistrationStore(kv)

			first := domain.Registration{EventID: 1, StudentName: "Asha", Email: "a@x.com", Tickets: 1}
			second := domain.Registration{EventID: 1, StudentName: "Asha", Email: "a@x.com", Tickets: 1}
			third := domain.Registration{EventID: 2, StudentName: "Ravi", Email: "r@x.com", Tickets: 3}

			require.NoError(t, s.Append(ctx, first))
			require.NoError(t, s.Append(ctx, second))
			require.NoError(t, s.Append(ctx, third))

			list, err := s.List(ctx)
			require.NoError(t, err)
			// resubmissions are kept as separate entries
			assert.Equal(t, []domain.Registration{first, second, third}, list)
		})
	}
}

func TestRegistrationStore_CorruptValue(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	require.NoError(t, kv.Update(ctx, RegistrationsKey, func([]byte) ([]byte, error) {
		return []byte("{not json"), nil
	}))

	s := NewRegistrationStore(kv)

	_, err := s.List(ctx)
	assert.Error(t, err)
	assert.Error(t, s.Append(ctx, domain.Registration{StudentName: "x"}))

	raw, err := kv.Get(ctx, RegistrationsKey)
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(raw))
}

func TestSQLiteKV_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dsn := fmt.Sprintf("file:%s?mode=rwc", filepath.Join(t.TempDir(), "reopen.db"))

	kv, err := OpenSQLite(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, NewRegistrationStore(kv).Append(ctx, domain.Registration{StudentName: "Asha"}))
	require.NoError(t, kv.Close())

	kv, err = OpenSQLite(ctx, dsn)
	require.NoError(t, err)
	defer kv.Close()

	list, err := NewRegistrationStore(kv).List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Asha", list[0].StudentName)
}

func TestKV_GetMissingKey(t *testing.T) {
	for name, kv := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := kv.Get(context.Background(), "missing")
			assert.ErrorIs(t, err, ErrKeyNotFound)
		})
	}
}

func TestKV_UpdateErrorLeavesValue(t *testing.T) {
	for name, kv := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, kv.Update(ctx, "k", func([]byte) ([]byte, error) { return []byte("v1"), nil }))

			err := kv.Update(ctx, "k", func([]byte) ([]byte, error) { return nil, assert.AnError })
			assert.ErrorIs(t, err, assert.AnError)

			v, err := kv.Get(ctx, "k")
			require.NoError(t, err)
			assert.Equal(t, "v1", string(v))
		})
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	kv, err := Open(ctx, DriverMemory, "")
	require.NoError(t, err)
	assert.IsType(t, &MemoryKV{}, kv)
	require.NoError(t, kv.Close())

	kv, err = Open(ctx, DriverSQLite, filepath.Join(t.TempDir(), "open.db"))
	require.NoError(t, err)
	assert.IsType(t, &SQLiteKV{}, kv)
	require.NoError(t, kv.Close())

	_, err = Open(ctx, "postgres", "")
	assert.Error(t, err)
}
