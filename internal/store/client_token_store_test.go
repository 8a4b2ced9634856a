package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/beichen-observer/internal/config"
	"github.com/MKhiriev/beichen-observer/internal/logger"
)

func newTestTokenStore(t *testing.T) (TokenStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock := newTestDB(t)
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS kv`).WillReturnResult(sqlmock.NewResult(0, 0))

	store, err := NewSQLiteTokenStore(context.Background(), db)
	require.NoError(t, err)
	return store, mock
}

func TestSQLiteTokenStore_Get(t *testing.T) {
	store, mock := newTestTokenStore(t)

	mock.ExpectQuery(`SELECT value FROM kv WHERE key = \?`).
		WithArgs(TokenKey).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("jwt-1"))

	token, ok, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "jwt-1", token)
}

func TestSQLiteTokenStore_GetAbsent(t *testing.T) {
	store, mock := newTestTokenStore(t)

	mock.ExpectQuery(`SELECT value FROM kv`).
		WithArgs(TokenKey).
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	token, ok, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, token)
}

func TestSQLiteTokenStore_SetAndClear(t *testing.T) {
	store, mock := newTestTokenStore(t)

	mock.ExpectExec(`INSERT INTO kv \(key, value\) VALUES \(\?, \?\)`).
		WithArgs(TokenKey, "jwt-2").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`DELETE FROM kv WHERE key = \?`).
		WithArgs(TokenKey).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Set(context.Background(), "jwt-2"))
	require.NoError(t, store.Clear(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteTokenStore_IsPresentSwallowsErrors(t *testing.T) {
	store, mock := newTestTokenStore(t)

	mock.ExpectQuery(`SELECT value FROM kv`).WillReturnError(errors.New("disk I/O error"))

	assert.False(t, store.IsPresent(context.Background()))
}

func TestMemoryTokenStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryTokenStore()

	assert.False(t, store.IsPresent(ctx))

	require.NoError(t, store.Set(ctx, "jwt-3"))
	token, ok, err := store.Get(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "jwt-3", token)

	require.NoError(t, store.Clear(ctx))
	assert.False(t, store.IsPresent(ctx))
}

func TestNewClientStorages_SQLiteFile(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "nested", "client.db")

	storages, err := NewClientStorages(ctx, config.ClientStorage{TokenDSN: dsn}, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	require.NoError(t, storages.TokenStore.Set(ctx, "jwt-4"))
	require.NoError(t, storages.TokenStore.Set(ctx, "jwt-5"))

	token, ok, err := storages.TokenStore.Get(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "jwt-5", token)
	assert.FileExists(t, dsn)
}

func TestNewClientStorages_Memory(t *testing.T) {
	storages, err := NewClientStorages(context.Background(), config.ClientStorage{TokenDSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	assert.NoError(t, storages.Close())
	assert.False(t, storages.TokenStore.IsPresent(context.Background()))
}
