package badgerdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/trozler/erc721admin/registry"
	"github.com/trozler/erc721admin/types"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	// empty base dir opens an in memory badger instance
	db, err := New("", nil)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, db.Close()) })
	return db
}

func Test_BadgerDB(t *testing.T) {
	ctx := context.Background()

	t.Run("absent record", func(t *testing.T) {
		db := newTestDB(t)
		rec, err := db.Get(ctx, 1)
		require.NoError(t, err)
		require.Nil(t, rec)
	})

	t.Run("put get delete", func(t *testing.T) {
		db := newTestDB(t)
		rec := &registry.AdminRecord{Admin: types.Account{0x01}, Approved: types.Account{0x02}}
		require.NoError(t, db.Put(ctx, 7, rec))

		got, err := db.Get(ctx, 7)
		require.NoError(t, err)
		require.Equal(t, rec, got)

		require.NoError(t, db.Delete(ctx, 7))
		got, err = db.Get(ctx, 7)
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("upsert overwrites", func(t *testing.T) {
		db := newTestDB(t)
		require.NoError(t, db.Put(ctx, 7, &registry.AdminRecord{Admin: types.Account{0x01}}))
		require.NoError(t, db.Put(ctx, 7, &registry.AdminRecord{Admin: types.Account{0x02}}))

		got, err := db.Get(ctx, 7)
		require.NoError(t, err)
		require.Equal(t, types.Account{0x02}, got.Admin)
	})

	t.Run("delete of absent record is a no-op", func(t *testing.T) {
		db := newTestDB(t)
		require.NoError(t, db.Delete(ctx, 404))
	})

	t.Run("persists across reopen", func(t *testing.T) {
		dir := t.TempDir()
		db, err := New(dir, nil)
		require.NoError(t, err)
		require.NoError(t, db.Put(ctx, 7, &registry.AdminRecord{Admin: types.Account{0x01}}))
		require.NoError(t, db.Close())

		db, err = New(dir, nil)
		require.NoError(t, err)
		defer func() { require.NoError(t, db.Close()) }()

		got, err := db.Get(ctx, 7)
		require.NoError(t, err)
		require.Equal(t, types.Account{0x01}, got.Admin)
	})
}
