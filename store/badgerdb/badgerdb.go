/*
Package badgerdb persists admin records in a badger key value store, for
registries that outlive the process. Records are stored CBOR encoded
through badgerhold, keyed by token id.
*/
package badgerdb

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/dgraph-io/badger/v4"
	"github.com/timshannon/badgerhold/v4"

	"github.com/trozler/erc721admin/cbor"
	"github.com/trozler/erc721admin/registry"
	"github.com/trozler/erc721admin/types"
)

const adminStoreDir = "admins"

type DB struct {
	store *badgerhold.Store
}

// New opens the store under baseDir. An empty baseDir opens an in memory
// badger instance. The logger may be nil to silence badger.
func New(baseDir string, logger badger.Logger) (*DB, error) {
	var dir string
	if len(baseDir) > 0 {
		dir = filepath.Join(baseDir, adminStoreDir)
	}
	store, err := createDB(dir, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open admin store: %w", err)
	}
	return &DB{store: store}, nil
}

func (db *DB) Get(_ context.Context, tokenID types.TokenID) (*registry.AdminRecord, error) {
	var rec registry.AdminRecord
	if err := db.store.Get(uint64(tokenID), &rec); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (db *DB) Put(_ context.Context, tokenID types.TokenID, rec *registry.AdminRecord) error {
	return db.store.Upsert(uint64(tokenID), rec)
}

func (db *DB) Delete(_ context.Context, tokenID types.TokenID) error {
	err := db.store.Delete(uint64(tokenID), &registry.AdminRecord{})
	if errors.Is(err, badgerhold.ErrNotFound) {
		return nil
	}
	return err
}

func (db *DB) Close() error {
	return db.store.Close()
}

func createDB(dbDir string, logger badger.Logger) (*badgerhold.Store, error) {
	isInMemory := len(dbDir) <= 0

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = logger

	if isInMemory {
		opts.InMemory = true
	}

	return badgerhold.Open(badgerhold.Options{
		Encoder:          cbor.Marshal,
		Decoder:          cbor.Unmarshal,
		SequenceBandwith: 100,
		Options:          opts,
	})
}
