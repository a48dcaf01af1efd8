/*
Package memorydb provides an in memory admin record store, the default
choice for tests and for deployments where the surrounding ledger handles
durability itself.
*/
package memorydb

import (
	"context"
	"sync"

	"github.com/trozler/erc721admin/registry"
	"github.com/trozler/erc721admin/types"
)

type DB struct {
	mu      sync.RWMutex
	records map[types.TokenID]*registry.AdminRecord
}

func New() *DB {
	return &DB{records: make(map[types.TokenID]*registry.AdminRecord)}
}

func (db *DB) Get(_ context.Context, tokenID types.TokenID) (*registry.AdminRecord, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	// copies on both sides, callers must not share record pointers with
	// the store
	return db.records[tokenID].Copy(), nil
}

func (db *DB) Put(_ context.Context, tokenID types.TokenID, rec *registry.AdminRecord) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.records[tokenID] = rec.Copy()
	return nil
}

func (db *DB) Delete(_ context.Context, tokenID types.TokenID) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	delete(db.records, tokenID)
	return nil
}

func (db *DB) Close() error {
	return nil
}
