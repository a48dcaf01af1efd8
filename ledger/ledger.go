/*
Package ledger provides an in memory reference implementation of the
ownership ledger the admin registry is layered on. The real ledger is an
external system; this one exists to exercise the transfer gate end to end
and to back tests. It keeps only the owner map - enumeration, metadata and
balances are out of scope.
*/
package ledger

import (
	"context"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/trozler/erc721admin/types"
)

// TransferGate is consulted synchronously before any mint, transfer or
// burn commits. A nil return commits the change; any failure aborts it
// with the ownership record unchanged. The admin registry implements it.
type TransferGate interface {
	BeforeTransfer(ctx context.Context, operator, from, to types.Account, tokenID types.TokenID) error
}

// Ledger is a minimal ownership ledger for the one-call-at-a-time
// execution model of the registry: callers serialize operations
// themselves. The internal lock guards the owner map only - it is not
// held across the transfer gate call, so the gate may re-enter reads,
// and concurrent writers of the same token are not detected.
type Ledger struct {
	mu     sync.RWMutex
	owners map[types.TokenID]types.Account
	gate   TransferGate
}

func New() *Ledger {
	return &Ledger{owners: make(map[types.TokenID]types.Account)}
}

// SetGate installs the transfer gate. Wiring is two step because the gate
// (the registry) needs the ledger at construction time.
func (l *Ledger) SetGate(g TransferGate) {
	l.gate = g
}

func (l *Ledger) OwnerOf(_ context.Context, tokenID types.TokenID) (types.Account, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	owner, ok := l.owners[tokenID]
	if !ok {
		return types.NoAccount, fmt.Errorf("token %s: %w", tokenID, types.ErrNotFound)
	}
	return owner, nil
}

func (l *Ledger) Exists(_ context.Context, tokenID types.TokenID) (bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.owners[tokenID]
	return ok, nil
}

// Mint records to as the owner of a new token. Minting bypasses admin
// gating by construction (the gate passes when from is the null account).
func (l *Ledger) Mint(ctx context.Context, to types.Account, tokenID types.TokenID) error {
	if types.IsNone(to) {
		return fmt.Errorf("cannot mint token %s to the null account", tokenID)
	}
	l.mu.RLock()
	_, exists := l.owners[tokenID]
	l.mu.RUnlock()
	if exists {
		return fmt.Errorf("token %s is already minted", tokenID)
	}
	if err := l.notify(ctx, to, types.NoAccount, to, tokenID); err != nil {
		return err
	}
	l.commit(tokenID, to)
	log.WithFields(log.Fields{"token": tokenID, "to": to}).Debug("token minted")
	return nil
}

// Transfer moves the token to a new owner, caller being the initiating
// account. The gate decides whether the caller may initiate and whether
// the token's admin, if any, approves.
func (l *Ledger) Transfer(ctx context.Context, caller, to types.Account, tokenID types.TokenID) error {
	if types.IsNone(to) {
		return fmt.Errorf("cannot transfer token %s to the null account, use Burn", tokenID)
	}
	from, err := l.OwnerOf(ctx, tokenID)
	if err != nil {
		return err
	}
	if err := l.notify(ctx, caller, from, to, tokenID); err != nil {
		return err
	}
	l.commit(tokenID, to)
	log.WithFields(log.Fields{"token": tokenID, "from": from, "to": to}).Debug("token transferred")
	return nil
}

// Burn removes the token from the ledger. Burns are gated like transfers;
// the admin record, if any, is left behind as inert garbage - token ids
// are never reused.
func (l *Ledger) Burn(ctx context.Context, caller types.Account, tokenID types.TokenID) error {
	from, err := l.OwnerOf(ctx, tokenID)
	if err != nil {
		return err
	}
	if err := l.notify(ctx, caller, from, types.NoAccount, tokenID); err != nil {
		return err
	}
	l.mu.Lock()
	delete(l.owners, tokenID)
	l.mu.Unlock()
	log.WithFields(log.Fields{"token": tokenID, "from": from}).Debug("token burned")
	return nil
}

func (l *Ledger) notify(ctx context.Context, operator, from, to types.Account, tokenID types.TokenID) error {
	if l.gate == nil {
		return nil
	}
	return l.gate.BeforeTransfer(ctx, operator, from, to, tokenID)
}

func (l *Ledger) commit(tokenID types.TokenID, owner types.Account) {
	l.mu.Lock()
	l.owners[tokenID] = owner
	l.mu.Unlock()
}
