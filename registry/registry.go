/*
Package registry implements the admin rights extension over an NFT
ownership ledger. Each token has an admin slot with two states - no admin
(possibly with a pending approval) or admin set - and the registry owns
every transition of that slot plus the transfer gate the ledger consults
before committing a transfer.

The registry never moves tokens itself; it is layered on an external
AssetLedger which remains the ownership and existence authority.
*/
package registry

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/trozler/erc721admin/types"
	"github.com/trozler/erc721admin/verifier"
)

type (
	// AssetLedger is the ownership authority the registry is layered on.
	// OwnerOf fails with types.ErrNotFound for tokens the ledger does not
	// track.
	AssetLedger interface {
		OwnerOf(ctx context.Context, tokenID types.TokenID) (types.Account, error)
		Exists(ctx context.Context, tokenID types.TokenID) (bool, error)
	}

	// Store persists per token admin records. Get returns (nil, nil) for
	// tokens without a record.
	Store interface {
		Get(ctx context.Context, tokenID types.TokenID) (*AdminRecord, error)
		Put(ctx context.Context, tokenID types.TokenID, rec *AdminRecord) error
		Delete(ctx context.Context, tokenID types.TokenID) error
		Close() error
	}

	// EventSink receives the events the registry emits after a committed
	// state change.
	EventSink interface {
		Publish(ctx context.Context, events ...Event) error
	}

	Registry struct {
		ledger    AssetLedger
		store     Store
		verifiers verifier.Resolver
		events    EventSink
	}
)

// New creates the admin registry. The event sink may be nil when no
// observer surface is needed.
func New(ledger AssetLedger, store Store, verifiers verifier.Resolver, events EventSink) *Registry {
	return &Registry{
		ledger:    ledger,
		store:     store,
		verifiers: verifiers,
		events:    events,
	}
}

// Admin returns the admin of the token, or the null account when none is
// set. Fails with types.ErrNotFound when the ledger does not track the
// token.
func (r *Registry) Admin(ctx context.Context, tokenID types.TokenID) (types.Account, error) {
	ok, err := r.ledger.Exists(ctx, tokenID)
	if err != nil {
		return types.NoAccount, fmt.Errorf("checking token %s: %w", tokenID, err)
	}
	if !ok {
		return types.NoAccount, fmt.Errorf("token %s: %w", tokenID, types.ErrNotFound)
	}
	rec, err := r.store.Get(ctx, tokenID)
	if err != nil {
		return types.NoAccount, fmt.Errorf("loading admin record of token %s: %w", tokenID, err)
	}
	if rec == nil {
		return types.NoAccount, nil
	}
	return rec.Admin, nil
}

// Approved returns the pending approval holder of the token, or the null
// account when none is set. Absence of the token is a valid "no approval"
// state, so no existence check is made.
func (r *Registry) Approved(ctx context.Context, tokenID types.TokenID) (types.Account, error) {
	rec, err := r.store.Get(ctx, tokenID)
	if err != nil {
		return types.NoAccount, fmt.Errorf("loading admin record of token %s: %w", tokenID, err)
	}
	if rec == nil {
		return types.NoAccount, nil
	}
	return rec.Approved, nil
}

/*
SetAdmin records newAdmin as the admin of the token and clears any pending
approval. Allowed callers, in precedence order: the current admin
(replacing themselves, newAdmin may be the null account); the owner, only
while no admin is set; the pending approval holder, only while no admin is
set. A non-null newAdmin must be contract capable.
*/
func (r *Registry) SetAdmin(ctx context.Context, caller types.Account, tokenID types.TokenID, newAdmin types.Account) error {
	owner, rec, err := r.load(ctx, tokenID)
	if err != nil {
		return err
	}
	// Candidate validation precedes authorization: a non-contract
	// candidate fails with ErrInvalidAdmin no matter who calls.
	if !types.IsNone(newAdmin) {
		if _, ok := r.verifiers.Resolve(ctx, newAdmin); !ok {
			return fmt.Errorf("account %s does not answer verification calls: %w", newAdmin, types.ErrInvalidAdmin)
		}
	}
	if err := authorizeAdminChange(rec, owner, caller); err != nil {
		return err
	}
	if newAdmin == rec.Admin {
		return fmt.Errorf("token %s: %w", tokenID, types.ErrNoOpAdmin)
	}
	oldAdmin := rec.Admin
	if err := r.writeAdmin(ctx, tokenID, newAdmin); err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"token":    tokenID,
		"oldAdmin": oldAdmin,
		"newAdmin": newAdmin,
	}).Debug("token admin changed")
	r.emit(ctx, &AdminChanged{TokenID: tokenID, OldAdmin: oldAdmin, NewAdmin: newAdmin})
	return nil
}

// ResetAdmin relinquishes admin control of the token back to the owner's
// discretion. Only the current admin may call it - the owner cannot evict
// an admin.
func (r *Registry) ResetAdmin(ctx context.Context, caller types.Account, tokenID types.TokenID) error {
	_, rec, err := r.load(ctx, tokenID)
	if err != nil {
		return err
	}
	if !rec.HasAdmin() || caller != rec.Admin {
		return fmt.Errorf("only the current admin may reset the admin of token %s: %w", tokenID, types.ErrUnauthorized)
	}
	oldAdmin := rec.Admin
	if err := r.writeAdmin(ctx, tokenID, types.NoAccount); err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"token":    tokenID,
		"oldAdmin": oldAdmin,
	}).Debug("token admin reset")
	r.emit(ctx, &AdminChanged{TokenID: tokenID, OldAdmin: oldAdmin, NewAdmin: types.NoAccount})
	return nil
}

/*
Approve grants delegate the one shot right to set the admin of the token
while no admin is set. Only the owner may call it and the grant is freely
overwritten, regardless of the current admin state - the right is
conditional and checked at SetAdmin time, not at grant time.
*/
func (r *Registry) Approve(ctx context.Context, caller types.Account, tokenID types.TokenID, delegate types.Account) error {
	owner, rec, err := r.load(ctx, tokenID)
	if err != nil {
		return err
	}
	if caller != owner {
		return fmt.Errorf("only the owner may approve a delegate for token %s: %w", tokenID, types.ErrUnauthorized)
	}
	rec.Approved = delegate
	if rec.IsZero() {
		err = r.store.Delete(ctx, tokenID)
	} else {
		err = r.store.Put(ctx, tokenID, rec)
	}
	if err != nil {
		return fmt.Errorf("storing admin record of token %s: %w", tokenID, err)
	}
	log.WithFields(log.Fields{
		"token":    tokenID,
		"owner":    owner,
		"delegate": delegate,
	}).Debug("admin approval set")
	r.emit(ctx, &ApprovalSet{TokenID: tokenID, Owner: owner, Delegate: delegate})
	return nil
}

// load resolves the owner (which doubles as the existence check) and the
// admin record of the token. The record is never nil.
func (r *Registry) load(ctx context.Context, tokenID types.TokenID) (types.Account, *AdminRecord, error) {
	owner, err := r.ledger.OwnerOf(ctx, tokenID)
	if err != nil {
		return types.NoAccount, nil, fmt.Errorf("resolving owner of token %s: %w", tokenID, err)
	}
	rec, err := r.store.Get(ctx, tokenID)
	if err != nil {
		return types.NoAccount, nil, fmt.Errorf("loading admin record of token %s: %w", tokenID, err)
	}
	if rec == nil {
		rec = &AdminRecord{}
	}
	return owner, rec, nil
}

// writeAdmin commits the admin slot, clearing any pending approval as a
// side effect. Records with no state left are dropped from the store.
func (r *Registry) writeAdmin(ctx context.Context, tokenID types.TokenID, admin types.Account) error {
	var err error
	if types.IsNone(admin) {
		err = r.store.Delete(ctx, tokenID)
	} else {
		err = r.store.Put(ctx, tokenID, &AdminRecord{Admin: admin})
	}
	if err != nil {
		return fmt.Errorf("storing admin record of token %s: %w", tokenID, err)
	}
	return nil
}

// emit publishes events after a committed state change. Publish failures
// are logged, not returned - the state change already happened and the
// sink is an observer surface.
func (r *Registry) emit(ctx context.Context, events ...Event) {
	if r.events == nil {
		return
	}
	if err := r.events.Publish(ctx, events...); err != nil {
		log.WithError(err).Warn("failed to publish registry events")
	}
}
