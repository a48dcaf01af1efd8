package registry

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/trozler/erc721admin/types"
	"github.com/trozler/erc721admin/verifier"
)

/*
BeforeTransfer is the hook the asset ledger invokes synchronously before
committing any transfer, mint or burn of the token, with operator being
the account that initiated it. Rules, in order:

  - mint (from is the null account): no gating, admin state is irrelevant
    until first set;
  - otherwise only the owner, or the admin when one is set, may initiate;
    in particular an ordinary spender-approval holder may not;
  - when an admin is set, its verification callback must approve the
    transfer by returning the marker value.

The check is pure - no registry state is written - so a reentrant call
from the verifier back into the registry cannot observe partial state.
Any failure leaves the ledger's ownership record unchanged because the
ledger only commits after the hook returns nil.
*/
func (r *Registry) BeforeTransfer(ctx context.Context, operator, from, to types.Account, tokenID types.TokenID) error {
	if types.IsNone(from) {
		return nil
	}
	rec, err := r.store.Get(ctx, tokenID)
	if err != nil {
		return fmt.Errorf("loading admin record of token %s: %w", tokenID, err)
	}
	if operator != from && !(rec.HasAdmin() && operator == rec.Admin) {
		return fmt.Errorf("transfer of token %s may only be initiated by its owner: %w", tokenID, types.ErrUnauthorized)
	}
	if !rec.HasAdmin() {
		return nil
	}
	v, ok := r.verifiers.Resolve(ctx, rec.Admin)
	if !ok {
		// The admin slot only ever accepts contract capable accounts, so
		// failing to resolve one here means the registry's own invariant
		// is broken. Known gap: an account may lose its contract
		// capability after assignment (self-destruction); that is not
		// re-validated, it is fatal.
		panic(fmt.Sprintf("admin %s of token %s does not resolve to a verifier", rec.Admin, tokenID))
	}
	marker, err := v.VerifyTransfer(ctx, operator, from, to, tokenID)
	if err != nil {
		if err.Error() == "" {
			return fmt.Errorf("admin %s declined transfer of token %s: %w", rec.Admin, tokenID, types.ErrTransferRejected)
		}
		// A failure with a reason is the admin talking to the transfer
		// initiator; surface it unchanged.
		return err
	}
	if marker != verifier.Marker {
		return fmt.Errorf("admin %s declined transfer of token %s: %w", rec.Admin, tokenID, types.ErrTransferRejected)
	}
	log.WithFields(log.Fields{
		"token":    tokenID,
		"operator": operator,
		"admin":    rec.Admin,
	}).Debug("transfer approved by admin")
	return nil
}
