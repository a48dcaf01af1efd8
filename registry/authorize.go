package registry

import (
	"fmt"

	"github.com/trozler/erc721admin/types"
)

/*
authorizeAdminChange decides whether caller may write the admin slot of a
token, as a pure function of the slot state and the caller. The two states
grant disjoint rights:

	admin set  - only the current admin (replacement or reset)
	no admin   - the owner, or the pending approval holder

Keeping the decision in one place means SetAdmin cannot drift from the
state machine the record encodes.
*/
func authorizeAdminChange(rec *AdminRecord, owner, caller types.Account) error {
	if rec.HasAdmin() {
		if caller != rec.Admin {
			return fmt.Errorf("only the current admin may replace the admin: %w", types.ErrUnauthorized)
		}
		return nil
	}
	if caller == owner {
		return nil
	}
	if rec.HasApproval() && caller == rec.Approved {
		return nil
	}
	return fmt.Errorf("caller %s is neither the owner nor an approved delegate: %w", caller, types.ErrUnauthorized)
}
