package registry

import "github.com/trozler/erc721admin/types"

/*
AdminRecord is the per token admin state owned by the registry. The zero
record (and an absent record) both mean "no admin, no pending approval" -
ownership transfer rules revert to full owner control.

Admin, when set, is always a contract capable account at the moment it is
recorded; Approved holds a one shot delegation granted by the owner and is
cleared whenever the admin slot is written.
*/
type AdminRecord struct {
	_        struct{}      `cbor:",toarray"`
	Admin    types.Account `json:"admin"`
	Approved types.Account `json:"approved"`
}

// HasAdmin reports whether an admin is set.
func (r *AdminRecord) HasAdmin() bool {
	return r != nil && !types.IsNone(r.Admin)
}

// HasApproval reports whether a pending approval is set.
func (r *AdminRecord) HasApproval() bool {
	return r != nil && !types.IsNone(r.Approved)
}

// IsZero reports whether the record carries no state at all, ie whether it
// can be dropped from the store.
func (r *AdminRecord) IsZero() bool {
	return !r.HasAdmin() && !r.HasApproval()
}

func (r *AdminRecord) Copy() *AdminRecord {
	if r == nil {
		return nil
	}
	return &AdminRecord{
		Admin:    r.Admin,
		Approved: r.Approved,
	}
}
