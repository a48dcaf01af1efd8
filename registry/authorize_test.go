package registry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/trozler/erc721admin/types"
)

func Test_authorizeAdminChange(t *testing.T) {
	owner := types.Account{0x01}
	admin := types.Account{0x02}
	delegate := types.Account{0x03}
	stranger := types.Account{0x04}

	t.Run("no admin", func(t *testing.T) {
		rec := &AdminRecord{}
		require.NoError(t, authorizeAdminChange(rec, owner, owner))
		require.ErrorIs(t, authorizeAdminChange(rec, owner, stranger), types.ErrUnauthorized)
		// absent record behaves like the zero record
		require.NoError(t, authorizeAdminChange(nil, owner, owner))
	})

	t.Run("no admin with pending approval", func(t *testing.T) {
		rec := &AdminRecord{Approved: delegate}
		require.NoError(t, authorizeAdminChange(rec, owner, owner))
		require.NoError(t, authorizeAdminChange(rec, owner, delegate))
		require.ErrorIs(t, authorizeAdminChange(rec, owner, stranger), types.ErrUnauthorized)
	})

	t.Run("admin set", func(t *testing.T) {
		rec := &AdminRecord{Admin: admin}
		require.NoError(t, authorizeAdminChange(rec, owner, admin))
		require.ErrorIs(t, authorizeAdminChange(rec, owner, owner), types.ErrUnauthorized)
		require.ErrorIs(t, authorizeAdminChange(rec, owner, stranger), types.ErrUnauthorized)
	})

	t.Run("admin set ignores stale approval", func(t *testing.T) {
		// the registry clears the approval when the slot is written; even
		// if one survived it grants nothing while an admin is set
		rec := &AdminRecord{Admin: admin, Approved: delegate}
		require.ErrorIs(t, authorizeAdminChange(rec, owner, delegate), types.ErrUnauthorized)
	})
}
