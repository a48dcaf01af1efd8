package types

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

type (
	// TokenID identifies a single asset tracked by the ownership ledger.
	TokenID uint64

	// Account is an address in the ledger's account space. The zero
	// address stands for "no account" - no admin, no pending approval,
	// the mint source and the burn target.
	Account = common.Address
)

// NoAccount is the null account value.
var NoAccount Account

func (id TokenID) String() string {
	return fmt.Sprintf("#%d", uint64(id))
}

// IsNone reports whether the account is the null account.
func IsNone(a Account) bool {
	return a == NoAccount
}
