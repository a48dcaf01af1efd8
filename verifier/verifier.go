/*
Package verifier defines the call contract between the admin registry and
the admin accounts it gates transfers through. An admin is an account that
can execute code; here that is modelled as a capability: an account is
contract capable iff a Verifier endpoint can be resolved for it.
*/
package verifier

import (
	"context"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	"github.com/trozler/erc721admin/types"
)

// Marker is the four byte value a verifier returns to approve a transfer.
// Any other return value is a decline. Derived from the verification call
// signature, ERC-165 interface id style.
var Marker [4]byte

func init() {
	copy(Marker[:], ethcrypto.Keccak256([]byte("verifyAdminTransfer(address,address,address,uint256)")))
}

type (
	/*
		Verifier is the admin side of the transfer gate. The registry calls
		VerifyTransfer synchronously before the ledger commits a transfer of
		a token the verifier administers; operator is the account that
		initiated the transfer.

		Returning Marker approves the transfer. Any other return value, or a
		failure without a reason (an error whose message is empty), declines
		it. A failure with a reason is propagated to the transfer initiator
		unchanged.
	*/
	Verifier interface {
		VerifyTransfer(ctx context.Context, operator, from, to types.Account, tokenID types.TokenID) ([4]byte, error)
	}

	// Resolver reports whether an account is contract capable, ie whether
	// a Verifier endpoint answers for it. The registry consults it when an
	// admin is assigned and again when the admin is invoked at transfer
	// time.
	Resolver interface {
		Resolve(ctx context.Context, account types.Account) (Verifier, bool)
	}
)

// Func adapts a plain function into a Verifier.
type Func func(ctx context.Context, operator, from, to types.Account, tokenID types.TokenID) ([4]byte, error)

func (f Func) VerifyTransfer(ctx context.Context, operator, from, to types.Account, tokenID types.TokenID) ([4]byte, error) {
	return f(ctx, operator, from, to, tokenID)
}
