package verifier

import (
	"context"
	"errors"
	"sync"

	"github.com/trozler/erc721admin/types"
)

// Stock verifiers covering the three possible callback outcomes. Useful
// for tests and as building blocks for real admin endpoints.

// AcceptAll returns a verifier that approves every transfer.
func AcceptAll() Verifier {
	return Func(func(context.Context, types.Account, types.Account, types.Account, types.TokenID) ([4]byte, error) {
		return Marker, nil
	})
}

// DeclineAll returns a verifier that declines every transfer by returning
// a non-marker value.
func DeclineAll() Verifier {
	return Func(func(context.Context, types.Account, types.Account, types.Account, types.TokenID) ([4]byte, error) {
		return [4]byte{}, nil
	})
}

// Fail returns a verifier that fails every verification call with the
// given reason. An empty reason is the "decline without explanation" case
// the registry folds into a generic rejection; any other reason reaches
// the transfer initiator unchanged.
func Fail(reason string) Verifier {
	err := errors.New(reason)
	return Func(func(context.Context, types.Account, types.Account, types.Account, types.TokenID) ([4]byte, error) {
		return [4]byte{}, err
	})
}

// StaticResolver is a Resolver over a fixed, explicitly registered set of
// verifier endpoints. Accounts without a registered endpoint are not
// contract capable.
type StaticResolver struct {
	mu        sync.RWMutex
	endpoints map[types.Account]Verifier
}

func NewStaticResolver() *StaticResolver {
	return &StaticResolver{endpoints: make(map[types.Account]Verifier)}
}

// Register binds the verifier endpoint to the account, replacing any
// previous binding.
func (r *StaticResolver) Register(account types.Account, v Verifier) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.endpoints[account] = v
}

func (r *StaticResolver) Resolve(_ context.Context, account types.Account) (Verifier, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.endpoints[account]
	return v, ok
}
