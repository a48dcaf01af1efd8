package registry

import (
	"github.com/trozler/erc721admin/hash"
	"github.com/trozler/erc721admin/types"
)

// Topics the registry publishes on, one per event type.
const (
	TopicAdminChanged = "registry.admin-changed"
	TopicApprovalSet  = "registry.approval-set"
)

type (
	// Event is a state change notification for external observers and
	// indexers. Events are emitted after the change is committed.
	Event interface {
		Topic() string
		// Digest is the deterministic identity of the event, the SHA-256
		// of its CBOR encoding.
		Digest() ([]byte, error)
	}

	// AdminChanged is emitted when the admin slot of a token is written,
	// including resets (NewAdmin is then the null account).
	AdminChanged struct {
		_        struct{}      `cbor:",toarray"`
		TokenID  types.TokenID `json:"tokenId"`
		OldAdmin types.Account `json:"oldAdmin"`
		NewAdmin types.Account `json:"newAdmin"`
	}

	// ApprovalSet is emitted when the owner grants (or overwrites) the
	// pending approval of a token.
	ApprovalSet struct {
		_        struct{}      `cbor:",toarray"`
		TokenID  types.TokenID `json:"tokenId"`
		Owner    types.Account `json:"owner"`
		Delegate types.Account `json:"delegate"`
	}
)

func (e *AdminChanged) Topic() string { return TopicAdminChanged }

func (e *AdminChanged) Digest() ([]byte, error) { return hash.Sum256(e) }

func (e *ApprovalSet) Topic() string { return TopicApprovalSet }

func (e *ApprovalSet) Digest() ([]byte, error) { return hash.Sum256(e) }
