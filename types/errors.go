package types

import "errors"

// Failure kinds of the admin registry. Operations wrap these with call
// specific context, callers match with errors.Is. A failure raised by the
// admin's verification callback with a non-empty reason is never wrapped
// into one of these - it is surfaced unchanged.
var (
	// ErrNotFound - the operation references a token the ledger does not track.
	ErrNotFound = errors.New("token does not exist")

	// ErrUnauthorized - the caller lacks the role required for the attempted
	// state transition.
	ErrUnauthorized = errors.New("caller is not authorized")

	// ErrInvalidAdmin - the admin candidate is neither the null account nor
	// a contract capable account.
	ErrInvalidAdmin = errors.New("admin must be a contract account")

	// ErrNoOpAdmin - the admin candidate equals the current admin.
	ErrNoOpAdmin = errors.New("new admin equals the current admin")

	// ErrTransferRejected - the admin's verification callback declined the
	// transfer.
	ErrTransferRejected = errors.New("transfer rejected by token admin")
)
