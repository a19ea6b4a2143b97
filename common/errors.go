package common

import "github.com/nspcc-dev/neo-go/pkg/interop/native/std"

// Error kinds. Every failure message starts with one of them followed by
// a colon, off-chain clients match on this prefix.
const (
	ErrNotFound              = "NotFound"
	ErrUnauthorized          = "Unauthorized"
	ErrInactiveEntity        = "InactiveEntity"
	ErrAlreadyInactive       = "AlreadyInactive"
	ErrCapacityReached       = "CapacityReached"
	ErrDeadlinePassed        = "DeadlinePassed"
	ErrReputationTooLow      = "ReputationTooLow"
	ErrInsufficientFunds     = "InsufficientFunds"
	ErrInsufficientAllowance = "InsufficientAllowance"
	ErrOverflow              = "Overflow"
	ErrResultLengthMismatch  = "ResultLengthMismatch"
	ErrAlreadyFulfilled      = "AlreadyFulfilled"
	ErrAlreadyDisputed       = "AlreadyDisputed"
	ErrAlreadyResolved       = "AlreadyResolved"
	ErrHashMismatch          = "HashMismatch"
	ErrStillLocked           = "StillLocked"
	ErrSelfTrade             = "SelfTrade"

	ErrInvalidArgument  = "InvalidArgument"
	ErrNotFulfilled     = "NotFulfilled"
	ErrDisputePending   = "DisputePending"
	ErrAlreadyEvaluated = "AlreadyEvaluated"
	ErrImmutableTerms   = "ImmutableTerms"
)

// Fail aborts execution with `<kind>: <entity> <id>` message.
func Fail(kind, entity string, id int) {
	panic(kind + ": " + entity + " " + std.Itoa10(id))
}

// FailWith aborts execution with `<kind>: <entity> <id> <details>` message.
func FailWith(kind, entity string, id int, details string) {
	panic(kind + ": " + entity + " " + std.Itoa10(id) + " " + details)
}

// Abort aborts execution with `<kind>: <msg>` message. Used for failures
// which are not bound to a stored entity.
func Abort(kind, msg string) {
	panic(kind + ": " + msg)
}
