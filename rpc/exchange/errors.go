package exchange

import (
	"errors"
	"strings"
)

// Failure kinds of the contract. Every FAULT message of the contract starts
// with one of them.
const (
	KindNotFound              = "NotFound"
	KindUnauthorized          = "Unauthorized"
	KindInactiveEntity        = "InactiveEntity"
	KindAlreadyInactive       = "AlreadyInactive"
	KindCapacityReached       = "CapacityReached"
	KindDeadlinePassed        = "DeadlinePassed"
	KindReputationTooLow      = "ReputationTooLow"
	KindInsufficientFunds     = "InsufficientFunds"
	KindInsufficientAllowance = "InsufficientAllowance"
	KindOverflow              = "Overflow"
	KindResultLengthMismatch  = "ResultLengthMismatch"
	KindAlreadyFulfilled      = "AlreadyFulfilled"
	KindAlreadyDisputed       = "AlreadyDisputed"
	KindAlreadyResolved       = "AlreadyResolved"
	KindHashMismatch          = "HashMismatch"
	KindStillLocked           = "StillLocked"
	KindSelfTrade             = "SelfTrade"
	KindInvalidArgument       = "InvalidArgument"
	KindNotFulfilled          = "NotFulfilled"
	KindDisputePending        = "DisputePending"
	KindAlreadyEvaluated      = "AlreadyEvaluated"
	KindImmutableTerms        = "ImmutableTerms"
)

var kinds = []string{
	KindNotFound, KindUnauthorized, KindInactiveEntity, KindAlreadyInactive,
	KindCapacityReached, KindDeadlinePassed, KindReputationTooLow,
	KindInsufficientFunds, KindInsufficientAllowance, KindOverflow,
	KindResultLengthMismatch, KindAlreadyFulfilled, KindAlreadyDisputed,
	KindAlreadyResolved, KindHashMismatch, KindStillLocked, KindSelfTrade,
	KindInvalidArgument, KindNotFulfilled, KindDisputePending,
	KindAlreadyEvaluated, KindImmutableTerms,
}

// FaultError is a contract failure recognized in a VM fault message.
type FaultError struct {
	// Kind is one of Kind* constants.
	Kind string
	// Message is the contract failure message including the kind prefix,
	// e.g. `NotFound: listing 5`.
	Message string

	cause error
}

func (e *FaultError) Error() string {
	return e.Message
}

func (e *FaultError) Unwrap() error {
	return e.cause
}

// ParseFault looks for contract failure message in err and returns
// *FaultError wrapping err if there is one. Other errors are returned as is.
func ParseFault(err error) error {
	if err == nil {
		return nil
	}

	msg := err.Error()
	for _, kind := range kinds {
		i := strings.Index(msg, kind+": ")
		if i < 0 {
			continue
		}

		text := msg[i:]
		if j := strings.IndexByte(text, '"'); j >= 0 {
			text = text[:j]
		}

		return &FaultError{Kind: kind, Message: text, cause: err}
	}

	return err
}

// IsKind checks whether err is a contract failure of the kind.
func IsKind(err error, kind string) bool {
	var fe *FaultError
	if !errors.As(err, &fe) {
		fe, _ = ParseFault(err).(*FaultError)
	}

	return fe != nil && fe.Kind == kind
}
