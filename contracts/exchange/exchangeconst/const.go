// Package exchangeconst contains exchange contract constants shared with
// off-chain clients.
package exchangeconst

const (
	// RequestLockDurationKey is a config key of the period (milliseconds)
	// after request fulfillment when only the requester may release payment.
	RequestLockDurationKey = "RequestLockDuration"
	// TaskLockDurationKey is a config key of the period (milliseconds) after
	// the task deadline when the task deposit stays locked.
	TaskLockDurationKey = "TaskLockDuration"

	// DefaultRequestLockDuration is 30 days.
	DefaultRequestLockDuration = 30 * 24 * 60 * 60 * 1000
	// DefaultTaskLockDuration is 5 minutes.
	DefaultTaskLockDuration = 5 * 60 * 1000
)

// Listing kinds, see listing package of the contract.
const (
	KindAsset     = 1
	KindItem      = 2
	KindDataTask  = 3
	KindModelTask = 4
)

// MaxTaskParticipants limits participant slots of a crowd task. Evaluation
// takes a result per submission in a single invocation.
const MaxTaskParticipants = 1000

// NoIndex is a submission index of request disputes.
const NoIndex = -1
