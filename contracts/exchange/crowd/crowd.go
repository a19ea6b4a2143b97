/*
Package crowd implements crowd tasks: data collection and model evaluation.

A task pre-funds payment for every participant slot on its escrow account.
Accepted submissions are paid on evaluation. Data task submissions which
were not accepted stay locked until UnlockDeposit, so participants may
dispute the evaluation meanwhile. Model tasks settle everything on
evaluation.

Submissions are stored one per key, the task listing keeps their number
only.
*/
package crowd

import (
	"github.com/metacrowd/exchange-contract/common"
	"github.com/metacrowd/exchange-contract/contracts/exchange/listing"
	"github.com/metacrowd/exchange-contract/contracts/exchange/reputation"
	"github.com/metacrowd/exchange-contract/contracts/exchange/token"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	escrowSeed       = "task"
	submissionPrefix = 'p'
)

// Submission is a single participant contribution to the crowd task.
type Submission struct {
	Participant       interop.Hash160
	ArtifactHash      []byte
	RewardDistributed bool
	Disputed          bool
}

// AccountOf returns escrow account of the task id.
func AccountOf(id int) interop.Hash160 {
	return crypto.Ripemd160(crypto.Sha256([]byte(escrowSeed + std.Itoa10(id))))
}

// Init stores the task listing and locks payment for all of its slots.
func Init(ctx storage.Context, t listing.Listing) int {
	deposit := common.SafeMul(t.Price, t.MaxParticipants)
	id := listing.Create(ctx, t)
	token.Move(ctx, t.Owner, AccountOf(id), deposit)

	runtime.Notify("TaskCreated", id, t.Owner, deposit, t.Deadline)

	return id
}

// Get returns task listing by id. It aborts execution if the listing is
// not a task.
func Get(ctx storage.Context, id int) listing.Listing {
	t := listing.Get(ctx, id)
	if !listing.IsTask(t.Kind) {
		common.FailWith(common.ErrInvalidArgument, "listing", id, "is not a task")
	}

	return t
}

// Submit adds participant submission to the task and returns its index.
func Submit(ctx storage.Context, id int, participant interop.Hash160, artifactHash []byte) int {
	t := Get(ctx, id)
	common.CheckWitness(participant)
	if !t.Active || t.Closed {
		common.FailWith(common.ErrInactiveEntity, "task", id, "is inactive")
	}
	if t.TotalParticipants >= t.MaxParticipants {
		common.Fail(common.ErrCapacityReached, "task", id)
	}
	if runtime.GetTime() > t.Deadline {
		common.Fail(common.ErrDeadlinePassed, "task", id)
	}
	if reputation.Get(ctx, participant) < t.MinReputation {
		common.FailWith(common.ErrReputationTooLow, "task", id,
			"requires reputation "+std.Itoa10(t.MinReputation))
	}
	if len(artifactHash) == 0 {
		common.FailWith(common.ErrInvalidArgument, "task", id, "artifact hash is missing")
	}

	index := t.TotalParticipants
	PutSubmission(ctx, id, index, Submission{
		Participant:  participant,
		ArtifactHash: artifactHash,
	})

	t.TotalParticipants = index + 1
	listing.Put(ctx, t)

	runtime.Notify("SubmissionAdded", id, index, participant)

	return index
}

// Evaluate pays every accepted submission and returns the deposit of empty
// slots to the owner. Rejected model task submissions are returned to the
// owner too. Submissions under dispute are left to the arbiter. Task is
// closed after evaluation.
func Evaluate(ctx storage.Context, id int, caller interop.Hash160, results []bool) {
	t := Get(ctx, id)
	common.CheckOwnerWitness(caller, t.Owner, "task", id)
	if t.Closed {
		common.Fail(common.ErrAlreadyEvaluated, "task", id)
	}
	if len(results) != t.TotalParticipants {
		common.FailWith(common.ErrResultLengthMismatch, "task", id,
			"expects "+std.Itoa10(t.TotalParticipants)+" results")
	}

	var (
		escrow   = AccountOf(id)
		rewarded = 0
		refund   = common.SafeMul(t.Price, t.MaxParticipants-t.TotalParticipants)
	)

	for i := 0; i < t.TotalParticipants; i++ {
		s := GetSubmission(ctx, id, i)
		if s.RewardDistributed || s.Disputed {
			continue
		}

		if results[i] {
			token.Move(ctx, escrow, s.Participant, t.Price)
			reputation.Award(ctx, s.Participant, 1)
			rewarded++

			runtime.Notify("SubmissionSettled", id, i, s.Participant, t.Price, true)
		} else if t.Kind == listing.ModelTask {
			refund = common.SafeAdd(refund, t.Price)
		} else {
			continue
		}

		s.RewardDistributed = true
		PutSubmission(ctx, id, i, s)
	}

	token.Move(ctx, escrow, t.Owner, refund)

	t.Closed = true
	t.Active = false
	listing.Put(ctx, t)

	runtime.Notify("TaskEvaluated", id, rewarded, refund)
}

// UnlockDeposit returns every payment still locked for undisputed
// submissions and empty slots to the owner once lockDuration passed since
// the task deadline.
func UnlockDeposit(ctx storage.Context, id int, caller interop.Hash160, lockDuration int) {
	t := Get(ctx, id)
	common.CheckOwnerWitness(caller, t.Owner, "task", id)
	if runtime.GetTime() < t.Deadline+lockDuration {
		common.Fail(common.ErrStillLocked, "task", id)
	}

	var (
		refund   = 0
		released = false
	)

	if !t.Closed {
		refund = common.SafeMul(t.Price, t.MaxParticipants-t.TotalParticipants)
		released = true
	}

	for i := 0; i < t.TotalParticipants; i++ {
		s := GetSubmission(ctx, id, i)
		if s.RewardDistributed || s.Disputed {
			continue
		}

		refund = common.SafeAdd(refund, t.Price)
		released = true

		s.RewardDistributed = true
		PutSubmission(ctx, id, i, s)
	}

	if !released {
		common.FailWith(common.ErrAlreadyInactive, "task", id, "has no locked deposit")
	}

	token.Move(ctx, AccountOf(id), t.Owner, refund)

	t.Closed = true
	t.Active = false
	listing.Put(ctx, t)

	runtime.Notify("DepositUnlocked", id, refund)
}

// GetSubmission returns index-th submission of the task.
func GetSubmission(ctx storage.Context, id, index int) Submission {
	data := common.GetSerialized(ctx, common.IndexKey(submissionPrefix, id, index))
	if data == nil {
		common.FailWith(common.ErrNotFound, "task", id, "submission "+std.Itoa10(index))
	}

	return data.(Submission)
}

// PutSubmission stores index-th submission of the task.
func PutSubmission(ctx storage.Context, id, index int, s Submission) {
	common.SetSerialized(ctx, common.IndexKey(submissionPrefix, id, index), s)
}

// Settle marks index-th submission of the task as settled and pays its slot
// from the escrow to the recipient. Rewarded tells whether the recipient is
// the participant.
func Settle(ctx storage.Context, t listing.Listing, index int, recipient interop.Hash160, rewarded bool) {
	s := GetSubmission(ctx, t.ID, index)

	token.Move(ctx, AccountOf(t.ID), recipient, t.Price)

	s.RewardDistributed = true
	PutSubmission(ctx, t.ID, index, s)

	runtime.Notify("SubmissionSettled", t.ID, index, recipient, t.Price, rewarded)
}
