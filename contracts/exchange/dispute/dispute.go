/*
Package dispute implements arbitration of fulfilled requests and crowd task
submissions.

A dispute is admitted only if the filer proves the disputed content with a
preimage matching the stored commitment. Designated arbiters resolve it
once, settling the escrowed funds and adjusting reputation of both sides.
*/
package dispute

import (
	"github.com/metacrowd/exchange-contract/common"
	"github.com/metacrowd/exchange-contract/contracts/exchange/crowd"
	"github.com/metacrowd/exchange-contract/contracts/exchange/escrow"
	"github.com/metacrowd/exchange-contract/contracts/exchange/exchangeconst"
	"github.com/metacrowd/exchange-contract/contracts/exchange/listing"
	"github.com/metacrowd/exchange-contract/contracts/exchange/reputation"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	requestPrefix    = 'd'
	submissionPrefix = 'D'

	// NoIndex is an index of request disputes.
	NoIndex = exchangeconst.NoIndex
)

// Dispute is a claim against a request delivery or a task evaluation.
type Dispute struct {
	// Subject is a request or a task id.
	Subject int
	// Index of the submission, NoIndex for requests.
	Index       int
	Filer       interop.Hash160
	Evidence    []byte
	Description string
	Resolved    bool
	// Result is true if the dispute is resolved in favor of the filer.
	Result bool
}

// Commitment returns commitment of the preimage bound to the public key.
func Commitment(key, preimage []byte) []byte {
	return crypto.Sha256(append(key, preimage...))
}

// FileRequest opens dispute of the fulfilled request by its requester.
func FileRequest(ctx storage.Context, id int, caller interop.Hash160, preimage []byte, description string) {
	r := escrow.Get(ctx, id)
	if !caller.Equals(r.Requester) {
		common.FailWith(common.ErrUnauthorized, "request", id, "caller is not the requester")
	}
	common.CheckWitness(caller)
	if !r.Active {
		common.FailWith(common.ErrInactiveEntity, "request", id, "is settled")
	}
	if !r.Fulfilled {
		common.Fail(common.ErrNotFulfilled, "request", id)
	}
	if r.Disputed {
		common.Fail(common.ErrAlreadyDisputed, "request", id)
	}
	checkCommitment(r.EncryptionKey, preimage, r.Commitment, "request", id)

	r.Disputed = true
	escrow.Put(ctx, r)

	common.SetSerialized(ctx, common.IDKey(requestPrefix, id), Dispute{
		Subject:     id,
		Index:       NoIndex,
		Filer:       caller,
		Evidence:    preimage,
		Description: description,
	})

	runtime.Notify("DisputeFiled", id, NoIndex, caller)
}

// FileSubmission opens dispute of the task submission by its participant.
func FileSubmission(ctx storage.Context, id, index int, caller interop.Hash160, preimage []byte, description string) {
	t := crowd.Get(ctx, id)
	s := crowd.GetSubmission(ctx, id, index)
	if !caller.Equals(s.Participant) {
		common.FailWith(common.ErrUnauthorized, "task", id, "caller is not the participant")
	}
	common.CheckWitness(caller)
	if s.RewardDistributed {
		common.FailWith(common.ErrInactiveEntity, "task", id, "submission is settled")
	}
	if s.Disputed {
		common.Fail(common.ErrAlreadyDisputed, "task", id)
	}
	checkCommitment(taskKey(t), preimage, s.ArtifactHash, "task", id)

	s.Disputed = true
	crowd.PutSubmission(ctx, id, index, s)

	common.SetSerialized(ctx, common.IndexKey(submissionPrefix, id, index), Dispute{
		Subject:     id,
		Index:       index,
		Filer:       caller,
		Evidence:    preimage,
		Description: description,
	})

	runtime.Notify("DisputeFiled", id, index, caller)
}

// ResolveRequest settles disputed request. In favor of the requester the
// escrow is refunded, otherwise the seller is paid as usual.
func ResolveRequest(ctx storage.Context, id int, favor bool) {
	common.CheckArbiterWitness()

	key := common.IDKey(requestPrefix, id)
	d := getOpen(ctx, key, "request", id)

	r := escrow.Get(ctx, id)
	seller := listing.Get(ctx, r.Listing).Owner
	if favor {
		escrow.Refund(ctx, r)
		reputation.Award(ctx, d.Filer, 1)
		reputation.Punish(ctx, seller, 1)
	} else {
		reputation.Punish(ctx, d.Filer, 1)
		escrow.Settle(ctx, r)
	}

	resolve(ctx, key, d, favor)
}

// ResolveSubmission settles disputed task submission. In favor of the
// participant its slot is paid, otherwise it returns to the task owner.
func ResolveSubmission(ctx storage.Context, id, index int, favor bool) {
	common.CheckArbiterWitness()

	key := common.IndexKey(submissionPrefix, id, index)
	d := getOpen(ctx, key, "task", id)

	t := crowd.Get(ctx, id)
	if favor {
		crowd.Settle(ctx, t, index, d.Filer, true)
		reputation.Award(ctx, d.Filer, 1)
		reputation.Punish(ctx, t.Owner, 1)
	} else {
		reputation.Punish(ctx, d.Filer, 1)
		crowd.Settle(ctx, t, index, t.Owner, false)
	}

	resolve(ctx, key, d, favor)
}

// GetRequest returns dispute of the request.
func GetRequest(ctx storage.Context, id int) Dispute {
	return get(ctx, common.IDKey(requestPrefix, id), "request", id)
}

// GetSubmission returns dispute of the task submission.
func GetSubmission(ctx storage.Context, id, index int) Dispute {
	return get(ctx, common.IndexKey(submissionPrefix, id, index), "task", id)
}

func get(ctx storage.Context, key []byte, entity string, id int) Dispute {
	data := common.GetSerialized(ctx, key)
	if data == nil {
		common.FailWith(common.ErrNotFound, entity, id, "has no dispute")
	}

	return data.(Dispute)
}

func getOpen(ctx storage.Context, key []byte, entity string, id int) Dispute {
	d := get(ctx, key, entity, id)
	if d.Resolved {
		common.Fail(common.ErrAlreadyResolved, entity, id)
	}

	return d
}

func resolve(ctx storage.Context, key []byte, d Dispute, favor bool) {
	d.Resolved = true
	d.Result = favor
	common.SetSerialized(ctx, key, d)

	runtime.Notify("DisputeResolved", d.Subject, d.Index, favor)
}

func checkCommitment(key, preimage, commitment []byte, entity string, id int) {
	if len(preimage) == 0 {
		common.FailWith(common.ErrInvalidArgument, entity, id, "preimage is missing")
	}
	if !common.BytesEqual(Commitment(key, preimage), commitment) {
		common.Fail(common.ErrHashMismatch, entity, id)
	}
}

func taskKey(t listing.Listing) []byte {
	if t.Kind == listing.DataTask {
		return t.PublicKey
	}

	return t.TestDataHash
}
