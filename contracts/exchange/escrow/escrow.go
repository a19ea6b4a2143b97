/*
Package escrow implements buy requests for assets and marketplace items.

Creating a request locks the listing price on the escrow account of the
request. The escrow account is a script hash nobody holds a key for, so
funds leave it only through Cancel, Release or dispute resolution, each
of them deactivating the request.
*/
package escrow

import (
	"github.com/metacrowd/exchange-contract/common"
	"github.com/metacrowd/exchange-contract/contracts/exchange/listing"
	"github.com/metacrowd/exchange-contract/contracts/exchange/token"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	counterKey      = "requestCounter"
	recordPrefix    = 'q'
	requesterPrefix = 'b'

	escrowSeed = "request"
)

// Request is a buyer claim against an asset or an item listing.
type Request struct {
	ID        int
	Listing   int
	Requester interop.Hash160
	// Amount locked on the escrow account, the listing price at creation.
	Amount int
	Active bool
	// EncryptionKey is a buyer public key the seller encrypts delivery with.
	EncryptionKey []byte

	Fulfilled bool
	// Artifact delivered by the seller, e.g. encrypted access key and link.
	Artifact []byte
	// Commitment to the delivered content, checked by disputes.
	Commitment  []byte
	FulfillTime int
	Disputed    bool
}

// AccountOf returns escrow account of the request id.
func AccountOf(id int) interop.Hash160 {
	return crypto.Ripemd160(crypto.Sha256([]byte(escrowSeed + std.Itoa10(id))))
}

// Create locks the listing price of the requester and returns new request id.
func Create(ctx storage.Context, listingID int, requester interop.Hash160, encryptionKey []byte) int {
	l := listing.Get(ctx, listingID)
	if listing.IsTask(l.Kind) {
		common.FailWith(common.ErrInvalidArgument, "listing", listingID, "is a task")
	}
	if !l.Active {
		common.FailWith(common.ErrInactiveEntity, "listing", listingID, "is inactive")
	}
	if l.Kind == listing.Asset && requester.Equals(l.Owner) {
		common.FailWith(common.ErrSelfTrade, "listing", listingID, "is owned by requester")
	}
	common.CheckWitness(requester)

	id := common.NextID(ctx, counterKey)
	token.Move(ctx, requester, AccountOf(id), l.Price)

	r := Request{
		ID:            id,
		Listing:       listingID,
		Requester:     requester,
		Amount:        l.Price,
		Active:        true,
		EncryptionKey: common.NonNil(encryptionKey),
		Artifact:      []byte{},
		Commitment:    []byte{},
	}
	Put(ctx, r)
	storage.Put(ctx, common.OwnerKey(requesterPrefix, requester, id), id)

	runtime.Notify("RequestCreated", id, requester, l.Price)

	return id
}

// Cancel refunds unfulfilled request to the requester.
func Cancel(ctx storage.Context, id int, caller interop.Hash160) {
	r := Get(ctx, id)
	if !caller.Equals(r.Requester) {
		common.FailWith(common.ErrUnauthorized, "request", id, "caller is not the requester")
	}
	common.CheckWitness(caller)
	checkActive(r)
	if r.Fulfilled {
		common.Fail(common.ErrAlreadyFulfilled, "request", id)
	}

	Refund(ctx, r)

	runtime.Notify("RequestCancelled", id, r.Requester, r.Amount)
}

// Fulfill attaches the listing owner delivery to the request. Funds stay
// locked.
func Fulfill(ctx storage.Context, id int, caller interop.Hash160, artifact, commitment []byte) {
	r := Get(ctx, id)
	l := listing.Get(ctx, r.Listing)
	common.CheckOwnerWitness(caller, l.Owner, "request", id)
	checkActive(r)
	if r.Fulfilled {
		common.Fail(common.ErrAlreadyFulfilled, "request", id)
	}
	if len(artifact) == 0 {
		common.FailWith(common.ErrInvalidArgument, "request", id, "artifact is missing")
	}

	r.Fulfilled = true
	r.Artifact = artifact
	r.Commitment = common.NonNil(commitment)
	r.FulfillTime = runtime.GetTime()
	Put(ctx, r)

	runtime.Notify("RequestFulfilled", id, caller, r.FulfillTime)
}

// Release pays the escrowed amount to the listing owner. The requester may
// release at any moment, the listing owner only after lockDuration passed
// since fulfillment.
func Release(ctx storage.Context, id int, caller interop.Hash160, lockDuration int) {
	r := Get(ctx, id)
	checkActive(r)
	if r.Disputed {
		common.Fail(common.ErrDisputePending, "request", id)
	}

	l := listing.Get(ctx, r.Listing)
	switch {
	case caller.Equals(r.Requester):
	case caller.Equals(l.Owner):
		if !r.Fulfilled {
			common.FailWith(common.ErrUnauthorized, "request", id, "is not fulfilled")
		}
		if runtime.GetTime() < r.FulfillTime+lockDuration {
			common.FailWith(common.ErrUnauthorized, "request", id, "is still locked")
		}
	default:
		common.FailWith(common.ErrUnauthorized, "request", id, "caller is neither requester nor owner")
	}
	common.CheckWitness(caller)

	Settle(ctx, r)
}

// Settle pays escrowed amount of the active request to the listing owner
// minus commission of the parent asset and deactivates the request.
func Settle(ctx storage.Context, r Request) {
	l := listing.Get(ctx, r.Listing)
	escrow := AccountOf(r.ID)

	fee := 0
	if l.Parent != 0 {
		parent, ok := listing.Lookup(ctx, l.Parent)
		if ok {
			fee = Commission(r.Amount, parent.CommissionRate)
			token.Move(ctx, escrow, parent.Owner, fee)
		}
	}

	payout := r.Amount - fee
	token.Move(ctx, escrow, l.Owner, payout)

	r.Active = false
	Put(ctx, r)

	runtime.Notify("PaymentReleased", r.ID, l.Owner, payout, fee)
}

// Refund returns escrowed amount of the active request to the requester and
// deactivates the request.
func Refund(ctx storage.Context, r Request) {
	token.Move(ctx, AccountOf(r.ID), r.Requester, r.Amount)

	r.Active = false
	Put(ctx, r)

	runtime.Notify("RequestRefunded", r.ID, r.Requester, r.Amount)
}

// Commission returns fee paid to the parent asset owner from the amount.
// Fee is truncated, so rounding always favors the seller.
func Commission(amount, rate int) int {
	return common.SafeMul(amount, rate) / listing.MaxCommissionRate
}

// Put stores the request.
func Put(ctx storage.Context, r Request) {
	common.SetSerialized(ctx, common.IDKey(recordPrefix, r.ID), r)
}

// Get returns request by id. It aborts execution with ErrNotFound if there
// is no such request.
func Get(ctx storage.Context, id int) Request {
	data := common.GetSerialized(ctx, common.IDKey(recordPrefix, id))
	if data == nil {
		common.Fail(common.ErrNotFound, "request", id)
	}

	return data.(Request)
}

// ListOf returns iterator over ids of the requests created by the requester.
func ListOf(ctx storage.Context, requester interop.Hash160) iterator.Iterator {
	return storage.Find(ctx, append([]byte{requesterPrefix}, requester...), storage.ValuesOnly)
}

func checkActive(r Request) {
	if !r.Active {
		common.FailWith(common.ErrInactiveEntity, "request", r.ID, "is inactive")
	}
}
