/*
Package listing stores sellable assets, marketplace items and crowd tasks.

All of them share the Listing record, Kind tells which optional fields are
meaningful. Listings are never removed: deactivation is permanent and keeps
the record for settlement and dispute lookups.
*/
package listing

import (
	"github.com/metacrowd/exchange-contract/common"
	"github.com/metacrowd/exchange-contract/contracts/exchange/exchangeconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Listing kinds.
const (
	// Asset is a digital asset, it may pay commission to a parent asset.
	Asset = exchangeconst.KindAsset
	// Item is a marketplace item with an ownership proof.
	Item = exchangeconst.KindItem
	// DataTask is a crowd task collecting data encrypted with the task key.
	DataTask = exchangeconst.KindDataTask
	// ModelTask is a crowd task evaluating models against test data.
	ModelTask = exchangeconst.KindModelTask
)

// MaxCommissionRate is the denominator of commission rates, the rate is
// expressed in basis points.
const MaxCommissionRate = 10_000

const (
	counterKey   = "listingCounter"
	recordPrefix = 'l'
	ownerPrefix  = 'o'
)

type (
	// Listing is a sellable asset, item or crowd task.
	Listing struct {
		ID       int
		Kind     int
		Owner    interop.Hash160
		Price    int
		Active   bool
		Metadata string

		// Parent is an id of the parent asset, 0 if there is none.
		Parent int
		// CommissionRate is a share of child asset price paid to this asset
		// owner, in basis points.
		CommissionRate int

		// Proof of the item ownership.
		Proof []byte

		// PublicKey of the data task, participants encrypt data with it.
		PublicKey []byte
		// TestDataHash of the model task.
		TestDataHash []byte
		// Deadline of the task submissions, milliseconds since epoch.
		Deadline        int
		MaxParticipants int
		MinReputation   int
		// Closed is set once the task is evaluated or its deposit unlocked.
		Closed bool
		// TotalParticipants is a number of task submissions, they are
		// stored separately.
		TotalParticipants int
	}
)

// IsTask checks whether kind is one of crowd task kinds.
func IsTask(kind int) bool {
	return kind == DataTask || kind == ModelTask
}

// NewAsset returns new digital asset listing. Parent is an id of an existing
// asset or 0.
func NewAsset(ctx storage.Context, owner interop.Hash160, price int, metadata string, parent, commissionRate int) Listing {
	checkBase(owner, price)
	if commissionRate < 0 || commissionRate > MaxCommissionRate {
		common.Abort(common.ErrInvalidArgument, "commission rate is out of range")
	}
	if parent != 0 {
		p, ok := Lookup(ctx, parent)
		if !ok {
			common.Fail(common.ErrNotFound, "parent listing", parent)
		}
		if p.Kind != Asset {
			common.FailWith(common.ErrInvalidArgument, "listing", parent, "is not an asset")
		}
	}

	return Listing{
		Kind:           Asset,
		Owner:          owner,
		Price:          price,
		Active:         true,
		Metadata:       metadata,
		Parent:         parent,
		CommissionRate: commissionRate,
		Proof:          []byte{},
		PublicKey:      []byte{},
		TestDataHash:   []byte{},
	}
}

// NewItem returns new marketplace item listing.
func NewItem(owner interop.Hash160, price int, metadata string, proof []byte) Listing {
	checkBase(owner, price)

	return Listing{
		Kind:         Item,
		Owner:        owner,
		Price:        price,
		Active:       true,
		Metadata:     metadata,
		Proof:        common.NonNil(proof),
		PublicKey:    []byte{},
		TestDataHash: []byte{},
	}
}

// NewTask returns new crowd task listing of the kind. Price is a payment per
// accepted submission. Key is a public key of the data task or a test data
// hash of the model task.
func NewTask(kind int, owner interop.Hash160, payment int, metadata string, key []byte,
	deadline, maxParticipants, minReputation int) Listing {
	checkBase(owner, payment)
	if !IsTask(kind) {
		common.Abort(common.ErrInvalidArgument, "unknown task kind")
	}
	if maxParticipants <= 0 {
		common.Abort(common.ErrInvalidArgument, "task must accept at least one participant")
	}
	if maxParticipants > exchangeconst.MaxTaskParticipants {
		common.Abort(common.ErrInvalidArgument, "task accepts at most "+
			std.Itoa10(exchangeconst.MaxTaskParticipants)+" participants")
	}
	if len(key) == 0 {
		common.Abort(common.ErrInvalidArgument, "task key is missing")
	}
	if deadline <= runtime.GetTime() {
		common.Abort(common.ErrDeadlinePassed, "task deadline is in the past")
	}

	l := Listing{
		Kind:            kind,
		Owner:           owner,
		Price:           payment,
		Active:          true,
		Metadata:        metadata,
		Proof:           []byte{},
		PublicKey:       []byte{},
		TestDataHash:    []byte{},
		Deadline:        deadline,
		MaxParticipants: maxParticipants,
		MinReputation:   minReputation,
	}
	if kind == DataTask {
		l.PublicKey = key
	} else {
		l.TestDataHash = key
	}

	return l
}

// Create assigns the next listing id to l, stores it and returns the id.
// It must be witnessed by the listing owner.
func Create(ctx storage.Context, l Listing) int {
	common.CheckWitness(l.Owner)

	l.ID = common.NextID(ctx, counterKey)

	Put(ctx, l)
	storage.Put(ctx, common.OwnerKey(ownerPrefix, l.Owner, l.ID), l.ID)

	runtime.Notify("ListingCreated", l.ID, l.Owner, l.Kind, l.Price)

	return l.ID
}

// Put stores l under its id.
func Put(ctx storage.Context, l Listing) {
	common.SetSerialized(ctx, common.IDKey(recordPrefix, l.ID), l)
}

// Get returns listing by id. It aborts execution with ErrNotFound if there
// is no such listing.
func Get(ctx storage.Context, id int) Listing {
	l, ok := Lookup(ctx, id)
	if !ok {
		common.Fail(common.ErrNotFound, "listing", id)
	}

	return l
}

// Lookup returns listing by id and true, or false if there is no such
// listing.
func Lookup(ctx storage.Context, id int) (Listing, bool) {
	data := common.GetSerialized(ctx, common.IDKey(recordPrefix, id))
	if data == nil {
		return Listing{}, false
	}

	return data.(Listing), true
}

// Deactivate permanently deactivates the listing. Only the owner can do it.
func Deactivate(ctx storage.Context, id int, caller interop.Hash160) {
	l := Get(ctx, id)
	common.CheckOwnerWitness(caller, l.Owner, "listing", id)
	if !l.Active {
		common.Fail(common.ErrAlreadyInactive, "listing", id)
	}

	l.Active = false
	Put(ctx, l)

	runtime.Notify("ListingDeactivated", id)
}

// Reprice changes price of the active asset or item. Task payments are
// pre-funded and can't be changed.
func Reprice(ctx storage.Context, id int, caller interop.Hash160, price int) {
	l := Get(ctx, id)
	common.CheckOwnerWitness(caller, l.Owner, "listing", id)
	if !l.Active {
		common.Fail(common.ErrAlreadyInactive, "listing", id)
	}
	if IsTask(l.Kind) {
		common.FailWith(common.ErrImmutableTerms, "listing", id, "is a pre-funded task")
	}
	common.CheckAmount(price)

	l.Price = price
	Put(ctx, l)

	runtime.Notify("ListingRepriced", id, price)
}

// ListOf returns iterator over ids of the listings created by the owner.
func ListOf(ctx storage.Context, owner interop.Hash160) iterator.Iterator {
	return storage.Find(ctx, append([]byte{ownerPrefix}, owner...), storage.ValuesOnly)
}

func checkBase(owner interop.Hash160, price int) {
	if len(owner) != interop.Hash160Len {
		common.Abort(common.ErrInvalidArgument, "invalid owner address")
	}
	common.CheckAmount(price)
}
