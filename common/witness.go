package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

// CheckWitness checks witness of the passed identity. It aborts execution
// with ErrUnauthorized message on fail.
func CheckWitness(identity interop.Hash160) {
	if !runtime.CheckWitness(identity) {
		Abort(ErrUnauthorized, "witness check failed for "+std.Base58Encode(identity))
	}
}

// CheckOwnerWitness checks that caller is the owner of the entity and
// that caller has witnessed the invocation. It aborts execution with
// ErrUnauthorized message naming the entity otherwise.
func CheckOwnerWitness(caller, owner interop.Hash160, entity string, id int) {
	if !caller.Equals(owner) {
		FailWith(ErrUnauthorized, entity, id, "caller is not the owner")
	}
	CheckWitness(caller)
}

// CheckCommitteeWitness aborts execution if the invocation is not
// witnessed by the committee.
func CheckCommitteeWitness() {
	if !runtime.CheckWitness(CommitteeAddress()) {
		Abort(ErrUnauthorized, "committee witness check failed")
	}
}
