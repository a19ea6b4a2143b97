package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/ledger"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/neo"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/roles"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

// Arbiters returns public keys designated for the Oracle role at the
// persisting block. Holders of these keys resolve disputes.
func Arbiters() []interop.PublicKey {
	return roles.GetDesignatedByRole(roles.Oracle, uint32(ledger.CurrentIndex()+1))
}

// IsArbiter checks whether key is one of Arbiters.
func IsArbiter(key interop.PublicKey) bool {
	list := Arbiters()
	for i := range list {
		if BytesEqual(list[i], key) {
			return true
		}
	}

	return false
}

// CheckArbiterWitness aborts execution with ErrUnauthorized message unless
// the invocation is witnessed by one of Arbiters.
func CheckArbiterWitness() {
	list := Arbiters()
	for i := range list {
		if runtime.CheckWitness(list[i]) {
			return
		}
	}

	Abort(ErrUnauthorized, "arbiter witness check failed")
}

// CommitteeAddress returns multi address of the committee public keys.
func CommitteeAddress() []byte {
	return Multiaddress(neo.GetCommittee(), true)
}

// Multiaddress returns default multi signature account address for N keys.
// If committee set to true, then it is `M = N/2+1` committee account.
func Multiaddress(n []interop.PublicKey, committee bool) []byte {
	threshold := len(n)*2/3 + 1
	if committee {
		threshold = len(n)/2 + 1
	}

	return contract.CreateMultisigAccount(threshold, n)
}
