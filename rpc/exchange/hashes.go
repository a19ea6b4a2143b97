package exchange

import (
	"strconv"

	"github.com/nspcc-dev/neo-go/pkg/crypto/hash"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

const (
	requestEscrowSeed = "request"
	taskEscrowSeed    = "task"
)

// EscrowAccount returns escrow account of the request without contract
// invocation. The result equals to EscrowOf method of the contract.
func EscrowAccount(requestID int64) util.Uint160 {
	return hash.Hash160([]byte(requestEscrowSeed + strconv.FormatInt(requestID, 10)))
}

// TaskEscrowAccount returns escrow account of the crowd task without
// contract invocation. The result equals to TaskEscrowOf method of the
// contract.
func TaskEscrowAccount(taskID int64) util.Uint160 {
	return hash.Hash160([]byte(taskEscrowSeed + strconv.FormatInt(taskID, 10)))
}

// Commitment returns commitment of the preimage bound to the public key.
// Sellers attach it on request fulfillment, participants submit it as an
// artifact hash of the data task. The result equals to CommitmentOf method
// of the contract.
func Commitment(key, preimage []byte) []byte {
	data := make([]byte, 0, len(key)+len(preimage))
	data = append(data, key...)
	data = append(data, preimage...)

	return hash.Sha256(data).BytesBE()
}
