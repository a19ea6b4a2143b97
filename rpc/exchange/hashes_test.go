package exchange

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEscrowAccount(t *testing.T) {
	require.Equal(t, "bbd22107c3b50dbd5e1ef222fc7cd42f1b510cf5", EscrowAccount(1).StringBE())
	require.NotEqual(t, EscrowAccount(1), TaskEscrowAccount(1))
	require.NotEqual(t, EscrowAccount(1), EscrowAccount(2))
}

func TestCommitment(t *testing.T) {
	key := []byte{0x02, 0x03}
	c := Commitment(key, []byte("secret"))
	require.Equal(t, "f1e28e2150b473723e2a91fe14fba5875a2801ff91e0037a0b17226647263aa9", hex.EncodeToString(c))
	require.Equal(t, []byte{0x02, 0x03}, key)

	require.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		hex.EncodeToString(Commitment(nil, nil)))
}
