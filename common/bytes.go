package common

import "github.com/nspcc-dev/neo-go/pkg/interop/util"

// BytesEqual compares two slice of bytes by wrapping them into strings,
// which is necessary with new util.Equal interop behaviour, see neo-go#1176.
func BytesEqual(a []byte, b []byte) bool {
	return util.Equals(string(a), string(b))
}

// NonNil returns b or an empty slice if b is nil. Stored byte fields are
// never Null, so `len` on them is always valid.
func NonNil(b []byte) []byte {
	if b == nil {
		return []byte{}
	}

	return b
}
