package common

import "github.com/nspcc-dev/neo-go/pkg/interop"

const zeroHash = "\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00"

// IsValidAddress checks that h is a 20-byte script hash which is not zero.
func IsValidAddress(h interop.Hash160) bool {
	return len(h) == interop.Hash160Len && string(h) != zeroHash
}
