package poatoken

import (
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
)

// ProofOfCustodyLength is the length of a base58-encoded sha2-256 IPFS
// multihash accepted by the contract.
const ProofOfCustodyLength = 46

// ValidateProofOfCustody checks that proof is an IPFS hash the contract
// accepts. It mirrors on-chain validation so that broken proofs are rejected
// before sending a transaction.
func ValidateProofOfCustody(proof string) error {
	if len(proof) != ProofOfCustodyLength {
		return fmt.Errorf("invalid proof length %d", len(proof))
	}
	if proof[:2] != "Qm" {
		return errors.New("proof must start with Qm")
	}
	raw, err := base58.Decode(proof)
	if err != nil {
		return fmt.Errorf("invalid base58: %w", err)
	}
	if len(raw) != 34 || raw[0] != 0x12 || raw[1] != 0x20 {
		return errors.New("proof is not a sha2-256 multihash")
	}
	return nil
}

// NewProofOfCustody encodes a sha2-256 digest as an IPFS hash.
func NewProofOfCustody(digest [32]byte) string {
	return base58.Encode(append([]byte{0x12, 0x20}, digest[:]...))
}
