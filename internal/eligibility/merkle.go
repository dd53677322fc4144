// Package eligibility validates self-claim proofs against the active
// whitelist commitment.
//
// The commitment is the root of a Merkle tree built off-process by the
// whitelist authority. This package fixes the canonical construction both
// sides must use:
//
//   - leaf  = SHA3-256(address bytes)
//   - node  = SHA3-256(lo || hi) where (lo, hi) is the bytewise-ascending
//     ordering of the two children (sort-pair-then-hash)
//
// Sorting the pair before hashing makes sibling order irrelevant in the
// proof path; a tree built with positional ordering will verify as false
// here, silently, so the authority must build with the same rule.
package eligibility

import (
	"bytes"

	"golang.org/x/crypto/sha3"

	"syndicate/pkg/domain"
)

// Leaf computes the leaf digest for a claimant address.
func Leaf(addr domain.Address) domain.Digest {
	return domain.Digest(sha3.Sum256(addr.Bytes()))
}

// combine hashes an ordered pair of nodes.
func combine(a, b domain.Digest) domain.Digest {
	if bytes.Compare(a[:], b[:]) > 0 {
		a, b = b, a
	}
	h := sha3.New256()
	h.Write(a[:])
	h.Write(b[:])
	var out domain.Digest
	h.Sum(out[:0])
	return out
}

// VerifyProof walks the proof path from the claimant's leaf and reports
// whether it reaches root. An empty proof verifies only the single-leaf
// tree whose root is the leaf itself.
func VerifyProof(proof []domain.Digest, claimant domain.Address, root domain.Digest) bool {
	if root.IsZero() {
		return false
	}
	node := Leaf(claimant)
	for _, sibling := range proof {
		node = combine(node, sibling)
	}
	return node == root
}
