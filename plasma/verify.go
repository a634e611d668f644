package plasma

import (
	"math/big"

	"github.com/0xPolygon/plasma-mst/merklesum"
)

// Bounds is the implicit coin-range window a verified leaf's sum covers:
// [Left, Right).
type Bounds struct {
	Left  *big.Int
	Right *big.Int
}

// CheckInclusionAndGetBounds walks proof from the leaf at index up to root,
// recomputing the parent chain and accumulating the sums to the left and
// right of the path. leafDigest is the keccak256 hash of the transaction
// being verified, computed independently by the caller (it is never
// carried in the proof itself, only the leaf's sum is, per §4.4.2). It
// never returns an error: a malformed or tampered proof simply fails to
// validate and reports false.
//
// The accumulation reassigns leftSum/rightSum on every step rather than
// mutating a shared running total in place, so a failed branch never
// leaves stale partial sums visible to the caller.
func CheckInclusionAndGetBounds(root merklesum.Node, index int, proof Proof, leafCount int, leafDigest [32]byte) (ok bool, bounds Bounds) {
	if len(proof) == 0 || index < 0 || index >= leafCount {
		return false, Bounds{}
	}

	computed := merklesum.Node{Data: leafDigest, Sum: proof[0].Sum}
	leftSum := merklesum.ZeroSum
	rightSum := merklesum.ZeroSum
	idx := index

	for _, sibling := range proof[1:] {
		var err error
		if idx%2 == 0 {
			computed, err = merklesum.Parent(computed, sibling)
			if err != nil {
				return false, Bounds{}
			}
			rightSum, err = rightSum.Add(sibling.Sum)
			if err != nil {
				return false, Bounds{}
			}
		} else {
			computed, err = merklesum.Parent(sibling, computed)
			if err != nil {
				return false, Bounds{}
			}
			leftSum, err = leftSum.Add(sibling.Sum)
			if err != nil {
				return false, Bounds{}
			}
		}
		idx /= 2
	}

	if computed.Data != root.Data || computed.Sum.Cmp(root.Sum) != 0 {
		return false, Bounds{}
	}

	rightBound := computed.Sum.Sub(rightSum)
	return true, Bounds{Left: leftSum.Big(), Right: rightBound.Big()}
}

// CheckInclusion reports whether transfer [start, end) fits inside the
// implicit window a valid proof establishes for the leaf at index.
func CheckInclusion(root merklesum.Node, index int, proof Proof, leafCount int, leafDigest [32]byte, start, end *big.Int) bool {
	ok, bounds := CheckInclusionAndGetBounds(root, index, proof, leafCount, leafDigest)
	if !ok {
		return false
	}
	return bounds.Left.Cmp(start) <= 0 && end.Cmp(bounds.Right) <= 0
}

// CheckNonInclusion reports whether the query range [start, end) is a gap
// covered by the leaf's implicit window but disjoint from that leaf's own
// explicit transfer range [leafStart, leafEnd) — the "coin was never
// claimed" case from §4.4.3.
func CheckNonInclusion(root merklesum.Node, index int, proof Proof, leafCount int, leafDigest [32]byte, leafStart, leafEnd, start, end *big.Int) bool {
	ok, bounds := CheckInclusionAndGetBounds(root, index, proof, leafCount, leafDigest)
	if !ok {
		return false
	}
	if bounds.Left.Cmp(start) > 0 || end.Cmp(bounds.Right) > 0 {
		return false
	}
	// disjoint from [leafStart, leafEnd)
	return end.Cmp(leafStart) <= 0 || start.Cmp(leafEnd) >= 0
}
