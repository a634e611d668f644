package merklesum

import (
	"math/big"

	"github.com/holiman/uint256"
)

// sumBits is the width, in bits, of the UInt_16 sum field.
const sumBits = 128

// Sum is a checked non-negative 128-bit accumulator, backed by
// holiman/uint256's fixed-width arithmetic. Addition beyond 2^128-1 is
// reported as ErrSumOverflow rather than silently wrapping.
type Sum struct {
	v uint256.Int
}

// ZeroSum is the additive identity.
var ZeroSum = Sum{}

// NewSumFromUint64 builds a Sum from a uint64.
func NewSumFromUint64(v uint64) Sum {
	return Sum{v: *uint256.NewInt(v)}
}

// NewSumFromBig builds a Sum from a big.Int, failing if it is negative or
// does not fit in 128 bits.
func NewSumFromBig(v *big.Int) (Sum, error) {
	if v == nil || v.Sign() < 0 || v.BitLen() > sumBits {
		return Sum{}, ErrSumOverflow
	}
	u, overflow := uint256.FromBig(v)
	if overflow {
		return Sum{}, ErrSumOverflow
	}
	return Sum{v: *u}, nil
}

// Add returns a+b, or ErrSumOverflow if the result no longer fits in
// 128 bits.
func (a Sum) Add(b Sum) (Sum, error) {
	var sum uint256.Int
	sum.Add(&a.v, &b.v)
	if sum.BitLen() > sumBits {
		return Sum{}, ErrSumOverflow
	}
	return Sum{v: sum}, nil
}

// Sub returns a-b. Callers must ensure a >= b; used only by the verifier,
// where that invariant follows from walking a valid proof.
func (a Sum) Sub(b Sum) Sum {
	var diff uint256.Int
	diff.Sub(&a.v, &b.v)
	return Sum{v: diff}
}

// Cmp compares two sums the way big.Int.Cmp does.
func (a Sum) Cmp(b Sum) int {
	return a.v.Cmp(&b.v)
}

// Big returns the sum as a big.Int.
func (a Sum) Big() *big.Int {
	return a.v.ToBig()
}

// Bytes16 serializes the sum as a 16-byte big-endian value.
func (a Sum) Bytes16() [16]byte {
	full := a.v.Bytes32()
	var out [16]byte
	copy(out[:], full[16:])
	return out
}

// SumFromBytes16 parses a 16-byte big-endian value into a Sum.
func SumFromBytes16(b [16]byte) Sum {
	var full [32]byte
	copy(full[16:], b[:])
	var u uint256.Int
	u.SetBytes(full[:])
	return Sum{v: u}
}
