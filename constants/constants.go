// Package constants holds the compile-time, protocol-fixed values shared by
// the transaction schema and the plasma merkle sum tree. There is no
// runtime configuration for these: they must agree bit-exactly with the
// rest of the protocol.
package constants

import "math/big"

const (
	// BlockLength is the wire width, in bytes, of a block number field.
	BlockLength = 4
	// TokenLength is the wire width, in bytes, of a token id field.
	TokenLength = 4
	// CoinIDLength is the wire width, in bytes, of a transfer's start/end
	// coin id field (UInt_12, 96 bits).
	CoinIDLength = 12
	// SumLength is the wire width, in bytes, of a merkle sum tree node's
	// sum field (UInt_16, 128 bits).
	SumLength = 16
	// DigestLength is the wire width, in bytes, of a merkle tree node digest.
	DigestLength = 32
	// TransferCountLength is the wire width, in bytes, of the transfer
	// count prefix on an encoded transaction.
	TransferCountLength = 4
)

// MinCoinID is the lower (inclusive) bound of the coin ID space.
var MinCoinID = big.NewInt(0)

// MaxCoinID is the upper bound of the coin ID space: the largest value
// representable in a transfer's UInt_12 start/end field, i.e. 2^96 - 1.
// This is narrower than the UInt_16 sum field width (SumLength) because a
// coin id and a merkle sum node's sum are different fields: the sum field
// holds the width of a gap between coin ids (up to the entire coin space),
// which is never itself encoded as a coin id. Implementations consuming this
// library elsewhere in the protocol must agree with this value bit-exactly.
var MaxCoinID = func() *big.Int {
	max := new(big.Int).Lsh(big.NewInt(1), CoinIDLength*8) //nolint:gomnd
	return max.Sub(max, big.NewInt(1))
}()
