// Package transaction implements the fixed-layout transaction schema from
// §4.1/§4.2: canonical encoding, decoding, validation and keccak256 hashing
// of a block of transfers.
package transaction

import (
	"encoding/hex"
	"math/big"

	"github.com/0xPolygon/plasma-mst/codec"
	"github.com/0xPolygon/plasma-mst/common"
	"github.com/0xPolygon/plasma-mst/constants"
	"github.com/iden3/go-iden3-crypto/keccak256"
)

// Transaction bundles a set of transfers under one block number.
type Transaction struct {
	Block     *big.Int
	Transfers []Transfer
}

var blockCodec = codec.NewUintCodec("transaction.block", constants.BlockLength)

func encodeTransfer(t Transfer) ([]byte, error) {
	return t.Encode()
}

func decodeTransfer(b []byte) (Transfer, int, error) {
	return DecodeTransfer(b)
}

var transfersCodec = codec.NewListCodec[Transfer](
	"transaction.transfers", constants.TransferCountLength, encodeTransfer, decodeTransfer,
)

// Validate checks the block field and every transfer.
func (tx Transaction) Validate() error {
	if tx.Block == nil || tx.Block.Sign() < 0 {
		return codec.NewValidationError("transaction.block", codec.KindOutOfRange)
	}
	if len(tx.Transfers) == 0 {
		return codec.NewValidationError("transaction.transfers", codec.KindOutOfRange)
	}
	for _, t := range tx.Transfers {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Encode serializes the transaction: block number followed by the
// length-prefixed transfer list, no separators, no extra framing.
func (tx Transaction) Encode() ([]byte, error) {
	if err := tx.Validate(); err != nil {
		return nil, err
	}
	blockBytes, err := blockCodec.Encode(tx.Block)
	if err != nil {
		return nil, err
	}
	transfersBytes, err := transfersCodec.Encode(tx.Transfers)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(blockBytes)+len(transfersBytes))
	out = append(out, blockBytes...)
	out = append(out, transfersBytes...)
	return out, nil
}

// DecodeTransaction parses a full encoded transaction. Trailing bytes
// beyond the declared transfer count are an error.
func DecodeTransaction(b []byte) (Transaction, error) {
	block, n, err := blockCodec.Decode(b)
	if err != nil {
		return Transaction{}, err
	}
	transfers, n2, err := transfersCodec.Decode(b[n:])
	if err != nil {
		return Transaction{}, err
	}
	if n+n2 != len(b) {
		return Transaction{}, codec.NewDecodeError("transaction", "trailing bytes after transfers")
	}
	return Transaction{Block: block, Transfers: transfers}, nil
}

// Hash returns keccak256(encoded). Callers that hold a hex string must
// strip any 0x prefix before hashing raw bytes; DecodeHex below does this
// for input parsing, but Hash itself always operates on already-decoded
// bytes.
func Hash(encoded []byte) [32]byte {
	var out [32]byte
	copy(out[:], keccak256.Hash(encoded))
	return out
}

// DecodeHex accepts a transaction encoded as hex (with or without a 0x
// prefix) and returns the raw bytes, or nil if s is not valid hex.
func DecodeHex(s string) []byte {
	trimmed := common.TrimHexPrefix(s)
	b, err := hex.DecodeString(trimmed)
	if err != nil {
		return nil
	}
	return b
}

// Tx is the thin schema-bound model from §4.2: it normalizes a decoded
// Transaction (or a hex/byte encoding of one) and exposes the three views
// the rest of the library needs. Because Transaction is a plain static Go
// struct rather than a dynamically-attributed record, the "reserved field
// name" concern in §4.1 has no runtime component here: Encoded/Decoded/Hash
// are Tx methods, not Transaction fields, so there is nothing for a
// transfer named e.g. "Hash" to shadow.
type Tx struct {
	decoded Transaction
	encoded []byte
	hash    [32]byte
}

// NewTx normalizes a decoded Transaction into a Tx, validating and
// encoding it once.
func NewTx(decoded Transaction) (*Tx, error) {
	encoded, err := decoded.Encode()
	if err != nil {
		return nil, err
	}
	return &Tx{decoded: decoded, encoded: encoded, hash: Hash(encoded)}, nil
}

// NewTxFromBytes decodes raw encoded bytes into a Tx; NewTxFromHex takes
// the hex form.
func NewTxFromBytes(raw []byte) (*Tx, error) {
	decoded, err := DecodeTransaction(raw)
	if err != nil {
		return nil, err
	}
	return &Tx{decoded: decoded, encoded: raw, hash: Hash(raw)}, nil
}

// NewTxFromHex decodes a hex string (with or without 0x) into a Tx.
func NewTxFromHex(s string) (*Tx, error) {
	raw := DecodeHex(s)
	if raw == nil {
		return nil, codec.NewDecodeError("transaction", "invalid hex")
	}
	return NewTxFromBytes(raw)
}

// Decoded returns the normalized record.
func (t *Tx) Decoded() Transaction { return t.decoded }

// Encoded returns the canonical byte encoding.
func (t *Tx) Encoded() []byte { return t.encoded }

// Hash returns keccak256(Encoded()).
func (t *Tx) Hash() [32]byte { return t.hash }
