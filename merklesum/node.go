package merklesum

import (
	"golang.org/x/crypto/sha3"
)

// DigestLength is the wire width, in bytes, of a node's digest.
const DigestLength = 32

// SerializedLength is the wire width of an encoded Node: digest || sum.
const SerializedLength = DigestLength + 16

// Node pairs a 32-byte digest with a UInt_16 sum, per §3.
type Node struct {
	Data [32]byte
	Sum  Sum
}

// EmptyLeaf is the (0x00...00, 0) node used to pad odd-sized levels.
func EmptyLeaf() Node {
	return Node{Data: [32]byte{}, Sum: ZeroSum}
}

// Serialize returns data || big_endian(sum, 16), 48 bytes.
func (n Node) Serialize() []byte {
	out := make([]byte, 0, SerializedLength)
	out = append(out, n.Data[:]...)
	sumBytes := n.Sum.Bytes16()
	out = append(out, sumBytes[:]...)
	return out
}

// ParseNode parses a 48-byte element into a Node: the first 32 bytes are
// the digest, the last 16 the sum.
func ParseNode(b []byte) (Node, error) {
	if len(b) != SerializedLength {
		return Node{}, ErrMalformedNode
	}
	var n Node
	copy(n.Data[:], b[:DigestLength])
	var sumBytes [16]byte
	copy(sumBytes[:], b[DigestLength:])
	n.Sum = SumFromBytes16(sumBytes)
	return n, nil
}

// Parent combines two sibling nodes: the digest hashes the concatenation
// of their serialized forms, and the sum is the checked sum of their sums.
func Parent(l, r Node) (Node, error) {
	sum, err := l.Sum.Add(r.Sum)
	if err != nil {
		return Node{}, ErrSumOverflow
	}
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(l.Serialize())
	hasher.Write(r.Serialize())
	var data [32]byte
	copy(data[:], hasher.Sum(nil))
	return Node{Data: data, Sum: sum}, nil
}
