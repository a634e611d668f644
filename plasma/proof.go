package plasma

import (
	"encoding/hex"

	"github.com/0xPolygon/plasma-mst/merklesum"
	"github.com/pkg/errors"
)

// Proof is an inclusion proof: element 0 is a synthetic (0x00...00,
// leafSum) entry carrying the leaf's own sum, elements 1..len(Proof)-1
// are sibling nodes walking up the tree, per §4.4.2.
type Proof []merklesum.Node

// GetInclusionProof returns the inclusion proof for the leaf at index.
func (t *Tree) GetInclusionProof(index int) (Proof, error) {
	if index < 0 || index >= t.inner.LeafCount() {
		return nil, errors.Wrap(ErrIndexOutOfRange, "plasma.Tree.GetInclusionProof")
	}

	leafSum := t.inner.Levels()[0][index].Sum
	proof := make(Proof, 0, t.inner.Height())
	proof = append(proof, merklesum.Node{Sum: leafSum})

	siblings, err := t.inner.SiblingPath(index)
	if err != nil {
		return nil, errors.Wrap(err, "plasma.Tree.GetInclusionProof->SiblingPath")
	}
	proof = append(proof, siblings...)
	return proof, nil
}

// Bytes serializes the proof as the concatenation of each element's
// 48-byte wire form.
func (p Proof) Bytes() []byte {
	out := make([]byte, 0, len(p)*merklesum.SerializedLength)
	for _, elem := range p {
		out = append(out, elem.Serialize()...)
	}
	return out
}

// Hex serializes the proof as a 0x-prefixed hex string, the concatenation
// of each 48-byte element's hex form, per §6.3/§9's "at least one
// transport form" requirement.
func (p Proof) Hex() string {
	return "0x" + hex.EncodeToString(p.Bytes())
}

// ProofFromBytes parses a proof transported as raw concatenated 48-byte
// elements.
func ProofFromBytes(b []byte) (Proof, error) {
	if len(b)%merklesum.SerializedLength != 0 {
		return nil, errors.Wrap(merklesum.ErrMalformedNode, "plasma.ProofFromBytes")
	}
	n := len(b) / merklesum.SerializedLength
	proof := make(Proof, n)
	for i := 0; i < n; i++ {
		elem, err := merklesum.ParseNode(b[i*merklesum.SerializedLength : (i+1)*merklesum.SerializedLength])
		if err != nil {
			return nil, errors.Wrap(err, "plasma.ProofFromBytes->ParseNode")
		}
		proof[i] = elem
	}
	return proof, nil
}

// ProofFromHex parses a proof transported as hex (with or without 0x),
// splitting by character count (96 hex chars per element) as §9 permits.
func ProofFromHex(s string) (Proof, error) {
	trimmed := s
	if len(trimmed) >= 2 && trimmed[0] == '0' && (trimmed[1] == 'x' || trimmed[1] == 'X') {
		trimmed = trimmed[2:]
	}
	b, err := hex.DecodeString(trimmed)
	if err != nil {
		return nil, errors.Wrap(err, "plasma.ProofFromHex")
	}
	return ProofFromBytes(b)
}
