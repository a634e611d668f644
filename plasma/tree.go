// Package plasma implements the Plasma Merkle Sum Tree (PMST) from §4.4:
// leaf construction from range-bearing transactions, inclusion proof
// generation, and inclusion/non-inclusion verification binding a
// transfer's [start, end) range to an implicit sub-interval of the coin
// space.
package plasma

import (
	"math/big"

	"github.com/0xPolygon/plasma-mst/merklesum"
	"github.com/0xPolygon/plasma-mst/transaction"
	"github.com/pkg/errors"
)

// Tree is an immutable Plasma Merkle Sum Tree. It specializes
// merklesum.Tree with the domain-specific leaf parser and proof format
// from §4.4.
type Tree struct {
	inner   *merklesum.Tree
	entries []leafEntry
}

// New flattens txs into one leaf per transfer, sorts by start, assigns
// sums per §4.4.1, and builds the underlying sum tree. It fails with
// ErrEmptyTree, ErrOverlappingRanges or ErrSumOverflow.
func New(txs []*transaction.Tx) (*Tree, error) {
	entries, err := flatten(txs)
	if err != nil {
		return nil, errors.Wrap(err, "plasma.New->flatten")
	}
	if err := sortAndCheckOverlap(entries); err != nil {
		return nil, errors.Wrap(err, "plasma.New->sortAndCheckOverlap")
	}
	sums, err := assignSums(entries)
	if err != nil {
		return nil, errors.Wrap(err, "plasma.New->assignSums")
	}
	nodes := buildLeafNodes(entries, sums)

	inner, err := merklesum.New(nodes)
	if err != nil {
		return nil, errors.Wrap(mapMerkleSumErr(err), "plasma.New->merklesum.New")
	}
	return &Tree{inner: inner, entries: entries}, nil
}

func mapMerkleSumErr(err error) error {
	switch {
	case errors.Is(err, merklesum.ErrEmptyTree):
		return ErrEmptyTree
	case errors.Is(err, merklesum.ErrSumOverflow):
		return ErrSumOverflow
	default:
		return err
	}
}

// Root returns the tree's root node.
func (t *Tree) Root() merklesum.Node {
	return t.inner.Root()
}

// LeafCount returns the number of leaves (one per transfer).
func (t *Tree) LeafCount() int {
	return t.inner.LeafCount()
}

// LeafTx returns the transaction and transfer index backing the leaf at
// index, so a caller can drive GetInclusionProof/CheckInclusion for it.
func (t *Tree) LeafTx(index int) (tx *transaction.Tx, transferIndex int, err error) {
	if index < 0 || index >= len(t.entries) {
		return nil, 0, errors.Wrap(ErrIndexOutOfRange, "plasma.Tree.LeafTx")
	}
	e := t.entries[index]
	return e.tx, e.transferIndex, nil
}

// LeafDigest returns the keccak256 digest backing the leaf at index: the
// leafDigest value CheckInclusionAndGetBounds expects for that index.
func (t *Tree) LeafDigest(index int) ([32]byte, error) {
	tx, _, err := t.LeafTx(index)
	if err != nil {
		return [32]byte{}, err
	}
	return tx.Hash(), nil
}

// LeafRange returns the [start, end) coin range the leaf at index actually
// claims, as opposed to the wider implicit window CheckInclusionAndGetBounds
// reports; used to drive CheckNonInclusion.
func (t *Tree) LeafRange(index int) (start, end *big.Int, err error) {
	if index < 0 || index >= len(t.entries) {
		return nil, nil, errors.Wrap(ErrIndexOutOfRange, "plasma.Tree.LeafRange")
	}
	e := t.entries[index]
	return e.start, e.end, nil
}
