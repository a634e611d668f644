// Package plasmamst is the library's single-import façade: it re-exports
// the transaction, merklesum and plasma packages behind one entry point,
// the way the teacher's root package wraps its execution layer behind a
// thin Client.
package plasmamst

import (
	"math/big"

	"github.com/0xPolygon/plasma-mst/merklesum"
	"github.com/0xPolygon/plasma-mst/plasma"
	"github.com/0xPolygon/plasma-mst/transaction"
)

// Proof is a re-export of plasma.Proof for callers that only import
// plasmamst.
type Proof = plasma.Proof

// Client wraps a built Plasma Merkle Sum Tree along with the transactions
// it was built from, so a caller only needs one handle to build, prove and
// inspect a block of transfers.
type Client struct {
	tree *plasma.Tree
}

// NewClient builds a Client from a block of transactions, one leaf per
// transfer.
func NewClient(txs []*transaction.Tx) (*Client, error) {
	tree, err := plasma.New(txs)
	if err != nil {
		return nil, err
	}
	return &Client{tree: tree}, nil
}

// Root returns the tree's root node.
func (c *Client) Root() merklesum.Node {
	return c.tree.Root()
}

// LeafCount returns the number of leaves (one per transfer) in the tree.
func (c *Client) LeafCount() int {
	return c.tree.LeafCount()
}

// GetInclusionProof returns the inclusion proof for the leaf at index.
func (c *Client) GetInclusionProof(index int) (Proof, error) {
	return c.tree.GetInclusionProof(index)
}

// LeafDigest returns the keccak256 digest backing the leaf at index.
func (c *Client) LeafDigest(index int) ([32]byte, error) {
	return c.tree.LeafDigest(index)
}

// LeafRange returns the [start, end) coin range the leaf at index claims.
func (c *Client) LeafRange(index int) (start, end *big.Int, err error) {
	return c.tree.LeafRange(index)
}

// LeafTx returns the transaction and transfer index backing the leaf at
// index.
func (c *Client) LeafTx(index int) (tx *transaction.Tx, transferIndex int, err error) {
	return c.tree.LeafTx(index)
}

// CheckInclusion reports whether transfer [start, end) fits inside the
// implicit window a valid proof establishes for the leaf at index.
func CheckInclusion(root merklesum.Node, index int, proof Proof, leafCount int, leafDigest [32]byte, start, end *big.Int) bool {
	return plasma.CheckInclusion(root, index, proof, leafCount, leafDigest, start, end)
}

// CheckNonInclusion reports whether query range [start, end) is a gap
// covered by the leaf's implicit window but disjoint from that leaf's own
// claimed range.
func CheckNonInclusion(root merklesum.Node, index int, proof Proof, leafCount int, leafDigest [32]byte, leafStart, leafEnd, start, end *big.Int) bool {
	return plasma.CheckNonInclusion(root, index, proof, leafCount, leafDigest, leafStart, leafEnd, start, end)
}
