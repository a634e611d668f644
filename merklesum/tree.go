// Package merklesum implements the generic Merkle sum tree from §4.3: a
// balanced binary tree built bottom-up from a leaf vector, combining
// siblings by concatenating their serialized (digest, sum) forms, hashing,
// and summing. It knows nothing about transactions or coin ranges; that
// specialization lives in the plasma package.
package merklesum

import "github.com/pkg/errors"

// Tree is an immutable, in-memory Merkle sum tree. Once built it is only
// read; there is no mutation API, matching §5's immutable-after-construction
// model.
type Tree struct {
	levels    [][]Node
	leafCount int
}

// New builds a tree bottom-up from leaves. It fails with ErrEmptyTree if
// leaves is empty, or ErrSumOverflow if any parent sum would exceed 128
// bits. Odd-length levels are padded on the right with EmptyLeaf(), and
// that padding is retained in the level it was added to so Levels() and
// SiblingPath() see the same rows the build used.
func New(leaves []Node) (*Tree, error) {
	if len(leaves) == 0 {
		return nil, errors.Wrap(ErrEmptyTree, "merklesum.New")
	}

	level := append([]Node{}, leaves...)
	levels := [][]Node{level}

	for len(level) > 1 {
		if len(level)%2 == 1 {
			level = append(level, EmptyLeaf())
			levels[len(levels)-1] = level
		}
		next := make([]Node, len(level)/2)
		for i := range next {
			parent, err := Parent(level[2*i], level[2*i+1])
			if err != nil {
				return nil, errors.Wrap(err, "merklesum.New->Parent")
			}
			next[i] = parent
		}
		levels = append(levels, next)
		level = next
	}

	return &Tree{levels: levels, leafCount: len(leaves)}, nil
}

// Root returns the sole node at the top level.
func (t *Tree) Root() Node {
	return t.levels[len(t.levels)-1][0]
}

// Levels returns the built level rows, leaves first, root last. Callers
// must not mutate the returned slices.
func (t *Tree) Levels() [][]Node {
	return t.levels
}

// LeafCount returns the number of leaves the tree was built with, before
// any padding.
func (t *Tree) LeafCount() int {
	return t.leafCount
}

// Height returns the number of levels, leaves through root inclusive.
func (t *Tree) Height() int {
	return len(t.levels)
}

// SiblingPath returns, for the leaf at index, the sibling encountered at
// each level while walking from the leaf up to (but not including) the
// root: len(path) == Height()-1.
func (t *Tree) SiblingPath(index int) ([]Node, error) {
	if index < 0 || index >= t.leafCount {
		return nil, errors.Wrap(ErrIndexOutOfRange, "merklesum.Tree.SiblingPath")
	}

	path := make([]Node, 0, len(t.levels)-1)
	idx := index
	for level := 0; level < len(t.levels)-1; level++ {
		siblingIdx := idx ^ 1
		row := t.levels[level]
		sibling := EmptyLeaf()
		if siblingIdx < len(row) {
			sibling = row[siblingIdx]
		}
		path = append(path, sibling)
		idx /= 2
	}
	return path, nil
}
