package merklesum

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func leafWithSum(seed byte, sum uint64) Node {
	var data [32]byte
	data[0] = seed
	return Node{Data: data, Sum: NewSumFromUint64(sum)}
}

func TestNewRejectsEmpty(t *testing.T) {
	t.Parallel()
	_, err := New(nil)
	require.ErrorIs(t, err, ErrEmptyTree)
}

func TestParentSumsAndHashes(t *testing.T) {
	t.Parallel()
	l := leafWithSum(1, 10)
	r := leafWithSum(2, 20)

	p, err := Parent(l, r)
	require.NoError(t, err)
	require.Equal(t, int64(30), p.Sum.Big().Int64())

	// Same children must always produce the same parent digest.
	p2, err := Parent(l, r)
	require.NoError(t, err)
	require.Equal(t, p.Data, p2.Data)

	// Order matters: swapping children changes the digest.
	swapped, err := Parent(r, l)
	require.NoError(t, err)
	require.NotEqual(t, p.Data, swapped.Data)
}

func TestNewSingleLeafRootIsLeaf(t *testing.T) {
	t.Parallel()
	leaf := leafWithSum(1, 42)
	tree, err := New([]Node{leaf})
	require.NoError(t, err)
	require.Equal(t, leaf, tree.Root())
	require.Equal(t, 1, tree.Height())
}

func TestNewEvenLeafCountNoPadding(t *testing.T) {
	t.Parallel()
	leaves := []Node{leafWithSum(1, 10), leafWithSum(2, 20)}
	tree, err := New(leaves)
	require.NoError(t, err)
	require.Equal(t, int64(30), tree.Root().Sum.Big().Int64())
	require.Equal(t, 2, tree.Height())
}

func TestNewOddLeafCountPads(t *testing.T) {
	t.Parallel()
	leaves := []Node{leafWithSum(1, 10), leafWithSum(2, 20), leafWithSum(3, 30)}
	tree, err := New(leaves)
	require.NoError(t, err)
	require.Equal(t, int64(60), tree.Root().Sum.Big().Int64())

	// level 0 should have been padded to 4 entries.
	require.Len(t, tree.Levels()[0], 4)
	require.Equal(t, EmptyLeaf(), tree.Levels()[0][3])
}

func TestSiblingPathOutOfRange(t *testing.T) {
	t.Parallel()
	tree, err := New([]Node{leafWithSum(1, 1)})
	require.NoError(t, err)

	_, err = tree.SiblingPath(-1)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = tree.SiblingPath(1)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestSiblingPathReconstructsRoot(t *testing.T) {
	t.Parallel()
	leaves := []Node{leafWithSum(1, 10), leafWithSum(2, 20), leafWithSum(3, 30)}
	tree, err := New(leaves)
	require.NoError(t, err)

	for i, leaf := range leaves {
		path, err := tree.SiblingPath(i)
		require.NoError(t, err)
		require.Len(t, path, tree.Height()-1)

		computed := leaf
		idx := i
		for _, sibling := range path {
			var err error
			if idx%2 == 0 {
				computed, err = Parent(computed, sibling)
			} else {
				computed, err = Parent(sibling, computed)
			}
			require.NoError(t, err)
			idx /= 2
		}
		require.Equal(t, tree.Root(), computed)
	}
}

func TestSumOverflow(t *testing.T) {
	t.Parallel()
	max := NewSumFromUint64(^uint64(0))
	big128, err := max.Add(max)
	require.NoError(t, err)
	_, err = big128.Add(big128)
	require.NoError(t, err) // still comfortably under 128 bits

	// Push past 2^128-1 explicitly.
	l := Node{Sum: mustMaxSum(t)}
	r := Node{Sum: NewSumFromUint64(1)}
	_, err = Parent(l, r)
	require.ErrorIs(t, err, ErrSumOverflow)
}

func mustMaxSum(t *testing.T) Sum {
	t.Helper()
	twoTo128Minus1 := new(big.Int).Lsh(big.NewInt(1), 128)
	twoTo128Minus1.Sub(twoTo128Minus1, big.NewInt(1))
	s, err := NewSumFromBig(twoTo128Minus1)
	require.NoError(t, err)
	return s
}
