package plasma

import (
	"math/big"
	"testing"

	"github.com/0xPolygon/plasma-mst/constants"
	"github.com/0xPolygon/plasma-mst/transaction"
	"github.com/stretchr/testify/require"
)

const (
	addrA = "0x000000000000000000000000000000000000000a"
	addrB = "0x000000000000000000000000000000000000000b"
)

func transferTx(t *testing.T, block int64, ranges ...[2]int64) *transaction.Tx {
	t.Helper()
	transfers := make([]transaction.Transfer, len(ranges))
	for i, r := range ranges {
		transfers[i] = transaction.Transfer{
			Sender:    addrA,
			Recipient: addrB,
			Token:     big.NewInt(1),
			Start:     big.NewInt(r[0]),
			End:       big.NewInt(r[1]),
		}
	}
	tx, err := transaction.NewTx(transaction.Transaction{Block: big.NewInt(block), Transfers: transfers})
	require.NoError(t, err)
	return tx
}

// Scenario A: a single transfer's leaf claims the whole coin space.
func TestSingleTransferCoversWholeCoinSpace(t *testing.T) {
	t.Parallel()
	tx := transferTx(t, 1, [2]int64{100, 200})
	tree, err := New([]*transaction.Tx{tx})
	require.NoError(t, err)

	require.Equal(t, 0, tree.Root().Sum.Big().Cmp(constants.MaxCoinID))

	proof, err := tree.GetInclusionProof(0)
	require.NoError(t, err)
	require.Len(t, proof, 1)

	digest := tx.Hash()
	ok, bounds := CheckInclusionAndGetBounds(tree.Root(), 0, proof, tree.LeafCount(), digest)
	require.True(t, ok)
	require.Equal(t, 0, bounds.Left.Cmp(constants.MinCoinID))
	require.Equal(t, 0, bounds.Right.Cmp(constants.MaxCoinID))

	require.True(t, CheckInclusion(tree.Root(), 0, proof, tree.LeafCount(), digest, big.NewInt(100), big.NewInt(200)))
}

// Scenario B: three transfers, sums covering the gaps between them.
func TestThreeTransfersGapSums(t *testing.T) {
	t.Parallel()
	txs := []*transaction.Tx{
		transferTx(t, 1, [2]int64{100, 200}),
		transferTx(t, 1, [2]int64{500, 600}),
		transferTx(t, 1, [2]int64{1000, 1100}),
	}
	tree, err := New(txs)
	require.NoError(t, err)
	require.Equal(t, 3, tree.LeafCount())

	for i, tx := range txs {
		proof, err := tree.GetInclusionProof(i)
		require.NoError(t, err)
		digest := tx.Hash()
		ok, bounds := CheckInclusionAndGetBounds(tree.Root(), i, proof, tree.LeafCount(), digest)
		require.True(t, ok, "leaf %d", i)

		switch i {
		case 0:
			require.Equal(t, 0, bounds.Left.Cmp(constants.MinCoinID))
			require.Equal(t, int64(500), bounds.Right.Int64())
		case 1:
			require.Equal(t, int64(500), bounds.Left.Int64())
			require.Equal(t, int64(1000), bounds.Right.Int64())
		case 2:
			require.Equal(t, int64(1000), bounds.Left.Int64())
			require.Equal(t, 0, bounds.Right.Cmp(constants.MaxCoinID))
		}
	}
}

// Scenario C: two non-overlapping transactions; a proof generated for one
// leaf must fail verification when checked against the other leaf's index.
func TestSwappedIndexFailsVerification(t *testing.T) {
	t.Parallel()
	txA := transferTx(t, 1, [2]int64{0, 100})
	txB := transferTx(t, 1, [2]int64{100, 200})
	tree, err := New([]*transaction.Tx{txA, txB})
	require.NoError(t, err)

	proofA, err := tree.GetInclusionProof(0)
	require.NoError(t, err)

	ok, _ := CheckInclusionAndGetBounds(tree.Root(), 1, proofA, tree.LeafCount(), txB.Hash())
	require.False(t, ok)
}

// Scenario D: overlapping transfers within the same block are rejected.
func TestOverlappingTransfersRejected(t *testing.T) {
	t.Parallel()
	tx := transferTx(t, 1, [2]int64{100, 300}, [2]int64{200, 400})
	_, err := New([]*transaction.Tx{tx})
	require.ErrorIs(t, err, ErrOverlappingRanges)
}

// Scenario E: an odd leaf count pads with an empty leaf but proofs for the
// real leaves still verify.
func TestOddLeafCountStillVerifies(t *testing.T) {
	t.Parallel()
	txs := []*transaction.Tx{
		transferTx(t, 1, [2]int64{0, 10}),
		transferTx(t, 1, [2]int64{20, 30}),
		transferTx(t, 1, [2]int64{40, 50}),
	}
	tree, err := New(txs)
	require.NoError(t, err)

	for i, tx := range txs {
		proof, err := tree.GetInclusionProof(i)
		require.NoError(t, err)
		ok, _ := CheckInclusionAndGetBounds(tree.Root(), i, proof, tree.LeafCount(), tx.Hash())
		require.True(t, ok)
	}
}

// Scenario F: flipping a single bit in a proof element must break
// verification.
func TestTamperedProofFailsVerification(t *testing.T) {
	t.Parallel()
	txs := []*transaction.Tx{
		transferTx(t, 1, [2]int64{0, 10}),
		transferTx(t, 1, [2]int64{20, 30}),
	}
	tree, err := New(txs)
	require.NoError(t, err)

	proof, err := tree.GetInclusionProof(0)
	require.NoError(t, err)
	require.True(t, len(proof) >= 2)

	tampered := make(Proof, len(proof))
	copy(tampered, proof)
	tampered[1].Data[0] ^= 0x01

	ok, _ := CheckInclusionAndGetBounds(tree.Root(), 0, tampered, tree.LeafCount(), txs[0].Hash())
	require.False(t, ok)
}

func TestNonInclusionOfUnclaimedGap(t *testing.T) {
	t.Parallel()
	txs := []*transaction.Tx{
		transferTx(t, 1, [2]int64{100, 200}),
		transferTx(t, 1, [2]int64{500, 600}),
	}
	tree, err := New(txs)
	require.NoError(t, err)

	proof, err := tree.GetInclusionProof(0)
	require.NoError(t, err)

	// [200, 500) is inside leaf 0's implicit window [0, 500) and disjoint
	// from its own claimed [100, 200).
	ok := CheckNonInclusion(
		tree.Root(), 0, proof, tree.LeafCount(), txs[0].Hash(),
		big.NewInt(100), big.NewInt(200),
		big.NewInt(200), big.NewInt(500),
	)
	require.True(t, ok)

	// A range overlapping the leaf's own claim is not non-inclusion.
	notOk := CheckNonInclusion(
		tree.Root(), 0, proof, tree.LeafCount(), txs[0].Hash(),
		big.NewInt(100), big.NewInt(200),
		big.NewInt(150), big.NewInt(250),
	)
	require.False(t, notOk)
}

func TestEmptyTreeRejected(t *testing.T) {
	t.Parallel()
	_, err := New(nil)
	require.ErrorIs(t, err, ErrEmptyTree)
}

func TestGetInclusionProofOutOfRange(t *testing.T) {
	t.Parallel()
	tx := transferTx(t, 1, [2]int64{0, 10})
	tree, err := New([]*transaction.Tx{tx})
	require.NoError(t, err)

	_, err = tree.GetInclusionProof(5)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestProofHexRoundTrip(t *testing.T) {
	t.Parallel()
	txs := []*transaction.Tx{
		transferTx(t, 1, [2]int64{0, 10}),
		transferTx(t, 1, [2]int64{20, 30}),
	}
	tree, err := New(txs)
	require.NoError(t, err)

	proof, err := tree.GetInclusionProof(1)
	require.NoError(t, err)

	decoded, err := ProofFromHex(proof.Hex())
	require.NoError(t, err)
	require.Equal(t, proof, decoded)
}
