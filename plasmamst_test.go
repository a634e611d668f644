package plasmamst

import (
	"math/big"
	"testing"

	"github.com/0xPolygon/plasma-mst/transaction"
	"github.com/stretchr/testify/require"
)

func TestClientBuildAndVerify(t *testing.T) {
	transfer := transaction.Transfer{
		Sender:    "0x000000000000000000000000000000000000000a",
		Recipient: "0x000000000000000000000000000000000000000b",
		Token:     big.NewInt(1),
		Start:     big.NewInt(10),
		End:       big.NewInt(20),
	}
	tx, err := transaction.NewTx(transaction.Transaction{Block: big.NewInt(1), Transfers: []transaction.Transfer{transfer}})
	require.NoError(t, err)

	client, err := NewClient([]*transaction.Tx{tx})
	require.NoError(t, err)
	require.Equal(t, 1, client.LeafCount())

	proof, err := client.GetInclusionProof(0)
	require.NoError(t, err)
	digest, err := client.LeafDigest(0)
	require.NoError(t, err)

	require.True(t, CheckInclusion(client.Root(), 0, proof, client.LeafCount(), digest, big.NewInt(10), big.NewInt(20)))
}
