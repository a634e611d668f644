package plasma

import (
	"math/big"
	"sort"

	"github.com/0xPolygon/plasma-mst/constants"
	"github.com/0xPolygon/plasma-mst/merklesum"
	"github.com/0xPolygon/plasma-mst/transaction"
)

// leafEntry is one flattened (transaction, transfer) pair, sorted by
// start, before sum assignment.
type leafEntry struct {
	start         *big.Int
	end           *big.Int
	tx            *transaction.Tx
	txIndex       int
	transferIndex int
}

// flatten produces one leafEntry per transfer, in input order, per §4.4.1
// step 1: multiple transfers in the same transaction each get their own
// leaf, all sharing that transaction's encoded bytes.
func flatten(txs []*transaction.Tx) ([]leafEntry, error) {
	entries := make([]leafEntry, 0, len(txs))
	for ti, tx := range txs {
		transfers := tx.Decoded().Transfers
		for tri, transfer := range transfers {
			entries = append(entries, leafEntry{
				start:         transfer.Start,
				end:           transfer.End,
				tx:            tx,
				txIndex:       ti,
				transferIndex: tri,
			})
		}
	}
	if len(entries) == 0 {
		return nil, ErrEmptyTree
	}
	return entries, nil
}

// sortAndCheckOverlap stable-sorts entries by start ascending and rejects
// overlapping [start, end) ranges. Because the entries are sorted by
// start, two ranges overlap exactly when one entry's start falls before
// its predecessor's end, so an adjacent-pair scan is sufficient.
func sortAndCheckOverlap(entries []leafEntry) error {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].start.Cmp(entries[j].start) < 0
	})
	for i := 1; i < len(entries); i++ {
		if entries[i].start.Cmp(entries[i-1].end) < 0 {
			return ErrOverlappingRanges
		}
	}
	return nil
}

// assignSums implements §4.4.1 step 3: single-leaf trees get the whole
// coin space, and otherwise each leaf's sum is the gap to its next
// neighbor's start (or, at the edges, the gap to MinCoinID/MaxCoinID).
func assignSums(entries []leafEntry) ([]merklesum.Sum, error) {
	n := len(entries)
	sums := make([]merklesum.Sum, n)

	if n == 1 {
		sum, err := merklesum.NewSumFromBig(constants.MaxCoinID)
		if err != nil {
			return nil, ErrSumOverflow
		}
		sums[0] = sum
		return sums, nil
	}

	for i := 0; i < n; i++ {
		var width *big.Int
		switch {
		case i == 0:
			width = new(big.Int).Sub(entries[1].start, constants.MinCoinID)
		case i == n-1:
			width = new(big.Int).Sub(constants.MaxCoinID, entries[n-1].start)
		default:
			width = new(big.Int).Sub(entries[i+1].start, entries[i].start)
		}
		sum, err := merklesum.NewSumFromBig(width)
		if err != nil {
			return nil, ErrSumOverflow
		}
		sums[i] = sum
	}
	return sums, nil
}

// buildLeafNodes turns sorted, sum-assigned entries into merkle sum tree
// leaves: (keccak256(encoded), sum).
func buildLeafNodes(entries []leafEntry, sums []merklesum.Sum) []merklesum.Node {
	nodes := make([]merklesum.Node, len(entries))
	for i, entry := range entries {
		nodes[i] = merklesum.Node{Data: entry.tx.Hash(), Sum: sums[i]}
	}
	return nodes
}
