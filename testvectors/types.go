// Package testvectors defines the JSON fixture shapes loaded by the
// merklesum and plasma packages' table-driven tests.
package testvectors

// TransferRaw is one transfer within a PMST test fixture.
type TransferRaw struct {
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
	Token     string `json:"token"`
	Start     string `json:"start"`
	End       string `json:"end"`
}

// TransactionRaw is one transaction (a block number plus its transfers)
// within a PMST test fixture.
type TransactionRaw struct {
	Block     string        `json:"block"`
	Transfers []TransferRaw `json:"transfers"`
}

// PMSTVectorRaw exercises building a tree from a set of transactions and
// checking the resulting root and per-leaf inclusion bounds.
type PMSTVectorRaw struct {
	Description  string           `json:"description"`
	Transactions []TransactionRaw `json:"transactions"`
	ExpectedRoot string           `json:"expectedRoot"`
	ExpectedSum  string           `json:"expectedSum"`
	LeafBounds   []LeafBoundsRaw  `json:"leafBounds"`
}

// LeafBoundsRaw is the expected implicit [left, right) window for one leaf
// of a PMSTVectorRaw's tree.
type LeafBoundsRaw struct {
	Index int    `json:"index"`
	Left  string `json:"left"`
	Right string `json:"right"`
}
