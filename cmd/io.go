package cmd

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"os"

	"github.com/0xPolygon/plasma-mst/transaction"
)

// transferJSON is the on-disk shape of one transfer within a transactions
// input file: decimal-string integers, so arbitrarily large coin ids
// survive JSON's float64 round trip untouched.
type transferJSON struct {
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
	Token     string `json:"token"`
	Start     string `json:"start"`
	End       string `json:"end"`
}

type transactionJSON struct {
	Block     string         `json:"block"`
	Transfers []transferJSON `json:"transfers"`
}

// loadTransactions reads a JSON array of transactionJSON from path and
// normalizes each into a *transaction.Tx.
func loadTransactions(path string) ([]*transaction.Tx, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading transactions file %s: %w", path, err)
	}
	var raw []transactionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing transactions file %s: %w", path, err)
	}

	txs := make([]*transaction.Tx, len(raw))
	for i, rtx := range raw {
		block, ok := new(big.Int).SetString(rtx.Block, 10)
		if !ok {
			return nil, fmt.Errorf("transaction %d: invalid block %q", i, rtx.Block)
		}
		transfers := make([]transaction.Transfer, len(rtx.Transfers))
		for j, rt := range rtx.Transfers {
			token, ok := new(big.Int).SetString(rt.Token, 10)
			if !ok {
				return nil, fmt.Errorf("transaction %d transfer %d: invalid token %q", i, j, rt.Token)
			}
			start, ok := new(big.Int).SetString(rt.Start, 10)
			if !ok {
				return nil, fmt.Errorf("transaction %d transfer %d: invalid start %q", i, j, rt.Start)
			}
			end, ok := new(big.Int).SetString(rt.End, 10)
			if !ok {
				return nil, fmt.Errorf("transaction %d transfer %d: invalid end %q", i, j, rt.End)
			}
			transfers[j] = transaction.Transfer{
				Sender:    rt.Sender,
				Recipient: rt.Recipient,
				Token:     token,
				Start:     start,
				End:       end,
			}
		}
		tx, err := transaction.NewTx(transaction.Transaction{Block: block, Transfers: transfers})
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i, err)
		}
		txs[i] = tx
	}
	return txs, nil
}

func hexDecode(s string) ([]byte, error) {
	trimmed := s
	if len(trimmed) >= 2 && trimmed[0] == '0' && (trimmed[1] == 'x' || trimmed[1] == 'X') {
		trimmed = trimmed[2:]
	}
	return hex.DecodeString(trimmed)
}

func parseBig(field, s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid decimal value for %s: %q", field, s)
	}
	return v, nil
}
