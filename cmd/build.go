package cmd

import (
	"encoding/hex"
	"fmt"

	plasmamst "github.com/0xPolygon/plasma-mst"
	"github.com/0xPolygon/plasma-mst/config"
	"github.com/0xPolygon/plasma-mst/log"
	"github.com/urfave/cli/v2"
)

const FlagTransactions = "transactions"

// BuildCmd builds a Plasma Merkle Sum Tree from a transactions file and
// prints its root and leaf count.
func BuildCmd(cliCtx *cli.Context) error {
	cfg, err := config.Load(cliCtx)
	if err != nil {
		return err
	}
	log.Init(cfg.Log)

	txs, err := loadTransactions(cliCtx.String(FlagTransactions))
	if err != nil {
		return err
	}

	client, err := plasmamst.NewClient(txs)
	if err != nil {
		return fmt.Errorf("building tree: %w", err)
	}

	root := client.Root()
	fmt.Printf("root: 0x%s\n", hex.EncodeToString(root.Data[:]))
	fmt.Printf("sum:  %s\n", root.Sum.Big().String())
	fmt.Printf("leaves: %d\n", client.LeafCount())
	return nil
}
