package cmd

import (
	"encoding/hex"
	"fmt"

	plasmamst "github.com/0xPolygon/plasma-mst"
	"github.com/0xPolygon/plasma-mst/config"
	"github.com/0xPolygon/plasma-mst/log"
	"github.com/urfave/cli/v2"
)

const FlagIndex = "index"

// ProveCmd builds a tree from a transactions file and prints the inclusion
// proof for the leaf at --index.
func ProveCmd(cliCtx *cli.Context) error {
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

	index := cliCtx.Int(FlagIndex)
	proof, err := client.GetInclusionProof(index)
	if err != nil {
		return fmt.Errorf("generating proof for leaf %d: %w", index, err)
	}
	digest, err := client.LeafDigest(index)
	if err != nil {
		return err
	}

	fmt.Printf("leafDigest: 0x%s\n", hex.EncodeToString(digest[:]))
	fmt.Printf("proof:      %s\n", proof.Hex())
	return nil
}
