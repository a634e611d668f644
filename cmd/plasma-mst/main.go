package main

import (
	"os"

	"github.com/0xPolygon/plasma-mst/cmd"
	"github.com/0xPolygon/plasma-mst/config"
	"github.com/0xPolygon/plasma-mst/log"
	"github.com/urfave/cli/v2"
)

const appName = "plasma-mst"

var (
	configFileFlag = cli.StringSliceFlag{
		Name:    config.FlagCfg,
		Aliases: []string{"c"},
		Usage:   "Configuration file(s)",
	}
	saveConfigFlag = cli.StringFlag{
		Name:  config.FlagSaveConfigPath,
		Usage: "Save the final merged configuration to the given directory",
	}
	transactionsFlag = cli.StringFlag{
		Name:     cmd.FlagTransactions,
		Aliases:  []string{"t"},
		Usage:    "Path to a JSON file listing the block's transactions",
		Required: true,
	}
	indexFlag = cli.IntFlag{
		Name:     cmd.FlagIndex,
		Aliases:  []string{"i"},
		Usage:    "Leaf index to generate or check a proof for",
		Required: true,
	}
	rootFlag = cli.StringFlag{
		Name:     cmd.FlagRoot,
		Usage:    "Tree root, as a hex-encoded 48-byte node (digest || sum)",
		Required: true,
	}
	proofFlag = cli.StringFlag{
		Name:     cmd.FlagProof,
		Usage:    "Inclusion proof, as hex-encoded concatenated 48-byte elements",
		Required: true,
	}
	leafDigestFlag = cli.StringFlag{
		Name:     cmd.FlagLeafDigest,
		Usage:    "keccak256 digest of the transaction being verified, hex-encoded",
		Required: true,
	}
	leafCountFlag = cli.IntFlag{
		Name:     cmd.FlagLeafCount,
		Usage:    "Number of leaves in the tree the proof was generated from",
		Required: true,
	}
	startFlag = cli.StringFlag{
		Name:     cmd.FlagStart,
		Usage:    "Start coin id of the range being checked (decimal)",
		Required: true,
	}
	endFlag = cli.StringFlag{
		Name:     cmd.FlagEnd,
		Usage:    "End coin id of the range being checked (decimal)",
		Required: true,
	}
)

func main() {
	app := cli.NewApp()
	app.Name = appName
	app.Flags = []cli.Flag{&configFileFlag, &saveConfigFlag}

	app.Commands = []*cli.Command{
		{
			Name:   "version",
			Usage:  "Print version and build information",
			Action: cmd.VersionCmd,
		},
		{
			Name:   "config",
			Usage:  "Print the built-in default configuration",
			Action: cmd.ConfigCmd,
		},
		{
			Name:   "build",
			Usage:  "Build a Plasma Merkle Sum Tree and print its root",
			Action: cmd.BuildCmd,
			Flags:  []cli.Flag{&transactionsFlag},
		},
		{
			Name:   "prove",
			Usage:  "Generate an inclusion proof for one leaf",
			Action: cmd.ProveCmd,
			Flags:  []cli.Flag{&transactionsFlag, &indexFlag},
		},
		{
			Name:   "verify",
			Usage:  "Check an inclusion proof against a root",
			Action: cmd.VerifyCmd,
			Flags: []cli.Flag{
				&rootFlag, &proofFlag, &leafDigestFlag, &indexFlag,
				&leafCountFlag, &startFlag, &endFlag,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
