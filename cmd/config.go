package cmd

import (
	"os"

	"github.com/0xPolygon/plasma-mst/config"
	"github.com/urfave/cli/v2"
)

// ConfigCmd prints the built-in default configuration to stdout.
func ConfigCmd(*cli.Context) error {
	_, err := os.Stdout.WriteString(config.DefaultValues)
	return err
}
