package cmd

import (
	"os"

	plasmamst "github.com/0xPolygon/plasma-mst"
	"github.com/urfave/cli/v2"
)

// VersionCmd prints the build's version information.
func VersionCmd(*cli.Context) error {
	plasmamst.PrintVersion(os.Stdout)
	return nil
}
