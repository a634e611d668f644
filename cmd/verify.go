package cmd

import (
	"fmt"

	"github.com/0xPolygon/plasma-mst/config"
	"github.com/0xPolygon/plasma-mst/log"
	"github.com/0xPolygon/plasma-mst/merklesum"
	"github.com/0xPolygon/plasma-mst/plasma"
	"github.com/urfave/cli/v2"
)

const (
	FlagRoot       = "root"
	FlagProof      = "proof"
	FlagLeafDigest = "leaf-digest"
	FlagLeafCount  = "leaf-count"
	FlagStart      = "start"
	FlagEnd        = "end"
)

// VerifyCmd checks an inclusion proof against a root, printing "true" or
// "false" and exiting non-zero only on malformed input, never on a failed
// proof.
func VerifyCmd(cliCtx *cli.Context) error {
	cfg, err := config.Load(cliCtx)
	if err != nil {
		return err
	}
	log.Init(cfg.Log)

	rootBytes, err := hexDecode(cliCtx.String(FlagRoot))
	if err != nil {
		return fmt.Errorf("parsing --%s: %w", FlagRoot, err)
	}
	root, err := merklesum.ParseNode(rootBytes)
	if err != nil {
		return fmt.Errorf("parsing --%s: %w", FlagRoot, err)
	}

	proof, err := plasma.ProofFromHex(cliCtx.String(FlagProof))
	if err != nil {
		return fmt.Errorf("parsing --%s: %w", FlagProof, err)
	}

	digestBytes, err := hexDecode(cliCtx.String(FlagLeafDigest))
	if err != nil {
		return fmt.Errorf("parsing --%s: %w", FlagLeafDigest, err)
	}
	if len(digestBytes) != merklesum.DigestLength {
		return fmt.Errorf("--%s must be %d bytes", FlagLeafDigest, merklesum.DigestLength)
	}
	var digest [32]byte
	copy(digest[:], digestBytes)

	start, err := parseBig(FlagStart, cliCtx.String(FlagStart))
	if err != nil {
		return err
	}
	end, err := parseBig(FlagEnd, cliCtx.String(FlagEnd))
	if err != nil {
		return err
	}

	ok := plasma.CheckInclusion(root, cliCtx.Int(FlagIndex), proof, cliCtx.Int(FlagLeafCount), digest, start, end)
	fmt.Println(ok)
	return nil
}
