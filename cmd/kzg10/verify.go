package main

import (
	"errors"
	"fmt"

	gokzg10 "github.com/crate-crypto/go-kzg10"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var errProofInvalid = errors.New("proof is invalid")

var VerifyCmd = cli.Command{
	Action: doVerify,
	Name:   "verify",
	Usage:  "verify that a commitment opens to a value at a point",
	Flags: []cli.Flag{
		&srsFlag,
		&commitmentFlag,
		&zFlag,
		&valueFlag,
		&proofFlag,
	},
}

func doVerify(c *cli.Context) error {
	logger := loggerFrom(c)

	if !c.IsSet(srsFlag.Name) {
		return fmt.Errorf("--%s is required to verify a proof", srsFlag.Name)
	}
	ctx, err := newContext(c, logger)
	if err != nil {
		return err
	}

	commitment, err := parseG1Hex(c.String(commitmentFlag.Name))
	if err != nil {
		return fmt.Errorf("invalid commitment: %w", err)
	}
	proof, err := parseG1Hex(c.String(proofFlag.Name))
	if err != nil {
		return fmt.Errorf("invalid proof: %w", err)
	}
	z, err := gokzg10.ParseScalar(c.String(zFlag.Name))
	if err != nil {
		return err
	}
	value, err := gokzg10.ParseScalar(c.String(valueFlag.Name))
	if err != nil {
		return err
	}

	valid, err := ctx.IsValidKZGProof(gokzg10.KZGCommitment(commitment), z, value, gokzg10.KZGProof(proof))
	if err != nil {
		return err
	}

	logger.Debug("verified opening proof", zap.Bool("valid", valid))
	if !valid {
		return errProofInvalid
	}
	fmt.Fprintln(c.App.Writer, "proof is valid")
	return nil
}
