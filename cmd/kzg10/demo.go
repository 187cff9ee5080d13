package main

import (
	"fmt"

	gokzg10 "github.com/crate-crypto/go-kzg10"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var DemoCmd = cli.Command{
	Action: doDemo,
	Name:   "demo",
	Usage:  "commit to -19x^2 + 114x - 60, open it at 2 and verify the proof",
	Flags: []cli.Flag{
		&srsFlag,
		&maxDegreeFlag,
		&seedFlag,
		&interpolateFlag,
	},
}

// The demo polynomial passes through (1, 35), (2, 92) and (3, 111).
var (
	demoXs     = []int64{1, 2, 3}
	demoYs     = []int64{35, 92, 111}
	demoCoeffs = []int64{-60, 114, -19}
	demoPoint  = int64(2)
)

func doDemo(c *cli.Context) error {
	logger := loggerFrom(c)

	ctx, err := newContext(c, logger)
	if err != nil {
		return err
	}
	numGoRoutines := c.Int(goRoutinesFlag.Name)

	var coeffs gokzg10.PolynomialCoeffs
	if c.Bool(interpolateFlag.Name) {
		coeffs, err = ctx.InterpolatePolynomial(toScalars(demoXs), toScalars(demoYs))
		if err != nil {
			return err
		}
		logger.Info("interpolated polynomial", zap.String("polynomial", formatPolynomial(coeffs)))
	} else {
		coeffs = toScalars(demoCoeffs)
		logger.Info("polynomial", zap.String("polynomial", formatPolynomial(coeffs)))
	}

	commitment, err := ctx.Commit(coeffs, numGoRoutines)
	if err != nil {
		return err
	}
	logger.Info("commitment", zap.String("commitment", toHex(commitment[:])))

	z := gokzg10.ScalarFromInt64(demoPoint)
	proof, value, err := ctx.ComputeKZGProof(coeffs, z, numGoRoutines)
	if err != nil {
		return err
	}
	logger.Info("opened polynomial", zap.Stringer("z", z), zap.Stringer("value", value), zap.String("proof", toHex(proof[:])))

	valid, err := ctx.IsValidKZGProof(commitment, z, value, proof)
	if err != nil {
		return err
	}
	if !valid {
		return fmt.Errorf("proof verification failed")
	}

	fmt.Fprintf(c.App.Writer, "p(%s) = %s, proof verification succeeded\n", z, value)
	return nil
}

func toScalars(values []int64) []gokzg10.Scalar {
	scalars := make([]gokzg10.Scalar, len(values))
	for i, value := range values {
		scalars[i] = gokzg10.ScalarFromInt64(value)
	}
	return scalars
}
