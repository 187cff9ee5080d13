package main

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	gokzg10 "github.com/crate-crypto/go-kzg10"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var CommitCmd = cli.Command{
	Action: doCommit,
	Name:   "commit",
	Usage:  "commit to a polynomial given by its coefficients or by points to interpolate",
	Flags: []cli.Flag{
		&srsFlag,
		&maxDegreeFlag,
		&seedFlag,
		&coeffsFlag,
		&pointsFlag,
	},
}

var ProveCmd = cli.Command{
	Action: doProve,
	Name:   "prove",
	Usage:  "commit to a polynomial and prove its evaluation at a point",
	Flags: []cli.Flag{
		&srsFlag,
		&maxDegreeFlag,
		&seedFlag,
		&coeffsFlag,
		&pointsFlag,
		&zFlag,
	},
}

func doCommit(c *cli.Context) error {
	logger := loggerFrom(c)

	ctx, err := newContext(c, logger)
	if err != nil {
		return err
	}
	coeffs, err := readPolynomial(c, ctx)
	if err != nil {
		return err
	}

	commitment, err := ctx.Commit(coeffs, c.Int(goRoutinesFlag.Name))
	if err != nil {
		return err
	}

	logger.Debug("committed to polynomial", zap.Int("num_coeffs", len(coeffs)))
	fmt.Fprintf(c.App.Writer, "polynomial: %s\n", formatPolynomial(coeffs))
	fmt.Fprintf(c.App.Writer, "commitment: %s\n", toHex(commitment[:]))
	return nil
}

func doProve(c *cli.Context) error {
	logger := loggerFrom(c)

	ctx, err := newContext(c, logger)
	if err != nil {
		return err
	}
	coeffs, err := readPolynomial(c, ctx)
	if err != nil {
		return err
	}
	z, err := gokzg10.ParseScalar(c.String(zFlag.Name))
	if err != nil {
		return err
	}

	numGoRoutines := c.Int(goRoutinesFlag.Name)
	commitment, err := ctx.Commit(coeffs, numGoRoutines)
	if err != nil {
		return err
	}
	proof, value, err := ctx.ComputeKZGProof(coeffs, z, numGoRoutines)
	if err != nil {
		return err
	}

	logger.Debug("created opening proof", zap.Stringer("z", z), zap.Stringer("value", value))
	fmt.Fprintf(c.App.Writer, "polynomial: %s\n", formatPolynomial(coeffs))
	fmt.Fprintf(c.App.Writer, "commitment: %s\n", toHex(commitment[:]))
	fmt.Fprintf(c.App.Writer, "z:          %s\n", z)
	fmt.Fprintf(c.App.Writer, "value:      %s\n", value)
	fmt.Fprintf(c.App.Writer, "proof:      %s\n", toHex(proof[:]))
	return nil
}

// formatPolynomial prints each coefficient as the integer of smallest
// absolute value in its residue class, so -60 is not printed as r-60.
func formatPolynomial(coeffs gokzg10.PolynomialCoeffs) string {
	modulus := fr.Modulus()
	half := new(big.Int).Rsh(modulus, 1)

	terms := make([]string, len(coeffs))
	for i := range coeffs {
		value := new(big.Int).SetBytes(coeffs[i][:])
		if value.Cmp(half) > 0 {
			value.Sub(value, modulus)
		}
		terms[i] = value.String()
	}
	return "[" + strings.Join(terms, ", ") + "]"
}
