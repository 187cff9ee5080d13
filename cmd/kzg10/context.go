package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	gokzg10 "github.com/crate-crypto/go-kzg10"
	"github.com/crate-crypto/go-kzg10/internal/utils"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/blake2b"
)

// newContext creates the context used by a command.
//
// If --srs is set, the trusted setup is read from that file. Otherwise a new
// setup is generated for --max-degree, from --seed if one was given.
func newContext(c *cli.Context, logger *zap.Logger) (*gokzg10.Context, error) {
	if path := c.String(srsFlag.Name); path != "" {
		trustedSetup, err := readTrustedSetup(path)
		if err != nil {
			return nil, err
		}
		ctx, err := gokzg10.NewContextFromTrustedSetup(trustedSetup)
		if err != nil {
			return nil, fmt.Errorf("could not load trusted setup %s: %w", path, err)
		}
		logger.Debug("loaded trusted setup", zap.String("path", path), zap.Int("max_degree", ctx.MaxDegree()))
		return ctx, nil
	}

	maxDegree := c.Int(maxDegreeFlag.Name)
	if seed := c.String(seedFlag.Name); seed != "" {
		logger.Warn("deriving the trapdoor from a seed, the setup is insecure", zap.Int("max_degree", maxDegree))
		return gokzg10.NewContextWithRandomness(maxDegree, utils.NewDeterministicReader(blake2b.Sum256([]byte(seed))))
	}

	logger.Debug("generating trusted setup", zap.Int("max_degree", maxDegree))
	return gokzg10.NewContext(maxDegree)
}

func readTrustedSetup(path string) (*gokzg10.JSONTrustedSetup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var trustedSetup gokzg10.JSONTrustedSetup
	if err := json.Unmarshal(data, &trustedSetup); err != nil {
		return nil, fmt.Errorf("could not parse trusted setup %s: %w", path, err)
	}
	return &trustedSetup, nil
}

func writeTrustedSetup(path string, trustedSetup *gokzg10.JSONTrustedSetup) error {
	data, err := json.MarshalIndent(trustedSetup, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// readPolynomial returns the coefficients given with --coeffs, or the
// interpolation of the points given with --points.
func readPolynomial(c *cli.Context, ctx *gokzg10.Context) (gokzg10.PolynomialCoeffs, error) {
	coeffs, points := c.String(coeffsFlag.Name), c.String(pointsFlag.Name)
	switch {
	case coeffs != "" && points != "":
		return nil, fmt.Errorf("only one of --%s and --%s can be set", coeffsFlag.Name, pointsFlag.Name)
	case coeffs != "":
		return parseScalarList(coeffs)
	case points != "":
		xs, ys, err := parsePoints(points)
		if err != nil {
			return nil, err
		}
		return ctx.InterpolatePolynomial(xs, ys)
	default:
		return nil, fmt.Errorf("one of --%s and --%s is required", coeffsFlag.Name, pointsFlag.Name)
	}
}

func parseScalarList(s string) ([]gokzg10.Scalar, error) {
	parts := strings.Split(s, ",")
	scalars := make([]gokzg10.Scalar, len(parts))
	for i, part := range parts {
		scalar, err := gokzg10.ParseScalar(part)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", part, err)
		}
		scalars[i] = scalar
	}
	return scalars, nil
}

func parsePoints(s string) ([]gokzg10.Scalar, []gokzg10.Scalar, error) {
	parts := strings.Split(s, ",")
	xs := make([]gokzg10.Scalar, len(parts))
	ys := make([]gokzg10.Scalar, len(parts))
	for i, part := range parts {
		x, y, ok := strings.Cut(part, ":")
		if !ok {
			return nil, nil, fmt.Errorf("%q is not an x:y pair", part)
		}
		var err error
		if xs[i], err = gokzg10.ParseScalar(x); err != nil {
			return nil, nil, fmt.Errorf("%q: %w", x, err)
		}
		if ys[i], err = gokzg10.ParseScalar(y); err != nil {
			return nil, nil, fmt.Errorf("%q: %w", y, err)
		}
	}
	return xs, ys, nil
}

func parseG1Hex(s string) (gokzg10.G1Point, error) {
	var point gokzg10.G1Point
	byts, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return point, err
	}
	if len(byts) != len(point) {
		return point, fmt.Errorf("expected %d bytes, got %d", len(point), len(byts))
	}
	copy(point[:], byts)
	return point, nil
}

func toHex(byts []byte) string {
	return "0x" + hex.EncodeToString(byts)
}
