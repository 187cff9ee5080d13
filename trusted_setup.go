package gokzg10

import (
	"encoding/hex"
	"fmt"
	"runtime"
	"strings"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/crate-crypto/go-kzg10/internal/fiatshamir"
	"github.com/crate-crypto/go-kzg10/internal/kzg"
	"github.com/crate-crypto/go-kzg10/internal/multiexp"
	"github.com/crate-crypto/go-kzg10/internal/utils"
	"golang.org/x/sync/errgroup"
)

// DomSepTrustedSetup is the domain separator of the transcript used to check
// that a trusted setup holds successive powers of a single secret.
const DomSepTrustedSetup = "KZG10_TRUSTED_SETUP_CHECK_V1"

// Hex string for a compressed G1 point with an optional `0x` prefix
type G1CompressedHexStr = string

// Hex string for a compressed G2 point with an optional `0x` prefix
type G2CompressedHexStr = string

// JSONTrustedSetup is the JSON encoding of a structured reference string.
//
// SetupG1 holds [τ^i]G₁ for i in [0, maxDegree] and SetupG2 holds G₂ and [τ]G₂.
type JSONTrustedSetup struct {
	SetupG1 []G1CompressedHexStr `json:"g1_monomial"`
	SetupG2 []G2CompressedHexStr `json:"g2_monomial"`
}

// NewContextFromTrustedSetup creates a context from a trusted setup, for
// example one produced by ExportTrustedSetup or by a setup ceremony.
//
// The trusted setup is checked with CheckTrustedSetupIsWellFormed.
func NewContextFromTrustedSetup(trustedSetup *JSONTrustedSetup) (*Context, error) {
	srs, err := parseTrustedSetup(trustedSetup)
	if err != nil {
		return nil, err
	}
	return newContextFromSRS(srs), nil
}

// ExportTrustedSetup returns the structured reference string of the context,
// so that it can be persisted and later loaded with NewContextFromTrustedSetup.
func (ctx *Context) ExportTrustedSetup() *JSONTrustedSetup {
	setupG1 := make([]G1CompressedHexStr, len(ctx.commitKey.G1))
	for i := range ctx.commitKey.G1 {
		point := SerializeG1Point(ctx.commitKey.G1[i])
		setupG1[i] = "0x" + hex.EncodeToString(point[:])
	}

	genG2 := SerializeG2Point(ctx.openKey.GenG2)
	alphaG2 := SerializeG2Point(ctx.openKey.AlphaG2)

	return &JSONTrustedSetup{
		SetupG1: setupG1,
		SetupG2: []G2CompressedHexStr{
			"0x" + hex.EncodeToString(genG2[:]),
			"0x" + hex.EncodeToString(alphaG2[:]),
		},
	}
}

// CheckTrustedSetupIsWellFormed checks that the trusted setup is well formed.
//
// To be well formed, the trusted setup must:
//   - Contain between 1 and MaxSupportedDegree+1 G1 points and exactly 2 G2 points
//   - Only contain points which are valid and in the prime order subgroup
//   - Start with the generator in both groups
//   - Contain successive powers of the same secret in G1 as in G2
func CheckTrustedSetupIsWellFormed(trustedSetup *JSONTrustedSetup) error {
	_, err := parseTrustedSetup(trustedSetup)
	return err
}

func parseTrustedSetup(trustedSetup *JSONTrustedSetup) (*kzg.SRS, error) {
	numG1 := len(trustedSetup.SetupG1)
	if numG1 == 0 || numG1 > MaxSupportedDegree+1 {
		return nil, fmt.Errorf("%w: expected between 1 and %d G1 points, got %d", ErrInvalidTrustedSetup, MaxSupportedDegree+1, numG1)
	}
	if len(trustedSetup.SetupG2) != 2 {
		return nil, fmt.Errorf("%w: expected 2 G2 points, got %d", ErrInvalidTrustedSetup, len(trustedSetup.SetupG2))
	}

	setupG1Points, err := parseG1PointsPar(trustedSetup.SetupG1)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTrustedSetup, err)
	}
	setupG2Points, err := parseG2PointsPar(trustedSetup.SetupG2)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTrustedSetup, err)
	}

	_, _, genG1, genG2 := bls12381.Generators()
	if !setupG1Points[0].Equal(&genG1) {
		return nil, fmt.Errorf("%w: first G1 point is not the generator", ErrInvalidTrustedSetup)
	}
	if !setupG2Points[0].Equal(&genG2) {
		return nil, fmt.Errorf("%w: first G2 point is not the generator", ErrInvalidTrustedSetup)
	}
	// A zero secret makes every commitment the identity, so any opening verifies
	if setupG2Points[1].IsInfinity() {
		return nil, fmt.Errorf("%w: secret is zero", ErrInvalidTrustedSetup)
	}

	if err := checkPowersAreConsistent(setupG1Points, setupG2Points[1]); err != nil {
		return nil, err
	}

	return &kzg.SRS{
		CommitKey: kzg.CommitKey{G1: setupG1Points},
		OpeningKey: kzg.OpeningKey{
			GenG1:   genG1,
			GenG2:   genG2,
			AlphaG2: setupG2Points[1],
		},
	}, nil
}

// checkPowersAreConsistent checks that g1Points[i+1] = [τ]g1Points[i] for every i,
// where τ is the secret behind alphaG2 = [τ]G₂.
//
// Instead of one pairing check per point, the points are combined with powers of
// a challenge r derived from all of the points:
//
//	e(Σ rⁱ g1Points[i+1], G₂) = e(Σ rⁱ g1Points[i], [τ]G₂)
func checkPowersAreConsistent(g1Points []bls12381.G1Affine, alphaG2 bls12381.G2Affine) error {
	numPowers := len(g1Points) - 1
	if numPowers == 0 {
		return nil
	}

	transcript := fiatshamir.NewTranscript(DomSepTrustedSetup)
	transcript.AppendG1Points(g1Points)
	transcript.AppendG2Point(alphaG2)
	r := transcript.ChallengeScalar()
	rPowers := utils.ComputePowers(r, uint(numPowers))

	shifted, err := multiexp.MultiExp(rPowers, g1Points[1:], 0)
	if err != nil {
		return err
	}
	unshifted, err := multiexp.MultiExp(rPowers, g1Points[:numPowers], 0)
	if err != nil {
		return err
	}
	unshifted.Neg(unshifted)

	_, _, _, genG2 := bls12381.Generators()
	check, err := bls12381.PairingCheck(
		[]bls12381.G1Affine{*shifted, *unshifted},
		[]bls12381.G2Affine{genG2, alphaG2},
	)
	if err != nil {
		return err
	}
	if !check {
		return fmt.Errorf("%w: G1 points are not successive powers of the G2 secret", ErrInvalidTrustedSetup)
	}
	return nil
}

func decodeHex(hexStr string) ([]byte, error) {
	return hex.DecodeString(strings.TrimPrefix(hexStr, "0x"))
}

func parseG1Point(hexString string) (bls12381.G1Affine, error) {
	byts, err := decodeHex(hexString)
	if err != nil {
		return bls12381.G1Affine{}, err
	}
	if len(byts) != CompressedG1Size {
		return bls12381.G1Affine{}, fmt.Errorf("expected %d bytes for a G1 point, got %d", CompressedG1Size, len(byts))
	}

	var serializedPoint G1Point
	copy(serializedPoint[:], byts)

	return DeserializeG1Point(serializedPoint)
}

func parseG2Point(hexString string) (bls12381.G2Affine, error) {
	byts, err := decodeHex(hexString)
	if err != nil {
		return bls12381.G2Affine{}, err
	}
	if len(byts) != CompressedG2Size {
		return bls12381.G2Affine{}, fmt.Errorf("expected %d bytes for a G2 point, got %d", CompressedG2Size, len(byts))
	}

	var serializedPoint G2Point
	copy(serializedPoint[:], byts)

	return DeserializeG2Point(serializedPoint)
}

// parseG1PointsPar decodes the points on a bounded number of go-routines,
// since each decoding does a subgroup check.
func parseG1PointsPar(hexStrings []string) ([]bls12381.G1Affine, error) {
	g1Points := make([]bls12381.G1Affine, len(hexStrings))

	var errG errgroup.Group
	errG.SetLimit(runtime.NumCPU())
	for i := range hexStrings {
		i := i
		errG.Go(func() error {
			g1Point, err := parseG1Point(hexStrings[i])
			if err != nil {
				return fmt.Errorf("G1 point %d: %w", i, err)
			}
			g1Points[i] = g1Point
			return nil
		})
	}
	if err := errG.Wait(); err != nil {
		return nil, err
	}

	return g1Points, nil
}

func parseG2PointsPar(hexStrings []string) ([]bls12381.G2Affine, error) {
	g2Points := make([]bls12381.G2Affine, len(hexStrings))

	var errG errgroup.Group
	errG.SetLimit(runtime.NumCPU())
	for i := range hexStrings {
		i := i
		errG.Go(func() error {
			g2Point, err := parseG2Point(hexStrings[i])
			if err != nil {
				return fmt.Errorf("G2 point %d: %w", i, err)
			}
			g2Points[i] = g2Point
			return nil
		})
	}
	if err := errG.Wait(); err != nil {
		return nil, err
	}

	return g2Points, nil
}
