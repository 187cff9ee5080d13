package kzg

import (
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/crate-crypto/go-kzg10/internal/multiexp"
	"github.com/crate-crypto/go-kzg10/internal/poly"
	"github.com/crate-crypto/go-kzg10/internal/utils"
)

// OpeningKey is the key used to verify opening proofs.
//
// It holds g, h and [τ]h, which is all that a verifier needs.
type OpeningKey struct {
	// The generator of G₁
	GenG1 bls12381.G1Affine
	// The generator of G₂
	GenG2 bls12381.G2Affine
	// [τ]G₂
	AlphaG2 bls12381.G2Affine
}

// CommitKey is the key used to commit to polynomials and to make opening proofs.
//
// G1 holds the points [τ^0]G₁, [τ^1]G₁, ..., [τ^d]G₁ where d is the
// maximum degree of a polynomial that can be committed to.
type CommitKey struct {
	G1 []bls12381.G1Affine
}

// Structured reference string (SRS) for making
// and verifying KZG proofs
//
// The SRS is read-only after construction and can be shared between go-routines.
type SRS struct {
	CommitKey  CommitKey
	OpeningKey OpeningKey
}

// MaxDegree returns the largest degree of a polynomial that can be committed to.
func (s *SRS) MaxDegree() int {
	return len(s.CommitKey.G1) - 1
}

// NewSRS creates a new SRS which supports polynomials of degree at most `maxDegree`.
//
// The trapdoor τ is sampled from `rand` and is cleared before this method returns.
// `rand` should be a cryptographically secure source such as crypto/rand.Reader;
// anyone who can reproduce its output can forge proofs.
func NewSRS(maxDegree int, rand io.Reader) (*SRS, error) {
	if err := checkMaxDegree(maxDegree); err != nil {
		return nil, err
	}

	var tau fr.Element
	defer tau.SetZero()
	for tau.IsZero() {
		var err error
		tau, err = utils.SampleScalar(rand)
		if err != nil {
			return nil, err
		}
	}

	return newMonomialSRS(maxDegree, &tau), nil
}

// NewSRSInsecure creates a new SRS from a secret which is provided by the caller.
//
// Since the secret is known, this method should never be used in production.
// It exists so that tests can compare commitments against [f(τ)]G₁.
func NewSRSInsecure(maxDegree int, bAlpha *big.Int) (*SRS, error) {
	if err := checkMaxDegree(maxDegree); err != nil {
		return nil, err
	}

	var alpha fr.Element
	alpha.SetBigInt(bAlpha)
	if alpha.IsZero() {
		return nil, ErrInvalidSecret
	}

	return newMonomialSRS(maxDegree, &alpha), nil
}

func checkMaxDegree(maxDegree int) error {
	if maxDegree < 0 || maxDegree > MaxSupportedDegree {
		return ErrInvalidDegree
	}
	return nil
}

// newMonomialSRS computes [τ^i]G₁ for i in [0, maxDegree] and [τ]G₂.
//
// All intermediate values derived from τ are cleared before returning.
func newMonomialSRS(maxDegree int, alpha *fr.Element) *SRS {
	var commitKey CommitKey
	var openKey OpeningKey
	commitKey.G1 = make([]bls12381.G1Affine, maxDegree+1)

	_, _, gen1Aff, gen2Aff := bls12381.Generators()
	commitKey.G1[0] = gen1Aff
	openKey.GenG1 = gen1Aff
	openKey.GenG2 = gen2Aff

	var bAlpha big.Int
	alpha.BigInt(&bAlpha)
	openKey.AlphaG2.ScalarMultiplication(&gen2Aff, &bAlpha)
	clearBigInt(&bAlpha)

	if maxDegree > 0 {
		alphas := make([]fr.Element, maxDegree)
		alphas[0] = *alpha
		for i := 1; i < len(alphas); i++ {
			alphas[i].Mul(&alphas[i-1], alpha)
		}
		g1s := bls12381.BatchScalarMultiplicationG1(&gen1Aff, alphas)
		copy(commitKey.G1[1:], g1s)

		for i := range alphas {
			alphas[i].SetZero()
		}
	}

	return &SRS{
		CommitKey:  commitKey,
		OpeningKey: openKey,
	}
}

// clearBigInt zeroes the words backing `b` before resetting it, since
// SetUint64 alone only shortens the slice.
func clearBigInt(b *big.Int) {
	words := b.Bits()
	for i := range words {
		words[i] = 0
	}
	b.SetUint64(0)
}

// ReduceTo returns the commit key needed to commit to a polynomial of degree `degree`.
//
// The returned key shares the points of `c`; neither key should be modified.
// A degree of -1 denotes the zero polynomial and returns an empty key.
func (c *CommitKey) ReduceTo(degree int) (*CommitKey, error) {
	if degree < -1 || degree+1 > len(c.G1) {
		return nil, ErrInvalidDegree
	}
	return &CommitKey{G1: c.G1[:degree+1:degree+1]}, nil
}

// Commit commits to a polynomial using a multi exponentiation with the SRS.
//
// Trailing zero coefficients are ignored. The zero polynomial commits to the identity.
// An error is returned if the degree of the polynomial is larger than the
// commit key supports.
func (c *CommitKey) Commit(p poly.Polynomial, numGoRoutines int) (*Commitment, error) {
	degree := poly.Degree(p)
	ck, err := c.ReduceTo(degree)
	if err != nil {
		return nil, err
	}

	return multiexp.MultiExp(p[:degree+1], ck.G1, numGoRoutines)
}
