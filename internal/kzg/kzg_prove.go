package kzg

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/crate-crypto/go-kzg10/internal/poly"
)

// Proof to the claim that a polynomial f(x) was evaluated at a point `a` and
// resulted in `f(a)`
type OpeningProof struct {
	// Commitment to the quotient polynomial (f - f(a))/(x-a)
	QuotientCommitment bls12381.G1Affine

	// Point that we are evaluating the polynomial at : `a`
	InputPoint fr.Element

	// ClaimedValue purported value : `f(a)`
	ClaimedValue fr.Element
}

// Open creates a KZG proof that a polynomial f(x) when evaluated at a point `a` is equal to `f(a)`
//
// The commit key must be able to commit to `p`. The quotient polynomial has a
// smaller degree, so the same key is used to commit to it.
func Open(p poly.Polynomial, point fr.Element, ck *CommitKey, numGoRoutines int) (OpeningProof, error) {
	if poly.Degree(p)+1 > len(ck.G1) {
		return OpeningProof{}, ErrInvalidDegree
	}

	res := OpeningProof{
		InputPoint:   point,
		ClaimedValue: poly.PolyEval(p, point),
	}

	// compute the quotient polynomial
	quotientPoly, err := computeQuotientPoly(p, point, res.ClaimedValue)
	if err != nil {
		return OpeningProof{}, err
	}

	// commit to Quotient polynomial
	quotientCommit, err := ck.Commit(quotientPoly, numGoRoutines)
	if err != nil {
		return OpeningProof{}, err
	}
	res.QuotientCommitment.Set(quotientCommit)

	return res, nil
}

// computeQuotientPoly computes (f(x) - f(a)) / (x - a).
//
// `a` is a root of f(x) - f(a), so the division must be exact.
// A non-zero remainder means that `fa` was not f(a).
func computeQuotientPoly(f poly.Polynomial, a, fa fr.Element) (poly.Polynomial, error) {
	numerator := poly.PolySub(f, poly.Polynomial{fa})

	quotient, remainder := poly.DividePolyByXminusA(numerator, a)
	if !remainder.IsZero() {
		return nil, ErrDivisionInvariantViolated
	}

	return quotient, nil
}
