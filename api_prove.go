package gokzg10

import (
	"github.com/crate-crypto/go-kzg10/internal/kzg"
	"github.com/crate-crypto/go-kzg10/internal/poly"
)

// Commit computes the KZG commitment to a polynomial given by its coefficients.
//
// Trailing zero coefficients are ignored. An error is returned if the degree
// of the polynomial is larger than MaxDegree.
//
// numGoRoutines is used to configure the amount of concurrency needed. Setting this
// value to a negative number or 0 will make it default to the number of CPUs.
func (ctx *Context) Commit(coeffs PolynomialCoeffs, numGoRoutines int) (KZGCommitment, error) {
	// 1. Deserialization
	//
	polynomial, err := deserializePolynomial(coeffs)
	if err != nil {
		return KZGCommitment{}, err
	}

	// 2. Commit to polynomial
	//
	commitment, err := ctx.commitKey.Commit(polynomial, numGoRoutines)
	if err != nil {
		return KZGCommitment{}, err
	}

	// 3. Serialization
	//
	return KZGCommitment(SerializeG1Point(*commitment)), nil
}

// InterpolatePolynomial returns the coefficients of the lowest degree
// polynomial passing through the points (xs[i], ys[i]).
//
// The result has no trailing zero coefficients, so the zero polynomial
// is returned as an empty slice.
func (ctx *Context) InterpolatePolynomial(xs, ys []Scalar) (PolynomialCoeffs, error) {
	// 1. Deserialization
	//
	xsFr, err := deserializeScalars(xs)
	if err != nil {
		return nil, err
	}
	ysFr, err := deserializeScalars(ys)
	if err != nil {
		return nil, err
	}

	// 2. Interpolate
	//
	polynomial, err := poly.LagrangeInterpolate(xsFr, ysFr)
	if err != nil {
		return nil, err
	}

	// 3. Serialization
	//
	return serializePolynomial(polynomial), nil
}

// CommitToInterpolation interpolates the points (xs[i], ys[i]) and commits to
// the resulting polynomial. The polynomial is returned alongside its commitment
// so that it can later be opened.
func (ctx *Context) CommitToInterpolation(xs, ys []Scalar, numGoRoutines int) (PolynomialCoeffs, KZGCommitment, error) {
	coeffs, err := ctx.InterpolatePolynomial(xs, ys)
	if err != nil {
		return nil, KZGCommitment{}, err
	}

	commitment, err := ctx.Commit(coeffs, numGoRoutines)
	if err != nil {
		return nil, KZGCommitment{}, err
	}

	return coeffs, commitment, nil
}

// ComputeKZGProof creates a proof that the polynomial given by `coeffs`
// evaluates to the returned value at `inputPointBytes`.
func (ctx *Context) ComputeKZGProof(coeffs PolynomialCoeffs, inputPointBytes Scalar, numGoRoutines int) (KZGProof, Scalar, error) {
	// 1. Deserialization
	//
	polynomial, err := deserializePolynomial(coeffs)
	if err != nil {
		return KZGProof{}, Scalar{}, err
	}

	inputPoint, err := DeserializeScalar(inputPointBytes)
	if err != nil {
		return KZGProof{}, Scalar{}, err
	}

	// 2. Create opening proof
	//
	openingProof, err := kzg.Open(polynomial, inputPoint, ctx.commitKey, numGoRoutines)
	if err != nil {
		return KZGProof{}, Scalar{}, err
	}

	// 3. Serialization
	//
	kzgProof := KZGProof(SerializeG1Point(openingProof.QuotientCommitment))
	claimedValueBytes := SerializeScalar(openingProof.ClaimedValue)

	return kzgProof, claimedValueBytes, nil
}

// EvaluatePolynomial evaluates the polynomial given by `coeffs` at `inputPointBytes`.
func EvaluatePolynomial(coeffs PolynomialCoeffs, inputPointBytes Scalar) (Scalar, error) {
	polynomial, err := deserializePolynomial(coeffs)
	if err != nil {
		return Scalar{}, err
	}

	inputPoint, err := DeserializeScalar(inputPointBytes)
	if err != nil {
		return Scalar{}, err
	}

	return SerializeScalar(poly.PolyEval(polynomial, inputPoint)), nil
}
