package gokzg10

import (
	"math/big"
	"strings"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/crate-crypto/go-kzg10/internal/poly"
	"github.com/crate-crypto/go-kzg10/internal/utils"
)

// SerializedScalarSize is the number of bytes needed to represent a field
// element corresponding to the order of the G1 group.
const SerializedScalarSize = 32

// CompressedG1Size is the number of bytes needed to represent a group
// element in G1 when compressed.
const CompressedG1Size = 48

// CompressedG2Size is the number of bytes needed to represent a group
// element in G2 when compressed.
const CompressedG2Size = 96

type (
	// Scalar is the big-endian canonical encoding of a field element.
	Scalar [SerializedScalarSize]byte

	G1Point [CompressedG1Size]byte
	G2Point [CompressedG2Size]byte

	// KZGCommitment is a serialized commitment to a polynomial.
	KZGCommitment G1Point

	// KZGProof is a serialized commitment to the quotient polynomial.
	//
	// This is a misnomer, its the KZG witness.
	KZGProof G1Point
)

// PolynomialCoeffs is a serialized polynomial in monomial form.
// The i'th scalar is the coefficient of X^i.
type PolynomialCoeffs = []Scalar

// SerializeScalar converts a field element into its canonical big-endian encoding.
func SerializeScalar(element fr.Element) Scalar {
	return Scalar(element.Bytes())
}

// DeserializeScalar converts a big-endian encoding into a field element.
//
// An error is returned if the integer is not less than the modulus.
func DeserializeScalar(serScalar Scalar) (fr.Element, error) {
	scalar, err := utils.ReduceCanonical(serScalar[:])
	if err != nil {
		return fr.Element{}, ErrNonCanonicalScalar
	}
	return scalar, nil
}

// ScalarFromInt64 returns the encoding of `value` reduced modulo the
// order of the scalar field. Negative values are mapped to their
// additive inverse.
func ScalarFromInt64(value int64) Scalar {
	var element fr.Element
	element.SetInt64(value)
	return SerializeScalar(element)
}

// ParseScalar parses a decimal or 0x-prefixed hexadecimal integer, which
// may be negative, and reduces it modulo the order of the scalar field.
func ParseScalar(s string) (Scalar, error) {
	s = strings.TrimSpace(s)

	var value big.Int
	if _, ok := value.SetString(s, 0); !ok {
		return Scalar{}, ErrInvalidScalarString
	}
	value.Mod(&value, fr.Modulus())

	var element fr.Element
	element.SetBigInt(&value)
	return SerializeScalar(element), nil
}

// String returns the scalar as a decimal integer.
func (s Scalar) String() string {
	return new(big.Int).SetBytes(s[:]).String()
}

func SerializeG1Point(affine bls12381.G1Affine) G1Point {
	return affine.Bytes()
}

// DeserializeG1Point decodes a compressed G1 point.
//
// This checks that the point is on the curve and in the correct subgroup.
func DeserializeG1Point(serPoint G1Point) (bls12381.G1Affine, error) {
	var point bls12381.G1Affine

	_, err := point.SetBytes(serPoint[:])
	if err != nil {
		return bls12381.G1Affine{}, err
	}
	return point, nil
}

func SerializeG2Point(affine bls12381.G2Affine) G2Point {
	return affine.Bytes()
}

// DeserializeG2Point decodes a compressed G2 point.
//
// This checks that the point is on the curve and in the correct subgroup.
func DeserializeG2Point(serPoint G2Point) (bls12381.G2Affine, error) {
	var point bls12381.G2Affine

	_, err := point.SetBytes(serPoint[:])
	if err != nil {
		return bls12381.G2Affine{}, err
	}
	return point, nil
}

func deserializePolynomial(coeffs PolynomialCoeffs) (poly.Polynomial, error) {
	p := make(poly.Polynomial, len(coeffs))
	for i := 0; i < len(coeffs); i++ {
		scalar, err := DeserializeScalar(coeffs[i])
		if err != nil {
			return nil, err
		}
		p[i] = scalar
	}
	return p, nil
}

func deserializeScalars(serScalars []Scalar) ([]fr.Element, error) {
	return deserializePolynomial(serScalars)
}

func serializePolynomial(p poly.Polynomial) PolynomialCoeffs {
	coeffs := make(PolynomialCoeffs, len(p))
	for i := 0; i < len(p); i++ {
		coeffs[i] = SerializeScalar(p[i])
	}
	return coeffs
}
