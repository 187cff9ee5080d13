package gokzg10

import (
	"math/big"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/require"
)

func TestG1RoundTripSmoke(t *testing.T) {
	_, _, g1Aff, _ := bls12381.Generators()
	g1Bytes := SerializeG1Point(g1Aff)
	aff, err := DeserializeG1Point(g1Bytes)
	require.NoError(t, err)
	require.True(t, aff.Equal(&g1Aff), "G1 generator roundtrip fail")

	var identity bls12381.G1Affine
	aff, err = DeserializeG1Point(SerializeG1Point(identity))
	require.NoError(t, err)
	require.True(t, aff.IsInfinity())
}

func TestG2RoundTripSmoke(t *testing.T) {
	_, _, _, g2Aff := bls12381.Generators()
	g2Bytes := SerializeG2Point(g2Aff)
	aff, err := DeserializeG2Point(g2Bytes)
	require.NoError(t, err)
	require.True(t, aff.Equal(&g2Aff), "G2 generator roundtrip fail")
}

func TestScalarRoundTrip(t *testing.T) {
	var element fr.Element
	_, err := element.SetRandom()
	require.NoError(t, err)

	got, err := DeserializeScalar(SerializeScalar(element))
	require.NoError(t, err)
	require.True(t, got.Equal(&element))
}

func TestDeserializeScalarNonCanonical(t *testing.T) {
	var modulus Scalar
	fr.Modulus().FillBytes(modulus[:])
	_, err := DeserializeScalar(modulus)
	require.ErrorIs(t, err, ErrNonCanonicalScalar)

	var allOnes Scalar
	for i := range allOnes {
		allOnes[i] = 0xff
	}
	_, err = DeserializeScalar(allOnes)
	require.ErrorIs(t, err, ErrNonCanonicalScalar)

	// modulus - 1 is the largest canonical scalar
	modulus[SerializedScalarSize-1]--
	got, err := DeserializeScalar(modulus)
	require.NoError(t, err)
	minusOne := fr.NewElement(1)
	minusOne.Neg(&minusOne)
	require.True(t, got.Equal(&minusOne))
}

func TestScalarString(t *testing.T) {
	require.Equal(t, "0", Scalar{}.String())
	require.Equal(t, "92", ScalarFromInt64(92).String())

	modulus := fr.Modulus()
	modulus.Sub(modulus, big.NewInt(1))
	require.Equal(t, modulus.String(), ScalarFromInt64(-1).String())
}

func TestSerializePolyNotZero(t *testing.T) {
	// Check that coefficients are not all zeroes.
	// This would indicate that serialization
	// did not do anything.
	p := randPoly(4)
	coeffs := serializePolynomial(p)
	for _, coeff := range coeffs {
		require.NotEqual(t, Scalar{}, coeff)
	}
}

func TestSerializePolyRoundTrip(t *testing.T) {
	expectedPolyA := randPoly(8)
	expectedPolyB := randPoly(8)

	gotPolyA, err := deserializePolynomial(serializePolynomial(expectedPolyA))
	require.NoError(t, err)
	gotPolyB, err := deserializePolynomial(serializePolynomial(expectedPolyB))
	require.NoError(t, err)

	require.Equal(t, expectedPolyA, gotPolyA)
	require.Equal(t, expectedPolyB, gotPolyB)
	require.NotEqual(t, gotPolyA, gotPolyB)
}

func randPoly(numCoeffs int) []fr.Element {
	p := make([]fr.Element, numCoeffs)
	for i := range p {
		if _, err := p[i].SetRandom(); err != nil {
			panic(err)
		}
	}
	return p
}
