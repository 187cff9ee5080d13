package multiexp

import (
	"math/big"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/crate-crypto/go-kzg10/internal/utils"
	"github.com/stretchr/testify/require"
)

func TestMultiExpMatchesNaive(t *testing.T) {
	var base fr.Element
	base.SetInt64(1234567)

	for _, size := range []uint{2, 3, 17, 256} {
		scalars := utils.ComputePowers(base, size)
		points := powersOfTwoG1(t, size)

		expected := naiveMultiExp(scalars, points)
		for _, numGoRoutines := range []int{-1, 0, 1, 4} {
			got, err := MultiExp(scalars, points, numGoRoutines)
			require.NoError(t, err)
			require.True(t, got.Equal(&expected), "size %d with %d go-routines", size, numGoRoutines)
		}
	}
}

func TestMultiExpSingleTerm(t *testing.T) {
	points := powersOfTwoG1(t, 4)

	var scalar fr.Element
	_, err := scalar.SetString("0x4da9736fb164395ed1586b8355262aa07005818269d2763319faf1d682c01463")
	require.NoError(t, err)

	got, err := MultiExp([]fr.Element{scalar}, points[3:], 0)
	require.NoError(t, err)
	expected := naiveMultiExp([]fr.Element{scalar}, points[3:])
	require.True(t, got.Equal(&expected))

	// A zero scalar gives the identity
	got, err = MultiExp([]fr.Element{{}}, points[3:], 0)
	require.NoError(t, err)
	require.True(t, got.IsInfinity())

	// The identity point gives the identity
	got, err = MultiExp([]fr.Element{scalar}, []bls12381.G1Affine{{}}, 0)
	require.NoError(t, err)
	require.True(t, got.IsInfinity())
}

func TestMultiExpEmpty(t *testing.T) {
	got, err := MultiExp(nil, nil, 0)
	require.NoError(t, err)
	require.True(t, got.IsInfinity())

	got, err = MultiExp([]fr.Element{}, []bls12381.G1Affine{}, 8)
	require.NoError(t, err)
	require.True(t, got.IsInfinity())
}

func TestMultiExpMismatchedLengths(t *testing.T) {
	points := powersOfTwoG1(t, 4)
	scalars := utils.ComputePowers(fr.NewElement(3), 4)

	_, err := MultiExp(scalars, points[:3], 0)
	require.ErrorIs(t, err, ErrMismatchedLengths)
	_, err = MultiExp(scalars[:1], points[:2], 0)
	require.ErrorIs(t, err, ErrMismatchedLengths)
	_, err = MultiExp(nil, points[:1], 0)
	require.ErrorIs(t, err, ErrMismatchedLengths)
}

func TestMultiExpTooManyGoRoutines(t *testing.T) {
	_, err := MultiExp(nil, nil, 1024)
	require.ErrorIs(t, err, ErrTooManyGoRoutines)

	_, err = MultiExp(nil, nil, 1023)
	require.NoError(t, err)
}

// powersOfTwoG1 returns [2^i]G₁ for i in [0, n).
func powersOfTwoG1(t *testing.T, n uint) []bls12381.G1Affine {
	t.Helper()
	_, _, genG1, _ := bls12381.Generators()

	points := make([]bls12381.G1Affine, n)
	if n == 0 {
		return points
	}
	points[0] = genG1
	for i := uint(1); i < n; i++ {
		points[i].Add(&points[i-1], &points[i-1])
	}
	return points
}

func naiveMultiExp(scalars []fr.Element, points []bls12381.G1Affine) bls12381.G1Affine {
	var result bls12381.G1Jac
	for i := range scalars {
		var term bls12381.G1Jac
		var bi big.Int
		term.FromAffine(&points[i])
		term.ScalarMultiplication(&term, scalars[i].BigInt(&bi))
		result.AddAssign(&term)
	}

	var resultAff bls12381.G1Affine
	resultAff.FromJacobian(&result)
	return resultAff
}
