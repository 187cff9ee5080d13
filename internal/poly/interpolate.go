package poly

import (
	"errors"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

var (
	ErrDuplicateAbscissa = errors.New("interpolation points must have distinct x-coordinates")
	ErrMismatchedPoints  = errors.New("number of x-coordinates does not equal the number of y-coordinates")
)

// LagrangeInterpolate returns the unique polynomial of degree at most n-1
// that passes through the n points (xs[i], ys[i]).
//
// All x-coordinates must be distinct. Duplicates are rejected even when their
// y-coordinates agree. An empty set of points yields the zero polynomial.
//
// This runs in O(n^2) and is intended for a small number of points.
func LagrangeInterpolate(xs, ys []fr.Element) (Polynomial, error) {
	if len(xs) != len(ys) {
		return nil, ErrMismatchedPoints
	}
	if err := checkDistinct(xs); err != nil {
		return nil, err
	}

	n := len(xs)
	result := make(Polynomial, n)

	for i := 0; i < n; i++ {
		// L_i(X) = Π_{j≠i} (X - x_j) / (x_i - x_j)
		basis := Polynomial{fr.One()}
		var denominator fr.Element
		denominator.SetOne()

		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			var negXj, diff fr.Element
			negXj.Neg(&xs[j])
			basis = PolyMul(basis, Polynomial{negXj, fr.One()})

			diff.Sub(&xs[i], &xs[j])
			denominator.Mul(&denominator, &diff)
		}

		// The points are distinct so the denominator is non-zero.
		var scale fr.Element
		scale.Inverse(&denominator)
		scale.Mul(&scale, &ys[i])

		result = PolyAdd(result, PolyScale(basis, scale))
	}

	return Normalize(result), nil
}

func checkDistinct(xs []fr.Element) error {
	seen := make(map[fr.Element]struct{}, len(xs))
	for _, x := range xs {
		if _, ok := seen[x]; ok {
			return ErrDuplicateAbscissa
		}
		seen[x] = struct{}{}
	}
	return nil
}
