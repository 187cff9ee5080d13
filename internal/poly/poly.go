package poly

import "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

// Polynomial is a dense univariate polynomial in monomial form.
// The coefficient at index i is the coefficient of X^i.
//
// Trailing zero coefficients are allowed, so two slices of different
// lengths may represent the same polynomial. Use Degree or Equal
// rather than len when that matters.
type Polynomial = []fr.Element

// Degree returns the index of the highest non-zero coefficient.
//
// The zero polynomial (including the empty slice) has degree -1.
func Degree(p Polynomial) int {
	for i := len(p) - 1; i >= 0; i-- {
		if !p[i].IsZero() {
			return i
		}
	}
	return -1
}

// IsZero returns true if every coefficient is zero
func IsZero(p Polynomial) bool {
	return Degree(p) == -1
}

// Normalize returns a copy of `p` without trailing zero coefficients.
func Normalize(p Polynomial) Polynomial {
	return cloneSlice(p[:Degree(p)+1])
}

// Equal returns true if both polynomials have the same non-zero coefficients.
func Equal(a, b Polynomial) bool {
	degree := Degree(a)
	if degree != Degree(b) {
		return false
	}
	for i := 0; i <= degree; i++ {
		if !a[i].Equal(&b[i]) {
			return false
		}
	}
	return true
}

// PolyAdd computes a + b
func PolyAdd(a, b Polynomial) Polynomial {
	if len(a) < len(b) {
		a, b = b, a
	}

	result := cloneSlice(a)
	for i := 0; i < len(b); i++ {
		result[i].Add(&result[i], &b[i])
	}
	return result
}

// PolySub computes a - b
func PolySub(a, b Polynomial) Polynomial {
	size := len(a)
	if len(b) > size {
		size = len(b)
	}

	result := make(Polynomial, size)
	copy(result, a)
	for i := 0; i < len(b); i++ {
		result[i].Sub(&result[i], &b[i])
	}
	return result
}

// PolyScale multiplies every coefficient of `p` by `scalar`.
func PolyScale(p Polynomial, scalar fr.Element) Polynomial {
	result := make(Polynomial, len(p))
	for i := 0; i < len(p); i++ {
		result[i].Mul(&p[i], &scalar)
	}
	return result
}

// PolyMul computes a * b using the schoolbook convolution of the coefficients.
//
// The result has degree deg(a) + deg(b). If either input is the zero polynomial,
// the empty slice is returned.
func PolyMul(a, b Polynomial) Polynomial {
	degA, degB := Degree(a), Degree(b)
	if degA == -1 || degB == -1 {
		return Polynomial{}
	}

	result := make(Polynomial, degA+degB+1)
	var tmp fr.Element
	for i := 0; i <= degA; i++ {
		if a[i].IsZero() {
			continue
		}
		for j := 0; j <= degB; j++ {
			tmp.Mul(&a[i], &b[j])
			result[i+j].Add(&result[i+j], &tmp)
		}
	}
	return result
}

// PolyEval evaluates a polynomial f(x) at a point `z`; f(z)
// using Horner's method.
func PolyEval(poly Polynomial, inputPoint fr.Element) fr.Element {
	result := fr.NewElement(0)

	for i := len(poly) - 1; i >= 0; i-- {
		result.Mul(&result, &inputPoint)
		result.Add(&result, &poly[i])
	}

	return result
}

// DividePolyByXminusA divides f(x) by (x - a) using synthetic division.
//
// It returns the quotient, which has degree deg(f)-1, and the remainder, which
// is equal to f(a). The remainder is zero if and only if `a` is a root of f.
// Neither input is modified.
func DividePolyByXminusA(f Polynomial, a fr.Element) (Polynomial, fr.Element) {
	if len(f) == 0 {
		return Polynomial{}, fr.Element{}
	}

	// clone the slice so we do not modify the slice in place
	quotient := cloneSlice(f)

	var t fr.Element
	for i := len(quotient) - 2; i >= 0; i-- {
		t.Mul(&quotient[i+1], &a)
		quotient[i].Add(&quotient[i], &t)
	}

	// quotient[0] now holds f(a)
	return quotient[1:], quotient[0]
}

// cloneSlice creates a copy of the original slice
//
// It is up to the user to handle the case of a nil slice.
func cloneSlice(original []fr.Element) []fr.Element {
	if original == nil {
		return nil
	}
	cloned := make([]fr.Element, len(original))
	copy(cloned, original)
	return cloned
}
