package kzg

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// A commitment to a polynomial.
//
// This is [f(τ)]G₁ where τ is the secret used to create the SRS.
type Commitment = bls12381.G1Affine

// MaxSupportedDegree is the largest maximum degree that an SRS can be generated for.
//
// The scalar field of BLS12-381 places no tighter bound on the degree, so this
// is a bound on the memory needed to hold the powers of τ.
const MaxSupportedDegree = 1 << 28
