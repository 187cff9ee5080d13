package gokzg10

import (
	"errors"

	"github.com/crate-crypto/go-kzg10/internal/kzg"
	"github.com/crate-crypto/go-kzg10/internal/poly"
)

var (
	ErrBatchLengthCheck    = errors.New("all designated elements in the batch should have the same size")
	ErrNonCanonicalScalar  = errors.New("scalar is not canonical when interpreted as a big integer in big-endian")
	ErrInvalidTrustedSetup = errors.New("trusted setup is not well formed")
	ErrInvalidScalarString = errors.New("scalar string is not a decimal or 0x-prefixed hexadecimal integer")
)

// Errors returned by the underlying commitment scheme.
//
// ErrVerifyOpeningProof is the only one of these which is an expected outcome:
// it means that the proof was well formed but did not verify.
// ErrDivisionInvariantViolated indicates a bug in this library.
var (
	ErrInvalidDegree             = kzg.ErrInvalidDegree
	ErrVerifyOpeningProof        = kzg.ErrVerifyOpeningProof
	ErrDivisionInvariantViolated = kzg.ErrDivisionInvariantViolated
	ErrDuplicateAbscissa         = poly.ErrDuplicateAbscissa
	ErrMismatchedPoints          = poly.ErrMismatchedPoints
)
