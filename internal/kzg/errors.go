package kzg

import "errors"

var (
	ErrInvalidDegree             = errors.New("invalid degree (negative, larger than the SRS or larger than the supported maximum)")
	ErrInvalidSecret             = errors.New("trapdoor secret must be a non-zero scalar")
	ErrDivisionInvariantViolated = errors.New("division by (X - z) left a non-zero remainder")
	ErrVerifyOpeningProof        = errors.New("can't verify opening proof")
)
