package multiexp

import "errors"

var (
	ErrTooManyGoRoutines = errors.New("number of go-routines must be less than 1024")
	ErrMismatchedLengths = errors.New("number of scalars does not equal the number of points")
)
