package gokzg10

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/crate-crypto/go-kzg10/internal/kzg"
)

// Context holds the structured reference string needed to commit to
// polynomials, create opening proofs and verify them.
//
// A Context is immutable once created, so a single instance can be
// shared by any number of go-routines.
type Context struct {
	commitKey *kzg.CommitKey
	openKey   *kzg.OpeningKey
}

// MaxSupportedDegree is the largest degree that a new Context can be created for.
const MaxSupportedDegree = kzg.MaxSupportedDegree

// NewContext creates a new context which can commit to polynomials of
// degree at most `maxDegree`.
//
// The trapdoor is sampled from crypto/rand and discarded once the
// reference string has been derived from it.
func NewContext(maxDegree int) (*Context, error) {
	return NewContextWithRandomness(maxDegree, rand.Reader)
}

// NewContextWithRandomness is like NewContext, except that the trapdoor
// is sampled from `randomness`.
//
// The security of every commitment made under the returned context rests
// on nobody being able to reproduce the bytes read from `randomness`.
// Seeded readers should only be used for tests.
func NewContextWithRandomness(maxDegree int, randomness io.Reader) (*Context, error) {
	srs, err := kzg.NewSRS(maxDegree, randomness)
	if err != nil {
		return nil, err
	}
	return newContextFromSRS(srs), nil
}

// NewContextInsecure creates a new context whose trapdoor is `secret`.
//
// The `Insecure` denotes that this method should not be used in
// production since the secret is known. Anybody who knows it can open
// a commitment to any value.
func NewContextInsecure(maxDegree int, secret int64) (*Context, error) {
	srs, err := kzg.NewSRSInsecure(maxDegree, big.NewInt(secret))
	if err != nil {
		return nil, err
	}
	return newContextFromSRS(srs), nil
}

func newContextFromSRS(srs *kzg.SRS) *Context {
	return &Context{
		commitKey: &srs.CommitKey,
		openKey:   &srs.OpeningKey,
	}
}

// MaxDegree returns the largest degree of a polynomial that this
// context can commit to.
func (ctx *Context) MaxDegree() int {
	return len(ctx.commitKey.G1) - 1
}
