package utils

import (
	"fmt"
	"io"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"golang.org/x/crypto/chacha20"
)

// The number of random bytes used to sample a scalar.
//
// This is twice the size of the scalar field, so that the bias
// introduced by reducing modulo r is negligible.
const wideScalarSize = 2 * fr.Bytes

// Computes x^0 to x^n-1
// If n==0: an empty slice is returned
func ComputePowers(x fr.Element, n uint) []fr.Element {
	if n == 0 {
		return []fr.Element{}
	}
	return computePowers(x, n)
}

// Computes x^0 to x^n-1
// This function assumes that n > 0
func computePowers(x fr.Element, n uint) []fr.Element {
	powers := make([]fr.Element, n)
	powers[0].SetOne()
	for i := uint(1); i < n; i++ {
		powers[i].Mul(&powers[i-1], &x)
	}

	return powers
}

// Tries to convert a byte slice to a field element.
// Returns an error if the byte slice was not a canonical representation
// of the field element.
// Canonical meaning that the big integer interpretation was less than
// the field's prime. ie it lies within the range [0, p-1] (inclusive)
func ReduceCanonical(serScalar []byte) (fr.Element, error) {
	var scalar fr.Element
	err := scalar.SetBytesCanonical(serScalar)
	return scalar, err
}

// SampleScalar reads bytes from `rand` and reduces them into a
// uniformly distributed field element.
func SampleScalar(rand io.Reader) (fr.Element, error) {
	var buf [wideScalarSize]byte
	if _, err := io.ReadFull(rand, buf[:]); err != nil {
		return fr.Element{}, fmt.Errorf("could not read randomness: %w", err)
	}

	var scalar fr.Element
	scalar.SetBytes(buf[:])

	// Clear the bytes that the scalar was derived from
	for i := range buf {
		buf[i] = 0
	}

	return scalar, nil
}

// deterministicReader is a ChaCha20 keystream keyed by a fixed seed.
type deterministicReader struct {
	cipher *chacha20.Cipher
}

// NewDeterministicReader returns an io.Reader which produces the same
// stream of bytes for the same seed.
//
// This is only meant for reproducible tests. Anyone who knows the seed
// can reproduce every value sampled from the reader.
func NewDeterministicReader(seed [32]byte) io.Reader {
	var nonce [chacha20.NonceSize]byte
	cipher, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce[:])
	if err != nil {
		// Only reachable if the key or nonce sizes are wrong
		panic(err)
	}
	return &deterministicReader{cipher: cipher}
}

func (r *deterministicReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	r.cipher.XORKeyStream(p, p)
	return len(p), nil
}
