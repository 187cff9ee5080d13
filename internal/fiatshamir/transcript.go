package fiatshamir

import (
	"crypto/sha256"
	"encoding/binary"
	"hash"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// The transcript is used to create challenge scalars.
// See: Fiat-Shamir
type Transcript struct {
	state hash.Hash
}

func NewTranscript(label string) *Transcript {
	transcript := &Transcript{
		state: sha256.New(),
	}
	transcript.domainSep(label)

	return transcript
}

func (t *Transcript) domainSep(label string) {
	t.appendUint64(uint64(len(label)))
	t.state.Write([]byte(label))
}

func (t *Transcript) appendUint64(number uint64) {
	var bytes [8]byte
	binary.BigEndian.PutUint64(bytes[:], number)
	t.state.Write(bytes[:])
}

// AppendG1Points appends the number of points, followed by each point
// in compressed form.
func (t *Transcript) AppendG1Points(points []bls12381.G1Affine) {
	t.appendUint64(uint64(len(points)))
	for i := range points {
		pointBytes := points[i].Bytes()
		t.state.Write(pointBytes[:])
	}
}

func (t *Transcript) AppendG2Point(point bls12381.G2Affine) {
	pointBytes := point.Bytes()
	t.state.Write(pointBytes[:])
}

// ChallengeScalar computes a challenge from everything appended so far.
//
// 64 bytes are derived from the transcript state and reduced modulo the
// order of the scalar field, so the challenge is close to uniform.
// The state is then replaced by its digest, so calling this twice
// yields two different challenges.
func (t *Transcript) ChallengeScalar() fr.Element {
	compressedState := t.state.Sum(nil)

	var wide [2 * sha256.Size]byte
	for i := 0; i < 2; i++ {
		digest := sha256.Sum256(append(compressedState[:len(compressedState):len(compressedState)], byte(i)))
		copy(wide[i*sha256.Size:], digest[:])
	}

	var challenge fr.Element
	challenge.SetBytes(wide[:])

	t.state.Reset()
	t.state.Write(compressedState)

	return challenge
}
