package gokzg10

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/crate-crypto/go-kzg10/internal/kzg"
	"golang.org/x/sync/errgroup"
)

// VerifyKZGProof checks that the polynomial committed to by `commitment`
// evaluates to `claimedValueBytes` at `inputPointBytes`.
//
// A nil error means that the proof is valid. ErrVerifyOpeningProof means that
// it is not. Any other error means that one of the inputs could not be decoded.
func (ctx *Context) VerifyKZGProof(commitment KZGCommitment, inputPointBytes, claimedValueBytes Scalar, kzgProof KZGProof) error {
	// 1. Deserialization
	//
	claimedValue, err := DeserializeScalar(claimedValueBytes)
	if err != nil {
		return err
	}

	inputPoint, err := DeserializeScalar(inputPointBytes)
	if err != nil {
		return err
	}

	polynomialCommitment, err := DeserializeG1Point(G1Point(commitment))
	if err != nil {
		return fmt.Errorf("invalid commitment: %w", err)
	}

	quotientCommitment, err := DeserializeG1Point(G1Point(kzgProof))
	if err != nil {
		return fmt.Errorf("invalid proof: %w", err)
	}

	// 2. Verify opening proof
	//
	proof := kzg.OpeningProof{
		QuotientCommitment: quotientCommitment,
		InputPoint:         inputPoint,
		ClaimedValue:       claimedValue,
	}

	return kzg.Verify(&polynomialCommitment, &proof, ctx.openKey)
}

// IsValidKZGProof is like VerifyKZGProof, except that a proof which does not
// verify is reported as false rather than as an error.
//
// A non-nil error means that verification could not be carried out.
func (ctx *Context) IsValidKZGProof(commitment KZGCommitment, inputPointBytes, claimedValueBytes Scalar, kzgProof KZGProof) (bool, error) {
	err := ctx.VerifyKZGProof(commitment, inputPointBytes, claimedValueBytes, kzgProof)
	if errors.Is(err, ErrVerifyOpeningProof) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// VerifyKZGProofBatchPar verifies independent opening proofs, using at most
// one go-routine per CPU.
//
// Every proof is checked with its own pairing check; the proofs are not aggregated.
// A nil error is returned only if every proof is valid.
func (ctx *Context) VerifyKZGProofBatchPar(commitments []KZGCommitment, inputPoints, claimedValues []Scalar, proofs []KZGProof) error {
	// 1. Check that all components in the batch have the same size
	//
	batchSize := len(commitments)
	lengthsAreEqual := batchSize == len(inputPoints) && batchSize == len(claimedValues) && batchSize == len(proofs)
	if !lengthsAreEqual {
		return ErrBatchLengthCheck
	}

	var errG errgroup.Group
	errG.SetLimit(runtime.NumCPU())

	// 2. Verify each opening proof using green threads
	for i := 0; i < batchSize; i++ {
		i := i
		errG.Go(func() error {
			return ctx.VerifyKZGProof(commitments[i], inputPoints[i], claimedValues[i], proofs[i])
		})
	}

	// 3. Wait for all go routines to complete and check if any returned an error
	return errG.Wait()
}
