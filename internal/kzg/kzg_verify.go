package kzg

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Verify a KZG proof
//
// This checks that e(C - [f(a)]G₁, H) = e(π, [τ - a]H).
// If the check fails, ErrVerifyOpeningProof is returned. Any other error
// means that the pairing could not be computed.
func Verify(commitment *Commitment, proof *OpeningProof, openKey *OpeningKey) error {
	// [-1]G₂
	// It's possible to precompute this, however Negation
	// is cheap (2 Fp negations), so doing it per verify
	// should be insignificant compared to the rest of Verify.
	var negG2 bls12381.G2Affine
	negG2.Neg(&openKey.GenG2)

	// Convert the G2 generator to Jacobian for
	// later computations.
	var genG2Jac bls12381.G2Jac
	genG2Jac.FromAffine(&openKey.GenG2)

	// [a]G₂
	var inputPointG2Jac bls12381.G2Jac
	var pointBigInt big.Int
	proof.InputPoint.BigInt(&pointBigInt)
	inputPointG2Jac.ScalarMultiplication(&genG2Jac, &pointBigInt)

	// [τ - a]G₂
	var alphaMinusAG2Jac bls12381.G2Jac
	alphaMinusAG2Jac.FromAffine(&openKey.AlphaG2)
	alphaMinusAG2Jac.SubAssign(&inputPointG2Jac)

	// [τ - a]G₂ (Convert to Affine format)
	var alphaMinusAG2Aff bls12381.G2Affine
	alphaMinusAG2Aff.FromJacobian(&alphaMinusAG2Jac)

	// [f(a)]G₁
	var claimedValueG1Jac bls12381.G1Jac
	var claimedValueBigInt big.Int
	proof.ClaimedValue.BigInt(&claimedValueBigInt)
	claimedValueG1Jac.FromAffine(&openKey.GenG1)
	claimedValueG1Jac.ScalarMultiplication(&claimedValueG1Jac, &claimedValueBigInt)

	// [f(τ) - f(a)]G₁
	var fminusfaG1Jac bls12381.G1Jac
	fminusfaG1Jac.FromAffine(commitment)
	fminusfaG1Jac.SubAssign(&claimedValueG1Jac)

	// [f(τ) - f(a)]G₁ (Convert to Affine format)
	var fminusfaG1Aff bls12381.G1Affine
	fminusfaG1Aff.FromJacobian(&fminusfaG1Jac)

	// e(C - [f(a)]G₁, -H) * e(π, [τ - a]H) == 1
	check, err := bls12381.PairingCheck(
		[]bls12381.G1Affine{fminusfaG1Aff, proof.QuotientCommitment},
		[]bls12381.G2Affine{negG2, alphaMinusAG2Aff},
	)
	if err != nil {
		return err
	}
	if !check {
		return ErrVerifyOpeningProof
	}

	return nil
}
