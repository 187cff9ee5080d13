package gokzg10_test

import (
	"fmt"

	gokzg10 "github.com/crate-crypto/go-kzg10"
)

func ExampleContext_Commit() {
	ctx, err := gokzg10.NewContext(4)
	if err != nil {
		panic(err)
	}

	// p(X) = -19X² + 114X - 60
	coeffs := gokzg10.PolynomialCoeffs{
		gokzg10.ScalarFromInt64(-60),
		gokzg10.ScalarFromInt64(114),
		gokzg10.ScalarFromInt64(-19),
	}
	commitment, err := ctx.Commit(coeffs, 0)
	if err != nil {
		panic(err)
	}

	z := gokzg10.ScalarFromInt64(2)
	proof, value, err := ctx.ComputeKZGProof(coeffs, z, 0)
	if err != nil {
		panic(err)
	}

	if err := ctx.VerifyKZGProof(commitment, z, value, proof); err != nil {
		panic(err)
	}
	fmt.Printf("p(%s) = %s\n", z, value)
	// Output: p(2) = 92
}

func ExampleContext_CommitToInterpolation() {
	ctx, err := gokzg10.NewContext(4)
	if err != nil {
		panic(err)
	}

	xs := []gokzg10.Scalar{gokzg10.ScalarFromInt64(1), gokzg10.ScalarFromInt64(2), gokzg10.ScalarFromInt64(3)}
	ys := []gokzg10.Scalar{gokzg10.ScalarFromInt64(35), gokzg10.ScalarFromInt64(92), gokzg10.ScalarFromInt64(111)}
	coeffs, commitment, err := ctx.CommitToInterpolation(xs, ys, 0)
	if err != nil {
		panic(err)
	}

	proof, value, err := ctx.ComputeKZGProof(coeffs, xs[1], 0)
	if err != nil {
		panic(err)
	}

	valid, err := ctx.IsValidKZGProof(commitment, xs[1], value, proof)
	if err != nil {
		panic(err)
	}
	fmt.Println(len(coeffs), value, valid)

	// A different claimed value is rejected
	valid, err = ctx.IsValidKZGProof(commitment, xs[1], ys[2], proof)
	if err != nil {
		panic(err)
	}
	fmt.Println(valid)
	// Output:
	// 3 92 true
	// false
}
