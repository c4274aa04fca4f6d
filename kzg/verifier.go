package kzg

import (
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Verifier checks opening proofs against commitments using only public data:
// it holds the verifying key derived at setup and never sees the trapdoor.
//
// Verifier is stateless and safe for concurrent use.
type Verifier struct {
	Parameters Parameters

	VerifyingKey VerifyingKey
}

// NewVerifier creates a new Verifier.
// Returns ErrInvalidEncoding if any verifying key element is malformed.
func NewVerifier(params Parameters, vk VerifyingKey) (*Verifier, error) {
	if !vk.G1.IsOnCurve() || !vk.G1.IsInSubGroup() || vk.G1.IsInfinity() {
		return nil, fmt.Errorf("verifying key G1 generator: %w", ErrInvalidEncoding)
	}
	if !vk.G2.IsOnCurve() || !vk.G2.IsInSubGroup() || vk.G2.IsInfinity() {
		return nil, fmt.Errorf("verifying key G2 generator: %w", ErrInvalidEncoding)
	}
	if !vk.TauG2.IsOnCurve() || !vk.TauG2.IsInSubGroup() {
		return nil, fmt.Errorf("verifying key tau*G2: %w", ErrInvalidEncoding)
	}

	return &Verifier{
		Parameters: params,

		VerifyingKey: vk,
	}, nil
}

// Verify checks the pairing equation
//
//	e(C - y*G1, G2) == e(pi, tau*G2 - z*G2)
//
// for the commitment C and the opening proof (z, y, pi).
//
// A well-formed but cryptographically false proof returns (false, nil);
// a malformed commitment or proof element returns ErrInvalidEncoding
// before any pairing arithmetic is attempted.
func (v *Verifier) Verify(com Commitment, proof OpeningProof) (bool, error) {
	if !com.Value.IsOnCurve() || !com.Value.IsInSubGroup() {
		return false, fmt.Errorf("commitment: %w", ErrInvalidEncoding)
	}
	if !proof.Quotient.IsOnCurve() || !proof.Quotient.IsInSubGroup() {
		return false, fmt.Errorf("opening proof quotient: %w", ErrInvalidEncoding)
	}

	// C - y*G1
	var yBig big.Int
	var yG1, lhsG1 bls12381.G1Affine
	yG1.ScalarMultiplication(&v.VerifyingKey.G1, proof.ClaimedValue.BigInt(&yBig))
	lhsG1.Sub(&com.Value, &yG1)

	// tau*G2 - z*G2
	var zBig big.Int
	var zG2, rhsG2 bls12381.G2Affine
	zG2.ScalarMultiplication(&v.VerifyingKey.G2, proof.Point.BigInt(&zBig))
	rhsG2.Sub(&v.VerifyingKey.TauG2, &zG2)

	// e(C - y*G1, G2) * e(-pi, tau*G2 - z*G2) == 1
	var negQuotient bls12381.G1Affine
	negQuotient.Neg(&proof.Quotient)

	return bls12381.PairingCheck(
		[]bls12381.G1Affine{lhsG1, negQuotient},
		[]bls12381.G2Affine{v.VerifyingKey.G2, rhsG2},
	)
}
