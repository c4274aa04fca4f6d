package kzg

import "errors"

var (
	// ErrInvalidDomainSize is returned when a requested evaluation domain size
	// or vector length is not the required power of two.
	ErrInvalidDomainSize = errors.New("kzg: domain size is not a power of two")

	// ErrLengthMismatch is returned when vector lengths across
	// transform or commitment inputs do not match the evaluation domain.
	ErrLengthMismatch = errors.New("kzg: vector length mismatch")

	// ErrEntropy is returned when the randomness source fails during setup.
	// Setup must not proceed with a non-random trapdoor.
	ErrEntropy = errors.New("kzg: entropy source failure")

	// ErrInvalidOpening is returned when the quotient polynomial division
	// leaves a non-zero remainder, meaning the claimed evaluation is wrong.
	ErrInvalidOpening = errors.New("kzg: opening division leaves non-zero remainder")

	// ErrInvalidEncoding is returned when a supplied group element is
	// malformed or outside its expected subgroup.
	// It is categorically different from a false proof, which verifies to false without error.
	ErrInvalidEncoding = errors.New("kzg: group element is not in the expected subgroup")

	// ErrInvalidState is returned when a Prover operation is invoked
	// out of order with respect to its lifecycle.
	ErrInvalidState = errors.New("kzg: prover is in an invalid state for this operation")
)
