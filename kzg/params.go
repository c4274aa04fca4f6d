// Package kzg implements a KZG-style polynomial commitment scheme over BLS12-381,
// with a trusted setup in monomial and Lagrange basis,
// commitments to evaluation-form vectors, and pairing-checked opening proofs.
package kzg

import (
	"fmt"
	"runtime"

	"github.com/zkcollective/kzg-prover/num"
)

// ParametersLiteral is a structure for the commitment scheme parameters.
type ParametersLiteral struct {
	// Degree is the length of committed witness vectors.
	// Denoted as n. Must be a power of two.
	Degree int

	// NumWorkers is the number of workers used by the parallel variants
	// of setup, hashing and commitment.
	// If zero or negative, it defaults to the number of CPUs.
	NumWorkers int
}

// Compile transforms ParametersLiteral to read-only Parameters.
// If there is any invalid parameter in the literal, it panics.
// Default parameters are guaranteed to be compiled without panics.
func (p ParametersLiteral) Compile() Parameters {
	params, err := NewParameters(p)
	if err != nil {
		panic(err)
	}
	return params
}

// NewParameters transforms ParametersLiteral to read-only Parameters.
// Returns ErrInvalidDomainSize if Degree is not a power of two.
func NewParameters(p ParametersLiteral) (Parameters, error) {
	if !num.IsPowerOfTwo(p.Degree) {
		return Parameters{}, fmt.Errorf("degree %d: %w", p.Degree, ErrInvalidDomainSize)
	}

	numWorkers := p.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return Parameters{
		degree:     p.Degree,
		domainSize: 2 * p.Degree,
		numWorkers: numWorkers,
	}, nil
}

// Parameters is a read-only structure for the commitment scheme parameters.
type Parameters struct {
	// degree is the length of committed witness vectors.
	// Denoted as n.
	degree int
	// domainSize is the size of the evaluation domain, and the length of the SRS.
	// Equals 2n.
	domainSize int
	// numWorkers is the number of workers used by parallel variants.
	numWorkers int
}

// Degree returns the length of committed witness vectors.
func (p Parameters) Degree() int {
	return p.degree
}

// DomainSize returns the size of the evaluation domain.
func (p Parameters) DomainSize() int {
	return p.domainSize
}

// NumWorkers returns the number of workers used by parallel variants.
func (p Parameters) NumWorkers() int {
	return p.numWorkers
}
