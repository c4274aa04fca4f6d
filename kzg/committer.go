package kzg

import (
	"fmt"
	"sync"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Committer commits evaluation-form vectors against the Lagrange-basis SRS.
//
// Committer is read-only after creation and safe for concurrent use.
type Committer struct {
	Parameters Parameters

	srs SRS
}

// NewCommitter creates a new Committer.
// Returns ErrLengthMismatch if the SRS length does not equal the domain size.
func NewCommitter(params Parameters, srs SRS) (*Committer, error) {
	if len(srs.MonomialG1) != params.domainSize || len(srs.LagrangeG1) != params.domainSize {
		return nil, fmt.Errorf("srs length (%d, %d) does not match domain size %d: %w",
			len(srs.MonomialG1), len(srs.LagrangeG1), params.domainSize, ErrLengthMismatch)
	}

	return &Committer{
		Parameters: params,

		srs: srs,
	}, nil
}

// Commit commits the Hadamard product of publicEval and witnessEval:
//
//	C = sum_k publicEval[k] * witnessEval[k] * LagrangeG1[k].
//
// Commit is deterministic: identical inputs yield bit-identical commitments.
// Returns ErrLengthMismatch if either input length does not equal the domain size.
func (c *Committer) Commit(publicEval, witnessEval []fr.Element) (Commitment, error) {
	return c.commit(publicEval, witnessEval, 1)
}

// CommitParallel is a variant of Commit which computes the Hadamard product
// and the multi-scalar multiplication on a pool of workers.
// Its output is identical to Commit.
func (c *Committer) CommitParallel(publicEval, witnessEval []fr.Element) (Commitment, error) {
	return c.commit(publicEval, witnessEval, c.Parameters.numWorkers)
}

func (c *Committer) commit(publicEval, witnessEval []fr.Element, numWorkers int) (Commitment, error) {
	if len(publicEval) != c.Parameters.domainSize || len(witnessEval) != c.Parameters.domainSize {
		return Commitment{}, fmt.Errorf("input lengths (%d, %d) do not match domain size %d: %w",
			len(publicEval), len(witnessEval), c.Parameters.domainSize, ErrLengthMismatch)
	}

	hadamard := make([]fr.Element, c.Parameters.domainSize)

	var wg sync.WaitGroup
	chunkSize := (c.Parameters.domainSize + numWorkers - 1) / numWorkers
	for i := 0; i < c.Parameters.domainSize; i += chunkSize {
		j := min(i+chunkSize, c.Parameters.domainSize)

		wg.Add(1)
		go func(i, j int) {
			defer wg.Done()

			for k := i; k < j; k++ {
				hadamard[k].Mul(&publicEval[k], &witnessEval[k])
			}
		}(i, j)
	}
	wg.Wait()

	var comJac bls12381.G1Jac
	if _, err := comJac.MultiExp(c.srs.LagrangeG1, hadamard, ecc.MultiExpConfig{NbTasks: numWorkers}); err != nil {
		return Commitment{}, err
	}

	var com Commitment
	com.Value.FromJacobian(&comJac)
	return com, nil
}

// commitMonomial commits a coefficient vector against the monomial-basis SRS.
// The vector may be shorter than the SRS; this is the case for quotient polynomials.
func (c *Committer) commitMonomial(coeffs []fr.Element, numWorkers int) (bls12381.G1Affine, error) {
	var pOut bls12381.G1Affine

	if len(coeffs) > len(c.srs.MonomialG1) {
		return pOut, fmt.Errorf("coefficient length %d exceeds srs length %d: %w",
			len(coeffs), len(c.srs.MonomialG1), ErrLengthMismatch)
	}

	var pJac bls12381.G1Jac
	if _, err := pJac.MultiExp(c.srs.MonomialG1[:len(coeffs)], coeffs, ecc.MultiExpConfig{NbTasks: numWorkers}); err != nil {
		return pOut, err
	}

	pOut.FromJacobian(&pJac)
	return pOut, nil
}
