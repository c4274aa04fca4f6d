package kzg

import (
	"fmt"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/zkcollective/kzg-prover/logger"
)

// Open produces an opening proof for the committed polynomial at point z.
// The claimed value y = p(z) is computed here and embedded in the proof.
// Returns ErrInvalidState unless a commitment was produced for the current round.
func (p *Prover) Open(z fr.Element) (OpeningProof, error) {
	if p.state != StateCommitted && p.state != StateOpened {
		return OpeningProof{}, fmt.Errorf("open in state %v: %w", p.state, ErrInvalidState)
	}

	log := logger.Logger().With().Str("component", "prover").Logger()
	start := time.Now()

	// Evaluations of the committed polynomial h = publicEval o witnessEval.
	hEval := make([]fr.Element, p.Parameters.domainSize)
	for k := range hEval {
		hEval[k].Mul(&p.publicEval[k], &p.witnessEval[k])
	}

	coeffs, err := p.Encoder.Inverse(hEval)
	if err != nil {
		return OpeningProof{}, err
	}

	proof, err := p.openCoeffs(coeffs, z)
	if err != nil {
		return OpeningProof{}, err
	}

	p.state = StateOpened

	log.Debug().Dur("took", time.Since(start)).Msg("opening proof produced")

	return proof, nil
}

// openCoeffs opens a coefficient-form polynomial at z
// by committing to the quotient (p(X) - p(z)) / (X - z) over the monomial SRS.
func (p *Prover) openCoeffs(coeffs []fr.Element, z fr.Element) (OpeningProof, error) {
	y := evaluate(coeffs, z)

	quotient, err := divideByLinear(coeffs, z, y)
	if err != nil {
		return OpeningProof{}, err
	}

	quotientCom, err := p.Committer.commitMonomial(quotient, p.Parameters.numWorkers)
	if err != nil {
		return OpeningProof{}, err
	}

	return OpeningProof{
		Point:        z,
		ClaimedValue: y,
		Quotient:     quotientCom,
	}, nil
}

// evaluate returns p(z) for a coefficient-form polynomial, by Horner's method.
func evaluate(coeffs []fr.Element, z fr.Element) fr.Element {
	var res fr.Element
	if len(coeffs) == 0 {
		return res
	}

	res.Set(&coeffs[len(coeffs)-1])
	for i := len(coeffs) - 2; i >= 0; i-- {
		res.Mul(&res, &z).Add(&res, &coeffs[i])
	}
	return res
}

// divideByLinear divides p(X) - y by (X - z) using synthetic division,
// returning the quotient, which has degree one less than p.
//
// The division is exact whenever y is the true evaluation p(z);
// a non-zero remainder signals a caller bug and returns ErrInvalidOpening.
func divideByLinear(coeffs []fr.Element, z, y fr.Element) ([]fr.Element, error) {
	q := make([]fr.Element, len(coeffs))
	copy(q, coeffs)

	q[0].Sub(&q[0], &y)

	var t fr.Element
	for i := len(q) - 2; i >= 0; i-- {
		t.Mul(&q[i+1], &z)
		q[i].Add(&q[i], &t)
	}

	// After synthetic division q[0] holds the remainder p(z) - y.
	if !q[0].IsZero() {
		return nil, fmt.Errorf("claimed value does not match evaluation at point: %w", ErrInvalidOpening)
	}

	return q[1:], nil
}
