package kzg

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// SRS is a structured reference string over G1.
// It is immutable after generation and safe for concurrent use.
type SRS struct {
	// MonomialG1 is the SRS in monomial basis.
	// MonomialG1[k] = tau^k * G for k = 0 .. 2n-1.
	MonomialG1 []bls12381.G1Affine
	// LagrangeG1 is the SRS in Lagrange basis over the 2n evaluation domain.
	// LagrangeG1[k] = L_k(tau) * G.
	LagrangeG1 []bls12381.G1Affine
}

// VerifyingKey holds the public elements needed to verify opening proofs.
// It is derived once alongside the SRS and never contains the trapdoor itself.
type VerifyingKey struct {
	// G1 is the G1 generator of the SRS. Equals MonomialG1[0].
	G1 bls12381.G1Affine
	// G2 is the G2 generator sampled at setup.
	G2 bls12381.G2Affine
	// TauG2 is tau * G2.
	TauG2 bls12381.G2Affine
}

// Commitment is a polynomial commitment.
type Commitment struct {
	// Value is the committed group element.
	// Denoted as C.
	Value bls12381.G1Affine
}

// Equal returns whether two commitments are equal.
func (c Commitment) Equal(other Commitment) bool {
	return c.Value.Equal(&other.Value)
}

// OpeningProof is a proof that the committed polynomial
// evaluates to ClaimedValue at Point.
type OpeningProof struct {
	// Point is the evaluation point.
	// Denoted as z.
	Point fr.Element
	// ClaimedValue is the claimed evaluation p(z).
	// Denoted as y.
	ClaimedValue fr.Element
	// Quotient is the commitment to the quotient polynomial (p(X) - y) / (X - z).
	// Denoted as pi.
	Quotient bls12381.G1Affine
}

// NewSRS creates a new SRS with zero-valued elements.
func NewSRS(params Parameters) SRS {
	return SRS{
		MonomialG1: make([]bls12381.G1Affine, params.domainSize),
		LagrangeG1: make([]bls12381.G1Affine, params.domainSize),
	}
}
