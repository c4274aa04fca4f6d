package kzg

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/fft"
)

// Encoder converts vectors between coefficient and evaluation form
// over the 2n-point evaluation domain.
// Forward and Inverse are exact inverses of each other.
//
// Encoder is stateless and safe for concurrent use.
type Encoder struct {
	Parameters Parameters

	domain *fft.Domain
}

// NewEncoder creates a new Encoder.
func NewEncoder(params Parameters) *Encoder {
	return &Encoder{
		Parameters: params,

		domain: fft.NewDomain(uint64(params.domainSize)),
	}
}

// Domain returns the underlying evaluation domain.
func (e *Encoder) Domain() *fft.Domain {
	return e.domain
}

// Pad returns v zero-padded to the domain size.
// Returns ErrLengthMismatch if v is longer than the domain size.
func (e *Encoder) Pad(v []fr.Element) ([]fr.Element, error) {
	if len(v) > e.Parameters.domainSize {
		return nil, fmt.Errorf("length %d exceeds domain size %d: %w", len(v), e.Parameters.domainSize, ErrLengthMismatch)
	}

	vOut := make([]fr.Element, e.Parameters.domainSize)
	copy(vOut, v)
	return vOut, nil
}

// Forward transforms a coefficient vector to evaluation form.
// Returns ErrLengthMismatch if the length of v does not equal the domain size.
func (e *Encoder) Forward(v []fr.Element) ([]fr.Element, error) {
	vOut := make([]fr.Element, len(v))
	copy(vOut, v)
	if err := e.ForwardInPlace(vOut); err != nil {
		return nil, err
	}
	return vOut, nil
}

// ForwardInPlace transforms a coefficient vector to evaluation form in-place.
// Returns ErrLengthMismatch if the length of v does not equal the domain size.
func (e *Encoder) ForwardInPlace(v []fr.Element) error {
	if err := e.checkLength(v); err != nil {
		return err
	}

	e.domain.FFT(v, fft.DIF)
	fft.BitReverse(v)
	return nil
}

// Inverse transforms an evaluation vector to coefficient form.
// Returns ErrLengthMismatch if the length of v does not equal the domain size.
func (e *Encoder) Inverse(v []fr.Element) ([]fr.Element, error) {
	vOut := make([]fr.Element, len(v))
	copy(vOut, v)
	if err := e.InverseInPlace(vOut); err != nil {
		return nil, err
	}
	return vOut, nil
}

// InverseInPlace transforms an evaluation vector to coefficient form in-place.
// Returns ErrLengthMismatch if the length of v does not equal the domain size.
func (e *Encoder) InverseInPlace(v []fr.Element) error {
	if err := e.checkLength(v); err != nil {
		return err
	}

	e.domain.FFTInverse(v, fft.DIF)
	fft.BitReverse(v)
	return nil
}

func (e *Encoder) checkLength(v []fr.Element) error {
	if len(v) != e.Parameters.domainSize {
		return fmt.Errorf("length %d does not match domain size %d: %w", len(v), e.Parameters.domainSize, ErrLengthMismatch)
	}
	return nil
}
