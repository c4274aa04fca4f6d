// Package csprng implements cryptographically secure random samplers
// over the BLS12-381 scalar field and source groups.
package csprng

import (
	"crypto/rand"
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"golang.org/x/crypto/blake2b"
)

// seedSize is the seed size of UniformSampler.
const seedSize = 32

// frWideSize is the number of bytes read per field element.
// Wide reduction from 512 bits keeps the sampling bias negligible.
const frWideSize = 64

// UniformSampler samples values from the uniform distribution.
// This uses blake2b as the underlying prng, seeded from crypto/rand.
type UniformSampler struct {
	prng blake2b.XOF

	buf [frWideSize]byte
}

// NewUniformSampler creates a new UniformSampler.
//
// Fails if the system entropy source is unavailable
// or blake2b initialization fails.
func NewUniformSampler() (*UniformSampler, error) {
	seed := make([]byte, seedSize)
	if _, err := rand.Read(seed); err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	return NewUniformSamplerWithSeed(seed)
}

// NewUniformSamplerWithSeed creates a new UniformSampler with a user supplied seed.
// Sampling is deterministic in the seed.
func NewUniformSamplerWithSeed(seed []byte) (*UniformSampler, error) {
	prng, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, nil)
	if err != nil {
		return nil, err
	}

	if _, err = prng.Write(seed); err != nil {
		return nil, err
	}

	return &UniformSampler{
		prng: prng,
	}, nil
}

// Read implements the [io.Reader] interface.
func (s *UniformSampler) Read(p []byte) (n int, err error) {
	return s.prng.Read(p)
}

// SampleFrAssign uniformly samples a scalar field element and assigns it to eOut.
func (s *UniformSampler) SampleFrAssign(eOut *fr.Element) error {
	if _, err := s.prng.Read(s.buf[:]); err != nil {
		return err
	}
	eOut.SetBytes(s.buf[:])
	return nil
}

// SampleFr uniformly samples a scalar field element.
func (s *UniformSampler) SampleFr() (fr.Element, error) {
	var eOut fr.Element
	err := s.SampleFrAssign(&eOut)
	return eOut, err
}

// SampleNonZeroFr uniformly samples a non-zero scalar field element.
func (s *UniformSampler) SampleNonZeroFr() (fr.Element, error) {
	var eOut fr.Element
	for {
		if err := s.SampleFrAssign(&eOut); err != nil {
			return eOut, err
		}
		if !eOut.IsZero() {
			return eOut, nil
		}
	}
}

// SampleFrSlice uniformly samples a slice of n scalar field elements.
func (s *UniformSampler) SampleFrSlice(n int) ([]fr.Element, error) {
	vOut := make([]fr.Element, n)
	for i := range vOut {
		if err := s.SampleFrAssign(&vOut[i]); err != nil {
			return nil, err
		}
	}
	return vOut, nil
}

// SampleG1 uniformly samples a non-identity point of G1,
// as a random non-zero scalar multiple of the canonical generator.
func (s *UniformSampler) SampleG1() (bls12381.G1Affine, error) {
	var pOut bls12381.G1Affine

	k, err := s.SampleNonZeroFr()
	if err != nil {
		return pOut, err
	}

	_, _, g1, _ := bls12381.Generators()
	pOut.ScalarMultiplication(&g1, k.BigInt(new(big.Int)))
	return pOut, nil
}

// SampleG2 uniformly samples a non-identity point of G2,
// as a random non-zero scalar multiple of the canonical generator.
func (s *UniformSampler) SampleG2() (bls12381.G2Affine, error) {
	var pOut bls12381.G2Affine

	k, err := s.SampleNonZeroFr()
	if err != nil {
		return pOut, err
	}

	_, _, _, g2 := bls12381.Generators()
	pOut.ScalarMultiplication(&g2, k.BigInt(new(big.Int)))
	return pOut, nil
}
