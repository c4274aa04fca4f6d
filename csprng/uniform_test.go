package csprng_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zkcollective/kzg-prover/csprng"
)

func TestUniformSampler(t *testing.T) {
	t.Run("Deterministic", func(t *testing.T) {
		s0, err := csprng.NewUniformSamplerWithSeed([]byte("csprng-test-seed"))
		assert.NoError(t, err)
		s1, err := csprng.NewUniformSamplerWithSeed([]byte("csprng-test-seed"))
		assert.NoError(t, err)

		v0, err := s0.SampleFrSlice(64)
		assert.NoError(t, err)
		v1, err := s1.SampleFrSlice(64)
		assert.NoError(t, err)

		assert.Equal(t, v0, v1)
	})

	t.Run("DistinctSeeds", func(t *testing.T) {
		s0, err := csprng.NewUniformSamplerWithSeed([]byte("csprng-test-seed-0"))
		assert.NoError(t, err)
		s1, err := csprng.NewUniformSamplerWithSeed([]byte("csprng-test-seed-1"))
		assert.NoError(t, err)

		e0, err := s0.SampleFr()
		assert.NoError(t, err)
		e1, err := s1.SampleFr()
		assert.NoError(t, err)

		assert.False(t, e0.Equal(&e1))
	})

	t.Run("NonZero", func(t *testing.T) {
		s, err := csprng.NewUniformSampler()
		assert.NoError(t, err)

		for i := 0; i < 16; i++ {
			e, err := s.SampleNonZeroFr()
			assert.NoError(t, err)
			assert.False(t, e.IsZero())
		}
	})

	t.Run("Points", func(t *testing.T) {
		s, err := csprng.NewUniformSampler()
		assert.NoError(t, err)

		p1, err := s.SampleG1()
		assert.NoError(t, err)
		assert.True(t, p1.IsOnCurve())
		assert.True(t, p1.IsInSubGroup())
		assert.False(t, p1.IsInfinity())

		p2, err := s.SampleG2()
		assert.NoError(t, err)
		assert.True(t, p2.IsOnCurve())
		assert.True(t, p2.IsInSubGroup())
		assert.False(t, p2.IsInfinity())
	})

	t.Run("Read", func(t *testing.T) {
		s, err := csprng.NewUniformSamplerWithSeed([]byte("csprng-test-read"))
		assert.NoError(t, err)

		buf := make([]byte, 32)
		n, err := s.Read(buf)
		assert.NoError(t, err)
		assert.Equal(t, len(buf), n)
	})
}
