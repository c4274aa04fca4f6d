package kzg_test

import (
	"encoding/binary"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"

	"github.com/zkcollective/kzg-prover/csprng"
	"github.com/zkcollective/kzg-prover/kzg"
)

// seededFrSlice deterministically derives n field elements from a uint64 seed.
func seededFrSlice(seed uint64, n int) []fr.Element {
	var seedBytes [8]byte
	binary.BigEndian.PutUint64(seedBytes[:], seed)

	sampler, err := csprng.NewUniformSamplerWithSeed(seedBytes[:])
	if err != nil {
		panic(err)
	}

	v, err := sampler.SampleFrSlice(n)
	if err != nil {
		panic(err)
	}
	return v
}

func TestEncoder(t *testing.T) {
	paramsSmall := kzg.ParametersLiteral{Degree: 4}.Compile()
	ecd := kzg.NewEncoder(paramsSmall)

	t.Run("EvaluationsOverRootsOfUnity", func(t *testing.T) {
		coeffs := make([]fr.Element, 4)
		for i := range coeffs {
			coeffs[i].SetUint64(uint64(i + 1))
		}

		padded, err := ecd.Pad(coeffs)
		assert.NoError(t, err)
		assert.Equal(t, paramsSmall.DomainSize(), len(padded))

		evals, err := ecd.Forward(padded)
		assert.NoError(t, err)

		// evals[k] must equal p(w^k) for the domain generator w.
		var wk fr.Element
		wk.SetOne()
		for k := 0; k < paramsSmall.DomainSize(); k++ {
			valueReal := evalAt(padded, wk)
			assert.True(t, evals[k].Equal(&valueReal))
			wk.Mul(&wk, &ecd.Domain().Generator)
		}

		back, err := ecd.Inverse(evals)
		assert.NoError(t, err)
		assert.Equal(t, padded, back)
	})

	t.Run("PadTooLong", func(t *testing.T) {
		_, err := ecd.Pad(make([]fr.Element, paramsSmall.DomainSize()+1))
		assert.ErrorIs(t, err, kzg.ErrLengthMismatch)
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		_, err := ecd.Forward(make([]fr.Element, paramsSmall.Degree()))
		assert.ErrorIs(t, err, kzg.ErrLengthMismatch)
		_, err = ecd.Inverse(make([]fr.Element, paramsSmall.Degree()))
		assert.ErrorIs(t, err, kzg.ErrLengthMismatch)
	})
}

func TestEncoderProperties(t *testing.T) {
	ecd := kzg.NewEncoder(params)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 20

	properties := gopter.NewProperties(parameters)

	properties.Property("inverse(forward(v)) == v", prop.ForAll(
		func(seed uint64) bool {
			v := seededFrSlice(seed, params.DomainSize())

			evals, err := ecd.Forward(v)
			if err != nil {
				return false
			}
			back, err := ecd.Inverse(evals)
			if err != nil {
				return false
			}

			for i := range v {
				if !v[i].Equal(&back[i]) {
					return false
				}
			}
			return true
		},
		gen.UInt64(),
	))

	properties.Property("forward(u + v) == forward(u) + forward(v)", prop.ForAll(
		func(seedU, seedV uint64) bool {
			u := seededFrSlice(seedU, params.DomainSize())
			v := seededFrSlice(seedV, params.DomainSize())

			sum := make([]fr.Element, params.DomainSize())
			for i := range sum {
				sum[i].Add(&u[i], &v[i])
			}

			uEvals, err := ecd.Forward(u)
			if err != nil {
				return false
			}
			vEvals, err := ecd.Forward(v)
			if err != nil {
				return false
			}
			sumEvals, err := ecd.Forward(sum)
			if err != nil {
				return false
			}

			var sumReal fr.Element
			for i := range sumEvals {
				sumReal.Add(&uEvals[i], &vEvals[i])
				if !sumEvals[i].Equal(&sumReal) {
					return false
				}
			}
			return true
		},
		gen.UInt64(),
		gen.UInt64(),
	))

	properties.Property("forward(c * v) == c * forward(v)", prop.ForAll(
		func(seed, c uint64) bool {
			v := seededFrSlice(seed, params.DomainSize())

			var cElem fr.Element
			cElem.SetUint64(c)

			scaled := make([]fr.Element, params.DomainSize())
			for i := range scaled {
				scaled[i].Mul(&cElem, &v[i])
			}

			vEvals, err := ecd.Forward(v)
			if err != nil {
				return false
			}
			scaledEvals, err := ecd.Forward(scaled)
			if err != nil {
				return false
			}

			var scaledReal fr.Element
			for i := range scaledEvals {
				scaledReal.Mul(&cElem, &vEvals[i])
				if !scaledEvals[i].Equal(&scaledReal) {
					return false
				}
			}
			return true
		},
		gen.UInt64(),
		gen.UInt64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
