package kzg

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/assert"

	"github.com/zkcollective/kzg-prover/csprng"
)

func TestEvaluate(t *testing.T) {
	var z fr.Element
	z.SetUint64(7)

	t.Run("Empty", func(t *testing.T) {
		res := evaluate(nil, z)
		assert.True(t, res.IsZero())
	})

	t.Run("Constant", func(t *testing.T) {
		var c fr.Element
		c.SetUint64(5)

		res := evaluate([]fr.Element{c}, z)
		assert.True(t, res.Equal(&c))
	})

	t.Run("Linear", func(t *testing.T) {
		// p(X) = 3 + 2X, p(7) = 17.
		coeffs := make([]fr.Element, 2)
		coeffs[0].SetUint64(3)
		coeffs[1].SetUint64(2)

		var valueReal fr.Element
		valueReal.SetUint64(17)

		res := evaluate(coeffs, z)
		assert.True(t, res.Equal(&valueReal))
	})
}

func TestDivideByLinear(t *testing.T) {
	coeffs := make([]fr.Element, 5)
	for i := range coeffs {
		coeffs[i].SetUint64(uint64(i + 1))
	}

	var z fr.Element
	z.SetUint64(11)
	y := evaluate(coeffs, z)

	t.Run("Exact", func(t *testing.T) {
		quotient, err := divideByLinear(coeffs, z, y)
		assert.NoError(t, err)
		assert.Equal(t, len(coeffs)-1, len(quotient))

		// (X - z) * q(X) + y must reconstruct p(X).
		var tmp fr.Element
		r := make([]fr.Element, len(coeffs))
		r[0].Mul(&z, &quotient[0])
		r[0].Sub(&y, &r[0])
		for i := 1; i < len(quotient); i++ {
			tmp.Mul(&z, &quotient[i])
			r[i].Sub(&quotient[i-1], &tmp)
		}
		r[len(r)-1] = quotient[len(quotient)-1]

		assert.Equal(t, coeffs, r)
	})

	t.Run("WrongValue", func(t *testing.T) {
		var one fr.Element
		one.SetOne()

		var yBad fr.Element
		yBad.Add(&y, &one)

		_, err := divideByLinear(coeffs, z, yBad)
		assert.ErrorIs(t, err, ErrInvalidOpening)
	})
}

func TestConstantOpening(t *testing.T) {
	paramsTest := ParametersLiteral{Degree: 1 << 2, NumWorkers: 1}.Compile()

	sampler, err := csprng.NewUniformSamplerWithSeed([]byte("kzg-test-constant"))
	assert.NoError(t, err)

	srsTest, vkTest, err := GenSRS(paramsTest, sampler)
	assert.NoError(t, err)

	prover, err := NewProver(paramsTest, srsTest)
	assert.NoError(t, err)
	verifier, err := NewVerifier(paramsTest, vkTest)
	assert.NoError(t, err)

	var c fr.Element
	c.SetUint64(5)
	z, err := sampler.SampleFr()
	assert.NoError(t, err)

	proof, err := prover.openCoeffs([]fr.Element{c}, z)
	assert.NoError(t, err)

	// The quotient of a constant polynomial is zero,
	// so its commitment is the identity and the claimed value is the constant.
	assert.True(t, proof.ClaimedValue.Equal(&c))
	assert.True(t, proof.Quotient.IsInfinity())

	var cBig big.Int
	var com Commitment
	com.Value.ScalarMultiplication(&vkTest.G1, c.BigInt(&cBig))

	ok, err := verifier.Verify(com, proof)
	assert.NoError(t, err)
	assert.True(t, ok)
}
