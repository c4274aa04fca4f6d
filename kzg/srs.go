package kzg

import (
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/fft"

	"github.com/zkcollective/kzg-prover/csprng"
	"github.com/zkcollective/kzg-prover/logger"
)

// GenSRS generates a structured reference string of length 2n
// in monomial and Lagrange basis, along with its verifying key.
//
// The trapdoor tau is sampled from sampler, used only within this call,
// and wiped before returning; it is never part of the output.
// Entropy failures wrap ErrEntropy and abort the setup.
func GenSRS(params Parameters, sampler *csprng.UniformSampler) (SRS, VerifyingKey, error) {
	return genSRS(params, sampler, 1)
}

// GenSRSParallel is a variant of GenSRS which runs the per-index scalar
// multiplications on a pool of workers. Its output is identical to GenSRS.
func GenSRSParallel(params Parameters, sampler *csprng.UniformSampler) (SRS, VerifyingKey, error) {
	return genSRS(params, sampler, params.numWorkers)
}

// SamplePublicVector samples a uniform public vector in evaluation form,
// of the domain size. Commitments accept any public vector of that length;
// this helper covers the common case of a randomly chosen one.
// Entropy failures wrap ErrEntropy.
func SamplePublicVector(params Parameters, sampler *csprng.UniformSampler) ([]fr.Element, error) {
	v, err := sampler.SampleFrSlice(params.domainSize)
	if err != nil {
		return nil, fmt.Errorf("%w: sample public vector: %v", ErrEntropy, err)
	}
	return v, nil
}

func genSRS(params Parameters, sampler *csprng.UniformSampler, numWorkers int) (SRS, VerifyingKey, error) {
	log := logger.Logger().With().Str("component", "srs").Int("domainSize", params.domainSize).Logger()
	start := time.Now()

	tau, err := sampler.SampleNonZeroFr()
	if err != nil {
		return SRS{}, VerifyingKey{}, fmt.Errorf("%w: sample trapdoor: %v", ErrEntropy, err)
	}

	g1, err := sampler.SampleG1()
	if err != nil {
		return SRS{}, VerifyingKey{}, fmt.Errorf("%w: sample G1 generator: %v", ErrEntropy, err)
	}

	g2, err := sampler.SampleG2()
	if err != nil {
		return SRS{}, VerifyingKey{}, fmt.Errorf("%w: sample G2 generator: %v", ErrEntropy, err)
	}

	// Powers of tau: powers[k] = tau^k, with tau^0 = 1.
	powers := make([]fr.Element, params.domainSize)
	powers[0].SetOne()
	for k := 1; k < params.domainSize; k++ {
		powers[k].Mul(&powers[k-1], &tau)
	}

	srs := NewSRS(params)

	var wg sync.WaitGroup
	chunkSize := (params.domainSize + numWorkers - 1) / numWorkers
	for i := 0; i < params.domainSize; i += chunkSize {
		j := min(i+chunkSize, params.domainSize)

		wg.Add(1)
		go func(i, j int) {
			defer wg.Done()

			var pow big.Int
			for k := i; k < j; k++ {
				srs.MonomialG1[k].ScalarMultiplication(&g1, powers[k].BigInt(&pow))
			}
		}(i, j)
	}
	wg.Wait()

	var vk VerifyingKey
	vk.G1 = srs.MonomialG1[0]
	vk.G2 = g2

	var tauBig big.Int
	tau.BigInt(&tauBig)
	vk.TauG2.ScalarMultiplication(&g2, &tauBig)

	// The Lagrange basis uses the inverse transform over the same domain
	// the Encoder uses on witnesses, so committer and opener agree on the roots of unity.
	domain := fft.NewDomain(uint64(params.domainSize))
	srs.LagrangeG1 = toLagrangeG1(srs.MonomialG1, domain, numWorkers)

	// tau must not survive this call.
	tau.SetZero()
	tauBig.SetUint64(0)
	for k := range powers {
		powers[k].SetZero()
	}

	log.Debug().Dur("took", time.Since(start)).Msg("srs generated")

	return srs, vk, nil
}
