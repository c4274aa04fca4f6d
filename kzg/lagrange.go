package kzg

import (
	"math/big"
	"math/bits"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/fft"

	"github.com/zkcollective/kzg-prover/num"
)

// butterflyG1 computes the radix-2 butterfly (a, b) <- (a+b, a-b).
func butterflyG1(a, b *bls12381.G1Affine) {
	t := *a
	a.Add(a, b)
	b.Sub(&t, b)
}

// inverseTwiddles returns the per-stage twiddle tables of the inverse FFT
// over the given domain: twiddles[s][i] = w^(-i * 2^s),
// where w is the domain's primitive root of unity.
func inverseTwiddles(domain *fft.Domain) [][]fr.Element {
	n := int(domain.Cardinality)
	logN := num.Log2(n)

	twiddles := make([][]fr.Element, logN)
	twiddles[0] = make([]fr.Element, n/2)
	if n/2 > 0 {
		twiddles[0][0].SetOne()
	}
	for i := 1; i < n/2; i++ {
		twiddles[0][i].Mul(&twiddles[0][i-1], &domain.GeneratorInv)
	}

	for s := 1; s < logN; s++ {
		twiddles[s] = make([]fr.Element, len(twiddles[s-1])/2)
		for i := range twiddles[s] {
			twiddles[s][i] = twiddles[s-1][2*i]
		}
	}

	return twiddles
}

// difFFTG1 runs a decimation-in-frequency FFT over G1 elements in-place,
// leaving the output in bit-reversed order.
// Recursive halves run on separate goroutines up to maxSplits deep.
func difFFTG1(a []bls12381.G1Affine, twiddles [][]fr.Element, stage, maxSplits int, chDone chan struct{}) {
	if chDone != nil {
		defer close(chDone)
	}

	n := len(a)
	if n == 1 {
		return
	}
	m := n >> 1

	butterflyG1(&a[0], &a[m])

	var twiddle big.Int
	for i := 1; i < m; i++ {
		butterflyG1(&a[i], &a[i+m])
		twiddles[stage][i].BigInt(&twiddle)
		a[i+m].ScalarMultiplication(&a[i+m], &twiddle)
	}

	if m == 1 {
		return
	}

	nextStage := stage + 1
	if stage < maxSplits {
		chDone := make(chan struct{}, 1)
		go difFFTG1(a[m:n], twiddles, nextStage, maxSplits, chDone)
		difFFTG1(a[0:m], twiddles, nextStage, maxSplits, nil)
		<-chDone
	} else {
		difFFTG1(a[0:m], twiddles, nextStage, maxSplits, nil)
		difFFTG1(a[m:n], twiddles, nextStage, maxSplits, nil)
	}
}

// toLagrangeG1 converts a monomial-basis G1 sequence to Lagrange basis
// by an inverse FFT over the group elements,
// using the scalar-domain roots of unity as multipliers.
func toLagrangeG1(points []bls12381.G1Affine, domain *fft.Domain, numWorkers int) []bls12381.G1Affine {
	coeffs := make([]bls12381.G1Affine, len(points))
	copy(coeffs, points)

	maxSplits := bits.TrailingZeros64(ecc.NextPowerOfTwo(uint64(numWorkers)))
	difFFTG1(coeffs, inverseTwiddles(domain), 0, maxSplits, nil)
	num.BitReverseInPlace(coeffs)

	var cardinalityInv big.Int
	domain.CardinalityInv.BigInt(&cardinalityInv)
	for i := range coeffs {
		coeffs[i].ScalarMultiplication(&coeffs[i], &cardinalityInv)
	}

	return coeffs
}
