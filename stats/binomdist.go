// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/aclements/go-binomial/mathx"
)

// BinomialDist is a binomial distribution with N independent
// Bernoulli trials, each succeeding with probability P.
//
// If N=1, this is equivalent to the Bernoulli distribution.
//
// A BinomialDist is immutable once constructed and may be shared
// freely between goroutines.
type BinomialDist struct {
	n int
	p float64
}

// NewBinomialDist returns the binomial distribution with n trials
// and per-trial success probability p.
//
// n must be an integral value >= 0 (mathx.ErrNonInteger or
// mathx.ErrNegative otherwise) and p must satisfy 0 <= p <= 1
// (mathx.ErrOutOfRange otherwise).
func NewBinomialDist(n, p float64) (BinomialDist, error) {
	if err := mathx.CheckNonNegativeInt(n); err != nil {
		return BinomialDist{}, fmt.Errorf("trial count %w", err)
	}
	if !(0 <= p && p <= 1) {
		return BinomialDist{}, fmt.Errorf("success probability %v must be in [0, 1]: %w", p, mathx.ErrOutOfRange)
	}
	return BinomialDist{n: int(n), p: p}, nil
}

// N returns the number of trials.
func (d BinomialDist) N() int {
	return d.n
}

// P returns the per-trial success probability.
func (d BinomialDist) P() float64 {
	return d.p
}

// Q returns the per-trial failure probability, 1 - P.
func (d BinomialDist) Q() float64 {
	return 1 - d.p
}

// Mean returns the expected number of successes, N*P.
func (d BinomialDist) Mean() float64 {
	return float64(d.n) * d.p
}

// Variance returns the variance of the distribution, N*P*Q.
func (d BinomialDist) Variance() float64 {
	return float64(d.n) * d.p * (1 - d.p)
}

// Skewness returns the third standardized moment of the
// distribution, (Q-P)/sqrt(N*P*Q).
//
// The skewness of a degenerate distribution (N=0, P=0, or P=1) is
// undefined, so Skewness returns NaN in that case.
func (d BinomialDist) Skewness() float64 {
	v := d.Variance()
	if v == 0 {
		return nan
	}
	return (1 - 2*d.p) / math.Sqrt(v)
}

// pmf is PMF without argument checking. It returns 0 outside the
// support, which the accumulation loops and QuantileCI depend on.
func (d BinomialDist) pmf(k int) float64 {
	if k < 0 || k > d.n {
		return 0
	}
	// Pow(0, 0) == 1, so the P=0 and P=1 edges come out right.
	return mathx.Choose(d.n, k) * math.Pow(d.p, float64(k)) * math.Pow(1-d.p, float64(d.n-k))
}

// PMF returns the probability of getting exactly k successes in d.N
// independent Bernoulli trials with probability d.P.
//
// k must be an integral value in [0, N].
func (d BinomialDist) PMF(k float64) (float64, error) {
	if err := mathx.CheckLessEqual(k, float64(d.n)); err != nil {
		return 0, fmt.Errorf("success count %w", err)
	}
	return d.pmf(int(k)), nil
}

// CDF returns the probability of getting k or fewer successes, that
// is, the sum of PMF(i) for i from 0 through k.
//
// k must be an integral value in [0, N].
func (d BinomialDist) CDF(k float64) (float64, error) {
	if err := mathx.CheckLessEqual(k, float64(d.n)); err != nil {
		return 0, fmt.Errorf("success count %w", err)
	}
	sum := 0.0
	for i := 0; i <= int(k); i++ {
		sum += d.pmf(i)
	}
	return sum, nil
}

// CDFRange returns the probability of getting between k1 and k2
// successes inclusive, that is, the sum of PMF(i) for i from k1
// through k2.
//
// k1 and k2 must be integral values with 0 <= k1 <= k2 <= N.
func (d BinomialDist) CDFRange(k1, k2 float64) (float64, error) {
	if err := mathx.CheckLessEqual(k2, float64(d.n)); err != nil {
		return 0, fmt.Errorf("success count %w", err)
	}
	if err := mathx.CheckLessEqual(k1, k2); err != nil {
		return 0, fmt.Errorf("success count %w", err)
	}
	sum := 0.0
	for i := int(k1); i <= int(k2); i++ {
		sum += d.pmf(i)
	}
	return sum, nil
}

// Distribution returns the full probability mass table of d.
// Index k of the result holds PMF(k), for k from 0 through N.
//
// The table is recomputed on each call, so the caller may modify the
// returned slice.
func (d BinomialDist) Distribution() []float64 {
	table := make([]float64, d.n+1)
	for k := range table {
		table[k] = d.pmf(k)
	}
	return table
}

func (d BinomialDist) Bounds() (float64, float64) {
	return 0, float64(d.n)
}

func (d BinomialDist) Step() float64 {
	return 1
}

// NormalApprox returns a normal distribution approximation of
// binomial distribution d.
//
// Because the binomial distribution is discrete and the normal
// distribution is continuous, the caller must apply a continuity
// correction when using this approximation. Specifically, if b is the
// binomial distribution and n is the normal approximation, operations
// map as follows:
//
//	b.PMF(k) => n.CDF(k+0.5) - n.CDF(k-0.5)
//	b.CDF(k) => n.CDF(k+0.5)
func (d BinomialDist) NormalApprox() distuv.Normal {
	return distuv.Normal{Mu: d.Mean(), Sigma: math.Sqrt(d.Variance())}
}

func (d BinomialDist) String() string {
	return fmt.Sprintf("Binomial(n = %d, p = %.2f, q = %.2f)", d.n, d.p, 1-d.p)
}
