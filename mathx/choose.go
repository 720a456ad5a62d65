// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathx implements the combinatorial functions and argument
// checks underlying the stats package.
package mathx // import "github.com/aclements/go-binomial/mathx"

import (
	"math/big"

	"gonum.org/v1/gonum/stat/combin"
)

// Choose returns the binomial coefficient of (n, k) in floating
// point, or 0 if k is outside [0, n].
//
// This is computed in log-gamma space, so it does not overflow for
// large n the way exact integer arithmetic in a fixed width would.
// For an exact result, use Combinations.
func Choose(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		// C(n, k) == C(n, n-k). Normalizing makes mirrored
		// coefficients bit-identical, which callers comparing
		// symmetric probabilities rely on.
		k = n - k
	}
	return combin.GeneralizedBinomial(float64(n), float64(k))
}

// Combinations returns C(n, r) = n! / (r! * (n-r)!) exactly. Both
// arguments must be integral values with 0 <= r <= n; violations are
// reported as ErrNonInteger, ErrNegative, or ErrOutOfRange.
func Combinations(n, r float64) (*big.Int, error) {
	if err := CheckNonNegativeInt(n); err != nil {
		return nil, err
	}
	if err := CheckLessEqual(r, n); err != nil {
		return nil, err
	}
	return new(big.Int).Binomial(int64(n), int64(r)), nil
}
