// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math/big"

// Factorial returns n! exactly. n must be an integral value >= 0;
// Factorial(0) is 1.
//
// The result is arbitrary precision, so this is exact even for n
// where n! overflows every fixed-width integer type.
func Factorial(n float64) (*big.Int, error) {
	if err := CheckNonNegativeInt(n); err != nil {
		return nil, err
	}
	// MulRange(1, 0) is the empty product, which covers 0! = 1.
	return new(big.Int).MulRange(1, int64(n)), nil
}
