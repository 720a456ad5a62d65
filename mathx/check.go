// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNonInteger is returned when an argument that must be an
	// integral value is fractional, NaN, or infinite.
	ErrNonInteger = errors.New("value is not an integer")

	// ErrNegative is returned when an argument that must be
	// non-negative is negative.
	ErrNegative = errors.New("value is negative")

	// ErrOutOfRange is returned when an argument is outside its
	// valid domain, such as r > n in a combination.
	ErrOutOfRange = errors.New("value out of range")
)

// CheckNonNegativeInt checks that x is a non-negative integral
// value. It returns an error wrapping ErrNonInteger if x is
// fractional, NaN, or infinite, and an error wrapping ErrNegative if
// x is negative.
func CheckNonNegativeInt(x float64) error {
	if x != math.Trunc(x) || math.IsInf(x, 0) {
		return fmt.Errorf("%v: %w", x, ErrNonInteger)
	}
	if x < 0 {
		return fmt.Errorf("%v: %w", x, ErrNegative)
	}
	return nil
}

// CheckLessEqual checks that x and y are both non-negative integral
// values and that x <= y. Ordering violations are reported as an
// error wrapping ErrOutOfRange.
func CheckLessEqual(x, y float64) error {
	if err := CheckNonNegativeInt(x); err != nil {
		return err
	}
	if err := CheckNonNegativeInt(y); err != nil {
		return err
	}
	if x > y {
		return fmt.Errorf("%v must be <= %v: %w", x, y, ErrOutOfRange)
	}
	return nil
}
