// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 1e-9
}

// testFunc checks f against a table of expected values, which must
// all be in f's valid domain.
func testFunc(t *testing.T, name string, f func(float64) (float64, error), vals map[float64]float64) {
	t.Helper()
	for x, want := range vals {
		got, err := f(x)
		if err != nil {
			t.Errorf("%s(%v) failed: %v", name, x, err)
		} else if !aeq(want, got) {
			t.Errorf("%s(%v) = %v, want %v", name, x, got, want)
		}
	}
}
