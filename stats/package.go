// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// stats implements the binomial distribution and statistics derived
// from it.
package stats // import "github.com/aclements/go-binomial/stats"

import "math"

var nan = math.NaN()
