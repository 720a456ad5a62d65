// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// binomdist prints the probability mass table and summary statistics
// of a binomial distribution.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/aclements/go-binomial/stats"
)

func main() {
	n := flag.Float64("n", 10, "number of trials")
	p := flag.Float64("p", 0.5, "per-trial success probability")
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}

	dist, err := stats.NewBinomialDist(*n, *p)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println(dist)
	fmt.Println()
	for k, prob := range dist.Distribution() {
		fmt.Printf("P(X=%d) = %.4f\n", k, prob)
	}
	fmt.Println()
	fmt.Printf("mean %.4f  variance %.4f  skewness %.4f\n",
		dist.Mean(), dist.Variance(), dist.Skewness())
}
