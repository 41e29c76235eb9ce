// SPDX-License-Identifier: MIT

package dists_test

import (
	"fmt"

	"github.com/katalvlaran/lvnum/dists"
)

// ExampleNormal evaluates the standard normal at a few points.
func ExampleNormal() {
	n := dists.Normal{Mu: 0, Sigma: 1}
	fmt.Printf("%.4f %.4f %.4f\n", n.PDF(0), n.CDF(1.96), n.Quantile(0.975))
	// Output: 0.3989 0.9750 1.9600
}

// ExampleNormal_invalid shows the NaN convention for bad parameters.
func ExampleNormal_invalid() {
	n := dists.Normal{Mu: 0, Sigma: -1}
	fmt.Println(n.PDF(0), n.Mean())
	// Output: NaN NaN
}

// ExamplePoisson_Quantile finds the 90th percentile count.
func ExamplePoisson_Quantile() {
	p := dists.Poisson{Lambda: 4}
	fmt.Println(p.Quantile(0.9))
	// Output: 7
}
