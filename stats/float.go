// SPDX-License-Identifier: MIT

package stats

import "math"

// Float is the element constraint of every kernel. Accumulation always runs
// in float64.
type Float interface {
	~float32 | ~float64
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// degenerate resolves the N==1 / stride==0 shortcut: every sample equals v,
// so the spread is zero unless v itself is not finite.
func degenerate(v float64) float64 {
	if !isFinite(v) {
		return math.NaN()
	}

	return 0
}
