// SPDX-License-Identifier: MIT

package stats_test

import (
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/lvnum/stats"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

// TestSummarizeMatchesOracle compares against gonum on the finite elements.
func TestSummarizeMatchesOracle(t *testing.T) {
	x := randomData(40, 99, 3, -2)
	x[5] = math.NaN()
	x[17] = math.Inf(-1)

	s := stats.Summarize(len(x), x, 1, 0)
	finite := make([]float64, 0, len(x))
	for _, v := range x {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			finite = append(finite, v)
		}
	}
	require.Equal(t, len(finite), s.Count)
	require.Equal(t, 2, s.Skipped)
	assert.InDelta(t, stat.Mean(finite, nil), s.Mean, 1e-12)
	assert.InDelta(t, stat.StdDev(finite, nil), s.Stdev, 1e-12)

	lo, hi := finite[0], finite[0]
	for _, v := range finite {
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	assert.Equal(t, lo, s.Min)
	assert.Equal(t, hi, s.Max)

	half := stats.Z95 * s.Stdev / math.Sqrt(float64(s.Count))
	assert.InDelta(t, s.Mean-half, s.MeanCI.Lo, 1e-12)
	assert.InDelta(t, s.Mean+half, s.MeanCI.Hi, 1e-12)
}

// TestSummarizeStrided walks a column backwards and a broadcast scalar.
func TestSummarizeStrided(t *testing.T) {
	buf := []float32{1, 0, 3, 0, 8}
	s := stats.Summarize(3, buf, -2, 4)
	assert.Equal(t, 3, s.Count)
	assert.InDelta(t, 4.0, s.Mean, 1e-12)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 8.0, s.Max)

	c := stats.Summarize(4, []float64{2.5}, 0, 0)
	assert.Equal(t, 4, c.Count)
	assert.Equal(t, 0.0, c.Stdev)
	assert.Equal(t, stats.CI{Lo: 2.5, Hi: 2.5}, c.MeanCI)
}

// TestSummarizeDegenerate covers empty and single-element inputs.
func TestSummarizeDegenerate(t *testing.T) {
	e := stats.Summarize(2, []float64{math.NaN(), math.Inf(1)}, 1, 0)
	assert.Equal(t, 0, e.Count)
	assert.Equal(t, 2, e.Skipped)
	for _, v := range []float64{e.Mean, e.Stdev, e.Min, e.Max, e.MeanCI.Lo, e.MeanCI.Hi} {
		assert.True(t, math.IsNaN(v))
	}

	one := stats.Summarize(1, []float64{7}, 1, 0)
	assert.Equal(t, 0.0, one.Stdev)
	assert.Equal(t, stats.CI{Lo: 7, Hi: 7}, one.MeanCI)

	z := stats.Summarize(0, []float64(nil), 1, 0)
	assert.Equal(t, 0, z.Count)
}

// TestTableAlignsWideTitles checks every line has the same display width.
func TestTableAlignsWideTitles(t *testing.T) {
	x := []float64{1, 2, 3}
	for _, title := range []string{"x", "收盤價", strings.Repeat("wide title ", 6)} {
		out := stats.Summarize(len(x), x, 1, 0).Table(title)
		lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
		require.Len(t, lines, 11)
		w := runewidth.StringWidth(lines[0])
		for _, l := range lines {
			assert.Equal(t, w, runewidth.StringWidth(l), "title %q line %q", title, l)
		}
		assert.Contains(t, lines[1], title)
	}
}
