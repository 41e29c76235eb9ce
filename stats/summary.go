// SPDX-License-Identifier: MIT
// Package: stats
//
// Purpose:
//   - One-pass descriptive summary of a strided vector (count, mean, stdev,
//     range, normal-approximation confidence interval of the mean) and a
//     fixed-width text table for reports and CLIs.
//
// Contract:
//   - Non-finite elements are skipped and counted in Skipped.
//   - Stdev uses correction 1; see Accumulator.Variance for the edge cases.
//   - Table output is aligned by display width, so wide runes in titles
//     keep the borders straight.
//
// Complexity:
//   - Summarize is O(n) time, O(1) space. Table is O(1) in n.

package stats

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Z95 is the two-sided 95% standard normal critical value.
const Z95 = 1.959963984540054

var lang = language.English

// CI is a closed confidence interval.
type CI struct {
	Lo float64 `json:"Lo"`
	Hi float64 `json:"Hi"`
}

// Summary holds the descriptive statistics of the finite elements of a vector.
type Summary struct {
	Count   int     `json:"Count"`
	Skipped int     `json:"Skipped"`
	Mean    float64 `json:"Mean"`
	Stdev   float64 `json:"Stdev"`
	Min     float64 `json:"Min"`
	Max     float64 `json:"Max"`
	MeanCI  CI      `json:"MeanCI"`
}

// Summarize scans n strided elements of x once.
//
// With no finite element every statistic is NaN. With one, Stdev is 0 and
// the interval collapses to the mean.
func Summarize[F Float](n int, x []F, stride, offset int) Summary {
	s := Summary{Min: math.NaN(), Max: math.NaN()}
	var acc Accumulator
	ix := offset
	for i := 0; i < n; i++ {
		v := float64(x[ix])
		ix += stride
		if !isFinite(v) {
			s.Skipped++
			continue
		}
		if acc.Count() == 0 || v < s.Min {
			s.Min = v
		}
		if acc.Count() == 0 || v > s.Max {
			s.Max = v
		}
		acc.Push(v)
	}

	s.Count = acc.Count()
	s.Mean = acc.Mean()
	switch s.Count {
	case 0:
		s.Stdev = math.NaN()
		s.MeanCI = CI{Lo: math.NaN(), Hi: math.NaN()}
	case 1:
		s.MeanCI = CI{Lo: s.Mean, Hi: s.Mean}
	default:
		s.Stdev = acc.Stdev(1)
		se := s.Stdev / math.Sqrt(float64(s.Count))
		s.MeanCI = CI{Lo: s.Mean - Z95*se, Hi: s.Mean + Z95*se}
	}

	return s
}

// Table renders s as a two-column bordered table headed by title.
func (s Summary) Table(title string) string {
	p := message.NewPrinter(lang)
	keys := []string{"Count", "Skipped", "Mean", "Stdev", "Min", "Max", "Mean 95% CI"}
	vals := map[string]string{
		"Count":       p.Sprintf("%d", s.Count),
		"Skipped":     p.Sprintf("%d", s.Skipped),
		"Mean":        p.Sprintf("%.4f", s.Mean),
		"Stdev":       p.Sprintf("%.4f", s.Stdev),
		"Min":         p.Sprintf("%.4f", s.Min),
		"Max":         p.Sprintf("%.4f", s.Max),
		"Mean 95% CI": p.Sprintf("[%.4f, %.4f]", s.MeanCI.Lo, s.MeanCI.Hi),
	}

	return fmtTable(title, keys, vals)
}

func fmtTable(title string, keys []string, vals map[string]string) string {
	keyW, valW := 0, 0
	for _, k := range keys {
		keyW = max(keyW, runewidth.StringWidth(k))
		valW = max(valW, runewidth.StringWidth(vals[k]))
	}
	keyW += 2
	valW += 2

	inner := keyW + 1 + valW
	titleW := runewidth.StringWidth(title)
	if titleW+2 > inner {
		valW += titleW + 2 - inner
		inner = titleW + 2
	}
	left := (inner - titleW) / 2
	right := inner - titleW - left

	var b strings.Builder
	divider := "+" + strings.Repeat("-", keyW) + "+" + strings.Repeat("-", valW) + "+\n"
	b.WriteString("+" + strings.Repeat("-", inner) + "+\n")
	b.WriteString("|" + blank(left) + title + blank(right) + "|\n")
	b.WriteString(divider)
	for _, k := range keys {
		v := vals[k]
		b.WriteString("| " + k + blank(keyW-2-runewidth.StringWidth(k)) +
			" | " + v + blank(valW-2-runewidth.StringWidth(v)) + " |\n")
	}
	b.WriteString(divider)

	return b.String()
}

func blank(w int) string {
	if w < 1 {
		return ""
	}

	return strings.Repeat(" ", w)
}
