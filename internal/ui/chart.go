package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/gonum/floats"
)

// Eighth-block ramp used for column tops.
var blockRamp = []rune(" ▁▂▃▄▅▆▇█")

// renderChart draws one series as a width×height column chart. Samples are
// bucketed over the visible time span and averaged per column; columns
// without samples (or with only NaN samples) stay blank, so a poisoned or
// missing stretch shows as a gap.
func renderChart(times, vals []float64, width, height int, style lipgloss.Style) string {
	if width < 1 || height < 1 {
		return ""
	}
	cols := bucketColumns(times, vals, width)

	finite := make([]float64, 0, len(cols))
	for _, v := range cols {
		if !math.IsNaN(v) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return blankChart(width, height)
	}
	ymin := floats.Min(finite)
	ymax := floats.Max(finite)
	span := ymax - ymin
	if span == 0 {
		// Flat line: park it mid-chart.
		ymin -= 0.5
		span = 1
	}

	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = make([]rune, width)
		for c := range grid[r] {
			grid[r][c] = ' '
		}
	}
	for x, v := range cols {
		if math.IsNaN(v) {
			continue
		}
		// Total fill in eighths of a cell, at least one so a sample at
		// the minimum is still visible.
		eighths := int(math.Round((v - ymin) / span * float64(height*8)))
		if eighths < 1 {
			eighths = 1
		}
		for r := 0; r < height; r++ {
			cell := eighths - r*8
			if cell <= 0 {
				break
			}
			if cell > 8 {
				cell = 8
			}
			grid[height-1-r][x] = blockRamp[cell]
		}
	}

	var b strings.Builder
	for r, row := range grid {
		b.WriteString(style.Render(string(row)))
		if r < len(grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// bucketColumns folds samples into width columns spanning the sample time
// range, averaging the non-NaN samples per column. A column whose bucket is
// empty or all-NaN is NaN.
func bucketColumns(times, vals []float64, width int) []float64 {
	cols := make([]float64, width)
	for i := range cols {
		cols[i] = math.NaN()
	}
	n := len(times)
	if n == 0 || len(vals) != n {
		return cols
	}
	tmin, tmax := times[0], times[n-1]
	span := tmax - tmin
	counts := make([]int, width)
	sums := make([]float64, width)
	for i := 0; i < n; i++ {
		x := width - 1
		if span > 0 {
			x = int((times[i] - tmin) / span * float64(width-1))
		}
		if x < 0 {
			x = 0
		}
		if x >= width {
			x = width - 1
		}
		if math.IsNaN(vals[i]) {
			continue
		}
		sums[x] += vals[i]
		counts[x]++
	}
	for i := range cols {
		if counts[i] > 0 {
			cols[i] = sums[i] / float64(counts[i])
		}
	}
	return cols
}

func blankChart(width, height int) string {
	row := strings.Repeat(" ", width)
	rows := make([]string, height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

// chartRange returns the y-axis bounds the chart will use, for gutter
// labels. ok is false when there is nothing finite to scale against.
func chartRange(vals []float64) (ymin, ymax float64, ok bool) {
	finite := make([]float64, 0, len(vals))
	for _, v := range vals {
		if !math.IsNaN(v) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return 0, 0, false
	}
	return floats.Min(finite), floats.Max(finite), true
}

// formatRelTime renders a positive age in the axis-label style of the
// viewer: hours and minutes, minutes and seconds, seconds, milliseconds.
func formatRelTime(seconds float64) string {
	v := math.Abs(seconds)
	switch {
	case v >= 3600:
		return fmt.Sprintf("%.0f h %.0f m", math.Floor(v/3600), math.Floor(math.Mod(v, 3600)/60))
	case v >= 60:
		return fmt.Sprintf("%.0f m %.0f s", math.Floor(v/60), math.Mod(v, 60))
	case v >= 1:
		return fmt.Sprintf("%.1f s", v)
	case v > 0:
		return fmt.Sprintf("%.0f ms", v*1000)
	default:
		return "0 s"
	}
}

// formatValue renders a sample for the latest-value readout.
func formatValue(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%g", v)
}
