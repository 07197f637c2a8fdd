package ui

import (
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatRelTime(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "0 s"},
		{0.5, "500 ms"},
		{5, "5.0 s"},
		{59.9, "59.9 s"},
		{90, "1 m 30 s"},
		{150, "2 m 30 s"},
		{3900, "1 h 5 m"},
		{-90, "1 m 30 s"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatRelTime(tt.seconds), "seconds=%v", tt.seconds)
	}
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "22.5", formatValue(22.5))
	assert.Equal(t, "NaN", formatValue(math.NaN()))
}

func TestBucketColumns(t *testing.T) {
	times := []float64{0, 1, 2, 3}
	vals := []float64{10, 20, 30, 40}

	// One column per sample.
	cols := bucketColumns(times, vals, 4)
	assert.Equal(t, []float64{10, 20, 30, 40}, cols)

	// Two samples per column are averaged.
	cols = bucketColumns(times, vals, 2)
	assert.Equal(t, 15.0, cols[0])
	assert.Equal(t, 35.0, cols[1])
}

func TestBucketColumnsNaNGap(t *testing.T) {
	cols := bucketColumns([]float64{0, 1, 2}, []float64{10, math.NaN(), 30}, 3)
	assert.Equal(t, 10.0, cols[0])
	assert.True(t, math.IsNaN(cols[1]))
	assert.Equal(t, 30.0, cols[2])
}

func TestBucketColumnsEmpty(t *testing.T) {
	for _, v := range bucketColumns(nil, nil, 3) {
		assert.True(t, math.IsNaN(v))
	}
}

func TestChartRange(t *testing.T) {
	ymin, ymax, ok := chartRange([]float64{3, math.NaN(), -1, 7})
	require.True(t, ok)
	assert.Equal(t, -1.0, ymin)
	assert.Equal(t, 7.0, ymax)

	_, _, ok = chartRange([]float64{math.NaN()})
	assert.False(t, ok)
}

func TestRenderChartShape(t *testing.T) {
	plain := lipgloss.NewStyle()
	out := renderChart([]float64{0, 1, 2, 3}, []float64{0, 1, 2, 3}, 4, 2, plain)

	rows := strings.Split(out, "\n")
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Len(t, []rune(row), 4)
	}
	// Rising series: rightmost column is a full block on top, leftmost top
	// cell stays empty.
	top := []rune(rows[0])
	assert.Equal(t, ' ', top[0])
	assert.Equal(t, '█', top[3])
}

func TestRenderChartAllNaNIsBlank(t *testing.T) {
	plain := lipgloss.NewStyle()
	out := renderChart([]float64{0, 1}, []float64{math.NaN(), math.NaN()}, 3, 2, plain)
	assert.Equal(t, "   \n   ", out)
}

func TestRenderChartFlatSeries(t *testing.T) {
	plain := lipgloss.NewStyle()
	out := renderChart([]float64{0, 1, 2}, []float64{5, 5, 5}, 3, 2, plain)
	// A flat series still renders something visible.
	assert.NotEqual(t, "   \n   ", out)
}
