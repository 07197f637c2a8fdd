package ui

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apirek/plotutils/internal/fieldsel"
	"github.com/apirek/plotutils/internal/replay"
	"github.com/apirek/plotutils/internal/series"
)

func drain(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-timeout:
			t.Fatal("reader did not finish")
		}
	}
}

func TestReaderParsesRows(t *testing.T) {
	buf := series.NewBuffer()
	rd := NewReader(strings.NewReader(
		"2022-01-02 03:04:05.000000\t1\t10\n"+
			"2022-01-02 03:04:06.000000\t2\t20\n",
	), buf, ReaderOptions{
		Delimiter:  "\t",
		TimeLayout: replay.DefaultTimeLayout,
	})
	drain(t, rd.Start())

	snap := buf.Snapshot(0)
	require.Len(t, snap.Times, 2)
	require.Len(t, snap.Series, 2)
	assert.Equal(t, []float64{1, 2}, snap.Series[0])
	assert.Equal(t, []float64{10, 20}, snap.Series[1])
	assert.InDelta(t, 1.0, snap.Times[1]-snap.Times[0], 1e-3)
}

func TestReaderSkipsBadRows(t *testing.T) {
	buf := series.NewBuffer()
	rd := NewReader(strings.NewReader(
		"garbage\n"+
			"lonely-field\n"+
			"2022-01-02 03:04:05.000000\t1\n",
	), buf, ReaderOptions{
		Delimiter:  "\t",
		TimeLayout: replay.DefaultTimeLayout,
	})
	drain(t, rd.Start())

	assert.Equal(t, 1, buf.Len())
}

func TestReaderMapsBadValuesToNaN(t *testing.T) {
	buf := series.NewBuffer()
	rd := NewReader(strings.NewReader(
		"2022-01-02 03:04:05.000000\tbogus\n",
	), buf, ReaderOptions{
		Delimiter:  "\t",
		TimeLayout: replay.DefaultTimeLayout,
	})
	drain(t, rd.Start())

	snap := buf.Snapshot(0)
	require.Len(t, snap.Series, 1)
	assert.True(t, math.IsNaN(snap.Series[0][0]))
}

func TestReaderAppliesFieldSelection(t *testing.T) {
	var fields fieldsel.List
	require.NoError(t, fields.Set("1:"))

	buf := series.NewBuffer()
	rd := NewReader(strings.NewReader(
		"x\t2022-01-02 03:04:05.000000\t7\n",
	), buf, ReaderOptions{
		Delimiter:  "\t",
		Fields:     fields,
		TimeLayout: replay.DefaultTimeLayout,
	})
	drain(t, rd.Start())

	snap := buf.Snapshot(0)
	require.Len(t, snap.Series, 1)
	assert.Equal(t, 7.0, snap.Series[0][0])
}
