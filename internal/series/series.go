// Package series holds the sample window the realtime viewer draws from:
// one time column plus parallel value columns, trimmed to a sliding
// wall-clock window.
package series

import (
	"math"
	"sync"
)

// Buffer accumulates timestamped rows. It is written by the stdin reader
// goroutine and read by the UI, so all access goes through its mutex.
type Buffer struct {
	mu     sync.Mutex
	times  []float64
	values [][]float64
}

func NewBuffer() *Buffer {
	return &Buffer{}
}

// Append adds one row. The first row fixes the number of series; on later
// rows missing columns append NaN (rendered as a gap) and extra columns
// are dropped.
func (b *Buffer) Append(t float64, vals []float64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.values == nil {
		b.values = make([][]float64, len(vals))
	}
	b.times = append(b.times, t)
	for i := range b.values {
		v := math.NaN()
		if i < len(vals) {
			v = vals[i]
		}
		b.values[i] = append(b.values[i], v)
	}
}

// Snapshot trims rows older than latest-window (window 0 keeps everything)
// and returns a copy safe to render without the lock held.
func (b *Buffer) Snapshot(window float64) Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	if window > 0 && len(b.times) > 0 {
		cutoff := b.times[len(b.times)-1] - window
		i := 0
		for i < len(b.times)-1 && b.times[i] < cutoff {
			i++
		}
		if i > 0 {
			b.times = b.times[i:]
			for j := range b.values {
				b.values[j] = b.values[j][i:]
			}
		}
	}

	snap := Snapshot{
		Times:  append([]float64(nil), b.times...),
		Series: make([][]float64, len(b.values)),
	}
	for i, vs := range b.values {
		snap.Series[i] = append([]float64(nil), vs...)
	}
	return snap
}

// Len returns the number of buffered rows.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.times)
}

// Snapshot is an immutable copy of the buffer contents.
type Snapshot struct {
	Times  []float64
	Series [][]float64
}

// Latest returns the newest timestamp, or 0 on an empty snapshot.
func (s Snapshot) Latest() float64 {
	if len(s.Times) == 0 {
		return 0
	}
	return s.Times[len(s.Times)-1]
}
