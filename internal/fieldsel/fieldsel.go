// Package fieldsel implements the column-selector grammar shared by the
// plotutils tools: half-open index ranges over the fields of a delimited
// line, resolved against each line's actual width.
package fieldsel

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// Range selects fields of a line. It is either a single index (bare "5",
// which selects exactly that one field, including bare negatives counting
// from the end) or a half-open range "start:stop" where either bound may be
// omitted. Range bounds follow slice semantics: negative values count from
// the line end, out-of-range bounds clamp to the line width.
type Range struct {
	start, stop       int
	hasStart, hasStop bool
	single            bool
}

// Single returns a Range selecting exactly the field at index i.
func Single(i int) Range {
	return Range{start: i, single: true}
}

// Span returns the half-open Range [start, stop).
func Span(start, stop int) Range {
	return Range{start: start, stop: stop, hasStart: true, hasStop: true}
}

// From returns the open-ended Range [start, line width).
func From(start int) Range {
	return Range{start: start, hasStart: true}
}

// All returns the Range selecting every field.
func All() Range {
	return Range{}
}

// Parse parses a selector token. A token without a colon is a single field
// index; "a:b", "a:" and ":b" are ranges with the respective bound open.
func Parse(tok string) (Range, error) {
	if !strings.Contains(tok, ":") {
		i, err := strconv.Atoi(tok)
		if err != nil {
			return Range{}, errors.Errorf("invalid field index %q", tok)
		}
		return Single(i), nil
	}
	parts := strings.Split(tok, ":")
	if len(parts) != 2 {
		return Range{}, errors.Errorf("invalid field range %q", tok)
	}
	var r Range
	if parts[0] != "" {
		i, err := strconv.Atoi(parts[0])
		if err != nil {
			return Range{}, errors.Errorf("invalid range start in %q", tok)
		}
		r.start = i
		r.hasStart = true
	}
	if parts[1] != "" {
		i, err := strconv.Atoi(parts[1])
		if err != nil {
			return Range{}, errors.Errorf("invalid range stop in %q", tok)
		}
		r.stop = i
		r.hasStop = true
	}
	return r, nil
}

// Resolve returns the field indices the Range selects on a line with width
// fields, in order. A single index out of range selects nothing.
func (r Range) Resolve(width int) []int {
	if r.single {
		i := r.start
		if i < 0 {
			i += width
		}
		if i < 0 || i >= width {
			return nil
		}
		return []int{i}
	}
	start, stop := 0, width
	if r.hasStart {
		start = clamp(r.start, width)
	}
	if r.hasStop {
		stop = clamp(r.stop, width)
	}
	if start >= stop {
		return nil
	}
	indices := make([]int, 0, stop-start)
	for i := start; i < stop; i++ {
		indices = append(indices, i)
	}
	return indices
}

func clamp(i, width int) int {
	if i < 0 {
		i += width
	}
	if i < 0 {
		return 0
	}
	if i > width {
		return width
	}
	return i
}

// List is an ordered selector list. Ranges accumulate in declaration order
// and are never merged or deduplicated; overlapping ranges duplicate fields.
// An empty List selects all fields.
type List []Range

// Indices concatenates the resolved indices of every Range against a line
// of the given width. Resolution depends only on the selector and the width.
func (l List) Indices(width int) []int {
	if len(l) == 0 {
		return All().Resolve(width)
	}
	var indices []int
	for _, r := range l {
		indices = append(indices, r.Resolve(width)...)
	}
	return indices
}

// Project returns the fields selected by the List, in selector order.
func (l List) Project(fields []string) []string {
	indices := l.Indices(len(fields))
	out := make([]string, len(indices))
	for i, idx := range indices {
		out[i] = fields[idx]
	}
	return out
}

// Set appends one parsed selector token; pflag calls it once per -f flag.
func (l *List) Set(tok string) error {
	r, err := Parse(tok)
	if err != nil {
		return err
	}
	*l = append(*l, r)
	return nil
}

func (l *List) String() string {
	parts := make([]string, len(*l))
	for i, r := range *l {
		parts[i] = r.String()
	}
	return strings.Join(parts, ",")
}

// Type describes the flag value in usage output.
func (l *List) Type() string {
	return "selector"
}

func (r Range) String() string {
	if r.single {
		return strconv.Itoa(r.start)
	}
	var b strings.Builder
	if r.hasStart {
		b.WriteString(strconv.Itoa(r.start))
	}
	b.WriteByte(':')
	if r.hasStop {
		b.WriteString(strconv.Itoa(r.stop))
	}
	return b.String()
}

var _ pflag.Value = new(List)
