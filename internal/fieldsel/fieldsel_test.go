package fieldsel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		tok  string
		want Range
	}{
		{"0", Single(0)},
		{"5", Single(5)},
		{"-1", Single(-1)},
		{"1:3", Span(1, 3)},
		{"1:", From(1)},
		{":3", Span(0, 3)},
		{":", All()},
		{"-3:-1", Span(-3, -1)},
	}
	for _, tt := range tests {
		t.Run(tt.tok, func(t *testing.T) {
			got, err := Parse(tt.tok)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, tok := range []string{"", "x", "1.5", "a:b", "1:2:3", "::", "1:x"} {
		t.Run(tok, func(t *testing.T) {
			_, err := Parse(tok)
			assert.Error(t, err)
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		tok   string
		width int
		want  []int
	}{
		{"bare index selects one field", "1", 5, []int{1}},
		{"open stop runs to end", "1:", 5, []int{1, 2, 3, 4}},
		{"bare negative selects last field", "-1", 5, []int{4}},
		{"open start begins at zero", ":2", 5, []int{0, 1}},
		{"full range", ":", 3, []int{0, 1, 2}},
		{"negative range bounds", "-3:-1", 5, []int{2, 3}},
		{"stop clamps to width", "2:100", 4, []int{2, 3}},
		{"start clamps to zero", "-100:2", 4, []int{0, 1}},
		{"empty when start at or past stop", "3:3", 5, nil},
		{"bare index out of range selects nothing", "7", 5, nil},
		{"bare negative out of range selects nothing", "-7", 5, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Parse(tt.tok)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.Resolve(tt.width))
		})
	}
}

func TestResolveIsPure(t *testing.T) {
	r, err := Parse("1:")
	require.NoError(t, err)
	first := r.Resolve(6)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, r.Resolve(6))
	}
}

func TestListIndices(t *testing.T) {
	var l List
	require.NoError(t, l.Set("3"))
	require.NoError(t, l.Set("1:3"))
	require.NoError(t, l.Set("2"))

	// Declaration order, overlaps kept.
	assert.Equal(t, []int{3, 1, 2, 2}, l.Indices(5))
}

func TestListDefaultsToAllFields(t *testing.T) {
	var l List
	assert.Equal(t, []int{0, 1, 2}, l.Indices(3))
}

func TestListResolvesPerLineWidth(t *testing.T) {
	var l List
	require.NoError(t, l.Set("1:"))
	assert.Equal(t, []int{1, 2}, l.Indices(3))
	assert.Equal(t, []int{1, 2, 3, 4}, l.Indices(5))
	assert.Empty(t, l.Indices(1))
}

func TestProject(t *testing.T) {
	var l List
	require.NoError(t, l.Set("-1"))
	require.NoError(t, l.Set("0"))
	assert.Equal(t, []string{"c", "a"}, l.Project([]string{"a", "b", "c"}))
}

func TestSetRejectsBadToken(t *testing.T) {
	var l List
	assert.Error(t, l.Set("nope"))
	assert.Empty(t, l)
}
