package grid

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerialize_Empty(t *testing.T) {
	d, err := Serialize(NewStore())
	require.NoError(t, err)
	assert.Equal(t, Dense{{}}, d)
	assert.Equal(t, "[[]]", FormatText(d))
}

func TestSerialize_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		cells map[Coord]int
		want  Dense
	}{
		{
			name:  "adjacent pair",
			cells: map[Coord]int{{0, 0}: 2, {0, 1}: 3},
			want:  Dense{{2, 3}},
		},
		{
			name:  "single cell away from origin",
			cells: map[Coord]int{{2, 2}: 1},
			want:  Dense{{1}},
		},
		{
			name:  "negative corner",
			cells: map[Coord]int{{-1, -1}: 1, {1, 1}: 2},
			want:  Dense{{1, 0, 0}, {0, 0, 0}, {0, 0, 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			for c, v := range tt.cells {
				s.Set(c.Row, c.Col, v)
			}
			got, err := Serialize(s)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSerialize_ExtremeCoordinates(t *testing.T) {
	tests := []struct {
		name  string
		cells map[Coord]int
		want  Dense
	}{
		{
			name:  "max row",
			cells: map[Coord]int{{math.MaxInt, 0}: 1},
			want:  Dense{{1}},
		},
		{
			name:  "min corner",
			cells: map[Coord]int{{math.MinInt, math.MinInt}: 2},
			want:  Dense{{2}},
		},
		{
			name:  "max row and col pair",
			cells: map[Coord]int{{math.MaxInt - 1, math.MaxInt}: 3, {math.MaxInt, math.MaxInt - 1}: 4},
			want:  Dense{{0, 3}, {4, 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			for c, v := range tt.cells {
				s.Set(c.Row, c.Col, v)
			}
			got, err := Serialize(s)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSerialize_TooLarge(t *testing.T) {
	tests := map[string][]Coord{
		"row span beyond int":   {{math.MinInt/2 - 1, 0}, {math.MaxInt/2 + 1, 0}},
		"full row range":        {{math.MinInt, 0}, {math.MaxInt, 0}},
		"col span beyond int":   {{0, math.MinInt}, {0, math.MaxInt}},
		"area over dense limit": {{0, 0}, {MaxDenseCells, 1}},
	}

	for name, coords := range tests {
		t.Run(name, func(t *testing.T) {
			s := NewStore()
			for _, c := range coords {
				s.Set(c.Row, c.Col, 1)
			}
			d, err := Serialize(s)
			assert.ErrorIs(t, err, ErrTooLarge)
			assert.Nil(t, d)
		})
	}
}

func TestSerialize_AtDenseLimit(t *testing.T) {
	s := NewStore()
	s.Set(0, 0, 1)
	s.Set(0, MaxDenseCells-1, 2)

	d, err := Serialize(s)
	require.NoError(t, err)
	require.Len(t, d, 1)
	assert.Len(t, d[0], MaxDenseCells)
	assert.Equal(t, 2, d[0][MaxDenseCells-1])
}

func TestImport_RoundTripReanchors(t *testing.T) {
	src := NewStore()
	src.Set(-4, 10, 1)
	src.Set(-2, 12, 3)
	src.Set(0, 11, 4)

	dst := NewStore()
	dst.Set(100, 100, 2) // must be cleared
	exported, err := Serialize(src)
	require.NoError(t, err)
	require.NoError(t, Import(dst, exported, DefaultPalette))

	assert.ElementsMatch(t, []Coord{{0, 0}, {2, 2}, {4, 1}}, dst.Keys())
	assert.Equal(t, 1, dst.Get(0, 0))
	assert.Equal(t, 3, dst.Get(2, 2))
	assert.Equal(t, 4, dst.Get(4, 1))

	// A re-anchored store serializes identically
	reexported, err := Serialize(dst)
	require.NoError(t, err)
	assert.Equal(t, exported, reexported)
}

func TestImport_EmptySentinel(t *testing.T) {
	s := NewStore()
	s.Set(1, 1, 1)
	require.NoError(t, Import(s, Dense{{}}, DefaultPalette))
	assert.Equal(t, 0, s.Len())
}

func TestImport_RaggedRows(t *testing.T) {
	s := NewStore()
	require.NoError(t, Import(s, Dense{{1}, {}, {0, 0, 2}}, DefaultPalette))
	assert.ElementsMatch(t, []Coord{{0, 0}, {2, 2}}, s.Keys())
}

func TestImport_InvalidLeavesStoreUntouched(t *testing.T) {
	s := NewStore()
	s.Set(5, 5, 2)

	err := Import(s, Dense{{1, 2}, {3, 9}}, DefaultPalette)
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 1, pe.Row)
	assert.Equal(t, 1, pe.Col)

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 2, s.Get(5, 5))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(Dense{{0, 4}}, DefaultPalette))
	assert.Error(t, Validate(nil, DefaultPalette))
	assert.Error(t, Validate(Dense{nil}, DefaultPalette))
	assert.Error(t, Validate(Dense{{5}}, DefaultPalette))
	assert.Error(t, Validate(Dense{{-1}}, DefaultPalette))
}

func TestDense_At(t *testing.T) {
	d := Dense{{1, 2}, {3}}
	assert.Equal(t, 2, d.At(0, 1))
	assert.Equal(t, 0, d.At(1, 1))
	assert.Equal(t, 0, d.At(-1, 0))
	assert.True(t, Dense{{}}.IsEmpty())
	assert.False(t, d.IsEmpty())
}
