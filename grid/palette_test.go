package grid

import (
	"testing"

	"github.com/lixenwraith/gridpaint/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPalette_CycleWraps(t *testing.T) {
	p := DefaultPalette
	require.Equal(t, 5, p.Len())

	v := 0
	for i := 0; i < p.Len(); i++ {
		v = p.Next(v)
	}
	assert.Equal(t, 0, v)
	assert.Equal(t, 1, p.Next(0))
	assert.Equal(t, 0, p.Next(4))
}

func TestPalette_Color(t *testing.T) {
	assert.Equal(t, "blue", DefaultPalette.Color(2).Name)
	assert.Equal(t, "black", DefaultPalette.Color(99).Name)
	assert.False(t, DefaultPalette.Valid(5))
	assert.True(t, DefaultPalette.Valid(0))
}

func TestParsePalette(t *testing.T) {
	p, err := ParsePalette("black, white, ink=#102030")
	require.NoError(t, err)
	require.Equal(t, 3, p.Len())
	assert.Equal(t, "ink", p[2].Name)
	assert.Equal(t, core.RGB{R: 0x10, G: 0x20, B: 0x30}, p[2].RGB)

	for _, bad := range []string{"", "black", "black,mauve", "black,x=#12", "black,x=#zzzzzz"} {
		_, err := ParsePalette(bad)
		assert.Error(t, err, bad)
	}
}
