package raster

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/lixenwraith/gridpaint/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImage_SizeAndColors(t *testing.T) {
	p := grid.DefaultPalette
	d := grid.Dense{{1, 0, 0}, {0, 0, 2}}

	img, err := Image(d, p, 4)
	require.NoError(t, err)
	assert.Equal(t, 12, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())

	assert.Equal(t, p.Color(1).RGB.ImageColor(), img.RGBAAt(0, 0))
	assert.Equal(t, p.Color(1).RGB.ImageColor(), img.RGBAAt(3, 3))
	assert.Equal(t, p.Color(0).RGB.ImageColor(), img.RGBAAt(4, 0))
	assert.Equal(t, p.Color(2).RGB.ImageColor(), img.RGBAAt(11, 7))
	assert.Equal(t, p.Color(2).RGB.ImageColor(), img.RGBAAt(8, 4))
}

func TestImage_EmptyAndRagged(t *testing.T) {
	img, err := Image(grid.Empty(), grid.DefaultPalette, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, img.Bounds().Dx())
	assert.Equal(t, 3, img.Bounds().Dy())

	img, err = Image(grid.Dense{{1}, {0, 0, 3}}, grid.DefaultPalette, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, img.Bounds().Dx())
	assert.Equal(t, grid.DefaultPalette.Color(0).RGB.ImageColor(), img.RGBAAt(2, 0))
	assert.Equal(t, grid.DefaultPalette.Color(3).RGB.ImageColor(), img.RGBAAt(2, 1))
}

func TestImage_ScaleBounds(t *testing.T) {
	_, err := Image(grid.Empty(), grid.DefaultPalette, 0)
	assert.Error(t, err)
	_, err = Image(grid.Empty(), grid.DefaultPalette, MaxScale+1)
	assert.Error(t, err)
}

func TestImage_PixelLimit(t *testing.T) {
	wide := grid.Dense{make([]int, 1<<14)}

	img, err := Image(wide, grid.DefaultPalette, 1)
	require.NoError(t, err)
	assert.Equal(t, 1<<14, img.Bounds().Dx())

	// 16384 x 1 cells at 64 px per side is 2^26 pixels
	_, err = Image(wide, grid.DefaultPalette, MaxScale)
	assert.ErrorIs(t, err, ErrTooLarge)

	img, err = Image(grid.Dense{make([]int, 1<<12)}, grid.DefaultPalette, 16)
	require.NoError(t, err)
	assert.Equal(t, 1<<16, img.Bounds().Dx())

	// Cell count alone over the limit, ragged rows counted at full width
	tall := make(grid.Dense, 1<<13)
	tall[0] = make([]int, 1<<12)
	_, err = Image(tall, grid.DefaultPalette, 1)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestImage_EncodesAsPNG(t *testing.T) {
	src, err := Image(grid.Dense{{4, 1}}, grid.DefaultPalette, 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())
	assert.Equal(t, 2, img.Bounds().Dy())

	r, g, b, _ := img.At(0, 0).RGBA()
	want := grid.DefaultPalette.Color(4).RGB
	assert.Equal(t, uint32(want.R)*0x101, r)
	assert.Equal(t, uint32(want.G)*0x101, g)
	assert.Equal(t, uint32(want.B)*0x101, b)
}
