// Package raster renders dense grids as images, one palette color per cell.
package raster

import (
	"errors"
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/lixenwraith/gridpaint/grid"
)

// MaxScale bounds the per-cell pixel size accepted from callers
const MaxScale = 64

// MaxPixels bounds the area of a rendered image after scaling
const MaxPixels = 1 << 24

// ErrTooLarge is returned when the scaled image would exceed MaxPixels
var ErrTooLarge = errors.New("raster: image too large")

// Image draws d at one pixel per cell, then upscales by scale with
// nearest-neighbour sampling so cell edges stay sharp. Ragged rows are padded
// with background. The empty grid is a single background cell.
func Image(d grid.Dense, p grid.Palette, scale int) (*image.RGBA, error) {
	if scale < 1 || scale > MaxScale {
		return nil, fmt.Errorf("raster: scale %d out of range [1,%d]", scale, MaxScale)
	}

	rows, cols := len(d), 0
	for _, row := range d {
		cols = max(cols, len(row))
	}
	if rows == 0 || cols == 0 {
		rows, cols = 1, 1
	}
	if rows > MaxPixels/cols || rows*cols > MaxPixels/(scale*scale) {
		return nil, fmt.Errorf("%w: %dx%d cells at scale %d exceeds %d pixels", ErrTooLarge, cols, rows, scale, MaxPixels)
	}

	src := image.NewRGBA(image.Rect(0, 0, cols, rows))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			src.SetRGBA(x, y, p.Color(d.At(y, x)).RGB.ImageColor())
		}
	}
	if scale == 1 {
		return src, nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, cols*scale, rows*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst, nil
}
