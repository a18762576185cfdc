package server

import (
	"errors"
	"image/png"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lixenwraith/gridpaint/grid"
	"github.com/lixenwraith/gridpaint/raster"
)

const defaultPNGScale = 8

func (s *Server) getGrid(c *gin.Context) {
	snap := s.backend.Latest()
	if snap.ExportErr != nil {
		errorResponse(c, http.StatusRequestEntityTooLarge, snap.ExportErr.Error())
		return
	}
	c.Data(http.StatusOK, "application/json", []byte(snap.Text))
}

func (s *Server) putGrid(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			errorResponse(c, http.StatusRequestEntityTooLarge, "body too large")
			return
		}
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	d, err := grid.ParseText(body)
	if err == nil {
		err = s.backend.Submit(c.Request.Context(), d)
	}

	var perr *grid.ParseError
	switch {
	case err == nil:
		c.Status(http.StatusNoContent)
	case errors.As(err, &perr):
		errorResponse(c, http.StatusUnprocessableEntity, perr.Error())
	default:
		_ = c.Error(err)
		errorResponse(c, http.StatusServiceUnavailable, "painter unavailable")
	}
}

func (s *Server) getGridPNG(c *gin.Context) {
	scale := defaultPNGScale
	if v := c.Query("scale"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > raster.MaxScale {
			errorResponse(c, http.StatusBadRequest, "scale must be an integer in [1,"+strconv.Itoa(raster.MaxScale)+"]")
			return
		}
		scale = n
	}

	snap := s.backend.Latest()
	if snap.ExportErr != nil {
		errorResponse(c, http.StatusRequestEntityTooLarge, snap.ExportErr.Error())
		return
	}

	img, err := raster.Image(snap.Dense, snap.Palette, scale)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, raster.ErrTooLarge) {
			code = http.StatusRequestEntityTooLarge
		}
		errorResponse(c, code, err.Error())
		return
	}

	c.Header("Content-Type", "image/png")
	c.Status(http.StatusOK)
	if err := png.Encode(c.Writer, img); err != nil {
		_ = c.Error(err)
	}
}

type paletteEntry struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Hex   string `json:"hex"`
}

func (s *Server) getPalette(c *gin.Context) {
	p := s.backend.Latest().Palette
	entries := make([]paletteEntry, p.Len())
	for i := range entries {
		col := p.Color(i)
		entries[i] = paletteEntry{Index: i, Name: col.Name, Hex: col.RGB.Hex()}
	}
	c.JSON(http.StatusOK, entries)
}

type cellResponse struct {
	Key   string `json:"key"`
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	Value int    `json:"value"`
}

func (s *Server) getCell(c *gin.Context) {
	key := c.Param("key")
	coord, err := grid.ParseCoord(key)
	if err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	snap := s.backend.Latest()
	c.JSON(http.StatusOK, cellResponse{
		Key:   coord.Key(),
		Row:   coord.Row,
		Col:   coord.Col,
		Value: snap.Get(coord.Row, coord.Col),
	})
}

func (s *Server) getViewport(c *gin.Context) {
	v := s.backend.Latest().Viewport
	c.JSON(http.StatusOK, gin.H{"startRow": v.StartRow, "startCol": v.StartCol})
}

func (s *Server) getStatus(c *gin.Context) {
	if s.metrics == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, s.metrics.Snapshot())
}
