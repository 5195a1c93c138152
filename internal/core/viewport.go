package core

import "math"

// Viewport projects world coordinates onto a character grid.
// The whole world (WorldW x WorldH) is scaled to fit Cols x Rows.
type Viewport struct {
	WorldW, WorldH float64
	Cols, Rows     int
}

// NewViewport creates a viewport mapping a world of the given size onto a grid.
func NewViewport(worldW, worldH float64, cols, rows int) Viewport {
	return Viewport{WorldW: worldW, WorldH: worldH, Cols: cols, Rows: rows}
}

// CellX converts a world x-coordinate to a column.
func (v Viewport) CellX(x float64) int {
	if v.WorldW <= 0 {
		return 0
	}
	return int(math.Floor(x * float64(v.Cols) / v.WorldW))
}

// CellY converts a world y-coordinate to a row.
func (v Viewport) CellY(y float64) int {
	if v.WorldH <= 0 {
		return 0
	}
	return int(math.Floor(y * float64(v.Rows) / v.WorldH))
}

// CellRect converts a world rectangle to a cell rectangle (x, y, w, h).
// Non-empty rectangles always cover at least one cell so thin objects stay visible.
func (v Viewport) CellRect(r Rect) (x, y, w, h int) {
	x = v.CellX(r.X)
	y = v.CellY(r.Y)
	w = v.CellX(r.Right()) - x
	h = v.CellY(r.Bottom()) - y
	if r.W > 0 && w < 1 {
		w = 1
	}
	if r.H > 0 && h < 1 {
		h = 1
	}
	return x, y, w, h
}
