package core

import "strings"

// Cell is one character position of a Screen.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a character buffer the game draws into. Frontends turn it into
// terminal output; the game never talks to the terminal directly.
type Screen struct {
	w, h  int
	cells []Cell // row-major
}

// NewScreen creates a blank buffer of width x height cells.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// Width returns the buffer width in cells.
func (s *Screen) Width() int {
	return s.w
}

// Height returns the buffer height in cells.
func (s *Screen) Height() int {
	return s.h
}

// Resize changes the buffer size. Content inside both the old and the new
// bounds is kept.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if s.cells != nil && width == s.w && height == s.h {
		return
	}
	next := make([]Cell, width*height)
	for i := range next {
		next[i] = blankCell
	}
	for y := range min(s.h, height) {
		copy(next[y*width:y*width+min(s.w, width)], s.cells[y*s.w:])
	}
	s.w, s.h, s.cells = width, height, next
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blankCell
	}
}

func (s *Screen) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.w && y < s.h
}

// Set writes r in the default color. Writes outside the buffer are dropped.
func (s *Screen) Set(x, y int, r rune) {
	s.SetColored(x, y, r, ColorDefault)
}

// SetColored writes r in color c. Writes outside the buffer are dropped.
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if s.inside(x, y) {
		s.cells[y*s.w+x] = Cell{Rune: r, Color: c}
	}
}

// GetCell returns the cell at (x, y), or a blank cell outside the buffer.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inside(x, y) {
		return blankCell
	}
	return s.cells[y*s.w+x]
}

// DrawText writes text in the default color, see DrawTextColored.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColored(x, y, text, ColorDefault)
}

// DrawTextColored writes text left to right from (x, y), clipped at the edges.
func (s *Screen) DrawTextColored(x, y int, text string, c Color) {
	for _, r := range text {
		s.SetColored(x, y, r, c)
		x++
	}
}

// FillRect fills a w x h cell area starting at (x, y), clipped at the edges.
func (s *Screen) FillRect(x, y, w, h int, r rune, c Color) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			s.SetColored(xx, yy, r, c)
		}
	}
}

// DrawBox outlines a w x h box with its top-left corner at (x, y).
func (s *Screen) DrawBox(x, y, w, h int) {
	x2, y2 := x+w-1, y+h-1
	for xx := x + 1; xx < x2; xx++ {
		s.Set(xx, y, '─')
		s.Set(xx, y2, '─')
	}
	for yy := y + 1; yy < y2; yy++ {
		s.Set(x, yy, '│')
		s.Set(x2, yy, '│')
	}
	s.Set(x, y, '┌')
	s.Set(x2, y, '┐')
	s.Set(x, y2, '└')
	s.Set(x2, y2, '┘')
}

// Row returns row y without colors.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.h {
		return strings.Repeat(" ", s.w)
	}
	var sb strings.Builder
	for _, c := range s.cells[y*s.w : (y+1)*s.w] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// String returns the whole buffer without colors, one line per row.
func (s *Screen) String() string {
	rows := make([]string, s.h)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
