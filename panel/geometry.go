package panel

import "bitboardviz/bitboard"

// Geometry places the grid on screen.
type Geometry struct {
	OriginX  int
	OriginY  int
	CellSize int
}

// Width of the whole grid in pixels.
func (g Geometry) Width() int {
	return g.CellSize * bitboard.Size
}

// CellAt maps a pixel position to a grid cell.
func (g Geometry) CellAt(x, y int) (row, col int, ok bool) {
	x -= g.OriginX
	y -= g.OriginY
	if g.CellSize <= 0 || x < 0 || y < 0 || x >= g.Width() || y >= g.Width() {
		return 0, 0, false
	}
	return y / g.CellSize, x / g.CellSize, true
}

// CellOrigin returns the top left pixel of a grid cell.
func (g Geometry) CellOrigin(row, col int) (x, y int) {
	return g.OriginX + col*g.CellSize, g.OriginY + row*g.CellSize
}
