package bitboard

// Size is the number of rows and columns of the grid.
const Size = 8

// Index maps a grid cell to its square. Row 0 is the visual top of the
// board, so index 0 is the bottom-left cell and 63 the top-right.
func Index(row, col int) int {
	return (Size-1-row)*Size + col
}
