package layers

import "github.com/notnil/chess"

var pieceTypes = []chess.PieceType{
	chess.Pawn,
	chess.Knight,
	chess.Bishop,
	chess.Rook,
	chess.Queen,
	chess.King,
}

var pieceNames = map[chess.PieceType]string{
	chess.Pawn:   "Pawns",
	chess.Knight: "Knights",
	chess.Bishop: "Bishops",
	chess.Rook:   "Rooks",
	chess.Queen:  "Queens",
	chess.King:   "King",
}

func colorName(c chess.Color) string {
	if c == chess.White {
		return "White"
	}
	return "Black"
}

// collect ORs together the squares whose piece matches keep.
func collect(pos *chess.Position, keep func(chess.Piece) bool) uint64 {
	var bb uint64
	for sq, piece := range pos.Board().SquareMap() {
		if piece != chess.NoPiece && keep(piece) {
			bb |= 1 << uint(sq)
		}
	}
	return bb
}

// OccupiedLayer is every square holding a piece.
type OccupiedLayer struct{}

func (OccupiedLayer) Name() string {
	return "Occupied"
}

func (OccupiedLayer) Bitboard(pos *chess.Position) uint64 {
	return collect(pos, func(chess.Piece) bool { return true })
}

// ColorLayer is every square holding a piece of one side.
type ColorLayer struct {
	Color chess.Color
}

func (l ColorLayer) Name() string {
	return colorName(l.Color)
}

func (l ColorLayer) Bitboard(pos *chess.Position) uint64 {
	return collect(pos, func(p chess.Piece) bool { return p.Color() == l.Color })
}

// PieceLayer is every square holding one kind of piece.
type PieceLayer struct {
	Piece chess.Piece
}

func (l PieceLayer) Name() string {
	return colorName(l.Piece.Color()) + " " + pieceNames[l.Piece.Type()]
}

func (l PieceLayer) Bitboard(pos *chess.Position) uint64 {
	return collect(pos, func(p chess.Piece) bool { return p == l.Piece })
}

// TargetsLayer is every destination square of a legal move of the side to
// move.
type TargetsLayer struct{}

func (TargetsLayer) Name() string {
	return "Targets"
}

func (TargetsLayer) Bitboard(pos *chess.Position) uint64 {
	var bb uint64
	for _, move := range pos.ValidMoves() {
		bb |= 1 << uint(move.S2())
	}
	return bb
}
