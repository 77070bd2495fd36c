// Package layers extracts bitboards from a chess position.
package layers

import (
	"fmt"
	"strings"

	"github.com/notnil/chess"
)

// Layer selects a set of squares of a position.
type Layer interface {
	Bitboard(pos *chess.Position) uint64
	Name() string
}

// Load parses a FEN string. An empty string yields the starting position.
func Load(fen string) (*chess.Position, error) {
	if strings.TrimSpace(fen) == "" {
		return chess.NewGame().Position(), nil
	}
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("parsing FEN: %w", err)
	}
	return chess.NewGame(opt).Position(), nil
}

// SquareName returns the algebraic name of a square index, a1 is 0.
func SquareName(index int) string {
	if index < 0 || index > int(chess.H8) {
		return ""
	}
	return chess.Square(index).String()
}

// Default returns the built-in layers in display order.
func Default() []Layer {
	list := []Layer{
		OccupiedLayer{},
		ColorLayer{Color: chess.White},
		ColorLayer{Color: chess.Black},
	}
	for _, c := range []chess.Color{chess.White, chess.Black} {
		for _, t := range pieceTypes {
			list = append(list, PieceLayer{Piece: chess.NewPiece(t, c)})
		}
	}
	return append(list, TargetsLayer{})
}

// Lookup finds a layer by name, ignoring case.
func Lookup(layers []Layer, name string) (Layer, bool) {
	for _, l := range layers {
		if strings.EqualFold(l.Name(), strings.TrimSpace(name)) {
			return l, true
		}
	}
	return nil, false
}

// Cycle steps through a list of layers.
type Cycle struct {
	layers  []Layer
	current int
}

func NewCycle(layers []Layer) *Cycle {
	return &Cycle{layers: layers}
}

func (c *Cycle) Current() Layer {
	if len(c.layers) == 0 {
		return nil
	}
	return c.layers[c.current]
}

// Next advances to the following layer, wrapping at the end.
func (c *Cycle) Next() Layer {
	if len(c.layers) == 0 {
		return nil
	}
	c.current = (c.current + 1) % len(c.layers)
	return c.layers[c.current]
}

// Select makes the named layer current.
func (c *Cycle) Select(name string) error {
	layer, ok := Lookup(c.layers, name)
	if !ok {
		return fmt.Errorf("unknown layer '%s'", name)
	}
	for i, l := range c.layers {
		if l == layer {
			c.current = i
			break
		}
	}
	return nil
}
