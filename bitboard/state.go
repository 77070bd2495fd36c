// Package bitboard holds a 64-bit value edited as an 8x8 grid of squares.
package bitboard

import "math/bits"

// Squares is the number of cells on the board.
const Squares = 64

// State owns the value shown on the board. The zero value is an empty board.
type State struct {
	value uint64
}

func New() *State {
	return &State{}
}

func (s *State) Value() uint64 {
	return s.value
}

func (s *State) SetValue(v uint64) {
	s.value = v
}

// Toggle flips the square at index. Indices outside the board are ignored.
func (s *State) Toggle(index int) {
	if !valid(index) {
		return
	}
	s.value ^= 1 << uint(index)
}

// IsSet reports whether the square at index is set.
func (s *State) IsSet(index int) bool {
	if !valid(index) {
		return false
	}
	return s.value&(1<<uint(index)) != 0
}

func (s *State) Clear() {
	s.value = 0
}

func (s *State) Invert() {
	s.value = ^s.value
}

// Count returns the number of set squares.
func (s *State) Count() int {
	return bits.OnesCount64(s.value)
}

func valid(index int) bool {
	return index >= 0 && index < Squares
}
