package bitboard

import (
	"fmt"
	"strconv"
	"strings"
)

// Binary returns the value as 64 binary digits in eight underscore
// separated groups, prefixed with 0b.
func (s *State) Binary() string {
	digits := fmt.Sprintf("%064b", s.value)

	var sb strings.Builder
	sb.Grow(2 + 64 + 7)
	sb.WriteString("0b")
	for i := 0; i < 64; i += 8 {
		if i > 0 {
			sb.WriteByte('_')
		}
		sb.WriteString(digits[i : i+8])
	}
	return sb.String()
}

// Hex returns the value as 16 lowercase hex digits prefixed with 0x.
func (s *State) Hex() string {
	return fmt.Sprintf("0x%016x", s.value)
}

func (s *State) Decimal() string {
	return strconv.FormatUint(s.value, 10)
}

// Format returns the value in the encoding of kind.
func (s *State) Format(kind Kind) string {
	switch kind {
	case Binary:
		return s.Binary()
	case Hex:
		return s.Hex()
	default:
		return s.Decimal()
	}
}

// Grid renders the board top rank first, one "1 " or "0 " per square.
func (s *State) Grid() string {
	var sb strings.Builder
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if s.IsSet(Index(row, col)) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString("0 ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
