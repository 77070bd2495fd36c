package bitboard

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is one of the text encodings of the value.
type Kind int

const (
	Binary Kind = iota
	Hex
	Decimal
)

// Kinds lists the encodings in display order.
var Kinds = []Kind{Binary, Hex, Decimal}

func (k Kind) String() string {
	switch k {
	case Binary:
		return "Binary"
	case Hex:
		return "Hex"
	case Decimal:
		return "Decimal"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) base() uint64 {
	switch k {
	case Binary:
		return 2
	case Hex:
		return 16
	default:
		return 10
	}
}

// ParseKind returns the encoding for a name like "bin", "hex" or "decimal".
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bin", "binary":
		return Binary, nil
	case "hex", "hexadecimal":
		return Hex, nil
	case "dec", "decimal":
		return Decimal, nil
	}
	return 0, fmt.Errorf("unknown encoding '%s'", name)
}

var (
	ErrEmpty  = errors.New("no digits")
	ErrSyntax = errors.New("invalid digit")
)

// Outcome tells whether a text entry changed the state.
type Outcome int

const (
	Applied Outcome = iota
	Rejected
)

func (o Outcome) String() string {
	if o == Applied {
		return "applied"
	}
	return "rejected"
}

// Result of a text entry. Value is the state's value after the entry; Err is
// set when the entry was rejected.
type Result struct {
	Outcome Outcome
	Value   uint64
	Err     error
}

func (r Result) Applied() bool {
	return r.Outcome == Applied
}

// SetFromText parses text in the encoding of kind and stores it. Malformed
// text leaves the state unchanged and is reported as Rejected.
func (s *State) SetFromText(kind Kind, text string) Result {
	v, err := Parse(kind, text)
	if err != nil {
		return Result{Outcome: Rejected, Value: s.value, Err: err}
	}
	s.value = v
	return Result{Outcome: Applied, Value: v}
}

// SetFromAny is SetFromText for text of unknown encoding, see Guess.
func (s *State) SetFromAny(text string) Result {
	return s.SetFromText(Guess(text), text)
}

// Guess picks an encoding for free-form text: a 0b prefix means binary, a 0x
// prefix or hex digits only means hex, anything else is decimal. Plain digit
// strings such as "100" therefore read as hex.
func Guess(text string) Kind {
	text = strings.TrimSpace(text)
	switch {
	case hasPrefix(text, "0b"):
		return Binary
	case hasPrefix(text, "0x"):
		return Hex
	case text != "" && allDigits(text, 16):
		return Hex
	default:
		return Decimal
	}
}

// Parse converts text in the encoding of kind. Digits above the low 64 bits
// are dropped and negative decimals wrap to their two's complement.
func Parse(kind Kind, text string) (uint64, error) {
	digits := strings.TrimSpace(text)
	negative := false

	switch kind {
	case Binary:
		digits = trimPrefix(digits, "0b")
		digits = strings.ReplaceAll(digits, "_", "")
	case Hex:
		digits = trimPrefix(digits, "0x")
	default:
		if digits != "" && (digits[0] == '-' || digits[0] == '+') {
			negative = digits[0] == '-'
			digits = digits[1:]
		}
	}

	if digits == "" {
		return 0, fmt.Errorf("parsing %s '%s': %w", kind, text, ErrEmpty)
	}

	base := kind.base()
	var v uint64
	for i := 0; i < len(digits); i++ {
		d, ok := digitValue(digits[i])
		if !ok || d >= base {
			return 0, fmt.Errorf("parsing %s '%s': %w '%c'", kind, text, ErrSyntax, digits[i])
		}
		// uint64 arithmetic wraps, which keeps exactly the low 64 bits.
		v = v*base + d
	}

	if negative {
		v = -v
	}
	return v, nil
}

func digitValue(c byte) (uint64, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint64(c - '0'), true
	case c >= 'a' && c <= 'f':
		return uint64(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return uint64(c-'A') + 10, true
	}
	return 0, false
}

func allDigits(s string, base uint64) bool {
	for i := 0; i < len(s); i++ {
		d, ok := digitValue(s[i])
		if !ok || d >= base {
			return false
		}
	}
	return true
}

// hasPrefix matches a two character prefix like 0x case-insensitively.
func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func trimPrefix(s, prefix string) string {
	if hasPrefix(s, prefix) {
		return s[len(prefix):]
	}
	return s
}
