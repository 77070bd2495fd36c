package bitboard

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

var samples = []uint64{
	0,
	1,
	42,
	255,
	0xff00,
	0x8000000000000000,
	0x0123456789abcdef,
	math.MaxUint64,
}

func TestFormatWidths(t *testing.T) {
	for _, v := range samples {
		s := New()
		s.SetValue(v)

		hex := s.Hex()
		assert.True(t, strings.HasPrefix(hex, "0x"))
		assert.Equal(t, 16, len(hex)-2)
		assert.Equal(t, strings.ToLower(hex), hex)

		bin := s.Binary()
		assert.True(t, strings.HasPrefix(bin, "0b"))
		groups := strings.Split(bin[2:], "_")
		assert.Equal(t, 8, len(groups))
		for _, g := range groups {
			assert.Equal(t, 8, len(g))
		}

		assert.Equal(t, strconv.FormatUint(v, 10), s.Decimal())
	}
}

func TestFormatZero(t *testing.T) {
	s := New()
	assert.Equal(t, "0b00000000_00000000_00000000_00000000_00000000_00000000_00000000_00000000", s.Binary())
	assert.Equal(t, "0x0000000000000000", s.Hex())
	assert.Equal(t, "0", s.Decimal())
}

func TestRoundTrip(t *testing.T) {
	for _, kind := range Kinds {
		for _, v := range samples {
			src := New()
			src.SetValue(v)
			text := src.Format(kind)

			dst := New()
			dst.SetValue(7)
			res := dst.SetFromText(kind, text)
			assert.True(t, res.Applied())
			assert.Equal(t, v, dst.Value())
			assert.Equal(t, text, dst.Format(kind))
		}
	}
}

func TestMasking(t *testing.T) {
	s := New()
	s.SetValue(5)
	assert.True(t, s.SetFromText(Decimal, "18446744073709551616").Applied())
	assert.Equal(t, uint64(0), s.Value())

	assert.True(t, s.SetFromText(Decimal, "-1").Applied())
	assert.Equal(t, uint64(math.MaxUint64), s.Value())

	assert.True(t, s.SetFromText(Hex, "0x10000000000000002").Applied())
	assert.Equal(t, uint64(2), s.Value())

	assert.True(t, s.SetFromText(Binary, "0b1"+strings.Repeat("0", 63)+"1").Applied())
	assert.Equal(t, uint64(1), s.Value())
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		text string
		want uint64
		err  error
	}{
		{name: "binary grouped", kind: Binary, text: "0b1_0", want: 2},
		{name: "binary upper prefix", kind: Binary, text: "0B11", want: 3},
		{name: "binary no prefix", kind: Binary, text: "101", want: 5},
		{name: "binary spaces", kind: Binary, text: "  0b1  ", want: 1},
		{name: "binary prefix only", kind: Binary, text: "0b", err: ErrEmpty},
		{name: "binary underscores only", kind: Binary, text: "___", err: ErrEmpty},
		{name: "binary bad digit", kind: Binary, text: "0b102", err: ErrSyntax},
		{name: "hex upper", kind: Hex, text: "0XFF", want: 255},
		{name: "hex mixed case", kind: Hex, text: "aBc", want: 0xabc},
		{name: "hex bad digit", kind: Hex, text: "zz", err: ErrSyntax},
		{name: "hex underscore", kind: Hex, text: "0xff_ff", err: ErrSyntax},
		{name: "hex prefix only", kind: Hex, text: "0x", err: ErrEmpty},
		{name: "hex empty", kind: Hex, text: "", err: ErrEmpty},
		{name: "decimal", kind: Decimal, text: "1234", want: 1234},
		{name: "decimal plus", kind: Decimal, text: "+7", want: 7},
		{name: "decimal minus two", kind: Decimal, text: "-2", want: math.MaxUint64 - 1},
		{name: "decimal minus zero", kind: Decimal, text: "-0", want: 0},
		{name: "decimal sign only", kind: Decimal, text: "+", err: ErrEmpty},
		{name: "decimal hex digits", kind: Decimal, text: "ff", err: ErrSyntax},
		{name: "decimal double sign", kind: Decimal, text: "--1", err: ErrSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.kind, tt.text)
			if tt.err != nil {
				assert.True(t, errors.Is(err, tt.err))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRejectedLeavesValue(t *testing.T) {
	s := New()
	s.SetValue(42)

	res := s.SetFromText(Hex, "zz")
	assert.Equal(t, Rejected, res.Outcome)
	assert.False(t, res.Applied())
	assert.Error(t, res.Err)
	assert.Equal(t, uint64(42), res.Value)
	assert.Equal(t, uint64(42), s.Value())
}

func TestGuess(t *testing.T) {
	tests := []struct {
		text string
		want Kind
	}{
		{text: "0b101", want: Binary},
		{text: "0B1_1", want: Binary},
		{text: "0xff", want: Hex},
		{text: "0X10", want: Hex},
		{text: "ff", want: Hex},
		{text: "100", want: Hex},
		{text: "-5", want: Decimal},
		{text: "+5", want: Decimal},
		{text: "", want: Decimal},
		{text: "hello", want: Decimal},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, Guess(tt.text))
		})
	}
}

func TestSetFromAny(t *testing.T) {
	s := New()
	assert.True(t, s.SetFromAny("100").Applied())
	assert.Equal(t, uint64(0x100), s.Value())

	assert.True(t, s.SetFromAny("-1").Applied())
	assert.Equal(t, uint64(math.MaxUint64), s.Value())

	assert.False(t, s.SetFromAny("hello").Applied())
	assert.Equal(t, uint64(math.MaxUint64), s.Value())
}

func TestScenario(t *testing.T) {
	s := New()
	s.Toggle(0)
	assert.Equal(t, uint64(1), s.Value())
	assert.Equal(t, "0x0000000000000001", s.Hex())

	assert.True(t, s.SetFromText(Hex, "0xff").Applied())
	assert.Equal(t, uint64(255), s.Value())
	assert.True(t, strings.HasSuffix(s.Binary(), "_11111111"))
}

func TestParseKind(t *testing.T) {
	for name, want := range map[string]Kind{"bin": Binary, "HEX": Hex, " decimal ": Decimal} {
		got, err := ParseKind(name)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseKind("octal")
	assert.Error(t, err)
}
