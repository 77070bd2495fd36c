package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"bitboardviz/config"

	"github.com/retroenv/retrogolib/assert"
)

func TestPrintBoard(t *testing.T) {
	var buf bytes.Buffer
	err := printBoard(&buf, config.Options{Value: "0x1"})
	assert.NoError(t, err)

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "0 0 0 0 0 0 0 0 ", lines[0])
	assert.Equal(t, "1 0 0 0 0 0 0 0 ", lines[7])
	assert.Equal(t, "", lines[8])
	assert.Equal(t, "Binary   0b00000000_00000000_00000000_00000000_00000000_00000000_00000000_00000001", lines[9])
	assert.Equal(t, "Hex      0x0000000000000001", lines[10])
	assert.Equal(t, "Decimal  1", lines[11])
}

func TestPrintFormat(t *testing.T) {
	tests := []struct {
		name string
		opts config.Options
		want string
	}{
		{name: "hex", opts: config.Options{Value: "-1", Format: "hex"}, want: "0xffffffffffffffff\n"},
		{name: "decimal", opts: config.Options{Value: "0xff", Format: "dec"}, want: "255\n"},
		{name: "layer", opts: config.Options{Layer: "White Pawns", Format: "hex"}, want: "0x000000000000ff00\n"},
		{name: "binary", opts: config.Options{Value: "0b11", Format: "bin"}, want: "0b00000000_00000000_00000000_00000000_00000000_00000000_00000000_00000011\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			assert.NoError(t, printBoard(&buf, tt.opts))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrintInvalid(t *testing.T) {
	var buf bytes.Buffer
	err := printBoard(&buf, config.Options{Value: "xyz"})
	assert.True(t, errors.Is(err, config.ErrInvalidOption))

	err = printBoard(&buf, config.Options{Format: "octal"})
	assert.True(t, errors.Is(err, config.ErrInvalidOption))
	assert.Equal(t, "", buf.String())
}
