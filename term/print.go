package main

import (
	"fmt"
	"io"

	"bitboardviz/bitboard"
	"bitboardviz/config"
)

// printBoard writes the board and its value without starting the UI. With a
// format only the value in that encoding is written, one line for scripts.
func printBoard(w io.Writer, opts config.Options) error {
	state := bitboard.New()
	if _, _, err := config.Setup(opts, state); err != nil {
		return err
	}

	if opts.Format != "" {
		kind, err := bitboard.ParseKind(opts.Format)
		if err != nil {
			return fmt.Errorf("%w: %w", config.ErrInvalidOption, err)
		}
		_, err = fmt.Fprintln(w, state.Format(kind))
		return err
	}

	if _, err := io.WriteString(w, state.Grid()+"\n"); err != nil {
		return err
	}
	for _, kind := range bitboard.Kinds {
		if _, err := fmt.Fprintf(w, "%-8s %s\n", kind, state.Format(kind)); err != nil {
			return err
		}
	}
	return nil
}
