// Package config handles program options and setup shared by the front ends.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"bitboardviz/bitboard"
	"bitboardviz/layers"

	"github.com/notnil/chess"
	"github.com/pkg/profile"
	"github.com/retroenv/retrogolib/log"
)

// DefaultCellSize is the edge length of a grid cell in pixels.
const DefaultCellSize = 64

var ErrInvalidOption = errors.New("invalid option")

// Options of the program.
type Options struct {
	Value    string // initial value, encoding is guessed
	FEN      string // position the layers are taken from
	Layer    string // layer shown at start
	CellSize int

	Print  bool   // print the board and exit
	Format string // encoding printed with -print, all when empty

	Profile string // directory for a cpu profile
	Debug   bool
	Quiet   bool
}

// Parse reads the options from the command line arguments.
func Parse(name string, args []string, output io.Writer) (Options, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(output)

	var opts Options
	flags.StringVar(&opts.Value, "value", "", "initial value as binary (0b), hex (0x) or decimal")
	flags.StringVar(&opts.FEN, "fen", "", "FEN of the position to take layers from (default: starting position)")
	flags.StringVar(&opts.Layer, "layer", "", "show this layer of the position at start, e.g. \"White Pawns\"")
	flags.IntVar(&opts.CellSize, "cell", DefaultCellSize, "grid cell size in pixels")
	flags.BoolVar(&opts.Print, "print", false, "print the board and the value and exit")
	flags.StringVar(&opts.Format, "format", "", "encoding printed by -print: bin, hex or dec (default: all)")
	flags.StringVar(&opts.Profile, "profile", "", "write a cpu profile to this directory")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debug logging")
	flags.BoolVar(&opts.Quiet, "q", false, "quiet mode")

	if err := flags.Parse(args); err != nil {
		return opts, err
	}
	if flags.NArg() > 0 {
		return opts, fmt.Errorf("%w: unexpected argument '%s'", ErrInvalidOption, flags.Arg(0))
	}
	if opts.CellSize < 8 {
		return opts, fmt.Errorf("%w: cell size %d is smaller than 8", ErrInvalidOption, opts.CellSize)
	}
	if opts.Format != "" {
		if _, err := bitboard.ParseKind(opts.Format); err != nil {
			return opts, fmt.Errorf("%w: %w", ErrInvalidOption, err)
		}
	}
	if opts.Debug && opts.Quiet {
		return opts, fmt.Errorf("%w: -debug and -q are exclusive", ErrInvalidOption)
	}
	return opts, nil
}

// CreateLogger creates a logger with appropriate settings.
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// StartProfile starts cpu profiling if requested and returns the function
// that stops it.
func StartProfile(opts Options) func() {
	if opts.Profile == "" {
		return func() {}
	}
	p := profile.Start(profile.CPUProfile, profile.ProfilePath(opts.Profile), profile.Quiet)
	return p.Stop
}

// Setup loads the position and seeds the state. An explicit value wins over
// an initial layer. The state is left untouched when an option is invalid.
func Setup(opts Options, state *bitboard.State) (*chess.Position, *layers.Cycle, error) {
	var value uint64
	if opts.Value != "" {
		v, err := bitboard.Parse(bitboard.Guess(opts.Value), opts.Value)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrInvalidOption, err)
		}
		value = v
	}

	pos, err := layers.Load(opts.FEN)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidOption, err)
	}

	cycle := layers.NewCycle(layers.Default())
	if opts.Layer != "" {
		if err := cycle.Select(opts.Layer); err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrInvalidOption, err)
		}
		state.SetValue(cycle.Current().Bitboard(pos))
	}

	if opts.Value != "" {
		state.SetValue(value)
	}
	return pos, cycle, nil
}
