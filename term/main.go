// Package main implements a terminal editor for a chess bitboard.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"bitboardviz/config"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	opts, err := config.Parse(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if opts.Print {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		if err := printBoard(os.Stdout, opts); err != nil {
			logger.Fatal(err.Error())
		}
		return
	}

	// Log lines share the terminal with the board, keep them to errors.
	logger := config.CreateLogger(opts.Debug, !opts.Debug)
	m, err := newModel(opts, logger)
	if err != nil {
		logger.Fatal(err.Error())
	}

	stopProfile := config.StartProfile(opts)
	_, err = tea.NewProgram(m).Run()
	stopProfile()
	if err != nil {
		logger.Fatal(err.Error())
	}
}
