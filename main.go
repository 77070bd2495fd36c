// Package main implements a windowed editor for a chess bitboard.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"os"

	"bitboardviz/bitboard"
	"bitboardviz/config"
	"bitboardviz/layers"
	"bitboardviz/panel"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/notnil/chess"
	"github.com/retroenv/retrogolib/log"
)

const (
	margin     = 16
	labelWidth = 64
	rowHeight  = 20
	charWidth  = 6  // debug font glyph width
	textChars  = 80 // widest text shown in a field

	statusLines = 2
)

var (
	lightColor = color.RGBA{0xee, 0xee, 0xee, 0xff}
	darkColor  = color.RGBA{0x55, 0x55, 0x55, 0xff}
	markColor  = color.RGBA{0x34, 0x98, 0xdb, 0xff}
	background = color.RGBA{0xaa, 0xaa, 0xaa, 0xff}
	focusColor = color.RGBA{0xff, 0xff, 0xff, 0x60}
)

type Game struct {
	panel  *panel.Panel
	geom   panel.Geometry
	pos    *chess.Position
	cycle  *layers.Cycle
	logger *log.Logger

	width, height int
	hover         int // square under the cursor, -1 if none
	chars         []rune
}

func NewGame(opts config.Options, logger *log.Logger) (*Game, error) {
	state := bitboard.New()
	pos, cycle, err := config.Setup(opts, state)
	if err != nil {
		return nil, err
	}

	g := &Game{
		panel:  panel.New(state, logger),
		geom:   panel.Geometry{OriginX: margin, OriginY: margin, CellSize: opts.CellSize},
		pos:    pos,
		cycle:  cycle,
		logger: logger,
		hover:  -1,
	}

	g.width = max(g.geom.Width(), labelWidth+textChars*charWidth) + 2*margin
	g.height = margin + g.geom.Width() + margin + (len(panel.Fields)+statusLines)*rowHeight + margin
	return g, nil
}

// fieldTop returns the y coordinate of a text field row.
func (g *Game) fieldTop(i int) int {
	return g.geom.OriginY + g.geom.Width() + margin + i*rowHeight
}

func (g *Game) fieldAt(x, y int) (panel.Field, bool) {
	if x < margin || x >= g.width-margin {
		return 0, false
	}
	for i, f := range panel.Fields {
		top := g.fieldTop(i)
		if y >= top && y < top+rowHeight {
			return f, true
		}
	}
	return 0, false
}

func (g *Game) Update() error {
	x, y := ebiten.CursorPosition()
	g.hover = -1
	if row, col, ok := g.geom.CellAt(x, y); ok {
		g.hover = bitboard.Index(row, col)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if row, col, ok := g.geom.CellAt(x, y); ok {
			g.panel.Blur()
			g.panel.ToggleCell(row, col)
		} else if f, ok := g.fieldAt(x, y); ok {
			g.panel.Blur()
			g.panel.Focus(f)
		} else {
			g.panel.Blur()
		}
	}

	if _, editing := g.panel.Focused(); editing {
		g.updateEditing()
		return nil
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.panel.Clear()
	case inpututil.IsKeyJustPressed(ebiten.KeyI):
		g.panel.Invert()
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		layer := g.cycle.Next()
		g.panel.ShowLayer(g.pos, layer)
		g.logger.Info("Showing layer", log.String("layer", layer.Name()))
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		g.panel.Focus(panel.Fields[0])
	}
	return nil
}

func (g *Game) updateEditing() {
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	g.panel.Type(g.chars)

	focused, _ := g.panel.Focused()
	switch {
	case repeatingKeyPressed(ebiten.KeyBackspace):
		g.panel.Backspace()
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter):
		g.panel.Commit()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.panel.Blur()
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		next := panel.Fields[(int(focused)+1)%len(panel.Fields)]
		g.panel.Blur()
		g.panel.Focus(next)
	}
}

// repeatingKeyPressed returns true when a key was just pressed or is held
// long enough to repeat.
func repeatingKeyPressed(key ebiten.Key) bool {
	const (
		delay    = 30
		interval = 3
	)
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= delay && (d-delay)%interval == 0
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	size := float32(g.geom.CellSize)
	for row := 0; row < bitboard.Size; row++ {
		for col := 0; col < bitboard.Size; col++ {
			x, y := g.geom.CellOrigin(row, col)
			clr := lightColor
			if (row+col)%2 == 1 {
				clr = darkColor
			}
			vector.DrawFilledRect(screen, float32(x), float32(y), size, size, clr, false)

			if g.panel.IsSet(row, col) {
				inset := size / 16
				vector.DrawFilledRect(screen, float32(x)+inset, float32(y)+inset, size-2*inset, size-2*inset, markColor, false)
			}
		}
	}

	focused, editing := g.panel.Focused()
	for i, f := range panel.Fields {
		top := g.fieldTop(i)
		text := g.panel.Text(f)
		if editing && f == focused {
			vector.DrawFilledRect(screen, float32(margin), float32(top), float32(g.width-2*margin), rowHeight, focusColor, false)
			text += "_"
		}
		ebitenutil.DebugPrintAt(screen, f.String(), margin, top+2)
		ebitenutil.DebugPrintAt(screen, text, margin+labelWidth, top+2)
	}

	ebitenutil.DebugPrintAt(screen, g.status(), margin, g.fieldTop(len(panel.Fields))+2)
	ebitenutil.DebugPrintAt(screen, "click: toggle  enter: apply  esc: cancel  tab: next field  c: clear  i: invert  l: layer",
		margin, g.fieldTop(len(panel.Fields)+1)+2)
}

func (g *Game) status() string {
	status := g.panel.Status()
	if g.hover >= 0 {
		status = fmt.Sprintf("%s (%d): %s", layers.SquareName(g.hover), g.hover, status)
	}
	if layer := g.cycle.Current(); layer != nil {
		status += "  layer: " + layer.Name()
	}
	return status
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func main() {
	opts, err := config.Parse(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	game, err := NewGame(opts, logger)
	if err != nil {
		logger.Fatal(err.Error())
	}

	ebiten.SetWindowSize(game.width, game.height)
	ebiten.SetWindowTitle("Chess Bitboard Visualizer")
	stopProfile := config.StartProfile(opts)
	err = ebiten.RunGame(game)
	stopProfile()
	if err != nil {
		logger.Fatal("Running window failed", log.Err(err))
	}
}
