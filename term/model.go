package main

import (
	"fmt"
	"strings"

	"bitboardviz/bitboard"
	"bitboardviz/config"
	"bitboardviz/layers"
	"bitboardviz/panel"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/notnil/chess"
	"github.com/retroenv/retrogolib/log"
)

var (
	lightStyle  = lipgloss.NewStyle().Background(lipgloss.Color("255"))
	darkStyle   = lipgloss.NewStyle().Background(lipgloss.Color("240"))
	markStyle   = lipgloss.NewStyle().Background(lipgloss.Color("33"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true).Width(9).Render
	helpStyle   = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#626262")).Render
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Render
)

const gridFocus = -1

type model struct {
	panel  *panel.Panel
	pos    *chess.Position
	cycle  *layers.Cycle
	logger *log.Logger

	row, col int
	focus    int // index into panel.Fields or gridFocus
	input    textinput.Model
	message  string
}

func newModel(opts config.Options, logger *log.Logger) (model, error) {
	state := bitboard.New()
	pos, cycle, err := config.Setup(opts, state)
	if err != nil {
		return model{}, err
	}

	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 100

	return model{
		panel:  panel.New(state, logger),
		pos:    pos,
		cycle:  cycle,
		logger: logger,
		focus:  gridFocus,
		input:  input,
	}, nil
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.focus == gridFocus {
		return m.updateGrid(key)
	}
	return m.updateField(key)
}

func (m model) updateGrid(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.message = ""

	switch key.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		m.row = max(m.row-1, 0)
	case "down", "j":
		m.row = min(m.row+1, bitboard.Size-1)
	case "left", "h":
		m.col = max(m.col-1, 0)
	case "right", "l":
		m.col = min(m.col+1, bitboard.Size-1)
	case " ", "enter":
		m.panel.ToggleCell(m.row, m.col)
	case "c":
		m.panel.Clear()
	case "i":
		m.panel.Invert()
	case "n":
		layer := m.cycle.Next()
		m.panel.ShowLayer(m.pos, layer)
		m.message = "layer: " + layer.Name()
	case "tab":
		return m.focusField(0)
	}
	return m, nil
}

func (m model) updateField(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		return m.focusGrid(), nil

	case "tab":
		if m.focus+1 >= len(panel.Fields) {
			return m.focusGrid(), nil
		}
		return m.focusField(m.focus + 1)

	case "enter":
		f := panel.Fields[m.focus]
		m.panel.Focus(f)
		m.panel.SetText(m.input.Value())
		res := m.panel.Commit()
		m.message = ""
		if !res.Applied() {
			m.message = res.Err.Error()
		}
		m.input.SetValue(m.panel.Text(f))
		m.input.CursorEnd()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	return m, cmd
}

func (m model) focusField(i int) (model, tea.Cmd) {
	m.focus = i
	m.message = ""
	m.input.SetValue(m.panel.Text(panel.Fields[i]))
	m.input.CursorEnd()
	cmd := m.input.Focus()
	return m, cmd
}

func (m model) focusGrid() model {
	m.focus = gridFocus
	m.input.Blur()
	m.panel.Blur()
	return m
}

func (m model) View() string {
	var sb strings.Builder

	for row := 0; row < bitboard.Size; row++ {
		fmt.Fprintf(&sb, "%d ", bitboard.Size-row)
		for col := 0; col < bitboard.Size; col++ {
			sb.WriteString(m.cell(row, col))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n\n")

	for i, f := range panel.Fields {
		text := m.panel.Text(f)
		if i == m.focus {
			text = m.input.View()
		}
		sb.WriteString(labelStyle(f.String()) + text + "\n")
	}

	index := bitboard.Index(m.row, m.col)
	fmt.Fprintf(&sb, "\n%s (%d): %s", layers.SquareName(index), index, m.panel.Status())
	if m.message != "" {
		sb.WriteString("  " + errStyle(m.message))
	}
	sb.WriteString("\n")

	if m.focus == gridFocus {
		sb.WriteString(helpStyle("arrows/hjkl: move  space: toggle  tab: edit fields  c: clear  i: invert  n: next layer  q: quit"))
	} else {
		sb.WriteString(helpStyle("enter: apply  tab: next field  esc: back to board"))
	}
	return sb.String() + "\n"
}

func (m model) cell(row, col int) string {
	style := lightStyle
	if (row+col)%2 == 1 {
		style = darkStyle
	}
	if m.panel.IsSet(row, col) {
		style = markStyle
	}

	if m.focus == gridFocus && row == m.row && col == m.col {
		return cursorStyle.Inherit(style).Render("[]")
	}
	return style.Render("  ")
}
