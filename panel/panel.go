// Package panel connects a bitboard state to a front end: grid clicks, text
// fields with an edit buffer and the strings to draw.
package panel

import (
	"errors"
	"fmt"

	"bitboardviz/bitboard"
	"bitboardviz/layers"

	"github.com/notnil/chess"
	"github.com/retroenv/retrogolib/log"
)

// ErrNotEditing is reported by Commit when no field has focus.
var ErrNotEditing = errors.New("no field is being edited")

// Field is a text field of the panel.
type Field int

const (
	BinaryField Field = iota
	HexField
	DecimalField
	InputField // free-form entry, the encoding is guessed

	fieldCount
)

// Fields lists all fields in display order.
var Fields = []Field{BinaryField, HexField, DecimalField, InputField}

var fieldLabels = [fieldCount]string{"Binary", "Hex", "Decimal", "Input"}

func (f Field) String() string {
	if f < 0 || f >= fieldCount {
		return "Field?"
	}
	return fieldLabels[f]
}

// Kind returns the encoding of the field. The input field has none.
func (f Field) Kind() (bitboard.Kind, bool) {
	switch f {
	case BinaryField:
		return bitboard.Binary, true
	case HexField:
		return bitboard.Hex, true
	case DecimalField:
		return bitboard.Decimal, true
	}
	return 0, false
}

// Panel holds the editable text of all fields for one state.
type Panel struct {
	state  *bitboard.State
	logger *log.Logger

	text    [fieldCount][]rune
	focused Field
	editing bool
}

func New(state *bitboard.State, logger *log.Logger) *Panel {
	p := &Panel{
		state:  state,
		logger: logger,
	}
	p.Refresh()
	return p
}

func (p *Panel) State() *bitboard.State {
	return p.state
}

// Refresh replaces the text of every field with the formatted value and
// drops any pending edit.
func (p *Panel) Refresh() {
	for _, f := range Fields {
		kind, ok := f.Kind()
		if !ok {
			p.text[f] = p.text[f][:0]
			continue
		}
		p.text[f] = []rune(p.state.Format(kind))
	}
}

// Text returns the current text of a field.
func (p *Panel) Text(f Field) string {
	if f < 0 || f >= fieldCount {
		return ""
	}
	return string(p.text[f])
}

// IsSet reports whether the grid cell is set, row 0 is the top.
func (p *Panel) IsSet(row, col int) bool {
	return p.state.IsSet(bitboard.Index(row, col))
}

// ToggleCell flips the square under a grid cell.
func (p *Panel) ToggleCell(row, col int) {
	if row < 0 || row >= bitboard.Size || col < 0 || col >= bitboard.Size {
		return
	}
	index := bitboard.Index(row, col)
	p.state.Toggle(index)
	p.logger.Debug("Square toggled",
		log.String("square", layers.SquareName(index)),
		log.Hex("value", p.state.Value()))
	p.Refresh()
}

// Focus starts editing a field with an empty buffer. Other fields keep
// showing the current value.
func (p *Panel) Focus(f Field) {
	if f < 0 || f >= fieldCount {
		return
	}
	p.Refresh()
	p.focused = f
	p.editing = true
	p.text[f] = p.text[f][:0]
}

// Focused returns the field being edited.
func (p *Panel) Focused() (Field, bool) {
	return p.focused, p.editing
}

// Blur stops editing and discards the pending text.
func (p *Panel) Blur() {
	p.editing = false
	p.Refresh()
}

// Type appends characters to the focused field.
func (p *Panel) Type(chars []rune) {
	if !p.editing {
		return
	}
	for _, c := range chars {
		if c < ' ' || c == 0x7f {
			continue
		}
		p.text[p.focused] = append(p.text[p.focused], c)
	}
}

// Backspace removes the last character of the focused field.
func (p *Panel) Backspace() {
	if !p.editing || len(p.text[p.focused]) == 0 {
		return
	}
	p.text[p.focused] = p.text[p.focused][:len(p.text[p.focused])-1]
}

// SetText replaces the text of the focused field.
func (p *Panel) SetText(text string) {
	if !p.editing {
		return
	}
	p.text[p.focused] = []rune(text)
}

// Commit parses the focused field into the state. Every field shows the
// current value afterwards, so a rejected entry snaps back.
func (p *Panel) Commit() bitboard.Result {
	if !p.editing {
		return bitboard.Result{Outcome: bitboard.Rejected, Value: p.state.Value(), Err: ErrNotEditing}
	}

	f := p.focused
	text := string(p.text[f])
	var res bitboard.Result
	if kind, ok := f.Kind(); ok {
		res = p.state.SetFromText(kind, text)
	} else {
		res = p.state.SetFromAny(text)
	}

	if res.Applied() {
		p.logger.Debug("Value set",
			log.String("field", f.String()),
			log.Hex("value", res.Value))
	} else {
		p.logger.Debug("Entry rejected",
			log.String("field", f.String()),
			log.String("text", text),
			log.Err(res.Err))
	}

	p.Refresh()
	return res
}

func (p *Panel) Clear() {
	p.state.Clear()
	p.Refresh()
}

func (p *Panel) Invert() {
	p.state.Invert()
	p.Refresh()
}

// ShowLayer replaces the value with a layer of a position.
func (p *Panel) ShowLayer(pos *chess.Position, layer layers.Layer) {
	if pos == nil || layer == nil {
		return
	}
	p.state.SetValue(layer.Bitboard(pos))
	p.logger.Debug("Layer shown",
		log.String("layer", layer.Name()),
		log.Hex("value", p.state.Value()))
	p.Refresh()
}

// Status returns a one line summary of the value.
func (p *Panel) Status() string {
	if n := p.state.Count(); n != 1 {
		return fmt.Sprintf("%d squares set", n)
	}
	return "1 square set"
}
