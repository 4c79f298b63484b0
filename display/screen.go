// Copyright 2026 Textmode contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: display/screen.go
// Summary: Renders the console grid onto a tcell.Screen.
// Usage: The interactive production binding; also runs against
// tcell.NewSimulationScreen in tests.

package display

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/textmode/vga"
)

// ScreenRegion is a vga.Region that draws each cell onto a tcell screen.
// A shadow buffer keeps the authoritative cell contents so scroll
// read-back does not depend on the terminal.
type ScreenRegion struct {
	screen     tcell.Screen
	cols, rows int
	shadow     []vga.Cell
}

// NewScreenRegion builds a fixed cols x rows region on an initialized
// screen. The region occupies the screen's top-left corner; a terminal
// smaller than the grid clips, it never resizes the grid.
func NewScreenRegion(screen tcell.Screen, cols, rows int) *ScreenRegion {
	if cols <= 0 {
		cols = vga.DefaultWidth
	}
	if rows <= 0 {
		rows = vga.DefaultHeight
	}
	return &ScreenRegion{
		screen: screen,
		cols:   cols,
		rows:   rows,
		shadow: make([]vga.Cell, cols*rows),
	}
}

// Size returns the grid dimensions in cells.
func (r *ScreenRegion) Size() (cols, rows int) {
	return r.cols, r.rows
}

// Put stores the cell and draws it immediately. Content reaches the
// terminal on the next Flush.
func (r *ScreenRegion) Put(col, row int, c vga.Cell) {
	r.shadow[row*r.cols+col] = c
	r.screen.SetContent(col, row, glyphForByte(c.Char), nil, styleFor(c.Attr))
}

// Get loads the cell from the shadow buffer.
func (r *ScreenRegion) Get(col, row int) vga.Cell {
	return r.shadow[row*r.cols+col]
}

// Flush pushes pending cell updates to the terminal.
func (r *ScreenRegion) Flush() {
	r.screen.Show()
}

// glyphForByte maps a cell's character byte to the rune drawn for it.
// Cells only ever hold printable ASCII or the substitute glyph, which
// renders as the filled box VGA hardware shows for unmapped codes. Any
// rune that would not occupy exactly one column falls back to '?'.
func glyphForByte(b byte) rune {
	var r rune
	switch {
	case b == vga.SubstituteChar:
		r = '■'
	case b >= 0x20 && b <= 0x7E:
		r = rune(b)
	default:
		r = ' '
	}
	if runewidth.RuneWidth(r) != 1 {
		return '?'
	}
	return r
}
