// Copyright 2026 Textmode contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vga/region.go
// Summary: The memory-mapped cell region the console writes into.
// Notes: The region is externally owned memory as far as the console is
// concerned. Implementations must treat every cell access as volatile.

package vga

import (
	"github.com/framegrace/textmode/internal/volatile"
)

// DefaultWidth is the column count of the standard text mode.
const DefaultWidth = 80

// DefaultHeight is the row count of the standard text mode.
const DefaultHeight = 25

// Region is a bounds-checked view over a cols x rows grid of two-byte
// cells. The console owns it for writing but its storage is external:
// implementations must perform each Put and Get exactly as issued, never
// caching, coalescing, or reordering cell accesses.
type Region interface {
	// Size returns the grid dimensions in cells.
	Size() (cols, rows int)

	// Put stores one cell. Callers keep col/row inside Size.
	Put(col, row int, c Cell)

	// Get loads one cell. Scrolling reads rows back through this.
	Get(col, row int) Cell
}

// RAMRegion is an in-process simulated display: the same two-byte cell
// layout as the hardware, backed by ordinary memory. It is the default
// binding for the global console and the buffer the tests run against.
type RAMRegion struct {
	cols, rows int
	words      []uint16
}

// NewRAMRegion allocates a simulated cols x rows display.
func NewRAMRegion(cols, rows int) *RAMRegion {
	if cols <= 0 {
		cols = DefaultWidth
	}
	if rows <= 0 {
		rows = DefaultHeight
	}
	return &RAMRegion{
		cols:  cols,
		rows:  rows,
		words: make([]uint16, cols*rows),
	}
}

// Size returns the grid dimensions in cells.
func (r *RAMRegion) Size() (cols, rows int) {
	return r.cols, r.rows
}

// Put stores one cell.
func (r *RAMRegion) Put(col, row int, c Cell) {
	volatile.Store16(&r.words[row*r.cols+col], c.Word())
}

// Get loads one cell.
func (r *RAMRegion) Get(col, row int) Cell {
	return CellFromWord(volatile.Load16(&r.words[row*r.cols+col]))
}
