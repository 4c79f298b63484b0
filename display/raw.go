// Copyright 2026 Textmode contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: display/raw.go
// Summary: Region over a caller-supplied base address of two-byte cells.
// Notes: The bare-memory binding, for mapped framebuffers like the
// classic text buffer at 0xB8000. Bound exactly once; the caller
// guarantees the address stays valid memory for the process lifetime.

package display

import (
	"unsafe"

	"github.com/framegrace/textmode/internal/volatile"
	"github.com/framegrace/textmode/vga"
)

// RawRegion views cols x rows contiguous uint16 cells at a fixed
// address. All accesses go through the volatile helpers; the hardware on
// the far side may observe or change this memory at any time.
type RawRegion struct {
	cols, rows int
	cells      []uint16
}

// NewRawRegion binds base as a cols x rows cell grid. base must point to
// at least cols*rows*2 bytes of mapped, 2-byte-aligned memory that
// outlives the region.
func NewRawRegion(base unsafe.Pointer, cols, rows int) *RawRegion {
	return &RawRegion{
		cols:  cols,
		rows:  rows,
		cells: unsafe.Slice((*uint16)(base), cols*rows),
	}
}

// Size returns the grid dimensions in cells.
func (r *RawRegion) Size() (cols, rows int) {
	return r.cols, r.rows
}

// Put stores one cell into mapped memory.
func (r *RawRegion) Put(col, row int, c vga.Cell) {
	volatile.Store16(&r.cells[row*r.cols+col], c.Word())
}

// Get loads one cell from mapped memory.
func (r *RawRegion) Get(col, row int) vga.Cell {
	return vga.CellFromWord(volatile.Load16(&r.cells[row*r.cols+col]))
}
