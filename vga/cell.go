// Copyright 2026 Textmode contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vga/cell.go
// Summary: The two-byte screen cell and input byte sanitization.

package vga

// SubstituteChar is written in place of any byte outside the printable
// ASCII range. 0xFE is the classic unmapped-glyph box on VGA hardware.
const SubstituteChar byte = 0xFE

// Cell is one screen position: an ASCII character byte plus its attribute.
type Cell struct {
	Char byte
	Attr Attr
}

// Blank returns a space cell carrying the given attribute, as used when
// clearing rows.
func Blank(attr Attr) Cell {
	return Cell{Char: ' ', Attr: attr}
}

// Word packs the cell into the mapped-memory format: character in the low
// byte, attribute in the high byte.
func (c Cell) Word() uint16 {
	return uint16(c.Attr)<<8 | uint16(c.Char)
}

// CellFromWord is the inverse of Word.
func CellFromWord(w uint16) Cell {
	return Cell{Char: byte(w), Attr: Attr(w >> 8)}
}

// sanitizeByte maps arbitrary input to something the display can show.
// Printable ASCII (0x20-0x7E) and newline pass through; everything else,
// including individual bytes of multi-byte encodings, degrades visibly to
// SubstituteChar rather than being dropped.
func sanitizeByte(b byte) byte {
	if b == '\n' || (b >= 0x20 && b <= 0x7E) {
		return b
	}
	return SubstituteChar
}
