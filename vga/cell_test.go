// Copyright 2026 Textmode contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vga/cell_test.go
// Summary: Byte sanitization and cell word format tests.

package vga

import "testing"

func TestSanitizeByteTotal(t *testing.T) {
	for b := 0; b < 256; b++ {
		got := sanitizeByte(byte(b))
		switch {
		case b == '\n':
			if got != '\n' {
				t.Fatalf("sanitizeByte(\\n) = %#02x", got)
			}
		case b >= 0x20 && b <= 0x7E:
			if got != byte(b) {
				t.Fatalf("sanitizeByte(%#02x) = %#02x, want identity", b, got)
			}
		default:
			if got != SubstituteChar {
				t.Fatalf("sanitizeByte(%#02x) = %#02x, want substitute %#02x", b, got, SubstituteChar)
			}
		}
	}
}

func TestCellWordLayout(t *testing.T) {
	c := Cell{Char: 'A', Attr: NewAttr(White, Red)}
	w := c.Word()
	if byte(w) != 'A' {
		t.Errorf("low byte = %#02x, want 'A'", byte(w))
	}
	if Attr(w>>8) != c.Attr {
		t.Errorf("high byte = %#02x, want %#02x", byte(w>>8), uint8(c.Attr))
	}
	if CellFromWord(w) != c {
		t.Errorf("CellFromWord(Word()) = %+v, want %+v", CellFromWord(w), c)
	}
}

func TestBlankCarriesAttr(t *testing.T) {
	a := NewAttr(Green, DarkGrey)
	b := Blank(a)
	if b.Char != ' ' || b.Attr != a {
		t.Errorf("Blank(%#02x) = %+v", uint8(a), b)
	}
}
