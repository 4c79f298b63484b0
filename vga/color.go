// Copyright 2026 Textmode contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vga/color.go
// Summary: The 16-color VGA text-mode palette and packed attribute byte.

package vga

// Color is one of the 16 classic VGA text-mode colors, numbered 0-15.
type Color uint8

const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGrey
	DarkGrey
	LightBlue
	LightGreen
	LightCyan
	LightRed
	Pink
	Yellow
	White
)

var colorNames = [16]string{
	"black", "blue", "green", "cyan", "red", "magenta", "brown", "lightgrey",
	"darkgrey", "lightblue", "lightgreen", "lightcyan", "lightred", "pink",
	"yellow", "white",
}

// String returns the lowercase palette name, or "invalid" for out-of-range values.
func (c Color) String() string {
	if c > White {
		return "invalid"
	}
	return colorNames[c]
}

// ParseColor resolves a palette name as used in config files.
func ParseColor(name string) (Color, bool) {
	for i, n := range colorNames {
		if n == name {
			return Color(i), true
		}
	}
	return 0, false
}

// Attr is the packed per-cell attribute byte: foreground in the low
// nibble, background in the high nibble.
type Attr uint8

// NewAttr packs a foreground/background pair. Only the low four bits of
// each color contribute, so the packing is total and injective over the
// palette.
func NewAttr(fg, bg Color) Attr {
	return Attr(uint8(bg)<<4 | uint8(fg)&0x0F)
}

// Foreground returns the low-nibble color.
func (a Attr) Foreground() Color {
	return Color(a & 0x0F)
}

// Background returns the high-nibble color.
func (a Attr) Background() Color {
	return Color(a >> 4)
}
