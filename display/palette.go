// Copyright 2026 Textmode contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: display/palette.go
// Summary: Classic VGA palette RGB values and tcell color mapping.

package display

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/textmode/vga"
)

// paletteRGB holds the canonical VGA DAC values for the 16 text-mode
// colors, indexed by vga.Color.
var paletteRGB = [16][3]int32{
	{0x00, 0x00, 0x00}, // black
	{0x00, 0x00, 0xAA}, // blue
	{0x00, 0xAA, 0x00}, // green
	{0x00, 0xAA, 0xAA}, // cyan
	{0xAA, 0x00, 0x00}, // red
	{0xAA, 0x00, 0xAA}, // magenta
	{0xAA, 0x55, 0x00}, // brown
	{0xAA, 0xAA, 0xAA}, // lightgrey
	{0x55, 0x55, 0x55}, // darkgrey
	{0x55, 0x55, 0xFF}, // lightblue
	{0x55, 0xFF, 0x55}, // lightgreen
	{0x55, 0xFF, 0xFF}, // lightcyan
	{0xFF, 0x55, 0x55}, // lightred
	{0xFF, 0x55, 0xFF}, // pink
	{0xFF, 0xFF, 0x55}, // yellow
	{0xFF, 0xFF, 0xFF}, // white
}

// tcellColor maps a palette color to its exact RGB tcell color.
func tcellColor(c vga.Color) tcell.Color {
	rgb := paletteRGB[c&0x0F]
	return tcell.NewRGBColor(rgb[0], rgb[1], rgb[2])
}

// styleFor builds the tcell style for a packed attribute.
func styleFor(a vga.Attr) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcellColor(a.Foreground())).
		Background(tcellColor(a.Background()))
}

// NearestColor quantizes an RGB triple to the closest palette entry by
// squared distance. The highlighter uses this to fold truecolor token
// styles onto the 16-color display.
func NearestColor(r, g, b uint8) vga.Color {
	best, bestDist := vga.Color(0), int64(1)<<62
	for i, rgb := range paletteRGB {
		dr := int64(rgb[0]) - int64(r)
		dg := int64(rgb[1]) - int64(g)
		db := int64(rgb[2]) - int64(b)
		d := dr*dr + dg*dg + db*db
		if d < bestDist {
			best, bestDist = vga.Color(i), d
		}
	}
	return best
}
