// Copyright 2026 Textmode contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vga/console.go
// Summary: The stateful console writer: cursor advance, wrap, and scroll.
//
// The write path is deliberately infallible: it never allocates, never
// recurses, and depends on nothing that can fail, so it stays usable as a
// last-resort diagnostic sink from a panic path.

package vga

// Console renders bytes into a Region, tracking the cursor and the
// attribute applied to subsequent characters. It is not safe for
// concurrent use; the package-level sink serializes access to the shared
// instance.
type Console struct {
	region     Region
	cols, rows int
	col, row   int
	attr       Attr
}

// DefaultAttr is light grey text on a black background, the attribute a
// freshly powered text mode shows.
var DefaultAttr = NewAttr(LightGrey, Black)

// NewConsole binds a console to a region with the given starting
// attribute. The region's content is left untouched; call Clear to blank
// it.
func NewConsole(r Region, attr Attr) *Console {
	cols, rows := r.Size()
	return &Console{
		region: r,
		cols:   cols,
		rows:   rows,
		attr:   attr,
	}
}

// WriteByte renders a single byte. Newline advances to the next line;
// anything else is sanitized and placed at the cursor, wrapping first if
// the current line is full. A line is never allowed to overflow its last
// column.
func (c *Console) WriteByte(b byte) {
	if b == '\n' {
		c.lineFeed()
		return
	}
	if c.col >= c.cols {
		c.lineFeed()
	}
	c.region.Put(c.col, c.row, Cell{Char: sanitizeByte(b), Attr: c.attr})
	c.col++
}

// WriteString renders the string's bytes in order. Multi-byte encodings
// are not interpreted; each byte stands alone, so non-ASCII text shows as
// substitute glyphs. The display has no concept of multi-byte glyphs.
func (c *Console) WriteString(s string) {
	for i := 0; i < len(s); i++ {
		c.WriteByte(s[i])
	}
}

// Write implements io.Writer so the console composes with fmt.Fprintf and
// friends. The sink cannot fail, so it always reports the full length
// written.
func (c *Console) Write(p []byte) (int, error) {
	for _, b := range p {
		c.WriteByte(b)
	}
	return len(p), nil
}

// lineFeed moves to column 0 of the next row, scrolling when the grid is
// full.
func (c *Console) lineFeed() {
	c.row++
	if c.row >= c.rows {
		c.scrollUp()
		c.row = c.rows - 1
	}
	c.col = 0
}

// scrollUp shifts every row's cells up by one and blanks the vacated last
// row with the current attribute. The copy must run top to bottom: the
// destination rows overlap the source rows, so each row has to be read
// before the pass overwrites it.
func (c *Console) scrollUp() {
	for row := 1; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			c.region.Put(col, row-1, c.region.Get(col, row))
		}
	}
	c.blankRow(c.rows - 1)
}

// blankRow fills one row with blank cells carrying the current attribute.
func (c *Console) blankRow(row int) {
	blank := Blank(c.attr)
	for col := 0; col < c.cols; col++ {
		c.region.Put(col, row, blank)
	}
}

// ClearRow blanks a single row using the current attribute. Out-of-range
// rows are ignored.
func (c *Console) ClearRow(row int) {
	if row < 0 || row >= c.rows {
		return
	}
	c.blankRow(row)
}

// Clear blanks the whole grid with the current attribute and homes the
// cursor.
func (c *Console) Clear() {
	for row := 0; row < c.rows; row++ {
		c.blankRow(row)
	}
	c.col, c.row = 0, 0
}

// SetAttr changes the attribute applied to subsequently written
// characters.
func (c *Console) SetAttr(a Attr) {
	c.attr = a
}

// Attr returns the attribute currently applied to written characters.
func (c *Console) Attr() Attr {
	return c.attr
}

// Cursor returns the current column and row.
func (c *Console) Cursor() (col, row int) {
	return c.col, c.row
}

// Size returns the bound region's dimensions.
func (c *Console) Size() (cols, rows int) {
	return c.cols, c.rows
}

// Region exposes the bound region for display bindings that need to
// flush.
func (c *Console) Region() Region {
	return c.region
}
