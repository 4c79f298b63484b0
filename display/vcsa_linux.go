// Copyright 2026 Textmode contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: display/vcsa_linux.go
// Summary: Region over a Linux /dev/vcsaN virtual console.
// Notes: vcsa devices expose exactly the driver's cell format: a four
// byte header (rows, cols, cursor x, cursor y) followed by row-major
// char+attribute pairs. Writing there paints the real kernel console.

package display

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/framegrace/textmode/vga"
)

const vcsaHeaderSize = 4

// VcsaRegion binds a virtual console screen device. Dimensions come from
// the device header at open time and are fixed for the region's life.
type VcsaRegion struct {
	fd         int
	path       string
	cols, rows int
}

// OpenVcsa opens a console device such as /dev/vcsa2. The caller needs
// read/write permission on the device (typically root or group tty).
func OpenVcsa(path string) (*VcsaRegion, error) {
	fd, err := unix.Open(path, unix.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	var hdr [vcsaHeaderSize]byte
	if _, err := unix.Pread(fd, hdr[:], 0); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("read %s header: %w", path, err)
	}
	rows, cols := int(hdr[0]), int(hdr[1])
	if rows <= 0 || cols <= 0 {
		unix.Close(fd)
		return nil, fmt.Errorf("%s reports empty console %dx%d", path, cols, rows)
	}
	return &VcsaRegion{fd: fd, path: path, cols: cols, rows: rows}, nil
}

// Size returns the console dimensions from the device header.
func (r *VcsaRegion) Size() (cols, rows int) {
	return r.cols, r.rows
}

// Put writes one char+attribute pair straight to the device. Pwrite is a
// syscall per cell: slow and exactly as issued, which is what the cell
// access discipline demands.
func (r *VcsaRegion) Put(col, row int, c vga.Cell) {
	buf := [2]byte{c.Char, byte(c.Attr)}
	unix.Pwrite(r.fd, buf[:], r.offset(col, row))
}

// Get reads one cell back from the device.
func (r *VcsaRegion) Get(col, row int) vga.Cell {
	var buf [2]byte
	unix.Pread(r.fd, buf[:], r.offset(col, row))
	return vga.Cell{Char: buf[0], Attr: vga.Attr(buf[1])}
}

// Close releases the device.
func (r *VcsaRegion) Close() error {
	return unix.Close(r.fd)
}

func (r *VcsaRegion) offset(col, row int) int64 {
	return int64(vcsaHeaderSize + 2*(row*r.cols+col))
}
