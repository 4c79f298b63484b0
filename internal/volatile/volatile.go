// Copyright 2026 Textmode contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/volatile/volatile.go
// Summary: No-elide 16-bit loads and stores for mapped display cells.
// Notes: Display memory is externally owned; the hardware may observe or
// mutate it outside the program, so cell accesses must survive exactly as
// issued. The noinline fence keeps the compiler from caching, merging, or
// dropping them the way it could with ordinary slice writes.

package volatile

// Store16 writes v through p as a single access.
//
//go:noinline
func Store16(p *uint16, v uint16) {
	*p = v
}

// Load16 reads one access' worth of display memory through p.
//
//go:noinline
func Load16(p *uint16) uint16 {
	return *p
}
