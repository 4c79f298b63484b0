// Copyright 2026 Textmode contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vga/global.go
// Summary: The process-wide console instance behind a spin-wait lock.
//
// There is exactly one logical console per process. It is constructed on
// first use (the display binding cannot be proven valid before runtime)
// and torn down never. All access funnels through a spin lock rather than
// a sync.Mutex: the sink must stay usable where no scheduler can be
// assumed, and a busy-wait has no OS dependency, no fairness, and no
// timeout. A holder that never releases freezes console output for the
// rest of the process; that hazard is accepted for a last-resort
// diagnostic sink.

package vga

import (
	"fmt"
	"io"
	"log"
	"runtime"
	"sync/atomic"
)

// spinLock is a busy-wait mutual exclusion lock with no fairness
// guarantee. Gosched keeps a waiting goroutine from starving the holder on
// a single-threaded runtime.
type spinLock struct {
	held atomic.Bool
}

func (l *spinLock) lock() {
	for !l.held.CompareAndSwap(false, true) {
		runtime.Gosched()
	}
}

// tryLock attempts the lock up to spins times without ever blocking.
func (l *spinLock) tryLock(spins int) bool {
	for i := 0; i < spins; i++ {
		if l.held.CompareAndSwap(false, true) {
			return true
		}
		runtime.Gosched()
	}
	return false
}

func (l *spinLock) unlock() {
	l.held.Store(false)
}

// emergencySpins bounds how long the panic path waits for the lock before
// writing anyway.
const emergencySpins = 10000

var (
	globalLock spinLock
	global     *Console
	mirror     io.Writer
)

// consoleLocked lazily constructs the shared console. Callers hold
// globalLock. The default binding is a simulated 80x25 region so the sink
// works before any display is attached.
func consoleLocked() *Console {
	if global == nil {
		global = NewConsole(NewRAMRegion(DefaultWidth, DefaultHeight), DefaultAttr)
		global.Clear()
	}
	return global
}

// Bind attaches the shared console to a display region, replacing any
// previous binding. The caller must ensure the region's backing memory is
// stable before calling; the console itself requires no other
// initialization. Cursor and attribute state restart from the top left.
func Bind(r Region) {
	globalLock.lock()
	defer globalLock.unlock()
	global = NewConsole(r, DefaultAttr)
	global.Clear()
}

// MirrorTo copies every byte subsequently printed through the package
// sink to w as well, for transcript capture. A nil writer disables
// mirroring. Mirror errors are logged and never surface to printers; the
// console sink itself cannot fail.
func MirrorTo(w io.Writer) {
	globalLock.lock()
	defer globalLock.unlock()
	mirror = w
}

func mirrorLocked(p []byte) {
	if mirror == nil {
		return
	}
	if _, err := mirror.Write(p); err != nil {
		mirror = nil
		log.Printf("vga: transcript mirror failed, disabling: %v", err)
	}
}

// WithConsole runs fn with exclusive access to the shared console. The
// lock is released on every exit path, including a panic inside fn, so a
// fault in the caller's formatting cannot freeze the sink.
func WithConsole(fn func(*Console)) {
	globalLock.lock()
	defer globalLock.unlock()
	fn(consoleLocked())
}

// Print writes a string through the shared console.
func Print(s string) {
	globalLock.lock()
	defer globalLock.unlock()
	consoleLocked().WriteString(s)
	mirrorLocked([]byte(s))
}

// Println writes a string followed by a newline.
func Println(s string) {
	globalLock.lock()
	defer globalLock.unlock()
	c := consoleLocked()
	c.WriteString(s)
	c.WriteByte('\n')
	mirrorLocked(append([]byte(s), '\n'))
}

// Printf formats into the shared console. The underlying sink cannot
// fail, so there is no error to return.
func Printf(format string, args ...any) {
	globalLock.lock()
	defer globalLock.unlock()
	c := consoleLocked()
	if mirror == nil {
		fmt.Fprintf(c, format, args...)
		return
	}
	fmt.Fprintf(io.MultiWriter(c, mirrorFunc(mirrorLocked)), format, args...)
}

// mirrorFunc adapts the locked mirror helper to io.Writer for Printf.
type mirrorFunc func([]byte)

func (f mirrorFunc) Write(p []byte) (int, error) {
	f(p)
	return len(p), nil
}

// EmergencyPrint is the fault-path escape hatch. It spins a bounded
// number of times for the lock; if the lock never frees (a fault occurred
// while held), it writes anyway. Torn output interleaved with the stuck
// holder's text is accepted over a silent diagnostic sink.
func EmergencyPrint(s string) {
	if globalLock.tryLock(emergencySpins) {
		defer globalLock.unlock()
		consoleLocked().WriteString(s)
		return
	}
	if global != nil {
		global.WriteString(s)
	}
}
