// Copyright 2026 Textmode contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vga/global_test.go
// Summary: Shared console sink tests: exclusion, mirroring, emergency path.

package vga

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

func TestGlobalPrintfRendersThroughBinding(t *testing.T) {
	region := NewRAMRegion(20, 4)
	Bind(region)

	Printf("pid=%d %s", 7, "up")
	if got := strings.TrimRight(rowText(region, 0), " "); got != "pid=7 up" {
		t.Errorf("row 0 = %q", got)
	}

	Println("next")
	Print("tail")
	if got := strings.TrimRight(rowText(region, 1), " "); got != "tail" {
		t.Errorf("row 1 = %q", got)
	}
}

func TestWithConsoleReleasesOnPanic(t *testing.T) {
	Bind(NewRAMRegion(20, 4))

	func() {
		defer func() { recover() }()
		WithConsole(func(c *Console) {
			panic("fault while holding the console")
		})
	}()

	// A frozen lock would hang here.
	done := make(chan struct{})
	go func() {
		Print("still alive")
		close(done)
	}()
	<-done
}

func TestGlobalWritesAreMutuallyExclusive(t *testing.T) {
	const workers = 8
	const width = 16
	region := NewRAMRegion(width, workers+4)
	Bind(region)

	// Each worker prints full lines of one repeated letter. With mutual
	// exclusion every resulting row is homogeneous; interleaving would mix
	// letters within a row.
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(letter byte) {
			defer wg.Done()
			Println(strings.Repeat(string(rune(letter)), width))
		}(byte('a' + w))
	}
	wg.Wait()

	_, rows := region.Size()
	for row := 0; row < rows; row++ {
		text := strings.TrimRight(rowText(region, row), " ")
		if text == "" {
			continue
		}
		for i := 1; i < len(text); i++ {
			if text[i] != text[0] {
				t.Fatalf("row %d mixes writers: %q", row, text)
			}
		}
	}
}

func TestMirrorCapturesPrintedBytes(t *testing.T) {
	Bind(NewRAMRegion(40, 4))
	var buf bytes.Buffer
	MirrorTo(&buf)
	defer MirrorTo(nil)

	Print("alpha ")
	Printf("beta=%d\n", 2)
	Println("gamma")

	got := buf.String()
	if got != "alpha beta=2\ngamma\n" {
		t.Errorf("mirror captured %q", got)
	}
}

func TestEmergencyPrintUncontended(t *testing.T) {
	region := NewRAMRegion(20, 4)
	Bind(region)

	EmergencyPrint("panic: oops")
	if got := strings.TrimRight(rowText(region, 0), " "); got != "panic: oops" {
		t.Errorf("row 0 = %q", got)
	}
}
