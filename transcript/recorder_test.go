// Copyright 2026 Textmode contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: transcript/recorder_test.go
// Summary: Recorder batching and readback tests.

package transcript

import (
	"path/filepath"
	"testing"
	"time"
)

func newTestRecorder(t *testing.T) *Recorder {
	t.Helper()
	cfg := DefaultConfig(filepath.Join(t.TempDir(), "transcript.db"))
	cfg.BatchTimeout = 50 * time.Millisecond
	rec, err := NewRecorder(cfg)
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}
	return rec
}

func TestRecorderCapturesLines(t *testing.T) {
	rec := newTestRecorder(t)
	defer rec.Close()

	rec.Write([]byte("first line\nsecond"))
	rec.Write([]byte(" line\n"))
	if err := rec.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	lines, err := rec.Tail(10)
	if err != nil {
		t.Fatalf("Tail: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	// Newest first.
	if lines[0].Text != "second line" || lines[1].Text != "first line" {
		t.Errorf("lines = %q, %q", lines[0].Text, lines[1].Text)
	}
	if lines[0].Seq <= lines[1].Seq {
		t.Errorf("sequence not monotonic: %d then %d", lines[1].Seq, lines[0].Seq)
	}
	if lines[0].Timestamp.IsZero() {
		t.Error("timestamp not recorded")
	}
}

func TestRecorderWriteNeverFails(t *testing.T) {
	rec := newTestRecorder(t)
	defer rec.Close()

	n, err := rec.Write([]byte("no newline yet"))
	if err != nil || n != len("no newline yet") {
		t.Fatalf("Write = %d, %v", n, err)
	}
}

func TestRecorderFlushesPartialLineOnClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "transcript.db")
	rec, err := NewRecorder(DefaultConfig(dbPath))
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}
	rec.Write([]byte("unterminated"))
	if err := rec.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Reopen and read the line back.
	rec2, err := NewRecorder(DefaultConfig(dbPath))
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer rec2.Close()
	lines, err := rec2.Tail(1)
	if err != nil {
		t.Fatalf("Tail: %v", err)
	}
	if len(lines) != 1 || lines[0].Text != "unterminated" {
		t.Errorf("lines = %+v", lines)
	}
}

func TestRecorderBatchTimeout(t *testing.T) {
	rec := newTestRecorder(t)
	defer rec.Close()

	rec.Write([]byte("lone line\n"))

	// Under BatchSize, so only the timeout flushes it.
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		lines, err := rec.Tail(1)
		if err != nil {
			t.Fatalf("Tail: %v", err)
		}
		if len(lines) == 1 {
			if lines[0].Text != "lone line" {
				t.Fatalf("line = %q", lines[0].Text)
			}
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("batch never flushed on timeout")
}
