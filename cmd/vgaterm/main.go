// Copyright 2026 Textmode contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/vgaterm/main.go
// Summary: Runs a shell on a pty and renders its output through the
// console driver on a tcell screen.
// Usage: vgaterm [-cols N] [-rows N] [-shell CMD] [-transcript PATH]

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"

	"github.com/creack/pty"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/framegrace/textmode/config"
	"github.com/framegrace/textmode/display"
	"github.com/framegrace/textmode/transcript"
	"github.com/framegrace/textmode/vga"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	cols := flag.Int("cols", cfg.Columns, "console grid columns")
	rows := flag.Int("rows", cfg.Rows, "console grid rows")
	shell := flag.String("shell", cfg.Shell, "command to run (default $SHELL)")
	transcriptPath := flag.String("transcript", cfg.Transcript, "capture database path (empty disables)")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("vgaterm must run on a terminal")
	}

	command := *shell
	if command == "" {
		command = os.Getenv("SHELL")
	}
	if command == "" {
		command = "/bin/sh"
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	region := display.NewScreenRegion(screen, *cols, *rows)
	vga.Bind(region)
	region.Flush()

	if *transcriptPath != "" {
		rec, err := transcript.NewRecorder(transcript.DefaultConfig(*transcriptPath))
		if err != nil {
			return fmt.Errorf("open transcript: %w", err)
		}
		defer rec.Close()
		vga.MirrorTo(rec)
		defer vga.MirrorTo(nil)
	}

	cmd := exec.Command(command)
	cmd.Env = append(os.Environ(),
		"TERM=dumb",
		"COLUMNS="+strconv.Itoa(*cols),
		"LINES="+strconv.Itoa(*rows),
	)
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return fmt.Errorf("start pty for %q: %w", command, err)
	}
	defer ptmx.Close()
	pty.Setsize(ptmx, &pty.Winsize{Rows: uint16(*rows), Cols: uint16(*cols)})

	ptyDone := make(chan struct{})
	go func() {
		defer close(ptyDone)
		buf := make([]byte, 4096)
		for {
			n, err := ptmx.Read(buf)
			if n > 0 {
				vga.Print(normalize(buf[:n]))
				region.Flush()
			}
			if err != nil {
				return
			}
		}
	}()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case <-ptyDone:
			return cmd.Wait()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if _, err := ptmx.Write(keyBytes(ev)); err != nil {
					log.Printf("pty write: %v", err)
				}
			case *tcell.EventResize:
				// The grid is fixed-size; a smaller terminal clips.
				screen.Sync()
			}
		}
	}
}

// normalize folds pty line endings into the console's newline-only model
// and drops lone carriage returns, which the byte-oriented display would
// otherwise show as substitute glyphs.
func normalize(p []byte) string {
	out := make([]byte, 0, len(p))
	for _, b := range p {
		if b == '\r' {
			continue
		}
		out = append(out, b)
	}
	return string(out)
}

// keyBytes translates a tcell key event to the bytes the child expects.
func keyBytes(ev *tcell.EventKey) []byte {
	switch ev.Key() {
	case tcell.KeyRune:
		return []byte(string(ev.Rune()))
	case tcell.KeyEnter:
		return []byte{'\n'}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return []byte{0x7F}
	case tcell.KeyTab:
		return []byte{'\t'}
	case tcell.KeyCtrlC:
		return []byte{0x03}
	case tcell.KeyCtrlD:
		return []byte{0x04}
	default:
		return nil
	}
}
