// Copyright 2026 Textmode contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/vgacat/main.go
// Summary: Syntax-highlighted file viewer on the console grid.
// Usage: vgacat [-style NAME] [-cols N] [-rows N] FILE

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/textmode/config"
	"github.com/framegrace/textmode/display"
	"github.com/framegrace/textmode/highlight"
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

	style := flag.String("style", cfg.Style, "Chroma style name")
	cols := flag.Int("cols", cfg.Columns, "console grid columns")
	rows := flag.Int("rows", cfg.Rows, "console grid rows")
	flag.Parse()

	if flag.NArg() != 1 {
		return fmt.Errorf("usage: vgacat [flags] FILE")
	}
	filename := flag.Arg(0)
	source, err := os.ReadFile(filename)
	if err != nil {
		return err
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
	vga.WithConsole(func(c *vga.Console) {
		c.SetAttr(cfg.Attr())
		c.Clear()
		if err := highlight.Fprint(c, filename, source, *style); err != nil {
			log.Printf("highlight: %v", err)
		}
	})
	region.Flush()

	// Any key exits.
	for {
		switch screen.PollEvent().(type) {
		case *tcell.EventKey:
			return nil
		case *tcell.EventResize:
			screen.Sync()
		case nil:
			return nil
		}
	}
}
