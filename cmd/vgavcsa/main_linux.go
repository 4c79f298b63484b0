// Copyright 2026 Textmode contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/vgavcsa/main_linux.go
// Summary: Prints a message onto a real Linux virtual console via /dev/vcsa.
// Usage: vgavcsa [-dev /dev/vcsa2] [MESSAGE...]
// Notes: Needs write access to the device (root or group tty).

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/framegrace/textmode/display"
	"github.com/framegrace/textmode/vga"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	dev := flag.String("dev", "/dev/vcsa2", "virtual console screen device")
	flag.Parse()

	message := strings.Join(flag.Args(), " ")
	if message == "" {
		message = "textmode console driver"
	}

	region, err := display.OpenVcsa(*dev)
	if err != nil {
		return err
	}
	defer region.Close()

	vga.Bind(region)
	vga.WithConsole(func(c *vga.Console) {
		c.SetAttr(vga.NewAttr(vga.Yellow, vga.Blue))
		c.Clear()
	})
	vga.Println(message)
	return nil
}
