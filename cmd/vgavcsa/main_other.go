// Copyright 2026 Textmode contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/vgavcsa/main_other.go
// Summary: Non-Linux stub; vcsa devices only exist on Linux.

//go:build !linux

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "vgavcsa requires Linux /dev/vcsa devices")
	os.Exit(1)
}
