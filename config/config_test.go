// Copyright 2026 Textmode contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config_test.go
// Summary: Config defaults, color resolution, and load tests.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/framegrace/textmode/vga"
)

func TestDefaultMatchesDriver(t *testing.T) {
	cfg := Default()
	if cfg.Columns != vga.DefaultWidth || cfg.Rows != vga.DefaultHeight {
		t.Errorf("default grid = %dx%d", cfg.Columns, cfg.Rows)
	}
	if cfg.Attr() != vga.DefaultAttr {
		t.Errorf("default attr = %#02x, want driver default", uint8(cfg.Attr()))
	}
}

func TestAttrResolution(t *testing.T) {
	cfg := Default()
	cfg.Foreground = "yellow"
	cfg.Background = "blue"
	if got, want := cfg.Attr(), vga.NewAttr(vga.Yellow, vga.Blue); got != want {
		t.Errorf("Attr() = %#02x, want %#02x", uint8(got), uint8(want))
	}

	cfg.Foreground = "chartreuse"
	if cfg.Attr() != vga.DefaultAttr {
		t.Error("unknown color name should fall back to the driver default")
	}
}

func TestLoadReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "textmode", configName)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	content := `{"columns": 40, "rows": 12, "foreground": "white", "background": "blue", "style": "github"}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Load()
	if err := Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
	if cfg.Columns != 40 || cfg.Rows != 12 {
		t.Errorf("grid = %dx%d, want 40x12", cfg.Columns, cfg.Rows)
	}
	if cfg.Style != "github" {
		t.Errorf("style = %q", cfg.Style)
	}
	if got, want := cfg.Attr(), vga.NewAttr(vga.White, vga.Blue); got != want {
		t.Errorf("Attr() = %#02x, want %#02x", uint8(got), uint8(want))
	}
}
