// Copyright 2026 Textmode contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: JSON configuration store for the textmode commands.

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/framegrace/textmode/vga"
)

const configName = "textmode.json"

// Config holds the settings the commands read at startup. The console
// core never touches configuration; grid dimensions and colors are fed to
// it by the binding.
type Config struct {
	// Columns and Rows size the console grid.
	Columns int `json:"columns"`
	Rows    int `json:"rows"`

	// Foreground and Background are palette color names (see vga.ParseColor).
	Foreground string `json:"foreground"`
	Background string `json:"background"`

	// Style is the Chroma style used by vgacat.
	Style string `json:"style"`

	// Shell is the command vgaterm runs; empty means $SHELL.
	Shell string `json:"shell"`

	// Transcript is the path of the capture database; empty disables capture.
	Transcript string `json:"transcript"`
}

var (
	mu      sync.RWMutex
	once    sync.Once
	current Config
	loadErr error
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Columns:    vga.DefaultWidth,
		Rows:       vga.DefaultHeight,
		Foreground: "lightgrey",
		Background: "black",
		Style:      "monokai",
	}
}

// Load returns the effective configuration, reading the config file on
// first call. A missing file is not an error; malformed content logs and
// falls back to defaults.
func Load() Config {
	once.Do(initStore)
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Err returns the most recent load error, if any.
func Err() error {
	once.Do(initStore)
	mu.RLock()
	defer mu.RUnlock()
	return loadErr
}

// Attr resolves the configured color pair to a packed attribute, falling
// back to the driver default for unknown names.
func (c Config) Attr() vga.Attr {
	fg, ok := vga.ParseColor(c.Foreground)
	if !ok {
		return vga.DefaultAttr
	}
	bg, ok := vga.ParseColor(c.Background)
	if !ok {
		return vga.DefaultAttr
	}
	return vga.NewAttr(fg, bg)
}

// Save persists cfg and makes it current.
func Save(cfg Config) error {
	path, err := configPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	once.Do(initStore)
	mu.Lock()
	current = cfg
	mu.Unlock()
	return nil
}

func initStore() {
	loaded, err := load()
	mu.Lock()
	defer mu.Unlock()
	current = loaded
	loadErr = err
	if err != nil {
		log.Printf("Config: falling back to defaults: %v", err)
	}
}

func load() (Config, error) {
	cfg := Default()
	path, err := configPath()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func configPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "textmode", configName), nil
}
