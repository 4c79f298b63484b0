// Copyright 2026 Textmode contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: highlight/highlight.go
// Summary: Syntax-colored console output via Chroma token styles.
// Usage: Quantizes truecolor token styles onto the 16-color attribute
// palette and emits attributed writes to a console.

package highlight

import (
	"fmt"
	"path/filepath"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/go-enry/go-enry/v2"

	"github.com/framegrace/textmode/display"
	"github.com/framegrace/textmode/vga"
)

// DefaultStyle is the Chroma style used when none is configured.
const DefaultStyle = "monokai"

// Style resolves a Chroma style name, falling back to DefaultStyle.
func Style(name string) *chroma.Style {
	if name == "" {
		name = DefaultStyle
	}
	return styles.Get(name)
}

// lexerFor picks a lexer using enry's language detection first, then
// Chroma's own filename matching, then content analysis.
func lexerFor(filename string, source []byte) chroma.Lexer {
	if lang := enry.GetLanguage(filepath.Base(filename), source); lang != "" {
		if l := lexers.Get(lang); l != nil {
			return l
		}
	}
	if l := lexers.Match(filename); l != nil {
		return l
	}
	if l := lexers.Analyse(string(source)); l != nil {
		return l
	}
	return lexers.Fallback
}

// attrFor folds a token's style entry onto the console palette, keeping
// the console's background. Tokens without a set color keep the default
// foreground.
func attrFor(entry chroma.StyleEntry, base vga.Attr) vga.Attr {
	if !entry.Colour.IsSet() {
		return base
	}
	fg := display.NearestColor(entry.Colour.Red(), entry.Colour.Green(), entry.Colour.Blue())
	return vga.NewAttr(fg, base.Background())
}

// Fprint writes source to the console with per-token color attributes.
// The console's attribute is restored afterwards. Tokenization failures
// degrade to an uncolored write; the console itself cannot fail.
func Fprint(c *vga.Console, filename string, source []byte, styleName string) error {
	lexer := chroma.Coalesce(lexerFor(filename, source))
	style := Style(styleName)

	tokens, err := chroma.Tokenise(lexer, nil, string(source))
	if err != nil {
		c.WriteString(string(source))
		return fmt.Errorf("tokenise %s: %w", filename, err)
	}

	base := c.Attr()
	defer c.SetAttr(base)
	for _, token := range tokens {
		if token.Type == chroma.EOFType {
			continue
		}
		c.SetAttr(attrFor(style.Get(token.Type), base))
		c.WriteString(token.Value)
	}
	return nil
}
