// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// review.go - Review command implementation for gauntlet.
//
// Command: review <file>
// Short:   Render an exported session in the terminal
//
// Markdown exports get full glamour rendering; anything else is printed
// verbatim. When stdout is not a terminal the markdown is printed raw so the
// output stays pipeable.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// reviewWrapWidth caps line length for readability on wide terminals.
const reviewWrapWidth = 100

// HandleReview handles the "review" command.
func HandleReview(args Args) error {
	if args.File == "" {
		return fmt.Errorf("usage: gauntlet review <file>")
	}

	content, err := os.ReadFile(args.File)
	if err != nil {
		return fmt.Errorf("reading %s: %w", args.File, err)
	}

	ext := strings.ToLower(filepath.Ext(args.File))
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	if ext != ".md" || !isTTY {
		fmt.Print(string(content))
		return nil
	}

	width := reviewWrapWidth
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && w < width {
		width = w
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		// Renderer setup failing is not worth losing the text over.
		fmt.Print(string(content))
		return nil
	}

	out, err := renderer.Render(string(content))
	if err != nil {
		fmt.Print(string(content))
		return nil
	}

	fmt.Print(out)
	return nil
}
