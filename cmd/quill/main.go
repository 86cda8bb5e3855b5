// Command quill is a small terminal code editor.
package main

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

func init() {
	// Query the terminal background before Bubble Tea owns the input loop so
	// the OSC 11 reply does not land in the document as typed text.
	_ = lipgloss.HasDarkBackground()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
