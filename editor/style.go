package editor

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/quill/syntax"
)

// Style controls the Bubble Tea host rendering.
type Style struct {
	Gutter        lipgloss.Style
	LineNumActive lipgloss.Style

	Text   lipgloss.Style
	Cursor lipgloss.Style

	Status      lipgloss.Style
	StatusError lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Gutter:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Cursor:        lipgloss.NewStyle().Reverse(true),
		Status:        lipgloss.NewStyle().Reverse(true),
		StatusError:   lipgloss.NewStyle().Reverse(true).Foreground(lipgloss.Color("1")),
	}
}

// Palette maps color ids to text styles.
type Palette map[syntax.ColorID]lipgloss.Style

// NewPalette derives a style per color id of t from base, using the id's
// configured foreground as an ANSI color number.
func NewPalette(base lipgloss.Style, t *syntax.ColorTable) Palette {
	p := make(Palette, t.Len())
	for _, id := range t.IDs() {
		fg, ok := t.Foreground(id)
		if !ok {
			continue
		}
		p[id] = base.Foreground(lipgloss.Color(strconv.Itoa(fg)))
	}
	return p
}

// Style returns the style for id, or base for ids without a color.
func (p Palette) Style(id syntax.ColorID, base lipgloss.Style) lipgloss.Style {
	if st, ok := p[id]; ok {
		return st
	}
	return base
}
