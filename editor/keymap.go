package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (function keys have ctrl
// fallbacks).
type KeyMap struct {
	Left, Right, Up, Down key.Binding

	Backspace key.Binding
	Enter     key.Binding
	Tab       key.Binding

	Save, Quit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "indent")),

		Save: key.NewBinding(key.WithKeys("f2", "ctrl+s"), key.WithHelp("F2", "save")),
		Quit: key.NewBinding(key.WithKeys("f4", "ctrl+q"), key.WithHelp("F4", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Save, km.Quit}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Up, km.Down, km.Left, km.Right},
		{km.Backspace, km.Enter, km.Tab},
		{km.Save, km.Quit},
	}
}

// Commands decodes a key message. Typed and pasted runes become one
// CmdInsertChar each; newlines in pasted text become CmdNewLine. Runes
// outside ASCII are dropped.
func (km KeyMap) Commands(msg tea.KeyMsg) []Command {
	switch {
	case key.Matches(msg, km.Left):
		return []Command{Left()}
	case key.Matches(msg, km.Right):
		return []Command{Right()}
	case key.Matches(msg, km.Up):
		return []Command{Up()}
	case key.Matches(msg, km.Down):
		return []Command{Down()}
	case key.Matches(msg, km.Backspace):
		return []Command{Backspace()}
	case key.Matches(msg, km.Enter):
		return []Command{NewLine()}
	case key.Matches(msg, km.Tab):
		return []Command{Tab()}
	case key.Matches(msg, km.Save):
		return []Command{Save()}
	case key.Matches(msg, km.Quit):
		return []Command{Quit()}
	}

	if msg.Alt || (msg.Type != tea.KeyRunes && msg.Type != tea.KeySpace) {
		return nil
	}
	var cmds []Command
	for _, r := range msg.Runes {
		switch {
		case r == '\n' || r == '\r':
			cmds = append(cmds, NewLine())
		case r == '\t':
			cmds = append(cmds, Tab())
		case r < 0x80:
			cmds = append(cmds, InsertChar(byte(r)))
		}
	}
	return cmds
}
