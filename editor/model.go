package editor

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/quill/buffer"
	"github.com/iw2rmb/quill/internal/log"
	"github.com/iw2rmb/quill/syntax"
)

// ModelConfig configures the Bubble Tea host.
type ModelConfig struct {
	KeyMap KeyMap
	Style  Style

	// Title is shown in the status line, usually the file name.
	Title string

	// Context bounds the user-type listener. Nil means background.
	Context context.Context
}

// DefaultModelConfig returns the default key map and style.
func DefaultModelConfig(title string) ModelConfig {
	return ModelConfig{
		KeyMap: DefaultKeyMap(),
		Style:  DefaultStyle(),
		Title:  title,
	}
}

// UserTypesChangedMsg is delivered when the background scanner published a
// different user-type table.
type UserTypesChangedMsg struct{}

// ColorTableMsg replaces the static color table, e.g. after the color
// configuration file changed on disk.
type ColorTableMsg struct {
	Table *syntax.ColorTable
}

// Model is a Bubble Tea component that drives an Editor.
//
// The last terminal row is a status line; one column right of the text is
// kept free so the cursor can sit past the end of a full-width line.
type Model struct {
	cfg     ModelConfig
	ed      *Editor
	palette Palette
	help    help.Model

	focused bool
	width   int
	height  int
}

func NewModel(ed *Editor, cfg ModelConfig) Model {
	if cfg.Context == nil {
		cfg.Context = context.Background()
	}
	m := Model{
		cfg:     cfg,
		ed:      ed,
		help:    help.New(),
		focused: true,
	}
	m.palette = NewPalette(cfg.Style.Text, ed.Classifier().ColorTable())
	return m
}

func (m Model) Editor() *Editor { return m.ed }

// Init starts listening for user-type updates.
func (m Model) Init() tea.Cmd { return m.listenUserTypes() }

func (m Model) listenUserTypes() tea.Cmd {
	sc := m.ed.Scanner()
	if sc == nil {
		return nil
	}
	ctx, ch := m.cfg.Context, sc.Updates()
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case <-ch:
			return UserTypesChangedMsg{}
		}
	}
}

func (m Model) SetSize(width, height int) Model {
	m.width = max(width, 0)
	m.height = max(height, 0)
	m.layout()
	return m
}

// layout resizes the text window to the terminal minus gutter, cursor column
// and status line.
func (m *Model) layout() {
	if m.width == 0 || m.height == 0 {
		return
	}
	want := buffer.Size{
		Width:  m.width - m.ed.GutterWidth() - 1,
		Height: m.height - 1,
	}
	if m.ed.Viewport().Size != normalizeSize(want) {
		m.ed.Handle(Command{Kind: CmdResize, Size: want})
	}
}

func (m Model) Focus() Model {
	m.focused = true
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case UserTypesChangedMsg:
		log.Debug(log.CatUI, "user types changed")
		return m, m.listenUserTypes()
	case ColorTableMsg:
		m.ed.SetColorTable(msg.Table)
		m.palette = NewPalette(m.cfg.Style.Text, m.ed.Classifier().ColorTable())
		return m, nil
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		for _, cmd := range m.cfg.KeyMap.Commands(msg) {
			if m.ed.Handle(cmd) == Exit {
				return m, tea.Quit
			}
		}
		m.layout()
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	view := m.ed.Viewport()
	s := newStyledSurface(m.cfg.Style, m.palette, m.width, view.Size.Height, m.focused)
	m.ed.Render(s)

	lines := s.Lines()
	lines = append(lines, m.statusLine())
	return strings.Join(lines, "\n")
}

func (m Model) statusLine() string {
	abs := m.ed.Abs()
	left := m.cfg.Title
	if left == "" {
		left = "[no name]"
	}
	if m.ed.Modified() {
		left += " [+]"
	}
	left = fmt.Sprintf(" %s  %d:%d", left, abs.Row+1, abs.Col+1)

	st := m.cfg.Style.Status
	if err := m.ed.LastError(); err != nil {
		left += "  " + err.Error()
		st = m.cfg.Style.StatusError
	}

	right := m.help.ShortHelpView(m.cfg.KeyMap.ShortHelp()) + " "
	gap := m.width - runewidth.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		return st.Render(runewidth.FillRight(runewidth.Truncate(left, m.width, "…"), m.width))
	}
	return st.Render(left + strings.Repeat(" ", gap) + right)
}
