package editor

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/quill/buffer"
)

func plainModelConfig() ModelConfig {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	plain := r.NewStyle()
	return ModelConfig{
		KeyMap: DefaultKeyMap(),
		Style: Style{
			Gutter:        plain,
			LineNumActive: plain,
			Text:          plain,
			Cursor:        plain,
			Status:        plain,
			StatusError:   plain,
		},
		Title: "main.cpp",
	}
}

func newTestModel(opts Options, lines ...string) Model {
	e := New(buffer.New(lines...), testColorTable(), opts)
	return NewModel(e, plainModelConfig())
}

func keys(s string) []tea.KeyMsg {
	var out []tea.KeyMsg
	for _, r := range s {
		out = append(out, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return out
}

func TestModel_SetSizeLaysOutTextWindow(t *testing.T) {
	m := newTestModel(Options{ShowLineNumbers: true}, "a", "b", "c")
	m, _ = m.Update(tea.WindowSizeMsg{Width: 20, Height: 5})

	// 2 gutter columns, 1 cursor column, 1 status row.
	if got := m.Editor().Viewport().Size; got != (buffer.Size{Width: 17, Height: 4}) {
		t.Fatalf("text window: got %v, want %v", got, buffer.Size{Width: 17, Height: 4})
	}
	if got := lipgloss.Height(m.View()); got != 5 {
		t.Fatalf("view height: got %d, want %d", got, 5)
	}
}

func TestModel_ViewSnapshot(t *testing.T) {
	m := newTestModel(Options{ShowLineNumbers: true}, "one", "two", "three", "four")
	m = m.Blur()
	m = m.SetSize(30, 4)

	got := strings.Split(m.View(), "\n")
	if len(got) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(got))
	}
	want := []string{"1 one", "2 two", "3 three"}
	for i, w := range want {
		if line := strings.TrimRight(got[i], " "); line != w {
			t.Fatalf("line %d: got %q, want %q", i, line, w)
		}
		if len(got[i]) != 30 {
			t.Fatalf("line %d width: got %d, want %d", i, len(got[i]), 30)
		}
	}
	if !strings.Contains(got[3], "main.cpp") || !strings.Contains(got[3], "1:1") {
		t.Fatalf("status line: got %q", got[3])
	}
}

func TestModel_TypingEditsDocument(t *testing.T) {
	m := newTestModel(Options{}, "")
	m = m.SetSize(40, 10)
	for _, k := range keys("int") {
		m, _ = m.Update(k)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	for _, k := range keys("x;") {
		m, _ = m.Update(k)
	}

	if got := m.Editor().Document().Text(); got != "int\n    x;" {
		t.Fatalf("text: got %q, want %q", got, "int\n    x;")
	}
	if got := m.Editor().Abs(); got != (buffer.Pos{Row: 1, Col: 6}) {
		t.Fatalf("abs: got %v, want %v", got, buffer.Pos{Row: 1, Col: 6})
	}
	if !strings.Contains(m.View(), "[+]") {
		t.Fatalf("modified marker missing from status line")
	}
}

func TestModel_BlurIgnoresKeys(t *testing.T) {
	m := newTestModel(Options{}, "ab").Blur()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if got := m.Editor().Document().Text(); got != "ab" {
		t.Fatalf("text: got %q, want %q", got, "ab")
	}
}

func TestModel_QuitKeyQuits(t *testing.T) {
	m := newTestModel(Options{}, "")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyF4})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestModel_SaveErrorShownInStatus(t *testing.T) {
	m := newTestModel(Options{}, "")
	m = m.SetSize(80, 3)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	lines := strings.Split(m.View(), "\n")
	if !strings.Contains(lines[len(lines)-1], ErrNoSaver.Error()) {
		t.Fatalf("status line: got %q", lines[len(lines)-1])
	}
}

func TestModel_ColorTableMsgSwapsTable(t *testing.T) {
	m := newTestModel(Options{}, "int")
	if len(m.palette) != 3 {
		t.Fatalf("palette size: got %d, want %d", len(m.palette), 3)
	}
	m, _ = m.Update(ColorTableMsg{Table: nil})
	if got := m.Editor().Classifier().Lookup("int"); got != 0 {
		t.Fatalf("int color after swap: got %d, want 0", got)
	}
	if len(m.palette) != 0 {
		t.Fatalf("palette size after swap: got %d, want 0", len(m.palette))
	}
}

func TestModel_ListensForUserTypeUpdates(t *testing.T) {
	m := newTestModel(Options{DynamicTypes: true}, "class Foo")
	cmd := m.Init()
	if cmd == nil {
		t.Fatalf("expected listener command")
	}
	m.Editor().Scanner().ScanOnce()
	if _, ok := cmd().(UserTypesChangedMsg); !ok {
		t.Fatalf("expected UserTypesChangedMsg")
	}
	if _, next := m.Update(UserTypesChangedMsg{}); next == nil {
		t.Fatalf("listener not re-armed")
	}

	if newTestModel(Options{}, "").Init() != nil {
		t.Fatalf("listener without DynamicTypes")
	}
}
