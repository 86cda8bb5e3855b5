package editor

import (
	"errors"
	"testing"

	"github.com/iw2rmb/quill/buffer"
	"github.com/iw2rmb/quill/syntax"
)

type memSaver struct {
	saved [][]string
	err   error
}

func (s *memSaver) SaveLines(lines []string) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, lines)
	return nil
}

func testColorTable() *syntax.ColorTable {
	return syntax.BuildColorTable(syntax.Config{
		Comment: 2,
		UserDef: 3,
		Configurations: []syntax.Entry{
			{FG: 1, Keys: []string{"int", "class"}},
			{FG: 2},
			{FG: 4},
		},
	})
}

func typeAll(e *Editor, s string) {
	for i := 0; i < len(s); i++ {
		e.Handle(InsertChar(s[i]))
	}
}

func TestEditor_HandleEditsAndMoves(t *testing.T) {
	e := New(buffer.New(""), testColorTable(), Options{})
	typeAll(e, "int x;")
	e.Handle(NewLine())
	typeAll(e, "y")
	e.Handle(Up())
	e.Handle(Backspace())

	if got := e.Document().Text(); got != "nt x;\ny" {
		t.Fatalf("text: got %q, want %q", got, "nt x;\ny")
	}
	if got := e.Abs(); got != (buffer.Pos{Row: 0, Col: 0}) {
		t.Fatalf("abs: got %v, want %v", got, buffer.Pos{})
	}
}

func TestEditor_QuitReturnsExit(t *testing.T) {
	e := New(nil, nil, Options{})
	if got := e.Handle(Right()); got != Continue {
		t.Fatalf("Right result: got %v, want %v", got, Continue)
	}
	if got := e.Handle(Quit()); got != Exit {
		t.Fatalf("Quit result: got %v, want %v", got, Exit)
	}
}

func TestEditor_TabUsesConfiguredWidth(t *testing.T) {
	e := New(nil, nil, Options{TabWidth: 2})
	e.Handle(Tab())
	if got := e.Document().Text(); got != "  " {
		t.Fatalf("text: got %q, want %q", got, "  ")
	}

	e = New(nil, nil, Options{})
	e.Handle(Tab())
	if got := e.Document().Text(); got != "    " {
		t.Fatalf("default tab text: got %q, want %q", got, "    ")
	}
}

func TestEditor_SaveWritesLinesAndClearsModified(t *testing.T) {
	s := &memSaver{}
	e := New(buffer.New("a", "b"), nil, Options{Saver: s})
	if e.Modified() {
		t.Fatalf("new editor reports modified")
	}

	e.Handle(InsertChar('x'))
	if !e.Modified() {
		t.Fatalf("edited editor not modified")
	}
	e.Handle(Save())
	if e.LastError() != nil {
		t.Fatalf("LastError: %v", e.LastError())
	}
	if len(s.saved) != 1 || len(s.saved[0]) != 2 || s.saved[0][0] != "xa" || s.saved[0][1] != "b" {
		t.Fatalf("saved: got %q", s.saved)
	}
	if e.Modified() {
		t.Fatalf("saved editor still modified")
	}
}

func TestEditor_SaveFailureIsReported(t *testing.T) {
	boom := errors.New("disk full")
	e := New(nil, nil, Options{Saver: &memSaver{err: boom}})
	if got := e.Handle(Save()); got != Continue {
		t.Fatalf("Save result: got %v, want %v", got, Continue)
	}
	if !errors.Is(e.LastError(), boom) {
		t.Fatalf("LastError: got %v, want wrapping %v", e.LastError(), boom)
	}

	e = New(nil, nil, Options{})
	e.Handle(Save())
	if !errors.Is(e.LastError(), ErrNoSaver) {
		t.Fatalf("LastError without saver: got %v, want %v", e.LastError(), ErrNoSaver)
	}
}

func TestEditor_OnChangeFiresOnEffectiveCommandsOnly(t *testing.T) {
	var events []ChangeEvent
	e := New(buffer.New("ab"), nil, Options{
		OnChange: func(ev ChangeEvent) { events = append(events, ev) },
	})

	e.Handle(Right())
	if len(events) != 1 || events[0].HasEdit {
		t.Fatalf("events after move: got %+v", events)
	}
	if got := events[0].Cursor; got != (buffer.Pos{Col: 1}) {
		t.Fatalf("event cursor: got %v, want %v", got, buffer.Pos{Col: 1})
	}

	e.Handle(Left())
	e.Handle(Left()) // no-op at column 0
	if len(events) != 2 {
		t.Fatalf("events after no-op: got %d, want %d", len(events), 2)
	}

	e.Handle(InsertChar('X'))
	if len(events) != 3 {
		t.Fatalf("events after insert: got %d, want %d", len(events), 3)
	}
	ev := events[2]
	if !ev.HasEdit || ev.Edit.Kind != buffer.ChangeInsert || ev.Command != CmdInsertChar {
		t.Fatalf("insert event: got %+v", ev)
	}
}

func TestEditor_SetLinesClampsCursor(t *testing.T) {
	e := New(buffer.New("abc", "def"), nil, Options{})
	e.Handle(Down())
	e.Handle(Right())
	e.Handle(Right())
	e.SetLines([]string{"x"})
	if got, want := e.Abs(), (buffer.Pos{Row: 0, Col: 1}); got != want {
		t.Fatalf("abs: got %v, want %v", got, want)
	}
	e.SetLines([]string{"uvw", "xyz", "end"})
	if got, want := e.Abs(), (buffer.Pos{Row: 0, Col: 1}); got != want {
		t.Fatalf("abs after growing: got %v, want %v", got, want)
	}
	if e.Modified() {
		t.Fatalf("loaded document reports modified")
	}
}

func TestEditor_DynamicTypesToggle(t *testing.T) {
	e := New(buffer.New("class Widget {", "Widget w;"), testColorTable(), Options{})
	if e.Scanner() != nil {
		t.Fatalf("scanner created with DynamicTypes off")
	}

	e = New(buffer.New("class Widget {", "Widget w;"), testColorTable(), Options{DynamicTypes: true})
	if e.Scanner() == nil {
		t.Fatalf("no scanner with DynamicTypes on")
	}
	e.Scanner().ScanOnce()
	if got := e.Classifier().Lookup("Widget"); got != 3 {
		t.Fatalf("Widget color: got %d, want %d", got, 3)
	}
}

func TestCommandKind_String(t *testing.T) {
	if got := CmdBackspace.String(); got != "backspace" {
		t.Fatalf("got %q, want %q", got, "backspace")
	}
	if got := CommandKind(200).String(); got != "CommandKind(200)" {
		t.Fatalf("got %q, want %q", got, "CommandKind(200)")
	}
}
