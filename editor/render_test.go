package editor

import (
	"fmt"
	"testing"

	"github.com/iw2rmb/quill/buffer"
	"github.com/iw2rmb/quill/syntax"
)

type drawCall struct {
	row, col int
	text     string
	color    syntax.ColorID
}

type recordingSurface struct {
	runs   []drawCall
	cursor buffer.Pos
}

func (s *recordingSurface) DrawRun(row, col int, text string, color syntax.ColorID) {
	s.runs = append(s.runs, drawCall{row: row, col: col, text: text, color: color})
}

func (s *recordingSurface) MoveCursor(row, col int) {
	s.cursor = buffer.Pos{Row: row, Col: col}
}

type gutterSurface struct {
	recordingSurface
	gutters []string
	active  []bool
}

func (s *gutterSurface) DrawGutter(row int, text string, active bool) {
	s.gutters = append(s.gutters, text)
	s.active = append(s.active, active)
}

func TestRender_RunsSpanWindowWidth(t *testing.T) {
	e := New(buffer.New("int x", "// c"), testColorTable(), Options{ShowLineNumbers: true})
	e.Handle(Resize(6, 3))

	s := &recordingSurface{}
	e.Render(s)

	want := []drawCall{
		{0, 0, "1 ", syntax.NoColor},
		{0, 2, "int", 1},
		{0, 5, " x ", syntax.NoColor},
		{1, 0, "2 ", syntax.NoColor},
		{1, 2, "// c", 2},
		{1, 6, "  ", syntax.NoColor},
		{2, 0, "  ", syntax.NoColor},
		{2, 2, "      ", syntax.NoColor},
	}
	if fmt.Sprintf("%+v", s.runs) != fmt.Sprintf("%+v", want) {
		t.Fatalf("runs:\n got: %+v\nwant: %+v", s.runs, want)
	}
	if s.cursor != (buffer.Pos{Row: 0, Col: 2}) {
		t.Fatalf("cursor: got %v, want %v", s.cursor, buffer.Pos{Row: 0, Col: 2})
	}
}

func TestRender_WithoutGutterFollowsScroll(t *testing.T) {
	e := New(buffer.New("0123456789"), nil, Options{})
	e.Handle(Resize(4, 1))
	for range 7 {
		e.Handle(Right())
	}

	s := &recordingSurface{}
	e.Render(s)
	if len(s.runs) != 1 || s.runs[0].text != "3456" || s.runs[0].col != 0 {
		t.Fatalf("runs: got %+v", s.runs)
	}
	if s.cursor != (buffer.Pos{Row: 0, Col: 4}) {
		t.Fatalf("cursor: got %v, want %v", s.cursor, buffer.Pos{Row: 0, Col: 4})
	}
}

func TestRender_GutterSurfaceGetsStyledGutter(t *testing.T) {
	lines := make([]string, 12)
	e := New(buffer.New(lines...), nil, Options{ShowLineNumbers: true})
	e.Handle(Resize(5, 3))
	e.Handle(Down())

	s := &gutterSurface{}
	e.Render(s)

	wantGutters := []string{" 1 ", " 2 ", " 3 "}
	if fmt.Sprintf("%q", s.gutters) != fmt.Sprintf("%q", wantGutters) {
		t.Fatalf("gutters: got %q, want %q", s.gutters, wantGutters)
	}
	if s.active[0] || !s.active[1] || s.active[2] {
		t.Fatalf("active rows: got %v", s.active)
	}
	for _, r := range s.runs {
		if r.col < 3 {
			t.Fatalf("text run drawn over gutter: %+v", r)
		}
	}
	if s.cursor != (buffer.Pos{Row: 1, Col: 3}) {
		t.Fatalf("cursor: got %v, want %v", s.cursor, buffer.Pos{Row: 1, Col: 3})
	}
}

func TestLineNumberWidth(t *testing.T) {
	for _, tc := range []struct{ count, want int }{
		{0, 2}, {1, 2}, {9, 2}, {10, 3}, {120, 4},
	} {
		if got := LineNumberWidth(tc.count); got != tc.want {
			t.Fatalf("LineNumberWidth(%d): got %d, want %d", tc.count, got, tc.want)
		}
	}
}
