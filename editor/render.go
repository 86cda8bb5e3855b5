package editor

import (
	"strings"

	"github.com/iw2rmb/quill/syntax"
)

// Surface receives the rendered window. Columns are surface columns: the
// gutter, when shown, occupies the first GutterWidth columns.
type Surface interface {
	DrawRun(row, col int, text string, color syntax.ColorID)
	MoveCursor(row, col int)
}

// GutterSurface is implemented by surfaces that style the gutter apart from
// the text. Other surfaces receive the gutter as an uncolored run.
type GutterSurface interface {
	DrawGutter(row int, text string, active bool)
}

// Render draws every window row: the gutter first, then colored runs that
// together span exactly the window width. It finishes by placing the
// cursor.
func (e *Editor) Render(s Surface) {
	view := e.vc.Viewport()
	cur := e.vc.Cursor()
	count := e.doc.LineCount()
	gw := e.GutterWidth()
	gs, styledGutter := s.(GutterSurface)

	for r := range view.Size.Height {
		row := view.Offset.Row + r
		if gw > 0 {
			cell := lineNumberCell(row, count, gw)
			if styledGutter {
				gs.DrawGutter(r, cell, r == cur.Row)
			} else {
				s.DrawRun(r, 0, cell, syntax.NoColor)
			}
		}

		if row >= count {
			s.DrawRun(r, gw, strings.Repeat(" ", view.Size.Width), syntax.NoColor)
			continue
		}
		for _, sp := range e.classifier.Visible(e.doc.Line(row), view.Offset.Col, view.Size.Width) {
			s.DrawRun(r, gw+sp.Col, sp.Text, sp.Color)
		}
	}
	s.MoveCursor(cur.Row, gw+cur.Col)
}
