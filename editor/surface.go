package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/quill/syntax"
)

type styledRun struct {
	col   int
	text  string
	style lipgloss.Style
}

// styledSurface collects rendered runs and turns them into styled terminal
// lines. Columns are byte columns of ASCII text, so one byte is one cell.
type styledSurface struct {
	style   Style
	palette Palette
	width   int
	focused bool

	rows      [][]styledRun
	cursorRow int
	cursorCol int
}

func newStyledSurface(st Style, p Palette, width, height int, focused bool) *styledSurface {
	return &styledSurface{
		style:     st,
		palette:   p,
		width:     width,
		focused:   focused,
		rows:      make([][]styledRun, height),
		cursorRow: -1,
	}
}

func (s *styledSurface) DrawRun(row, col int, text string, color syntax.ColorID) {
	if row < 0 || row >= len(s.rows) || text == "" {
		return
	}
	s.rows[row] = append(s.rows[row], styledRun{col: col, text: visibleText(text), style: s.palette.Style(color, s.style.Text)})
}

// controlPlaceholder stands in for control bytes such as '\r' and '\t' that
// would otherwise move the terminal cursor mid-row.
const controlPlaceholder = '?'

func visibleText(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return controlPlaceholder
		}
		return r
	}, s)
}

func (s *styledSurface) DrawGutter(row int, text string, active bool) {
	if row < 0 || row >= len(s.rows) {
		return
	}
	st := s.style.Gutter
	if active {
		st = s.style.LineNumActive
	}
	s.rows[row] = append(s.rows[row], styledRun{col: 0, text: text, style: st})
}

func (s *styledSurface) MoveCursor(row, col int) {
	s.cursorRow, s.cursorCol = row, col
}

// Lines renders each row padded to the surface width.
func (s *styledSurface) Lines() []string {
	out := make([]string, len(s.rows))
	for i, runs := range s.rows {
		var sb strings.Builder
		used := 0
		cursorDrawn := !s.focused || i != s.cursorRow
		for _, r := range runs {
			if !cursorDrawn && s.cursorCol >= r.col && s.cursorCol < r.col+len(r.text) {
				at := s.cursorCol - r.col
				sb.WriteString(r.style.Render(r.text[:at]))
				sb.WriteString(s.style.Cursor.Render(r.text[at : at+1]))
				sb.WriteString(r.style.Render(r.text[at+1:]))
				cursorDrawn = true
			} else {
				sb.WriteString(r.style.Render(r.text))
			}
			used = r.col + len(r.text)
		}
		if !cursorDrawn && s.cursorCol >= used {
			sb.WriteString(strings.Repeat(" ", s.cursorCol-used))
			sb.WriteString(s.style.Cursor.Render(" "))
			used = s.cursorCol + 1
		}
		if used < s.width {
			sb.WriteString(strings.Repeat(" ", s.width-used))
		}
		out[i] = sb.String()
	}
	return out
}
