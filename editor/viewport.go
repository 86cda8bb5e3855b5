package editor

import "github.com/iw2rmb/quill/buffer"

// editSnapLead is the number of columns kept visible to the left of the
// cursor when the horizontal scroll snaps to a line end.
const editSnapLead = 3

// Viewport is the visible window into a document. Offset is the document
// position of the window's top-left cell.
type Viewport struct {
	Offset buffer.Pos
	Size   buffer.Size
}

// ViewportCursor keeps a window-local cursor and the viewport offset
// consistent with a document while the cursor moves and the document is
// edited through it.
//
// The cursor row stays in [0, Height) and the cursor column in [0, Width].
// The absolute position Offset+Cursor is always a valid line and never past
// the end of that line.
type ViewportCursor struct {
	doc    *buffer.Document
	view   Viewport
	cursor buffer.Pos
}

// NewViewportCursor places the cursor at the top-left of doc.
func NewViewportCursor(doc *buffer.Document, size buffer.Size) *ViewportCursor {
	if doc == nil {
		doc = buffer.New()
	}
	return &ViewportCursor{doc: doc, view: Viewport{Size: normalizeSize(size)}}
}

func normalizeSize(s buffer.Size) buffer.Size {
	return buffer.Size{Width: max(s.Width, 1), Height: max(s.Height, 1)}
}

func (v *ViewportCursor) Document() *buffer.Document { return v.doc }
func (v *ViewportCursor) Viewport() Viewport         { return v.view }
func (v *ViewportCursor) Cursor() buffer.Pos         { return v.cursor }

// Abs returns the cursor position in document coordinates.
func (v *ViewportCursor) Abs() buffer.Pos { return v.view.Offset.Add(v.cursor) }

// Up moves one row up, scrolling when the cursor is on the first window row.
func (v *ViewportCursor) Up() bool {
	switch {
	case v.cursor.Row > 0:
		v.cursor.Row--
	case v.view.Offset.Row > 0:
		v.view.Offset.Row--
	default:
		return false
	}
	v.reclampCol()
	return true
}

// Down moves one row down, scrolling when the cursor is on the last window
// row. It is a no-op on the last document line.
func (v *ViewportCursor) Down() bool {
	if v.Abs().Row >= v.doc.LineCount()-1 {
		return false
	}
	v.advanceRow()
	v.reclampCol()
	return true
}

func (v *ViewportCursor) advanceRow() {
	if v.cursor.Row < v.view.Size.Height-1 {
		v.cursor.Row++
	} else {
		v.view.Offset.Row++
	}
}

// Left moves one column left. It does not wrap to the previous line.
func (v *ViewportCursor) Left() bool {
	switch {
	case v.cursor.Col > 0:
		v.cursor.Col--
	case v.view.Offset.Col > 0:
		v.view.Offset.Col--
	default:
		return false
	}
	return true
}

// Right moves one column right while the cursor is before the line end.
func (v *ViewportCursor) Right() bool {
	abs := v.Abs()
	if abs.Col >= v.doc.LineLen(abs.Row) {
		return false
	}
	if v.cursor.Col < v.view.Size.Width {
		v.cursor.Col++
	} else {
		v.view.Offset.Col++
	}
	return true
}

// reclampCol pulls the column back onto the current line after a vertical
// move.
func (v *ViewportCursor) reclampCol() {
	abs := v.Abs()
	l := v.doc.LineLen(abs.Row)
	if abs.Col <= l {
		return
	}
	if v.view.Offset.Col < l {
		v.cursor.Col = l - v.view.Offset.Col
		return
	}
	v.edgeSnap(l)
}

// edgeSnap puts the cursor at column l. Lines wider than the window keep a
// short lead-in to the left of the cursor.
func (v *ViewportCursor) edgeSnap(l int) {
	if l > v.view.Size.Width {
		lead := min(editSnapLead, v.view.Size.Width)
		v.view.Offset.Col = l - lead
		v.cursor.Col = lead
		return
	}
	v.view.Offset.Col = 0
	v.cursor.Col = l
}

// BreakLine splits the line at the cursor and moves to the start of the new
// line.
func (v *ViewportCursor) BreakLine() bool {
	abs := v.Abs()
	if !v.doc.SplitLine(abs.Row, abs.Col) {
		return false
	}
	v.advanceRow()
	v.view.Offset.Col = 0
	v.cursor.Col = 0
	return true
}

// DeleteCharCurPos deletes the character left of the cursor. At column 0
// the line is joined onto the previous one and the cursor lands on the join
// point.
func (v *ViewportCursor) DeleteCharCurPos() bool {
	abs := v.Abs()
	joinCol, ok := v.doc.DeleteCharBefore(abs.Row, abs.Col)
	if !ok {
		return false
	}
	if abs.Col > 0 {
		v.Left()
		return true
	}
	if v.cursor.Row > 0 {
		v.cursor.Row--
	} else {
		v.view.Offset.Row--
	}
	v.edgeSnap(joinCol)
	return true
}

// InsertCharCurPos inserts a printable ASCII character at the cursor and
// moves past it. Other bytes are rejected.
func (v *ViewportCursor) InsertCharCurPos(ch byte) bool {
	if !isPrintable(ch) {
		return false
	}
	abs := v.Abs()
	if !v.doc.InsertChar(abs.Row, abs.Col, ch) {
		return false
	}
	v.Right()
	return true
}

// Tab inserts width spaces.
func (v *ViewportCursor) Tab(width int) bool {
	inserted := false
	for range width {
		if v.InsertCharCurPos(' ') {
			inserted = true
		}
	}
	return inserted
}

// Resize changes the window size. The cursor keeps its document position;
// the window scrolls when the cursor would fall outside it.
func (v *ViewportCursor) Resize(size buffer.Size) {
	v.view.Size = normalizeSize(size)
	if over := v.cursor.Row - (v.view.Size.Height - 1); over > 0 {
		v.view.Offset.Row += over
		v.cursor.Row -= over
	}
	if over := v.cursor.Col - v.view.Size.Width; over > 0 {
		v.view.Offset.Col += over
		v.cursor.Col -= over
	}
}

// Sync repairs the cursor after the document was replaced or edited
// elsewhere.
func (v *ViewportCursor) Sync() {
	abs := v.doc.ClampPos(v.Abs())
	v.view.Offset.Row = min(v.view.Offset.Row, abs.Row)
	v.cursor.Row = abs.Row - v.view.Offset.Row
	v.reclampCol()
}

func isPrintable(ch byte) bool { return ch >= 32 && ch <= 126 }
