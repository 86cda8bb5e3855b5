package buffer

import (
	"strings"
	"sync"
)

// Document is an ordered, never-empty sequence of text lines.
//
// All methods are safe for concurrent use. The editor mutates the document
// from one goroutine while the background scanner reads it through Lines.
type Document struct {
	mu      sync.RWMutex
	lines   []string
	version uint64

	lastChange    Change
	hasLastChange bool
}

// New returns a document holding a copy of lines. With no lines it holds a
// single empty line.
func New(lines ...string) *Document {
	return &Document{lines: normalizeLines(append([]string(nil), lines...))}
}

// NewFromText splits text on '\n' into a document.
func NewFromText(text string) *Document {
	return &Document{lines: splitLines(text)}
}

// Text joins all lines with '\n'.
func (d *Document) Text() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return strings.Join(d.lines, "\n")
}

// Version increases on every effective mutation.
func (d *Document) Version() uint64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.version
}

func (d *Document) LineCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.lines)
}

// LineLen returns the byte length of row, or 0 when row is out of range.
func (d *Document) LineLen(row int) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.lineLen(row)
}

// Line returns the text of row, or "" when row is out of range.
func (d *Document) Line(row int) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if row < 0 || row >= len(d.lines) {
		return ""
	}
	return d.lines[row]
}

// Lines returns a point-in-time copy of every line.
func (d *Document) Lines() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]string(nil), d.lines...)
}

// SetLines replaces the whole document. An empty slice becomes a single
// empty line.
func (d *Document) SetLines(lines []string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lines = normalizeLines(append([]string(nil), lines...))
	d.version++
	d.recordChange(ChangeReplace, Pos{})
}

// ClampPos clamps p into the current document bounds.
func (d *Document) ClampPos(p Pos) Pos {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return ClampPos(p, len(d.lines), d.lineLen)
}

func (d *Document) lineLen(row int) int {
	if row < 0 || row >= len(d.lines) {
		return 0
	}
	return len(d.lines[row])
}

func normalizeLines(lines []string) []string {
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

func splitLines(text string) []string {
	return normalizeLines(strings.Split(text, "\n"))
}
