package syntax

import (
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/iw2rmb/quill/lexer"
)

const (
	DefaultCacheExpiration      = time.Minute
	DefaultCacheCleanupInterval = 5 * time.Minute
)

// Span is a run of line text sharing one color. Col is the byte column of
// the first character.
type Span struct {
	Col   int
	Text  string
	Color ColorID
}

// Classifier colors lines from the static ColorTable and the current
// user-type table. It never mutates either table.
type Classifier struct {
	static atomic.Pointer[ColorTable]
	types  *UserTypes
	cache  *gocache.Cache
}

// ClassifierOption configures a Classifier.
type ClassifierOption func(*Classifier)

// WithUserTypes enables dynamic user-type coloring from u.
func WithUserTypes(u *UserTypes) ClassifierOption {
	return func(c *Classifier) { c.types = u }
}

// WithCache memoizes classified lines for the given expiration.
func WithCache(expiration, cleanup time.Duration) ClassifierOption {
	return func(c *Classifier) { c.cache = gocache.New(expiration, cleanup) }
}

// WithoutCache disables memoization.
func WithoutCache() ClassifierOption {
	return func(c *Classifier) { c.cache = nil }
}

// NewClassifier returns a classifier over table. A nil table colors nothing.
func NewClassifier(table *ColorTable, opts ...ClassifierOption) *Classifier {
	c := &Classifier{cache: gocache.New(DefaultCacheExpiration, DefaultCacheCleanupInterval)}
	if table == nil {
		table = EmptyColorTable()
	}
	c.static.Store(table)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ColorTable returns the current static table.
func (c *Classifier) ColorTable() *ColorTable { return c.static.Load() }

// SetColorTable replaces the static table wholesale.
func (c *Classifier) SetColorTable(t *ColorTable) {
	if t == nil {
		t = EmptyColorTable()
	}
	c.static.Store(t)
}

// UserTypes returns the dynamic table holder, or nil when disabled.
func (c *Classifier) UserTypes() *UserTypes { return c.types }

// Lookup resolves a lexeme: static table first, then the user-type snapshot.
func (c *Classifier) Lookup(lexeme string) ColorID {
	return lookup(c.static.Load(), c.types.Load(), lexeme)
}

func lookup(static *ColorTable, types *TypeTable, lexeme string) ColorID {
	if id, ok := static.Lookup(lexeme); ok {
		return id
	}
	if id, ok := types.Lookup(lexeme); ok {
		return id
	}
	return NoColor
}

// Classify splits line into colored spans that cover it exactly.
//
// The line is scanned as a newline-terminated document line, so a trailing
// "//" comment is recognised. Comments take the configured comment color
// whatever their text. Scanning stops at the first End or Unexpected token
// and the rest of the line is returned as one plain span.
//
// The returned slice may be shared with the cache and must not be modified.
func (c *Classifier) Classify(line string) []Span {
	static := c.static.Load()
	types := c.types.Load()

	var key string
	if c.cache != nil {
		key = strconv.FormatUint(static.Generation(), 10) + "/" +
			strconv.FormatUint(types.Generation(), 10) + "/" + line
		if v, ok := c.cache.Get(key); ok {
			if spans, ok := v.([]Span); ok {
				return spans
			}
		}
	}

	spans := classify(static, types, line)
	if c.cache != nil {
		c.cache.SetDefault(key, spans)
	}
	return spans
}

func classify(static *ColorTable, types *TypeTable, line string) []Span {
	var spans []Span
	emit := func(col int, text string, color ColorID) {
		if text == "" {
			return
		}
		if n := len(spans); n > 0 && spans[n-1].Color == color && spans[n-1].Col+len(spans[n-1].Text) == col {
			spans[n-1].Text += text
			return
		}
		spans = append(spans, Span{Col: col, Text: text, Color: color})
	}

	src := line + "\n"
	pos := 0
	for tok := range lexer.NewScanner(src).All() {
		if tok.Terminal() {
			break
		}
		end := min(tok.End, len(line))
		if tok.Start >= end {
			pos = max(pos, end)
			continue
		}
		text := line[tok.Start:end]
		if tok.Is(lexer.Comment) {
			emit(tok.Start, text, static.Comment())
		} else {
			emit(tok.Start, text, lookup(static, types, tok.Lexeme))
		}
		pos = end
	}
	if pos < len(line) {
		emit(pos, line[pos:], NoColor)
	}
	return spans
}

// Visible returns the spans of line inside the window [offset, offset+width)
// with columns relative to the window. Blank cells past the end of the line
// are filled with a plain span so the result covers exactly width cells.
func (c *Classifier) Visible(line string, offset, width int) []Span {
	if width <= 0 {
		return nil
	}
	offset = max(offset, 0)
	right := offset + width

	var out []Span
	covered := 0
	for _, sp := range c.Classify(line) {
		start, end := sp.Col, sp.Col+len(sp.Text)
		if end <= offset || start >= right {
			continue
		}
		cs, ce := max(start, offset), min(end, right)
		out = append(out, Span{
			Col:   cs - offset,
			Text:  sp.Text[cs-start : ce-start],
			Color: sp.Color,
		})
		covered = ce - offset
	}
	if covered < width {
		pad := strings.Repeat(" ", width-covered)
		if n := len(out); n > 0 && out[n-1].Color == NoColor {
			out[n-1].Text += pad
		} else {
			out = append(out, Span{Col: covered, Text: pad, Color: NoColor})
		}
	}
	return out
}
