package syntax

import (
	"sort"
	"sync/atomic"
)

// ColorID identifies a foreground color pair. NoColor renders as plain text;
// configured ids start at 1.
type ColorID int

const NoColor ColorID = 0

// Entry is one color configuration entry: every key in Keys shares the
// color pair built from FG.
type Entry struct {
	FG   int      `mapstructure:"fg" yaml:"fg" json:"fg"`
	Keys []string `mapstructure:"keys" yaml:"keys" json:"keys"`
}

// Config is the static color configuration.
//
// Comment and UserDef name color ids (1-based entry positions), the same
// ids Entry keys are assigned.
type Config struct {
	Comment        ColorID `mapstructure:"comment" yaml:"comment" json:"comment"`
	UserDef        ColorID `mapstructure:"user_def" yaml:"user_def" json:"user_def"`
	Configurations []Entry `mapstructure:"configurations" yaml:"configurations" json:"configurations"`
}

var tableGeneration atomic.Uint64

// ColorTable is an immutable keyword → color id mapping plus the palette of
// foreground colors for every id.
type ColorTable struct {
	keys       map[string]ColorID
	palette    map[ColorID]int
	comment    ColorID
	userDef    ColorID
	generation uint64
}

// EmptyColorTable returns a table that colors nothing.
func EmptyColorTable() *ColorTable {
	return BuildColorTable(Config{})
}

// BuildColorTable flattens cfg. Entry i (0-based) gets color id i+1; a key
// listed in several entries keeps the last one.
func BuildColorTable(cfg Config) *ColorTable {
	t := &ColorTable{
		keys:       make(map[string]ColorID),
		palette:    make(map[ColorID]int, len(cfg.Configurations)),
		comment:    cfg.Comment,
		userDef:    cfg.UserDef,
		generation: tableGeneration.Add(1),
	}
	id := ColorID(1)
	for _, e := range cfg.Configurations {
		t.palette[id] = e.FG
		for _, k := range e.Keys {
			t.keys[k] = id
		}
		id++
	}
	return t
}

// Lookup returns the color id of keyword.
func (t *ColorTable) Lookup(keyword string) (ColorID, bool) {
	if t == nil {
		return NoColor, false
	}
	id, ok := t.keys[keyword]
	return id, ok
}

// Foreground returns the configured foreground color number of id.
func (t *ColorTable) Foreground(id ColorID) (int, bool) {
	if t == nil {
		return 0, false
	}
	fg, ok := t.palette[id]
	return fg, ok
}

// IDs returns every configured color id in ascending order.
func (t *ColorTable) IDs() []ColorID {
	if t == nil {
		return nil
	}
	ids := make([]ColorID, 0, len(t.palette))
	for id := range t.palette {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (t *ColorTable) Comment() ColorID {
	if t == nil {
		return NoColor
	}
	return t.comment
}

func (t *ColorTable) UserDef() ColorID {
	if t == nil {
		return NoColor
	}
	return t.userDef
}

// Len returns the number of keywords.
func (t *ColorTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.keys)
}

// Generation identifies this table instance.
func (t *ColorTable) Generation() uint64 {
	if t == nil {
		return 0
	}
	return t.generation
}

// DefaultConfig is the built-in palette used when no color configuration is
// found. Foregrounds are 256-color terminal numbers.
func DefaultConfig() Config {
	return Config{
		Comment: 3,
		UserDef: 4,
		Configurations: []Entry{
			{FG: 75, Keys: []string{
				"class", "struct", "enum", "union", "namespace", "template", "typename",
				"public", "private", "protected", "virtual", "override", "static", "const",
				"if", "else", "for", "while", "do", "switch", "case", "default", "break",
				"continue", "return", "new", "delete", "using", "include", "define",
			}},
			{FG: 114, Keys: []string{
				"int", "char", "bool", "void", "float", "double", "long", "short",
				"unsigned", "signed", "auto", "size_t", "string", "vector", "map",
			}},
			{FG: 244},
			{FG: 80},
			{FG: 176, Keys: []string{"true", "false", "nullptr", "NULL", "this"}},
		},
	}
}
