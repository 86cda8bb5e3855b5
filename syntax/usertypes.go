package syntax

import (
	"maps"
	"sort"
	"sync/atomic"
)

// TypeTable is an immutable identifier → color id mapping built by one scan
// cycle.
type TypeTable struct {
	names      map[string]ColorID
	generation uint64
}

// Lookup returns the color id of name.
func (t *TypeTable) Lookup(name string) (ColorID, bool) {
	if t == nil {
		return NoColor, false
	}
	id, ok := t.names[name]
	return id, ok
}

func (t *TypeTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.names)
}

// Names returns the identifiers in ascending order.
func (t *TypeTable) Names() []string {
	if t == nil {
		return nil
	}
	out := make([]string, 0, len(t.names))
	for n := range t.names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Generation changes whenever a published table differs from its
// predecessor.
func (t *TypeTable) Generation() uint64 {
	if t == nil {
		return 0
	}
	return t.generation
}

// UserTypes holds the current TypeTable. Publish swaps the whole table in
// one atomic store; readers see either the old or the new table.
type UserTypes struct {
	cur atomic.Pointer[TypeTable]
}

func NewUserTypes() *UserTypes {
	u := &UserTypes{}
	u.cur.Store(&TypeTable{names: map[string]ColorID{}})
	return u
}

// Load returns the current table.
func (u *UserTypes) Load() *TypeTable {
	if u == nil {
		return nil
	}
	return u.cur.Load()
}

// Publish replaces the current table with names and reports whether the
// content changed. Concurrent publishers each get a distinct generation.
// The caller must not modify names afterwards.
func (u *UserTypes) Publish(names map[string]ColorID) (changed bool) {
	if names == nil {
		names = map[string]ColorID{}
	}
	next := &TypeTable{names: names}
	for {
		prev := u.cur.Load()
		if maps.Equal(prev.names, names) {
			return false
		}
		next.generation = prev.Generation() + 1
		if u.cur.CompareAndSwap(prev, next) {
			return true
		}
	}
}
