package buffer

// ChangeKind identifies the kind of an effective mutation.
type ChangeKind uint8

const (
	ChangeInsert ChangeKind = iota
	ChangeDelete
	ChangeSplit
	ChangeJoin
	ChangeReplace
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeInsert:
		return "insert"
	case ChangeDelete:
		return "delete"
	case ChangeSplit:
		return "split"
	case ChangeJoin:
		return "join"
	case ChangeReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// Change describes the most recent effective mutation.
type Change struct {
	Kind      ChangeKind
	At        Pos
	Version   uint64
	LineCount int
}

// LastChange returns the most recent effective change.
func (d *Document) LastChange() (Change, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if !d.hasLastChange {
		return Change{}, false
	}
	return d.lastChange, true
}

// recordChange must be called with d.mu held for writing.
func (d *Document) recordChange(kind ChangeKind, at Pos) {
	d.lastChange = Change{
		Kind:      kind,
		At:        at,
		Version:   d.version,
		LineCount: len(d.lines),
	}
	d.hasLastChange = true
}
