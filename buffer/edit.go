package buffer

// InsertChar inserts ch at (row, col).
//
// It reports false and leaves the document untouched when row is not a line
// index or col lies outside [0, len(line)].
func (d *Document) InsertChar(row, col int, ch byte) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if row < 0 || row >= len(d.lines) {
		return false
	}
	line := d.lines[row]
	if col < 0 || col > len(line) {
		return false
	}

	d.lines[row] = line[:col] + string([]byte{ch}) + line[col:]
	d.version++
	d.recordChange(ChangeInsert, Pos{Row: row, Col: col})
	return true
}

// DeleteCharBefore applies backspace semantics at (row, col).
//
// With col > 0 it removes the byte at col-1 and returns joinCol = col-1.
// With col == 0 and row > 0 it appends line row onto line row-1, removes
// line row and returns the previous line's pre-merge length as joinCol.
// At (0, 0) or out of range it reports false.
func (d *Document) DeleteCharBefore(row, col int) (joinCol int, ok bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if row < 0 || row >= len(d.lines) {
		return 0, false
	}
	line := d.lines[row]
	if col < 0 || col > len(line) {
		return 0, false
	}

	if col > 0 {
		d.lines[row] = line[:col-1] + line[col:]
		d.version++
		d.recordChange(ChangeDelete, Pos{Row: row, Col: col - 1})
		return col - 1, true
	}
	if row == 0 {
		return 0, false
	}

	// Join with previous line.
	prevLen := len(d.lines[row-1])
	d.lines[row-1] += line
	d.lines = append(d.lines[:row], d.lines[row+1:]...)
	d.version++
	d.recordChange(ChangeJoin, Pos{Row: row - 1, Col: prevLen})
	return prevLen, true
}

// SplitLine truncates line row at col and inserts the remainder as a new
// line directly below it.
func (d *Document) SplitLine(row, col int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if row < 0 || row >= len(d.lines) {
		return false
	}
	line := d.lines[row]
	if col < 0 || col > len(line) {
		return false
	}

	d.lines = append(d.lines, "")
	copy(d.lines[row+2:], d.lines[row+1:])
	d.lines[row] = line[:col]
	d.lines[row+1] = line[col:]
	d.version++
	d.recordChange(ChangeSplit, Pos{Row: row, Col: col})
	return true
}
