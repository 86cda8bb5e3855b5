package buffer

// Pos points into the document (or into a window) by (row, col).
// Row and Col are 0-based.
type Pos struct {
	Row int
	Col int
}

// Add returns the component-wise sum of p and q.
func (p Pos) Add(q Pos) Pos {
	return Pos{Row: p.Row + q.Row, Col: p.Col + q.Col}
}

// Size is a width/height pair in cells.
type Size struct {
	Width  int
	Height int
}

// ClampPos clamps p to a row in [0, rowCount) and a column in
// [0, lineLen(row)]. rowCount below 1 is treated as 1.
func ClampPos(p Pos, rowCount int, lineLen func(row int) int) Pos {
	row := min(max(p.Row, 0), max(rowCount, 1)-1)
	return Pos{Row: row, Col: min(max(p.Col, 0), max(lineLen(row), 0))}
}
