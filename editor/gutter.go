package editor

import "strconv"

// LineNumberWidth returns the line-number gutter width for lineCount: the
// digits of the largest number plus one separator column.
func LineNumberWidth(lineCount int) int {
	return gutterDigits(lineCount) + 1
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(strconv.Itoa(lineCount))
}

// lineNumberCell renders the gutter for a document row, right aligned in
// width columns. Rows past the end of the document get a blank cell.
func lineNumberCell(row, lineCount, width int) string {
	cell := make([]byte, width)
	for i := range cell {
		cell[i] = ' '
	}
	if row < 0 || row >= lineCount {
		return string(cell)
	}
	num := strconv.Itoa(row + 1)
	copy(cell[max(width-1-len(num), 0):], num)
	return string(cell[:width])
}

// GutterWidth returns the number of columns left of the text window.
func (e *Editor) GutterWidth() int {
	if !e.opts.ShowLineNumbers {
		return 0
	}
	return LineNumberWidth(e.doc.LineCount())
}
