// Package buffer implements the byte-column document model for quill.
//
// Coordinates are 0-based (Row, Col) in bytes. Only the printable ASCII range
// is inserted by the editor, so a byte column is also a screen column.
package buffer
