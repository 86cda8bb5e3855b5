// Package editor implements the cursor and viewport rules of the editor,
// command handling over a buffer.Document, and rendering of the visible
// window through a Surface.
//
// Editor is independent of any terminal library; Model hosts it in a Bubble
// Tea program with lipgloss styling.
package editor
