// Package lexer scans a single line of source text into tokens for syntax
// coloring.
//
// Whitespace and newlines are tokens of their own so that callers can
// re-emit a line with its exact column layout. The scanner never looks past
// the text it was given; multi-line constructs are not recognised.
package lexer
