package lexer

import "iter"

// Scanner performs lexical analysis of one line.
//
// A Scanner is single-pass: once it has returned a terminal token (End or
// Unexpected) every further call to Next returns End.
type Scanner struct {
	source string
	cursor int
	done   bool
}

// NewScanner creates a scanner over line.
func NewScanner(line string) *Scanner {
	return &Scanner{source: line}
}

// Reset re-initializes the scanner with a new line for reuse.
func (s *Scanner) Reset(line string) {
	s.source = line
	s.cursor = 0
	s.done = false
}

// Next returns the next token.
func (s *Scanner) Next() Token {
	if s.done {
		return Token{Kind: End, Start: s.cursor, End: s.cursor}
	}
	tok := s.scan()
	if tok.Terminal() {
		s.done = true
	}
	return tok
}

// All yields the remaining tokens up to and including the terminal one.
func (s *Scanner) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for !s.done {
			if !yield(s.Next()) {
				return
			}
		}
	}
}

// Tokens scans line and collects its tokens, terminal token included.
func Tokens(line string) []Token {
	var out []Token
	for tok := range NewScanner(line).All() {
		out = append(out, tok)
	}
	return out
}

func (s *Scanner) peek() byte {
	if s.cursor >= len(s.source) {
		return 0
	}
	return s.source[s.cursor]
}

func (s *Scanner) scan() Token {
	start := s.cursor
	ch := s.peek()

	switch {
	case ch == 0:
		return Token{Kind: End, Start: start, End: start}
	case isAlpha(ch):
		return s.scanIdentifier()
	case isDigit(ch):
		return s.scanNumber()
	case ch == '/':
		return s.scanSlashOrComment()
	}
	if k, ok := atomKind(ch); ok {
		return s.atom(k)
	}
	return s.atom(Unexpected)
}

func (s *Scanner) atom(k Kind) Token {
	start := s.cursor
	s.cursor++
	return Token{Kind: k, Lexeme: s.source[start:s.cursor], Start: start, End: s.cursor}
}

func (s *Scanner) scanIdentifier() Token {
	start := s.cursor
	s.cursor++
	for s.cursor < len(s.source) && isIdentifierChar(s.source[s.cursor]) {
		s.cursor++
	}
	return Token{Kind: Identifier, Lexeme: s.source[start:s.cursor], Start: start, End: s.cursor}
}

func (s *Scanner) scanNumber() Token {
	start := s.cursor
	s.cursor++
	for s.cursor < len(s.source) && isDigit(s.source[s.cursor]) {
		s.cursor++
	}
	return Token{Kind: Number, Lexeme: s.source[start:s.cursor], Start: start, End: s.cursor}
}

// scanSlashOrComment handles '/' and "//" comments. A comment must be closed
// by a newline; one that runs into end-of-input is reported as Unexpected.
func (s *Scanner) scanSlashOrComment() Token {
	start := s.cursor
	s.cursor++
	if s.peek() != '/' {
		return Token{Kind: Slash, Lexeme: "/", Start: start, End: s.cursor}
	}
	s.cursor++

	bodyStart := s.cursor
	for s.peek() != 0 {
		ch := s.source[s.cursor]
		s.cursor++
		if ch == '\n' {
			return Token{Kind: Comment, Lexeme: s.source[bodyStart : s.cursor-1], Start: start, End: s.cursor}
		}
	}
	return Token{Kind: Unexpected, Start: s.cursor, End: s.cursor}
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentifierChar(ch byte) bool {
	return isAlpha(ch) || isDigit(ch) || ch == '_'
}

func atomKind(ch byte) (Kind, bool) {
	switch ch {
	case ' ':
		return Space, true
	case '\n':
		return NewLine, true
	case '(':
		return LeftParen, true
	case ')':
		return RightParen, true
	case '[':
		return LeftSquare, true
	case ']':
		return RightSquare, true
	case '{':
		return LeftCurly, true
	case '}':
		return RightCurly, true
	case '<':
		return LessThan, true
	case '>':
		return GreaterThan, true
	case '=':
		return Equal, true
	case '+':
		return Plus, true
	case '-':
		return Minus, true
	case '*':
		return Asterisk, true
	case '#':
		return Hash, true
	case '.':
		return Dot, true
	case ',':
		return Comma, true
	case ':':
		return Colon, true
	case ';':
		return Semicolon, true
	case '\'':
		return SingleQuote, true
	case '"':
		return DoubleQuote, true
	case '|':
		return Pipe, true
	default:
		return 0, false
	}
}
