package lexer

// Kind identifies the class of a token.
type Kind uint8

const (
	Number Kind = iota
	Identifier
	LeftParen
	RightParen
	LeftSquare
	RightSquare
	LeftCurly
	RightCurly
	LessThan
	GreaterThan
	Equal
	Plus
	Minus
	Asterisk
	Slash
	Hash
	Dot
	Comma
	Colon
	Semicolon
	SingleQuote
	DoubleQuote
	Comment
	Pipe
	End
	Unexpected
	Space
	NewLine
)

var kindNames = [...]string{
	Number:      "Number",
	Identifier:  "Identifier",
	LeftParen:   "LeftParen",
	RightParen:  "RightParen",
	LeftSquare:  "LeftSquare",
	RightSquare: "RightSquare",
	LeftCurly:   "LeftCurly",
	RightCurly:  "RightCurly",
	LessThan:    "LessThan",
	GreaterThan: "GreaterThan",
	Equal:       "Equal",
	Plus:        "Plus",
	Minus:       "Minus",
	Asterisk:    "Asterisk",
	Slash:       "Slash",
	Hash:        "Hash",
	Dot:         "Dot",
	Comma:       "Comma",
	Colon:       "Colon",
	Semicolon:   "Semicolon",
	SingleQuote: "SingleQuote",
	DoubleQuote: "DoubleQuote",
	Comment:     "Comment",
	Pipe:        "Pipe",
	End:         "End",
	Unexpected:  "Unexpected",
	Space:       "Space",
	NewLine:     "NewLine",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Token is one lexical unit of a line.
//
// Lexeme is the matched text. Start and End delimit the bytes the scanner
// consumed for the token; for a Comment that span also covers the leading
// "//" and the terminating newline, which Lexeme excludes.
type Token struct {
	Kind   Kind
	Lexeme string
	Start  int
	End    int
}

func (t Token) Is(k Kind) bool { return t.Kind == k }

// IsOneOf reports whether the token kind is any of ks.
func (t Token) IsOneOf(ks ...Kind) bool {
	for _, k := range ks {
		if t.Kind == k {
			return true
		}
	}
	return false
}

// Terminal reports whether the token ends the stream.
func (t Token) Terminal() bool { return t.IsOneOf(End, Unexpected) }
