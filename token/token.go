// Package token defines language keywords and tokens used when lexing source
// code, along with the position and span types attached to every node and
// diagnostic produced by the front end.
package token

// Type describes the type of a token as a string.
type Type string

// SourceID identifies the source unit (a file or a named fragment) that a
// tree or diagnostic originated from. It is created once per unit and never
// owns or references the source text itself.
type SourceID struct {
	name string
}

// NewSourceID creates an identifier for a source unit with the given name.
func NewSourceID(name string) SourceID {
	return SourceID{name: name}
}

// Name returns the name of the source unit.
func (s SourceID) Name() string { return s.name }

func (s SourceID) String() string { return s.name }

// Position points to a particular location in an input string.
type Position struct {
	Char      int // byte offset within the input
	LineStart int // byte offset of the start of the current line
	Line      int // 0-indexed line number
	Column    int // 0-indexed column number
}

// LineNumber returns the 1-indexed line number for this position in the input.
func (p Position) LineNumber() int {
	return p.Line + 1
}

// ColumnNumber returns the 1-indexed column number for this position in the input.
func (p Position) ColumnNumber() int {
	return p.Column + 1
}

// Advance returns a new Position advanced by n bytes.
// Note: this assumes the advance does not cross line boundaries.
func (p Position) Advance(n int) Position {
	return Position{
		Char:      p.Char + n,
		LineStart: p.LineStart,
		Line:      p.Line,
		Column:    p.Column + n,
	}
}

// NoPos is the zero value Position, representing an invalid/unset position.
var NoPos = Position{}

// Span is a half-open range [Start, End) into source text owned by the
// caller. Spans are coordinates only; they never carry the text itself.
// Two spans over the same text are equal iff their ranges are equal.
type Span struct {
	Start Position
	End   Position
}

// NewSpan builds a span from a start and end position.
func NewSpan(start, end Position) Span {
	return Span{Start: start, End: end}
}

// Union returns the smallest span covering both s and other.
func (s Span) Union(other Span) Span {
	out := s
	if other.Start.Char < out.Start.Char {
		out.Start = other.Start
	}
	if other.End.Char > out.End.Char {
		out.End = other.End
	}
	return out
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End.Char - s.Start.Char
}

// String renders the span as "line:col..line:col" using 1-indexed
// coordinates. This rendering is part of the canonical printer output and
// must stay stable.
func (s Span) String() string {
	return itoa(s.Start.LineNumber()) + ":" + itoa(s.Start.ColumnNumber()) +
		".." + itoa(s.End.LineNumber()) + ":" + itoa(s.End.ColumnNumber())
}

// itoa avoids pulling fmt into a leaf package for two-digit numbers.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// Token represents one token lexed from the input source code.
type Token struct {
	Type          Type
	Literal       string
	StartPosition Position
	EndPosition   Position
}

// Span returns the source range covered by the token.
func (t Token) Span() Span {
	return Span{Start: t.StartPosition, End: t.EndPosition}
}

// Token types
const (
	ASSIGN    Type = "="
	ASTERISK  Type = "*"
	BANG      Type = "!"
	COMMA     Type = ","
	EOF       Type = "EOF"
	EQ        Type = "=="
	FALSE     Type = "FALSE"
	GT        Type = ">"
	GT_EQUALS Type = ">="
	IDENT     Type = "IDENT"
	ILLEGAL   Type = "ILLEGAL"
	IMPORT    Type = "IMPORT"
	INT       Type = "INT"
	LBRACE    Type = "{"
	LBRACKET  Type = "["
	LPAREN    Type = "("
	LT        Type = "<"
	LT_EQUALS Type = "<="
	MINUS     Type = "-"
	MOD       Type = "%"
	NEWLINE   Type = "EOL"
	NOT_EQ    Type = "!="
	NULL      Type = "NULL"
	AND       Type = "&&"
	OR        Type = "||"
	PERIOD    Type = "."
	PLUS      Type = "+"
	RBRACE    Type = "}"
	RBRACKET  Type = "]"
	RPAREN    Type = ")"
	SEMICOLON Type = ";"
	SLASH     Type = "/"
	STRING    Type = "STRING"
	THIS      Type = "THIS"
	TRUE      Type = "TRUE"
	VAL       Type = "VAL"
	VAR       Type = "VAR"
)

// Reserved keywords
var keywords = map[string]Type{
	"false":  FALSE,
	"import": IMPORT,
	"null":   NULL,
	"this":   THIS,
	"true":   TRUE,
	"val":    VAL,
	"var":    VAR,
}

// LookupIdentifier is used to determine whether an identifier is a keyword.
func LookupIdentifier(identifier string) Type {
	if tok, ok := keywords[identifier]; ok {
		return tok
	}
	return IDENT
}
