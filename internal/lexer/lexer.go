// Package lexer tokenizes decl source text. Both front ends consume the same
// lexer, which is what makes byte-identical span reporting across the two
// parse paths possible.
package lexer

import (
	"fmt"

	"github.com/decl-lang/decl/token"
)

// Lexer turns an input string into a stream of tokens.
type Lexer struct {
	input string
	// index is the read position within input.
	index int
	// pos is the absolute position of input[index]. When a base position is
	// set, absolute positions differ from indexes into input.
	pos token.Position
	// base is the absolute position of input[0].
	base token.Position
}

// New returns a Lexer for the given input string.
func New(input string) *Lexer {
	return &Lexer{input: input}
}

// SetBase sets the absolute position of the first byte of the input. Used
// when the input is a fragment of a larger document, so that all reported
// positions are absolute within that document.
func (l *Lexer) SetBase(pos token.Position) {
	l.base = pos
	l.pos = pos
}

// Next returns the next token from the input. At the end of the input a
// token with type EOF is returned. Lexical errors (unterminated strings,
// illegal characters) return an ILLEGAL token along with a non-nil error;
// the offending input has been consumed, so callers may keep scanning.
func (l *Lexer) Next() (token.Token, error) {
	l.skipSpace()
	start := l.pos

	ch, ok := l.peek()
	if !ok {
		return token.Token{Type: token.EOF, StartPosition: start, EndPosition: start}, nil
	}

	switch {
	case ch == '\n':
		l.advance()
		return l.emit(token.NEWLINE, "\n", start), nil
	case isLetter(ch):
		lit := l.readIdentifier()
		return l.emit(token.LookupIdentifier(lit), lit, start), nil
	case isDigit(ch):
		return l.readNumber(start)
	case ch == '"':
		return l.readString(start)
	}

	l.advance()
	switch ch {
	case '=':
		if l.accept('=') {
			return l.emit(token.EQ, "==", start), nil
		}
		return l.emit(token.ASSIGN, "=", start), nil
	case '!':
		if l.accept('=') {
			return l.emit(token.NOT_EQ, "!=", start), nil
		}
		return l.emit(token.BANG, "!", start), nil
	case '<':
		if l.accept('=') {
			return l.emit(token.LT_EQUALS, "<=", start), nil
		}
		return l.emit(token.LT, "<", start), nil
	case '>':
		if l.accept('=') {
			return l.emit(token.GT_EQUALS, ">=", start), nil
		}
		return l.emit(token.GT, ">", start), nil
	case '&':
		if l.accept('&') {
			return l.emit(token.AND, "&&", start), nil
		}
		return l.illegal(start, "&")
	case '|':
		if l.accept('|') {
			return l.emit(token.OR, "||", start), nil
		}
		return l.illegal(start, "|")
	case '+':
		return l.emit(token.PLUS, "+", start), nil
	case '-':
		return l.emit(token.MINUS, "-", start), nil
	case '*':
		return l.emit(token.ASTERISK, "*", start), nil
	case '/':
		return l.emit(token.SLASH, "/", start), nil
	case '%':
		return l.emit(token.MOD, "%", start), nil
	case '.':
		return l.emit(token.PERIOD, ".", start), nil
	case ',':
		return l.emit(token.COMMA, ",", start), nil
	case ';':
		return l.emit(token.SEMICOLON, ";", start), nil
	case '(':
		return l.emit(token.LPAREN, "(", start), nil
	case ')':
		return l.emit(token.RPAREN, ")", start), nil
	case '{':
		return l.emit(token.LBRACE, "{", start), nil
	case '}':
		return l.emit(token.RBRACE, "}", start), nil
	case '[':
		return l.emit(token.LBRACKET, "[", start), nil
	case ']':
		return l.emit(token.RBRACKET, "]", start), nil
	}
	return l.illegal(start, string(ch))
}

// skipSpace consumes whitespace (other than newlines, which are tokens) and
// comments. A line comment runs to the end of the line; the terminating
// newline is left in place so statement separation is unaffected.
func (l *Lexer) skipSpace() {
	for {
		ch, ok := l.peek()
		if !ok {
			return
		}
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r':
			l.advance()
		case ch == '/' && l.peekAt(1) == '/':
			for {
				ch, ok := l.peek()
				if !ok || ch == '\n' {
					break
				}
				l.advance()
			}
		case ch == '/' && l.peekAt(1) == '*':
			l.advance()
			l.advance()
			for {
				ch, ok := l.peek()
				if !ok {
					return // unterminated comment is tolerated at EOF
				}
				if ch == '*' && l.peekAt(1) == '/' {
					l.advance()
					l.advance()
					break
				}
				l.advance()
			}
		default:
			return
		}
	}
}

func (l *Lexer) readIdentifier() string {
	from := l.index
	for {
		ch, ok := l.peek()
		if !ok || (!isLetter(ch) && !isDigit(ch)) {
			break
		}
		l.advance()
	}
	return l.input[from:l.index]
}

// readNumber reads a decimal integer literal with an optional "L" suffix.
// A letter glued to the digits (other than the suffix) is a lexical error.
func (l *Lexer) readNumber(start token.Position) (token.Token, error) {
	from := l.index
	for {
		ch, ok := l.peek()
		if !ok || !isDigit(ch) {
			break
		}
		l.advance()
	}
	if ch, ok := l.peek(); ok && ch == 'L' {
		l.advance()
	}
	if ch, ok := l.peek(); ok && isLetter(ch) {
		for {
			ch, ok := l.peek()
			if !ok || (!isLetter(ch) && !isDigit(ch)) {
				break
			}
			l.advance()
		}
		lit := l.input[from:l.index]
		tok := token.Token{Type: token.ILLEGAL, Literal: lit, StartPosition: start, EndPosition: l.pos}
		return tok, fmt.Errorf("invalid number literal %q", lit)
	}
	return l.emit(token.INT, l.input[from:l.index], start), nil
}

// readString reads a double-quoted string literal. The returned literal
// includes the surrounding quotes; escape sequences are validated here and
// decoded later by the tree builder.
func (l *Lexer) readString(start token.Position) (token.Token, error) {
	from := l.index
	l.advance() // opening quote
	for {
		ch, ok := l.peek()
		if !ok || ch == '\n' {
			lit := l.input[from:l.index]
			tok := token.Token{Type: token.ILLEGAL, Literal: lit, StartPosition: start, EndPosition: l.pos}
			return tok, fmt.Errorf("unterminated string literal")
		}
		if ch == '"' {
			l.advance()
			return l.emit(token.STRING, l.input[from:l.index], start), nil
		}
		if ch == '\\' {
			l.advance()
			esc, ok := l.peek()
			if !ok {
				continue // caught as unterminated above
			}
			switch esc {
			case '"', '\\', 'n', 't', 'r', '$', '\'':
				l.advance()
			case 'u':
				l.advance()
				for i := 0; i < 4; i++ {
					h, ok := l.peek()
					if !ok || !isHexDigit(h) {
						lit := l.input[from:l.index]
						tok := token.Token{Type: token.ILLEGAL, Literal: lit, StartPosition: start, EndPosition: l.pos}
						return tok, fmt.Errorf("invalid unicode escape in string literal")
					}
					l.advance()
				}
			default:
				l.advance()
				lit := l.input[from:l.index]
				tok := token.Token{Type: token.ILLEGAL, Literal: lit, StartPosition: start, EndPosition: l.pos}
				return tok, fmt.Errorf("invalid escape sequence %q in string literal", "\\"+string(esc))
			}
			continue
		}
		l.advance()
	}
}

func (l *Lexer) emit(typ token.Type, literal string, start token.Position) token.Token {
	return token.Token{
		Type:          typ,
		Literal:       literal,
		StartPosition: start,
		EndPosition:   l.pos,
	}
}

func (l *Lexer) illegal(start token.Position, literal string) (token.Token, error) {
	tok := token.Token{Type: token.ILLEGAL, Literal: literal, StartPosition: start, EndPosition: l.pos}
	return tok, fmt.Errorf("illegal character %q", literal)
}

func (l *Lexer) peek() (byte, bool) {
	if l.index >= len(l.input) {
		return 0, false
	}
	return l.input[l.index], true
}

func (l *Lexer) peekAt(n int) byte {
	if l.index+n >= len(l.input) {
		return 0
	}
	return l.input[l.index+n]
}

func (l *Lexer) advance() {
	if l.index >= len(l.input) {
		return
	}
	ch := l.input[l.index]
	l.index++
	if ch == '\n' {
		l.pos = token.Position{
			Char:      l.pos.Char + 1,
			LineStart: l.pos.Char + 1,
			Line:      l.pos.Line + 1,
			Column:    0,
		}
		return
	}
	l.pos.Char++
	l.pos.Column++
}

func (l *Lexer) accept(ch byte) bool {
	got, ok := l.peek()
	if ok && got == ch {
		l.advance()
		return true
	}
	return false
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || 'a' <= ch && ch <= 'f' || 'A' <= ch && ch <= 'F'
}
