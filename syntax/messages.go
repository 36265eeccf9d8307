package syntax

import (
	"github.com/decl-lang/decl/token"
)

// Error-node message constructors shared by both front ends. Keeping the
// wording here is what lets the two parsers emit identical KindError
// payloads for the same input, which the differential tests then hold them
// to.

// MsgUnexpected describes a token that cannot start or continue a statement.
func MsgUnexpected(tok token.Token) string {
	if tok.Type == token.EOF {
		return "invalid syntax (unexpected end of input)"
	}
	return "invalid syntax (unexpected " + quote(tok.Literal) + ")"
}

// MsgExpected describes a missing token while parsing a construct.
func MsgExpected(what string, context string, got token.Token) string {
	return "expected " + what + " while parsing " + context + ", got " + describe(got)
}

// MsgTrailing describes leftover input after a complete statement.
func MsgTrailing(tok token.Token) string {
	return "unexpected " + quote(tok.Literal) + " following statement"
}

// MsgMaxDepth describes input nested past the front end's recursion limit.
func MsgMaxDepth() string {
	return "maximum nesting depth exceeded"
}

func describe(tok token.Token) string {
	switch tok.Type {
	case token.EOF:
		return "end of input"
	case token.NEWLINE:
		return "end of line"
	default:
		return quote(tok.Literal)
	}
}

func quote(s string) string {
	return "\"" + s + "\""
}
