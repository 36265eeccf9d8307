package syntax

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/decl-lang/decl/token"
)

func TestTreeNode(t *testing.T) {
	span := token.NewSpan(token.Position{Char: 0}, token.Position{Char: 3})
	leaf := NewNode(KindIdent, span, "abc")
	require.Equal(t, KindIdent, leaf.Kind())
	require.Equal(t, "abc", leaf.Text())
	require.Empty(t, leaf.Children())
	require.Equal(t, "", leaf.Message())

	parent := NewNode(KindScript, span, "", leaf)
	require.Len(t, parent.Children(), 1)
	require.Equal(t, KindIdent, parent.Children()[0].Kind())
}

func TestErrorNode(t *testing.T) {
	span := token.NewSpan(token.Position{Char: 2}, token.Position{Char: 3})
	n := NewErrorNode(span, "boom")
	require.Equal(t, KindError, n.Kind())
	require.Equal(t, "boom", n.Message())
	require.Equal(t, span, n.Span())
}

func TestMessages(t *testing.T) {
	eof := token.Token{Type: token.EOF}
	eol := token.Token{Type: token.NEWLINE, Literal: "\n"}
	plus := token.Token{Type: token.PLUS, Literal: "+"}

	require.Equal(t, "invalid syntax (unexpected end of input)", MsgUnexpected(eof))
	require.Equal(t, `invalid syntax (unexpected "+")`, MsgUnexpected(plus))

	require.Equal(t,
		`expected identifier while parsing import statement, got end of input`,
		MsgExpected("identifier", "import statement", eof))
	require.Equal(t,
		`expected "=" while parsing val declaration, got end of line`,
		MsgExpected(`"="`, "val declaration", eol))
	require.Equal(t,
		`expected "}" while parsing block, got "+"`,
		MsgExpected(`"}"`, "block", plus))

	require.Equal(t, `unexpected "+" following statement`, MsgTrailing(plus))
	require.Equal(t, "maximum nesting depth exceeded", MsgMaxDepth())
}
