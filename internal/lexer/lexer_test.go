package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/decl-lang/decl/token"
)

// lexAll drains the lexer, returning all tokens up to and including EOF.
func lexAll(t *testing.T, input string) []token.Token {
	t.Helper()
	l := New(input)
	var out []token.Token
	for {
		tok, _ := l.Next()
		out = append(out, tok)
		if tok.Type == token.EOF {
			return out
		}
	}
}

func TestTokenStream(t *testing.T) {
	input := `import a.b
val greeting = "hi"
include(":app", projectPath = x) { }
`
	want := []struct {
		typ token.Type
		lit string
	}{
		{token.IMPORT, "import"},
		{token.IDENT, "a"},
		{token.PERIOD, "."},
		{token.IDENT, "b"},
		{token.NEWLINE, "\n"},
		{token.VAL, "val"},
		{token.IDENT, "greeting"},
		{token.ASSIGN, "="},
		{token.STRING, `"hi"`},
		{token.NEWLINE, "\n"},
		{token.IDENT, "include"},
		{token.LPAREN, "("},
		{token.STRING, `":app"`},
		{token.COMMA, ","},
		{token.IDENT, "projectPath"},
		{token.ASSIGN, "="},
		{token.IDENT, "x"},
		{token.RPAREN, ")"},
		{token.LBRACE, "{"},
		{token.RBRACE, "}"},
		{token.NEWLINE, "\n"},
		{token.EOF, ""},
	}
	toks := lexAll(t, input)
	require.Len(t, toks, len(want))
	for i, w := range want {
		require.Equal(t, w.typ, toks[i].Type, "token %d", i)
		require.Equal(t, w.lit, toks[i].Literal, "token %d", i)
	}
}

func TestOperators(t *testing.T) {
	tests := []struct {
		input string
		want  token.Type
	}{
		{"==", token.EQ},
		{"!=", token.NOT_EQ},
		{"<=", token.LT_EQUALS},
		{">=", token.GT_EQUALS},
		{"&&", token.AND},
		{"||", token.OR},
		{"<", token.LT},
		{">", token.GT},
		{"+", token.PLUS},
		{"-", token.MINUS},
		{"*", token.ASTERISK},
		{"/", token.SLASH},
		{"%", token.MOD},
		{"!", token.BANG},
		{"[", token.LBRACKET},
		{"]", token.RBRACKET},
		{";", token.SEMICOLON},
	}
	for _, tt := range tests {
		tok, err := New(tt.input).Next()
		require.NoError(t, err, tt.input)
		require.Equal(t, tt.want, tok.Type, tt.input)
	}
}

func TestNumbers(t *testing.T) {
	toks := lexAll(t, "42 9000L")
	require.Equal(t, token.INT, toks[0].Type)
	require.Equal(t, "42", toks[0].Literal)
	require.Equal(t, token.INT, toks[1].Type)
	require.Equal(t, "9000L", toks[1].Literal)
}

func TestInvalidNumber(t *testing.T) {
	l := New("12abc")
	tok, err := l.Next()
	require.Error(t, err)
	require.Equal(t, token.ILLEGAL, tok.Type)
	require.Equal(t, "12abc", tok.Literal)
	require.Contains(t, err.Error(), "invalid number literal")

	// scanning continues past the bad token
	next, err := l.Next()
	require.NoError(t, err)
	require.Equal(t, token.EOF, next.Type)
}

func TestStrings(t *testing.T) {
	tests := []struct {
		input string
		lit   string
	}{
		{`"plain"`, `"plain"`},
		{`"a\tb"`, `"a\tb"`},
		{`"say \"hi\""`, `"say \"hi\""`},
		{`"é"`, `"é"`},
		{`""`, `""`},
	}
	for _, tt := range tests {
		tok, err := New(tt.input).Next()
		require.NoError(t, err, tt.input)
		require.Equal(t, token.STRING, tok.Type, tt.input)
		require.Equal(t, tt.lit, tok.Literal, tt.input)
	}
}

func TestStringErrors(t *testing.T) {
	tests := []struct {
		input string
		msg   string
	}{
		{`"open`, "unterminated string literal"},
		{"\"line\nbreak\"", "unterminated string literal"},
		{`"\q"`, "invalid escape sequence"},
		{`"\u12g4"`, "invalid unicode escape"},
	}
	for _, tt := range tests {
		tok, err := New(tt.input).Next()
		require.Error(t, err, tt.input)
		require.Equal(t, token.ILLEGAL, tok.Type, tt.input)
		require.Contains(t, err.Error(), tt.msg, tt.input)
	}
}

func TestIllegalCharacters(t *testing.T) {
	for _, input := range []string{"&", "|", "@", "#"} {
		tok, err := New(input).Next()
		require.Error(t, err, input)
		require.Equal(t, token.ILLEGAL, tok.Type, input)
	}
}

func TestComments(t *testing.T) {
	input := "a // trailing\n/* block\ncomment */ b /* unterminated"
	toks := lexAll(t, input)
	types := make([]token.Type, 0, len(toks))
	for _, tok := range toks {
		types = append(types, tok.Type)
	}
	require.Equal(t,
		[]token.Type{token.IDENT, token.NEWLINE, token.IDENT, token.EOF},
		types)
}

func TestPositions(t *testing.T) {
	toks := lexAll(t, "a = 1\nbb")

	a := toks[0]
	require.Equal(t, 0, a.StartPosition.Char)
	require.Equal(t, 1, a.StartPosition.LineNumber())
	require.Equal(t, 1, a.StartPosition.ColumnNumber())
	require.Equal(t, 1, a.EndPosition.Char)

	one := toks[2]
	require.Equal(t, token.INT, one.Type)
	require.Equal(t, 4, one.StartPosition.Char)
	require.Equal(t, 5, one.StartPosition.ColumnNumber())

	bb := toks[4]
	require.Equal(t, token.IDENT, bb.Type)
	require.Equal(t, 6, bb.StartPosition.Char)
	require.Equal(t, 6, bb.StartPosition.LineStart)
	require.Equal(t, 2, bb.StartPosition.LineNumber())
	require.Equal(t, 1, bb.StartPosition.ColumnNumber())
	require.Equal(t, 8, bb.EndPosition.Char)
}

func TestSetBase(t *testing.T) {
	doc := "x = 1\ny = 2"
	l := New(doc[6:])
	l.SetBase(token.Position{Char: 6, LineStart: 6, Line: 1, Column: 0})

	tok, err := l.Next()
	require.NoError(t, err)
	require.Equal(t, token.IDENT, tok.Type)
	require.Equal(t, "y", tok.Literal)
	require.Equal(t, 6, tok.StartPosition.Char)
	require.Equal(t, 2, tok.StartPosition.LineNumber())
	require.Equal(t, 1, tok.StartPosition.ColumnNumber())
}
