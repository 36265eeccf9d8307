package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupIdentifier(t *testing.T) {
	tests := []struct {
		input string
		want  Type
	}{
		{"import", IMPORT},
		{"val", VAL},
		{"var", VAR},
		{"true", TRUE},
		{"false", FALSE},
		{"null", NULL},
		{"this", THIS},
		{"include", IDENT},
		{"Import", IDENT},
		{"", IDENT},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, LookupIdentifier(tt.input), tt.input)
	}
}

func TestPositionNumbers(t *testing.T) {
	p := Position{Char: 10, LineStart: 6, Line: 2, Column: 4}
	require.Equal(t, 3, p.LineNumber())
	require.Equal(t, 5, p.ColumnNumber())
}

func TestPositionAdvance(t *testing.T) {
	p := Position{Char: 10, LineStart: 6, Line: 2, Column: 4}
	q := p.Advance(3)
	require.Equal(t, 13, q.Char)
	require.Equal(t, 6, q.LineStart)
	require.Equal(t, 2, q.Line)
	require.Equal(t, 7, q.Column)
}

func TestNoPos(t *testing.T) {
	require.Equal(t, Position{}, NoPos)
	require.Equal(t, 0, NewSpan(NoPos, NoPos).Len())
	require.Equal(t, "1:1..1:1", NewSpan(NoPos, NoPos).String())
}

func TestSpanString(t *testing.T) {
	span := NewSpan(
		Position{Char: 0, Line: 0, Column: 0},
		Position{Char: 17, LineStart: 6, Line: 2, Column: 11},
	)
	require.Equal(t, "1:1..3:12", span.String())
}

func TestSpanUnion(t *testing.T) {
	a := NewSpan(Position{Char: 4, Column: 4}, Position{Char: 9, Column: 9})
	b := NewSpan(Position{Char: 0, Column: 0}, Position{Char: 6, Column: 6})
	u := a.Union(b)
	require.Equal(t, 0, u.Start.Char)
	require.Equal(t, 9, u.End.Char)
	require.Equal(t, 9, u.Len())

	// union with a contained span is a no-op
	c := NewSpan(Position{Char: 5, Column: 5}, Position{Char: 7, Column: 7})
	require.Equal(t, u, u.Union(c))
}

func TestTokenSpan(t *testing.T) {
	tok := Token{
		Type:          IDENT,
		Literal:       "abc",
		StartPosition: Position{Char: 2, Column: 2},
		EndPosition:   Position{Char: 5, Column: 5},
	}
	require.Equal(t, 3, tok.Span().Len())
	require.Equal(t, "1:3..1:6", tok.Span().String())
}
