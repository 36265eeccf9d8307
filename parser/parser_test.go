package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/decl-lang/decl/syntax"
)

// parseScript parses the input and requires a script root.
func parseScript(t *testing.T, input string, options ...Option) syntax.Node {
	t.Helper()
	root := Parse(input, options...)
	require.Equal(t, syntax.KindScript, root.Kind())
	return root
}

// kindsOf maps nodes to their kinds for compact assertions.
func kindsOf(nodes []syntax.Node) []syntax.Kind {
	out := make([]syntax.Kind, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Kind())
	}
	return out
}

func TestEmptyInput(t *testing.T) {
	for _, input := range []string{"", "\n\n", "  \t\n", "// comment only\n", ";\n;"} {
		root := parseScript(t, input)
		require.Empty(t, root.Children(), "input %q", input)
	}
}

func TestStatementKinds(t *testing.T) {
	tests := []struct {
		input string
		want  syntax.Kind
	}{
		{`rootProject.name = "demo"`, syntax.KindAssign},
		{`include(":a")`, syntax.KindCall},
		{`val x = 1`, syntax.KindValDecl},
		{`var x = 1`, syntax.KindVarDecl},
		{`import a.b.c`, syntax.KindImport},
		{`plugins { }`, syntax.KindCall},
		{`42`, syntax.KindIntLit},
		{`a.b.c`, syntax.KindSelect},
		{`1 + 2`, syntax.KindInfix},
		{`-1`, syntax.KindPrefix},
		{`a[0]`, syntax.KindIndex},
		{`(1)`, syntax.KindParen},
		{`this`, syntax.KindThisLit},
		{`null`, syntax.KindNullLit},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			root := parseScript(t, tt.input)
			require.Len(t, root.Children(), 1)
			require.Equal(t, tt.want, root.Children()[0].Kind())
		})
	}
}

func TestAssignmentShape(t *testing.T) {
	root := parseScript(t, `rootProject.name = "demo"`)
	stmt := root.Children()[0]
	require.Equal(t, syntax.KindAssign, stmt.Kind())

	lhs, rhs := stmt.Children()[0], stmt.Children()[1]
	require.Equal(t, syntax.KindSelect, lhs.Kind())
	require.Equal(t, syntax.KindIdent, lhs.Children()[0].Kind())
	require.Equal(t, "rootProject", lhs.Children()[0].Text())
	require.Equal(t, "name", lhs.Children()[1].Text())
	require.Equal(t, syntax.KindStringLit, rhs.Kind())
	require.Equal(t, `"demo"`, rhs.Text())
}

func TestCallArguments(t *testing.T) {
	root := parseScript(t, `include(":a", projectPath = ":b")`)
	call := root.Children()[0]
	require.Equal(t, syntax.KindCall, call.Kind())

	kids := call.Children()
	require.Equal(t,
		[]syntax.Kind{syntax.KindIdent, syntax.KindPositionalArg, syntax.KindNamedArg},
		kindsOf(kids))
	require.Equal(t, "include", kids[0].Text())

	named := kids[2]
	require.Equal(t, "projectPath", named.Children()[0].Text())
	require.Equal(t, syntax.KindStringLit, named.Children()[1].Kind())
}

func TestCallNewlinesInsideParens(t *testing.T) {
	root := parseScript(t, "include(\n    \":a\",\n    \":b\",\n)")
	call := root.Children()[0]
	require.Equal(t, syntax.KindCall, call.Kind())
	require.Len(t, call.Children(), 3) // callee + two args, trailing comma ok
}

func TestTrailingLambda(t *testing.T) {
	root := parseScript(t, "pluginManagement(\":x\") {\n    a = 1\n}")
	call := root.Children()[0]
	require.Equal(t, syntax.KindCall, call.Kind())

	kids := call.Children()
	require.Equal(t,
		[]syntax.Kind{syntax.KindIdent, syntax.KindPositionalArg, syntax.KindLambdaArg},
		kindsOf(kids))
	block := kids[2].Children()[0]
	require.Equal(t, syntax.KindBlock, block.Kind())
	require.Len(t, block.Children(), 1)
}

func TestNestedBareLambdaCalls(t *testing.T) {
	input := `dependencyResolutionManagement {
    repositories {
        mavenCentral()
    }
}`
	root := parseScript(t, input)
	require.Len(t, root.Children(), 1)

	outer := root.Children()[0]
	require.Equal(t, syntax.KindCall, outer.Kind())
	require.Equal(t, "dependencyResolutionManagement", outer.Children()[0].Text())

	outerBlock := outer.Children()[1].Children()[0]
	require.Equal(t, syntax.KindBlock, outerBlock.Kind())
	require.Len(t, outerBlock.Children(), 1)

	inner := outerBlock.Children()[0]
	require.Equal(t, syntax.KindCall, inner.Kind())
	require.Equal(t, "repositories", inner.Children()[0].Text())

	innerBlock := inner.Children()[1].Children()[0]
	leaf := innerBlock.Children()[0]
	require.Equal(t, syntax.KindCall, leaf.Kind())
	require.Equal(t, "mavenCentral", leaf.Children()[0].Text())
	require.Len(t, leaf.Children(), 1) // no arguments
}

func TestNestedBlocksCloseAtTheirOwnBrace(t *testing.T) {
	// the inner lambda's "}" must not be mistaken for the outer block's
	// closer, and the outer "}" must not leak out as a spurious statement
	input := "outer { inner { leaf() } }"
	root := parseScript(t, input)
	require.Len(t, root.Children(), 1)

	call := root.Children()[0]
	require.Equal(t, syntax.KindCall, call.Kind())

	outerBlock := call.Children()[1].Children()[0]
	require.Equal(t, syntax.KindBlock, outerBlock.Kind())
	require.Equal(t, len(input), outerBlock.Span().End.Char)
	require.Len(t, outerBlock.Children(), 1)

	inner := outerBlock.Children()[0]
	require.Equal(t, syntax.KindCall, inner.Kind())
	innerBlock := inner.Children()[1].Children()[0]
	require.Equal(t, len(input)-2, innerBlock.Span().End.Char)
}

func TestBlockWithConsecutiveLambdaStatements(t *testing.T) {
	input := "outer {\n    first { a = 1 }\n    second { b = 2 }\n}"
	root := parseScript(t, input)
	require.Len(t, root.Children(), 1)

	block := root.Children()[0].Children()[1].Children()[0]
	require.Equal(t,
		[]syntax.Kind{syntax.KindCall, syntax.KindCall},
		kindsOf(block.Children()))
	require.Equal(t, len(input), block.Span().End.Char)
}

func TestImportPaths(t *testing.T) {
	root := parseScript(t, "import a.b.c\nimport x")
	imports := root.Children()
	require.Equal(t, []syntax.Kind{syntax.KindImport, syntax.KindImport}, kindsOf(imports))
	require.Equal(t,
		[]syntax.Kind{syntax.KindIdent, syntax.KindIdent, syntax.KindIdent},
		kindsOf(imports[0].Children()))
	require.Equal(t, "c", imports[0].Children()[2].Text())
}

func TestStarImport(t *testing.T) {
	root := parseScript(t, "import a.b.*")
	imp := root.Children()[0]
	require.Equal(t, syntax.KindImport, imp.Kind())
	parts := imp.Children()
	require.Equal(t, syntax.KindStar, parts[2].Kind())

	// a star must end the path
	root = parseScript(t, "import a.*.b")
	require.Equal(t, syntax.KindBadStmt, root.Children()[0].Kind())
}

func TestSemicolonSeparators(t *testing.T) {
	root := parseScript(t, "a = 1; b = 2")
	require.Equal(t,
		[]syntax.Kind{syntax.KindAssign, syntax.KindAssign},
		kindsOf(root.Children()))
}

func TestRecoveryKeepsNeighbors(t *testing.T) {
	input := "a = 1\nb = = 2\nc = 3"
	root := parseScript(t, input)
	stmts := root.Children()
	require.Equal(t,
		[]syntax.Kind{syntax.KindAssign, syntax.KindBadStmt, syntax.KindAssign},
		kindsOf(stmts))

	bad := stmts[1]
	require.Len(t, bad.Children(), 1)
	errNode := bad.Children()[0]
	require.Equal(t, syntax.KindError, errNode.Kind())
	require.Equal(t, `invalid syntax (unexpected "=")`, errNode.Message())

	// the bad statement covers the text it would have occupied
	require.Equal(t, 2, bad.Span().Start.LineNumber())
	require.Equal(t, 1, bad.Span().Start.ColumnNumber())
	require.GreaterOrEqual(t, bad.Span().Len(), len("b = = 2"))
}

func TestRecoveryInsideBlockIsLocal(t *testing.T) {
	input := "plugins {\n    good()\n    = bad\n    alsoGood()\n}"
	root := parseScript(t, input)
	require.Len(t, root.Children(), 1)

	call := root.Children()[0]
	require.Equal(t, syntax.KindCall, call.Kind())
	block := call.Children()[1].Children()[0]
	require.Equal(t,
		[]syntax.Kind{syntax.KindCall, syntax.KindBadStmt, syntax.KindCall},
		kindsOf(block.Children()))
}

func TestTrailingTokensFailTheStatement(t *testing.T) {
	for _, input := range []string{"a = 1 2", "import a b", "val x = 1 )"} {
		root := parseScript(t, input)
		require.Len(t, root.Children(), 1, "input %q", input)
		bad := root.Children()[0]
		require.Equal(t, syntax.KindBadStmt, bad.Kind(), "input %q", input)
		require.Contains(t, bad.Children()[0].Message(), "following statement", "input %q", input)
	}
}

func TestUnterminatedConstructs(t *testing.T) {
	tests := []struct {
		input string
		msg   string
	}{
		{"include(\":a\"", `expected "," or ")" while parsing argument list`},
		{"plugins {\n    a = 1\n", `expected "}" while parsing block`},
		{"val x =", "invalid syntax (unexpected end of input)"},
		{"import", "expected identifier while parsing import statement"},
		{`x = "open`, "unterminated string literal"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			root := parseScript(t, tt.input)
			require.Len(t, root.Children(), 1)
			bad := root.Children()[0]
			require.Equal(t, syntax.KindBadStmt, bad.Kind())
			require.Contains(t, bad.Children()[0].Message(), tt.msg)
		})
	}
}

func TestMaxDepth(t *testing.T) {
	root := parseScript(t, "--------1", WithMaxDepth(3))
	require.Len(t, root.Children(), 1)
	bad := root.Children()[0]
	require.Equal(t, syntax.KindBadStmt, bad.Kind())
	require.Equal(t, "maximum nesting depth exceeded", bad.Children()[0].Message())

	// the same input parses fine at the default depth
	root = parseScript(t, "--------1")
	require.Equal(t, syntax.KindPrefix, root.Children()[0].Kind())
}

func TestScriptSpan(t *testing.T) {
	root := parseScript(t, "a = 1\nb = 2\n")
	require.Equal(t, 1, root.Span().Start.LineNumber())
	require.Equal(t, 1, root.Span().Start.ColumnNumber())
	require.Equal(t, 3, root.Span().End.LineNumber())
}
