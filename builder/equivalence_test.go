package builder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/decl-lang/decl/lang"
	"github.com/decl-lang/decl/lightparse"
	"github.com/decl-lang/decl/parser"
	"github.com/decl-lang/decl/printer"
	"github.com/decl-lang/decl/token"
)

// equivalenceCorpus is the snippet set both front ends are held to. It mixes
// well-formed scripts, scripts full of unsupported constructs, and scripts
// with outright parse errors, since the two parse paths must agree on all
// three.
var equivalenceCorpus = []string{
	"",
	"\n\n\n",
	"// nothing but a comment\n",
	`rootProject.name = "some-project"`,
	`include(":a")`,
	`include(projectPath = ":b")`,
	"include(\":a\")\ninclude(\":b\")\ninclude(\":c\")",
	"include(\n    \":a\",\n    \":b\",\n)",
	`import a.b.c`,
	"import a.b.c\nimport d.e\nrootProject.name = \"x\"",
	"import a.*",
	"import a.*.b",
	"n = 1\nimport late.one",
	"val version = \"1.2.3\"\nval count = 42\nval big = 42L",
	"val v = true\nval w = false\nval x = null\nval y = this",
	`val s = "tab\tnewline\nunicodeA"`,
	"var mutable = 1",
	"dependencyResolutionManagement {\n    repositories {\n        mavenCentral()\n        google()\n    }\n}",
	"dependencyResolutionManagement { repositories { mavenCentral(); google() } }",
	"outer { inner { leaf() } }",
	"outer {\n    first { a = 1 }\n    second { b = 2 }\n}",
	"pluginManagement(\":x\") {\n    a = 1\n}",
	"plugins { }",
	"a = 1\nb = = 2\nc = 3",
	"plugins {\n    good()\n    = bad\n    alsoGood()\n}",
	"1 + 2",
	"x = 1 + 2 * 3",
	"x = -1\ny = !done",
	"x = (grouped)",
	"x = items[0]",
	"f() = 1",
	"f(1 + 2, ok, 3 * 4)",
	"a.b.c.d.e = f.g.h",
	"gradle.settings.configure(\":x\", enabled = true)",
	"val x =",
	"include(\":a\"",
	"plugins {\n    a = 1\n",
	`x = "unterminated`,
	"val y = 12abc",
	"x = @",
	"val v = 99999999999999999999",
	"a = 1; b = 2; c = 3",
	"deep { deep { deep { deep { leaf = 1 } } } }",
}

// TestFrontEndEquivalence runs every corpus snippet through both parse paths
// and requires byte-identical canonical output.
func TestFrontEndEquivalence(t *testing.T) {
	src := token.NewSourceID("corpus.decl")
	for _, snippet := range equivalenceCorpus {
		name := strings.ReplaceAll(snippet, "\n", "␤")
		t.Run(name, func(t *testing.T) {
			full := Build(parser.Parse(snippet), src)
			light := BuildLight(lightparse.Parse(snippet, 0), snippet, 0, src)
			require.Equal(t, printer.Print(full), printer.Print(light))
		})
	}
}

// TestOffsetBuildMatchesSuffix checks that building a document suffix through
// the light path reports positions relative to the whole document.
func TestOffsetBuildMatchesSuffix(t *testing.T) {
	document := "first = 1\nsecond = 2\nthird = 3\n"
	offset := strings.Index(document, "second")
	src := token.NewSourceID("doc.decl")

	tree := lightparse.Parse(document, offset)
	result := BuildLight(tree, document, offset, src)

	block := result.Body.(*lang.Block)
	require.Equal(t, 2, block.Span().Start.LineNumber())
	require.Equal(t, offset, block.Span().Start.Char)
	require.Len(t, block.Statements, 2)
}

func TestBuildLightRejectsOffsetMismatch(t *testing.T) {
	source := "a = 1"
	tree := lightparse.Parse(source, 0)
	require.Panics(t, func() {
		BuildLight(tree, source, 3, token.NewSourceID("x"))
	})
}
