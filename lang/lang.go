// Package lang defines the language tree: the validated, source-annotated
// intermediate representation produced by the tree builder and consumed by
// downstream evaluation and tooling.
//
// The node hierarchy is a closed set of variants. Every traversal site
// (builder, printer, walker) switches exhaustively over the set and treats
// an unknown variant as a programming error, so no case is silently ignored.
package lang

import "github.com/decl-lang/decl/token"

// Element represents a node of the language tree. Every element owns exactly
// one source span; children are owned by their parent, forming a tree rooted
// at a Block per source unit.
type Element interface {
	// Span returns the source range the element was built from.
	Span() token.Span

	elementNode()
}

// Stmt is an element that can appear directly in a block.
type Stmt interface {
	Element
	stmtNode()
}

// Expr is an element that evaluates to a value and can be embedded in other
// elements.
type Expr interface {
	Element
	exprNode()
}

// Result is either an Element (success) or a Failure. Failures are data, not
// control flow: they appear in place of the element that could not be built
// and never interrupt construction of sibling results.
type Result interface {
	resultNode()
}

// Failure is a Result describing why an element could not be built. It
// carries two spans: the broadest extent that could have been a valid
// element, and the narrower extent actually implicated.
type Failure interface {
	Result

	// PotentialSpan is the extent of the would-be element.
	PotentialSpan() token.Span

	// ErroneousSpan is the minimal extent implicated in the failure.
	ErroneousSpan() token.Span

	failureNode()
}

// Block is an ordered sequence of statements. Blocks are the recovery
// boundary: a failing statement stays in place as an ErroneousStatement and
// its siblings are unaffected.
type Block struct {
	Src        token.Span
	Statements []Stmt
}

func (x *Block) elementNode() {}
func (x *Block) resultNode()  {}

func (x *Block) Span() token.Span { return x.Src }

// TreeResult is the per-source-unit output of the tree builder: the ordered
// import results followed by the top-level body. It is immutable once built.
type TreeResult struct {
	Source  token.SourceID
	Imports []Result
	Body    Result
}

// Failures returns every failure in the result in source order, descending
// into nested blocks and flattening MultipleFailures into its members.
func (r *TreeResult) Failures() []Failure {
	var out []Failure
	for _, imp := range r.Imports {
		out = appendResultFailures(out, imp)
	}
	out = appendResultFailures(out, r.Body)
	return out
}

func appendResultFailures(out []Failure, res Result) []Failure {
	switch v := res.(type) {
	case Failure:
		return appendLeafFailures(out, v)
	case Element:
		c := failureCollector{failures: out}
		Walk(&c, v)
		return c.failures
	}
	return out
}

func appendLeafFailures(out []Failure, f Failure) []Failure {
	if multi, ok := f.(*MultipleFailures); ok {
		for _, member := range multi.Failures {
			out = appendLeafFailures(out, member)
		}
		return out
	}
	return append(out, f)
}

type failureCollector struct {
	failures []Failure
}

func (c *failureCollector) Visit(el Element) Visitor {
	if bad, ok := el.(*ErroneousStatement); ok {
		c.failures = appendLeafFailures(c.failures, bad.Failure)
	}
	return c
}
