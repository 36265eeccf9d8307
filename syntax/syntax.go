// Package syntax defines the concrete-syntax view shared by the two parse
// front ends. The tree builder is written against this view alone, so the
// full-tree parser and the light token/range parser only have to agree on
// the shapes they emit for the builder outputs to be identical.
package syntax

import "github.com/decl-lang/decl/token"

// Kind classifies a concrete syntax node by shape.
type Kind string

const (
	// KindScript is the root node of a source unit. Its children are the
	// top-level statements in source order, imports included.
	KindScript Kind = "script"

	// KindImport is an import statement. Children are the dotted name parts
	// (KindIdent), with KindStar as the final part for star imports.
	KindImport Kind = "import"

	// KindStar is the "*" part of a star import.
	KindStar Kind = "star"

	// KindBadStmt covers a statement position the parser could not resolve.
	// Its span is the broadest extent that could have been a statement; its
	// single KindError child pinpoints the offending range and message.
	KindBadStmt Kind = "bad_statement"

	// KindError is the narrow error range inside a KindBadStmt node.
	KindError Kind = "error"

	// KindValDecl is an immutable local binding: children [ident, expr].
	KindValDecl Kind = "val_declaration"

	// KindVarDecl is a mutable local binding: children [ident, expr].
	KindVarDecl Kind = "var_declaration"

	// KindAssign is an assignment statement: children [lhs, rhs].
	KindAssign Kind = "assignment"

	// KindCall is a function call: children [callee, args...] where each
	// arg is one of KindPositionalArg, KindNamedArg, KindLambdaArg.
	KindCall Kind = "call"

	// KindPositionalArg wraps a positional argument expression.
	KindPositionalArg Kind = "positional_argument"

	// KindNamedArg is a named argument: children [ident, expr].
	KindNamedArg Kind = "named_argument"

	// KindLambdaArg wraps a trailing lambda: single KindBlock child.
	KindLambdaArg Kind = "lambda_argument"

	// KindBlock is a braced statement block; children are statements.
	KindBlock Kind = "block"

	// KindSelect is a dotted access: children [receiver expr, ident].
	KindSelect Kind = "select"

	// KindIdent is an identifier; Text is the name.
	KindIdent Kind = "identifier"

	// KindOperator is an operator terminal inside prefix/infix nodes.
	KindOperator Kind = "operator"

	// Literal terminals. Text is the exact source slice, quotes and
	// suffixes included.
	KindIntLit    Kind = "int_literal"
	KindStringLit Kind = "string_literal"
	KindBoolLit   Kind = "bool_literal"
	KindNullLit   Kind = "null_literal"
	KindThisLit   Kind = "this_literal"

	// Shapes the parsers recognize so the builder can classify them as
	// unsupported rather than dropping them.
	KindInfix  Kind = "infix_expression"  // children [lhs, operator, rhs]
	KindPrefix Kind = "prefix_expression" // children [operator, operand]
	KindIndex  Kind = "index_expression"  // children [receiver, index]
	KindParen  Kind = "paren_expression"  // children [inner]
)

// Node is the capability interface the tree builder consumes. Text is
// meaningful only for terminal kinds (identifier, operator, literals), where
// it is the exact source slice. Message is meaningful only for KindError
// nodes.
type Node interface {
	Kind() Kind
	Children() []Node
	Span() token.Span
	Text() string
	Message() string
}

// TreeNode is the eagerly materialized Node implementation produced by the
// full-tree parser.
type TreeNode struct {
	kind     Kind
	span     token.Span
	text     string
	message  string
	children []*TreeNode
}

// NewNode creates a composite or terminal node.
func NewNode(kind Kind, span token.Span, text string, children ...*TreeNode) *TreeNode {
	return &TreeNode{kind: kind, span: span, text: text, children: children}
}

// NewErrorNode creates a KindError node carrying a message over the
// offending range.
func NewErrorNode(span token.Span, message string) *TreeNode {
	return &TreeNode{kind: KindError, span: span, message: message}
}

func (n *TreeNode) Kind() Kind       { return n.kind }
func (n *TreeNode) Span() token.Span { return n.span }
func (n *TreeNode) Text() string     { return n.text }
func (n *TreeNode) Message() string  { return n.message }

func (n *TreeNode) Children() []Node {
	out := make([]Node, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}
