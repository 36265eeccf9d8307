package lang

import "github.com/decl-lang/decl/token"

// Assignment sets a property to the value of an expression. The left-hand
// side is always a property access; a bare identifier on the left resolves
// to a receiver-less access.
type Assignment struct {
	Src token.Span
	Lhs *PropertyAccess
	Rhs Expr
}

func (x *Assignment) elementNode() {}
func (x *Assignment) stmtNode()    {}
func (x *Assignment) resultNode()  {}

func (x *Assignment) Span() token.Span { return x.Src }

// LocalValue introduces an immutable local binding. No scope tracking
// happens at this layer; that is left to the evaluator.
type LocalValue struct {
	Src  token.Span
	Name string
	Rhs  Expr
}

func (x *LocalValue) elementNode() {}
func (x *LocalValue) stmtNode()    {}
func (x *LocalValue) resultNode()  {}

func (x *LocalValue) Span() token.Span { return x.Src }

// Import names an imported member by its dotted path parts.
type Import struct {
	Src       token.Span
	NameParts []string
}

func (x *Import) elementNode() {}
func (x *Import) resultNode()  {}

func (x *Import) Span() token.Span { return x.Src }

// ErroneousStatement is a statement position that failed to resolve. It is
// itself a valid tree node, so the surrounding block stays structurally
// well-formed regardless of how many of its statements failed.
type ErroneousStatement struct {
	Failure Failure
}

func (x *ErroneousStatement) elementNode() {}
func (x *ErroneousStatement) stmtNode()    {}
func (x *ErroneousStatement) resultNode()  {}

func (x *ErroneousStatement) Span() token.Span { return x.Failure.PotentialSpan() }
