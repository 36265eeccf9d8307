package lang

import "github.com/decl-lang/decl/token"

// PropertyAccess reads a named property, optionally from a receiver
// expression. A nil receiver means the name is resolved against the
// enclosing scope by the evaluator.
type PropertyAccess struct {
	Src      token.Span
	Receiver Expr // nil for a bare name
	Name     string
}

func (x *PropertyAccess) elementNode() {}
func (x *PropertyAccess) exprNode()    {}
func (x *PropertyAccess) resultNode()  {}

func (x *PropertyAccess) Span() token.Span { return x.Src }

// FunctionCall invokes a named function, optionally on a receiver, with an
// ordered argument list. A trailing lambda appears as the final argument.
// Calls are valid both as statements and as embedded expressions.
type FunctionCall struct {
	Src      token.Span
	Receiver Expr // nil for a bare call
	Name     string
	Args     []Argument
}

func (x *FunctionCall) elementNode() {}
func (x *FunctionCall) stmtNode()    {}
func (x *FunctionCall) exprNode()    {}
func (x *FunctionCall) resultNode()  {}

func (x *FunctionCall) Span() token.Span { return x.Src }

// Argument is one argument of a function call.
type Argument interface {
	Element
	argNode()
}

// PositionalArgument is an argument identified by position.
type PositionalArgument struct {
	Src   token.Span
	Value Expr
}

func (x *PositionalArgument) elementNode() {}
func (x *PositionalArgument) argNode()     {}
func (x *PositionalArgument) resultNode()  {}

func (x *PositionalArgument) Span() token.Span { return x.Src }

// NamedArgument is an argument identified by parameter name.
type NamedArgument struct {
	Src   token.Span
	Name  string
	Value Expr
}

func (x *NamedArgument) elementNode() {}
func (x *NamedArgument) argNode()     {}
func (x *NamedArgument) resultNode()  {}

func (x *NamedArgument) Span() token.Span { return x.Src }

// LambdaArgument is a trailing block argument.
type LambdaArgument struct {
	Src   token.Span
	Block *Block
}

func (x *LambdaArgument) elementNode() {}
func (x *LambdaArgument) argNode()     {}
func (x *LambdaArgument) resultNode()  {}

func (x *LambdaArgument) Span() token.Span { return x.Src }

// This refers to the receiver of the enclosing lambda.
type This struct {
	Src token.Span
}

func (x *This) elementNode() {}
func (x *This) exprNode()    {}
func (x *This) resultNode()  {}

func (x *This) Span() token.Span { return x.Src }

// Null is the null literal.
type Null struct {
	Src token.Span
}

func (x *Null) elementNode() {}
func (x *Null) exprNode()    {}
func (x *Null) resultNode()  {}

func (x *Null) Span() token.Span { return x.Src }
