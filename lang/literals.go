package lang

import "github.com/decl-lang/decl/token"

// BoolLiteral holds a boolean literal.
type BoolLiteral struct {
	Src   token.Span
	Value bool
}

func (x *BoolLiteral) elementNode() {}
func (x *BoolLiteral) exprNode()    {}
func (x *BoolLiteral) resultNode()  {}

func (x *BoolLiteral) Span() token.Span { return x.Src }

// IntLiteral holds an integer literal without a width suffix.
type IntLiteral struct {
	Src   token.Span
	Value int64
}

func (x *IntLiteral) elementNode() {}
func (x *IntLiteral) exprNode()    {}
func (x *IntLiteral) resultNode()  {}

func (x *IntLiteral) Span() token.Span { return x.Src }

// LongLiteral holds an integer literal written with the "L" suffix.
type LongLiteral struct {
	Src   token.Span
	Value int64
}

func (x *LongLiteral) elementNode() {}
func (x *LongLiteral) exprNode()    {}
func (x *LongLiteral) resultNode()  {}

func (x *LongLiteral) Span() token.Span { return x.Src }

// StringLiteral holds a string literal. Value is the decoded text, with
// escape sequences resolved.
type StringLiteral struct {
	Src   token.Span
	Value string
}

func (x *StringLiteral) elementNode() {}
func (x *StringLiteral) exprNode()    {}
func (x *StringLiteral) resultNode()  {}

func (x *StringLiteral) Span() token.Span { return x.Src }
