package lang

// Visitor defines the interface for language tree traversal. If Visit
// returns nil, children of the element are not visited. Otherwise, the
// returned Visitor is used to visit children.
type Visitor interface {
	Visit(el Element) (w Visitor)
}

// Walk traverses a language tree in depth-first source order. It starts by
// calling v.Visit(el); if the returned visitor w is not nil, Walk is invoked
// recursively with w for each of the non-nil children of el.
func Walk(v Visitor, el Element) {
	if v = v.Visit(el); v == nil {
		return
	}

	switch n := el.(type) {
	case *Block:
		for _, stmt := range n.Statements {
			Walk(v, stmt)
		}
	case *Assignment:
		if n.Lhs != nil {
			Walk(v, n.Lhs)
		}
		if n.Rhs != nil {
			Walk(v, n.Rhs)
		}
	case *LocalValue:
		if n.Rhs != nil {
			Walk(v, n.Rhs)
		}
	case *FunctionCall:
		if n.Receiver != nil {
			Walk(v, n.Receiver)
		}
		for _, arg := range n.Args {
			Walk(v, arg)
		}
	case *PositionalArgument:
		if n.Value != nil {
			Walk(v, n.Value)
		}
	case *NamedArgument:
		if n.Value != nil {
			Walk(v, n.Value)
		}
	case *LambdaArgument:
		if n.Block != nil {
			Walk(v, n.Block)
		}
	case *PropertyAccess:
		if n.Receiver != nil {
			Walk(v, n.Receiver)
		}
	case *Import, *ErroneousStatement,
		*BoolLiteral, *IntLiteral, *LongLiteral, *StringLiteral,
		*Null, *This:
		// no element children
	default:
		panic("lang: Walk called with unknown element type")
	}
}
