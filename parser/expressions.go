package parser

import (
	"github.com/decl-lang/decl/syntax"
	"github.com/decl-lang/decl/token"
)

// Operator precedence levels, lowest first.
const (
	lowest = iota
	logicalOr
	logicalAnd
	equality
	comparison
	additive
	multiplicative
	prefix
)

var precedences = map[token.Type]int{
	token.OR:        logicalOr,
	token.AND:       logicalAnd,
	token.EQ:        equality,
	token.NOT_EQ:    equality,
	token.LT:        comparison,
	token.LT_EQUALS: comparison,
	token.GT:        comparison,
	token.GT_EQUALS: comparison,
	token.PLUS:      additive,
	token.MINUS:     additive,
	token.ASTERISK:  multiplicative,
	token.SLASH:     multiplicative,
	token.MOD:       multiplicative,
}

func precedenceOf(t token.Type) int {
	if p, ok := precedences[t]; ok {
		return p
	}
	return lowest
}

// parseExpression parses an expression whose binary operators bind tighter
// than the given precedence. On entry the current token is the first token
// of the expression; on return it is the last.
func (p *Parser) parseExpression(precedence int) *syntax.TreeNode {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.maxDepth {
		p.setErr(syntax.MsgMaxDepth(), p.curToken.Span())
		return nil
	}

	left := p.parsePrimary()
	for left != nil && !p.failed {
		switch {
		case p.peekTokenIs(token.PERIOD):
			left = p.parseSelect(left)
		case p.peekTokenIs(token.LPAREN):
			left = p.parseCall(left)
		case p.peekTokenIs(token.LBRACKET):
			left = p.parseIndex(left)
		case p.peekTokenIs(token.LBRACE) && canTakeLambda(left):
			left = p.parseBareLambdaCall(left)
		default:
			opPrec := precedenceOf(p.peekToken.Type)
			if opPrec == lowest || opPrec <= precedence {
				return left
			}
			left = p.parseInfix(left)
		}
	}
	return left
}

func (p *Parser) parsePrimary() *syntax.TreeNode {
	switch p.curToken.Type {
	case token.IDENT:
		return p.identNode()
	case token.INT:
		return syntax.NewNode(syntax.KindIntLit, p.curToken.Span(), p.curToken.Literal)
	case token.STRING:
		return syntax.NewNode(syntax.KindStringLit, p.curToken.Span(), p.curToken.Literal)
	case token.TRUE, token.FALSE:
		return syntax.NewNode(syntax.KindBoolLit, p.curToken.Span(), p.curToken.Literal)
	case token.NULL:
		return syntax.NewNode(syntax.KindNullLit, p.curToken.Span(), p.curToken.Literal)
	case token.THIS:
		return syntax.NewNode(syntax.KindThisLit, p.curToken.Span(), p.curToken.Literal)
	case token.MINUS, token.BANG:
		return p.parsePrefix()
	case token.LPAREN:
		return p.parseGrouped()
	case token.ILLEGAL:
		msg := "illegal token"
		if p.curErr != nil {
			msg = p.curErr.Error()
		}
		p.setErr(msg, p.curToken.Span())
		return nil
	default:
		p.setErr(syntax.MsgUnexpected(p.curToken), p.curToken.Span())
		return nil
	}
}

func (p *Parser) parsePrefix() *syntax.TreeNode {
	op := syntax.NewNode(syntax.KindOperator, p.curToken.Span(), p.curToken.Literal)
	p.next()
	operand := p.parseExpression(prefix)
	if operand == nil {
		return nil
	}
	span := token.NewSpan(op.Span().Start, operand.Span().End)
	return syntax.NewNode(syntax.KindPrefix, span, "", op, operand)
}

func (p *Parser) parseGrouped() *syntax.TreeNode {
	lparen := p.curToken
	p.nextMeaningful()
	inner := p.parseExpression(lowest)
	if inner == nil {
		return nil
	}
	p.nextMeaningful()
	if !p.curTokenIs(token.RPAREN) {
		p.setErr(syntax.MsgExpected("\")\"", "grouped expression", p.curToken), p.curToken.Span())
		return nil
	}
	span := token.NewSpan(lparen.StartPosition, p.curToken.EndPosition)
	return syntax.NewNode(syntax.KindParen, span, "", inner)
}

func (p *Parser) parseSelect(left *syntax.TreeNode) *syntax.TreeNode {
	p.next() // "."
	p.next() // attribute name
	if !p.curTokenIs(token.IDENT) {
		p.setErr(syntax.MsgExpected("identifier", "property access", p.curToken), p.curToken.Span())
		return nil
	}
	name := p.identNode()
	span := token.NewSpan(left.Span().Start, name.Span().End)
	return syntax.NewNode(syntax.KindSelect, span, "", left, name)
}

func (p *Parser) parseInfix(left *syntax.TreeNode) *syntax.TreeNode {
	p.next() // operator
	op := syntax.NewNode(syntax.KindOperator, p.curToken.Span(), p.curToken.Literal)
	opPrec := precedenceOf(p.curToken.Type)
	p.nextMeaningful() // a trailing operator continues the expression
	right := p.parseExpression(opPrec)
	if right == nil {
		return nil
	}
	span := token.NewSpan(left.Span().Start, right.Span().End)
	return syntax.NewNode(syntax.KindInfix, span, "", left, op, right)
}

func (p *Parser) parseIndex(left *syntax.TreeNode) *syntax.TreeNode {
	p.next() // "["
	p.nextMeaningful()
	index := p.parseExpression(lowest)
	if index == nil {
		return nil
	}
	p.nextMeaningful()
	if !p.curTokenIs(token.RBRACKET) {
		p.setErr(syntax.MsgExpected("\"]\"", "index expression", p.curToken), p.curToken.Span())
		return nil
	}
	span := token.NewSpan(left.Span().Start, p.curToken.EndPosition)
	return syntax.NewNode(syntax.KindIndex, span, "", left, index)
}

// parseCall parses "(args)" applied to the callee, plus a trailing lambda
// if one follows the closing parenthesis on the same line.
func (p *Parser) parseCall(callee *syntax.TreeNode) *syntax.TreeNode {
	p.next() // "("
	children := []*syntax.TreeNode{callee}
	p.nextMeaningful()
	for !p.curTokenIs(token.RPAREN) {
		if p.curTokenIs(token.EOF) {
			p.setErr(syntax.MsgExpected("\")\"", "argument list", p.curToken), p.curToken.Span())
			return nil
		}
		arg := p.parseArgument()
		if arg == nil {
			return nil
		}
		children = append(children, arg)
		p.nextMeaningful()
		if p.curTokenIs(token.COMMA) {
			p.nextMeaningful()
			continue
		}
		if !p.curTokenIs(token.RPAREN) {
			p.setErr(syntax.MsgExpected("\",\" or \")\"", "argument list", p.curToken), p.curToken.Span())
			return nil
		}
	}
	end := p.curToken.EndPosition
	if p.peekTokenIs(token.LBRACE) {
		lambda := p.parseLambdaArg()
		if lambda == nil {
			return nil
		}
		children = append(children, lambda)
		end = lambda.Span().End
	}
	span := token.NewSpan(callee.Span().Start, end)
	return syntax.NewNode(syntax.KindCall, span, "", children...)
}

// parseBareLambdaCall turns "name { ... }" into a call with a single lambda
// argument.
func (p *Parser) parseBareLambdaCall(callee *syntax.TreeNode) *syntax.TreeNode {
	lambda := p.parseLambdaArg()
	if lambda == nil {
		return nil
	}
	span := token.NewSpan(callee.Span().Start, lambda.Span().End)
	return syntax.NewNode(syntax.KindCall, span, "", callee, lambda)
}

func (p *Parser) parseLambdaArg() *syntax.TreeNode {
	p.next() // "{"
	block := p.parseBlock()
	if block == nil {
		return nil
	}
	return syntax.NewNode(syntax.KindLambdaArg, block.Span(), "", block)
}

func (p *Parser) parseArgument() *syntax.TreeNode {
	if p.curTokenIs(token.IDENT) && p.peekTokenIs(token.ASSIGN) {
		name := p.identNode()
		p.next()           // "="
		p.nextMeaningful() // start of the value
		value := p.parseExpression(lowest)
		if value == nil {
			return nil
		}
		span := token.NewSpan(name.Span().Start, value.Span().End)
		return syntax.NewNode(syntax.KindNamedArg, span, "", name, value)
	}
	value := p.parseExpression(lowest)
	if value == nil {
		return nil
	}
	return syntax.NewNode(syntax.KindPositionalArg, value.Span(), "", value)
}

// canTakeLambda reports whether a trailing block can attach to the
// expression as a zero-parenthesis call.
func canTakeLambda(n *syntax.TreeNode) bool {
	switch n.Kind() {
	case syntax.KindIdent, syntax.KindSelect:
		return true
	}
	return false
}
