package lightparse

import (
	"github.com/decl-lang/decl/internal/lexer"
	"github.com/decl-lang/decl/syntax"
	"github.com/decl-lang/decl/token"
)

// DefaultMaxDepth is the default maximum nesting depth for parsing.
const DefaultMaxDepth = 500

var statementTerminators = map[token.Type]bool{
	token.SEMICOLON: true,
	token.NEWLINE:   true,
	token.RBRACE:    true,
	token.EOF:       true,
}

// Option is a configuration function for the light parser.
type Option func(*parser)

// WithMaxDepth sets the maximum nesting depth for the parser.
func WithMaxDepth(depth int) Option {
	return func(p *parser) {
		p.maxDepth = depth
	}
}

// Parse parses the fragment of source starting at offset and returns the
// flat tree. All spans in the tree are absolute within source. Like the
// full-tree front end, the light parser never aborts: malformed statements
// become bad-statement nodes.
func Parse(source string, offset int, options ...Option) *Tree {
	if offset < 0 {
		offset = 0
	}
	if offset > len(source) {
		offset = len(source)
	}
	l := lexer.New(source[offset:])
	l.SetBase(basePosition(source, offset))
	p := &parser{
		l:        l,
		maxDepth: DefaultMaxDepth,
		tree:     &Tree{offset: offset},
	}
	for _, opt := range options {
		opt(p)
	}
	p.next()
	p.next()
	p.parseScript()
	return p.tree
}

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

type parser struct {
	l *lexer.Lexer

	prevToken token.Token
	curToken  token.Token
	peekToken token.Token
	curErr    error
	peekErr   error

	failed  bool
	errMsg  string
	errSpan token.Span

	depth    int
	maxDepth int

	tree *Tree
}

func (p *parser) parseScript() {
	var stmts []int32
	for {
		p.skipSeparators()
		if p.curTokenIs(token.EOF) {
			break
		}
		stmt, _ := p.parseStatementOrRecover()
		stmts = append(stmts, stmt)
		p.next()
	}
	eof := p.curToken.StartPosition
	start := eof
	if len(stmts) > 0 {
		start = p.tree.nodes[stmts[0]].span.Start
	}
	p.tree.root = p.tree.add(kindScript, token.NewSpan(start, eof), stmts...)
}

// parseStatementOrRecover parses one statement, recovering to the next
// statement boundary on failure; recovered reports that path. After recovery
// the current token is the boundary token itself, whereas a successful
// statement leaves the current token on its own last token.
func (p *parser) parseStatementOrRecover() (stmt int32, recovered bool) {
	start := p.curToken
	stmt = p.parseStatement()
	if stmt != none && !statementTerminators[p.peekToken.Type] {
		p.setErr(syntax.MsgTrailing(p.peekToken), p.peekToken.Span())
		stmt = none
	}
	if stmt == none {
		return p.recover(start), true
	}
	return stmt, false
}

func (p *parser) parseStatement() int32 {
	switch p.curToken.Type {
	case token.IMPORT:
		return p.parseImport()
	case token.VAL:
		return p.parseDeclaration(kindValDecl)
	case token.VAR:
		return p.parseDeclaration(kindVarDecl)
	default:
		expr := p.parseExpression(lowest)
		if expr == none {
			return none
		}
		if p.peekTokenIs(token.ASSIGN) {
			return p.parseAssignment(expr)
		}
		return expr
	}
}

func (p *parser) parseAssignment(lhs int32) int32 {
	p.next()           // "="
	p.nextMeaningful() // start of the value
	rhs := p.parseExpression(lowest)
	if rhs == none {
		return none
	}
	span := token.NewSpan(p.spanOf(lhs).Start, p.spanOf(rhs).End)
	return p.tree.add(kindAssign, span, lhs, rhs)
}

func (p *parser) parseImport() int32 {
	start := p.curToken
	p.next()
	if !p.curTokenIs(token.IDENT) {
		p.setErr(syntax.MsgExpected("identifier", "import statement", p.curToken), p.curToken.Span())
		return none
	}
	parts := []int32{p.identNode()}
	for p.peekTokenIs(token.PERIOD) {
		p.next() // "."
		p.next() // name part
		switch {
		case p.curTokenIs(token.IDENT):
			parts = append(parts, p.identNode())
		case p.curTokenIs(token.ASTERISK):
			parts = append(parts, p.tree.add(kindStar, p.curToken.Span()))
			span := token.NewSpan(start.StartPosition, p.curToken.EndPosition)
			return p.tree.add(kindImport, span, parts...)
		default:
			p.setErr(syntax.MsgExpected("identifier", "import statement", p.curToken), p.curToken.Span())
			return none
		}
	}
	span := token.NewSpan(start.StartPosition, p.curToken.EndPosition)
	return p.tree.add(kindImport, span, parts...)
}

func (p *parser) parseDeclaration(kind kindID) int32 {
	start := p.curToken
	context := "val declaration"
	if kind == kindVarDecl {
		context = "var declaration"
	}
	p.next()
	if !p.curTokenIs(token.IDENT) {
		p.setErr(syntax.MsgExpected("identifier", context, p.curToken), p.curToken.Span())
		return none
	}
	name := p.identNode()
	if !p.peekTokenIs(token.ASSIGN) {
		p.setErr(syntax.MsgExpected("\"=\"", context, p.peekToken), p.peekToken.Span())
		return none
	}
	p.next()           // "="
	p.nextMeaningful() // start of initializer
	rhs := p.parseExpression(lowest)
	if rhs == none {
		return none
	}
	span := token.NewSpan(start.StartPosition, p.spanOf(rhs).End)
	return p.tree.add(kind, span, name, rhs)
}

func (p *parser) parseBlock() int32 {
	lbrace := p.curToken
	p.next()
	var stmts []int32
	for {
		p.skipSeparators()
		if p.curTokenIs(token.RBRACE) {
			break
		}
		if p.curTokenIs(token.EOF) {
			p.setErr(syntax.MsgExpected("\"}\"", "block", p.curToken), p.curToken.Span())
			return none
		}
		stmt, recovered := p.parseStatementOrRecover()
		stmts = append(stmts, stmt)
		if recovered && (p.curTokenIs(token.RBRACE) || p.curTokenIs(token.EOF)) {
			// recovery stopped on the block boundary; the loop head decides
			// what the brace closes. A successful statement ending in its own
			// "}" must not take this path.
			continue
		}
		p.next()
	}
	span := token.NewSpan(lbrace.StartPosition, p.curToken.EndPosition)
	return p.tree.add(kindBlock, span, stmts...)
}

func (p *parser) parseExpression(precedence int) int32 {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.maxDepth {
		p.setErr(syntax.MsgMaxDepth(), p.curToken.Span())
		return none
	}

	left := p.parsePrimary()
	for left != none && !p.failed {
		switch {
		case p.peekTokenIs(token.PERIOD):
			left = p.parseSelect(left)
		case p.peekTokenIs(token.LPAREN):
			left = p.parseCall(left)
		case p.peekTokenIs(token.LBRACKET):
			left = p.parseIndex(left)
		case p.peekTokenIs(token.LBRACE) && p.canTakeLambda(left):
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

func (p *parser) parsePrimary() int32 {
	switch p.curToken.Type {
	case token.IDENT:
		return p.identNode()
	case token.INT:
		return p.tree.add(kindIntLit, p.curToken.Span())
	case token.STRING:
		return p.tree.add(kindStringLit, p.curToken.Span())
	case token.TRUE, token.FALSE:
		return p.tree.add(kindBoolLit, p.curToken.Span())
	case token.NULL:
		return p.tree.add(kindNullLit, p.curToken.Span())
	case token.THIS:
		return p.tree.add(kindThisLit, p.curToken.Span())
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
		return none
	default:
		p.setErr(syntax.MsgUnexpected(p.curToken), p.curToken.Span())
		return none
	}
}

func (p *parser) parsePrefix() int32 {
	op := p.tree.add(kindOperator, p.curToken.Span())
	p.next()
	operand := p.parseExpression(prefix)
	if operand == none {
		return none
	}
	span := token.NewSpan(p.spanOf(op).Start, p.spanOf(operand).End)
	return p.tree.add(kindPrefix, span, op, operand)
}

func (p *parser) parseGrouped() int32 {
	lparen := p.curToken
	p.nextMeaningful()
	inner := p.parseExpression(lowest)
	if inner == none {
		return none
	}
	p.nextMeaningful()
	if !p.curTokenIs(token.RPAREN) {
		p.setErr(syntax.MsgExpected("\")\"", "grouped expression", p.curToken), p.curToken.Span())
		return none
	}
	span := token.NewSpan(lparen.StartPosition, p.curToken.EndPosition)
	return p.tree.add(kindParen, span, inner)
}

func (p *parser) parseSelect(left int32) int32 {
	p.next() // "."
	p.next() // attribute name
	if !p.curTokenIs(token.IDENT) {
		p.setErr(syntax.MsgExpected("identifier", "property access", p.curToken), p.curToken.Span())
		return none
	}
	name := p.identNode()
	span := token.NewSpan(p.spanOf(left).Start, p.spanOf(name).End)
	return p.tree.add(kindSelect, span, left, name)
}

func (p *parser) parseInfix(left int32) int32 {
	p.next() // operator
	op := p.tree.add(kindOperator, p.curToken.Span())
	opPrec := precedenceOf(p.curToken.Type)
	p.nextMeaningful() // a trailing operator continues the expression
	right := p.parseExpression(opPrec)
	if right == none {
		return none
	}
	span := token.NewSpan(p.spanOf(left).Start, p.spanOf(right).End)
	return p.tree.add(kindInfix, span, left, op, right)
}

func (p *parser) parseIndex(left int32) int32 {
	p.next() // "["
	p.nextMeaningful()
	index := p.parseExpression(lowest)
	if index == none {
		return none
	}
	p.nextMeaningful()
	if !p.curTokenIs(token.RBRACKET) {
		p.setErr(syntax.MsgExpected("\"]\"", "index expression", p.curToken), p.curToken.Span())
		return none
	}
	span := token.NewSpan(p.spanOf(left).Start, p.curToken.EndPosition)
	return p.tree.add(kindIndex, span, left, index)
}

func (p *parser) parseCall(callee int32) int32 {
	p.next() // "("
	children := []int32{callee}
	p.nextMeaningful()
	for !p.curTokenIs(token.RPAREN) {
		if p.curTokenIs(token.EOF) {
			p.setErr(syntax.MsgExpected("\")\"", "argument list", p.curToken), p.curToken.Span())
			return none
		}
		arg := p.parseArgument()
		if arg == none {
			return none
		}
		children = append(children, arg)
		p.nextMeaningful()
		if p.curTokenIs(token.COMMA) {
			p.nextMeaningful()
			continue
		}
		if !p.curTokenIs(token.RPAREN) {
			p.setErr(syntax.MsgExpected("\",\" or \")\"", "argument list", p.curToken), p.curToken.Span())
			return none
		}
	}
	end := p.curToken.EndPosition
	if p.peekTokenIs(token.LBRACE) {
		lambda := p.parseLambdaArg()
		if lambda == none {
			return none
		}
		children = append(children, lambda)
		end = p.spanOf(lambda).End
	}
	span := token.NewSpan(p.spanOf(callee).Start, end)
	return p.tree.add(kindCall, span, children...)
}

func (p *parser) parseBareLambdaCall(callee int32) int32 {
	lambda := p.parseLambdaArg()
	if lambda == none {
		return none
	}
	span := token.NewSpan(p.spanOf(callee).Start, p.spanOf(lambda).End)
	return p.tree.add(kindCall, span, callee, lambda)
}

func (p *parser) parseLambdaArg() int32 {
	p.next() // "{"
	block := p.parseBlock()
	if block == none {
		return none
	}
	return p.tree.add(kindLambdaArg, p.spanOf(block), block)
}

func (p *parser) parseArgument() int32 {
	if p.curTokenIs(token.IDENT) && p.peekTokenIs(token.ASSIGN) {
		name := p.identNode()
		p.next()           // "="
		p.nextMeaningful() // start of the value
		value := p.parseExpression(lowest)
		if value == none {
			return none
		}
		span := token.NewSpan(p.spanOf(name).Start, p.spanOf(value).End)
		return p.tree.add(kindNamedArg, span, name, value)
	}
	value := p.parseExpression(lowest)
	if value == none {
		return none
	}
	return p.tree.add(kindPositionalArg, p.spanOf(value), value)
}

func (p *parser) canTakeLambda(n int32) bool {
	switch p.tree.nodes[n].kind {
	case kindIdent, kindSelect:
		return true
	}
	return false
}

func (p *parser) recover(start token.Token) int32 {
	for !statementTerminators[p.curToken.Type] {
		prevPos := p.curToken.StartPosition
		p.next()
		if p.curToken.StartPosition == prevPos {
			break
		}
	}
	end := start.EndPosition
	if p.prevToken.EndPosition.Char > end.Char {
		end = p.prevToken.EndPosition
	}
	if p.errSpan.End.Char > end.Char {
		end = p.errSpan.End
	}
	potential := token.NewSpan(start.StartPosition, end)
	errNode := p.tree.addError(p.errSpan, p.errMsg)
	bad := p.tree.add(kindBadStmt, potential, errNode)
	p.failed = false
	p.errMsg = ""
	p.errSpan = token.NewSpan(token.NoPos, token.NoPos)
	return bad
}

func (p *parser) setErr(msg string, span token.Span) {
	if p.failed {
		return
	}
	p.failed = true
	p.errMsg = msg
	p.errSpan = span
}

func (p *parser) identNode() int32 {
	return p.tree.add(kindIdent, p.curToken.Span())
}

func (p *parser) spanOf(n int32) token.Span {
	return p.tree.nodes[n].span
}

func (p *parser) next() {
	p.prevToken = p.curToken
	p.curToken = p.peekToken
	p.curErr = p.peekErr
	p.peekToken, p.peekErr = p.l.Next()
}

func (p *parser) nextMeaningful() {
	p.next()
	for p.curTokenIs(token.NEWLINE) {
		p.next()
	}
}

func (p *parser) skipSeparators() {
	for p.curTokenIs(token.NEWLINE) || p.curTokenIs(token.SEMICOLON) {
		p.next()
	}
}

func (p *parser) curTokenIs(t token.Type) bool {
	return p.curToken.Type == t
}

func (p *parser) peekTokenIs(t token.Type) bool {
	return p.peekToken.Type == t
}
