// Package parser is the full-tree front end: it parses decl source text into
// an eagerly materialized concrete syntax tree.
//
// The parser never gives up on a file. A statement that cannot be parsed
// becomes a bad-statement node covering the text it would have occupied, and
// parsing resumes at the next statement boundary, so every statement
// position of the input is represented in the output tree.
package parser

import (
	"github.com/decl-lang/decl/internal/lexer"
	"github.com/decl-lang/decl/syntax"
	"github.com/decl-lang/decl/token"
)

// DefaultMaxDepth is the default maximum nesting depth for parsing.
const DefaultMaxDepth = 500

// statementTerminators defines tokens that can end a statement.
var statementTerminators = map[token.Type]bool{
	token.SEMICOLON: true,
	token.NEWLINE:   true,
	token.RBRACE:    true,
	token.EOF:       true,
}

// Option is a configuration function for a Parser.
type Option func(*Parser)

// WithMaxDepth sets the maximum nesting depth for the parser. This prevents
// stack overflow on deeply nested input.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		p.maxDepth = depth
	}
}

// Parse parses the provided input and returns the root syntax node. The
// returned tree is always structurally complete; malformed statements appear
// as bad-statement nodes rather than aborting the parse.
func Parse(input string, options ...Option) syntax.Node {
	return New(lexer.New(input), options...).Parse()
}

// Parser parses a token stream into a concrete syntax tree. A parser should
// be used only once, by calling Parse.
type Parser struct {
	l *lexer.Lexer

	// prevToken holds the previous token, which we already processed.
	prevToken token.Token

	// curToken holds the current token from the lexer.
	curToken token.Token

	// peekToken holds the next token from the lexer.
	peekToken token.Token

	// curErr and peekErr hold the lexer errors attached to curToken and
	// peekToken when those are ILLEGAL tokens.
	curErr  error
	peekErr error

	// first recorded error for the statement being parsed
	failed  bool
	errMsg  string
	errSpan token.Span

	// current and maximum recursion depth
	depth    int
	maxDepth int
}

// New returns a Parser reading from the given lexer.
func New(l *lexer.Lexer, options ...Option) *Parser {
	p := &Parser{l: l, maxDepth: DefaultMaxDepth}
	for _, opt := range options {
		opt(p)
	}
	// Prime the token pump
	p.next()
	p.next()
	return p
}

// Parse consumes the whole input and returns the root script node.
func (p *Parser) Parse() syntax.Node {
	var stmts []*syntax.TreeNode
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
		start = stmts[0].Span().Start
	}
	return syntax.NewNode(syntax.KindScript, token.NewSpan(start, eof), "", stmts...)
}

// parseStatementOrRecover parses one statement. On failure it synchronizes
// to the next statement boundary and returns a bad-statement node instead;
// recovered reports that path. After recovery the current token is the
// boundary token itself, whereas a successful statement leaves the current
// token on its own last token.
func (p *Parser) parseStatementOrRecover() (stmt *syntax.TreeNode, recovered bool) {
	start := p.curToken
	stmt = p.parseStatement()
	if stmt != nil && !statementTerminators[p.peekToken.Type] {
		p.setErr(syntax.MsgTrailing(p.peekToken), p.peekToken.Span())
		stmt = nil
	}
	if stmt == nil {
		return p.recover(start), true
	}
	return stmt, false
}

func (p *Parser) parseStatement() *syntax.TreeNode {
	switch p.curToken.Type {
	case token.IMPORT:
		return p.parseImport()
	case token.VAL:
		return p.parseDeclaration(syntax.KindValDecl)
	case token.VAR:
		return p.parseDeclaration(syntax.KindVarDecl)
	default:
		expr := p.parseExpression(lowest)
		if expr == nil {
			return nil
		}
		if p.peekTokenIs(token.ASSIGN) {
			return p.parseAssignment(expr)
		}
		return expr
	}
}

// recover skips tokens until a statement boundary and wraps the first
// recorded error into a bad-statement node. The node's span is the broadest
// extent the statement could have occupied; the error child pinpoints the
// offending range.
func (p *Parser) recover(start token.Token) *syntax.TreeNode {
	for !statementTerminators[p.curToken.Type] {
		prevPos := p.curToken.StartPosition
		p.next()
		// Safety: if we didn't advance, bail out
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
	bad := syntax.NewNode(syntax.KindBadStmt, potential, "",
		syntax.NewErrorNode(p.errSpan, p.errMsg))
	p.failed = false
	p.errMsg = ""
	p.errSpan = token.NewSpan(token.NoPos, token.NoPos)
	return bad
}

// setErr records the first error of the current statement.
func (p *Parser) setErr(msg string, span token.Span) {
	if p.failed {
		return
	}
	p.failed = true
	p.errMsg = msg
	p.errSpan = span
}

func (p *Parser) next() {
	p.prevToken = p.curToken
	p.curToken = p.peekToken
	p.curErr = p.peekErr
	p.peekToken, p.peekErr = p.l.Next()
}

// nextMeaningful advances, skipping over newline tokens. Used inside
// bracketed constructs and after infix operators, where newlines do not
// terminate anything.
func (p *Parser) nextMeaningful() {
	p.next()
	for p.curTokenIs(token.NEWLINE) {
		p.next()
	}
}

func (p *Parser) skipSeparators() {
	for p.curTokenIs(token.NEWLINE) || p.curTokenIs(token.SEMICOLON) {
		p.next()
	}
}

func (p *Parser) curTokenIs(t token.Type) bool {
	return p.curToken.Type == t
}

func (p *Parser) peekTokenIs(t token.Type) bool {
	return p.peekToken.Type == t
}
