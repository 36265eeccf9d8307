package parser

import (
	"github.com/decl-lang/decl/syntax"
	"github.com/decl-lang/decl/token"
)

// parseImport parses "import a.b.c". A "*" is accepted as the final name
// part so the builder can classify star imports instead of losing them.
func (p *Parser) parseImport() *syntax.TreeNode {
	start := p.curToken
	p.next()
	if !p.curTokenIs(token.IDENT) {
		p.setErr(syntax.MsgExpected("identifier", "import statement", p.curToken), p.curToken.Span())
		return nil
	}
	parts := []*syntax.TreeNode{p.identNode()}
	for p.peekTokenIs(token.PERIOD) {
		p.next() // "."
		p.next() // name part
		switch {
		case p.curTokenIs(token.IDENT):
			parts = append(parts, p.identNode())
		case p.curTokenIs(token.ASTERISK):
			parts = append(parts,
				syntax.NewNode(syntax.KindStar, p.curToken.Span(), p.curToken.Literal))
			// a star ends the path; anything after it fails the
			// trailing-token check
			span := token.NewSpan(start.StartPosition, p.curToken.EndPosition)
			return syntax.NewNode(syntax.KindImport, span, "", parts...)
		default:
			p.setErr(syntax.MsgExpected("identifier", "import statement", p.curToken), p.curToken.Span())
			return nil
		}
	}
	span := token.NewSpan(start.StartPosition, p.curToken.EndPosition)
	return syntax.NewNode(syntax.KindImport, span, "", parts...)
}

// parseAssignment parses "= expr" applied to an already-parsed left-hand
// side. Whether the left-hand side is assignable is the tree builder's call.
func (p *Parser) parseAssignment(lhs *syntax.TreeNode) *syntax.TreeNode {
	p.next()           // "="
	p.nextMeaningful() // start of the value
	rhs := p.parseExpression(lowest)
	if rhs == nil {
		return nil
	}
	span := token.NewSpan(lhs.Span().Start, rhs.Span().End)
	return syntax.NewNode(syntax.KindAssign, span, "", lhs, rhs)
}

// parseDeclaration parses "val name = expr" or "var name = expr".
func (p *Parser) parseDeclaration(kind syntax.Kind) *syntax.TreeNode {
	start := p.curToken
	context := "val declaration"
	if kind == syntax.KindVarDecl {
		context = "var declaration"
	}
	p.next()
	if !p.curTokenIs(token.IDENT) {
		p.setErr(syntax.MsgExpected("identifier", context, p.curToken), p.curToken.Span())
		return nil
	}
	name := p.identNode()
	if !p.peekTokenIs(token.ASSIGN) {
		p.setErr(syntax.MsgExpected("\"=\"", context, p.peekToken), p.peekToken.Span())
		return nil
	}
	p.next()           // "="
	p.nextMeaningful() // start of initializer
	rhs := p.parseExpression(lowest)
	if rhs == nil {
		return nil
	}
	span := token.NewSpan(start.StartPosition, rhs.Span().End)
	return syntax.NewNode(kind, span, "", name, rhs)
}

// parseBlock parses a braced statement block. The current token must be "{".
// Statement failures inside the block are recovered locally, so a bad
// statement in a lambda never poisons the enclosing call.
func (p *Parser) parseBlock() *syntax.TreeNode {
	lbrace := p.curToken
	p.next()
	var stmts []*syntax.TreeNode
	for {
		p.skipSeparators()
		if p.curTokenIs(token.RBRACE) {
			break
		}
		if p.curTokenIs(token.EOF) {
			p.setErr(syntax.MsgExpected("\"}\"", "block", p.curToken), p.curToken.Span())
			return nil
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
	return syntax.NewNode(syntax.KindBlock, span, "", stmts...)
}

func (p *Parser) identNode() *syntax.TreeNode {
	return syntax.NewNode(syntax.KindIdent, p.curToken.Span(), p.curToken.Literal)
}
