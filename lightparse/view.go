package lightparse

import (
	"github.com/decl-lang/decl/syntax"
	"github.com/decl-lang/decl/token"
)

// kindID is a compact node kind. The tree stores one byte per node instead
// of a kind string; the view maps back to syntax.Kind.
type kindID uint8

const (
	kindScript kindID = iota
	kindImport
	kindStar
	kindBadStmt
	kindError
	kindValDecl
	kindVarDecl
	kindAssign
	kindCall
	kindPositionalArg
	kindNamedArg
	kindLambdaArg
	kindBlock
	kindSelect
	kindIdent
	kindOperator
	kindIntLit
	kindStringLit
	kindBoolLit
	kindNullLit
	kindThisLit
	kindInfix
	kindPrefix
	kindIndex
	kindParen
)

var kindNames = [...]syntax.Kind{
	kindScript:        syntax.KindScript,
	kindImport:        syntax.KindImport,
	kindStar:          syntax.KindStar,
	kindBadStmt:       syntax.KindBadStmt,
	kindError:         syntax.KindError,
	kindValDecl:       syntax.KindValDecl,
	kindVarDecl:       syntax.KindVarDecl,
	kindAssign:        syntax.KindAssign,
	kindCall:          syntax.KindCall,
	kindPositionalArg: syntax.KindPositionalArg,
	kindNamedArg:      syntax.KindNamedArg,
	kindLambdaArg:     syntax.KindLambdaArg,
	kindBlock:         syntax.KindBlock,
	kindSelect:        syntax.KindSelect,
	kindIdent:         syntax.KindIdent,
	kindOperator:      syntax.KindOperator,
	kindIntLit:        syntax.KindIntLit,
	kindStringLit:     syntax.KindStringLit,
	kindBoolLit:       syntax.KindBoolLit,
	kindNullLit:       syntax.KindNullLit,
	kindThisLit:       syntax.KindThisLit,
	kindInfix:         syntax.KindInfix,
	kindPrefix:        syntax.KindPrefix,
	kindIndex:         syntax.KindIndex,
	kindParen:         syntax.KindParen,
}

// Root exposes the tree through the shared concrete-syntax view. The source
// must be the same document the tree was parsed from; terminal node text is
// sliced out of it lazily. The caller must not mutate the source while the
// view is in use.
func (t *Tree) Root(source string) syntax.Node {
	return viewNode{tree: t, source: source, index: t.root}
}

type viewNode struct {
	tree   *Tree
	source string
	index  int32
}

func (n viewNode) Kind() syntax.Kind {
	return kindNames[n.tree.nodes[n.index].kind]
}

func (n viewNode) Span() token.Span {
	return n.tree.nodes[n.index].span
}

// Text returns the exact source slice for terminal nodes and "" otherwise,
// matching what the full-tree parser stores.
func (n viewNode) Text() string {
	nd := n.tree.nodes[n.index]
	switch nd.kind {
	case kindIdent, kindOperator, kindStar,
		kindIntLit, kindStringLit, kindBoolLit, kindNullLit, kindThisLit:
		start, end := nd.span.Start.Char, nd.span.End.Char
		if start < 0 || end > len(n.source) || start > end {
			return ""
		}
		return n.source[start:end]
	}
	return ""
}

func (n viewNode) Message() string {
	nd := n.tree.nodes[n.index]
	if nd.msg == 0 {
		return ""
	}
	return n.tree.msgs[nd.msg-1]
}

func (n viewNode) Children() []syntax.Node {
	nd := n.tree.nodes[n.index]
	out := make([]syntax.Node, len(nd.children))
	for i, c := range nd.children {
		out[i] = viewNode{tree: n.tree, source: n.source, index: c}
	}
	return out
}
