// Package lightparse is the light front end: it parses decl source text into
// a flat index-based tree that stores spans and kinds but no text. It exists
// for low-latency re-parsing, where allocating a full node-per-token tree is
// wasteful; terminal text is sliced out of the caller's source on demand.
//
// For any source text, the view exposed by Root is required to be
// indistinguishable from the tree produced by the parser package. The
// differential tests in the builder package hold both front ends to that.
package lightparse

import "github.com/decl-lang/decl/token"

// none marks an absent node index.
const none int32 = -1

type node struct {
	kind     kindID
	span     token.Span
	msg      int32 // 1-based index into Tree.msgs; 0 means no message
	children []int32
}

// Tree is a flat concrete syntax tree. Nodes are stored in construction
// order (children before parents); the root is the last node added.
type Tree struct {
	nodes []node
	msgs  []string
	// offset is the byte offset within the source document at which the
	// parsed fragment starts, as passed to Parse.
	offset int
	root   int32
}

// Offset returns the fragment offset the tree was parsed with.
func (t *Tree) Offset() int { return t.offset }

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int { return len(t.nodes) }

func (t *Tree) add(kind kindID, span token.Span, children ...int32) int32 {
	kept := make([]int32, 0, len(children))
	for _, c := range children {
		if c != none {
			kept = append(kept, c)
		}
	}
	t.nodes = append(t.nodes, node{kind: kind, span: span, children: kept})
	return int32(len(t.nodes) - 1)
}

func (t *Tree) addError(span token.Span, msg string) int32 {
	t.msgs = append(t.msgs, msg)
	t.nodes = append(t.nodes, node{kind: kindError, span: span, msg: int32(len(t.msgs))})
	return int32(len(t.nodes) - 1)
}

// basePosition computes the absolute position of source[offset] so the
// fragment's tokens report document-absolute coordinates.
func basePosition(source string, offset int) token.Position {
	if offset > len(source) {
		offset = len(source)
	}
	pos := token.Position{}
	for i := 0; i < offset; i++ {
		if source[i] == '\n' {
			pos.Line++
			pos.LineStart = i + 1
		}
	}
	pos.Char = offset
	pos.Column = offset - pos.LineStart
	return pos
}
