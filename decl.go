// Package decl turns build-configuration scripts written in the restricted
// declarative dialect into validated, source-annotated language trees.
//
// Two front ends produce identical results: Build parses with the full
// syntax-tree parser, BuildLight with the flat index-based parser intended
// for editors and incremental tooling. Malformed input never aborts a build;
// failures are recorded in the returned tree alongside the statements that
// did parse.
package decl

import (
	"github.com/decl-lang/decl/builder"
	"github.com/decl-lang/decl/lang"
	"github.com/decl-lang/decl/lightparse"
	"github.com/decl-lang/decl/parser"
	"github.com/decl-lang/decl/token"
)

type config struct {
	sourceName string
	maxDepth   int
}

// Option customizes a build.
type Option func(*config)

// WithSourceName sets the name recorded in the result and used in
// diagnostics. The default is "<input>".
func WithSourceName(name string) Option {
	return func(c *config) {
		c.sourceName = name
	}
}

// WithMaxDepth overrides the maximum expression nesting depth.
func WithMaxDepth(n int) Option {
	return func(c *config) {
		c.maxDepth = n
	}
}

func newConfig(opts []Option) *config {
	c := &config{
		sourceName: "<input>",
		maxDepth:   parser.DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Build parses source with the full-tree front end and builds the language
// tree. The result is never nil.
func Build(source string, opts ...Option) *lang.TreeResult {
	c := newConfig(opts)
	root := parser.Parse(source, parser.WithMaxDepth(c.maxDepth))
	return builder.Build(root, token.NewSourceID(c.sourceName))
}

// BuildLight parses source with the light front end and builds the language
// tree. For any input the result prints identically to Build's.
func BuildLight(source string, opts ...Option) *lang.TreeResult {
	c := newConfig(opts)
	tree := lightparse.Parse(source, 0, lightparse.WithMaxDepth(c.maxDepth))
	return builder.BuildLight(tree, source, 0, token.NewSourceID(c.sourceName))
}
