// Package errors presents tree-build failures to humans and to Go callers.
// The core transform reports failures as data inside the TreeResult; this
// package flattens them into diagnostics, formats them with source context,
// and can aggregate them into a single Go error value for callers that want
// one.
package errors

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/decl-lang/decl/lang"
	"github.com/decl-lang/decl/token"
)

// Kind is the category of a diagnostic.
type Kind string

const (
	KindParsingError         Kind = "parse error"
	KindUnsupportedConstruct Kind = "unsupported construct"
)

// Diagnostic is one failure lifted out of a TreeResult.
type Diagnostic struct {
	Kind    Kind
	Message string
	// Feature is set for unsupported constructs so tooling can attach
	// feature-specific guidance.
	Feature lang.FeatureTag
	Source  token.SourceID
	// Potential is the extent of the statement the failure invalidates.
	Potential token.Span
	// Erroneous is the minimal extent implicated in the failure.
	Erroneous token.Span
}

// Error implements the error interface with a file:line:col prefix.
func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s: %s",
		d.Source.Name(),
		d.Erroneous.Start.LineNumber(),
		d.Erroneous.Start.ColumnNumber(),
		d.Kind,
		d.Message)
}

// featureMessages maps feature tags to reader-facing guidance.
var featureMessages = map[lang.FeatureTag]string{
	lang.FeatureInfixOperator:      "operators are not supported",
	lang.FeaturePrefixExpression:   "prefix expressions are not supported",
	lang.FeatureIndexing:           "indexing is not supported",
	lang.FeatureVarBinding:         "mutable variables are not supported, use \"val\"",
	lang.FeatureStarImport:         "star imports are not supported",
	lang.FeatureGrouping:           "parenthesized expressions are not supported",
	lang.FeatureDanglingExpression: "this expression has no effect here",
}

// Collect flattens every failure in the result into diagnostics, in source
// order.
func Collect(r *lang.TreeResult) []Diagnostic {
	failures := r.Failures()
	out := make([]Diagnostic, 0, len(failures))
	for _, f := range failures {
		switch v := f.(type) {
		case *lang.ParsingError:
			out = append(out, Diagnostic{
				Kind:      KindParsingError,
				Message:   v.Message,
				Source:    r.Source,
				Potential: v.Potential,
				Erroneous: v.Erroneous,
			})
		case *lang.UnsupportedConstruct:
			msg, ok := featureMessages[v.Feature]
			if !ok {
				msg = fmt.Sprintf("unsupported language feature %q", v.Feature)
			}
			out = append(out, Diagnostic{
				Kind:      KindUnsupportedConstruct,
				Message:   msg,
				Feature:   v.Feature,
				Source:    r.Source,
				Potential: v.Potential,
				Erroneous: v.Erroneous,
			})
		default:
			panic(fmt.Sprintf("errors: unhandled failure type %T", f))
		}
	}
	return out
}

// ToError aggregates diagnostics into a single error value, or nil if there
// are none. The members remain individually inspectable via the
// multierror API.
func ToError(diags []Diagnostic) error {
	var result *multierror.Error
	for _, d := range diags {
		result = multierror.Append(result, d)
	}
	return result.ErrorOrNil()
}
