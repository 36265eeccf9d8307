package lang

import "github.com/decl-lang/decl/token"

// FeatureTag identifies a language feature outside the supported subset.
// Tags are stable identifiers so tooling can attach feature-specific
// guidance to an UnsupportedConstruct.
type FeatureTag string

const (
	FeatureInfixOperator      FeatureTag = "infix_operator"
	FeaturePrefixExpression   FeatureTag = "prefix_expression"
	FeatureIndexing           FeatureTag = "indexing"
	FeatureVarBinding         FeatureTag = "var_binding"
	FeatureStarImport         FeatureTag = "star_import"
	FeatureGrouping           FeatureTag = "grouping"
	FeatureDanglingExpression FeatureTag = "dangling_expression"
)

// ParsingError reports input that is malformed relative to the grammar.
type ParsingError struct {
	Message   string
	Potential token.Span // broadest extent that could have been an element
	Erroneous token.Span // minimal extent implicated in the failure
}

func (x *ParsingError) resultNode()  {}
func (x *ParsingError) failureNode() {}

func (x *ParsingError) PotentialSpan() token.Span { return x.Potential }
func (x *ParsingError) ErroneousSpan() token.Span { return x.Erroneous }

// UnsupportedConstruct reports syntactically well-formed input that falls
// outside the supported language subset.
type UnsupportedConstruct struct {
	Feature   FeatureTag
	Potential token.Span
	Erroneous token.Span
}

func (x *UnsupportedConstruct) resultNode()  {}
func (x *UnsupportedConstruct) failureNode() {}

func (x *UnsupportedConstruct) PotentialSpan() token.Span { return x.Potential }
func (x *UnsupportedConstruct) ErroneousSpan() token.Span { return x.Erroneous }

// MultipleFailures aggregates two or more sibling failures in one scope,
// preserving their source order. The list is flat: combining failures never
// nests one MultipleFailures inside another, members of a combined
// MultipleFailures are spliced in at their position instead.
type MultipleFailures struct {
	Failures []Failure
}

func (x *MultipleFailures) resultNode()  {}
func (x *MultipleFailures) failureNode() {}

// PotentialSpan is the union of the members' potential spans.
func (x *MultipleFailures) PotentialSpan() token.Span {
	return x.unionSpans(Failure.PotentialSpan)
}

// ErroneousSpan is the union of the members' erroneous spans.
func (x *MultipleFailures) ErroneousSpan() token.Span {
	return x.unionSpans(Failure.ErroneousSpan)
}

func (x *MultipleFailures) unionSpans(get func(Failure) token.Span) token.Span {
	var out token.Span
	for i, f := range x.Failures {
		if i == 0 {
			out = get(f)
			continue
		}
		out = out.Union(get(f))
	}
	return out
}

// CombineFailures merges an ordered list of failures gathered from one
// scope. A nil result means no failures; a single failure propagates
// unchanged; two or more become a flat MultipleFailures.
func CombineFailures(failures []Failure) Failure {
	var flat []Failure
	for _, f := range failures {
		if f == nil {
			continue
		}
		flat = appendLeafFailures(flat, f)
	}
	switch len(flat) {
	case 0:
		return nil
	case 1:
		return flat[0]
	default:
		return &MultipleFailures{Failures: flat}
	}
}
