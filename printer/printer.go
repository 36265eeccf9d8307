// Package printer renders language tree values as deterministic text. The
// rendering is the test oracle for the front ends: two builds that print
// identically are considered identical. It is not a re-parsable format.
//
// Every variant of the tree has a defined rendering; an unmatched variant is
// a programming error and panics rather than being silently omitted.
package printer

import (
	"fmt"
	"strings"

	"github.com/decl-lang/decl/lang"
	"github.com/decl-lang/decl/token"
)

const indentUnit = "    "

// Print renders a *lang.TreeResult, a lang.Element, or any lang.Result.
// The output has no trailing newline. Printing the same value twice yields
// byte-identical text.
func Print(v any) string {
	var b strings.Builder
	switch t := v.(type) {
	case *lang.TreeResult:
		writeTreeResult(&b, t)
	case lang.Element:
		writeElement(&b, t, 0)
	case lang.Failure:
		writeFailure(&b, t, 0)
	default:
		panic(fmt.Sprintf("printer: unhandled value type %T", v))
	}
	return b.String()
}

func writeTreeResult(b *strings.Builder, r *lang.TreeResult) {
	fmt.Fprintf(b, "TreeResult [source: %s] (\n", r.Source.Name())
	if len(r.Imports) == 0 {
		b.WriteString(indentUnit + "imports = []\n")
	} else {
		b.WriteString(indentUnit + "imports = [\n")
		for _, imp := range r.Imports {
			b.WriteString(indentUnit + indentUnit)
			writeResult(b, imp, 2)
			b.WriteString("\n")
		}
		b.WriteString(indentUnit + "]\n")
	}
	b.WriteString(indentUnit + "body = ")
	writeResult(b, r.Body, 1)
	b.WriteString("\n)")
}

func writeResult(b *strings.Builder, r lang.Result, depth int) {
	switch t := r.(type) {
	case lang.Element:
		writeElement(b, t, depth)
	case lang.Failure:
		writeFailure(b, t, depth)
	default:
		panic(fmt.Sprintf("printer: unhandled result type %T", r))
	}
}

// writeElement writes the element starting at the current output position;
// continuation lines are indented depth+1 levels and the closing bracket
// depth levels. Callers are responsible for indenting the first line.
func writeElement(b *strings.Builder, el lang.Element, depth int) {
	switch n := el.(type) {
	case *lang.Block:
		if len(n.Statements) == 0 {
			fmt.Fprintf(b, "Block [%s] ()", n.Span())
			return
		}
		fmt.Fprintf(b, "Block [%s] (\n", n.Span())
		for _, stmt := range n.Statements {
			writeIndent(b, depth+1)
			writeElement(b, stmt, depth+1)
			b.WriteString("\n")
		}
		writeIndent(b, depth)
		b.WriteString(")")

	case *lang.Assignment:
		fmt.Fprintf(b, "Assignment [%s] (\n", n.Span())
		writeField(b, depth+1, "lhs", n.Lhs)
		writeField(b, depth+1, "rhs", n.Rhs)
		writeIndent(b, depth)
		b.WriteString(")")

	case *lang.LocalValue:
		fmt.Fprintf(b, "LocalValue [%s] (\n", n.Span())
		writeScalar(b, depth+1, "name", n.Name)
		writeField(b, depth+1, "rhs", n.Rhs)
		writeIndent(b, depth)
		b.WriteString(")")

	case *lang.Import:
		fmt.Fprintf(b, "Import [%s] ( name = %s )", n.Span(), strings.Join(n.NameParts, "."))

	case *lang.FunctionCall:
		fmt.Fprintf(b, "FunctionCall [%s] (\n", n.Span())
		writeScalar(b, depth+1, "name", n.Name)
		if n.Receiver != nil {
			writeField(b, depth+1, "receiver", n.Receiver)
		}
		if len(n.Args) == 0 {
			writeIndent(b, depth+1)
			b.WriteString("args = []\n")
		} else {
			writeIndent(b, depth+1)
			b.WriteString("args = [\n")
			for _, arg := range n.Args {
				writeIndent(b, depth+2)
				writeElement(b, arg, depth+2)
				b.WriteString("\n")
			}
			writeIndent(b, depth+1)
			b.WriteString("]\n")
		}
		writeIndent(b, depth)
		b.WriteString(")")

	case *lang.PositionalArgument:
		fmt.Fprintf(b, "Positional [%s] (\n", n.Span())
		writeIndent(b, depth+1)
		writeElement(b, n.Value, depth+1)
		b.WriteString("\n")
		writeIndent(b, depth)
		b.WriteString(")")

	case *lang.NamedArgument:
		fmt.Fprintf(b, "Named [%s] (\n", n.Span())
		writeScalar(b, depth+1, "name", n.Name)
		writeField(b, depth+1, "expr", n.Value)
		writeIndent(b, depth)
		b.WriteString(")")

	case *lang.LambdaArgument:
		fmt.Fprintf(b, "Lambda [%s] (\n", n.Span())
		writeIndent(b, depth+1)
		writeElement(b, n.Block, depth+1)
		b.WriteString("\n")
		writeIndent(b, depth)
		b.WriteString(")")

	case *lang.PropertyAccess:
		fmt.Fprintf(b, "PropertyAccess [%s] (\n", n.Span())
		writeScalar(b, depth+1, "name", n.Name)
		if n.Receiver != nil {
			writeField(b, depth+1, "receiver", n.Receiver)
		}
		writeIndent(b, depth)
		b.WriteString(")")

	case *lang.ErroneousStatement:
		b.WriteString("ErroneousStatement (\n")
		writeIndent(b, depth+1)
		writeFailure(b, n.Failure, depth+1)
		b.WriteString("\n")
		writeIndent(b, depth)
		b.WriteString(")")

	case *lang.BoolLiteral:
		fmt.Fprintf(b, "BoolLiteral [%s] (%t)", n.Span(), n.Value)

	case *lang.IntLiteral:
		fmt.Fprintf(b, "IntLiteral [%s] (%d)", n.Span(), n.Value)

	case *lang.LongLiteral:
		fmt.Fprintf(b, "LongLiteral [%s] (%d)", n.Span(), n.Value)

	case *lang.StringLiteral:
		fmt.Fprintf(b, "StringLiteral [%s] (%q)", n.Span(), n.Value)

	case *lang.Null:
		fmt.Fprintf(b, "Null [%s]", n.Span())

	case *lang.This:
		fmt.Fprintf(b, "This [%s]", n.Span())

	default:
		panic(fmt.Sprintf("printer: unhandled element type %T", el))
	}
}

func writeFailure(b *strings.Builder, f lang.Failure, depth int) {
	switch n := f.(type) {
	case *lang.ParsingError:
		b.WriteString("ParsingError (\n")
		writeScalar(b, depth+1, "message", n.Message)
		writeSpanField(b, depth+1, "potential", n.Potential)
		writeSpanField(b, depth+1, "erroneous", n.Erroneous)
		writeIndent(b, depth)
		b.WriteString(")")

	case *lang.UnsupportedConstruct:
		b.WriteString("UnsupportedConstruct (\n")
		writeScalar(b, depth+1, "feature", string(n.Feature))
		writeSpanField(b, depth+1, "potential", n.Potential)
		writeSpanField(b, depth+1, "erroneous", n.Erroneous)
		writeIndent(b, depth)
		b.WriteString(")")

	case *lang.MultipleFailures:
		b.WriteString("MultipleFailures (\n")
		for _, member := range n.Failures {
			writeIndent(b, depth+1)
			writeFailure(b, member, depth+1)
			b.WriteString("\n")
		}
		writeIndent(b, depth)
		b.WriteString(")")

	default:
		panic(fmt.Sprintf("printer: unhandled failure type %T", f))
	}
}

func writeField(b *strings.Builder, depth int, name string, el lang.Element) {
	writeIndent(b, depth)
	b.WriteString(name)
	b.WriteString(" = ")
	writeElement(b, el, depth)
	b.WriteString("\n")
}

func writeScalar(b *strings.Builder, depth int, name, value string) {
	writeIndent(b, depth)
	b.WriteString(name)
	b.WriteString(" = ")
	b.WriteString(value)
	b.WriteString("\n")
}

func writeSpanField(b *strings.Builder, depth int, name string, span token.Span) {
	writeIndent(b, depth)
	fmt.Fprintf(b, "%s = [%s]\n", name, span)
}

func writeIndent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString(indentUnit)
	}
}
