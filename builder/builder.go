// Package builder transforms a concrete syntax tree into the language tree.
//
// Build is a pure function: it performs no I/O, touches no shared state, and
// has no error return. Everything that can go wrong with the input is
// represented as failure values inside the returned TreeResult, and a
// failing statement never disturbs the construction of its siblings. The
// result is structurally complete even for a source unit whose every
// statement failed.
package builder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/decl-lang/decl/lang"
	"github.com/decl-lang/decl/lightparse"
	"github.com/decl-lang/decl/syntax"
	"github.com/decl-lang/decl/token"
)

const misplacedImportMessage = "import statements must appear before any other statements"

// Build transforms the full-tree parser's output for one source unit. The
// root must be a script node.
func Build(root syntax.Node, src token.SourceID) *lang.TreeResult {
	if root.Kind() != syntax.KindScript {
		panic(fmt.Sprintf("builder: expected a script node, got %q", root.Kind()))
	}

	children := root.Children()

	// The import section is the maximal leading run of import statements;
	// everything after it belongs to the body.
	prefix := 0
	for prefix < len(children) && children[prefix].Kind() == syntax.KindImport {
		prefix++
	}

	imports := make([]lang.Result, 0, prefix)
	for _, n := range children[:prefix] {
		imports = append(imports, buildImport(n))
	}

	stmts := make([]lang.Stmt, 0, len(children)-prefix)
	for _, n := range children[prefix:] {
		stmts = append(stmts, buildStatement(n))
	}

	return &lang.TreeResult{
		Source:  src,
		Imports: imports,
		Body:    &lang.Block{Src: root.Span(), Statements: stmts},
	}
}

// BuildLight transforms the light parser's output. The source and offset
// must be the same values the tree was parsed with; the builder reads
// terminal text straight out of the source. The output is identical to
// running Build over the full-tree parse of the same text.
func BuildLight(tree *lightparse.Tree, source string, offset int, src token.SourceID) *lang.TreeResult {
	if tree.Offset() != offset {
		panic(fmt.Sprintf("builder: light tree was parsed at offset %d, not %d", tree.Offset(), offset))
	}
	return Build(tree.Root(source), src)
}

func buildImport(n syntax.Node) lang.Result {
	parts := n.Children()
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if part.Kind() == syntax.KindStar {
			return &lang.UnsupportedConstruct{
				Feature:   lang.FeatureStarImport,
				Potential: n.Span(),
				Erroneous: part.Span(),
			}
		}
		names = append(names, part.Text())
	}
	return &lang.Import{Src: n.Span(), NameParts: names}
}

// buildStatement never fails: a statement that cannot become a supported
// element becomes an ErroneousStatement carrying the failure.
func buildStatement(n syntax.Node) lang.Stmt {
	switch n.Kind() {
	case syntax.KindBadStmt:
		errNode := n.Children()[0]
		return erroneous(&lang.ParsingError{
			Message:   errNode.Message(),
			Potential: n.Span(),
			Erroneous: errNode.Span(),
		})

	case syntax.KindImport:
		return erroneous(&lang.ParsingError{
			Message:   misplacedImportMessage,
			Potential: n.Span(),
			Erroneous: n.Span(),
		})

	case syntax.KindValDecl:
		kids := n.Children()
		rhs, fail := buildExpr(kids[1], n.Span())
		if fail != nil {
			return erroneous(fail)
		}
		return &lang.LocalValue{Src: n.Span(), Name: kids[0].Text(), Rhs: rhs}

	case syntax.KindVarDecl:
		return erroneous(&lang.UnsupportedConstruct{
			Feature:   lang.FeatureVarBinding,
			Potential: n.Span(),
			Erroneous: n.Span(),
		})

	case syntax.KindAssign:
		return buildAssignment(n)

	case syntax.KindCall:
		el, fail := buildExpr(n, n.Span())
		if fail != nil {
			return erroneous(fail)
		}
		return el.(*lang.FunctionCall)

	case syntax.KindSelect, syntax.KindIdent,
		syntax.KindIntLit, syntax.KindStringLit, syntax.KindBoolLit,
		syntax.KindNullLit, syntax.KindThisLit:
		// A value with no effect is valid syntax the language rejects.
		return erroneous(&lang.UnsupportedConstruct{
			Feature:   lang.FeatureDanglingExpression,
			Potential: n.Span(),
			Erroneous: n.Span(),
		})

	case syntax.KindInfix, syntax.KindPrefix, syntax.KindIndex, syntax.KindParen:
		_, fail := buildExpr(n, n.Span())
		return erroneous(fail)

	default:
		panic(fmt.Sprintf("builder: unhandled statement kind %q", n.Kind()))
	}
}

func buildAssignment(n syntax.Node) lang.Stmt {
	kids := n.Children()
	lhsNode, rhsNode := kids[0], kids[1]

	var failures []lang.Failure
	var lhs *lang.PropertyAccess

	lhsExpr, lhsFail := buildExpr(lhsNode, n.Span())
	if lhsFail != nil {
		failures = append(failures, lhsFail)
	} else if pa, ok := lhsExpr.(*lang.PropertyAccess); ok {
		lhs = pa
	} else {
		failures = append(failures, &lang.ParsingError{
			Message:   "left-hand side of an assignment must be a property access",
			Potential: n.Span(),
			Erroneous: lhsNode.Span(),
		})
	}

	rhs, rhsFail := buildExpr(rhsNode, n.Span())
	if rhsFail != nil {
		failures = append(failures, rhsFail)
	}

	if fail := lang.CombineFailures(failures); fail != nil {
		return erroneous(fail)
	}
	return &lang.Assignment{Src: n.Span(), Lhs: lhs, Rhs: rhs}
}

// buildExpr builds an expression element. The potential span is the extent
// of the enclosing statement, carried down so that failures deep in an
// expression still report the whole statement they invalidate alongside the
// narrow range actually implicated.
func buildExpr(n syntax.Node, potential token.Span) (lang.Expr, lang.Failure) {
	switch n.Kind() {
	case syntax.KindIdent:
		return &lang.PropertyAccess{Src: n.Span(), Name: n.Text()}, nil

	case syntax.KindSelect:
		kids := n.Children()
		receiver, fail := buildExpr(kids[0], potential)
		if fail != nil {
			return nil, fail
		}
		return &lang.PropertyAccess{Src: n.Span(), Receiver: receiver, Name: kids[1].Text()}, nil

	case syntax.KindIntLit:
		return buildIntLiteral(n, potential)

	case syntax.KindStringLit:
		value, err := decodeString(n.Text())
		if err != nil {
			return nil, &lang.ParsingError{
				Message:   err.Error(),
				Potential: potential,
				Erroneous: n.Span(),
			}
		}
		return &lang.StringLiteral{Src: n.Span(), Value: value}, nil

	case syntax.KindBoolLit:
		return &lang.BoolLiteral{Src: n.Span(), Value: n.Text() == "true"}, nil

	case syntax.KindNullLit:
		return &lang.Null{Src: n.Span()}, nil

	case syntax.KindThisLit:
		return &lang.This{Src: n.Span()}, nil

	case syntax.KindCall:
		return buildCall(n, potential)

	case syntax.KindInfix:
		op := n.Children()[1]
		return nil, &lang.UnsupportedConstruct{
			Feature:   lang.FeatureInfixOperator,
			Potential: potential,
			Erroneous: op.Span(),
		}

	case syntax.KindPrefix:
		op := n.Children()[0]
		return nil, &lang.UnsupportedConstruct{
			Feature:   lang.FeaturePrefixExpression,
			Potential: potential,
			Erroneous: op.Span(),
		}

	case syntax.KindIndex:
		return nil, &lang.UnsupportedConstruct{
			Feature:   lang.FeatureIndexing,
			Potential: potential,
			Erroneous: n.Span(),
		}

	case syntax.KindParen:
		return nil, &lang.UnsupportedConstruct{
			Feature:   lang.FeatureGrouping,
			Potential: potential,
			Erroneous: n.Span(),
		}

	default:
		panic(fmt.Sprintf("builder: unhandled expression kind %q", n.Kind()))
	}
}

// buildCall recurses into the callee and every argument independently; a
// failing argument never stops the remaining arguments from being examined,
// so all failures in the call surface at once.
func buildCall(n syntax.Node, potential token.Span) (lang.Expr, lang.Failure) {
	kids := n.Children()
	callee := kids[0]

	var failures []lang.Failure
	var receiver lang.Expr
	var name string

	switch callee.Kind() {
	case syntax.KindIdent:
		name = callee.Text()
	case syntax.KindSelect:
		ck := callee.Children()
		name = ck[1].Text()
		recv, fail := buildExpr(ck[0], potential)
		if fail != nil {
			failures = append(failures, fail)
		} else {
			receiver = recv
		}
	default:
		if _, fail := buildExpr(callee, potential); fail != nil {
			failures = append(failures, fail)
		} else {
			failures = append(failures, &lang.ParsingError{
				Message:   "expression is not callable",
				Potential: potential,
				Erroneous: callee.Span(),
			})
		}
	}

	args := make([]lang.Argument, 0, len(kids)-1)
	for _, argNode := range kids[1:] {
		switch argNode.Kind() {
		case syntax.KindPositionalArg:
			value, fail := buildExpr(argNode.Children()[0], potential)
			if fail != nil {
				failures = append(failures, fail)
				continue
			}
			args = append(args, &lang.PositionalArgument{Src: argNode.Span(), Value: value})

		case syntax.KindNamedArg:
			ak := argNode.Children()
			value, fail := buildExpr(ak[1], potential)
			if fail != nil {
				failures = append(failures, fail)
				continue
			}
			args = append(args, &lang.NamedArgument{Src: argNode.Span(), Name: ak[0].Text(), Value: value})

		case syntax.KindLambdaArg:
			block := buildBlock(argNode.Children()[0])
			args = append(args, &lang.LambdaArgument{Src: argNode.Span(), Block: block})

		default:
			panic(fmt.Sprintf("builder: unhandled argument kind %q", argNode.Kind()))
		}
	}

	if fail := lang.CombineFailures(failures); fail != nil {
		return nil, fail
	}
	return &lang.FunctionCall{Src: n.Span(), Receiver: receiver, Name: name, Args: args}, nil
}

// buildBlock is a recovery boundary: statement failures inside the block
// stay inside it as ErroneousStatement nodes and never propagate to the
// construct the block is an argument of.
func buildBlock(n syntax.Node) *lang.Block {
	children := n.Children()
	stmts := make([]lang.Stmt, 0, len(children))
	for _, c := range children {
		stmts = append(stmts, buildStatement(c))
	}
	return &lang.Block{Src: n.Span(), Statements: stmts}
}

func buildIntLiteral(n syntax.Node, potential token.Span) (lang.Expr, lang.Failure) {
	text := n.Text()
	digits, isLong := strings.CutSuffix(text, "L")
	value, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		msg := fmt.Sprintf("invalid integer literal %q", text)
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			msg = fmt.Sprintf("integer literal %s is out of range", text)
		}
		return nil, &lang.ParsingError{Message: msg, Potential: potential, Erroneous: n.Span()}
	}
	if isLong {
		return &lang.LongLiteral{Src: n.Span(), Value: value}, nil
	}
	return &lang.IntLiteral{Src: n.Span(), Value: value}, nil
}

// decodeString resolves the escape sequences of a quoted string literal.
// The lexer has already validated the literal, so errors here indicate a
// front end handing over a malformed token.
func decodeString(text string) (string, error) {
	if len(text) < 2 || text[0] != '"' || text[len(text)-1] != '"' {
		return "", fmt.Errorf("invalid string literal %s", text)
	}
	body := text[1 : len(text)-1]
	if !strings.ContainsRune(body, '\\') {
		return body, nil
	}
	var b strings.Builder
	for i := 0; i < len(body); i++ {
		ch := body[i]
		if ch != '\\' {
			b.WriteByte(ch)
			continue
		}
		i++
		if i >= len(body) {
			return "", fmt.Errorf("invalid string literal %s", text)
		}
		switch body[i] {
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '$':
			b.WriteByte('$')
		case '\'':
			b.WriteByte('\'')
		case 'u':
			if i+4 >= len(body) {
				return "", fmt.Errorf("invalid unicode escape in string literal %s", text)
			}
			code, err := strconv.ParseUint(body[i+1:i+5], 16, 32)
			if err != nil {
				return "", fmt.Errorf("invalid unicode escape in string literal %s", text)
			}
			b.WriteRune(rune(code))
			i += 4
		default:
			return "", fmt.Errorf("invalid escape sequence in string literal %s", text)
		}
	}
	return b.String(), nil
}

func erroneous(f lang.Failure) *lang.ErroneousStatement {
	return &lang.ErroneousStatement{Failure: f}
}
