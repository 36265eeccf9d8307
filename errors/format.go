package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Formatter renders diagnostics with source context: the offending line with
// the erroneous span underlined by carets, in the style familiar from modern
// compilers.
type Formatter struct {
	useColor bool
	kind     *color.Color
	location *color.Color
	caret    *color.Color
}

// NewFormatter returns a formatter. Color output is the caller's decision;
// pass false for plain text (pipes, logs, tests).
func NewFormatter(useColor bool) *Formatter {
	f := &Formatter{
		useColor: useColor,
		kind:     color.New(color.FgRed, color.Bold),
		location: color.New(color.FgCyan),
		caret:    color.New(color.FgRed, color.Bold),
	}
	if useColor {
		f.kind.EnableColor()
		f.location.EnableColor()
		f.caret.EnableColor()
	} else {
		f.kind.DisableColor()
		f.location.DisableColor()
		f.caret.DisableColor()
	}
	return f
}

// Format renders one diagnostic against the source text it was produced from.
// The output ends with a newline.
func (f *Formatter) Format(d Diagnostic, source string) string {
	var b strings.Builder
	b.WriteString(f.kind.Sprint(string(d.Kind)))
	b.WriteString(": ")
	b.WriteString(d.Message)
	b.WriteString("\n")

	lineNum := d.Erroneous.Start.LineNumber()
	colNum := d.Erroneous.Start.ColumnNumber()
	fmt.Fprintf(&b, " %s %s\n",
		f.location.Sprint("-->"),
		f.location.Sprintf("%s:%d:%d", d.Source.Name(), lineNum, colNum))

	line, ok := sourceLine(source, d.Erroneous.Start.LineStart)
	if !ok {
		return b.String()
	}
	gutter := len(fmt.Sprintf("%d", lineNum))
	fmt.Fprintf(&b, " %s |\n", strings.Repeat(" ", gutter))
	fmt.Fprintf(&b, " %d | %s\n", lineNum, line)

	width := d.Erroneous.Len()
	// underline at most to the end of the line, and never less than one caret
	if max := len(line) - d.Erroneous.Start.Column; width > max {
		width = max
	}
	if width < 1 {
		width = 1
	}
	fmt.Fprintf(&b, " %s | %s%s\n",
		strings.Repeat(" ", gutter),
		strings.Repeat(" ", d.Erroneous.Start.Column),
		f.caret.Sprint(strings.Repeat("^", width)))
	return b.String()
}

// FormatAll renders every diagnostic, separated by blank lines.
func (f *Formatter) FormatAll(diags []Diagnostic, source string) string {
	parts := make([]string, 0, len(diags))
	for _, d := range diags {
		parts = append(parts, f.Format(d, source))
	}
	return strings.Join(parts, "\n")
}

// sourceLine extracts the line beginning at the given byte offset, without
// its trailing newline. Reports false if the offset is out of range.
func sourceLine(source string, lineStart int) (string, bool) {
	if lineStart < 0 || lineStart > len(source) {
		return "", false
	}
	rest := source[lineStart:]
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		rest = rest[:i]
	}
	return strings.TrimSuffix(rest, "\r"), true
}
