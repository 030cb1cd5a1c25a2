// Package console implements derx509.LinePrinter on top of
// github.com/gonvenience/bunt, the same truecolor/ANSI markup library
// homeport-dyff uses to render its structured diffs to a terminal.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/gonvenience/bunt"

	"github.com/coretta-labs/derx509"
)

// Printer is a derx509.LinePrinter that writes indented, colorized text to
// an io.Writer. Indentation grows by two spaces per BeginType and shrinks
// back on the matching EndType; a line only gets its indent prefix once,
// at BeginLine, so PrintFmt/PrintlnFmt calls within the same line append
// without re-indenting.
type Printer struct {
	w     io.Writer
	depth int
}

// New returns a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

var _ derx509.LinePrinter = (*Printer)(nil)

func (p *Printer) indent() string { return strings.Repeat("  ", p.depth) }

// BeginLine writes the current indent prefix, ready for Print/Println calls.
func (p *Printer) BeginLine() {
	fmt.Fprint(p.w, p.indent())
}

// BeginType increases the indent level used by subsequent lines.
func (p *Printer) BeginType() { p.depth++ }

// EndType decreases the indent level. It is a no-op (rather than going
// negative) if called without a matching BeginType, which should never
// happen when driven by Walk or PrintType.
func (p *Printer) EndType() {
	if p.depth > 0 {
		p.depth--
	}
}

// PrintStr writes s to the current line without coloring.
func (p *Printer) PrintStr(s string) {
	fmt.Fprint(p.w, s)
}

// PrintFmt writes the formatted text, colorized as a whole in
// CornflowerBlue, to the current line without terminating it.
func (p *Printer) PrintFmt(format string, args ...any) {
	fmt.Fprint(p.w, bunt.Colorize(fmt.Sprintf(format, args...), bunt.CornflowerBlue))
}

// PrintlnStr writes s followed by a newline, closing the current line.
func (p *Printer) PrintlnStr(s string) {
	fmt.Fprintln(p.w, bunt.Colorize(s, bunt.CornflowerBlue))
}

// PrintlnFmt writes a formatted, colorized line and terminates it.
func (p *Printer) PrintlnFmt(format string, args ...any) {
	fmt.Fprintln(p.w, bunt.Colorize(fmt.Sprintf(format, args...), bunt.CornflowerBlue))
}
