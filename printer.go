package derx509

import "time"

/*
printer.go implements the output boundary (component H): a sink interface
decoupling the X.509 decoder's diagnostic rendering from any concrete
terminal or buffer implementation. This package never writes to a terminal
itself; internal/console provides the colorized implementation this
boundary is built for.
*/

// LinePrinter is the capability set a diagnostic rendering sink exposes.
// BeginLine starts a new line at the current indent level; BeginType and
// EndType adjust that indent level around a nested value; the Print/Println
// variants write to the current line, with Println also terminating it.
type LinePrinter interface {
	BeginLine()
	BeginType()
	EndType()
	PrintStr(s string)
	PrintFmt(format string, args ...any)
	PrintlnStr(s string)
	PrintlnFmt(format string, args ...any)
}

// Printable is implemented by any value that knows how to render itself
// through a LinePrinter.
type Printable interface {
	Print(sink LinePrinter)
}

// PrintType is the idiomatic helper named in the package documentation: it
// writes "name:", indents, delegates to printable's own rendering, then
// outdents.
func PrintType(name string, printable Printable, sink LinePrinter) {
	sink.BeginLine()
	sink.PrintlnFmt("%s:", name)
	sink.BeginType()
	printable.Print(sink)
	sink.EndType()
}

func (b Boolean) Print(sink LinePrinter) {
	sink.BeginLine()
	sink.PrintlnStr(bool2str(bool(b)))
}

func (n Integer) Print(sink LinePrinter) {
	sink.BeginLine()
	sink.PrintlnStr(n.String())
}

func (b BitString) Print(sink LinePrinter) {
	sink.BeginLine()
	sink.PrintlnFmt("%d bits, unused=%d", b.BitLen(), b.UnusedBits)
}

func (o OctetString) Print(sink LinePrinter) {
	sink.BeginLine()
	parts := make([]string, len(o))
	for i, bt := range o {
		parts[i] = hexByte(bt)
	}
	sink.PrintlnStr(join(parts, ":"))
}

func (Null) Print(sink LinePrinter) {
	sink.BeginLine()
	sink.PrintlnStr("NULL")
}

func (o ObjectIdentifier) Print(sink LinePrinter) {
	sink.BeginLine()
	if name, ok := LookupOID(o); ok {
		sink.PrintlnFmt("%s (%s)", o.String(), name)
		return
	}
	sink.PrintlnStr(o.String())
}

func (s PrintableString) Print(sink LinePrinter) {
	sink.BeginLine()
	sink.PrintlnStr(string(s))
}

func (s IA5String) Print(sink LinePrinter) {
	sink.BeginLine()
	sink.PrintlnStr(string(s))
}

func (s UTF8String) Print(sink LinePrinter) {
	sink.BeginLine()
	sink.PrintlnStr(string(s))
}

func (t UTCTime) Print(sink LinePrinter) {
	sink.BeginLine()
	sink.PrintlnStr(time.Time(t).Format(time.RFC3339))
}

func (t GeneralizedTime) Print(sink LinePrinter) {
	sink.BeginLine()
	sink.PrintlnStr(time.Time(t).Format(time.RFC3339))
}
