package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/coretta-labs/derx509"
	"github.com/coretta-labs/derx509/internal/console"
)

var derCmd = &cobra.Command{
	Use:   "der <file>",
	Short: "Walk a DER-encoded file as a generic ASN.1 tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		buf, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		sink := console.New(os.Stdout)
		handler := &treeHandler{sink: sink}
		if verbose {
			log.Debugf("walking %d bytes from %s", len(buf), args[0])
		}
		// A decode failure is reported on the diagnostic stream (through
		// handler.OnError) but must not change the command's exit code;
		// only argument/I-O problems do that.
		_ = derx509.Walk(buf, handler)
		return nil
	},
}

// treeHandler renders Walk's callbacks through a LinePrinter, indenting one
// level per nested constructed value.
type treeHandler struct {
	sink *console.Printer
}

func (h *treeHandler) BeginConstructed(id derx509.Identifier, depth int) {
	h.sink.BeginLine()
	h.sink.PrintlnFmt("%s %s [%d]:", id.Class, constructedName(id), id.Tag)
	h.sink.BeginType()
}

func (h *treeHandler) EndConstructed(id derx509.Identifier, depth int) {
	h.sink.EndType()
}

func (h *treeHandler) OnType(id derx509.Identifier, val derx509.ASNType, depth int) {
	if id.Constructed {
		// BeginConstructed announces the container itself; avoid printing it twice.
		return
	}
	if printable, ok := val.(derx509.Printable); ok {
		derx509.PrintType(id.Class.String(), printable, h.sink)
		return
	}
	h.sink.BeginLine()
	h.sink.PrintlnFmt("%s tag=%d (unrendered)", id.Class, id.Tag)
}

func (h *treeHandler) OnError(err error, depth int) {
	log.WithError(err).Error("decode failed")
}

func constructedName(id derx509.Identifier) string {
	switch id.Tag {
	case derx509.TagSequence:
		return "SEQUENCE"
	case derx509.TagSet:
		return "SET"
	default:
		return "constructed"
	}
}
