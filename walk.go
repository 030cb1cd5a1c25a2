package derx509

/*
walk.go implements the generic diagnostic tree walker (component E): a
visitor that descends through every TLV in a DER stream, including nested
constructed values, without knowing anything about X.509 grammar. It backs
the "der" subcommand of the CLI (cmd/derdump) and is also useful on its own
for dumping arbitrary DER-encoded structures.

Recursion is bounded so that adversarially deep nesting cannot exhaust the
goroutine stack; maxWalkDepth matches the cap used in the corpus's own
tree-walking helpers for BER/CER PDUs.
*/

const maxWalkDepth = 128

// ParseHandler receives callbacks as Walk descends through a DER stream.
// For a SEQUENCE, SET or constructed ExplicitTag, OnType is called with the
// container's own decoded value first, then BeginConstructed/EndConstructed
// bracket the recursive walk of its contents. OnType alone is called for
// every leaf (primitive) value, including a primitive context-specific tag. OnError is called at most once, when decoding fails,
// and Walk returns immediately afterward.
type ParseHandler interface {
	BeginConstructed(id Identifier, depth int)
	EndConstructed(id Identifier, depth int)
	OnType(id Identifier, val ASNType, depth int)
	OnError(err error, depth int)
}

// Walk decodes every TLV in buf, invoking handler's callbacks in document
// order. It returns the first decode error encountered (handler.OnError is
// called before Walk returns it), or a depth-limit error if recursion would
// exceed maxWalkDepth.
func Walk(buf []byte, handler ParseHandler) error {
	return walk(buf, handler, 0)
}

func walk(buf []byte, handler ParseHandler, depth int) error {
	if depth > maxWalkDepth {
		err := newErr(KindStructural, "WalkDepthExceeded", "DER tree nesting exceeds the supported depth")
		handler.OnError(err, depth)
		return err
	}

	r := NewReader(buf)
	for !r.IsEmpty() {
		idByte, err := r.ReadOne()
		if err != nil {
			handler.OnError(err, depth)
			return err
		}
		id, err := decodeIdentifier(idByte)
		if err != nil {
			handler.OnError(err, depth)
			return err
		}
		length, err := decodeLength(r)
		if err != nil {
			handler.OnError(err, depth)
			return err
		}
		content, err := r.Take(length)
		if err != nil {
			handler.OnError(err, depth)
			return err
		}

		val, err := decodeValue(id, content)
		if err != nil {
			handler.OnError(err, depth)
			return err
		}
		handler.OnType(id, val, depth)

		if isConstructedContainer(id) {
			handler.BeginConstructed(id, depth)
			if err := walk(content, handler, depth+1); err != nil {
				return err
			}
			handler.EndConstructed(id, depth)
		}
	}
	return nil
}

// isConstructedContainer reports whether id's content should itself be
// walked recursively rather than decoded as a single leaf value: every
// constructed identifier qualifies, including context-specific explicit
// tags. An empty SEQUENCE/SET never reaches this check, since decodeValue
// has already rejected it.
func isConstructedContainer(id Identifier) bool {
	return id.Constructed
}
