/*
Package derx509 implements a strict DER (Distinguished Encoding Rules) decoder
and an X.509 v3 certificate parser built on top of it.

The package is organized, leaf components first, as:

  - reader.go:      panic-free cursor over a borrowed byte window
  - identifier.go:  ASN.1 identifier octet and DER length decoding
  - asntype.go:     the typed ASNType value universe and its decoder
  - errors.go:      the closed error taxonomy raised by every layer above
  - parser.go:      the schema-driven Parser façade used to walk a TLV stream
  - walk.go:         the generic recursive tree walker (an alternative,
    diagnostic-oriented consumer of the TLV stream)
  - oid.go:         the append-only OID-to-name catalog
  - time.go:        UTCTime / GeneralizedTime parsing
  - name.go:        the X.509 Name (Distinguished Name) type
  - x509.go:        Certificate / TBSCertificate / AlgorithmIdentifier
  - extensions.go:  the closed set of recognized X.509v3 extensions
  - printer.go:      the LinePrinter boundary interface

Every value produced by this package borrows from the caller-supplied input
slice. The caller must keep that slice alive for as long as any value parsed
from it remains in use. The package performs no I/O and makes no network or
filesystem calls; it is a pure function from bytes to a decoded tree, or an
error.
*/
package derx509
