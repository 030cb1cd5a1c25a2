package derx509

/*
oid.go implements the ASN.1 OBJECT IDENTIFIER value (component C's OID
decode path) and the OID-to-symbolic-name catalog (component G).

Each arc is bounded to 28 bits (4 base-128 continuation bytes), which keeps
every arc safely within a uint32 and matches the cap described in the
package documentation.
*/

import "strconv"

// ObjectIdentifier is an unbounded sequence of unsigned 32-bit arcs.
type ObjectIdentifier []uint32

// String renders the dotted-number form, e.g. "1.2.840.113549.1.1.5".
func (o ObjectIdentifier) String() string {
	parts := make([]string, len(o))
	for i, arc := range o {
		parts[i] = strconv.FormatUint(uint64(arc), 10)
	}
	return join(parts, ".")
}

// Equal reports whether o and other have identical arcs.
func (o ObjectIdentifier) Equal(other ObjectIdentifier) bool {
	if len(o) != len(other) {
		return false
	}
	for i := range o {
		if o[i] != other[i] {
			return false
		}
	}
	return true
}

// decodeObjectIdentifier decodes an OID's content octets per X.690 §8.19:
// the first byte encodes the first two arcs as 40*a + b, and each
// subsequent arc is base-128 encoded with the MSB as a continuation flag.
func decodeObjectIdentifier(content []byte) (ObjectIdentifier, error) {
	if len(content) == 0 {
		return nil, ErrEndOfStream
	}

	first := content[0]
	arcs := []uint32{uint32(first / 40), uint32(first % 40)}

	cursor := content[1:]
	for len(cursor) > 0 {
		var value uint32
		count := 0
		for {
			if count > 3 {
				return nil, ErrBadOidLength
			}
			if len(cursor) == 0 {
				return nil, ErrEndOfStream
			}
			b := cursor[0]
			cursor = cursor[1:]
			value = value<<7 | uint32(b&0x7F)
			count++
			if b&0x80 == 0 {
				break
			}
		}
		arcs = append(arcs, value)
	}

	return ObjectIdentifier(arcs), nil
}

// namedOIDs is the append-only catalog described by component G: a closed
// mapping from a numeric OID to a stable symbolic name, with callers
// expected to fall back to the dotted-number rendering for anything not
// listed here.
var namedOIDs = map[string]string{
	"2.5.4.3":                  "commonName",
	"2.5.4.6":                  "countryName",
	"2.5.4.7":                  "localityName",
	"2.5.4.8":                  "stateOrProvinceName",
	"2.5.4.10":                 "organizationName",
	"2.5.4.11":                 "organizationalUnitName",
	"1.3.101.112":              "Ed25519",
	"2.5.29.14":                "subjectKeyIdentifier",
	"2.5.29.15":                "keyUsage",
	"2.5.29.17":                "subjectAltName",
	"2.5.29.19":                "basicConstraints",
	"2.5.29.37":                "extKeyUsage",
	"1.3.6.1.5.5.7.3.1":        "serverAuth",
	"1.3.6.1.5.5.7.3.2":        "clientAuth",
	"1.3.6.1.5.5.7.3.3":        "codeSigning",
	"1.3.6.1.5.5.7.3.4":        "emailProtection",
	"1.3.6.1.5.5.7.3.8":        "timeStamping",
	"1.3.6.1.5.5.7.3.9":        "OCSPSigning",
	"1.3.6.1.4.1.50316.802.1":  "modbusRole",
}

// LookupOID returns the symbolic name registered for id, and whether one was
// found. Unregistered OIDs should be rendered using ObjectIdentifier.String.
func LookupOID(id ObjectIdentifier) (string, bool) {
	name, ok := namedOIDs[id.String()]
	return name, ok
}

// well-known DN attribute and extended-key-usage OIDs, used by name.go,
// extensions.go and x509.go.
var (
	oidCommonName             = ObjectIdentifier{2, 5, 4, 3}
	oidCountryName            = ObjectIdentifier{2, 5, 4, 6}
	oidLocalityName           = ObjectIdentifier{2, 5, 4, 7}
	oidStateOrProvinceName    = ObjectIdentifier{2, 5, 4, 8}
	oidOrganizationName       = ObjectIdentifier{2, 5, 4, 10}
	oidOrganizationalUnitName = ObjectIdentifier{2, 5, 4, 11}

	oidExtSubjectKeyIdentifier = ObjectIdentifier{2, 5, 29, 14}
	oidExtKeyUsage             = ObjectIdentifier{2, 5, 29, 15}
	oidExtSubjectAltName       = ObjectIdentifier{2, 5, 29, 17}
	oidExtBasicConstraints     = ObjectIdentifier{2, 5, 29, 19}
	oidExtExtendedKeyUsage     = ObjectIdentifier{2, 5, 29, 37}
	oidExtModbusRole           = ObjectIdentifier{1, 3, 6, 1, 4, 1, 50316, 802, 1}

	oidEKUServerAuth       = ObjectIdentifier{1, 3, 6, 1, 5, 5, 7, 3, 1}
	oidEKUClientAuth       = ObjectIdentifier{1, 3, 6, 1, 5, 5, 7, 3, 2}
	oidEKUCodeSigning      = ObjectIdentifier{1, 3, 6, 1, 5, 5, 7, 3, 3}
	oidEKUEmailProtection  = ObjectIdentifier{1, 3, 6, 1, 5, 5, 7, 3, 4}
	oidEKUTimeStamping     = ObjectIdentifier{1, 3, 6, 1, 5, 5, 7, 3, 8}
	oidEKUOCSPSigning      = ObjectIdentifier{1, 3, 6, 1, 5, 5, 7, 3, 9}
)
