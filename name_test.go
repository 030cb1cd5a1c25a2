package derx509

import "testing"

// Well-known DN attribute OID content bytes (X.690 §8.19 encoding),
// reused across name_test.go and x509_test.go.
var (
	oidBytesCommonName  = []byte{0x55, 0x04, 0x03}
	oidBytesCountryName = []byte{0x55, 0x04, 0x06}
)

func attributeTypeAndValue(oidContent []byte, value string) []byte {
	oid := tlv(ClassUniversal, false, TagOID, oidContent)
	str := tlv(ClassUniversal, false, TagPrintableString, []byte(value))
	return tlv(ClassUniversal, true, TagSequence, append(oid, str...))
}

func rdn(avas ...[]byte) []byte {
	var content []byte
	for _, ava := range avas {
		content = append(content, ava...)
	}
	return tlv(ClassUniversal, true, TagSet, content)
}

func TestNameParse(t *testing.T) {
	cnAVA := attributeTypeAndValue(oidBytesCommonName, "example.com")
	countryAVA := attributeTypeAndValue(oidBytesCountryName, "US")

	raw := append(rdn(countryAVA), rdn(cnAVA)...)
	n := Name{raw: raw}

	parsed, err := n.Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.CommonName != "example.com" {
		t.Errorf("CommonName = %q, want %q", parsed.CommonName, "example.com")
	}
	if parsed.CountryName != "US" {
		t.Errorf("CountryName = %q, want %q", parsed.CountryName, "US")
	}
}

func TestNameParseDuplicateAttributeRejected(t *testing.T) {
	cnAVA1 := attributeTypeAndValue(oidBytesCommonName, "a.example.com")
	cnAVA2 := attributeTypeAndValue(oidBytesCommonName, "b.example.com")

	raw := rdn(cnAVA1, cnAVA2)
	n := Name{raw: raw}

	_, err := n.Parse()
	if err == nil {
		t.Fatal("expected an error for a duplicate commonName within one RDN")
	}
}

func TestNameParseIgnoresUnknownAttribute(t *testing.T) {
	unknownOID := []byte{0x2B, 0x06, 0x01, 0x04, 0x01, 0x01} // arbitrary unregistered OID
	unknownAVA := attributeTypeAndValue(unknownOID, "ignored")
	cnAVA := attributeTypeAndValue(oidBytesCommonName, "example.com")

	raw := rdn(unknownAVA, cnAVA)
	n := Name{raw: raw}

	parsed, err := n.Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.CommonName != "example.com" {
		t.Errorf("CommonName = %q, want %q", parsed.CommonName, "example.com")
	}
}
