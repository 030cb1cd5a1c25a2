package derx509

import (
	"errors"
	"testing"
)

func extensionSeq(oidContent []byte, critical bool, value []byte) []byte {
	oid := tlv(ClassUniversal, false, TagOID, oidContent)
	extnValue := tlv(ClassUniversal, false, TagOctetString, value)
	content := append([]byte{}, oid...)
	if critical {
		content = append(content, tlv(ClassUniversal, false, TagBoolean, []byte{0xFF})...)
	}
	content = append(content, extnValue...)
	return tlv(ClassUniversal, true, TagSequence, content)
}

func TestParseExtensionsSequence(t *testing.T) {
	bcValue := tlv(ClassUniversal, true, TagSequence, tlv(ClassUniversal, false, TagBoolean, []byte{0xFF}))
	bcBytes := []byte{0x55, 0x1D, 0x13} // 2.5.29.19 basicConstraints

	ext := extensionSeq(bcBytes, true, bcValue)
	exts, err := ParseAll(ext, parseExtensionsSequence)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(exts.List) != 1 {
		t.Fatalf("got %d extensions, want 1", len(exts.List))
	}
	if !exts.List[0].Critical {
		t.Error("expected Critical=true")
	}
	if !exts.List[0].ExtnID.Equal(oidExtBasicConstraints) {
		t.Errorf("got ExtnID %v, want basicConstraints", exts.List[0].ExtnID)
	}
}

func TestParseKeyUsage(t *testing.T) {
	// digitalSignature (bit 0) and keyEncipherment (bit 2) set: 1010 0000,
	// 0 unused bits.
	content := append([]byte{0x00}, 0xA0)
	ku, err := parseKeyUsage(tlv(ClassUniversal, false, TagBitString, content))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ku.Has(KeyUsageDigitalSignature) {
		t.Error("expected digitalSignature to be set")
	}
	if ku.Has(KeyUsageNonRepudiation) {
		t.Error("expected nonRepudiation to be unset")
	}
	if !ku.Has(KeyUsageKeyEncipherment) {
		t.Error("expected keyEncipherment to be set")
	}
	if ku.Has(KeyUsageDecipherOnly) {
		t.Error("expected decipherOnly to be unset")
	}
}

func TestParseBasicConstraints(t *testing.T) {
	inner := append(tlv(ClassUniversal, false, TagBoolean, []byte{0xFF}),
		tlv(ClassUniversal, false, TagInteger, []byte{0x02})...)
	value := tlv(ClassUniversal, true, TagSequence, inner)

	bc, err := parseBasicConstraints(value)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bc.IsCA {
		t.Error("expected IsCA=true")
	}
	if bc.PathLenConstraint == nil || *bc.PathLenConstraint != 2 {
		t.Errorf("got %v, want PathLenConstraint=2", bc.PathLenConstraint)
	}
}

func TestParseBasicConstraintsRejectsEmptySequence(t *testing.T) {
	empty := tlv(ClassUniversal, true, TagSequence, nil)
	_, err := parseBasicConstraints(empty)
	if err == nil {
		t.Fatal("expected an error for an empty constructed SEQUENCE")
	}
}

func TestParseExtendedKeyUsage(t *testing.T) {
	serverAuthOID := []byte{0x2B, 0x06, 0x01, 0x05, 0x05, 0x07, 0x03, 0x01}
	inner := tlv(ClassUniversal, false, TagOID, serverAuthOID)
	value := tlv(ClassUniversal, true, TagSequence, inner)

	eku, err := parseExtendedKeyUsage(value)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(eku) != 1 || eku[0] != EKUServerAuth {
		t.Errorf("got %v, want [EKUServerAuth]", eku)
	}
}

func TestParseExtendedKeyUsageRejectsUnknownOID(t *testing.T) {
	unknownOID := []byte{0x2B, 0x06, 0x01, 0x04, 0x01, 0x01}
	inner := tlv(ClassUniversal, false, TagOID, unknownOID)
	value := tlv(ClassUniversal, true, TagSequence, inner)

	_, err := parseExtendedKeyUsage(value)
	var derr *Error
	if !errors.As(err, &derr) || derr.Tag != "UnexpectedOid" {
		t.Errorf("got %v, want UnexpectedOid", err)
	}
}

func TestParseSubjectAlternativeName(t *testing.T) {
	dns := tlv(ClassContextSpecific, false, 2, []byte("example.com"))
	email := tlv(ClassContextSpecific, false, 1, []byte("user@example.com"))
	value := tlv(ClassUniversal, true, TagSequence, append(dns, email...))

	san, err := parseSubjectAlternativeName(value)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(san) != 2 {
		t.Fatalf("got %d names, want 2", len(san))
	}
	if san[0].DNSName != "example.com" {
		t.Errorf("got %q, want %q", san[0].DNSName, "example.com")
	}
	if san[1].RFC822Name != "user@example.com" {
		t.Errorf("got %q, want %q", san[1].RFC822Name, "user@example.com")
	}
}

func TestParseSubjectAlternativeNameRejectsUnknownTag(t *testing.T) {
	x400Address := tlv(ClassContextSpecific, false, 3, []byte{0x01})
	value := tlv(ClassUniversal, true, TagSequence, x400Address)

	_, err := parseSubjectAlternativeName(value)
	var derr *Error
	if !errors.As(err, &derr) || derr.Tag != "UnexpectedTag" {
		t.Errorf("got %v, want UnexpectedTag", err)
	}
}

func TestParseModbusRole(t *testing.T) {
	value := tlv(ClassUniversal, false, TagInteger, []byte{0x02})
	role, err := parseModbusRole(value)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if role != 2 {
		t.Errorf("got %v, want 2", role)
	}
}

func TestDecodeSpecificUnknownExtension(t *testing.T) {
	ext := Extension{ExtnID: ObjectIdentifier{9, 9, 9}, Value: []byte{0xDE, 0xAD}}
	got, err := DecodeSpecific(ext)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	unknown, ok := got.(UnknownExtension)
	if !ok {
		t.Fatalf("got %T, want UnknownExtension", got)
	}
	if unknown.ExtnID.String() != "9.9.9" {
		t.Errorf("got %v", unknown.ExtnID)
	}
}
