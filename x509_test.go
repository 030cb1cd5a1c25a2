package derx509

import (
	"errors"
	"testing"
)

var ed25519OID = []byte{0x2B, 0x65, 0x70} // 1.3.101.112

func algorithmIdentifierBytes() []byte {
	oid := tlv(ClassUniversal, false, TagOID, ed25519OID)
	return tlv(ClassUniversal, true, TagSequence, oid)
}

func nameBytes(commonName string) []byte {
	ava := attributeTypeAndValue(oidBytesCommonName, commonName)
	return tlv(ClassUniversal, true, TagSequence, rdn(ava))
}

func validityBytes(notBefore, notAfter string) []byte {
	nb := tlv(ClassUniversal, false, TagUTCTime, []byte(notBefore))
	na := tlv(ClassUniversal, false, TagUTCTime, []byte(notAfter))
	return tlv(ClassUniversal, true, TagSequence, append(nb, na...))
}

func spkiBytes() []byte {
	alg := algorithmIdentifierBytes()
	key := tlv(ClassUniversal, false, TagBitString, []byte{0x00, 0xAB, 0xCD})
	return tlv(ClassUniversal, true, TagSequence, append(alg, key...))
}

// buildCertificate assembles a DER-encoded certificate. version < 0 omits
// the version field entirely (implying v1); extensions == nil omits the
// [3] extensions field, otherwise it holds the concatenated Extension
// SEQUENCEs, which are wrapped in the SEQUENCE OF and then the [3] tag.
func buildCertificate(version int, extensions []byte) []byte {
	var tbsContent []byte
	if version >= 0 {
		versionInt := tlv(ClassUniversal, false, TagInteger, []byte{byte(version)})
		tbsContent = append(tbsContent, tlv(ClassContextSpecific, true, 0, versionInt)...)
	}
	tbsContent = append(tbsContent, tlv(ClassUniversal, false, TagInteger, []byte{0x01})...)
	tbsContent = append(tbsContent, algorithmIdentifierBytes()...)
	tbsContent = append(tbsContent, nameBytes("Test CA")...)
	tbsContent = append(tbsContent, validityBytes("240101000000Z", "250101000000Z")...)
	tbsContent = append(tbsContent, nameBytes("example.com")...)
	tbsContent = append(tbsContent, spkiBytes()...)
	if extensions != nil {
		tbsContent = append(tbsContent, tlv(ClassContextSpecific, true, 3, tlv(ClassUniversal, true, TagSequence, extensions))...)
	}
	tbs := tlv(ClassUniversal, true, TagSequence, tbsContent)

	certContent := append([]byte{}, tbs...)
	certContent = append(certContent, algorithmIdentifierBytes()...)
	certContent = append(certContent, tlv(ClassUniversal, false, TagBitString, []byte{0x00, 0x01, 0x02})...)
	return tlv(ClassUniversal, true, TagSequence, certContent)
}

func TestParseCertificateV1(t *testing.T) {
	buf := buildCertificate(-1, nil)
	cert, err := ParseCertificate(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tbs := cert.TBSCertificate.Value
	if tbs.Version != VersionV1 {
		t.Errorf("got version %v, want VersionV1", tbs.Version)
	}
	if v, _ := tbs.SerialNumber.AsInt32(); v != 1 {
		t.Errorf("got serial %d, want 1", v)
	}
	subject, err := tbs.Subject.Parse()
	if err != nil {
		t.Fatalf("unexpected error parsing subject: %v", err)
	}
	if subject.CommonName != "example.com" {
		t.Errorf("got subject CN %q, want %q", subject.CommonName, "example.com")
	}
	if tbs.Extensions != nil {
		t.Error("v1 certificate must not carry extensions")
	}
}

func TestParseCertificateV3WithExtensions(t *testing.T) {
	bcValue := tlv(ClassUniversal, true, TagSequence, tlv(ClassUniversal, false, TagBoolean, []byte{0xFF}))
	bcOID := []byte{0x55, 0x1D, 0x13}
	ext := extensionSeq(bcOID, true, bcValue)

	buf := buildCertificate(2, ext)
	cert, err := ParseCertificate(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tbs := cert.TBSCertificate.Value
	if tbs.Version != VersionV3 {
		t.Errorf("got version %v, want VersionV3", tbs.Version)
	}
	if tbs.Extensions == nil || len(tbs.Extensions.List) != 1 {
		t.Fatalf("got %v, want exactly one extension", tbs.Extensions)
	}
	specific, err := DecodeSpecific(tbs.Extensions.List[0])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bc, ok := specific.(BasicConstraints)
	if !ok || !bc.IsCA {
		t.Errorf("got %#v, want BasicConstraints{IsCA: true}", specific)
	}
}

func TestParseCertificateRejectsExtensionsUnderV1(t *testing.T) {
	bcValue := tlv(ClassUniversal, true, TagSequence, tlv(ClassUniversal, false, TagBoolean, []byte{0xFF}))
	ext := extensionSeq([]byte{0x55, 0x1D, 0x13}, true, bcValue)

	buf := buildCertificate(-1, ext)
	_, err := ParseCertificate(buf)
	if !errors.Is(err, ErrVersionMismatch) {
		t.Errorf("got %v, want ErrVersionMismatch", err)
	}
}

func TestParseCertificateTBSCertificateRawBytes(t *testing.T) {
	buf := buildCertificate(-1, nil)
	cert, err := ParseCertificate(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cert.TBSCertificate.Raw) == 0 {
		t.Fatal("expected non-empty raw TBSCertificate bytes")
	}
	// Raw must be the SEQUENCE contents window, not the identifier/length
	// header plus content: re-running it straight through parseTBSCertificate
	// (which expects to be handed a Sequence's contents, not a fresh TLV
	// stream) must succeed.
	reparsed, err := parseTBSCertificate(Sequence(cert.TBSCertificate.Raw))
	if err != nil {
		t.Fatalf("raw TBSCertificate bytes did not re-parse: %v", err)
	}
	if v, _ := reparsed.SerialNumber.AsInt32(); v != 1 {
		t.Errorf("got serial %d, want 1", v)
	}
}
