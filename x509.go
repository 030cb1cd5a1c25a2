package derx509

/*
x509.go implements the X.509 v3 certificate grammar (component F): the
Certificate/TBSCertificate/AlgorithmIdentifier/SubjectPublicKeyInfo types
and the schema that decodes them via the Parser façade in parser.go.

Version gating is enforced per the package's Open Question resolution:
issuerUniqueID and subjectUniqueID require version >= v2, and extensions
require version == v3. A certificate that carries one of these fields under
a version that forbids it is rejected with ErrVersionMismatch rather than
silently accepted, which is what a permissive decoder would otherwise do.
*/

import "time"

// Version names the three TBSCertificate versions this package recognizes.
type Version int

const (
	VersionV1 Version = 0
	VersionV2 Version = 1
	VersionV3 Version = 2
)

// Constructed pairs a decoded value with the exact SEQUENCE contents (the
// bytes between the length header and the end of the TLV, not including the
// identifier/length octets themselves) it was decoded from. It is used for
// TBSCertificate, whose raw encoding is what a certificate's signature
// actually covers.
type Constructed[T any] struct {
	Raw   []byte
	Value T
}

// AlgorithmIdentifier is AlgorithmIdentifier ::= SEQUENCE { algorithm
// OBJECT IDENTIFIER, parameters ANY DEFINED BY algorithm OPTIONAL }.
// Parameters is kept as the raw, still-undecoded TLV bytes of whatever
// optional value followed the OID, or nil if none was present.
type AlgorithmIdentifier struct {
	Algorithm  ObjectIdentifier
	Parameters []byte
}

func parseAlgorithmIdentifier(p *Parser) (AlgorithmIdentifier, error) {
	seq, err := Expect[Sequence](p)
	if err != nil {
		return AlgorithmIdentifier{}, err
	}
	return ParseAll(seq, func(inner *Parser) (AlgorithmIdentifier, error) {
		oid, err := Expect[ObjectIdentifier](inner)
		if err != nil {
			return AlgorithmIdentifier{}, err
		}
		var params []byte
		if raw, _, done, err := inner.NextRaw(); err != nil {
			return AlgorithmIdentifier{}, err
		} else if !done {
			params = raw
		}
		return AlgorithmIdentifier{Algorithm: oid, Parameters: params}, nil
	})
}

// Validity is Validity ::= SEQUENCE { notBefore Time, notAfter Time }. Time
// is CHOICE { utcTime UTCTime, generalTime GeneralizedTime } in RFC 5280;
// this package accepts either for both fields.
type Validity struct {
	NotBefore time.Time
	NotAfter  time.Time
}

func parseTime(p *Parser) (time.Time, error) {
	if v, ok, err := GetOptional[UTCTime](p); err != nil {
		return time.Time{}, err
	} else if ok {
		return time.Time(v), nil
	}
	if v, ok, err := GetOptional[GeneralizedTime](p); err != nil {
		return time.Time{}, err
	} else if ok {
		return time.Time(v), nil
	}
	raw, err := p.ExpectAny()
	if err != nil {
		return time.Time{}, err
	}
	return time.Time{}, UnexpectedType(IDUTCTime, raw.typeID())
}

func parseValidity(p *Parser) (Validity, error) {
	seq, err := Expect[Sequence](p)
	if err != nil {
		return Validity{}, err
	}
	return ParseAll(seq, func(inner *Parser) (Validity, error) {
		notBefore, err := parseTime(inner)
		if err != nil {
			return Validity{}, err
		}
		notAfter, err := parseTime(inner)
		if err != nil {
			return Validity{}, err
		}
		return Validity{NotBefore: notBefore, NotAfter: notAfter}, nil
	})
}

// SubjectPublicKeyInfo is SubjectPublicKeyInfo ::= SEQUENCE { algorithm
// AlgorithmIdentifier, subjectPublicKey BIT STRING }.
type SubjectPublicKeyInfo struct {
	Algorithm AlgorithmIdentifier
	PublicKey BitString
}

func parseSubjectPublicKeyInfo(p *Parser) (SubjectPublicKeyInfo, error) {
	seq, err := Expect[Sequence](p)
	if err != nil {
		return SubjectPublicKeyInfo{}, err
	}
	return ParseAll(seq, func(inner *Parser) (SubjectPublicKeyInfo, error) {
		alg, err := parseAlgorithmIdentifier(inner)
		if err != nil {
			return SubjectPublicKeyInfo{}, err
		}
		key, err := Expect[BitString](inner)
		if err != nil {
			return SubjectPublicKeyInfo{}, err
		}
		return SubjectPublicKeyInfo{Algorithm: alg, PublicKey: key}, nil
	})
}

// TBSCertificate is TBSCertificate ::= SEQUENCE as defined in RFC 5280
// §4.1.2, with version defaulting to VersionV1 when absent.
type TBSCertificate struct {
	Version              Version
	SerialNumber         Integer
	Signature            AlgorithmIdentifier
	Issuer               Name
	Validity             Validity
	Subject              Name
	SubjectPublicKeyInfo SubjectPublicKeyInfo
	IssuerUniqueID       *BitString
	SubjectUniqueID      *BitString
	Extensions           *Extensions
}

func parseTBSCertificate(seq Sequence) (TBSCertificate, error) {
	return ParseAll(seq, func(p *Parser) (TBSCertificate, error) {
		var tbs TBSCertificate

		version, present, err := GetOptionalExplicitTagValue[Integer](p, 0)
		if err != nil {
			return TBSCertificate{}, err
		}
		tbs.Version = VersionV1
		if present {
			v, ok := version.AsInt32()
			if !ok || v < int32(VersionV1) || v > int32(VersionV3) {
				return TBSCertificate{}, BadEnumValue("version", int(v))
			}
			tbs.Version = Version(v)
		}

		serial, err := Expect[Integer](p)
		if err != nil {
			return TBSCertificate{}, err
		}
		tbs.SerialNumber = serial

		sig, err := parseAlgorithmIdentifier(p)
		if err != nil {
			return TBSCertificate{}, err
		}
		tbs.Signature = sig

		issuerSeq, err := Expect[Sequence](p)
		if err != nil {
			return TBSCertificate{}, err
		}
		tbs.Issuer = Name{raw: issuerSeq}

		validity, err := parseValidity(p)
		if err != nil {
			return TBSCertificate{}, err
		}
		tbs.Validity = validity

		subjectSeq, err := Expect[Sequence](p)
		if err != nil {
			return TBSCertificate{}, err
		}
		tbs.Subject = Name{raw: subjectSeq}

		spki, err := parseSubjectPublicKeyInfo(p)
		if err != nil {
			return TBSCertificate{}, err
		}
		tbs.SubjectPublicKeyInfo = spki

		issuerUID, present, err := GetOptionalImplicitBitString(p, 1)
		if err != nil {
			return TBSCertificate{}, err
		}
		if present {
			if tbs.Version < VersionV2 {
				return TBSCertificate{}, ErrVersionMismatch
			}
			tbs.IssuerUniqueID = &issuerUID
		}

		subjectUID, present, err := GetOptionalImplicitBitString(p, 2)
		if err != nil {
			return TBSCertificate{}, err
		}
		if present {
			if tbs.Version < VersionV2 {
				return TBSCertificate{}, ErrVersionMismatch
			}
			tbs.SubjectUniqueID = &subjectUID
		}

		extTag, present, err := p.GetOptionalExplicitTag(3)
		if err != nil {
			return TBSCertificate{}, err
		}
		if present {
			if tbs.Version != VersionV3 {
				return TBSCertificate{}, ErrVersionMismatch
			}
			exts, err := ParseAll(extTag.Content, func(outer *Parser) (Extensions, error) {
				seq, err := Expect[Sequence](outer)
				if err != nil {
					return Extensions{}, err
				}
				return ParseAll(seq, parseExtensionsSequence)
			})
			if err != nil {
				return TBSCertificate{}, err
			}
			tbs.Extensions = &exts
		}

		return tbs, nil
	})
}

// GetOptionalImplicitBitString mirrors GetOptionalExplicitTagValue for the
// IMPLICIT [n] BIT STRING fields of TBSCertificate, where the BIT STRING's
// universal tag has been entirely replaced by the context tag at the wire
// level (not wrapped in an additional constructed TLV).
func GetOptionalImplicitBitString(p *Parser, n int) (BitString, bool, error) {
	tag, present, err := p.GetOptionalImplicitPrimitiveTag(n)
	if err != nil || !present {
		return BitString{}, false, err
	}
	v, err := ParseImplicit[BitString](tag)
	if err != nil {
		return BitString{}, false, err
	}
	return v, true, nil
}

// Certificate is Certificate ::= SEQUENCE { tbsCertificate TBSCertificate,
// signatureAlgorithm AlgorithmIdentifier, signatureValue BIT STRING }.
type Certificate struct {
	TBSCertificate     Constructed[TBSCertificate]
	SignatureAlgorithm AlgorithmIdentifier
	SignatureValue     BitString
}

// ParseCertificate decodes a DER-encoded X.509 certificate from buf.
func ParseCertificate(buf []byte) (Certificate, error) {
	outer := NewParser(buf)
	outerSeq, err := Expect[Sequence](outer)
	if err != nil {
		return Certificate{}, err
	}
	if err := outer.ExpectEnd(); err != nil {
		return Certificate{}, err
	}
	return ParseAll(outerSeq, func(p *Parser) (Certificate, error) {
		tbsSeq, err := Expect[Sequence](p)
		if err != nil {
			return Certificate{}, err
		}
		tbs, err := parseTBSCertificate(tbsSeq)
		if err != nil {
			return Certificate{}, err
		}

		sigAlg, err := parseAlgorithmIdentifier(p)
		if err != nil {
			return Certificate{}, err
		}

		sigValue, err := Expect[BitString](p)
		if err != nil {
			return Certificate{}, err
		}

		return Certificate{
			TBSCertificate:     Constructed[TBSCertificate]{Raw: []byte(tbsSeq), Value: tbs},
			SignatureAlgorithm: sigAlg,
			SignatureValue:     sigValue,
		}, nil
	})
}
