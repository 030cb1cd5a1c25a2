package derx509

/*
extensions.go implements X.509v3 extensions (the remainder of component F):
the generic Extension/Extensions container, plus a closed sum type over the
handful of extensions this package gives structured meaning to. Every
Extension's extnValue is itself a nested DER encoding (an OCTET STRING whose
content bytes are a further TLV), so decoding a specific extension is always
a two-stage affair: unwrap extnValue, then parse the inner bytes against
that extension's own grammar.

KeyUsage in particular fixes a bit-indexing bug found in the reference this
package's schema was distilled from, which advanced its BIT STRING cursor
by doubling an offset instead of incrementing it; BitString.Bit's linear,
MSB-first indexing (asntype.go) is what every KeyUsage flag below is read
through, so the bug cannot recur here.
*/

// Extension is Extension ::= SEQUENCE { extnID OBJECT IDENTIFIER, critical
// BOOLEAN DEFAULT FALSE, extnValue OCTET STRING }. Value holds extnValue's
// raw content bytes: a further DER encoding specific to ExtnID.
type Extension struct {
	ExtnID   ObjectIdentifier
	Critical bool
	Value    []byte
}

// Extensions is the decoded SEQUENCE OF Extension carried by a v3
// TBSCertificate's [3] field.
type Extensions struct {
	List []Extension
}

func parseExtensionsSequence(p *Parser) (Extensions, error) {
	var out Extensions
	for {
		seq, present, err := ExpectOrEnd[Sequence](p)
		if err != nil {
			return Extensions{}, err
		}
		if !present {
			break
		}
		ext, err := parseExtension(seq)
		if err != nil {
			return Extensions{}, err
		}
		out.List = append(out.List, ext)
	}
	return out, nil
}

func parseExtension(seq Sequence) (Extension, error) {
	return ParseAll(seq, func(p *Parser) (Extension, error) {
		oid, err := Expect[ObjectIdentifier](p)
		if err != nil {
			return Extension{}, err
		}
		critical, err := GetOptionalOrDefault[Boolean](p, Boolean(false))
		if err != nil {
			return Extension{}, err
		}
		value, err := Expect[OctetString](p)
		if err != nil {
			return Extension{}, err
		}
		return Extension{ExtnID: oid, Critical: bool(critical), Value: value}, nil
	})
}

// Find returns the first extension matching id, and whether one was found.
func (e Extensions) Find(id ObjectIdentifier) (Extension, bool) {
	for _, ext := range e.List {
		if ext.ExtnID.Equal(id) {
			return ext, true
		}
	}
	return Extension{}, false
}

// SubjectKeyIdentifier is SubjectKeyIdentifier ::= OCTET STRING (RFC 5280
// §4.2.1.2).
type SubjectKeyIdentifier []byte

func parseSubjectKeyIdentifier(value []byte) (SubjectKeyIdentifier, error) {
	return ParseAll(value, func(p *Parser) (SubjectKeyIdentifier, error) {
		v, err := Expect[OctetString](p)
		if err != nil {
			return nil, err
		}
		return SubjectKeyIdentifier(v), nil
	})
}

// KeyUsage bit positions, per RFC 5280 §4.2.1.3, read through
// BitString.Bit's linear MSB-first indexing.
const (
	KeyUsageDigitalSignature = iota
	KeyUsageNonRepudiation
	KeyUsageKeyEncipherment
	KeyUsageDataEncipherment
	KeyUsageKeyAgreement
	KeyUsageKeyCertSign
	KeyUsageCRLSign
	KeyUsageEncipherOnly
	KeyUsageDecipherOnly
)

// KeyUsage is KeyUsage ::= BIT STRING, exposed as the 9 named bits defined
// for certificate key usage.
type KeyUsage struct {
	bits BitString
}

// Has reports whether the named bit (one of the KeyUsage* constants) is set.
func (k KeyUsage) Has(bit int) bool { return k.bits.Bit(bit) }

func parseKeyUsage(value []byte) (KeyUsage, error) {
	return ParseAll(value, func(p *Parser) (KeyUsage, error) {
		bits, err := Expect[BitString](p)
		if err != nil {
			return KeyUsage{}, err
		}
		return KeyUsage{bits: bits}, nil
	})
}

// BasicConstraints is BasicConstraints ::= SEQUENCE { cA BOOLEAN DEFAULT
// FALSE, pathLenConstraint INTEGER OPTIONAL }.
type BasicConstraints struct {
	IsCA              bool
	PathLenConstraint *int32
}

func parseBasicConstraints(value []byte) (BasicConstraints, error) {
	return ParseAll(value, func(outer *Parser) (BasicConstraints, error) {
		seq, err := Expect[Sequence](outer)
		if err != nil {
			return BasicConstraints{}, err
		}
		return ParseAll(seq, func(p *Parser) (BasicConstraints, error) {
			isCA, err := GetOptionalOrDefault[Boolean](p, Boolean(false))
			if err != nil {
				return BasicConstraints{}, err
			}
			var out BasicConstraints
			out.IsCA = bool(isCA)
			if n, present, err := GetOptional[Integer](p); err != nil {
				return BasicConstraints{}, err
			} else if present {
				v, ok := n.AsInt32()
				if !ok {
					return BasicConstraints{}, IntegerTooLarge(len(n))
				}
				out.PathLenConstraint = &v
			}
			return out, nil
		})
	})
}

// EKUPurpose is a closed enumeration of the extended key usage purposes
// this package recognizes. An ExtendedKeyUsage entry outside this set is
// rejected with UnexpectedOid: RFC 5280's KeyPurposeId space is treated as
// closed here rather than open-ended, as SubjectAltName's GeneralName tag
// set is.
type EKUPurpose int

const (
	EKUServerAuth EKUPurpose = iota
	EKUClientAuth
	EKUCodeSigning
	EKUEmailProtection
	EKUTimeStamping
	EKUOCSPSigning
)

// ExtendedKeyUsage is ExtKeyUsageSyntax ::= SEQUENCE OF KeyPurposeId.
type ExtendedKeyUsage []EKUPurpose

func parseExtendedKeyUsage(value []byte) (ExtendedKeyUsage, error) {
	return ParseAll(value, func(outer *Parser) (ExtendedKeyUsage, error) {
		seq, err := Expect[Sequence](outer)
		if err != nil {
			return nil, err
		}
		return ParseAll(seq, func(p *Parser) (ExtendedKeyUsage, error) {
			var out ExtendedKeyUsage
			for {
				oid, present, err := ExpectOrEnd[ObjectIdentifier](p)
				if err != nil {
					return nil, err
				}
				if !present {
					break
				}
				purpose, ok := ekuPurposeOf(oid)
				if !ok {
					return nil, UnexpectedOid(oid)
				}
				out = append(out, purpose)
			}
			return out, nil
		})
	})
}

func ekuPurposeOf(oid ObjectIdentifier) (EKUPurpose, bool) {
	switch {
	case oid.Equal(oidEKUServerAuth):
		return EKUServerAuth, true
	case oid.Equal(oidEKUClientAuth):
		return EKUClientAuth, true
	case oid.Equal(oidEKUCodeSigning):
		return EKUCodeSigning, true
	case oid.Equal(oidEKUEmailProtection):
		return EKUEmailProtection, true
	case oid.Equal(oidEKUTimeStamping):
		return EKUTimeStamping, true
	case oid.Equal(oidEKUOCSPSigning):
		return EKUOCSPSigning, true
	}
	return 0, false
}

// GeneralName is the subset of SubjectAltName's GeneralName CHOICE this
// package decodes. Exactly one of the following is non-zero/non-empty,
// selected by Tag; Tag values outside {1,2,6,7,8} are rejected with
// UnexpectedTag rather than preserved, since this package only gives
// structured meaning to that fixed set of GeneralName alternatives.
type GeneralName struct {
	Tag          int
	RFC822Name   string
	DNSName      string
	URI          string
	IPAddress    []byte
	RegisteredID ObjectIdentifier
}

// SubjectAlternativeName is SubjectAltName ::= SEQUENCE OF GeneralName.
type SubjectAlternativeName []GeneralName

func parseSubjectAlternativeName(value []byte) (SubjectAlternativeName, error) {
	return ParseAll(value, func(outer *Parser) (SubjectAlternativeName, error) {
		seq, err := Expect[Sequence](outer)
		if err != nil {
			return nil, err
		}
		return ParseAll(seq, func(p *Parser) (SubjectAlternativeName, error) {
			var out SubjectAlternativeName
			for {
				val, done, err := p.Next()
				if err != nil {
					return nil, err
				}
				if done {
					break
				}
				tag, ok := val.(ExplicitTag)
				if !ok {
					return nil, UnexpectedType(IDExplicitTag, val.typeID())
				}
				gn, err := decodeGeneralName(tag)
				if err != nil {
					return nil, err
				}
				out = append(out, gn)
			}
			return out, nil
		})
	})
}

func decodeGeneralName(tag ExplicitTag) (GeneralName, error) {
	switch tag.Tag {
	case 1:
		s, err := ParseImplicit[IA5String](tag.Content)
		if err != nil {
			return GeneralName{}, err
		}
		return GeneralName{Tag: tag.Tag, RFC822Name: string(s)}, nil
	case 2:
		s, err := ParseImplicit[IA5String](tag.Content)
		if err != nil {
			return GeneralName{}, err
		}
		return GeneralName{Tag: tag.Tag, DNSName: string(s)}, nil
	case 6:
		s, err := ParseImplicit[IA5String](tag.Content)
		if err != nil {
			return GeneralName{}, err
		}
		return GeneralName{Tag: tag.Tag, URI: string(s)}, nil
	case 7:
		v, err := ParseImplicit[OctetString](tag.Content)
		if err != nil {
			return GeneralName{}, err
		}
		return GeneralName{Tag: tag.Tag, IPAddress: v}, nil
	case 8:
		oid, err := ParseImplicit[ObjectIdentifier](tag.Content)
		if err != nil {
			return GeneralName{}, err
		}
		return GeneralName{Tag: tag.Tag, RegisteredID: oid}, nil
	default:
		return GeneralName{}, UnexpectedTag(tag.Tag)
	}
}

// ModbusRole is the custom extension (1.3.6.1.4.1.50316.802.1) carrying a
// Modbus/TCP Security device role, encoded as a DER INTEGER inside
// extnValue.
type ModbusRole int32

func parseModbusRole(value []byte) (ModbusRole, error) {
	return ParseAll(value, func(p *Parser) (ModbusRole, error) {
		n, err := Expect[Integer](p)
		if err != nil {
			return 0, err
		}
		v, ok := n.AsInt32()
		if !ok {
			return 0, IntegerTooLarge(len(n))
		}
		return ModbusRole(v), nil
	})
}

// SpecificExtension is the closed sum of extension payloads this package
// understands, reached by dispatching an Extension's ExtnID through
// DecodeSpecific.
type SpecificExtension interface {
	isSpecificExtension()
}

func (SubjectKeyIdentifier) isSpecificExtension()   {}
func (KeyUsage) isSpecificExtension()               {}
func (SubjectAlternativeName) isSpecificExtension() {}
func (BasicConstraints) isSpecificExtension()       {}
func (ExtendedKeyUsage) isSpecificExtension()       {}
func (ModbusRole) isSpecificExtension()             {}

// UnknownExtension is returned by DecodeSpecific for any ExtnID this
// package does not give further structure to; Value is the raw extnValue
// content bytes unchanged.
type UnknownExtension struct {
	ExtnID ObjectIdentifier
	Value  []byte
}

func (UnknownExtension) isSpecificExtension() {}

// DecodeSpecific dispatches ext.Value through the decoder matching
// ext.ExtnID, returning an UnknownExtension for any OID this package does
// not give further structure to.
func DecodeSpecific(ext Extension) (SpecificExtension, error) {
	switch {
	case ext.ExtnID.Equal(oidExtSubjectKeyIdentifier):
		return parseSubjectKeyIdentifier(ext.Value)
	case ext.ExtnID.Equal(oidExtKeyUsage):
		return parseKeyUsage(ext.Value)
	case ext.ExtnID.Equal(oidExtSubjectAltName):
		return parseSubjectAlternativeName(ext.Value)
	case ext.ExtnID.Equal(oidExtBasicConstraints):
		return parseBasicConstraints(ext.Value)
	case ext.ExtnID.Equal(oidExtExtendedKeyUsage):
		return parseExtendedKeyUsage(ext.Value)
	case ext.ExtnID.Equal(oidExtModbusRole):
		return parseModbusRole(ext.Value)
	default:
		return UnknownExtension{ExtnID: ext.ExtnID, Value: ext.Value}, nil
	}
}
