package derx509

/*
name.go implements the X.509 Name type (part of component F): a SEQUENCE OF
RelativeDistinguishedName, each an RDN SET OF AttributeTypeAndValue. Name is
lazy, matching the rest of this package's zero-copy contract: constructing a
Name only stores the raw SEQUENCE bytes, and Parse walks it on demand,
populating the handful of well-known attributes an X.509 reader normally
cares about. Unknown attribute OIDs are silently ignored rather than
rejected, since RFC 5280 names are explicitly open-ended.
*/

// Name is the raw, undecoded byte window of an X.509 Name (a SEQUENCE OF
// RelativeDistinguishedName). Call Parse to obtain its populated fields.
type Name struct {
	raw []byte
}

// ParsedName holds the subset of distinguished-name attributes this package
// understands by name. Fields left as "" were absent from every RDN.
type ParsedName struct {
	CommonName             string
	CountryName            string
	LocalityName           string
	StateOrProvinceName    string
	OrganizationName       string
	OrganizationalUnitName string
}

// Parse decodes every RDN SET in n, populating the well-known fields of a
// ParsedName. It fails on a malformed RDN, an AttributeTypeAndValue whose
// value is not a string type, or a well-known attribute that appears more
// than once anywhere in the Name, whether within one RDN or across RDNs.
func (n Name) Parse() (ParsedName, error) {
	var out ParsedName
	p := NewParser(n.raw)
	for {
		set, present, err := ExpectOrEnd[Set](p)
		if err != nil {
			return ParsedName{}, err
		}
		if !present {
			break
		}
		if err := parseRDN(set, &out); err != nil {
			return ParsedName{}, err
		}
	}
	return out, nil
}

func parseRDN(set Set, out *ParsedName) error {
	p := NewParser(set)
	for {
		seq, present, err := ExpectOrEnd[Sequence](p)
		if err != nil {
			return err
		}
		if !present {
			break
		}
		if err := parseAttributeTypeAndValue(seq, out); err != nil {
			return err
		}
	}
	return nil
}

func parseAttributeTypeAndValue(seq Sequence, out *ParsedName) error {
	inner := NewParser(seq)
	oid, err := Expect[ObjectIdentifier](inner)
	if err != nil {
		return err
	}
	value, err := attributeStringValue(inner)
	if err != nil {
		return err
	}
	if err := inner.ExpectEnd(); err != nil {
		return err
	}

	switch {
	case oid.Equal(oidCommonName):
		return setOnce(&out.CommonName, "commonName", value)
	case oid.Equal(oidCountryName):
		return setOnce(&out.CountryName, "countryName", value)
	case oid.Equal(oidLocalityName):
		return setOnce(&out.LocalityName, "localityName", value)
	case oid.Equal(oidStateOrProvinceName):
		return setOnce(&out.StateOrProvinceName, "stateOrProvinceName", value)
	case oid.Equal(oidOrganizationName):
		return setOnce(&out.OrganizationName, "organizationName", value)
	case oid.Equal(oidOrganizationalUnitName):
		return setOnce(&out.OrganizationalUnitName, "organizationalUnitName", value)
	}
	return nil
}

// attributeStringValue accepts any of the three string encodings X.509
// names commonly use, in the order they are most commonly seen.
func attributeStringValue(p *Parser) (string, error) {
	if v, ok, err := GetOptional[UTF8String](p); err != nil {
		return "", err
	} else if ok {
		return string(v), nil
	}
	if v, ok, err := GetOptional[PrintableString](p); err != nil {
		return "", err
	} else if ok {
		return string(v), nil
	}
	if v, ok, err := GetOptional[IA5String](p); err != nil {
		return "", err
	} else if ok {
		return string(v), nil
	}
	raw, err := p.ExpectAny()
	if err != nil {
		return "", err
	}
	return "", UnexpectedType(IDUTF8String, raw.typeID())
}

func setOnce(field *string, name, value string) error {
	if *field != "" {
		return DuplicateAttribute(name)
	}
	*field = value
	return nil
}
