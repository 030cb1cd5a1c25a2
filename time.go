package derx509

/*
time.go implements UTCTime (tag 23) and GeneralizedTime (tag 24) content
decoding. See the package-level Open Question resolution in SPEC_FULL.md:
GeneralizedTime is accepted alongside UTCTime: x509.go's Validity takes
either one (RFC 5280's Time is a CHOICE of the two), and the generic tree
walker and diagnostic tooling recognize it as a distinct ASNType rather
than reject it outright.
*/

import "time"

// utcTimeLayouts are tried in order. Go's "Z0700" layout verb parses both a
// literal trailing "Z" and a numeric "+HHMM"/"-HHMM" offset, so two layouts
// (with and without seconds) cover all four textual formats listed in the
// package documentation: YYMMDDHHMMSSZ, YYMMDDHHMMZ, YYMMDDHHMMSS±HHMM and
// YYMMDDHHMM±HHMM. The two-digit year is interpreted by Go's own "06"
// pivot rule: 00-68 -> 2000-2068, 69-99 -> 1969-1999.
var utcTimeLayouts = []string{
	"060102150405Z0700",
	"0601021504Z0700",
}

// generalizedTimeLayouts mirror utcTimeLayouts with a 4-digit year.
var generalizedTimeLayouts = []string{
	"20060102150405Z0700",
	"200601021504Z0700",
}

func parseUTCTime(s string) (time.Time, error) {
	for _, layout := range utcTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrBadUTCTime
}

func parseGeneralizedTime(s string) (time.Time, error) {
	for _, layout := range generalizedTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrBadGeneralizedTime
}
