package css

// parseLengthProperty recognises a single length, percentage, or angle/
// time/frequency dimension (any recognised unit; the unit is not checked
// against the property), plus any of the property's "auto"/"none"/keyword
// alternates, per spec.md §4.5's length grammar.
func parseLengthProperty(sheet *Stylesheet, desc propertyDescriptor, toks []Token, flags uint8) (Style, Error) {
	if len(toks) == 1 && toks[0].Type == IDENT {
		kw := lowerTokenText(toks[0])
		if desc.Auto && kw == "auto" {
			var s Style
			s.Append(uint32(BuildOPV(desc.Opcode, flags, packValue(desc.Side, valAuto))))
			return s, OK
		}
		if desc.NoneValue && kw == "none" {
			var s Style
			s.Append(uint32(BuildOPV(desc.Opcode, flags, packValue(desc.Side, valNone))))
			return s, OK
		}
		if v, ok := desc.Keywords[kw]; ok {
			var s Style
			s.Append(uint32(BuildOPV(desc.Opcode, flags, packValue(desc.Side, v+valKeywordBase))))
			return s, OK
		}
		return Style{}, INVALID
	}
	if len(toks) != 1 {
		return Style{}, INVALID
	}
	unit, fixed, ok := parseLengthToken(toks[0])
	if !ok {
		return Style{}, INVALID
	}
	if !desc.AllowNegative && fixed < 0 {
		return Style{}, INVALID
	}
	if fixed == 0 {
		// A bare zero is unit-less in every length context; in quirks mode
		// a bare "0" takes the sheet's QuirksDefaultUnit instead.
		unit = UnitPX
		if toks[0].Type == NUMBER && sheet != nil && sheet.Options.QuirksAllowed {
			unit = sheet.Options.QuirksDefaultUnit
		}
	}
	var s Style
	s.Append(uint32(BuildOPV(desc.Opcode, flags, packValue(desc.Side, valSet))))
	s.Append(uint32(fixed))
	s.Append(uint32(unit))
	return s, OK
}

// parseLengthToken converts a single NUMBER/PERCENTAGE/DIMENSION token
// into its unit and fixed-point magnitude. A bare NUMBER is only valid
// when its value is zero (CSS 2.1's unitless-zero-length rule); callers
// that need to reject non-zero bare numbers already filter on token type
// before calling this.
func parseLengthToken(t Token) (Unit, Fixed, bool) {
	switch t.Type {
	case NUMBER:
		if t.Number != 0 {
			return 0, 0, false
		}
		return UnitPX, 0, true
	case PERCENTAGE:
		return UnitPCT, FixedFromFloat(t.Number), true
	case DIMENSION:
		u, ok := unitFromSuffix(t.Unit)
		if !ok {
			return 0, 0, false
		}
		return u, FixedFromFloat(t.Number), true
	}
	return 0, 0, false
}

var unitSuffixes = map[string]Unit{
	"px":   UnitPX,
	"ex":   UnitEX,
	"em":   UnitEM,
	"in":   UnitIN,
	"cm":   UnitCM,
	"mm":   UnitMM,
	"pt":   UnitPT,
	"pc":   UnitPC,
	"deg":  UnitDEG,
	"grad": UnitGRAD,
	"rad":  UnitRAD,
	"ms":   UnitMS,
	"s":    UnitS,
	"hz":   UnitHZ,
	"khz":  UnitKHZ,
}

func unitFromSuffix(suffix string) (Unit, bool) {
	u, ok := unitSuffixes[lowerASCIIString(suffix)]
	return u, ok
}

func lowerASCIIString(s string) string {
	b := []byte(s)
	changed := false
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c - 'A' + 'a'
			changed = true
		}
	}
	if !changed {
		return s
	}
	return string(b)
}
