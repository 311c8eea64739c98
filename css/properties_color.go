package css

import "strconv"

// parseColorProperty recognises a named colour, #rrggbb/#rgb hash colour,
// rgb()/rgb(%) functional notation, or the property's own keyword
// alternates (e.g. background-color's "transparent", outline-color's
// "invert"), per spec.md §4.5's colour grammar. In quirks mode it also
// accepts bare hex-like IDENT/NUMBER/DIMENSION tokens as if they were
// hash colours, matching the permissive behaviour QuirksAllowed documents.
func parseColorProperty(sheet *Stylesheet, desc propertyDescriptor, toks []Token, flags uint8) (Style, Error) {
	if len(toks) == 1 && toks[0].Type == IDENT {
		kw := lowerTokenText(toks[0])
		if v, ok := desc.Keywords[kw]; ok {
			var s Style
			s.Append(uint32(BuildOPV(desc.Opcode, flags, packValue(desc.Side, v+valKeywordBase))))
			return s, OK
		}
		if c, ok := LookupNamedColour(kw); ok {
			var s Style
			s.Append(uint32(BuildOPV(desc.Opcode, flags, packValue(desc.Side, valSet))))
			s.Append(uint32(c))
			return s, OK
		}
	}

	if c, ok := parseColorTokens(toks); ok {
		var s Style
		s.Append(uint32(BuildOPV(desc.Opcode, flags, packValue(desc.Side, valSet))))
		s.Append(uint32(c))
		return s, OK
	}

	if sheet != nil && sheet.Options.QuirksAllowed && len(toks) == 1 {
		if c, ok := quirksColour(toks[0]); ok {
			sheet.QuirksUsed = true
			var s Style
			s.Append(uint32(BuildOPV(desc.Opcode, flags, packValue(desc.Side, valSet))))
			s.Append(uint32(c))
			return s, OK
		}
	}

	return Style{}, INVALID
}

// parseColorTokens recognises a single HASH token or an rgb(...) function
// call (three NUMBER or three PERCENTAGE components).
func parseColorTokens(toks []Token) (Colour, bool) {
	if len(toks) == 1 && toks[0].Type == HASH {
		return hexColour(toks[0].Text)
	}
	if len(toks) < 2 || toks[0].Type != FUNCTION || lowerTokenText(toks[0]) != "rgb" {
		return 0, false
	}
	args := significant(toks[1:])
	if len(args) == 0 || !(args[len(args)-1].Type == CHAR && args[len(args)-1].Text == ")") {
		return 0, false
	}
	args = args[:len(args)-1]
	var comps []Token
	for i, t := range args {
		if i%2 == 1 {
			if !(t.Type == CHAR && t.Text == ",") {
				return 0, false
			}
			continue
		}
		comps = append(comps, t)
	}
	if len(comps) != 3 {
		return 0, false
	}
	var ch [3]uint8
	for i, t := range comps {
		switch t.Type {
		case NUMBER:
			ch[i] = clamp255(int(t.Number))
		case PERCENTAGE:
			ch[i] = clamp255(int(t.Number * 255 / 100))
		default:
			return 0, false
		}
	}
	return RGBA(ch[0], ch[1], ch[2], 0xff), true
}

func clamp255(n int) uint8 {
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}

func hexColour(hex string) (Colour, bool) {
	switch len(hex) {
	case 3:
		r, ok1 := hexDigit(hex[0])
		g, ok2 := hexDigit(hex[1])
		b, ok3 := hexDigit(hex[2])
		if !ok1 || !ok2 || !ok3 {
			return 0, false
		}
		return RGBA(r*17, g*17, b*17, 0xff), true
	case 6:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, false
		}
		return RGBA(uint8(v>>16), uint8(v>>8), uint8(v), 0xff), true
	}
	return 0, false
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// quirksColour accepts a bare IDENT/NUMBER/DIMENSION token whose text is a
// valid 3- or 6-digit hex string, as CSS 2.1 quirks mode permits for
// unquoted colour values (e.g. "color: FF0000").
func quirksColour(t Token) (Colour, bool) {
	var text string
	switch t.Type {
	case IDENT:
		text = t.Text
	case NUMBER:
		text = t.Text
	case DIMENSION:
		text = t.Text + t.Unit
	default:
		return 0, false
	}
	if len(text) != 3 && len(text) != 6 {
		return 0, false
	}
	for i := 0; i < len(text); i++ {
		if _, ok := hexDigit(text[i]); !ok {
			return 0, false
		}
	}
	return hexColour(text)
}
