package css

import "github.com/lukehoban/cssengine/strpool"

// Shorthand expansion follows CSS 2.1's "missing sides replicate from
// the opposite/already-given side" rule (spec.md §4.5's "four-value
// expansion"): 1 value -> all four sides; 2 -> top/bottom, left/right;
// 3 -> top, left/right, bottom; 4 -> top, right, bottom, left.

func splitSignificantWS(toks []Token) [][]Token {
	var groups [][]Token
	var cur []Token
	for _, t := range toks {
		if t.Type == WHITESPACE {
			if len(cur) > 0 {
				groups = append(groups, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, t)
	}
	if len(cur) > 0 {
		groups = append(groups, cur)
	}
	return groups
}

// expandTRBL replicates 1-4 space-separated value groups across the
// four box sides and calls parse once per side with that side's tokens.
func expandTRBL(toks []Token, parse func(side side, toks []Token) (Style, Error)) (Style, Error) {
	groups := splitSignificantWS(toks)
	var bySide [4][]Token
	switch len(groups) {
	case 1:
		bySide = [4][]Token{groups[0], groups[0], groups[0], groups[0]}
	case 2:
		bySide = [4][]Token{groups[0], groups[1], groups[0], groups[1]}
	case 3:
		bySide = [4][]Token{groups[0], groups[1], groups[2], groups[1]}
	case 4:
		bySide = [4][]Token{groups[0], groups[1], groups[2], groups[3]}
	default:
		return Style{}, INVALID
	}
	var out Style
	for i, s := range []side{sideTop, sideRight, sideBottom, sideLeft} {
		part, err := parse(s, bySide[i])
		if err != OK {
			return Style{}, err
		}
		out.AppendStyle(part)
	}
	return out, OK
}

func marginShorthand(pool *strpool.Pool, sheet *Stylesheet, toks []Token, important bool) (Style, Error) {
	flags := uint8(0)
	if important {
		flags |= FlagImportant
	}
	return expandTRBL(toks, func(s side, t []Token) (Style, Error) {
		desc := propertyDescriptor{Opcode: OpMarginTRBL, Kind: kindLength, Side: s, Auto: true, AllowNegative: true}
		return parseLengthProperty(sheet, desc, t, flags)
	})
}

func paddingShorthand(pool *strpool.Pool, sheet *Stylesheet, toks []Token, important bool) (Style, Error) {
	flags := uint8(0)
	if important {
		flags |= FlagImportant
	}
	return expandTRBL(toks, func(s side, t []Token) (Style, Error) {
		desc := propertyDescriptor{Opcode: OpPaddingTRBL, Kind: kindLength, Side: s}
		return parseLengthProperty(sheet, desc, t, flags)
	})
}

func borderColorShorthand(pool *strpool.Pool, sheet *Stylesheet, toks []Token, important bool) (Style, Error) {
	flags := uint8(0)
	if important {
		flags |= FlagImportant
	}
	return expandTRBL(toks, func(s side, t []Token) (Style, Error) {
		desc := propertyDescriptor{Opcode: OpBorderTRBLColor, Kind: kindColor, Side: s}
		return parseColorProperty(sheet, desc, t, flags)
	})
}

func borderStyleShorthand(pool *strpool.Pool, sheet *Stylesheet, toks []Token, important bool) (Style, Error) {
	flags := uint8(0)
	if important {
		flags |= FlagImportant
	}
	return expandTRBL(toks, func(s side, t []Token) (Style, Error) {
		desc := propertyDescriptor{Opcode: OpBorderTRBLStyle, Kind: kindEnum, Side: s, Keywords: borderStyleKeywords}
		return parseEnumProperty(desc, t, flags)
	})
}

func borderWidthShorthand(pool *strpool.Pool, sheet *Stylesheet, toks []Token, important bool) (Style, Error) {
	flags := uint8(0)
	if important {
		flags |= FlagImportant
	}
	return expandTRBL(toks, func(s side, t []Token) (Style, Error) {
		desc := propertyDescriptor{Opcode: OpBorderTRBLWidth, Kind: kindLength, Side: s, Keywords: borderWidthKeywords}
		return parseLengthProperty(sheet, desc, t, flags)
	})
}

// borderSide expands border-top/right/bottom/left into the three
// per-side triad properties (width, style, color), accepting its three
// values in any order.
func borderSide(s side) func(pool *strpool.Pool, sheet *Stylesheet, toks []Token, important bool) (Style, Error) {
	return func(pool *strpool.Pool, sheet *Stylesheet, toks []Token, important bool) (Style, Error) {
		flags := uint8(0)
		if important {
			flags |= FlagImportant
		}
		var out Style
		for _, g := range splitSignificantWS(toks) {
			if sw, err := parseLengthProperty(sheet, propertyDescriptor{Opcode: OpBorderTRBLWidth, Kind: kindLength, Side: s, Keywords: borderWidthKeywords}, g, flags); err == OK {
				out.AppendStyle(sw)
				continue
			}
			if se, err := parseEnumProperty(propertyDescriptor{Opcode: OpBorderTRBLStyle, Kind: kindEnum, Side: s, Keywords: borderStyleKeywords}, g, flags); err == OK {
				out.AppendStyle(se)
				continue
			}
			if sc, err := parseColorProperty(sheet, propertyDescriptor{Opcode: OpBorderTRBLColor, Kind: kindColor, Side: s}, g, flags); err == OK {
				out.AppendStyle(sc)
				continue
			}
			return Style{}, INVALID
		}
		return out, OK
	}
}

// border expands into all twelve border-{side}-{width,style,color}
// longhands at once.
func borderShorthand(pool *strpool.Pool, sheet *Stylesheet, toks []Token, important bool) (Style, Error) {
	var out Style
	for _, s := range []side{sideTop, sideRight, sideBottom, sideLeft} {
		part, err := borderSide(s)(pool, sheet, toks, important)
		if err != OK {
			return Style{}, err
		}
		out.AppendStyle(part)
	}
	return out, OK
}

func outlineShorthand(pool *strpool.Pool, sheet *Stylesheet, toks []Token, important bool) (Style, Error) {
	flags := uint8(0)
	if important {
		flags |= FlagImportant
	}
	var out Style
	for _, g := range splitSignificantWS(toks) {
		if sw, err := parseLengthProperty(sheet, propertyDescriptor{Opcode: OpOutlineWidth, Kind: kindLength, Keywords: borderWidthKeywords}, g, flags); err == OK {
			out.AppendStyle(sw)
			continue
		}
		if se, err := parseEnumProperty(propertyDescriptor{Opcode: OpOutlineStyle, Kind: kindEnum, Keywords: borderStyleKeywords}, g, flags); err == OK {
			out.AppendStyle(se)
			continue
		}
		if sc, err := parseColorProperty(sheet, propertyDescriptor{Opcode: OpOutlineColor, Kind: kindColor, Keywords: map[string]uint16{"invert": 5}}, g, flags); err == OK {
			out.AppendStyle(sc)
			continue
		}
		return Style{}, INVALID
	}
	return out, OK
}

func backgroundShorthand(pool *strpool.Pool, sheet *Stylesheet, toks []Token, important bool) (Style, Error) {
	flags := uint8(0)
	if important {
		flags |= FlagImportant
	}
	var out Style
	var posToks []Token
	for _, g := range splitSignificantWS(toks) {
		if sc, err := parseColorProperty(sheet, propertyDescriptor{Opcode: OpBackgroundColor, Kind: kindColor, Keywords: map[string]uint16{"transparent": 1}}, g, flags); err == OK {
			out.AppendStyle(sc)
			continue
		}
		if si, err := parseBackgroundImageTokens(pool, g, flags); err == OK {
			out.AppendStyle(si)
			continue
		}
		if sr, err := parseEnumProperty(propertyDescriptor{Opcode: OpBackgroundRepeat, Kind: kindEnum, Keywords: backgroundRepeatKeywords}, g, flags); err == OK {
			out.AppendStyle(sr)
			continue
		}
		if sa, err := parseEnumProperty(propertyDescriptor{Opcode: OpBackgroundAttachment, Kind: kindEnum, Keywords: backgroundAttachmentKeywords}, g, flags); err == OK {
			out.AppendStyle(sa)
			continue
		}
		if isBackgroundPositionToken(g) {
			posToks = append(posToks, g...)
			posToks = append(posToks, Token{Type: WHITESPACE})
			continue
		}
		return Style{}, INVALID
	}
	if len(posToks) > 0 {
		sp, err := parseBackgroundPosition(pool, posToks)
		if err != OK {
			return Style{}, err
		}
		sp.Words[0] = uint32(BuildOPV(OpBackgroundPosition, flags, OPV(sp.Words[0]).Value()))
		out.AppendStyle(sp)
	}
	return out, OK
}

var backgroundRepeatKeywords = map[string]uint16{
	"repeat": 1, "repeat-x": 2, "repeat-y": 3, "no-repeat": 4,
}

var backgroundAttachmentKeywords = map[string]uint16{
	"scroll": 1, "fixed": 2,
}

func parseBackgroundImageTokens(pool *strpool.Pool, toks []Token, flags uint8) (Style, Error) {
	s, err := parseBackgroundImage(pool, toks)
	if err != OK {
		return Style{}, err
	}
	s.Words[0] = uint32(BuildOPV(OpBackgroundImage, flags, OPV(s.Words[0]).Value()))
	return s, OK
}

func isBackgroundPositionToken(toks []Token) bool {
	if len(toks) != 1 {
		return false
	}
	t := toks[0]
	if t.Type == PERCENTAGE || t.Type == DIMENSION || t.Type == NUMBER {
		return true
	}
	if t.Type == IDENT {
		_, ok := backgroundPositionKeywords[lowerTokenText(t)]
		return ok
	}
	return false
}

func listStyleShorthand(pool *strpool.Pool, sheet *Stylesheet, toks []Token, important bool) (Style, Error) {
	flags := uint8(0)
	if important {
		flags |= FlagImportant
	}
	var out Style
	for _, g := range splitSignificantWS(toks) {
		if st, err := parseEnumProperty(propertyDescriptor{Opcode: OpListStyleType, Kind: kindEnum, Keywords: listStyleTypeKeywords}, g, flags); err == OK {
			out.AppendStyle(st)
			continue
		}
		if sp, err := parseEnumProperty(propertyDescriptor{Opcode: OpListStylePosition, Kind: kindEnum, Keywords: map[string]uint16{"inside": 1, "outside": 2}}, g, flags); err == OK {
			out.AppendStyle(sp)
			continue
		}
		if len(g) == 1 && g[0].Type == IDENT && lowerTokenText(g[0]) == "none" {
			var s Style
			s.Append(uint32(BuildOPV(OpListStyleImage, flags, packValue(sideTop, valNone))))
			out.AppendStyle(s)
			continue
		}
		if len(g) == 1 && g[0].Type == URI {
			var s Style
			s.Append(uint32(BuildOPV(OpListStyleImage, flags, packValue(sideTop, valSet))))
			s.AppendHandle(pool.Intern(g[0].Text))
			out.AppendStyle(s)
			continue
		}
		return Style{}, INVALID
	}
	return out, OK
}

func cueShorthand(pool *strpool.Pool, sheet *Stylesheet, toks []Token, important bool) (Style, Error) {
	flags := uint8(0)
	if important {
		flags |= FlagImportant
	}
	groups := splitSignificantWS(toks)
	if len(groups) == 0 || len(groups) > 2 {
		return Style{}, INVALID
	}
	before := groups[0]
	after := groups[0]
	if len(groups) == 2 {
		after = groups[1]
	}
	sb, err := parseCueSide(OpCueBefore)(pool, before)
	if err != OK {
		return Style{}, err
	}
	sb.Words[0] = uint32(BuildOPV(OpCueBefore, flags, OPV(sb.Words[0]).Value()))
	sa, err := parseCueSide(OpCueAfter)(pool, after)
	if err != OK {
		return Style{}, err
	}
	sa.Words[0] = uint32(BuildOPV(OpCueAfter, flags, OPV(sa.Words[0]).Value()))
	var out Style
	out.AppendStyle(sb)
	out.AppendStyle(sa)
	return out, OK
}

func pauseShorthand(pool *strpool.Pool, sheet *Stylesheet, toks []Token, important bool) (Style, Error) {
	flags := uint8(0)
	if important {
		flags |= FlagImportant
	}
	groups := splitSignificantWS(toks)
	if len(groups) == 0 || len(groups) > 2 {
		return Style{}, INVALID
	}
	before := groups[0]
	after := groups[0]
	if len(groups) == 2 {
		after = groups[1]
	}
	sb, err := parsePauseSide(OpPauseBefore)(pool, before)
	if err != OK {
		return Style{}, err
	}
	sb.Words[0] = uint32(BuildOPV(OpPauseBefore, flags, OPV(sb.Words[0]).Value()))
	sa, err := parsePauseSide(OpPauseAfter)(pool, after)
	if err != OK {
		return Style{}, err
	}
	sa.Words[0] = uint32(BuildOPV(OpPauseAfter, flags, OPV(sa.Words[0]).Value()))
	var out Style
	out.AppendStyle(sb)
	out.AppendStyle(sa)
	return out, OK
}

// font expands into font-style/variant/weight/size/line-height/family,
// accepted in that loose order with the trailing family list mandatory.
func fontShorthand(pool *strpool.Pool, sheet *Stylesheet, toks []Token, important bool) (Style, Error) {
	flags := uint8(0)
	if important {
		flags |= FlagImportant
	}
	toks = trimWS(filterComments(toks))

	// The mandatory trailing font-family list is every token group left
	// once size/line-height has been consumed; its own commas separate
	// the families.
	slashIdx := -1
	for i, t := range toks {
		if t.Type == CHAR && t.Text == "/" {
			slashIdx = i
			break
		}
	}
	_ = slashIdx

	groups := splitSignificantWS(toks)
	if len(groups) == 0 {
		return Style{}, INVALID
	}

	var out Style
	i := 0
	for ; i < len(groups)-1; i++ {
		g := groups[i]
		if len(g) == 1 && g[0].Type == IDENT && lowerTokenText(g[0]) == "normal" {
			continue
		}
		if s, err := parseEnumProperty(propertyDescriptor{Opcode: OpFontStyle, Kind: kindEnum, Keywords: map[string]uint16{"normal": 1, "italic": 2, "oblique": 3}}, g, flags); err == OK {
			out.AppendStyle(s)
			continue
		}
		if s, err := parseEnumProperty(propertyDescriptor{Opcode: OpFontVariant, Kind: kindEnum, Keywords: map[string]uint16{"normal": 1, "small-caps": 2}}, g, flags); err == OK {
			out.AppendStyle(s)
			continue
		}
		if s, err := parseFontWeight(pool, g); err == OK {
			s.Words[0] = uint32(BuildOPV(OpFontWeight, flags, OPV(s.Words[0]).Value()))
			out.AppendStyle(s)
			continue
		}
		break
	}
	if i >= len(groups) {
		return Style{}, INVALID
	}

	sizeLine := groups[i]
	i++
	var sizeToks, lineToks []Token
	slash := -1
	for j, t := range sizeLine {
		if t.Type == CHAR && t.Text == "/" {
			slash = j
			break
		}
	}
	if slash >= 0 {
		sizeToks = sizeLine[:slash]
		lineToks = sizeLine[slash+1:]
	} else {
		sizeToks = sizeLine
	}
	if len(lineToks) == 0 && i < len(groups)-1 {
		next := groups[i]
		if len(next) > 0 && next[0].Type == CHAR && next[0].Text == "/" {
			lineToks = next[1:]
			i++
		}
	}

	sSize, err := parseLengthProperty(sheet, propertyDescriptor{Opcode: OpFontSize, Kind: kindLength, Keywords: fontSizeKeywords}, sizeToks, flags)
	if err != OK {
		return Style{}, err
	}
	out.AppendStyle(sSize)

	if len(lineToks) > 0 {
		sLine, err := parseLineHeight(pool, lineToks)
		if err != OK {
			return Style{}, err
		}
		sLine.Words[0] = uint32(BuildOPV(OpLineHeight, flags, OPV(sLine.Words[0]).Value()))
		out.AppendStyle(sLine)
	}

	var familyToks []Token
	for ; i < len(groups); i++ {
		familyToks = append(familyToks, groups[i]...)
	}
	sFamily, err := parseFontFamilyList(pool, familyToks)
	if err != OK {
		return Style{}, err
	}
	sFamily.Words[0] = uint32(BuildOPV(OpFontFamily, flags, OPV(sFamily.Words[0]).Value()))
	out.AppendStyle(sFamily)

	return out, OK
}
