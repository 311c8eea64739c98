package css

import "github.com/lukehoban/cssengine/strpool"

// This file holds the property recognisers whose grammar doesn't fit the
// shared enum/length/color/integer shapes: azimuth and elevation's
// keyword-or-angle grammar, font-weight's keyword-or-multiple-of-100
// grammar, line-height's keyword-or-number-or-length grammar, the
// background shorthand components, border-spacing's length pair,
// clip's rect(), and the aural cue/pause/play-during properties. Each is
// wired through propertyDescriptor.List/kindList so the shared dispatch
// in parseProperty still handles "inherit" and !important uniformly.

var azimuthKeywords = map[string]uint16{
	"left-side": 1, "far-left": 2, "left": 3, "center-left": 4, "center": 5,
	"center-right": 6, "right": 7, "far-right": 8, "right-side": 9,
	"behind": 10, "leftwards": 11, "rightwards": 12,
}

func parseAzimuth(pool *strpool.Pool, toks []Token) (Style, Error) {
	toks = trimWS(filterComments(toks))
	if len(toks) == 1 && toks[0].Type == IDENT {
		if v, ok := azimuthKeywords[lowerTokenText(toks[0])]; ok {
			var s Style
			s.Append(uint32(BuildOPV(OpAzimuth, 0, packValue(sideTop, v<<2|1))))
			return s, OK
		}
	}
	if len(toks) == 1 {
		unit, fixed, ok := parseLengthToken(toks[0])
		if ok && unit&unitAngleBase != 0 {
			var s Style
			s.Append(uint32(BuildOPV(OpAzimuth, 0, packValue(sideTop, valSet))))
			s.Append(uint32(fixed))
			s.Append(uint32(unit))
			return s, OK
		}
	}
	return Style{}, INVALID
}

var elevationKeywords = map[string]uint16{
	"below": 1, "level": 2, "above": 3, "higher": 4, "lower": 5,
}

func parseElevation(pool *strpool.Pool, toks []Token) (Style, Error) {
	toks = trimWS(filterComments(toks))
	if len(toks) == 1 && toks[0].Type == IDENT {
		if v, ok := elevationKeywords[lowerTokenText(toks[0])]; ok {
			var s Style
			s.Append(uint32(BuildOPV(OpElevation, 0, packValue(sideTop, v<<2|1))))
			return s, OK
		}
	}
	if len(toks) == 1 {
		unit, fixed, ok := parseLengthToken(toks[0])
		if ok && unit&unitAngleBase != 0 {
			var s Style
			s.Append(uint32(BuildOPV(OpElevation, 0, packValue(sideTop, valSet))))
			s.Append(uint32(fixed))
			s.Append(uint32(unit))
			return s, OK
		}
	}
	return Style{}, INVALID
}

func parseFontWeight(pool *strpool.Pool, toks []Token) (Style, Error) {
	toks = trimWS(filterComments(toks))
	if len(toks) != 1 {
		return Style{}, INVALID
	}
	t := toks[0]
	if t.Type == IDENT {
		kws := map[string]uint16{"normal": 1, "bold": 2, "bolder": 3, "lighter": 4}
		if v, ok := kws[lowerTokenText(t)]; ok {
			var s Style
			s.Append(uint32(BuildOPV(OpFontWeight, 0, packValue(sideTop, v+valKeywordBase))))
			return s, OK
		}
		return Style{}, INVALID
	}
	if t.Type == NUMBER {
		n := int(t.Number)
		if n < 100 || n > 900 || n%100 != 0 {
			return Style{}, INVALID
		}
		var s Style
		s.Append(uint32(BuildOPV(OpFontWeight, 0, packValue(sideTop, valSet))))
		s.Append(uint32(n))
		return s, OK
	}
	return Style{}, INVALID
}

func parseLineHeight(pool *strpool.Pool, toks []Token) (Style, Error) {
	toks = trimWS(filterComments(toks))
	if len(toks) != 1 {
		return Style{}, INVALID
	}
	t := toks[0]
	if t.Type == IDENT && lowerTokenText(t) == "normal" {
		var s Style
		s.Append(uint32(BuildOPV(OpLineHeight, 0, packValue(sideTop, valAuto))))
		return s, OK
	}
	if t.Type == NUMBER {
		var s Style
		s.Append(uint32(BuildOPV(OpLineHeight, 0, packValue(sideTop, 4))))
		s.Append(uint32(FixedFromFloat(t.Number)))
		return s, OK
	}
	unit, fixed, ok := parseLengthToken(t)
	if !ok {
		return Style{}, INVALID
	}
	var s Style
	s.Append(uint32(BuildOPV(OpLineHeight, 0, packValue(sideTop, valSet))))
	s.Append(uint32(fixed))
	s.Append(uint32(unit))
	return s, OK
}

func parseBorderSpacing(pool *strpool.Pool, toks []Token) (Style, Error) {
	toks = trimWS(filterComments(toks))
	var lens []Token
	for _, t := range toks {
		if t.Type != WHITESPACE {
			lens = append(lens, t)
		}
	}
	if len(lens) != 1 && len(lens) != 2 {
		return Style{}, INVALID
	}
	hUnit, hFixed, ok := parseLengthToken(lens[0])
	if !ok || hUnit == UnitPCT {
		return Style{}, INVALID
	}
	vUnit, vFixed := hUnit, hFixed
	if len(lens) == 2 {
		vUnit, vFixed, ok = parseLengthToken(lens[1])
		if !ok || vUnit == UnitPCT {
			return Style{}, INVALID
		}
	}
	var s Style
	s.Append(uint32(BuildOPV(OpBorderSpacing, 0, packValue(sideTop, valSet))))
	s.Append(uint32(hFixed))
	s.Append(uint32(hUnit))
	s.Append(uint32(vFixed))
	s.Append(uint32(vUnit))
	return s, OK
}

func parseClip(pool *strpool.Pool, toks []Token) (Style, Error) {
	toks = trimWS(filterComments(toks))
	if len(toks) == 1 && toks[0].Type == IDENT && lowerTokenText(toks[0]) == "auto" {
		var s Style
		s.Append(uint32(BuildOPV(OpClip, 0, packValue(sideTop, valAuto))))
		return s, OK
	}
	if len(toks) < 2 || toks[0].Type != FUNCTION || lowerTokenText(toks[0]) != "rect" {
		return Style{}, INVALID
	}
	args := significant(toks[1:])
	if len(args) == 0 || !(args[len(args)-1].Type == CHAR && args[len(args)-1].Text == ")") {
		return Style{}, INVALID
	}
	args = args[:len(args)-1]
	var comps []Token
	for i, t := range args {
		if i%2 == 1 {
			if !(t.Type == CHAR && t.Text == ",") {
				return Style{}, INVALID
			}
			continue
		}
		comps = append(comps, t)
	}
	if len(comps) != 4 {
		return Style{}, INVALID
	}
	var s Style
	s.Append(uint32(BuildOPV(OpClip, 0, packValue(sideTop, valSet))))
	for _, t := range comps {
		if t.Type == IDENT && lowerTokenText(t) == "auto" {
			s.Append(uint32(valAuto))
			s.Append(0)
			continue
		}
		unit, fixed, ok := parseLengthToken(t)
		if !ok {
			return Style{}, INVALID
		}
		s.Append(uint32(valSet))
		s.Append(uint32(fixed))
		s.Append(uint32(unit))
	}
	return s, OK
}

func parseCueSide(op Opcode) func(pool *strpool.Pool, toks []Token) (Style, Error) {
	return func(pool *strpool.Pool, toks []Token) (Style, Error) {
		toks = trimWS(filterComments(toks))
		if len(toks) == 1 && toks[0].Type == IDENT && lowerTokenText(toks[0]) == "none" {
			var s Style
			s.Append(uint32(BuildOPV(op, 0, packValue(sideTop, valNone))))
			return s, OK
		}
		if len(toks) == 1 && toks[0].Type == URI {
			var s Style
			s.Append(uint32(BuildOPV(op, 0, packValue(sideTop, valSet))))
			s.AppendHandle(pool.Intern(toks[0].Text))
			return s, OK
		}
		return Style{}, INVALID
	}
}

func parsePauseSide(op Opcode) func(pool *strpool.Pool, toks []Token) (Style, Error) {
	return func(pool *strpool.Pool, toks []Token) (Style, Error) {
		toks = trimWS(filterComments(toks))
		if len(toks) != 1 {
			return Style{}, INVALID
		}
		t := toks[0]
		if t.Type == PERCENTAGE {
			var s Style
			s.Append(uint32(BuildOPV(op, 0, packValue(sideTop, valSet))))
			s.Append(uint32(FixedFromFloat(t.Number)))
			s.Append(uint32(UnitPCT))
			return s, OK
		}
		unit, fixed, ok := parseLengthToken(t)
		if !ok || unit&unitTimeBase == 0 {
			return Style{}, INVALID
		}
		var s Style
		s.Append(uint32(BuildOPV(op, 0, packValue(sideTop, valSet))))
		s.Append(uint32(fixed))
		s.Append(uint32(unit))
		return s, OK
	}
}

func parsePlayDuring(pool *strpool.Pool, toks []Token) (Style, Error) {
	toks = trimWS(filterComments(toks))
	if len(toks) == 1 && toks[0].Type == IDENT {
		switch lowerTokenText(toks[0]) {
		case "auto":
			var s Style
			s.Append(uint32(BuildOPV(OpPlayDuring, 0, packValue(sideTop, valAuto))))
			return s, OK
		case "none":
			var s Style
			s.Append(uint32(BuildOPV(OpPlayDuring, 0, packValue(sideTop, valNone))))
			return s, OK
		}
	}
	if len(toks) == 0 || toks[0].Type != URI {
		return Style{}, INVALID
	}
	var s Style
	s.Append(uint32(BuildOPV(OpPlayDuring, 0, packValue(sideTop, valSet))))
	s.AppendHandle(pool.Intern(toks[0].Text))
	rest := trimWS(toks[1:])
	mix, repeat := false, false
	for _, t := range rest {
		if t.Type != IDENT {
			return Style{}, INVALID
		}
		switch lowerTokenText(t) {
		case "mix":
			mix = true
		case "repeat":
			repeat = true
		default:
			return Style{}, INVALID
		}
	}
	flags := uint32(0)
	if mix {
		flags |= 1
	}
	if repeat {
		flags |= 2
	}
	s.Append(flags)
	return s, OK
}

func parseListStyleImage(pool *strpool.Pool, toks []Token) (Style, Error) {
	toks = trimWS(filterComments(toks))
	if len(toks) != 1 {
		return Style{}, INVALID
	}
	if toks[0].Type == IDENT && lowerTokenText(toks[0]) == "none" {
		var s Style
		s.Append(uint32(BuildOPV(OpListStyleImage, 0, packValue(sideTop, valNone))))
		return s, OK
	}
	if toks[0].Type == URI {
		var s Style
		s.Append(uint32(BuildOPV(OpListStyleImage, 0, packValue(sideTop, valSet))))
		s.AppendHandle(pool.Intern(toks[0].Text))
		return s, OK
	}
	return Style{}, INVALID
}

func parseBackgroundImage(pool *strpool.Pool, toks []Token) (Style, Error) {
	toks = trimWS(filterComments(toks))
	if len(toks) != 1 {
		return Style{}, INVALID
	}
	if toks[0].Type == IDENT && lowerTokenText(toks[0]) == "none" {
		var s Style
		s.Append(uint32(BuildOPV(OpBackgroundImage, 0, packValue(sideTop, valNone))))
		return s, OK
	}
	if toks[0].Type == URI {
		var s Style
		s.Append(uint32(BuildOPV(OpBackgroundImage, 0, packValue(sideTop, valSet))))
		s.AppendHandle(pool.Intern(toks[0].Text))
		return s, OK
	}
	return Style{}, INVALID
}

var backgroundPositionKeywords = map[string]uint16{
	"left": 0, "center": 50, "right": 100, "top": 0, "bottom": 100,
}

func parseBackgroundPosition(pool *strpool.Pool, toks []Token) (Style, Error) {
	var parts []Token
	for _, t := range trimWS(filterComments(toks)) {
		if t.Type != WHITESPACE {
			parts = append(parts, t)
		}
	}
	if len(parts) == 0 || len(parts) > 2 {
		return Style{}, INVALID
	}
	if len(parts) == 1 {
		parts = append(parts, Token{Type: IDENT, Text: "center"})
	}
	var s Style
	s.Append(uint32(BuildOPV(OpBackgroundPosition, 0, packValue(sideTop, valSet))))
	for _, t := range parts {
		if t.Type == IDENT {
			if pct, ok := backgroundPositionKeywords[lowerTokenText(t)]; ok {
				s.Append(uint32(valSet))
				s.Append(uint32(FixedFromFloat(float64(pct))))
				s.Append(uint32(UnitPCT))
				continue
			}
			return Style{}, INVALID
		}
		unit, fixed, ok := parseLengthToken(t)
		if !ok {
			return Style{}, INVALID
		}
		s.Append(uint32(valSet))
		s.Append(uint32(fixed))
		s.Append(uint32(unit))
	}
	return s, OK
}
