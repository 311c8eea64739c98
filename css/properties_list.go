package css

import "github.com/lukehoban/cssengine/strpool"

// List-valued properties carry a variable number of interned-string
// operands. Each encodes one OPV introducing the property followed by a
// sequence of per-item marker words (listItem*, each followed by that
// item's operands) closed by listItemEnd (so the decoder can stop without
// needing a count prefix), mirroring the original implementation's list opcodes
// (spec.md §4.5's "Value sub-parsers" item for font-family/content/
// cursor/quotes/counter-increment/counter-reset/voice-family).

const (
	listItemString uint16 = 1 // next handle is a literal STRING/IDENT family name
	listItemCounter uint16 = 2 // next handle is a counter() / counters() name
	listItemURI    uint16 = 3 // next handle is a cursor uri()
	listItemEnd    uint16 = 0 // terminates the list
)

func parseFontFamilyList(pool *strpool.Pool, toks []Token) (Style, Error) {
	groups := splitOnComma(toks)
	if len(groups) == 0 {
		return Style{}, INVALID
	}
	var s Style
	s.Append(uint32(BuildOPV(OpFontFamily, 0, 0)))
	for _, g := range groups {
		g = trimWS(filterComments(g))
		if len(g) == 0 {
			return Style{}, INVALID
		}
		var name string
		if len(g) == 1 && g[0].Type == STRING {
			name = g[0].Text
		} else {
			for i, t := range g {
				if t.Type != IDENT {
					return Style{}, INVALID
				}
				if i > 0 {
					name += " "
				}
				name += t.Text
			}
		}
		s.Append(uint32(listItemString))
		s.AppendHandle(pool.Intern(name))
	}
	s.Append(uint32(listItemEnd))
	return s, OK
}

func parseVoiceFamilyList(pool *strpool.Pool, toks []Token) (Style, Error) {
	return parseFontFamilyList(pool, toks)
}

func parseCursorList(pool *strpool.Pool, toks []Token) (Style, Error) {
	groups := splitOnComma(toks)
	if len(groups) == 0 {
		return Style{}, INVALID
	}
	var s Style
	s.Append(uint32(BuildOPV(OpCursor, 0, 0)))
	for i, g := range groups {
		g = trimWS(filterComments(g))
		if len(g) != 1 {
			return Style{}, INVALID
		}
		t := g[0]
		last := i == len(groups)-1
		switch {
		case t.Type == URI:
			s.Append(uint32(listItemURI))
			s.AppendHandle(pool.Intern(t.Text))
		case t.Type == IDENT && last:
			s.Append(uint32(listItemString))
			s.AppendHandle(pool.InternLower(t.Text))
		default:
			return Style{}, INVALID
		}
	}
	s.Append(uint32(listItemEnd))
	return s, OK
}

func parseQuotesList(pool *strpool.Pool, toks []Token) (Style, Error) {
	toks = trimWS(filterComments(toks))
	if len(toks) == 1 && toks[0].Type == IDENT && lowerTokenText(toks[0]) == "none" {
		var s Style
		s.Append(uint32(BuildOPV(OpQuotes, 0, packValue(sideTop, valNone))))
		return s, OK
	}
	if len(toks) == 0 || len(toks)%2 != 0 {
		return Style{}, INVALID
	}
	var s Style
	s.Append(uint32(BuildOPV(OpQuotes, 0, 0)))
	for _, t := range toks {
		if t.Type != STRING {
			return Style{}, INVALID
		}
		s.Append(uint32(listItemString))
		s.AppendHandle(pool.Intern(t.Text))
	}
	s.Append(uint32(listItemEnd))
	return s, OK
}

func parseContentList(pool *strpool.Pool, toks []Token) (Style, Error) {
	toks = trimWS(filterComments(toks))
	if len(toks) == 1 && toks[0].Type == IDENT {
		switch lowerTokenText(toks[0]) {
		case "normal":
			var s Style
			s.Append(uint32(BuildOPV(OpContent, 0, packValue(sideTop, valAuto))))
			return s, OK
		case "none":
			var s Style
			s.Append(uint32(BuildOPV(OpContent, 0, packValue(sideTop, valNone))))
			return s, OK
		}
	}
	if len(toks) == 0 {
		return Style{}, INVALID
	}
	var s Style
	s.Append(uint32(BuildOPV(OpContent, 0, 0)))
	i := 0
	for i < len(toks) {
		t := toks[i]
		switch {
		case t.Type == STRING:
			s.Append(uint32(listItemString))
			s.AppendHandle(pool.Intern(t.Text))
			i++
		case t.Type == URI:
			s.Append(uint32(listItemURI))
			s.AppendHandle(pool.Intern(t.Text))
			i++
		case t.Type == FUNCTION && (lowerTokenText(t) == "counter" || lowerTokenText(t) == "counters"):
			name, next, ok := parseCounterFunction(toks, i)
			if !ok {
				return Style{}, INVALID
			}
			s.Append(uint32(listItemCounter))
			s.AppendHandle(pool.Intern(name))
			i = next
		case t.Type == IDENT:
			switch lowerTokenText(t) {
			case "open-quote", "close-quote", "no-open-quote", "no-close-quote":
				s.Append(uint32(listItemString))
				s.AppendHandle(pool.InternLower(t.Text))
				i++
			case "attr":
				return Style{}, INVALID
			default:
				return Style{}, INVALID
			}
		default:
			return Style{}, INVALID
		}
	}
	s.Append(uint32(listItemEnd))
	return s, OK
}

// parseCounterFunction extracts the identifier name argument from a
// counter(name)/counters(name, sep) call starting at toks[i], returning
// the index just past the closing paren.
func parseCounterFunction(toks []Token, i int) (string, int, bool) {
	i++ // consume FUNCTION
	if i >= len(toks) || toks[i].Type != IDENT {
		return "", i, false
	}
	name := toks[i].Text
	i++
	for i < len(toks) && !(toks[i].Type == CHAR && toks[i].Text == ")") {
		i++
	}
	if i >= len(toks) {
		return "", i, false
	}
	return name, i + 1, true
}

func parseCounterAdjustList(pool *strpool.Pool, toks []Token) (Style, Error) {
	toks = trimWS(filterComments(toks))
	if len(toks) == 1 && toks[0].Type == IDENT && lowerTokenText(toks[0]) == "none" {
		var s Style
		s.Append(uint32(BuildOPV(OpCounterReset, 0, packValue(sideTop, valNone))))
		return s, OK
	}
	if len(toks) == 0 {
		return Style{}, INVALID
	}
	var s Style
	s.Append(uint32(BuildOPV(OpCounterReset, 0, 0)))
	i := 0
	for i < len(toks) {
		if toks[i].Type != IDENT {
			return Style{}, INVALID
		}
		s.Append(uint32(listItemCounter))
		s.AppendHandle(pool.Intern(toks[i].Text))
		i++
		amount := FixedFromFloat(0)
		if i < len(toks) && toks[i].Type == NUMBER {
			amount = FixedFromFloat(toks[i].Number)
			i++
		}
		s.Append(uint32(amount))
	}
	s.Append(uint32(listItemEnd))
	return s, OK
}

func parseCounterIncrementList(pool *strpool.Pool, toks []Token) (Style, Error) {
	s, err := parseCounterAdjustList(pool, toks)
	if err != OK || len(s.Words) == 0 {
		return s, err
	}
	op := OPV(s.Words[0])
	s.Words[0] = uint32(BuildOPV(OpCounterIncrement, op.Flags(), op.Value()))
	return s, OK
}
