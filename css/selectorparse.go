package css

import "github.com/lukehoban/cssengine/strpool"

// parseSelectorList parses a comma-separated selector-list token vector
// (the prelude captured between a ruleset's start and its opening '{')
// into one head Selector per comma-separated chain, per spec.md §4.4 item 1.
func parseSelectorList(pool *strpool.Pool, tokens []Token) ([]*Selector, bool) {
	tokens = filterComments(tokens)
	var result []*Selector
	for _, g := range splitOnComma(tokens) {
		g = trimWS(g)
		if len(g) == 0 {
			return nil, false
		}
		segments, combs := splitCombinators(g)
		if len(segments) == 0 {
			return nil, false
		}
		head, ok := buildChain(pool, segments, combs)
		if !ok {
			return nil, false
		}
		head.Specificity = head.ComputeSpecificity()
		result = append(result, head)
	}
	return result, true
}

func filterComments(toks []Token) []Token {
	out := make([]Token, 0, len(toks))
	for _, t := range toks {
		if t.Type != COMMENT {
			out = append(out, t)
		}
	}
	return out
}

func trimWS(toks []Token) []Token {
	i, j := 0, len(toks)
	for i < j && toks[i].Type == WHITESPACE {
		i++
	}
	for j > i && toks[j-1].Type == WHITESPACE {
		j--
	}
	return toks[i:j]
}

func splitOnComma(toks []Token) [][]Token {
	var groups [][]Token
	var cur []Token
	depth := 0
	for _, t := range toks {
		switch {
		case t.Type == CHAR && t.Text == "[":
			depth++
			cur = append(cur, t)
		case t.Type == CHAR && t.Text == "]":
			if depth > 0 {
				depth--
			}
			cur = append(cur, t)
		case depth == 0 && t.Type == CHAR && t.Text == ",":
			groups = append(groups, cur)
			cur = nil
		default:
			cur = append(cur, t)
		}
	}
	groups = append(groups, cur)
	return groups
}

// splitCombinators splits one comma-group into compound-selector token
// runs (segments) and the combinator following each one (CombinatorNone
// for the last).
func splitCombinators(group []Token) ([][]Token, []Combinator) {
	var segments [][]Token
	var combs []Combinator
	var seg []Token
	haveContent := false

	flush := func(following Combinator) {
		segments = append(segments, seg)
		combs = append(combs, following)
		seg = nil
		haveContent = false
	}

	i := 0
	for i < len(group) {
		t := group[i]
		switch {
		case t.Type == WHITESPACE:
			j := i + 1
			if j < len(group) && group[j].Type == CHAR && (group[j].Text == ">" || group[j].Text == "+") {
				i++
				continue
			}
			if j >= len(group) {
				i++
				continue
			}
			if haveContent {
				flush(CombinatorDescendant)
			}
			i++
		case t.Type == CHAR && (t.Text == ">" || t.Text == "+"):
			comb := CombinatorChild
			if t.Text == "+" {
				comb = CombinatorAdjacentSibling
			}
			if !haveContent {
				return nil, nil
			}
			flush(comb)
			i++
			for i < len(group) && group[i].Type == WHITESPACE {
				i++
			}
		default:
			seg = append(seg, t)
			haveContent = true
			i++
		}
	}
	if haveContent {
		flush(CombinatorNone)
	} else if len(segments) > 0 {
		// A trailing combinator ("div >") has no right-hand compound.
		return nil, nil
	}
	return segments, combs
}

// buildChain converts left-to-right compound segments (with the combinator
// following each) into a right-to-left Selector chain: segments[len-1]
// becomes the head.
func buildChain(pool *strpool.Pool, segments [][]Token, combs []Combinator) (*Selector, bool) {
	var head, cur *Selector
	for i := len(segments) - 1; i >= 0; i-- {
		details, ok := parseCompound(pool, segments[i])
		if !ok {
			return nil, false
		}
		sel := &Selector{Details: details}
		if cur != nil {
			cur.Combinator = combs[i]
			cur.Next = sel
		} else {
			head = sel
		}
		cur = sel
	}
	return head, true
}

// parseCompound parses one simple selector's token run (an optional
// element name or "*", followed by any number of class/id/attribute/
// pseudo-class conditions) into its Detail list. An element-less compound
// (bare "*", or no leading element token) yields no DetailElement, routing
// it to the selector hash's universal bucket.
func parseCompound(pool *strpool.Pool, toks []Token) ([]Detail, bool) {
	var details []Detail
	i := 0
	if i < len(toks) {
		switch {
		case toks[i].Type == IDENT:
			details = append(details, Detail{Kind: DetailElement, Name: pool.InternLower(toks[i].Text)})
			i++
		case toks[i].Type == CHAR && toks[i].Text == "*":
			i++
		}
	}
	for i < len(toks) {
		t := toks[i]
		switch {
		case t.Type == HASH:
			details = append(details, Detail{Kind: DetailID, Name: pool.Intern(t.Text)})
			i++
		case t.Type == CHAR && t.Text == ".":
			i++
			if i >= len(toks) || toks[i].Type != IDENT {
				return nil, false
			}
			details = append(details, Detail{Kind: DetailClass, Name: pool.Intern(toks[i].Text)})
			i++
		case t.Type == CHAR && t.Text == ":":
			i++
			pseudoElement := false
			if i < len(toks) && toks[i].Type == CHAR && toks[i].Text == ":" {
				pseudoElement = true
				i++
			}
			if i >= len(toks) || toks[i].Type != IDENT {
				return nil, false
			}
			kind := DetailPseudoClass
			if pseudoElement {
				kind = DetailPseudoElement
			}
			details = append(details, Detail{Kind: kind, Name: pool.InternLower(toks[i].Text)})
			i++
		case t.Type == CHAR && t.Text == "[":
			var ok bool
			details, i, ok = parseAttribute(pool, toks, i, details)
			if !ok {
				return nil, false
			}
		default:
			return nil, false
		}
	}
	return details, true
}

func parseAttribute(pool *strpool.Pool, toks []Token, i int, details []Detail) ([]Detail, int, bool) {
	i++ // consume '['
	if i >= len(toks) || toks[i].Type != IDENT {
		return details, i, false
	}
	name := toks[i].Text
	i++
	if i < len(toks) && toks[i].Type == CHAR && toks[i].Text == "]" {
		details = append(details, Detail{Kind: DetailAttribute, Name: pool.Intern(name)})
		return details, i + 1, true
	}
	if i >= len(toks) {
		return details, i, false
	}
	var kind DetailKind
	switch {
	case toks[i].Type == CHAR && toks[i].Text == "=":
		kind = DetailAttributeEqual
	case toks[i].Type == INCLUDES:
		kind = DetailAttributeIncludes
	case toks[i].Type == DASHMATCH:
		kind = DetailAttributeDashmatch
	default:
		return details, i, false
	}
	i++
	if i >= len(toks) {
		return details, i, false
	}
	var val string
	switch toks[i].Type {
	case STRING, IDENT:
		val = toks[i].Text
	default:
		return details, i, false
	}
	i++
	if i >= len(toks) || !(toks[i].Type == CHAR && toks[i].Text == "]") {
		return details, i, false
	}
	details = append(details, Detail{Kind: kind, Name: pool.Intern(name), Value: pool.Intern(val)})
	return details, i + 1, true
}
