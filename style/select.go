package style

import (
	"github.com/lukehoban/cssengine/css"
	"github.com/lukehoban/cssengine/strpool"
)

func handleText(h strpool.Handle) string { return strpool.Data(h) }

// elementNameString returns the text of sel's element-name detail, if it
// has one (a universal selector does not).
func elementNameString(sel *css.Selector) (string, bool) {
	h, ok := sel.ElementName()
	if !ok {
		return "", false
	}
	return strpool.Data(h), true
}

// Select runs the cascade for node against every stylesheet in sheets and
// returns its (uncomposed) computed style: every property a matching
// declaration touched is Set, everything else is left unset for Compose
// to resolve against the parent (spec.md §4.7/§4.8).
//
// pseudo asserts which dynamic/UI pseudo-classes currently apply to node
// (:hover, :focus, ...); media selects which stylesheets and @media
// blocks are in effect; inline, if non-nil, is the node's "style"
// attribute, cascaded as CSS 2.1 mandates: an implicit author-origin
// declaration with a specificity higher than any selector, still
// overridden by an author or user !important declaration.
func Select(host Host, sheets []*css.Stylesheet, node Node, pseudo DynamicPseudo, media MediaBit, inline *css.Style) (*ComputedStyle, error) {
	w := newWinnerSet()

	for sheetIdx, sheet := range sheets {
		if sheet.Disabled {
			continue
		}
		if sheet.Options.Media&media == 0 {
			continue
		}
		if err := selectFromSheet(host, sheet, sheetIdx, node, pseudo, media, w); err != nil {
			return nil, err
		}
	}

	if inline != nil {
		for _, d := range decodeStyle(*inline) {
			rank := cascadeRank(css.OriginAuthor, d.Important)
			spec := css.NewSpecificity(1, 0, 0, 0)
			w.offer(d.Opcode, d.Side, candidate{rank: rank, spec: spec, sheetIdx: -1, ruleIdx: 0, value: d.Value})
		}
	}

	cs := New()
	w.writeInto(cs)
	return cs, nil
}

// selectFromSheet looks up every selector whose rightmost simple selector
// could match node (by element name, plus the universal bucket) and
// tests each one in full.
func selectFromSheet(host Host, sheet *css.Stylesheet, sheetIdx int, node Node, pseudo DynamicPseudo, media MediaBit, w *winnerSet) error {
	name, err := host.NodeName(node)
	if err != nil {
		return err
	}
	h := sheet.Options.Pool.Intern(name)
	defer sheet.Options.Pool.Unref(h)

	byName := sheet.Hash.Lookup(h)
	universal := sheet.Hash.Universal()
	candidates := make([]*css.Selector, 0, len(byName)+len(universal))
	candidates = append(candidates, byName...)
	candidates = append(candidates, universal...)

	for _, sel := range candidates {
		if sel.Rule == nil || sel.Rule.Type != css.RuleSelector || !ruleApplies(sel.Rule, media) {
			continue
		}
		matched, err := matchChain(host, sel, node, pseudo)
		if err != nil {
			return err
		}
		if !matched {
			continue
		}
		rank0 := sheet.Options.Origin
		for _, d := range decodeStyle(sel.Rule.Style) {
			rank := cascadeRank(rank0, d.Important)
			w.offer(d.Opcode, d.Side, candidate{
				rank: rank, spec: sel.Specificity,
				sheetIdx: sheetIdx, ruleIdx: sel.Rule.Index,
				value: d.Value,
			})
		}
	}
	return nil
}

// ruleApplies reports whether r (a RuleSelector, possibly nested inside
// one or more @media blocks) is in effect for media, by walking up its
// ParentRule chain.
func ruleApplies(r *css.Rule, media MediaBit) bool {
	for cur := r.ParentRule; cur != nil; cur = cur.ParentRule {
		if cur.Type == css.RuleMedia && cur.Media&media == 0 {
			return false
		}
	}
	return true
}

// cascadeRank implements CSS 2.1 §6.4.1's cascading order, lowest to
// highest precedence: user-agent, then user-agent !important, then user
// normal, author normal, author !important, user !important.
// Author-origin declarations also cover the inline-style pseudo-origin
// Select synthesizes above; its elevated specificity (not rank) is what
// lets it outrank ordinary author declarations.
func cascadeRank(origin css.Origin, important bool) int {
	switch origin {
	case css.OriginUA:
		if important {
			return 1
		}
		return 0
	case css.OriginUser:
		if important {
			return 5
		}
		return 2
	default: // css.OriginAuthor
		if important {
			return 4
		}
		return 3
	}
}

// candidate is one decoded declaration competing for a (opcode, side)
// slot, carrying everything cascadeLess needs to rank it.
type candidate struct {
	rank     int
	spec     css.Specificity
	sheetIdx int
	ruleIdx  int
	value    Value
}

// cascadeLess reports whether a loses to b: lower rank, then lower
// specificity, then earlier in the combined (sheet, rule) source order.
func cascadeLess(a, b candidate) bool {
	if a.rank != b.rank {
		return a.rank < b.rank
	}
	if a.spec != b.spec {
		return a.spec < b.spec
	}
	if a.sheetIdx != b.sheetIdx {
		return a.sheetIdx < b.sheetIdx
	}
	return a.ruleIdx < b.ruleIdx
}

type slotKey struct {
	op   css.Opcode
	side css.Side
}

// winnerSet tracks, per (opcode, side) slot, the highest-cascading
// declaration seen so far.
type winnerSet struct {
	winners map[slotKey]candidate
}

func newWinnerSet() *winnerSet {
	return &winnerSet{winners: map[slotKey]candidate{}}
}

func (w *winnerSet) offer(op css.Opcode, side css.Side, c candidate) {
	key := slotKey{op, side}
	if cur, ok := w.winners[key]; !ok || cascadeLess(cur, c) {
		w.winners[key] = c
	}
}

func (w *winnerSet) writeInto(cs *ComputedStyle) {
	for key, c := range w.winners {
		cs.set(key.op, int(key.side), c.value)
	}
}

// matchChain tests sel's own Details against node, then (if sel.Next is
// non-nil) recurses across sel.Combinator to find a related node
// satisfying the rest of the chain.
func matchChain(host Host, sel *css.Selector, node Node, pseudo DynamicPseudo) (bool, error) {
	ok, err := matchDetails(host, sel.Details, node, pseudo)
	if err != nil || !ok {
		return false, err
	}
	if sel.Next == nil {
		return true, nil
	}
	switch sel.Combinator {
	case css.CombinatorDescendant:
		return matchDescendant(host, sel.Next, node, pseudo)
	case css.CombinatorChild:
		return matchRelated(host, sel.Next, node, pseudo, host.NamedParentNode, host.ParentNode)
	case css.CombinatorAdjacentSibling:
		return matchRelated(host, sel.Next, node, pseudo, host.NamedSiblingNode, host.SiblingNode)
	}
	return false, nil
}

type namedLookup func(n Node, name string) (Node, bool, error)
type plainLookup func(n Node) (Node, bool, error)

// matchRelated steps to node's single related node (parent or preceding
// sibling, depending on which lookup pair is passed) and matches the
// rest of the chain against it. Used for combinators with no backtracking
// (a node has exactly one parent and one immediately preceding sibling).
func matchRelated(host Host, next *css.Selector, node Node, pseudo DynamicPseudo, named namedLookup, plain plainLookup) (bool, error) {
	related, ok, err := stepRelated(next, node, named, plain)
	if err != nil || !ok {
		return false, err
	}
	return matchChain(host, next, related, pseudo)
}

func stepRelated(next *css.Selector, node Node, named namedLookup, plain plainLookup) (Node, bool, error) {
	if name, ok := elementNameString(next); ok {
		return named(node, name)
	}
	return plain(node)
}

// matchDescendant searches node's ancestor chain for one that satisfies
// next's full chain, backtracking past a same-named ancestor that fails
// the rest of next's conditions (e.g. "div.a p" must skip a nearer
// ancestor named div lacking class a in favour of a farther one that has
// it).
func matchDescendant(host Host, next *css.Selector, node Node, pseudo DynamicPseudo) (bool, error) {
	cur := node
	for {
		var anc Node
		var ok bool
		var err error
		if name, hasName := elementNameString(next); hasName {
			anc, ok, err = host.NamedAncestorNode(cur, name)
		} else {
			anc, ok, err = host.ParentNode(cur)
		}
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
		matched, err := matchChain(host, next, anc, pseudo)
		if err != nil {
			return false, err
		}
		if matched {
			return true, nil
		}
		cur = anc
	}
}

// matchDetails tests every condition of one simple selector against node.
func matchDetails(host Host, details []css.Detail, node Node, pseudo DynamicPseudo) (bool, error) {
	for _, d := range details {
		ok, err := matchDetail(host, d, node, pseudo)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

func matchDetail(host Host, d css.Detail, node Node, pseudo DynamicPseudo) (bool, error) {
	switch d.Kind {
	case css.DetailElement:
		name := handleText(d.Name)
		if name == "*" {
			return true, nil
		}
		got, err := host.NodeName(node)
		if err != nil {
			return false, err
		}
		return got == name, nil
	case css.DetailClass:
		return host.NodeHasClass(node, handleText(d.Name))
	case css.DetailID:
		return host.NodeHasID(node, handleText(d.Name))
	case css.DetailPseudoClass:
		bit, ok := dynamicPseudoNames[handleText(d.Name)]
		if !ok {
			// Structural/target pseudo-classes (:first-child, :lang(), ...)
			// are outside spec.md's scope; an unrecognised pseudo-class
			// never matches rather than silently matching everything.
			return false, nil
		}
		return pseudo&bit != 0, nil
	case css.DetailPseudoElement:
		// Generated-content pseudo-elements are a layout/painting concern
		// (Non-goal); their presence in a selector never excludes it from
		// matching the element the engine does compute a style for.
		return true, nil
	case css.DetailAttribute:
		return host.NodeHasAttribute(node, handleText(d.Name))
	case css.DetailAttributeEqual:
		return host.NodeHasAttributeEqual(node, handleText(d.Name), handleText(d.Value))
	case css.DetailAttributeDashmatch:
		return host.NodeHasAttributeDashmatch(node, handleText(d.Name), handleText(d.Value))
	case css.DetailAttributeIncludes:
		return host.NodeHasAttributeIncludes(node, handleText(d.Name), handleText(d.Value))
	}
	return false, nil
}
