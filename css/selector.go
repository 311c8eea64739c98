package css

import "github.com/lukehoban/cssengine/strpool"

// DetailKind discriminates a single selector condition.
//
// Spec references:
// - spec.md §3 Data model: "Selector detail"
type DetailKind int

const (
	DetailElement DetailKind = iota
	DetailClass
	DetailID
	DetailPseudoClass
	DetailPseudoElement
	DetailAttribute
	DetailAttributeEqual
	DetailAttributeDashmatch
	DetailAttributeIncludes
)

// Detail is one condition of a simple selector.
type Detail struct {
	Kind  DetailKind
	Name  strpool.Handle // interned element/class/id/attribute/pseudo name
	Value strpool.Handle // interned attribute value, only for attribute tests
}

// Combinator is the relationship between a selector and the one it links to.
type Combinator int

const (
	CombinatorNone Combinator = iota
	CombinatorDescendant
	CombinatorChild
	CombinatorAdjacentSibling
)

// Specificity weights, per spec.md §3: inline(24), id(16), class/attr/
// pseudo-class(8), element/pseudo-element(0), each an 8-bit field.
const (
	specInlineShift = 24
	specIDShift      = 16
	specClassShift   = 8
	specElementShift = 0
)

// Specificity packs the four weighted counts into a single comparable value.
type Specificity uint32

// NewSpecificity builds a Specificity from per-category counts. Each count
// is clamped into its 8-bit field, matching the reference's saturating
// behaviour for pathological selectors with hundreds of classes.
func NewSpecificity(inline, id, class, element int) Specificity {
	return Specificity(clamp8(inline)<<specInlineShift |
		clamp8(id)<<specIDShift |
		clamp8(class)<<specClassShift |
		clamp8(element)<<specElementShift)
}

func clamp8(n int) uint32 {
	if n < 0 {
		return 0
	}
	if n > 0xff {
		return 0xff
	}
	return uint32(n)
}

// Selector is one link in a right-to-left selector chain: a simple selector
// (its Details) plus the combinator connecting it to Next, the selector that
// must match a related node. The head of a chain (combinator-reachable from
// nowhere) additionally carries the chain's Specificity and a back-pointer
// to its owning Rule.
type Selector struct {
	Details    []Detail
	Combinator Combinator
	Next       *Selector

	// Set only on the head selector of a chain (the one matched against the
	// node selection starts from).
	Specificity Specificity
	Rule        *Rule
}

// ComputeSpecificity walks the whole chain from head and sums weighted
// detail counts, per spec.md §3.
func (s *Selector) ComputeSpecificity() Specificity {
	var inline, id, class, element int
	for sel := s; sel != nil; sel = sel.Next {
		for _, d := range sel.Details {
			switch d.Kind {
			case DetailID:
				id++
			case DetailClass, DetailAttribute, DetailAttributeEqual,
				DetailAttributeDashmatch, DetailAttributeIncludes, DetailPseudoClass:
				class++
			case DetailElement, DetailPseudoElement:
				element++
			}
		}
	}
	return NewSpecificity(inline, id, class, element)
}

// ElementName returns the interned element-name handle of the selector's
// head detail, if any, used as the selector hash bucket key.
func (s *Selector) ElementName() (strpool.Handle, bool) {
	for _, d := range s.Details {
		if d.Kind == DetailElement {
			return d.Name, true
		}
	}
	return strpool.Handle{}, false
}
