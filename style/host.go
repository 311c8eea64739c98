// Package style implements the selection engine and computed-style model:
// given a document node and a set of stylesheets, it finds every matching
// declaration, applies CSS 2.1 cascade ordering, and writes the winning
// values into a caller-owned ComputedStyle.
//
// Spec references:
// - spec.md §4.7 Selection engine
// - spec.md §4.8 Computed-style model
package style

import "github.com/lukehoban/cssengine/css"

// Node is an opaque handle to a document node, owned and interpreted only
// by the host's Host implementation; the engine never dereferences it.
type Node any

// DynamicPseudo is a bitset over the CSS 2.1 dynamic/UI pseudo-classes the
// engine can match, asserted by the caller for the duration of one
// selection call (spec.md §4.7).
type DynamicPseudo uint32

const (
	PseudoHover DynamicPseudo = 1 << iota
	PseudoActive
	PseudoFocus
	PseudoLink
	PseudoVisited
	PseudoTarget
	PseudoEnabled
	PseudoDisabled
	PseudoChecked
)

var dynamicPseudoNames = map[string]DynamicPseudo{
	"hover":    PseudoHover,
	"active":   PseudoActive,
	"focus":    PseudoFocus,
	"link":     PseudoLink,
	"visited":  PseudoVisited,
	"target":   PseudoTarget,
	"enabled":  PseudoEnabled,
	"disabled": PseudoDisabled,
	"checked":  PseudoChecked,
}

// Host is implemented by the embedder to let the selection engine walk the
// document tree and test node predicates without ever inspecting node
// memory directly (spec.md §4.7's "Contract of the host-node interface").
// Every method reports failure with a non-nil error, which aborts
// selection entirely — there is no meaningful "skip this node".
type Host interface {
	// NodeName returns n's element name (e.g. "p", "div").
	NodeName(n Node) (string, error)

	// NamedAncestorNode returns the nearest ancestor of n named name, for
	// a descendant-combinator step.
	NamedAncestorNode(n Node, name string) (found Node, ok bool, err error)
	// NamedParentNode returns n's parent if it is named name, for a
	// child-combinator step.
	NamedParentNode(n Node, name string) (found Node, ok bool, err error)
	// NamedSiblingNode returns n's immediately preceding sibling if it is
	// named name, for an adjacent-sibling-combinator step.
	NamedSiblingNode(n Node, name string) (found Node, ok bool, err error)

	// ParentNode returns n's parent, for a universal-element combinator
	// step that still needs the node reference to test further details.
	ParentNode(n Node) (found Node, ok bool, err error)
	// SiblingNode returns n's immediately preceding sibling.
	SiblingNode(n Node) (found Node, ok bool, err error)

	NodeHasClass(n Node, class string) (bool, error)
	NodeHasID(n Node, id string) (bool, error)
	NodeHasAttribute(n Node, name string) (bool, error)
	NodeHasAttributeEqual(n Node, name, value string) (bool, error)
	NodeHasAttributeDashmatch(n Node, name, value string) (bool, error)
	NodeHasAttributeIncludes(n Node, name, value string) (bool, error)
}

// MediaBit re-exports css.MediaBit so callers of this package don't need to
// import css directly for media queries.
type MediaBit = css.MediaBit
