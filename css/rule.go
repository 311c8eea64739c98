package css

import "github.com/lukehoban/cssengine/strpool"

// RuleType discriminates a Rule's variant.
//
// Spec references:
// - spec.md §3 Data model: "Rule"
type RuleType int

const (
	RuleSelector RuleType = iota
	RuleCharset
	RuleImport
	RuleMedia
	RuleFontFace
	RulePage
)

// MediaBit is one bit of a media-type bitset.
type MediaBit uint32

const (
	MediaScreen MediaBit = 1 << iota
	MediaPrint
	MediaAural
	MediaBraille
	MediaEmbossed
	MediaHandheld
	MediaProjection
	MediaTTY
	MediaTV

	MediaAll = MediaScreen | MediaPrint | MediaAural | MediaBraille |
		MediaEmbossed | MediaHandheld | MediaProjection | MediaTTY | MediaTV
)

// Rule is a tagged record for one top-level or nested production the
// parser accepted. Every rule carries its parent (sheet, or the enclosing
// @media rule) and a sheet-wide monotonic Index used for cascade
// order-of-appearance tie-breaking.
type Rule struct {
	Type RuleType

	// RuleSelector, RulePage
	Selectors []*Selector
	Style     Style

	// RuleCharset
	Charset strpool.Handle

	// RuleImport
	ImportURL    strpool.Handle
	ImportMedia  MediaBit
	ImportedSheet *Stylesheet // nil until the host registers it

	// RuleMedia
	Media    MediaBit
	Children []*Rule

	// Tree linkage. Parent is either the owning Stylesheet (top-level rule)
	// or the enclosing @media Rule; exactly one is non-nil.
	ParentSheet *Stylesheet
	ParentRule  *Rule

	// Index is monotonically non-decreasing within the owning sheet and
	// reflects source order; it is the cascade tie-breaker (spec.md §5).
	Index int
}

// newRule allocates a rule and assigns it the sheet's next index.
func newRule(sheet *Stylesheet, typ RuleType) *Rule {
	r := &Rule{Type: typ, ParentSheet: sheet}
	r.Index = sheet.nextRuleIndex()
	return r
}
