package style

import "github.com/lukehoban/cssengine/css"

// inheritedByDefault lists the CSS 2.1 properties whose computed value
// inherits from the parent even without an explicit "inherit" keyword
// (CSS 2.1 Appendix F's per-property "Inherited" column). Every opcode
// absent from this set takes its initial value when no rule sets it.
var inheritedByDefault = buildInheritedSet(
	css.OpAzimuth, css.OpBorderCollapse, css.OpBorderSpacing, css.OpCaptionSide,
	css.OpColor, css.OpCursor, css.OpDirection, css.OpElevation, css.OpEmptyCells,
	css.OpFontFamily, css.OpFontSize, css.OpFontStyle, css.OpFontVariant,
	css.OpFontWeight, css.OpLetterSpacing, css.OpLineHeight, css.OpListStyleImage,
	css.OpListStylePosition, css.OpListStyleType, css.OpOrphans, css.OpPitch,
	css.OpPitchRange, css.OpQuotes, css.OpRichness, css.OpSpeakHeader,
	css.OpSpeakNumeral, css.OpSpeakPunctuation, css.OpSpeak, css.OpSpeechRate,
	css.OpStress, css.OpTextAlign, css.OpTextIndent, css.OpTextTransform,
	css.OpVisibility, css.OpVoiceFamily, css.OpVolume, css.OpWhiteSpace,
	css.OpWidows, css.OpWordSpacing,
)

func buildInheritedSet(ops ...css.Opcode) []bool {
	set := make([]bool, css.NumOpcodes)
	for _, op := range ops {
		set[op] = true
	}
	return set
}

// Compose produces child's computed style given its already-composed
// parent, per spec.md §4.8's parent-child inheritance step: a slot left
// at css.Inherit (explicitly, via the "inherit" keyword) always pulls the
// parent's resolved value; an untouched slot pulls it only if the
// property inherits by default, and otherwise stays unset so the caller
// applies the property's initial value.
//
// Pass a fully-unset ComputedStyle (New()) as parent for the document
// root: every property then resolves to either its initial value or, for
// an explicit "inherit" on the root, the same initial-value fallback.
func Compose(parent, child *ComputedStyle) *ComputedStyle {
	out := New()
	for opInt := 0; opInt < css.NumOpcodes; opInt++ {
		op := css.Opcode(opInt)
		n := sideCount(op)
		for side := 0; side < n; side++ {
			v := child.Get(op, side)
			switch {
			case v.Set && v.Inherit:
				out.set(op, side, parent.Get(op, side))
			case v.Set:
				out.set(op, side, v)
			case inheritedByDefault[op]:
				out.set(op, side, parent.Get(op, side))
			}
		}
	}
	return out
}
