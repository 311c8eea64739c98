package style

import (
	"github.com/lukehoban/cssengine/css"
	"github.com/lukehoban/cssengine/strpool"
)

// block classifies an opcode into one of the computed style's four storage
// blocks, per spec.md §4.8 and original_source/include/libcss/computed.h's
// css_computed_style/uncommon/aural/page split. The eager block holds the
// properties every node is likely to query (box model, color, display,
// text); the other three are allocated lazily on first write.
type block int

const (
	blockCommon block = iota
	blockUncommon
	blockPage
	blockAural
)

var opcodeBlock [256]block

func init() {
	for _, op := range []css.Opcode{
		css.OpBorderSpacing, css.OpClip, css.OpContent, css.OpCounterIncrement,
		css.OpCounterReset, css.OpLetterSpacing, css.OpOutlineColor,
		css.OpOutlineWidth, css.OpQuotes, css.OpWordSpacing, css.OpCursor,
	} {
		opcodeBlock[op] = blockUncommon
	}
	for _, op := range []css.Opcode{
		css.OpOrphans, css.OpPageBreakAfter, css.OpPageBreakBefore,
		css.OpPageBreakInside, css.OpWidows,
	} {
		opcodeBlock[op] = blockPage
	}
	for _, op := range []css.Opcode{
		css.OpAzimuth, css.OpCueAfter, css.OpCueBefore, css.OpElevation,
		css.OpPauseAfter, css.OpPauseBefore, css.OpPitch, css.OpPitchRange,
		css.OpPlayDuring, css.OpRichness, css.OpSpeak, css.OpSpeakHeader,
		css.OpSpeakNumeral, css.OpSpeakPunctuation, css.OpSpeechRate,
		css.OpStress, css.OpVoiceFamily, css.OpVolume,
	} {
		opcodeBlock[op] = blockAural
	}
	// Everything not listed above defaults to blockCommon (the zero value).
}

// ListItemKind discriminates one entry of a list-valued property's decoded
// value (font-family, voice-family, cursor, quotes, content,
// counter-increment, counter-reset), mirroring css.listItem* discriminants.
type ListItemKind int

const (
	ListItemString ListItemKind = iota
	ListItemCounter
	ListItemURI
)

// ListItem is one decoded entry of a list-valued property.
type ListItem struct {
	Kind   ListItemKind
	Text   strpool.Handle
	Amount css.Fixed // counter-increment/-reset adjustment; zero otherwise
}

// Value is the decoded, concrete result of one property accessor: either a
// resolved value in one of these fields (the caller knows which field is
// meaningful from the property it asked for) or Inherit=true, meaning
// "resolve from parent" (spec.md §3 Computed style: "the sentinel INHERIT").
type Value struct {
	Inherit bool
	Set     bool // false means "not set by any matching rule nor given an explicit keyword"; such a slot reads as unsetValue (Inherit==true) and callers apply the property's own initial value

	// Enum carries a kindEnum property's raw keyword code verbatim, or
	// (for length/colour/number properties) one of css.ValSet/ValAuto/
	// ValNone/ValKeywordBase+code, matching the same overload the
	// bytecode's value field uses.
	Enum   uint16
	Number int32 // plain (non-fixed-point) magnitude: font-weight's 100-900, play-during's mix/repeat bits
	Length css.Fixed
	Unit   css.Unit
	Colour css.Colour
	Str    strpool.Handle
	List   []ListItem
	Rect   [4]lengthPair // clip's four rect() components
	Pair   lengthPair    // border-spacing's vertical length (horizontal uses Length/Unit); background-position's vertical component
}

type lengthPair struct {
	Auto   bool
	Length css.Fixed
	Unit   css.Unit
}

// unsetValue is what an un-written slot reads as: Inherit, matching
// spec.md §3's "properties not set by any matching rule are left as
// INHERIT".
var unsetValue = Value{Inherit: true}

// sideCount is 4 for the five TRBL-templated opcodes (margin, padding,
// the three border triads) and 1 for everything else.
func sideCount(op css.Opcode) int {
	switch op {
	case css.OpMarginTRBL, css.OpPaddingTRBL,
		css.OpBorderTRBLColor, css.OpBorderTRBLStyle, css.OpBorderTRBLWidth:
		return 4
	}
	return 1
}

// commonBlock holds the eagerly-allocated slots for every blockCommon
// opcode, side-indexed for the five TRBL properties. Sized at package init
// time from commonSlots, so it is a slice rather than a fixed-size array.
type commonBlock struct {
	slots []Value
}

// uncommonBlock, pageBlock, auralBlock hold the lazily-allocated slots for
// their respective blocks, indexed the same way via slotIndex.
type uncommonBlock struct{ slots []Value }
type pageBlock struct{ slots []Value }
type auralBlock struct{ slots []Value }

// slotOffset maps an opcode (and, for TRBL opcodes, a side) to its index
// within the owning block's slots array. Built once from opcodeBlock so
// each block is densely packed instead of being indexed by the full
// 84-opcode space.
var (
	commonIndex   = map[css.Opcode]int{}
	uncommonIndex = map[css.Opcode]int{}
	pageIndex     = map[css.Opcode]int{}
	auralIndex    = map[css.Opcode]int{}
	commonSlots   int
	uncommonSlots int
	pageSlots     int
	auralSlots    int
)

func init() {
	for opInt := 0; opInt < css.NumOpcodes; opInt++ {
		op := css.Opcode(opInt)
		n := sideCount(op)
		switch opcodeBlock[op] {
		case blockCommon:
			commonIndex[op] = commonSlots
			commonSlots += n
		case blockUncommon:
			uncommonIndex[op] = uncommonSlots
			uncommonSlots += n
		case blockPage:
			pageIndex[op] = pageSlots
			pageSlots += n
		case blockAural:
			auralIndex[op] = auralSlots
			auralSlots += n
		}
	}
}

// ComputedStyle is a fixed-size typed record exposing every CSS 2.1
// property, partitioned into the frequent eager block plus three
// opt-allocated blocks, per spec.md §4.8. The zero value is a valid,
// fully-unset style (every accessor returns Inherit).
type ComputedStyle struct {
	common   commonBlock
	uncommon *uncommonBlock
	page     *pageBlock
	aural    *auralBlock
}

// newFilledSlots returns a slice of n Values, each initialised to
// unsetValue (Go's zero Value already has Inherit=false, Set=false, which
// is not the same as "unset" per spec.md's INHERIT sentinel, so every
// slots slice must be explicitly filled rather than left at its zero
// value).
func newFilledSlots(n int) []Value {
	s := make([]Value, n)
	for i := range s {
		s[i] = unsetValue
	}
	return s
}

// New returns an empty ComputedStyle with every property unset (Inherit).
func New() *ComputedStyle {
	return &ComputedStyle{common: commonBlock{slots: newFilledSlots(commonSlots)}}
}

// Get returns the decoded value of op's side-th side (side is ignored for
// non-TRBL opcodes), or unsetValue if nothing has written to that slot.
// This is the uniform low-level accessor the selection engine and
// composition step use; typed sugar accessors below wrap it for the
// properties most often queried from outside this package.
func (c *ComputedStyle) Get(op css.Opcode, side int) Value {
	switch opcodeBlock[op] {
	case blockCommon:
		if c.common.slots == nil {
			return unsetValue
		}
		i, ok := commonIndex[op]
		if !ok {
			return unsetValue
		}
		return c.common.slots[i+side]
	case blockUncommon:
		if c.uncommon == nil {
			return unsetValue
		}
		i, ok := uncommonIndex[op]
		if !ok {
			return unsetValue
		}
		return c.uncommon.slots[i+side]
	case blockPage:
		if c.page == nil {
			return unsetValue
		}
		i, ok := pageIndex[op]
		if !ok {
			return unsetValue
		}
		return c.page.slots[i+side]
	case blockAural:
		if c.aural == nil {
			return unsetValue
		}
		i, ok := auralIndex[op]
		if !ok {
			return unsetValue
		}
		return c.aural.slots[i+side]
	}
	return unsetValue
}

// set writes v into op's side-th slot, allocating the owning lazy block on
// first write.
func (c *ComputedStyle) set(op css.Opcode, side int, v Value) {
	switch opcodeBlock[op] {
	case blockCommon:
		if c.common.slots == nil {
			c.common.slots = newFilledSlots(commonSlots)
		}
		i, ok := commonIndex[op]
		if !ok {
			return
		}
		c.common.slots[i+side] = v
	case blockUncommon:
		if c.uncommon == nil {
			c.uncommon = &uncommonBlock{slots: newFilledSlots(uncommonSlots)}
		}
		i, ok := uncommonIndex[op]
		if !ok {
			return
		}
		c.uncommon.slots[i+side] = v
	case blockPage:
		if c.page == nil {
			c.page = &pageBlock{slots: newFilledSlots(pageSlots)}
		}
		i, ok := pageIndex[op]
		if !ok {
			return
		}
		c.page.slots[i+side] = v
	case blockAural:
		if c.aural == nil {
			c.aural = &auralBlock{slots: newFilledSlots(auralSlots)}
		}
		i, ok := auralIndex[op]
		if !ok {
			return
		}
		c.aural.slots[i+side] = v
	}
}

// Side identifies one of the four box edges, re-exported from css so
// callers of this package can name a side without importing css directly.
type Side = css.Side

const (
	SideTop    = css.SideTop
	SideRight  = css.SideRight
	SideBottom = css.SideBottom
	SideLeft   = css.SideLeft
)

// ---- Typed sugar accessors for the properties most often queried ----
//
// These wrap Get/decodeOPVValue for named properties; everything else
// (including every TRBL/uncommon/page/aural property) remains reachable
// through Get(op, side) using the Op* constants in the css package.

// Color returns the resolved "color" value.
func (c *ComputedStyle) Color() Value { return c.Get(css.OpColor, 0) }

// BackgroundColor returns the resolved "background-color" value.
func (c *ComputedStyle) BackgroundColor() Value { return c.Get(css.OpBackgroundColor, 0) }

// Display returns the resolved "display" value.
func (c *ComputedStyle) Display() Value { return c.Get(css.OpDisplay, 0) }

// Position returns the resolved "position" value.
func (c *ComputedStyle) Position() Value { return c.Get(css.OpPosition, 0) }

// Float returns the resolved "float" value.
func (c *ComputedStyle) Float() Value { return c.Get(css.OpFloat, 0) }

// Width returns the resolved "width" value.
func (c *ComputedStyle) Width() Value { return c.Get(css.OpWidth, 0) }

// Height returns the resolved "height" value.
func (c *ComputedStyle) Height() Value { return c.Get(css.OpHeight, 0) }

// FontSize returns the resolved "font-size" value.
func (c *ComputedStyle) FontSize() Value { return c.Get(css.OpFontSize, 0) }

// FontFamily returns the resolved "font-family" list value.
func (c *ComputedStyle) FontFamily() Value { return c.Get(css.OpFontFamily, 0) }

// LineHeight returns the resolved "line-height" value.
func (c *ComputedStyle) LineHeight() Value { return c.Get(css.OpLineHeight, 0) }

// TextAlign returns the resolved "text-align" value.
func (c *ComputedStyle) TextAlign() Value { return c.Get(css.OpTextAlign, 0) }

// Visibility returns the resolved "visibility" value.
func (c *ComputedStyle) Visibility() Value { return c.Get(css.OpVisibility, 0) }

// Margin returns the resolved "margin-<side>" value.
func (c *ComputedStyle) Margin(s Side) Value { return c.Get(css.OpMarginTRBL, int(s)) }

// Padding returns the resolved "padding-<side>" value.
func (c *ComputedStyle) Padding(s Side) Value { return c.Get(css.OpPaddingTRBL, int(s)) }

// BorderWidth returns the resolved "border-<side>-width" value.
func (c *ComputedStyle) BorderWidth(s Side) Value { return c.Get(css.OpBorderTRBLWidth, int(s)) }

// BorderStyle returns the resolved "border-<side>-style" value.
func (c *ComputedStyle) BorderStyle(s Side) Value { return c.Get(css.OpBorderTRBLStyle, int(s)) }

// BorderColor returns the resolved "border-<side>-color" value.
func (c *ComputedStyle) BorderColor(s Side) Value { return c.Get(css.OpBorderTRBLColor, int(s)) }

// Top, Right, Bottom, Left return the resolved offset properties.
func (c *ComputedStyle) Top() Value    { return c.Get(css.OpTop, 0) }
func (c *ComputedStyle) Right() Value  { return c.Get(css.OpRight, 0) }
func (c *ComputedStyle) Bottom() Value { return c.Get(css.OpBottom, 0) }
func (c *ComputedStyle) Left() Value   { return c.Get(css.OpLeft, 0) }

// Cursor returns the resolved "cursor" list value (uncommon block).
func (c *ComputedStyle) Cursor() Value { return c.Get(css.OpCursor, 0) }

// Content returns the resolved "content" list value (uncommon block).
func (c *ComputedStyle) Content() Value { return c.Get(css.OpContent, 0) }

// Quotes returns the resolved "quotes" list value (uncommon block).
func (c *ComputedStyle) Quotes() Value { return c.Get(css.OpQuotes, 0) }

// ZIndex returns the resolved "z-index" value.
func (c *ComputedStyle) ZIndex() Value { return c.Get(css.OpZIndex, 0) }
