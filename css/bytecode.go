package css

import "github.com/lukehoban/cssengine/strpool"

// OPV is a single 32-bit bytecode word: opcode (10 bits) | flags (8 bits) |
// value discriminant (14 bits). Operand words for list- or length-valued
// properties follow directly after the OPV that introduces them.
//
// Spec references:
// - spec.md §3 Data model: "Style bytecode"
// - spec.md §6 External interfaces: "Bytecode layout"
// - original_source/src/bytecode/bytecode.h (buildOPV/getOpcode/getFlags/getValue)
type OPV uint32

// Opcode identifies a CSS 2.1 property within the bytecode. The numbering
// is taken verbatim from the original implementation's opcode enum so that
// bytecode dumps remain comparable to it.
type Opcode uint16

const (
	OpAzimuth Opcode = iota
	OpBackgroundAttachment
	OpBackgroundColor
	OpBackgroundImage
	OpBackgroundPosition
	OpBackgroundRepeat
	OpBorderCollapse
	OpBorderSpacing
	OpBorderTRBLColor
	OpBorderTRBLStyle
	OpBorderTRBLWidth
	OpBottom
	OpCaptionSide
	OpClear
	OpClip
	OpColor
	OpContent
	OpCounterIncrement
	OpCounterReset
	OpCueAfter
	OpCueBefore
	OpCursor
	OpDirection
	OpDisplay
	OpElevation
	OpEmptyCells
	OpFloat
	OpFontFamily
	OpFontSize
	OpFontStyle
	OpFontVariant
	OpFontWeight
	OpHeight
	OpLeft
	OpLetterSpacing
	OpLineHeight
	OpListStyleImage
	OpListStylePosition
	OpListStyleType
	OpMarginTRBL
	OpMaxHeight
	OpMaxWidth
	OpMinHeight
	OpMinWidth
	OpOrphans
	OpOutlineColor
	OpOutlineStyle
	OpOutlineWidth
	OpOverflow
	OpPaddingTRBL
	OpPageBreakAfter
	OpPageBreakBefore
	OpPageBreakInside
	OpPauseAfter
	OpPauseBefore
	OpPitchRange
	OpPitch
	OpPlayDuring
	OpPosition
	OpQuotes
	OpRichness
	OpRight
	OpSpeakHeader
	OpSpeakNumeral
	OpSpeakPunctuation
	OpSpeak
	OpSpeechRate
	OpStress
	OpTableLayout
	OpTextAlign
	OpTextDecoration
	OpTextIndent
	OpTextTransform
	OpTop
	OpUnicodeBidi
	OpVerticalAlign
	OpVisibility
	OpVoiceFamily
	OpVolume
	OpWhiteSpace
	OpWidows
	OpWidth
	OpWordSpacing
	OpZIndex

	numOpcodes
)

// NumOpcodes is the number of distinct property opcodes the engine knows,
// exposed so consumers (e.g. the computed-style model) can size
// opcode-indexed tables without duplicating the enum.
const NumOpcodes = int(numOpcodes)

// Flag bits occupy the 8-bit flags field of an OPV.
const (
	FlagImportant uint8 = 1 << 0
	FlagInherit   uint8 = 1 << 1
)

const (
	opcodeBits = 10
	opcodeMask = 1<<opcodeBits - 1
	flagsBits  = 8
	flagsMask  = 1<<flagsBits - 1
	valueBits  = 14
	valueMask  = 1<<valueBits - 1
)

// BuildOPV packs an opcode, flag byte, and value discriminant into a single
// bytecode word.
func BuildOPV(op Opcode, flags uint8, value uint16) OPV {
	return OPV(uint32(op)&opcodeMask | uint32(flags&flagsMask)<<opcodeBits | uint32(value&valueMask)<<(opcodeBits+flagsBits))
}

// Opcode extracts the opcode field.
func (w OPV) Opcode() Opcode { return Opcode(uint32(w) & opcodeMask) }

// Flags extracts the flags field.
func (w OPV) Flags() uint8 { return uint8(uint32(w) >> opcodeBits & flagsMask) }

// Value extracts the value discriminant field.
func (w OPV) Value() uint16 { return uint16(uint32(w) >> (opcodeBits + flagsBits)) }

// Important reports whether the declaration that produced w carried
// "!important".
func (w OPV) Important() bool { return w.Flags()&FlagImportant != 0 }

// Inherit reports whether w represents the "inherit" keyword (no operand
// words follow in that case).
func (w OPV) Inherit() bool { return w.Flags()&FlagInherit != 0 }

// Unit is the tagged unit enum for length/angle/time/frequency operands.
// Category bits separate incompatible unit families, matching the
// original's grouping (UNIT_PCT, UNIT_ANGLE, UNIT_TIME, UNIT_FREQ).
type Unit uint32

const (
	UnitPX Unit = iota
	UnitEX
	UnitEM
	UnitIN
	UnitCM
	UnitMM
	UnitPT
	UnitPC

	UnitPCT Unit = 1 << 8

	unitAngleBase Unit = 1 << 9
	UnitDEG            = unitAngleBase + 0
	UnitGRAD           = unitAngleBase + 1
	UnitRAD            = unitAngleBase + 2

	unitTimeBase Unit = 1 << 10
	UnitMS            = unitTimeBase + 0
	UnitS             = unitTimeBase + 1

	unitFreqBase Unit = 1 << 11
	UnitHZ             = unitFreqBase + 0
	UnitKHZ            = unitFreqBase + 1
)

// Colour is a resolved RRGGBBAA colour value.
type Colour uint32

// RGBA packs 8-bit channels into a Colour.
func RGBA(r, g, b, a uint8) Colour {
	return Colour(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// Fixed is a Q15.16-style fixed-point number used for lengths and other
// fractional operands, matching spec.md's "fixed-point (Q15 or equivalent)".
type Fixed int32

const fixedShift = 16

// FixedFromFloat converts a float64 to fixed-point.
func FixedFromFloat(f float64) Fixed {
	return Fixed(f * (1 << fixedShift))
}

// Float converts fixed-point back to a float64.
func (f Fixed) Float() float64 {
	return float64(f) / (1 << fixedShift)
}

// Style is a position-independent sequence of bytecode words, plus the
// interned-string handles its list-valued operands reference. Handles are
// consumed in the same left-to-right order they were appended, by decode
// logic that already knows (from the opcode and value discriminant) when
// an operand is a string handle rather than a plain word — so no explicit
// index needs to be encoded into Words itself. Two styles combine by
// concatenating both slices in order, per spec.md's "Style bytecode"
// invariant.
type Style struct {
	Words   []uint32
	Handles []strpool.Handle
}

// Append concatenates more bytecode words onto s.
func (s *Style) Append(words ...uint32) {
	s.Words = append(s.Words, words...)
}

// AppendHandle appends an interned-string operand, to be consumed in
// order by decode logic.
func (s *Style) AppendHandle(h strpool.Handle) {
	s.Handles = append(s.Handles, h)
}

// AppendStyle concatenates another style's words and handles onto s in
// order.
func (s *Style) AppendStyle(other Style) {
	s.Words = append(s.Words, other.Words...)
	s.Handles = append(s.Handles, other.Handles...)
}

// Len returns the number of 32-bit words in the style.
func (s Style) Len() int { return len(s.Words) }
