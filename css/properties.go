package css

import "github.com/lukehoban/cssengine/strpool"

// propertyKind groups properties by the shape of per-property recogniser
// they need, per spec.md §4.5.
type propertyKind int

const (
	kindEnum propertyKind = iota
	kindLength
	kindColor
	kindInteger
	kindNumber // unitless number, e.g. line-height, font-weight numeric forms
	kindList
	kindShorthand
)

// side identifies one of the four box edges for the opcodes that are
// templated across top/right/bottom/left (margin, padding, the border
// triad). Non-templated properties always use sideTop, contributing zero
// bits.
type side int

const (
	sideTop side = iota
	sideRight
	sideBottom
	sideLeft
)

// Value-field sentinels shared by every scalar property kind. The low 2
// bits of every OPV's value field carry the templated side (0 for
// non-templated properties); the remaining bits carry one of these
// discriminants, or an enum/unit-family value for kindEnum properties.
const (
	valSet   uint16 = 1 // a length/colour/integer operand follows
	valAuto  uint16 = 2
	valNone  uint16 = 3

	// valKeywordBase offsets every length/colour/number property's keyword
	// alternates (e.g. font-size's "large", background-color's
	// "transparent") away from the valSet/valAuto/valNone sentinel range,
	// so a decoder can tell "a dimension/colour operand follows" apart
	// from "this is keyword code N" using the discriminant alone.
	valKeywordBase uint16 = 16
)

func packValue(s side, v uint16) uint16 {
	return uint16(s)&0x3 | v<<2
}

func unpackValue(raw uint16) (side, uint16) {
	return side(raw & 0x3), raw >> 2
}

// propertyDescriptor drives the generic per-property dispatch: one entry
// per recognised CSS 2.1 property name naming its opcode, recogniser kind,
// and the data that kind's shared parser needs (spec.md §4.4 item 2's
// perfect table of property names).
type propertyDescriptor struct {
	Opcode   Opcode
	Kind     propertyKind
	Side     side
	Keywords map[string]uint16

	AllowNegative bool // permits a leading '-' on length operands
	Auto          bool // "auto" is accepted alongside the normal grammar
	NoneValue     bool // "none" is accepted alongside the normal grammar

	List      func(pool *strpool.Pool, toks []Token) (Style, Error)
	Shorthand func(pool *strpool.Pool, sheet *Stylesheet, toks []Token, important bool) (Style, Error)
}

// propertyTable is the perfect lookup table from lowercase CSS property
// name to its descriptor. Populated by properties_table.go's init function.
var propertyTable = map[string]propertyDescriptor{}

func register(name string, d propertyDescriptor) {
	propertyTable[name] = d
}

// parseProperty parses one declaration's value tokens for the property
// described by desc, returning the bytecode to append to the owning
// rule's Style. Shorthands are handed to desc.Shorthand first and see
// "inherit" as an ordinary value, which none of them accepts, so a
// shorthand set to "inherit" is INVALID. For every other property
// "inherit" is handled centrally here; everything else dispatches to
// desc.Kind's shared recogniser.
func parseProperty(pool *strpool.Pool, sheet *Stylesheet, desc propertyDescriptor, toks []Token, important bool) (Style, Error) {
	toks = trimWS(filterComments(toks))
	if len(toks) == 0 {
		return Style{}, INVALID
	}

	flags := uint8(0)
	if important {
		flags |= FlagImportant
	}

	if desc.Kind == kindShorthand {
		return desc.Shorthand(pool, sheet, toks, important)
	}

	if len(toks) == 1 && toks[0].Type == IDENT && lowerTokenText(toks[0]) == "inherit" {
		var s Style
		s.Append(uint32(BuildOPV(desc.Opcode, flags|FlagInherit, packValue(desc.Side, 0))))
		return s, OK
	}

	switch desc.Kind {
	case kindEnum:
		return parseEnumProperty(desc, toks, flags)
	case kindLength:
		return parseLengthProperty(sheet, desc, toks, flags)
	case kindColor:
		return parseColorProperty(sheet, desc, toks, flags)
	case kindInteger, kindNumber:
		return parseNumericProperty(desc, toks, flags)
	case kindList:
		s, err := desc.List(pool, toks)
		if err != OK {
			return Style{}, err
		}
		if len(s.Words) > 0 {
			s.Words[0] = uint32(OPV(s.Words[0]).Opcode()) |
				uint32(flags)<<opcodeBits |
				uint32(OPV(s.Words[0]).Value())<<(opcodeBits+flagsBits)
		}
		return s, OK
	}
	return Style{}, INVALID
}

func parseEnumProperty(desc propertyDescriptor, toks []Token, flags uint8) (Style, Error) {
	if len(toks) != 1 || toks[0].Type != IDENT {
		return Style{}, INVALID
	}
	v, ok := desc.Keywords[lowerTokenText(toks[0])]
	if !ok {
		return Style{}, INVALID
	}
	var s Style
	s.Append(uint32(BuildOPV(desc.Opcode, flags, packValue(desc.Side, v))))
	return s, OK
}

func parseNumericProperty(desc propertyDescriptor, toks []Token, flags uint8) (Style, Error) {
	if len(toks) == 1 && toks[0].Type == IDENT {
		kw := lowerTokenText(toks[0])
		if desc.Auto && kw == "auto" {
			var s Style
			s.Append(uint32(BuildOPV(desc.Opcode, flags, packValue(desc.Side, valAuto))))
			return s, OK
		}
		if desc.NoneValue && kw == "none" {
			var s Style
			s.Append(uint32(BuildOPV(desc.Opcode, flags, packValue(desc.Side, valNone))))
			return s, OK
		}
		if v, ok := desc.Keywords[kw]; ok {
			var s Style
			s.Append(uint32(BuildOPV(desc.Opcode, flags, packValue(desc.Side, v+valKeywordBase))))
			return s, OK
		}
		return Style{}, INVALID
	}
	if len(toks) != 1 || toks[0].Type != NUMBER {
		return Style{}, INVALID
	}
	n := toks[0].Number
	if desc.Kind == kindInteger && n != float64(int32(n)) {
		return Style{}, INVALID
	}
	if !desc.AllowNegative && n < 0 {
		return Style{}, INVALID
	}
	var s Style
	s.Append(uint32(BuildOPV(desc.Opcode, flags, packValue(desc.Side, valSet))))
	s.Append(uint32(FixedFromFloat(n)))
	return s, OK
}

// Reader walks a Style's words/handles in encounter order, matching the
// order property parsers appended them. It is the decode counterpart
// consumed by the computed-style model.
type Reader struct {
	words   []uint32
	handles []strpool.Handle
	wi, hi  int
}

// NewReader returns a Reader positioned at the start of s.
func NewReader(s Style) *Reader {
	return &Reader{words: s.Words, handles: s.Handles}
}

// Done reports whether every word has been consumed.
func (r *Reader) Done() bool { return r.wi >= len(r.words) }

// OPV reads the next bytecode word as an OPV.
func (r *Reader) OPV() (OPV, bool) {
	if r.wi >= len(r.words) {
		return 0, false
	}
	w := r.words[r.wi]
	r.wi++
	return OPV(w), true
}

// Word reads the next bytecode word as a plain uint32 operand.
func (r *Reader) Word() (uint32, bool) {
	if r.wi >= len(r.words) {
		return 0, false
	}
	w := r.words[r.wi]
	r.wi++
	return w, true
}

// Fixed reads the next bytecode word as a Fixed-point operand.
func (r *Reader) Fixed() (Fixed, bool) {
	w, ok := r.Word()
	return Fixed(w), ok
}

// Handle reads the next interned-string operand.
func (r *Reader) Handle() (strpool.Handle, bool) {
	if r.hi >= len(r.handles) {
		return strpool.Handle{}, false
	}
	h := r.handles[r.hi]
	r.hi++
	return h, true
}
