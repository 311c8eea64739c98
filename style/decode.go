package style

import "github.com/lukehoban/cssengine/css"

// decodeStyle walks every OPV in s in encounter order and returns one
// decoded declaration per property, mirroring the layouts
// properties.go/properties_length.go/properties_color.go/
// properties_misc.go/properties_list.go build on the encode side.
func decodeStyle(s css.Style) []declaration {
	r := css.NewReader(s)
	var decls []declaration
	for !r.Done() {
		opv, ok := r.OPV()
		if !ok {
			break
		}
		op := opv.Opcode()
		side, v := css.UnpackValue(opv.Value())
		d := declaration{
			Opcode:    op,
			Side:      side,
			Important: opv.Important(),
		}
		if opv.Inherit() {
			d.Value = Value{Inherit: true, Set: true}
			decls = append(decls, d)
			continue
		}
		d.Value = decodeOne(op, v, r)
		decls = append(decls, d)
	}
	return decls
}

// declaration is one decoded property value pulled out of a matched rule's
// bytecode, still needing cascade comparison against its slot's current
// winner before being written into a ComputedStyle.
type declaration struct {
	Opcode    css.Opcode
	Side      css.Side
	Important bool
	Value     Value
}

// lineHeightNumber is line-height's bespoke "unitless multiplier" value
// discriminant, distinct from css.ValSet/ValAuto/ValNone (see
// parseLineHeight in properties_misc.go).
const lineHeightNumber uint16 = 4

// decodeOne decodes the operand words (if any) that follow an OPV whose
// value discriminant is v, for opcode op, consuming them from r.
func decodeOne(op css.Opcode, v uint16, r *css.Reader) Value {
	switch op {
	case css.OpAzimuth, css.OpElevation:
		return decodeAzimuthElevation(v, r)
	case css.OpFontWeight:
		return decodeFontWeight(v, r)
	case css.OpLineHeight:
		return decodeLineHeight(v, r)
	case css.OpBorderSpacing:
		return decodeBorderSpacing(v, r)
	case css.OpClip:
		return decodeClip(v, r)
	case css.OpCueBefore, css.OpCueAfter:
		return decodeURIOrNone(v, r)
	case css.OpPauseBefore, css.OpPauseAfter:
		return decodeLengthOperand(v, r)
	case css.OpPlayDuring:
		return decodePlayDuring(v, r)
	case css.OpBackgroundImage, css.OpListStyleImage:
		return decodeURIOrNone(v, r)
	case css.OpBackgroundPosition:
		return decodeBackgroundPosition(v, r)
	case css.OpFontFamily, css.OpVoiceFamily:
		return Value{Set: true, List: readNameList(r)}
	case css.OpCursor:
		return Value{Set: true, List: readNameList(r)}
	case css.OpQuotes:
		if v == css.ValNone {
			return Value{Set: true, Enum: v}
		}
		return Value{Set: true, List: readNameList(r)}
	case css.OpContent:
		if v == css.ValAuto || v == css.ValNone {
			return Value{Set: true, Enum: v}
		}
		return Value{Set: true, List: readContentList(r)}
	case css.OpCounterIncrement, css.OpCounterReset:
		if v == css.ValNone {
			return Value{Set: true, Enum: v}
		}
		return Value{Set: true, List: readCounterList(r)}
	}

	switch propertyKind(op) {
	case kindColor:
		return decodeColor(v, r)
	case kindLength:
		return decodeLengthOperand(v, r)
	case kindNumeric:
		return decodeNumeric(v, r)
	default:
		// kindEnum (and every TRBL/enum longhand): the discriminant is the
		// resolved keyword code itself, no operand words follow.
		return Value{Set: true, Enum: v}
	}
}

// decodeKind classifies an opcode the same way propertyTable's descriptors
// do, for opcodes whose decode only needs to pick between the shared
// length/colour/enum shapes (the bespoke opcodes are switched on directly
// in decodeOne above).
type decodeKind int

const (
	kindEnum decodeKind = iota
	kindLength
	kindNumeric // integers and unitless numbers, decoded identically to length minus the unit word
	kindColor
)

func propertyKind(op css.Opcode) decodeKind {
	switch op {
	case css.OpColor, css.OpBackgroundColor, css.OpOutlineColor, css.OpBorderTRBLColor:
		return kindColor
	case css.OpTop, css.OpRight, css.OpBottom, css.OpLeft,
		css.OpWidth, css.OpHeight, css.OpMinWidth, css.OpMinHeight,
		css.OpMaxWidth, css.OpMaxHeight, css.OpMarginTRBL, css.OpPaddingTRBL,
		css.OpBorderTRBLWidth, css.OpFontSize, css.OpLetterSpacing,
		css.OpWordSpacing, css.OpTextIndent, css.OpVerticalAlign,
		css.OpOutlineWidth, css.OpPitch:
		return kindLength
	case css.OpOrphans, css.OpWidows, css.OpZIndex, css.OpPitchRange,
		css.OpRichness, css.OpSpeechRate, css.OpStress, css.OpVolume:
		return kindNumeric
	}
	return kindEnum
}

// decodeNumeric handles every kindNumeric opcode (integers and unitless
// numbers): v is either ValAuto (z-index only), a keyword code
// (>=ValKeywordBase, no operand), or ValSet (one Fixed word).
func decodeNumeric(v uint16, r *css.Reader) Value {
	if v != css.ValSet {
		return Value{Set: true, Enum: v}
	}
	fixed, _ := r.Fixed()
	return Value{Set: true, Enum: v, Length: fixed}
}

// decodeLengthOperand handles every kindLength opcode plus the aural
// pause-before/-after time/percentage properties: v is ValAuto/ValNone
// (no operand), a keyword code (no operand), or ValSet (Fixed then Unit).
func decodeLengthOperand(v uint16, r *css.Reader) Value {
	if v != css.ValSet {
		return Value{Set: true, Enum: v}
	}
	fixed, _ := r.Fixed()
	unit, _ := r.Word()
	return Value{Set: true, Enum: v, Length: fixed, Unit: css.Unit(unit)}
}

func decodeColor(v uint16, r *css.Reader) Value {
	if v != css.ValSet {
		return Value{Set: true, Enum: v}
	}
	w, _ := r.Word()
	return Value{Set: true, Enum: v, Colour: css.Colour(w)}
}

func decodeAzimuthElevation(v uint16, r *css.Reader) Value {
	if v == css.ValSet {
		fixed, _ := r.Fixed()
		unit, _ := r.Word()
		return Value{Set: true, Enum: v, Length: fixed, Unit: css.Unit(unit)}
	}
	// Keyword form: v == code<<2|1 (see parseAzimuth/parseElevation).
	return Value{Set: true, Enum: (v - 1) >> 2}
}

func decodeFontWeight(v uint16, r *css.Reader) Value {
	if v != css.ValSet {
		return Value{Set: true, Enum: v}
	}
	w, _ := r.Word()
	return Value{Set: true, Enum: v, Number: int32(w)}
}

func decodeLineHeight(v uint16, r *css.Reader) Value {
	switch v {
	case css.ValAuto:
		return Value{Set: true, Enum: v}
	case lineHeightNumber:
		fixed, _ := r.Fixed()
		return Value{Set: true, Enum: v, Length: fixed}
	default: // css.ValSet
		fixed, _ := r.Fixed()
		unit, _ := r.Word()
		return Value{Set: true, Enum: v, Length: fixed, Unit: css.Unit(unit)}
	}
}

func decodeBorderSpacing(v uint16, r *css.Reader) Value {
	hFixed, _ := r.Fixed()
	hUnit, _ := r.Word()
	vFixed, _ := r.Fixed()
	vUnit, _ := r.Word()
	return Value{
		Set: true, Enum: v,
		Length: hFixed, Unit: css.Unit(hUnit),
		Pair: lengthPair{Length: vFixed, Unit: css.Unit(vUnit)},
	}
}

func decodeClip(v uint16, r *css.Reader) Value {
	if v == css.ValAuto {
		return Value{Set: true, Enum: v}
	}
	var rect [4]lengthPair
	for i := range rect {
		disc, _ := r.Word()
		if uint16(disc) == css.ValAuto {
			r.Word() // consume the placeholder word
			rect[i] = lengthPair{Auto: true}
			continue
		}
		fixed, _ := r.Fixed()
		unit, _ := r.Word()
		rect[i] = lengthPair{Length: fixed, Unit: css.Unit(unit)}
	}
	return Value{Set: true, Enum: v, Rect: rect}
}

func decodeURIOrNone(v uint16, r *css.Reader) Value {
	if v != css.ValSet {
		return Value{Set: true, Enum: v}
	}
	h, _ := r.Handle()
	return Value{Set: true, Enum: v, Str: h}
}

func decodePlayDuring(v uint16, r *css.Reader) Value {
	if v != css.ValSet {
		return Value{Set: true, Enum: v}
	}
	h, _ := r.Handle()
	flags, _ := r.Word()
	return Value{Set: true, Enum: v, Str: h, Number: int32(flags)}
}

func decodeBackgroundPosition(v uint16, r *css.Reader) Value {
	_, _ = r.Word() // horizontal component's own valSet marker
	hFixed, _ := r.Fixed()
	hUnit, _ := r.Word()
	_, _ = r.Word() // vertical component's own valSet marker
	vFixed, _ := r.Fixed()
	vUnit, _ := r.Word()
	return Value{
		Set: true, Enum: v,
		Length: hFixed, Unit: css.Unit(hUnit),
		Pair: lengthPair{Length: vFixed, Unit: css.Unit(vUnit)},
	}
}

// readNameList decodes a terminated sequence of listItemString/URI items
// (font-family, voice-family, cursor), stopping at css.ListItemEnd.
func readNameList(r *css.Reader) []ListItem {
	var items []ListItem
	for {
		marker, ok := r.Word()
		if !ok || uint16(marker) == css.ListItemEnd {
			return items
		}
		h, _ := r.Handle()
		kind := ListItemString
		if uint16(marker) == css.ListItemURI {
			kind = ListItemURI
		}
		items = append(items, ListItem{Kind: kind, Text: h})
	}
}

// readContentList decodes content's mixed string/uri/counter-name items.
func readContentList(r *css.Reader) []ListItem {
	var items []ListItem
	for {
		marker, ok := r.Word()
		if !ok || uint16(marker) == css.ListItemEnd {
			return items
		}
		h, _ := r.Handle()
		var kind ListItemKind
		switch uint16(marker) {
		case css.ListItemURI:
			kind = ListItemURI
		case css.ListItemCounter:
			kind = ListItemCounter
		default:
			kind = ListItemString
		}
		items = append(items, ListItem{Kind: kind, Text: h})
	}
}

// readCounterList decodes counter-increment/-reset's (name, amount) pairs.
func readCounterList(r *css.Reader) []ListItem {
	var items []ListItem
	for {
		marker, ok := r.Word()
		if !ok || uint16(marker) == css.ListItemEnd {
			return items
		}
		h, _ := r.Handle()
		amount, _ := r.Word()
		items = append(items, ListItem{Kind: ListItemCounter, Text: h, Amount: css.Fixed(amount)})
	}
}
