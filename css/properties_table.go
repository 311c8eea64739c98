package css

// borderStyleKeywords backs every border-*-style longhand and the
// border-style/border/outline shorthands.
var borderStyleKeywords = map[string]uint16{
	"none": 1, "hidden": 2, "dotted": 3, "dashed": 4, "solid": 5,
	"double": 6, "groove": 7, "ridge": 8, "inset": 9, "outset": 10,
}

// borderWidthKeywords backs every border-*-width longhand, border-width,
// border, and outline-width.
var borderWidthKeywords = map[string]uint16{
	"thin": 1, "medium": 2, "thick": 3,
}

var listStyleTypeKeywords = map[string]uint16{
	"disc": 1, "circle": 2, "square": 3, "decimal": 4,
	"decimal-leading-zero": 5, "lower-roman": 6, "upper-roman": 7,
	"lower-greek": 8, "lower-latin": 9, "upper-latin": 10, "armenian": 11,
	"georgian": 12, "lower-alpha": 13, "upper-alpha": 14, "none": 15,
}

var fontSizeKeywords = map[string]uint16{
	"xx-small": 1, "x-small": 2, "small": 3, "medium": 4, "large": 5,
	"x-large": 6, "xx-large": 7, "larger": 8, "smaller": 9,
}

func init() {
	// Box offsets (top/right/bottom/left) and dimensions.
	for _, p := range []struct {
		name string
		op   Opcode
	}{
		{"top", OpTop}, {"right", OpRight}, {"bottom", OpBottom}, {"left", OpLeft},
	} {
		register(p.name, propertyDescriptor{Opcode: p.op, Kind: kindLength, Auto: true, AllowNegative: true})
	}
	register("width", propertyDescriptor{Opcode: OpWidth, Kind: kindLength, Auto: true})
	register("height", propertyDescriptor{Opcode: OpHeight, Kind: kindLength, Auto: true})
	register("min-width", propertyDescriptor{Opcode: OpMinWidth, Kind: kindLength})
	register("min-height", propertyDescriptor{Opcode: OpMinHeight, Kind: kindLength})
	register("max-width", propertyDescriptor{Opcode: OpMaxWidth, Kind: kindLength, NoneValue: true})
	register("max-height", propertyDescriptor{Opcode: OpMaxHeight, Kind: kindLength, NoneValue: true})

	// Margin/padding longhands (the TRBL opcode plus a fixed side).
	marginSides := map[string]side{"margin-top": sideTop, "margin-right": sideRight, "margin-bottom": sideBottom, "margin-left": sideLeft}
	for name, s := range marginSides {
		register(name, propertyDescriptor{Opcode: OpMarginTRBL, Kind: kindLength, Side: s, Auto: true, AllowNegative: true})
	}
	paddingSides := map[string]side{"padding-top": sideTop, "padding-right": sideRight, "padding-bottom": sideBottom, "padding-left": sideLeft}
	for name, s := range paddingSides {
		register(name, propertyDescriptor{Opcode: OpPaddingTRBL, Kind: kindLength, Side: s})
	}

	// border-{side}-{width,style,color}.
	borderSides := map[string]side{"top": sideTop, "right": sideRight, "bottom": sideBottom, "left": sideLeft}
	for name, s := range borderSides {
		register("border-"+name+"-width", propertyDescriptor{Opcode: OpBorderTRBLWidth, Kind: kindLength, Side: s, Keywords: borderWidthKeywords})
		register("border-"+name+"-style", propertyDescriptor{Opcode: OpBorderTRBLStyle, Kind: kindEnum, Side: s, Keywords: borderStyleKeywords})
		register("border-"+name+"-color", propertyDescriptor{Opcode: OpBorderTRBLColor, Kind: kindColor, Side: s, Keywords: map[string]uint16{"transparent": 1}})
		register("border-"+name, propertyDescriptor{Kind: kindShorthand, Shorthand: borderSide(s)})
	}

	// Colors.
	register("color", propertyDescriptor{Opcode: OpColor, Kind: kindColor})
	register("background-color", propertyDescriptor{Opcode: OpBackgroundColor, Kind: kindColor, Keywords: map[string]uint16{"transparent": 1}})
	register("outline-color", propertyDescriptor{Opcode: OpOutlineColor, Kind: kindColor, Keywords: map[string]uint16{"invert": 5}})

	// Simple enums.
	register("background-attachment", propertyDescriptor{Opcode: OpBackgroundAttachment, Kind: kindEnum, Keywords: backgroundAttachmentKeywords})
	register("background-repeat", propertyDescriptor{Opcode: OpBackgroundRepeat, Kind: kindEnum, Keywords: backgroundRepeatKeywords})
	register("border-collapse", propertyDescriptor{Opcode: OpBorderCollapse, Kind: kindEnum, Keywords: map[string]uint16{"collapse": 1, "separate": 2}})
	register("caption-side", propertyDescriptor{Opcode: OpCaptionSide, Kind: kindEnum, Keywords: map[string]uint16{"top": 1, "bottom": 2}})
	register("clear", propertyDescriptor{Opcode: OpClear, Kind: kindEnum, Keywords: map[string]uint16{"none": 1, "left": 2, "right": 3, "both": 4}})
	register("direction", propertyDescriptor{Opcode: OpDirection, Kind: kindEnum, Keywords: map[string]uint16{"ltr": 1, "rtl": 2}})
	register("display", propertyDescriptor{Opcode: OpDisplay, Kind: kindEnum, Keywords: map[string]uint16{
		"inline": 1, "block": 2, "list-item": 3, "run-in": 4, "inline-block": 5,
		"table": 6, "inline-table": 7, "table-row-group": 8, "table-header-group": 9,
		"table-footer-group": 10, "table-row": 11, "table-column-group": 12,
		"table-column": 13, "table-cell": 14, "table-caption": 15, "none": 16,
	}})
	register("empty-cells", propertyDescriptor{Opcode: OpEmptyCells, Kind: kindEnum, Keywords: map[string]uint16{"show": 1, "hide": 2}})
	register("float", propertyDescriptor{Opcode: OpFloat, Kind: kindEnum, Keywords: map[string]uint16{"left": 1, "right": 2, "none": 3}})
	register("font-style", propertyDescriptor{Opcode: OpFontStyle, Kind: kindEnum, Keywords: map[string]uint16{"normal": 1, "italic": 2, "oblique": 3}})
	register("font-variant", propertyDescriptor{Opcode: OpFontVariant, Kind: kindEnum, Keywords: map[string]uint16{"normal": 1, "small-caps": 2}})
	register("list-style-position", propertyDescriptor{Opcode: OpListStylePosition, Kind: kindEnum, Keywords: map[string]uint16{"inside": 1, "outside": 2}})
	register("list-style-type", propertyDescriptor{Opcode: OpListStyleType, Kind: kindEnum, Keywords: listStyleTypeKeywords})
	register("outline-style", propertyDescriptor{Opcode: OpOutlineStyle, Kind: kindEnum, Keywords: borderStyleKeywords})
	register("overflow", propertyDescriptor{Opcode: OpOverflow, Kind: kindEnum, Keywords: map[string]uint16{"visible": 1, "hidden": 2, "scroll": 3, "auto": 4}})
	register("page-break-after", propertyDescriptor{Opcode: OpPageBreakAfter, Kind: kindEnum, Keywords: map[string]uint16{"auto": 1, "always": 2, "avoid": 3, "left": 4, "right": 5}})
	register("page-break-before", propertyDescriptor{Opcode: OpPageBreakBefore, Kind: kindEnum, Keywords: map[string]uint16{"auto": 1, "always": 2, "avoid": 3, "left": 4, "right": 5}})
	register("page-break-inside", propertyDescriptor{Opcode: OpPageBreakInside, Kind: kindEnum, Keywords: map[string]uint16{"auto": 1, "avoid": 2}})
	register("position", propertyDescriptor{Opcode: OpPosition, Kind: kindEnum, Keywords: map[string]uint16{"static": 1, "relative": 2, "absolute": 3, "fixed": 4}})
	register("speak-header", propertyDescriptor{Opcode: OpSpeakHeader, Kind: kindEnum, Keywords: map[string]uint16{"once": 1, "always": 2}})
	register("speak-numeral", propertyDescriptor{Opcode: OpSpeakNumeral, Kind: kindEnum, Keywords: map[string]uint16{"digits": 1, "continuous": 2}})
	register("speak-punctuation", propertyDescriptor{Opcode: OpSpeakPunctuation, Kind: kindEnum, Keywords: map[string]uint16{"code": 1, "none": 2}})
	register("speak", propertyDescriptor{Opcode: OpSpeak, Kind: kindEnum, Keywords: map[string]uint16{"normal": 1, "none": 2, "spell-out": 3}})
	register("table-layout", propertyDescriptor{Opcode: OpTableLayout, Kind: kindEnum, Keywords: map[string]uint16{"auto": 1, "fixed": 2}})
	register("text-align", propertyDescriptor{Opcode: OpTextAlign, Kind: kindEnum, Keywords: map[string]uint16{"left": 1, "right": 2, "center": 3, "justify": 4}})
	register("text-decoration", propertyDescriptor{Opcode: OpTextDecoration, Kind: kindEnum, Keywords: map[string]uint16{
		"none": 1, "underline": 2, "overline": 3, "line-through": 4, "blink": 5,
	}})
	register("text-transform", propertyDescriptor{Opcode: OpTextTransform, Kind: kindEnum, Keywords: map[string]uint16{"capitalize": 1, "uppercase": 2, "lowercase": 3, "none": 4}})
	register("unicode-bidi", propertyDescriptor{Opcode: OpUnicodeBidi, Kind: kindEnum, Keywords: map[string]uint16{"normal": 1, "embed": 2, "bidi-override": 3}})
	register("visibility", propertyDescriptor{Opcode: OpVisibility, Kind: kindEnum, Keywords: map[string]uint16{"visible": 1, "hidden": 2, "collapse": 3}})
	register("white-space", propertyDescriptor{Opcode: OpWhiteSpace, Kind: kindEnum, Keywords: map[string]uint16{"normal": 1, "pre": 2, "nowrap": 3, "pre-wrap": 4, "pre-line": 5}})

	// Lengths with keyword alternates.
	register("font-size", propertyDescriptor{Opcode: OpFontSize, Kind: kindLength, Keywords: fontSizeKeywords})
	register("letter-spacing", propertyDescriptor{Opcode: OpLetterSpacing, Kind: kindLength, Keywords: map[string]uint16{"normal": 0}, AllowNegative: true})
	register("word-spacing", propertyDescriptor{Opcode: OpWordSpacing, Kind: kindLength, Keywords: map[string]uint16{"normal": 0}, AllowNegative: true})
	register("text-indent", propertyDescriptor{Opcode: OpTextIndent, Kind: kindLength, AllowNegative: true})
	register("vertical-align", propertyDescriptor{Opcode: OpVerticalAlign, Kind: kindLength, Keywords: map[string]uint16{
		"baseline": 1, "sub": 2, "super": 3, "top": 4, "text-top": 5,
		"middle": 6, "bottom": 7, "text-bottom": 8,
	}, AllowNegative: true})
	register("outline-width", propertyDescriptor{Opcode: OpOutlineWidth, Kind: kindLength, Keywords: borderWidthKeywords})

	// Integers/numbers.
	register("orphans", propertyDescriptor{Opcode: OpOrphans, Kind: kindInteger})
	register("widows", propertyDescriptor{Opcode: OpWidows, Kind: kindInteger})
	register("z-index", propertyDescriptor{Opcode: OpZIndex, Kind: kindInteger, AllowNegative: true, Auto: true})
	register("pitch-range", propertyDescriptor{Opcode: OpPitchRange, Kind: kindNumber})
	register("richness", propertyDescriptor{Opcode: OpRichness, Kind: kindNumber})
	register("speech-rate", propertyDescriptor{Opcode: OpSpeechRate, Kind: kindNumber, Keywords: map[string]uint16{
		"x-slow": 1, "slow": 2, "medium": 3, "fast": 4, "x-fast": 5, "faster": 6, "slower": 7,
	}})
	register("stress", propertyDescriptor{Opcode: OpStress, Kind: kindNumber})
	register("volume", propertyDescriptor{Opcode: OpVolume, Kind: kindNumber, Keywords: map[string]uint16{
		"silent": 1, "x-soft": 2, "soft": 3, "medium": 4, "loud": 5, "x-loud": 6,
	}})
	register("pitch", propertyDescriptor{Opcode: OpPitch, Kind: kindLength, Keywords: map[string]uint16{
		"x-low": 1, "low": 2, "medium": 3, "high": 4, "x-high": 5,
	}})

	// List-valued.
	register("font-family", propertyDescriptor{Kind: kindList, List: parseFontFamilyList})
	register("voice-family", propertyDescriptor{Kind: kindList, List: parseVoiceFamilyList})
	register("cursor", propertyDescriptor{Kind: kindList, List: parseCursorList})
	register("quotes", propertyDescriptor{Kind: kindList, List: parseQuotesList})
	register("content", propertyDescriptor{Kind: kindList, List: parseContentList})
	register("counter-increment", propertyDescriptor{Kind: kindList, List: parseCounterIncrementList})
	register("counter-reset", propertyDescriptor{Kind: kindList, List: parseCounterAdjustList})

	// Bespoke grammars.
	register("azimuth", propertyDescriptor{Kind: kindList, List: parseAzimuth})
	register("elevation", propertyDescriptor{Kind: kindList, List: parseElevation})
	register("font-weight", propertyDescriptor{Kind: kindList, List: parseFontWeight})
	register("line-height", propertyDescriptor{Kind: kindList, List: parseLineHeight})
	register("border-spacing", propertyDescriptor{Kind: kindList, List: parseBorderSpacing})
	register("clip", propertyDescriptor{Kind: kindList, List: parseClip})
	register("cue-before", propertyDescriptor{Kind: kindList, List: parseCueSide(OpCueBefore)})
	register("cue-after", propertyDescriptor{Kind: kindList, List: parseCueSide(OpCueAfter)})
	register("pause-before", propertyDescriptor{Kind: kindList, List: parsePauseSide(OpPauseBefore)})
	register("pause-after", propertyDescriptor{Kind: kindList, List: parsePauseSide(OpPauseAfter)})
	register("play-during", propertyDescriptor{Kind: kindList, List: parsePlayDuring})
	register("background-image", propertyDescriptor{Kind: kindList, List: parseBackgroundImage})
	register("background-position", propertyDescriptor{Kind: kindList, List: parseBackgroundPosition})
	register("list-style-image", propertyDescriptor{Kind: kindList, List: parseListStyleImage})

	// Shorthands.
	register("margin", propertyDescriptor{Kind: kindShorthand, Shorthand: marginShorthand})
	register("padding", propertyDescriptor{Kind: kindShorthand, Shorthand: paddingShorthand})
	register("border-color", propertyDescriptor{Kind: kindShorthand, Shorthand: borderColorShorthand})
	register("border-style", propertyDescriptor{Kind: kindShorthand, Shorthand: borderStyleShorthand})
	register("border-width", propertyDescriptor{Kind: kindShorthand, Shorthand: borderWidthShorthand})
	register("border", propertyDescriptor{Kind: kindShorthand, Shorthand: borderShorthand})
	register("outline", propertyDescriptor{Kind: kindShorthand, Shorthand: outlineShorthand})
	register("background", propertyDescriptor{Kind: kindShorthand, Shorthand: backgroundShorthand})
	register("list-style", propertyDescriptor{Kind: kindShorthand, Shorthand: listStyleShorthand})
	register("cue", propertyDescriptor{Kind: kindShorthand, Shorthand: cueShorthand})
	register("pause", propertyDescriptor{Kind: kindShorthand, Shorthand: pauseShorthand})
	register("font", propertyDescriptor{Kind: kindShorthand, Shorthand: fontShorthand})
}
