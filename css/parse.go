package css

// ParseString builds a Stylesheet from a complete CSS source buffer,
// wiring together the pieces a caller would otherwise have to drive by
// hand (NewTokenizer/NewParser/NewBinding/ParseChunk/Completed). This is
// the convenience entry point most callers want; cmd/cssdump uses it,
// while the package's own tests drive the lower-level pieces directly.
func ParseString(opts Options, src []byte) (*Stylesheet, Error) {
	sheet, err := NewStylesheet(opts)
	if err != OK {
		return nil, err
	}
	tok := NewTokenizer(sheet.Options.Pool, TokenizerOptions{})
	binding := NewBinding(sheet)
	parser := NewParser(tok, binding)

	if err := parser.ParseChunk(src); err != OK && err != NEEDDATA {
		return sheet, err
	}
	if err := parser.Completed(); err != OK {
		return sheet, err
	}
	return sheet, OK
}
