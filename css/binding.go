package css

import (
	"github.com/lukehoban/cssengine/log"
	"github.com/lukehoban/cssengine/strpool"
)

// Binding consumes parser events, builds the selector-chain/rule tree, and
// dispatches declarations to the property parsers, per spec.md §4.4.
type Binding struct {
	sheet *Stylesheet
	pool  *strpool.Pool

	// containerStack holds currently-open @media rules; a finished ruleset
	// or nested rule attaches to the top of this stack if non-empty, or to
	// the sheet directly otherwise.
	containerStack []*Rule

	// building is the rule currently accumulating declarations (a ruleset,
	// @page, or @font-face), nil between rules.
	building *Rule

	// pendingAtKeyword tracks which at-rule kind is open between
	// EvStartAtRule and EvEndAtRule, for at-rules with no block (charset,
	// import) where EvStartAtRule does all the work.
	pendingAtKeyword string
}

// NewBinding returns a Binding that builds rules into sheet.
func NewBinding(sheet *Stylesheet) *Binding {
	return &Binding{sheet: sheet, pool: sheet.Options.Pool}
}

var _ Handler = (*Binding)(nil)

func (b *Binding) HandleEvent(ev EventType, tokens []Token) Error {
	switch ev {
	case EvStartStylesheet, EvEndStylesheet, EvStartBlock, EvEndBlock, EvBlockContent:
		return OK
	case EvStartAtRule:
		return b.startAtRule(tokens)
	case EvEndAtRule:
		return b.endAtRule()
	case EvStartRuleset:
		return b.startRuleset(tokens)
	case EvEndRuleset:
		return b.endRuleset()
	case EvDeclaration:
		return b.declaration(tokens)
	}
	return OK
}

func significant(toks []Token) []Token {
	out := toks[:0:0]
	for _, t := range toks {
		if t.Type == WHITESPACE || t.Type == COMMENT {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (b *Binding) currentParent() (*Stylesheet, *Rule) {
	if n := len(b.containerStack); n > 0 {
		return nil, b.containerStack[n-1]
	}
	return b.sheet, nil
}

func (b *Binding) attach(r *Rule) {
	sheet, parent := b.currentParent()
	if parent != nil {
		r.ParentRule = parent
		r.ParentSheet = nil
		r.Index = b.sheet.nextRuleIndex()
		parent.Children = append(parent.Children, r)
		if r.Type == RuleSelector || r.Type == RulePage {
			for _, sel := range r.Selectors {
				b.sheet.Hash.Insert(sel)
			}
		}
		return
	}
	sheet.addRule(r)
}

func (b *Binding) startAtRule(tokens []Token) Error {
	if len(tokens) == 0 {
		return INVALID
	}
	kw := lowerTokenText(tokens[0])
	prelude := significant(tokens[1:])
	b.pendingAtKeyword = kw

	switch kw {
	case "charset":
		return b.charsetRule(prelude)
	case "import":
		return b.importRule(prelude)
	case "media":
		r := newRule(b.sheet, RuleMedia)
		r.Media = parseMediaList(b.pool, prelude)
		b.containerStack = append(b.containerStack, r)
		return OK
	case "page":
		r := newRule(b.sheet, RulePage)
		r.Selectors = parsePageSelector(b.pool, prelude)
		b.building = r
		return OK
	case "font-face":
		r := newRule(b.sheet, RuleFontFace)
		b.building = r
		return OK
	default:
		log.Debugf("discarding unknown at-rule @%s", kw)
		return INVALID
	}
}

func (b *Binding) endAtRule() Error {
	switch b.pendingAtKeyword {
	case "media":
		n := len(b.containerStack)
		if n == 0 {
			return OK
		}
		r := b.containerStack[n-1]
		b.containerStack = b.containerStack[:n-1]
		b.attach(r)
	case "page", "font-face":
		if b.building != nil {
			r := b.building
			b.building = nil
			b.attach(r)
		}
	}
	b.pendingAtKeyword = ""
	return OK
}

func (b *Binding) charsetRule(prelude []Token) Error {
	if b.sheet.anyRuleSeen {
		return INVALID
	}
	if len(prelude) != 1 || prelude[0].Type != STRING {
		return INVALID
	}
	r := newRule(b.sheet, RuleCharset)
	r.Charset = b.pool.Intern(prelude[0].Text)
	return b.sheet.addRule(r)
}

func (b *Binding) importRule(prelude []Token) Error {
	if len(prelude) == 0 {
		return INVALID
	}
	var urlTok Token
	switch prelude[0].Type {
	case STRING, URI:
		urlTok = prelude[0]
	default:
		return INVALID
	}
	media := parseMediaList(b.pool, prelude[1:])
	if media == 0 {
		media = MediaAll
	}
	r := newRule(b.sheet, RuleImport)
	r.ImportURL = b.pool.Intern(urlTok.Text)
	r.ImportMedia = media
	if err := b.sheet.addRule(r); err != OK {
		return err
	}
	if cb := b.sheet.Options.Import; cb != nil {
		cb(b.sheet, r.ImportURL, media)
	}
	return OK
}

// mediaNames maps CSS 2.1 media type keywords to their bit.
var mediaNames = map[string]MediaBit{
	"screen":     MediaScreen,
	"print":      MediaPrint,
	"aural":      MediaAural,
	"braille":    MediaBraille,
	"embossed":   MediaEmbossed,
	"handheld":   MediaHandheld,
	"projection": MediaProjection,
	"tty":        MediaTTY,
	"tv":         MediaTV,
	"all":        MediaAll,
}

func parseMediaList(pool *strpool.Pool, toks []Token) MediaBit {
	var bits MediaBit
	for _, t := range toks {
		if t.Type != IDENT {
			continue
		}
		if bit, ok := mediaNames[lowerTokenText(t)]; ok {
			bits |= bit
		}
	}
	return bits
}

// parsePageSelector handles the optional ":first"/":left"/":right" pseudo-
// page of an @page prelude; CSS 2.1 gives it no cascade weight beyond a
// single pseudo-element-class detail.
func parsePageSelector(pool *strpool.Pool, toks []Token) []*Selector {
	sel := &Selector{}
	for _, t := range toks {
		if t.Type == CHAR && t.Text == ":" {
			continue
		}
		if t.Type == IDENT {
			sel.Details = append(sel.Details, Detail{Kind: DetailPseudoClass, Name: pool.InternLower(t.Text)})
		}
	}
	sel.Specificity = sel.ComputeSpecificity()
	return []*Selector{sel}
}

func (b *Binding) startRuleset(tokens []Token) Error {
	chains, ok := parseSelectorList(b.pool, tokens)
	if !ok || len(chains) == 0 {
		return INVALID
	}
	r := newRule(b.sheet, RuleSelector)
	r.Selectors = chains
	for _, c := range chains {
		c.Rule = r
	}
	b.building = r
	return OK
}

func (b *Binding) endRuleset() Error {
	if b.building == nil {
		return OK
	}
	r := b.building
	b.building = nil
	b.attach(r)
	return OK
}

func (b *Binding) declaration(tokens []Token) Error {
	if b.building == nil {
		return INVALID
	}
	toks := significant(tokens)
	if len(toks) < 3 || toks[0].Type != IDENT || !(toks[1].Type == CHAR && toks[1].Text == ":") {
		log.Debugf("discarding malformed declaration")
		return INVALID
	}
	name := lowerTokenText(toks[0])
	value := toks[2:]

	important := false
	// "!important" tokenises as CHAR("!") IDENT("important"), with any
	// whitespace already coalesced to a single token by the parser.
	if n := len(value); n >= 2 {
		last := value[n-1]
		prev := value[n-2]
		if last.Type == IDENT && lowerTokenText(last) == "important" && prev.Type == CHAR && prev.Text == "!" {
			important = true
			value = value[:n-2]
		}
	}

	desc, ok := propertyTable[name]
	if !ok {
		log.Debugf("skipping unknown property %q", name)
		return INVALID
	}
	if desc.Kind == kindShorthand {
		// Shorthands split their components on whitespace, so they get the
		// value with its whitespace kept (everything after the ':' and
		// before any "!important").
		raw := tokens
		for i := 0; i < len(raw); i++ {
			if raw[i].Type == CHAR && raw[i].Text == ":" {
				raw = raw[i+1:]
				break
			}
		}
		for i := len(raw) - 1; important && i >= 0; i-- {
			if raw[i].Type == CHAR && raw[i].Text == "!" {
				raw = raw[:i]
				break
			}
		}
		value = raw
	}
	style, err := parseProperty(b.pool, b.sheet, desc, value, important)
	if err != OK {
		log.Debugf("discarding invalid value for property %q", name)
		return INVALID
	}
	b.building.Style.AppendStyle(style)
	return OK
}
