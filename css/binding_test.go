package css

import (
	"testing"

	"github.com/lukehoban/cssengine/strpool"
)

func parseSheet(t *testing.T, src string, opts Options) *Stylesheet {
	t.Helper()
	pool := opts.Pool
	if pool == nil {
		pool = strpool.New()
		opts.Pool = pool
	}
	if opts.Level == 0 {
		opts.Level = CSS21
	}
	sheet, err := NewStylesheet(opts)
	if err != OK {
		t.Fatalf("NewStylesheet: %v", err)
	}
	b := NewBinding(sheet)
	tok := NewTokenizer(pool, TokenizerOptions{})
	p := NewParser(tok, b)
	if err := p.ParseChunk([]byte(src)); err != OK && err != NEEDDATA {
		t.Fatalf("ParseChunk: %v", err)
	}
	if err := p.Completed(); err != OK {
		t.Fatalf("Completed: %v", err)
	}
	return sheet
}

func TestBindingSimpleRuleset(t *testing.T) {
	sheet := parseSheet(t, `p { color: red; width: 10px; }`, Options{})
	if len(sheet.Rules) != 1 {
		t.Fatalf("got %d rules, want 1", len(sheet.Rules))
	}
	r := sheet.Rules[0]
	if r.Type != RuleSelector {
		t.Fatalf("rule type = %v", r.Type)
	}
	if len(r.Selectors) != 1 {
		t.Fatalf("got %d selectors, want 1", len(r.Selectors))
	}
	name, ok := r.Selectors[0].ElementName()
	if !ok || strpool.Data(name) != "p" {
		t.Fatalf("element name = %q, ok=%v", strpool.Data(name), ok)
	}
	if r.Style.Len() == 0 {
		t.Fatalf("expected non-empty style bytecode")
	}
}

func TestBindingMultipleSelectors(t *testing.T) {
	sheet := parseSheet(t, `h1, h2.big, #id { display: block; }`, Options{})
	if len(sheet.Rules) != 1 {
		t.Fatalf("got %d rules", len(sheet.Rules))
	}
	if len(sheet.Rules[0].Selectors) != 3 {
		t.Fatalf("got %d selectors, want 3", len(sheet.Rules[0].Selectors))
	}
}

func TestBindingMediaRule(t *testing.T) {
	sheet := parseSheet(t, `@media print { p { color: blue; } }`, Options{})
	if len(sheet.Rules) != 1 || sheet.Rules[0].Type != RuleMedia {
		t.Fatalf("got rules=%+v", sheet.Rules)
	}
	media := sheet.Rules[0]
	if media.Media != MediaPrint {
		t.Fatalf("media bits = %v", media.Media)
	}
	if len(media.Children) != 1 {
		t.Fatalf("got %d children", len(media.Children))
	}
}

func TestBindingCharsetMustBeFirst(t *testing.T) {
	sheet := parseSheet(t, `p{color:red} @charset "UTF-8";`, Options{})
	for _, r := range sheet.Rules {
		if r.Type == RuleCharset {
			t.Fatalf("charset rule accepted out of position")
		}
	}
}

func TestBindingImportantDeclaration(t *testing.T) {
	sheet := parseSheet(t, `p { color: red !important; }`, Options{})
	r := sheet.Rules[0]
	if r.Style.Len() == 0 {
		t.Fatalf("expected bytecode")
	}
	op := OPV(r.Style.Words[0])
	if !op.Important() {
		t.Fatalf("expected !important flag set")
	}
}

func TestBindingMalformedDeclarationDiscarded(t *testing.T) {
	sheet := parseSheet(t, `p { color ; width: 5px; }`, Options{})
	r := sheet.Rules[0]
	if r.Style.Len() == 0 {
		t.Fatalf("expected the valid width declaration to survive")
	}
	op := OPV(r.Style.Words[0])
	if op.Opcode() != OpWidth {
		t.Fatalf("opcode = %v, want OpWidth", op.Opcode())
	}
}

func TestBindingUnknownPropertySkipped(t *testing.T) {
	sheet := parseSheet(t, `p { -webkit-foo: bar; color: red; }`, Options{})
	r := sheet.Rules[0]
	if r.Style.Len() == 0 {
		t.Fatalf("expected color declaration to survive")
	}
	op := OPV(r.Style.Words[0])
	if op.Opcode() != OpColor {
		t.Fatalf("opcode = %v, want OpColor", op.Opcode())
	}
}

func TestBindingSelectorHashLookup(t *testing.T) {
	sheet := parseSheet(t, `p { color: red; } * { margin: 0; }`, Options{})
	pool := sheet.Options.Pool
	name := pool.InternLower("p")
	matches := sheet.Hash.Lookup(name)
	if len(matches) != 1 {
		t.Fatalf("got %d matches for p, want 1", len(matches))
	}
	universal := sheet.Hash.Universal()
	if len(universal) != 1 {
		t.Fatalf("got %d universal selectors, want 1", len(universal))
	}
}
