package style_test

import (
	"testing"

	"github.com/lukehoban/cssengine/css"
	"github.com/lukehoban/cssengine/dom"
	"github.com/lukehoban/cssengine/strpool"
	"github.com/lukehoban/cssengine/style"
)

func parseSheet(t *testing.T, pool *strpool.Pool, src string, origin css.Origin) *css.Stylesheet {
	t.Helper()
	sheet, err := css.ParseString(css.Options{Pool: pool, Level: css.CSS21, Origin: origin}, []byte(src))
	if err != css.OK {
		t.Fatalf("ParseString: %v", err)
	}
	return sheet
}

// Scenario 1 (spec.md §8): "p { color: red }" resolves color=red on a <p>.
func TestSelectSimpleDeclaration(t *testing.T) {
	pool := strpool.New()
	sheet := parseSheet(t, pool, `p { color: red }`, css.OriginAuthor)
	host := dom.Host{}
	p := dom.NewElement("p")

	cs, err := style.Select(host, []*css.Stylesheet{sheet}, p, 0, css.MediaScreen, nil)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	v := cs.Color()
	if !v.Set || v.Colour != css.RGBA(0xff, 0, 0, 0xff) {
		t.Fatalf("color = %+v, want red", v)
	}
}

// Scenario 2: important user declaration outranks a non-important author one.
func TestSelectImportantUserBeatsAuthor(t *testing.T) {
	pool := strpool.New()
	user := parseSheet(t, pool, `p { color: red !important }`, css.OriginUser)
	author := parseSheet(t, pool, `p { color: blue }`, css.OriginAuthor)
	host := dom.Host{}
	p := dom.NewElement("p")

	cs, err := style.Select(host, []*css.Stylesheet{user, author}, p, 0, css.MediaScreen, nil)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	v := cs.Color()
	if v.Colour != css.RGBA(0xff, 0, 0, 0xff) {
		t.Fatalf("color = %+v, want red (important user wins)", v)
	}
}

// Scenario 3: equal specificity, later rule wins.
func TestSelectSpecificityTieBreakByOrder(t *testing.T) {
	pool := strpool.New()
	sheet := parseSheet(t, pool, `p { color: red } p { color: blue }`, css.OriginAuthor)
	host := dom.Host{}
	p := dom.NewElement("p")

	cs, err := style.Select(host, []*css.Stylesheet{sheet}, p, 0, css.MediaScreen, nil)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	v := cs.Color()
	if v.Colour != css.RGBA(0, 0, 0xff, 0xff) {
		t.Fatalf("color = %+v, want blue (later rule wins tie)", v)
	}
}

// Scenario 4: descendant combinator, with and without a matching ancestor.
func TestSelectDescendantCombinator(t *testing.T) {
	pool := strpool.New()
	sheet := parseSheet(t, pool, `div p { color: green }`, css.OriginAuthor)
	host := dom.Host{}

	div := dom.NewElement("div")
	p := dom.NewElement("p")
	div.AppendChild(p)

	cs, err := style.Select(host, []*css.Stylesheet{sheet}, p, 0, css.MediaScreen, nil)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	v := cs.Color()
	if v.Colour != css.RGBA(0, 0x80, 0, 0xff) {
		t.Fatalf("color = %+v, want green", v)
	}

	orphanP := dom.NewElement("p")
	cs2, err := style.Select(host, []*css.Stylesheet{sheet}, orphanP, 0, css.MediaScreen, nil)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if cs2.Color().Set {
		t.Fatalf("expected color to remain unset without a div ancestor, got %+v", cs2.Color())
	}
}

// Scenario 5: a malformed declaration doesn't take down its sibling
// declarations in the same rule.
func TestSelectMalformedDeclarationRecovery(t *testing.T) {
	pool := strpool.New()
	sheet := parseSheet(t, pool, `p { color: red; foo bar baz; font-size: 12px }`, css.OriginAuthor)
	host := dom.Host{}
	p := dom.NewElement("p")

	cs, err := style.Select(host, []*css.Stylesheet{sheet}, p, 0, css.MediaScreen, nil)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if !cs.Color().Set {
		t.Fatalf("expected color to survive the malformed middle declaration")
	}
	if !cs.FontSize().Set {
		t.Fatalf("expected font-size to survive the malformed middle declaration")
	}
}

func TestSelectChildCombinator(t *testing.T) {
	pool := strpool.New()
	sheet := parseSheet(t, pool, `div > p { color: red }`, css.OriginAuthor)
	host := dom.Host{}

	div := dom.NewElement("div")
	span := dom.NewElement("span")
	p := dom.NewElement("p")
	div.AppendChild(span)
	span.AppendChild(p)

	cs, err := style.Select(host, []*css.Stylesheet{sheet}, p, 0, css.MediaScreen, nil)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if cs.Color().Set {
		t.Fatalf("p is not a direct child of div, color should be unset")
	}

	div2 := dom.NewElement("div")
	p2 := dom.NewElement("p")
	div2.AppendChild(p2)
	cs2, err := style.Select(host, []*css.Stylesheet{sheet}, p2, 0, css.MediaScreen, nil)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if !cs2.Color().Set {
		t.Fatalf("expected direct child to match")
	}
}

func TestSelectAdjacentSiblingCombinator(t *testing.T) {
	pool := strpool.New()
	sheet := parseSheet(t, pool, `h1 + p { color: red }`, css.OriginAuthor)
	host := dom.Host{}

	div := dom.NewElement("div")
	h1 := dom.NewElement("h1")
	p := dom.NewElement("p")
	div.AppendChild(h1)
	div.AppendChild(p)

	cs, err := style.Select(host, []*css.Stylesheet{sheet}, p, 0, css.MediaScreen, nil)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if !cs.Color().Set {
		t.Fatalf("expected p immediately after h1 to match")
	}
}

func TestSelectClassAndIDDetails(t *testing.T) {
	pool := strpool.New()
	sheet := parseSheet(t, pool, `.big { font-size: 20px } #title { color: red }`, css.OriginAuthor)
	host := dom.Host{}

	el := dom.NewElement("p")
	el.SetAttribute("class", "big")
	el.SetAttribute("id", "title")

	cs, err := style.Select(host, []*css.Stylesheet{sheet}, el, 0, css.MediaScreen, nil)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if !cs.FontSize().Set {
		t.Fatalf("expected class selector to match")
	}
	if !cs.Color().Set {
		t.Fatalf("expected id selector to match")
	}
}

func TestSelectDynamicPseudoClass(t *testing.T) {
	pool := strpool.New()
	sheet := parseSheet(t, pool, `a:hover { color: red }`, css.OriginAuthor)
	host := dom.Host{}
	a := dom.NewElement("a")

	cs, err := style.Select(host, []*css.Stylesheet{sheet}, a, 0, css.MediaScreen, nil)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if cs.Color().Set {
		t.Fatalf("expected :hover not to match without PseudoHover asserted")
	}

	cs2, err := style.Select(host, []*css.Stylesheet{sheet}, a, style.PseudoHover, css.MediaScreen, nil)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if !cs2.Color().Set {
		t.Fatalf("expected :hover to match with PseudoHover asserted")
	}
}

func TestSelectDisabledSheetIgnored(t *testing.T) {
	pool := strpool.New()
	sheet := parseSheet(t, pool, `p { color: red }`, css.OriginAuthor)
	sheet.Disabled = true
	host := dom.Host{}
	p := dom.NewElement("p")

	cs, err := style.Select(host, []*css.Stylesheet{sheet}, p, 0, css.MediaScreen, nil)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if cs.Color().Set {
		t.Fatalf("expected disabled sheet to be skipped")
	}
}

func TestSelectMediaMismatch(t *testing.T) {
	pool := strpool.New()
	sheet := parseSheet(t, pool, `@media print { p { color: red } }`, css.OriginAuthor)
	host := dom.Host{}
	p := dom.NewElement("p")

	cs, err := style.Select(host, []*css.Stylesheet{sheet}, p, 0, css.MediaScreen, nil)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if cs.Color().Set {
		t.Fatalf("expected @media print rule not to apply under screen media")
	}
}

func TestSelectInlineStyleOutranksAuthor(t *testing.T) {
	pool := strpool.New()
	sheet := parseSheet(t, pool, `p { color: blue }`, css.OriginAuthor)
	host := dom.Host{}
	p := dom.NewElement("p")

	var inline css.Style
	inline.Append(uint32(css.BuildOPV(css.OpColor, 0, css.ValSet<<2)))
	inline.Append(uint32(css.RGBA(0xff, 0, 0, 0xff)))

	cs, err := style.Select(host, []*css.Stylesheet{sheet}, p, 0, css.MediaScreen, &inline)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if cs.Color().Colour != css.RGBA(0xff, 0, 0, 0xff) {
		t.Fatalf("color = %+v, want red (inline style outranks author rule)", cs.Color())
	}
}
