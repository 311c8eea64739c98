package style_test

import (
	"testing"

	"github.com/lukehoban/cssengine/css"
	"github.com/lukehoban/cssengine/dom"
	"github.com/lukehoban/cssengine/strpool"
	"github.com/lukehoban/cssengine/style"
)

func TestComposeDefaultInheritedPropertyPullsParent(t *testing.T) {
	pool := strpool.New()
	sheet := parseSheet(t, pool, `div { color: red } p { }`, css.OriginAuthor)
	host := dom.Host{}

	div := dom.NewElement("div")
	p := dom.NewElement("p")
	div.AppendChild(p)

	parentOwn, err := style.Select(host, []*css.Stylesheet{sheet}, div, 0, css.MediaScreen, nil)
	if err != nil {
		t.Fatalf("Select(div): %v", err)
	}
	parent := style.Compose(style.New(), parentOwn)

	childOwn, err := style.Select(host, []*css.Stylesheet{sheet}, p, 0, css.MediaScreen, nil)
	if err != nil {
		t.Fatalf("Select(p): %v", err)
	}
	child := style.Compose(parent, childOwn)

	v := child.Color()
	if !v.Set || v.Inherit {
		t.Fatalf("color = %+v, want a resolved (inherited) value", v)
	}
	if v.Colour != css.RGBA(0xff, 0, 0, 0xff) {
		t.Fatalf("color = %+v, want red inherited from div", v)
	}
}

func TestComposeNonInheritedPropertyStaysUnset(t *testing.T) {
	pool := strpool.New()
	sheet := parseSheet(t, pool, `div { width: 100px } p { }`, css.OriginAuthor)
	host := dom.Host{}

	div := dom.NewElement("div")
	p := dom.NewElement("p")
	div.AppendChild(p)

	parentOwn, err := style.Select(host, []*css.Stylesheet{sheet}, div, 0, css.MediaScreen, nil)
	if err != nil {
		t.Fatalf("Select(div): %v", err)
	}
	parent := style.Compose(style.New(), parentOwn)

	childOwn, err := style.Select(host, []*css.Stylesheet{sheet}, p, 0, css.MediaScreen, nil)
	if err != nil {
		t.Fatalf("Select(p): %v", err)
	}
	child := style.Compose(parent, childOwn)

	if child.Width().Set {
		t.Fatalf("width is not an inherited property; child should leave it unset, got %+v", child.Width())
	}
}

func TestComposeExplicitInheritKeywordPullsParentEvenForNonInheritedProperty(t *testing.T) {
	pool := strpool.New()
	sheet := parseSheet(t, pool, `div { width: 100px } p { width: inherit }`, css.OriginAuthor)
	host := dom.Host{}

	div := dom.NewElement("div")
	p := dom.NewElement("p")
	div.AppendChild(p)

	parentOwn, err := style.Select(host, []*css.Stylesheet{sheet}, div, 0, css.MediaScreen, nil)
	if err != nil {
		t.Fatalf("Select(div): %v", err)
	}
	parent := style.Compose(style.New(), parentOwn)

	childOwn, err := style.Select(host, []*css.Stylesheet{sheet}, p, 0, css.MediaScreen, nil)
	if err != nil {
		t.Fatalf("Select(p): %v", err)
	}
	child := style.Compose(parent, childOwn)

	if !child.Width().Set {
		t.Fatalf("explicit \"inherit\" should pull width from parent")
	}
	if child.Width().Length != parent.Width().Length {
		t.Fatalf("width = %+v, want parent's %+v", child.Width(), parent.Width())
	}
}

func TestComposeChildOwnValueWins(t *testing.T) {
	pool := strpool.New()
	sheet := parseSheet(t, pool, `div { color: red } p { color: blue }`, css.OriginAuthor)
	host := dom.Host{}

	div := dom.NewElement("div")
	p := dom.NewElement("p")
	div.AppendChild(p)

	parentOwn, err := style.Select(host, []*css.Stylesheet{sheet}, div, 0, css.MediaScreen, nil)
	if err != nil {
		t.Fatalf("Select(div): %v", err)
	}
	parent := style.Compose(style.New(), parentOwn)

	childOwn, err := style.Select(host, []*css.Stylesheet{sheet}, p, 0, css.MediaScreen, nil)
	if err != nil {
		t.Fatalf("Select(p): %v", err)
	}
	child := style.Compose(parent, childOwn)

	if child.Color().Colour != css.RGBA(0, 0, 0xff, 0xff) {
		t.Fatalf("color = %+v, want blue (child's own rule wins over inheritance)", child.Color())
	}
}
