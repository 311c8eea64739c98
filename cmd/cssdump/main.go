// Command cssdump parses a CSS 2.1 stylesheet file and, against a small
// built-in document fixture, dumps the stylesheet's rules and the
// computed style the selection engine resolves for each fixture element.
//
// It exists the way the teacher's cmd/browser does: a thin driver over
// the library packages, useful for poking at the engine from a shell
// rather than a test.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/lukehoban/cssengine/css"
	"github.com/lukehoban/cssengine/dom"
	"github.com/lukehoban/cssengine/strpool"
	"github.com/lukehoban/cssengine/style"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: cssdump <css-file>")
		os.Exit(1)
	}

	content, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		os.Exit(1)
	}

	pool := strpool.New()
	sheet, perr := css.ParseString(css.Options{
		Pool:   pool,
		Level:  css.CSS21,
		Origin: css.OriginAuthor,
		Media:  css.MediaScreen,
		URL:    os.Args[1],
	}, content)
	if perr != css.OK {
		fmt.Printf("Error parsing stylesheet: %s\n", perr)
		os.Exit(1)
	}

	fmt.Println("=== Rules ===")
	printRules(sheet)

	fmt.Println("\n=== Fixture document ===")
	doc := fixtureDocument()
	printDOMTree(doc, 0)

	fmt.Println("\n=== Computed styles ===")
	host := dom.Host{}
	dumpStyles(host, []*css.Stylesheet{sheet}, doc, style.New())
}

func printRules(sheet *css.Stylesheet) {
	for _, r := range sheet.Rules {
		switch r.Type {
		case css.RuleSelector:
			fmt.Printf("ruleset #%d, %d selector(s), %d bytecode word(s)\n",
				r.Index, len(r.Selectors), r.Style.Len())
		case css.RuleMedia:
			fmt.Printf("@media rule #%d, %d nested rule(s)\n", r.Index, len(r.Children))
		case css.RuleCharset:
			fmt.Printf("@charset rule #%d\n", r.Index)
		case css.RuleImport:
			fmt.Printf("@import rule #%d: %s\n", r.Index, strpool.Data(r.ImportURL))
		case css.RuleFontFace:
			fmt.Printf("@font-face rule #%d\n", r.Index)
		case css.RulePage:
			fmt.Printf("@page rule #%d\n", r.Index)
		}
	}
}

// fixtureDocument builds a small hand-authored document tree: there is no
// HTML parser in this repo (spec.md's Non-goals exclude one), so
// cmd/cssdump exercises the selection engine against a fixture instead of
// a real parsed page.
func fixtureDocument() *dom.Node {
	docRoot := dom.NewDocument()
	html := dom.NewElement("html")
	body := dom.NewElement("body")
	container := dom.NewElement("div")
	container.SetAttribute("class", "container")
	heading := dom.NewElement("h1")
	heading.SetAttribute("id", "title")
	intro := dom.NewElement("p")
	intro.SetAttribute("class", "intro lead")
	note := dom.NewElement("p")
	note.SetAttribute("class", "note")

	docRoot.AppendChild(html)
	html.AppendChild(body)
	body.AppendChild(container)
	container.AppendChild(heading)
	container.AppendChild(intro)
	container.AppendChild(note)
	return docRoot
}

func printDOMTree(n *dom.Node, indent int) {
	prefix := strings.Repeat("  ", indent)
	switch n.Type {
	case dom.DocumentNode:
		fmt.Printf("%s[document]\n", prefix)
	case dom.ElementNode:
		attrs := ""
		if id := n.ID(); id != "" {
			attrs += fmt.Sprintf(" id=%q", id)
		}
		if classes := n.Classes(); len(classes) > 0 {
			attrs += fmt.Sprintf(" class=%q", strings.Join(classes, " "))
		}
		fmt.Printf("%s<%s%s>\n", prefix, n.Data, attrs)
	}
	for _, c := range n.Children {
		printDOMTree(c, indent+1)
	}
}

// dumpStyles recursively selects and composes each element's style
// against parentComputed and prints a few representative properties.
func dumpStyles(host style.Host, sheets []*css.Stylesheet, n *dom.Node, parentComputed *style.ComputedStyle) {
	if n.Type != dom.ElementNode {
		for _, c := range n.Children {
			dumpStyles(host, sheets, c, parentComputed)
		}
		return
	}

	matched, err := style.Select(host, sheets, n, 0, css.MediaScreen, nil)
	if err != nil {
		fmt.Printf("<%s>: selection error: %v\n", n.Data, err)
		return
	}
	computed := style.Compose(parentComputed, matched)

	label := n.Data
	if id := n.ID(); id != "" {
		label += "#" + id
	}
	for _, c := range n.Classes() {
		label += "." + c
	}
	fmt.Printf("<%s>\n", label)
	fmt.Printf("  color:            %s\n", formatValue(computed.Color()))
	fmt.Printf("  background-color: %s\n", formatValue(computed.BackgroundColor()))
	fmt.Printf("  display:          %s\n", formatValue(computed.Display()))
	fmt.Printf("  font-size:        %s\n", formatValue(computed.FontSize()))
	fmt.Printf("  margin-top:       %s\n", formatValue(computed.Margin(style.SideTop)))

	for _, c := range n.Children {
		dumpStyles(host, sheets, c, computed)
	}
}

func formatValue(v style.Value) string {
	if v.Inherit {
		return "inherit"
	}
	if !v.Set {
		return "<initial>"
	}
	switch {
	case v.Colour != 0:
		return fmt.Sprintf("#%06x (keyword/enum %d)", uint32(v.Colour)>>8, v.Enum)
	case v.Length != 0 || v.Unit != 0:
		return fmt.Sprintf("%g (unit %d, enum %d)", v.Length.Float(), v.Unit, v.Enum)
	case len(v.List) > 0:
		return fmt.Sprintf("%d item(s)", len(v.List))
	default:
		return fmt.Sprintf("enum %d", v.Enum)
	}
}
