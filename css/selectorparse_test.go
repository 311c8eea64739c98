package css

import (
	"testing"

	"github.com/lukehoban/cssengine/strpool"
)

func parsePrelude(t *testing.T, src string) []Token {
	t.Helper()
	pool := strpool.New()
	tok := NewTokenizer(pool, TokenizerOptions{})
	tok.Feed([]byte(src))
	var out []Token
	for {
		tk, err := tok.Next(true)
		if err != OK {
			t.Fatalf("tokenize: %v", err)
		}
		if tk.Type == TokenEOF {
			break
		}
		out = append(out, tk)
	}
	return out
}

func TestParseSelectorListBasics(t *testing.T) {
	pool := strpool.New()
	tests := []struct {
		name   string
		src    string
		chains int
	}{
		{"type", "p", 1},
		{"universal", "*", 1},
		{"class", "p.foo", 1},
		{"id", "p#bar", 1},
		{"descendant", "div p", 1},
		{"child", "div > p", 1},
		{"adjacent", "div + p", 1},
		{"comma group", "h1, h2, h3", 3},
		{"attribute", "a[href]", 1},
		{"attribute equal", `a[href="x"]`, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := parsePrelude(t, tt.src)
			chains, ok := parseSelectorList(pool, toks)
			if !ok {
				t.Fatalf("parseSelectorList failed for %q", tt.src)
			}
			if len(chains) != tt.chains {
				t.Fatalf("got %d chains, want %d", len(chains), tt.chains)
			}
		})
	}
}

func TestParseSelectorListChainOrder(t *testing.T) {
	pool := strpool.New()
	toks := parsePrelude(t, "div > p.foo")
	chains, ok := parseSelectorList(pool, toks)
	if !ok || len(chains) != 1 {
		t.Fatalf("parse failed: ok=%v chains=%d", ok, len(chains))
	}
	head := chains[0]
	name, ok := head.ElementName()
	if !ok || strpool.Data(name) != "p" {
		t.Fatalf("head element = %q", strpool.Data(name))
	}
	if head.Combinator != CombinatorChild {
		t.Fatalf("combinator = %v, want CombinatorChild", head.Combinator)
	}
	if head.Next == nil {
		t.Fatalf("expected a Next selector for div")
	}
	divName, ok := head.Next.ElementName()
	if !ok || strpool.Data(divName) != "div" {
		t.Fatalf("next element = %q", strpool.Data(divName))
	}
}

func TestParseSelectorListInvalid(t *testing.T) {
	pool := strpool.New()
	for _, src := range []string{"div >", ".", "a[", "p,,"} {
		toks := parsePrelude(t, src)
		if _, ok := parseSelectorList(pool, toks); ok {
			t.Errorf("expected parseSelectorList(%q) to fail", src)
		}
	}
}

func TestSpecificityOrdering(t *testing.T) {
	pool := strpool.New()
	idToks := parsePrelude(t, "#a")
	classToks := parsePrelude(t, ".a")
	elemToks := parsePrelude(t, "p")

	idChains, _ := parseSelectorList(pool, idToks)
	classChains, _ := parseSelectorList(pool, classToks)
	elemChains, _ := parseSelectorList(pool, elemToks)

	if !(idChains[0].Specificity > classChains[0].Specificity) {
		t.Fatalf("expected id specificity > class specificity")
	}
	if !(classChains[0].Specificity > elemChains[0].Specificity) {
		t.Fatalf("expected class specificity > element specificity")
	}
}
