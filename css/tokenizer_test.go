package css

import (
	"testing"

	"github.com/lukehoban/cssengine/strpool"
)

func lexAll(t *testing.T, input string) []Token {
	t.Helper()
	pool := strpool.New()
	tok := NewTokenizer(pool, TokenizerOptions{})
	tok.Feed([]byte(input))
	var out []Token
	for {
		tk, err := tok.Next(true)
		if err != OK {
			t.Fatalf("unexpected tokenizer error: %v", err)
		}
		if tk.Type == TokenEOF {
			break
		}
		out = append(out, tk)
	}
	return out
}

func TestTokenizerIdent(t *testing.T) {
	toks := lexAll(t, "color")
	if len(toks) != 1 || toks[0].Type != IDENT || toks[0].Text != "color" {
		t.Fatalf("got %+v", toks)
	}
}

func TestTokenizerStrings(t *testing.T) {
	tests := []struct {
		name, input, expected string
		want                  TokenType
	}{
		{"double quotes", `"hello"`, "hello", STRING},
		{"single quotes", `'world'`, "world", STRING},
		{"with spaces", `"hello world"`, "hello world", STRING},
		{"escaped newline continuation", "\"a\\\nb\"", "ab", STRING},
		{"bare newline invalid", "\"oops\nmore\"", "oops", INVALID_STRING},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := lexAll(t, tt.input)
			if len(toks) == 0 {
				t.Fatalf("no tokens produced")
			}
			if toks[0].Type != tt.want {
				t.Errorf("type = %v, want %v", toks[0].Type, tt.want)
			}
			if toks[0].Text != tt.expected {
				t.Errorf("text = %q, want %q", toks[0].Text, tt.expected)
			}
		})
	}
}

func TestTokenizerNumeric(t *testing.T) {
	tests := []struct {
		input string
		want  TokenType
		num   float64
		unit  string
	}{
		{"42", NUMBER, 42, ""},
		{"3.14", NUMBER, 3.14, ""},
		{"10px", DIMENSION, 10, "px"},
		{"1.5em", DIMENSION, 1.5, "em"},
		{"-5px", DIMENSION, -5, "px"},
		{"50%", PERCENTAGE, 50, ""},
	}
	for _, tt := range tests {
		toks := lexAll(t, tt.input)
		if len(toks) != 1 {
			t.Fatalf("%q: got %d tokens", tt.input, len(toks))
		}
		tk := toks[0]
		if tk.Type != tt.want {
			t.Errorf("%q: type = %v, want %v", tt.input, tk.Type, tt.want)
		}
		if tk.Number != tt.num {
			t.Errorf("%q: number = %v, want %v", tt.input, tk.Number, tt.num)
		}
		if tk.Unit != tt.unit {
			t.Errorf("%q: unit = %q, want %q", tt.input, tk.Unit, tt.unit)
		}
	}
}

func TestTokenizerHash(t *testing.T) {
	toks := lexAll(t, "#header")
	if len(toks) != 1 || toks[0].Type != HASH || toks[0].Text != "header" {
		t.Fatalf("got %+v", toks)
	}
}

func TestTokenizerAtKeywordAndFunction(t *testing.T) {
	toks := lexAll(t, "@media rgb(")
	if len(toks) < 3 {
		t.Fatalf("got %d tokens: %+v", len(toks), toks)
	}
	if toks[0].Type != ATKEYWORD || toks[0].Text != "media" {
		t.Errorf("got %+v", toks[0])
	}
	if toks[2].Type != FUNCTION || toks[2].Text != "rgb" {
		t.Errorf("got %+v", toks[2])
	}
}

func TestTokenizerURI(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`url("a.css")`, "a.css"},
		{`url(a.css)`, "a.css"},
		{`url( 'b.css' )`, "b.css"},
	}
	for _, tt := range tests {
		toks := lexAll(t, tt.input)
		if len(toks) != 1 || toks[0].Type != URI {
			t.Fatalf("%q: got %+v", tt.input, toks)
		}
		if toks[0].Text != tt.want {
			t.Errorf("%q: got %q, want %q", tt.input, toks[0].Text, tt.want)
		}
	}
}

func TestTokenizerCDOCDC(t *testing.T) {
	toks := lexAll(t, "<!-- -->")
	if len(toks) != 3 || toks[0].Type != CDO || toks[2].Type != CDC {
		t.Fatalf("got %+v", toks)
	}
}

func TestTokenizerMatchOperators(t *testing.T) {
	toks := lexAll(t, "~= |= ^= $= *=")
	want := []TokenType{INCLUDES, WHITESPACE, DASHMATCH, WHITESPACE, PREFIXMATCH, WHITESPACE, SUFFIXMATCH, WHITESPACE, SUBSTRINGMATCH}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, w := range want {
		if toks[i].Type != w {
			t.Errorf("token %d: got %v, want %v", i, toks[i].Type, w)
		}
	}
}

func TestTokenizerCommentsSkippedByDefault(t *testing.T) {
	toks := lexAll(t, "a /* comment */ b")
	var types []TokenType
	for _, tk := range toks {
		types = append(types, tk.Type)
	}
	for _, ty := range types {
		if ty == COMMENT {
			t.Fatalf("comment token should be suppressed by default: %v", types)
		}
	}
}

func TestTokenizerEmitComments(t *testing.T) {
	pool := strpool.New()
	tok := NewTokenizer(pool, TokenizerOptions{EmitComments: true})
	tok.Feed([]byte("/* hi */"))
	tk, err := tok.Next(true)
	if err != OK || tk.Type != COMMENT || tk.Text != " hi " {
		t.Fatalf("got %+v, err=%v", tk, err)
	}
}

func TestTokenizerChunkBoundaryInvariant(t *testing.T) {
	input := `div.foo#bar { color: red; width: 10px; }`
	whole := lexAll(t, input)

	for split := 0; split <= len(input); split++ {
		pool := strpool.New()
		tok := NewTokenizer(pool, TokenizerOptions{})
		tok.Feed([]byte(input[:split]))
		var got []Token
		for {
			tk, err := tok.Next(false)
			if err == NEEDDATA {
				break
			}
			if err != OK {
				t.Fatalf("split %d: unexpected error %v", split, err)
			}
			if tk.Type == TokenEOF {
				break
			}
			got = append(got, tk)
		}
		tok.Feed([]byte(input[split:]))
		for {
			tk, err := tok.Next(true)
			if err != OK {
				t.Fatalf("split %d: unexpected error %v", split, err)
			}
			if tk.Type == TokenEOF {
				break
			}
			got = append(got, tk)
		}
		if len(got) != len(whole) {
			t.Fatalf("split %d: got %d tokens, want %d", split, len(got), len(whole))
		}
		for i := range got {
			if got[i].Type != whole[i].Type || got[i].Text != whole[i].Text {
				t.Fatalf("split %d: token %d = %+v, want %+v", split, i, got[i], whole[i])
			}
		}
	}
}

func TestTokenizerNeverPanicsOnUnknownByte(t *testing.T) {
	toks := lexAll(t, "a ` b")
	if len(toks) == 0 {
		t.Fatalf("expected some tokens")
	}
}
