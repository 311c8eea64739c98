package css

import "testing"

func TestStylesheetCharsetMustBeFirstRule(t *testing.T) {
	sheet := parseSheet(t, `@charset "UTF-8"; p { color: red }`, Options{})
	if len(sheet.Rules) != 2 || sheet.Rules[0].Type != RuleCharset {
		t.Fatalf("expected charset as first rule, got %+v", sheet.Rules)
	}
}

func TestStylesheetCharsetAfterRuleDiscarded(t *testing.T) {
	sheet := parseSheet(t, `p { color: red } @charset "UTF-8";`, Options{})
	for _, r := range sheet.Rules {
		if r.Type == RuleCharset {
			t.Fatalf("charset after another rule must be discarded as malformed")
		}
	}
}

func TestStylesheetImportMustPrecedeOtherRules(t *testing.T) {
	sheet := parseSheet(t, `p { color: red } @import url("a.css");`, Options{})
	for _, r := range sheet.Rules {
		if r.Type == RuleImport {
			t.Fatalf("import after a non-charset/import rule must be discarded")
		}
	}
}

func TestStylesheetImportAfterCharsetAccepted(t *testing.T) {
	sheet := parseSheet(t, `@charset "UTF-8"; @import url("a.css"); p { color: red }`, Options{})
	var sawImport bool
	for _, r := range sheet.Rules {
		if r.Type == RuleImport {
			sawImport = true
		}
	}
	if !sawImport {
		t.Fatalf("expected import to be accepted after charset, got %+v", sheet.Rules)
	}
}

func TestStylesheetRuleIndexMonotonic(t *testing.T) {
	sheet := parseSheet(t, `p { color: red } div { color: blue } span { color: green }`, Options{})
	last := -1
	for _, r := range sheet.Rules {
		if r.Index <= last {
			t.Fatalf("rule index not strictly increasing: %d after %d", r.Index, last)
		}
		last = r.Index
	}
}

func TestStylesheetPendingImportLifecycle(t *testing.T) {
	sheet := parseSheet(t, `@import url("a.css"); p { color: red }`, Options{})
	if !sheet.HasPendingImports() {
		t.Fatalf("expected a pending import after parsing")
	}
	pending := sheet.NextPendingImport()
	if pending == nil {
		t.Fatalf("NextPendingImport returned nil despite HasPendingImports")
	}

	child, err := NewStylesheet(Options{Pool: sheet.Options.Pool, Level: CSS21})
	if err != OK {
		t.Fatalf("NewStylesheet(child): %v", err)
	}
	if err := sheet.RegisterImport(pending, child); err != OK {
		t.Fatalf("RegisterImport: %v", err)
	}
	if sheet.HasPendingImports() {
		t.Fatalf("expected no pending imports after registration")
	}
	if pending.ImportedSheet != child {
		t.Fatalf("ImportedSheet not wired to the registered child")
	}
}

func TestStylesheetEmptyInputProducesZeroRules(t *testing.T) {
	sheet := parseSheet(t, ``, Options{})
	if len(sheet.Rules) != 0 {
		t.Fatalf("got %d rules for empty input, want 0", len(sheet.Rules))
	}
}

func TestStylesheetWhitespaceOnlyProducesZeroRules(t *testing.T) {
	sheet := parseSheet(t, "  \n\t  <!-- -->  ", Options{})
	if len(sheet.Rules) != 0 {
		t.Fatalf("got %d rules for whitespace/CDO/CDC-only input, want 0", len(sheet.Rules))
	}
}

func TestStylesheetRejectsNonCSS21Level(t *testing.T) {
	_, err := NewStylesheet(Options{Level: CSS3})
	if err != BADPARM {
		t.Fatalf("got %v, want BADPARM for an unsupported language level", err)
	}
}
