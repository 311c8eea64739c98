package strpool

import "testing"

func TestInternIdentity(t *testing.T) {
	p := New()
	a := p.Intern("color")
	b := p.Intern("color")
	if !Equal(a, b) {
		t.Fatalf("expected equal handles for repeated intern of same content")
	}
	c := p.Intern("Color")
	if Equal(a, c) {
		t.Fatalf("expected distinct handles for different-case content")
	}
}

func TestInternRoundTrip(t *testing.T) {
	tests := []string{"", "p", "background-color", "a non-trivial string with spaces"}
	for _, s := range tests {
		p := New()
		h := p.Intern(s)
		if Data(h) != s {
			t.Errorf("Data(Intern(%q)) = %q", s, Data(h))
		}
		if Len(h) != len(s) {
			t.Errorf("Len(Intern(%q)) = %d, want %d", s, Len(h), len(s))
		}
	}
}

func TestRefcountRelease(t *testing.T) {
	p := New()
	h := p.Intern("x")
	p.Unref(h)
	// Entry should be gone; a fresh intern gets a distinct entry but equal content.
	h2 := p.Intern("x")
	if Data(h2) != "x" {
		t.Fatalf("expected re-intern to still produce correct data")
	}
}

func TestCaselessEqual(t *testing.T) {
	p := New()
	a := p.Intern("PX")
	b := p.InternLower("px")
	if Equal(a, b) {
		t.Fatalf("different-case handles should not be identity-equal")
	}
	if !CaselessEqual(a, b) {
		t.Fatalf("expected CaselessEqual(PX, px) to hold")
	}
}

func TestZeroHandle(t *testing.T) {
	var h Handle
	if h.Valid() {
		t.Fatalf("zero Handle should not be valid")
	}
	if Data(h) != "" {
		t.Fatalf("zero Handle should have empty data")
	}
}
