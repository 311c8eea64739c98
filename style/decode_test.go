package style

import (
	"testing"

	"github.com/lukehoban/cssengine/css"
)

func TestDecodeStyleSimpleColor(t *testing.T) {
	var s css.Style
	s.Append(uint32(css.BuildOPV(css.OpColor, 0, css.ValSet<<2)))
	s.Append(uint32(css.RGBA(0xff, 0, 0, 0xff)))

	decls := decodeStyle(s)
	if len(decls) != 1 {
		t.Fatalf("got %d declarations, want 1", len(decls))
	}
	d := decls[0]
	if d.Opcode != css.OpColor {
		t.Fatalf("opcode = %v, want OpColor", d.Opcode)
	}
	if !d.Value.Set || d.Value.Colour != css.RGBA(0xff, 0, 0, 0xff) {
		t.Fatalf("value = %+v, want red", d.Value)
	}
}

func TestDecodeStyleInheritFlag(t *testing.T) {
	var s css.Style
	s.Append(uint32(css.BuildOPV(css.OpColor, css.FlagInherit, 0)))

	decls := decodeStyle(s)
	if len(decls) != 1 {
		t.Fatalf("got %d declarations, want 1", len(decls))
	}
	if !decls[0].Value.Inherit || !decls[0].Value.Set {
		t.Fatalf("value = %+v, want Set+Inherit", decls[0].Value)
	}
}

func TestDecodeStyleImportantFlagPreserved(t *testing.T) {
	var s css.Style
	s.Append(uint32(css.BuildOPV(css.OpColor, css.FlagImportant, css.ValSet<<2)))
	s.Append(uint32(css.RGBA(0, 0xff, 0, 0xff)))

	decls := decodeStyle(s)
	if !decls[0].Important {
		t.Fatalf("expected Important to survive decode")
	}
}

func TestDecodeStyleMultipleDeclarationsInOrder(t *testing.T) {
	var s css.Style
	s.Append(uint32(css.BuildOPV(css.OpColor, 0, css.ValSet<<2)))
	s.Append(uint32(css.RGBA(0xff, 0, 0, 0xff)))
	s.Append(uint32(css.BuildOPV(css.OpDisplay, 0, 1<<2)))

	decls := decodeStyle(s)
	if len(decls) != 2 {
		t.Fatalf("got %d declarations, want 2", len(decls))
	}
	if decls[0].Opcode != css.OpColor || decls[1].Opcode != css.OpDisplay {
		t.Fatalf("got opcodes %v, %v in wrong order", decls[0].Opcode, decls[1].Opcode)
	}
}

func TestWinnerSetOffersHighestCascade(t *testing.T) {
	w := newWinnerSet()
	low := candidate{rank: 0, spec: css.NewSpecificity(0, 0, 0, 1), sheetIdx: 0, ruleIdx: 0, value: Value{Set: true, Enum: 1}}
	high := candidate{rank: 0, spec: css.NewSpecificity(0, 1, 0, 0), sheetIdx: 0, ruleIdx: 1, value: Value{Set: true, Enum: 2}}
	w.offer(css.OpDisplay, css.SideTop, low)
	w.offer(css.OpDisplay, css.SideTop, high)

	cs := New()
	w.writeInto(cs)
	if cs.Display().Enum != 2 {
		t.Fatalf("Display().Enum = %v, want 2 (higher specificity should win)", cs.Display().Enum)
	}
}

func TestCascadeLessOrderOfAppearanceTieBreak(t *testing.T) {
	a := candidate{rank: 3, spec: css.NewSpecificity(0, 0, 0, 1), sheetIdx: 0, ruleIdx: 0}
	b := candidate{rank: 3, spec: css.NewSpecificity(0, 0, 0, 1), sheetIdx: 0, ruleIdx: 1}
	if !cascadeLess(a, b) {
		t.Fatalf("expected earlier rule (a) to lose to later rule (b) at equal rank/specificity")
	}
	if cascadeLess(b, a) {
		t.Fatalf("expected later rule (b) not to lose to earlier rule (a)")
	}
}
