package css

import (
	"testing"

	"github.com/lukehoban/cssengine/strpool"
)

func declStyle(t *testing.T, src string) *Rule {
	t.Helper()
	sheet := parseSheet(t, `x { `+src+` }`, Options{})
	if len(sheet.Rules) != 1 {
		t.Fatalf("got %d rules, want 1", len(sheet.Rules))
	}
	return sheet.Rules[0]
}

func TestPropertyWidthLength(t *testing.T) {
	r := declStyle(t, "width: 10px;")
	if r.Style.Len() != 3 {
		t.Fatalf("got %d words, want 3 (opv, fixed, unit)", r.Style.Len())
	}
	op := OPV(r.Style.Words[0])
	if op.Opcode() != OpWidth {
		t.Fatalf("opcode = %v, want OpWidth", op.Opcode())
	}
	_, v := UnpackValue(op.Value())
	if v != valSet {
		t.Fatalf("value discriminant = %v, want valSet", v)
	}
	fixed := Fixed(r.Style.Words[1])
	if fixed.Float() != 10 {
		t.Fatalf("length = %v, want 10", fixed.Float())
	}
	if Unit(r.Style.Words[2]) != UnitPX {
		t.Fatalf("unit = %v, want UnitPX", Unit(r.Style.Words[2]))
	}
}

func TestPropertyWidthAuto(t *testing.T) {
	r := declStyle(t, "width: auto;")
	op := OPV(r.Style.Words[0])
	_, v := UnpackValue(op.Value())
	if v != valAuto {
		t.Fatalf("value discriminant = %v, want valAuto", v)
	}
}

func TestPropertyWidthRejectsNegative(t *testing.T) {
	r := declStyle(t, "width: -5px; height: 3px;")
	if r.Style.Len() == 0 {
		t.Fatalf("expected height declaration to survive width's rejection")
	}
	if OPV(r.Style.Words[0]).Opcode() != OpHeight {
		t.Fatalf("opcode = %v, want OpHeight (width should have been discarded)", OPV(r.Style.Words[0]).Opcode())
	}
}

func TestPropertyPaddingRejectsNegative(t *testing.T) {
	r := declStyle(t, "padding-top: -1px;")
	if r.Style.Len() != 0 {
		t.Fatalf("expected invalid negative padding to produce no bytecode")
	}
}

func TestPropertyColorNamed(t *testing.T) {
	r := declStyle(t, "color: red;")
	op := OPV(r.Style.Words[0])
	if op.Opcode() != OpColor {
		t.Fatalf("opcode = %v, want OpColor", op.Opcode())
	}
	col := Colour(r.Style.Words[1])
	if col != RGBA(0xff, 0, 0, 0xff) {
		t.Fatalf("colour = %#x, want red", uint32(col))
	}
}

func TestPropertyColorHexShort(t *testing.T) {
	r := declStyle(t, "color: #f00;")
	col := Colour(r.Style.Words[1])
	if col != RGBA(0xff, 0, 0, 0xff) {
		t.Fatalf("colour = %#x, want red", uint32(col))
	}
}

func TestPropertyColorHexLong(t *testing.T) {
	r := declStyle(t, "color: #ff0000;")
	col := Colour(r.Style.Words[1])
	if col != RGBA(0xff, 0, 0, 0xff) {
		t.Fatalf("colour = %#x, want red", uint32(col))
	}
}

func TestPropertyColorFunctionalRGB(t *testing.T) {
	r := declStyle(t, "color: rgb(255, 0, 0);")
	col := Colour(r.Style.Words[1])
	if col != RGBA(0xff, 0, 0, 0xff) {
		t.Fatalf("colour = %#x, want red", uint32(col))
	}
}

func TestPropertyColorFunctionalPercent(t *testing.T) {
	r := declStyle(t, "color: rgb(100%, 0%, 0%);")
	col := Colour(r.Style.Words[1])
	if col != RGBA(0xff, 0, 0, 0xff) {
		t.Fatalf("colour = %#x, want red", uint32(col))
	}
}

func TestPropertyColorInvalidDiscarded(t *testing.T) {
	r := declStyle(t, "color: notacolor; width: 1px;")
	if OPV(r.Style.Words[0]).Opcode() != OpWidth {
		t.Fatalf("expected width to survive, color to be discarded")
	}
}

func TestPropertyImportantFlag(t *testing.T) {
	r := declStyle(t, "color: red !important;")
	if !OPV(r.Style.Words[0]).Important() {
		t.Fatalf("expected important flag")
	}
}

func TestPropertyInheritKeyword(t *testing.T) {
	r := declStyle(t, "color: inherit;")
	op := OPV(r.Style.Words[0])
	if !op.Inherit() {
		t.Fatalf("expected inherit flag")
	}
	if r.Style.Len() != 1 {
		t.Fatalf("inherit should produce no operand words, got %d total words", r.Style.Len())
	}
}

func TestPropertyDisplayEnum(t *testing.T) {
	r := declStyle(t, "display: block;")
	op := OPV(r.Style.Words[0])
	if op.Opcode() != OpDisplay {
		t.Fatalf("opcode = %v, want OpDisplay", op.Opcode())
	}
	if r.Style.Len() != 1 {
		t.Fatalf("enum property should produce no operand words")
	}
}

func TestPropertyFontFamilyList(t *testing.T) {
	pool := strpool.New()
	r := declStyle2(t, pool, `font-family: "Helvetica Neue", Arial, sans-serif;`)
	op := OPV(r.Style.Words[0])
	if op.Opcode() != OpFontFamily {
		t.Fatalf("opcode = %v, want OpFontFamily", op.Opcode())
	}
	rd := NewReader(r.Style)
	rd.OPV()
	var names []string
	for {
		marker, ok := rd.Word()
		if !ok || uint16(marker) == ListItemEnd {
			break
		}
		h, _ := rd.Handle()
		names = append(names, strpool.Data(h))
	}
	want := []string{"Helvetica Neue", "Arial", "sans-serif"}
	if len(names) != len(want) {
		t.Fatalf("got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("got %v, want %v", names, want)
		}
	}
}

func declStyle2(t *testing.T, pool *strpool.Pool, src string) *Rule {
	t.Helper()
	sheet := parseSheet(t, `x { `+src+` }`, Options{Pool: pool})
	return sheet.Rules[0]
}

func TestPropertyMarginShorthandOneValue(t *testing.T) {
	r := declStyle(t, "margin: 5px;")
	count := 0
	rd := NewReader(r.Style)
	for !rd.Done() {
		op, ok := rd.OPV()
		if !ok {
			break
		}
		if op.Opcode() != OpMarginTRBL {
			t.Fatalf("opcode = %v, want OpMarginTRBL", op.Opcode())
		}
		_, v := UnpackValue(op.Value())
		if v != valSet {
			t.Fatalf("value = %v, want valSet", v)
		}
		rd.Fixed()
		rd.Word()
		count++
	}
	if count != 4 {
		t.Fatalf("got %d margin OPVs, want 4 (one per side)", count)
	}
}

func TestPropertyMarginShorthandTwoValues(t *testing.T) {
	r := declStyle(t, "margin: 1px 2px;")
	sides := make([]Side, 0, 4)
	lens := make([]float64, 0, 4)
	rd := NewReader(r.Style)
	for !rd.Done() {
		op, ok := rd.OPV()
		if !ok {
			break
		}
		side, _ := UnpackValue(op.Value())
		sides = append(sides, side)
		f, _ := rd.Fixed()
		rd.Word()
		lens = append(lens, f.Float())
	}
	if len(lens) != 4 {
		t.Fatalf("got %d values, want 4", len(lens))
	}
	// top/bottom = 1px, right/left = 2px.
	want := map[Side]float64{SideTop: 1, SideRight: 2, SideBottom: 1, SideLeft: 2}
	for i, s := range sides {
		if lens[i] != want[s] {
			t.Fatalf("side %v = %v, want %v", s, lens[i], want[s])
		}
	}
}

func TestPropertyBorderShorthandExpandsLonghands(t *testing.T) {
	r := declStyle(t, "border: 1px solid red;")
	var opcodes []Opcode
	rd := NewReader(r.Style)
	for !rd.Done() {
		op, ok := rd.OPV()
		if !ok {
			break
		}
		opcodes = append(opcodes, op.Opcode())
		switch op.Opcode() {
		case OpBorderTRBLWidth:
			rd.Fixed()
			rd.Word()
		case OpBorderTRBLColor:
			rd.Word()
		}
	}
	wantSet := map[Opcode]bool{OpBorderTRBLWidth: true, OpBorderTRBLStyle: true, OpBorderTRBLColor: true}
	got := map[Opcode]bool{}
	for _, op := range opcodes {
		got[op] = true
	}
	for op := range wantSet {
		if !got[op] {
			t.Fatalf("missing longhand opcode %v in expansion", op)
		}
	}
}
