package codec

import (
	"testing"

	"github.com/xc6lx9/bitstream/boolexpr"
	"github.com/xc6lx9/bitstream/chip"
)

func findLogicTile(m *chip.Model) (y, x int) {
	for y := 0; y < m.YHeight; y++ {
		for x := 0; x < m.XWidth; x++ {
			if m.HasDevice(y, x, chip.DevLogic) {
				return y, x
			}
		}
	}
	return -1, -1
}

func TestLogicXDWriteableRoundTrip(t *testing.T) {
	m := chip.NewXC6SLX9()
	y, x := findLogicTile(m)
	if y < 0 {
		t.Fatal("no logic tile found")
	}
	dev := m.LogicDeviceAt(y, x, chip.LogicX)
	dev.Instantiated = true
	dev.SetLUT(chip.LUTD, "A1*A2")

	buf := NewBuffer(m)
	diag := &Diagnostics{}
	if err := WriteLogic(buf, m, diag); err != nil {
		t.Fatalf("WriteLogic: %v", err)
	}
	if !diag.Empty() {
		t.Fatalf("unexpected diagnostics: %v", diag.Notes)
	}

	m2 := chip.NewXC6SLX9()
	if err := ExtractLogic(m2, buf, diag); err != nil {
		t.Fatalf("ExtractLogic: %v", err)
	}
	dev2 := m2.LogicDeviceAt(y, x, chip.LogicX)
	if dev2.LUTs[chip.LUTD].Expr == "" {
		t.Fatal("expected X.D to decode back to a non-empty expression")
	}

	got, err := boolexpr.ExprToTruthTable(dev2.LUTs[chip.LUTD].Expr)
	if err != nil {
		t.Fatalf("decoded expression did not parse: %v", err)
	}
	want, err := boolexpr.ExprToTruthTable("A1*A2")
	if err != nil {
		t.Fatalf("reference expression did not parse: %v", err)
	}
	if got != want {
		t.Errorf("truth table mismatch: got %#x, want %#x", got, want)
	}
}

func TestLogicNonWriteableSlotIsDiagnostic(t *testing.T) {
	m := chip.NewXC6SLX9()
	y, x := findLogicTile(m)
	dev := m.LogicDeviceAt(y, x, chip.LogicM)
	dev.Instantiated = true
	dev.SetLUT(chip.LUTA, "A1")

	buf := NewBuffer(m)
	diag := &Diagnostics{}
	if err := WriteLogic(buf, m, diag); err != nil {
		t.Fatalf("WriteLogic: %v", err)
	}
	if diag.Empty() {
		t.Fatal("expected a diagnostic: M.A is not writeable")
	}
	if diag.Notes[0].Kind != Unsupported {
		t.Errorf("got kind %v, want Unsupported", diag.Notes[0].Kind)
	}
}

func TestLogicBadExpressionIsFatal(t *testing.T) {
	m := chip.NewXC6SLX9()
	y, x := findLogicTile(m)
	dev := m.LogicDeviceAt(y, x, chip.LogicX)
	dev.Instantiated = true
	dev.SetLUT(chip.LUTD, "A1 &&")

	buf := NewBuffer(m)
	diag := &Diagnostics{}
	err := WriteLogic(buf, m, diag)
	if err == nil {
		t.Fatal("expected an ExpressionError")
	}
	codecErr, ok := err.(*Error)
	if !ok || codecErr.Kind != ExpressionError {
		t.Errorf("got %v, want *Error{Kind: ExpressionError}", err)
	}
}

func TestLogicSkipsHCLKRowPosition(t *testing.T) {
	m := chip.NewXC6SLX9()
	var hclkY, hclkX, hclkRow int = -1, -1, -1
	for y := 0; y < m.YHeight && hclkY < 0; y++ {
		for x := 0; x < m.XWidth; x++ {
			if !m.HasDevice(y, x, chip.DevLogic) {
				continue
			}
			if row, rowPos := m.IsInRow(y); rowPos == chip.HCLKPos {
				hclkY, hclkX, hclkRow = y, x, row
				break
			}
		}
	}
	if hclkY < 0 {
		t.Fatal("no logic-column tile found at the HCLK row position")
	}

	buf := NewBuffer(m)
	buf.WordSetU32(m.Variant, hclkRow, chip.MajorLogic, 21, 0, 0xFFFFFFFF)
	buf.WordSetU32(m.Variant, hclkRow, chip.MajorLogic, 22, 0, 0xFFFFFFFF)

	diag := &Diagnostics{}
	if err := ExtractLogic(m, buf, diag); err != nil {
		t.Fatalf("ExtractLogic: %v", err)
	}
	dev := m.LogicDeviceAt(hclkY, hclkX, chip.LogicM)
	if dev.Instantiated {
		t.Error("HCLK row_pos tile should not be decoded")
	}
	if buf.WordGetU32(m.Variant, hclkRow, chip.MajorLogic, 21, 0) != 0xFFFFFFFF {
		t.Error("frame bytes at the HCLK row should be left untouched")
	}
}

func TestLogicPermutationIsInvolution(t *testing.T) {
	for _, slot := range logicSlots {
		for addr := 0; addr < 64; addr++ {
			if slot.permuteAddr(slot.permuteAddr(addr)) != addr {
				t.Fatalf("slot %v: permutation is not an involution at addr %d", slot, addr)
			}
		}
	}
}
