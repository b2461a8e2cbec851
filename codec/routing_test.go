package codec

import (
	"testing"

	"github.com/xc6lx9/bitstream/chip"
)

func findRoutingTile(m *chip.Model) (y, x int) {
	for y := 0; y < m.YHeight; y++ {
		for x := 0; x < m.XWidth; x++ {
			if m.IsATX(chip.XRoutingCol, x) {
				if row, _ := m.IsInRow(y); row >= 0 {
					return y, x
				}
			}
		}
	}
	return -1, -1
}

func TestSwitchRoundTripSingleMinorForm(t *testing.T) {
	m := chip.NewXC6SLX9()
	y, x := findRoutingTile(m)
	if y < 0 {
		t.Fatal("no routing tile found")
	}
	p := m.SwBitPos()[0] // single-minor form (Minor == 20)
	idx := m.AddSwitch(y, x, p.From, p.To, p.Bidir)
	m.SetUsed(y, x, idx, true)

	buf := NewBuffer(m)
	diag := &Diagnostics{}
	WriteSwitches(buf, m, diag)
	if !diag.Empty() {
		t.Fatalf("unexpected diagnostics: %v", diag.Notes)
	}

	m2 := chip.NewXC6SLX9()
	if err := ExtractSwitches(m2, buf, diag); err != nil {
		t.Fatalf("ExtractSwitches: %v", err)
	}
	if m2.NumSwitches(y, x) != 1 {
		t.Fatalf("got %d switches, want 1", m2.NumSwitches(y, x))
	}
	sw := m2.Switch(y, x, 0)
	if !sw.Used() {
		t.Error("decoded switch should be used")
	}
	if m2.SwitchStr(y, x, 0, chip.SwitchFrom) != p.From || m2.SwitchStr(y, x, 0, chip.SwitchTo) != p.To {
		t.Errorf("got %s -> %s, want %s -> %s",
			m2.SwitchStr(y, x, 0, chip.SwitchFrom), m2.SwitchStr(y, x, 0, chip.SwitchTo), p.From, p.To)
	}
}

func TestSwitchRoundTripTwoMinorFormBidir(t *testing.T) {
	m := chip.NewXC6SLX9()
	y, x := findRoutingTile(m)
	var p chip.RoutingBitPos
	for _, cand := range m.SwBitPos() {
		if cand.Bidir {
			p = cand
			break
		}
	}
	if p.From == "" {
		t.Fatal("no bidirectional bit-position entry found")
	}
	idx := m.AddSwitch(y, x, p.From, p.To, true)
	m.SetUsed(y, x, idx, true)

	buf := NewBuffer(m)
	diag := &Diagnostics{}
	WriteSwitches(buf, m, diag)

	m2 := chip.NewXC6SLX9()
	if err := ExtractSwitches(m2, buf, diag); err != nil {
		t.Fatalf("ExtractSwitches: %v", err)
	}
	if m2.NumSwitches(y, x) != 1 || !m2.SwitchIsBidir(y, x, 0) {
		t.Fatalf("expected one bidirectional switch to round-trip")
	}
}

func TestSwitchWithNoBitPosEntryIsDiagnostic(t *testing.T) {
	m := chip.NewXC6SLX9()
	y, x := findRoutingTile(m)
	idx := m.AddSwitch(y, x, "NOSUCH.A0", "NOSUCH.B0", false)
	m.SetUsed(y, x, idx, true)

	buf := NewBuffer(m)
	diag := &Diagnostics{}
	WriteSwitches(buf, m, diag)
	if diag.Empty() {
		t.Fatal("expected a model-inconsistency diagnostic")
	}
	if diag.Notes[0].Kind != ModelInconsistency {
		t.Errorf("got kind %v, want ModelInconsistency", diag.Notes[0].Kind)
	}
	if !buf.AllZero() {
		t.Error("frame bits should be untouched when no bit-position entry matches")
	}
}

func TestExtractSwitchesUnusedSwitchNotEmitted(t *testing.T) {
	m := chip.NewXC6SLX9()
	buf := NewBuffer(m)
	diag := &Diagnostics{}
	if err := ExtractSwitches(m, buf, diag); err != nil {
		t.Fatalf("ExtractSwitches: %v", err)
	}
	for y := 0; y < m.YHeight; y++ {
		for x := 0; x < m.XWidth; x++ {
			if m.NumSwitches(y, x) != 0 {
				t.Errorf("expected no switches on an all-zero buffer, got %d at (%d,%d)", m.NumSwitches(y, x), y, x)
			}
		}
	}
}
