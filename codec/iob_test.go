package codec

import (
	"testing"

	"github.com/xc6lx9/bitstream/chip"
)

func TestIOBRoundTripOUsed(t *testing.T) {
	m := chip.NewXC6SLX9()
	buf := NewBuffer(m)
	y, x, _ := m.EnumIOB(0)
	dev := m.IOBDeviceAt(y, x)
	dev.Instantiated = true
	dev.OUsed = true

	diag := &Diagnostics{}
	WriteIOBs(buf, m, diag)
	if !diag.Empty() {
		t.Fatalf("unexpected diagnostics: %v", diag.Notes)
	}

	m2 := chip.NewXC6SLX9()
	ExtractIOBs(m2, buf, diag)
	dev2 := m2.IOBDeviceAt(y, x)
	if !dev2.Instantiated || !dev2.OUsed {
		t.Errorf("got %+v, want Instantiated=true OUsed=true", dev2)
	}
}

func TestIOBRoundTripIMuxI(t *testing.T) {
	m := chip.NewXC6SLX9()
	buf := NewBuffer(m)
	y, x, _ := m.EnumIOB(1)
	dev := m.IOBDeviceAt(y, x)
	dev.Instantiated = true
	dev.IMux = chip.IMuxI

	diag := &Diagnostics{}
	WriteIOBs(buf, m, diag)

	m2 := chip.NewXC6SLX9()
	ExtractIOBs(m2, buf, diag)
	dev2 := m2.IOBDeviceAt(y, x)
	if !dev2.Instantiated || dev2.IMux != chip.IMuxI {
		t.Errorf("got %+v, want Instantiated=true IMux=IMuxI", dev2)
	}
}

func TestIOBUnconfiguredLeavesZero(t *testing.T) {
	m := chip.NewXC6SLX9()
	buf := NewBuffer(m)
	diag := &Diagnostics{}
	WriteIOBs(buf, m, diag)
	if !buf.AllZero() {
		t.Error("no site is instantiated, so the buffer should stay all zero")
	}
}

func TestIOBUnrecognisedPatternIsDiagnostic(t *testing.T) {
	m := chip.NewXC6SLX9()
	buf := NewBuffer(m)
	_, _, name := m.EnumIOB(2)
	partIdx := m.FindIOBPartIndex(name)
	offset := iobOffset(m.Variant, partIdx)
	slice := buf.directSlice(offset, chip.IOBEntryLen)
	putU32(slice[0:4], 0x12345678)
	putU32(slice[4:8], 0)

	diag := &Diagnostics{}
	ExtractIOBs(m, buf, diag)
	if diag.Empty() {
		t.Fatal("expected a diagnostic for an unrecognised entry")
	}
	if diag.Notes[0].Kind != Unsupported {
		t.Errorf("got kind %v, want Unsupported", diag.Notes[0].Kind)
	}
}
