package chip

import "testing"

func TestWireInternRoundTrip(t *testing.T) {
	m := NewXC6SLX9()
	idx := m.InternWire("LOGICIN.B1")
	if got := m.Wire2Str(idx); got != "LOGICIN.B1" {
		t.Errorf("got %q, want %q", got, "LOGICIN.B1")
	}
	if got := m.Str2Wire("LOGICIN.B1"); got != idx {
		t.Errorf("got %d, want %d", got, idx)
	}
}

func TestWireInternIsStable(t *testing.T) {
	m := NewXC6SLX9()
	a := m.InternWire("A")
	b := m.InternWire("B")
	a2 := m.InternWire("A")
	if a != a2 {
		t.Errorf("interning an existing name should return the same index: got %d and %d", a, a2)
	}
	if a == b {
		t.Error("distinct names should get distinct indices")
	}
}

func TestStr2WireUnknownReturnsNoWire(t *testing.T) {
	m := NewXC6SLX9()
	if got := m.Str2Wire("NEVER_INTERNED"); got != NoWire {
		t.Errorf("got %d, want NoWire", got)
	}
}
