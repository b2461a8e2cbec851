package codec

import (
	"testing"

	"github.com/xc6lx9/bitstream/chip"
)

func TestBufferBitRoundTrip(t *testing.T) {
	m := chip.NewXC6SLX9()
	buf := NewBuffer(m)

	if !buf.AllZero() {
		t.Fatal("freshly allocated buffer should be all zero")
	}

	buf.BitSet(m.Variant, 1, chip.MajorLogic, 5, 100)
	if !buf.BitGet(m.Variant, 1, chip.MajorLogic, 5, 100) {
		t.Error("bit should read back set")
	}
	if buf.AllZero() {
		t.Error("buffer should no longer be all zero")
	}

	buf.BitClear(m.Variant, 1, chip.MajorLogic, 5, 100)
	if buf.BitGet(m.Variant, 1, chip.MajorLogic, 5, 100) {
		t.Error("bit should read back clear")
	}
	if !buf.AllZero() {
		t.Error("buffer should be all zero again")
	}
}

func TestBufferWordRoundTrip(t *testing.T) {
	m := chip.NewXC6SLX9()
	buf := NewBuffer(m)

	buf.WordSetU32(m.Variant, 0, chip.MajorIOB, 0, 16, 0xDEADBEEF)
	if got := buf.WordGetU32(m.Variant, 0, chip.MajorIOB, 0, 16); got != 0xDEADBEEF {
		t.Errorf("got %#x, want 0xDEADBEEF", got)
	}

	buf.WordSetU64(m.Variant, 0, chip.MajorLogic, 1, 0, 0x0123456789ABCDEF)
	if got := buf.WordGetU64(m.Variant, 0, chip.MajorLogic, 1, 0); got != 0x0123456789ABCDEF {
		t.Errorf("got %#x, want 0x0123456789abcdef", got)
	}
}

func TestRowLocalByteOffsetRejectsHCLK(t *testing.T) {
	if _, err := RowLocalByteOffset(chip.HCLKPos); err == nil {
		t.Fatal("expected an error at row_pos == HCLKPos")
	} else if codecErr, ok := err.(*Error); !ok || codecErr.Kind != InvalidBitstream {
		t.Errorf("got %v, want *Error{Kind: InvalidBitstream}", err)
	}
}

func TestRowLocalByteOffsetBelowAndAboveHCLK(t *testing.T) {
	below, err := RowLocalByteOffset(chip.HCLKPos - 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := (chip.HCLKPos - 1) * 8; below != want {
		t.Errorf("got %d, want %d", below, want)
	}

	above, err := RowLocalByteOffset(chip.HCLKPos + 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := chip.HCLKPos*8 + chip.HCLKBytes; above != want {
		t.Errorf("got %d, want %d", above, want)
	}
}

func TestFrameOffsetsDoNotOverlap(t *testing.T) {
	v := chip.XC6SLX9
	seen := map[int]string{}
	for row := 0; row < chip.XC6SLX9Rows; row++ {
		for major := 0; major < 4; major++ {
			for minor := 0; minor < chip.MinorsInMajor(v, major); minor++ {
				off := frameOffset(v, row, major, minor)
				key := off
				label := "row"
				if prev, ok := seen[key]; ok {
					t.Fatalf("offset %d used by both %s and row=%d major=%d minor=%d", off, prev, row, major, minor)
				}
				seen[key] = label
			}
		}
	}
}
