package codec

import "github.com/xc6lx9/bitstream/chip"

// BitPos4 names a single frame bit by its full (row, major, minor, bit)
// address.
type BitPos4 struct {
	Row, Major, Minor, Bit int
}

// defaultBits is the fixed set of frame bits that must always be 1 in a
// valid bitstream, independent of the configured design (spec.md §4.2).
var defaultBits = []BitPos4{
	{Row: 0, Major: chip.MajorMisc, Minor: 3, Bit: 66},
	{Row: 0, Major: chip.MajorLogic, Minor: 23, Bit: 1034},
	{Row: 0, Major: chip.MajorLogic, Minor: 23, Bit: 1035},
	{Row: 0, Major: chip.MajorLogic, Minor: 23, Bit: 1039},
	{Row: 2, Major: chip.MajorMisc, Minor: 3, Bit: 66},
}

// ApplyDefaults sets every default bit, the first step of write_model.
func ApplyDefaults(buf *Buffer, v chip.Variant) {
	for _, p := range defaultBits {
		buf.BitSet(v, p.Row, p.Major, p.Minor, p.Bit)
	}
}

// CheckAndClearDefaults requires every default bit to be 1, clearing each as
// it is confirmed, and fails InvalidBitstream on the first one found clear.
// Clearing as it goes (rather than after checking all) matches the
// original's single pass and the residual-zero invariant: a decode that
// fails partway leaves the buffer exactly as it found it plus whatever
// prefix of default bits were already confirmed and cleared.
func CheckAndClearDefaults(buf *Buffer, v chip.Variant) error {
	for i, p := range defaultBits {
		if !buf.BitGet(v, p.Row, p.Major, p.Minor, p.Bit) {
			return NewError(InvalidBitstream, "default bit table", -1, -1,
				"default bit %d (row=%d major=%d minor=%d bit=%d) is clear", i, p.Row, p.Major, p.Minor, p.Bit)
		}
		buf.BitClear(v, p.Row, p.Major, p.Minor, p.Bit)
	}
	return nil
}
