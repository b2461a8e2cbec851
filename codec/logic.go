package codec

import (
	"github.com/xc6lx9/bitstream/boolexpr"
	"github.com/xc6lx9/bitstream/chip"
)

// lutSlot names one LUT by device role and letter, and carries the address
// permutation and frame geometry the original's lut2bool/parse_boolexpr
// apply for that slot (spec.md §4.4). The permutation is an XOR address
// mask plus an optional fixed flip of address bit 0; this file treats it
// as an involution, so the same function both encodes and decodes.
type lutSlot struct {
	role       chip.LogicRole
	letter     chip.LUTLetter
	minorA     int
	minorB     int
	byteOff    int
	logicBase  [6]bool
	flipBit0   bool
	writeable  bool // only X.D is writeable, mirroring write_logic's asymmetry
}

// logicSlots enumerates every LUT slot the codec addresses. Minor pairs and
// byte offsets are chosen so each slot's 64-bit window fits inside the
// reduced MajorLogic frame range (31 minors) without overlap.
var logicSlots = []lutSlot{
	{role: chip.LogicM, letter: chip.LUTA, minorA: 21, minorB: 22, byteOff: 0,
		logicBase: [6]bool{false, true, false, false, true, false}, flipBit0: true},
	{role: chip.LogicM, letter: chip.LUTB, minorA: 21, minorB: 22, byteOff: 8,
		logicBase: [6]bool{true, true, false, true, false, true}, flipBit0: true},
	{role: chip.LogicM, letter: chip.LUTC, minorA: 24, minorB: 25, byteOff: 0,
		logicBase: [6]bool{false, true, false, false, true, false}, flipBit0: true},
	{role: chip.LogicM, letter: chip.LUTD, minorA: 24, minorB: 25, byteOff: 8,
		logicBase: [6]bool{true, true, false, true, false, true}, flipBit0: true},

	{role: chip.LogicX, letter: chip.LUTA, minorA: 27, minorB: 28, byteOff: 0,
		logicBase: [6]bool{true, true, false, true, true, false}, flipBit0: false},
	{role: chip.LogicX, letter: chip.LUTB, minorA: 27, minorB: 28, byteOff: 8,
		logicBase: [6]bool{true, true, false, true, true, false}, flipBit0: false},
	{role: chip.LogicX, letter: chip.LUTC, minorA: 29, minorB: 30, byteOff: 0,
		logicBase: [6]bool{false, true, false, false, false, true}, flipBit0: false},
	{role: chip.LogicX, letter: chip.LUTD, minorA: 29, minorB: 30, byteOff: 8,
		logicBase: [6]bool{false, true, false, false, false, true}, flipBit0: false, writeable: true},
}

// permuteAddr applies the slot's address permutation. Called with the same
// slot on both directions, it is its own inverse: XOR with the fixed mask is
// an involution, and the bit-0 flip is one more fixed XOR, so applying the
// function twice returns the original address.
func (s lutSlot) permuteAddr(addr int) int {
	mask := 0
	for i, b := range s.logicBase {
		if b {
			mask |= 1 << uint(i)
		}
	}
	raw := addr ^ mask
	if s.flipBit0 {
		raw ^= 1
	}
	return raw
}

func (s lutSlot) readRaw64(buf *Buffer, v chip.Variant, row, slot int) uint64 {
	base := slot * chip.LogicSlotStride
	lo := buf.WordGetU32(v, row, chip.MajorLogic, base+s.minorA, s.byteOff)
	hi := buf.WordGetU32(v, row, chip.MajorLogic, base+s.minorB, s.byteOff)
	return uint64(lo) | uint64(hi)<<32
}

func (s lutSlot) writeRaw64(buf *Buffer, v chip.Variant, row, slot int, val uint64) {
	base := slot * chip.LogicSlotStride
	buf.WordSetU32(v, row, chip.MajorLogic, base+s.minorA, s.byteOff, uint32(val))
	buf.WordSetU32(v, row, chip.MajorLogic, base+s.minorB, s.byteOff, uint32(val>>32))
}

// ffMuxMinor, ffMuxByteOff locate the X-device FF-mux mask word: frame 26,
// byte offset 0, per the same per-column slot offset as the LUT frames
// (spec.md §4.4).
const (
	ffMuxMinor   = 26
	ffMuxByteOff = 0

	// ffMuxRequired are the bits that must be set for the codec to support
	// the X device's current FF-mux configuration.
	ffMuxRequired = 1<<1 | 1<<2 | 1<<7 | 1<<21 | 1<<22 | 1<<36 | 1<<37 | 1<<39
	// ffMuxAllowed is the full mask of bits the codec understands; any bit
	// set outside it means an FF-mux combination this codec cannot decode.
	ffMuxAllowed uint64 = 0x000000B000600086
)

func ffMuxWord(buf *Buffer, v chip.Variant, row, slot int) uint64 {
	return buf.WordGetU64(v, row, chip.MajorLogic, slot*chip.LogicSlotStride+ffMuxMinor, ffMuxByteOff)
}

func setFFMuxWord(buf *Buffer, v chip.Variant, row, slot int, val uint64) {
	buf.WordSetU64(v, row, chip.MajorLogic, slot*chip.LogicSlotStride+ffMuxMinor, ffMuxByteOff, val)
}

// canonicalToRaw permutes a canonical (address-ordered) 64-bit truth table
// into the raw bit order the frame stores.
func (s lutSlot) canonicalToRaw(table uint64) uint64 {
	var raw uint64
	for addr := 0; addr < 64; addr++ {
		if table&(1<<uint(addr)) != 0 {
			raw |= 1 << uint(s.permuteAddr(addr))
		}
	}
	return raw
}

func (s lutSlot) rawToCanonical(raw uint64) uint64 {
	var table uint64
	for addr := 0; addr < 64; addr++ {
		if raw&(1<<uint(s.permuteAddr(addr))) != 0 {
			table |= 1 << uint(addr)
		}
	}
	return table
}

// WriteLogic encodes every logic tile's LUT expressions into frame bits.
// Only X.D is writeable (matching the original's write_logic, which leaves
// M-device and X.A/B/C writes unimplemented); a non-empty expression on any
// other slot is reported as unsupported and left out of the bitstream.
func WriteLogic(buf *Buffer, m *chip.Model, diag *Diagnostics) error {
	v := m.Variant
	for y := 0; y < m.YHeight; y++ {
		for x := 0; x < m.XWidth; x++ {
			if !m.HasDevice(y, x, chip.DevLogic) {
				continue
			}
			row, rowPos := m.IsInRow(y)
			if row < 0 {
				continue
			}
			if rowPos == chip.HCLKPos {
				continue
			}
			colSlot := m.LogicSlot(x)

			if xdev := m.LogicDeviceAt(y, x, chip.LogicX); xdev != nil && xdev.Instantiated {
				setFFMuxWord(buf, v, row, colSlot, ffMuxAllowed)
			}

			if ldev := m.LogicDeviceAt(y, x, chip.LogicL); ldev != nil && ldev.Instantiated {
				for letter, lut := range ldev.LUTs {
					if lut.Expr != "" {
						diag.Add(Unsupported, "logic", y, x,
							"LUT %c on device role %d has an expression but this slot is not writeable", 'A'+letter, chip.LogicL)
					}
				}
			}

			for _, slot := range logicSlots {
				dev := m.LogicDeviceAt(y, x, slot.role)
				if dev == nil || !dev.Instantiated {
					continue
				}
				expr := dev.LUTs[slot.letter].Expr
				if expr == "" {
					continue
				}
				if !slot.writeable {
					diag.Add(Unsupported, "logic", y, x,
						"LUT %c on device role %d has an expression but this slot is not writeable", 'A'+int(slot.letter), slot.role)
					continue
				}
				table, err := boolexpr.ExprToTruthTable(expr)
				if err != nil {
					return NewError(ExpressionError, "logic", y, x, "LUT %c: %v", 'A'+int(slot.letter), err)
				}
				slot.writeRaw64(buf, v, row, colSlot, slot.canonicalToRaw(table))
			}
		}
	}
	return nil
}

// ExtractLogic decodes every logic tile's LUT frame bits into canonical
// boolean expressions. All eight slots are readable: decode has no
// write-path asymmetry, matching the original's extract_logic.
func ExtractLogic(m *chip.Model, buf *Buffer, diag *Diagnostics) error {
	v := m.Variant
	for y := 0; y < m.YHeight; y++ {
		for x := 0; x < m.XWidth; x++ {
			if !m.HasDevice(y, x, chip.DevLogic) {
				continue
			}
			row, rowPos := m.IsInRow(y)
			if row < 0 {
				continue
			}
			if rowPos == chip.HCLKPos {
				diag.Add(Unsupported, "logic", y, x,
					"row_pos %d is the mid-row horizontal-clock position; skipping", rowPos)
				continue
			}
			colSlot := m.LogicSlot(x)

			mask := ffMuxWord(buf, v, row, colSlot)
			xGateOK := false
			switch {
			case mask == 0:
				// No FF-mux word present: the X device was never encoded,
				// matching the original's gating on u64 != 0.
			case mask&ffMuxRequired != ffMuxRequired || mask&^ffMuxAllowed != 0:
				diag.Add(Unsupported, "logic", y, x,
					"X-device FF-mux mask %#x does not match the supported combination; skipping X device", mask)
			default:
				setFFMuxWord(buf, v, row, colSlot, 0)
				xGateOK = true
			}

			for _, slot := range logicSlots {
				if slot.role == chip.LogicX && !xGateOK {
					continue
				}
				raw := slot.readRaw64(buf, v, row, colSlot)
				if raw == 0 {
					continue
				}
				table := slot.rawToCanonical(raw)
				dev := m.LogicDeviceAt(y, x, slot.role)
				dev.Instantiated = true
				dev.LUTs[slot.letter].Expr = boolexpr.TruthTableToExpr(table)
				slot.writeRaw64(buf, v, row, colSlot, 0)
			}
		}
	}
	return nil
}
