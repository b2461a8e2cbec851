package codec

import "github.com/xc6lx9/bitstream/chip"

// maxSwitchesPerTile bounds the number of switches ExtractSwitches will
// record per tile, mirroring the original's fixed-size per-tile switch
// array (MAX_YX_SWITCHES-ish capacity, spec.md §4.5). A real bitstream
// never comes close; an input that would overflow it is treated as
// Unsupported rather than silently truncated.
const maxSwitchesPerTile = 1024

// readBits2 reads a 2-bit field starting at bit offset o within frame
// (row, major, minor).
func readBits2(buf *Buffer, v chip.Variant, row, major, minor, o int) int {
	val := 0
	if buf.BitGet(v, row, major, minor, o) {
		val |= 1
	}
	if buf.BitGet(v, row, major, minor, o+1) {
		val |= 2
	}
	return val
}

func writeBits2(buf *Buffer, v chip.Variant, row, major, minor, o, val int) {
	if val&1 != 0 {
		buf.BitSet(v, row, major, minor, o)
	} else {
		buf.BitClear(v, row, major, minor, o)
	}
	if val&2 != 0 {
		buf.BitSet(v, row, major, minor, o+1)
	} else {
		buf.BitClear(v, row, major, minor, o+1)
	}
}

// Minor 20 is the single-minor form: the two-bit selector occupies adjacent
// bit positions p.TwoBitsO/p.TwoBitsO+1 and the one-bit lives at p.OneBitO,
// all within the same frame. Every other entry is the two-minor form
// (spec.md §4.5): the selector is split across p.Minor (MSB) and p.Minor+1
// (LSB), both at bit position p.TwoBitsO/2, and the one-bit lives at
// p.Minor + (p.OneBitO & 1), position p.OneBitO/2. All minors are offset by
// the tile's routing-column slot so that two routing tiles sharing a
// configuration row address disjoint minors (chip.RoutingSlot,
// chip.RoutingSlotStride).

func bitposIsSet(buf *Buffer, v chip.Variant, row, slot int, p chip.RoutingBitPos) bool {
	base := slot * chip.RoutingSlotStride
	if p.Minor == 20 {
		minor := base + p.Minor
		twoBits := readBits2(buf, v, row, chip.MajorRouting, minor, p.TwoBitsO)
		oneBit := buf.BitGet(v, row, chip.MajorRouting, minor, p.OneBitO)
		return twoBits == p.TwoBitsVal && oneBit
	}
	pos := p.TwoBitsO / 2
	msb := buf.BitGet(v, row, chip.MajorRouting, base+p.Minor, pos)
	lsb := buf.BitGet(v, row, chip.MajorRouting, base+p.Minor+1, pos)
	twoBits := 0
	if msb {
		twoBits |= 2
	}
	if lsb {
		twoBits |= 1
	}
	oneMinor := base + p.Minor + (p.OneBitO & 1)
	oneBit := buf.BitGet(v, row, chip.MajorRouting, oneMinor, p.OneBitO/2)
	return twoBits == p.TwoBitsVal && oneBit
}

func bitposSetBits(buf *Buffer, v chip.Variant, row, slot int, p chip.RoutingBitPos) {
	base := slot * chip.RoutingSlotStride
	if p.Minor == 20 {
		minor := base + p.Minor
		writeBits2(buf, v, row, chip.MajorRouting, minor, p.TwoBitsO, p.TwoBitsVal)
		buf.BitSet(v, row, chip.MajorRouting, minor, p.OneBitO)
		return
	}
	pos := p.TwoBitsO / 2
	setBit(buf, v, row, base+p.Minor, pos, p.TwoBitsVal&2 != 0)
	setBit(buf, v, row, base+p.Minor+1, pos, p.TwoBitsVal&1 != 0)
	oneMinor := base + p.Minor + (p.OneBitO & 1)
	buf.BitSet(v, row, chip.MajorRouting, oneMinor, p.OneBitO/2)
}

func bitposClearBits(buf *Buffer, v chip.Variant, row, slot int, p chip.RoutingBitPos) {
	base := slot * chip.RoutingSlotStride
	if p.Minor == 20 {
		minor := base + p.Minor
		writeBits2(buf, v, row, chip.MajorRouting, minor, p.TwoBitsO, 0)
		buf.BitClear(v, row, chip.MajorRouting, minor, p.OneBitO)
		return
	}
	pos := p.TwoBitsO / 2
	buf.BitClear(v, row, chip.MajorRouting, base+p.Minor, pos)
	buf.BitClear(v, row, chip.MajorRouting, base+p.Minor+1, pos)
	oneMinor := base + p.Minor + (p.OneBitO & 1)
	buf.BitClear(v, row, chip.MajorRouting, oneMinor, p.OneBitO/2)
}

func setBit(buf *Buffer, v chip.Variant, row, minor, pos int, val bool) {
	if val {
		buf.BitSet(v, row, chip.MajorRouting, minor, pos)
	} else {
		buf.BitClear(v, row, chip.MajorRouting, minor, pos)
	}
}

// ExtractSwitches scans every routing-column tile against the bit-position
// database and records a used switch (and a one-switch net) for every entry
// whose bits are set. Exceeding maxSwitchesPerTile on any one tile is an
// Unsupported, fatal condition; the database itself has no per-tile
// direction that isn't representable, so a mismatch never occurs here the
// way it can in WriteSwitches.
func ExtractSwitches(m *chip.Model, buf *Buffer, diag *Diagnostics) error {
	v := m.Variant
	for y := 0; y < m.YHeight; y++ {
		for x := 0; x < m.XWidth; x++ {
			if !m.IsATX(chip.XRoutingCol, x) {
				continue
			}
			row, rowPos := m.IsInRow(y)
			if row < 0 || rowPos == chip.HCLKPos {
				continue
			}
			slot := m.RoutingSlot(x)
			count := 0
			for _, p := range m.SwBitPos() {
				if !bitposIsSet(buf, v, row, slot, p) {
					continue
				}
				if count >= maxSwitchesPerTile {
					return NewError(Unsupported, "routing", y, x,
						"tile exceeds the %d-switch capacity", maxSwitchesPerTile)
				}
				idx := m.AddSwitch(y, x, p.From, p.To, p.Bidir)
				m.SetUsed(y, x, idx, true)
				net := m.NetNew()
				m.NetAddSwitch(net, y, x, idx)
				bitposClearBits(buf, v, row, slot, p)
				count++
			}
		}
	}
	return nil
}

// WriteSwitches encodes every used switch on every routing-column tile back
// into frame bits, looking up each switch's (From, To) pair in the
// bit-position database. A used switch with no matching entry is a model
// inconsistency: the device model describes a connection the frame format
// has no bits for. It is recorded as a diagnostic and nothing is written
// for that switch; the tile's other used switches are still encoded.
func WriteSwitches(buf *Buffer, m *chip.Model, diag *Diagnostics) {
	v := m.Variant
	for y := 0; y < m.YHeight; y++ {
		for x := 0; x < m.XWidth; x++ {
			if !m.IsATX(chip.XRoutingCol, x) {
				continue
			}
			row, rowPos := m.IsInRow(y)
			if row < 0 || rowPos == chip.HCLKPos {
				continue
			}
			slot := m.RoutingSlot(x)
			for i := 0; i < m.NumSwitches(y, x); i++ {
				sw := m.Switch(y, x, i)
				if sw == nil || !sw.Used() {
					continue
				}
				fromName := m.Wire2Str(sw.From)
				toName := m.Wire2Str(sw.To)
				p, ok := lookupBitPos(m, fromName, toName)
				if !ok {
					diag.Add(ModelInconsistency, "routing", y, x,
						"used switch %s -> %s has no bit-position entry", fromName, toName)
					continue
				}
				bitposSetBits(buf, v, row, slot, p)
			}
		}
	}
}

func lookupBitPos(m *chip.Model, fromName, toName string) (chip.RoutingBitPos, bool) {
	for _, p := range m.SwBitPos() {
		if p.From == fromName && p.To == toName {
			return p, true
		}
		if p.Bidir && p.From == toName && p.To == fromName {
			return p, true
		}
	}
	return chip.RoutingBitPos{}, false
}
