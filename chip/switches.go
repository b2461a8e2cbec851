package chip

// Switch flag bits, matching SWITCH_USED/SWITCH_BIDIRECTIONAL from
// model.h.
const (
	SwitchBidirectional = 1 << 30
	SwitchUsed          = 1 << 31
)

// Direction selects which end of a switch SwitchStr names.
type Direction int

const (
	SwitchFrom Direction = iota
	SwitchTo
)

// Switch is a single directed (or bidirectional) routing connection between
// two named wires on a tile, per spec.md §3.
type Switch struct {
	From, To int // interned wire indices
	Flags    int
}

func (s *Switch) Used() bool          { return s.Flags&SwitchUsed != 0 }
func (s *Switch) Bidirectional() bool { return s.Flags&SwitchBidirectional != 0 }

// NoSwitch marks a failed switch lookup.
const NoSwitch = -1

// AddSwitch appends a new switch to the tile at (y, x) and returns its
// index. bidir marks the switch as SWITCH_BIDIRECTIONAL.
func (m *Model) AddSwitch(y, x int, from, to string, bidir bool) int {
	fromIdx := m.wires.intern(from)
	toIdx := m.wires.intern(to)
	sw := Switch{From: fromIdx, To: toIdx}
	if bidir {
		sw.Flags |= SwitchBidirectional
	}
	m.tiles[y][x].switches = append(m.tiles[y][x].switches, sw)
	return len(m.tiles[y][x].switches) - 1
}

// NumSwitches returns the number of switches recorded on tile (y, x).
func (m *Model) NumSwitches(y, x int) int {
	return len(m.tiles[y][x].switches)
}

// Switch returns a pointer to the tile's i'th switch for direct flag
// mutation (SetUsed etc.), mirroring tile->switches[idx] in the original.
func (m *Model) Switch(y, x, idx int) *Switch {
	if idx < 0 || idx >= len(m.tiles[y][x].switches) {
		return nil
	}
	return &m.tiles[y][x].switches[idx]
}

// SetUsed sets or clears the SWITCH_USED flag on a tile's switch.
func (m *Model) SetUsed(y, x, idx int, used bool) {
	sw := m.Switch(y, x, idx)
	if sw == nil {
		return
	}
	if used {
		sw.Flags |= SwitchUsed
	} else {
		sw.Flags &^= SwitchUsed
	}
}

// SwitchLookup finds the index of the switch on tile (y, x) connecting
// fromName to toName, or NoSwitch.
func (m *Model) SwitchLookup(y, x int, fromName, toName string) int {
	from := m.wires.lookup(fromName)
	to := m.wires.lookup(toName)
	if from == NoWire || to == NoWire {
		return NoSwitch
	}
	for i, sw := range m.tiles[y][x].switches {
		if sw.From == from && sw.To == to {
			return i
		}
	}
	return NoSwitch
}

// SwitchStr names one end of a tile's switch.
func (m *Model) SwitchStr(y, x, idx int, dir Direction) string {
	sw := m.Switch(y, x, idx)
	if sw == nil {
		return ""
	}
	if dir == SwitchFrom {
		return m.Wire2Str(sw.From)
	}
	return m.Wire2Str(sw.To)
}

// SwitchIsBidir reports whether the tile's switch at idx is itself
// bidirectional.
func (m *Model) SwitchIsBidir(y, x, idx int) bool {
	sw := m.Switch(y, x, idx)
	return sw != nil && sw.Bidirectional()
}
