package chip

// iobSite is one entry of the per-chip I/O site table: a stable part index,
// its site name, and the tile it lives on.
type iobSite struct {
	name string
	y, x int
}

// initIOBSites lays out a handful of I/O sites along the left edge. Real
// XC6SLX9 has well over a hundred; this reduced model keeps just enough to
// exercise both supported IOB shapes plus an unrecognised-pattern case.
func (m *Model) initIOBSites(xWidth, yHeight int) {
	names := []string{"P1", "P2", "P3", "P4", "P5", "P6"}
	m.iobSites = make([]iobSite, len(names))
	for i, name := range names {
		y := TopIOTiles + i
		m.iobSites[i] = iobSite{name: name, y: y, x: 0}
		m.tiles[y][0].iob = &IOBDevice{}
	}
}

// NumIOBs returns the number of I/O sites on the given chip variant.
func (m *Model) NumIOBs() int {
	return len(m.iobSites)
}

// EnumIOB returns the i'th I/O site's tile coordinates and site name, or ""
// once i runs past the end of the table (mirroring fpga_enum_iob's
// NULL-terminated iteration style).
func (m *Model) EnumIOB(i int) (y, x int, name string) {
	if i < 0 || i >= len(m.iobSites) {
		return 0, 0, ""
	}
	s := m.iobSites[i]
	return s.y, s.x, s.name
}

// FindIOBPartIndex resolves a site name to its stable part index within the
// flat IOB entry table, or -1 if unknown.
func (m *Model) FindIOBPartIndex(name string) int {
	for i, s := range m.iobSites {
		if s.name == name {
			return i
		}
	}
	return -1
}

// IOBSiteName returns the site name for a part index, or "" if out of
// range.
func (m *Model) IOBSiteName(partIdx int) string {
	if partIdx < 0 || partIdx >= len(m.iobSites) {
		return ""
	}
	return m.iobSites[partIdx].name
}

// FindIOB resolves a site name back to tile coordinates, mirroring
// fpga_find_iob.
func (m *Model) FindIOB(name string) (y, x int, ok bool) {
	for _, s := range m.iobSites {
		if s.name == name {
			return s.y, s.x, true
		}
	}
	return 0, 0, false
}

// IOBDeviceAt returns the I/O device at (y, x), creating one has no
// meaning here since every I/O tile is pre-populated by NewXC6SLX9.
func (m *Model) IOBDeviceAt(y, x int) *IOBDevice {
	if y < 0 || y >= m.YHeight || x < 0 || x >= m.XWidth {
		return nil
	}
	return m.tiles[y][x].iob
}

// LogicDeviceAt returns the logic device of the given role at (y, x),
// creating it on first access.
func (m *Model) LogicDeviceAt(y, x int, role LogicRole) *LogicDevice {
	if y < 0 || y >= m.YHeight || x < 0 || x >= m.XWidth {
		return nil
	}
	t := &m.tiles[y][x]
	if t.logic[role] == nil {
		t.logic[role] = &LogicDevice{Role: role}
	}
	return t.logic[role]
}
