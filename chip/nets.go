package chip

// NetSwitch identifies one switch contributing to a net.
type NetSwitch struct {
	Y, X int
	Idx  int
}

// Net is a set of switches the decoder believes form one electrical net.
// The codec only ever creates single-switch nets (spec.md §4.5); richer net
// construction belongs to the routing/optimisation layers this module does
// not implement.
type Net struct {
	Switches []NetSwitch
}

// NumNets reports how many nets the model currently holds.
func (m *Model) NumNets() int {
	return len(m.nets)
}

// NetNew creates an empty net and returns its index, mirroring fnet_new.
func (m *Model) NetNew() int {
	m.nets = append(m.nets, Net{})
	return len(m.nets) - 1
}

// NetAddSwitch appends a switch reference to a net, mirroring fnet_add_sw.
func (m *Model) NetAddSwitch(netIdx, y, x, swIdx int) {
	m.nets[netIdx].Switches = append(m.nets[netIdx].Switches, NetSwitch{Y: y, X: x, Idx: swIdx})
}

// Nets returns the model's nets for inspection (tests, cmd/bitview).
func (m *Model) Nets() []Net {
	return m.nets
}
