package chip

// RoutingBitPos is one entry of the switch-to-bits database (sw_bitpos[]):
// it binds a directed (From, To) wire pair to the 2+1 frame bits that
// enable it, per spec.md §3 and §4.5.
type RoutingBitPos struct {
	From, To string

	Minor      int // 20 selects the single-minor form
	TwoBitsO   int
	TwoBitsVal int // 0..3
	OneBitO    int
	Bidir      bool
}

// defaultBitPos is a representative slice of the real per-chip table: a
// handful of entries covering both the single-minor (minor==20) and
// two-minor forms, plus one bidirectional entry. A full per-pip table for
// the real chip has tens of thousands of entries and is exactly the kind of
// device-variant data spec.md §1 excludes from this codec's scope.
var defaultBitPos = []RoutingBitPos{
	{From: "LOGICIN.B1", To: "LOGICOUT.X1", Minor: 20, TwoBitsO: 10, TwoBitsVal: 0b10, OneBitO: 30},
	{From: "IMUX.C1", To: "LOGICIN.D1", Minor: 10, TwoBitsO: 6, TwoBitsVal: 0b11, OneBitO: 5, Bidir: true},
	{From: "GCLK.E0", To: "GCLK.F0", Minor: 14, TwoBitsO: 8, TwoBitsVal: 0b01, OneBitO: 3},
}

// SwBitPos returns the switch bit-position database. The table is
// read-only; both codec directions use it symmetrically.
func (m *Model) SwBitPos() []RoutingBitPos {
	return defaultBitPos
}

// NumBitPos is the number of entries in the bit-position database.
func (m *Model) NumBitPos() int {
	return len(defaultBitPos)
}
