package chip

// Column/row classification flags, mirroring the is_atx/is_aty predicates
// the codec consumes from the device-model collaborator. Multiple checks
// are combined with OR logic, same as the original.
const (
	XRoutingCol = 1 << iota
	XFabricLogicCol
	XCenterLogicCol
	XFabricLogicXMCol
)

const (
	YRowHorizAxSymm = 1 << iota
	YChipHorizRegs
)

// DeviceKind enumerates the device categories a tile can carry.
type DeviceKind int

const (
	DevIOB DeviceKind = iota
	DevLogic
)

// Tile is a single grid cell. Only the attributes the codec or the model
// interface in spec.md §6 need are tracked; connection-point and routing-
// graph data is out of scope.
type Tile struct {
	iob      *IOBDevice // nil unless this tile carries an I/O site
	logic    [3]*LogicDevice // indexed by LogicRole
	switches []Switch
}

// Model is the reduced device-model collaborator. It owns the tile grid,
// wire interning table, and the switch bit-position database; the codec
// only reads and mutates named attributes on it, per spec.md §1.
type Model struct {
	Variant Variant
	XWidth  int
	YHeight int

	tiles [][]Tile // [y][x]

	xMajor       []int
	xFlags       []int
	yFlags       []int
	xRoutingSlot []int // per-column index among routing columns, -1 if not one
	xLogicSlot   []int // per-column index among logic columns, -1 if not one

	wires    *wireTable
	iobSites []iobSite

	nets []Net
}

// NewXC6SLX9 builds the reduced tile grid used by this module: two logic
// columns, three routing columns, and a handful of I/O sites along the left
// edge. It is not a full reconstruction of the real device geometry —
// device-variant discovery and floorplan construction remain out of scope.
func NewXC6SLX9() *Model {
	const xWidth = 8
	yHeight := TopIOTiles + XC6SLX9Rows*RowPosCount + BotIOTiles

	m := &Model{
		Variant: XC6SLX9,
		XWidth:  xWidth,
		YHeight: yHeight,
		wires:   newWireTable(),
	}

	m.tiles = make([][]Tile, yHeight)
	for y := range m.tiles {
		m.tiles[y] = make([]Tile, xWidth)
	}

	m.xMajor = make([]int, xWidth)
	m.xFlags = make([]int, xWidth)
	m.yFlags = make([]int, yHeight)
	m.xRoutingSlot = make([]int, xWidth)
	m.xLogicSlot = make([]int, xWidth)
	for x := range m.xRoutingSlot {
		m.xRoutingSlot[x] = -1
		m.xLogicSlot[x] = -1
	}
	logicCols := []int{3, 5}
	logicColSet := map[int]bool{}
	for _, x := range logicCols {
		logicColSet[x] = true
	}
	routingCols := []int{2, 4, 6}
	routingColSet := map[int]bool{}
	for _, x := range routingCols {
		routingColSet[x] = true
	}
	for x := 0; x < xWidth; x++ {
		switch {
		case logicColSet[x]:
			m.xMajor[x] = MajorLogic
			m.xFlags[x] = XFabricLogicCol | XFabricLogicXMCol
		case routingColSet[x]:
			m.xMajor[x] = MajorRouting
			m.xFlags[x] = XRoutingCol
		default:
			m.xMajor[x] = MajorMisc
		}
	}
	for slot, x := range routingCols {
		m.xRoutingSlot[x] = slot
	}
	for slot, x := range logicCols {
		m.xLogicSlot[x] = slot
	}

	for row := 0; row < XC6SLX9Rows; row++ {
		hclkY := TopIOTiles + row*RowPosCount + HCLKPos
		m.yFlags[hclkY] = YRowHorizAxSymm
	}

	m.initIOBSites(xWidth, yHeight)
	return m
}

// IsATX reports whether column x matches any of the OR-combined flags.
func (m *Model) IsATX(check int, x int) bool {
	if x < 0 || x >= m.XWidth {
		return false
	}
	return m.xFlags[x]&check != 0
}

// IsATY reports whether row y matches any of the OR-combined flags.
func (m *Model) IsATY(check int, y int) bool {
	if y < 0 || y >= m.YHeight {
		return false
	}
	return m.yFlags[y]&check != 0
}

// HasDevice reports whether the tile at (y, x) carries a device of the
// given kind.
func (m *Model) HasDevice(y, x int, kind DeviceKind) bool {
	if y < 0 || y >= m.YHeight || x < 0 || x >= m.XWidth {
		return false
	}
	switch kind {
	case DevIOB:
		return m.tiles[y][x].iob != nil
	case DevLogic:
		return m.xFlags[x]&XFabricLogicCol != 0 &&
			y >= TopIOTiles && y < m.YHeight-BotIOTiles
	}
	return false
}

// RoutingSlot returns column x's index among the chip's routing columns, or
// -1 if x is not a routing column. Each slot owns a disjoint block of minors
// within MajorRouting so that routing tiles sharing a configuration row
// never alias each other's switch bits.
func (m *Model) RoutingSlot(x int) int {
	if x < 0 || x >= len(m.xRoutingSlot) {
		return -1
	}
	return m.xRoutingSlot[x]
}

// LogicSlot returns column x's index among the chip's logic columns, or -1
// if x is not a logic column. Each slot owns a disjoint block of minors
// within MajorLogic so that logic tiles sharing a configuration row never
// alias each other's LUT bits.
func (m *Model) LogicSlot(x int) int {
	if x < 0 || x >= len(m.xLogicSlot) {
		return -1
	}
	return m.xLogicSlot[x]
}

// XMajor returns the configuration major column for x.
func (m *Model) XMajor(x int) int {
	if x < 0 || x >= len(m.xMajor) {
		return -1
	}
	return m.xMajor[x]
}

// IsInRow resolves a tile's y coordinate to (row, rowPos). It returns
// (-1, -1) if y does not fall inside an addressable configuration row.
func (m *Model) IsInRow(y int) (row, rowPos int) {
	if y < TopIOTiles || y >= m.YHeight-BotIOTiles {
		return -1, -1
	}
	offset := y - TopIOTiles
	return offset / RowPosCount, offset % RowPosCount
}
