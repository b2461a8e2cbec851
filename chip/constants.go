// Package chip implements the device-model collaborator the bitstream codec
// talks to: a reduced tile grid, wire interning, and the switch/device
// attributes needed to drive the XC6SLX9 frame encoder and decoder. It does
// not attempt full tile-grid construction, connection-point routing
// discovery, or the textual floorplan format.
package chip

// Variant identifies a supported chip. Only one is implemented; the codec
// does not discover new device variants.
type Variant int

const (
	XC6SLX9 Variant = iota
)

// Chip geometry. Frame sizes and bit positions below are chosen so that the
// reference default-bit table (bit index 1039 at minor 23) fits inside a
// single frame, matching the original fpgatools bit_frames.c constant.
const (
	// XC6SLX9Rows is the number of horizontal configuration rows.
	XC6SLX9Rows = 4

	// FrameSize is the length of one frame in bytes (1040 bits).
	FrameSize = 130

	// HCLKBytes is the in-frame byte padding inserted at the horizontal
	// clock row position.
	HCLKBytes = 2

	// RowPosCount is the number of tile row-positions per configuration
	// row, positions 0..RowPosCount-1. HCLKPos is not addressable.
	RowPosCount = 17
	HCLKPos     = 8

	TopIOTiles    = 2
	BotIOTiles    = 2
	LeftSideWidth = 2
	RightSideWidth = 2

	// RoutingColumnCount is the number of routing columns NewXC6SLX9 lays
	// out. Each gets its own block of RoutingSlotStride minors within
	// MajorRouting so that two routing tiles in the same configuration row
	// never alias the same frame bits (spec.md §4.1's row/major/minor
	// addressing distinguishes tiles by major, i.e. by column).
	RoutingColumnCount = 3

	// RoutingSlotStride is the number of minors reserved per routing
	// column slot, sized to hold the widest bit-position entry (minor 20
	// plus its neighbour) with headroom.
	RoutingSlotStride = 24

	// LogicColumnCount is the number of logic columns NewXC6SLX9 lays out.
	// Each gets its own block of LogicSlotStride minors within MajorLogic,
	// same rationale as RoutingSlotStride.
	LogicColumnCount = 2

	// LogicSlotStride is the number of minors reserved per logic column
	// slot: frames 21-30 plus the shared default-bit frame (23) fit inside
	// one block with headroom.
	LogicSlotStride = 31
)

// Major indices used by x_major. Real silicon has many more; this reduced
// model keeps just enough majors to exercise every codec path.
const (
	MajorMisc    = 0 // holds the two single-row default bits
	MajorLogic   = 1 // logic tile frames (21,22,24,25,26,27,28,29,30)
	MajorIOB     = 2 // flat IOB entry table lives inside this major's minor 0
	MajorRouting = 3 // routing switch frames
)

// minorsPerMajor mirrors get_major_minors(variant, major): the number of
// minor frames held by each configuration column.
var minorsPerMajor = [...]int{
	MajorMisc:    4,
	MajorLogic:   LogicSlotStride * LogicColumnCount,
	MajorIOB:     1,
	MajorRouting: RoutingSlotStride * RoutingColumnCount,
}

// MinorsInMajor returns the number of minor frames in the given major of the
// given chip variant.
func MinorsInMajor(v Variant, major int) int {
	if major < 0 || major >= len(minorsPerMajor) {
		return 0
	}
	return minorsPerMajor[major]
}

// FramesPerRow is the total number of minor frames in one configuration row.
func FramesPerRow(v Variant) int {
	total := 0
	for i := range minorsPerMajor {
		total += minorsPerMajor[i]
	}
	return total
}

// IOBEntryLen is the per-site encoded entry length in bytes (two 32-bit
// words).
const IOBEntryLen = 8

// IOBDataStart is the flat byte offset of the IOB entry table: the base
// address of (row 0, MajorIOB, minor 0). It does not depend on row, matching
// the original's flat indexing by part_idx alone.
func IOBDataStart(v Variant) int {
	precedingMinors := 0
	for major := 0; major < MajorIOB; major++ {
		precedingMinors += MinorsInMajor(v, major)
	}
	return precedingMinors * FrameSize
}
