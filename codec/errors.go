package codec

import "fmt"

// Kind classifies a codec error, mirroring the four error categories a
// bitstream operation can raise.
type Kind int

const (
	// InvalidBitstream means the frame data itself is malformed: a default
	// bit is clear, or a pattern match failed where the format guarantees
	// one of a fixed set of shapes. Always fatal.
	InvalidBitstream Kind = iota
	// Unsupported means the input uses a real, well-formed feature the
	// codec does not implement (e.g. an L-device LUT write, or more
	// switches in a tile than the codec's fixed capacity). Fatal for
	// capacity overflows, diagnostic-only for known-unsupported shapes
	// that are simply left untouched.
	Unsupported
	// ModelInconsistency means the device model describes something the
	// frame format cannot express (e.g. a used switch with no corresponding
	// bit-position entry on encode), or is not in the state a decode
	// expects (e.g. nets already present before extraction). Always
	// diagnostic: the operation proceeds.
	ModelInconsistency
	// ExpressionError means a boolean expression attached to a LUT failed
	// to parse or evaluate. Always fatal.
	ExpressionError
)

func (k Kind) String() string {
	switch k {
	case InvalidBitstream:
		return "invalid bitstream"
	case Unsupported:
		return "unsupported"
	case ModelInconsistency:
		return "model inconsistency"
	case ExpressionError:
		return "expression error"
	default:
		return "unknown"
	}
}

// Error is a located codec error: what kind of problem it is, which
// component raised it, and the tile coordinates involved (-1, -1 when not
// applicable).
type Error struct {
	Kind      Kind
	Component string
	Y, X      int
	Message   string
}

func (e *Error) Error() string {
	if e.Y >= 0 && e.X >= 0 {
		return fmt.Sprintf("%s: %s at (y=%d, x=%d): %s", e.Component, e.Kind, e.Y, e.X, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Component, e.Kind, e.Message)
}

// NewError builds a located Error with a formatted message.
func NewError(kind Kind, component string, y, x int, format string, args ...any) *Error {
	return &Error{Kind: kind, Component: component, Y: y, X: x, Message: fmt.Sprintf(format, args...)}
}

// Note is a single diagnostic record collected during a codec pass that was
// not fatal: the operation proceeded, leaving the associated bits or model
// field as found.
type Note struct {
	Kind      Kind
	Component string
	Y, X      int
	Message   string
}

func (n Note) String() string {
	if n.Y >= 0 && n.X >= 0 {
		return fmt.Sprintf("%s: %s at (y=%d, x=%d): %s", n.Component, n.Kind, n.Y, n.X, n.Message)
	}
	return fmt.Sprintf("%s: %s: %s", n.Component, n.Kind, n.Message)
}

// Diagnostics accumulates non-fatal notes raised during a WriteModel or
// ExtractModel pass, analogous to the teacher's ErrorList of warnings
// collected alongside a fatal error return.
type Diagnostics struct {
	Notes []Note
}

// Add records a diagnostic note.
func (d *Diagnostics) Add(kind Kind, component string, y, x int, format string, args ...any) {
	d.Notes = append(d.Notes, Note{Kind: kind, Component: component, Y: y, X: x, Message: fmt.Sprintf(format, args...)})
}

// Empty reports whether no diagnostics were recorded.
func (d *Diagnostics) Empty() bool { return len(d.Notes) == 0 }
