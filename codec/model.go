package codec

import "github.com/xc6lx9/bitstream/chip"

// WriteModel encodes a device model into a freshly allocated frame buffer:
// default bits, then I/O blocks, logic LUTs, and routing switches, matching
// the original's write_model ordering (spec.md §4.6). Diagnostics collects
// every non-fatal model inconsistency or unsupported shape encountered
// along the way; a non-nil error means the encode could not complete at
// all because a LUT expression failed to parse.
func WriteModel(m *chip.Model, diag *Diagnostics) (*Buffer, error) {
	buf := NewBuffer(m)
	ApplyDefaults(buf, m.Variant)
	WriteIOBs(buf, m, diag)
	if err := WriteLogic(buf, m, diag); err != nil {
		return nil, err
	}
	WriteSwitches(buf, m, diag)
	return buf, nil
}

// ExtractModel decodes a frame buffer into the given device model,
// mirroring the original's extract_model. It fails fatally if the
// default-bit table does not check out or if a tile holds more switches
// than ExtractSwitches' capacity; every other problem is recorded in diag
// and decoding continues on a best-effort basis.
func ExtractModel(m *chip.Model, buf *Buffer, diag *Diagnostics) error {
	if err := CheckAndClearDefaults(buf, m.Variant); err != nil {
		return err
	}
	if m.NumNets() != 0 {
		diag.Add(ModelInconsistency, "model", -1, -1,
			"model already has %d net(s) before extraction; decoded switches will add more", m.NumNets())
	}
	ExtractIOBs(m, buf, diag)
	if err := ExtractLogic(m, buf, diag); err != nil {
		return err
	}
	if err := ExtractSwitches(m, buf, diag); err != nil {
		return err
	}
	return nil
}
