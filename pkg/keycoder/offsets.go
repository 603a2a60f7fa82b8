package keycoder

// EncodeOffsets writes a count varint followed by count delta varints, each
// the difference from the previous absolute position (the first delta is
// taken from 0). positions must be sorted ascending with positions[0] == 0;
// that first position is never itself written, matching DecodeOffsets's
// implicit [0, ...] result.
func EncodeOffsets(w *Writer, positions []uint64) {
	if len(positions) == 0 {
		PutVarint(w, 0)
		return
	}
	deltas := positions[1:]
	PutVarint(w, uint64(len(deltas)))
	prev := positions[0]
	for _, pos := range deltas {
		PutVarint(w, pos-prev)
		prev = pos
	}
}

// DecodeOffsets reads a varint count followed by that many delta varints
// and returns the count+1 absolute positions they encode — starting
// implicitly at 0 — along with the number of bytes the table occupied, so
// a caller can locate the payload region that follows it.
func DecodeOffsets(data []byte) (positions []uint64, consumed int, err error) {
	r := NewReader(data)

	count, err := GetVarint(r)
	if err != nil {
		return nil, 0, err
	}
	// Every delta takes at least one byte, so a count larger than the
	// remaining input is truncated before any allocation is sized from it.
	if count > uint64(r.Remaining()) {
		return nil, 0, &FormatError{Msg: "offset table count exceeds remaining input"}
	}

	out := make([]uint64, 1+count)
	var pos uint64
	for i := uint64(0); i < count; i++ {
		delta, err := GetVarint(r)
		if err != nil {
			return nil, 0, err
		}
		pos += delta
		out[1+i] = pos
	}

	return out, r.Pos(), nil
}
