package keycoder

// Reader is a bounded, non-owning cursor over an encoded key. It performs no
// I/O and holds no backing resources beyond the slice it was given, so it
// needs no Close.
type Reader struct {
	p   []byte
	pos int
}

// NewReader wraps p for sequential decoding. p is not copied; it must
// outlive the Reader.
func NewReader(p []byte) *Reader {
	return &Reader{p: p}
}

// Pos returns the current read offset.
func (r *Reader) Pos() int { return r.pos }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.p) - r.pos }

// AtEnd reports whether every byte has been consumed.
func (r *Reader) AtEnd() bool { return r.pos >= len(r.p) }

// GetByte returns the next byte and advances, or ok=false at end of input.
func (r *Reader) GetByte() (b byte, ok bool) {
	if r.pos >= len(r.p) {
		return 0, false
	}
	b = r.p[r.pos]
	r.pos++
	return b, true
}

// Ensure fails with a FormatError unless n further bytes remain.
func (r *Reader) Ensure(n int) error {
	if r.Remaining() < n {
		return newTruncationError("premature end of input", n, r.pos, r.Remaining())
	}
	return nil
}

// TakeRaw returns the next n bytes and advances past them. It is only valid
// to call after Ensure(n) has succeeded; it does not itself bounds-check.
func (r *Reader) TakeRaw(n int) []byte {
	b := r.p[r.pos : r.pos+n]
	r.pos += n
	return b
}
