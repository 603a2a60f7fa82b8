package keycoder

// PutVarint writes v using the self-delimiting, order-preserving prefix-byte
// scheme: values 0..240 encode as a single byte, and each successively
// wider range adds a first byte (241..0xFF) identifying the payload length
// that follows as a big-endian integer. Because a wider first byte always
// exceeds a narrower one, and same-width payloads compare as plain
// big-endian integers, the byte encoding sorts in numeric order.
func PutVarint(w *Writer, v uint64) {
	switch {
	case v <= 240:
		w.PutByte(byte(v))
	case v <= 2287:
		v -= 240
		w.Ensure(2)
		w.PutByte(241 + byte(v>>8))
		w.PutByte(byte(v))
	case v <= 67823:
		v -= 2288
		w.Ensure(3)
		w.PutByte(0xF9)
		w.PutByte(byte(v >> 8))
		w.PutByte(byte(v))
	case v <= 0xFFFFFF:
		w.Ensure(4)
		w.PutByte(0xFA)
		w.PutByte(byte(v >> 16))
		w.PutByte(byte(v >> 8))
		w.PutByte(byte(v))
	case v <= 0xFFFFFFFF:
		w.Ensure(5)
		w.PutByte(0xFB)
		w.PutByte(byte(v >> 24))
		w.PutByte(byte(v >> 16))
		w.PutByte(byte(v >> 8))
		w.PutByte(byte(v))
	case v <= 0xFFFFFFFFFF:
		w.Ensure(6)
		w.PutByte(0xFC)
		w.PutByte(byte(v >> 32))
		w.PutByte(byte(v >> 24))
		w.PutByte(byte(v >> 16))
		w.PutByte(byte(v >> 8))
		w.PutByte(byte(v))
	case v <= 0xFFFFFFFFFFFF:
		w.Ensure(7)
		w.PutByte(0xFD)
		w.PutByte(byte(v >> 40))
		w.PutByte(byte(v >> 32))
		w.PutByte(byte(v >> 24))
		w.PutByte(byte(v >> 16))
		w.PutByte(byte(v >> 8))
		w.PutByte(byte(v))
	case v <= 0xFFFFFFFFFFFFFF:
		w.Ensure(8)
		w.PutByte(0xFE)
		w.PutByte(byte(v >> 48))
		w.PutByte(byte(v >> 40))
		w.PutByte(byte(v >> 32))
		w.PutByte(byte(v >> 24))
		w.PutByte(byte(v >> 16))
		w.PutByte(byte(v >> 8))
		w.PutByte(byte(v))
	default:
		w.Ensure(9)
		w.PutByte(0xFF)
		w.PutByte(byte(v >> 56))
		w.PutByte(byte(v >> 48))
		w.PutByte(byte(v >> 40))
		w.PutByte(byte(v >> 32))
		w.PutByte(byte(v >> 24))
		w.PutByte(byte(v >> 16))
		w.PutByte(byte(v >> 8))
		w.PutByte(byte(v))
	}
}

// GetVarint decodes a value written by PutVarint.
func GetVarint(r *Reader) (uint64, error) {
	ch, ok := r.GetByte()
	if !ok {
		return 0, newTruncationError("premature end of input reading varint", 1, r.Pos(), 0)
	}

	switch {
	case ch <= 240:
		return uint64(ch), nil
	case ch <= 248:
		if err := r.Ensure(1); err != nil {
			return 0, err
		}
		b := r.TakeRaw(1)
		return 240 + 256*uint64(ch-241) + uint64(b[0]), nil
	case ch == 249:
		if err := r.Ensure(2); err != nil {
			return 0, err
		}
		b := r.TakeRaw(2)
		return 2288 + uint64(b[0])<<8 + uint64(b[1]), nil
	case ch == 250:
		return decodeBigEndian(r, 3)
	case ch == 251:
		return decodeBigEndian(r, 4)
	case ch == 252:
		return decodeBigEndian(r, 5)
	case ch == 253:
		return decodeBigEndian(r, 6)
	case ch == 254:
		return decodeBigEndian(r, 7)
	default: // 255
		return decodeBigEndian(r, 8)
	}
}

func decodeBigEndian(r *Reader, n int) (uint64, error) {
	if err := r.Ensure(n); err != nil {
		return 0, err
	}
	b := r.TakeRaw(n)
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v, nil
}
