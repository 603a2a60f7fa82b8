package keycoder

import "bytes"

// Pack serializes x onto prefix. x may be a Tuple, a KeyList (a list of
// Tuples, SEP-separated), or a bare scalar, which is treated as a
// one-element Tuple. The returned byte string is prefix-independent: for
// any prefix, Pack(prefix, x) == append(prefix, Pack(nil, x)...).
func Pack(prefix []byte, x any) ([]byte, error) {
	w := NewWriter(len(prefix) + 20)
	w.PutBytes(prefix)

	switch v := x.(type) {
	case KeyList:
		for i, tup := range v {
			if i > 0 {
				w.PutByte(byte(KindSep))
			}
			if err := encodeTuple(w, tup); err != nil {
				return nil, err
			}
		}
	case Tuple:
		if err := encodeTuple(w, v); err != nil {
			return nil, err
		}
	default:
		if err := encodeValue(w, x); err != nil {
			return nil, err
		}
	}

	return w.Finalize(), nil
}

func encodeTuple(w *Writer, tup Tuple) error {
	for _, v := range tup {
		if err := encodeValue(w, v); err != nil {
			return err
		}
	}
	return nil
}

// PackInt writes prefix followed by a bare varint, with no kind tag. v must
// be non-negative.
func PackInt(prefix []byte, v uint64) []byte {
	w := NewWriter(len(prefix) + 9)
	w.PutBytes(prefix)
	PutVarint(w, v)
	return w.Finalize()
}

// Unpack matches data against prefix and decodes exactly one Tuple from
// what follows, stopping at a SEP byte or end of input. It returns
// ErrNoMatch if data does not begin with prefix, and a *ValueError if data
// is shorter than prefix.
func Unpack(prefix, data []byte) (Tuple, error) {
	if len(data) < len(prefix) {
		return nil, &ValueError{Msg: "unpack: input smaller than prefix"}
	}
	if !bytes.HasPrefix(data, prefix) {
		return nil, ErrNoMatch
	}

	r := NewReader(data)
	r.TakeRaw(len(prefix))
	tup, _, err := decodeTuple(r)
	return tup, err
}

// UnpackMany matches data against prefix like Unpack, then decodes
// successive Tuples — each bounded by a SEP byte or end of input — until
// the input is exhausted.
func UnpackMany(prefix, data []byte) (KeyList, error) {
	if len(data) < len(prefix) {
		return nil, &ValueError{Msg: "unpack: input smaller than prefix"}
	}
	if !bytes.HasPrefix(data, prefix) {
		return nil, ErrNoMatch
	}

	r := NewReader(data)
	r.TakeRaw(len(prefix))

	var out KeyList
	for !r.AtEnd() {
		tup, _, err := decodeTuple(r)
		if err != nil {
			return nil, err
		}
		out = append(out, tup)
	}
	return out, nil
}

// decodeTuple reads elements until end of input or a SEP tag, which is
// consumed but not included in the returned Tuple. sawSep reports whether
// a SEP terminated the tuple, as opposed to running off the end of data.
func decodeTuple(r *Reader) (tup Tuple, sawSep bool, err error) {
	for !r.AtEnd() {
		ch, ok := r.GetByte()
		if !ok {
			break
		}
		kind := Kind(ch)
		if kind == KindSep {
			return tup, true, nil
		}

		v, err := decodeValue(r, kind)
		if err != nil {
			return nil, false, err
		}
		tup = append(tup, v)
	}
	return tup, false, nil
}
