package keycoder

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Tuple is an ordered sequence of encodable values. Supported element types
// are nil, bool, the signed/unsigned integer kinds (folded to int64),
// []byte, string, time.Time, and uuid.UUID / [16]byte.
type Tuple []any

// KeyList is an ordered sequence of Tuples, packed with a SEP byte between
// successive entries.
type KeyList []Tuple

// Tuplize returns x unchanged if it is already a Tuple, otherwise wraps it
// in a one-element Tuple.
func Tuplize(x any) Tuple {
	if t, ok := x.(Tuple); ok {
		return t
	}
	return Tuple{x}
}

func encodeValue(w *Writer, v any) error {
	switch x := v.(type) {
	case nil:
		w.PutByte(byte(KindNull))
	case bool:
		w.PutByte(byte(KindBool))
		if x {
			PutVarint(w, 1)
		} else {
			PutVarint(w, 0)
		}
	case int:
		encodeInt(w, int64(x))
	case int8:
		encodeInt(w, int64(x))
	case int16:
		encodeInt(w, int64(x))
	case int32:
		encodeInt(w, int64(x))
	case int64:
		encodeInt(w, x)
	case uint:
		encodeUint(w, uint64(x))
	case uint8:
		encodeUint(w, uint64(x))
	case uint16:
		encodeUint(w, uint64(x))
	case uint32:
		encodeUint(w, uint64(x))
	case uint64:
		encodeUint(w, x)
	case []byte:
		w.PutByte(byte(KindBlob))
		PutString(w, x)
	case string:
		w.PutByte(byte(KindText))
		PutString(w, []byte(x))
	case time.Time:
		PutTime(w, x)
	case uuid.UUID:
		w.PutByte(byte(KindUUID))
		PutString(w, x[:])
	case [16]byte:
		w.PutByte(byte(KindUUID))
		PutString(w, x[:])
	default:
		return &TypeError{TypeName: fmt.Sprintf("%T", v)}
	}
	return nil
}

func encodeInt(w *Writer, v int64) {
	if v < 0 {
		w.PutByte(byte(KindNegInteger))
		PutVarint(w, uint64(-v))
	} else {
		w.PutByte(byte(KindInteger))
		PutVarint(w, uint64(v))
	}
}

func encodeUint(w *Writer, v uint64) {
	w.PutByte(byte(KindInteger))
	PutVarint(w, v)
}

// decodeValue reads one element, having already consumed its kind tag.
// SEP is not handled here (decodeTuple consumes it before calling); like
// any unknown tag it yields a *FormatError.
func decodeValue(r *Reader, kind Kind) (any, error) {
	switch kind {
	case KindNull:
		return nil, nil
	case KindInteger:
		v, err := GetVarint(r)
		if err != nil {
			return nil, err
		}
		return int64(v), nil
	case KindNegInteger:
		v, err := GetVarint(r)
		if err != nil {
			return nil, err
		}
		return -int64(v), nil
	case KindBool:
		v, err := GetVarint(r)
		if err != nil {
			return nil, err
		}
		return v != 0, nil
	case KindBlob:
		b, err := GetString(r)
		if err != nil {
			return nil, err
		}
		return b, nil
	case KindText:
		b, err := GetString(r)
		if err != nil {
			return nil, err
		}
		s := string(b)
		if !utf8.ValidString(s) {
			return nil, &FormatError{Msg: "TEXT payload is not valid UTF-8"}
		}
		return s, nil
	case KindTime:
		return GetTime(r, false)
	case KindNegTime:
		return GetTime(r, true)
	case KindUUID:
		b, err := GetString(r)
		if err != nil {
			return nil, err
		}
		if len(b) != 16 {
			return nil, &FormatError{Msg: fmt.Sprintf("invalid UUID length %d", len(b))}
		}
		var u uuid.UUID
		copy(u[:], b)
		return u, nil
	default:
		return nil, &FormatError{Msg: fmt.Sprintf("bad kind byte 0x%02x; key corrupt?", byte(kind))}
	}
}
