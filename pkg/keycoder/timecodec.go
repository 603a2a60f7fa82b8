package keycoder

import (
	"fmt"
	"time"
)

// utcOffsetShift and utcOffsetDiv compose the 7-bit timezone field folded
// into the low bits of the composite timestamp: one unit is 15 minutes,
// and 64 represents UTC, matching the source's UTCOFFSET_SHIFT/DIV.
const (
	utcOffsetShift = 64
	utcOffsetDiv   = 900 // seconds per unit (15 minutes)
)

// composeTime folds t's UTC calendar fields (converted to epoch seconds the
// way timegm does) and its zone offset into a single signed
// millisecond-with-offset scalar. Sub-millisecond precision is truncated.
func composeTime(t time.Time) int64 {
	u := t.UTC()
	y, mo, d := u.Date()
	h, mi, s := u.Clock()
	asUTC := time.Date(y, mo, d, h, mi, s, 0, time.UTC).Unix()

	ts := asUTC*1000 + int64(t.Nanosecond()/1e6)

	_, offsetSecs := t.Zone()
	offsetBits := utcOffsetShift + offsetSecs/utcOffsetDiv
	if offsetBits < 0 {
		offsetBits = 0
	} else if offsetBits > 0x7F {
		offsetBits = 0x7F
	}

	ts <<= 7
	ts |= int64(offsetBits)
	return ts
}

// decomposeTime is the inverse of composeTime: it recovers the millisecond
// epoch instant and reattaches a fixed-offset zone computed from the low 7
// bits. The source ships without this half of the codec (its C
// implementation asserts); this is the decoder DESIGN.md calls for.
func decomposeTime(ts int64) time.Time {
	offsetBits := int(ts & 0x7F)
	millis := ts >> 7 // arithmetic shift: sign of the original value is preserved

	offsetSecs := (offsetBits - utcOffsetShift) * utcOffsetDiv
	loc := fixedZoneFor(offsetSecs)

	return time.UnixMilli(millis).In(loc)
}

func fixedZoneFor(offsetSecs int) *time.Location {
	sign := "+"
	abs := offsetSecs
	if abs < 0 {
		sign = "-"
		abs = -abs
	}
	name := fmt.Sprintf("UTC%s%02d:%02d", sign, abs/3600, (abs%3600)/60)
	return time.FixedZone(name, offsetSecs)
}

// PutTime writes t's composite timestamp, choosing KindNegTime or KindTime
// so that, by tag alone, every NegTime sorts before every Time.
func PutTime(w *Writer, t time.Time) {
	ts := composeTime(t)
	if ts < 0 {
		w.PutByte(byte(KindNegTime))
		PutVarint(w, uint64(-ts))
	} else {
		w.PutByte(byte(KindTime))
		PutVarint(w, uint64(ts))
	}
}

// GetTime decodes a value written by PutTime. negate must be true when the
// tag byte that was already consumed was KindNegTime.
func GetTime(r *Reader, negate bool) (time.Time, error) {
	u64, err := GetVarint(r)
	if err != nil {
		return time.Time{}, err
	}
	ts := int64(u64)
	if negate {
		ts = -ts
	}
	return decomposeTime(ts), nil
}
