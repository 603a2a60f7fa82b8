package keycoder

import (
	"bytes"
	"encoding/hex"
	"math/rand"
	"testing"
)

func encodeVarintBytes(v uint64) []byte {
	w := NewWriter(9)
	PutVarint(w, v)
	return w.Finalize()
}

func TestVarint_ConcreteScenarios(t *testing.T) {
	cases := []struct {
		v   uint64
		hex string
	}{
		{0, "00"},
		{240, "f0"},
		{241, "f101"},
		{2288, "f90000"},
	}
	for _, c := range cases {
		got := encodeVarintBytes(c.v)
		want, err := hex.DecodeString(c.hex)
		if err != nil {
			t.Fatalf("bad hex fixture: %v", err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("PutVarint(%d) = %x, want %x", c.v, got, want)
		}
	}
}

func TestVarint_RoundTrip(t *testing.T) {
	values := []uint64{
		0, 1, 239, 240, 241, 242, 2287, 2288, 2289, 67823, 67824,
		1 << 24, 1<<24 - 1, 1 << 32, 1<<40 - 1, 1 << 48, 1<<56 - 1,
		^uint64(0),
	}
	for _, v := range values {
		encoded := encodeVarintBytes(v)
		got, err := GetVarint(NewReader(encoded))
		if err != nil {
			t.Fatalf("GetVarint(%d) error: %v", v, err)
		}
		if got != v {
			t.Errorf("round trip %d got %d", v, got)
		}
	}
}

func TestVarint_Monotonicity(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		a := rnd.Uint64() >> (rnd.Intn(64))
		b := rnd.Uint64() >> (rnd.Intn(64))
		if a == b {
			continue
		}
		lo, hi := a, b
		if lo > hi {
			lo, hi = hi, lo
		}
		if bytes.Compare(encodeVarintBytes(lo), encodeVarintBytes(hi)) >= 0 {
			t.Fatalf("varint(%d) did not sort before varint(%d)", lo, hi)
		}
	}
}

func TestVarint_TruncatedInput(t *testing.T) {
	// 0xFF announces an 8-byte payload, but only 3 bytes are supplied.
	data := []byte{0xFF, 0x01, 0x02, 0x03}
	_, err := GetVarint(NewReader(data))
	fe, ok := err.(*FormatError)
	if !ok {
		t.Fatalf("expected *FormatError, got %T (%v)", err, err)
	}
	if fe.Expected != 8 || fe.Remaining != 3 {
		t.Errorf("got expected=%d remaining=%d, want expected=8 remaining=3", fe.Expected, fe.Remaining)
	}
}

func TestVarint_EmptyInput(t *testing.T) {
	_, err := GetVarint(NewReader(nil))
	if err == nil {
		t.Fatal("expected error decoding empty input")
	}
}
