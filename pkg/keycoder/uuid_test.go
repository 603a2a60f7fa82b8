package keycoder

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestUUID_RoundTrip(t *testing.T) {
	u := uuid.MustParse("f47ac10b-58cc-4372-a567-0e02b2c3d479")
	encoded, err := Pack(nil, u)
	if err != nil {
		t.Fatal(err)
	}
	if Kind(encoded[0]) != KindUUID {
		t.Fatalf("tag = 0x%02x, want KindUUID", encoded[0])
	}

	tup, err := Unpack(nil, encoded)
	if err != nil {
		t.Fatal(err)
	}
	got, ok := tup[0].(uuid.UUID)
	if !ok {
		t.Fatalf("decoded element is %T, want uuid.UUID", tup[0])
	}
	if got != u {
		t.Fatalf("got %v, want %v", got, u)
	}
}

func TestUUID_RawArrayEncodesSameAsUUIDType(t *testing.T) {
	u := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	var raw [16]byte = u
	a, err := Pack(nil, u)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Pack(nil, raw)
	if err != nil {
		t.Fatal(err)
	}
	if string(a) != string(b) {
		t.Fatalf("uuid.UUID and [16]byte encodings differ: %x vs %x", a, b)
	}
}

func TestUUID_InvalidLength(t *testing.T) {
	w := NewWriter(8)
	w.PutByte(byte(KindUUID))
	PutString(w, []byte{1, 2, 3})
	_, err := Unpack(nil, w.Finalize())
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("got %v, want *FormatError", err)
	}
}
