//go:build fuzz
// +build fuzz

package codec

import (
	"bytes"
	"testing"
)

// FuzzRecordCodec_RoundTrip tests encode/decode round-trip with random values.
func FuzzRecordCodec_RoundTrip(f *testing.F) {
	codec := NewRecordCodec()

	f.Add([]byte(""))
	f.Add([]byte("value"))
	f.Add([]byte("john@example.com"))
	f.Add([]byte{0xFF, 0xFE, 0xFD})

	f.Fuzz(func(t *testing.T, value []byte) {
		if len(value) > 100000 {
			t.Skip("Input too large for fuzz test")
		}

		encoded, err := codec.Encode(value)
		if err != nil {
			t.Fatalf("Encode failed for value=%q: %v", value, err)
		}

		record, err := codec.Decode(encoded)
		if err != nil {
			t.Fatalf("Decode failed for encoded data: len(value)=%d %v", len(value), err)
		}

		if err := record.Validate(); err != nil {
			t.Fatalf("Record validation failed: %v", err)
		}

		if !bytes.Equal(record.Value, value) {
			t.Errorf("Value mismatch: got %q, want %q", record.Value, value)
		}

		if record.ValueSize != uint32(len(value)) {
			t.Errorf("ValueSize mismatch: got %d, want %d", record.ValueSize, len(value))
		}
	})
}

// FuzzRecordCodec_CorruptionDetection tests that corruption is always detected.
func FuzzRecordCodec_CorruptionDetection(f *testing.F) {
	codec := NewRecordCodec()

	f.Add([]byte("value"), uint(0))
	f.Add([]byte("john@example.com"), uint(5))
	f.Add([]byte("data"), uint(10))

	f.Fuzz(func(t *testing.T, value []byte, corruptPos uint) {
		if len(value) > 10000 {
			t.Skip("Input too large for fuzz test")
		}

		encoded, err := codec.Encode(value)
		if err != nil {
			t.Skip("Encode failed, skipping")
		}

		if int(corruptPos) >= len(encoded) {
			t.Skip("Corruption position beyond data length")
		}

		corrupted := make([]byte, len(encoded))
		copy(corrupted, encoded)
		corrupted[corruptPos] ^= 0xFF

		if bytes.Equal(corrupted, encoded) {
			t.Skip("Corruption resulted in no change")
		}

		record, err := codec.Decode(corrupted)
		if err != nil {
			// Decode failure is acceptable for corrupted data.
			return
		}

		if err := record.Validate(); err == nil {
			t.Errorf("Corruption not detected! Original: %x, Corrupted: %x, Position: %d",
				encoded, corrupted, corruptPos)
		}
	})
}

// FuzzRecordCodec_MalformedData tests handling of malformed input.
func FuzzRecordCodec_MalformedData(f *testing.F) {
	codec := NewRecordCodec()

	f.Add([]byte{})
	f.Add([]byte{0x01})
	f.Add([]byte{0x01, 0x02, 0x03, 0x04})
	f.Add(make([]byte, headerSize-1)) // one byte short of header
	f.Add(make([]byte, headerSize))   // header only

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) > 100000 {
			t.Skip("Input too large for fuzz test")
		}

		_, err := codec.Decode(data)
		if err == nil {
			t.Logf("Unexpectedly succeeded to decode random data of length %d", len(data))
		}
	})
}

// FuzzRecord_SizeProperty checks that encoded size matches the expected size.
func FuzzRecord_SizeProperty(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("v"))
	f.Add([]byte("value"))

	f.Fuzz(func(t *testing.T, value []byte) {
		if len(value) > 100000 {
			t.Skip("Input too large for fuzz test")
		}

		record := NewRecord(value)
		expectedSize := headerSize + len(value)

		if record.Size() != expectedSize {
			t.Errorf("Size calculation wrong: got %d, want %d", record.Size(), expectedSize)
		}

		codec := NewRecordCodec()
		encoded, err := codec.Encode(value)
		if err == nil && len(encoded) != expectedSize {
			t.Errorf("Encoded size mismatch: got %d, want %d", len(encoded), expectedSize)
		}
	})
}
