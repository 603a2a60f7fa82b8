package codec

import "testing"

// TestStructureSetup verifies the basic package structure is correct.
func TestStructureSetup(t *testing.T) {
	codec := NewRecordCodec()
	if codec == nil {
		t.Error("NewRecordCodec returned nil")
	}

	record := NewRecord([]byte("value"))
	if record == nil {
		t.Error("NewRecord returned nil")
	}

	if record.ValueSize != 5 {
		t.Errorf("Expected ValueSize 5, got %d", record.ValueSize)
	}

	expectedSize := headerSize + 5
	if record.Size() != expectedSize {
		t.Errorf("Expected size %d, got %d", expectedSize, record.Size())
	}
}

// TestEncodeDecodeWireUp verifies Encode/Decode/Validate are fully wired,
// not stubbed.
func TestEncodeDecodeWireUp(t *testing.T) {
	codec := NewRecordCodec()

	encoded, err := codec.Encode([]byte("value"))
	if err != nil {
		t.Fatalf("Encode returned an error: %v", err)
	}

	record, err := codec.Decode(encoded)
	if err != nil {
		t.Fatalf("Decode returned an error: %v", err)
	}

	if err := record.Validate(); err != nil {
		t.Fatalf("Validate failed on a freshly encoded record: %v", err)
	}
}
