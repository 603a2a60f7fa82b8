package codec

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"time"
)

// headerSize is CRC32(4) + ValueSize(4) + WrittenAt(8).
const headerSize = 16

// Record is the decoded form of one value envelope. Unlike a log-structured
// store's record, this one carries no key: pkg/store already keys its
// Pebble entries with keycoder-packed tuples, so framing a second copy of
// the key alongside the value would only duplicate what Pebble's own key
// space already holds.
type Record struct {
	CRC32     uint32 // checksum over ValueSize, WrittenAt, and Value
	ValueSize uint32 // size of Value in bytes
	WrittenAt uint64 // unix nanoseconds at encode time
	Value     []byte // value data
}

// RecordCodec frames values written under a Pebble key and unframes them
// on read.
type RecordCodec struct{}

// NewRecordCodec creates a new record codec instance.
func NewRecordCodec() *RecordCodec {
	return &RecordCodec{}
}

// Encode frames value into a checksummed, timestamped envelope.
// Format: [CRC32(4)][ValueSize(4)][WrittenAt(8)][Value]
func (c *RecordCodec) Encode(value []byte) ([]byte, error) {
	r := NewRecord(value)
	r.CRC32 = r.calculateCRC32()

	buf := make([]byte, r.Size())
	binary.LittleEndian.PutUint32(buf[0:], r.CRC32)
	binary.LittleEndian.PutUint32(buf[4:], r.ValueSize)
	binary.LittleEndian.PutUint64(buf[8:], r.WrittenAt)
	copy(buf[headerSize:], r.Value)

	return buf, nil
}

// Decode parses a framed value back into a Record.
func (c *RecordCodec) Decode(data []byte) (*Record, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("data too short for record header")
	}

	r := &Record{}
	r.CRC32 = binary.LittleEndian.Uint32(data[0:4])
	r.ValueSize = binary.LittleEndian.Uint32(data[4:8])
	r.WrittenAt = binary.LittleEndian.Uint64(data[8:16])

	if len(data) < headerSize+int(r.ValueSize) {
		return nil, fmt.Errorf("data too short for declared value size: %d < %d", len(data), headerSize+int(r.ValueSize))
	}
	r.Value = data[headerSize : headerSize+int(r.ValueSize)]

	return r, nil
}

// Validate checks the integrity of a record using CRC32.
func (r *Record) Validate() error {
	if r.CRC32 != r.calculateCRC32() {
		return fmt.Errorf("CRC32 mismatch: %d != %d", r.CRC32, r.calculateCRC32())
	}
	return nil
}

// Size returns the total size of the record when encoded.
func (r *Record) Size() int {
	return headerSize + len(r.Value)
}

// NewRecord creates a new record stamped with the current time, ready for
// its CRC32 to be filled in by Encode.
func NewRecord(value []byte) *Record {
	valLen := len(value)
	if valLen > int(^uint32(0)) {
		panic("value too large")
	}
	return &Record{
		ValueSize: uint32(valLen),
		WrittenAt: uint64(time.Now().UnixNano()),
		Value:     value,
	}
}

// calculateCRC32 computes the checksum over ValueSize, WrittenAt, and Value.
func (r *Record) calculateCRC32() uint32 {
	crc := crc32.NewIEEE()

	if err := binary.Write(crc, binary.LittleEndian, r.ValueSize); err != nil {
		return 0
	}
	if err := binary.Write(crc, binary.LittleEndian, r.WrittenAt); err != nil {
		return 0
	}
	if _, err := crc.Write(r.Value); err != nil {
		return 0
	}

	return crc.Sum32()
}
