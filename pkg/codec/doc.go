// Package codec frames the values centidb writes under keycoder-packed
// keys. pkg/store keys every Pebble entry with pkg/keycoder; this package
// wraps the corresponding value in a checksummed, timestamped envelope, so
// it carries no key of its own.
//
// # Record Format
//
// Records are serialized in a binary format with the following structure:
//
//	[CRC32(4)][ValueSize(4)][WrittenAt(8)][Value]
//
// Fields:
//   - CRC32: 32-bit CRC checksum for integrity validation (little-endian)
//   - ValueSize: 32-bit unsigned integer indicating value length in bytes (little-endian)
//   - WrittenAt: 64-bit Unix timestamp in nanoseconds, stamped at Encode time (little-endian)
//   - Value: Variable-length value data
//
// The total record size is: 16 bytes (header) + len(value).
//
// # CRC32 Calculation
//
// The CRC32 checksum is calculated over all fields except the CRC32 field itself:
//   - ValueSize (4 bytes)
//   - WrittenAt (8 bytes)
//   - Value data (ValueSize bytes)
//
// This ensures that any corruption in the record header or value will be
// detected during validation.
//
// # Usage
//
// Basic encoding and decoding:
//
//	codec := codec.NewRecordCodec()
//
//	// Encode a value
//	encoded, err := codec.Encode([]byte("value"))
//	if err != nil {
//	    return err
//	}
//
//	// Decode a record
//	record, err := codec.Decode(encoded)
//	if err != nil {
//	    return err
//	}
//
//	// Validate integrity
//	if err := record.Validate(); err != nil {
//	    return err // Record is corrupted
//	}
//
// # Error Handling
//
// The codec provides comprehensive error handling for:
//   - Malformed binary data (insufficient length, invalid headers)
//   - CRC32 validation failures (data corruption)
//   - Size mismatches between declared and actual data lengths
//
// All methods return descriptive errors that can be used for debugging
// and recovery scenarios.
//
// # Thread Safety
//
// RecordCodec instances are safe for concurrent use. Record structs are
// immutable after creation and safe to share between goroutines.
package codec
