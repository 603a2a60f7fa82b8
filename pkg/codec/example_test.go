package codec_test

import (
	"fmt"
	"log"

	"github.com/dw/centidb/pkg/codec"
)

// ExampleRecordCodec_basic demonstrates basic value encoding and decoding.
func ExampleRecordCodec_basic() {
	c := codec.NewRecordCodec()

	value := []byte("john@example.com")

	encoded, err := c.Encode(value)
	if err != nil {
		log.Fatal(err)
	}

	record, err := c.Decode(encoded)
	if err != nil {
		log.Fatal(err)
	}

	if err := record.Validate(); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Value: %s\n", record.Value)
	fmt.Printf("Has write time: %t\n", record.WrittenAt > 0)

	// Output:
	// Value: john@example.com
	// Has write time: true
}

// ExampleRecord_creation demonstrates creating and inspecting records.
func ExampleRecord_creation() {
	value := []byte(`{"host": "localhost", "port": 5432}`)

	record := codec.NewRecord(value)

	fmt.Printf("Value size: %d bytes\n", record.ValueSize)
	fmt.Printf("Total size: %d bytes\n", record.Size())

	// Output:
	// Value size: 35 bytes
	// Total size: 51 bytes
}

// ExampleRecordCodec_errorHandling demonstrates error handling.
func ExampleRecordCodec_errorHandling() {
	c := codec.NewRecordCodec()

	malformed := []byte{0x01, 0x02, 0x03} // too short for the header

	_, err := c.Decode(malformed)
	if err != nil {
		fmt.Printf("Decode error: %v\n", err)
	}

	// Output:
	// Decode error: data too short for record header
}

// ExampleRecordCodec_binaryData demonstrates handling binary values.
func ExampleRecordCodec_binaryData() {
	c := codec.NewRecordCodec()

	value := []byte{0xFF, 0xFE, 0xFD, 0xFC, 0xFB}

	encoded, err := c.Encode(value)
	if err != nil {
		log.Fatal(err)
	}

	record, err := c.Decode(encoded)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Binary value: %x\n", record.Value)

	// Output:
	// Binary value: fffefdfcfb
}

// ExampleRecordCodec_emptyData demonstrates handling an empty value.
func ExampleRecordCodec_emptyData() {
	c := codec.NewRecordCodec()

	encoded, err := c.Encode([]byte(""))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Empty value record: %d bytes\n", len(encoded))

	// Output:
	// Empty value record: 16 bytes
}
