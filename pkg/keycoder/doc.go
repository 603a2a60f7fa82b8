// Package keycoder implements the order-preserving tuple codec used to build
// keys for centidb's sorted store (pkg/store), which persists them directly
// as Pebble keys.
//
// # Wire Format
//
// A key is a sequence of elements, each written as a one-byte kind tag
// followed by a kind-specific payload:
//
//	NULL        0x0F   (no payload)
//	NEG_INTEGER 0x14   varint of abs(v)
//	INTEGER     0x15   varint of v
//	BOOL        0x1E   varint of 0 or 1
//	BLOB        0x28   bit-stuffed string of raw bytes
//	TEXT        0x32   bit-stuffed string of UTF-8 bytes
//	NEG_TIME    0x3C   varint of abs(composite timestamp)
//	TIME        0x3D   varint of composite timestamp
//	UUID        0x5A   bit-stuffed string of 16 raw bytes
//	SEP         0x66   (no payload; tuple boundary inside a KeyList)
//
// The tag values above are frozen as format version 1: any change to them,
// or to the varint or string encodings, breaks on-disk compatibility with
// every key written under this version.
//
// Byte-wise comparison of two encoded keys reproduces the natural ordering
// of the tuples they were packed from, which is the entire point of the
// exercise — this is what lets a sorted key-value store use packed keys
// directly as its iteration order.
//
// # Negative integers
//
// Within NEG_INTEGER, values are varint-encoded by absolute value, so -1
// sorts after -2. This is a documented quirk of the on-disk format, not a
// bug: fixing it would break compatibility with existing data. See
// DESIGN.md for the reasoning.
//
// # Usage
//
//	key, err := keycoder.Pack(nil, keycoder.Tuple{"users", 42})
//	if err != nil {
//	    return err
//	}
//	tup, err := keycoder.Unpack(nil, key)
package keycoder
