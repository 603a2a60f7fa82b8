package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/dw/centidb/pkg/codec"
	"github.com/dw/centidb/pkg/keycoder"
)

// ErrKeyNotFound is returned by Get and GetWithTimestamp when the tuple has
// no entry.
var ErrKeyNotFound = errors.New("store: key not found")

// ErrInvalidKey is returned when a tuple fails to encode to a Pebble key.
var ErrInvalidKey = errors.New("store: invalid key")

var rc = codec.NewRecordCodec()

// Store is an ordered key-value store over a local Pebble instance, keyed
// with pkg/keycoder so that Scan's iteration order matches tuple order, and
// valued with pkg/codec's checksummed, timestamped record framing. The
// record envelope carries no copy of the key — Pebble's own key space
// already holds it.
type Store struct {
	db *pebble.DB
}

// Open opens (creating if necessary) a Store backed by a Pebble instance at
// config.DataDir.
func Open(config Config) (*Store, error) {
	db, err := pebble.Open(config.DataDir, &pebble.Options{})
	if err != nil {
		return nil, wrapErr("open", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying Pebble handle.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return wrapErr("close", err)
	}
	return nil
}

// prefixUpperBound returns the smallest key that sorts after every key
// beginning with prefix, by incrementing its last byte that isn't already
// 0xFF and dropping the rest. A nil result (all-0xFF or empty prefix) means
// "no upper bound" — every key sorts within it.
func prefixUpperBound(prefix []byte) []byte {
	for i := len(prefix) - 1; i >= 0; i-- {
		if prefix[i] == 0xFF {
			continue
		}
		bound := make([]byte, i+1)
		copy(bound, prefix[:i+1])
		bound[i]++
		return bound
	}
	return nil
}

func packKey(tuple keycoder.Tuple) ([]byte, error) {
	key, err := keycoder.Pack(nil, tuple)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return key, nil
}

// Put packs tuple into a Pebble key and frames value through the record
// codec before writing both with pebble.NoSync — durability is the
// surrounding deployment's concern, not this store's.
func (s *Store) Put(tuple keycoder.Tuple, value []byte) error {
	key, err := packKey(tuple)
	if err != nil {
		return err
	}
	rec, err := rc.Encode(value)
	if err != nil {
		return wrapErr("put", err)
	}
	if err := s.db.Set(key, rec, pebble.NoSync); err != nil {
		return wrapErr("put", err)
	}
	return nil
}

// Get packs tuple, reads the matching Pebble entry, and decodes the record
// envelope, returning ErrKeyNotFound when no entry exists.
func (s *Store) Get(tuple keycoder.Tuple) ([]byte, error) {
	value, _, err := s.getRecord(tuple)
	return value, err
}

// GetWithTimestamp is Get plus the wall-clock time the value was written,
// read back from the record envelope's WrittenAt field. pkg/api's
// handleGet surfaces this as write provenance alongside the value.
func (s *Store) GetWithTimestamp(tuple keycoder.Tuple) ([]byte, time.Time, error) {
	return s.getRecord(tuple)
}

func (s *Store) getRecord(tuple keycoder.Tuple) ([]byte, time.Time, error) {
	key, err := packKey(tuple)
	if err != nil {
		return nil, time.Time{}, err
	}
	data, closer, err := s.db.Get(key)
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, time.Time{}, ErrKeyNotFound
		}
		return nil, time.Time{}, wrapErr("get", err)
	}
	defer closer.Close()

	rec, err := rc.Decode(data)
	if err != nil {
		return nil, time.Time{}, wrapErr("get", err)
	}
	if err := rec.Validate(); err != nil {
		return nil, time.Time{}, wrapErr("get", err)
	}
	value := make([]byte, len(rec.Value))
	copy(value, rec.Value)
	return value, time.Unix(0, int64(rec.WrittenAt)), nil
}

// Delete removes tuple's entry. It is not an error to delete a tuple that
// does not exist, matching Pebble's own Delete semantics.
func (s *Store) Delete(tuple keycoder.Tuple) error {
	key, err := packKey(tuple)
	if err != nil {
		return err
	}
	if err := s.db.Delete(key, pebble.NoSync); err != nil {
		return wrapErr("delete", err)
	}
	return nil
}

// Scan iterates every entry whose key was packed from a tuple beginning
// with prefix, in ascending byte order — which, by the codec's
// order-preservation invariant, is ascending tuple order — and calls fn
// with each entry's tuple and value. Iteration stops at the first error fn
// returns.
func (s *Store) Scan(prefix keycoder.Tuple, fn func(tuple keycoder.Tuple, value []byte) error) error {
	packedPrefix, err := packKey(prefix)
	if err != nil {
		return err
	}

	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: packedPrefix,
		UpperBound: prefixUpperBound(packedPrefix),
	})
	if err != nil {
		return wrapErr("scan", err)
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		key := append([]byte(nil), iter.Key()...)
		data := append([]byte(nil), iter.Value()...)

		rec, err := rc.Decode(data)
		if err != nil {
			return wrapErr("scan", err)
		}
		if err := rec.Validate(); err != nil {
			return wrapErr("scan", err)
		}

		tuple, err := keycoder.Unpack(packedPrefix, key)
		if err != nil {
			return wrapErr("scan", err)
		}

		if err := fn(tuple, rec.Value); err != nil {
			return err
		}
	}
	if err := iter.Error(); err != nil {
		return wrapErr("scan", err)
	}
	return nil
}
