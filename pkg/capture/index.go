package capture

import (
	"encoding/binary"

	"github.com/cockroachdb/pebble"
)

// SeqIndex maps frame sequence numbers to byte offsets in the capture
// file. Keys are big-endian so pebble iterates in sequence order.
type SeqIndex struct {
	db *pebble.DB
}

// OpenSeqIndex opens (or creates) the index at path.
func OpenSeqIndex(path string) (*SeqIndex, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, err
	}
	return &SeqIndex{db: db}, nil
}

// Put records the offset of the frame with the given sequence number.
func (idx *SeqIndex) Put(seq uint32, offset int64) error {
	var key [4]byte
	var value [8]byte
	binary.BigEndian.PutUint32(key[:], seq)
	binary.LittleEndian.PutUint64(value[:], uint64(offset))
	return idx.db.Set(key[:], value[:], pebble.NoSync)
}

// Get returns the offset of the frame with the given sequence number.
func (idx *SeqIndex) Get(seq uint32) (int64, error) {
	var key [4]byte
	binary.BigEndian.PutUint32(key[:], seq)

	value, closer, err := idx.db.Get(key[:])
	if err != nil {
		if err == pebble.ErrNotFound {
			return 0, ErrSeqNotFound
		}
		return 0, err
	}
	defer closer.Close()

	if len(value) != 8 {
		return 0, ErrCorruption
	}
	return int64(binary.LittleEndian.Uint64(value)), nil
}

// Delete removes the index entry for the given sequence number.
func (idx *SeqIndex) Delete(seq uint32) error {
	var key [4]byte
	binary.BigEndian.PutUint32(key[:], seq)
	return idx.db.Delete(key[:], pebble.NoSync)
}

// Close closes the underlying database.
func (idx *SeqIndex) Close() error {
	return idx.db.Close()
}
