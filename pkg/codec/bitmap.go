package codec

import (
	"encoding/binary"
	"math/bits"
)

// BitmapWidth selects the encoded form of a presence bitmap.
type BitmapWidth int

const (
	// BitmapWidth8 is the narrow 1-byte form covering 8 fields.
	BitmapWidth8 BitmapWidth = iota

	// BitmapWidth16 is the wide 2-byte form covering 16 fields.
	BitmapWidth16
)

// Bytes returns the encoded size of the bitmap in bytes.
func (w BitmapWidth) Bytes() int {
	if w == BitmapWidth8 {
		return 1
	}
	return 2
}

// MaxFields returns the number of field indices the width can track.
func (w BitmapWidth) MaxFields() int {
	if w == BitmapWidth8 {
		return 8
	}
	return 16
}

// PresenceBitmap records which optional fields of a message are
// present. Field indices follow the declared order of the schema;
// decode order must match encode order exactly.
type PresenceBitmap struct {
	bitsVal uint16
	width   BitmapWidth
}

// NewPresenceBitmap returns an empty bitmap of the given width.
func NewPresenceBitmap(width BitmapWidth) PresenceBitmap {
	return PresenceBitmap{width: width}
}

// PresenceBitmapFromBits wraps a raw bits value in a bitmap.
func PresenceBitmapFromBits(bitsVal uint16, width BitmapWidth) PresenceBitmap {
	return PresenceBitmap{bitsVal: bitsVal, width: width}
}

// Bits returns the raw underlying bits.
func (b PresenceBitmap) Bits() uint16 {
	return b.bitsVal
}

// Width returns the bitmap width.
func (b PresenceBitmap) Width() BitmapWidth {
	return b.width
}

// Set marks the field at idx as present. Returns ErrOverflow when idx
// is outside the width's field range.
func (b *PresenceBitmap) Set(idx int) error {
	if idx < 0 || idx >= b.width.MaxFields() {
		return ErrOverflow
	}
	b.bitsVal |= 1 << idx
	return nil
}

// Clear marks the field at idx as absent. Returns ErrOverflow when idx
// is outside the width's field range.
func (b *PresenceBitmap) Clear(idx int) error {
	if idx < 0 || idx >= b.width.MaxFields() {
		return ErrOverflow
	}
	b.bitsVal &^= 1 << idx
	return nil
}

// IsSet reports whether the field at idx is present. Out-of-range
// indices report false.
func (b PresenceBitmap) IsSet(idx int) bool {
	if idx < 0 || idx >= b.width.MaxFields() {
		return false
	}
	return b.bitsVal>>idx&1 != 0
}

// CountSet returns the number of present fields.
func (b PresenceBitmap) CountSet() int {
	return bits.OnesCount16(b.bitsVal)
}

// IsEmpty reports whether no fields are present.
func (b PresenceBitmap) IsEmpty() bool {
	return b.bitsVal == 0
}

// Encode writes the bitmap as raw little-endian bytes (1 or 2
// depending on width, never varint) and returns the bytes written.
func (b PresenceBitmap) Encode(buf []byte) (int, error) {
	switch b.width {
	case BitmapWidth8:
		if len(buf) < 1 {
			return 0, ErrShortBuffer
		}
		buf[0] = byte(b.bitsVal)
		return 1, nil
	default:
		if len(buf) < 2 {
			return 0, ErrShortBuffer
		}
		binary.LittleEndian.PutUint16(buf, b.bitsVal)
		return 2, nil
	}
}

// DecodePresenceBitmap reads a bitmap of the given width from buf and
// returns it with the number of bytes consumed.
func DecodePresenceBitmap(buf []byte, width BitmapWidth) (PresenceBitmap, int, error) {
	switch width {
	case BitmapWidth8:
		if len(buf) < 1 {
			return PresenceBitmap{}, 0, ErrUnexpectedEOF
		}
		return PresenceBitmapFromBits(uint16(buf[0]), width), 1, nil
	default:
		if len(buf) < 2 {
			return PresenceBitmap{}, 0, ErrUnexpectedEOF
		}
		return PresenceBitmapFromBits(binary.LittleEndian.Uint16(buf), width), 2, nil
	}
}

// IterSet calls fn for each present field index in ascending order,
// stopping early if fn returns false.
func (b PresenceBitmap) IterSet(fn func(idx int) bool) {
	for i := 0; i < b.width.MaxFields(); i++ {
		if b.IsSet(i) && !fn(i) {
			return
		}
	}
}
