package codec

// Variable-length integer encoding (LEB128): 7 payload bits per byte,
// least-significant group first, continuation bit 0x80 on all but the
// last byte. Used for length prefixes of variable-length fields.

const (
	// MaxVarint32Len is the maximum encoded size of a 32-bit varint.
	MaxVarint32Len = 5

	// MaxVarint64Len is the maximum encoded size of a 64-bit varint.
	MaxVarint64Len = 10
)

// PutUvarint32 encodes v into buf and returns the number of bytes
// written. Returns ErrShortBuffer if buf cannot hold the encoding.
func PutUvarint32(buf []byte, v uint32) (int, error) {
	pos := 0
	for {
		if pos >= len(buf) {
			return 0, ErrShortBuffer
		}
		if v < 0x80 {
			buf[pos] = byte(v)
			return pos + 1, nil
		}
		buf[pos] = byte(v) | 0x80
		v >>= 7
		pos++
	}
}

// Uvarint32 decodes a 32-bit varint from buf and returns the value and
// the number of bytes consumed. Returns ErrUnexpectedEOF for truncated
// input and ErrOverflow if the encoding exceeds 32 bits.
func Uvarint32(buf []byte) (uint32, int, error) {
	var v uint32
	shift := uint(0)
	pos := 0
	for {
		if pos >= len(buf) {
			return 0, 0, ErrUnexpectedEOF
		}
		if shift >= 32 {
			return 0, 0, ErrOverflow
		}
		b := buf[pos]
		pos++
		v |= uint32(b&0x7F) << shift
		if b&0x80 == 0 {
			return v, pos, nil
		}
		shift += 7
	}
}

// PutUvarint64 encodes v into buf and returns the number of bytes
// written. Returns ErrShortBuffer if buf cannot hold the encoding.
func PutUvarint64(buf []byte, v uint64) (int, error) {
	pos := 0
	for {
		if pos >= len(buf) {
			return 0, ErrShortBuffer
		}
		if v < 0x80 {
			buf[pos] = byte(v)
			return pos + 1, nil
		}
		buf[pos] = byte(v) | 0x80
		v >>= 7
		pos++
	}
}

// Uvarint64 decodes a 64-bit varint from buf and returns the value and
// the number of bytes consumed. Returns ErrUnexpectedEOF for truncated
// input and ErrOverflow if the encoding exceeds 64 bits.
func Uvarint64(buf []byte) (uint64, int, error) {
	var v uint64
	shift := uint(0)
	pos := 0
	for {
		if pos >= len(buf) {
			return 0, 0, ErrUnexpectedEOF
		}
		if shift >= 64 {
			return 0, 0, ErrOverflow
		}
		b := buf[pos]
		pos++
		v |= uint64(b&0x7F) << shift
		if b&0x80 == 0 {
			return v, pos, nil
		}
		shift += 7
	}
}
