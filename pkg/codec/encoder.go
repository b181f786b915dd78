package codec

import "encoding/binary"

// FrameEncoder writes frames sequentially into a caller-supplied
// buffer. A frame is produced by Begin, a series of Put calls, and
// FinishCRC32C; consecutive frames may be encoded back to back into
// the same buffer. The encoder owns the buffer exclusively between
// Begin and FinishCRC32C.
type FrameEncoder struct {
	buf         []byte
	pos         int
	headerStart int
	bodyStart   int
	inFrame     bool
}

// NewFrameEncoder returns an encoder positioned at the start of buf.
func NewFrameEncoder(buf []byte) FrameEncoder {
	return FrameEncoder{buf: buf}
}

// Begin starts a new frame by writing header with a zero length field;
// FinishCRC32C back-patches the real length. Beginning while a frame
// is in progress discards that frame's partial bytes.
func (e *FrameEncoder) Begin(header FrameHeader) error {
	if e.inFrame {
		e.pos = e.headerStart
	}
	if e.pos+HeaderSize > len(e.buf) {
		return ErrShortBuffer
	}
	e.headerStart = e.pos
	header.Len = 0
	if err := header.Encode(e.buf[e.pos : e.pos+HeaderSize]); err != nil {
		return err
	}
	e.pos += HeaderSize
	e.bodyStart = e.pos
	e.inFrame = true
	return nil
}

// PutU8 appends a single byte to the body.
func (e *FrameEncoder) PutU8(v uint8) error {
	if !e.inFrame {
		return ErrDecodeInvariant
	}
	if e.pos >= len(e.buf) {
		return ErrShortBuffer
	}
	e.buf[e.pos] = v
	e.pos++
	return nil
}

// PutU16 appends a little-endian uint16 to the body.
func (e *FrameEncoder) PutU16(v uint16) error {
	if !e.inFrame {
		return ErrDecodeInvariant
	}
	if e.pos+2 > len(e.buf) {
		return ErrShortBuffer
	}
	binary.LittleEndian.PutUint16(e.buf[e.pos:], v)
	e.pos += 2
	return nil
}

// PutU32 appends a little-endian uint32 to the body.
func (e *FrameEncoder) PutU32(v uint32) error {
	if !e.inFrame {
		return ErrDecodeInvariant
	}
	if e.pos+4 > len(e.buf) {
		return ErrShortBuffer
	}
	binary.LittleEndian.PutUint32(e.buf[e.pos:], v)
	e.pos += 4
	return nil
}

// PutU64 appends a little-endian uint64 to the body.
func (e *FrameEncoder) PutU64(v uint64) error {
	if !e.inFrame {
		return ErrDecodeInvariant
	}
	if e.pos+8 > len(e.buf) {
		return ErrShortBuffer
	}
	binary.LittleEndian.PutUint64(e.buf[e.pos:], v)
	e.pos += 8
	return nil
}

// PutI32 appends a little-endian int32 to the body.
func (e *FrameEncoder) PutI32(v int32) error {
	return e.PutU32(uint32(v))
}

// PutI64 appends a little-endian int64 to the body.
func (e *FrameEncoder) PutI64(v int64) error {
	return e.PutU64(uint64(v))
}

// PutBitmap appends a 16-bit little-endian presence bitmap.
func (e *FrameEncoder) PutBitmap(bitsVal uint16) error {
	return e.PutU16(bitsVal)
}

// PutVarBytes appends a varint length prefix followed by b.
func (e *FrameEncoder) PutVarBytes(b []byte) error {
	if !e.inFrame {
		return ErrDecodeInvariant
	}
	n, err := PutUvarint32(e.buf[e.pos:], uint32(len(b)))
	if err != nil {
		return err
	}
	e.pos += n
	if e.pos+len(b) > len(e.buf) {
		return ErrShortBuffer
	}
	copy(e.buf[e.pos:], b)
	e.pos += len(b)
	return nil
}

// PutBytes appends b with no length prefix.
func (e *FrameEncoder) PutBytes(b []byte) error {
	if !e.inFrame {
		return ErrDecodeInvariant
	}
	if e.pos+len(b) > len(e.buf) {
		return ErrShortBuffer
	}
	copy(e.buf[e.pos:], b)
	e.pos += len(b)
	return nil
}

// PutUvarint32 appends v as a LEB128 varint.
func (e *FrameEncoder) PutUvarint32(v uint32) error {
	if !e.inFrame {
		return ErrDecodeInvariant
	}
	n, err := PutUvarint32(e.buf[e.pos:], v)
	if err != nil {
		return err
	}
	e.pos += n
	return nil
}

// PutUvarint64 appends v as a LEB128 varint.
func (e *FrameEncoder) PutUvarint64(v uint64) error {
	if !e.inFrame {
		return ErrDecodeInvariant
	}
	n, err := PutUvarint64(e.buf[e.pos:], v)
	if err != nil {
		return err
	}
	e.pos += n
	return nil
}

// Position returns the current write position in the buffer.
func (e *FrameEncoder) Position() int {
	return e.pos
}

// Remaining returns the unused buffer capacity.
func (e *FrameEncoder) Remaining() int {
	return len(e.buf) - e.pos
}

// FinishCRC32C back-patches the header length field with the body
// size, appends the CRC32C trailer covering header and body, and
// returns the total frame size. Calling it without a frame in progress
// returns ErrDecodeInvariant.
func (e *FrameEncoder) FinishCRC32C() (int, error) {
	if !e.inFrame {
		return 0, ErrDecodeInvariant
	}
	bodyLen := e.pos - e.bodyStart
	binary.LittleEndian.PutUint32(e.buf[e.headerStart+lenOffset:], uint32(bodyLen))

	crc := Checksum(e.buf[e.headerStart:e.pos])
	if e.pos+TrailerSize > len(e.buf) {
		return 0, ErrShortBuffer
	}
	binary.LittleEndian.PutUint32(e.buf[e.pos:], crc)
	e.pos += TrailerSize
	e.inFrame = false
	return e.pos - e.headerStart, nil
}

// Reset rewinds the encoder to the start of its buffer for reuse. The
// previously encoded bytes are overwritten by the next frame.
func (e *FrameEncoder) Reset() {
	e.pos = 0
	e.headerStart = 0
	e.bodyStart = 0
	e.inFrame = false
}

// Bytes returns the bytes of the frame encoded since the last Begin.
func (e *FrameEncoder) Bytes() []byte {
	return e.buf[e.headerStart:e.pos]
}
