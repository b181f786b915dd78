package codec

import "encoding/binary"

// FrameDecoder reads a frame from a borrowed buffer without copying.
// It holds only an immutable view, so multiple decoders may read the
// same buffer concurrently.
type FrameDecoder struct {
	buf []byte
}

// NewFrameDecoder returns a decoder over buf.
func NewFrameDecoder(buf []byte) FrameDecoder {
	return FrameDecoder{buf: buf}
}

// Header parses and validates the frame header. It performs no CRC
// check.
func (d FrameDecoder) Header() (FrameHeader, error) {
	return DecodeFrameHeader(d.buf)
}

// VerifyCRC32C checks the frame trailer against the header+body bytes.
//
// A corrupted header must not mask body corruption, so the check runs
// even when header validation fails: the raw len field is read from
// its fixed offset and, if it yields a plausible frame size, the CRC
// is still compared. A checksum mismatch always reports ErrCrcMismatch;
// a matching checksum reports the header validation result.
func (d FrameDecoder) VerifyCRC32C() error {
	header, headerErr := d.Header()

	var totalSize int
	if headerErr == nil {
		totalSize = header.TotalSize()
	} else {
		if len(d.buf) < HeaderSize {
			return ErrUnexpectedEOF
		}
		rawLen := int(binary.LittleEndian.Uint32(d.buf[lenOffset : lenOffset+4]))
		if rawLen > MaxFrameSize-HeaderSize-TrailerSize {
			return headerErr
		}
		totalSize = HeaderSize + rawLen + TrailerSize
	}

	if len(d.buf) < totalSize {
		return ErrUnexpectedEOF
	}

	crcStart := totalSize - TrailerSize
	stored := binary.LittleEndian.Uint32(d.buf[crcStart:totalSize])
	if !Verify(d.buf[:crcStart], stored) {
		return ErrCrcMismatch
	}
	return headerErr
}

// Body returns a cursor over exactly the body bytes declared by the
// header. Returns ErrUnexpectedEOF when the buffer is shorter than the
// declared body.
func (d FrameDecoder) Body() (BodyCursor, error) {
	header, err := d.Header()
	if err != nil {
		return BodyCursor{}, err
	}
	bodyEnd := HeaderSize + int(header.Len)
	if len(d.buf) < bodyEnd {
		return BodyCursor{}, ErrUnexpectedEOF
	}
	return BodyCursor{buf: d.buf[HeaderSize:bodyEnd]}, nil
}

// FrameBuffer returns the exact header+body+trailer span of the frame.
func (d FrameDecoder) FrameBuffer() ([]byte, error) {
	header, err := d.Header()
	if err != nil {
		return nil, err
	}
	totalSize := header.TotalSize()
	if len(d.buf) < totalSize {
		return nil, ErrUnexpectedEOF
	}
	return d.buf[:totalSize], nil
}

// BodyCursor is a position-tracked reader over a frame body. It does
// not own the underlying bytes and must not outlive the buffer the
// frame was decoded from. Slices returned by Get and Peek methods
// alias that buffer.
type BodyCursor struct {
	buf []byte
	pos int
}

// Remaining returns the number of unread body bytes.
func (c *BodyCursor) Remaining() int {
	return len(c.buf) - c.pos
}

// IsAtEnd reports whether the cursor has consumed the whole body.
func (c *BodyCursor) IsAtEnd() bool {
	return c.pos >= len(c.buf)
}

// Skip advances the cursor by n bytes.
func (c *BodyCursor) Skip(n int) error {
	if n < 0 || n > c.Remaining() {
		return ErrUnexpectedEOF
	}
	c.pos += n
	return nil
}

// GetU8 reads a single byte.
func (c *BodyCursor) GetU8() (uint8, error) {
	if c.pos >= len(c.buf) {
		return 0, ErrUnexpectedEOF
	}
	v := c.buf[c.pos]
	c.pos++
	return v, nil
}

// GetU16 reads a little-endian uint16.
func (c *BodyCursor) GetU16() (uint16, error) {
	if c.pos+2 > len(c.buf) {
		return 0, ErrUnexpectedEOF
	}
	v := binary.LittleEndian.Uint16(c.buf[c.pos:])
	c.pos += 2
	return v, nil
}

// GetU32 reads a little-endian uint32.
func (c *BodyCursor) GetU32() (uint32, error) {
	if c.pos+4 > len(c.buf) {
		return 0, ErrUnexpectedEOF
	}
	v := binary.LittleEndian.Uint32(c.buf[c.pos:])
	c.pos += 4
	return v, nil
}

// GetU64 reads a little-endian uint64.
func (c *BodyCursor) GetU64() (uint64, error) {
	if c.pos+8 > len(c.buf) {
		return 0, ErrUnexpectedEOF
	}
	v := binary.LittleEndian.Uint64(c.buf[c.pos:])
	c.pos += 8
	return v, nil
}

// GetI32 reads a little-endian int32.
func (c *BodyCursor) GetI32() (int32, error) {
	v, err := c.GetU32()
	return int32(v), err
}

// GetI64 reads a little-endian int64.
func (c *BodyCursor) GetI64() (int64, error) {
	v, err := c.GetU64()
	return int64(v), err
}

// GetBitmap reads a 16-bit little-endian presence bitmap.
func (c *BodyCursor) GetBitmap() (uint16, error) {
	return c.GetU16()
}

// GetVarBytes reads a varint length prefix followed by that many raw
// bytes. The returned slice aliases the input buffer.
func (c *BodyCursor) GetVarBytes() ([]byte, error) {
	length, n, err := Uvarint32(c.buf[c.pos:])
	if err != nil {
		return nil, err
	}
	c.pos += n
	if uint64(length) > uint64(c.Remaining()) {
		return nil, ErrUnexpectedEOF
	}
	b := c.buf[c.pos : c.pos+int(length)]
	c.pos += int(length)
	return b, nil
}

// GetBytes reads n raw bytes with no length prefix. The returned slice
// aliases the input buffer.
func (c *BodyCursor) GetBytes(n int) ([]byte, error) {
	if n < 0 || n > c.Remaining() {
		return nil, ErrUnexpectedEOF
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// GetUvarint32 reads a LEB128-encoded uint32.
func (c *BodyCursor) GetUvarint32() (uint32, error) {
	v, n, err := Uvarint32(c.buf[c.pos:])
	if err != nil {
		return 0, err
	}
	c.pos += n
	return v, nil
}

// GetUvarint64 reads a LEB128-encoded uint64.
func (c *BodyCursor) GetUvarint64() (uint64, error) {
	v, n, err := Uvarint64(c.buf[c.pos:])
	if err != nil {
		return 0, err
	}
	c.pos += n
	return v, nil
}

// PeekBytes returns the next n bytes without advancing the cursor. The
// returned slice aliases the input buffer.
func (c *BodyCursor) PeekBytes(n int) ([]byte, error) {
	if n < 0 || n > c.Remaining() {
		return nil, ErrUnexpectedEOF
	}
	return c.buf[c.pos : c.pos+n], nil
}
