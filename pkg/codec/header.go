package codec

import "encoding/binary"

// Protocol constants.
const (
	// Magic identifies a MiniBit frame.
	Magic uint16 = 0xFEED

	// Version is the single supported protocol version.
	Version uint8 = 1

	// HeaderSize is the fixed frame header size in bytes.
	HeaderSize = 16

	// TrailerSize is the CRC32C trailer size in bytes.
	TrailerSize = 4

	// MinFrameSize is a header plus trailer with an empty body.
	MinFrameSize = HeaderSize + TrailerSize

	// MaxFrameSize caps the total frame size at 16 MiB.
	MaxFrameSize = 16 * 1024 * 1024
)

// Frame flag bits. Only the low three bits are defined; the rest are
// reserved and must be zero.
const (
	// FlagPresenceBitmap marks a body that carries a presence bitmap.
	FlagPresenceBitmap uint8 = 0x01

	// FlagCompressed is reserved for body compression (unimplemented).
	FlagCompressed uint8 = 0x02

	// FlagEncrypted is reserved for body encryption (unimplemented).
	FlagEncrypted uint8 = 0x04

	flagReservedMask uint8 = 0xF8
)

// lenOffset is the byte offset of the len field within the header.
const lenOffset = 10

// FrameHeader is the fixed 16-byte prefix of every frame. Two reserved
// bytes at offsets 14..16 are always zero on the wire and are not
// represented here.
type FrameHeader struct {
	Magic   uint16
	Ver     uint8
	Flags   uint8
	MsgType uint16
	Seq     uint32
	Len     uint32
}

// NewFrameHeader returns a header with magic and version defaulted and
// no flags set.
func NewFrameHeader(msgType uint16, seq, bodyLen uint32) FrameHeader {
	return FrameHeader{
		Magic:   Magic,
		Ver:     Version,
		MsgType: msgType,
		Seq:     seq,
		Len:     bodyLen,
	}
}

// SetFlag sets the given flag bit.
func (h *FrameHeader) SetFlag(flag uint8) {
	h.Flags |= flag
}

// ClearFlag clears the given flag bit.
func (h *FrameHeader) ClearFlag(flag uint8) {
	h.Flags &^= flag
}

// HasFlag reports whether the given flag bit is set.
func (h FrameHeader) HasFlag(flag uint8) bool {
	return h.Flags&flag != 0
}

// Validate checks the header fields in a fixed order: magic, version,
// reserved flag bits, then total frame size bounds.
func (h FrameHeader) Validate() error {
	if h.Magic != Magic {
		return ErrInvalidMagic
	}
	if h.Ver != Version {
		return ErrUnsupportedVersion
	}
	if h.Flags&flagReservedMask != 0 {
		return ErrFlagConflict
	}
	total := uint64(h.Len) + HeaderSize + TrailerSize
	if total < MinFrameSize || total > MaxFrameSize {
		return ErrOverflow
	}
	return nil
}

// Encode writes the header into the first HeaderSize bytes of buf in
// little-endian layout, zeroing the reserved bytes.
func (h FrameHeader) Encode(buf []byte) error {
	if len(buf) < HeaderSize {
		return ErrShortBuffer
	}
	binary.LittleEndian.PutUint16(buf[0:2], h.Magic)
	buf[2] = h.Ver
	buf[3] = h.Flags
	binary.LittleEndian.PutUint16(buf[4:6], h.MsgType)
	binary.LittleEndian.PutUint32(buf[6:10], h.Seq)
	binary.LittleEndian.PutUint32(buf[10:14], h.Len)
	buf[14] = 0
	buf[15] = 0
	return nil
}

// DecodeFrameHeader parses and validates a header from buf. Returns
// ErrUnexpectedEOF when fewer than HeaderSize bytes are available; a
// successfully returned header always passed Validate.
func DecodeFrameHeader(buf []byte) (FrameHeader, error) {
	if len(buf) < HeaderSize {
		return FrameHeader{}, ErrUnexpectedEOF
	}
	h := FrameHeader{
		Magic:   binary.LittleEndian.Uint16(buf[0:2]),
		Ver:     buf[2],
		Flags:   buf[3],
		MsgType: binary.LittleEndian.Uint16(buf[4:6]),
		Seq:     binary.LittleEndian.Uint32(buf[6:10]),
		Len:     binary.LittleEndian.Uint32(buf[10:14]),
	}
	if err := h.Validate(); err != nil {
		return FrameHeader{}, err
	}
	return h, nil
}

// TotalSize returns the complete frame size: header + body + trailer.
func (h FrameHeader) TotalSize() int {
	return HeaderSize + int(h.Len) + TrailerSize
}
