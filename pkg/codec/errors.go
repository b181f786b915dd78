package codec

// Error is a codec failure with a fixed message. Errors carry no
// dynamic data so encode and decode stay allocation free; compare with
// errors.Is or direct equality.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Errors
var (
	ErrShortBuffer        = &Error{"buffer too small for operation"}
	ErrCrcMismatch        = &Error{"crc32c checksum verification failed"}
	ErrInvalidMagic       = &Error{"invalid magic number in frame header"}
	ErrUnsupportedVersion = &Error{"unsupported protocol version"}
	ErrUnexpectedEOF      = &Error{"unexpected end of frame data"}
	ErrOverflow           = &Error{"integer overflow in size calculation"}
	ErrFlagConflict       = &Error{"reserved flag bits set in frame header"}
	ErrDecodeInvariant    = &Error{"encoder or decoder invariant violated"}
	ErrUnsupportedMsgType = &Error{"unsupported message type"}
	ErrInvalidVarint      = &Error{"invalid varint encoding"}
)
