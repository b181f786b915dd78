// Package codec implements the MiniBit binary wire protocol for
// low-latency message exchange.
//
// The codec encodes and decodes fixed-layout frames with integrity
// checking. Encoding writes directly into a caller-supplied buffer and
// decoding returns views into the input buffer, so neither direction
// allocates or copies on the hot path.
//
// # Frame Format
//
// Every frame is a 16-byte header, a variable-length body and a 4-byte
// CRC32C trailer. All multi-byte fields are little-endian:
//
//	| Offset | Size | Field                         |
//	|--------|------|-------------------------------|
//	| 0      | 2    | magic (0xFEED)                |
//	| 2      | 1    | version                       |
//	| 3      | 1    | flags                         |
//	| 4      | 2    | msg_type                      |
//	| 6      | 4    | seq                           |
//	| 10     | 4    | len (body length)             |
//	| 14     | 2    | reserved (must be 0)          |
//	| 16     | len  | body                          |
//	| 16+len | 4    | CRC32C over bytes [0, 16+len) |
//
// The total frame size is always between MinFrameSize (20 bytes) and
// MaxFrameSize (16 MiB).
//
// # Encoding
//
// FrameEncoder writes a frame sequentially into a caller buffer. The
// header is written first with a zero length field; FinishCRC32C
// back-patches the real body length and appends the checksum trailer:
//
//	enc := codec.NewFrameEncoder(buf)
//	header := codec.NewFrameHeader(1, seq, 0)
//	if err := enc.Begin(header); err != nil {
//	    return err
//	}
//	if err := enc.PutU64(tsNs); err != nil {
//	    return err
//	}
//	size, err := enc.FinishCRC32C()
//
// # Decoding
//
// FrameDecoder validates the header and checksum, and BodyCursor reads
// body fields in order. Byte slices returned by the cursor alias the
// input buffer and are only valid while that buffer is alive and
// unmodified:
//
//	dec := codec.NewFrameDecoder(frame)
//	if err := dec.VerifyCRC32C(); err != nil {
//	    return err
//	}
//	body, err := dec.Body()
//	tsNs, err := body.GetU64()
//
// # Error Handling
//
// All errors are fixed sentinel values with static messages so the
// decode path stays allocation free even on adversarial input. The
// codec never panics on malformed frames; every failure is reported as
// an error return.
//
// # Concurrency
//
// A FrameEncoder owns its buffer exclusively for the duration of one
// encode pass. FrameDecoder performs no mutation, so any number of
// decoders may read the same buffer from multiple goroutines.
package codec
