// Package messages provides schema-level encode and decode helpers on
// top of the raw frame codec. Each message type pairs a fixed set of
// always-present fields with optional fields tracked by a presence
// bitmap; a single call produces or consumes a complete checksummed
// frame.
//
// Decoded byte fields (Symbol, Note) alias the input buffer and are
// valid only as long as that buffer is. A nil optional field means
// absent; an empty non-nil slice is encoded as present with zero
// length.
package messages
