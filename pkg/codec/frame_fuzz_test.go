//go:build fuzz
// +build fuzz

package codec

import (
	"bytes"
	"testing"
)

// FuzzFrame_RoundTrip encodes random payloads and checks that decode
// recovers them exactly with a passing checksum.
func FuzzFrame_RoundTrip(f *testing.F) {
	f.Add(uint16(1), uint32(0), []byte(""))
	f.Add(uint16(1), uint32(42), []byte("payload"))
	f.Add(uint16(0xFFFF), uint32(0xFFFFFFFF), []byte{0x00, 0xFF, 0x7F})

	f.Fuzz(func(t *testing.T, msgType uint16, seq uint32, body []byte) {
		if len(body) > 64*1024 {
			t.Skip("body too large for fuzz round trip")
		}

		buf := make([]byte, HeaderSize+MaxVarint32Len+len(body)+TrailerSize)
		enc := NewFrameEncoder(buf)
		if err := enc.Begin(NewFrameHeader(msgType, seq, 0)); err != nil {
			t.Fatalf("Begin failed: %v", err)
		}
		if err := enc.PutVarBytes(body); err != nil {
			t.Fatalf("PutVarBytes failed: %v", err)
		}
		total, err := enc.FinishCRC32C()
		if err != nil {
			t.Fatalf("FinishCRC32C failed: %v", err)
		}

		dec := NewFrameDecoder(buf[:total])
		if err := dec.VerifyCRC32C(); err != nil {
			t.Fatalf("checksum failed on fresh frame: %v", err)
		}
		header, err := dec.Header()
		if err != nil {
			t.Fatalf("Header failed: %v", err)
		}
		if header.MsgType != msgType || header.Seq != seq {
			t.Fatalf("header mismatch: got %+v", header)
		}

		cursor, err := dec.Body()
		if err != nil {
			t.Fatalf("Body failed: %v", err)
		}
		got, err := cursor.GetVarBytes()
		if err != nil {
			t.Fatalf("GetVarBytes failed: %v", err)
		}
		if !bytes.Equal(got, body) {
			t.Fatalf("body mismatch: got %x, want %x", got, body)
		}
	})
}

// FuzzFrameDecoder_Hostile feeds arbitrary bytes to the decoder. The
// decoder must return an error or a valid frame, never panic.
func FuzzFrameDecoder_Hostile(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0xED, 0xFE})
	f.Add(bytes.Repeat([]byte{0xFF}, MinFrameSize))

	valid := make([]byte, 64)
	enc := NewFrameEncoder(valid)
	_ = enc.Begin(NewFrameHeader(1, 1, 0))
	_ = enc.PutU32(7)
	n, _ := enc.FinishCRC32C()
	f.Add(append([]byte(nil), valid[:n]...))

	f.Fuzz(func(t *testing.T, data []byte) {
		dec := NewFrameDecoder(data)
		if err := dec.VerifyCRC32C(); err != nil {
			return
		}
		header, err := dec.Header()
		if err != nil {
			t.Fatalf("checksum passed but header failed: %v", err)
		}
		cursor, err := dec.Body()
		if err != nil {
			t.Fatalf("checksum passed but body is short: %v", err)
		}
		if cursor.Remaining() != int(header.Len) {
			t.Fatalf("body length %d disagrees with header %d", cursor.Remaining(), header.Len)
		}
	})
}

// FuzzUvarint64_Hostile decodes arbitrary bytes; a successful decode
// must re-encode to the same prefix.
func FuzzUvarint64_Hostile(f *testing.F) {
	f.Add([]byte{0x00})
	f.Add([]byte{0x80, 0x01})
	f.Add(bytes.Repeat([]byte{0x80}, 11))

	f.Fuzz(func(t *testing.T, data []byte) {
		v, n, err := Uvarint64(data)
		if err != nil {
			return
		}
		var buf [MaxVarint64Len]byte
		m, err := PutUvarint64(buf[:], v)
		if err != nil {
			t.Fatalf("re-encode failed for %d: %v", v, err)
		}
		// The source may be non-minimal; the re-encoding never is.
		if m > n {
			t.Fatalf("re-encoded %d into %d bytes, source used %d", v, m, n)
		}
	})
}
