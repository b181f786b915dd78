package codec

import "testing"

func TestUvarint32_RoundTrip(t *testing.T) {
	testCases := []struct {
		value   uint32
		wantLen int
	}{
		{0, 1},
		{1, 1},
		{127, 1},
		{128, 2},
		{16383, 2},
		{16384, 3},
		{2097151, 3},
		{2097152, 4},
		{268435455, 4},
		{268435456, 5},
		{4294967295, 5},
	}

	for _, tc := range testCases {
		var buf [MaxVarint32Len]byte
		n, err := PutUvarint32(buf[:], tc.value)
		if err != nil {
			t.Fatalf("PutUvarint32(%d) failed: %v", tc.value, err)
		}
		if n != tc.wantLen {
			t.Errorf("PutUvarint32(%d) wrote %d bytes, want minimal length %d", tc.value, n, tc.wantLen)
		}

		got, consumed, err := Uvarint32(buf[:n])
		if err != nil {
			t.Fatalf("Uvarint32 failed for %d: %v", tc.value, err)
		}
		if got != tc.value {
			t.Errorf("round trip mismatch: got %d, want %d", got, tc.value)
		}
		if consumed != n {
			t.Errorf("consumed %d bytes, want %d", consumed, n)
		}
	}
}

func TestUvarint64_RoundTrip(t *testing.T) {
	testCases := []struct {
		value   uint64
		wantLen int
	}{
		{0, 1},
		{1, 1},
		{127, 1},
		{128, 2},
		{16383, 2},
		{16384, 3},
		{4294967295, 5},
		{4294967296, 5},
		{1<<35 - 1, 5},
		{1 << 35, 6},
		{18446744073709551615, 10},
	}

	for _, tc := range testCases {
		var buf [MaxVarint64Len]byte
		n, err := PutUvarint64(buf[:], tc.value)
		if err != nil {
			t.Fatalf("PutUvarint64(%d) failed: %v", tc.value, err)
		}
		if n != tc.wantLen {
			t.Errorf("PutUvarint64(%d) wrote %d bytes, want minimal length %d", tc.value, n, tc.wantLen)
		}

		got, consumed, err := Uvarint64(buf[:n])
		if err != nil {
			t.Fatalf("Uvarint64 failed for %d: %v", tc.value, err)
		}
		if got != tc.value {
			t.Errorf("round trip mismatch: got %d, want %d", got, tc.value)
		}
		if consumed != n {
			t.Errorf("consumed %d bytes, want %d", consumed, n)
		}
	}
}

func TestUvarint_ShortBuffer(t *testing.T) {
	var small [2]byte
	if _, err := PutUvarint32(small[:], 4294967295); err != ErrShortBuffer {
		t.Errorf("expected ErrShortBuffer, got %v", err)
	}
	if _, err := PutUvarint64(small[:], 1<<40); err != ErrShortBuffer {
		t.Errorf("expected ErrShortBuffer, got %v", err)
	}
	if _, err := PutUvarint32(nil, 0); err != ErrShortBuffer {
		t.Errorf("expected ErrShortBuffer for empty buffer, got %v", err)
	}
}

func TestUvarint_Truncated(t *testing.T) {
	// Continuation bit set with no following byte.
	truncated := []byte{0x80}
	if _, _, err := Uvarint32(truncated); err != ErrUnexpectedEOF {
		t.Errorf("expected ErrUnexpectedEOF, got %v", err)
	}
	if _, _, err := Uvarint64(truncated); err != ErrUnexpectedEOF {
		t.Errorf("expected ErrUnexpectedEOF, got %v", err)
	}
	if _, _, err := Uvarint32(nil); err != ErrUnexpectedEOF {
		t.Errorf("expected ErrUnexpectedEOF for empty input, got %v", err)
	}
}

func TestUvarint_Overflow(t *testing.T) {
	// Six continuation groups exceed the 32-bit shift budget.
	tooWide32 := []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x01}
	if _, _, err := Uvarint32(tooWide32); err != ErrOverflow {
		t.Errorf("expected ErrOverflow, got %v", err)
	}

	// Eleven groups exceed the 64-bit shift budget.
	tooWide64 := []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x01}
	if _, _, err := Uvarint64(tooWide64); err != ErrOverflow {
		t.Errorf("expected ErrOverflow, got %v", err)
	}
}
