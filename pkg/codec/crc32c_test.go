package codec

import "testing"

// Reference values from RFC 3720 appendix B.4 and the iSCSI test
// vectors.
func TestChecksum_KnownVectors(t *testing.T) {
	testCases := []struct {
		name string
		data string
		want uint32
	}{
		{"empty", "", 0x00000000},
		{"check value", "123456789", 0xe3069283},
		{"fox", "The quick brown fox jumps over the lazy dog", 0x22620404},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Checksum([]byte(tc.data))
			if got != tc.want {
				t.Errorf("Checksum(%q) = 0x%08x, want 0x%08x", tc.data, got, tc.want)
			}
		})
	}
}

func TestChecksum_GenericMatchesAccelerated(t *testing.T) {
	inputs := [][]byte{
		nil,
		{0x00},
		{0xff},
		[]byte("123456789"),
		[]byte("The quick brown fox jumps over the lazy dog"),
	}

	// A deterministic pseudo-random block to exercise every table slot.
	block := make([]byte, 4096)
	state := uint32(0x12345678)
	for i := range block {
		state = state*1664525 + 1013904223
		block[i] = byte(state >> 24)
	}
	inputs = append(inputs, block)

	for _, in := range inputs {
		fast := Checksum(in)
		slow := checksumGeneric(in)
		if fast != slow {
			t.Errorf("checksum disagreement on %d bytes: fast=0x%08x slow=0x%08x", len(in), fast, slow)
		}
	}
}

func TestVerify(t *testing.T) {
	data := []byte("123456789")
	if !Verify(data, 0xe3069283) {
		t.Error("Verify rejected a correct checksum")
	}
	if Verify(data, 0xe3069284) {
		t.Error("Verify accepted an incorrect checksum")
	}
}

func TestChecksum_SingleBitSensitivity(t *testing.T) {
	data := []byte("sensitivity probe payload")
	base := Checksum(data)
	for i := range data {
		flipped := make([]byte, len(data))
		copy(flipped, data)
		flipped[i] ^= 0x01
		if Checksum(flipped) == base {
			t.Errorf("bit flip at byte %d did not change the checksum", i)
		}
	}
}
