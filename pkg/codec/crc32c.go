package codec

import "hash/crc32"

// crc32cPoly is the Castagnoli polynomial in reflected form.
const crc32cPoly uint32 = 0x82F63B78

var (
	// crc32cTable drives the portable software implementation.
	crc32cTable = makeCRC32CTable()

	// castagnoli is the stdlib table; hash/crc32 dispatches to the
	// SSE4.2 / ARMv8 CRC instructions through it when available.
	castagnoli = crc32.MakeTable(crc32.Castagnoli)
)

func makeCRC32CTable() *[256]uint32 {
	var table [256]uint32
	for i := 0; i < 256; i++ {
		crc := uint32(i)
		for j := 0; j < 8; j++ {
			if crc&1 != 0 {
				crc = (crc >> 1) ^ crc32cPoly
			} else {
				crc >>= 1
			}
		}
		table[i] = crc
	}
	return &table
}

// Checksum computes the CRC32C (Castagnoli) checksum of data. The
// accelerated stdlib path and checksumGeneric must agree on every
// input; the test suite cross-checks them.
func Checksum(data []byte) uint32 {
	return crc32.Checksum(data, castagnoli)
}

// Verify reports whether data checksums to expected.
func Verify(data []byte, expected uint32) bool {
	return Checksum(data) == expected
}

// checksumGeneric is the table-driven reference implementation.
func checksumGeneric(data []byte) uint32 {
	crc := ^uint32(0)
	for _, b := range data {
		crc = (crc >> 8) ^ crc32cTable[byte(crc)^b]
	}
	return ^crc
}
