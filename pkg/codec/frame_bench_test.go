//go:build bench
// +build bench

package codec

import (
	"bytes"
	"testing"
)

func BenchmarkFrameEncoder_Encode(b *testing.B) {
	benchmarks := []struct {
		name string
		body []byte
	}{
		{name: "small", body: bytes.Repeat([]byte("x"), 16)},
		{name: "medium", body: bytes.Repeat([]byte("x"), 256)},
		{name: "large", body: bytes.Repeat([]byte("x"), 4096)},
	}

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			buf := make([]byte, HeaderSize+len(bm.body)+TrailerSize)
			enc := NewFrameEncoder(buf)
			b.SetBytes(int64(len(bm.body)))
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				enc.Reset()
				if err := enc.Begin(NewFrameHeader(1, uint32(i), 0)); err != nil {
					b.Fatal(err)
				}
				if err := enc.PutBytes(bm.body); err != nil {
					b.Fatal(err)
				}
				if _, err := enc.FinishCRC32C(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkFrameDecoder_VerifyCRC32C(b *testing.B) {
	benchmarks := []struct {
		name string
		body []byte
	}{
		{name: "small", body: bytes.Repeat([]byte("x"), 16)},
		{name: "medium", body: bytes.Repeat([]byte("x"), 256)},
		{name: "large", body: bytes.Repeat([]byte("x"), 4096)},
	}

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			buf := make([]byte, HeaderSize+len(bm.body)+TrailerSize)
			enc := NewFrameEncoder(buf)
			if err := enc.Begin(NewFrameHeader(1, 1, 0)); err != nil {
				b.Fatal(err)
			}
			if err := enc.PutBytes(bm.body); err != nil {
				b.Fatal(err)
			}
			total, err := enc.FinishCRC32C()
			if err != nil {
				b.Fatal(err)
			}
			frame := buf[:total]
			b.SetBytes(int64(total))
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				dec := NewFrameDecoder(frame)
				if err := dec.VerifyCRC32C(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkBodyCursor_FieldReads(b *testing.B) {
	buf := make([]byte, 64)
	enc := NewFrameEncoder(buf)
	if err := enc.Begin(NewFrameHeader(1, 1, 0)); err != nil {
		b.Fatal(err)
	}
	_ = enc.PutU64(1700000000000000000)
	_ = enc.PutI64(50_000_000)
	_ = enc.PutU32(100)
	total, err := enc.FinishCRC32C()
	if err != nil {
		b.Fatal(err)
	}
	frame := buf[:total]
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		cursor, err := NewFrameDecoder(frame).Body()
		if err != nil {
			b.Fatal(err)
		}
		if _, err := cursor.GetU64(); err != nil {
			b.Fatal(err)
		}
		if _, err := cursor.GetI64(); err != nil {
			b.Fatal(err)
		}
		if _, err := cursor.GetU32(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkChecksum(b *testing.B) {
	benchmarks := []struct {
		name string
		size int
	}{
		{name: "64B", size: 64},
		{name: "1KiB", size: 1024},
		{name: "64KiB", size: 64 * 1024},
	}

	for _, bm := range benchmarks {
		data := bytes.Repeat([]byte("c"), bm.size)
		b.Run(bm.name+"/accelerated", func(b *testing.B) {
			b.SetBytes(int64(bm.size))
			for i := 0; i < b.N; i++ {
				Checksum(data)
			}
		})
		b.Run(bm.name+"/generic", func(b *testing.B) {
			b.SetBytes(int64(bm.size))
			for i := 0; i < b.N; i++ {
				checksumGeneric(data)
			}
		})
	}
}

func BenchmarkUvarint64(b *testing.B) {
	values := []uint64{0, 127, 16384, 1 << 35, 1<<63 - 1}
	var buf [MaxVarint64Len]byte

	b.Run("put", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := PutUvarint64(buf[:], values[i%len(values)]); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("get", func(b *testing.B) {
		n, _ := PutUvarint64(buf[:], 1<<35)
		encoded := buf[:n]
		for i := 0; i < b.N; i++ {
			if _, _, err := Uvarint64(encoded); err != nil {
				b.Fatal(err)
			}
		}
	})
}
