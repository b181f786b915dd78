// Package bench measures encode and decode throughput of the frame
// codec using representative trade messages.
package bench

import (
	"fmt"
	"time"

	"github.com/sameteraslan/minibit/pkg/messages"
)

// Stats summarizes one benchmark run.
type Stats struct {
	Count         int
	TotalDuration time.Duration
	AvgNsPerOp    uint64
	OpsPerSec     float64
}

// NewStats derives averages from a count and a total duration.
func NewStats(count int, total time.Duration) Stats {
	totalNs := uint64(total.Nanoseconds())
	var avg uint64
	if count > 0 {
		avg = totalNs / uint64(count)
	}
	var ops float64
	if totalNs > 0 {
		ops = float64(count) * 1e9 / float64(totalNs)
	}
	return Stats{
		Count:         count,
		TotalDuration: total,
		AvgNsPerOp:    avg,
		OpsPerSec:     ops,
	}
}

func (s Stats) String() string {
	return fmt.Sprintf("%d ops, %.2fms total, %d ns/op, %.0f ops/sec",
		s.Count, s.TotalDuration.Seconds()*1000, s.AvgNsPerOp, s.OpsPerSec)
}

// benchTrade returns a trade with deterministic per-iteration
// variation, optional fields included on a fixed cadence.
func benchTrade(i int) messages.Trade {
	t := messages.Trade{
		TsNs:  1_700_000_000_000_000_000 + uint64(i),
		Price: 50_000_000 + int64(i%1000),
		Qty:   100 + uint32(i%900),
	}
	if i%3 == 0 {
		t.Symbol = []byte("AAPL")
	}
	if i%5 == 0 {
		t.Note = []byte("test note")
	}
	return t
}

// TradeEncode benchmarks trade message encoding.
func TradeEncode(count int) (Stats, error) {
	buf := make([]byte, 1024)
	start := time.Now()

	for i := 0; i < count; i++ {
		if _, err := messages.EncodeTrade(buf, uint32(i), benchTrade(i)); err != nil {
			return Stats{}, err
		}
	}

	return NewStats(count, time.Since(start)), nil
}

// TradeDecode benchmarks trade message decoding over pre-encoded
// frames.
func TradeDecode(count int) (Stats, error) {
	frames := make([][]byte, 0, count)
	buf := make([]byte, 1024)
	for i := 0; i < count; i++ {
		size, err := messages.EncodeTrade(buf, uint32(i), benchTrade(i))
		if err != nil {
			return Stats{}, err
		}
		frame := make([]byte, size)
		copy(frame, buf[:size])
		frames = append(frames, frame)
	}

	start := time.Now()
	for _, frame := range frames {
		if _, _, err := messages.DecodeTrade(frame); err != nil {
			return Stats{}, err
		}
	}

	return NewStats(count, time.Since(start)), nil
}

// TradeRoundTrip benchmarks encode followed immediately by decode.
func TradeRoundTrip(count int) (Stats, error) {
	buf := make([]byte, 1024)
	start := time.Now()

	for i := 0; i < count; i++ {
		size, err := messages.EncodeTrade(buf, uint32(i), benchTrade(i))
		if err != nil {
			return Stats{}, err
		}
		if _, _, err := messages.DecodeTrade(buf[:size]); err != nil {
			return Stats{}, err
		}
	}

	return NewStats(count, time.Since(start)), nil
}

// RunPerfTest runs the full suite and prints a report.
func RunPerfTest(count int) error {
	fmt.Println("MiniBit Performance Test Suite")
	fmt.Println("=================================")
	fmt.Printf("\nTesting with %d operations...\n", count)

	encodeStats, err := TradeEncode(count)
	if err != nil {
		return err
	}
	fmt.Printf("Trade encode: %s\n", encodeStats)

	decodeStats, err := TradeDecode(count)
	if err != nil {
		return err
	}
	fmt.Printf("Trade decode: %s\n", decodeStats)

	roundtripStats, err := TradeRoundTrip(count)
	if err != nil {
		return err
	}
	fmt.Printf("Trade roundtrip: %s\n", roundtripStats)

	detailed := count / 10
	if detailed < 1 {
		detailed = 1
	}
	fmt.Printf("\nDetailed timing with %d operations:\n", detailed)
	detailedStats, err := TradeRoundTrip(detailed)
	if err != nil {
		return err
	}
	fmt.Printf("Trade roundtrip: %s\n", detailedStats)

	// Frame size analysis with both optional fields present.
	buf := make([]byte, 1024)
	testSize, err := messages.EncodeTrade(buf, 1, messages.Trade{
		TsNs:   1_700_000_000_000_000_000,
		Price:  50_000_000,
		Qty:    100,
		Symbol: []byte("AAPL"),
		Note:   []byte("test"),
	})
	if err != nil {
		return err
	}

	fmt.Println("\nFrame size analysis:")
	fmt.Printf("Test frame size: %d bytes\n", testSize)
	fmt.Printf("Throughput at %.0f msg/s: %.2f MB/s\n",
		roundtripStats.OpsPerSec,
		roundtripStats.OpsPerSec*float64(testSize)/1_000_000.0)

	return nil
}
