package bench

import (
	"testing"
	"time"
)

func TestNewStats(t *testing.T) {
	stats := NewStats(1000, time.Millisecond)
	if stats.Count != 1000 {
		t.Errorf("Count = %d, want 1000", stats.Count)
	}
	if stats.AvgNsPerOp != 1000 {
		t.Errorf("AvgNsPerOp = %d, want 1000", stats.AvgNsPerOp)
	}
	if diff := stats.OpsPerSec - 1_000_000.0; diff > 0.1 || diff < -0.1 {
		t.Errorf("OpsPerSec = %f, want 1000000", stats.OpsPerSec)
	}
}

func TestNewStats_ZeroCount(t *testing.T) {
	stats := NewStats(0, 0)
	if stats.AvgNsPerOp != 0 || stats.OpsPerSec != 0 {
		t.Errorf("zero-count stats should be zero: %+v", stats)
	}
}

func TestTradeEncode(t *testing.T) {
	stats, err := TradeEncode(100)
	if err != nil {
		t.Fatalf("TradeEncode failed: %v", err)
	}
	if stats.Count != 100 {
		t.Errorf("Count = %d, want 100", stats.Count)
	}
	if stats.OpsPerSec <= 0 {
		t.Errorf("OpsPerSec = %f, want > 0", stats.OpsPerSec)
	}
}

func TestTradeDecode(t *testing.T) {
	stats, err := TradeDecode(50)
	if err != nil {
		t.Fatalf("TradeDecode failed: %v", err)
	}
	if stats.Count != 50 {
		t.Errorf("Count = %d, want 50", stats.Count)
	}
}

func TestTradeRoundTrip(t *testing.T) {
	stats, err := TradeRoundTrip(50)
	if err != nil {
		t.Fatalf("TradeRoundTrip failed: %v", err)
	}
	if stats.Count != 50 {
		t.Errorf("Count = %d, want 50", stats.Count)
	}
}
