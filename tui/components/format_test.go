package components

import (
	"testing"
	"time"
)

func TestFormatRate(t *testing.T) {
	tests := []struct {
		bps      float64
		expected string
	}{
		{0, "0"},
		{500, "500B"},
		{1536, "1.5K"},
		{1536 * 1024, "1.5M"},
		{1536 * 1024 * 1024, "1.5G"},
		{2560 * 1024 * 1024 * 1024, "2.5T"},
	}
	for _, tt := range tests {
		got := FormatRate(tt.bps)
		if got != tt.expected {
			t.Errorf("FormatRate(%f) = %q, want %q", tt.bps, got, tt.expected)
		}
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n        uint64
		expected string
	}{
		{0, "0"},
		{512, "512B"},
		{16 * 1024 * 1024 * 1024, "16.0G"},
	}
	for _, tt := range tests {
		got := FormatBytes(tt.n)
		if got != tt.expected {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.n, got, tt.expected)
		}
	}
}

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{5 * time.Minute, "5m"},
		{90 * time.Minute, "1h 30m"},
		{26*time.Hour + 3*time.Minute, "1d 2h 3m"},
	}
	for _, tt := range tests {
		got := FormatUptime(tt.d)
		if got != tt.expected {
			t.Errorf("FormatUptime(%v) = %q, want %q", tt.d, got, tt.expected)
		}
	}
}
