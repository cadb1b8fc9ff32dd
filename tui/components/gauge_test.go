package components

import (
	"strings"
	"testing"
)

func TestGauge(t *testing.T) {
	if got := Gauge(0, 10); got != strings.Repeat("░", 10) {
		t.Errorf("expected empty gauge, got %q", got)
	}
	if got := Gauge(100, 10); got != strings.Repeat("█", 10) {
		t.Errorf("expected full gauge, got %q", got)
	}
	if got := Gauge(50, 10); got != strings.Repeat("█", 5)+strings.Repeat("░", 5) {
		t.Errorf("expected half gauge, got %q", got)
	}
}

func TestGaugeClamps(t *testing.T) {
	if got := Gauge(150, 4); got != strings.Repeat("█", 4) {
		t.Errorf("expected clamped full gauge, got %q", got)
	}
	if got := Gauge(-5, 4); got != strings.Repeat("░", 4) {
		t.Errorf("expected clamped empty gauge, got %q", got)
	}
}

func TestMeterRune(t *testing.T) {
	if got := MeterRune(0); got != '▁' {
		t.Errorf("expected lowest block for 0%%, got %q", got)
	}
	if got := MeterRune(100); got != '█' {
		t.Errorf("expected full block for 100%%, got %q", got)
	}
	if got := MeterRune(200); got != '█' {
		t.Errorf("expected clamp above 100%%, got %q", got)
	}
}
