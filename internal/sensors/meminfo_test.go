package sensors

import (
	"errors"
	"testing"
)

const meminfoFixture = `MemTotal:       32000000 kB
MemFree:         8000000 kB
MemAvailable:   20000000 kB
Buffers:         1000000 kB
Cached:          7000000 kB
SwapCached:            0 kB
SwapTotal:       8000000 kB
SwapFree:        6000000 kB
`

func TestMemInfo(t *testing.T) {
	r, proc, _ := fixtureReader(t)
	writeFixture(t, proc, "meminfo", meminfoFixture)

	m, err := r.MemInfo()
	if err != nil {
		t.Fatalf("MemInfo() error: %v", err)
	}
	if m.Total != 32000000*1024 {
		t.Errorf("expected total %d, got %d", 32000000*1024, m.Total)
	}
	// used = total - free - buffers - cached = 16000000 kB
	if m.Used() != 16000000*1024 {
		t.Errorf("expected used %d, got %d", 16000000*1024, m.Used())
	}
	if pct := m.UsedPercent(); pct != 50 {
		t.Errorf("expected 50%%, got %f", pct)
	}
	if m.SwapUsed() != 2000000*1024 {
		t.Errorf("expected swap used %d, got %d", 2000000*1024, m.SwapUsed())
	}
}

func TestMemInfoMissingTotal(t *testing.T) {
	r, proc, _ := fixtureReader(t)
	writeFixture(t, proc, "meminfo", "MemFree: 100 kB\n")

	_, err := r.MemInfo()
	if !errors.Is(err, ErrNotPresent) {
		t.Errorf("expected ErrNotPresent, got %v", err)
	}
}

func TestMemInfoUsedPercentZero(t *testing.T) {
	if pct := (MemInfo{}).UsedPercent(); pct != 0 {
		t.Errorf("expected 0 for empty meminfo, got %f", pct)
	}
}
