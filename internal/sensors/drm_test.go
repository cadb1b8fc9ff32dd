package sensors

import (
	"errors"
	"path/filepath"
	"testing"
)

func drmFixture(t *testing.T) string {
	t.Helper()
	card := filepath.Join(t.TempDir(), "card1", "device")
	writeFixture(t, card, "tile0/gt0/freq0/act_freq", "2050\n")
	writeFixture(t, card, "tile0/gt0/freq0/max_freq", "2400\n")
	writeFixture(t, card, "mem_info_vram_used", "4294967296\n")
	writeFixture(t, card, "mem_info_vram_total", "17179869184\n")
	return card
}

func TestGPUFrequency(t *testing.T) {
	card := drmFixture(t)

	freq, err := GPUFrequency(card)
	if err != nil {
		t.Fatalf("GPUFrequency() error: %v", err)
	}
	if freq.CurMHz != 2050 || freq.MaxMHz != 2400 {
		t.Errorf("expected 2050/2400, got %d/%d", freq.CurMHz, freq.MaxMHz)
	}
}

func TestGPUVRAM(t *testing.T) {
	card := drmFixture(t)

	vram, err := GPUVRAM(card)
	if err != nil {
		t.Fatalf("GPUVRAM() error: %v", err)
	}
	if vram.Used != 4294967296 {
		t.Errorf("expected 4 GiB used, got %d", vram.Used)
	}
	if pct := vram.UsedPercent(); pct != 25 {
		t.Errorf("expected 25%%, got %f", pct)
	}
}

func TestGPUFrequencyMissing(t *testing.T) {
	_, err := GPUFrequency(filepath.Join(t.TempDir(), "card9", "device"))
	if !errors.Is(err, ErrNotPresent) {
		t.Errorf("expected ErrNotPresent, got %v", err)
	}
}

func TestVRAMUsedPercentZeroTotal(t *testing.T) {
	if pct := (VRAM{Used: 100}).UsedPercent(); pct != 0 {
		t.Errorf("expected 0 for zero total, got %f", pct)
	}
}
