package sensors

import (
	"errors"
	"testing"
)

const cpuinfoFixture = `processor	: 0
vendor_id	: AuthenticAMD
model name	: AMD Ryzen 9 7950X 16-Core Processor
cpu MHz		: 4200.000
cache size	: 1024 KB

processor	: 1
vendor_id	: AuthenticAMD
model name	: AMD Ryzen 9 7950X 16-Core Processor
cpu MHz		: 3800.000
cache size	: 1024 KB
`

func TestCPUFreqMHz(t *testing.T) {
	r, proc, _ := fixtureReader(t)
	writeFixture(t, proc, "cpuinfo", cpuinfoFixture)

	mhz, err := r.CPUFreqMHz()
	if err != nil {
		t.Fatalf("CPUFreqMHz() error: %v", err)
	}
	if mhz != 4000 {
		t.Errorf("expected 4000 MHz average, got %f", mhz)
	}
}

func TestCPUFreqMHzAbsent(t *testing.T) {
	r, proc, _ := fixtureReader(t)
	writeFixture(t, proc, "cpuinfo", "processor\t: 0\nBogoMIPS\t: 48.00\n")

	_, err := r.CPUFreqMHz()
	if !errors.Is(err, ErrNotPresent) {
		t.Errorf("expected ErrNotPresent, got %v", err)
	}
}
