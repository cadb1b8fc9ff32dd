package sensors

import (
	"errors"
	"testing"
)

const diskstatsFixture = ` 259       0 nvme0n1 1000 0 80000 500 2000 0 160000 900 0 400 1400
 259       1 nvme0n1p1 400 0 30000 200 800 0 60000 300 0 150 500
 259       2 nvme0n1p2 600 0 50000 300 1200 0 100000 600 0 250 900
 259       3 nvme1n1 500 0 20000 250 1000 0 40000 450 0 200 700
   7       0 loop0 10 0 100 5 0 0 0 0 0 2 5
   8       0 sda 300 0 9000 100 600 0 18000 200 0 80 300
`

func TestDiskStats(t *testing.T) {
	r, proc, _ := fixtureReader(t)
	writeFixture(t, proc, "diskstats", diskstatsFixture)

	sample, err := r.DiskStats("nvme")
	if err != nil {
		t.Fatalf("DiskStats() error: %v", err)
	}
	// nvme0n1 + nvme1n1, partitions excluded
	if sample.SectorsRead != 100000 {
		t.Errorf("expected 100000 sectors read, got %d", sample.SectorsRead)
	}
	if sample.SectorsWritten != 200000 {
		t.Errorf("expected 200000 sectors written, got %d", sample.SectorsWritten)
	}
	if sample.ReadBytes() != 100000*512 {
		t.Errorf("expected %d read bytes, got %d", 100000*512, sample.ReadBytes())
	}
}

func TestDiskStatsOtherPrefix(t *testing.T) {
	r, proc, _ := fixtureReader(t)
	writeFixture(t, proc, "diskstats", diskstatsFixture)

	sample, err := r.DiskStats("sda")
	if err != nil {
		t.Fatalf("DiskStats() error: %v", err)
	}
	if sample.SectorsRead != 9000 {
		t.Errorf("expected 9000 sectors read, got %d", sample.SectorsRead)
	}
}

func TestDiskStatsNoMatch(t *testing.T) {
	r, proc, _ := fixtureReader(t)
	writeFixture(t, proc, "diskstats", diskstatsFixture)

	_, err := r.DiskStats("vda")
	if !errors.Is(err, ErrNotPresent) {
		t.Errorf("expected ErrNotPresent, got %v", err)
	}
}
