package sensors

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Kernel block layer reports I/O in 512-byte sectors regardless of the
// device's real sector size.
const sectorSize = 512

// nvmePartRe matches nvme partition names (nvme0n1p2) so only whole-disk
// rows are summed.
var nvmePartRe = regexp.MustCompile(`n\d+p\d+$`)

// DiskSample holds cumulative sector counters summed across every matching
// block device in /proc/diskstats.
type DiskSample struct {
	SectorsRead    uint64
	SectorsWritten uint64
}

// ReadBytes returns cumulative bytes read.
func (d DiskSample) ReadBytes() uint64 { return d.SectorsRead * sectorSize }

// WriteBytes returns cumulative bytes written.
func (d DiskSample) WriteBytes() uint64 { return d.SectorsWritten * sectorSize }

// DiskStats sums sector counters for block devices whose name starts with
// prefix, skipping partitions. Fields 5 and 9 of a diskstats row are sectors
// read and sectors written.
func (r *Reader) DiskStats(prefix string) (DiskSample, error) {
	path := filepath.Join(r.Proc, "diskstats")
	f, err := os.Open(path)
	if err != nil {
		return DiskSample{}, fmt.Errorf("open %s: %w", path, classify(err))
	}
	defer f.Close()

	var sample DiskSample
	matched := false

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 10 {
			continue
		}
		name := fields[2]
		if !strings.HasPrefix(name, prefix) || nvmePartRe.MatchString(name) {
			continue
		}
		read, err1 := strconv.ParseUint(fields[5], 10, 64)
		written, err2 := strconv.ParseUint(fields[9], 10, 64)
		if err1 != nil || err2 != nil {
			continue
		}
		sample.SectorsRead += read
		sample.SectorsWritten += written
		matched = true
	}
	if err := scanner.Err(); err != nil {
		return DiskSample{}, fmt.Errorf("scan %s: %w", path, err)
	}
	if !matched {
		return DiskSample{}, fmt.Errorf("no %s* devices in %s: %w", prefix, path, ErrNotPresent)
	}
	return sample, nil
}
