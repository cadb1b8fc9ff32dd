package sensors

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// MemInfo holds the fields of /proc/meminfo this dashboard cares about,
// converted from kB to bytes.
type MemInfo struct {
	Total     uint64
	Free      uint64
	Available uint64
	Buffers   uint64
	Cached    uint64
	SwapTotal uint64
	SwapFree  uint64
}

// Used returns memory in active use, the way free(1) counts it:
// total minus free minus buffers minus cache.
func (m MemInfo) Used() uint64 {
	used := m.Total - m.Free - m.Buffers - m.Cached
	if used > m.Total {
		return 0
	}
	return used
}

// UsedPercent returns used memory as a percentage of total.
func (m MemInfo) UsedPercent() float64 {
	if m.Total == 0 {
		return 0
	}
	return float64(m.Used()) / float64(m.Total) * 100
}

// SwapUsed returns swap in use in bytes.
func (m MemInfo) SwapUsed() uint64 {
	if m.SwapFree > m.SwapTotal {
		return 0
	}
	return m.SwapTotal - m.SwapFree
}

// MemInfo parses /proc/meminfo.
func (r *Reader) MemInfo() (MemInfo, error) {
	path := filepath.Join(r.Proc, "meminfo")
	f, err := os.Open(path)
	if err != nil {
		return MemInfo{}, fmt.Errorf("open %s: %w", path, classify(err))
	}
	defer f.Close()

	var m MemInfo
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		kb, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			continue
		}
		bytes := kb * 1024
		switch fields[0] {
		case "MemTotal:":
			m.Total = bytes
		case "MemFree:":
			m.Free = bytes
		case "MemAvailable:":
			m.Available = bytes
		case "Buffers:":
			m.Buffers = bytes
		case "Cached:":
			m.Cached = bytes
		case "SwapTotal:":
			m.SwapTotal = bytes
		case "SwapFree:":
			m.SwapFree = bytes
		}
	}
	if err := scanner.Err(); err != nil {
		return MemInfo{}, fmt.Errorf("scan %s: %w", path, err)
	}
	if m.Total == 0 {
		return MemInfo{}, fmt.Errorf("no MemTotal in %s: %w", path, ErrNotPresent)
	}
	return m, nil
}
