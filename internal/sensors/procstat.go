package sensors

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// CoreTimes holds cumulative jiffy counters for one CPU line of /proc/stat.
// Total is the sum of every time-in-state column; Idle is the idle column
// alone. Utilization is always a delta between two of these, never a single
// sample.
type CoreTimes struct {
	Total uint64
	Idle  uint64
}

// CPUSample is one read of /proc/stat: the aggregate "cpu" line plus every
// per-core "cpuN" line in order.
type CPUSample struct {
	All   CoreTimes
	Cores []CoreTimes
}

// CPUStat reads cumulative CPU time counters from /proc/stat.
func (r *Reader) CPUStat() (CPUSample, error) {
	path := filepath.Join(r.Proc, "stat")
	f, err := os.Open(path)
	if err != nil {
		return CPUSample{}, fmt.Errorf("open %s: %w", path, classify(err))
	}
	defer f.Close()

	var sample CPUSample
	seenAll := false

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "cpu") {
			break
		}
		fields := strings.Fields(line)
		if len(fields) < 5 {
			continue
		}
		times, err := parseCoreTimes(fields[1:])
		if err != nil {
			return CPUSample{}, fmt.Errorf("parse %s: %w", path, ErrNotPresent)
		}
		if fields[0] == "cpu" {
			sample.All = times
			seenAll = true
		} else {
			sample.Cores = append(sample.Cores, times)
		}
	}
	if err := scanner.Err(); err != nil {
		return CPUSample{}, fmt.Errorf("scan %s: %w", path, err)
	}
	if !seenAll {
		return CPUSample{}, fmt.Errorf("no cpu line in %s: %w", path, ErrNotPresent)
	}
	return sample, nil
}

// parseCoreTimes sums all time-in-state columns and picks out idle, which is
// the fourth column (user nice system idle iowait ...).
func parseCoreTimes(cols []string) (CoreTimes, error) {
	var t CoreTimes
	for i, col := range cols {
		v, err := strconv.ParseUint(col, 10, 64)
		if err != nil {
			return CoreTimes{}, err
		}
		t.Total += v
		if i == 3 {
			t.Idle = v
		}
	}
	return t, nil
}
