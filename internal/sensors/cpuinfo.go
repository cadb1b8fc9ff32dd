package sensors

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// CPUFreqMHz returns the current clock averaged across all cores, from the
// "cpu MHz" lines of /proc/cpuinfo. Not every architecture reports them;
// their absence is ErrNotPresent, not a failure.
func (r *Reader) CPUFreqMHz() (float64, error) {
	path := filepath.Join(r.Proc, "cpuinfo")
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, classify(err))
	}
	defer f.Close()

	var sum float64
	var count int

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "cpu MHz") {
			continue
		}
		_, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		mhz, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			continue
		}
		sum += mhz
		count++
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("scan %s: %w", path, err)
	}
	if count == 0 {
		return 0, fmt.Errorf("no cpu MHz lines in %s: %w", path, ErrNotPresent)
	}
	return sum / float64(count), nil
}
