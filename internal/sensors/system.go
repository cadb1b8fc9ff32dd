package sensors

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Uptime reads system uptime from the first field of /proc/uptime.
func (r *Reader) Uptime() (time.Duration, error) {
	path := filepath.Join(r.Proc, "uptime")
	data, err := readFile(path)
	if err != nil {
		return 0, err
	}
	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return 0, fmt.Errorf("parse %s: %w", path, ErrNotPresent)
	}
	secs, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", path, ErrNotPresent)
	}
	return time.Duration(secs * float64(time.Second)), nil
}

// ProcCounts counts running processes and their threads by scanning the
// numeric entries of /proc. Thread counting walks each task/ directory; a
// process that exits mid-scan is simply skipped.
func (r *Reader) ProcCounts() (procs, threads int, err error) {
	entries, err := os.ReadDir(r.Proc)
	if err != nil {
		return 0, 0, fmt.Errorf("read %s: %w", r.Proc, classify(err))
	}
	for _, e := range entries {
		if !e.IsDir() || !isAllDigits(e.Name()) {
			continue
		}
		procs++
		tasks, err := os.ReadDir(filepath.Join(r.Proc, e.Name(), "task"))
		if err != nil {
			continue
		}
		threads += len(tasks)
	}
	return procs, threads, nil
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
