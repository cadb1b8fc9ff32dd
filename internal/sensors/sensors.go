package sensors

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Sensor read failures fall into two buckets: the path is missing (the
// hardware or driver is not present) or the path exists but the current
// privilege level cannot read it. Malformed content counts as not present.
var (
	ErrNotPresent = errors.New("sensor not present")
	ErrNoAccess   = errors.New("sensor access denied")
)

// Reader reads raw sensor values out of the kernel's pseudo-filesystems.
// Proc and Sys point at the mount roots so tests can aim every parser at a
// fixture tree instead of the live system.
type Reader struct {
	Proc string
	Sys  string
}

// NewReader returns a Reader bound to the standard /proc and /sys mounts.
func NewReader() *Reader {
	return &Reader{Proc: "/proc", Sys: "/sys"}
}

// classify maps a filesystem error into the sensor error taxonomy.
func classify(err error) error {
	switch {
	case os.IsNotExist(err):
		return ErrNotPresent
	case os.IsPermission(err):
		return ErrNoAccess
	}
	return err
}

// readFile reads a pseudo-file and classifies any failure.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, classify(err))
	}
	return data, nil
}

// readInt reads a file containing a single decimal integer, e.g. a hwmon
// temp*_input or a net statistics counter.
func readInt(path string) (int64, error) {
	data, err := readFile(path)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", path, ErrNotPresent)
	}
	return n, nil
}

// readUint is readInt for counters that never go negative.
func readUint(path string) (uint64, error) {
	data, err := readFile(path)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", path, ErrNotPresent)
	}
	return n, nil
}
