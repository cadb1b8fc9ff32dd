package sensors

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// WifiSample is the link quality of the first wireless interface.
type WifiSample struct {
	Interface string
	SignalDBm int
	// Quality maps signal strength onto 0-100, where -100 dBm is 0
	// and -50 dBm or better is 100.
	Quality int
}

// Wireless parses /proc/net/wireless. The file exists on machines without
// wifi hardware but contains only the two header lines; that case is
// ErrNotPresent.
func (r *Reader) Wireless() (WifiSample, error) {
	path := filepath.Join(r.Proc, "net", "wireless")
	f, err := os.Open(path)
	if err != nil {
		return WifiSample{}, fmt.Errorf("open %s: %w", path, classify(err))
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 4 || !strings.HasPrefix(fields[0], "wl") {
			continue
		}
		iface := strings.TrimSuffix(fields[0], ":")
		// Signal level is printed as a float with a trailing dot, e.g. "-55."
		signal, err := strconv.ParseFloat(strings.TrimSuffix(fields[3], "."), 64)
		if err != nil {
			continue
		}
		dbm := int(signal)
		quality := 2 * (dbm + 100)
		if quality > 100 {
			quality = 100
		}
		if quality < 0 {
			quality = 0
		}
		return WifiSample{Interface: iface, SignalDBm: dbm, Quality: quality}, nil
	}
	if err := scanner.Err(); err != nil {
		return WifiSample{}, fmt.Errorf("scan %s: %w", path, err)
	}
	return WifiSample{}, fmt.Errorf("no wireless interface in %s: %w", path, ErrNotPresent)
}
