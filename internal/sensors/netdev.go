package sensors

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// virtualIfacePrefixes name interfaces that carry no physical traffic of
// their own: container bridges and veth pairs mirror bytes already counted
// on a real device. Loopback is matched exactly.
var virtualIfacePrefixes = []string{"docker", "veth", "br-", "virbr"}

// NetSample holds cumulative byte counters summed across every physical
// network interface.
type NetSample struct {
	RxBytes uint64
	TxBytes uint64
}

// NetDev sums rx/tx byte counters from /sys/class/net/*/statistics,
// skipping virtual interfaces.
func (r *Reader) NetDev() (NetSample, error) {
	root := filepath.Join(r.Sys, "class", "net")
	entries, err := os.ReadDir(root)
	if err != nil {
		return NetSample{}, fmt.Errorf("read %s: %w", root, classify(err))
	}

	var sample NetSample
	matched := false
	for _, e := range entries {
		if isVirtualIface(e.Name()) {
			continue
		}
		stats := filepath.Join(root, e.Name(), "statistics")
		rx, err1 := readUint(filepath.Join(stats, "rx_bytes"))
		tx, err2 := readUint(filepath.Join(stats, "tx_bytes"))
		if err1 != nil || err2 != nil {
			continue
		}
		sample.RxBytes += rx
		sample.TxBytes += tx
		matched = true
	}
	if !matched {
		return NetSample{}, fmt.Errorf("no physical interfaces in %s: %w", root, ErrNotPresent)
	}
	return sample, nil
}

func isVirtualIface(name string) bool {
	if name == "lo" {
		return true
	}
	for _, prefix := range virtualIfacePrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
