package sensors

import (
	"sort"
	"strings"

	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/process"
)

// The readers in this file cover what the dashboard shows beyond raw
// pseudo-file sensors: mounted filesystems, load average, and the process
// table. They go through gopsutil rather than shelling out to df/ps.

// skipFSTypes are pseudo and overlay filesystems that say nothing about
// physical storage.
var skipFSTypes = map[string]bool{
	"tmpfs":    true,
	"devtmpfs": true,
	"squashfs": true,
	"overlay":  true,
}

// Mount is the usage of one mounted real filesystem.
type Mount struct {
	Device      string
	Path        string
	Total       uint64
	Used        uint64
	UsedPercent float64
}

// Storage returns usage for every mounted real filesystem, ordered by mount
// path. Mounts that disappear between enumeration and statfs are skipped.
func Storage() ([]Mount, error) {
	parts, err := disk.Partitions(false)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var mounts []Mount
	for _, p := range parts {
		if skipFSTypes[p.Fstype] || seen[p.Mountpoint] {
			continue
		}
		if strings.HasPrefix(p.Mountpoint, "/snap/") || strings.HasPrefix(p.Mountpoint, "/var/snap/") {
			continue
		}
		usage, err := disk.Usage(p.Mountpoint)
		if err != nil {
			continue
		}
		seen[p.Mountpoint] = true
		mounts = append(mounts, Mount{
			Device:      p.Device,
			Path:        p.Mountpoint,
			Total:       usage.Total,
			Used:        usage.Used,
			UsedPercent: usage.UsedPercent,
		})
	}
	sort.Slice(mounts, func(i, j int) bool { return mounts[i].Path < mounts[j].Path })
	return mounts, nil
}

// LoadAvg returns the 1/5/15 minute load averages.
func LoadAvg() (load1, load5, load15 float64, err error) {
	avg, err := load.Avg()
	if err != nil {
		return 0, 0, 0, err
	}
	return avg.Load1, avg.Load5, avg.Load15, nil
}

// ProcessInfo is one row of the top-processes table.
type ProcessInfo struct {
	PID        int32
	Name       string
	CPUPercent float64
	MemPercent float32
}

// TopProcesses returns the n processes using the most CPU. CPU percent here
// is lifetime usage (cpu time over elapsed time), the same figure ps(1)
// reports in its %CPU column. Processes that vanish mid-enumeration are
// skipped.
func TopProcesses(n int) ([]ProcessInfo, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, err
	}

	infos := make([]ProcessInfo, 0, len(procs))
	for _, p := range procs {
		cpuPct, err := p.CPUPercent()
		if err != nil {
			continue
		}
		name, err := p.Name()
		if err != nil {
			continue
		}
		memPct, _ := p.MemoryPercent()
		infos = append(infos, ProcessInfo{
			PID:        p.Pid,
			Name:       name,
			CPUPercent: cpuPct,
			MemPercent: memPct,
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].CPUPercent > infos[j].CPUPercent })
	if len(infos) > n {
		infos = infos[:n]
	}
	return infos, nil
}
