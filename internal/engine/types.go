package engine

import (
	"errors"
	"time"

	"github.com/mthorne/vitals/internal/sensors"
)

// Metric is one display-ready measurement with its threshold classification.
// Err is set when the sensor could not be read this tick; Value is then
// meaningless and widgets render Placeholder() instead.
type Metric struct {
	Name   string
	Value  float64
	Unit   string
	Status Status
	Err    error
}

// NewMetric builds a classified metric. Pass the zero Policy for values that
// have no thresholds.
func NewMetric(name string, value float64, unit string, p Policy) Metric {
	return Metric{Name: name, Value: value, Unit: unit, Status: p.Classify(value)}
}

// Unavailable builds a metric whose sensor failed this tick.
func Unavailable(name, unit string, err error) Metric {
	return Metric{Name: name, Unit: unit, Status: StatusUnavailable, Err: err}
}

// Available reports whether the metric carries a real value this tick.
func (m Metric) Available() bool { return m.Err == nil }

// Placeholder returns the display string for an unavailable metric:
// "NO ACCESS" when the path exists but this privilege level cannot read it,
// "N/A" when the hardware or driver is absent. Empty for available metrics.
func (m Metric) Placeholder() string {
	switch {
	case m.Err == nil:
		return ""
	case errors.Is(m.Err, sensors.ErrNoAccess):
		return "NO ACCESS"
	default:
		return "N/A"
	}
}

// CPUMetrics is everything the CPU panel shows.
type CPUMetrics struct {
	Usage   Metric   // percent, classified against cpu_usage
	PerCore []Metric // percent per core, same policy
	FreqMHz Metric   // average clock, unclassified
	Temp    Metric   // °C, classified against cpu_temp
}

// GPUMetrics is everything the GPU panel shows.
type GPUMetrics struct {
	Temp      Metric // edge °C, classified against gpu_temp
	Hotspot   Metric // hotspot °C, classified against gpu_hotspot
	FreqMHz   Metric // current clock, unclassified
	MaxMHz    float64
	VRAM      Metric // used percent, classified against mem_usage
	VRAMUsed  uint64
	VRAMTotal uint64
	FanRPM    Metric // fastest fan, unclassified
}

// MemoryMetrics is everything the memory panel shows.
type MemoryMetrics struct {
	Usage     Metric // used percent, classified against mem_usage
	Used      uint64
	Total     uint64
	SwapUsed  uint64
	SwapTotal uint64
}

// MountUsage is one row of the storage panel.
type MountUsage struct {
	Path   string
	Device string
	Usage  Metric // used percent, classified against storage
	Used   uint64
	Total  uint64
}

// DiskMetrics holds block I/O rates in bytes per second plus the drive
// temperature.
type DiskMetrics struct {
	ReadRate  Metric
	WriteRate Metric
	NVMeTemp  Metric // °C, classified against nvme_temp
}

// NetMetrics holds network rates in bytes per second plus wifi quality.
type NetMetrics struct {
	RxRate Metric
	TxRate Metric
	Wifi   Metric // link quality percent, unclassified
}

// SystemMetrics is the ambient host information shown in the header and
// system panel.
type SystemMetrics struct {
	Hostname string
	Uptime   time.Duration
	Load1    float64
	Load5    float64
	Load15   float64
	Procs    int
	Threads  int
}

// Snapshot is the result of one collect pass over every sensor. The render
// loop swaps in a fresh one each tick and widgets read from it; nothing
// mutates a Snapshot after Collect returns it.
type Snapshot struct {
	Taken     time.Time
	CPU       CPUMetrics
	GPU       GPUMetrics
	Memory    MemoryMetrics
	Storage   []MountUsage
	Disk      DiskMetrics
	Net       NetMetrics
	System    SystemMetrics
	Processes []sensors.ProcessInfo

	PollCount int
	Duration  time.Duration
}

// metrics returns every scalar metric in the snapshot, classified or not.
func (s *Snapshot) metrics() []Metric {
	ms := []Metric{
		s.CPU.Usage, s.CPU.FreqMHz, s.CPU.Temp,
		s.GPU.Temp, s.GPU.Hotspot, s.GPU.FreqMHz, s.GPU.VRAM, s.GPU.FanRPM,
		s.Memory.Usage,
		s.Disk.ReadRate, s.Disk.WriteRate, s.Disk.NVMeTemp,
		s.Net.RxRate, s.Net.TxRate, s.Net.Wifi,
	}
	ms = append(ms, s.CPU.PerCore...)
	for _, mount := range s.Storage {
		ms = append(ms, mount.Usage)
	}
	return ms
}

// AnyCritical reports whether any metric is critical this tick. It drives
// the header banner and the alert flash.
func (s *Snapshot) AnyCritical() bool {
	for _, m := range s.metrics() {
		if m.Status == StatusCritical {
			return true
		}
	}
	return false
}

// Offline counts the metrics whose sensors could not be read this tick.
func (s *Snapshot) Offline() int {
	n := 0
	for _, m := range s.metrics() {
		if !m.Available() {
			n++
		}
	}
	return n
}
