package engine

import (
	"fmt"
	"os"
	"time"

	"github.com/mthorne/vitals/internal/config"
	"github.com/mthorne/vitals/internal/sensors"
)

const topProcessCount = 10

// prevCounters holds the previous cumulative samples the rate computations
// need. Pointers stay nil until the first successful read of each source,
// which is how the first tick ends up reporting zero rates.
type prevCounters struct {
	cpu       *sensors.CPUSample
	disk      *sensors.DiskSample
	diskTaken time.Time
	net       *sensors.NetSample
	netTaken  time.Time
}

// Collector runs one synchronous pass over every sensor and turns the raw
// readings into a classified Snapshot. It is driven from the render loop or
// a one-shot command, never concurrently, so it keeps plain state.
type Collector struct {
	reader   *sensors.Reader
	cfg      *config.Config
	hostname string
	prev     prevCounters
	polls    int
}

func NewCollector(cfg *config.Config, r *sensors.Reader) *Collector {
	host, _ := os.Hostname()
	return &Collector{reader: r, cfg: cfg, hostname: host}
}

// Collect reads every sensor once and returns the snapshot. Sensors that
// cannot be read produce unavailable metrics rather than failing the pass.
func (c *Collector) Collect() *Snapshot {
	start := time.Now()
	c.polls++
	snap := &Snapshot{Taken: start}

	c.collectCPU(snap)
	c.collectGPU(snap)
	c.collectMemory(snap)
	c.collectStorage(snap)
	c.collectDisk(snap)
	c.collectNet(snap)
	c.collectSystem(snap)
	snap.Processes, _ = sensors.TopProcesses(topProcessCount)

	snap.PollCount = c.polls
	snap.Duration = time.Since(start)
	return snap
}

func (c *Collector) policy(name string) Policy {
	t, ok := c.cfg.Thresholds[name]
	if !ok {
		return Policy{}
	}
	return Policy{Warning: t.Warning, Critical: t.Critical}
}

func (c *Collector) collectCPU(snap *Snapshot) {
	usagePolicy := c.policy("cpu_usage")

	sample, err := c.reader.CPUStat()
	if err != nil {
		snap.CPU.Usage = Unavailable("CPU", "%", err)
	} else {
		var all float64
		if c.prev.cpu != nil {
			all = Utilization(c.prev.cpu.All, sample.All)
		}
		snap.CPU.Usage = NewMetric("CPU", all, "%", usagePolicy)
		snap.CPU.PerCore = make([]Metric, len(sample.Cores))
		for i, core := range sample.Cores {
			var v float64
			if c.prev.cpu != nil && i < len(c.prev.cpu.Cores) {
				v = Utilization(c.prev.cpu.Cores[i], core)
			}
			snap.CPU.PerCore[i] = NewMetric(fmt.Sprintf("cpu%d", i), v, "%", usagePolicy)
		}
		c.prev.cpu = &sample
	}

	if mhz, err := c.reader.CPUFreqMHz(); err != nil {
		snap.CPU.FreqMHz = Unavailable("Clock", "MHz", err)
	} else {
		snap.CPU.FreqMHz = NewMetric("Clock", mhz, "MHz", Policy{})
	}

	if t, err := c.reader.ChipTemp(c.cfg.Sensors.CPUTempChip); err != nil {
		snap.CPU.Temp = Unavailable("CPU temp", "°C", err)
	} else {
		snap.CPU.Temp = NewMetric("CPU temp", t, "°C", c.policy("cpu_temp"))
	}
}

func (c *Collector) collectGPU(snap *Snapshot) {
	edge, hotspot, err := sensors.PMTTemps(c.cfg.Sensors.PMTPath)
	if err != nil {
		snap.GPU.Temp = Unavailable("GPU", "°C", err)
		snap.GPU.Hotspot = Unavailable("Hotspot", "°C", err)
	} else {
		snap.GPU.Temp = NewMetric("GPU", edge, "°C", c.policy("gpu_temp"))
		snap.GPU.Hotspot = NewMetric("Hotspot", hotspot, "°C", c.policy("gpu_hotspot"))
	}

	if freq, err := sensors.GPUFrequency(c.cfg.Sensors.DRMCard); err != nil {
		snap.GPU.FreqMHz = Unavailable("Clock", "MHz", err)
	} else {
		snap.GPU.FreqMHz = NewMetric("Clock", float64(freq.CurMHz), "MHz", Policy{})
		snap.GPU.MaxMHz = float64(freq.MaxMHz)
	}

	if vram, err := sensors.GPUVRAM(c.cfg.Sensors.DRMCard); err != nil {
		snap.GPU.VRAM = Unavailable("VRAM", "%", err)
	} else {
		snap.GPU.VRAM = NewMetric("VRAM", vram.UsedPercent(), "%", c.policy("mem_usage"))
		snap.GPU.VRAMUsed = vram.Used
		snap.GPU.VRAMTotal = vram.Total
	}

	snap.GPU.FanRPM = c.fanMetric()
}

func (c *Collector) fanMetric() Metric {
	chip, err := c.reader.FindChip(c.cfg.Sensors.FanChip)
	if err != nil {
		return Unavailable("Fan", "RPM", err)
	}
	rpm, err := chip.MaxFanRPM()
	if err != nil {
		return Unavailable("Fan", "RPM", err)
	}
	return NewMetric("Fan", float64(rpm), "RPM", Policy{})
}

func (c *Collector) collectMemory(snap *Snapshot) {
	mi, err := c.reader.MemInfo()
	if err != nil {
		snap.Memory.Usage = Unavailable("Memory", "%", err)
		return
	}
	snap.Memory = MemoryMetrics{
		Usage:     NewMetric("Memory", mi.UsedPercent(), "%", c.policy("mem_usage")),
		Used:      mi.Used(),
		Total:     mi.Total,
		SwapUsed:  mi.SwapUsed(),
		SwapTotal: mi.SwapTotal,
	}
}

func (c *Collector) collectStorage(snap *Snapshot) {
	mounts, err := sensors.Storage()
	if err != nil {
		return
	}
	pol := c.policy("storage")
	snap.Storage = make([]MountUsage, len(mounts))
	for i, m := range mounts {
		snap.Storage[i] = MountUsage{
			Path:   m.Path,
			Device: m.Device,
			Usage:  NewMetric(m.Path, m.UsedPercent, "%", pol),
			Used:   m.Used,
			Total:  m.Total,
		}
	}
}

func (c *Collector) collectDisk(snap *Snapshot) {
	sample, err := c.reader.DiskStats(c.cfg.Sensors.DiskPrefix)
	if err != nil {
		snap.Disk.ReadRate = Unavailable("Read", "B/s", err)
		snap.Disk.WriteRate = Unavailable("Write", "B/s", err)
	} else {
		var read, write float64
		if c.prev.disk != nil {
			read = Rate(
				CounterSample{Bytes: c.prev.disk.ReadBytes(), Timestamp: c.prev.diskTaken},
				CounterSample{Bytes: sample.ReadBytes(), Timestamp: snap.Taken},
			)
			write = Rate(
				CounterSample{Bytes: c.prev.disk.WriteBytes(), Timestamp: c.prev.diskTaken},
				CounterSample{Bytes: sample.WriteBytes(), Timestamp: snap.Taken},
			)
		}
		snap.Disk.ReadRate = NewMetric("Read", read, "B/s", Policy{})
		snap.Disk.WriteRate = NewMetric("Write", write, "B/s", Policy{})
		c.prev.disk = &sample
		c.prev.diskTaken = snap.Taken
	}

	if t, err := c.reader.ChipTemp(c.cfg.Sensors.NVMeTempChip); err != nil {
		snap.Disk.NVMeTemp = Unavailable("NVMe", "°C", err)
	} else {
		snap.Disk.NVMeTemp = NewMetric("NVMe", t, "°C", c.policy("nvme_temp"))
	}
}

func (c *Collector) collectNet(snap *Snapshot) {
	sample, err := c.reader.NetDev()
	if err != nil {
		snap.Net.RxRate = Unavailable("Down", "B/s", err)
		snap.Net.TxRate = Unavailable("Up", "B/s", err)
	} else {
		var rx, tx float64
		if c.prev.net != nil {
			rx = Rate(
				CounterSample{Bytes: c.prev.net.RxBytes, Timestamp: c.prev.netTaken},
				CounterSample{Bytes: sample.RxBytes, Timestamp: snap.Taken},
			)
			tx = Rate(
				CounterSample{Bytes: c.prev.net.TxBytes, Timestamp: c.prev.netTaken},
				CounterSample{Bytes: sample.TxBytes, Timestamp: snap.Taken},
			)
		}
		snap.Net.RxRate = NewMetric("Down", rx, "B/s", Policy{})
		snap.Net.TxRate = NewMetric("Up", tx, "B/s", Policy{})
		c.prev.net = &sample
		c.prev.netTaken = snap.Taken
	}

	if w, err := c.reader.Wireless(); err != nil {
		snap.Net.Wifi = Unavailable("Wi-Fi", "%", err)
	} else {
		snap.Net.Wifi = NewMetric(w.Interface, float64(w.Quality), "%", Policy{})
	}
}

func (c *Collector) collectSystem(snap *Snapshot) {
	snap.System.Hostname = c.hostname
	if up, err := c.reader.Uptime(); err == nil {
		snap.System.Uptime = up
	}
	if l1, l5, l15, err := sensors.LoadAvg(); err == nil {
		snap.System.Load1, snap.System.Load5, snap.System.Load15 = l1, l5, l15
	}
	if procs, threads, err := c.reader.ProcCounts(); err == nil {
		snap.System.Procs = procs
		snap.System.Threads = threads
	}
}
