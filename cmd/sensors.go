package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mthorne/vitals/internal/config"
	"github.com/mthorne/vitals/internal/sensors"
	"github.com/mthorne/vitals/tui/components"
	"github.com/mthorne/vitals/tui/styles"
)

var sensorsCmd = &cobra.Command{
	Use:   "sensors",
	Short: "Probe every sensor source and report availability",
	Long: `Probe each sensor source once and print what it returned.

Use this to check which readings the dashboard will have on this machine,
and to verify [sensors] path overrides in the config file.`,
	RunE: runSensors,
}

func init() {
	rootCmd.AddCommand(sensorsCmd)
}

// probeResult is one row of the availability table.
type probeResult struct {
	name    string
	source  string
	reading string
	err     error
}

func runSensors(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	r := sensors.NewReader()
	sty := styles.NewStyles(resolveTheme(cfg.Theme))

	results := probeAll(cfg, r)

	nameW, sourceW := len("SENSOR"), len("SOURCE")
	for _, res := range results {
		if len(res.name) > nameW {
			nameW = len(res.name)
		}
		if len(res.source) > sourceW {
			sourceW = len(res.source)
		}
	}

	// Trim long error text so rows stay on one line in narrow terminals.
	errWidth := 60
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		errWidth = w - nameW - sourceW - 16
		if errWidth < 20 {
			errWidth = 20
		}
	}

	fmt.Printf("%-*s  %-*s  %s\n", nameW, "SENSOR", sourceW, "SOURCE", "READING")
	available := 0
	for _, res := range results {
		reading := res.reading
		if res.err != nil {
			reading = probeFailure(sty, res.err, errWidth)
		} else {
			available++
		}
		fmt.Printf("%-*s  %-*s  %s\n", nameW, res.name, sourceW, res.source, reading)
	}

	fmt.Printf("\n%d/%d sources available\n", available, len(results))
	if path, err := config.GetConfigFilePath(); err == nil {
		fmt.Printf("Sensor paths come from [sensors] in %s\n", path)
	}
	return nil
}

func probeAll(cfg *config.Config, r *sensors.Reader) []probeResult {
	return []probeResult{
		probeCPUUsage(r),
		probeCPUClock(r),
		probeChipTemp("cpu temp", cfg.Sensors.CPUTempChip, r),
		probePMT(cfg.Sensors.PMTPath),
		probeGPUClock(cfg.Sensors.DRMCard),
		probeVRAM(cfg.Sensors.DRMCard),
		probeFan(cfg.Sensors.FanChip, r),
		probeMemory(r),
		probeDisk(cfg.Sensors.DiskPrefix, r),
		probeChipTemp("nvme temp", cfg.Sensors.NVMeTempChip, r),
		probeNet(r),
		probeWifi(r),
		probeStorage(),
		probeLoad(),
		probeProcs(r),
	}
}

func probeCPUUsage(r *sensors.Reader) probeResult {
	res := probeResult{name: "cpu usage", source: "/proc/stat"}
	sample, err := r.CPUStat()
	if err != nil {
		res.err = err
		return res
	}
	res.reading = fmt.Sprintf("ok, %d cores", len(sample.Cores))
	return res
}

func probeCPUClock(r *sensors.Reader) probeResult {
	res := probeResult{name: "cpu clock", source: "/proc/cpuinfo"}
	mhz, err := r.CPUFreqMHz()
	if err != nil {
		res.err = err
		return res
	}
	res.reading = fmt.Sprintf("%.0f MHz", mhz)
	return res
}

func probeChipTemp(name, chip string, r *sensors.Reader) probeResult {
	res := probeResult{name: name, source: "hwmon chip " + chip}
	temp, err := r.ChipTemp(chip)
	if err != nil {
		res.err = err
		return res
	}
	res.reading = fmt.Sprintf("%.1f°C", temp)
	return res
}

func probePMT(path string) probeResult {
	res := probeResult{name: "gpu thermal", source: path}
	edge, hotspot, err := sensors.PMTTemps(path)
	if err != nil {
		res.err = err
		return res
	}
	res.reading = fmt.Sprintf("edge %.1f°C, hotspot %.1f°C", edge, hotspot)
	return res
}

func probeGPUClock(cardDir string) probeResult {
	res := probeResult{name: "gpu clock", source: cardDir}
	freq, err := sensors.GPUFrequency(cardDir)
	if err != nil {
		res.err = err
		return res
	}
	res.reading = fmt.Sprintf("%d/%d MHz", freq.CurMHz, freq.MaxMHz)
	return res
}

func probeVRAM(cardDir string) probeResult {
	res := probeResult{name: "gpu vram", source: cardDir}
	vram, err := sensors.GPUVRAM(cardDir)
	if err != nil {
		res.err = err
		return res
	}
	res.reading = fmt.Sprintf("%s / %s", components.FormatBytes(vram.Used), components.FormatBytes(vram.Total))
	return res
}

func probeFan(chipName string, r *sensors.Reader) probeResult {
	res := probeResult{name: "gpu fan", source: "hwmon chip " + chipName}
	chip, err := r.FindChip(chipName)
	if err != nil {
		res.err = err
		return res
	}
	rpm, err := chip.MaxFanRPM()
	if err != nil {
		res.err = err
		return res
	}
	res.reading = fmt.Sprintf("%d RPM", rpm)
	return res
}

func probeMemory(r *sensors.Reader) probeResult {
	res := probeResult{name: "memory", source: "/proc/meminfo"}
	mem, err := r.MemInfo()
	if err != nil {
		res.err = err
		return res
	}
	res.reading = fmt.Sprintf("%s total", components.FormatBytes(mem.Total))
	return res
}

func probeDisk(prefix string, r *sensors.Reader) probeResult {
	res := probeResult{name: "disk i/o", source: "/proc/diskstats (" + prefix + "*)"}
	sample, err := r.DiskStats(prefix)
	if err != nil {
		res.err = err
		return res
	}
	res.reading = fmt.Sprintf("%s read, %s written since boot",
		components.FormatBytes(sample.ReadBytes()), components.FormatBytes(sample.WriteBytes()))
	return res
}

func probeNet(r *sensors.Reader) probeResult {
	res := probeResult{name: "network", source: "/sys/class/net"}
	sample, err := r.NetDev()
	if err != nil {
		res.err = err
		return res
	}
	res.reading = fmt.Sprintf("%s rx, %s tx since boot",
		components.FormatBytes(sample.RxBytes), components.FormatBytes(sample.TxBytes))
	return res
}

func probeWifi(r *sensors.Reader) probeResult {
	res := probeResult{name: "wifi", source: "/proc/net/wireless"}
	wifi, err := r.Wireless()
	if err != nil {
		res.err = err
		return res
	}
	res.reading = fmt.Sprintf("%s, %d dBm (%d%%)", wifi.Interface, wifi.SignalDBm, wifi.Quality)
	return res
}

func probeStorage() probeResult {
	res := probeResult{name: "storage", source: "mounted filesystems"}
	mounts, err := sensors.Storage()
	if err != nil {
		res.err = err
		return res
	}
	res.reading = fmt.Sprintf("%d mounts", len(mounts))
	return res
}

func probeLoad() probeResult {
	res := probeResult{name: "load avg", source: "/proc/loadavg"}
	l1, l5, l15, err := sensors.LoadAvg()
	if err != nil {
		res.err = err
		return res
	}
	res.reading = fmt.Sprintf("%.2f %.2f %.2f", l1, l5, l15)
	return res
}

func probeProcs(r *sensors.Reader) probeResult {
	res := probeResult{name: "processes", source: "/proc"}
	procs, threads, err := r.ProcCounts()
	if err != nil {
		res.err = err
		return res
	}
	res.reading = fmt.Sprintf("%d processes, %d threads", procs, threads)
	return res
}

// probeFailure renders a failed probe the way the dashboard labels it, with
// the underlying error alongside.
func probeFailure(sty *styles.Styles, err error, errWidth int) string {
	label, style := "N/A", sty.Offline
	if errors.Is(err, sensors.ErrNoAccess) {
		label, style = "NO ACCESS", sty.Warning
	}
	text := err.Error()
	if len(text) > errWidth {
		text = text[:errWidth-3] + "..."
	}
	return style.Render(label) + "  " + sty.Dim.Render(text)
}
