package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mthorne/vitals/internal/engine"
	"github.com/mthorne/vitals/internal/sensors"
	"github.com/mthorne/vitals/tui/components"
	"github.com/mthorne/vitals/tui/styles"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print a one-shot sensor report",
	Long: `Collect every sensor and print the readings as plain text.

Two collection passes run one poll interval apart so the rate counters
(CPU usage, disk throughput, network traffic) have a real baseline.`,
	RunE: runSnapshot,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	collector := engine.NewCollector(cfg, sensors.NewReader())

	// First pass establishes the counter baseline.
	collector.Collect()
	time.Sleep(cfg.Interval())
	snap := collector.Collect()

	sty := styles.NewStyles(resolveTheme(cfg.Theme))
	barWidth := gaugeWidth()

	fmt.Printf("%s  %s\n", snap.System.Hostname, snap.Taken.Format("2006-01-02 15:04:05"))

	section(sty, "CPU")
	printGauge(sty, "usage", snap.CPU.Usage, barWidth)
	printMetric(sty, "clock", snap.CPU.FreqMHz, fmt.Sprintf("%.0f MHz", snap.CPU.FreqMHz.Value))
	printMetric(sty, "temp", snap.CPU.Temp, fmt.Sprintf("%.1f°C", snap.CPU.Temp.Value))

	section(sty, "GPU")
	printMetric(sty, "temp", snap.GPU.Temp, fmt.Sprintf("%.1f°C", snap.GPU.Temp.Value))
	printMetric(sty, "hotspot", snap.GPU.Hotspot, fmt.Sprintf("%.1f°C", snap.GPU.Hotspot.Value))
	printMetric(sty, "clock", snap.GPU.FreqMHz, fmt.Sprintf("%.0f MHz", snap.GPU.FreqMHz.Value))
	printGauge(sty, "vram", snap.GPU.VRAM, barWidth)
	printMetric(sty, "fan", snap.GPU.FanRPM, fmt.Sprintf("%.0f RPM", snap.GPU.FanRPM.Value))

	section(sty, "MEMORY")
	printGauge(sty, "usage", snap.Memory.Usage, barWidth)
	if snap.Memory.Total > 0 {
		fmt.Printf("  %-8s %s / %s\n", "used", components.FormatBytes(snap.Memory.Used), components.FormatBytes(snap.Memory.Total))
	}
	if snap.Memory.SwapTotal > 0 {
		fmt.Printf("  %-8s %s / %s\n", "swap", components.FormatBytes(snap.Memory.SwapUsed), components.FormatBytes(snap.Memory.SwapTotal))
	}

	section(sty, "DISK I/O")
	printMetric(sty, "read", snap.Disk.ReadRate, components.FormatRate(snap.Disk.ReadRate.Value)+"/s")
	printMetric(sty, "write", snap.Disk.WriteRate, components.FormatRate(snap.Disk.WriteRate.Value)+"/s")
	printMetric(sty, "nvme", snap.Disk.NVMeTemp, fmt.Sprintf("%.1f°C", snap.Disk.NVMeTemp.Value))

	section(sty, "NETWORK")
	printMetric(sty, "down", snap.Net.RxRate, components.FormatRate(snap.Net.RxRate.Value)+"/s")
	printMetric(sty, "up", snap.Net.TxRate, components.FormatRate(snap.Net.TxRate.Value)+"/s")
	if snap.Net.Wifi.Available() {
		printMetric(sty, "wifi", snap.Net.Wifi, fmt.Sprintf("%s %.0f%%", snap.Net.Wifi.Name, snap.Net.Wifi.Value))
	}

	section(sty, "STORAGE")
	if len(snap.Storage) == 0 {
		fmt.Println("  no mounts")
	}
	for _, mnt := range snap.Storage {
		printGauge(sty, mnt.Path, mnt.Usage, barWidth)
	}

	section(sty, "SYSTEM")
	fmt.Printf("  %-8s %s\n", "uptime", components.FormatUptime(snap.System.Uptime))
	fmt.Printf("  %-8s %.2f %.2f %.2f\n", "load", snap.System.Load1, snap.System.Load5, snap.System.Load15)
	fmt.Printf("  %-8s %d (%d threads)\n", "procs", snap.System.Procs, snap.System.Threads)

	return nil
}

func section(sty *styles.Styles, name string) {
	fmt.Println()
	fmt.Println(sty.PanelTitle.Render(name))
}

func printMetric(sty *styles.Styles, label string, m engine.Metric, value string) {
	if !m.Available() {
		fmt.Printf("  %-8s %s\n", label, sty.Dim.Render(m.Placeholder()))
		return
	}
	fmt.Printf("  %-8s %s%s\n", label, value, statusTag(sty, m.Status))
}

func printGauge(sty *styles.Styles, label string, m engine.Metric, width int) {
	if !m.Available() {
		fmt.Printf("  %-8s %s\n", label, sty.Dim.Render(m.Placeholder()))
		return
	}
	fmt.Printf("  %-8s %s %5.1f%%%s\n", label, components.Gauge(m.Value, width), m.Value, statusTag(sty, m.Status))
}

// statusTag renders a colored marker for non-nominal readings. Nominal rows
// stay unmarked so exceptions stand out when the report is grepped.
func statusTag(sty *styles.Styles, s engine.Status) string {
	if s == engine.StatusNominal {
		return ""
	}
	return "  " + sty.ForStatus(s).Render("["+s.String()+"]")
}

func resolveTheme(name string) styles.Theme {
	if t := styles.GetThemeByName(name); t != nil {
		return *t
	}
	return styles.DefaultTheme
}

// gaugeWidth sizes text gauges from the terminal width, with a fallback for
// piped output.
func gaugeWidth() int {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}
	bar := width - 32
	if bar < 10 {
		bar = 10
	}
	if bar > 40 {
		bar = 40
	}
	return bar
}
