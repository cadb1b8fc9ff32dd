package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mthorne/vitals/internal/engine"
	"github.com/mthorne/vitals/tui/components"
	"github.com/mthorne/vitals/tui/styles"
)

// Layout breakpoints: terminal width at which the panel grid gains columns.
const (
	threeColWidth = 120
	twoColWidth   = 80
)

const labelWidth = 7

// DashboardView is the main monitoring view: a grid of sensor panels backed
// by the latest snapshot, with per-metric history kept in ring buffers for
// the sparklines and the thermal chart.
type DashboardView struct {
	theme   styles.Theme
	sty     *styles.Styles
	snap    *engine.Snapshot
	width   int
	height  int
	flashOn bool

	cpuHist     *engine.RingBuffer[float64]
	cpuTempHist *engine.RingBuffer[float64]
	gpuTempHist *engine.RingBuffer[float64]
	hotspotHist *engine.RingBuffer[float64]
	nvmeHist    *engine.RingBuffer[float64]
	memHist     *engine.RingBuffer[float64]
	readHist    *engine.RingBuffer[float64]
	writeHist   *engine.RingBuffer[float64]
	rxHist      *engine.RingBuffer[float64]
	txHist      *engine.RingBuffer[float64]
}

// NewDashboardView creates a new DashboardView with the given theme and
// history depth.
func NewDashboardView(theme styles.Theme, maxHistory int) DashboardView {
	if maxHistory < 1 {
		maxHistory = 60
	}
	return DashboardView{
		theme:       theme,
		sty:         styles.NewStyles(theme),
		cpuHist:     engine.NewRingBuffer[float64](maxHistory),
		cpuTempHist: engine.NewRingBuffer[float64](maxHistory),
		gpuTempHist: engine.NewRingBuffer[float64](maxHistory),
		hotspotHist: engine.NewRingBuffer[float64](maxHistory),
		nvmeHist:    engine.NewRingBuffer[float64](maxHistory),
		memHist:     engine.NewRingBuffer[float64](maxHistory),
		readHist:    engine.NewRingBuffer[float64](maxHistory),
		writeHist:   engine.NewRingBuffer[float64](maxHistory),
		rxHist:      engine.NewRingBuffer[float64](maxHistory),
		txHist:      engine.NewRingBuffer[float64](maxHistory),
	}
}

// SetSnapshot installs a fresh snapshot and appends its values to the
// history buffers. Unavailable metrics leave their history untouched.
func (v *DashboardView) SetSnapshot(snap *engine.Snapshot) {
	v.snap = snap
	if snap == nil {
		return
	}
	push := func(rb *engine.RingBuffer[float64], m engine.Metric) {
		if m.Available() {
			rb.Add(m.Value)
		}
	}
	push(v.cpuHist, snap.CPU.Usage)
	push(v.cpuTempHist, snap.CPU.Temp)
	push(v.gpuTempHist, snap.GPU.Temp)
	push(v.hotspotHist, snap.GPU.Hotspot)
	push(v.nvmeHist, snap.Disk.NVMeTemp)
	push(v.memHist, snap.Memory.Usage)
	push(v.readHist, snap.Disk.ReadRate)
	push(v.writeHist, snap.Disk.WriteRate)
	push(v.rxHist, snap.Net.RxRate)
	push(v.txHist, snap.Net.TxRate)
}

// SetSize updates the available dimensions for the view.
func (v *DashboardView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// SetFlash sets the alert flash phase for this frame.
func (v *DashboardView) SetFlash(on bool) {
	v.flashOn = on
}

// SetTheme swaps the color scheme.
func (v *DashboardView) SetTheme(theme styles.Theme) {
	v.theme = theme
	v.sty = styles.NewStyles(theme)
}

// View renders the panel grid.
func (v DashboardView) View() string {
	if v.snap == nil {
		return v.renderEmpty()
	}

	cols := 1
	switch {
	case v.width >= threeColWidth:
		cols = 3
	case v.width >= twoColWidth:
		cols = 2
	}
	// Inner content width per panel: borders and padding eat 4 columns.
	inner := v.width/cols - 4
	if inner < 24 {
		inner = 24
	}

	panels := []string{
		v.cpuPanel(inner),
		v.gpuPanel(inner),
		v.memPanel(inner),
		v.netPanel(inner),
		v.diskPanel(inner),
		v.storagePanel(inner),
		v.systemPanel(inner),
		v.processPanel(inner),
	}

	var rows []string
	for start := 0; start < len(panels); start += cols {
		end := start + cols
		if end > len(panels) {
			end = len(panels)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, panels[start:end]...))
	}

	thermalInner := v.width - 4
	if thermalInner < 24 {
		thermalInner = 24
	}
	rows = append(rows, v.thermalPanel(thermalInner))

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderEmpty renders a centered message before the first snapshot lands.
func (v DashboardView) renderEmpty() string {
	msg := lipgloss.NewStyle().
		Foreground(v.theme.Base04).
		Render("waiting for first sensor pass...")
	return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, msg)
}

// panel wraps rendered lines in a bordered box with a styled title row.
func (v DashboardView) panel(title string, inner int, lines []string) string {
	content := make([]string, 0, len(lines)+1)
	content = append(content, v.sty.PanelTitle.Render(padRight(title, inner)))
	content = append(content, lines...)
	return v.sty.Panel.Width(inner).Render(strings.Join(content, "\n"))
}

// statusStyle picks the color for a status, swapping in the flash style on
// critical metrics during the bright phase.
func (v DashboardView) statusStyle(s engine.Status) lipgloss.Style {
	if s == engine.StatusCritical && v.flashOn {
		return v.sty.CriticalFlash
	}
	return v.sty.ForStatus(s)
}

// metricRow renders "label  value" with the value colored by status.
// Unavailable metrics render their placeholder dimmed.
func (v DashboardView) metricRow(label string, m engine.Metric, value string) string {
	name := v.sty.Label.Render(padRight(label, labelWidth))
	if !m.Available() {
		return name + v.sty.Offline.Render(m.Placeholder())
	}
	return name + v.statusStyle(m.Status).Render(value)
}

// gaugeRow renders "label  ████░░░  value" with gauge and value colored by
// the metric's status.
func (v DashboardView) gaugeRow(label string, m engine.Metric, inner int) string {
	name := v.sty.Label.Render(padRight(label, labelWidth))
	valueWidth := 7
	barWidth := inner - labelWidth - valueWidth - 1
	if barWidth < 4 {
		barWidth = 4
	}
	if !m.Available() {
		return name + v.sty.Offline.Render(m.Placeholder())
	}
	style := v.statusStyle(m.Status)
	bar := style.Render(components.Gauge(m.Value, barWidth))
	return name + bar + " " + style.Render(padLeft(fmt.Sprintf("%.1f%%", m.Value), valueWidth-1))
}

// sparkRow renders "label  value ▂▃▅▂" with the remaining width as history.
func (v DashboardView) sparkRow(label string, m engine.Metric, value string, hist *engine.RingBuffer[float64], inner int) string {
	name := v.sty.Label.Render(padRight(label, labelWidth))
	valueCol := padLeft(value, 9)
	sparkWidth := inner - labelWidth - len(valueCol) - 1
	if sparkWidth < 4 {
		sparkWidth = 4
	}
	if !m.Available() {
		return name + v.sty.Offline.Render(padLeft(m.Placeholder(), 9))
	}
	spark := v.sty.Sparkline.Render(components.Sparkline(hist.All(), sparkWidth))
	return name + v.statusStyle(m.Status).Render(valueCol) + " " + spark
}

func (v DashboardView) cpuPanel(inner int) string {
	cpu := v.snap.CPU
	lines := []string{
		v.gaugeRow("usage", cpu.Usage, inner),
		v.coreRow(cpu.PerCore, inner),
	}
	if cpu.Usage.Available() {
		lines = append(lines, v.sty.Label.Render(padRight("trend", labelWidth))+
			v.sty.Sparkline.Render(components.Sparkline(v.cpuHist.All(), inner-labelWidth)))
	}
	lines = append(lines,
		v.metricRow("clock", cpu.FreqMHz, fmt.Sprintf("%.0f MHz", cpu.FreqMHz.Value)),
		v.metricRow("temp", cpu.Temp, formatTemp(cpu.Temp.Value)),
	)
	return v.panel("CPU", inner, lines)
}

// coreRow renders one block rune per core, each colored by its own status.
func (v DashboardView) coreRow(cores []engine.Metric, inner int) string {
	name := v.sty.Label.Render(padRight("cores", labelWidth))
	if len(cores) == 0 {
		return name + v.sty.Offline.Render("N/A")
	}
	max := inner - labelWidth
	if len(cores) > max && max > 0 {
		cores = cores[:max]
	}
	var sb strings.Builder
	for _, core := range cores {
		sb.WriteString(v.statusStyle(core.Status).Render(string(components.MeterRune(core.Value))))
	}
	return name + sb.String()
}

func (v DashboardView) gpuPanel(inner int) string {
	gpu := v.snap.GPU
	lines := []string{
		v.metricRow("temp", gpu.Temp, formatTemp(gpu.Temp.Value)),
		v.metricRow("hotspot", gpu.Hotspot, formatTemp(gpu.Hotspot.Value)),
		v.metricRow("clock", gpu.FreqMHz, fmt.Sprintf("%.0f/%.0f MHz", gpu.FreqMHz.Value, gpu.MaxMHz)),
		v.gaugeRow("vram", gpu.VRAM, inner),
	}
	if gpu.VRAM.Available() {
		lines = append(lines, v.sty.Label.Render(padRight("", labelWidth))+
			v.sty.Value.Render(fmt.Sprintf("%s / %s",
				components.FormatBytes(gpu.VRAMUsed), components.FormatBytes(gpu.VRAMTotal))))
	}
	lines = append(lines, v.metricRow("fan", gpu.FanRPM, fmt.Sprintf("%.0f RPM", gpu.FanRPM.Value)))
	return v.panel("GPU", inner, lines)
}

func (v DashboardView) memPanel(inner int) string {
	mem := v.snap.Memory
	lines := []string{
		v.gaugeRow("usage", mem.Usage, inner),
	}
	if mem.Usage.Available() {
		lines = append(lines,
			v.sty.Label.Render(padRight("used", labelWidth))+
				v.sty.Value.Render(fmt.Sprintf("%s / %s",
					components.FormatBytes(mem.Used), components.FormatBytes(mem.Total))),
			v.sty.Label.Render(padRight("swap", labelWidth))+
				v.sty.Value.Render(fmt.Sprintf("%s / %s",
					components.FormatBytes(mem.SwapUsed), components.FormatBytes(mem.SwapTotal))),
			v.sty.Label.Render(padRight("trend", labelWidth))+
				v.sty.Sparkline.Render(components.Sparkline(v.memHist.All(), inner-labelWidth)),
		)
	}
	return v.panel("MEMORY", inner, lines)
}

func (v DashboardView) netPanel(inner int) string {
	net := v.snap.Net
	lines := []string{
		v.sparkRow("down", net.RxRate, components.FormatRate(net.RxRate.Value)+"/s", v.rxHist, inner),
		v.sparkRow("up", net.TxRate, components.FormatRate(net.TxRate.Value)+"/s", v.txHist, inner),
	}
	wifi := v.sty.Label.Render(padRight("wifi", labelWidth))
	if net.Wifi.Available() {
		wifi += v.statusStyle(net.Wifi.Status).Render(fmt.Sprintf("%s %.0f%%", net.Wifi.Name, net.Wifi.Value))
	} else {
		wifi += v.sty.Offline.Render(net.Wifi.Placeholder())
	}
	lines = append(lines, wifi)
	return v.panel("NETWORK", inner, lines)
}

func (v DashboardView) diskPanel(inner int) string {
	disk := v.snap.Disk
	lines := []string{
		v.sparkRow("read", disk.ReadRate, components.FormatRate(disk.ReadRate.Value)+"/s", v.readHist, inner),
		v.sparkRow("write", disk.WriteRate, components.FormatRate(disk.WriteRate.Value)+"/s", v.writeHist, inner),
		v.metricRow("nvme", disk.NVMeTemp, formatTemp(disk.NVMeTemp.Value)),
	}
	return v.panel("DISK I/O", inner, lines)
}

func (v DashboardView) storagePanel(inner int) string {
	mounts := v.snap.Storage
	if len(mounts) == 0 {
		return v.panel("STORAGE", inner, []string{v.sty.Offline.Render("no mounts")})
	}
	var lines []string
	for _, m := range mounts {
		name := v.sty.Label.Render(padRight(truncate(m.Path, labelWidth-1), labelWidth))
		valueWidth := 7
		barWidth := inner - labelWidth - valueWidth - 1
		if barWidth < 4 {
			barWidth = 4
		}
		style := v.statusStyle(m.Usage.Status)
		bar := style.Render(components.Gauge(m.Usage.Value, barWidth))
		pct := style.Render(padLeft(fmt.Sprintf("%.1f%%", m.Usage.Value), valueWidth-1))
		lines = append(lines, name+bar+" "+pct)
		lines = append(lines, v.sty.Dim.Render(padRight("", labelWidth)+
			fmt.Sprintf("%s / %s on %s",
				components.FormatBytes(m.Used), components.FormatBytes(m.Total),
				truncate(m.Device, inner-labelWidth-16))))
	}
	return v.panel("STORAGE", inner, lines)
}

func (v DashboardView) systemPanel(inner int) string {
	sys := v.snap.System
	lines := []string{
		v.sty.Label.Render(padRight("uptime", labelWidth)) +
			v.sty.Value.Render(components.FormatUptime(sys.Uptime)),
		v.sty.Label.Render(padRight("load", labelWidth)) +
			v.sty.Value.Render(fmt.Sprintf("%.2f %.2f %.2f", sys.Load1, sys.Load5, sys.Load15)),
		v.sty.Label.Render(padRight("procs", labelWidth)) +
			v.sty.Value.Render(fmt.Sprintf("%d", sys.Procs)),
		v.sty.Label.Render(padRight("threads", labelWidth)) +
			v.sty.Value.Render(fmt.Sprintf("%d", sys.Threads)),
	}
	return v.panel("SYSTEM", inner, lines)
}

func (v DashboardView) processPanel(inner int) string {
	procs := v.snap.Processes
	if len(procs) == 0 {
		return v.panel("PROCESSES", inner, []string{v.sty.Offline.Render("no process data")})
	}
	nameWidth := inner - 24
	if nameWidth < 8 {
		nameWidth = 8
	}
	header := v.sty.TableHeader.Render(
		padLeft("PID", 7) + padLeft("CPU%", 7) + padLeft("MEM%", 7) + "   " + padRight("NAME", nameWidth))
	lines := []string{header}
	for _, p := range procs {
		cpuStyle := v.sty.Dim
		switch {
		case p.CPUPercent > 50:
			cpuStyle = v.sty.Critical
		case p.CPUPercent > 20:
			cpuStyle = v.sty.Warning
		}
		lines = append(lines,
			v.sty.TableRow.Render(padLeft(fmt.Sprintf("%d", p.PID), 7))+
				cpuStyle.Render(padLeft(fmt.Sprintf("%.1f", p.CPUPercent), 7))+
				v.sty.TableRow.Render(padLeft(fmt.Sprintf("%.1f", p.MemPercent), 7))+
				"   "+v.sty.TableRow.Render(padRight(truncate(p.Name, nameWidth), nameWidth)))
	}
	return v.panel("PROCESSES", inner, lines)
}

// thermalPanel renders the full-width thermal history: a block chart of the
// GPU edge temperature plus sparkline rows for the other temperature
// sensors.
func (v DashboardView) thermalPanel(inner int) string {
	var lines []string
	if v.gpuTempHist.Len() > 0 {
		chart := components.RenderChart(v.gpuTempHist.All(), inner, 8, "gpu edge °C", formatTemp)
		lines = append(lines, v.sty.ChartAxis.Render(chart))
	} else {
		lines = append(lines, v.sty.Offline.Render("no thermal history"))
	}

	tempRow := func(label string, m engine.Metric, hist *engine.RingBuffer[float64]) string {
		name := v.sty.Label.Render(padRight(label, labelWidth))
		if !m.Available() {
			return name + v.sty.Offline.Render(m.Placeholder())
		}
		value := v.statusStyle(m.Status).Render(padLeft(formatTemp(m.Value), 7))
		sparkWidth := inner - labelWidth - 8
		if sparkWidth < 4 {
			sparkWidth = 4
		}
		spark := v.sty.Sparkline.Render(components.Sparkline(hist.All(), sparkWidth))
		return name + value + " " + spark
	}
	lines = append(lines,
		tempRow("cpu", v.snap.CPU.Temp, v.cpuTempHist),
		tempRow("hotspot", v.snap.GPU.Hotspot, v.hotspotHist),
		tempRow("nvme", v.snap.Disk.NVMeTemp, v.nvmeHist),
	)
	return v.panel("THERMAL", inner, lines)
}

func formatTemp(t float64) string {
	return fmt.Sprintf("%.1f°C", t)
}

// padRight pads s with spaces on the right to the given width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

// padLeft pads s with spaces on the left to the given width.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// truncate shortens s to maxLen characters, adding an ellipsis if needed.
func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
