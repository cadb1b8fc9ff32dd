package components

import (
	"fmt"
	"time"
)

// FormatRate renders a bytes-per-second rate in compact binary units,
// without the "/s" suffix.
func FormatRate(bps float64) string {
	if bps <= 0 {
		return "0"
	}
	switch {
	case bps >= 1<<40:
		return fmt.Sprintf("%.1fT", bps/(1<<40))
	case bps >= 1<<30:
		return fmt.Sprintf("%.1fG", bps/(1<<30))
	case bps >= 1<<20:
		return fmt.Sprintf("%.1fM", bps/(1<<20))
	case bps >= 1<<10:
		return fmt.Sprintf("%.1fK", bps/(1<<10))
	default:
		return fmt.Sprintf("%.0fB", bps)
	}
}

// FormatBytes renders a byte count in compact binary units.
func FormatBytes(n uint64) string {
	return FormatRate(float64(n))
}

// FormatUptime renders an uptime duration as "3d 4h 12m".
func FormatUptime(d time.Duration) string {
	d = d.Round(time.Minute)
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	mins := int(d.Minutes()) % 60
	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}
