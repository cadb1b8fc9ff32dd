package components

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mthorne/vitals/tui/styles"
)

// RenderHeader renders the top header bar with app name, hostname, system
// status banner, clock, and version.
func RenderHeader(theme styles.Theme, hostname string, critical, flashOn bool, now time.Time, width int, ver string) string {
	bg := theme.Base01

	brand := lipgloss.NewStyle().
		Foreground(theme.Base0D).
		Background(bg).
		Bold(true).
		Render("vitals")

	if hostname == "" {
		hostname = "(unknown host)"
	}
	host := lipgloss.NewStyle().
		Foreground(theme.Base05).
		Background(bg).
		Render(hostname)

	var banner string
	if critical {
		style := lipgloss.NewStyle().Foreground(theme.Base08).Background(bg).Bold(true)
		if flashOn {
			style = lipgloss.NewStyle().Foreground(theme.Base00).Background(theme.Base08).Bold(true)
		}
		banner = style.Render("⚠ THERMAL WARNING")
	} else {
		banner = lipgloss.NewStyle().
			Foreground(theme.Base0B).
			Background(bg).
			Bold(true).
			Render("ALL SYSTEMS NOMINAL")
	}

	clock := lipgloss.NewStyle().
		Foreground(theme.Base04).
		Background(bg).
		Render(now.Format("15:04:05"))

	versionSeg := lipgloss.NewStyle().
		Foreground(theme.Base04).
		Background(bg).
		Render("v" + ver)

	content := fmt.Sprintf(" %s  |  %s  |  %s  |  %s  |  %s ", brand, host, banner, clock, versionSeg)

	return lipgloss.NewStyle().
		Background(bg).
		Width(width).
		Render(content)
}
