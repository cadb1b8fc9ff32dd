package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mthorne/vitals/tui/styles"
)

// RenderStatusBar renders the two-line status/footer bar showing poll info
// and key bindings.
func RenderStatusBar(theme styles.Theme, interval time.Duration, lastPoll time.Time, pollCount int, collectTime time.Duration, offline int, paused bool, width int) string {
	bg := theme.Base01
	bgStyle := lipgloss.NewStyle().Background(bg)
	sep := lipgloss.NewStyle().Foreground(theme.Base03).Background(bg).Render(" | ")
	infoStyle := lipgloss.NewStyle().Foreground(theme.Base05).Background(bg)

	pollSeg := infoStyle.Render(fmt.Sprintf("poll: %s", interval))
	lastStr := "never"
	if !lastPoll.IsZero() {
		lastStr = lastPoll.Format("15:04:05")
	}
	lastSeg := infoStyle.Render(fmt.Sprintf("last: %s", lastStr))
	countSeg := infoStyle.Render(fmt.Sprintf("#%d", pollCount))
	timeSeg := infoStyle.Render(fmt.Sprintf("%.1fms", float64(collectTime.Microseconds())/1000))

	healthColor := theme.Base0B
	healthText := "all sensors OK"
	if offline > 0 {
		healthColor = theme.Base0A
		healthText = fmt.Sprintf("%d offline", offline)
	}
	healthSeg := lipgloss.NewStyle().Foreground(healthColor).Background(bg).Render(healthText)

	topContent := bgStyle.Render(" ") + pollSeg + sep + lastSeg + sep + countSeg + sep + timeSeg + sep + healthSeg
	if paused {
		pausedSeg := lipgloss.NewStyle().Foreground(theme.Base0A).Background(bg).Bold(true).Render("PAUSED")
		topContent += sep + pausedSeg
	}
	topWidth := lipgloss.Width(topContent)
	if topWidth < width {
		topContent += bgStyle.Render(strings.Repeat(" ", width-topWidth))
	}

	keyStyle := lipgloss.NewStyle().Foreground(theme.Base0D).Background(bg).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.Base04).Background(bg)
	spacer := bgStyle.Render("  ")

	keys := bgStyle.Render(" ") +
		keyStyle.Render("p") + descStyle.Render(":pause") + spacer +
		keyStyle.Render("r") + descStyle.Render(":refresh") + spacer +
		keyStyle.Render("t") + descStyle.Render(":theme") + spacer +
		keyStyle.Render("?") + descStyle.Render(":help") + spacer +
		keyStyle.Render("q") + descStyle.Render(":quit")

	keysWidth := lipgloss.Width(keys)
	if keysWidth < width {
		keys += bgStyle.Render(strings.Repeat(" ", width-keysWidth))
	}

	return lipgloss.JoinVertical(lipgloss.Left, topContent, keys)
}
