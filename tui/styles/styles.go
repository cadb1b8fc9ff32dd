package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mthorne/vitals/internal/engine"
)

// Styles holds all themed lipgloss styles for the application.
type Styles struct {
	// Panels
	Panel      lipgloss.Style
	PanelTitle lipgloss.Style

	// Metric text
	Label lipgloss.Style
	Value lipgloss.Style
	Dim   lipgloss.Style

	// Status colors
	Nominal       lipgloss.Style
	Warning       lipgloss.Style
	Critical      lipgloss.Style
	CriticalFlash lipgloss.Style
	Offline       lipgloss.Style

	// Widgets
	Sparkline lipgloss.Style
	ChartAxis lipgloss.Style

	// Process table
	TableHeader lipgloss.Style
	TableRow    lipgloss.Style

	// Modal / overlay
	ModalBorder lipgloss.Style
	ModalTitle  lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(theme Theme) *Styles {
	return &Styles{
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Base02).
			Padding(0, 1),
		PanelTitle: lipgloss.NewStyle().
			Foreground(theme.Base0E).
			Bold(true),

		Label: lipgloss.NewStyle().
			Foreground(theme.Base04),
		Value: lipgloss.NewStyle().
			Foreground(theme.Base05),
		Dim: lipgloss.NewStyle().
			Foreground(theme.Base03),

		Nominal: lipgloss.NewStyle().
			Foreground(theme.Base0B),
		Warning: lipgloss.NewStyle().
			Foreground(theme.Base0A),
		Critical: lipgloss.NewStyle().
			Foreground(theme.Base08),
		CriticalFlash: lipgloss.NewStyle().
			Foreground(theme.Base00).
			Background(theme.Base08).
			Bold(true),
		Offline: lipgloss.NewStyle().
			Foreground(theme.Base03),

		Sparkline: lipgloss.NewStyle().
			Foreground(theme.Base0C),
		ChartAxis: lipgloss.NewStyle().
			Foreground(theme.Base03),

		TableHeader: lipgloss.NewStyle().
			Foreground(theme.Base0D).
			Bold(true),
		TableRow: lipgloss.NewStyle().
			Foreground(theme.Base05),

		ModalBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Base0D).
			BorderBackground(theme.Base00).
			Background(theme.Base00).
			Padding(1, 2),
		ModalTitle: lipgloss.NewStyle().
			Foreground(theme.Base0D).
			Bold(true),
	}
}

// ForStatus returns the color style for a metric status.
func (s *Styles) ForStatus(status engine.Status) lipgloss.Style {
	switch status {
	case engine.StatusCritical:
		return s.Critical
	case engine.StatusWarning:
		return s.Warning
	case engine.StatusUnavailable:
		return s.Offline
	default:
		return s.Nominal
	}
}
