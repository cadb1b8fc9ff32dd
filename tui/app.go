package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mthorne/vitals/internal/config"
	"github.com/mthorne/vitals/internal/engine"
	"github.com/mthorne/vitals/tui/components"
	"github.com/mthorne/vitals/tui/keys"
	"github.com/mthorne/vitals/tui/styles"
	"github.com/mthorne/vitals/tui/views"
)

// TickMsg triggers a sensor collection pass and a UI refresh.
type TickMsg struct{}

// FlashMsg toggles the flash phase used to blink critical readings.
type FlashMsg struct{}

const flashInterval = 500 * time.Millisecond

// AppModel is the root Bubble Tea model that owns the collector and all views.
type AppModel struct {
	theme     styles.Theme
	themeSlug string
	config    *config.Config
	collector *engine.Collector
	version   string

	snap      *engine.Snapshot
	dashboard views.DashboardView
	help      views.HelpView

	width   int
	height  int
	paused  bool
	flashOn bool
}

// NewAppModel creates the root model and runs one collection pass so the
// first frame already has data.
func NewAppModel(cfg *config.Config, col *engine.Collector, version string) AppModel {
	theme := styles.DefaultTheme
	slug := cfg.Theme
	if t := styles.GetThemeByName(cfg.Theme); t != nil {
		theme = *t
	} else {
		slug = "solarized-dark"
	}

	m := AppModel{
		theme:     theme,
		themeSlug: slug,
		config:    cfg,
		collector: col,
		version:   version,
		dashboard: views.NewDashboardView(theme, cfg.MaxHistory),
		help:      views.NewHelpView(theme),
	}
	m.snap = col.Collect()
	m.dashboard.SetSnapshot(m.snap)
	return m
}

// Init starts the poll and flash tick loops.
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.tickCmd(), flashCmd())
}

func (m AppModel) tickCmd() tea.Cmd {
	return tea.Tick(m.config.Interval(), func(t time.Time) tea.Msg {
		return TickMsg{}
	})
}

func flashCmd() tea.Cmd {
	return tea.Tick(flashInterval, func(t time.Time) tea.Msg {
		return FlashMsg{}
	})
}

// Update handles messages and dispatches key bindings.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Body height = total - 1 (header) - 2 (status bar lines)
		m.dashboard.SetSize(msg.Width, msg.Height-3)
		m.help.SetSize(msg.Width, msg.Height-3)
		return m, nil

	case TickMsg:
		if !m.paused {
			m.collect()
		}
		// Re-arm after the pass so a slow collection delays the next
		// tick instead of overlapping it.
		return m, m.tickCmd()

	case FlashMsg:
		m.flashOn = !m.flashOn
		m.dashboard.SetFlash(m.flashOn)
		return m, flashCmd()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.DefaultKeyMap.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.DefaultKeyMap.Help):
			m.help.Toggle()
			return m, nil
		case key.Matches(msg, keys.DefaultKeyMap.Escape):
			if m.help.IsVisible() {
				m.help.Toggle()
			}
			return m, nil
		case key.Matches(msg, keys.DefaultKeyMap.Pause):
			m.paused = !m.paused
			return m, nil
		case key.Matches(msg, keys.DefaultKeyMap.Refresh):
			m.collect()
			return m, nil
		case key.Matches(msg, keys.DefaultKeyMap.Theme):
			m.cycleTheme()
			return m, nil
		}
	}
	return m, nil
}

func (m *AppModel) collect() {
	m.snap = m.collector.Collect()
	m.dashboard.SetSnapshot(m.snap)
}

func (m *AppModel) cycleTheme() {
	m.themeSlug, m.theme = styles.NextTheme(m.themeSlug)
	m.dashboard.SetTheme(m.theme)
	m.help.SetTheme(m.theme)
}

// View renders the full application UI by composing header, body, and status.
func (m AppModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	critical := m.snap != nil && m.snap.AnyCritical()
	var hostname string
	if m.snap != nil {
		hostname = m.snap.System.Hostname
	}

	header := components.RenderHeader(m.theme, hostname, critical, m.flashOn, time.Now(), m.width, m.version)

	var body string
	if m.help.IsVisible() {
		body = m.help.View()
	} else {
		body = m.dashboard.View()
	}

	var lastPoll time.Time
	var collectTime time.Duration
	pollCount, offline := 0, 0
	if m.snap != nil {
		lastPoll = m.snap.Taken
		collectTime = m.snap.Duration
		pollCount = m.snap.PollCount
		offline = m.snap.Offline()
	}

	statusBar := components.RenderStatusBar(m.theme, m.config.Interval(), lastPoll, pollCount, collectTime, offline, m.paused, m.width)

	// Fill body to the available height between header and status bar
	bodyHeight := m.height - 1 - 2
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	bodyStyle := lipgloss.NewStyle().
		Width(m.width).
		Height(bodyHeight).
		Background(m.theme.Base00).
		Foreground(m.theme.Base05)

	return lipgloss.JoinVertical(lipgloss.Left, header, bodyStyle.Render(body), statusBar)
}
