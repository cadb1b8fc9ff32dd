package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mthorne/vitals/internal/config"
	"github.com/mthorne/vitals/internal/engine"
	"github.com/mthorne/vitals/internal/sensors"
	"github.com/mthorne/vitals/tui"
	"github.com/mthorne/vitals/tui/styles"
)

const version = "0.1.0"

var (
	configFlag   string
	themeFlag    string
	intervalFlag int
)

// rootCmd launches the live dashboard. Subcommands print one-shot reports
// for scripting.
var rootCmd = &cobra.Command{
	Use:   "vitals",
	Short: "Terminal hardware monitor",
	Long: `vitals polls CPU, GPU, memory, disk, and network sensors on the local
machine and renders them as a live terminal dashboard.

Run with no arguments to launch the dashboard:
  vitals
  vitals --theme nord
  vitals --interval 500

One-shot commands for scripting:
  vitals snapshot       Print a single sensor report
  vitals sensors        Probe every sensor source and report availability
  vitals themes         List color themes
  vitals config init    Write the default config file`,
	RunE: runRoot,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file (default: user config dir)")
	rootCmd.Flags().StringVar(&themeFlag, "theme", "", "color theme for this session")
	rootCmd.Flags().IntVar(&intervalFlag, "interval", 0, "poll interval in milliseconds")
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	if themeFlag != "" {
		if styles.GetThemeByName(themeFlag) == nil {
			return fmt.Errorf("unknown theme %q (run 'vitals themes' to list them)", themeFlag)
		}
		cfg.Theme = themeFlag
	}
	if intervalFlag > 0 {
		cfg.PollIntervalMs = intervalFlag
	}

	// A full-screen TUI owns the terminal, so debug output goes to a file.
	if os.Getenv("VITALS_DEBUG") != "" {
		f, err := tea.LogToFile("vitals-debug.log", "debug")
		if err != nil {
			return err
		}
		defer f.Close()
	}

	collector := engine.NewCollector(cfg, sensors.NewReader())
	model := tui.NewAppModel(cfg, collector, version)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

// loadConfig resolves the config path (--config flag or the default
// location) and loads it. A missing file yields the built-in defaults; an
// unresolvable home directory does too.
func loadConfig() *config.Config {
	path := configFlag
	if path == "" {
		p, err := config.GetConfigFilePath()
		if err != nil {
			return config.DefaultConfig()
		}
		path = p
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring config: %v\n", err)
		return config.DefaultConfig()
	}
	return cfg
}
