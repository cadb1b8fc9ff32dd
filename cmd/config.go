package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mthorne/vitals/internal/config"
	"github.com/mthorne/vitals/tui/styles"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the config file",
	Long: `Manage the config file.

Commands:
  vitals config path          Print the config file path
  vitals config init          Write a config file with the default settings
  vitals config theme NAME    Set the default theme`,
	RunE: runConfigPath,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE:  runConfigPath,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	RunE:  runConfigInit,
}

var configThemeCmd = &cobra.Command{
	Use:   "theme NAME",
	Short: "Set the default theme",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigTheme,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configThemeCmd)
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	if configFlag != "" {
		fmt.Println(configFlag)
		return nil
	}
	path, err := config.GetConfigFilePath()
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, err := configWritePath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := config.SaveConfig(config.DefaultConfig(), path); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}

func runConfigTheme(cmd *cobra.Command, args []string) error {
	name := args[0]
	if styles.GetThemeByName(name) == nil {
		return fmt.Errorf("unknown theme %q (run 'vitals themes' to list them)", name)
	}

	cfg := loadConfig()
	cfg.Theme = name

	path, err := configWritePath()
	if err != nil {
		return err
	}
	if err := config.SaveConfig(cfg, path); err != nil {
		return err
	}
	fmt.Printf("Default theme set to %q.\n", name)
	return nil
}

// configWritePath resolves where config writes go: the --config override or
// the default location, creating directories for the latter.
func configWritePath() (string, error) {
	if configFlag != "" {
		return configFlag, nil
	}
	if err := config.EnsureDirs(); err != nil {
		return "", err
	}
	return config.GetConfigFilePath()
}
