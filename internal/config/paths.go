package config

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "vitals"

// GetConfigDir returns the platform-specific config directory.
// Unix: $XDG_CONFIG_HOME/vitals or ~/.config/vitals
// Windows: %APPDATA%\vitals
func GetConfigDir() (string, error) {
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("APPDATA")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	default:
		base = os.Getenv("XDG_CONFIG_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			base = filepath.Join(home, ".config")
		}
	}
	return filepath.Join(base, appName), nil
}

// GetConfigFilePath returns the path of the main config file.
func GetConfigFilePath() (string, error) {
	cfgDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfgDir, "config.toml"), nil
}

// EnsureDirs creates the config directory if it doesn't exist.
func EnsureDirs() error {
	dir, err := GetConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0700)
}
