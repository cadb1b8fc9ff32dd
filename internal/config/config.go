package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Threshold is a warning/critical pair for one metric. Values at or above
// critical classify as critical, at or above warning as warning.
type Threshold struct {
	Warning  float64 `toml:"warning"`
	Critical float64 `toml:"critical"`
}

// SensorPaths points the collector at this machine's sensor sources. The
// defaults match the original target hardware; other boxes override them in
// the config file.
type SensorPaths struct {
	PMTPath      string `toml:"pmt_path"`
	DRMCard      string `toml:"drm_card"`
	CPUTempChip  string `toml:"cpu_temp_chip"`
	NVMeTempChip string `toml:"nvme_temp_chip"`
	FanChip      string `toml:"fan_chip"`
	DiskPrefix   string `toml:"disk_prefix"`
}

type Config struct {
	Theme          string               `toml:"theme"`
	PollIntervalMs int                  `toml:"poll_interval_ms"`
	MaxHistory     int                  `toml:"max_history"`
	Thresholds     map[string]Threshold `toml:"thresholds"`
	Sensors        SensorPaths          `toml:"sensors"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme:          "solarized-dark",
		PollIntervalMs: 1000,
		MaxHistory:     60,
		Thresholds: map[string]Threshold{
			"cpu_temp":    {Warning: 55, Critical: 75},
			"gpu_temp":    {Warning: 55, Critical: 80},
			"gpu_hotspot": {Warning: 60, Critical: 85},
			"nvme_temp":   {Warning: 50, Critical: 70},
			"cpu_usage":   {Warning: 50, Critical: 80},
			"mem_usage":   {Warning: 50, Critical: 80},
			"storage":     {Warning: 70, Critical: 90},
		},
		Sensors: SensorPaths{
			PMTPath:      "/sys/class/intel_pmt/telem2/telem",
			DRMCard:      "/sys/class/drm/card1/device",
			CPUTempChip:  "k10temp",
			NVMeTempChip: "nvme",
			FanChip:      "xe",
			DiskPrefix:   "nvme",
		},
	}
}

// LoadConfig reads the TOML config at path over the defaults. A missing file
// is not an error; every field keeps its default unless the file sets it.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.PollIntervalMs <= 0 {
		cfg.PollIntervalMs = 1000
	}
	if cfg.MaxHistory <= 0 {
		cfg.MaxHistory = 60
	}
	return cfg, nil
}

func SaveConfig(cfg *Config, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

// Interval returns the poll interval as a duration.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.PollIntervalMs) * time.Millisecond
}
