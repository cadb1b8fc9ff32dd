package sensors

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Chip is one hwmon device, located by the name its driver registers
// (k10temp, nvme, xe, ...). Hwmon index numbers shuffle across boots and
// kernels, so chips are always found by name, never by index.
type Chip struct {
	Name string
	Path string
}

// Chips enumerates every hwmon device under the sys root.
func (r *Reader) Chips() ([]Chip, error) {
	root := filepath.Join(r.Sys, "class", "hwmon")
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", root, classify(err))
	}

	var chips []Chip
	for _, e := range entries {
		dir := filepath.Join(root, e.Name())
		data, err := os.ReadFile(filepath.Join(dir, "name"))
		if err != nil {
			continue
		}
		chips = append(chips, Chip{
			Name: strings.TrimSpace(string(data)),
			Path: dir,
		})
	}
	return chips, nil
}

// FindChip locates a hwmon chip by driver name.
func (r *Reader) FindChip(name string) (Chip, error) {
	chips, err := r.Chips()
	if err != nil {
		return Chip{}, err
	}
	for _, c := range chips {
		if c.Name == name {
			return c, nil
		}
	}
	return Chip{}, fmt.Errorf("hwmon chip %q: %w", name, ErrNotPresent)
}

// Temp reads the chip's primary temperature in degrees Celsius.
// hwmon temp inputs are millidegrees.
func (c Chip) Temp() (float64, error) {
	milli, err := readInt(filepath.Join(c.Path, "temp1_input"))
	if err != nil {
		return 0, err
	}
	return float64(milli) / 1000, nil
}

// FanRPMs reads every fan*_input the chip exposes, in tachometer order.
func (c Chip) FanRPMs() ([]int64, error) {
	paths, err := filepath.Glob(filepath.Join(c.Path, "fan*_input"))
	if err != nil {
		return nil, err
	}
	var rpms []int64
	for _, p := range paths {
		rpm, err := readInt(p)
		if err != nil {
			continue
		}
		rpms = append(rpms, rpm)
	}
	if len(rpms) == 0 {
		return nil, fmt.Errorf("chip %s fans: %w", c.Name, ErrNotPresent)
	}
	return rpms, nil
}

// MaxFanRPM returns the fastest fan on the chip. Multi-fan coolers report
// one tach per fan; the highest spinner is the one worth watching.
func (c Chip) MaxFanRPM() (int64, error) {
	rpms, err := c.FanRPMs()
	if err != nil {
		return 0, err
	}
	max := rpms[0]
	for _, rpm := range rpms[1:] {
		if rpm > max {
			max = rpm
		}
	}
	return max, nil
}

// ChipTemp finds a chip by name and reads its primary temperature in one
// step. This is the k10temp-style readout path: a plain-text scaled integer.
func (r *Reader) ChipTemp(name string) (float64, error) {
	chip, err := r.FindChip(name)
	if err != nil {
		return 0, err
	}
	return chip.Temp()
}
