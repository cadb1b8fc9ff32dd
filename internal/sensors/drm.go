package sensors

import "path/filepath"

// GPUFreq holds the current and maximum graphics clock in MHz, read from the
// DRM card's first tile/gt frequency domain.
type GPUFreq struct {
	CurMHz int64
	MaxMHz int64
}

// GPUFrequency reads the actual and maximum GPU clock for a DRM card device
// directory (e.g. /sys/class/drm/card1/device).
func GPUFrequency(cardDir string) (GPUFreq, error) {
	freqDir := filepath.Join(cardDir, "tile0", "gt0", "freq0")
	cur, err := readInt(filepath.Join(freqDir, "act_freq"))
	if err != nil {
		return GPUFreq{}, err
	}
	max, err := readInt(filepath.Join(freqDir, "max_freq"))
	if err != nil {
		return GPUFreq{}, err
	}
	return GPUFreq{CurMHz: cur, MaxMHz: max}, nil
}

// VRAM holds used and total video memory in bytes.
type VRAM struct {
	Used  uint64
	Total uint64
}

// UsedPercent returns used VRAM as a percentage of total.
func (v VRAM) UsedPercent() float64 {
	if v.Total == 0 {
		return 0
	}
	return float64(v.Used) / float64(v.Total) * 100
}

// GPUVRAM reads video memory usage from a DRM card device directory.
func GPUVRAM(cardDir string) (VRAM, error) {
	used, err := readUint(filepath.Join(cardDir, "mem_info_vram_used"))
	if err != nil {
		return VRAM{}, err
	}
	total, err := readUint(filepath.Join(cardDir, "mem_info_vram_total"))
	if err != nil {
		return VRAM{}, err
	}
	return VRAM{Used: used, Total: total}, nil
}
