package components

import "strings"

// Gauge renders a percent bar of the given width using full and light-shade
// blocks. Values are clamped to [0,100].
func Gauge(percent float64, width int) string {
	if width < 1 {
		width = 1
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := int(percent/100*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// MeterRune returns a single block rune for an absolute 0-100 value, for
// one-character-per-core meters.
func MeterRune(percent float64) rune {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	idx := int(percent/100*float64(len(blocks)-1) + 0.5)
	if idx >= len(blocks) {
		idx = len(blocks) - 1
	}
	return blocks[idx]
}
