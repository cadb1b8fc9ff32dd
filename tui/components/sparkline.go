package components

import (
	"strings"
)

var blocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders a min/max-normalized block-rune graph of data, right
// aligned within width.
func Sparkline(data []float64, width int) string {
	if len(data) == 0 {
		return strings.Repeat(" ", width)
	}
	if len(data) > width {
		data = data[len(data)-width:]
	}
	min, max := data[0], data[0]
	for _, v := range data {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	var sb strings.Builder
	padding := width - len(data)
	for i := 0; i < padding; i++ {
		sb.WriteRune(' ')
	}
	spread := max - min
	for _, v := range data {
		if spread == 0 {
			sb.WriteRune(blocks[3])
		} else {
			normalized := (v - min) / spread
			idx := int(normalized * float64(len(blocks)-1))
			if idx >= len(blocks) {
				idx = len(blocks) - 1
			}
			sb.WriteRune(blocks[idx])
		}
	}
	return sb.String()
}
