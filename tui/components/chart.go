package components

import (
	"fmt"
	"math"
	"strings"
)

// chartBlocks are block characters from empty to full, used for rendering
// the chart area. Index 0 is empty (space), index 8 is full block.
var chartBlocks = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// RenderChart renders an ASCII history chart using block characters.
// data: values to plot (oldest to newest, left to right)
// width: total width in characters (including Y-axis labels)
// height: total height in characters (including title row)
// title: chart title displayed at the top
// label: formats a Y-axis value, e.g. FormatRate or a degree formatter
func RenderChart(data []float64, width, height int, title string, label func(float64) string) string {
	if width < 10 {
		width = 10
	}
	if height < 4 {
		height = 4
	}
	if label == nil {
		label = FormatRate
	}

	// Reserve space: Y-axis label width and title row
	labelWidth := 8 // e.g. "  1.2G "
	chartWidth := width - labelWidth
	if chartWidth < 2 {
		chartWidth = 2
	}
	chartHeight := height - 1 // subtract title row
	if chartHeight < 2 {
		chartHeight = 2
	}

	var lines []string
	lines = append(lines, centerText(title, width))

	if len(data) == 0 {
		for i := 0; i < chartHeight; i++ {
			lines = append(lines, strings.Repeat(" ", labelWidth+chartWidth))
		}
		return strings.Join(lines, "\n")
	}

	if len(data) > chartWidth {
		data = data[len(data)-chartWidth:]
	}

	minVal, maxVal := data[0], data[0]
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}
	// Anchor the Y-axis at 0 when everything is positive
	if minVal > 0 {
		minVal = 0
	}
	spread := maxVal - minVal

	// Each row covers one slice of the value range; block characters show
	// how far the value reaches into the row's slice.
	for row := chartHeight - 1; row >= 0; row-- {
		rowTopVal := minVal + spread*float64(row+1)/float64(chartHeight)
		axisLabel := fmt.Sprintf("%7s ", label(rowTopVal))
		if len(axisLabel) > labelWidth {
			axisLabel = axisLabel[len(axisLabel)-labelWidth:]
		}

		var rowChars []rune
		padding := chartWidth - len(data)
		for p := 0; p < padding; p++ {
			rowChars = append(rowChars, ' ')
		}

		cellBottom := minVal + spread*float64(row)/float64(chartHeight)
		cellTop := rowTopVal
		cellRange := cellTop - cellBottom
		for _, v := range data {
			switch {
			case v <= cellBottom:
				rowChars = append(rowChars, ' ')
			case v >= cellTop:
				rowChars = append(rowChars, chartBlocks[8])
			default:
				fraction := (v - cellBottom) / cellRange
				idx := int(math.Round(fraction * 8))
				if idx < 0 {
					idx = 0
				}
				if idx > 8 {
					idx = 8
				}
				rowChars = append(rowChars, chartBlocks[idx])
			}
		}

		lines = append(lines, axisLabel+string(rowChars))
	}

	return strings.Join(lines, "\n")
}

// centerText centers s within the given width, padding with spaces.
func centerText(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	pad := (width - len(s)) / 2
	return strings.Repeat(" ", pad) + s + strings.Repeat(" ", width-len(s)-pad)
}
