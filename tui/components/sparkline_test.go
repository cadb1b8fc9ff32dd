package components

import "testing"

func TestSparkline(t *testing.T) {
	data := []float64{0, 25, 50, 75, 100, 50, 25, 0}
	result := Sparkline(data, 8)
	if len([]rune(result)) != 8 {
		t.Errorf("expected 8 chars, got %d", len([]rune(result)))
	}
}

func TestSparklineEmpty(t *testing.T) {
	result := Sparkline(nil, 8)
	if result != "        " {
		t.Errorf("expected 8 spaces for empty data, got %q", result)
	}
}

func TestSparklineSingleValue(t *testing.T) {
	result := Sparkline([]float64{50}, 4)
	if len([]rune(result)) != 4 {
		t.Errorf("expected 4 chars, got %d", len([]rune(result)))
	}
}

func TestSparklineTrimsToWidth(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	result := Sparkline(data, 4)
	if len([]rune(result)) != 4 {
		t.Errorf("expected 4 chars, got %d", len([]rune(result)))
	}
}
