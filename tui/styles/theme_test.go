package styles

import (
	"testing"
)

func TestGetThemeByName(t *testing.T) {
	theme := GetThemeByName("solarized-dark")
	if theme == nil {
		t.Fatal("GetThemeByName('solarized-dark') returned nil")
	}
	if theme.Name != "Solarized Dark" {
		t.Errorf("expected name 'Solarized Dark', got %q", theme.Name)
	}
}

func TestGetThemeByNameMissing(t *testing.T) {
	theme := GetThemeByName("nonexistent")
	if theme != nil {
		t.Error("expected nil for nonexistent theme")
	}
}

func TestListThemes(t *testing.T) {
	themes := ListThemes()
	if len(themes) < 20 {
		t.Errorf("expected at least 20 themes, got %d", len(themes))
	}
}

func TestThemeCount(t *testing.T) {
	count := GetThemeCount()
	if count < 20 {
		t.Errorf("expected at least 20 themes, got %d", count)
	}
}

func TestGetThemeByIndex(t *testing.T) {
	theme := GetThemeByIndex(0)
	if theme == nil {
		t.Fatal("GetThemeByIndex(0) returned nil")
	}
	if GetThemeByIndex(-1) != nil || GetThemeByIndex(GetThemeCount()) != nil {
		t.Error("out-of-range index should return nil")
	}
}

func TestGetThemeIndexRoundTrip(t *testing.T) {
	idx := GetThemeIndex("solarized-dark")
	if idx < 0 {
		t.Fatal("solarized-dark should have an index")
	}
	theme := GetThemeByIndex(idx)
	if theme == nil || theme.Name != "Solarized Dark" {
		t.Errorf("index %d should round-trip to Solarized Dark, got %v", idx, theme)
	}
}

func TestNextTheme(t *testing.T) {
	slugs := ListThemes()

	// Stepping from the first theme yields the second.
	slug, theme := NextTheme(slugs[0])
	if slug != slugs[1] {
		t.Errorf("expected %q after %q, got %q", slugs[1], slugs[0], slug)
	}
	if theme.Name != Themes[slugs[1]].Name {
		t.Errorf("expected theme %q, got %q", Themes[slugs[1]].Name, theme.Name)
	}

	// The last theme wraps to the first.
	slug, _ = NextTheme(slugs[len(slugs)-1])
	if slug != slugs[0] {
		t.Errorf("expected wrap to %q, got %q", slugs[0], slug)
	}

	// An unknown slug restarts the cycle.
	slug, _ = NextTheme("nonexistent")
	if slug != slugs[0] {
		t.Errorf("expected %q for unknown slug, got %q", slugs[0], slug)
	}
}

func TestThemesComplete(t *testing.T) {
	for slug, theme := range Themes {
		if theme.Name == "" {
			t.Errorf("theme %q has no display name", slug)
		}
		colors := []struct {
			field string
			value string
		}{
			{"Base00", string(theme.Base00)}, {"Base01", string(theme.Base01)},
			{"Base02", string(theme.Base02)}, {"Base03", string(theme.Base03)},
			{"Base04", string(theme.Base04)}, {"Base05", string(theme.Base05)},
			{"Base06", string(theme.Base06)}, {"Base07", string(theme.Base07)},
			{"Base08", string(theme.Base08)}, {"Base09", string(theme.Base09)},
			{"Base0A", string(theme.Base0A)}, {"Base0B", string(theme.Base0B)},
			{"Base0C", string(theme.Base0C)}, {"Base0D", string(theme.Base0D)},
			{"Base0E", string(theme.Base0E)}, {"Base0F", string(theme.Base0F)},
		}
		for _, c := range colors {
			if len(c.value) != 7 || c.value[0] != '#' {
				t.Errorf("theme %q %s: expected #rrggbb, got %q", slug, c.field, c.value)
			}
		}
	}
}
