package palette

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateColorsEmpty(t *testing.T) {
	_, err := ValidateColors(map[string]string{})
	var themeErr *InvalidThemeError
	if !errors.As(err, &themeErr) {
		t.Fatalf("expected InvalidThemeError, got %v", err)
	}
	if !strings.Contains(err.Error(), "must contain at least one color") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestValidateColorsAggregatesAllFailures(t *testing.T) {
	_, err := ValidateColors(map[string]string{
		"a":    "badhex",
		"good": "FF0000",
		"c":    "xyz",
	})
	var themeErr *InvalidThemeError
	if !errors.As(err, &themeErr) {
		t.Fatalf("expected InvalidThemeError, got %v", err)
	}
	if len(themeErr.Problems) != 2 {
		t.Fatalf("expected both bad entries reported, got %v", themeErr.Problems)
	}
	if !strings.Contains(err.Error(), "a: badhex") {
		t.Fatalf("message should contain first failure: %v", err)
	}
	if !strings.Contains(err.Error(), "c: xyz") {
		t.Fatalf("message should contain second failure: %v", err)
	}
}

func TestValidateColorsSuccess(t *testing.T) {
	colors, err := ValidateColors(map[string]string{
		"primary": "#FF0000",
		"accent":  "00FF0080",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(colors) != 2 {
		t.Fatalf("unexpected color count: %d", len(colors))
	}
	if colors["primary"] != (Color{R: 0xFF, A: 0xFF}) {
		t.Fatalf("unexpected primary: %+v", colors["primary"])
	}
	if colors["accent"].A != 0x80 {
		t.Fatalf("unexpected accent alpha: %d", colors["accent"].A)
	}
}

func TestNewThemeStructure(t *testing.T) {
	one := map[string]Color{"primary": {A: 0xFF}}

	if _, err := NewTheme("", one); err == nil || !strings.Contains(err.Error(), "name cannot be empty") {
		t.Fatalf("expected empty-name failure, got %v", err)
	}
	if _, err := NewTheme("Bare", nil); err == nil || !strings.Contains(err.Error(), "must contain at least one color") {
		t.Fatalf("expected empty-colors failure, got %v", err)
	}

	theme, err := NewTheme("Ok", one)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if theme.Name != "Ok" || len(theme.Colors) != 1 {
		t.Fatalf("unexpected theme: %+v", theme)
	}

	// NewTheme copies the input map.
	one["extra"] = Color{}
	if len(theme.Colors) != 1 {
		t.Fatal("theme colors must be detached from the input map")
	}
}

func TestThemeLookup(t *testing.T) {
	theme := Theme{Name: "T", Colors: map[string]Color{"text": {R: 1, G: 2, B: 3, A: 255}}}

	if _, ok := theme.Color("Text"); ok {
		t.Fatal("lookup must be case-sensitive")
	}
	c, ok := theme.Color("text")
	if !ok || c.B != 3 {
		t.Fatalf("unexpected lookup result: %+v %v", c, ok)
	}

	fallback := Color{R: 9, A: 255}
	if got := theme.ColorOr("missing", fallback); got != fallback {
		t.Fatalf("expected fallback, got %+v", got)
	}
}

func TestThemeEqual(t *testing.T) {
	a := Theme{Name: "T", Colors: map[string]Color{"x": {R: 1, A: 255}}}
	b := Theme{Name: "T", Colors: map[string]Color{"x": {R: 1, A: 255}}}
	c := Theme{Name: "T", Colors: map[string]Color{"x": {R: 2, A: 255}}}

	if !a.Equal(b) {
		t.Fatal("structurally identical themes must be equal")
	}
	if a.Equal(c) {
		t.Fatal("themes with different colors must not be equal")
	}
	if a.Equal(Theme{Name: "U", Colors: a.Colors}) {
		t.Fatal("themes with different names must not be equal")
	}
}
