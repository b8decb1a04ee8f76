// Package palette loads, validates, and manages named color themes.
//
// Themes are flat name→color mappings read from a JSON document. A Registry
// owns the loaded theme set and the active selection, persisting the
// selection across restarts through an injected key-value store.
package palette

import "sort"

// Theme is a named, immutable mapping from color name to Color. Lookups are
// case-sensitive exact matches. Construct themes with NewTheme, or directly
// when the caller guarantees the invariants (non-empty name, at least one
// color).
type Theme struct {
	Name   string
	Colors map[string]Color
}

// NewTheme builds a theme from already-parsed colors, enforcing the
// structural invariants. The colors map is copied.
func NewTheme(name string, colors map[string]Color) (Theme, error) {
	t := Theme{Name: name, Colors: colors}.clone()
	if err := t.validateStructure(); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// clone returns a theme with its own copy of the colors map, detaching it
// from whatever map the caller holds.
func (t Theme) clone() Theme {
	colors := make(map[string]Color, len(t.Colors))
	for k, v := range t.Colors {
		colors[k] = v
	}
	return Theme{Name: t.Name, Colors: colors}
}

// Color returns the named color. The second result is false when the theme
// has no color under that exact name.
func (t Theme) Color(name string) (Color, bool) {
	c, ok := t.Colors[name]
	return c, ok
}

// ColorOr returns the named color, or fallback when absent.
func (t Theme) ColorOr(name string, fallback Color) Color {
	if c, ok := t.Colors[name]; ok {
		return c
	}
	return fallback
}

// ColorNames returns the theme's color names sorted lexicographically.
func (t Theme) ColorNames() []string {
	names := make([]string, 0, len(t.Colors))
	for name := range t.Colors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Equal reports structural equality: same name and the exact same color
// mapping.
func (t Theme) Equal(other Theme) bool {
	if t.Name != other.Name || len(t.Colors) != len(other.Colors) {
		return false
	}
	for name, c := range t.Colors {
		oc, ok := other.Colors[name]
		if !ok || oc != c {
			return false
		}
	}
	return true
}
