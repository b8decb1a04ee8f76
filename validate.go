package palette

import (
	"fmt"
	"sort"
)

// ValidateColors parses a raw name→hex mapping into a name→Color mapping.
// Every entry is attempted before failing, so the returned
// *InvalidThemeError lists all invalid entries, each as "name: hex".
// An empty input, or an input whose entries are all invalid, fails with
// "must contain at least one color".
func ValidateColors(raw map[string]string) (map[string]Color, error) {
	colors := make(map[string]Color, len(raw))
	var bad []string

	for name, hex := range raw {
		c, ok := ParseHex(hex)
		if !ok {
			bad = append(bad, fmt.Sprintf("%s: %s", name, hex))
			continue
		}
		colors[name] = c
	}

	if len(bad) > 0 {
		sort.Strings(bad)
		return nil, &InvalidThemeError{Problems: bad}
	}
	if len(colors) == 0 {
		return nil, invalidTheme("must contain at least one color")
	}
	return colors, nil
}

// validateStructure enforces the theme invariants. It runs at construction
// and again when a registry opens, and must behave identically both times.
func (t Theme) validateStructure() error {
	if t.Name == "" {
		return invalidTheme("name cannot be empty")
	}
	if len(t.Colors) == 0 {
		return invalidTheme("must contain at least one color")
	}
	return nil
}
