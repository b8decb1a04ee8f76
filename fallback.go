package palette

// FallbackTheme returns the hardcoded built-in theme used by
// OpenWithFallback when no document can be loaded. It is always valid.
func FallbackTheme() Theme {
	return Theme{
		Name: "Fallback",
		Colors: map[string]Color{
			"primary":    {R: 0x5B, G: 0x8D, B: 0xEF, A: 0xFF},
			"secondary":  {R: 0x8B, G: 0x9A, B: 0xAE, A: 0xFF},
			"background": {R: 0x0B, G: 0x0F, B: 0x14, A: 0xFF},
			"text":       {R: 0xE6, G: 0xED, B: 0xF3, A: 0xFF},
			"accent":     {R: 0x7A, G: 0xA2, B: 0xF7, A: 0xFF},
		},
	}
}
