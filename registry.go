package palette

import (
	"sort"

	"github.com/rs/zerolog"
)

// StorageKey is the fixed key the active theme name is persisted under.
const StorageKey = "Palette.currentTheme"

// Store is durable key-value storage for the active theme selection.
// A read failure or absent key is treated as "no saved theme", never as an
// error. Writes are best-effort: the registry logs a failed write and moves
// on.
type Store interface {
	// Get returns the value stored under key, or "" when absent.
	Get(key string) (string, error)
	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
}

// Options configure registry construction.
type Options struct {
	// DefaultTheme is the name activated when no persisted selection
	// matches, and the target of ResetToDefault. Empty means no default.
	DefaultTheme string

	// Store persists the selection across restarts. Nil disables
	// persistence.
	Store Store

	// Logger receives registry diagnostics. The zero value is silent.
	Logger zerolog.Logger
}

// Registry owns a loaded theme set and the active selection. Construction
// is atomic: a registry either exists with a valid, non-empty theme set and
// a resolved active theme, or Open fails and there is no registry.
//
// The active theme is the only mutable state and SetActive its only
// mutator; the registry performs no internal locking and assumes
// single-owner access.
type Registry struct {
	themes      []Theme
	active      Theme
	defaultName string
	store       Store
	logger      zerolog.Logger
	subs        map[string]func(Theme)
}

// Open loads the named themes document through src and constructs a
// registry. The initial active theme is resolved in precedence order:
// the persisted selection if it names a loaded theme, then
// opts.DefaultTheme if it names one, then the first theme in document
// order. Open never writes to the store.
func Open(resource string, src Source, opts Options) (*Registry, error) {
	themes, err := LoadThemes(resource, src)
	if err != nil {
		return nil, err
	}
	if len(themes) == 0 {
		return nil, ErrNoThemes
	}
	return newRegistry(themes, opts)
}

// OpenOrNil is Open, but failures are logged and swallowed: the caller
// receives nil instead of an error.
func OpenOrNil(resource string, src Source, opts Options) *Registry {
	r, err := Open(resource, src, opts)
	if err != nil {
		opts.Logger.Warn().Err(err).Str("resource", resource).Msg("theme load failed")
		return nil
	}
	return r
}

// OpenWithFallback is OpenOrNil, but when loading fails it returns a
// registry seeded with the built-in fallback theme instead of nil, so
// callers always receive a usable registry. This is the only path that
// bypasses document loading.
func OpenWithFallback(resource string, src Source, opts Options) *Registry {
	if r := OpenOrNil(resource, src, opts); r != nil {
		return r
	}
	opts.Logger.Info().Str("resource", resource).Msg("using built-in fallback theme")
	r, err := newRegistry([]Theme{FallbackTheme()}, opts)
	if err != nil {
		// Unreachable: the fallback theme always passes validation.
		panic(err)
	}
	return r
}

func newRegistry(themes []Theme, opts Options) (*Registry, error) {
	for _, t := range themes {
		if err := t.validateStructure(); err != nil {
			return nil, err
		}
	}
	if len(themes) == 0 {
		return nil, ErrNoThemes
	}

	r := &Registry{
		themes:      themes,
		defaultName: opts.DefaultTheme,
		store:       opts.Store,
		logger:      opts.Logger,
		subs:        make(map[string]func(Theme)),
	}
	r.active = r.resolveInitial()
	return r, nil
}

// resolveInitial picks the starting active theme: persisted name, then
// configured default, then first in document order.
func (r *Registry) resolveInitial() Theme {
	if r.store != nil {
		saved, err := r.store.Get(StorageKey)
		if err != nil {
			r.logger.Debug().Err(err).Msg("could not read saved theme, ignoring")
		} else if saved != "" {
			if t, ok := r.lookup(saved); ok {
				return t
			}
			r.logger.Debug().Str("theme", saved).Msg("saved theme not in loaded set, ignoring")
		}
	}
	if t, ok := r.lookup(r.defaultName); ok {
		return t
	}
	return r.themes[0]
}

// lookup scans document order and returns the first theme with the given
// name. Duplicate names are allowed; first match wins.
func (r *Registry) lookup(name string) (Theme, bool) {
	if name == "" {
		return Theme{}, false
	}
	for _, t := range r.themes {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// Active returns the currently active theme, detached from the
// registry's own state.
func (r *Registry) Active() Theme {
	return r.active.clone()
}

// Themes returns the loaded theme set in document order. The returned
// themes carry their own color maps; mutating them cannot reach the
// registry's state.
func (r *Registry) Themes() []Theme {
	out := make([]Theme, len(r.themes))
	for i, t := range r.themes {
		out[i] = t.clone()
	}
	return out
}

// AvailableNames returns the loaded theme names sorted lexicographically.
func (r *Registry) AvailableNames() []string {
	names := make([]string, 0, len(r.themes))
	for _, t := range r.themes {
		names = append(names, t.Name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a theme with the given name is loaded.
func (r *Registry) Has(name string) bool {
	_, ok := r.lookup(name)
	return ok
}

// SetActive switches to the given theme. The theme must be a member of the
// loaded set (structural equality); otherwise *ThemeNotFoundError is
// returned and the active theme is unchanged. On success the theme name is
// persisted under StorageKey and observers are notified. A failed
// persistence write is logged, not propagated: the switch still succeeds.
func (r *Registry) SetActive(theme Theme) error {
	member := false
	for _, t := range r.themes {
		if t.Equal(theme) {
			member = true
			break
		}
	}
	if !member {
		return &ThemeNotFoundError{Name: theme.Name}
	}

	// Detach from the caller's map so later mutation of it cannot reach
	// into the active theme.
	r.active = theme.clone()
	if r.store != nil {
		if err := r.store.Set(StorageKey, theme.Name); err != nil {
			r.logger.Warn().Err(err).Str("theme", theme.Name).Msg("could not persist theme selection")
		}
	}
	r.logger.Debug().Str("theme", theme.Name).Msg("theme activated")
	r.notify(theme)
	return nil
}

// SetActiveName switches to the first loaded theme with the given name.
func (r *Registry) SetActiveName(name string) error {
	t, ok := r.lookup(name)
	if !ok {
		return &ThemeNotFoundError{Name: name}
	}
	return r.SetActive(t)
}

// ResetToDefault switches back to the default theme recorded at
// construction. Fails when no default was configured.
func (r *Registry) ResetToDefault() error {
	if r.defaultName == "" {
		return &ThemeNotFoundError{Name: "No default theme specified"}
	}
	return r.SetActiveName(r.defaultName)
}

// Color returns the named color from the active theme.
func (r *Registry) Color(name string) (Color, bool) {
	return r.active.Color(name)
}

// ColorOr returns the named color from the active theme, or fallback when
// absent.
func (r *Registry) ColorOr(name string, fallback Color) Color {
	return r.active.ColorOr(name, fallback)
}

// Default returns the configured default theme name, or "" when none.
func (r *Registry) Default() string {
	return r.defaultName
}

// ValidateDocument runs the full load-and-validate pipeline on the named
// document without constructing a registry. Useful for pre-flight checks
// independent of any active selection.
func ValidateDocument(resource string, src Source) ([]Theme, error) {
	themes, err := LoadThemes(resource, src)
	if err != nil {
		return nil, err
	}
	if len(themes) == 0 {
		return nil, ErrNoThemes
	}
	for _, t := range themes {
		if err := t.validateStructure(); err != nil {
			return nil, err
		}
	}
	return themes, nil
}
