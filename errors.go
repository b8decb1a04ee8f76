package palette

import (
	"errors"
	"fmt"
	"strings"
)

// errTag prefixes every error message so palette failures can be filtered
// out of mixed logs.
const errTag = "palette: "

// ErrNoThemes is returned when a themes document decodes to zero themes.
var ErrNoThemes = errors.New(errTag + "no themes available")

// FileNotFoundError reports a themes resource that is absent or unreadable.
// The two cases are not distinguished; Err carries the underlying failure
// when there is one.
type FileNotFoundError struct {
	Name string
	Err  error
}

func (e *FileNotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%sthemes resource %q not found: %v", errTag, e.Name, e.Err)
	}
	return fmt.Sprintf("%sthemes resource %q not found", errTag, e.Name)
}

func (e *FileNotFoundError) Unwrap() error { return e.Err }

// InvalidHexColorError reports a single hex string rejected by the codec.
// Only ParseHexStrict returns it; the aggregate validator folds bad colors
// into an InvalidThemeError instead.
type InvalidHexColorError struct {
	Value string
}

func (e *InvalidHexColorError) Error() string {
	return fmt.Sprintf("%sinvalid hex color %q", errTag, e.Value)
}

// MalformedJSONError reports a document that is not valid JSON, or that
// fails in a way not attributable to a specific field.
type MalformedJSONError struct {
	Detail string
}

func (e *MalformedJSONError) Error() string {
	return fmt.Sprintf("%smalformed themes document: %s", errTag, e.Detail)
}

// DecodingError reports a structural JSON-shape mismatch, naming the
// offending field path and the expected type.
type DecodingError struct {
	Detail string
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("%scannot decode themes document: %s", errTag, e.Detail)
}

// ThemeNotFoundError reports a requested theme absent from the current set.
type ThemeNotFoundError struct {
	Name string
}

func (e *ThemeNotFoundError) Error() string {
	return fmt.Sprintf("%stheme not found: %s", errTag, e.Name)
}

// InvalidThemeError reports structural or color-content validation failure.
// Problems holds every individual failure, not just the first.
type InvalidThemeError struct {
	Problems []string
}

func (e *InvalidThemeError) Error() string {
	return fmt.Sprintf("%sinvalid theme: %s", errTag, strings.Join(e.Problems, ", "))
}

func invalidTheme(problems ...string) *InvalidThemeError {
	return &InvalidThemeError{Problems: problems}
}
