package palette

import (
	"encoding/json"
	"errors"
	"fmt"
)

// themeDocument is the wire shape of one theme in the JSON document.
type themeDocument struct {
	Name   string            `json:"name"`
	Colors map[string]string `json:"colors"`
}

// LoadThemes reads and validates the named themes document through src.
//
// The document must be a JSON array of {"name": ..., "colors": {...}}
// objects. Loading is all-or-nothing: a single invalid theme fails the
// whole load and no partial set is returned. Document order is preserved.
//
// Failures map onto the error taxonomy: absent/unreadable resource →
// *FileNotFoundError, invalid JSON syntax → *MalformedJSONError, wrong
// JSON shape → *DecodingError, bad theme content → *InvalidThemeError.
func LoadThemes(resource string, src Source) ([]Theme, error) {
	data, err := src.ReadResource(resource)
	if err != nil {
		return nil, &FileNotFoundError{Name: resource, Err: err}
	}

	var docs []themeDocument
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, classifyDecodeError(err)
	}

	themes := make([]Theme, 0, len(docs))
	for i, doc := range docs {
		if doc.Colors == nil {
			return nil, &DecodingError{
				Detail: fmt.Sprintf("[%d].colors: expected an object of hex color strings", i),
			}
		}
		colors, err := ValidateColors(doc.Colors)
		if err != nil {
			return nil, err
		}
		theme, err := NewTheme(doc.Name, colors)
		if err != nil {
			return nil, err
		}
		themes = append(themes, theme)
	}

	return themes, nil
}

// classifyDecodeError sorts encoding/json failures into the taxonomy:
// shape mismatches become DecodingError with the field path and expected
// type, everything else is MalformedJSON.
func classifyDecodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "(document root)"
		}
		return &DecodingError{
			Detail: fmt.Sprintf("%s: cannot decode %s into %s", field, typeErr.Value, typeErr.Type),
		}
	}
	return &MalformedJSONError{Detail: err.Error()}
}
