package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/palettekit/palette"
)

func writeDoc(t *testing.T, name, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write document: %v", err)
	}
	return path
}

func runValidate(path string) (string, error) {
	var out bytes.Buffer
	validateCmd.SetOut(&out)
	defer validateCmd.SetOut(nil)
	err := validateCmd.RunE(validateCmd, []string{path})
	return out.String(), err
}

func TestValidateCommandGoodDocument(t *testing.T) {
	path := writeDoc(t, "themes.json", `[
		{"name": "Light", "colors": {"primary": "#FFFFFF"}},
		{"name": "Dark",  "colors": {"primary": "#000000"}}
	]`)

	out, err := runValidate(path)
	if err != nil {
		t.Fatalf("expected a valid document to pass, got %v", err)
	}
	if !strings.Contains(out, "2 theme(s) OK") {
		t.Fatalf("unexpected output: %q", out)
	}
	if !strings.Contains(out, "Light") || !strings.Contains(out, "Dark") {
		t.Fatalf("output should list each theme: %q", out)
	}
}

func TestValidateCommandBadDocument(t *testing.T) {
	path := writeDoc(t, "themes.json", `[{"name": "Broken", "colors": {"primary": "nope"}}]`)

	_, err := runValidate(path)
	var themeErr *palette.InvalidThemeError
	if !errors.As(err, &themeErr) {
		t.Fatalf("expected InvalidThemeError to propagate, got %v", err)
	}
	if !strings.Contains(err.Error(), "primary: nope") {
		t.Fatalf("error should name the bad entry: %v", err)
	}
}

func TestValidateCommandMissingDocument(t *testing.T) {
	_, err := runValidate(filepath.Join(t.TempDir(), "absent.json"))
	var notFound *palette.FileNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected FileNotFoundError to propagate, got %v", err)
	}
}
