// Package manifest records the outcome of the last sync run so that
// later invocations can report the state of managed templates.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Manifest represents the template-sync manifest file.
type Manifest struct {
	Version   int       `yaml:"version"`
	SyncedAt  time.Time `yaml:"synced_at"`
	Templates []Entry   `yaml:"templates"`
}

// Entry records the synced state of a single template.
type Entry struct {
	Name   string `yaml:"name"`
	Path   string `yaml:"path"`
	SHA256 string `yaml:"sha256,omitempty"`
	Size   int64  `yaml:"size,omitempty"`
}

// DefaultPath returns the default manifest location.
// Uses XDG_STATE_HOME if set, otherwise ~/.local/state/template-sync.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "template-sync", "manifest.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		if runtime.GOOS == "windows" {
			return filepath.Join(os.TempDir(), "template-sync", "manifest.yaml")
		}
		return filepath.Join("/tmp", "template-sync", "manifest.yaml")
	}
	return filepath.Join(home, ".local", "state", "template-sync", "manifest.yaml")
}

// Load reads and validates a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	if errs := Validate(&m); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	return &m, nil
}

// Save writes a manifest atomically using a temp file and rename.
// Parent directories are created as needed.
func Save(path string, m *Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating manifest directory: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing temp manifest %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("renaming temp manifest to %s: %w", path, err)
	}

	return nil
}

// ValidationError holds multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("manifest validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// Validate checks a Manifest for semantic correctness.
// Returns a list of validation error messages (empty if valid).
func Validate(m *Manifest) []string {
	var errs []string

	if m.Version != 1 {
		errs = append(errs, fmt.Sprintf("unsupported version %d — only version 1 is supported", m.Version))
	}

	names := make(map[string]bool)
	for i, e := range m.Templates {
		prefix := fmt.Sprintf("template[%d]", i)
		if e.Name != "" {
			prefix = fmt.Sprintf("template '%s'", e.Name)
		}

		if e.Name == "" {
			errs = append(errs, fmt.Sprintf("%s: 'name' is required", prefix))
		} else if names[e.Name] {
			errs = append(errs, fmt.Sprintf("%s: duplicate template name '%s'", prefix, e.Name))
		} else {
			names[e.Name] = true
		}

		if e.Path == "" {
			errs = append(errs, fmt.Sprintf("%s: 'path' is required", prefix))
		}
	}

	return errs
}
