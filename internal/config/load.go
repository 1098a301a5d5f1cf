package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bianoble/template-sync/internal/office"
)

// Load reads and validates a template-sync.yaml configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	return &cfg, nil
}

// ValidationError holds multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// Validate checks a Config for semantic correctness.
// Returns a list of validation error messages (empty if valid).
func Validate(cfg *Config) []string {
	var errs []string

	if cfg.Version != 1 {
		errs = append(errs, fmt.Sprintf("unsupported version %d — only version 1 is supported", cfg.Version))
	}

	if cfg.DownloadURL == "" {
		errs = append(errs, "'download_url' is required")
	} else if err := validateURL(cfg.DownloadURL); err != nil {
		errs = append(errs, fmt.Sprintf("invalid download_url '%s': %s", cfg.DownloadURL, err))
	}

	if len(cfg.Templates) == 0 {
		errs = append(errs, "at least one template is required")
	}

	seen := make(map[string]bool)
	for i, name := range cfg.Templates {
		if name == "" {
			errs = append(errs, fmt.Sprintf("template[%d]: name is empty", i))
			continue
		}
		if seen[name] {
			errs = append(errs, fmt.Sprintf("duplicate template name '%s'", name))
		}
		seen[name] = true
	}

	switch cfg.Strategy {
	case "", "hash", "timestamp":
		// valid
	default:
		errs = append(errs, fmt.Sprintf("invalid strategy '%s' — must be one of: hash, timestamp", cfg.Strategy))
	}

	for key := range cfg.Directories {
		if _, err := office.ParseKind(key); err != nil {
			errs = append(errs, fmt.Sprintf("directories: %s", err))
		}
	}

	if cfg.Timeout != "" {
		if _, err := time.ParseDuration(cfg.Timeout); err != nil {
			errs = append(errs, fmt.Sprintf("invalid timeout '%s' — expected a Go duration like '30s'", cfg.Timeout))
		}
	}

	if cfg.MaxFileSize < 0 {
		errs = append(errs, fmt.Sprintf("invalid max_file_size %d — must be zero or positive", cfg.MaxFileSize))
	}

	return errs
}

// FetchTimeout returns the parsed timeout, or zero when unset.
// Validate must have accepted the config first.
func (c *Config) FetchTimeout() time.Duration {
	if c.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// DirectoryOverrides converts the configured directory overrides to
// their office kinds.
func (c *Config) DirectoryOverrides() map[office.Kind]string {
	overrides := make(map[office.Kind]string, len(c.Directories))
	for key, dir := range c.Directories {
		kind, err := office.ParseKind(key)
		if err != nil {
			continue // rejected by Validate
		}
		overrides[kind] = dir
	}
	return overrides
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https")
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}
