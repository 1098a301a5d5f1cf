package config

// Config represents the template-sync.yaml configuration file.
type Config struct {
	Version int `yaml:"version"`

	// DownloadURL is the base URL templates are fetched from; each
	// template lives at {download_url}/{name}.
	DownloadURL string `yaml:"download_url"`

	// Folder is appended to the resolved application template
	// directory to form the target directory.
	Folder string `yaml:"folder"`

	// Strategy selects the staleness signal: "hash" or "timestamp".
	// Defaults to "hash" when empty.
	Strategy string `yaml:"strategy,omitempty"`

	// Templates lists the template names to sync, extension included.
	Templates []string `yaml:"templates"`

	// Directories overrides the resolved base directory per application
	// kind ("word", "spreadsheet", "presentation").
	Directories map[string]string `yaml:"directories,omitempty"`

	// MaxFileSize caps the remote payload size in bytes (0 = no limit).
	MaxFileSize int64 `yaml:"max_file_size,omitempty"`

	// Timeout bounds each fetch, as a Go duration string (e.g. "30s").
	Timeout string `yaml:"timeout,omitempty"`
}

// DefaultStrategy is used when the config does not name one.
const DefaultStrategy = "hash"

// StrategyKind returns the configured strategy, defaulted.
func (c *Config) StrategyKind() string {
	if c.Strategy == "" {
		return DefaultStrategy
	}
	return c.Strategy
}
