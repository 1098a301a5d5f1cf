package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bianoble/template-sync/internal/config"
	"github.com/bianoble/template-sync/internal/fetch"
	"github.com/bianoble/template-sync/internal/manifest"
	"github.com/bianoble/template-sync/internal/office"
)

// loadConfig reads and validates the config file.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", configPath, err)
	}
	return cfg, nil
}

// resolvedManifestPath returns the manifest location, defaulted.
func resolvedManifestPath() string {
	if manifestPath != "" {
		return manifestPath
	}
	return manifest.DefaultPath()
}

// newResolver builds the directory resolver with config overrides applied.
func newResolver(cfg *config.Config) office.PathResolver {
	return office.NewUserDirResolver(cfg.DirectoryOverrides())
}

// newFetcher builds the HTTPS fetcher from config limits.
func newFetcher(cfg *config.Config) fetch.Fetcher {
	return &fetch.HTTPFetcher{
		MaxSize: cfg.MaxFileSize,
		Timeout: cfg.FetchTimeout(),
	}
}

// newLogger returns a structured logger honoring the verbosity flags.
func newLogger() *slog.Logger {
	var out io.Writer = os.Stderr
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	if quiet {
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
}

// info prints a line unless quiet mode is active.
func info(format string, args ...any) {
	if !quiet {
		fmt.Printf(format+"\n", args...)
	}
}

// detail prints a line only in verbose mode.
func detail(format string, args ...any) {
	if verbose {
		fmt.Printf("  "+format+"\n", args...)
	}
}

// errorf prints an error message to stderr.
func errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
