// Package tmplsync provides the public Go library API for template-sync.
//
// template-sync keeps a set of named office document templates in the
// user's per-application template directories up to date with a central
// HTTPS template repository. This package exposes constructors for
// embedding template-sync in other Go programs.
//
// # Basic Usage
//
//	client, err := tmplsync.New(tmplsync.Options{
//	    ConfigPath: "template-sync.yaml",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Sync templates
//	result, err := client.Sync(ctx, tmplsync.SyncOptions{})
//
//	// Report the state of previously synced templates
//	statuses, err := client.Status(ctx)
package tmplsync

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bianoble/template-sync/internal/config"
	"github.com/bianoble/template-sync/internal/engine"
	"github.com/bianoble/template-sync/internal/fetch"
	"github.com/bianoble/template-sync/internal/manifest"
	"github.com/bianoble/template-sync/internal/office"
	"github.com/bianoble/template-sync/internal/strategy"
)

// SyncOptions configures a sync operation.
type SyncOptions struct {
	// DryRun reports would-be actions without writing files.
	DryRun bool

	// Strategy overrides the configured strategy ("hash" or
	// "timestamp"). Empty uses the config value.
	Strategy string
}

// Options configures a template-sync client.
type Options struct {
	// ConfigPath is the path to the config file. Default: "template-sync.yaml".
	ConfigPath string

	// ManifestPath is the path to the sync manifest. If empty, uses the
	// default (~/.local/state/template-sync/manifest.yaml).
	ManifestPath string

	// Resolver overrides the default per-application directory
	// resolution. If nil, platform conventions (plus any config
	// overrides) are used.
	Resolver office.PathResolver

	// Fetcher overrides the default HTTPS fetcher.
	Fetcher fetch.Fetcher

	// Logger receives structured progress events. Nil disables logging.
	Logger *slog.Logger
}

// Client is the main entry point for the template-sync library.
type Client struct {
	configPath   string
	manifestPath string
	resolver     office.PathResolver
	fetcher      fetch.Fetcher
	logger       *slog.Logger
}

// New creates a new template-sync Client.
func New(opts Options) (*Client, error) {
	if opts.ConfigPath == "" {
		opts.ConfigPath = "template-sync.yaml"
	}
	if opts.ManifestPath == "" {
		opts.ManifestPath = manifest.DefaultPath()
	}

	return &Client{
		configPath:   opts.ConfigPath,
		manifestPath: opts.ManifestPath,
		resolver:     opts.Resolver,
		fetcher:      opts.Fetcher,
		logger:       opts.Logger,
	}, nil
}

func (c *Client) loadConfig() (*config.Config, error) {
	return config.Load(c.configPath)
}

func (c *Client) components(cfg *config.Config) (office.PathResolver, fetch.Fetcher) {
	resolver := c.resolver
	if resolver == nil {
		resolver = office.NewUserDirResolver(cfg.DirectoryOverrides())
	}
	fetcher := c.fetcher
	if fetcher == nil {
		fetcher = &fetch.HTTPFetcher{
			MaxSize: cfg.MaxFileSize,
			Timeout: cfg.FetchTimeout(),
		}
	}
	return resolver, fetcher
}

// Sync synchronizes the configured templates and, unless DryRun is set,
// records the outcome in the manifest.
func (c *Client) Sync(ctx context.Context, opts SyncOptions) (*SyncResult, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}

	kind := opts.Strategy
	if kind == "" {
		kind = cfg.StrategyKind()
	}

	resolver, fetcher := c.components(cfg)

	strat, err := strategy.New(kind, fetcher)
	if err != nil {
		return nil, err
	}

	orch := &engine.Orchestrator{
		Resolver: resolver,
		Fetcher:  fetcher,
		BaseURL:  cfg.DownloadURL,
		Folder:   cfg.Folder,
		Logger:   c.logger,
	}

	result, err := orch.Sync(ctx, cfg.Templates, strat, engine.SyncOptions{DryRun: opts.DryRun})
	if err != nil {
		return nil, err
	}

	if !opts.DryRun {
		if err := manifest.Save(c.manifestPath, engine.BuildManifest(result)); err != nil {
			return nil, fmt.Errorf("saving manifest: %w", err)
		}
	}

	return result, nil
}

// Status reports the on-disk state of the templates recorded by the
// last sync.
func (c *Client) Status(ctx context.Context) ([]TemplateStatus, error) {
	m, err := manifest.Load(c.manifestPath)
	if err != nil {
		return nil, err
	}
	return engine.Status(m), nil
}
