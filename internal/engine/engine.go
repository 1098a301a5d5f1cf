// Package engine drives the per-template sync loop: resolve the target
// directory, delegate the skip-or-download decision to a strategy, and
// write stale templates atomically.
package engine

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bianoble/template-sync/internal/fetch"
	"github.com/bianoble/template-sync/internal/manifest"
	"github.com/bianoble/template-sync/internal/office"
	"github.com/bianoble/template-sync/internal/sandbox"
	"github.com/bianoble/template-sync/internal/strategy"
)

// Orchestrator synchronizes templates from a remote base URL into the
// resolved per-application template directories.
type Orchestrator struct {
	Resolver office.PathResolver
	Fetcher  fetch.Fetcher

	// BaseURL is the remote repository root; each template is fetched
	// from {BaseURL}/{name}.
	BaseURL string

	// Folder is appended to the resolved base directory.
	Folder string

	Logger *slog.Logger
}

// SyncOptions configures a sync run.
type SyncOptions struct {
	DryRun bool
}

// Sync processes the requested template names sequentially. Every
// per-template error is recorded in that template's result and the run
// continues; only configuration problems detected before iteration
// fail the whole invocation.
func (o *Orchestrator) Sync(ctx context.Context, names []string, strat strategy.Strategy, opts SyncOptions) (*SyncResult, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("no templates requested")
	}
	if strat == nil {
		return nil, fmt.Errorf("no sync strategy provided")
	}
	if err := validateBaseURL(o.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid download URL '%s': %w", o.BaseURL, err)
	}

	log := o.logger()
	log.Info("starting sync", "templates", len(names), "strategy", strat.Name(), "dry_run", opts.DryRun)

	result := &SyncResult{}
	for _, name := range names {
		res := o.syncOne(ctx, name, strat, opts)
		switch res.Action {
		case ActionDownloaded, ActionSkipped:
			log.Info("template processed", "name", name, "action", res.Action, "path", res.Path)
		default:
			log.Warn("template not synced", "name", name, "action", res.Action, "error", res.Err)
		}
		result.Results = append(result.Results, res)
	}

	return result, nil
}

func (o *Orchestrator) syncOne(ctx context.Context, name string, strat strategy.Strategy, opts SyncOptions) TemplateResult {
	kind, err := office.KindForTemplate(name)
	if err != nil {
		return TemplateResult{Name: name, Action: ActionUnsupported, Err: err}
	}

	baseDir, err := o.Resolver.Resolve(kind)
	if err != nil {
		return failed(name, "resolve", err, "")
	}

	if !opts.DryRun {
		if err := sandbox.SafeMkdirAll(baseDir, o.Folder, 0755); err != nil {
			return failed(name, "mkdir", err, "")
		}
	}

	localPath := filepath.Join(baseDir, o.Folder, name)
	remoteURL := o.templateURL(name)

	eval, err := strat.Decide(ctx, localPath, remoteURL)
	if err != nil {
		return failed(name, decideOperation(err), err, "")
	}

	if eval.Decision == strategy.Skip {
		res := TemplateResult{Name: name, Action: ActionSkipped, Path: localPath}
		res.SHA256, res.Size = hashLocal(localPath)
		return res
	}

	if opts.DryRun {
		return TemplateResult{Name: name, Action: ActionDownloaded, Path: localPath}
	}

	// Reuse the payload the strategy already fetched, if any.
	resource := eval.Resource
	if resource == nil {
		resource, err = o.Fetcher.Fetch(ctx, remoteURL)
		if err != nil {
			return failed(name, "fetch", err, "")
		}
	}

	if err := sandbox.SafeWrite(baseDir, filepath.Join(o.Folder, name), resource.Payload, 0644); err != nil {
		return failed(name, "write", err, "check permissions and free disk space")
	}

	return TemplateResult{
		Name:   name,
		Action: ActionDownloaded,
		Path:   localPath,
		SHA256: resource.SHA256(),
		Size:   int64(len(resource.Payload)),
	}
}

// BuildManifest converts a completed run into a manifest covering every
// template that has a current local copy.
func BuildManifest(result *SyncResult) *manifest.Manifest {
	m := &manifest.Manifest{Version: 1, SyncedAt: time.Now().UTC()}
	for _, r := range result.Results {
		if r.Action != ActionDownloaded && r.Action != ActionSkipped {
			continue
		}
		m.Templates = append(m.Templates, manifest.Entry{
			Name:   r.Name,
			Path:   r.Path,
			SHA256: r.SHA256,
			Size:   r.Size,
		})
	}
	return m
}

func (o *Orchestrator) templateURL(name string) string {
	return strings.TrimSuffix(o.BaseURL, "/") + "/" + url.PathEscape(name)
}

func (o *Orchestrator) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func failed(name, operation string, err error, hint string) TemplateResult {
	return TemplateResult{
		Name:   name,
		Action: ActionFailed,
		Err:    &TemplateError{Template: name, Operation: operation, Err: err, Hint: hint},
	}
}

// decideOperation maps a strategy error to the step that produced it.
func decideOperation(err error) string {
	var fetchErr *fetch.FetchError
	if errors.As(err, &fetchErr) {
		return "fetch"
	}
	var hashErr *strategy.HashError
	if errors.As(err, &hashErr) {
		return "hash"
	}
	return "decide"
}

func hashLocal(path string) (string, int64) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", 0
	}
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:]), int64(len(data))
}

func validateBaseURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("empty URL")
	}
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
