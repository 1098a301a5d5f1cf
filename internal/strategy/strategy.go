// Package strategy decides, per template, whether the local copy needs
// to be replaced by the remote one.
package strategy

import (
	"context"
	"fmt"
	"os"

	"github.com/bianoble/template-sync/internal/fetch"
)

// Decision is the sole output of a strategy evaluation.
type Decision int

const (
	Skip Decision = iota
	Download
)

func (d Decision) String() string {
	switch d {
	case Skip:
		return "skip"
	case Download:
		return "download"
	default:
		return fmt.Sprintf("decision(%d)", int(d))
	}
}

// Evaluation carries a decision plus the remote resource when the
// strategy already fetched it. Callers must reuse a non-nil Resource
// instead of fetching again.
type Evaluation struct {
	Decision Decision
	Resource *fetch.Resource
}

// Strategy is a pluggable decision procedure for one template.
type Strategy interface {
	// Name identifies the strategy in output and logs.
	Name() string

	// Decide evaluates the local copy at localPath against the remote
	// resource at remoteURL.
	Decide(ctx context.Context, localPath, remoteURL string) (Evaluation, error)
}

// FS abstracts the filesystem reads strategies perform, for testing.
type FS interface {
	Stat(path string) (os.FileInfo, error)
	ReadFile(path string) ([]byte, error)
}

// OSFS implements FS using the real operating system filesystem.
type OSFS struct{}

func (OSFS) Stat(path string) (os.FileInfo, error) { return os.Stat(path) }
func (OSFS) ReadFile(path string) ([]byte, error)  { return os.ReadFile(path) }

// New returns the strategy for a config-level kind name.
func New(kind string, fetcher fetch.Fetcher) (Strategy, error) {
	switch kind {
	case "hash":
		return &Hash{Fetcher: fetcher, FS: OSFS{}}, nil
	case "timestamp":
		return &Timestamp{Fetcher: fetcher, FS: OSFS{}}, nil
	default:
		return nil, fmt.Errorf("unknown strategy '%s' — must be one of: hash, timestamp", kind)
	}
}
