package strategy

import (
	"context"
	"fmt"
	"os"

	"github.com/bianoble/template-sync/internal/fetch"
)

// Timestamp decides staleness by comparing the local file's modification
// time against the server-reported Last-Modified time.
//
// Known weakness: the remote timestamp is whatever the server declares,
// and clock skew between local and remote clocks is not compensated.
// When the server reports no timestamp at all, the strategy assumes the
// remote copy is newer and downloads.
type Timestamp struct {
	Fetcher fetch.Fetcher
	FS      FS
}

func (s *Timestamp) Name() string { return "timestamp" }

func (s *Timestamp) Decide(ctx context.Context, localPath, remoteURL string) (Evaluation, error) {
	fi, err := s.FS.Stat(localPath)
	if os.IsNotExist(err) {
		return Evaluation{Decision: Download}, nil
	}
	if err != nil {
		return Evaluation{}, fmt.Errorf("inspecting %s: %w", localPath, err)
	}

	res, err := s.Fetcher.Fetch(ctx, remoteURL)
	if err != nil {
		return Evaluation{}, err
	}

	// Unknown remote freshness is treated as "assume newer".
	if res.LastModified.IsZero() {
		return Evaluation{Decision: Download, Resource: res}, nil
	}

	if fi.ModTime().Before(res.LastModified) {
		return Evaluation{Decision: Download, Resource: res}, nil
	}
	return Evaluation{Decision: Skip, Resource: res}, nil
}
