package strategy

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/bianoble/template-sync/internal/fetch"
)

// Hash decides staleness by comparing SHA-256 content hashes of the
// remote payload and the local file. Immune to clock skew and to
// timestamp-preserving copies, at the cost of always transferring the
// full remote payload.
type Hash struct {
	Fetcher fetch.Fetcher
	FS      FS
}

// HashError reports a local file that could not be read for hashing.
type HashError struct {
	Path string
	Err  error
}

func (e *HashError) Error() string {
	return fmt.Sprintf("hashing %s: %s", e.Path, e.Err)
}

func (e *HashError) Unwrap() error {
	return e.Err
}

func (s *Hash) Name() string { return "hash" }

func (s *Hash) Decide(ctx context.Context, localPath, remoteURL string) (Evaluation, error) {
	// The payload is needed regardless: the hash is computed over content.
	res, err := s.Fetcher.Fetch(ctx, remoteURL)
	if err != nil {
		return Evaluation{}, err
	}

	local, err := s.FS.ReadFile(localPath)
	if os.IsNotExist(err) {
		return Evaluation{Decision: Download, Resource: res}, nil
	}
	if err != nil {
		return Evaluation{}, &HashError{Path: localPath, Err: err}
	}

	localHash := sha256.Sum256(local)
	if hex.EncodeToString(localHash[:]) != res.SHA256() {
		return Evaluation{Decision: Download, Resource: res}, nil
	}
	return Evaluation{Decision: Skip, Resource: res}, nil
}
