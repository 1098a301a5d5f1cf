package strategy

import (
	"context"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Property: a missing local file forces Download under both strategies,
// regardless of remote content.
func TestProperty_MissingLocalForcesDownload(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("missing local downloads under both strategies",
		prop.ForAll(
			func(content []byte) bool {
				fsys := &fakeFS{files: map[string]fakeFile{}}

				hash := &Hash{Fetcher: &fakeFetcher{payload: content}, FS: fsys}
				hashEval, err := hash.Decide(context.Background(), "/t/Letter.dotx", "https://example.com/Letter.dotx")
				if err != nil || hashEval.Decision != Download {
					return false
				}

				ts := &Timestamp{Fetcher: &fakeFetcher{payload: content}, FS: fsys}
				tsEval, err := ts.Decide(context.Background(), "/t/Letter.dotx", "https://example.com/Letter.dotx")
				return err == nil && tsEval.Decision == Download
			},
			gen.SliceOf(gen.UInt8()),
		))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// Property: identical bytes skip; flipping any single byte downloads.
func TestProperty_HashReflectsContentEquality(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("identical content skips",
		prop.ForAll(
			func(content []byte) bool {
				s := &Hash{
					Fetcher: &fakeFetcher{payload: content},
					FS:      &fakeFS{files: map[string]fakeFile{"/t/Budget.xltx": {data: content}}},
				}
				eval, err := s.Decide(context.Background(), "/t/Budget.xltx", "https://example.com/Budget.xltx")
				return err == nil && eval.Decision == Skip
			},
			gen.SliceOf(gen.UInt8()),
		))

	properties.Property("any single differing byte downloads",
		prop.ForAll(
			func(content []byte, pos uint16) bool {
				if len(content) == 0 {
					return true
				}
				changed := make([]byte, len(content))
				copy(changed, content)
				i := int(pos) % len(changed)
				changed[i] ^= 0x01

				s := &Hash{
					Fetcher: &fakeFetcher{payload: changed},
					FS:      &fakeFS{files: map[string]fakeFile{"/t/Budget.xltx": {data: content}}},
				}
				eval, err := s.Decide(context.Background(), "/t/Budget.xltx", "https://example.com/Budget.xltx")
				return err == nil && eval.Decision == Download
			},
			gen.SliceOf(gen.UInt8()),
			gen.UInt16(),
		))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// Property: with a known remote timestamp, the decision is Download
// exactly when the local copy is strictly older.
func TestProperty_TimestampMonotonicity(t *testing.T) {
	properties := gopter.NewProperties(nil)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	properties.Property("download iff local is strictly older than remote",
		prop.ForAll(
			func(localOffset, remoteOffset int64) bool {
				local := base.Add(time.Duration(localOffset) * time.Second)
				remote := base.Add(time.Duration(remoteOffset) * time.Second)

				s := &Timestamp{
					Fetcher: &fakeFetcher{payload: []byte("remote"), lastModified: remote},
					FS:      &fakeFS{files: map[string]fakeFile{"/t/Letter.dotx": {data: []byte("local"), modTime: local}}},
				}
				eval, err := s.Decide(context.Background(), "/t/Letter.dotx", "https://example.com/Letter.dotx")
				if err != nil {
					return false
				}

				if local.Before(remote) {
					return eval.Decision == Download
				}
				return eval.Decision == Skip
			},
			gen.Int64Range(-1<<20, 1<<20),
			gen.Int64Range(-1<<20, 1<<20),
		))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
