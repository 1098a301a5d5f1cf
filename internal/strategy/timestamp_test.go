package strategy

import (
	"context"
	"testing"
	"time"
)

func TestTimestampMissingLocalDownloadsWithoutFetch(t *testing.T) {
	fetcher := &fakeFetcher{payload: []byte("remote")}
	s := &Timestamp{Fetcher: fetcher, FS: &fakeFS{files: map[string]fakeFile{}}}

	eval, err := s.Decide(context.Background(), "/templates/Letter.dotx", "https://example.com/Letter.dotx")
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if eval.Decision != Download {
		t.Errorf("decision = %s, want download", eval.Decision)
	}
	if eval.Resource != nil {
		t.Error("expected no resource for a missing local file")
	}
	if fetcher.calls != 0 {
		t.Errorf("fetch calls = %d, want 0 — missing local needs no round trip", fetcher.calls)
	}
}

func TestTimestampRemoteNewerDownloads(t *testing.T) {
	local := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	remote := local.Add(time.Hour)

	fetcher := &fakeFetcher{payload: []byte("remote"), lastModified: remote}
	s := &Timestamp{
		Fetcher: fetcher,
		FS:      &fakeFS{files: map[string]fakeFile{"/t/Letter.dotx": {data: []byte("old"), modTime: local}}},
	}

	eval, err := s.Decide(context.Background(), "/t/Letter.dotx", "https://example.com/Letter.dotx")
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if eval.Decision != Download {
		t.Errorf("decision = %s, want download", eval.Decision)
	}
	if eval.Resource == nil {
		t.Fatal("expected the fetched resource to be carried for reuse")
	}
	if string(eval.Resource.Payload) != "remote" {
		t.Errorf("payload = %q", eval.Resource.Payload)
	}
}

func TestTimestampLocalCurrentSkips(t *testing.T) {
	remote := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for _, local := range []time.Time{remote, remote.Add(time.Hour)} {
		fetcher := &fakeFetcher{payload: []byte("remote"), lastModified: remote}
		s := &Timestamp{
			Fetcher: fetcher,
			FS:      &fakeFS{files: map[string]fakeFile{"/t/Letter.dotx": {data: []byte("current"), modTime: local}}},
		}

		eval, err := s.Decide(context.Background(), "/t/Letter.dotx", "https://example.com/Letter.dotx")
		if err != nil {
			t.Fatalf("Decide: %v", err)
		}
		if eval.Decision != Skip {
			t.Errorf("local mtime %s: decision = %s, want skip", local, eval.Decision)
		}
	}
}

func TestTimestampUnknownRemoteTimestampDownloads(t *testing.T) {
	fetcher := &fakeFetcher{payload: []byte("remote")} // zero LastModified
	s := &Timestamp{
		Fetcher: fetcher,
		FS:      &fakeFS{files: map[string]fakeFile{"/t/Letter.dotx": {data: []byte("current"), modTime: time.Now()}}},
	}

	eval, err := s.Decide(context.Background(), "/t/Letter.dotx", "https://example.com/Letter.dotx")
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if eval.Decision != Download {
		t.Errorf("decision = %s, want download when remote freshness is unknown", eval.Decision)
	}
}

func TestTimestampFetchErrorPropagates(t *testing.T) {
	fetcher := &fakeFetcher{err: context.DeadlineExceeded}
	s := &Timestamp{
		Fetcher: fetcher,
		FS:      &fakeFS{files: map[string]fakeFile{"/t/Letter.dotx": {data: []byte("x"), modTime: time.Now()}}},
	}

	if _, err := s.Decide(context.Background(), "/t/Letter.dotx", "https://example.com/Letter.dotx"); err == nil {
		t.Fatal("expected fetch error to propagate")
	}
}
