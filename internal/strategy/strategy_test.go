package strategy

import (
	"context"
	"io/fs"
	"os"
	"testing"
	"time"

	"github.com/bianoble/template-sync/internal/fetch"
)

// fakeFetcher serves a fixed payload and records how often it was called.
type fakeFetcher struct {
	payload      []byte
	lastModified time.Time
	err          error
	calls        int
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string) (*fetch.Resource, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &fetch.Resource{URL: url, Payload: f.payload, LastModified: f.lastModified}, nil
}

// fakeFS is an in-memory FS with controllable modification times.
type fakeFS struct {
	files map[string]fakeFile
}

type fakeFile struct {
	data    []byte
	modTime time.Time
}

func (f *fakeFS) Stat(path string) (os.FileInfo, error) {
	file, ok := f.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
	}
	return fakeFileInfo{name: path, size: int64(len(file.data)), modTime: file.modTime}, nil
}

func (f *fakeFS) ReadFile(path string) ([]byte, error) {
	file, ok := f.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return file.data, nil
}

type fakeFileInfo struct {
	name    string
	size    int64
	modTime time.Time
}

func (fi fakeFileInfo) Name() string       { return fi.name }
func (fi fakeFileInfo) Size() int64        { return fi.size }
func (fi fakeFileInfo) Mode() fs.FileMode  { return 0644 }
func (fi fakeFileInfo) ModTime() time.Time { return fi.modTime }
func (fi fakeFileInfo) IsDir() bool        { return false }
func (fi fakeFileInfo) Sys() any           { return nil }

func TestNew(t *testing.T) {
	fetcher := &fakeFetcher{}

	s, err := New("hash", fetcher)
	if err != nil {
		t.Fatalf("New(hash): %v", err)
	}
	if s.Name() != "hash" {
		t.Errorf("name = %q, want hash", s.Name())
	}

	s, err = New("timestamp", fetcher)
	if err != nil {
		t.Fatalf("New(timestamp): %v", err)
	}
	if s.Name() != "timestamp" {
		t.Errorf("name = %q, want timestamp", s.Name())
	}

	if _, err := New("etag", fetcher); err == nil {
		t.Fatal("expected error for unknown strategy kind")
	}
}
