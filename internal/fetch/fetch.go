// Package fetch retrieves template content over HTTPS.
package fetch

import (
	"context"
	"crypto/sha256"
	"crypto/tls"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// Resource holds the fetched remote content and its transport metadata.
type Resource struct {
	URL     string
	Payload []byte

	// LastModified is the server-reported modification time.
	// Zero when the server did not report one.
	LastModified time.Time

	hash string
}

// SHA256 returns the hex-encoded SHA-256 of the payload, computed on
// first use.
func (r *Resource) SHA256() string {
	if r.hash == "" {
		h := sha256.Sum256(r.Payload)
		r.hash = hex.EncodeToString(h[:])
	}
	return r.hash
}

// Fetcher retrieves a remote resource by URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*Resource, error)
}

// HTTPClient abstracts HTTP operations for testing.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// FetchError represents a transport or HTTP-level failure for one URL.
type FetchError struct {
	URL    string
	Status int // 0 when the request never produced a response
	Err    error
	Hint   string
}

func (e *FetchError) Error() string {
	msg := fmt.Sprintf("fetching %s: %s", e.URL, e.Err)
	if e.Hint != "" {
		msg += " — " + e.Hint
	}
	return msg
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// HTTPFetcher fetches resources over HTTP(S).
type HTTPFetcher struct {
	Client  HTTPClient
	MaxSize int64         // max payload size in bytes (0 = no limit)
	Timeout time.Duration // per-fetch timeout (0 = no extra timeout beyond context)
}

// Fetch performs a GET and returns the payload together with the
// server-reported Last-Modified time, when present.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*Resource, error) {
	if f.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.Timeout)
		defer cancel()
	}

	client := f.Client
	if client == nil {
		client = defaultClient()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("creating request: %w", err)}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err, Hint: "check network connectivity and URL"}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{
			URL:    url,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("HTTP %d", resp.StatusCode),
			Hint:   "check that the template exists at the download URL",
		}
	}

	var reader io.Reader = resp.Body
	if f.MaxSize > 0 {
		reader = io.LimitReader(resp.Body, f.MaxSize+1)
	}

	payload, err := io.ReadAll(reader)
	if err != nil {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("reading response: %w", err)}
	}

	if f.MaxSize > 0 && int64(len(payload)) > f.MaxSize {
		return nil, &FetchError{
			URL:  url,
			Err:  fmt.Errorf("payload exceeds max size %d bytes", f.MaxSize),
			Hint: "increase max_file_size or use a smaller template",
		}
	}

	res := &Resource{URL: url, Payload: payload}
	if lm := resp.Header.Get("Last-Modified"); lm != "" {
		if t, parseErr := http.ParseTime(lm); parseErr == nil {
			res.LastModified = t
		}
	}
	return res, nil
}

var (
	clientOnce sync.Once
	client     *http.Client
)

// defaultClient returns the shared HTTP client. TLS 1.2 is the minimum
// accepted protocol version; this is configured once per process.
func defaultClient() *http.Client {
	clientOnce.Do(func() {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.TLSClientConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		client = &http.Client{
			Transport: transport,
			Timeout:   30 * time.Second,
		}
	})
	return client
}
