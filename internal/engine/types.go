package engine

import "fmt"

// Actions recorded per template.
const (
	ActionDownloaded  = "downloaded"
	ActionSkipped     = "skipped"
	ActionFailed      = "failed"
	ActionUnsupported = "unsupported"
)

// TemplateResult is the outcome record for one requested template.
type TemplateResult struct {
	Name   string
	Action string // one of the Action constants
	Path   string // local path, when one was resolved
	SHA256 string // content hash of the local copy, when known
	Size   int64
	Err    error // non-nil for failed and unsupported results
}

// SyncResult holds the outcome of a sync run, one entry per requested
// template, in request order.
type SyncResult struct {
	Results []TemplateResult
}

func (r *SyncResult) byAction(action string) []TemplateResult {
	var out []TemplateResult
	for _, res := range r.Results {
		if res.Action == action {
			out = append(out, res)
		}
	}
	return out
}

// Downloaded returns the templates that were written this run.
func (r *SyncResult) Downloaded() []TemplateResult { return r.byAction(ActionDownloaded) }

// Skipped returns the templates whose local copies were already current.
func (r *SyncResult) Skipped() []TemplateResult { return r.byAction(ActionSkipped) }

// Failed returns the templates that errored mid-sync.
func (r *SyncResult) Failed() []TemplateResult { return r.byAction(ActionFailed) }

// Unsupported returns the templates whose extension maps to no known
// application kind.
func (r *SyncResult) Unsupported() []TemplateResult { return r.byAction(ActionUnsupported) }

// TemplateError associates an error with a template and the sync step
// that produced it.
type TemplateError struct {
	Template  string
	Operation string // "resolve", "mkdir", "fetch", "hash", "decide", "write"
	Err       error
	Hint      string
}

func (e *TemplateError) Error() string {
	msg := fmt.Sprintf("%s: %s failed: %s", e.Template, e.Operation, e.Err)
	if e.Hint != "" {
		msg += " — " + e.Hint
	}
	return msg
}

func (e *TemplateError) Unwrap() error {
	return e.Err
}
