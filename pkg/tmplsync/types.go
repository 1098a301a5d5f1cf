package tmplsync

import "github.com/bianoble/template-sync/internal/engine"

// Type aliases re-export engine result types as the public API.
// Users import "github.com/bianoble/template-sync/pkg/tmplsync" and use
// tmplsync.SyncResult, tmplsync.TemplateResult, etc.

type TemplateResult = engine.TemplateResult
type SyncResult = engine.SyncResult
type TemplateStatus = engine.TemplateStatus
type TemplateError = engine.TemplateError
