package engine

import (
	"crypto/sha256"
	"encoding/hex"
	"os"

	"github.com/bianoble/template-sync/internal/manifest"
)

// TemplateStatus describes the current on-disk state of a managed template.
type TemplateStatus struct {
	Name  string
	Path  string
	State string // "synced", "modified", "missing"
}

// Status compares each manifest entry against the file on disk.
func Status(m *manifest.Manifest) []TemplateStatus {
	var statuses []TemplateStatus
	for _, e := range m.Templates {
		s := TemplateStatus{Name: e.Name, Path: e.Path}

		content, err := os.ReadFile(e.Path)
		if err != nil {
			s.State = "missing"
			statuses = append(statuses, s)
			continue
		}

		if e.SHA256 != "" {
			h := sha256.Sum256(content)
			if hex.EncodeToString(h[:]) != e.SHA256 {
				s.State = "modified"
				statuses = append(statuses, s)
				continue
			}
		}

		s.State = "synced"
		statuses = append(statuses, s)
	}
	return statuses
}
