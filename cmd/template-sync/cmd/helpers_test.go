package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolvedManifestPath(t *testing.T) {
	orig := manifestPath
	defer func() { manifestPath = orig }()

	manifestPath = ""
	if resolvedManifestPath() == "" {
		t.Error("expected a default manifest path")
	}

	manifestPath = "/explicit/manifest.yaml"
	if got := resolvedManifestPath(); got != "/explicit/manifest.yaml" {
		t.Errorf("path = %q", got)
	}
}

func TestLoadConfigWrapsPath(t *testing.T) {
	orig := configPath
	defer func() { configPath = orig }()

	configPath = filepath.Join(t.TempDir(), "absent.yaml")
	_, err := loadConfig()
	if err == nil {
		t.Fatal("expected error for missing config")
	}
	if !strings.Contains(err.Error(), configPath) {
		t.Errorf("error does not name the config path: %v", err)
	}
}

func TestNewFetcherAppliesLimits(t *testing.T) {
	configContent := `
version: 1
download_url: https://templates.example.com
templates: [Letter.dotx]
max_file_size: 1024
timeout: 5s
`
	path := filepath.Join(t.TempDir(), "template-sync.yaml")
	if err := os.WriteFile(path, []byte(configContent), 0644); err != nil {
		t.Fatal(err)
	}

	orig := configPath
	defer func() { configPath = orig }()
	configPath = path

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.MaxFileSize != 1024 {
		t.Errorf("max_file_size = %d", cfg.MaxFileSize)
	}
	if cfg.FetchTimeout().Seconds() != 5 {
		t.Errorf("timeout = %s", cfg.FetchTimeout())
	}
}
