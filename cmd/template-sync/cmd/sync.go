package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bianoble/template-sync/internal/engine"
	"github.com/bianoble/template-sync/internal/manifest"
	"github.com/bianoble/template-sync/internal/strategy"
)

var (
	syncDryRun   bool
	syncStrategy string
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Synchronize templates from the remote repository",
	Long: `Fetches each configured template and updates the local copy when the
remote version differs. The comparison uses the configured strategy:
'hash' compares SHA-256 content hashes, 'timestamp' compares the local
modification time against the server-reported Last-Modified time.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		kind := syncStrategy
		if kind == "" {
			kind = cfg.StrategyKind()
		}

		fetcher := newFetcher(cfg)
		strat, err := strategy.New(kind, fetcher)
		if err != nil {
			return err
		}

		orch := &engine.Orchestrator{
			Resolver: newResolver(cfg),
			Fetcher:  fetcher,
			BaseURL:  cfg.DownloadURL,
			Folder:   cfg.Folder,
			Logger:   newLogger(),
		}

		result, err := orch.Sync(cmd.Context(), cfg.Templates, strat, engine.SyncOptions{DryRun: syncDryRun})
		if err != nil {
			return err
		}

		if syncDryRun {
			info("Dry run — no files written.")
		}

		for _, r := range result.Downloaded() {
			info("  downloaded  %s", r.Name)
		}
		for _, r := range result.Skipped() {
			detail("unchanged  %s", r.Name)
		}
		for _, r := range result.Unsupported() {
			errorf("%s", r.Err)
		}
		for _, r := range result.Failed() {
			errorf("%s", r.Err)
		}

		if !syncDryRun {
			if err := manifest.Save(resolvedManifestPath(), engine.BuildManifest(result)); err != nil {
				return fmt.Errorf("saving manifest: %w", err)
			}
		}

		info("")
		info("Sync complete: %d downloaded, %d unchanged, %d failed, %d unsupported.",
			len(result.Downloaded()), len(result.Skipped()), len(result.Failed()), len(result.Unsupported()))

		if n := len(result.Failed()) + len(result.Unsupported()); n > 0 {
			return fmt.Errorf("%d template(s) not synced", n)
		}
		return nil
	},
}

func init() {
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "show what would change without writing files")
	syncCmd.Flags().StringVar(&syncStrategy, "strategy", "", "staleness strategy: hash or timestamp (default: from config)")
	rootCmd.AddCommand(syncCmd)
}
