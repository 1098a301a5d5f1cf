package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/bianoble/template-sync/internal/engine"
	"github.com/bianoble/template-sync/internal/manifest"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the on-disk state of previously synced templates",
	Long: `Compares each template recorded by the last sync against the file on
disk and reports its state: synced, modified, or missing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := resolvedManifestPath()
		m, err := manifest.Load(path)
		if errors.Is(err, fs.ErrNotExist) {
			info("No sync recorded yet — run 'template-sync sync' first.")
			return nil
		}
		if err != nil {
			return err
		}

		statuses := engine.Status(m)
		if len(statuses) == 0 {
			info("No templates recorded in %s.", path)
			return nil
		}

		fmt.Printf("%-30s %-10s %s\n", "TEMPLATE", "STATE", "PATH")
		for _, s := range statuses {
			fmt.Printf("%-30s %-10s %s\n", s.Name, s.State, s.Path)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
