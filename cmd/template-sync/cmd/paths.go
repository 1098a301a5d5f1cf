package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bianoble/template-sync/internal/office"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Show the resolved template directory per application kind",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		resolver := newResolver(cfg)
		fmt.Printf("%-14s %s\n", "KIND", "TARGET DIRECTORY")
		for _, kind := range office.Kinds() {
			dir, err := resolver.Resolve(kind)
			if err != nil {
				fmt.Printf("%-14s (unresolved: %s)\n", kind, err)
				continue
			}
			fmt.Printf("%-14s %s\n", kind, filepath.Join(dir, cfg.Folder))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(pathsCmd)
}
