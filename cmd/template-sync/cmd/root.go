package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Build-time variables set via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Global flags.
var (
	configPath   string
	manifestPath string
	verbose      bool
	quiet        bool
)

var rootCmd = &cobra.Command{
	Use:   "template-sync",
	Short: "Keep office document templates in sync with a central repository",
	Long: `template-sync keeps the template folders of a desktop office suite
current with a centrally managed template repository. It fetches named
templates over HTTPS and updates the local copies only when the remote
version differs, using either timestamp or content-hash comparison.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("template-sync %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "template-sync.yaml", "path to config file")
	rootCmd.PersistentFlags().StringVar(&manifestPath, "manifest", "", "path to sync manifest (default: per-user state dir)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "detailed output")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "minimal output (errors only)")

	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}
