package cli

import (
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Run the full generation pipeline",
	Long: `Runs the content quality check, search index, prerender, fallback pages and
sitemap in order. Quality errors stop the build before anything is written.
Every run is recorded in the build ledger; see "sitegen history".`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	if buildService == nil {
		return errNotConfigured("build")
	}

	run, err := buildService.Run(cmd.Context())
	if run != nil {
		writeBuildRun(cmd.OutOrStdout(), run)
	}
	return err
}
