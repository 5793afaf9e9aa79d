package cli

import (
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded builds",
	Long: `Lists builds recorded in the ledger, most recent first. Builds are only
kept across invocations when ledger.path is set in the site config.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of builds to show (0 for all)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if buildService == nil {
		return errNotConfigured("build")
	}

	runs, err := buildService.History(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}
	writeHistory(cmd.OutOrStdout(), runs)
	return nil
}
