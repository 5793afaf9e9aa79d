package cli

import (
	"github.com/spf13/cobra"

	"github.com/exquisite-dentistry/sitegen/internal/core/domain"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check content quality",
	Long: `Checks service and location content for missing SEO fields, hero headings
and internal links, and warns about thin copy. Exits non-zero when any error
is found; warnings alone pass.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	if qualityService == nil {
		return errNotConfigured("quality")
	}

	content, err := loadContent(cmd.Context())
	if err != nil {
		return err
	}

	report := qualityService.Check(content)
	writeQualityReport(cmd.OutOrStdout(), report)
	if report.HasErrors() {
		return &domain.QualityError{Report: report}
	}
	return nil
}
