package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/exquisite-dentistry/sitegen/internal/core/domain"
)

var searchIndexCmd = &cobra.Command{
	Use:   "search-index",
	Short: "Generate the client-side search index",
	Long: `Merges services, locations, pages, stories and published blog posts into
public/search-index.json. The file is copied to dist/ when dist/ exists.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if searchIndexService == nil {
			return errNotConfigured("search index")
		}
		return runStep(cmd, searchIndexService.Generate)
	},
}

var prerenderCmd = &cobra.Command{
	Use:   "prerender",
	Short: "Pre-render static routes into dist/",
	Long: `Renders one HTML document per static route from dist/index.html, with
route-specific head metadata, JSON-LD structured data and crawlable body
content. Run after the SPA build.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if prerenderService == nil {
			return errNotConfigured("prerender")
		}
		return runStep(cmd, prerenderService.Generate)
	},
}

var fallbacksCmd = &cobra.Command{
	Use:   "fallbacks",
	Short: "Generate standalone fallback pages",
	Long:  `Writes public/<slug>.html for every service and location page.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if fallbackService == nil {
			return errNotConfigured("fallback")
		}
		return runStep(cmd, fallbackService.Generate)
	},
}

var sitemapCmd = &cobra.Command{
	Use:   "sitemap",
	Short: "Generate the XML sitemap",
	Long:  `Writes public/sitemap.xml for every static route, and dist/sitemap.xml when dist/ exists.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if sitemapService == nil {
			return errNotConfigured("sitemap")
		}
		return runStep(cmd, sitemapService.Generate)
	},
}

func init() {
	rootCmd.AddCommand(searchIndexCmd)
	rootCmd.AddCommand(prerenderCmd)
	rootCmd.AddCommand(fallbacksCmd)
	rootCmd.AddCommand(sitemapCmd)
}

type generateFunc func(ctx context.Context, content *domain.Content) (*domain.StepResult, error)

// runStep loads content and runs a single generation step.
func runStep(cmd *cobra.Command, generate generateFunc) error {
	content, err := loadContent(cmd.Context())
	if err != nil {
		return err
	}

	result, err := generate(cmd.Context(), content)
	if result != nil {
		writeStepResult(cmd.OutOrStdout(), result)
	}
	return err
}

func loadContent(ctx context.Context) (*domain.Content, error) {
	if contentSource == nil {
		return nil, errNotConfigured("content")
	}
	content, err := contentSource.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load content from %s: %w", contentSource.Location(), err)
	}
	return content, nil
}
