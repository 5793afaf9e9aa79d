// Package cli implements the sitegen command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/exquisite-dentistry/sitegen/internal/adapters/driven/config/file"
	"github.com/exquisite-dentistry/sitegen/internal/adapters/driven/content"
	"github.com/exquisite-dentistry/sitegen/internal/adapters/driven/storage/memory"
	"github.com/exquisite-dentistry/sitegen/internal/adapters/driven/storage/sitefs"
	"github.com/exquisite-dentistry/sitegen/internal/adapters/driven/storage/sqlite"
	"github.com/exquisite-dentistry/sitegen/internal/core/ports/driven"
	"github.com/exquisite-dentistry/sitegen/internal/core/ports/driving"
	"github.com/exquisite-dentistry/sitegen/internal/core/services"
	"github.com/exquisite-dentistry/sitegen/internal/logger"
)

// version is set at build time with -ldflags "-X ...cli.version=...".
var version = "dev"

// Persistent flag values.
var (
	rootDir    string
	contentDir string
	configPath string
	verbose    bool
	dryRun     bool
)

// Services used by the commands. They are populated by wireFunc before a
// command runs, and replaced with fakes in tests.
var (
	contentSource      driven.ContentSource
	ledger             driven.BuildLedger
	settingsService    driving.SettingsService
	qualityService     driving.QualityService
	searchIndexService driving.SearchIndexService
	prerenderService   driving.PrerenderService
	fallbackService    driving.FallbackService
	sitemapService     driving.SitemapService
	buildService       driving.BuildService
)

// wireFunc builds the services from the persistent flags.
var wireFunc = wireServices

var rootCmd = &cobra.Command{
	Use:   "sitegen",
	Short: "Static SEO generation for the Exquisite Dentistry site",
	Long: `sitegen post-processes the built single-page app in dist/.

It writes the client-side search index, pre-renders one HTML document per
route with SEO metadata and structured data, emits standalone fallback pages
for services and locations, and publishes the sitemap. Content is read from
YAML and Markdown registries.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if !needsServices(cmd) {
			return nil
		}
		return wireFunc(cmd)
	},
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		if ledger == nil {
			return nil
		}
		return ledger.Close()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootDir, "root", ".", "project root holding dist/ and public/")
	flags.StringVar(&contentDir, "content", "", "content registry directory (default: built-in content)")
	flags.StringVar(&configPath, "config", "", "site config file (default: sitegen.toml under --root)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	flags.BoolVar(&dryRun, "dry-run", false, "generate in memory without touching dist/ or public/")
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// needsServices reports whether a command uses the generation services.
func needsServices(cmd *cobra.Command) bool {
	return cmd.Annotations["services"] != "none"
}

// wireServices builds every adapter and service from the persistent flags.
func wireServices(cmd *cobra.Command) error {
	path := configPath
	if path == "" {
		path = filepath.Join(rootDir, file.DefaultFileName)
	}
	configStore, err := file.NewConfigStore(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	settingsService = services.NewSettingsService(configStore)
	if cmd.Annotations["services"] == "settings" {
		return nil
	}
	if err := settingsService.Validate(); err != nil {
		return err
	}
	settings, err := settingsService.Get()
	if err != nil {
		return err
	}

	site, err := openSiteStore()
	if err != nil {
		return err
	}

	if contentDir == "" {
		contentSource = content.NewDefaultLoader()
	} else {
		loader, err := content.NewLoader(contentDir)
		if err != nil {
			return err
		}
		contentSource = loader
	}

	if settings.Ledger.Path != "" && !dryRun {
		dbPath := settings.Ledger.Path
		if !filepath.IsAbs(dbPath) {
			dbPath = filepath.Join(rootDir, dbPath)
		}
		store, err := sqlite.NewStore(dbPath)
		if err != nil {
			return fmt.Errorf("open build ledger: %w", err)
		}
		ledger = store
	} else {
		ledger = memory.NewBuildLedger()
	}

	qualityService = services.NewQualityService(settings.Quality)
	searchIndexService = services.NewSearchIndexService(site)
	prerenderService = services.NewPrerenderService(site, settings)
	fallbackService = services.NewFallbackService(site, settings)
	sitemapService = services.NewSitemapService(site, settings)
	buildService = services.NewBuildService(contentSource, ledger, services.BuildSteps{
		Quality:     qualityService,
		SearchIndex: searchIndexService,
		Prerender:   prerenderService,
		Fallbacks:   fallbackService,
		Sitemap:     sitemapService,
	})

	logger.Debug("services wired",
		"root", rootDir,
		"content", contentSource.Location(),
		"config", configStore.Path(),
		"dry_run", dryRun,
	)
	return nil
}

// openSiteStore returns the project filesystem. In dry-run mode writes go
// to memory, seeded with the SPA template when the project has one.
func openSiteStore() (driven.SiteStore, error) {
	disk, err := sitefs.New(rootDir)
	if err != nil {
		return nil, err
	}
	if !dryRun {
		return disk, nil
	}

	mem := memory.NewSiteStore(nil)
	for _, dir := range []string{services.DistDir, services.PublicDir} {
		if disk.Exists(dir) {
			mem.MkdirAll(dir)
		}
	}
	tmpl, err := disk.ReadFile(services.TemplatePath)
	switch {
	case err == nil:
		if err := mem.WriteFile(services.TemplatePath, tmpl); err != nil {
			return nil, err
		}
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("read %s: %w", services.TemplatePath, err)
	}
	return mem, nil
}

// errNotConfigured reports a service that was never wired.
func errNotConfigured(name string) error {
	return fmt.Errorf("%s service not configured", name)
}
