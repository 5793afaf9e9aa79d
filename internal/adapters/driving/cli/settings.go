package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var settingsAnnotations = map[string]string{"services": "settings"}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show site settings",
	Long: `Shows the effective site settings: values from the site config file, with
built-in defaults for every key that is not set.

Use "settings init" to write the defaults to the config file for editing.`,
	Args:        cobra.NoArgs,
	Annotations: settingsAnnotations,
	RunE:        runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:         "show",
	Short:       "Show current settings",
	Args:        cobra.NoArgs,
	Annotations: settingsAnnotations,
	RunE:        runSettingsShow,
}

var settingsInitCmd = &cobra.Command{
	Use:         "init",
	Short:       "Write the effective settings to the config file",
	Args:        cobra.NoArgs,
	Annotations: settingsAnnotations,
	RunE:        runSettingsInit,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsInitCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNotConfigured("settings")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Site]")
	cmd.Printf("  Base URL: %s\n", settings.Site.BaseURL)
	cmd.Printf("  Brand name: %s\n", settings.Site.BrandName)
	cmd.Printf("  Brand suffix: %s\n", settings.Site.BrandSuffix)
	cmd.Printf("  Default OG image: %s\n", settings.Site.DefaultOGImage)
	cmd.Printf("  Phone: %s\n", settings.Site.Phone)
	cmd.Println()

	cmd.Println("[SEO]")
	cmd.Printf("  Title max: %d\n", settings.SEO.TitleMax)
	cmd.Printf("  Description max: %d\n", settings.SEO.DescriptionMax)
	cmd.Printf("  Doctor paths: %s\n", strings.Join(settings.SEO.DoctorPaths, ", "))
	cmd.Println()

	cmd.Println("[Quality]")
	cmd.Printf("  Min words: %d\n", settings.Quality.MinWords)
	cmd.Printf("  Min service links: %d\n", settings.Quality.MinServiceLinks)
	cmd.Printf("  Min location links: %d\n", settings.Quality.MinLocationLinks)
	cmd.Println()

	cmd.Println("[Ledger]")
	if settings.Ledger.Path != "" {
		cmd.Printf("  Path: %s\n", settings.Ledger.Path)
	} else {
		cmd.Println("  Path: (in memory)")
	}
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	} else {
		cmd.Println("Configuration is valid.")
	}
	return nil
}

func runSettingsInit(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNotConfigured("settings")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Println("Settings written.")
	return nil
}
