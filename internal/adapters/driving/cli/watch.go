package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/exquisite-dentistry/sitegen/internal/adapters/driven/content"
	"github.com/exquisite-dentistry/sitegen/internal/logger"
)

const defaultDebounce = 300 * time.Millisecond

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild whenever content changes",
	Long: `Runs a build, then watches the content directory and runs the build again
after registry files change. Changes are batched over the debounce window.
Requires --content. Stops on interrupt.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", defaultDebounce, "quiet period before rebuilding")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if buildService == nil {
		return errNotConfigured("build")
	}
	if contentDir == "" {
		return errors.New("watch requires --content: built-in content cannot change")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rebuild := func(ctx context.Context) error {
		run, err := buildService.Run(ctx)
		if run != nil {
			writeBuildRun(cmd.OutOrStdout(), run)
		}
		return err
	}

	if err := rebuild(ctx); err != nil {
		logger.Error("build failed", "error", err)
	}

	w := &contentWatcher{dir: contentDir, debounce: watchDebounce, rebuild: rebuild}
	cmd.Printf("Watching %s for changes...\n", contentDir)
	return w.Run(ctx)
}

// contentWatcher re-runs a build after content registry files change.
type contentWatcher struct {
	dir      string
	debounce time.Duration
	rebuild  func(ctx context.Context) error
}

// Run watches until ctx is done. Build failures are logged and watching
// continues.
func (w *contentWatcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := w.addTree(watcher, w.dir); err != nil {
		return err
	}

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("stopping content watcher")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !w.handle(watcher, event) {
				continue
			}
			logger.Debug("content changed, debouncing", "file", event.Name, "op", event.Op.String())
			timer.Reset(w.debounce)
		case <-timer.C:
			if err := w.rebuild(ctx); err != nil {
				logger.Error("build failed", "error", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "error", err)
		}
	}
}

// handle reports whether an event touches a registry file. New directories
// are added to the watch list.
func (w *contentWatcher) handle(watcher *fsnotify.Watcher, event fsnotify.Event) bool {
	if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) {
		return false
	}

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.addTree(watcher, event.Name); err != nil {
				logger.Warn("failed to watch directory", "path", event.Name, "error", err)
			}
			return true
		}
	}

	rel, err := filepath.Rel(w.dir, event.Name)
	if err != nil {
		return false
	}
	return isRegistryFile(filepath.ToSlash(rel))
}

// addTree watches root and every directory below it.
func (w *contentWatcher) addTree(watcher *fsnotify.Watcher, root string) error {
	count := 0
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != root && d.Name()[0] == '.' {
			return filepath.SkipDir
		}
		if err := watcher.Add(p); err != nil {
			return fmt.Errorf("watch %s: %w", p, err)
		}
		count++
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to walk content directory: %w", err)
	}
	logger.Debug("watching content", "root", root, "directories", count)
	return nil
}

// isRegistryFile reports whether a slash-separated path relative to the
// content root is read by the content loader.
func isRegistryFile(rel string) bool {
	for _, pattern := range content.Patterns() {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}
