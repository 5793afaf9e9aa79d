package sitefs

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/exquisite-dentistry/sitegen/internal/core/domain"
	"github.com/exquisite-dentistry/sitegen/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.SiteStore = (*Store)(nil)

// File permissions for generated output.
const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// Store reads and writes project files relative to a root directory.
type Store struct {
	fs   afero.Fs
	root string
}

// New creates a store rooted at the given directory on the OS filesystem.
// An empty root means the working directory.
func New(root string) (*Store, error) {
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve project root %s: %w", root, err)
	}
	return &Store{fs: afero.NewBasePathFs(afero.NewOsFs(), abs), root: abs}, nil
}

// NewWithFs creates a store over an existing filesystem.
func NewWithFs(fs afero.Fs) *Store {
	return &Store{fs: fs, root: "."}
}

// Root returns the project directory the store was created for.
func (s *Store) Root() string {
	return s.root
}

// ReadFile returns the contents of the file at p.
func (s *Store) ReadFile(p string) ([]byte, error) {
	clean, err := cleanPath(p)
	if err != nil {
		return nil, err
	}
	return afero.ReadFile(s.fs, clean)
}

// WriteFile replaces the file at p, creating parent directories.
func (s *Store) WriteFile(p string, data []byte) error {
	clean, err := cleanPath(p)
	if err != nil {
		return err
	}
	if dir := path.Dir(clean); dir != "." {
		if err := s.fs.MkdirAll(dir, dirPermissions); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return afero.WriteFile(s.fs, clean, data, filePermissions)
}

// Exists reports whether a file or directory exists at p.
func (s *Store) Exists(p string) bool {
	clean, err := cleanPath(p)
	if err != nil {
		return false
	}
	_, err = s.fs.Stat(clean)
	return err == nil
}

// cleanPath turns a slash-separated project path into a relative path and
// rejects paths that climb out of the project root.
func cleanPath(p string) (string, error) {
	p = strings.ReplaceAll(strings.TrimSpace(p), "\\", "/")
	if p == "" {
		return "", fmt.Errorf("%w: empty path", domain.ErrInvalidInput)
	}
	for _, part := range strings.Split(p, "/") {
		if part == ".." {
			return "", fmt.Errorf("%w: path %s escapes the project root", domain.ErrInvalidInput, p)
		}
	}
	clean := strings.TrimPrefix(path.Clean("/"+p), "/")
	if clean == "" {
		return ".", nil
	}
	return clean, nil
}
