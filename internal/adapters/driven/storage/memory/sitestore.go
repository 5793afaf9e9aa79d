package memory

import (
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
	"sync"

	"github.com/exquisite-dentistry/sitegen/internal/core/ports/driven"
)

// Ensure SiteStore implements the interface.
var _ driven.SiteStore = (*SiteStore)(nil)

// SiteStore is an in-memory project tree. It backs dry runs and tests.
type SiteStore struct {
	mu    sync.RWMutex
	files map[string][]byte
	dirs  map[string]bool
}

// NewSiteStore creates a store seeded with the given files.
func NewSiteStore(seed map[string][]byte) *SiteStore {
	s := &SiteStore{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
	for p, data := range seed {
		s.put(clean(p), data)
	}
	return s
}

// MkdirAll records a directory and its parents.
func (s *SiteStore) MkdirAll(p string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addDirs(clean(p))
}

// ReadFile returns a copy of the stored file.
func (s *SiteStore) ReadFile(p string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.files[clean(p)]
	if !ok {
		return nil, fmt.Errorf("read %s: %w", p, fs.ErrNotExist)
	}
	return slices.Clone(data), nil
}

// WriteFile stores a copy of data, creating parent directories.
func (s *SiteStore) WriteFile(p string, data []byte) error {
	p = clean(p)
	if p == "." || p == "" {
		return fmt.Errorf("write %q: %w", p, fs.ErrInvalid)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(p, data)
	return nil
}

// Exists reports whether a file or directory exists at p.
func (s *SiteStore) Exists(p string) bool {
	p = clean(p)

	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.files[p]
	return ok || s.dirs[p]
}

// Files returns the stored paths in sorted order.
func (s *SiteStore) Files() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	paths := make([]string, 0, len(s.files))
	for p := range s.files {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths
}

func (s *SiteStore) put(p string, data []byte) {
	s.files[p] = slices.Clone(data)
	s.addDirs(path.Dir(p))
}

func (s *SiteStore) addDirs(dir string) {
	for dir != "." && dir != "/" && dir != "" {
		s.dirs[dir] = true
		dir = path.Dir(dir)
	}
}

func clean(p string) string {
	return strings.TrimPrefix(path.Clean(p), "/")
}
