package driven

// SiteStore is the project filesystem holding dist/ and public/.
// Paths are slash-separated and relative to the project root.
type SiteStore interface {
	// ReadFile returns the contents of the file at path.
	ReadFile(path string) ([]byte, error)

	// WriteFile replaces the file at path, creating parent directories.
	WriteFile(path string, data []byte) error

	// Exists reports whether a file or directory exists at path.
	Exists(path string) bool
}
