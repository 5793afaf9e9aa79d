package content

import (
	"embed"
	"io/fs"
)

//go:embed defaults
var defaultsFS embed.FS

// Defaults returns the compiled-in content registries.
func Defaults() fs.FS {
	sub, err := fs.Sub(defaultsFS, "defaults")
	if err != nil {
		// fs.Sub only fails on an invalid directory name.
		panic(err)
	}
	return sub
}
