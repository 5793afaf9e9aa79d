package services

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path"
	"strings"

	"github.com/exquisite-dentistry/sitegen/internal/core/domain"
	"github.com/exquisite-dentistry/sitegen/internal/core/ports/driven"
	"github.com/exquisite-dentistry/sitegen/internal/logger"
)

// Output locations under the project root.
const (
	PublicDir = "public"
	DistDir   = "dist"

	// TemplatePath is the built SPA shell every route is rendered from.
	TemplatePath = DistDir + "/index.html"
)

// writeOutput writes data to p and describes the written file.
func writeOutput(store driven.SiteStore, step domain.BuildStep, p string, data []byte) (domain.OutputFile, error) {
	if err := store.WriteFile(p, data); err != nil {
		return domain.OutputFile{}, fmt.Errorf("write %s: %w", p, err)
	}

	sum := sha256.Sum256(data)
	logger.Debug("wrote output", "step", step, "path", p, "bytes", len(data))
	return domain.OutputFile{
		Step:   step,
		Path:   p,
		Bytes:  len(data),
		SHA256: hex.EncodeToString(sum[:]),
	}, nil
}

// writePublicAndDist writes public/<name> and, when dist/ exists, dist/<name>.
func writePublicAndDist(store driven.SiteStore, step domain.BuildStep, name string, data []byte) ([]domain.OutputFile, error) {
	targets := []string{path.Join(PublicDir, name)}
	if store.Exists(DistDir) {
		targets = append(targets, path.Join(DistDir, name))
	}

	outputs := make([]domain.OutputFile, 0, len(targets))
	for _, p := range targets {
		out, err := writeOutput(store, step, p, data)
		if err != nil {
			return outputs, err
		}
		outputs = append(outputs, out)
	}
	return outputs, nil
}

// routeOutputPath maps a route path to its file under dist/.
// The root route writes dist/index.html.
func routeOutputPath(routePath string) string {
	trimmed := strings.Trim(routePath, "/")
	if trimmed == "" {
		return path.Join(DistDir, "index.html")
	}
	return path.Join(DistDir, trimmed, "index.html")
}
