package cli

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exquisite-dentistry/sitegen/internal/adapters/driven/content"
	"github.com/exquisite-dentistry/sitegen/internal/adapters/driven/storage/memory"
	"github.com/exquisite-dentistry/sitegen/internal/core/domain"
)

const thinServiceYAML = `slug: whitening
title: Teeth Whitening
seo:
  title: Teeth Whitening Los Angeles
hero:
  heading: Teeth Whitening
internal_links:
  - label: Veneers
    href: /veneers
`

func TestCheckCmd_DefaultContentPasses(t *testing.T) {
	setupServices(t)

	out, err := executeCommand(t, "check")

	require.NoError(t, err)
	assert.Contains(t, out, "Content quality")
	assert.Contains(t, out, "0 error(s)")
}

func TestCheckCmd_Errors(t *testing.T) {
	saveGlobals(t)
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("services", 0o755))
	require.NoError(t, afero.WriteFile(fs, "services/whitening.yaml", []byte(thinServiceYAML), 0o644))
	installServices(memory.NewSiteStore(nil), content.NewFsLoader(fs, "memory"))

	out, err := executeCommand(t, "check")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrQualityFailed)
	assert.Contains(t, out, `Service "whitening" is missing seo.description.`)
	assert.Contains(t, out, `Service "whitening" must define at least 2 internal link(s).`)
	assert.Contains(t, out, "2 error(s)")
}

func TestCheckCmd_InvalidContent(t *testing.T) {
	saveGlobals(t)
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "pages.yaml", []byte("- path: about\n  title: A\n  h1: A\n"), 0o644))
	installServices(memory.NewSiteStore(nil), content.NewFsLoader(fs, "memory"))

	_, err := executeCommand(t, "check")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrContentInvalid)
	assert.Contains(t, err.Error(), "load content from memory")
}
