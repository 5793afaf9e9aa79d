package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exquisite-dentistry/sitegen/internal/adapters/driven/content"
	"github.com/exquisite-dentistry/sitegen/internal/adapters/driven/storage/memory"
	"github.com/exquisite-dentistry/sitegen/internal/core/domain"
)

func TestBuildCmd(t *testing.T) {
	site := setupServices(t)

	out, err := executeCommand(t, "build")

	require.NoError(t, err)
	assert.Contains(t, out, "Status:    succeeded")
	assert.Contains(t, out, "public/sitemap.xml")
	assert.True(t, site.Exists("public/search-index.json"))
	assert.True(t, site.Exists("dist/about/index.html"))
	assert.True(t, site.Exists("public/teeth-cleaning.html"))
	assert.True(t, site.Exists("dist/sitemap.xml"))
}

func TestBuildCmd_FailureIsRecorded(t *testing.T) {
	saveGlobals(t)
	installServices(memory.NewSiteStore(nil), content.NewDefaultLoader())

	out, err := executeCommand(t, "build")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTemplateMissing)
	assert.Contains(t, out, "Status:    failed")

	out, err = executeCommand(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "failed")
}

func TestHistoryCmd(t *testing.T) {
	setupServices(t)

	out, err := executeCommand(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No builds recorded.")

	_, err = executeCommand(t, "build")
	require.NoError(t, err)
	_, err = executeCommand(t, "build")
	require.NoError(t, err)

	runs, err := buildService.History(t.Context(), 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	out, err = executeCommand(t, "history", "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "STATUS")
	assert.Contains(t, out, runs[0].ID)
	assert.NotContains(t, out, runs[1].ID)
}
