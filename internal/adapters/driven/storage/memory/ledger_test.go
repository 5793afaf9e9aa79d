package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exquisite-dentistry/sitegen/internal/core/domain"
)

func TestBuildLedger_SaveAndGet(t *testing.T) {
	ledger := NewBuildLedger()
	ctx := context.Background()
	run := domain.BuildRun{
		ID:        "run-1",
		StartedAt: time.Now(),
		Status:    domain.BuildSucceeded,
		Outputs:   []domain.OutputFile{{Step: domain.StepSitemap, Path: "public/sitemap.xml"}},
	}

	require.NoError(t, ledger.Save(ctx, run))
	run.Outputs[0].Path = "mutated"

	got, err := ledger.Get(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, domain.BuildSucceeded, got.Status)
	assert.Equal(t, "public/sitemap.xml", got.Outputs[0].Path)
}

func TestBuildLedger_SaveWithoutID(t *testing.T) {
	err := NewBuildLedger().Save(context.Background(), domain.BuildRun{})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBuildLedger_GetNotFound(t *testing.T) {
	_, err := NewBuildLedger().Get(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBuildLedger_List(t *testing.T) {
	ledger := NewBuildLedger()
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, ledger.Save(ctx, domain.BuildRun{ID: "a", StartedAt: base}))
	require.NoError(t, ledger.Save(ctx, domain.BuildRun{ID: "c", StartedAt: base.Add(time.Hour)}))
	require.NoError(t, ledger.Save(ctx, domain.BuildRun{ID: "b", StartedAt: base.Add(time.Hour)}))

	runs, err := ledger.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{runs[0].ID, runs[1].ID, runs[2].ID})

	runs, err = ledger.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "c", runs[0].ID)

	assert.NoError(t, ledger.Close())
}
