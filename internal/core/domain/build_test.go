package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildRun_Duration(t *testing.T) {
	start := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	running := BuildRun{StartedAt: start, Status: BuildRunning}
	assert.Zero(t, running.Duration())

	done := BuildRun{StartedAt: start, FinishedAt: start.Add(1500 * time.Millisecond), Status: BuildSucceeded}
	assert.Equal(t, 1500*time.Millisecond, done.Duration())
}
