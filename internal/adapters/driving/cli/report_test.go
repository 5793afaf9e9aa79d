package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/exquisite-dentistry/sitegen/internal/core/domain"
)

func TestWriteQualityReport(t *testing.T) {
	tests := []struct {
		name   string
		report *domain.QualityReport
		want   []string
	}{
		{
			name:   "clean",
			report: &domain.QualityReport{},
			want:   []string{"All content passed: 0 error(s), 0 warning(s)"},
		},
		{
			name: "warnings only",
			report: &domain.QualityReport{Issues: []domain.QualityIssue{
				{Severity: domain.SeverityWarn, Message: `Service "/veneers" contains 90 words (< 150).`},
			}},
			want: []string{"warn", `contains 90 words`, "0 error(s), 1 warning(s)"},
		},
		{
			name: "errors",
			report: &domain.QualityReport{Issues: []domain.QualityIssue{
				{Severity: domain.SeverityError, Message: `Location "x" is missing seo.title.`},
			}},
			want: []string{"error", "is missing seo.title.", "1 error(s), 0 warning(s)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			writeQualityReport(buf, tt.report)
			for _, s := range tt.want {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}

func TestWriteBuildRun(t *testing.T) {
	start := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	run := &domain.BuildRun{
		ID:         "run-1",
		StartedAt:  start,
		FinishedAt: start.Add(1500 * time.Millisecond),
		Status:     domain.BuildFailed,
		Error:      "prerender: template missing",
		Routes:     3,
		Outputs:    []domain.OutputFile{{Path: "public/search-index.json", Bytes: 2048}},
	}

	buf := new(bytes.Buffer)
	writeBuildRun(buf, run)

	out := buf.String()
	assert.Contains(t, out, "Build run-1")
	assert.Contains(t, out, "Status:    failed")
	assert.Contains(t, out, "Duration:  1.5s")
	assert.Contains(t, out, "Routes:    3")
	assert.Contains(t, out, "Error:     prerender: template missing")
	assert.Contains(t, out, "public/search-index.json")
	assert.Contains(t, out, "2.0 KB")
}

func TestWriteHistory_Empty(t *testing.T) {
	buf := new(bytes.Buffer)
	writeHistory(buf, nil)
	assert.Equal(t, "No builds recorded.\n", buf.String())
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", formatBytes(512))
	assert.Equal(t, "1.5 KB", formatBytes(1536))
	assert.Equal(t, "2.0 MB", formatBytes(2<<20))
}

func TestTerminalWidth_NonTerminal(t *testing.T) {
	assert.Equal(t, defaultRuleWidth, terminalWidth(new(bytes.Buffer)))
}
