package domain

import "time"

// BuildStep names one stage of the generation pipeline.
type BuildStep string

// Pipeline steps in execution order.
const (
	StepQuality     BuildStep = "quality"
	StepSearchIndex BuildStep = "search-index"
	StepPrerender   BuildStep = "prerender"
	StepFallbacks   BuildStep = "fallbacks"
	StepSitemap     BuildStep = "sitemap"
)

// BuildStatus is the outcome of a build run.
type BuildStatus string

// Build statuses.
const (
	BuildRunning   BuildStatus = "running"
	BuildSucceeded BuildStatus = "succeeded"
	BuildFailed    BuildStatus = "failed"
)

// OutputFile is one file written by a generation step.
type OutputFile struct {
	Step   BuildStep `json:"step"`
	Path   string    `json:"path"`
	Bytes  int       `json:"bytes"`
	SHA256 string    `json:"sha256"`
}

// BuildRun is a recorded invocation of the generation pipeline.
type BuildRun struct {
	ID         string       `json:"id"`
	StartedAt  time.Time    `json:"startedAt"`
	FinishedAt time.Time    `json:"finishedAt,omitempty"`
	Status     BuildStatus  `json:"status"`
	Error      string       `json:"error,omitempty"`
	Routes     int          `json:"routes"`
	Items      int          `json:"items"`
	Fallbacks  int          `json:"fallbacks"`
	Warnings   int          `json:"warnings"`
	Outputs    []OutputFile `json:"outputs,omitempty"`
}

// Duration returns how long the run took, or zero while it is running.
func (r *BuildRun) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// StepResult summarises one generation step.
type StepResult struct {
	Step    BuildStep    `json:"step"`
	Count   int          `json:"count"`
	Outputs []OutputFile `json:"outputs,omitempty"`
}
