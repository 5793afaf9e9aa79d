package domain

import "fmt"

// IssueSeverity classifies a content-quality finding.
type IssueSeverity string

// Issue severities. Errors fail the build, warnings are only reported.
const (
	SeverityError IssueSeverity = "error"
	SeverityWarn  IssueSeverity = "warn"
)

// QualityIssue is a single content-quality finding.
type QualityIssue struct {
	Severity IssueSeverity `json:"type"`
	Message  string        `json:"message"`
}

// QualityReport collects the findings of one content-quality run.
type QualityReport struct {
	Issues []QualityIssue `json:"issues"`
}

// AddError records an error finding.
func (r *QualityReport) AddError(message string) {
	r.Issues = append(r.Issues, QualityIssue{Severity: SeverityError, Message: message})
}

// AddWarn records a warning finding.
func (r *QualityReport) AddWarn(message string) {
	r.Issues = append(r.Issues, QualityIssue{Severity: SeverityWarn, Message: message})
}

// Errors returns the error findings in report order.
func (r *QualityReport) Errors() []QualityIssue {
	return r.filter(SeverityError)
}

// Warnings returns the warning findings in report order.
func (r *QualityReport) Warnings() []QualityIssue {
	return r.filter(SeverityWarn)
}

// HasErrors reports whether the run should fail.
func (r *QualityReport) HasErrors() bool {
	return len(r.Errors()) > 0
}

func (r *QualityReport) filter(severity IssueSeverity) []QualityIssue {
	var out []QualityIssue
	for _, issue := range r.Issues {
		if issue.Severity == severity {
			out = append(out, issue)
		}
	}
	return out
}

// QualityError is returned when a report contains errors.
// It matches ErrQualityFailed with errors.Is.
type QualityError struct {
	Report *QualityReport
}

func (e *QualityError) Error() string {
	return fmt.Sprintf("%s: %d error(s)", ErrQualityFailed, len(e.Report.Errors()))
}

// Is reports whether target is ErrQualityFailed.
func (e *QualityError) Is(target error) bool {
	return target == ErrQualityFailed
}
