package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/exquisite-dentistry/sitegen/internal/core/domain"
)

const defaultRuleWidth = 60

// reportStyles renders command output. Styles only emit colour when the
// writer is a colour-capable terminal.
type reportStyles struct {
	title lipgloss.Style
	ok    lipgloss.Style
	warn  lipgloss.Style
	err   lipgloss.Style
	dim   lipgloss.Style
	width int
}

func newReportStyles(w io.Writer) reportStyles {
	r := lipgloss.NewRenderer(w)
	return reportStyles{
		title: r.NewStyle().Bold(true),
		ok:    r.NewStyle().Foreground(lipgloss.Color("2")),
		warn:  r.NewStyle().Foreground(lipgloss.Color("3")),
		err:   r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		dim:   r.NewStyle().Faint(true),
		width: terminalWidth(w),
	}
}

// terminalWidth returns the width of w when it is a terminal.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultRuleWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultRuleWidth
	}
	return min(width, 100)
}

func (s reportStyles) rule() string {
	return s.dim.Render(strings.Repeat("-", s.width))
}

// writeQualityReport lists every finding followed by a summary line.
func writeQualityReport(w io.Writer, report *domain.QualityReport) {
	st := newReportStyles(w)
	errs := report.Errors()
	warns := report.Warnings()

	fmt.Fprintln(w, st.title.Render("Content quality"))
	fmt.Fprintln(w, st.rule())
	for _, issue := range errs {
		fmt.Fprintf(w, "%s %s\n", st.err.Render("error"), issue.Message)
	}
	for _, issue := range warns {
		fmt.Fprintf(w, "%s  %s\n", st.warn.Render("warn"), issue.Message)
	}

	summary := fmt.Sprintf("%d error(s), %d warning(s)", len(errs), len(warns))
	switch {
	case len(errs) > 0:
		fmt.Fprintln(w, st.err.Render(summary))
	case len(warns) > 0:
		fmt.Fprintln(w, st.warn.Render(summary))
	default:
		fmt.Fprintln(w, st.ok.Render("All content passed: "+summary))
	}
}

// writeStepResult lists the files written by one step.
func writeStepResult(w io.Writer, result *domain.StepResult) {
	st := newReportStyles(w)
	fmt.Fprintf(w, "%s %s: %d item(s), %d file(s)\n",
		st.ok.Render("done"), result.Step, result.Count, len(result.Outputs))
	writeOutputs(w, st, result.Outputs)
}

func writeOutputs(w io.Writer, st reportStyles, outputs []domain.OutputFile) {
	for _, out := range outputs {
		fmt.Fprintf(w, "  %-48s %s\n", out.Path, st.dim.Render(formatBytes(out.Bytes)))
	}
}

// writeBuildRun summarises a pipeline run.
func writeBuildRun(w io.Writer, run *domain.BuildRun) {
	st := newReportStyles(w)

	status := st.ok.Render(string(run.Status))
	if run.Status != domain.BuildSucceeded {
		status = st.err.Render(string(run.Status))
	}

	fmt.Fprintln(w, st.title.Render("Build "+run.ID))
	fmt.Fprintln(w, st.rule())
	fmt.Fprintf(w, "Status:    %s\n", status)
	fmt.Fprintf(w, "Duration:  %s\n", run.Duration().Round(time.Millisecond))
	fmt.Fprintf(w, "Items:     %d\n", run.Items)
	fmt.Fprintf(w, "Routes:    %d\n", run.Routes)
	fmt.Fprintf(w, "Fallbacks: %d\n", run.Fallbacks)
	fmt.Fprintf(w, "Warnings:  %d\n", run.Warnings)
	if run.Error != "" {
		fmt.Fprintf(w, "Error:     %s\n", st.err.Render(run.Error))
	}
	if len(run.Outputs) > 0 {
		fmt.Fprintf(w, "Outputs:   %d file(s)\n", len(run.Outputs))
		writeOutputs(w, st, run.Outputs)
	}
}

// writeHistory prints one line per run.
func writeHistory(w io.Writer, runs []domain.BuildRun) {
	st := newReportStyles(w)
	if len(runs) == 0 {
		fmt.Fprintln(w, "No builds recorded.")
		return
	}

	fmt.Fprintln(w, st.title.Render(fmt.Sprintf("%-36s  %-19s  %-9s  %8s  %6s  %5s",
		"ID", "STARTED", "STATUS", "DURATION", "ROUTES", "ITEMS")))
	for i := range runs {
		run := &runs[i]
		fmt.Fprintf(w, "%-36s  %-19s  %-9s  %8s  %6d  %5d\n",
			run.ID,
			run.StartedAt.Local().Format("2006-01-02 15:04:05"),
			run.Status,
			run.Duration().Round(time.Millisecond),
			run.Routes,
			run.Items,
		)
	}
}

func formatBytes(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
