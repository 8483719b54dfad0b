// Package cli renders reports to the terminal. Glyphs and colors are pure
// mappings from status values, kept out of the domain types.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/kagebunshin/kbdiag/internal/domain"
	"github.com/kagebunshin/kbdiag/internal/ports"
)

// ErrRunFailed signals that the run completed but its outcome counts as a
// failure; main maps it to exit code 1 without printing anything extra.
var ErrRunFailed = errors.New("run failed")

const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiRed    = "\033[91m"
	ansiGreen  = "\033[92m"
	ansiYellow = "\033[93m"

	ruleWidth = 50
)

func statusGlyph(status domain.HealthStatus) string {
	switch status {
	case domain.StatusOK:
		return "✓"
	case domain.StatusWarn:
		return "!"
	default:
		return "✗"
	}
}

func statusColor(status domain.HealthStatus) string {
	switch status {
	case domain.StatusOK:
		return ansiGreen
	case domain.StatusWarn:
		return ansiYellow
	default:
		return ansiRed
	}
}

func probeGlyph(passed bool) string {
	if passed {
		return "✓"
	}
	return "✗"
}

func probeStatus(passed bool) string {
	if passed {
		return "PASS"
	}
	return "FAIL"
}

func probeColor(passed bool) string {
	if passed {
		return ansiGreen
	}
	return ansiRed
}

// Renderer writes reports to out. Color is enabled only when out is a
// terminal.
type Renderer struct {
	out     io.Writer
	colors  bool
	spinner *Spinner
}

// NewRenderer builds a renderer for the given writer, auto-detecting TTY
// support for color and spinner output.
func NewRenderer(out io.Writer) *Renderer {
	colors := false
	if f, isFile := out.(*os.File); isFile {
		colors = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Renderer{out: out, colors: colors}
}

func (r *Renderer) paint(color, s string) string {
	if !r.colors {
		return s
	}
	return color + s + ansiReset
}

// HealthReport renders the status table plus the overall rollup line and
// returns true iff the run had no failures.
func (r *Renderer) HealthReport(report domain.HealthReport) bool {
	fmt.Fprintf(r.out, "\n%s\n", r.paint(ansiBold, "KAGE BUNSHIN ENVIRONMENT STATUS"))
	fmt.Fprintln(r.out, strings.Repeat("=", ruleWidth))
	fmt.Fprintf(r.out, "%-22s %-8s %s\n", "Component", "Status", "Details")
	fmt.Fprintln(r.out, strings.Repeat("-", ruleWidth))

	for _, res := range report.Results {
		status := fmt.Sprintf("%s %-5s", statusGlyph(res.Status), res.Status)
		fmt.Fprintf(r.out, "%-22s %s %s\n",
			res.Component,
			r.paint(statusColor(res.Status), status),
			truncate(res.Details, 40))
	}

	fmt.Fprintln(r.out, strings.Repeat("-", ruleWidth))

	switch report.Overall() {
	case domain.OverallHealthy:
		fmt.Fprintln(r.out, r.paint(ansiGreen+ansiBold, "Overall: HEALTHY"))
	case domain.OverallDegraded:
		fmt.Fprintln(r.out, r.paint(ansiYellow+ansiBold,
			fmt.Sprintf("Overall: DEGRADED (%d warnings)", report.Warns())))
	default:
		fmt.Fprintln(r.out, r.paint(ansiRed+ansiBold,
			fmt.Sprintf("Overall: UNHEALTHY (%d failures)", report.Fails())))
	}
	fmt.Fprintln(r.out)

	return report.Healthy()
}

// SmokeReport renders one model's probe table and summary, returning true
// iff every probe passed.
func (r *Renderer) SmokeReport(report domain.ProbeReport) bool {
	fmt.Fprintf(r.out, "\n%s\n", r.paint(ansiBold, "OLLAMA SMOKE TEST RESULTS"))
	fmt.Fprintln(r.out, strings.Repeat("=", ruleWidth))
	fmt.Fprintf(r.out, "Model: %s\n", report.Model)
	fmt.Fprintf(r.out, "Host: %s\n", report.Host)
	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "%-18s %-8s %-8s %s\n", "Probe", "Result", "Time", "Details")
	fmt.Fprintln(r.out, strings.Repeat("-", ruleWidth))

	for _, res := range report.Results {
		fmt.Fprintf(r.out, "%-18s %s %5.1fs   %s\n",
			res.Name,
			r.paint(probeColor(res.Passed), fmt.Sprintf("%-6s", probeStatus(res.Passed))),
			res.Duration.Seconds(),
			truncate(res.Details, 30))
	}

	fmt.Fprintln(r.out, strings.Repeat("-", ruleWidth))

	passed, total := report.Passed(), report.Total()
	summary := fmt.Sprintf("Summary: %d/%d passed (%.0f%%)", passed, total, report.PassRate())
	switch {
	case total > 0 && passed == total:
		fmt.Fprintln(r.out, r.paint(ansiGreen+ansiBold, summary))
	case passed > 0:
		fmt.Fprintln(r.out, r.paint(ansiYellow+ansiBold, summary))
	default:
		fmt.Fprintln(r.out, r.paint(ansiRed+ansiBold, summary))
	}
	fmt.Fprintf(r.out, "Total time: %.1fs\n\n", report.TotalDuration().Seconds())

	return report.AllPassed()
}

// ModelListing announces an all-models run.
func (r *Renderer) ModelListing(models []domain.ModelInfo) {
	fmt.Fprintf(r.out, "Testing %d models...\n", len(models))
}

// ModelHeader announces one model in an all-models run, with its size when
// the runtime reported one.
func (r *Renderer) ModelHeader(model domain.ModelInfo) {
	if model.Size > 0 {
		fmt.Fprintf(r.out, "\n--- Testing %s (%s) ---\n", model.Name, humanize.Bytes(uint64(model.Size)))
		return
	}
	fmt.Fprintf(r.out, "\n--- Testing %s ---\n", model.Name)
}

// ProbeStarted implements ports.ProgressReporter: spin while the generation
// request is in flight (TTY only).
func (r *Renderer) ProbeStarted(string) {
	if !r.colors {
		return
	}
	r.spinner = NewSpinner(r.out)
	r.spinner.Start()
}

// ProbeFinished stops the spinner and prints the per-probe progress line.
func (r *Renderer) ProbeFinished(res domain.ProbeResult) {
	if r.spinner != nil {
		r.spinner.Stop()
		r.spinner = nil
	}
	fmt.Fprintf(r.out, "  %s %s: %s (%.1fs)\n",
		r.paint(probeColor(res.Passed), probeGlyph(res.Passed)),
		res.Name,
		probeStatus(res.Passed),
		res.Duration.Seconds())
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

var _ ports.ProgressReporter = (*Renderer)(nil)
