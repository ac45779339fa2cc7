package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"ctest/internal/domain"
)

// ProgressBar creates and manages progress bars
type ProgressBar struct {
	bar *progressbar.ProgressBar
	w   io.Writer
}

// NewProgressBar creates a new progress bar writing to w
func NewProgressBar(count int, w io.Writer) *ProgressBar {
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(describe(0, 0, 0)),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(w),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(w, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressBar{bar: bar, w: w}
}

func describe(passed, failed, skipped int) string {
	return color.CyanString("Running tests: ") +
		color.GreenString("[ok: %d", passed) +
		" | " +
		color.RedString("failed: %d", failed) +
		" | " +
		color.YellowString("skipped: %d]", skipped)
}

// Update updates the progress bar with the completed count and outcome counts
func (p *ProgressBar) Update(completed, passed, failed, skipped int) {
	p.bar.Set(completed)
	p.bar.Describe(describe(passed, failed, skipped))
}

// Clear removes the bar from the line so other output can be printed
func (p *ProgressBar) Clear() {
	p.bar.Clear()
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	p.bar.Finish()
}

// ProgressReporter shows a progress bar instead of a line per test. Failed
// tests and the summary are still printed in full by the console reporter.
type ProgressReporter struct {
	console   *ConsoleReporter
	barWriter io.Writer
	bar       *ProgressBar
	completed int
	passed    int
	failed    int
	skipped   int
}

// NewProgressReporter prints results to console and draws the bar on barWriter
func NewProgressReporter(console *ConsoleReporter, barWriter io.Writer) *ProgressReporter {
	return &ProgressReporter{console: console, barWriter: barWriter}
}

// Begin implements execution.Reporter.
func (p *ProgressReporter) Begin(total int) {
	p.bar = NewProgressBar(total, p.barWriter)
}

// TestStarted implements execution.Reporter.
func (p *ProgressReporter) TestStarted(index, total int, t *domain.Test) {}

// TestFinished updates the bar and prints failures
func (p *ProgressReporter) TestFinished(res domain.Result) {
	p.completed++
	switch res.Outcome {
	case domain.Passed:
		p.passed++
	case domain.Failed:
		p.failed++
		p.bar.Clear()
		p.console.TestStarted(res.Index, p.bar.bar.GetMax(), res.Test)
		p.console.TestFinished(res)
	case domain.Skipped:
		p.skipped++
	}
	p.bar.Update(p.completed, p.passed, p.failed, p.skipped)
}

// Crashed implements execution.Reporter.
func (p *ProgressReporter) Crashed(t *domain.Test, v any) {
	p.bar.Clear()
	p.console.Crashed(t, v)
}

// End finishes the bar and prints the summary line
func (p *ProgressReporter) End(s *domain.Summary) {
	if p.bar != nil {
		p.bar.Finish()
	}
	p.console.End(s)
}
