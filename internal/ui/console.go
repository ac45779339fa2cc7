package ui

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/fatih/color"

	"ctest/internal/domain"
)

// palette holds the colors used for console output. Colors are switched on
// or off per palette so a run never depends on the global color.NoColor.
type palette struct {
	ok      *color.Color
	fail    *color.Color
	skip    *color.Color
	good    *color.Color
	suite   *color.Color
	muted   *color.Color
	colored bool
}

func newPalette(colored bool) *palette {
	p := &palette{
		ok:      color.New(color.FgGreen, color.Bold),
		fail:    color.New(color.FgRed, color.Bold),
		skip:    color.New(color.FgYellow, color.Bold),
		good:    color.New(color.FgGreen),
		suite:   color.New(color.FgCyan),
		muted:   color.New(color.FgHiBlack),
		colored: colored,
	}
	for _, c := range []*color.Color{p.ok, p.fail, p.skip, p.good, p.suite, p.muted} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// line prints text in color c followed by a newline outside the color codes
func line(w io.Writer, c *color.Color, text string) {
	c.Fprint(w, text)
	fmt.Fprintln(w)
}

// ConsoleReporter prints one line per test and a final summary line:
//
//	TEST 1/2 Math:Add [OK]
//	TEST 2/2 Math:Sub [FAIL]
//	  ERR: math_test.go:20  expected 5, got 4
//	RESULTS: 2 tests (1 ok, 1 failed, 0 skipped) ran in 0 ms
type ConsoleReporter struct {
	out     io.Writer
	colors  *palette
	colorOK bool
}

// NewConsoleReporter creates a reporter writing to out
func NewConsoleReporter(out io.Writer, colored, colorOK bool) *ConsoleReporter {
	return &ConsoleReporter{
		out:     out,
		colors:  newPalette(colored),
		colorOK: colorOK,
	}
}

// Begin implements execution.Reporter.
func (r *ConsoleReporter) Begin(total int) {}

// TestStarted prints the test header, left open for the outcome
func (r *ConsoleReporter) TestStarted(index, total int, t *domain.Test) {
	fmt.Fprintf(r.out, "TEST %d/%d %s:%s ", index, total, t.Suite, t.Name)
}

// TestFinished prints the outcome and any buffered messages
func (r *ConsoleReporter) TestFinished(res domain.Result) {
	switch res.Outcome {
	case domain.Skipped:
		line(r.out, r.colors.skip, "[SKIPPED]")
		return
	case domain.Passed:
		if r.colorOK {
			line(r.out, r.colors.ok, "[OK]")
		} else {
			fmt.Fprintln(r.out, "[OK]")
		}
	case domain.Failed:
		line(r.out, r.colors.fail, "[FAIL]")
	}

	if res.Output != "" {
		io.WriteString(r.out, res.Output)
		if !strings.HasSuffix(res.Output, "\n") {
			fmt.Fprintln(r.out)
		}
	}
	if res.Truncated {
		line(r.out, r.colors.muted, "  [message truncated]")
	}
}

// Crashed prints a marker for a panic that is about to take the process down
func (r *ConsoleReporter) Crashed(t *domain.Test, v any) {
	line(r.out, r.colors.fail, CrashMarker(v))
}

// End prints the summary line
func (r *ConsoleReporter) End(s *domain.Summary) {
	c := r.colors.good
	if s.Failed > 0 {
		c = r.colors.fail
	}
	line(r.out, c, SummaryLine(s))
}

// SummaryLine formats the final RESULTS line
func SummaryLine(s *domain.Summary) string {
	return fmt.Sprintf("RESULTS: %d tests (%d ok, %d failed, %d skipped) ran in %d ms",
		s.Total, s.Passed, s.Failed, s.Skipped, s.Duration.Milliseconds())
}

// CrashMarker describes an unexpected panic value
func CrashMarker(v any) string {
	if isMemoryFault(v) {
		return "[SIGSEGV: Segmentation fault]"
	}
	return fmt.Sprintf("[PANIC: %v]", v)
}

func isMemoryFault(v any) bool {
	err, ok := v.(runtime.Error)
	if !ok {
		return false
	}
	if _, ok := err.(interface{ Addr() uintptr }); ok {
		return true
	}
	return strings.Contains(err.Error(), "invalid memory address")
}
