package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"

	"ctest/internal/domain"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)
}

func replay(r *ConsoleReporter, s *domain.Summary) {
	r.Begin(s.Total)
	for _, res := range s.Results {
		r.TestStarted(res.Index, s.Total, res.Test)
		r.TestFinished(res)
	}
	r.End(s)
}

func TestConsoleReporter_Run(t *testing.T) {
	s := &domain.Summary{Total: 3, Duration: 12*time.Millisecond + 900*time.Microsecond}
	s.Record(domain.Result{Index: 1, Test: &domain.Test{Suite: "Math", Name: "Add"}, Outcome: domain.Passed})
	s.Record(domain.Result{
		Index:   2,
		Test:    &domain.Test{Suite: "Math", Name: "Sub"},
		Outcome: domain.Failed,
		Output:  "  ERR: math_test.go:20  expected 5, got 4\n",
		Failure: &domain.Failure{File: "math_test.go", Line: 20, Message: "expected 5, got 4"},
	})
	s.Record(domain.Result{Index: 3, Test: &domain.Test{Suite: "Str", Name: "Concat", Skip: true}, Outcome: domain.Skipped})

	var buf bytes.Buffer
	replay(NewConsoleReporter(&buf, false, false), s)

	newGoldie(t).Assert(t, "console_run", buf.Bytes())
}

func TestConsoleReporter_LogsAndTruncation(t *testing.T) {
	s := &domain.Summary{Total: 2}
	s.Record(domain.Result{
		Index:   1,
		Test:    &domain.Test{Suite: "Net", Name: "Connect"},
		Outcome: domain.Passed,
		Output:  "  LOG: connecting\n",
	})
	s.Record(domain.Result{
		Index:     2,
		Test:      &domain.Test{Suite: "Net", Name: "Big"},
		Outcome:   domain.Failed,
		Output:    "  ERR: x.go:1  aaaaaaaa",
		Truncated: true,
	})

	var buf bytes.Buffer
	replay(NewConsoleReporter(&buf, false, false), s)

	newGoldie(t).Assert(t, "console_logs", buf.Bytes())
}

func TestConsoleReporter_Colors(t *testing.T) {
	s := &domain.Summary{Total: 1}
	s.Record(domain.Result{Index: 1, Test: &domain.Test{Suite: "A", Name: "b"}, Outcome: domain.Passed})

	t.Run("ok uncolored by default", func(t *testing.T) {
		var buf bytes.Buffer
		replay(NewConsoleReporter(&buf, true, false), s)
		lines := strings.Split(buf.String(), "\n")
		assert.Equal(t, "TEST 1/1 A:b [OK]", lines[0])
		assert.Contains(t, lines[1], "\x1b[32m", "summary is green without failures")
	})

	t.Run("color ok", func(t *testing.T) {
		var buf bytes.Buffer
		replay(NewConsoleReporter(&buf, true, true), s)
		assert.Contains(t, strings.Split(buf.String(), "\n")[0], "\x1b[")
	})

	t.Run("never colored when disabled", func(t *testing.T) {
		var buf bytes.Buffer
		replay(NewConsoleReporter(&buf, false, true), s)
		assert.NotContains(t, buf.String(), "\x1b[")
	})
}

func TestConsoleReporter_Crashed(t *testing.T) {
	var buf bytes.Buffer
	r := NewConsoleReporter(&buf, false, false)
	test := &domain.Test{Suite: "C", Name: "boom"}

	r.TestStarted(1, 1, test)
	r.Crashed(test, "kaboom")

	assert.Equal(t, "TEST 1/1 C:boom [PANIC: kaboom]\n", buf.String())
}

var sink string

func TestCrashMarker(t *testing.T) {
	var nilMap map[string]int
	memoryFault := func() (v any) {
		defer func() { v = recover() }()
		var p *domain.Test
		sink = p.Name
		return nil
	}()
	assignFault := func() (v any) {
		defer func() { v = recover() }()
		nilMap["x"] = 1
		return nil
	}()

	assert.Equal(t, "[SIGSEGV: Segmentation fault]", CrashMarker(memoryFault))
	assert.Equal(t, "[PANIC: assignment to entry in nil map]", CrashMarker(assignFault))
	assert.Equal(t, "[PANIC: plain]", CrashMarker(errors.New("plain")))
}

func TestSummaryLine(t *testing.T) {
	s := &domain.Summary{Total: 4, Passed: 2, Failed: 1, Skipped: 1, Duration: 2500 * time.Millisecond}
	assert.Equal(t, "RESULTS: 4 tests (2 ok, 1 failed, 1 skipped) ran in 2500 ms", SummaryLine(s))
}
