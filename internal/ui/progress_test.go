package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"ctest/internal/domain"
)

func TestProgressReporter(t *testing.T) {
	var out, bar bytes.Buffer
	r := NewProgressReporter(NewConsoleReporter(&out, false, false), &bar)

	s := &domain.Summary{Total: 3}
	s.Record(domain.Result{Index: 1, Test: &domain.Test{Suite: "P", Name: "ok"}, Outcome: domain.Passed})
	s.Record(domain.Result{
		Index:   2,
		Test:    &domain.Test{Suite: "P", Name: "bad"},
		Outcome: domain.Failed,
		Output:  "  ERR: p.go:3  should be true\n",
	})
	s.Record(domain.Result{Index: 3, Test: &domain.Test{Suite: "P", Name: "later", Skip: true}, Outcome: domain.Skipped})

	r.Begin(s.Total)
	for _, res := range s.Results {
		r.TestStarted(res.Index, s.Total, res.Test)
		r.TestFinished(res)
	}
	r.End(s)

	// Only the failure and the summary reach the console.
	assert.Equal(t,
		"TEST 2/3 P:bad [FAIL]\n  ERR: p.go:3  should be true\nRESULTS: 3 tests (1 ok, 1 failed, 1 skipped) ran in 0 ms\n",
		out.String())

	assert.NotEmpty(t, bar.String())
	assert.Equal(t, 3, r.completed)
	assert.Equal(t, 1, r.passed)
	assert.Equal(t, 1, r.failed)
	assert.Equal(t, 1, r.skipped)
}
