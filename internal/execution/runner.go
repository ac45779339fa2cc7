package execution

import (
	"runtime/debug"
	"time"

	"ctest/internal/capture"
	"ctest/internal/domain"
)

// Runner executes a single test under the capture protocol
type Runner struct {
	suites      SuiteFinder
	target      *capture.Target
	crashReport bool
}

// NewRunner creates a new Runner. When crashReport is set, memory faults
// inside a test are turned into panics and every unexpected panic is shown
// to the reporter before it is re-raised.
func NewRunner(suites SuiteFinder, target *capture.Target, crashReport bool) *Runner {
	return &Runner{
		suites:      suites,
		target:      target,
		crashReport: crashReport,
	}
}

// Run executes one test: setup, body, then teardown. A failed assertion
// anywhere in setup or body ends the test right there, so teardown only
// runs after a body that returned normally.
func (r *Runner) Run(t *domain.Test, onCrash func(any)) domain.Result {
	start := time.Now()
	r.target.Buffer().Reset()

	if t.Skip {
		return domain.Result{Test: t, Outcome: domain.Skipped}
	}

	r.target.Arm()
	defer r.target.Disarm()

	if r.crashReport {
		old := debug.SetPanicOnFault(true)
		defer debug.SetPanicOnFault(old)
	} else {
		onCrash = nil
	}

	failure := capture.Run(func() { r.execute(t) }, onCrash)

	result := domain.Result{
		Test:      t,
		Outcome:   domain.Passed,
		Output:    r.target.Buffer().String(),
		Truncated: r.target.Buffer().Truncated(),
		Duration:  time.Since(start),
	}
	if failure != nil {
		result.Outcome = domain.Failed
		result.Failure = failure
	}
	return result
}

func (r *Runner) execute(t *domain.Test) {
	suite := r.suites.FindSuite(t.Suite)

	if suite != nil && suite.Setup != nil && t.HasData() {
		suite.Setup(t.Data)
	}

	t.Invoke()

	// Not deferred: a failed test must skip its teardown.
	if suite != nil && suite.Teardown != nil && t.HasData() {
		suite.Teardown(t.Data)
	}
}
