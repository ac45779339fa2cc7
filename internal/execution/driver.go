package execution

import (
	"time"

	"ctest/internal/discovery"
	"ctest/internal/domain"
)

// TestSource lists the registered tests in registration order
type TestSource interface {
	Tests() []*domain.Test
}

// Driver runs the selected tests one after another and reports on them.
// There is no timeout: a test that never returns stalls the run.
type Driver struct {
	source   TestSource
	runner   *Runner
	reporter Reporter
	clock    func() time.Time
}

var _ Executor = (*Driver)(nil)

// NewDriver creates a new Driver
func NewDriver(source TestSource, runner *Runner, reporter Reporter) *Driver {
	return &Driver{
		source:   source,
		runner:   runner,
		reporter: reporter,
		clock:    time.Now,
	}
}

// SetClock replaces the clock used for the run duration
func (d *Driver) SetClock(clock func() time.Time) {
	d.clock = clock
}

// Execute runs every test accepted by filter in registration order.
func (d *Driver) Execute(filter *discovery.Filter) *domain.Summary {
	tests := d.source.Tests()
	total := filter.Count(tests)

	summary := &domain.Summary{Total: total}
	d.reporter.Begin(total)
	start := d.clock()

	index := 1
	for _, t := range tests {
		if !filter.Accept(t) {
			continue
		}

		d.reporter.TestStarted(index, total, t)
		result := d.runner.Run(t, func(v any) { d.reporter.Crashed(t, v) })
		result.Index = index
		summary.Record(result)
		d.reporter.TestFinished(result)
		index++
	}

	summary.Duration = d.clock().Sub(start)
	d.reporter.End(summary)
	return summary
}
