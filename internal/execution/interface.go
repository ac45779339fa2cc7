package execution

import (
	"ctest/internal/discovery"
	"ctest/internal/domain"
)

// Executor executes the selected tests and returns the run summary
type Executor interface {
	Execute(filter *discovery.Filter) *domain.Summary
}

// Reporter is told about every step of a run
type Reporter interface {
	// Begin is called once with the number of selected tests
	Begin(total int)
	// TestStarted is called before a test (or its skip) is processed
	TestStarted(index, total int, t *domain.Test)
	// TestFinished is called with the outcome of the test
	TestFinished(r domain.Result)
	// Crashed is called before an unexpected panic is re-raised, only
	// when crash reporting is enabled
	Crashed(t *domain.Test, v any)
	// End is called once after the last test
	End(s *domain.Summary)
}

// SuiteFinder resolves a suite by name
type SuiteFinder interface {
	FindSuite(name string) *domain.Suite
}
