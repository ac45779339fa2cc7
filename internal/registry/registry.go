package registry

import (
	"sync"

	"ctest/internal/domain"
)

// Registry holds the registered tests in registration order, and the suites
// their hooks belong to.
//
// Tests are normally registered from package init functions, so the order
// within a package follows file order and the order across packages follows
// Go's package initialization order. Callers should not rely on the latter.
// Tests with the same suite and test name are kept and run separately.
type Registry struct {
	mu     sync.Mutex
	tests  []*domain.Test
	suites SuiteIndex
}

// New creates an empty Registry
func New() *Registry {
	return &Registry{}
}

var global = New()

// Global returns the process-wide registry populated by ctest.Add and friends
func Global() *Registry {
	return global
}

// AddTest appends a test to the end of the registry
func (r *Registry) AddTest(t *domain.Test) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tests = append(r.tests, t)
}

// Tests returns a snapshot of the registered tests in registration order
func (r *Registry) Tests() []*domain.Test {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Test, len(r.tests))
	copy(out, r.tests)
	return out
}

// Len returns the number of registered tests
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tests)
}

// FindSuite looks up a suite by name, returning nil when none was registered
func (r *Registry) FindSuite(name string) *domain.Suite {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.suites.Find(name)
}

// EmplaceSuite returns the suite already registered under s.Name, or
// registers s. Setup and teardown declared separately meet here.
func (r *Registry) EmplaceSuite(s *domain.Suite) *domain.Suite {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.suites.Emplace(s)
}

// UpdateSuite emplaces a suite called name and applies fn to it under the lock
func (r *Registry) UpdateSuite(name string, fn func(*domain.Suite)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(r.suites.Emplace(&domain.Suite{Name: name}))
}

// SuiteCount returns the number of distinct suites
func (r *Registry) SuiteCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.suites.Len()
}
