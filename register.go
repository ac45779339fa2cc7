package ctest

import (
	"path/filepath"
	"runtime"

	"ctest/internal/capture"
	"ctest/internal/domain"
	"ctest/internal/registry"
)

// Add registers a test. It returns true so it can also be used as
// var _ = ctest.Add(...) at package level.
func Add(suite, name string, fn func()) bool {
	return register(registry.Global(), &domain.Test{Suite: suite, Name: name, Run: fn})
}

// Skip registers a test that is reported as skipped and never run
func Skip(suite, name string, fn func()) bool {
	return register(registry.Global(), &domain.Test{Suite: suite, Name: name, Run: fn, Skip: true})
}

// AddFixture registers a test that receives a *T. The value is allocated
// zeroed once, here, and the same value is passed to the suite's setup, the
// test and the suite's teardown on every run.
func AddFixture[T any](suite, name string, fn func(*T)) bool {
	return register(registry.Global(), fixtureTest(suite, name, fn))
}

// SkipFixture registers a fixture test that is reported as skipped
func SkipFixture[T any](suite, name string, fn func(*T)) bool {
	t := fixtureTest(suite, name, fn)
	t.Skip = true
	return register(registry.Global(), t)
}

// Setup sets the hook run before each fixture test of suite. Setup and
// Teardown may be declared in any order; they end up on the same suite.
func Setup[T any](suite string, fn func(*T)) bool {
	registry.Global().UpdateSuite(suite, func(s *domain.Suite) {
		s.Setup = unary(fn)
	})
	return true
}

// Teardown sets the hook run after each fixture test of suite that passed
func Teardown[T any](suite string, fn func(*T)) bool {
	registry.Global().UpdateSuite(suite, func(s *domain.Suite) {
		s.Teardown = unary(fn)
	})
	return true
}

func fixtureTest[T any](suite, name string, fn func(*T)) *domain.Test {
	return &domain.Test{
		Suite:   suite,
		Name:    name,
		RunData: unary(fn),
		Data:    new(T),
	}
}

// unary adapts a typed hook or test to the untyped data the runner passes
func unary[T any](fn func(*T)) func(any) {
	return func(data any) {
		v, ok := data.(*T)
		if !ok {
			capture.Errorf("fixture type mismatch: expected %T, got %T", (*T)(nil), data)
		}
		fn(v)
	}
}

// register records where the exported caller was called from and adds t
func register(reg *registry.Registry, t *domain.Test) bool {
	if _, file, line, ok := runtime.Caller(2); ok {
		t.File = filepath.Base(file)
		t.Line = line
	}
	reg.AddTest(t)
	return true
}
