// Package ctest is an in-process test registry and sequential runner.
//
// Tests register themselves from package init functions:
//
//	func init() {
//		ctest.Add("Math", "Add", func() {
//			assert.Equal(5, add(2, 3))
//		})
//	}
//
// and the program's main hands control to the runner:
//
//	func main() {
//		os.Exit(ctest.Main(os.Args))
//	}
//
// Tests run one at a time in registration order. A failing assertion ends the
// test it is in, including the suite teardown, and the run moves on to the
// next test. There is no timeout: a test that never returns stalls the run.
//
// Registration order across packages follows Go's package initialization
// order and should not be relied upon. Registering the same suite and test
// name twice is allowed; both tests run.
package ctest

import (
	"os"

	"ctest/internal/capture"
	"ctest/internal/cli/commands"
	"ctest/internal/registry"
)

// Log adds a LOG line to the output of the running test
func Log(format string, args ...any) {
	capture.Logf(format, args...)
}

// Err adds an ERR line to the output of the running test and fails it.
// Err does not return.
func Err(format string, args ...any) {
	capture.Errorf(format, args...)
}

// Main parses args (usually os.Args), runs the selected tests and returns the
// number of failed tests. Bad flags or configuration print an error and
// return 2.
func Main(args []string) int {
	return commands.Execute(registry.Global(), args, os.Stdout, os.Stderr)
}
