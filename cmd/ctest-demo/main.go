// Command ctest-demo registers a few sample suites and runs them.
//
//	ctest-demo            run everything
//	ctest-demo Math       run the suites whose name starts with "Math"
//	ctest-demo --list     show the registered tests
package main

import (
	"os"

	"ctest"
)

func main() {
	os.Exit(ctest.Main(os.Args))
}
