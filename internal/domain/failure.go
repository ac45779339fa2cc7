package domain

import "fmt"

// Failure describes why a test was aborted
type Failure struct {
	File    string // Source file of the failing assertion, empty for custom errors
	Line    int
	Message string
}

// Location returns "file:line", or an empty string when unknown
func (f *Failure) Location() string {
	if f.File == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d", f.File, f.Line)
}

// Error implements the error interface.
func (f *Failure) Error() string {
	if loc := f.Location(); loc != "" {
		return loc + "  " + f.Message
	}
	return f.Message
}
