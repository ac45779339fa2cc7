// Package capture lets an assertion abort the running test body and hand
// control back to the runner, which then records the test as failed.
//
// Failures unwind the stack as a panic carrying a private value. Only Run
// recovers that value; anything deferred by the test body still runs, but
// code after the failing call (including a suite teardown that the runner
// would call on normal return) does not.
//
// There is a single active target. Tests run one at a time, so the runner
// arms the target before each test and disarms it afterwards.
package capture

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"ctest/internal/domain"
)

type abort struct {
	failure *domain.Failure
}

func (a *abort) Error() string {
	return "ctest: " + a.failure.Error() + " (assertion outside a running test)"
}

// Target receives the messages of the test that is currently running
type Target struct {
	buf      *Buffer
	errColor *color.Color
	logColor *color.Color
}

// NewTarget creates a target writing into buf. When colored is false the
// ERR and LOG entries are written without escape codes.
func NewTarget(buf *Buffer, colored bool) *Target {
	errColor := color.New(color.FgYellow)
	logColor := color.New(color.FgBlue)
	if colored {
		errColor.EnableColor()
		logColor.EnableColor()
	} else {
		errColor.DisableColor()
		logColor.DisableColor()
	}
	return &Target{buf: buf, errColor: errColor, logColor: logColor}
}

// Buffer returns the target's message buffer
func (t *Target) Buffer() *Buffer {
	return t.buf
}

var active *Target

// Arm resets the buffer and makes t the destination of Logf, Errorf and Fail
func (t *Target) Arm() {
	t.buf.Reset()
	active = t
}

// Disarm detaches t if it is the active target
func (t *Target) Disarm() {
	if active == t {
		active = nil
	}
}

// Active reports whether a target is armed
func Active() bool {
	return active != nil
}

func (t *Target) entry(c *color.Color, title, msg string) {
	c.Fprintf(t.buf, "  %s: %s", title, msg)
	t.buf.WriteString("\n")
}

// Logf appends a LOG entry for the running test. Outside a test the entry
// goes to stderr.
func Logf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if active == nil {
		fmt.Fprintf(os.Stderr, "  LOG: %s\n", msg)
		return
	}
	active.entry(active.logColor, "LOG", msg)
}

// Errorf appends an ERR entry and aborts the running test
func Errorf(format string, args ...any) {
	Fail(&domain.Failure{Message: fmt.Sprintf(format, args...)})
}

// Fail records f as the reason the running test failed and aborts it.
// It does not return.
func Fail(f *domain.Failure) {
	if active != nil {
		active.entry(active.errColor, "ERR", f.Error())
	}
	panic(&abort{failure: f})
}

// Run calls fn and returns the failure that aborted it, or nil if fn
// returned normally. Panics that did not come from Fail are passed to
// onPanic, when set, and then re-raised unchanged.
func Run(fn func(), onPanic func(v any)) (failure *domain.Failure) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if a, ok := r.(*abort); ok {
			failure = a.failure
			return
		}
		if onPanic != nil {
			onPanic(r)
		}
		panic(r)
	}()
	fn()
	return nil
}
