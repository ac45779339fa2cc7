// Package assert holds the assertions used inside ctest tests.
//
// A failing assertion writes "file:line  message" to the output of the running
// test and ends the test immediately; the suite teardown is not run. Calling
// an assertion outside a running test panics.
package assert

import (
	"bytes"
	"fmt"
	"math"
	"path/filepath"
	"reflect"
	"runtime"

	"github.com/google/go-cmp/cmp"

	"ctest/internal/capture"
	"ctest/internal/domain"
)

// DefaultTolerance is the tolerance of DblNear and DblFar
const DefaultTolerance = 1e-4

// Signed is satisfied by the signed integer types
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is satisfied by the unsigned integer types
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// fail aborts the running test, blaming the caller of the exported assertion
func fail(format string, args ...any) {
	f := &domain.Failure{Message: fmt.Sprintf(format, args...)}
	if _, file, line, ok := runtime.Caller(2); ok {
		f.File = filepath.Base(file)
		f.Line = line
	}
	capture.Fail(f)
}

// Equal fails unless real == exp
func Equal[T Signed](exp, real T) {
	if exp != real {
		fail("expected %d, got %d", exp, real)
	}
}

// EqualU fails unless real == exp
func EqualU[T Unsigned](exp, real T) {
	if exp != real {
		fail("expected %d, got %d", exp, real)
	}
}

// NotEqual fails if real == exp
func NotEqual[T Signed](exp, real T) {
	if exp == real {
		fail("should not be %d", real)
	}
}

// NotEqualU fails if real == exp
func NotEqualU[T Unsigned](exp, real T) {
	if exp == real {
		fail("should not be %d", real)
	}
}

// Interval fails unless lo <= real <= hi
func Interval[T Signed](lo, hi, real T) {
	if real < lo || real > hi {
		fail("expected %d-%d, got %d", lo, hi, real)
	}
}

// Str fails unless the strings are equal
func Str(exp, real string) {
	if exp != real {
		fail("expected '%s', got '%s'", exp, real)
	}
}

// StrPtr compares two optional strings. Two nils are equal; a nil and a
// non-nil string are not, even when the string is empty.
func StrPtr(exp, real *string) {
	if exp == nil && real == nil {
		return
	}
	if exp == nil || real == nil || *exp != *real {
		fail("expected '%s', got '%s'", strOrNil(exp), strOrNil(real))
	}
}

func strOrNil(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return *s
}

// WStr compares two rune strings with the same nil rule as StrPtr
func WStr(exp, real []rune) {
	if (exp == nil) != (real == nil) || string(exp) != string(real) {
		fail("expected '%s', got '%s'", runesOrNil(exp), runesOrNil(real))
	}
}

func runesOrNil(r []rune) string {
	if r == nil {
		return "<nil>"
	}
	return string(r)
}

// Data compares two byte slices. A length mismatch is reported before any
// content difference.
func Data(exp, real []byte) {
	if len(exp) != len(real) {
		fail("expected %d bytes, got %d", len(exp), len(real))
	}
	if bytes.Equal(exp, real) {
		return
	}
	for i := range exp {
		if exp[i] != real[i] {
			fail("expected 0x%02x at offset %d got 0x%02x", exp[i], i, real[i])
		}
	}
}

// near reports whether real is within tol of exp. NaN is never near anything.
func near(exp, real, tol float64) (diff float64, ok bool) {
	diff = exp - real
	return diff, math.Abs(diff) <= tol
}

// DblNear fails unless real is within DefaultTolerance of exp
func DblNear(exp, real float64) {
	if diff, ok := near(exp, real, DefaultTolerance); !ok {
		fail("expected %0.3e, got %0.3e (diff %0.3e, tol %0.3e)", exp, real, diff, DefaultTolerance)
	}
}

// DblNearTol fails unless real is within tol of exp
func DblNearTol(exp, real, tol float64) {
	if diff, ok := near(exp, real, tol); !ok {
		fail("expected %0.3e, got %0.3e (diff %0.3e, tol %0.3e)", exp, real, diff, tol)
	}
}

// DblFar fails if real is within DefaultTolerance of exp
func DblFar(exp, real float64) {
	if diff, ok := near(exp, real, DefaultTolerance); ok {
		fail("expected %0.3e, got %0.3e (diff %0.3e, tol %0.3e)", exp, real, diff, DefaultTolerance)
	}
}

// DblFarTol fails if real is within tol of exp
func DblFarTol(exp, real, tol float64) {
	if diff, ok := near(exp, real, tol); ok {
		fail("expected %0.3e, got %0.3e (diff %0.3e, tol %0.3e)", exp, real, diff, tol)
	}
}

// isNil also catches typed nils such as a nil *T stored in an interface
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// Null fails unless v is nil
func Null(v any) {
	if !isNil(v) {
		fail("should be NULL")
	}
}

// NotNull fails if v is nil
func NotNull(v any) {
	if isNil(v) {
		fail("should not be NULL")
	}
}

// True fails unless b is true
func True(b bool) {
	if !b {
		fail("should be true")
	}
}

// False fails unless b is false
func False(b bool) {
	if b {
		fail("should be false")
	}
}

// Fail marks code that should be unreachable
func Fail() {
	fail("shouldn't come here")
}

// DeepEqual fails unless exp and real are equal according to go-cmp
func DeepEqual(exp, real any, opts ...cmp.Option) {
	if diff := cmp.Diff(exp, real, opts...); diff != "" {
		fail("mismatch (-expected +got):\n%s", diff)
	}
}
