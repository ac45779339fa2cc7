package ui

import (
	"strings"
	"testing"

	"ctest/internal/domain"
)

func failedResult() domain.Result {
	return domain.Result{
		Index:   7,
		Test:    &domain.Test{Suite: "Math", Name: "Sub", File: "math_test.go", Line: 30},
		Outcome: domain.Failed,
		Output:  "  LOG: before\n  ERR: math_test.go:33  expected 5, got 4\n",
		Failure: &domain.Failure{File: "math_test.go", Line: 33, Message: "expected 5, got 4"},
	}
}

func TestFormatFailureDetails(t *testing.T) {
	details := formatFailureDetails(failedResult())

	for _, want := range []string{
		"✗ Test: Math:Sub",
		"Registered: math_test.go:30",
		"Location: math_test.go:33",
		"expected 5, got 4",
		"LOG: before",
	} {
		if !strings.Contains(details, want) {
			t.Errorf("expected details to contain %q, got:\n%s", want, details)
		}
	}
	if strings.Contains(details, "truncated") {
		t.Error("did not expect a truncation note")
	}
}

func TestFormatFailureDetails_CustomError(t *testing.T) {
	r := failedResult()
	r.Failure = &domain.Failure{Message: "custom [tag] message"}
	r.Truncated = true

	details := formatFailureDetails(r)

	if strings.Contains(details, "Location:") {
		t.Error("custom errors have no location")
	}
	if !strings.Contains(details, "message truncated") {
		t.Error("expected truncation note")
	}
	if !strings.Contains(details, "custom [tag[] message") {
		t.Errorf("expected brackets to be escaped for tview, got:\n%s", details)
	}
}

func TestFormatFailureStats(t *testing.T) {
	stats := formatFailureStats(failedResult())

	if !strings.Contains(stats, "[yellow]Math[white]") || !strings.Contains(stats, "[yellow]Sub[white]") {
		t.Errorf("unexpected stats line: %s", stats)
	}
	if !strings.Contains(stats, "#[white]7") {
		t.Errorf("expected index in stats line: %s", stats)
	}
}

func TestListItemText(t *testing.T) {
	r := failedResult()

	if got := listItemText(r, false); got != "[yellow]7.[white] Math:Sub" {
		t.Errorf("unexpected item text %q", got)
	}
	if got := listItemText(r, true); !strings.HasPrefix(got, "[gray]✓") {
		t.Errorf("expected reviewed marker, got %q", got)
	}
}

func TestFailureBrowser_NoFailures(t *testing.T) {
	s := &domain.Summary{Total: 1}
	s.Record(domain.Result{Index: 1, Test: &domain.Test{Suite: "A", Name: "b"}, Outcome: domain.Passed})

	if err := NewFailureBrowser().View(s); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
