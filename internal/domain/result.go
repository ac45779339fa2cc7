package domain

import "time"

// Outcome is the final state of a single test
type Outcome int

const (
	Passed Outcome = iota
	Failed
	Skipped
)

// String returns the label printed after a test line
func (o Outcome) String() string {
	switch o {
	case Passed:
		return "OK"
	case Failed:
		return "FAIL"
	case Skipped:
		return "SKIPPED"
	}
	return "UNKNOWN"
}

// Result represents the result of executing one test
type Result struct {
	Index     int           // 1-based position among selected tests
	Test      *Test         // The test that was executed
	Outcome   Outcome       // Passed, Failed or Skipped
	Output    string        // Contents of the message buffer (logs and errors)
	Truncated bool          // Whether Output was cut at the buffer capacity
	Failure   *Failure      // Set when the test failed
	Duration  time.Duration // Time taken to execute
}

// Summary contains the counters for a whole run
type Summary struct {
	Total    int
	Passed   int
	Failed   int
	Skipped  int
	Duration time.Duration
	Results  []Result
}

// Record adds a result to the summary and bumps the matching counter
func (s *Summary) Record(r Result) {
	switch r.Outcome {
	case Passed:
		s.Passed++
	case Failed:
		s.Failed++
	case Skipped:
		s.Skipped++
	}
	s.Results = append(s.Results, r)
}

// Failures returns the results that failed, in run order
func (s *Summary) Failures() []Result {
	var failed []Result
	for _, r := range s.Results {
		if r.Outcome == Failed {
			failed = append(failed, r)
		}
	}
	return failed
}
