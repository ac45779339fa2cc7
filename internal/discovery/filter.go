package discovery

import (
	"path/filepath"
	"strings"

	"ctest/internal/domain"
)

// Filter decides which registered tests take part in a run
type Filter struct {
	Prefix  string // Suite name prefix, empty accepts every suite
	Pattern string // Optional wildcard pattern over "suite:test"
}

// NewFilter creates a new Filter
func NewFilter(prefix, pattern string) *Filter {
	return &Filter{Prefix: prefix, Pattern: pattern}
}

// Accept reports whether the test is selected
func (f *Filter) Accept(t *domain.Test) bool {
	if !strings.HasPrefix(t.Suite, f.Prefix) {
		return false
	}
	return MatchName(t.FullName(), f.Pattern)
}

// Select returns the accepted tests, keeping registration order
func (f *Filter) Select(tests []*domain.Test) []*domain.Test {
	var selected []*domain.Test
	for _, t := range tests {
		if f.Accept(t) {
			selected = append(selected, t)
		}
	}
	return selected
}

// Count returns how many tests the filter accepts
func (f *Filter) Count(tests []*domain.Test) int {
	n := 0
	for _, t := range tests {
		if f.Accept(t) {
			n++
		}
	}
	return n
}

// MatchName matches a "suite:test" name against a wildcard pattern.
// Supports patterns like "Math:*" or "*Add*"; a pattern without wildcards
// matches as a substring.
func MatchName(name, pattern string) bool {
	if pattern == "" {
		return true
	}

	// Try to match using filepath.Match (supports * and ? wildcards)
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	// If pattern contains wildcards but filepath.Match didn't match,
	// try a more flexible match on the non-wildcard parts
	if strings.Contains(pattern, "*") {
		hasNonEmptyPart := false
		for _, part := range strings.Split(pattern, "*") {
			if part == "" {
				continue
			}
			hasNonEmptyPart = true
			if !strings.Contains(name, part) {
				return false
			}
		}
		return hasNonEmptyPart
	}

	// If no wildcards, do a simple contains check
	if !strings.Contains(pattern, "?") {
		return strings.Contains(name, pattern)
	}
	return false
}
