package ui

import (
	"fmt"
	"io"

	"ctest/internal/domain"
)

// Formatter formats and displays registry listings
type Formatter struct {
	out    io.Writer
	colors *palette
}

// NewFormatter creates a new Formatter
func NewFormatter(out io.Writer, colored bool) *Formatter {
	return &Formatter{
		out:    out,
		colors: newPalette(colored),
	}
}

// suiteGroup is one suite and its tests, in first-registration order
type suiteGroup struct {
	name  string
	tests []*domain.Test
}

func groupBySuite(tests []*domain.Test) []*suiteGroup {
	var groups []*suiteGroup
	byName := make(map[string]*suiteGroup)
	for _, t := range tests {
		g, ok := byName[t.Suite]
		if !ok {
			g = &suiteGroup{name: t.Suite}
			byName[t.Suite] = g
			groups = append(groups, g)
		}
		g.tests = append(g.tests, t)
	}
	return groups
}

// PrintTestList prints the tests as a tree of suites, keeping registration
// order. Skipped tests are marked [SKIP].
func (f *Formatter) PrintTestList(tests []*domain.Test) {
	if len(tests) == 0 {
		line(f.out, f.colors.skip, "No tests registered")
		return
	}

	groups := groupBySuite(tests)
	line(f.out, f.colors.good, fmt.Sprintf("Found %d test(s) in %d suite(s):", len(tests), len(groups)))

	for i, g := range groups {
		isLastSuite := i == len(groups)-1

		// Print suite as root node
		if isLastSuite {
			line(f.out, f.colors.suite, "└── "+g.name)
		} else {
			line(f.out, f.colors.suite, "├── "+g.name)
		}

		// Print tests as children
		for j, t := range g.tests {
			isLastCase := j == len(g.tests)-1

			var prefix string
			if isLastSuite {
				if isLastCase {
					prefix = "    └── "
				} else {
					prefix = "    ├── "
				}
			} else {
				if isLastCase {
					prefix = "│   └── "
				} else {
					prefix = "│   ├── "
				}
			}

			fmt.Fprintf(f.out, "%s%s", prefix, t.Name)
			if t.Skip {
				fmt.Fprint(f.out, " ")
				f.colors.skip.Fprint(f.out, "[SKIP]")
			}
			if t.File != "" {
				fmt.Fprint(f.out, " ")
				f.colors.muted.Fprintf(f.out, "(%s:%d)", t.File, t.Line)
			}
			fmt.Fprintln(f.out)
		}
	}
}
