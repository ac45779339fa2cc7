package ui

import "ctest/internal/domain"

// Viewer displays the failures of a finished run
type Viewer interface {
	View(summary *domain.Summary) error
}
