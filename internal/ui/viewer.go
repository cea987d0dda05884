package ui

import "ytf/internal/domain"

// Viewer displays the failures of a finished run.
type Viewer interface {
	View(failures []domain.CaseFailure) error
}
