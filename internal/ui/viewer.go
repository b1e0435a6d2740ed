package ui

import "jtr/internal/domain"

// Viewer displays extracted failures in an interactive TUI
type Viewer interface {
	View(output *domain.FailuresOutput) error
}
