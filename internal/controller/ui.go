// Package controller renders sensor listings and coverage answers for the CLI.
package controller

import (
	m "github.com/mouse-blink/sensorgrid/internal/model"
)

// UI defines how the workflow presents its results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplaySensors(source m.Source) error
	DisplayRowReport(report m.Report) error
	DisplayBeaconReport(report m.Report) error
	DisplayReports(reports []m.Report) error
}
