package controller

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "github.com/mouse-blink/sensorgrid/internal/model"
)

const coverageBarWidth = 40

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// TUI implements UI using Bubble Tea and Lip Gloss for interactive display.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplaySensors shows a browsable sensor list. Short lists are printed and
// the program exits straight away.
func (t *TUI) DisplaySensors(source m.Source) error {
	model := newSensorListModel(source)

	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model = model.resize(width, height)
		}
	}

	if !model.needsPagination() {
		_, err := fmt.Fprint(t.output, model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// DisplayRowReport shows the excluded count with a bar of how much of the
// covered span is excluded.
func (t *TUI) DisplayRowReport(report m.Report) error {
	if report.Row == nil {
		return fmt.Errorf("report %s has no row result", report.ID)
	}

	row := report.Row
	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(coverageBarWidth))

	view := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(fmt.Sprintf("Row %d", row.Row)),
		labelStyle.Render("Excluded cells: ")+accentStyle.Render(fmt.Sprintf("%d", row.Excluded)),
		labelStyle.Render("Sensors:        ")+accentStyle.Render(fmt.Sprintf("%d", row.Sensors)),
		bar.ViewAs(excludedRatio(row)),
		mutedStyle.Render(fmt.Sprintf("%d intervals in %s", len(row.Coverage), report.Elapsed)),
	)

	_, err := fmt.Fprintln(t.output, view)

	return err
}

// DisplayBeaconReport shows the uncovered cell and its tuning frequency.
func (t *TUI) DisplayBeaconReport(report m.Report) error {
	if report.Beacon == nil {
		return fmt.Errorf("report %s has no beacon result", report.ID)
	}

	b := report.Beacon

	view := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Distress beacon"),
		labelStyle.Render("Cell:      ")+accentStyle.Render(b.Beacon.String()),
		labelStyle.Render("Frequency: ")+accentStyle.Render(fmt.Sprintf("%d", b.Frequency)),
		mutedStyle.Render(fmt.Sprintf("searched [0, %d] with %d sensors in %s", b.Bound, b.Sensors, report.Elapsed)),
	)

	_, err := fmt.Fprintln(t.output, view)

	return err
}

// DisplayReports lists stored reports, one line each.
func (t *TUI) DisplayReports(reports []m.Report) error {
	if len(reports) == 0 {
		_, err := fmt.Fprintln(t.output, mutedStyle.Render("No reports found"))
		return err
	}

	lines := []string{titleStyle.Render(fmt.Sprintf("%d reports", len(reports)))}
	for _, report := range reports {
		lines = append(lines, fmt.Sprintf("%s  %-6s %s  %s",
			mutedStyle.Render(shortID(report.ID)),
			string(report.Kind),
			accentStyle.Render(reportAnswer(report)),
			labelStyle.Render(string(report.Input)),
		))
	}

	_, err := fmt.Fprintln(t.output, lipgloss.JoinVertical(lipgloss.Left, lines...))

	return err
}

// excludedRatio is the share of the row span, from the first covered cell to
// the last, that is excluded.
func excludedRatio(row *m.RowReport) float64 {
	if len(row.Coverage) == 0 {
		return 0
	}

	span := row.Coverage[len(row.Coverage)-1].Hi - row.Coverage[0].Lo + 1
	if span <= 0 {
		return 0
	}

	return float64(row.Excluded) / float64(span)
}
