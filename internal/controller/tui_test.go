package controller

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/sensorgrid/internal/model"
)

func sampleSource(n int) m.Source {
	sensors := make([]m.Sensor, 0, n)
	for i := range n {
		sensors = append(sensors, m.Sensor{Position: m.Point{X: i, Y: i}, Beacon: m.Point{X: i + 1, Y: i}})
	}

	return m.Source{Origin: "input.txt", Sensors: sensors}
}

func TestTUI_DisplaySensors_PrintsWhenNotATerminal(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	if err := tui.DisplaySensors(sampleSource(3)); err != nil {
		t.Fatalf("DisplaySensors() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{"Sensors", "input.txt", "(0, 0) -> (1, 0)", "(2, 2) -> (3, 2)"} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestTUI_DisplayRowReport(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	report := m.Report{Row: &m.RowReport{
		Row:      10,
		Sensors:  14,
		Excluded: 26,
		Coverage: []m.Interval{{Lo: -2, Hi: 1}, {Lo: 3, Hi: 24}},
	}}

	if err := tui.DisplayRowReport(report); err != nil {
		t.Fatalf("DisplayRowReport() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{"Row 10", "Excluded cells", "26", "2 intervals"} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}

	if err := tui.DisplayRowReport(m.Report{}); err == nil {
		t.Fatal("DisplayRowReport() expected error for missing row result")
	}
}

func TestTUI_DisplayBeaconReport(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	report := m.Report{Beacon: &m.BeaconReport{Bound: 20, Beacon: m.Point{X: 14, Y: 11}, Frequency: 56000011}}

	if err := tui.DisplayBeaconReport(report); err != nil {
		t.Fatalf("DisplayBeaconReport() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{"(14, 11)", "56000011", "[0, 20]"} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestTUI_DisplayReports(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	if err := tui.DisplayReports(nil); err != nil {
		t.Fatalf("DisplayReports() error = %v", err)
	}

	if !strings.Contains(buf.String(), "No reports found") {
		t.Fatalf("expected empty message, got %q", buf.String())
	}

	buf.Reset()

	reports := []m.Report{{ID: "abcdef0123", Kind: m.ReportRow, Row: &m.RowReport{Row: 10, Excluded: 26}}}
	if err := tui.DisplayReports(reports); err != nil {
		t.Fatalf("DisplayReports() error = %v", err)
	}

	for _, want := range []string{"1 reports", "abcdef01", "row 10: 26"} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, buf.String())
		}
	}
}

func TestExcludedRatio(t *testing.T) {
	tests := []struct {
		name string
		row  m.RowReport
		want float64
	}{
		{"no coverage", m.RowReport{}, 0},
		{"full span", m.RowReport{Excluded: 10, Coverage: []m.Interval{{Lo: 0, Hi: 9}}}, 1},
		{"half span", m.RowReport{Excluded: 5, Coverage: []m.Interval{{Lo: 0, Hi: 1}, {Lo: 7, Hi: 9}}}, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := excludedRatio(&tt.row); got != tt.want {
				t.Fatalf("excludedRatio() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSensorListModel_PaginationAndQuit(t *testing.T) {
	model := newSensorListModel(sampleSource(30))
	if model.needsPagination() {
		t.Fatal("needsPagination() = true before a size is known")
	}

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	model = updated.(sensorListModel)

	if !model.needsPagination() {
		t.Fatal("needsPagination() = false for 30 sensors in 20 lines")
	}

	if view := model.View(); !strings.Contains(view, "q quit") {
		t.Fatalf("paginated view missing footer\n%s", view)
	}

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	model = updated.(sensorListModel)

	if !model.quitting || cmd == nil {
		t.Fatal("expected q to quit the sensor list")
	}

	if model.View() != "" {
		t.Fatal("View() after quit should be empty")
	}
}

func TestTruncateToWidth(t *testing.T) {
	if got := truncateToWidth("hello", 0); got != "" {
		t.Fatalf("truncateToWidth width 0 = %q, want empty", got)
	}

	if got := truncateToWidth("hello", 10); got != "hello" {
		t.Fatalf("truncateToWidth no truncation = %q", got)
	}

	if got := truncateToWidth("hello", 1); got != "…" {
		t.Fatalf("truncateToWidth width 1 = %q, want ellipsis", got)
	}

	if got := truncateToWidth("hello", 2); got != "h…" {
		t.Fatalf("truncateToWidth width 2 = %q, want h…", got)
	}
}
