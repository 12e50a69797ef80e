package controller

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/sensorgrid/internal/model"
)

// SimpleUI implements UI with plain text tables written to the command output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplaySensors prints one row per sensor with its radius and row span.
func (s *SimpleUI) DisplaySensors(source m.Source) error {
	if len(source.Sensors) == 0 {
		s.printf("No sensors found in %s\n", source.Origin)
		return nil
	}

	table, buf := s.newTable([]string{"Sensor", "Beacon", "Radius", "Rows"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
	})

	for _, sensor := range source.Sensors {
		first, last := sensor.RowSpan()
		table.Append([]string{
			sensor.Position.String(),
			sensor.Beacon.String(),
			strconv.Itoa(sensor.Radius()),
			fmt.Sprintf("%d..%d", first, last),
		})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Sensors %d", len(source.Sensors)), "", "", ""})
	table.Render()
	s.printf("\n%s", buf.String())

	return nil
}

// DisplayRowReport prints the excluded cell count and the merged coverage.
func (s *SimpleUI) DisplayRowReport(report m.Report) error {
	if report.Row == nil {
		return fmt.Errorf("report %s has no row result", report.ID)
	}

	row := report.Row
	s.printf("Row %d: %d cells cannot contain a beacon (%d sensors)\n", row.Row, row.Excluded, row.Sensors)

	if len(row.Coverage) == 0 {
		return nil
	}

	table, buf := s.newTable([]string{"From", "To", "Cells"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})

	for _, iv := range row.Coverage {
		table.Append([]string{strconv.Itoa(iv.Lo), strconv.Itoa(iv.Hi), strconv.Itoa(iv.Len())})
	}

	table.SetFooter([]string{"", "Total", strconv.Itoa(row.Excluded)})
	table.Render()
	s.printf("\n%s", buf.String())

	return nil
}

// DisplayBeaconReport prints the uncovered cell and its tuning frequency.
func (s *SimpleUI) DisplayBeaconReport(report m.Report) error {
	if report.Beacon == nil {
		return fmt.Errorf("report %s has no beacon result", report.ID)
	}

	b := report.Beacon
	s.printf("Uncovered cell at %s within [0, %d]\n", b.Beacon, b.Bound)
	s.printf("Tuning frequency: %d\n", b.Frequency)

	return nil
}

// DisplayReports prints a summary table of stored reports.
func (s *SimpleUI) DisplayReports(reports []m.Report) error {
	if len(reports) == 0 {
		s.printf("No reports found\n")
		return nil
	}

	table, buf := s.newTable([]string{"Report", "Kind", "Input", "Answer", "Elapsed"})

	for _, report := range reports {
		table.Append([]string{
			shortID(report.ID),
			string(report.Kind),
			string(report.Input),
			reportAnswer(report),
			report.Elapsed.String(),
		})
	}

	table.Render()
	s.printf("\n%s", buf.String())

	return nil
}

func (s *SimpleUI) newTable(header []string) (*tablewriter.Table, *bytes.Buffer) {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")

	return table, &buf
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}

	return id
}

// reportAnswer renders the single answer a report carries.
func reportAnswer(report m.Report) string {
	switch {
	case report.Row != nil:
		return fmt.Sprintf("row %d: %d", report.Row.Row, report.Row.Excluded)
	case report.Beacon != nil:
		return fmt.Sprintf("%s: %d", report.Beacon.Beacon, report.Beacon.Frequency)
	default:
		return "-"
	}
}
