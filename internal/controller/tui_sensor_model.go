package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/sensorgrid/internal/model"
)

// chromeLines is the height taken by the title, summary and footer.
const chromeLines = 6

type sensorItem struct {
	sensor m.Sensor
}

func (s sensorItem) FilterValue() string {
	return s.sensor.Position.String()
}

type sensorDelegate struct{}

func (d sensorDelegate) Height() int  { return 1 }
func (d sensorDelegate) Spacing() int { return 0 }
func (d sensorDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d sensorDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	si, ok := item.(sensorItem)
	if !ok {
		return
	}

	radiusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true).Width(8).Align(lipgloss.Right)
	textStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	if index == lm.Index() {
		radiusStyle = radiusStyle.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))
		textStyle = textStyle.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6")).Bold(true)
	}

	_, _ = fmt.Fprint(w, renderSensorLine(si.sensor, lm.Width()-10, radiusStyle, textStyle))
}

func renderSensorLine(sensor m.Sensor, width int, radiusStyle, textStyle lipgloss.Style) string {
	text := fmt.Sprintf("%s -> %s", sensor.Position, sensor.Beacon)
	if width > 0 {
		text = truncateToWidth(text, width)
	}

	return fmt.Sprintf("%s  %s", radiusStyle.Render(fmt.Sprintf("%d", sensor.Radius())), textStyle.Render(text))
}

// sensorListModel browses the loaded sensors.
type sensorListModel struct {
	source   m.Source
	list     list.Model
	width    int
	height   int
	quitting bool
}

func newSensorListModel(source m.Source) sensorListModel {
	items := make([]list.Item, 0, len(source.Sensors))
	for _, sensor := range source.Sensors {
		items = append(items, sensorItem{sensor: sensor})
	}

	sensors := list.New(items, sensorDelegate{}, 80, 20)
	sensors.SetShowPagination(false)
	sensors.SetShowHelp(false)
	sensors.SetShowTitle(false)
	sensors.SetShowStatusBar(false)
	sensors.FilterInput.Placeholder = "Filter by position…"

	return sensorListModel{
		source: source,
		list:   sensors,
	}
}

func (s sensorListModel) resize(width, height int) sensorListModel {
	s.width = width
	s.height = height
	s.list.SetSize(max(width-2, 10), max(height-chromeLines, 3))

	return s
}

// needsPagination reports whether the list is taller than the terminal.
func (s sensorListModel) needsPagination() bool {
	return s.height > 0 && len(s.source.Sensors)+chromeLines > s.height
}

func (s sensorListModel) Init() tea.Cmd {
	return nil
}

func (s sensorListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return s.resize(msg.Width, msg.Height), nil

	case tea.KeyMsg:
		if s.list.FilterState() != list.Filtering {
			switch msg.String() {
			case "q", "esc", "ctrl+c":
				s.quitting = true
				return s, tea.Quit
			}
		}
	}

	var cmd tea.Cmd

	s.list, cmd = s.list.Update(msg)

	return s, cmd
}

func (s sensorListModel) View() string {
	if s.quitting {
		return ""
	}

	title := titleStyle.Render("Sensors")
	summary := labelStyle.Render(fmt.Sprintf("%d sensors from ", len(s.source.Sensors))) +
		accentStyle.Render(string(s.source.Origin))

	if !s.needsPagination() {
		lines := []string{title, summary, ""}

		radiusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true).Width(8).Align(lipgloss.Right)
		textStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

		for _, sensor := range s.source.Sensors {
			lines = append(lines, renderSensorLine(sensor, s.width-10, radiusStyle, textStyle))
		}

		return lipgloss.JoinVertical(lipgloss.Left, lines...) + "\n"
	}

	footer := mutedStyle.Render("↑/k up • ↓/j down • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, summary, "", s.list.View(), footer)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}
