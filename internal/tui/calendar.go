package tui

import (
	"fmt"
	"time"

	"strava-wrapped/internal/api"
	"strava-wrapped/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Distance intensity scale, low to high.
var heatColors = []lipgloss.Color{
	"#3B3B3B", // rest day
	"#C7D2FE",
	"#A5B4FC",
	"#818CF8",
	"#6366F1",
}

// CalendarModel is the activity heatmap screen. A cursor walks the daily
// rollups; enter drills into the selected day's activities.
type CalendarModel struct {
	provider *service.Provider
	drill    *service.DrillDown
	units    Units
	cursor   int
}

// NewCalendarModel creates a new calendar model
func NewCalendarModel(p *service.Provider, d *service.DrillDown, units Units) CalendarModel {
	return CalendarModel{provider: p, drill: d, units: units}
}

func (m CalendarModel) daily() []api.DailyPoint {
	data := m.provider.Data()
	if data == nil || data.Trends == nil {
		return nil
	}
	return data.Trends.Daily
}

// Update handles messages
func (m CalendarModel) Update(msg tea.Msg) (CalendarModel, tea.Cmd) {
	daily := m.daily()
	if len(daily) == 0 {
		return m, nil
	}
	if m.cursor >= len(daily) {
		m.cursor = len(daily) - 1
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "left", "h":
			if m.cursor > 0 {
				m.cursor--
			}
		case "right", "l":
			if m.cursor < len(daily)-1 {
				m.cursor++
			}
		case "up", "k":
			if m.cursor >= 7 {
				m.cursor -= 7
			}
		case "down", "j":
			if m.cursor+7 < len(daily) {
				m.cursor += 7
			}
		case "enter":
			return m, m.openDay(daily[m.cursor])
		}
	}
	return m, nil
}

// openDay issues the single-day detail fetch for the selected cell.
func (m CalendarModel) openDay(day api.DailyPoint) tea.Cmd {
	date, err := time.ParseInLocation("2006-01-02", day.Date, time.UTC)
	if err != nil {
		return nil
	}
	req := m.drill.OpenDay(m.provider.Filter(), date)
	return runDetail(req, m.provider.Fetcher())
}

// View renders the calendar heatmap
func (m CalendarModel) View() string {
	daily := m.daily()

	if len(daily) == 0 {
		if m.provider.Loading() {
			return "\n  Loading calendar..."
		}
		return "\n  No daily data yet."
	}

	cursor := m.cursor
	if cursor >= len(daily) {
		cursor = len(daily) - 1
	}

	title := cardTitleStyle.Render("Activity Heatmap")

	// One row per weekday column chunk: seven days per column, like a
	// contribution graph laid out left to right.
	var rows [7][]string
	for i, d := range daily {
		cell := heatCell(d.DistanceKm)
		if i == cursor {
			cell = tableSelectedStyle.Render("■")
		}
		rows[i%7] = append(rows[i%7], cell)
	}

	var lines []string
	for _, row := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	grid := lipgloss.JoinVertical(lipgloss.Left, lines...)

	sel := daily[cursor]
	detail := fmt.Sprintf("%s  %s · %s · %d activities",
		sel.Date,
		m.units.FormatDistance(sel.DistanceKm),
		formatMinutes(sel.MovingTimeMinutes),
		sel.ActivitiesCount,
	)

	legend := mutedStyle.Render("Low → High")
	help := statusStyle.Render("arrows/hjkl: move  enter: day activities  esc: close modal")

	card := cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, grid, "", legend))
	return lipgloss.JoinVertical(lipgloss.Left, card, metricValueStyle.Render(detail), help)
}

func heatCell(distanceKm float64) string {
	idx := 0
	switch {
	case distanceKm <= 0:
		idx = 0
	case distanceKm < 2:
		idx = 1
	case distanceKm < 5:
		idx = 2
	case distanceKm < 10:
		idx = 3
	default:
		idx = 4
	}
	return lipgloss.NewStyle().Foreground(heatColors[idx]).Render("■")
}
