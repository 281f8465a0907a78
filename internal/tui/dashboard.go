package tui

import (
	"fmt"

	"strava-wrapped/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DashboardModel is the dashboard screen. It renders the provider's cached
// summary and facts; all loading state lives in the provider itself.
type DashboardModel struct {
	provider *service.Provider
	units    Units
}

// NewDashboardModel creates a new dashboard model
func NewDashboardModel(p *service.Provider, units Units) DashboardModel {
	return DashboardModel{provider: p, units: units}
}

// Update handles messages
func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	return m, nil
}

// View renders the dashboard
func (m DashboardModel) View() string {
	data := m.provider.Data()

	if data == nil {
		if m.provider.Loading() {
			return "\n  Loading your year..."
		}
		if err := m.provider.Err(); err != "" {
			return errorStyle.Render(fmt.Sprintf("\n  Error: %s", err))
		}
		return "\n  No data available yet."
	}

	var sections []string

	totals := m.renderTotalsCard()
	consistency := m.renderConsistencyCard()
	topRow := lipgloss.JoinHorizontal(lipgloss.Top, totals, "  ", consistency)
	sections = append(sections, topRow)

	if len(data.Facts) > 0 {
		sections = append(sections, m.renderFacts())
	}

	help := statusStyle.Render("Press 'f' to change activity type, 'r' to refresh")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m DashboardModel) renderTotalsCard() string {
	s := m.provider.Data().Summary
	title := cardTitleStyle.Render(fmt.Sprintf("This Year (%s)", s.ActivityType))

	lines := []string{
		RenderMetric("Distance", m.units.FormatBigDistance(s.TotalDistanceKm)),
		RenderMetric("Elevation", m.units.FormatElevation(s.TotalElevationM)),
		RenderMetric("Moving time", formatHours(s.TotalTimeHours)),
		RenderMetric("Activities", fmt.Sprintf("%d", s.ActivitiesCount)),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(40).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderConsistencyCard() string {
	s := m.provider.Data().Summary
	title := cardTitleStyle.Render("Consistency")

	lines := []string{
		RenderMetric("Active days", fmt.Sprintf("%d (%.1f%%)", s.ActiveDays, s.ActiveDaysPercent)),
		RenderMetric("Longest streak", fmt.Sprintf("%d days", s.LongestStreakDays)),
	}

	if s.BestMonth != nil && s.BestMonthDistanceKm != nil {
		lines = append(lines, RenderMetric("Best month",
			fmt.Sprintf("%s (%s)", *s.BestMonth, m.units.FormatDistance(*s.BestMonthDistanceKm))))
	}
	if s.MostEpicDayDate != nil && s.MostEpicDayDistanceKm != nil {
		lines = append(lines, RenderMetric("Most epic day",
			fmt.Sprintf("%s (%s)", *s.MostEpicDayDate, m.units.FormatDistance(*s.MostEpicDayDistanceKm))))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(48).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderFacts() string {
	title := cardTitleStyle.Render("Fun Facts")

	var rows []string
	for _, fact := range m.provider.Data().Facts {
		rows = append(rows, "• "+fact)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}
