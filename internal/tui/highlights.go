package tui

import (
	"fmt"

	"strava-wrapped/internal/api"
	"strava-wrapped/internal/service"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HighlightsModel is the highlights screen: the four ranked lists in a
// scrollable viewport.
type HighlightsModel struct {
	provider *service.Provider
	units    Units
	viewport viewport.Model
	ready    bool
}

// NewHighlightsModel creates a new highlights model
func NewHighlightsModel(p *service.Provider, units Units) HighlightsModel {
	return HighlightsModel{provider: p, units: units}
}

// Resize adjusts the viewport to the window
func (m *HighlightsModel) Resize(width, height int) {
	if !m.ready {
		m.viewport = viewport.New(width, height-6)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = height - 6
	}
}

// Update handles messages
func (m HighlightsModel) Update(msg tea.Msg) (HighlightsModel, tea.Cmd) {
	if !m.ready {
		return m, nil
	}
	m.viewport.SetContent(m.renderContent())
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the highlights screen
func (m HighlightsModel) View() string {
	data := m.provider.Data()
	if data == nil || data.Highlights == nil {
		if m.provider.Loading() {
			return "\n  Loading highlights..."
		}
		return "\n  No highlights yet."
	}

	if !m.ready {
		return m.renderContent()
	}

	m.viewport.SetContent(m.renderContent())
	footer := statusStyle.Render("  j/k or arrows: scroll")
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
}

func (m HighlightsModel) renderContent() string {
	h := m.provider.Data().Highlights

	sections := []string{
		m.renderList("Longest Activities", h.LongestActivities),
		m.renderList("Biggest Climbs", h.BiggestClimbs),
		m.renderList("Fastest Runs", h.FastestRuns),
		m.renderList("Fastest Rides", h.FastestRides),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m HighlightsModel) renderList(title string, activities []api.ActivityHighlight) string {
	heading := cardTitleStyle.Render(title)

	if len(activities) == 0 {
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, heading, mutedStyle.Render("No qualifying activities")))
	}

	header := tableHeaderStyle.Render(fmt.Sprintf("%-10s  %-28s  %10s  %8s  %8s",
		"Date", "Name", "Distance", "Elev", "Time"))

	rows := []string{header}
	for _, a := range activities {
		row := tableRowStyle.Render(fmt.Sprintf("%-10s  %-28s  %10s  %7.0fm  %8s",
			a.Date,
			truncateName(a.Name, 28),
			m.units.FormatDistance(a.DistanceKm),
			a.ElevationM,
			formatMinutes(a.MovingTimeMinutes),
		))
		rows = append(rows, row)
	}

	table := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, heading, table))
}
