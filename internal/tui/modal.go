package tui

import (
	"fmt"

	"strava-wrapped/internal/api"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ModalModel renders the drill-down result overlay: the activities behind
// one clicked day or bucket. The drill-down controller owns the open/close
// state; this model only holds the rendered content and scroll position.
type ModalModel struct {
	units    Units
	viewport viewport.Model
	ready    bool
	title    string
	count    int
}

// NewModalModel creates a new modal model
func NewModalModel(units Units) ModalModel {
	return ModalModel{units: units}
}

// Resize adjusts the modal viewport to the window
func (m *ModalModel) Resize(width, height int) {
	w := width - 10
	h := height - 10
	if w < 40 {
		w = 40
	}
	if h < 5 {
		h = 5
	}
	if !m.ready {
		m.viewport = viewport.New(w, h)
		m.ready = true
	} else {
		m.viewport.Width = w
		m.viewport.Height = h
	}
}

// SetContent fills the modal with a detail result
func (m *ModalModel) SetContent(title string, activities []api.ActivityHighlight) {
	m.title = title
	m.count = len(activities)
	if !m.ready {
		m.Resize(100, 30)
	}
	m.viewport.SetContent(m.renderActivities(activities))
	m.viewport.GotoTop()
}

// Clear drops the modal content
func (m *ModalModel) Clear() {
	m.title = ""
	m.count = 0
	if m.ready {
		m.viewport.SetContent("")
	}
}

// Update handles messages
func (m ModalModel) Update(msg tea.Msg) (ModalModel, tea.Cmd) {
	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the modal overlay
func (m ModalModel) View() string {
	title := cardTitleStyle.Render(m.title)
	subtitle := mutedStyle.Render(fmt.Sprintf("%d activities", m.count))

	var body string
	if m.ready {
		body = m.viewport.View()
	}

	footer := statusStyle.Render("esc: close  j/k: scroll")

	return modalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "", body, footer))
}

func (m ModalModel) renderActivities(activities []api.ActivityHighlight) string {
	if len(activities) == 0 {
		return mutedStyle.Render("No activities in this period.")
	}

	header := tableHeaderStyle.Render(fmt.Sprintf("%-10s  %-26s  %-6s  %10s  %8s  %8s",
		"Date", "Name", "Type", "Distance", "Elev", "Time"))

	rows := []string{header}
	for _, a := range activities {
		row := tableRowStyle.Render(fmt.Sprintf("%-10s  %-26s  %-6s  %10s  %7.0fm  %8s",
			a.Date,
			truncateName(a.Name, 26),
			a.Type,
			m.units.FormatDistance(a.DistanceKm),
			a.ElevationM,
			formatMinutes(a.MovingTimeMinutes),
		))
		rows = append(rows, row)
		rows = append(rows, mutedStyle.Render("  "+a.StravaURL))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
