package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model
type HelpModel struct{}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (HelpModel, tea.Cmd) {
	return m, nil
}

// View renders the help screen
func (m HelpModel) View() string {
	var sections []string

	title := cardTitleStyle.Render("Keyboard Shortcuts")
	sections = append(sections, title)

	sections = append(sections, renderSection("Navigation", []keyHelp{
		{"1", "Dashboard"},
		{"2", "Calendar heatmap"},
		{"3", "Trends"},
		{"4", "Highlights"},
		{"5 or w", "Wrapped slideshow"},
		{"?", "Help (this screen)"},
		{"q", "Quit"},
		{"esc", "Back / close modal"},
	}))

	sections = append(sections, renderSection("Everywhere", []keyHelp{
		{"f", "Cycle activity type (All → Ride → Run → Other)"},
		{"r", "Refresh data"},
	}))

	sections = append(sections, renderSection("Calendar", []keyHelp{
		{"arrows / hjkl", "Move between days"},
		{"enter", "Show that day's activities"},
	}))

	sections = append(sections, renderSection("Trends", []keyHelp{
		{"tab or m", "Switch weekly / monthly"},
		{"j / k", "Select a bucket"},
		{"enter", "Show the bucket's activities"},
	}))

	sections = append(sections, renderSection("Wrapped", []keyHelp{
		{"← / →", "Previous / next slide"},
	}))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

type keyHelp struct {
	key  string
	desc string
}

func renderSection(title string, keys []keyHelp) string {
	heading := lipgloss.NewStyle().Bold(true).Foreground(secondaryColor).MarginTop(1).Render(title)

	var rows []string
	rows = append(rows, heading)
	for _, k := range keys {
		key := lipgloss.NewStyle().Foreground(primaryColor).Bold(true).Width(16).Render(k.key)
		rows = append(rows, "  "+key+mutedStyle.Render(k.desc))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
