package tui

import (
	"fmt"

	"strava-wrapped/internal/api"
	"strava-wrapped/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// TrendsModel is the trends screen: a distance chart over weekly or
// monthly buckets plus a selectable bucket table. Enter drills into the
// selected bucket's underlying activities.
type TrendsModel struct {
	provider *service.Provider
	drill    *service.DrillDown
	units    Units

	periodType string // "weekly" or "monthly"
	cursor     int
}

// NewTrendsModel creates a new trends model
func NewTrendsModel(p *service.Provider, d *service.DrillDown, units Units) TrendsModel {
	return TrendsModel{provider: p, drill: d, units: units, periodType: "weekly"}
}

func (m TrendsModel) buckets() []api.TrendBucket {
	data := m.provider.Data()
	if data == nil || data.Trends == nil {
		return nil
	}
	if m.periodType == "monthly" {
		return data.Trends.Monthly
	}
	return data.Trends.Weekly
}

// Update handles messages
func (m TrendsModel) Update(msg tea.Msg) (TrendsModel, tea.Cmd) {
	buckets := m.buckets()
	if m.cursor >= len(buckets) && len(buckets) > 0 {
		m.cursor = len(buckets) - 1
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab", "m":
			if m.periodType == "weekly" {
				m.periodType = "monthly"
			} else {
				m.periodType = "weekly"
			}
			m.cursor = 0
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(buckets)-1 {
				m.cursor++
			}
		case "enter":
			if m.cursor < len(buckets) {
				return m, m.openBucket(buckets[m.cursor].Label)
			}
		}
	}
	return m, nil
}

// openBucket resolves the bucket label to a date range and issues the
// period detail fetch. A label that fails to resolve is a no-op.
func (m TrendsModel) openBucket(label string) tea.Cmd {
	req, err := m.drill.OpenBucket(m.provider.Filter(), label)
	if err != nil {
		return nil
	}
	return runDetail(req, m.provider.Fetcher())
}

// View renders the trends screen
func (m TrendsModel) View() string {
	buckets := m.buckets()

	if len(buckets) == 0 {
		if m.provider.Loading() {
			return "\n  Loading trends..."
		}
		return "\n  No trend data yet."
	}

	cursor := m.cursor
	if cursor >= len(buckets) {
		cursor = len(buckets) - 1
	}

	var sections []string
	sections = append(sections, m.renderChart(buckets))
	sections = append(sections, m.renderTable(buckets, cursor))

	help := statusStyle.Render("tab: weekly/monthly  j/k: select  enter: bucket activities")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m TrendsModel) renderChart(buckets []api.TrendBucket) string {
	label := "Weekly distance"
	if m.periodType == "monthly" {
		label = "Monthly distance"
	}
	title := cardTitleStyle.Render(label)

	series := make([]float64, len(buckets))
	for i, b := range buckets {
		series[i] = b.DistanceKm
	}
	if len(series) > 60 {
		series = series[len(series)-60:]
	}

	if len(series) < 3 {
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, "Not enough data for a chart"))
	}

	graph := asciigraph.Plot(series,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Precision(0),
	)

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph))
}

func (m TrendsModel) renderTable(buckets []api.TrendBucket, cursor int) string {
	header := tableHeaderStyle.Render(fmt.Sprintf("   %-10s  %10s  %8s  %10s  %6s",
		"Period", "Distance", "Time", "Elevation", "Count"))

	// Show a window of rows around the cursor.
	const window = 10
	start := cursor - window/2
	if start < 0 {
		start = 0
	}
	end := start + window
	if end > len(buckets) {
		end = len(buckets)
		if end-window > 0 {
			start = end - window
		} else {
			start = 0
		}
	}

	rows := []string{header}
	for i := start; i < end; i++ {
		b := buckets[i]
		row := fmt.Sprintf("%-10s  %10s  %8s  %10s  %6d",
			b.Label,
			m.units.FormatDistance(b.DistanceKm),
			formatHours(b.MovingTimeHours),
			m.units.FormatElevation(b.ElevationM),
			b.ActivitiesCount,
		)
		if i == cursor {
			rows = append(rows, tableSelectedStyle.Render("> "+row))
		} else {
			rows = append(rows, tableRowStyle.Render("  "+row))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
