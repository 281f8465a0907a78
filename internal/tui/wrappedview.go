package tui

import (
	"fmt"
	"strings"

	"strava-wrapped/internal/api"
	"strava-wrapped/internal/wrapped"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"
)

// WrappedModel is the year-in-review slideshow screen. Navigation state
// lives in the engine; this model only translates keys and renders the
// current slide.
type WrappedModel struct {
	engine *wrapped.Engine
	units  Units
}

// NewWrappedModel creates a new wrapped slideshow model
func NewWrappedModel(e *wrapped.Engine, units Units) WrappedModel {
	return WrappedModel{engine: e, units: units}
}

// Update handles messages
func (m WrappedModel) Update(msg tea.Msg) (WrappedModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "right", "l", " ":
			m.engine.Next()
		case "left", "h":
			m.engine.Prev()
		}
	}
	return m, nil
}

// View renders the slideshow
func (m WrappedModel) View() string {
	switch m.engine.State() {
	case wrapped.StateLoading:
		return "\n  Loading your Wrapped..."
	case wrapped.StateFailed:
		return errorStyle.Render(fmt.Sprintf("\n  Couldn't load your Wrapped: %s", m.engine.Err()))
	}

	slide, ok := m.engine.Current()
	if !ok {
		return "\n  No slides."
	}

	accent := lipgloss.Color(slide.Background)

	title := slideTitleStyle.Background(accent).Render(slide.Title)
	subtitle := mutedStyle.Render(slide.Subtitle)

	body := m.renderSlideBody(slide)

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(1, 3).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "", body))

	dots := m.renderDots()
	help := statusStyle.Render("←/→: navigate slides  f: change activity type")

	return lipgloss.JoinVertical(lipgloss.Left, dots, frame, help)
}

func (m WrappedModel) renderDots() string {
	slides := m.engine.Slides()
	var b strings.Builder
	for i := range slides {
		if i == m.engine.Index() {
			b.WriteString(dotActiveStyle.Render("●"))
		} else {
			b.WriteString(dotInactiveStyle.Render("○"))
		}
		b.WriteString(" ")
	}
	return b.String()
}

func (m WrappedModel) renderSlideBody(slide wrapped.Slide) string {
	data := m.engine.Data()

	switch slide.Kind {
	case wrapped.KindIntro:
		return m.renderIntro(data)
	case wrapped.KindConsistency:
		return m.renderConsistency(data)
	case wrapped.KindVolume:
		return m.renderVolume(data)
	case wrapped.KindMoments:
		return lipgloss.JoinVertical(lipgloss.Left,
			m.renderNotable("Distance monster", wrapped.NotableOf(data.BiggestDay)),
			"",
			m.renderNotable("Climbing hero", wrapped.NotableOf(data.BiggestClimb)),
		)
	case wrapped.KindEndurance:
		return lipgloss.JoinVertical(lipgloss.Left,
			m.renderNotable("Endurance mode", wrapped.NotableOf(data.LongestActivity)),
			"",
			m.renderNotable("Crowd favourite", wrapped.NotableOf(data.MostKudosActivity)),
		)
	case wrapped.KindCrew:
		return m.renderCrew(data)
	case wrapped.KindHeatmap:
		return m.renderHeatmap(data)
	case wrapped.KindTimeOfDay:
		return m.renderTimeOfDay(data)
	case wrapped.KindWrapUp:
		return m.renderWrapUp(data)
	}
	return ""
}

func (m WrappedModel) renderIntro(data *api.Wrapped) string {
	hero := heroNumberStyle.Render(m.units.FormatBigDistance(data.TotalDistanceKm))
	sub := mutedStyle.Render(fmt.Sprintf("Total distance across %d activities.", data.ActivitiesCount))

	var chips []string
	for _, stat := range data.KeyStats {
		chips = append(chips, RenderMetric(stat.Label, stat.Formatted))
	}
	if len(chips) == 0 {
		chips = append(chips, mutedStyle.Render("No activities logged yet."))
	}

	moving := fmt.Sprintf("You kept moving for %s and climbed %s.",
		formatHours(data.TotalTimeHours),
		m.units.FormatElevation(data.TotalElevationM))

	return lipgloss.JoinVertical(lipgloss.Left,
		hero, sub, "",
		lipgloss.JoinVertical(lipgloss.Left, chips...),
		"", moving)
}

func (m WrappedModel) renderConsistency(data *api.Wrapped) string {
	weekday := "—"
	if data.MostActiveWeekday != nil {
		weekday = *data.MostActiveWeekday
	}
	month := "—"
	if data.MostActiveMonth != nil {
		month = *data.MostActiveMonth
	}

	lines := []string{
		RenderMetric("Active days", fmt.Sprintf("%d days", data.ActiveDays)),
		RenderMetric("Longest streak", fmt.Sprintf("%d days", data.LongestStreakDays)),
		RenderMetric("Favourite weekday", weekday),
		RenderMetric("Biggest month", month),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m WrappedModel) renderVolume(data *api.Wrapped) string {
	if len(data.CumulativeDistance) < 3 {
		return mutedStyle.Render("Not enough rides logged to chart your year.")
	}

	series := make([]float64, len(data.CumulativeDistance))
	for i, p := range data.CumulativeDistance {
		series[i] = p.CumulativeDistanceKm
	}
	if len(series) > 70 {
		series = sampleSeries(series, 70)
	}

	graph := asciigraph.Plot(series,
		asciigraph.Height(9),
		asciigraph.Width(60),
		asciigraph.Precision(0),
	)

	last := data.CumulativeDistance[len(data.CumulativeDistance)-1]
	caption := mutedStyle.Render(fmt.Sprintf("Cumulative distance, ending at %s on %s.",
		m.units.FormatBigDistance(last.CumulativeDistanceKm), last.Date))

	return lipgloss.JoinVertical(lipgloss.Left, graph, "", caption)
}

// renderNotable renders a notable-activity slot. An absent slot keeps its
// place with a placeholder, so the slide layout never changes shape.
func (m WrappedModel) renderNotable(label string, slot wrapped.Notable) string {
	heading := cardTitleStyle.Render(label)

	if !slot.Present {
		return lipgloss.JoinVertical(lipgloss.Left, heading, mutedStyle.Render("No data yet"))
	}

	a := slot.Activity
	meta := fmt.Sprintf("%s · %s · %s",
		a.Date,
		m.units.FormatDistance(a.DistanceKm),
		m.units.FormatElevation(a.ElevationM))
	if a.KudosCount != nil {
		meta += fmt.Sprintf(" · %d kudos", *a.KudosCount)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		heading,
		metricValueStyle.Render(truncateName(a.Name, 48)),
		mutedStyle.Render(meta),
		mutedStyle.Render(a.StravaURL),
	)
}

func (m WrappedModel) renderCrew(data *api.Wrapped) string {
	givers := cardTitleStyle.Render("Top kudos givers")
	var lines []string
	lines = append(lines, givers)
	if len(data.TopKudosGivers) == 0 {
		lines = append(lines, mutedStyle.Render("No kudos data yet"))
	}
	for _, p := range data.TopKudosGivers {
		lines = append(lines, fmt.Sprintf("  %s — %d kudos", p.Name, p.Count))
	}

	lines = append(lines, "", cardTitleStyle.Render("Favourite partners"))
	if len(data.FavouritePartners) == 0 {
		lines = append(lines, mutedStyle.Render("No group activities logged"))
	}
	for _, p := range data.FavouritePartners {
		lines = append(lines, fmt.Sprintf("  %s — %d times", p.Name, p.Count))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m WrappedModel) renderHeatmap(data *api.Wrapped) string {
	if len(data.HeatmapPoints) == 0 {
		return mutedStyle.Render("No start locations found")
	}

	var lines []string
	for i, p := range data.HeatmapPoints {
		if i >= 10 {
			lines = append(lines, mutedStyle.Render(fmt.Sprintf("  …and %d more spots", len(data.HeatmapPoints)-i)))
			break
		}
		marker := strings.Repeat("●", min(p.Count, 8))
		lines = append(lines, fmt.Sprintf("  %8.2f, %8.2f  %s %d", p.Lat, p.Lng,
			dotActiveStyle.Render(marker), p.Count))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m WrappedModel) renderTimeOfDay(data *api.Wrapped) string {
	if len(data.TimeOfDay) == 0 {
		return mutedStyle.Render("No activities logged yet")
	}

	maxCount := 0
	favourite := ""
	for _, b := range data.TimeOfDay {
		if b.Count > maxCount {
			maxCount = b.Count
			favourite = b.Label
		}
	}

	var lines []string
	for _, b := range data.TimeOfDay {
		barWidth := 0
		if maxCount > 0 {
			barWidth = b.Count * 30 / maxCount
		}
		bar := dotActiveStyle.Render(strings.Repeat("█", barWidth))
		lines = append(lines, fmt.Sprintf("  %-10s %s %d", b.Label, bar, b.Count))
	}

	if favourite != "" {
		lines = append(lines, "", mutedStyle.Render("You gravitate towards "+favourite+"."))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m WrappedModel) renderWrapUp(data *api.Wrapped) string {
	var lines []string
	for _, line := range data.FunLines {
		lines = append(lines, "• "+line)
	}
	if len(lines) == 0 {
		lines = append(lines, mutedStyle.Render("Here's to next year."))
	}

	count := heroNumberStyle.Render(humanize.Comma(int64(data.ActivitiesCount)))
	lines = append(lines, "", count+mutedStyle.Render(" activities logged this year."))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// sampleSeries thins a series to roughly targetLen points, keeping the
// last point so the final total stays visible.
func sampleSeries(data []float64, targetLen int) []float64 {
	if len(data) <= targetLen {
		return data
	}
	step := float64(len(data)) / float64(targetLen)
	out := make([]float64, 0, targetLen)
	for i := 0; i < targetLen-1; i++ {
		out = append(out, data[int(float64(i)*step)])
	}
	return append(out, data[len(data)-1])
}
