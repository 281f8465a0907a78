// Package wrapped drives the year-in-review slideshow: the fixed slide
// sequence derived from the wrapped dataset and the navigation state
// machine around it.
package wrapped

import (
	"strconv"

	"strava-wrapped/internal/api"
)

// Kind identifies which renderer a slide uses.
type Kind int

const (
	KindIntro Kind = iota
	KindConsistency
	KindVolume
	KindMoments
	KindEndurance
	KindCrew
	KindHeatmap
	KindTimeOfDay
	KindWrapUp
)

// Slide is one screen of the presentation. The sequence is fully derived
// from the dataset and never mutated after construction.
type Slide struct {
	ID         string
	Title      string
	Subtitle   string
	Background string
	Kind       Kind
}

// Notable is an explicit present/absent notable-activity slot. Absent
// slots still get a slide section, rendered as a placeholder.
type Notable struct {
	Present  bool
	Activity api.WrappedActivity
}

// NotableOf lifts an optional wire value into a Notable.
func NotableOf(a *api.WrappedActivity) Notable {
	if a == nil {
		return Notable{}
	}
	return Notable{Present: true, Activity: *a}
}

// BuildSlides derives the slide sequence for a dataset. The count is fixed
// regardless of data completeness; only slide content varies.
func BuildSlides(data *api.Wrapped) []Slide {
	year := ""
	if data != nil && data.Year > 0 {
		year = " " + strconv.Itoa(data.Year)
	}

	return []Slide{
		{
			ID:         "intro",
			Title:      "Your Strava Wrapped" + year,
			Subtitle:   "A bold look at your epic year on Strava.",
			Background: "#7C3AED",
			Kind:       KindIntro,
		},
		{
			ID:         "consistency",
			Title:      "Consistency champion",
			Subtitle:   "Your rhythm, your streaks, your favourite weekday.",
			Background: "#2563EB",
			Kind:       KindConsistency,
		},
		{
			ID:         "volume",
			Title:      "Volume over time",
			Subtitle:   "Watch your kilometres stack up.",
			Background: "#0EA5E9",
			Kind:       KindVolume,
		},
		{
			ID:         "moments",
			Title:      "Big moments",
			Subtitle:   "Celebrate the days that mattered most.",
			Background: "#F59E0B",
			Kind:       KindMoments,
		},
		{
			ID:         "endurance",
			Title:      "Longest adventure",
			Subtitle:   "The session that just kept going.",
			Background: "#14B8A6",
			Kind:       KindEndurance,
		},
		{
			ID:         "crew",
			Title:      "Crew love",
			Subtitle:   "Kudos that kept you going.",
			Background: "#EC4899",
			Kind:       KindCrew,
		},
		{
			ID:         "heatmap",
			Title:      "Where you started",
			Subtitle:   "Hotspots from your start lines.",
			Background: "#1E293B",
			Kind:       KindHeatmap,
		},
		{
			ID:         "time-of-day",
			Title:      "Your time of day",
			Subtitle:   "Morning grinder or sunset cruiser?",
			Background: "#34D399",
			Kind:       KindTimeOfDay,
		},
		{
			ID:         "wrap-up",
			Title:      "Until next year",
			Subtitle:   "Favourite highlights from your season.",
			Background: "#F97316",
			Kind:       KindWrapUp,
		},
	}
}
