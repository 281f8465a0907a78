package tui

import (
	"fmt"

	"strava-wrapped/internal/config"

	"github.com/dustin/go-humanize"
)

const kmPerMile = 1.60934

// Units provides unit conversion and formatting based on user preferences.
// The backend delivers metric values; conversion happens at render time.
type Units struct {
	cfg config.DisplayConfig
}

// NewUnits creates a new Units helper with the given display config
func NewUnits(cfg config.DisplayConfig) Units {
	return Units{cfg: cfg}
}

// FormatDistance formats a distance in kilometers to the preferred unit
func (u Units) FormatDistance(km float64) string {
	if u.cfg.DistanceUnit == "mi" {
		return fmt.Sprintf("%.1f mi", km/kmPerMile)
	}
	return fmt.Sprintf("%.1f km", km)
}

// FormatBigDistance formats a large distance total with digit grouping
func (u Units) FormatBigDistance(km float64) string {
	if u.cfg.DistanceUnit == "mi" {
		return humanize.CommafWithDigits(km/kmPerMile, 0) + " mi"
	}
	return humanize.CommafWithDigits(km, 0) + " km"
}

// FormatElevation formats an elevation gain in meters
func (u Units) FormatElevation(meters float64) string {
	return humanize.CommafWithDigits(meters, 0) + " m"
}

// formatHours formats a duration given in hours as "Xh Ym"
func formatHours(hours float64) string {
	h := int(hours)
	m := int((hours - float64(h)) * 60)
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

// formatMinutes formats a duration given in minutes as "H:MM" or "Mm"
func formatMinutes(minutes float64) string {
	total := int(minutes)
	h := total / 60
	m := total % 60
	if h > 0 {
		return fmt.Sprintf("%dh %02dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

func truncateName(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
