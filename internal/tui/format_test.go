package tui

import (
	"testing"

	"strava-wrapped/internal/config"
)

func TestFormatDistance(t *testing.T) {
	km := NewUnits(config.DisplayConfig{DistanceUnit: "km"})
	mi := NewUnits(config.DisplayConfig{DistanceUnit: "mi"})

	if got := km.FormatDistance(42.195); got != "42.2 km" {
		t.Errorf("km distance = %q", got)
	}
	if got := mi.FormatDistance(160.934); got != "100.0 mi" {
		t.Errorf("mi distance = %q", got)
	}
}

func TestFormatBigDistance(t *testing.T) {
	km := NewUnits(config.DisplayConfig{DistanceUnit: "km"})
	if got := km.FormatBigDistance(12345.6); got != "12,345 km" {
		t.Errorf("big distance = %q", got)
	}
}

func TestFormatElevation(t *testing.T) {
	u := NewUnits(config.DisplayConfig{})
	if got := u.FormatElevation(85000); got != "85,000 m" {
		t.Errorf("elevation = %q", got)
	}
}

func TestFormatHours(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
	}{
		{0, "0m"},
		{0.5, "30m"},
		{1, "1h 0m"},
		{2.25, "2h 15m"},
		{100.75, "100h 45m"},
	}
	for _, tt := range tests {
		if got := formatHours(tt.hours); got != tt.want {
			t.Errorf("formatHours(%v) = %q, want %q", tt.hours, got, tt.want)
		}
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes float64
		want    string
	}{
		{0, "0m"},
		{45, "45m"},
		{60, "1h 00m"},
		{95, "1h 35m"},
		{125.9, "2h 05m"},
	}
	for _, tt := range tests {
		if got := formatMinutes(tt.minutes); got != tt.want {
			t.Errorf("formatMinutes(%v) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestTruncateName(t *testing.T) {
	if got := truncateName("short", 20); got != "short" {
		t.Errorf("short name = %q", got)
	}
	if got := truncateName("a very long activity name indeed", 10); got != "a very ..." {
		t.Errorf("truncated = %q", got)
	}
	if len(truncateName("a very long activity name indeed", 10)) != 10 {
		t.Error("truncated name exceeds max length")
	}
}
