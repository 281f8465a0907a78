package timeframe

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestResolveWeekSpansMondayToSunday(t *testing.T) {
	// Every valid (year, week) must resolve to a Monday start, a Sunday
	// end, and an exact 6-day span.
	for year := 2020; year <= 2026; year++ {
		for week := 1; week <= 53; week++ {
			label := fmt.Sprintf("%d-W%02d", year, week)
			rng, err := Resolve(label)
			if err != nil {
				t.Fatalf("Resolve(%q) returned error: %v", label, err)
			}

			if rng.Start.Weekday() != time.Monday {
				t.Errorf("Resolve(%q) start weekday = %v, want Monday", label, rng.Start.Weekday())
			}
			if rng.End.Weekday() != time.Sunday {
				t.Errorf("Resolve(%q) end weekday = %v, want Sunday", label, rng.End.Weekday())
			}
			if days := rng.End.Sub(rng.Start).Hours() / 24; days != 6 {
				t.Errorf("Resolve(%q) span = %v days, want 6", label, days)
			}
		}
	}
}

func TestResolveWeek(t *testing.T) {
	tests := []struct {
		label string
		start string
		end   string
	}{
		// 2024 starts on a Monday, so week 1 starts Jan 1.
		{"2024-W01", "2024-01-01", "2024-01-07"},
		{"2024-W02", "2024-01-08", "2024-01-14"},
		{"2024-W10", "2024-03-04", "2024-03-10"},
		// Single-digit week numbers are accepted without padding.
		{"2024-W2", "2024-01-08", "2024-01-14"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			rng, err := Resolve(tt.label)
			if err != nil {
				t.Fatalf("Resolve(%q) returned error: %v", tt.label, err)
			}
			if rng.StartDate() != tt.start {
				t.Errorf("start = %s, want %s", rng.StartDate(), tt.start)
			}
			if rng.EndDate() != tt.end {
				t.Errorf("end = %s, want %s", rng.EndDate(), tt.end)
			}
		})
	}
}

func TestResolveMonth(t *testing.T) {
	tests := []struct {
		label string
		start string
		end   string
	}{
		{"2024-02", "2024-02-01", "2024-02-29"}, // leap year
		{"2023-02", "2023-02-01", "2023-02-28"},
		{"2024-01", "2024-01-01", "2024-01-31"},
		{"2024-04", "2024-04-01", "2024-04-30"},
		{"2024-12", "2024-12-01", "2024-12-31"},
		{"2024-7", "2024-07-01", "2024-07-31"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			rng, err := Resolve(tt.label)
			if err != nil {
				t.Fatalf("Resolve(%q) returned error: %v", tt.label, err)
			}
			if rng.StartDate() != tt.start {
				t.Errorf("start = %s, want %s", rng.StartDate(), tt.start)
			}
			if rng.EndDate() != tt.end {
				t.Errorf("end = %s, want %s", rng.EndDate(), tt.end)
			}
		})
	}
}

func TestResolveRejectsBadLabels(t *testing.T) {
	labels := []string{
		"",
		"garbage",
		"2024",
		"2024-W00",
		"2024-W54",
		"2024-00",
		"2024-13",
		"24-W01",
		"2024-W1x",
		"2024-02-03", // a date, not a bucket
		"W01-2024",
	}

	for _, label := range labels {
		t.Run(label, func(t *testing.T) {
			if _, err := Resolve(label); !errors.Is(err, ErrBadLabel) {
				t.Errorf("Resolve(%q) error = %v, want ErrBadLabel", label, err)
			}
		})
	}
}

func TestResolvedDatesAreUTCMidnight(t *testing.T) {
	for _, label := range []string{"2024-W07", "2024-07"} {
		rng, err := Resolve(label)
		if err != nil {
			t.Fatalf("Resolve(%q) returned error: %v", label, err)
		}
		for _, d := range []time.Time{rng.Start, rng.End} {
			if d.Location() != time.UTC {
				t.Errorf("Resolve(%q) produced non-UTC date %v", label, d)
			}
			if h, m, s := d.Clock(); h != 0 || m != 0 || s != 0 {
				t.Errorf("Resolve(%q) produced non-midnight date %v", label, d)
			}
		}
	}
}
