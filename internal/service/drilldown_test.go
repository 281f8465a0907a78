package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"strava-wrapped/internal/api"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return d
}

func TestDrillDownOpenDay(t *testing.T) {
	var d DrillDown

	req := d.OpenDay(api.FilterAll, mustDate(t, "2024-03-05"))
	if req == nil {
		t.Fatal("OpenDay returned nil request")
	}
	if req.Title != "2024-03-05" {
		t.Errorf("title = %q, want 2024-03-05", req.Title)
	}
	if !d.Pending() {
		t.Error("drill-down should be pending after OpenDay")
	}
	if d.Open() {
		t.Error("modal must not open before the result arrives")
	}

	acts := []api.ActivityHighlight{{ID: 1, Name: "Morning Ride"}}
	if !d.Apply(req.Key, acts, nil) {
		t.Fatal("Apply rejected the pending request's result")
	}

	if !d.Open() {
		t.Error("modal should open on success")
	}
	if d.Title() != "2024-03-05" {
		t.Errorf("open title = %q, want 2024-03-05", d.Title())
	}
	if len(d.Activities()) != 1 || d.Activities()[0].ID != 1 {
		t.Error("modal shows wrong activities")
	}
}

func TestDrillDownSupersession(t *testing.T) {
	var d DrillDown

	req1 := d.OpenDay(api.FilterAll, mustDate(t, "2024-03-05"))
	req2 := d.OpenDay(api.FilterAll, mustDate(t, "2024-03-06"))

	// D1's response arrives after D2 was opened: it must be dropped.
	if d.Apply(req1.Key, []api.ActivityHighlight{{ID: 1}}, nil) {
		t.Error("superseded result was applied")
	}
	if d.Open() {
		t.Error("stale response must not open a modal")
	}

	if !d.Apply(req2.Key, []api.ActivityHighlight{{ID: 2}}, nil) {
		t.Fatal("latest result rejected")
	}
	if got := d.Activities()[0].ID; got != 2 {
		t.Errorf("modal shows activity %d, want 2", got)
	}
}

func TestDrillDownMalformedLabelIsNoop(t *testing.T) {
	var d DrillDown
	fetcher := &fakeFetcher{}

	req, err := d.OpenBucket(api.FilterAll, "garbage")
	if err == nil {
		t.Fatal("OpenBucket accepted a malformed label")
	}
	if req != nil {
		t.Fatal("malformed label produced a request")
	}
	if d.Pending() || d.Open() {
		t.Error("malformed label changed drill-down state")
	}
	if fetcher.dayCalls != 0 || fetcher.periodCalls != 0 {
		t.Error("malformed label caused a network call")
	}
}

func TestDrillDownBucketRequests(t *testing.T) {
	var d DrillDown
	fetcher := &fakeFetcher{}

	tests := []struct {
		label string
	}{
		{"2024-W10"},
		{"2024-06"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			req, err := d.OpenBucket(api.FilterRide, tt.label)
			if err != nil {
				t.Fatalf("OpenBucket(%q) error: %v", tt.label, err)
			}
			if req.Filter != api.FilterRide {
				t.Errorf("request filter = %v, want Ride", req.Filter)
			}
			if req.Title != tt.label {
				t.Errorf("request title = %q, want %q", req.Title, tt.label)
			}
			if _, err := req.Fetch(context.Background(), fetcher); err != nil {
				t.Fatalf("Fetch error: %v", err)
			}
		})
	}

	if fetcher.periodCalls != 2 {
		t.Errorf("period calls = %d, want 2", fetcher.periodCalls)
	}
	if fetcher.dayCalls != 0 {
		t.Errorf("day calls = %d, want 0", fetcher.dayCalls)
	}
}

func TestDrillDownDayRequestUsesDayEndpoint(t *testing.T) {
	var d DrillDown
	fetcher := &fakeFetcher{}

	req := d.OpenDay(api.FilterAll, mustDate(t, "2024-03-05"))
	if _, err := req.Fetch(context.Background(), fetcher); err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if fetcher.dayCalls != 1 || fetcher.periodCalls != 0 {
		t.Errorf("calls = day %d / period %d, want 1 / 0", fetcher.dayCalls, fetcher.periodCalls)
	}
}

func TestDrillDownFetchFailureLeavesModalClosed(t *testing.T) {
	var d DrillDown

	req := d.OpenDay(api.FilterAll, mustDate(t, "2024-03-05"))
	if !d.Apply(req.Key, nil, errors.New("backend down")) {
		t.Fatal("failure for the pending request should still settle it")
	}
	if d.Open() {
		t.Error("failed fetch must not open a modal")
	}
	if d.Pending() {
		t.Error("failed fetch should clear the pending request")
	}
}

func TestDrillDownCloseDropsLateResponse(t *testing.T) {
	var d DrillDown

	req := d.OpenDay(api.FilterAll, mustDate(t, "2024-03-05"))
	d.Close()

	if d.Apply(req.Key, []api.ActivityHighlight{{ID: 1}}, nil) {
		t.Error("response for a closed request was applied")
	}
	if d.Open() {
		t.Error("closed drill-down reopened by a late response")
	}
}

func TestDrillDownCloseClearsState(t *testing.T) {
	var d DrillDown

	req := d.OpenDay(api.FilterAll, mustDate(t, "2024-03-05"))
	d.Apply(req.Key, []api.ActivityHighlight{{ID: 1}}, nil)

	d.Close()
	if d.Open() || d.Title() != "" || d.Activities() != nil {
		t.Error("Close did not clear the detail state")
	}
}
