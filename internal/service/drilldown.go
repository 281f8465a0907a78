package service

import (
	"context"
	"fmt"
	"time"

	"strava-wrapped/internal/api"
	"strava-wrapped/internal/timeframe"
)

// DrillDown mediates between a gesture on an aggregate visualization and
// the detail modal behind it. At most one detail result is open at a time;
// each request carries a key so a response arriving after it has been
// superseded (or the modal closed) is dropped on the floor.
type DrillDown struct {
	nextKey    uint64
	pendingKey uint64
	title      string

	open       bool
	openTitle  string
	activities []api.ActivityHighlight
}

// DetailRequest is one on-demand detail fetch. It captures the filter at
// gesture time; a later filter change does not retarget it.
type DetailRequest struct {
	Key    uint64
	Title  string
	Filter api.ActivityFilter

	date       string
	start, end string
}

// Fetch executes the request against the collaborator. Each invocation is
// independent and uncached.
func (r *DetailRequest) Fetch(ctx context.Context, f Fetcher) ([]api.ActivityHighlight, error) {
	if r.date != "" {
		return f.GetDayActivities(ctx, r.Filter, r.date)
	}
	return f.GetPeriodActivities(ctx, r.Filter, r.start, r.end)
}

// OpenDay starts a drill-down into a single calendar day.
func (d *DrillDown) OpenDay(filter api.ActivityFilter, date time.Time) *DetailRequest {
	day := date.Format("2006-01-02")
	return d.begin(&DetailRequest{
		Title:  day,
		Filter: filter,
		date:   day,
	})
}

// OpenBucket starts a drill-down into a week or month bucket label. A
// label that resolves to no range is a no-op: no request is created and
// no modal will open.
func (d *DrillDown) OpenBucket(filter api.ActivityFilter, label string) (*DetailRequest, error) {
	rng, err := timeframe.Resolve(label)
	if err != nil {
		return nil, fmt.Errorf("resolving bucket %q: %w", label, err)
	}
	return d.begin(&DetailRequest{
		Title:  label,
		Filter: filter,
		start:  rng.StartDate(),
		end:    rng.EndDate(),
	}), nil
}

func (d *DrillDown) begin(req *DetailRequest) *DetailRequest {
	d.nextKey++
	req.Key = d.nextKey
	d.pendingKey = req.Key
	d.title = req.Title
	return req
}

// Apply delivers a finished fetch. Results whose key no longer matches the
// pending request are ignored; a failed fetch clears the pending state
// without opening a modal. Returns true when the state changed.
func (d *DrillDown) Apply(key uint64, activities []api.ActivityHighlight, err error) bool {
	if key != d.pendingKey {
		return false
	}
	d.pendingKey = 0
	if err != nil {
		return true
	}
	d.open = true
	d.openTitle = d.title
	d.activities = activities
	return true
}

// Pending reports whether a detail fetch is in flight.
func (d *DrillDown) Pending() bool { return d.pendingKey != 0 }

// Open reports whether a detail modal is showing.
func (d *DrillDown) Open() bool { return d.open }

// Title returns the label of the open modal.
func (d *DrillDown) Title() string { return d.openTitle }

// Activities returns the detail list of the open modal.
func (d *DrillDown) Activities() []api.ActivityHighlight { return d.activities }

// Close discards the open modal and any in-flight request. Cached
// aggregates are untouched; a late response simply no longer matches.
func (d *DrillDown) Close() {
	d.pendingKey = 0
	d.open = false
	d.openTitle = ""
	d.activities = nil
}
