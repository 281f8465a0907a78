package service

import (
	"context"
	"errors"
	"testing"

	"strava-wrapped/internal/api"
)

// fakeFetcher serves canned aggregates, tagging each response with the
// filter it was asked for so staleness tests can tell waves apart.
type fakeFetcher struct {
	distanceByFilter map[api.ActivityFilter]float64

	summaryErr    error
	trendsErr     error
	highlightsErr error
	factsErr      error

	dayCalls    int
	periodCalls int
}

func (f *fakeFetcher) distance(filter api.ActivityFilter) float64 {
	if f.distanceByFilter == nil {
		return 0
	}
	return f.distanceByFilter[filter]
}

func (f *fakeFetcher) GetSummary(_ context.Context, filter api.ActivityFilter) (*api.Summary, error) {
	if f.summaryErr != nil {
		return nil, f.summaryErr
	}
	return &api.Summary{
		TotalDistanceKm: f.distance(filter),
		ActivityType:    string(filter),
	}, nil
}

func (f *fakeFetcher) GetTrends(_ context.Context, filter api.ActivityFilter) (*api.Trends, error) {
	if f.trendsErr != nil {
		return nil, f.trendsErr
	}
	return &api.Trends{ActivityType: string(filter)}, nil
}

func (f *fakeFetcher) GetHighlights(_ context.Context, filter api.ActivityFilter) (*api.Highlights, error) {
	if f.highlightsErr != nil {
		return nil, f.highlightsErr
	}
	return &api.Highlights{ActivityType: string(filter)}, nil
}

func (f *fakeFetcher) GetFacts(_ context.Context, filter api.ActivityFilter) (*api.Facts, error) {
	if f.factsErr != nil {
		return nil, f.factsErr
	}
	return &api.Facts{Facts: []string{"fact for " + string(filter)}}, nil
}

func (f *fakeFetcher) GetDayActivities(_ context.Context, _ api.ActivityFilter, _ string) ([]api.ActivityHighlight, error) {
	f.dayCalls++
	return nil, nil
}

func (f *fakeFetcher) GetPeriodActivities(_ context.Context, _ api.ActivityFilter, _, _ string) ([]api.ActivityHighlight, error) {
	f.periodCalls++
	return nil, nil
}

func TestBatchSuccessPopulatesAllCaches(t *testing.T) {
	fetcher := &fakeFetcher{distanceByFilter: map[api.ActivityFilter]float64{api.FilterAll: 1234.5}}
	p := NewProvider(fetcher, api.FilterAll)

	if p.Loading() {
		t.Error("provider should not be loading before the first batch")
	}

	batch := p.Refresh()
	if !p.Loading() {
		t.Error("loading should be true while the batch is outstanding")
	}

	res := batch.Run(context.Background())
	if !p.Apply(res) {
		t.Fatal("Apply returned false for the latest batch")
	}

	if p.Loading() {
		t.Error("loading should be false after the batch settles")
	}
	if p.Err() != "" {
		t.Errorf("unexpected error: %s", p.Err())
	}

	data := p.Data()
	if data == nil {
		t.Fatal("no data after successful batch")
	}
	if data.Summary.TotalDistanceKm != 1234.5 {
		t.Errorf("summary distance = %v, want 1234.5", data.Summary.TotalDistanceKm)
	}
	if data.Trends == nil || data.Highlights == nil || len(data.Facts) == 0 {
		t.Error("batch did not populate all four caches")
	}
}

func TestBatchAtomicityOnPartialFailure(t *testing.T) {
	fetcher := &fakeFetcher{distanceByFilter: map[api.ActivityFilter]float64{api.FilterAll: 100}}
	p := NewProvider(fetcher, api.FilterAll)

	// Seed the caches with a good load.
	if !p.Apply(p.Refresh().Run(context.Background())) {
		t.Fatal("seeding batch was not applied")
	}
	seeded := p.Data()

	// Next wave: highlights fails, the other three succeed.
	fetcher.highlightsErr = errors.New("highlights exploded")
	fetcher.distanceByFilter[api.FilterAll] = 999

	if !p.Apply(p.Refresh().Run(context.Background())) {
		t.Fatal("failed batch result was not applied")
	}

	if p.Err() == "" {
		t.Error("batch failure should record an error")
	}
	if p.Data() != seeded {
		t.Error("a failed batch must not touch any cache")
	}
	if p.Data().Summary.TotalDistanceKm != 100 {
		t.Errorf("stale summary overwritten: distance = %v, want 100", p.Data().Summary.TotalDistanceKm)
	}
}

func TestStaleBatchDiscarded(t *testing.T) {
	fetcher := &fakeFetcher{distanceByFilter: map[api.ActivityFilter]float64{
		api.FilterRide: 111,
		api.FilterRun:  222,
	}}
	p := NewProvider(fetcher, api.FilterAll)

	// Filter change A, immediately superseded by filter change B.
	batchA := p.SetFilter(api.FilterRide)
	batchB := p.SetFilter(api.FilterRun)

	resA := batchA.Run(context.Background())
	resB := batchB.Run(context.Background())

	// B's response arrives first; A's arrives late.
	if !p.Apply(resB) {
		t.Fatal("latest batch result was not applied")
	}
	if p.Apply(resA) {
		t.Error("superseded batch result must be discarded")
	}

	if got := p.Data().Summary.TotalDistanceKm; got != 222 {
		t.Errorf("caches reflect stale filter: distance = %v, want 222", got)
	}
	if p.Data().Summary.ActivityType != "Run" {
		t.Errorf("caches tagged %q, want Run", p.Data().Summary.ActivityType)
	}
}

func TestStaleBatchDoesNotClearLoading(t *testing.T) {
	fetcher := &fakeFetcher{}
	p := NewProvider(fetcher, api.FilterAll)

	batchA := p.Refresh()
	resA := batchA.Run(context.Background())
	p.Refresh() // supersedes A, still outstanding

	if p.Apply(resA) {
		t.Error("stale result applied")
	}
	if !p.Loading() {
		t.Error("stale result must not clear the newer batch's loading flag")
	}
}

func TestSetFilterSameValueIsNoop(t *testing.T) {
	p := NewProvider(&fakeFetcher{}, api.FilterRide)
	if b := p.SetFilter(api.FilterRide); b != nil {
		t.Error("SetFilter with the active filter should not start a batch")
	}
	if p.Loading() {
		t.Error("no-op filter change should not set loading")
	}
}

func TestBatchErrorClearedBySuccess(t *testing.T) {
	fetcher := &fakeFetcher{factsErr: errors.New("boom")}
	p := NewProvider(fetcher, api.FilterAll)

	p.Apply(p.Refresh().Run(context.Background()))
	if p.Err() == "" {
		t.Fatal("expected recorded error")
	}

	fetcher.factsErr = nil
	p.Apply(p.Refresh().Run(context.Background()))
	if p.Err() != "" {
		t.Errorf("error should clear on success, got %q", p.Err())
	}
}

func TestBatchCarriesFilterAtIssueTime(t *testing.T) {
	fetcher := &fakeFetcher{}
	p := NewProvider(fetcher, api.FilterAll)

	batch := p.SetFilter(api.FilterOther)
	if batch.Filter() != api.FilterOther {
		t.Errorf("batch filter = %v, want Other", batch.Filter())
	}

	// A later filter change must not retroactively affect the old batch.
	p.SetFilter(api.FilterRun)
	if batch.Filter() != api.FilterOther {
		t.Error("batch filter mutated after a later filter change")
	}
}
