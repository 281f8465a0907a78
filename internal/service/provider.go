// Package service owns the client-side data orchestration: the aggregate
// caches keyed by the active activity filter, the generation-guarded batch
// protocol that refreshes them, and the drill-down state machine.
//
// All mutation happens on the TUI event loop; the only concurrency is the
// fan-out inside Batch.Run, which returns a single immutable result for the
// loop to apply. Correctness rests on generation ordering, not locks.
package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"strava-wrapped/internal/api"
)

// Fetcher is the HTTP collaborator surface the provider needs. *api.Client
// satisfies it; tests substitute fakes.
type Fetcher interface {
	GetSummary(ctx context.Context, filter api.ActivityFilter) (*api.Summary, error)
	GetTrends(ctx context.Context, filter api.ActivityFilter) (*api.Trends, error)
	GetHighlights(ctx context.Context, filter api.ActivityFilter) (*api.Highlights, error)
	GetFacts(ctx context.Context, filter api.ActivityFilter) (*api.Facts, error)
	GetDayActivities(ctx context.Context, filter api.ActivityFilter, date string) ([]api.ActivityHighlight, error)
	GetPeriodActivities(ctx context.Context, filter api.ActivityFilter, start, end string) ([]api.ActivityHighlight, error)
}

// Aggregates bundles the four datasets of one successful batch. A provider
// swaps the whole bundle in a single assignment, so consumers never observe
// a partial update.
type Aggregates struct {
	Summary    *api.Summary
	Trends     *api.Trends
	Highlights *api.Highlights
	Facts      []string
}

// Provider is the sole authority for the aggregate caches and the active
// filter. Only the event loop calls its mutating methods.
type Provider struct {
	fetcher Fetcher

	filter  api.ActivityFilter
	gen     uint64
	loading bool
	errMsg  string
	data    *Aggregates
}

// NewProvider creates a provider scoped to the given initial filter. No
// data is loaded until the first batch runs.
func NewProvider(fetcher Fetcher, filter api.ActivityFilter) *Provider {
	return &Provider{fetcher: fetcher, filter: filter}
}

// Filter returns the active activity filter.
func (p *Provider) Filter() api.ActivityFilter { return p.filter }

// Fetcher exposes the HTTP collaborator for on-demand detail fetches.
func (p *Provider) Fetcher() Fetcher { return p.fetcher }

// Loading reports whether a batch is outstanding.
func (p *Provider) Loading() bool { return p.loading }

// Err returns the last batch error message, empty after a success.
func (p *Provider) Err() string { return p.errMsg }

// Data returns the cached aggregates, nil before the first successful
// batch. A batch failure leaves the previous bundle in place.
func (p *Provider) Data() *Aggregates { return p.data }

// SetFilter switches the active filter and starts a superseding batch.
// Returns nil when the filter is unchanged.
func (p *Provider) SetFilter(filter api.ActivityFilter) *Batch {
	if filter == p.filter {
		return nil
	}
	p.filter = filter
	return p.startBatch()
}

// Refresh unconditionally starts a new batch for the current filter.
func (p *Provider) Refresh() *Batch {
	return p.startBatch()
}

func (p *Provider) startBatch() *Batch {
	p.gen++
	p.loading = true
	return &Batch{gen: p.gen, filter: p.filter, fetcher: p.fetcher}
}

// Apply folds a finished batch into the caches. Results from superseded
// generations are discarded; the return value reports whether anything
// was applied. On failure the error is recorded and the caches keep their
// previous values.
func (p *Provider) Apply(res BatchResult) bool {
	if res.Gen != p.gen {
		return false
	}
	p.loading = false
	if res.Err != nil {
		p.errMsg = res.Err.Error()
		return true
	}
	p.errMsg = ""
	p.data = res.Data
	return true
}

// Batch is one four-way retrieval wave. It carries everything Run needs so
// it can execute off the event loop without touching the provider.
type Batch struct {
	gen     uint64
	filter  api.ActivityFilter
	fetcher Fetcher
}

// Gen returns the batch's generation token.
func (b *Batch) Gen() uint64 { return b.gen }

// Filter returns the filter the batch was issued for.
func (b *Batch) Filter() api.ActivityFilter { return b.filter }

// BatchResult is the settled outcome of a batch: either a complete bundle
// or a single error, never a mix.
type BatchResult struct {
	Gen    uint64
	Filter api.ActivityFilter
	Data   *Aggregates
	Err    error
}

// Run issues the four aggregate requests concurrently and joins them. The
// first failure cancels the rest and fails the whole batch.
func (b *Batch) Run(ctx context.Context) BatchResult {
	var (
		summary    *api.Summary
		trends     *api.Trends
		highlights *api.Highlights
		facts      *api.Facts
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summary, err = b.fetcher.GetSummary(ctx, b.filter)
		return err
	})
	g.Go(func() error {
		var err error
		trends, err = b.fetcher.GetTrends(ctx, b.filter)
		return err
	})
	g.Go(func() error {
		var err error
		highlights, err = b.fetcher.GetHighlights(ctx, b.filter)
		return err
	})
	g.Go(func() error {
		var err error
		facts, err = b.fetcher.GetFacts(ctx, b.filter)
		return err
	})

	if err := g.Wait(); err != nil {
		return BatchResult{Gen: b.gen, Filter: b.filter, Err: err}
	}

	return BatchResult{
		Gen:    b.gen,
		Filter: b.filter,
		Data: &Aggregates{
			Summary:    summary,
			Trends:     trends,
			Highlights: highlights,
			Facts:      facts.Facts,
		},
	}
}
