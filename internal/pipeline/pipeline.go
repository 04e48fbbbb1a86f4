// Package pipeline orchestrates a batch run: dispatch every configured query
// to its fetcher, normalize and accumulate the rows, then dedupe the whole
// dataset once at the end. Dedup must be global, not per query — the same
// posting is expected to surface under many overlapping keyword searches.
package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"go-jobinsights/internal/dedup"
	"go-jobinsights/internal/schema"
	"go-jobinsights/internal/scraper"
)

// QueryStat records the outcome of one query.
type QueryStat struct {
	Query scraper.Query
	Rows  int
	Err   error // dispatch failure: unknown source or a recovered panic
}

// Result is the outcome of a full run.
type Result struct {
	Rows       []schema.Row // deduplicated, in first-seen order
	Stats      []QueryStat
	RawTotal   int
	Unique     int
	Duplicates int
}

// Failed returns the stats of queries that did not complete.
func (r *Result) Failed() []QueryStat {
	var failed []QueryStat
	for _, s := range r.Stats {
		if s.Err != nil {
			failed = append(failed, s)
		}
	}
	return failed
}

// Runner executes query lists against a fetcher registry.
type Runner struct {
	registry *scraper.Registry
	newDedup func() *dedup.Deduper
	log      *zap.SugaredLogger
}

// New builds a Runner over the registry, deduping with the default fuzzy key.
func New(registry *scraper.Registry, log *zap.SugaredLogger) *Runner {
	return &Runner{registry: registry, newDedup: dedup.New, log: log}
}

// NewWithDedup builds a Runner with a custom deduper constructor, for callers
// swapping in a stricter key.
func NewWithDedup(registry *scraper.Registry, newDedup func() *dedup.Deduper, log *zap.SugaredLogger) *Runner {
	return &Runner{registry: registry, newDedup: newDedup, log: log}
}

// Run executes the queries in order. One failing query never aborts the run:
// unknown sources and panicking fetchers are recorded on its stat and the run
// moves on. Fetcher output is normalized against the query's declared source
// before it joins the accumulating dataset.
func (r *Runner) Run(ctx context.Context, queries []scraper.Query) *Result {
	res := &Result{Stats: make([]QueryStat, 0, len(queries))}
	var all []schema.Row

	for i, q := range queries {
		r.log.Infof("[%d/%d] %s: %q in %s", i+1, len(queries), q.Source, q.Keyword, q.Location)

		rows, err := r.runQuery(ctx, q)
		normalized := schema.Normalize(q.Source, rows)
		all = append(all, normalized...)

		if err != nil {
			r.log.Warnw("query failed", "source", q.Source, "keyword", q.Keyword, "error", err)
		} else {
			r.log.Infof("  -> %d rows", len(normalized))
		}
		res.Stats = append(res.Stats, QueryStat{Query: q, Rows: len(normalized), Err: err})
	}

	res.RawTotal = len(all)
	res.Rows = r.newDedup().Filter(all)
	res.Unique = len(res.Rows)
	res.Duplicates = res.RawTotal - res.Unique

	r.log.Infof("raw total %d, unique %d, removed %d duplicates", res.RawTotal, res.Unique, res.Duplicates)
	return res
}

// runQuery dispatches one query behind a recover boundary. Fetchers promise
// never to fail, but a bug in one of them must not take the batch down.
func (r *Runner) runQuery(ctx context.Context, q scraper.Query) (rows []schema.Row, err error) {
	defer func() {
		if p := recover(); p != nil {
			rows = nil
			err = fmt.Errorf("fetcher panicked: %v", p)
		}
	}()

	fetcher, ok := r.registry.Lookup(q.Source)
	if !ok {
		return nil, fmt.Errorf("unknown source %q", q.Source)
	}
	return fetcher.Fetch(ctx, q), nil
}
