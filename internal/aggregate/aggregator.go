// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

package aggregate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/config"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/docstore"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/logging"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/metrics"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/models"
)

// ErrSourceUnavailable wraps every per-source failure recorded in a Result.
var ErrSourceUnavailable = errors.New("source unavailable")

// Result is the outcome of fetching one source. Exactly one of Documents or
// Err is meaningful.
type Result struct {
	Source    SourceDescriptor
	Documents []docstore.Document
	Err       error
	Outcome   string
	Duration  time.Duration
	Kept      int // records contributed after seen-id filtering
}

// RawRecord is a fetched document with its provenance-qualified identity.
type RawRecord struct {
	ID     models.RecordID
	Source string
	Data   map[string]interface{}
}

// Outcome is the merged result of one aggregation pass.
type Outcome struct {
	Records []RawRecord
	Results []Result
}

// AllFailed reports whether every configured source failed.
func (o *Outcome) AllFailed() bool {
	if len(o.Results) == 0 {
		return false
	}
	for i := range o.Results {
		if o.Results[i].Err == nil {
			return false
		}
	}
	return true
}

// Failed returns the names of sources that failed.
func (o *Outcome) Failed() []string {
	var names []string
	for i := range o.Results {
		if o.Results[i].Err != nil {
			names = append(names, o.Results[i].Source.Name)
		}
	}
	return names
}

// Aggregator fans out over configured sources and merges their documents.
// It is safe for concurrent use; the only state it keeps between calls is
// the per-source circuit breakers.
type Aggregator struct {
	store          docstore.Store
	sources        []SourceDescriptor
	breakers       []*sourceBreaker
	maxConcurrency int
}

// New creates an aggregator over store for the given sources.
func New(store docstore.Store, sources []SourceDescriptor, breaker config.BreakerConfig, maxConcurrency int) *Aggregator {
	breakers := make([]*sourceBreaker, len(sources))
	for i, s := range sources {
		breakers[i] = newSourceBreaker(s.Name, breaker)
	}
	if maxConcurrency <= 0 {
		maxConcurrency = max(len(sources), 1)
	}
	return &Aggregator{
		store:          store,
		sources:        sources,
		breakers:       breakers,
		maxConcurrency: maxConcurrency,
	}
}

// Sources returns the configured source descriptors.
func (a *Aggregator) Sources() []SourceDescriptor {
	return a.sources
}

// Aggregate queries every source concurrently and merges the documents in
// source order. A failed source contributes nothing; it never fails the call.
// Once an identity has been seen, later copies from overlapping sources are
// skipped.
func (a *Aggregator) Aggregate(ctx context.Context) *Outcome {
	results := make([]Result, len(a.sources))

	var g errgroup.Group
	g.SetLimit(a.maxConcurrency)
	for i := range a.sources {
		g.Go(func() error {
			results[i] = a.fetch(ctx, i)
			return nil
		})
	}
	_ = g.Wait() //nolint:errcheck // fetch goroutines never return an error

	out := &Outcome{Results: results}
	seen := make(map[string]struct{})
	fetched := 0

	for i := range results {
		r := &results[i]
		if r.Err != nil {
			logging.Ctx(ctx).Warn().
				Err(r.Err).
				Str("source", r.Source.Name).
				Str("collection", r.Source.Ref.String()).
				Str("outcome", r.Outcome).
				Msg("Source fetch failed, continuing without it")
			continue
		}
		fetched += len(r.Documents)

		for _, doc := range r.Documents {
			id := recordID(doc)
			key := id.String()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out.Records = append(out.Records, RawRecord{ID: id, Source: r.Source.Name, Data: doc.Data})
			r.Kept++
		}
	}

	metrics.RecordPipelineStage(metrics.StageFetched, fetched)
	if out.AllFailed() {
		metrics.AggregationTotalFailures.Inc()
		logging.Ctx(ctx).Error().
			Int("sources", len(results)).
			Msg("Every station source failed")
	}

	logging.Ctx(ctx).Debug().
		Int("sources", len(results)).
		Int("failed", len(out.Failed())).
		Int("documents", fetched).
		Int("records", len(out.Records)).
		Msg("Aggregation complete")
	return out
}

func (a *Aggregator) fetch(ctx context.Context, i int) Result {
	src := a.sources[i]
	cb := a.breakers[i]
	start := time.Now()

	fetchCtx := ctx
	if src.Timeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, src.Timeout)
		defer cancel()
	}

	docs, err := cb.Execute(func() ([]docstore.Document, error) {
		return a.store.Query(fetchCtx, src.Ref, src.Filter, src.PageSize)
	})
	recordBreakerOutcome(cb, err)

	res := Result{Source: src, Duration: time.Since(start)}
	switch {
	case err == nil:
		res.Documents = docs
		res.Outcome = metrics.OutcomeSuccess
	case isRejected(err):
		res.Outcome = metrics.OutcomeRejected
	case errors.Is(err, context.DeadlineExceeded):
		res.Outcome = metrics.OutcomeTimeout
	default:
		res.Outcome = metrics.OutcomeFailure
	}
	if err != nil {
		res.Err = fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, src.Name, err)
	}

	metrics.RecordSourceFetch(src.Name, res.Outcome, res.Duration, len(res.Documents))
	return res
}

// recordID derives the provenance-qualified identity of a fetched document.
func recordID(doc docstore.Document) models.RecordID {
	if doc.Path.Nested() {
		return models.NestedID(doc.Path.ParentID, doc.Path.Collection, doc.Path.ID)
	}
	return models.FlatID(doc.Path.Collection, doc.Path.ID)
}
