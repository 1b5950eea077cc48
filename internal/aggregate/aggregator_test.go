// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

package aggregate

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/config"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/docstore"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/geo"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/metrics"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/models"
)

var testBreaker = config.BreakerConfig{
	MaxRequests:  1,
	Interval:     time.Minute,
	Timeout:      time.Minute,
	MinRequests:  100,
	FailureRatio: 0.6,
}

// fakeStore serves canned documents per collection ref and fails refs in errs.
type fakeStore struct {
	docs  map[docstore.CollectionRef][]docstore.Document
	errs  map[docstore.CollectionRef]error
	block map[docstore.CollectionRef]bool
	calls atomic.Int32
}

func (f *fakeStore) Query(ctx context.Context, ref docstore.CollectionRef, _ *docstore.FieldFilter, limit int) ([]docstore.Document, error) {
	f.calls.Add(1)
	if f.block[ref] {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if err := f.errs[ref]; err != nil {
		return nil, err
	}
	docs := f.docs[ref]
	if limit > 0 && len(docs) > limit {
		docs = docs[:limit]
	}
	return docs, nil
}

func (f *fakeStore) Get(context.Context, string) (docstore.Document, error) {
	return docstore.Document{}, docstore.ErrNotFound
}

func (f *fakeStore) Put(context.Context, string, map[string]interface{}) error { return nil }
func (f *fakeStore) Ping(context.Context) error { return nil }
func (f *fakeStore) Close() error { return nil }

func flatRef(c string) docstore.CollectionRef { return docstore.CollectionRef{Collection: c} }

func doc(t *testing.T, path string, data map[string]interface{}) docstore.Document {
	t.Helper()
	p, err := docstore.ParsePath(path)
	if err != nil {
		t.Fatalf("ParsePath(%s) error = %v", path, err)
	}
	return docstore.Document{Path: p, Data: data}
}

func TestAggregate_FlatAndNestedIdentity(t *testing.T) {
	store, err := docstore.OpenBadger("", true)
	if err != nil {
		t.Fatalf("OpenBadger() error = %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	station := map[string]interface{}{"name": "Central EV", "latitude": 19.0760, "longitude": 72.8777}
	if err := store.Put(ctx, "stations/s1", station); err != nil {
		t.Fatal(err)
	}
	if err := store.Put(ctx, "owners/ownerA/stations/s1", station); err != nil {
		t.Fatal(err)
	}

	sources := DescriptorsFromConfig(&config.DiscoveryConfig{
		PageSize:         500,
		SourceTimeout:    time.Second,
		ParentCollection: "owners",
		Sources: []config.SourceConfig{
			{Name: "stations", Kind: config.SourceKindFlat, Collection: "stations"},
			{Name: "owner-stations", Kind: config.SourceKindNested, Collection: "stations"},
		},
	})

	agg := New(store, sources, testBreaker, 2)
	out := agg.Aggregate(ctx)

	if len(out.Records) != 2 {
		t.Fatalf("Aggregate() returned %d records, want 2", len(out.Records))
	}
	if got := out.Records[0].ID.String(); got != "s1" {
		t.Errorf("flat id = %q, want s1", got)
	}
	if got := out.Records[1].ID.String(); got != "ownerA/stations/s1" {
		t.Errorf("nested id = %q, want ownerA/stations/s1", got)
	}
	if out.Records[1].ID.Tag() != models.SourceNested || out.Records[1].ID.Owner() != "ownerA" {
		t.Errorf("nested provenance = %+v", out.Records[1].ID)
	}

	records, dropped := Normalize(out.Records, geo.DefaultNormalizer())
	if dropped != 0 || len(records) != 2 {
		t.Fatalf("Normalize() = %d records, %d dropped", len(records), dropped)
	}
	if records[1].OwnerID != "ownerA" || records[1].SourceTag != models.SourceNested {
		t.Errorf("nested record = %+v", records[1])
	}
}

func TestAggregate_SeenIDsAcrossOverlappingSources(t *testing.T) {
	store := &fakeStore{docs: map[docstore.CollectionRef][]docstore.Document{
		flatRef("stations"):         {doc(t, "stations/s1", map[string]interface{}{"name": "first"})},
		flatRef("chargingStations"): {doc(t, "chargingStations/s1", map[string]interface{}{"name": "second"}), doc(t, "chargingStations/s2", nil)},
	}}
	sources := []SourceDescriptor{
		{Name: "stations", Ref: flatRef("stations")},
		{Name: "charging", Ref: flatRef("chargingStations")},
	}

	out := New(store, sources, testBreaker, 0).Aggregate(context.Background())
	if len(out.Records) != 2 {
		t.Fatalf("got %d records, want 2", len(out.Records))
	}
	if out.Records[0].Data["name"] != "first" {
		t.Errorf("first source should win, got %v", out.Records[0].Data["name"])
	}
	if out.Results[1].Kept != 1 {
		t.Errorf("second source kept %d, want 1", out.Results[1].Kept)
	}
}

func TestAggregate_PartialFailure(t *testing.T) {
	group := docstore.CollectionRef{Collection: "stations", Parent: "owners", Group: true}
	store := &fakeStore{
		docs: map[docstore.CollectionRef][]docstore.Document{
			flatRef("stations"): {doc(t, "stations/ok", map[string]interface{}{"lat": 1.0, "lng": 2.0})},
		},
		errs:  map[docstore.CollectionRef]error{flatRef("broken"): errors.New("collection missing")},
		block: map[docstore.CollectionRef]bool{group: true},
	}
	sources := []SourceDescriptor{
		{Name: "stations", Ref: flatRef("stations")},
		{Name: "broken", Ref: flatRef("broken")},
		{Name: "slow", Ref: group, Timeout: 20 * time.Millisecond},
	}

	out := New(store, sources, testBreaker, 3).Aggregate(context.Background())

	if len(out.Records) != 1 || out.Records[0].ID.String() != "ok" {
		t.Fatalf("records = %+v", out.Records)
	}
	if out.AllFailed() {
		t.Error("AllFailed() = true with one healthy source")
	}
	if got := out.Failed(); len(got) != 2 || got[0] != "broken" || got[1] != "slow" {
		t.Errorf("Failed() = %v", got)
	}
	if out.Results[1].Outcome != metrics.OutcomeFailure || !errors.Is(out.Results[1].Err, ErrSourceUnavailable) {
		t.Errorf("broken result = %+v", out.Results[1])
	}
	if out.Results[2].Outcome != metrics.OutcomeTimeout || !errors.Is(out.Results[2].Err, context.DeadlineExceeded) {
		t.Errorf("slow result = %+v", out.Results[2])
	}
}

func TestAggregate_TotalFailure(t *testing.T) {
	store := &fakeStore{errs: map[docstore.CollectionRef]error{
		flatRef("a"): errors.New("down"),
		flatRef("b"): errors.New("down"),
	}}
	sources := []SourceDescriptor{{Name: "a", Ref: flatRef("a")}, {Name: "b", Ref: flatRef("b")}}

	out := New(store, sources, testBreaker, 1).Aggregate(context.Background())
	if len(out.Records) != 0 {
		t.Errorf("records = %d, want 0", len(out.Records))
	}
	if !out.AllFailed() {
		t.Error("AllFailed() = false, want true")
	}
}

func TestAggregate_NoSources(t *testing.T) {
	out := New(&fakeStore{}, nil, testBreaker, 0).Aggregate(context.Background())
	if len(out.Records) != 0 || out.AllFailed() {
		t.Errorf("empty aggregation = %+v", out)
	}
}

func TestAggregate_BreakerOpens(t *testing.T) {
	store := &fakeStore{errs: map[docstore.CollectionRef]error{flatRef("flaky"): errors.New("boom")}}
	sources := []SourceDescriptor{{Name: "flaky", Ref: flatRef("flaky")}}
	cfg := testBreaker
	cfg.MinRequests = 2
	cfg.FailureRatio = 0.5

	agg := New(store, sources, cfg, 1)
	for i := 0; i < 2; i++ {
		agg.Aggregate(context.Background())
	}
	calls := store.calls.Load()

	out := agg.Aggregate(context.Background())
	if out.Results[0].Outcome != metrics.OutcomeRejected {
		t.Errorf("outcome = %q, want rejected", out.Results[0].Outcome)
	}
	if store.calls.Load() != calls {
		t.Error("open breaker should not reach the store")
	}
}

func TestNormalize_Defaults(t *testing.T) {
	t.Parallel()

	raws := []RawRecord{
		{ID: models.FlatID("stations", "a"), Data: map[string]interface{}{"lat": 19.07, "lng": 72.87}},
		{ID: models.FlatID("stations", "b"), Data: map[string]interface{}{"name": "  Bay  ", "status": "inactive", "ownerId": "o9",
			"location": map[string]interface{}{"lat": 19.0, "lng": 72.0, "address": "MG Road"}}},
		{ID: models.FlatID("stations", "c"), Data: map[string]interface{}{"name": "no coords"}},
	}

	records, dropped := Normalize(raws, geo.DefaultNormalizer())
	if dropped != 1 || len(records) != 2 {
		t.Fatalf("Normalize() = %d records, %d dropped", len(records), dropped)
	}
	if records[0].Name != models.DefaultStationName || records[0].Status != models.StatusActive {
		t.Errorf("defaults not applied: %+v", records[0])
	}
	if records[1].Name != "Bay" || records[1].OwnerID != "o9" || records[1].Address != "MG Road" || records[1].IsActive() {
		t.Errorf("fields not mapped: %+v", records[1])
	}
}
