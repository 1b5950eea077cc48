// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

package discovery

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/aggregate"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/config"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/docstore"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/geo"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/metrics"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/models"
)

var mumbaiCentral = models.Coordinates{Lat: 19.0760, Lng: 72.8777}

var fixture = map[string]map[string]interface{}{
	"stations/s1": {
		"name": "Central EV", "latitude": 19.0760, "longitude": 72.8777, "status": "active",
	},
	"owners/ownerA/stations/s1": {
		"name": "Central EV", "latitude": 19.0760, "longitude": 72.8777, "status": "active",
	},
	"stations/s2": {
		"name": "Andheri Charge Hub", "location": map[string]interface{}{"lat": 19.1136, "lng": 72.8697},
		"status": "inactive",
	},
	"stations/s3": {
		"name": "Pune Fast Charge", "coordinates": "18.5204, 73.8567", "city": "Pune",
	},
	"stations/s4": {
		"name": "Nowhere Plug", "address": "unknown",
	},
}

// newTestEngine seeds an in-memory badger store with the fixture and wires
// one flat and one nested source over it.
func newTestEngine(t *testing.T, strict bool) (*Engine, docstore.Store) {
	t.Helper()

	store, err := docstore.OpenBadger("", true)
	if err != nil {
		t.Fatalf("OpenBadger() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	for path, data := range fixture {
		if err := store.Put(ctx, path, data); err != nil {
			t.Fatalf("Put(%s) error = %v", path, err)
		}
	}

	cfg := &config.DiscoveryConfig{
		PageSize:          500,
		SourceTimeout:     2 * time.Second,
		ParentCollection:  "owners",
		StrictAggregation: strict,
		Sources: []config.SourceConfig{
			{Name: "stations", Kind: config.SourceKindFlat, Collection: "stations"},
			{Name: "owner-stations", Kind: config.SourceKindNested, Collection: "stations"},
		},
	}
	breaker := config.BreakerConfig{
		MaxRequests:  1,
		Interval:     time.Minute,
		Timeout:      time.Minute,
		MinRequests:  100,
		FailureRatio: 0.6,
	}
	agg := aggregate.New(store, aggregate.DescriptorsFromConfig(cfg), breaker, 2)
	return New(agg, nil, OptionsFromConfig(cfg)), store
}

func names(records []models.StationRecord) []string {
	out := make([]string, len(records))
	for i := range records {
		out[i] = records[i].Name
	}
	return out
}

func TestNearby(t *testing.T) {
	e, _ := newTestEngine(t, false)
	ctx := context.Background()

	res, err := e.Nearby(ctx, NearbyRequest{Lat: mumbaiCentral.Lat, Lng: mumbaiCentral.Lng, Radius: 25})
	if err != nil {
		t.Fatalf("Nearby() error = %v", err)
	}
	got := names(res.Stations)
	if len(got) != 2 || got[0] != "Central EV" || got[1] != "Andheri Charge Hub" {
		t.Fatalf("Nearby() = %v, want [Central EV, Andheri Charge Hub]", got)
	}
	if res.Count != 2 || res.RadiusKm == nil || *res.RadiusKm != 25 || res.Degraded {
		t.Errorf("result metadata = %+v", res)
	}
	for _, s := range res.Stations {
		if s.DistanceKm == nil || *s.DistanceKm > 25 {
			t.Errorf("%s distance = %v", s.Name, s.DistanceKm)
		}
	}
}

func TestNearby_MetersHeuristic(t *testing.T) {
	e, _ := newTestEngine(t, false)
	ctx := context.Background()

	km, err := e.Nearby(ctx, NearbyRequest{Lat: mumbaiCentral.Lat, Lng: mumbaiCentral.Lng, Radius: 25})
	if err != nil {
		t.Fatal(err)
	}
	m, err := e.Nearby(ctx, NearbyRequest{Lat: mumbaiCentral.Lat, Lng: mumbaiCentral.Lng, Radius: 25000})
	if err != nil {
		t.Fatal(err)
	}
	if km.Count != m.Count || *m.RadiusKm != 25 {
		t.Errorf("25 km = %d records, 25000 m = %d records (radius %v)", km.Count, m.Count, *m.RadiusKm)
	}

	explicit, err := e.Nearby(ctx, NearbyRequest{Lat: mumbaiCentral.Lat, Lng: mumbaiCentral.Lng, Radius: 500, Unit: geo.UnitMeters})
	if err != nil {
		t.Fatal(err)
	}
	if explicit.Count != 1 {
		t.Errorf("500 m = %v, want only Central EV", names(explicit.Stations))
	}
}

func TestNearby_WideRadiusAndFilters(t *testing.T) {
	e, _ := newTestEngine(t, false)
	ctx := context.Background()
	base := NearbyRequest{Lat: mumbaiCentral.Lat, Lng: mumbaiCentral.Lng, Radius: 200}

	tests := []struct {
		name    string
		filters Filters
		want    []string
	}{
		{"all", Filters{}, []string{"Central EV", "Andheri Charge Hub", "Pune Fast Charge"}},
		{"limit", Filters{Limit: 1}, []string{"Central EV"}},
		{"active only", Filters{ActiveOnly: true}, []string{"Central EV", "Pune Fast Charge"}},
		{"query", Filters{Query: "charge"}, []string{"Andheri Charge Hub", "Pune Fast Charge"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base
			req.Filters = tt.filters
			res, err := e.Nearby(ctx, req)
			if err != nil {
				t.Fatalf("Nearby() error = %v", err)
			}
			got := names(res.Stations)
			if len(got) != len(tt.want) {
				t.Fatalf("Nearby() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Nearby()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNearby_InvalidArguments(t *testing.T) {
	e, _ := newTestEngine(t, false)
	ctx := context.Background()

	tests := []struct {
		name string
		req  NearbyRequest
	}{
		{"nan lat", NearbyRequest{Lat: math.NaN(), Lng: 72.8}},
		{"inf lng", NearbyRequest{Lat: 19, Lng: math.Inf(1)}},
		{"lat out of range", NearbyRequest{Lat: 91, Lng: 72.8}},
		{"negative radius", NearbyRequest{Lat: 19, Lng: 72.8, Radius: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := e.Nearby(ctx, tt.req); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("Nearby() error = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestNearby_RadiusCapped(t *testing.T) {
	e, _ := newTestEngine(t, false)

	res, err := e.Nearby(context.Background(), NearbyRequest{Lat: 19, Lng: 72.8, Radius: 900})
	if err != nil {
		t.Fatal(err)
	}
	if *res.RadiusKm != 500 {
		t.Errorf("radius = %v, want capped at 500", *res.RadiusKm)
	}
}

func TestTextSearch(t *testing.T) {
	e, _ := newTestEngine(t, false)
	ctx := context.Background()

	for _, q := range []string{"", "a", "  b  ", "...", "--", "!!", "é."} {
		if _, err := e.TextSearch(ctx, TextSearchRequest{Query: q}); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("TextSearch(%q) error = %v, want ErrInvalidArgument", q, err)
		}
	}

	res, err := e.TextSearch(ctx, TextSearchRequest{Query: "CHARGE"})
	if err != nil {
		t.Fatalf("TextSearch() error = %v", err)
	}
	if res.Count != 2 {
		t.Errorf("TextSearch(CHARGE) = %v", names(res.Stations))
	}

	res, err = e.TextSearch(ctx, TextSearchRequest{Query: "pune"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Place == nil || res.Place.Key != "pune" {
		t.Fatalf("TextSearch(pune) place = %+v", res.Place)
	}
	if res.Count != 1 || res.Stations[0].DistanceKm == nil || *res.Stations[0].DistanceKm > 5 {
		t.Errorf("TextSearch(pune) = %+v", res.Stations)
	}
}

func TestTextSearch_ExplicitCenter(t *testing.T) {
	e, _ := newTestEngine(t, false)
	ctx := context.Background()
	center := mumbaiCentral

	res, err := e.TextSearch(ctx, TextSearchRequest{Query: "charge", Center: &center})
	if err != nil {
		t.Fatal(err)
	}
	got := names(res.Stations)
	if len(got) != 2 || got[0] != "Andheri Charge Hub" {
		t.Errorf("annotated search = %v, want Andheri first", got)
	}

	res, err = e.TextSearch(ctx, TextSearchRequest{Query: "charge", Center: &center, Radius: 25})
	if err != nil {
		t.Fatal(err)
	}
	if res.Count != 1 || res.RadiusKm == nil {
		t.Errorf("radius search = %v", names(res.Stations))
	}
}

func TestLocatePlace(t *testing.T) {
	e, _ := newTestEngine(t, false)
	ctx := context.Background()

	loc, err := e.LocatePlace(ctx, "bombay")
	if err != nil {
		t.Fatalf("LocatePlace(bombay) error = %v", err)
	}
	if loc.Key != "mumbai" || loc.MatchKind != models.MatchAlias || loc.Lat != 19.0760 {
		t.Errorf("LocatePlace(bombay) = %+v", loc)
	}

	if _, err := e.LocatePlace(ctx, "   "); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("LocatePlace(blank) error = %v", err)
	}

	_, err = e.LocatePlace(ctx, "atlantis")
	var nf *NotFoundError
	if !errors.As(err, &nf) || !errors.Is(err, ErrNotFound) {
		t.Fatalf("LocatePlace(atlantis) error = %v, want *NotFoundError", err)
	}
	if len(nf.Suggestions) < minSuggestions {
		t.Errorf("suggestions = %v, want at least %d", nf.Suggestions, minSuggestions)
	}
}

func TestNearPlace(t *testing.T) {
	e, _ := newTestEngine(t, false)
	ctx := context.Background()

	res, err := e.NearPlace(ctx, NearPlaceRequest{Query: "Bombay", Radius: 25})
	if err != nil {
		t.Fatalf("NearPlace() error = %v", err)
	}
	if res.Place == nil || res.Place.Key != "mumbai" {
		t.Errorf("place = %+v", res.Place)
	}
	if res.Count != 2 {
		t.Errorf("NearPlace() = %v", names(res.Stations))
	}

	if _, err := e.NearPlace(ctx, NearPlaceRequest{Query: "atlantis"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("NearPlace(atlantis) error = %v", err)
	}
}

// operationSamples returns how many durations were observed for op.
func operationSamples(t *testing.T, op string) uint64 {
	t.Helper()
	var m dto.Metric
	h, ok := metrics.DiscoveryDuration.WithLabelValues(op).(prometheus.Histogram)
	if !ok {
		t.Fatalf("operation %s is not a histogram", op)
	}
	if err := h.Write(&m); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	return m.GetHistogram().GetSampleCount()
}

func TestNearPlace_ObservedOnce(t *testing.T) {
	e, _ := newTestEngine(t, false)

	nearbyBefore := operationSamples(t, opNearby)
	nearPlaceBefore := operationSamples(t, opNearPlace)

	if _, err := e.NearPlace(context.Background(), NearPlaceRequest{Query: "pune", Radius: 25}); err != nil {
		t.Fatalf("NearPlace() error = %v", err)
	}

	if got := operationSamples(t, opNearby) - nearbyBefore; got != 0 {
		t.Errorf("nearby observations = %d, want 0", got)
	}
	if got := operationSamples(t, opNearPlace) - nearPlaceBefore; got != 1 {
		t.Errorf("near_place observations = %d, want 1", got)
	}
}

func TestTotalFailure(t *testing.T) {
	ctx := context.Background()

	lenient, store := newTestEngine(t, false)
	_ = store.Close()
	res, err := lenient.Nearby(ctx, NearbyRequest{Lat: 19, Lng: 72.8})
	if err != nil {
		t.Fatalf("lenient Nearby() error = %v", err)
	}
	if res.Stations == nil || res.Count != 0 || !res.Degraded || len(res.SourcesFailed) != 2 {
		t.Errorf("lenient result = %+v", res)
	}

	strict, store := newTestEngine(t, true)
	_ = store.Close()
	if _, err := strict.Nearby(ctx, NearbyRequest{Lat: 19, Lng: 72.8}); !errors.Is(err, ErrTotalAggregationFailure) {
		t.Errorf("strict Nearby() error = %v, want ErrTotalAggregationFailure", err)
	}
	if _, err := strict.Diagnose(ctx, nil); err != nil {
		t.Errorf("Diagnose() should report, not fail: %v", err)
	}
}

func TestDiagnose(t *testing.T) {
	e, _ := newTestEngine(t, false)
	center := mumbaiCentral

	d, err := e.Diagnose(context.Background(), &center)
	if err != nil {
		t.Fatalf("Diagnose() error = %v", err)
	}
	if len(d.Sources) != 2 || d.Sources[0].Documents != 4 || d.Sources[1].Documents != 1 {
		t.Errorf("sources = %+v", d.Sources)
	}
	if d.Sources[1].Tag != models.SourceNested {
		t.Errorf("nested source tag = %q", d.Sources[1].Tag)
	}
	if d.Fetched != 5 || d.DroppedCoordinates != 1 || d.Collapsed != 1 || d.Retained != 3 {
		t.Errorf("counts = fetched %d dropped %d collapsed %d retained %d",
			d.Fetched, d.DroppedCoordinates, d.Collapsed, d.Retained)
	}
	if d.Records[0].CellToken == "" || d.Records[0].DistanceKm == nil {
		t.Errorf("first record = %+v", d.Records[0])
	}

	bad := models.Coordinates{Lat: 100}
	if _, err := e.Diagnose(context.Background(), &bad); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Diagnose(bad point) error = %v", err)
	}
}
