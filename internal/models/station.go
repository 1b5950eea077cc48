// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

package models

import (
	"math"
	"strings"
)

// DefaultStationName labels records whose source document has no usable name.
const DefaultStationName = "Charging Station"

// StatusActive is the status value treated as operational by the active-only filter.
const StatusActive = "active"

// Coordinates is a WGS84 point in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat" koanf:"lat"`
	Lng float64 `json:"lng" koanf:"lng"`
}

// Valid reports whether both components are finite and within physical range.
func (c Coordinates) Valid() bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lng) || math.IsInf(c.Lat, 0) || math.IsInf(c.Lng, 0) {
		return false
	}
	return math.Abs(c.Lat) <= 90 && math.Abs(c.Lng) <= 180
}

// SourceTag records which kind of logical source a record came from.
type SourceTag string

const (
	SourceTopLevel SourceTag = "top-level"
	SourceNested   SourceTag = "nested"
)

// RecordID is the provenance-qualified identity of a station record.
// It is either a flat id (native document id in a top-level collection) or a
// nested id (owner, sub-collection, document id). Construct with FlatID or NestedID.
type RecordID struct {
	tag        SourceTag
	collection string
	owner      string
	docID      string
}

// FlatID identifies a document in a top-level collection.
func FlatID(collection, docID string) RecordID {
	return RecordID{tag: SourceTopLevel, collection: collection, docID: docID}
}

// NestedID identifies a document in a sub-collection under an owner record.
func NestedID(owner, subcollection, docID string) RecordID {
	return RecordID{tag: SourceNested, collection: subcollection, owner: owner, docID: docID}
}

// Tag returns the provenance kind.
func (id RecordID) Tag() SourceTag { return id.tag }

// Collection returns the collection (or sub-collection) name.
func (id RecordID) Collection() string { return id.collection }

// Owner returns the parent owner id for nested records, "" otherwise.
func (id RecordID) Owner() string { return id.owner }

// DocID returns the native document id.
func (id RecordID) DocID() string { return id.docID }

// IsZero reports whether the id was never assigned.
func (id RecordID) IsZero() bool { return id.docID == "" }

// String renders the identity key. Flat records keep their native id, so the
// same id found in two overlapping flat collections is one record. Nested
// records are qualified as <owner>/<subcollection>/<docId>.
func (id RecordID) String() string {
	if id.tag == SourceNested {
		return id.owner + "/" + id.collection + "/" + id.docID
	}
	return id.docID
}

// MarshalText implements encoding.TextMarshaler so the id serializes as its key.
func (id RecordID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// StationRecord is the normalized station the discovery engine operates on.
// DistanceKm is nil unless a reference point was supplied.
type StationRecord struct {
	ID          RecordID    `json:"id"`
	Name        string      `json:"name"`
	Address     string      `json:"address,omitempty"`
	City        string      `json:"city,omitempty"`
	Area        string      `json:"area,omitempty"`
	State       string      `json:"state,omitempty"`
	Coordinates Coordinates `json:"coordinates"`
	SourceTag   SourceTag   `json:"sourceTag"`
	Status      string      `json:"status"`
	OwnerID     string      `json:"ownerId,omitempty"`
	DistanceKm  *float64    `json:"distanceKm,omitempty"`
}

// IsActive reports whether the record's status is "active", ignoring case.
func (s *StationRecord) IsActive() bool {
	return strings.EqualFold(strings.TrimSpace(s.Status), StatusActive)
}

// WithDistance returns a copy of the record annotated with distanceKm.
//
//nolint:gocritic // records are small value types copied through the pipeline
func (s StationRecord) WithDistance(km float64) StationRecord {
	d := km
	s.DistanceKm = &d
	return s
}
