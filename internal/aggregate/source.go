// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

package aggregate

import (
	"time"

	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/config"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/docstore"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/models"
)

// SourceDescriptor names one logical source of station documents.
type SourceDescriptor struct {
	Name     string
	Ref      docstore.CollectionRef
	Filter   *docstore.FieldFilter
	PageSize int
	Timeout  time.Duration
}

// Tag returns the provenance tag records from this source carry.
func (s SourceDescriptor) Tag() models.SourceTag {
	if s.Ref.Group {
		return models.SourceNested
	}
	return models.SourceTopLevel
}

// DescriptorsFromConfig resolves configured sources, inheriting page size,
// timeout and parent collection from the discovery section.
func DescriptorsFromConfig(d *config.DiscoveryConfig) []SourceDescriptor {
	out := make([]SourceDescriptor, 0, len(d.Sources))
	for _, raw := range d.Sources {
		s := d.SourceFor(raw)

		desc := SourceDescriptor{
			Name:     s.Name,
			Ref:      docstore.CollectionRef{Collection: s.Collection},
			PageSize: s.PageSize,
			Timeout:  s.Timeout,
		}
		if s.Kind == config.SourceKindNested {
			desc.Ref.Group = true
			desc.Ref.Parent = s.Parent
		}
		if s.FilterField != "" {
			desc.Filter = &docstore.FieldFilter{Field: s.FilterField, Value: s.FilterValue}
		}
		out = append(out, desc)
	}
	return out
}
