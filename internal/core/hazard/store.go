// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package hazard

import "context"

// ListQuery bundles a [Filter] with sort and cursor-page parameters.
type ListQuery struct {
	Filter    Filter
	SortBy    string
	Ascending bool
	Cursor    uint32
	PageSize  int16
}

// Repository is the storage-agnostic contract the service depends on.
type Repository interface {
	List(ctx context.Context, query ListQuery) ([]*Hazard, int, error)
	GetByID(ctx context.Context, id int64) (*Hazard, error)

	// Enumerate returns the distinct, sorted values of one enumerable facet.
	Enumerate(ctx context.Context, facet Facet) ([]string, error)
}

// Facet names a distinct-value listing exposed by the catalog's enumeration
// endpoints.
type Facet string

const (
	FacetSize       Facet = "sizes"
	FacetRarity     Facet = "rarities"
	FacetSource     Facet = "sources"
	FacetComplexity Facet = "complexities"
)
