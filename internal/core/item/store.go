// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package item

import "context"

// ListQuery bundles a [Filter] with sort and cursor-page parameters.
type ListQuery struct {
	Filter    Filter
	SortBy    string
	Ascending bool
	Cursor    uint32
	PageSize  int16
}

// Repository is the storage-agnostic contract the service and shop
// generator depend on.
type Repository interface {
	List(ctx context.Context, query ListQuery) ([]*Item, int, error)
	GetByID(ctx context.Context, id int64) (*Item, error)

	// Sample returns up to n items matching filter, used by the shop
	// generator to both fill and resample a category bucket.
	Sample(ctx context.Context, filter Filter, n int) ([]*Item, error)

	// Enumerate returns the distinct, sorted values of one enumerable facet.
	Enumerate(ctx context.Context, facet Facet) ([]string, error)
}

// Facet names a distinct-value listing exposed by the catalog's enumeration
// endpoints.
type Facet string

const (
	FacetRarity Facet = "rarities"
	FacetSource Facet = "sources"
	FacetType   Facet = "types"
)
