// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bestiary

import "context"

// SortDirection orders a list query's results.
type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// ListQuery bundles a [Filter] with sort and cursor-page parameters.
type ListQuery struct {
	Filter    Filter
	SortBy    string
	Direction SortDirection
	Cursor    uint32
	PageSize  int16
}

// Repository is the storage-agnostic contract the service depends on.
type Repository interface {
	// List returns the [Cursor, Cursor+PageSize) window of creatures matching
	// query's filter and sort, plus the total count ignoring the window, so
	// callers can compute pagination metadata.
	List(ctx context.Context, query ListQuery) ([]*Creature, int, error)

	// GetByID returns a single creature, or an [apperr.AppError] 404 when absent.
	GetByID(ctx context.Context, id int64) (*Creature, error)

	// RebuildRoleScores recomputes every row's role-affinity columns from the
	// current scale tables and writes them back. It fails loudly (startup
	// fatal) when any UPDATE affects zero rows for a row known to exist.
	RebuildRoleScores(ctx context.Context) error

	// Enumerate returns the distinct values of one enumerable facet
	// (families, traits, sources, rarities, sizes, alignments, creature
	// types, or creature roles). Column-backed facets come back sorted;
	// alignments and creature roles come back in their fixed enum order.
	Enumerate(ctx context.Context, facet Facet) ([]string, error)
}

// Facet names a distinct-value listing exposed by the catalog's enumeration
// endpoints.
type Facet string

const (
	FacetFamily       Facet = "families"
	FacetTrait        Facet = "traits"
	FacetSource       Facet = "sources"
	FacetRarity       Facet = "rarities"
	FacetSize         Facet = "sizes"
	FacetAlignment    Facet = "alignments"
	FacetCreatureType Facet = "creature_types"
	FacetCreatureRole Facet = "creature_roles"
)
