// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pagination implements the catalog's cursor-based navigation model.

Listing endpoints address results by an absolute zero-based cursor into the
filtered, sorted result set rather than by page number — callers ask for
"items [cursor, cursor+page_size)", never "page 3". A page_size of -1 means
"return everything from cursor on, uncapped".

Usage:

	params, err := pagination.FromRequest(request)
	total, hasMore := 137, params.Cursor+uint32(params.PageSize) < 137
	meta := pagination.NewMeta(params, total, next)
*/
package pagination

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/taibuivan/yomira/pkg/convert"
)

// # Common Defaults

const (
	// Unbounded is the page_size sentinel meaning "no upper bound".
	Unbounded = -1

	// MaxPageSize is the upper bound for page_size (ignored when Unbounded).
	MaxPageSize = 100

	// DefaultPageSize is used when page_size is not supplied at all.
	DefaultPageSize = 100

	// DefaultCursor is the starting offset when cursor is not supplied.
	DefaultCursor = 0
)

// ErrInvalidPageSize reports a page_size outside [-1, MaxPageSize].
var ErrInvalidPageSize = errors.New("pagination: page_size must be -1 (unbounded) or between 0 and 100")

// # Sort Direction

// SortOrder names the two directions a listing endpoint can sort by.
type SortOrder string

const (
	Ascending  SortOrder = "Ascending"
	Descending SortOrder = "Descending"
)

// ParseSortOrder resolves a raw order_by value, defaulting to [Ascending]
// for anything unrecognized.
func ParseSortOrder(raw string) SortOrder {
	if strings.EqualFold(raw, string(Descending)) || strings.EqualFold(raw, "desc") {
		return Descending
	}
	return Ascending
}

// # Request Parameters

// Params holds the parsed cursor/page_size/sort_by/order_by from a
// request's query string.
type Params struct {
	Cursor   uint32
	PageSize int16
	SortBy   string
	OrderBy  SortOrder
}

// FromRequest parses "cursor", "page_size", "sort_by", and "order_by" query
// parameters from an HTTP request. It returns [ErrInvalidPageSize] when
// page_size falls outside [-1, 100]; callers surface that as a 4xx, matching
// every other request-fatal validation in the catalog.
func FromRequest(request *http.Request) (Params, error) {
	query := request.URL.Query()

	cursor := convert.ToIntD(query.Get("cursor"), DefaultCursor)
	if cursor < 0 {
		cursor = DefaultCursor
	}

	pageSize := convert.ToIntD(query.Get("page_size"), DefaultPageSize)
	if pageSize < Unbounded || pageSize > MaxPageSize {
		return Params{}, ErrInvalidPageSize
	}

	return Params{
		Cursor:   uint32(cursor),
		PageSize: int16(pageSize),
		SortBy:   query.Get("sort_by"),
		OrderBy:  ParseSortOrder(query.Get("order_by")),
	}, nil
}

// Bounded reports whether PageSize caps the window (false when Unbounded).
func (p Params) Bounded() bool {
	return p.PageSize >= 0
}

// HasMore reports whether items remain past this window, given the total
// count of the filtered (pre-slice) result set.
func (p Params) HasMore(total int) bool {
	if !p.Bounded() {
		return false
	}
	return uint32(p.Cursor)+uint32(p.PageSize) < uint32(total)
}

// # Response Metadata

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	Cursor   uint32  `json:"cursor"`
	PageSize int16   `json:"page_size"`
	Total    int     `json:"total"`
	Next     *string `json:"next,omitempty"`
}

// NewMeta constructs pagination metadata for a response. next should be nil
// whenever the window reached the end of the result set.
func NewMeta(params Params, total int, next *string) Meta {
	return Meta{
		Cursor:   params.Cursor,
		PageSize: params.PageSize,
		Total:    total,
		Next:     next,
	}
}

// # Next-link construction

// NextURL builds the catalog's pagination "next" link. The literal
// ampersand-prefixed query string (no leading "?" and no "=" before the
// order_by value) is preserved for wire compatibility.
func NextURL(baseURL string, nextCursor uint32, pageSize int16, sortBy string, orderBy SortOrder) string {
	return fmt.Sprintf("%s&cursor=%d&page_size=%d&sort_by=%s&order_by%s", baseURL, nextCursor, pageSize, sortBy, orderBy)
}
