// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/yomira/pkg/pagination"
)

/*
TestFromRequest_DefaultsWhenParamsMissing checks that an empty query string
falls back to the package defaults.
*/
func TestFromRequest_DefaultsWhenParamsMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/bestiary", nil)
	params, err := pagination.FromRequest(req)
	require.NoError(t, err)
	assert.EqualValues(t, pagination.DefaultCursor, params.Cursor)
	assert.EqualValues(t, pagination.DefaultPageSize, params.PageSize)
	assert.Equal(t, pagination.Ascending, params.OrderBy)
}

/*
TestFromRequest_HonorsValidValues checks that in-range cursor/page_size/
sort_by/order_by values pass through unchanged.
*/
func TestFromRequest_HonorsValidValues(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/bestiary?cursor=40&page_size=10&sort_by=Level&order_by=Descending", nil)
	params, err := pagination.FromRequest(req)
	require.NoError(t, err)
	assert.EqualValues(t, 40, params.Cursor)
	assert.EqualValues(t, 10, params.PageSize)
	assert.Equal(t, "Level", params.SortBy)
	assert.Equal(t, pagination.Descending, params.OrderBy)
}

/*
TestFromRequest_UnboundedPageSize checks that -1 is accepted as the
unbounded sentinel rather than being rejected as out of range.
*/
func TestFromRequest_UnboundedPageSize(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/bestiary?page_size=-1", nil)
	params, err := pagination.FromRequest(req)
	require.NoError(t, err)
	assert.EqualValues(t, pagination.Unbounded, params.PageSize)
	assert.False(t, params.Bounded())
}

/*
TestFromRequest_RejectsOutOfRangePageSize checks that anything outside
[-1, 100] is a request-fatal error, not a silent clamp.
*/
func TestFromRequest_RejectsOutOfRangePageSize(t *testing.T) {
	tests := []string{"-2", "101", "500"}
	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/bestiary?page_size="+raw, nil)
			_, err := pagination.FromRequest(req)
			assert.ErrorIs(t, err, pagination.ErrInvalidPageSize)
		})
	}
}

/*
TestFromRequest_NegativeCursorFallsBackToZero checks that a negative cursor
is treated as the default rather than rejected.
*/
func TestFromRequest_NegativeCursorFallsBackToZero(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/bestiary?cursor=-5", nil)
	params, err := pagination.FromRequest(req)
	require.NoError(t, err)
	assert.EqualValues(t, 0, params.Cursor)
}

/*
TestParseSortOrder checks the case-insensitive order_by parsing, including
the "desc" shorthand and the ascending default for anything unrecognized.
*/
func TestParseSortOrder(t *testing.T) {
	assert.Equal(t, pagination.Descending, pagination.ParseSortOrder("Descending"))
	assert.Equal(t, pagination.Descending, pagination.ParseSortOrder("desc"))
	assert.Equal(t, pagination.Ascending, pagination.ParseSortOrder("Ascending"))
	assert.Equal(t, pagination.Ascending, pagination.ParseSortOrder(""))
	assert.Equal(t, pagination.Ascending, pagination.ParseSortOrder("sideways"))
}

/*
TestParams_HasMore checks the "cursor at or past total yields no next"
property alongside the ordinary bounded and unbounded cases.
*/
func TestParams_HasMore(t *testing.T) {
	tests := []struct {
		name   string
		params pagination.Params
		total  int
		want   bool
	}{
		{"bounded_with_remainder", pagination.Params{Cursor: 0, PageSize: 20}, 41, true},
		{"bounded_exact_end", pagination.Params{Cursor: 20, PageSize: 21}, 41, false},
		{"cursor_past_total", pagination.Params{Cursor: 100, PageSize: 20}, 41, false},
		{"unbounded_never_has_more", pagination.Params{Cursor: 0, PageSize: pagination.Unbounded}, 41, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.params.HasMore(tt.total))
		})
	}
}

/*
TestNextURL_UsesLiteralAmpersandFormat pins the exact wire format, including
the absence of an "=" before the order_by value.
*/
func TestNextURL_UsesLiteralAmpersandFormat(t *testing.T) {
	got := pagination.NextURL("https://api.example.com/bestiary/", 20, 20, "Level", pagination.Descending)
	assert.Equal(t, "https://api.example.com/bestiary/&cursor=20&page_size=20&sort_by=Level&order_byDescending", got)
}

/*
TestNewMeta_OmitsNextWhenNil checks that a nil next link round-trips to a
nil Next field rather than a pointer to an empty string.
*/
func TestNewMeta_OmitsNextWhenNil(t *testing.T) {
	params := pagination.Params{Cursor: 0, PageSize: 20}
	meta := pagination.NewMeta(params, 5, nil)
	assert.Nil(t, meta.Next)
	assert.Equal(t, 5, meta.Total)
}
