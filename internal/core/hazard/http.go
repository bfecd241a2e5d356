// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package hazard

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/taibuivan/yomira/internal/platform/apperr"
	requestutil "github.com/taibuivan/yomira/internal/platform/request"
	"github.com/taibuivan/yomira/internal/platform/respond"
	"github.com/taibuivan/yomira/pkg/pagination"
)

// Handler exposes the hazard catalog over HTTP.
type Handler struct {
	service *Service
}

// NewHandler constructs a hazard catalog HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the hazard catalog endpoints on router.
func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", h.list)
	router.Post("/list", h.list)
	router.Get("/{id}", h.get)

	for _, route := range enumerationRoutes {
		router.Get("/"+string(route), h.enumerate(route))
	}
}

var enumerationRoutes = []Facet{FacetSize, FacetRarity, FacetSource, FacetComplexity}

func (h *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params, err := pagination.FromRequest(request)
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError(err.Error()))
		return
	}

	filter := filterFromRequest(request)
	if request.Method == http.MethodPost {
		var body Filter
		if decodeErr := requestutil.DecodeJSON(request, &body); decodeErr == nil {
			filter = body
		}
	}

	query := ListQuery{
		Filter:    filter,
		SortBy:    params.SortBy,
		Ascending: params.OrderBy == pagination.Ascending,
		Cursor:    params.Cursor,
		PageSize:  params.PageSize,
	}

	pageSize := params.PageSize
	if pageSize < 0 {
		pageSize = 0
	}
	next := pagination.NextURL(requestutil.BaseURL(request), params.Cursor+uint32(pageSize), params.PageSize, params.SortBy, params.OrderBy)

	hazards, meta, err := h.service.List(request.Context(), query, &next)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, hazards, meta)
}

func (h *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id, err := strconv.ParseInt(requestutil.ID(request, "id"), 10, 64)
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("id must be an integer"))
		return
	}
	hazardEntity, err := h.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, hazardEntity)
}

// enumerate builds a handler serving one distinct-value listing facet.
func (h *Handler) enumerate(facet Facet) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		values, err := h.service.Enumerate(request.Context(), facet)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, values)
	}
}

func filterFromRequest(request *http.Request) Filter {
	filter := Filter{
		Levels:  parseIntList(requestutil.Query(request, "level")),
		Rarities: splitCSV(requestutil.Query(request, "rarity")),
		Sizes:    splitCSV(requestutil.Query(request, "size")),
		Sources:  splitCSV(requestutil.Query(request, "source")),
	}
	for _, raw := range splitCSV(requestutil.Query(request, "complexity")) {
		filter.Complexities = append(filter.Complexities, ParseComplexity(raw))
	}
	if raw := requestutil.Query(request, "remaster"); raw != "" {
		v := strings.EqualFold(raw, "true")
		filter.Remaster = &v
	}
	return filter
}

func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseIntList(raw string) []int {
	parts := splitCSV(raw)
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		if v, err := strconv.Atoi(p); err == nil {
			out = append(out, v)
		}
	}
	return out
}
