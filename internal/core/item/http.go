// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package item

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

// Handler exposes the item catalog and shop generator over HTTP.
type Handler struct {
	service *Service
}

// NewHandler constructs an item catalog HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the item catalog and shop endpoints on router.
func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", h.list)
	router.Post("/list", h.list)
	router.Get("/{id}", h.get)
	router.Get("/shop/item/{id}", h.get)
	router.Get("/shops/{template}", h.generateShop)
	router.Post("/shop/list", h.generateShop)

	for _, route := range enumerationRoutes {
		router.Get("/"+string(route), h.enumerate(route))
	}
}

var enumerationRoutes = []Facet{FacetRarity, FacetSource, FacetType}

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

	items, meta, err := h.service.List(request.Context(), query, &next)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, items, meta)
}

func (h *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id, err := strconv.ParseInt(requestutil.ID(request, "id"), 10, 64)
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("id must be an integer"))
		return
	}
	itemEntity, err := h.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, itemEntity)
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

func (h *Handler) generateShop(writer http.ResponseWriter, request *http.Request) {
	req := ShopRequest{
		Template: Template(requestutil.Param(request, "template")),
		Filter:   filterFromRequest(request),
	}
	if request.Method == http.MethodPost {
		var body ShopRequest
		if decodeErr := requestutil.DecodeJSON(request, &body); decodeErr == nil {
			req = body
		}
	}
	shop, err := h.service.GenerateShop(request.Context(), req)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, shop)
}

func filterFromRequest(request *http.Request) Filter {
	filter := Filter{
		Levels:   parseIntList(requestutil.Query(request, "level")),
		Rarities: splitCSV(requestutil.Query(request, "rarity")),
		Sources:  splitCSV(requestutil.Query(request, "source")),
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
