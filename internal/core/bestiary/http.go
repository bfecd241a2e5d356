// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bestiary

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

// Handler exposes the creature catalog over HTTP.
type Handler struct {
	service *Service
}

// NewHandler constructs a creature catalog HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the creature catalog endpoints on router.
func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", h.list)
	router.Post("/list", h.list)
	router.Get("/{id}", h.get)
	router.Get("/base/{id}", h.getVariant(VariantBase))
	router.Get("/elite/{id}", h.getVariant(VariantElite))
	router.Get("/weak/{id}", h.getVariant(VariantWeak))

	for _, route := range enumerationRoutes {
		router.Get("/"+string(route), h.enumerate(route))
	}
}

var enumerationRoutes = []Facet{
	FacetFamily, FacetTrait, FacetSource, FacetRarity,
	FacetSize, FacetAlignment, FacetCreatureType, FacetCreatureRole,
}

func (h *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params, err := pagination.FromRequest(request)
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError(err.Error()))
		return
	}

	filter := filterFromRequest(request)
	if request.Method == http.MethodPost {
		var body Filter
		if err := requestutil.DecodeJSON(request, &body); err == nil {
			filter = body
		}
	}

	query := ListQuery{
		Filter:    filter,
		SortBy:    params.SortBy,
		Direction: SortAscending,
		Cursor:    params.Cursor,
		PageSize:  params.PageSize,
	}
	if params.OrderBy == pagination.Descending {
		query.Direction = SortDescending
	}

	next := pagination.NextURL(requestutil.BaseURL(request), params.Cursor+uint32(maxInt16(params.PageSize, 0)), params.PageSize, params.SortBy, params.OrderBy)

	creatures, meta, err := h.service.List(request.Context(), query, &next)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, creatures, meta)
}

func maxInt16(v, floor int16) int16 {
	if v < floor {
		return floor
	}
	return v
}

func (h *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id, err := strconv.ParseInt(requestutil.ID(request, "id"), 10, 64)
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("id must be an integer"))
		return
	}

	variant := Variant(requestutil.Query(request, "variant"))
	pwl := strings.EqualFold(requestutil.Query(request, "pwl"), "true")

	h.respondVariant(writer, request, id, variant, pwl)
}

// getVariant builds a handler pinned to one of the base/elite/weak shortcut
// routes, which always apply their variant regardless of a ?variant= query.
func (h *Handler) getVariant(variant Variant) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		id, err := strconv.ParseInt(requestutil.ID(request, "id"), 10, 64)
		if err != nil {
			respond.Error(writer, request, apperr.ValidationError("id must be an integer"))
			return
		}
		pwl := strings.EqualFold(requestutil.Query(request, "pwl"), "true")
		h.respondVariant(writer, request, id, variant, pwl)
	}
}

func (h *Handler) respondVariant(writer http.ResponseWriter, request *http.Request, id int64, variant Variant, pwl bool) {
	creature, data, err := h.service.Get(request.Context(), id, variant, pwl)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, struct {
		*Creature
		Variant *VariantData `json:"variant"`
	}{Creature: creature, Variant: data})
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
		Levels:        parseIntList(requestutil.Query(request, "level")),
		Families:      splitCSV(requestutil.Query(request, "family")),
		Sources:       splitCSV(requestutil.Query(request, "source")),
		Version:       VersionFilter(requestutil.Query(request, "version")),
		IsMelee:       parseOptionalBool(requestutil.Query(request, "is_melee")),
		IsRanged:      parseOptionalBool(requestutil.Query(request, "is_ranged")),
		IsSpellcaster: parseOptionalBool(requestutil.Query(request, "is_spellcaster")),
		Traits:        splitCSV(requestutil.Query(request, "traits")),
	}

	for _, raw := range splitCSV(requestutil.Query(request, "size")) {
		filter.Sizes = append(filter.Sizes, ParseSize(raw))
	}
	for _, raw := range splitCSV(requestutil.Query(request, "rarity")) {
		filter.Rarities = append(filter.Rarities, ParseRarity(raw))
	}
	for _, raw := range splitCSV(requestutil.Query(request, "creature_type")) {
		filter.CreatureTypes = append(filter.CreatureTypes, ParseCreatureType(raw))
	}

	if roleParam := requestutil.Query(request, "role"); roleParam != "" {
		filter.Roles = map[RoleName]RoleBound{}
		for _, name := range splitCSV(roleParam) {
			filter.Roles[RoleName(name)] = DefaultRoleBound
		}
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

func parseOptionalBool(raw string) *bool {
	if raw == "" {
		return nil
	}
	v := strings.EqualFold(raw, "true")
	return &v
}
