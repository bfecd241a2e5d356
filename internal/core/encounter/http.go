// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package encounter

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/taibuivan/yomira/internal/core/bestiary"
	"github.com/taibuivan/yomira/internal/core/hazard"
	"github.com/taibuivan/yomira/internal/platform/apperr"
	requestutil "github.com/taibuivan/yomira/internal/platform/request"
	"github.com/taibuivan/yomira/internal/platform/respond"
)

// Handler exposes encounter evaluation and generation over HTTP.
type Handler struct {
	service *Service
}

// NewHandler constructs an encounter HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the encounter endpoints on router.
func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/info", h.info)
	router.Post("/generate", h.generateCreatures)
	router.Post("/generate/hazards", h.generateHazards)
}

type infoRequestBody struct {
	PartyLevels  []int              `json:"party_levels"`
	EnemyLevels  []int              `json:"enemy_levels,omitempty"`
	IsPWLOn      bool               `json:"is_pwl_on,omitempty"`
	HazardLevels []hazardLevelInput `json:"hazard_levels,omitempty"`
}

type hazardLevelInput struct {
	Level      int    `json:"level"`
	Complexity string `json:"complexity"`
}

func (h *Handler) info(writer http.ResponseWriter, request *http.Request) {
	var body infoRequestBody
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}
	if len(body.PartyLevels) == 0 {
		respond.Error(writer, request, apperr.ValidationError("party_levels must contain at least one level"))
		return
	}

	req := Request{PartyLevels: body.PartyLevels}
	if len(body.EnemyLevels) > 0 {
		req.Creatures = &CreatureParams{EnemyLevels: body.EnemyLevels, IsPWLOn: body.IsPWLOn}
	}
	if len(body.HazardLevels) > 0 {
		entries := make([]HazardEntry, len(body.HazardLevels))
		for i, hz := range body.HazardLevels {
			entries[i] = HazardEntry{Level: hz.Level, Complexity: hazard.ParseComplexity(hz.Complexity)}
		}
		req.Hazards = &HazardParams{Hazards: entries}
	}

	respond.OK(writer, h.service.Info(req))
}

type generateRequestBody struct {
	PartyLevels    []int    `json:"party_levels"`
	Challenge      *string  `json:"challenge,omitempty"`
	AdventureGroup *string  `json:"adventure_group,omitempty"`
	IsPWLOn        bool     `json:"is_pwl_on,omitempty"`
	MinCreatures   int      `json:"min_creatures,omitempty"`
	MaxCreatures   int      `json:"max_creatures,omitempty"`
	Levels         []int    `json:"level,omitempty"`
	Families       []string `json:"family,omitempty"`
	Traits         []string `json:"traits,omitempty"`
}

func (h *Handler) generateCreatures(writer http.ResponseWriter, request *http.Request) {
	var body generateRequestBody
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}
	if len(body.PartyLevels) == 0 {
		respond.Error(writer, request, apperr.ValidationError("party_levels must contain at least one level"))
		return
	}

	req := GenerateRequest{
		PartyLevels:  body.PartyLevels,
		IsPWLOn:      body.IsPWLOn,
		MinCreatures: body.MinCreatures,
		MaxCreatures: body.MaxCreatures,
	}
	if body.Challenge != nil {
		c := Challenge(strings.ToLower(*body.Challenge))
		req.Challenge = &c
	}
	if body.AdventureGroup != nil {
		g := AdventureGroup(strings.ToLower(*body.AdventureGroup))
		req.AdventureGroup = &g
	}

	filter := bestiary.Filter{Levels: body.Levels, Families: body.Families, Traits: body.Traits}

	encounter, err := h.service.GenerateCreatureEncounter(request.Context(), req, filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, encounter)
}

type generateHazardRequestBody struct {
	PartyLevels []int    `json:"party_levels"`
	Complexity  *string  `json:"complexity,omitempty"`
	MinHazards  int      `json:"min_hazards,omitempty"`
	MaxHazards  int      `json:"max_hazards,omitempty"`
	Sources     []string `json:"source,omitempty"`
}

func (h *Handler) generateHazards(writer http.ResponseWriter, request *http.Request) {
	var body generateHazardRequestBody
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}
	if len(body.PartyLevels) == 0 {
		respond.Error(writer, request, apperr.ValidationError("party_levels must contain at least one level"))
		return
	}

	req := HazardGenerateRequest{
		PartyLevels: body.PartyLevels,
		MinHazards:  body.MinHazards,
		MaxHazards:  body.MaxHazards,
	}
	if body.Complexity != nil {
		c := hazard.ParseComplexity(*body.Complexity)
		req.Complexity = &c
	}

	filter := hazard.Filter{Sources: body.Sources}

	encounter, err := h.service.GenerateHazardEncounter(request.Context(), req, filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, encounter)
}
