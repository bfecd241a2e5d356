// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package shareable

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/taibuivan/yomira/internal/core/item"
	requestutil "github.com/taibuivan/yomira/internal/platform/request"
	"github.com/taibuivan/yomira/internal/platform/respond"
)

// Handler exposes the encode/decode endpoints for every shareable payload
// kind over HTTP.
type Handler struct {
	service *Service
}

// NewHandler constructs a shareable codec HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the shareable endpoints on router, one
// encode/decode pair per payload kind.
func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/shop/encode", h.encodeShop)
	router.Get("/shop/decode/{blob}", h.decodeShop)
	router.Post("/encounter/encode", h.encodeEncounter)
	router.Get("/encounter/decode/{blob}", h.decodeEncounter)
	router.Post("/npc/encode", h.encodeNpcList)
	router.Get("/npc/decode/{blob}", h.decodeNpcList)
}

type shopEncodeBody struct {
	Template    string       `json:"template"`
	Weapons     []*item.Item `json:"weapons,omitempty"`
	Armors      []*item.Item `json:"armors,omitempty"`
	Shields     []*item.Item `json:"shields,omitempty"`
	Equipment   []*item.Item `json:"equipment,omitempty"`
	Consumables []*item.Item `json:"consumables,omitempty"`
}

func (h *Handler) encodeShop(writer http.ResponseWriter, request *http.Request) {
	var body shopEncodeBody
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}
	shop := &item.Shop{
		Template:    item.Template(body.Template),
		Weapons:     body.Weapons,
		Armors:      body.Armors,
		Shields:     body.Shields,
		Equipment:   body.Equipment,
		Consumables: body.Consumables,
	}
	blob, err := h.service.EncodeShop(shop)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]string{"blob": blob})
}

func (h *Handler) decodeShop(writer http.ResponseWriter, request *http.Request) {
	blob := requestutil.ID(request, "blob")
	shop, err := h.service.DecodeShop(request.Context(), blob)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, shop)
}

type encounterEncodeBody struct {
	PartyLevels []int               `json:"party_levels"`
	Creatures   []*bestiaryCreature `json:"creatures,omitempty"`
	Hazards     []*hazardEntry      `json:"hazards,omitempty"`
	IsPWLOn     bool                `json:"is_pwl_on,omitempty"`
}

// bestiaryCreature and hazardEntry mirror just the id field: the encode
// request only needs to know which catalog rows were chosen, not their
// full projection.
type bestiaryCreature struct {
	ID int64 `json:"id"`
}

type hazardEntry struct {
	ID int64 `json:"id"`
}

func (h *Handler) encodeEncounter(writer http.ResponseWriter, request *http.Request) {
	var body encounterEncodeBody
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	levels := make([]int32, len(body.PartyLevels))
	for i, v := range body.PartyLevels {
		levels[i] = int32(v)
	}
	creatureIDs := make([]int64, len(body.Creatures))
	for i, c := range body.Creatures {
		creatureIDs[i] = c.ID
	}
	hazardIDs := make([]int64, len(body.Hazards))
	for i, hz := range body.Hazards {
		hazardIDs[i] = hz.ID
	}

	blob, err := EncodeEncounter(Encounter{
		PartyLevels: levels,
		CreatureIDs: creatureIDs,
		HazardIDs:   hazardIDs,
		IsPWLOn:     body.IsPWLOn,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]string{"blob": blob})
}

func (h *Handler) decodeEncounter(writer http.ResponseWriter, request *http.Request) {
	blob := requestutil.ID(request, "blob")
	encounter, err := h.service.DecodeEncounter(request.Context(), blob)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, encounter)
}

type npcListEncodeBody struct {
	Entries []NpcEntry `json:"entries"`
}

func (h *Handler) encodeNpcList(writer http.ResponseWriter, request *http.Request) {
	var body npcListEncodeBody
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}
	blob, err := EncodeNpcList(NpcList{Entries: body.Entries})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]string{"blob": blob})
}

func (h *Handler) decodeNpcList(writer http.ResponseWriter, request *http.Request) {
	blob := requestutil.ID(request, "blob")
	list, err := DecodeNpcList(blob)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, list)
}
