// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package npc

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	requestutil "github.com/taibuivan/yomira/internal/platform/request"
	"github.com/taibuivan/yomira/internal/platform/respond"
)

// Handler exposes NPC generation over HTTP.
type Handler struct {
	service    *Service
	gameSystem string
}

// NewHandler constructs an NPC HTTP handler bound to one game system
// ("pf" or "sf").
func NewHandler(service *Service, gameSystem string) *Handler {
	return &Handler{service: service, gameSystem: gameSystem}
}

// RegisterRoutes mounts the NPC generator endpoints on router.
func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/generator", h.generateNPC)
	router.Post("/generator/names", h.generateNames)
	router.Post("/generator/nickname", h.generateNickname)
	router.Post("/generator/class", h.generateClass)
	router.Post("/generator/level", h.generateLevel)
	router.Post("/generator/ancestry", h.generateNames)
	router.Post("/generator/culture", h.generateNames)
	router.Post("/generator/gender", h.generateGender)
	router.Post("/generator/job", h.generateJob)
}

type npcGeneratorBody struct {
	Ancestries    []string `json:"ancestry,omitempty"`
	Cultures      []string `json:"culture,omitempty"`
	Genders       []string `json:"gender,omitempty"`
	Jobs          []string `json:"job,omitempty"`
	Classes       []string `json:"class,omitempty"`
	MaxNames      int      `json:"max_n_of_names,omitempty"`
	NameMaxLength int      `json:"name_max_length,omitempty"`
	MinLevel      *int     `json:"min_level,omitempty"`
	MaxLevel      *int     `json:"max_level,omitempty"`
	GenerateNick  bool     `json:"generate_nickname,omitempty"`
}

// generatedNPC is the full randomized NPC the "/generator" endpoint builds:
// a name batch, an optional nickname, a level, and a job/class pair.
type generatedNPC struct {
	Names    []string `json:"names"`
	Gender   Gender   `json:"gender"`
	Ancestry *string  `json:"ancestry,omitempty"`
	Culture  *string  `json:"culture,omitempty"`
	Nickname *string  `json:"nickname,omitempty"`
	Level    int      `json:"level"`
	Job      Job      `json:"job"`
	Class    Class    `json:"class"`
}

func (h *Handler) generateNPC(writer http.ResponseWriter, request *http.Request) {
	var body npcGeneratorBody
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	nameResult, err := h.service.GenerateNames(toNameRequest(h.gameSystem, body))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	npc := generatedNPC{
		Names:  nameResult.Names,
		Gender: nameResult.Gender,
		Level:  h.service.RandomLevel(body.MinLevel, body.MaxLevel),
		Job:    h.service.RandomJob(h.gameSystem, toJobs(body.Jobs)),
		Class:  h.service.RandomClass(h.gameSystem, toClasses(body.Classes)),
	}
	if nameResult.Ancestry != nil {
		ancestry := string(*nameResult.Ancestry)
		npc.Ancestry = &ancestry
	}
	if nameResult.Culture != nil {
		culture := string(*nameResult.Culture)
		npc.Culture = &culture
	}
	if body.GenerateNick {
		nickname, err := h.service.GenerateNickname()
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		npc.Nickname = &nickname
	}

	respond.OK(writer, npc)
}

func (h *Handler) generateNames(writer http.ResponseWriter, request *http.Request) {
	var body npcGeneratorBody
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}
	result, err := h.service.GenerateNames(toNameRequest(h.gameSystem, body))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}

func (h *Handler) generateNickname(writer http.ResponseWriter, request *http.Request) {
	nickname, err := h.service.GenerateNickname()
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]string{"nickname": nickname})
}

func (h *Handler) generateLevel(writer http.ResponseWriter, request *http.Request) {
	var body npcGeneratorBody
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]int{"level": h.service.RandomLevel(body.MinLevel, body.MaxLevel)})
}

func (h *Handler) generateJob(writer http.ResponseWriter, request *http.Request) {
	var body npcGeneratorBody
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]Job{"job": h.service.RandomJob(h.gameSystem, toJobs(body.Jobs))})
}

func (h *Handler) generateClass(writer http.ResponseWriter, request *http.Request) {
	var body npcGeneratorBody
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]Class{"class": h.service.RandomClass(h.gameSystem, toClasses(body.Classes))})
}

func (h *Handler) generateGender(writer http.ResponseWriter, request *http.Request) {
	var body npcGeneratorBody
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}
	genders := toGenders(body.Genders)
	if len(genders) == 0 {
		genders = AllGenders
	}
	gender, err := resolveGender(nil, genders)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]Gender{"gender": gender})
}

func toNameRequest(gameSystem string, body npcGeneratorBody) NameRequest {
	return NameRequest{
		GameSystem: gameSystem,
		Ancestries: toAncestries(body.Ancestries),
		Cultures:   toCultures(body.Cultures),
		Genders:    toGenders(body.Genders),
		MaxNames:   body.MaxNames,
		MaxLength:  body.NameMaxLength,
	}
}

func toAncestries(raw []string) []Ancestry {
	out := make([]Ancestry, len(raw))
	for i, v := range raw {
		out[i] = Ancestry(v)
	}
	return out
}

func toCultures(raw []string) []Culture {
	out := make([]Culture, len(raw))
	for i, v := range raw {
		out[i] = Culture(v)
	}
	return out
}

func toGenders(raw []string) []Gender {
	out := make([]Gender, len(raw))
	for i, v := range raw {
		out[i] = Gender(v)
	}
	return out
}

func toJobs(raw []string) []Job {
	out := make([]Job, len(raw))
	for i, v := range raw {
		out[i] = Job(v)
	}
	return out
}

func toClasses(raw []string) []Class {
	out := make([]Class, len(raw))
	for i, v := range raw {
		out[i] = Class(v)
	}
	return out
}
