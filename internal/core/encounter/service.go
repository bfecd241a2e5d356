// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package encounter

import (
	"context"
	"log/slog"
	"math"

	"github.com/taibuivan/yomira/internal/core/bestiary"
	"github.com/taibuivan/yomira/internal/core/hazard"
)

// Service evaluates encounter requests and generates random encounters
// backed by the creature and hazard catalogs.
type Service struct {
	creatures bestiary.Repository
	hazards   hazard.Repository
	logger    *slog.Logger
}

// NewService constructs an encounter service.
func NewService(creatures bestiary.Repository, hazards hazard.Repository, logger *slog.Logger) *Service {
	return &Service{creatures: creatures, hazards: hazards, logger: logger}
}

// Info evaluates req and returns its XP total and challenge band.
func (s *Service) Info(req Request) Info {
	return Evaluate(req)
}

// GeneratedEncounter is a fully resolved random encounter: concrete
// creatures (and, when requested, hazards) rather than bare levels.
type GeneratedEncounter struct {
	Creatures []*bestiary.Creature
	Hazards   []*hazard.Hazard
	Info      Info
}

// GenerateCreatureEncounter resolves req into a set of valid level
// combinations, then fills one combination with concrete creatures drawn
// from filter, padding by resampling when the catalog has fewer matching
// creatures than the combination calls for.
func (s *Service) GenerateCreatureEncounter(ctx context.Context, req GenerateRequest, filter bestiary.Filter) (*GeneratedEncounter, error) {
	combos, err := GenerateCreatureLevelCombinations(req)
	if err != nil {
		return nil, err
	}

	levels := uniqueLevels(combos)
	filter.Levels = levels
	pool, _, err := s.creatures.List(ctx, bestiary.ListQuery{Filter: filter, PageSize: 1000})
	if err != nil {
		return nil, err
	}

	chosen, err := ChooseCombination(pool, combos, func(c *bestiary.Creature) int { return c.Level })
	if err != nil {
		return nil, err
	}

	enemyLevels := make([]int, len(chosen))
	for i, c := range chosen {
		enemyLevels[i] = c.Level
	}
	info := Evaluate(Request{
		PartyLevels: req.PartyLevels,
		Creatures:   &CreatureParams{EnemyLevels: enemyLevels, IsPWLOn: req.IsPWLOn},
	})

	return &GeneratedEncounter{Creatures: chosen, Info: info}, nil
}

// HazardGenerateRequest parameterizes random hazard selection: party
// levels, an optional complexity, and min/max hazard counts. It has no
// challenge or adventure-group axis; [Service.GenerateHazardEncounter]
// always targets the Moderate budget.
type HazardGenerateRequest struct {
	PartyLevels  []int
	Complexity   *hazard.Complexity
	MinHazards   int
	MaxHazards   int
}

// GenerateHazardEncounter mirrors [GenerateCreatureEncounter] for hazards.
func (s *Service) GenerateHazardEncounter(ctx context.Context, req HazardGenerateRequest, filter hazard.Filter) (*GeneratedEncounter, error) {
	partyLevel := int(math.Floor(PartyAverage(req.PartyLevels)))
	budget := ScaleDifficulty(ChallengeModerate, len(req.PartyLevels))
	combos := HazardCombinations(budget, partyLevel, req.Complexity)

	levelCombos := make([][]int, len(combos))
	for i, combo := range combos {
		levels := make([]int, len(combo))
		for j, h := range combo {
			levels[j] = h.Level
		}
		levelCombos[i] = levels
	}
	levelCombos = filterCombinationsOutsideRange(levelCombos, req.MinHazards, req.MaxHazards)

	levels := uniqueLevels(levelCombos)
	filter.Levels = levels
	pool, _, err := s.hazards.List(ctx, hazard.ListQuery{Filter: filter, PageSize: 1000})
	if err != nil {
		return nil, err
	}

	chosen, err := ChooseCombination(pool, levelCombos, func(h *hazard.Hazard) int { return h.Level })
	if err != nil {
		return nil, err
	}

	hazardEntries := make([]HazardEntry, len(chosen))
	for i, h := range chosen {
		hazardEntries[i] = HazardEntry{Level: h.Level, Complexity: h.Complexity}
	}
	info := Evaluate(Request{
		PartyLevels: req.PartyLevels,
		Hazards:     &HazardParams{Hazards: hazardEntries},
	})

	return &GeneratedEncounter{Hazards: chosen, Info: info}, nil
}

func uniqueLevels(combos [][]int) []int {
	seen := map[int]bool{}
	var out []int
	for _, combo := range combos {
		for _, lvl := range combo {
			if !seen[lvl] {
				seen[lvl] = true
				out = append(out, lvl)
			}
		}
	}
	return out
}
