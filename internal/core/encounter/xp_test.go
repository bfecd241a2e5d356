// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package encounter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/yomira/internal/core/encounter"
	"github.com/taibuivan/yomira/internal/core/hazard"
)

/*
TestPartyAverage_ComputesMean checks the arithmetic mean across a few party
shapes, including the empty-party zero case.
*/
func TestPartyAverage_ComputesMean(t *testing.T) {
	tests := []struct {
		name   string
		levels []int
		want   float64
	}{
		{"four_level_ones", []int{1, 1, 1, 1}, 1},
		{"mixed", []int{1, 2, 3, 4}, 2.5},
		{"empty", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, encounter.PartyAverage(tt.levels))
		})
	}
}

/*
TestEvaluate_CreatureOnly checks the XP total and classified band for a
single on-level creature against a four-member party, using the non-PWL
table where a level-diff-0 creature costs 40 XP (exactly the Trivial floor).
*/
func TestEvaluate_CreatureOnly(t *testing.T) {
	req := encounter.Request{
		PartyLevels: []int{3, 3, 3, 3},
		Creatures:   &encounter.CreatureParams{EnemyLevels: []int{3}},
	}

	info := encounter.Evaluate(req)
	assert.Equal(t, 40, info.Experience)
	assert.Equal(t, encounter.ChallengeTrivial, info.Challenge)
}

/*
TestEvaluate_HazardOnly checks that a hazard-only request scores XP from the
hazard table and ignores the creature side entirely.
*/
func TestEvaluate_HazardOnly(t *testing.T) {
	req := encounter.Request{
		PartyLevels: []int{3, 3, 3, 3},
		Hazards: &encounter.HazardParams{Hazards: []encounter.HazardEntry{
			{Level: 3, Complexity: hazard.ComplexityComplex},
		}},
	}

	info := encounter.Evaluate(req)
	assert.Equal(t, 40, info.Experience)
}

/*
TestEvaluate_CombinedCreatureAndHazard checks that both sides' XP are summed
into one total.
*/
func TestEvaluate_CombinedCreatureAndHazard(t *testing.T) {
	req := encounter.Request{
		PartyLevels: []int{3, 3, 3, 3},
		Creatures:   &encounter.CreatureParams{EnemyLevels: []int{3}},
		Hazards: &encounter.HazardParams{Hazards: []encounter.HazardEntry{
			{Level: 3, Complexity: hazard.ComplexitySimple},
		}},
	}

	info := encounter.Evaluate(req)
	// 40 (creature, on-level) + 8 (simple hazard, on-level).
	assert.Equal(t, 48, info.Experience)
}

/*
TestScaleDifficulty_FourMemberPartyMatchesBaseBudget checks that a canonical
four-member party's scaled window equals the unscaled base budget.
*/
func TestScaleDifficulty_FourMemberPartyMatchesBaseBudget(t *testing.T) {
	rng := encounter.ScaleDifficulty(encounter.ChallengeModerate, 4)
	assert.Equal(t, 80, rng.Lower)
	assert.Equal(t, 120, rng.Upper)
}

/*
TestScaleDifficulty_ScalesWithPartySize checks that a six-member party
(two above canonical) shifts both bounds by twice the per-member adjustment.
*/
func TestScaleDifficulty_ScalesWithPartySize(t *testing.T) {
	rng := encounter.ScaleDifficulty(encounter.ChallengeModerate, 6)
	assert.Equal(t, 80+2*20, rng.Lower)
	assert.Equal(t, 120+2*30, rng.Upper)
}

/*
TestScaleDifficulty_ImpossibleUpperIsDoubled checks that the Impossible
band's upper bound doubles rather than collapsing to a zero-width window,
since there is no harder band to borrow a ceiling from.
*/
func TestScaleDifficulty_ImpossibleUpperIsDoubled(t *testing.T) {
	rng := encounter.ScaleDifficulty(encounter.ChallengeImpossible, 4)
	assert.Equal(t, 320, rng.Lower)
	assert.Equal(t, 320*2, rng.Upper)
}

/*
TestClassify_WalksBandsFromHardestToEasiest checks that classification picks
the hardest band whose scaled floor the XP total reaches, including the
below-Trivial-floor fallback.
*/
func TestClassify_WalksBandsFromHardestToEasiest(t *testing.T) {
	budgets := encounter.ScaledBudgets(4)

	tests := []struct {
		name string
		xp   int
		want encounter.Challenge
	}{
		{"below_trivial_floor", 0, encounter.ChallengeTrivial},
		{"exactly_trivial", 40, encounter.ChallengeTrivial},
		{"exactly_moderate", 80, encounter.ChallengeModerate},
		{"just_under_severe", 119, encounter.ChallengeModerate},
		{"exactly_severe", 120, encounter.ChallengeSevere},
		{"far_above_impossible", 1000, encounter.ChallengeImpossible},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, encounter.Classify(tt.xp, budgets))
		})
	}
}

/*
TestCreatureCombinations_RejectsLevelsBelowNegativeOne checks that a combo
whose anchor level would push a member below -1 is discarded rather than
producing an invalid creature level.
*/
func TestCreatureCombinations_RejectsLevelsBelowNegativeOne(t *testing.T) {
	budget := encounter.ExpRange{Lower: 0, Upper: 10}
	combos := encounter.CreatureCombinations(budget, []int{-1, -1, -1, -1}, false)

	for _, combo := range combos {
		for _, lvl := range combo {
			assert.GreaterOrEqual(t, lvl, -1)
		}
	}
}

/*
TestCreatureCombinations_DeduplicatesSortedMultisets checks that two index
combinations producing the same sorted level multiset collapse into one
result.
*/
func TestCreatureCombinations_DeduplicatesSortedMultisets(t *testing.T) {
	budget := encounter.ExpRange{Lower: 0, Upper: 1000}
	combos := encounter.CreatureCombinations(budget, []int{3, 3, 3, 3}, false)

	seen := map[string]bool{}
	for _, combo := range combos {
		key := ""
		for _, l := range combo {
			key += string(rune('a' + l + 10))
		}
		assert.False(t, seen[key], "duplicate combination: %v", combo)
		seen[key] = true
	}
}

/*
TestHazardCombinations_CollisionSimpleFourAndComplexMinusOne guards the
index-based enumeration design: a Simple hazard at level-diff +4 and a
Complex hazard at level-diff -1 both cost 30 XP at a party level of 3
(levels 7 and 2 respectively), yet both must surface as distinct single-
hazard combinations rather than being collapsed by a value-based search.
*/
func TestHazardCombinations_CollisionSimpleFourAndComplexMinusOne(t *testing.T) {
	budget := encounter.ExpRange{Lower: 30, Upper: 30}
	combos := encounter.HazardCombinations(budget, 3, nil)

	foundSimple := false
	foundComplex := false
	for _, combo := range combos {
		if len(combo) != 1 {
			continue
		}
		switch {
		case combo[0].Complexity == hazard.ComplexitySimple && combo[0].Level == 7:
			foundSimple = true
		case combo[0].Complexity == hazard.ComplexityComplex && combo[0].Level == 2:
			foundComplex = true
		}
	}

	assert.True(t, foundSimple, "expected a simple level-7 hazard combination")
	assert.True(t, foundComplex, "expected a complex level-2 hazard combination")
}

/*
TestHazardCombinations_FiltersByComplexityWhenRequested checks that passing
a non-nil complexity restricts every returned hazard to that complexity.
*/
func TestHazardCombinations_FiltersByComplexityWhenRequested(t *testing.T) {
	budget := encounter.ExpRange{Lower: 0, Upper: 60}
	complex := hazard.ComplexityComplex
	combos := encounter.HazardCombinations(budget, 3, &complex)

	for _, combo := range combos {
		for _, h := range combo {
			assert.Equal(t, hazard.ComplexityComplex, h.Complexity)
		}
	}
}

/*
TestGenerateCreatureLevelCombinations_AdventureGroupFixedShape checks that
requesting an adventure group returns exactly one combination shaped by its
fixed level offsets, anchored to the floored party average.
*/
func TestGenerateCreatureLevelCombinations_AdventureGroupFixedShape(t *testing.T) {
	group := encounter.AdventureGroupMatedPair
	req := encounter.GenerateRequest{
		PartyLevels:    []int{4, 4, 4, 4},
		AdventureGroup: &group,
	}

	combos, err := encounter.GenerateCreatureLevelCombinations(req)
	assert.NoError(t, err)
	assert.Len(t, combos, 1)
	assert.Equal(t, []int{4, 4}, combos[0])
}

/*
TestGenerateCreatureLevelCombinations_UnknownAdventureGroup checks that an
adventure group with no defined level offsets surfaces a validation error.
*/
func TestGenerateCreatureLevelCombinations_UnknownAdventureGroup(t *testing.T) {
	group := encounter.AdventureGroup("not_a_real_group")
	req := encounter.GenerateRequest{
		PartyLevels:    []int{4, 4, 4, 4},
		AdventureGroup: &group,
	}

	_, err := encounter.GenerateCreatureLevelCombinations(req)
	assert.Error(t, err)
}

/*
TestGenerateCreatureLevelCombinations_ChallengeBandFiltersByCreatureCount
checks that a challenge-band request respects the min/max creature count
bounds.
*/
func TestGenerateCreatureLevelCombinations_ChallengeBandFiltersByCreatureCount(t *testing.T) {
	challenge := encounter.ChallengeSevere
	req := encounter.GenerateRequest{
		PartyLevels:  []int{3, 3, 3, 3},
		Challenge:    &challenge,
		MinCreatures: 1,
		MaxCreatures: 1,
	}

	combos, err := encounter.GenerateCreatureLevelCombinations(req)
	assert.NoError(t, err)
	for _, combo := range combos {
		assert.Len(t, combo, 1)
	}
}

/*
TestChooseCombination_PadsUnderfullLevelsByResampling checks that when the
pool has fewer members at a level than the chosen combination needs, the
result still has the right total length (padded by resampling with
replacement).
*/
func TestChooseCombination_PadsUnderfullLevelsByResampling(t *testing.T) {
	pool := []int{5}
	combos := [][]int{{5, 5, 5}}

	result, err := encounter.ChooseCombination(pool, combos, func(v int) int { return v })
	assert.NoError(t, err)
	assert.Len(t, result, 3)
	for _, v := range result {
		assert.Equal(t, 5, v)
	}
}

/*
TestChooseCombination_RejectsCombosReferencingUnavailableLevels checks that
a combination naming a level absent from the pool is skipped, and that no
usable combination yields an unprocessable error.
*/
func TestChooseCombination_RejectsCombosReferencingUnavailableLevels(t *testing.T) {
	pool := []int{5}
	combos := [][]int{{9}}

	_, err := encounter.ChooseCombination(pool, combos, func(v int) int { return v })
	assert.Error(t, err)
}
