// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package encounter

import (
	"fmt"
	"math"
	"sort"

	"github.com/taibuivan/yomira/internal/core/hazard"
	"github.com/taibuivan/yomira/internal/platform/apperr"
	"github.com/taibuivan/yomira/pkg/dice"
)

// creatureXPTable maps a creature's level difference from the party
// average to the XP it is worth. The "proficiency without level" variant
// rule uses a wider, renumbered table.
func creatureXPTable(isPWLOn bool) map[int]int {
	if isPWLOn {
		return map[int]int{
			-7: 9, -6: 12, -5: 14, -4: 18, -3: 21, -2: 26, -1: 32,
			0: 40, 1: 48, 2: 60, 3: 72, 4: 90, 5: 108, 6: 135, 7: 160,
		}
	}
	return map[int]int{
		-4: 10, -3: 15, -2: 20, -1: 30, 0: 40, 1: 60, 2: 80, 3: 120, 4: 160,
	}
}

func hazardXPTable(complexity hazard.Complexity) map[int]int {
	if complexity == hazard.ComplexityComplex {
		return map[int]int{
			-4: 10, -3: 15, -2: 20, -1: 30, 0: 40, 1: 60, 2: 80, 3: 120, 4: 150,
		}
	}
	return map[int]int{
		-4: 2, -3: 3, -2: 4, -1: 6, 0: 8, 1: 12, 2: 16, 3: 24, 4: 30,
	}
}

// PartyAverage is the arithmetic mean of a party's member levels.
func PartyAverage(levels []int) float64 {
	if len(levels) == 0 {
		return 0
	}
	sum := 0
	for _, l := range levels {
		sum += l
	}
	return float64(sum) / float64(len(levels))
}

// levelDiff returns enemyLevel minus partyAvg. A negative enemy level below
// the party average takes a separate branch (the negated absolute
// difference), which yields the same negative value.
func levelDiff(partyAvg, enemyLevel float64) float64 {
	if enemyLevel < 0 && enemyLevel < partyAvg {
		diff := enemyLevel - partyAvg
		if diff < 0 {
			diff = -diff
		}
		return -diff
	}
	return enemyLevel - partyAvg
}

func minTableKey(table map[int]int) int {
	first := true
	min := 0
	for k := range table {
		if first || k < min {
			min = k
			first = false
		}
	}
	return min
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// convertLvlDiffToExp looks up the XP value for a (floored) level
// difference. A difference below the table's lowest entry scores zero; one
// above the table's highest entry is clamped to the scaled Impossible
// floor, so a vastly overleveled party cannot farm unlimited XP.
func convertLvlDiffToExp(diff float64, partySize int, table map[int]int) int {
	key := int(math.Floor(diff))
	if xp, ok := table[key]; ok {
		return absInt(xp)
	}
	if key < minTableKey(table) {
		return 0
	}
	return ScaleDifficulty(ChallengeImpossible, partySize).Lower
}

func calculateCreatureExp(partyLevels, enemyLevels []int, isPWLOn bool) int {
	table := creatureXPTable(isPWLOn)
	partyAvg := PartyAverage(partyLevels)
	sum := 0
	for _, lvl := range enemyLevels {
		sum += convertLvlDiffToExp(levelDiff(partyAvg, float64(lvl)), len(partyLevels), table)
	}
	return sum
}

// calculateHazardExp scores hazards against a canonical party size of 4:
// hazards do not scale with party composition the way creatures do.
func calculateHazardExp(partyAvg float64, hazards []HazardEntry) int {
	sum := 0
	for _, h := range hazards {
		sum += convertLvlDiffToExp(levelDiff(partyAvg, float64(h.Level)), 4, hazardXPTable(h.Complexity))
	}
	return sum
}

// ScaleDifficulty scales a base challenge band's XP budget to a given
// party size. The upper bound is the next-hardest band's lower bound,
// doubled for Impossible so the ceiling band stays open-ended rather than
// collapsing into a zero-width window.
func ScaleDifficulty(base Challenge, partySize int) ExpRange {
	deviation := partySize - 4
	upperBand := nextChallenge(base)
	upperMultiplier := 1
	if base == ChallengeImpossible {
		upperMultiplier = 2
	}
	return ExpRange{
		Lower: baseXPBudget[base] + deviation*xpAdjustmentPerMember[base],
		Upper: (baseXPBudget[upperBand] + deviation*xpAdjustmentPerMember[upperBand]) * upperMultiplier,
	}
}

// ScaledBudgets returns, for every challenge band, the lower bound of its
// XP window scaled to partySize. [Classify] walks this map.
func ScaledBudgets(partySize int) map[Challenge]int {
	out := make(map[Challenge]int, len(challengeOrder))
	for _, c := range challengeOrder {
		out[c] = ScaleDifficulty(c, partySize).Lower
	}
	return out
}

// Classify returns the hardest band whose scaled lower bound the given XP
// total reaches or exceeds.
func Classify(xp int, budgets map[Challenge]int) Challenge {
	for i := len(challengeOrder) - 1; i >= 0; i-- {
		c := challengeOrder[i]
		if xp >= budgets[c] {
			return c
		}
	}
	return ChallengeTrivial
}

// Evaluate computes the XP total and resulting challenge band for req.
func Evaluate(req Request) Info {
	partyAvg := PartyAverage(req.PartyLevels)
	xp := 0
	if req.Creatures != nil {
		xp += calculateCreatureExp(req.PartyLevels, req.Creatures.EnemyLevels, req.Creatures.IsPWLOn)
	}
	if req.Hazards != nil {
		xp += calculateHazardExp(partyAvg, req.Hazards.Hazards)
	}
	budgets := ScaledBudgets(len(req.PartyLevels))
	return Info{Experience: xp, Challenge: Classify(xp, budgets), ScaledBudgets: budgets}
}

// maxCombinationSize bounds both the search depth and the size of any
// single returned combination, keeping the search tractable for wide XP
// windows.
const maxCombinationSize = 10

// findCombinationsByIndex enumerates every multiset of indices into values
// whose sum falls within budget, allowing an index to repeat (so the same
// XP entry can back more than one enemy). Indices, not values, are
// returned so that callers can recover the distinct (level, provenance)
// each index stands for even when two entries share an XP value.
func findCombinationsByIndex(values []int, budget ExpRange) [][]int {
	var results [][]int
	var current []int
	var backtrack func(start, sum int)
	backtrack = func(start, sum int) {
		if sum >= budget.Lower && sum <= budget.Upper {
			combo := make([]int, len(current))
			copy(combo, current)
			results = append(results, combo)
		}
		if sum >= budget.Upper || len(current) >= maxCombinationSize {
			return
		}
		for i := start; i < len(values); i++ {
			current = append(current, i)
			backtrack(i, sum+values[i])
			current = current[:len(current)-1]
		}
	}
	backtrack(0, 0)
	return results
}

type creatureTableEntry struct {
	levelDiff int
	xp        int
}

func sortedCreatureEntries(table map[int]int) []creatureTableEntry {
	entries := make([]creatureTableEntry, 0, len(table))
	for diff, xp := range table {
		entries = append(entries, creatureTableEntry{levelDiff: diff, xp: xp})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].levelDiff < entries[j].levelDiff })
	return entries
}

// CreatureCombinations enumerates every distinct multiset of absolute
// creature levels whose combined XP falls within budget, anchored to the
// party's floored average level. Combinations containing a level below -1
// are discarded, since no creature exists below that level.
func CreatureCombinations(budget ExpRange, partyLevels []int, isPWLOn bool) [][]int {
	entries := sortedCreatureEntries(creatureXPTable(isPWLOn))
	values := make([]int, len(entries))
	for i, e := range entries {
		values[i] = e.xp
	}
	partyLevel := int(math.Floor(PartyAverage(partyLevels)))

	seen := map[string]bool{}
	var out [][]int
	for _, combo := range findCombinationsByIndex(values, budget) {
		levels := make([]int, 0, len(combo))
		for _, idx := range combo {
			levels = append(levels, partyLevel+entries[idx].levelDiff)
		}
		if !validLevelCombo(levels) {
			continue
		}
		sort.Ints(levels)
		key := fmt.Sprint(levels)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, levels)
	}
	return out
}

type hazardTableEntry struct {
	complexity hazard.Complexity
	levelDiff  int
	xp         int
}

func sortedHazardEntries(complexity *hazard.Complexity) []hazardTableEntry {
	var complexities []hazard.Complexity
	if complexity != nil {
		complexities = []hazard.Complexity{*complexity}
	} else {
		complexities = []hazard.Complexity{hazard.ComplexitySimple, hazard.ComplexityComplex}
	}
	var entries []hazardTableEntry
	for _, c := range complexities {
		for diff, xp := range hazardXPTable(c) {
			entries = append(entries, hazardTableEntry{complexity: c, levelDiff: diff, xp: xp})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].complexity != entries[j].complexity {
			return entries[i].complexity < entries[j].complexity
		}
		return entries[i].levelDiff < entries[j].levelDiff
	})
	return entries
}

// HazardCombinations enumerates every distinct multiset of (complexity,
// absolute level) pairs whose combined XP falls within budget. Index-based
// enumeration (not value-based) is required here because a Simple hazard
// and a Complex hazard can land on the same XP value at different level
// differences (e.g. Simple level-diff +4 and Complex level-diff -1 both
// cost 30 XP); collapsing on value would silently merge two distinct
// hazards into one.
func HazardCombinations(budget ExpRange, partyLevel int, complexity *hazard.Complexity) [][]HazardEntry {
	entries := sortedHazardEntries(complexity)
	values := make([]int, len(entries))
	for i, e := range entries {
		values[i] = e.xp
	}

	seen := map[string]bool{}
	var out [][]HazardEntry
	for _, combo := range findCombinationsByIndex(values, budget) {
		hazards := make([]HazardEntry, 0, len(combo))
		levels := make([]int, 0, len(combo))
		for _, idx := range combo {
			e := entries[idx]
			hazards = append(hazards, HazardEntry{Level: partyLevel + e.levelDiff, Complexity: e.complexity})
			levels = append(levels, partyLevel+e.levelDiff)
		}
		if !validLevelCombo(levels) {
			continue
		}
		sort.Slice(hazards, func(i, j int) bool {
			if hazards[i].Complexity != hazards[j].Complexity {
				return hazards[i].Complexity < hazards[j].Complexity
			}
			return hazards[i].Level < hazards[j].Level
		})
		key := fmt.Sprint(hazards)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, hazards)
	}
	return out
}

func validLevelCombo(levels []int) bool {
	if len(levels) == 0 {
		return false
	}
	for _, l := range levels {
		if l < -1 {
			return false
		}
	}
	return true
}

// filterCombinationsOutsideRange drops combinations whose member count
// falls outside [min,max]. A single bound with the other left at zero
// pins both ends to that one value; leaving both at zero disables the
// filter entirely.
func filterCombinationsOutsideRange[T any](combos [][]T, min, max int) [][]T {
	lower, upper := min, max
	switch {
	case lower == 0 && upper == 0:
		return combos
	case lower != 0 && upper == 0:
		upper = lower
	case lower == 0 && upper != 0:
		lower = upper
	}
	out := make([][]T, 0, len(combos))
	for _, combo := range combos {
		if len(combo) >= lower && len(combo) <= upper {
			out = append(out, combo)
		}
	}
	return out
}

// GenerateCreatureLevelCombinations resolves req into the set of valid
// enemy-level multisets: a fixed adventure-group shape when one is
// requested, or every level combination matching a (possibly randomly
// chosen) challenge band otherwise.
func GenerateCreatureLevelCombinations(req GenerateRequest) ([][]int, error) {
	if req.AdventureGroup != nil {
		offsets := req.AdventureGroup.LevelOffsets()
		if offsets == nil {
			return nil, apperr.ValidationError("unknown adventure group")
		}
		partyLevel := int(math.Floor(PartyAverage(req.PartyLevels)))
		levels := make([]int, len(offsets))
		for i, o := range offsets {
			levels[i] = partyLevel + o
		}
		return [][]int{levels}, nil
	}

	challenge := req.Challenge
	if challenge == nil {
		picked := challengeOrder[dice.UniformRange(0, len(challengeOrder)-1)]
		challenge = &picked
	}
	budget := ScaleDifficulty(*challenge, len(req.PartyLevels))
	combos := CreatureCombinations(budget, req.PartyLevels, req.IsPWLOn)
	return filterCombinationsOutsideRange(combos, req.MinCreatures, req.MaxCreatures), nil
}

// ChooseCombination picks one level combination whose every level exists
// in pool, then fills it from pool: levels short of instances are padded
// by resampling with replacement, and the final per-level slice is
// shuffled before truncation so a larger pool doesn't always yield the
// same members.
func ChooseCombination[T any](pool []T, combos [][]int, levelOf func(T) int) ([]T, error) {
	byLevel := map[int][]T{}
	for _, item := range pool {
		lvl := levelOf(item)
		byLevel[lvl] = append(byLevel[lvl], item)
	}

	existing := make([][]int, 0, len(combos))
	for _, combo := range combos {
		ok := true
		for _, lvl := range combo {
			if _, found := byLevel[lvl]; !found {
				ok = false
				break
			}
		}
		if ok {
			existing = append(existing, combo)
		}
	}
	if len(existing) == 0 {
		return nil, apperr.Unprocessable("no valid level combination available in the catalog")
	}
	chosen := existing[dice.UniformRange(0, len(existing)-1)]

	counts := map[int]int{}
	for _, lvl := range chosen {
		counts[lvl]++
	}

	var result []T
	for lvl, need := range counts {
		candidates := append([]T(nil), byLevel[lvl]...)
		for len(candidates) < need {
			candidates = append(candidates, candidates[dice.UniformRange(0, len(candidates)-1)])
		}
		shuffleInPlace(candidates)
		result = append(result, candidates[:need]...)
	}
	return result, nil
}

func shuffleInPlace[T any](s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := dice.UniformRange(0, i)
		s[i], s[j] = s[j], s[i]
	}
}
