// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bestiary

import (
	"math"

	"github.com/taibuivan/yomira/pkg/scales"
)

// missingFieldDistance is the fixed penalty added to a role's distance sum
// when a weapon, speed, or offensive-action input it checks is absent. A
// missing scale row for the creature's level, a missing spell DC modifier,
// or an empty skill list does not take this penalty: it leaves the roles
// that need that input unscored (0).
const missingFieldDistance = 20

// AbilityScores holds the six modifier values scored against the Ability table.
type AbilityScores struct {
	Strength, Dexterity, Constitution, Intelligence, Wisdom, Charisma int
}

// SavingThrows holds the three save modifiers scored against the SavingThrow table.
type SavingThrows struct {
	Fortitude, Reflex, Will int
}

// WeaponMetric is the minimal strike shape role scoring needs: its to-hit
// bonus and average damage, plus whether it is a ranged attack.
type WeaponMetric struct {
	ToHitBonus int
	AvgDamage  int
	Ranged     bool
}

// SkillMetric pairs a skill's modifier with whatever role scoring needs from it.
type SkillMetric struct {
	Modifier int
}

// ActionMetric flags whether an action is an offensive single-action ability,
// which both Soldier and Skill Paragon scoring count.
type ActionMetric struct {
	Offensive  bool
	SingleAction bool
	IsAttackOfOpportunity bool
}

// RoleInput is the full set of per-creature statistics the affinity scorer
// reads. It is assembled by the projection builder from the raw catalog
// payload and is never persisted itself; only the resulting percentages are.
type RoleInput struct {
	Level         int
	HP            int
	Perception    int
	AC            int
	Abilities     AbilityScores
	Saves         SavingThrows
	Speeds        []int
	Weapons       []WeaponMetric
	Skills        []SkillMetric
	Actions       []ActionMetric
	HighestSpellDCMod *int
	TotalSpellCount   int
}

// distUB returns how far value exceeds ub, or 0 if value <= ub.
func distUB(ub, value int) int {
	if value > ub {
		return value - ub
	}
	return 0
}

// distLB returns how far value falls short of lb, or 0 if value >= lb.
func distLB(lb, value int) int {
	if value < lb {
		return lb - value
	}
	return 0
}

// dist returns the distance of value from the half-open band [lb, ub); a
// value sitting inside the band costs nothing.
func dist(lb, ub, value int) int {
	switch {
	case value < lb:
		return lb - value
	case value >= ub:
		return value + 1 - ub
	default:
		return 0
	}
}

// scoreToPercentage maps an accumulated distance score to the continuous
// affinity curve and rounds to the nearest whole percentage point.
func scoreToPercentage(score int) int {
	return int(math.Round(100 * math.Exp(-0.2*float64(score))))
}

// ScoreRoles computes all seven role affinity percentages for one creature.
// A role whose required scale row is missing for this level scores 0 rather
// than being omitted, so callers always get a complete map.
func ScoreRoles(in RoleInput, tables *scales.Tables) map[RoleName]int {
	out := make(map[RoleName]int, len(AllRoles))
	for _, role := range AllRoles {
		out[role] = 0
	}

	if score, ok := scoreBrute(in, tables); ok {
		out[RoleBrute] = scoreToPercentage(score)
	}
	if score, ok := scoreSniper(in, tables); ok {
		out[RoleSniper] = scoreToPercentage(score)
	}
	if score, ok := scoreSkirmisher(in, tables); ok {
		out[RoleSkirmisher] = scoreToPercentage(score)
	}
	if score, ok := scoreSoldier(in, tables); ok {
		out[RoleSoldier] = scoreToPercentage(score)
	}
	if score, ok := scoreMagicalStriker(in, tables); ok {
		out[RoleMagicalStriker] = scoreToPercentage(score)
	}
	if score, ok := scoreSkillParagon(in, tables); ok {
		out[RoleSkillParagon] = scoreToPercentage(score)
	}
	if score, ok := scoreSpellcaster(in, tables); ok {
		out[RoleSpellcaster] = scoreToPercentage(score)
	}
	return out
}

func bestWeaponDistance(weapons []WeaponMetric, score func(WeaponMetric) int) (int, bool) {
	if len(weapons) == 0 {
		return 0, false
	}
	best := -1
	for _, wp := range weapons {
		d := score(wp)
		if best == -1 || d < best {
			best = d
		}
	}
	return best, true
}

func scoreBrute(in RoleInput, tables *scales.Tables) (int, bool) {
	per, ok := tables.Perception[in.Level]
	if !ok {
		return 0, false
	}
	ability, ok := tables.Ability[in.Level]
	if !ok {
		return 0, false
	}
	saves, ok := tables.SavingThrow[in.Level]
	if !ok {
		return 0, false
	}
	ac, ok := tables.AC[in.Level]
	if !ok {
		return 0, false
	}
	hp, ok := tables.HP[in.Level]
	if !ok {
		return 0, false
	}
	atkBonus, ok := tables.StrikeBonus[in.Level]
	if !ok {
		return 0, false
	}
	dmg, ok := tables.StrikeDmg[in.Level]
	if !ok {
		return 0, false
	}

	score := 0
	score += distUB(per.Moderate.LB, in.Perception+1)
	score += distLB(ability.High.LB, in.Abilities.Strength)
	score += distLB(ability.Moderate.LB, in.Abilities.Constitution)
	score += distUB(ability.Moderate.LB, in.Abilities.Intelligence+1)
	score += distUB(ability.Moderate.LB, in.Abilities.Wisdom+1)
	score += distUB(ability.Moderate.LB, in.Abilities.Charisma+1)
	score += distUB(saves.Moderate.LB, in.Saves.Reflex+1)
	score += distLB(saves.High.LB, in.Saves.Fortitude)
	score += distUB(saves.Moderate.LB, in.Saves.Will+1)
	score += distUB(ac.High.LB, in.AC+1)
	score += distLB(hp.High.LB, in.HP)

	wpDist, found := bestWeaponDistance(in.Weapons, func(wp WeaponMetric) int {
		x := distLB(atkBonus.High.LB, wp.ToHitBonus) + distLB(dmg.High, wp.AvgDamage)
		y := dist(atkBonus.Moderate.LB, atkBonus.High.LB, wp.ToHitBonus) + distLB(dmg.Extreme, wp.AvgDamage)
		if y < x {
			return y
		}
		return x
	})
	if !found {
		score += missingFieldDistance
	} else {
		score += wpDist
	}
	return score, true
}

func scoreSniper(in RoleInput, tables *scales.Tables) (int, bool) {
	per, ok := tables.Perception[in.Level]
	if !ok {
		return 0, false
	}
	ability, ok := tables.Ability[in.Level]
	if !ok {
		return 0, false
	}
	saves, ok := tables.SavingThrow[in.Level]
	if !ok {
		return 0, false
	}
	atkBonus, ok := tables.StrikeBonus[in.Level]
	if !ok {
		return 0, false
	}
	dmg, ok := tables.StrikeDmg[in.Level]
	if !ok {
		return 0, false
	}

	score := 0
	score += distLB(per.Moderate.LB, in.Perception)
	score += distLB(ability.Moderate.LB, in.Abilities.Dexterity)
	score += distLB(saves.Moderate.LB, in.Saves.Reflex)

	rangedOnly := make([]WeaponMetric, 0, len(in.Weapons))
	for _, wp := range in.Weapons {
		if wp.Ranged {
			rangedOnly = append(rangedOnly, wp)
		}
	}
	wpDist, found := bestWeaponDistance(rangedOnly, func(wp WeaponMetric) int {
		return distLB(atkBonus.High.LB, wp.ToHitBonus) + distLB(dmg.Moderate, wp.AvgDamage)
	})
	if !found {
		score += missingFieldDistance
	} else {
		score += wpDist
	}
	return score, true
}

func scoreSkirmisher(in RoleInput, tables *scales.Tables) (int, bool) {
	ability, ok := tables.Ability[in.Level]
	if !ok {
		return 0, false
	}
	saves, ok := tables.SavingThrow[in.Level]
	if !ok {
		return 0, false
	}

	score := 0
	score += distLB(ability.High.LB, in.Abilities.Dexterity)
	score += distUB(saves.Moderate.LB, in.Saves.Fortitude+1)
	score += distLB(saves.High.LB, in.Saves.Reflex)

	if len(in.Speeds) == 0 {
		score += missingFieldDistance
	} else {
		best := -1
		for _, speed := range in.Speeds {
			d := distLB(30, speed)
			if best == -1 || d < best {
				best = d
			}
		}
		score += best
	}
	return score, true
}

func scoreSoldier(in RoleInput, tables *scales.Tables) (int, bool) {
	ability, ok := tables.Ability[in.Level]
	if !ok {
		return 0, false
	}
	ac, ok := tables.AC[in.Level]
	if !ok {
		return 0, false
	}
	saves, ok := tables.SavingThrow[in.Level]
	if !ok {
		return 0, false
	}
	atkBonus, ok := tables.StrikeBonus[in.Level]
	if !ok {
		return 0, false
	}
	dmg, ok := tables.StrikeDmg[in.Level]
	if !ok {
		return 0, false
	}

	score := 0
	score += distLB(ability.High.LB, in.Abilities.Strength)
	score += distLB(ac.High.LB, in.AC)
	score += distLB(saves.High.LB, in.Saves.Fortitude)

	wpDist, found := bestWeaponDistance(in.Weapons, func(wp WeaponMetric) int {
		return distLB(atkBonus.High.LB, wp.ToHitBonus) + distLB(dmg.High, wp.AvgDamage)
	})
	if !found {
		score += missingFieldDistance
	} else {
		score += wpDist
	}

	hasOffensiveAction := false
	hasAttackOfOpportunity := false
	for _, act := range in.Actions {
		if act.Offensive && act.SingleAction {
			hasOffensiveAction = true
		}
		if act.IsAttackOfOpportunity {
			hasAttackOfOpportunity = true
		}
	}
	switch {
	case !hasOffensiveAction:
		score += missingFieldDistance
	case !hasAttackOfOpportunity:
		score += 3
	}
	return score, true
}

func scoreMagicalStriker(in RoleInput, tables *scales.Tables) (int, bool) {
	atkBonus, ok := tables.StrikeBonus[in.Level]
	if !ok {
		return 0, false
	}
	dmg, ok := tables.StrikeDmg[in.Level]
	if !ok {
		return 0, false
	}
	spellDC, ok := tables.SpellDcAtk[in.Level]
	if !ok {
		return 0, false
	}
	if in.HighestSpellDCMod == nil {
		return 0, false
	}

	score := 0
	wpDist, found := bestWeaponDistance(in.Weapons, func(wp WeaponMetric) int {
		return distLB(atkBonus.High.LB, wp.ToHitBonus) + distLB(dmg.High, wp.AvgDamage)
	})
	if !found {
		score += missingFieldDistance
	} else {
		score += wpDist
	}
	score += distLB(spellDC.ModerateDC, *in.HighestSpellDCMod)

	expected := expectedSpellCount(in.Level) - 1
	if in.TotalSpellCount < expected {
		score += expected - in.TotalSpellCount
	}
	return score, true
}

func scoreSkillParagon(in RoleInput, tables *scales.Tables) (int, bool) {
	ability, ok := tables.Ability[in.Level]
	if !ok {
		return 0, false
	}
	saves, ok := tables.SavingThrow[in.Level]
	if !ok {
		return 0, false
	}
	if _, ok := tables.Skill[in.Level]; !ok {
		return 0, false
	}
	if len(in.Skills) == 0 {
		return 0, false
	}

	bestSkill := in.Skills[0].Modifier
	for _, sk := range in.Skills[1:] {
		if sk.Modifier > bestSkill {
			bestSkill = sk.Modifier
		}
	}

	score := 0
	score += distLB(ability.High.LB, bestSkill)
	score += distUB(saves.Moderate.LB, in.Saves.Fortitude+1)

	refDist := distLB(saves.High.LB, in.Saves.Reflex)
	willDist := distLB(saves.High.LB, in.Saves.Will)
	if refDist > willDist {
		score += willDist
	} else {
		score += refDist
	}

	expectedHighSkills := len(in.Skills) / 100 * 70
	atOrAboveModerate := 0
	for _, sk := range in.Skills {
		if sk.Modifier >= saves.Moderate.LB {
			atOrAboveModerate++
		}
	}
	score += absInt(atOrAboveModerate - expectedHighSkills)

	offensiveActions := 0
	for _, act := range in.Actions {
		if act.Offensive && act.SingleAction {
			offensiveActions++
		}
	}
	if offensiveActions < 2 {
		score += missingFieldDistance
	}
	return score, true
}

func scoreSpellcaster(in RoleInput, tables *scales.Tables) (int, bool) {
	saves, ok := tables.SavingThrow[in.Level]
	if !ok {
		return 0, false
	}
	hp, ok := tables.HP[in.Level]
	if !ok {
		return 0, false
	}
	spellDC, ok := tables.SpellDcAtk[in.Level]
	if !ok {
		return 0, false
	}
	ability, ok := tables.Ability[in.Level]
	if !ok {
		return 0, false
	}
	if in.HighestSpellDCMod == nil {
		return 0, false
	}

	score := 0
	score += distUB(saves.Moderate.LB, in.Saves.Fortitude+1)
	score += distLB(saves.High.LB, in.Saves.Will)
	score += distUB(hp.High.LB, in.HP+1)
	score += distLB(spellDC.HighDC, *in.HighestSpellDCMod)

	expected := expectedSpellCount(in.Level)
	if in.TotalSpellCount < expected {
		score += expected - in.TotalSpellCount
	}

	bestMental := in.Abilities.Wisdom
	if in.Abilities.Intelligence > bestMental {
		bestMental = in.Abilities.Intelligence
	}
	if in.Abilities.Charisma > bestMental {
		bestMental = in.Abilities.Charisma
	}
	score += distLB(ability.High.LB, bestMental)
	return score, true
}

// expectedSpellCount is half the creature's level rounded up, the baseline
// spell repertoire size both caster roles compare against.
func expectedSpellCount(level int) int {
	return int(math.Ceil(float64(level) / 2))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
