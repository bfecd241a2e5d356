// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bestiary

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/yomira/pkg/scales"
)

/*
TestDistUB_ZeroWithinBoundPositiveAbove checks the "distance above an upper
bound" helper: zero inside or at the bound, the overshoot above it.
*/
func TestDistUB_ZeroWithinBoundPositiveAbove(t *testing.T) {
	assert.Equal(t, 0, distUB(10, 10))
	assert.Equal(t, 0, distUB(10, 5))
	assert.Equal(t, 3, distUB(10, 13))
}

/*
TestDistLB_ZeroWithinBoundPositiveBelow checks the "distance below a lower
bound" helper: zero at or above the bound, the shortfall below it.
*/
func TestDistLB_ZeroWithinBoundPositiveBelow(t *testing.T) {
	assert.Equal(t, 0, distLB(10, 10))
	assert.Equal(t, 0, distLB(10, 15))
	assert.Equal(t, 4, distLB(10, 6))
}

/*
TestDist_HalfOpenBandCostsNothingInside checks that a value inside
[lb, ub) costs nothing, while values outside it cost their distance to the
nearer edge (with ub itself counted as just outside).
*/
func TestDist_HalfOpenBandCostsNothingInside(t *testing.T) {
	assert.Equal(t, 0, dist(5, 10, 5))
	assert.Equal(t, 0, dist(5, 10, 9))
	assert.Equal(t, 1, dist(5, 10, 10))
	assert.Equal(t, 2, dist(5, 10, 3))
}

/*
TestScoreToPercentage_ZeroScoreIsFullAffinity checks that a perfect (zero
distance) score maps to 100%, and that score monotonically decreases the
percentage.
*/
func TestScoreToPercentage_ZeroScoreIsFullAffinity(t *testing.T) {
	assert.Equal(t, 100, scoreToPercentage(0))

	prev := 100
	for _, score := range []int{1, 5, 10, 20, 50} {
		pct := scoreToPercentage(score)
		assert.LessOrEqual(t, pct, prev)
		prev = pct
	}
}

/*
TestScoreRoles_EmptyTablesScoresEveryRoleZero checks that a creature level
absent from every scale table still yields a complete map, with every role
scoring 0 rather than being omitted.
*/
func TestScoreRoles_EmptyTablesScoresEveryRoleZero(t *testing.T) {
	tables := &scales.Tables{}
	out := ScoreRoles(RoleInput{Level: 5}, tables)

	assert.Len(t, out, len(AllRoles))
	for _, role := range AllRoles {
		assert.Equal(t, 0, out[role])
	}
}

// fullTablesAtLevel builds a minimal scales.Tables with one populated row
// per table, all keyed to the same level, sufficient to exercise every
// role's scoring path.
func fullTablesAtLevel(level int) *scales.Tables {
	return &scales.Tables{
		Ability:     map[int]scales.AbilityRow{level: scales.NewAbilityRow(-4, 0, 2, 4, 6)},
		AC:          map[int]scales.ACRow{level: scales.NewACRow(18, 22, 26)},
		HP:          map[int]scales.HPRow{level: scales.NewHPRow(10, 20, 20, 40, 40, 60)},
		Perception:  map[int]scales.PerceptionRow{level: scales.NewPerceptionRow(-2, 0, 4, 8, 12)},
		SavingThrow: map[int]scales.SavingThrowRow{level: scales.NewSavingThrowRow(-2, 0, 6, 10, 14)},
		Skill:       map[int]scales.SkillRow{level: scales.NewSkillRow(2, 6, 10, 14, 18)},
		SpellDcAtk:  map[int]scales.SpellDcAndAttackRow{level: {ModerateDC: 18, HighDC: 22, ExtremeDC: 26}},
		StrikeBonus: map[int]scales.StrikeBonusRow{level: scales.NewStrikeBonusRow(10, 14, 18)},
		StrikeDmg:   map[int]scales.StrikeDamageRow{level: {Moderate: 8, High: 14, Extreme: 20}},
	}
}

/*
TestScoreRoles_BruteBuiltCreatureOutscoresSpellcasterBuild checks that a
melee-heavy, high-Strength/Fortitude/HP creature scores a higher Brute
affinity than Spellcaster affinity.
*/
func TestScoreRoles_BruteBuiltCreatureOutscoresSpellcasterBuild(t *testing.T) {
	tables := fullTablesAtLevel(5)

	bruteInput := RoleInput{
		Level:      5,
		Perception: 8,
		AC:         26,
		HP:         60,
		Abilities:  AbilityScores{Strength: 6, Constitution: 6, Intelligence: -4, Wisdom: -4, Charisma: -4},
		Saves:      SavingThrows{Fortitude: 14, Reflex: 0, Will: 0},
		Weapons:    []WeaponMetric{{ToHitBonus: 18, AvgDamage: 20}},
	}
	bruteOut := ScoreRoles(bruteInput, tables)

	assert.Greater(t, bruteOut[RoleBrute], bruteOut[RoleSpellcaster])
}

/*
TestScoreRoles_MissingHighestSpellDCModDisablesCasterRoles checks that the
two spellcasting roles refuse to score (return 0, the omitted-input
default) when no spell DC modifier is supplied at all.
*/
func TestScoreRoles_MissingHighestSpellDCModDisablesCasterRoles(t *testing.T) {
	tables := fullTablesAtLevel(5)
	out := ScoreRoles(RoleInput{Level: 5}, tables)

	assert.Equal(t, 0, out[RoleSpellcaster])
	assert.Equal(t, 0, out[RoleMagicalStriker])
}

/*
TestExpectedSpellCount_HalfLevelRoundedUp checks the baseline repertoire
size formula used by both caster roles.
*/
func TestExpectedSpellCount_HalfLevelRoundedUp(t *testing.T) {
	assert.Equal(t, 0, expectedSpellCount(0))
	assert.Equal(t, 3, expectedSpellCount(5))
	assert.Equal(t, 3, expectedSpellCount(6))
}
