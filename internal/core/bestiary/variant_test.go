// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bestiary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/yomira/internal/core/bestiary"
)

/*
TestParseAlignment_ResolvesCaseInsensitively checks recognised codes in
mixed case and the fallback to AlignmentNone for anything else.
*/
func TestParseAlignment_ResolvesCaseInsensitively(t *testing.T) {
	assert.Equal(t, bestiary.AlignmentCE, bestiary.ParseAlignment("ce"))
	assert.Equal(t, bestiary.AlignmentLG, bestiary.ParseAlignment(" LG "))
	assert.Equal(t, bestiary.AlignmentNone, bestiary.ParseAlignment("bogus"))
}

/*
TestDeriveAlignment_RemasterAlwaysYieldsNoAlignment checks that the
remaster flag overrides every trait combination.
*/
func TestDeriveAlignment_RemasterAlwaysYieldsNoAlignment(t *testing.T) {
	got := bestiary.DeriveAlignment([]string{"good", "lawful"}, true)
	assert.Equal(t, bestiary.AlignmentNone, got)
}

/*
TestDeriveAlignment_TraitCombinations checks every good/evil x
chaotic/lawful pairing plus the single-axis and no-axis fallbacks.
*/
func TestDeriveAlignment_TraitCombinations(t *testing.T) {
	tests := []struct {
		name   string
		traits []string
		want   bestiary.Alignment
	}{
		{"chaotic_good", []string{"chaotic", "good"}, bestiary.AlignmentCG},
		{"lawful_good", []string{"lawful", "good"}, bestiary.AlignmentLG},
		{"good_only", []string{"good"}, bestiary.AlignmentNG},
		{"chaotic_evil", []string{"chaotic", "evil"}, bestiary.AlignmentCE},
		{"lawful_evil", []string{"lawful", "evil"}, bestiary.AlignmentLE},
		{"evil_only", []string{"evil"}, bestiary.AlignmentNE},
		{"chaotic_only", []string{"chaotic"}, bestiary.AlignmentCN},
		{"lawful_only", []string{"lawful"}, bestiary.AlignmentLN},
		{"no_axis", []string{"fire", "aquatic"}, bestiary.AlignmentN},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bestiary.DeriveAlignment(tt.traits, false))
		})
	}
}

/*
TestApplyVariant_BaseIsIdentity checks that the base variant (and an empty
string defaulting to base) leaves level, HP, and modifiers unchanged.
*/
func TestApplyVariant_BaseIsIdentity(t *testing.T) {
	c := &bestiary.Creature{Level: 5, HP: 50}

	for _, v := range []bestiary.Variant{bestiary.VariantBase, ""} {
		data := bestiary.ApplyVariant(c, v)
		assert.Equal(t, bestiary.VariantBase, data.Variant)
		assert.Equal(t, 5, data.Level)
		assert.Equal(t, 50, data.HP)
		assert.Zero(t, data.ModifierDelta)
		assert.Zero(t, data.DamageGatedDelta)
	}
}

/*
TestApplyVariant_WeakLevelAvoidsZeroCollisionAtLevelOne checks the
documented special case: weakening a level-1 creature drops two levels
instead of one, landing on -1 rather than 0.
*/
func TestApplyVariant_WeakLevelAvoidsZeroCollisionAtLevelOne(t *testing.T) {
	c := &bestiary.Creature{Level: 1, HP: 20}
	data := bestiary.ApplyVariant(c, bestiary.VariantWeak)
	assert.Equal(t, -1, data.Level)
}

/*
TestApplyVariant_WeakModifiersAndHPDelta checks the modifier deltas and the
level-banded HP penalty for an ordinary (non-level-1) weak transform.
*/
func TestApplyVariant_WeakModifiersAndHPDelta(t *testing.T) {
	c := &bestiary.Creature{Level: 10, HP: 100}
	data := bestiary.ApplyVariant(c, bestiary.VariantWeak)

	assert.Equal(t, 9, data.Level)
	assert.Equal(t, -2, data.ModifierDelta)
	assert.Equal(t, -4, data.DamageGatedDelta)
	assert.Equal(t, 80, data.HP) // level>=6 band: -20
}

/*
TestApplyVariant_WeakHPNeverDropsBelowOne checks the HP floor clamp for a
fragile creature whose weak HP delta would otherwise go non-positive.
*/
func TestApplyVariant_WeakHPNeverDropsBelowOne(t *testing.T) {
	c := &bestiary.Creature{Level: 2, HP: 5}
	data := bestiary.ApplyVariant(c, bestiary.VariantWeak)
	assert.Equal(t, 1, data.HP)
}

/*
TestApplyVariant_EliteLevelAvoidsZeroCollisionNearBaseline checks that
eliting a level -1 or 0 creature jumps two levels instead of one.
*/
func TestApplyVariant_EliteLevelAvoidsZeroCollisionNearBaseline(t *testing.T) {
	assert.Equal(t, 1, bestiary.ApplyVariant(&bestiary.Creature{Level: -1, HP: 10}, bestiary.VariantElite).Level)
	assert.Equal(t, 2, bestiary.ApplyVariant(&bestiary.Creature{Level: 0, HP: 10}, bestiary.VariantElite).Level)
}

/*
TestApplyVariant_EliteModifiersAndHPDelta checks the modifier deltas and
the level-banded HP bonus for an ordinary elite transform.
*/
func TestApplyVariant_EliteModifiersAndHPDelta(t *testing.T) {
	c := &bestiary.Creature{Level: 10, HP: 100}
	data := bestiary.ApplyVariant(c, bestiary.VariantElite)

	assert.Equal(t, 11, data.Level)
	assert.Equal(t, 2, data.ModifierDelta)
	assert.Equal(t, 4, data.DamageGatedDelta)
	assert.Equal(t, 120, data.HP) // level>=5 band: +20
}

/*
TestApplyPWL_SubtractsAbsoluteBaseLevel checks the proficiency-without-level
adjustment for both a positive and a negative base level.
*/
func TestApplyPWL_SubtractsAbsoluteBaseLevel(t *testing.T) {
	assert.Equal(t, 10, bestiary.ApplyPWL(15, 5))
	assert.Equal(t, 10, bestiary.ApplyPWL(15, -5))
}
