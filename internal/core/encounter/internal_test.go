// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package encounter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

/*
TestFilterCombinationsOutsideRange checks the min/max semantics: both zero
disables filtering, a single nonzero bound pins both ends, and both set
filters an inclusive window.
*/
func TestFilterCombinationsOutsideRange(t *testing.T) {
	combos := [][]int{{1}, {1, 2}, {1, 2, 3}}

	tests := []struct {
		name     string
		min, max int
		wantLen  int
	}{
		{"both_zero_disables_filter", 0, 0, 3},
		{"min_only_pins_both_ends", 2, 0, 1},
		{"max_only_pins_both_ends", 0, 1, 1},
		{"both_set_is_inclusive_window", 1, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterCombinationsOutsideRange(combos, tt.min, tt.max)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

/*
TestLevelDiff_NegativeEnemyBelowPartyKeepsNaturalSign checks that a
negative enemy level below the party average yields the negative
enemy-minus-party difference.
*/
func TestLevelDiff_NegativeEnemyBelowPartyKeepsNaturalSign(t *testing.T) {
	assert.Equal(t, -4.0, levelDiff(3, -1))
}

/*
TestLevelDiff_OrdinarySubtraction checks the common case of a non-negative
enemy level relative to the party average.
*/
func TestLevelDiff_OrdinarySubtraction(t *testing.T) {
	assert.Equal(t, 2.0, levelDiff(3, 5))
	assert.Equal(t, -2.0, levelDiff(3, 1))
}

/*
TestConvertLvlDiffToExp_BelowTableFloorScoresZero checks that a level
difference beneath the table's lowest key scores no XP at all.
*/
func TestConvertLvlDiffToExp_BelowTableFloorScoresZero(t *testing.T) {
	table := creatureXPTable(false)
	assert.Equal(t, 0, convertLvlDiffToExp(-10, 4, table))
}

/*
TestConvertLvlDiffToExp_InTableLooksUpDirectly checks a level difference
present in the table is returned as-is.
*/
func TestConvertLvlDiffToExp_InTableLooksUpDirectly(t *testing.T) {
	table := creatureXPTable(false)
	assert.Equal(t, 40, convertLvlDiffToExp(0, 4, table))
	assert.Equal(t, 160, convertLvlDiffToExp(4, 4, table))
}

/*
TestConvertLvlDiffToExp_AboveTableCeilingClampsToImpossibleFloor checks that
a level difference past the table's highest key is clamped to the scaled
Impossible floor rather than growing unbounded.
*/
func TestConvertLvlDiffToExp_AboveTableCeilingClampsToImpossibleFloor(t *testing.T) {
	table := creatureXPTable(false)
	want := ScaleDifficulty(ChallengeImpossible, 4).Lower
	assert.Equal(t, want, convertLvlDiffToExp(50, 4, table))
}
