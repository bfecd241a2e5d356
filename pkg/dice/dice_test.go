// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/yomira/pkg/dice"
)

/*
TestRoll_Bounds checks that every roll of n dice of m sides lands within
[n, n*sides], over many trials to catch an off-by-one at either edge.
*/
func TestRoll_Bounds(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		sides  int
		minSum int
		maxSum int
	}{
		{"2d6", 2, 6, 2, 12},
		{"1d4", 1, 4, 1, 4},
		{"3d4", 3, 4, 3, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 200; i++ {
				sum := dice.Roll(tt.n, tt.sides)
				assert.GreaterOrEqual(t, sum, tt.minSum)
				assert.LessOrEqual(t, sum, tt.maxSum)
			}
		})
	}
}

/*
TestRoll_NonPositive returns zero for a non-positive die count or side count.
*/
func TestRoll_NonPositive(t *testing.T) {
	assert.Equal(t, 0, dice.Roll(0, 6))
	assert.Equal(t, 0, dice.Roll(2, 0))
	assert.Equal(t, 0, dice.Roll(-1, 6))
}

/*
TestUniformRange_Bounds checks every draw lands within [lo, hi] inclusive.
*/
func TestUniformRange_Bounds(t *testing.T) {
	for i := 0; i < 200; i++ {
		v := dice.UniformRange(3, 7)
		assert.GreaterOrEqual(t, v, 3)
		assert.LessOrEqual(t, v, 7)
	}
}

/*
TestUniformRange_Degenerate returns lo itself for a single-value or inverted
range, matching the shop generator's "only roll when armors >= 3" guard.
*/
func TestUniformRange_Degenerate(t *testing.T) {
	assert.Equal(t, 5, dice.UniformRange(5, 5))
	assert.Equal(t, 5, dice.UniformRange(5, 2))
}
