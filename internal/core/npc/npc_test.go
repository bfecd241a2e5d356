// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package npc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/yomira/internal/core/npc"
)

/*
TestAncestry_ValidGenders checks that leshy are restricted to non-binary
while every other ancestry supports the full gender set.
*/
func TestAncestry_ValidGenders(t *testing.T) {
	assert.Equal(t, []npc.Gender{npc.GenderNonBinary}, npc.AncestryLeshy.ValidGenders())
	assert.Equal(t, npc.AllGenders, npc.AncestryHuman.ValidGenders())
}

/*
TestAncestry_ContextSizeAndNameLength checks that leshy use a wider Markov
context window and a longer default name length than every other ancestry.
*/
func TestAncestry_ContextSizeAndNameLength(t *testing.T) {
	assert.Equal(t, 3, npc.AncestryLeshy.ContextSize())
	assert.Equal(t, 30, npc.AncestryLeshy.DefaultNameLength())
	assert.Equal(t, 2, npc.AncestryHuman.ContextSize())
	assert.Equal(t, 15, npc.AncestryHuman.DefaultNameLength())
}

/*
TestAncestry_IsValid checks recognised versus unrecognised ancestry values.
*/
func TestAncestry_IsValid(t *testing.T) {
	assert.True(t, npc.AncestryGoblin.IsValid())
	assert.False(t, npc.Ancestry("android").IsValid())
}

/*
TestCulture_ContextSize checks that Ulfen and Taldan get the wider window
while every other culture uses the default.
*/
func TestCulture_ContextSize(t *testing.T) {
	assert.Equal(t, 3, npc.CultureUlfen.ContextSize())
	assert.Equal(t, 3, npc.CultureTaldan.ContextSize())
	assert.Equal(t, 2, npc.CultureGarund.ContextSize())
}

/*
TestCulture_DefaultNameLength checks a representative sample of the
per-culture name length table.
*/
func TestCulture_DefaultNameLength(t *testing.T) {
	tests := []struct {
		culture npc.Culture
		want    int
	}{
		{npc.CultureShoanti, 8},
		{npc.CultureGarund, 9},
		{npc.CultureTaldan, 12},
		{npc.CultureTian, 20},
		{npc.CultureMwangi, 10},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.culture.DefaultNameLength())
	}
}

/*
TestCulture_IsValid checks recognised versus unrecognised culture values.
*/
func TestCulture_IsValid(t *testing.T) {
	assert.True(t, npc.CultureVarisian.IsValid())
	assert.False(t, npc.Culture("void").IsValid())
}
