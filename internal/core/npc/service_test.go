// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package npc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
TestResolveOrigin_AncestryTakesPrecedence checks that supplying both
whitelists resolves to an ancestry, never a culture.
*/
func TestResolveOrigin_AncestryTakesPrecedence(t *testing.T) {
	svc := &Service{}
	req := NameRequest{
		Ancestries: []Ancestry{AncestryDwarf},
		Cultures:   []Culture{CultureTaldan},
	}

	key, _, _, _, result, err := svc.resolveOrigin(req)
	require.NoError(t, err)
	assert.Equal(t, string(AncestryDwarf), key)
	require.NotNil(t, result.Ancestry)
	assert.Equal(t, AncestryDwarf, *result.Ancestry)
	assert.Nil(t, result.Culture)
}

/*
TestResolveOrigin_CultureWhenNoAncestrySupplied checks that an
ancestry-less request falls through to the culture whitelist.
*/
func TestResolveOrigin_CultureWhenNoAncestrySupplied(t *testing.T) {
	svc := &Service{}
	req := NameRequest{Cultures: []Culture{CultureUlfen}}

	key, contextSize, _, validGenders, result, err := svc.resolveOrigin(req)
	require.NoError(t, err)
	assert.Equal(t, string(CultureUlfen), key)
	assert.Equal(t, 3, contextSize)
	assert.Equal(t, AllGenders, validGenders)
	require.NotNil(t, result.Culture)
	assert.Equal(t, CultureUlfen, *result.Culture)
}

/*
TestResolveOrigin_ErrorsWhenNeitherSupplied checks that an empty request
surfaces a validation error rather than picking an arbitrary origin.
*/
func TestResolveOrigin_ErrorsWhenNeitherSupplied(t *testing.T) {
	svc := &Service{}
	_, _, _, _, _, err := svc.resolveOrigin(NameRequest{})
	assert.Error(t, err)
}

/*
TestResolveOrigin_LeshyRestrictsToNonBinary checks that the leshy ancestry's
valid-gender set carries through resolveOrigin unchanged.
*/
func TestResolveOrigin_LeshyRestrictsToNonBinary(t *testing.T) {
	svc := &Service{}
	_, _, _, validGenders, _, err := svc.resolveOrigin(NameRequest{Ancestries: []Ancestry{AncestryLeshy}})
	require.NoError(t, err)
	assert.Equal(t, []Gender{GenderNonBinary}, validGenders)
}

/*
TestResolveGender_NoRequestPicksFromValidSet checks that an unconstrained
request still returns one of the origin's valid genders.
*/
func TestResolveGender_NoRequestPicksFromValidSet(t *testing.T) {
	for i := 0; i < 20; i++ {
		g, err := resolveGender(nil, []Gender{GenderNonBinary})
		require.NoError(t, err)
		assert.Equal(t, GenderNonBinary, g)
	}
}

/*
TestResolveGender_EmptyIntersectionErrors checks that requesting a gender
outside the origin's valid set surfaces a validation error instead of
silently ignoring the request.
*/
func TestResolveGender_EmptyIntersectionErrors(t *testing.T) {
	_, err := resolveGender([]Gender{GenderMale, GenderFemale}, []Gender{GenderNonBinary})
	assert.Error(t, err)
}

/*
TestIntersectGenders_KeepsOnlyValidRequestedEntries checks that the
intersection preserves requested order and drops entries absent from valid.
*/
func TestIntersectGenders_KeepsOnlyValidRequestedEntries(t *testing.T) {
	got := intersectGenders(
		[]Gender{GenderFemale, GenderMale, GenderNonBinary},
		[]Gender{GenderMale, GenderNonBinary},
	)
	assert.Equal(t, []Gender{GenderMale, GenderNonBinary}, got)
}

/*
TestTitleCase_CapitalizesEachWord checks capitalization of the first rune
of every space-separated word, leaving the remainder untouched.
*/
func TestTitleCase_CapitalizesEachWord(t *testing.T) {
	assert.Equal(t, "Amiri", titleCase("amiri"))
	assert.Equal(t, "Jade Regent", titleCase("jade regent"))
	assert.Equal(t, "", titleCase(""))
}

/*
TestPickOrRandom_UsesWhitelistWhenNonEmpty checks that a non-empty
whitelist is always drawn from, never the fallback pool.
*/
func TestPickOrRandom_UsesWhitelistWhenNonEmpty(t *testing.T) {
	for i := 0; i < 20; i++ {
		got := pickOrRandom([]int{7}, []int{1, 2, 3})
		assert.Equal(t, 7, got)
	}
}

/*
TestPickOrRandom_FallsBackToAllWhenWhitelistEmpty checks that an empty
whitelist draws from the fallback pool instead.
*/
func TestPickOrRandom_FallsBackToAllWhenWhitelistEmpty(t *testing.T) {
	for i := 0; i < 20; i++ {
		got := pickOrRandom([]int(nil), []int{1, 2, 3})
		assert.Contains(t, []int{1, 2, 3}, got)
	}
}

/*
TestRandomLevel_DefaultsToFullRangeOnInvalidBounds checks that nil or
inverted min/max bounds fall back to the catalog's full level range.
*/
func TestRandomLevel_DefaultsToFullRangeOnInvalidBounds(t *testing.T) {
	svc := &Service{}
	inverted := 10
	low := 5

	for i := 0; i < 20; i++ {
		lvl := svc.RandomLevel(nil, nil)
		assert.GreaterOrEqual(t, lvl, minLevel)
		assert.LessOrEqual(t, lvl, maxLevel)

		lvl = svc.RandomLevel(&inverted, &low)
		assert.GreaterOrEqual(t, lvl, minLevel)
		assert.LessOrEqual(t, lvl, maxLevel)
	}
}

/*
TestRandomLevel_RespectsExplicitBounds checks that a valid bound pair
restricts the draw to that narrower window.
*/
func TestRandomLevel_RespectsExplicitBounds(t *testing.T) {
	svc := &Service{}
	min, max := 3, 5
	for i := 0; i < 30; i++ {
		lvl := svc.RandomLevel(&min, &max)
		assert.GreaterOrEqual(t, lvl, 3)
		assert.LessOrEqual(t, lvl, 5)
	}
}

/*
TestRandomJob_SwitchesPoolByGameSystem checks that the Starfinder pool is
used for "sf" and the Pathfinder pool otherwise.
*/
func TestRandomJob_SwitchesPoolByGameSystem(t *testing.T) {
	svc := &Service{}
	for i := 0; i < 20; i++ {
		assert.Contains(t, SfJobs, svc.RandomJob("sf", nil))
		assert.Contains(t, PfJobs, svc.RandomJob("pf", nil))
	}
}

/*
TestRandomClass_SwitchesPoolByGameSystem checks the same game-system
dispatch for class selection.
*/
func TestRandomClass_SwitchesPoolByGameSystem(t *testing.T) {
	svc := &Service{}
	for i := 0; i < 20; i++ {
		assert.Contains(t, SfClasses, svc.RandomClass("sf", nil))
		assert.Contains(t, PfClasses, svc.RandomClass("pf", nil))
	}
}
