// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package shareable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/yomira/internal/core/shareable"
	"github.com/taibuivan/yomira/internal/platform/apperr"
)

/*
TestShop_EncodeDecodeRoundTrip checks that a shop payload survives a full
encode/decode cycle bit for bit.
*/
func TestShop_EncodeDecodeRoundTrip(t *testing.T) {
	shop := shareable.Shop{
		Template:      "blacksmith",
		WeaponIDs:     []int64{1, 2, 3},
		ArmorIDs:      []int64{4, 5},
		ShieldIDs:     []int64{},
		EquipmentIDs:  []int64{6},
		ConsumableIDs: []int64{7, 8, 9, 10},
	}

	blob, err := shareable.EncodeShop(shop)
	require.NoError(t, err)
	assert.NotEmpty(t, blob)

	got, err := shareable.DecodeShop(blob)
	require.NoError(t, err)
	assert.Equal(t, shop.Template, got.Template)
	assert.Equal(t, shop.WeaponIDs, got.WeaponIDs)
	assert.Equal(t, shop.ArmorIDs, got.ArmorIDs)
	assert.Empty(t, got.ShieldIDs)
	assert.Equal(t, shop.EquipmentIDs, got.EquipmentIDs)
	assert.Equal(t, shop.ConsumableIDs, got.ConsumableIDs)
}

/*
TestEncounter_EncodeDecodeRoundTrip checks the encounter payload's
round-trip, including the boolean PWL flag.
*/
func TestEncounter_EncodeDecodeRoundTrip(t *testing.T) {
	enc := shareable.Encounter{
		PartyLevels: []int32{3, 3, 3, 3},
		CreatureIDs: []int64{100, 200},
		HazardIDs:   []int64{42},
		IsPWLOn:     true,
	}

	blob, err := shareable.EncodeEncounter(enc)
	require.NoError(t, err)

	got, err := shareable.DecodeEncounter(blob)
	require.NoError(t, err)
	assert.Equal(t, enc, *got)
}

/*
TestNpcList_EncodeDecodeRoundTrip checks the NPC-list payload's round-trip
across more than one entry, including each entry's name slice.
*/
func TestNpcList_EncodeDecodeRoundTrip(t *testing.T) {
	list := shareable.NpcList{
		Entries: []shareable.NpcEntry{
			{Names: []string{"Amiri"}, Gender: "female", Ancestry: "human", Level: 3, Job: "guard", Class: "fighter"},
			{Names: []string{"Sajan", "Saj"}, Gender: "male", Culture: "varisian", Nickname: "Saj", Level: 7},
		},
	}

	blob, err := shareable.EncodeNpcList(list)
	require.NoError(t, err)

	got, err := shareable.DecodeNpcList(blob)
	require.NoError(t, err)
	assert.Equal(t, list, *got)
}

/*
TestDecodeShop_BadBase64ReturnsBadLink checks that a blob containing
invalid base64url surfaces the generic bad-link validation error instead of
an internal decode error.
*/
func TestDecodeShop_BadBase64ReturnsBadLink(t *testing.T) {
	_, err := shareable.DecodeShop("not valid base64url!!!")
	require.Error(t, err)
	assert.True(t, apperr.IsAppError(err))
}

/*
TestDecodeShop_ValidBase64ButNotZstdReturnsBadLink checks that a
syntactically valid base64url blob whose payload is not a zstd frame still
surfaces the same bad-link error.
*/
func TestDecodeShop_ValidBase64ButNotZstdReturnsBadLink(t *testing.T) {
	// "hello" base64url-encoded, but not a zstd frame.
	_, err := shareable.DecodeShop("aGVsbG8")
	require.Error(t, err)
	assert.True(t, apperr.IsAppError(err))
}

/*
TestDecodeEncounter_MismatchedPayloadReturnsBadLink checks that a
well-formed zstd frame whose decompressed payload does not fit the
encounter's field layout (a shop payload leaves trailing bytes) still
surfaces an error rather than a panic.
*/
func TestDecodeEncounter_MismatchedPayloadReturnsBadLink(t *testing.T) {
	blob, err := shareable.EncodeShop(shareable.Shop{Template: "x"})
	require.NoError(t, err)

	// A shop blob's bytes do not lay out as a valid encounter payload.
	_, err = shareable.DecodeEncounter(blob)
	assert.Error(t, err)
}

/*
TestDecodeNpcList_EmptyListRoundTrips checks the zero-entry edge case does
not error and returns an empty (not nil-panicking) entry slice.
*/
func TestDecodeNpcList_EmptyListRoundTrips(t *testing.T) {
	blob, err := shareable.EncodeNpcList(shareable.NpcList{})
	require.NoError(t, err)

	got, err := shareable.DecodeNpcList(blob)
	require.NoError(t, err)
	assert.Empty(t, got.Entries)
}
