// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package bestiary defines the core domain entities for the creature catalog.

It manages the flat creature-core projection (§4.1 of the design), the
derived variant transforms (Weak/Base/Elite), and the seven role-affinity
percentages computed by the scoring engine.

Core Responsibility:

  - Catalog: Defines size, rarity, alignment, and creature-type enumerations.
  - Variants: Derives level/HP/modifier deltas for Weak and Elite statblocks.
  - Roles: Exposes the seven archetype affinity percentages per creature.
*/
package bestiary

import "strconv"

// # Domain Enums

// Size classifies a creature's physical scale.
type Size string

const (
	SizeTiny       Size = "tiny"
	SizeSmall      Size = "small"
	SizeMedium     Size = "medium"
	SizeLarge      Size = "large"
	SizeHuge       Size = "huge"
	SizeGargantuan Size = "gargantuan"
)

// IsValid reports whether s is a recognised [Size] value.
func (s Size) IsValid() bool {
	switch s {
	case SizeTiny, SizeSmall, SizeMedium, SizeLarge, SizeHuge, SizeGargantuan:
		return true
	}
	return false
}

// ParseSize resolves a raw string to a [Size], defaulting to [SizeMedium]
// when the string is not recognised (unknown enum strings never error).
func ParseSize(raw string) Size {
	s := Size(raw)
	if s.IsValid() {
		return s
	}
	return SizeMedium
}

// Rarity classifies how commonly a creature appears in the source material.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityUnique    Rarity = "unique"
)

// IsValid reports whether r is a recognised [Rarity] value.
func (r Rarity) IsValid() bool {
	switch r {
	case RarityCommon, RarityUncommon, RarityRare, RarityUnique:
		return true
	}
	return false
}

// ParseRarity resolves a raw string to a [Rarity], defaulting to [RarityCommon].
func ParseRarity(raw string) Rarity {
	r := Rarity(raw)
	if r.IsValid() {
		return r
	}
	return RarityCommon
}

// CreatureType distinguishes monster statblocks from NPC statblocks, which
// affects how the archive link is derived.
type CreatureType string

const (
	CreatureTypeMonster CreatureType = "monster"
	CreatureTypeNPC     CreatureType = "npc"
)

// IsValid reports whether t is a recognised [CreatureType] value.
func (t CreatureType) IsValid() bool {
	return t == CreatureTypeMonster || t == CreatureTypeNPC
}

// ParseCreatureType resolves a raw string, defaulting to [CreatureTypeMonster].
func ParseCreatureType(raw string) CreatureType {
	t := CreatureType(raw)
	if t.IsValid() {
		return t
	}
	return CreatureTypeMonster
}

// Variant identifies a statblock derivation relative to the base creature.
type Variant string

const (
	VariantWeak  Variant = "weak"
	VariantBase  Variant = "base"
	VariantElite Variant = "elite"
)

// RoleName identifies one of the seven archetype affinity scores.
type RoleName string

const (
	RoleBrute          RoleName = "Brute"
	RoleMagicalStriker RoleName = "Magical Striker"
	RoleSkillParagon   RoleName = "Skill Paragon"
	RoleSkirmisher     RoleName = "Skirmisher"
	RoleSniper         RoleName = "Sniper"
	RoleSoldier        RoleName = "Soldier"
	RoleSpellcaster    RoleName = "Spellcaster"
)

// AllRoles lists the seven role names in their canonical projection-column order.
var AllRoles = []RoleName{
	RoleBrute, RoleMagicalStriker, RoleSkillParagon, RoleSkirmisher,
	RoleSniper, RoleSoldier, RoleSpellcaster,
}

// # Core Entity

// Creature is the flat, denormalized projection row exposed by every read path.
type Creature struct {
	ID           int64
	ArchiveID    *int64
	Name         string
	HP           int
	Level        int
	Size         Size
	Rarity       Rarity
	Family       string
	IsMelee      bool
	IsRanged     bool
	IsSpellcaster bool
	FocusPoints  int
	ArchiveLink  *string
	CreatureType CreatureType
	License      string
	Source       string
	Remaster     bool
	Alignment    Alignment
	Traits       []string

	// RolePercentages maps each [RoleName] to its [0,100] affinity score.
	RolePercentages map[RoleName]int
}

// ArchiveURLFor derives the archive link from an archive id and creature type.
// It mirrors the projection builder's derivation so the read path and the
// rebuild path never disagree.
func ArchiveURLFor(archiveID *int64, creatureType CreatureType) *string {
	if archiveID == nil {
		return nil
	}
	base := "https://2e.aonprd.com/Monsters.aspx?ID="
	if creatureType == CreatureTypeNPC {
		base = "https://2e.aonprd.com/NPCs.aspx?ID="
	}
	link := base + strconv.FormatInt(*archiveID, 10)
	return &link
}
