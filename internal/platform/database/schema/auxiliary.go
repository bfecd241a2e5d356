// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CreatureTable represents the normalized '<gs>_creature_table', the
// source of truth the projection builder reads to assemble
// '<gs>_creature_core'. Migrations bootstrap this table ahead of the
// builder's first run.
type CreatureTable struct {
	Table string

	ID                string
	ArchiveID         string
	Name              string
	HP                string
	Level             string
	Size              string
	Rarity            string
	Family            string
	License           string
	Source            string
	Remaster          string
	CreatureType      string
	FocusPoints       string
	StrMod            string
	DexMod            string
	ConMod            string
	IntMod            string
	WisMod            string
	ChaMod            string
	FortSave          string
	ReflexSave        string
	WillSave          string
	Perception        string
	AC                string
	HighestSpellDCMod string
	TotalSpellCount   string
	Speeds            string
}

// Creature builds the normalized creature-table schema for gsPrefix.
func Creature(gsPrefix string) CreatureTable {
	return CreatureTable{
		Table: gsPrefix + "_creature_table",

		ID:                "id",
		ArchiveID:         "aon_id",
		Name:              "name",
		HP:                "hp",
		Level:             "level",
		Size:              "size",
		Rarity:            "rarity",
		Family:            "family",
		License:           "license",
		Source:            "source",
		Remaster:          "remaster",
		CreatureType:      "creature_type",
		FocusPoints:       "focus_points",
		StrMod:            "str_mod",
		DexMod:            "dex_mod",
		ConMod:            "con_mod",
		IntMod:            "int_mod",
		WisMod:            "wis_mod",
		ChaMod:            "cha_mod",
		FortSave:          "fort_save",
		ReflexSave:        "reflex_save",
		WillSave:          "will_save",
		Perception:        "perception",
		AC:                "ac",
		HighestSpellDCMod: "highest_spell_dc_mod",
		TotalSpellCount:   "total_spell_count",
		Speeds:            "speeds",
	}
}

// WeaponAssociationTable represents '<gs>_weapon_creature_association_table'.
type WeaponAssociationTable struct {
	Table      string
	CreatureID string
	Name       string
	IsRanged   string
	ToHit      string
	AvgDamage  string
}

// WeaponAssociation builds the weapon/creature association schema.
func WeaponAssociation(gsPrefix string) WeaponAssociationTable {
	return WeaponAssociationTable{
		Table:      gsPrefix + "_weapon_creature_association_table",
		CreatureID: "creature_id",
		Name:       "name",
		IsRanged:   "is_ranged",
		ToHit:      "to_hit_bonus",
		AvgDamage:  "avg_damage",
	}
}

// SkillTable represents '<gs>_skill_table'.
type SkillTable struct {
	Table      string
	CreatureID string
	Name       string
	Modifier   string
}

// Skill builds the skill table schema.
func Skill(gsPrefix string) SkillTable {
	return SkillTable{
		Table:      gsPrefix + "_skill_table",
		CreatureID: "creature_id",
		Name:       "name",
		Modifier:   "modifier",
	}
}

// ActionTable represents '<gs>_action_table'.
type ActionTable struct {
	Table               string
	CreatureID          string
	Name                string
	Offensive           string
	SingleAction        string
	AttackOfOpportunity string
}

// Action builds the action table schema.
func Action(gsPrefix string) ActionTable {
	return ActionTable{
		Table:               gsPrefix + "_action_table",
		CreatureID:          "creature_id",
		Name:                "name",
		Offensive:           "offensive",
		SingleAction:        "single_action",
		AttackOfOpportunity: "is_attack_of_opportunity",
	}
}

// SpellAssociationTable represents '<gs>_spell_creature_association_table'.
type SpellAssociationTable struct {
	Table      string
	CreatureID string
	Name       string
	Rank       string
}

// SpellAssociation builds the spell/creature association schema.
func SpellAssociation(gsPrefix string) SpellAssociationTable {
	return SpellAssociationTable{
		Table:      gsPrefix + "_spell_creature_association_table",
		CreatureID: "creature_id",
		Name:       "name",
		Rank:       "rank",
	}
}
