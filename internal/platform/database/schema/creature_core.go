// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CreatureCoreTable represents the '<gs>_creature_core' projection table.
type CreatureCoreTable struct {
	Table string

	ID           string
	ArchiveID    string
	Name         string
	HP           string
	Level        string
	Size         string
	Rarity       string
	Family       string
	IsMelee      string
	IsRanged     string
	IsSpellcaster string
	FocusPoints  string
	ArchiveLink  string
	CreatureType string
	License      string
	Source       string
	Remaster     string
	Alignment    string

	RoleBrute           string
	RoleMagicalStriker  string
	RoleSkillParagon    string
	RoleSkirmisher      string
	RoleSniper          string
	RoleSoldier         string
	RoleSpellcaster     string
}

// CreatureCore builds the projection table schema for the given game-system prefix (e.g. "pf", "sf").
func CreatureCore(gsPrefix string) CreatureCoreTable {
	return CreatureCoreTable{
		Table: gsPrefix + "_creature_core",

		ID:            "id",
		ArchiveID:     "archive_id",
		Name:          "name",
		HP:            "hp",
		Level:         "level",
		Size:          "size",
		Rarity:        "rarity",
		Family:        "family",
		IsMelee:       "is_melee",
		IsRanged:      "is_ranged",
		IsSpellcaster: "is_spellcaster",
		FocusPoints:   "focus_points",
		ArchiveLink:   "archive_link",
		CreatureType:  "creature_type",
		License:       "license",
		Source:        "source",
		Remaster:      "remaster",
		Alignment:     "alignment",

		RoleBrute:          "role_brute",
		RoleMagicalStriker: "role_magical_striker",
		RoleSkillParagon:   "role_skill_paragon",
		RoleSkirmisher:     "role_skirmisher",
		RoleSniper:         "role_sniper",
		RoleSoldier:        "role_soldier",
		RoleSpellcaster:    "role_spellcaster",
	}
}

// Columns returns the ordered column list used for SELECT/INSERT statements.
func (t CreatureCoreTable) Columns() []string {
	return []string{
		t.ID, t.ArchiveID, t.Name, t.HP, t.Level, t.Size, t.Rarity, t.Family,
		t.IsMelee, t.IsRanged, t.IsSpellcaster, t.FocusPoints, t.ArchiveLink,
		t.CreatureType, t.License, t.Source, t.Remaster, t.Alignment,
		t.RoleBrute, t.RoleMagicalStriker, t.RoleSkillParagon, t.RoleSkirmisher,
		t.RoleSniper, t.RoleSoldier, t.RoleSpellcaster,
	}
}

// RoleColumns returns the seven role-affinity percentage columns in the
// canonical order used across scoring, projection update, and HTTP payloads.
func (t CreatureCoreTable) RoleColumns() []string {
	return []string{
		t.RoleBrute, t.RoleMagicalStriker, t.RoleSkillParagon, t.RoleSkirmisher,
		t.RoleSniper, t.RoleSoldier, t.RoleSpellcaster,
	}
}
