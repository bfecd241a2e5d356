// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// HazardCoreTable represents the '<gs>_hazard_table'.
type HazardCoreTable struct {
	Table string

	ID          string
	Name        string
	AC          string
	Hardness    string
	HP          string
	HasHealth   string
	Complexity  string
	Level       string
	Rarity      string
	Size        string
	Source      string
	License     string
	Remaster    string
	SaveWill    string
	SaveReflex  string
	SaveFort    string
	Description string
	Disable     string
	Reset       string
}

// HazardCore builds the hazard table schema for the given game-system prefix.
func HazardCore(gsPrefix string) HazardCoreTable {
	return HazardCoreTable{
		Table: gsPrefix + "_hazard_table",

		ID:          "id",
		Name:        "name",
		AC:          "ac",
		Hardness:    "hardness",
		HP:          "hp",
		HasHealth:   "has_health",
		Complexity:  "complexity",
		Level:       "level",
		Rarity:      "rarity",
		Size:        "size",
		Source:      "source",
		License:     "license",
		Remaster:    "remaster",
		SaveWill:    "save_will",
		SaveReflex:  "save_reflex",
		SaveFort:    "save_fortitude",
		Description: "description",
		Disable:     "disable_description",
		Reset:       "reset_description",
	}
}

// Columns returns the ordered column list for SELECT statements.
func (t HazardCoreTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.AC, t.Hardness, t.HP, t.HasHealth, t.Complexity, t.Level,
		t.Rarity, t.Size, t.Source, t.License, t.Remaster, t.SaveWill, t.SaveReflex,
		t.SaveFort, t.Description, t.Disable, t.Reset,
	}
}
