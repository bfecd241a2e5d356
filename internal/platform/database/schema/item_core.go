// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// ItemCoreTable represents the '<gs>_item_table'.
type ItemCoreTable struct {
	Table string

	ID          string
	Name        string
	Bulk        string
	Quantity    string
	BaseItem    string
	Category    string
	ItemGroup   string
	Description string
	Hardness    string
	HP          string
	Level       string
	Price       string
	Usage       string
	ItemType    string
	Rarity      string
	Size        string
	Source      string
	License     string
	Remaster    string
}

// ItemCore builds the item table schema for the given game-system prefix.
func ItemCore(gsPrefix string) ItemCoreTable {
	return ItemCoreTable{
		Table: gsPrefix + "_item_table",

		ID:          "id",
		Name:        "name",
		Bulk:        "bulk",
		Quantity:    "quantity",
		BaseItem:    "base_item",
		Category:    "category",
		ItemGroup:   "item_group",
		Description: "description",
		Hardness:    "hardness",
		HP:          "hp",
		Level:       "level",
		Price:       "price",
		Usage:       "usage",
		ItemType:    "item_type",
		Rarity:      "rarity",
		Size:        "size",
		Source:      "source",
		License:     "license",
		Remaster:    "remaster",
	}
}

// Columns returns the ordered column list for SELECT statements.
func (t ItemCoreTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Bulk, t.Quantity, t.BaseItem, t.Category, t.ItemGroup,
		t.Description, t.Hardness, t.HP, t.Level, t.Price, t.Usage, t.ItemType,
		t.Rarity, t.Size, t.Source, t.License, t.Remaster,
	}
}

// TraitCreatureAssociationTable represents '<gs>_trait_creature_association_table'.
type TraitCreatureAssociationTable struct {
	Table      string
	CreatureID string
	TraitID    string
}

// TraitCreatureAssociation builds the trait/creature junction schema.
func TraitCreatureAssociation(gsPrefix string) TraitCreatureAssociationTable {
	return TraitCreatureAssociationTable{
		Table:      gsPrefix + "_trait_creature_association_table",
		CreatureID: "creature_id",
		TraitID:    "trait_id",
	}
}

// TraitTable represents '<gs>_trait_table'.
type TraitTable struct {
	Table string
	Name  string
}

// Trait builds the trait table schema.
func Trait(gsPrefix string) TraitTable {
	return TraitTable{
		Table: gsPrefix + "_trait_table",
		Name:  "name",
	}
}
