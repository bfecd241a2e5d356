// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package item defines the item catalog and the shop generator built on top
of it.

Core Responsibility:

  - Catalog: Exposes the flat item projection (weapons, armor, shields,
    equipment, consumables) behind the shared filter/query engine.
  - Shop generation: Synthesizes a plausible shop inventory from dice-roll
    determined counts, split per a named template's category proportions.
*/
package item

// ItemType classifies a catalog row for shop-bucket partitioning.
type ItemType string

const (
	ItemTypeWeapon     ItemType = "weapon"
	ItemTypeArmor      ItemType = "armor"
	ItemTypeShield     ItemType = "shield"
	ItemTypeEquipment  ItemType = "equipment"
	ItemTypeConsumable ItemType = "consumable"
)

// Item is the flat catalog row exposed by every read path.
type Item struct {
	ID          int64
	Name        string
	Bulk        string
	Quantity    int
	BaseItem    string
	Category    string
	ItemGroup   string
	Description string
	Hardness    int
	HP          int
	Level       int
	Price       int
	Usage       string
	ItemType    ItemType
	Rarity      string
	Size        string
	Source      string
	License     string
	Remaster    bool
}
