// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package item

import (
	"context"

	"github.com/taibuivan/yomira/pkg/dice"
)

// Template names a shop generation profile: which catalog categories it
// stocks and in what proportion.
type Template string

const (
	TemplateBlacksmith Template = "blacksmith"
	TemplateAlchemist  Template = "alchemist"
	TemplateGeneral    Template = "general"
)

// ShopRequest parameterizes shop generation: the filter narrows the
// candidate pool by the item [Filter] fields (levels, rarities, sources,
// remaster flag; there is no trait criterion); Template picks the
// category-split algorithm.
type ShopRequest struct {
	Template Template
	Filter   Filter
}

// Shop is the assembled, ready-to-serve inventory.
type Shop struct {
	Template   Template
	Equipment  []*Item
	Weapons    []*Item
	Armors     []*Item
	Shields    []*Item
	Consumables []*Item
}

// GenerateShop rolls item counts, splits the equipable count per template,
// and fills each category bucket from the catalog, resampling with
// replacement whenever the filtered pool is smaller than the target count.
func GenerateShop(ctx context.Context, repo Repository, req ShopRequest) (*Shop, error) {
	nEquipables := dice.Roll(2, 6) + dice.Roll(1, 4)
	nConsumables := dice.Roll(3, 4)

	shop := &Shop{Template: req.Template}

	weapons, armors, shields, equipment := splitEquipables(req.Template, nEquipables)

	var err error
	if shop.Weapons, err = fillBucket(ctx, repo, req.Filter.WithItemType(ItemTypeWeapon), weapons); err != nil {
		return nil, err
	}
	if shop.Armors, err = fillBucket(ctx, repo, req.Filter.WithItemType(ItemTypeArmor), armors); err != nil {
		return nil, err
	}
	if shop.Shields, err = fillBucket(ctx, repo, req.Filter.WithItemType(ItemTypeShield), shields); err != nil {
		return nil, err
	}
	if shop.Equipment, err = fillBucket(ctx, repo, req.Filter.WithItemType(ItemTypeEquipment), equipment); err != nil {
		return nil, err
	}
	if shop.Consumables, err = fillBucket(ctx, repo, req.Filter.WithItemType(ItemTypeConsumable), nConsumables); err != nil {
		return nil, err
	}
	return shop, nil
}

// splitEquipables divides the equipable count into weapons/armor/shields
// (the "forged" bucket) plus generic equipment, per template.
//
// Blacksmith forges between half and all of the equipables; General forges
// at most half; Alchemist forges none. Within a forged bucket of size n,
// weapons draw from [n/2, n] and armors take the remainder; shields draw
// from [1, armors/3] only when armors >= 3 and are taken out of the armor
// count, which keeps shields never exceeding armors and the four counts
// summing to nEquipables.
func splitEquipables(template Template, nEquipables int) (weapons, armors, shields, equipment int) {
	var forged int
	switch template {
	case TemplateBlacksmith:
		forged = dice.UniformRange(nEquipables/2, nEquipables)
	case TemplateGeneral:
		upper := nEquipables / 2
		if nEquipables <= 1 {
			upper = 1
		}
		forged = dice.UniformRange(0, upper)
	case TemplateAlchemist:
		forged = 0
	default:
		forged = dice.UniformRange(nEquipables/2, nEquipables)
	}

	equipment = nEquipables - forged
	if forged == 0 {
		return 0, 0, 0, equipment
	}

	weapons = dice.UniformRange(forged/2, forged)
	armors = forged - weapons
	if armors >= 3 {
		shields = dice.UniformRange(1, armors/3)
		armors -= shields
	}
	return weapons, armors, shields, equipment
}

// fillBucket samples target items from repo, resampling with replacement
// when the filtered catalog returns fewer than target.
func fillBucket(ctx context.Context, repo Repository, filter Filter, target int) ([]*Item, error) {
	if target <= 0 {
		return nil, nil
	}
	result, err := repo.Sample(ctx, filter, target)
	if err != nil {
		return nil, err
	}
	for len(result) < target && len(result) > 0 {
		extra, err := repo.Sample(ctx, filter, target-len(result))
		if err != nil {
			return nil, err
		}
		if len(extra) == 0 {
			break
		}
		result = append(result, extra...)
	}
	return result, nil
}
