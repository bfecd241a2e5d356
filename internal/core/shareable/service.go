// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package shareable

import (
	"context"

	"github.com/taibuivan/yomira/internal/core/bestiary"
	"github.com/taibuivan/yomira/internal/core/hazard"
	"github.com/taibuivan/yomira/internal/core/item"
)

// Service encodes catalog-backed results into shareable blobs and
// rehydrates decoded blobs back into full catalog rows.
type Service struct {
	creatures bestiary.Repository
	hazards   hazard.Repository
	items     item.Repository
}

// NewService constructs a shareable codec service.
func NewService(creatures bestiary.Repository, hazards hazard.Repository, items item.Repository) *Service {
	return &Service{creatures: creatures, hazards: hazards, items: items}
}

// HydratedShop is a decoded shop with every id resolved back to its
// catalog row.
type HydratedShop struct {
	Template    string
	Weapons     []*item.Item
	Armors      []*item.Item
	Shields     []*item.Item
	Equipment   []*item.Item
	Consumables []*item.Item
}

// EncodeShop extracts catalog ids from shop and produces a shareable blob.
func (s *Service) EncodeShop(shop *item.Shop) (string, error) {
	return EncodeShop(Shop{
		Template:      string(shop.Template),
		WeaponIDs:     itemIDs(shop.Weapons),
		ArmorIDs:      itemIDs(shop.Armors),
		ShieldIDs:     itemIDs(shop.Shields),
		EquipmentIDs:  itemIDs(shop.Equipment),
		ConsumableIDs: itemIDs(shop.Consumables),
	})
}

// DecodeShop decodes blob and re-fetches every referenced item row.
func (s *Service) DecodeShop(ctx context.Context, blob string) (*HydratedShop, error) {
	decoded, err := DecodeShop(blob)
	if err != nil {
		return nil, err
	}
	hydrated := &HydratedShop{Template: decoded.Template}
	var fetchErr error
	if hydrated.Weapons, fetchErr = s.fetchItems(ctx, decoded.WeaponIDs); fetchErr != nil {
		return nil, fetchErr
	}
	if hydrated.Armors, fetchErr = s.fetchItems(ctx, decoded.ArmorIDs); fetchErr != nil {
		return nil, fetchErr
	}
	if hydrated.Shields, fetchErr = s.fetchItems(ctx, decoded.ShieldIDs); fetchErr != nil {
		return nil, fetchErr
	}
	if hydrated.Equipment, fetchErr = s.fetchItems(ctx, decoded.EquipmentIDs); fetchErr != nil {
		return nil, fetchErr
	}
	if hydrated.Consumables, fetchErr = s.fetchItems(ctx, decoded.ConsumableIDs); fetchErr != nil {
		return nil, fetchErr
	}
	return hydrated, nil
}

func (s *Service) fetchItems(ctx context.Context, ids []int64) ([]*item.Item, error) {
	out := make([]*item.Item, 0, len(ids))
	for _, id := range ids {
		row, err := s.items.GetByID(ctx, id)
		if err != nil {
			return nil, badLink()
		}
		out = append(out, row)
	}
	return out, nil
}

func itemIDs(items []*item.Item) []int64 {
	ids := make([]int64, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}

// HydratedEncounter is a decoded encounter with every id resolved back to
// its catalog row.
type HydratedEncounter struct {
	PartyLevels []int
	Creatures   []*bestiary.Creature
	Hazards     []*hazard.Hazard
	IsPWLOn     bool
}

// EncodeEncounter extracts catalog ids from an encounter and produces a
// shareable blob.
func (s *Service) EncodeEncounter(partyLevels []int, creatures []*bestiary.Creature, hazards []*hazard.Hazard, isPWLOn bool) (string, error) {
	levels := make([]int32, len(partyLevels))
	for i, v := range partyLevels {
		levels[i] = int32(v)
	}
	creatureIDs := make([]int64, len(creatures))
	for i, c := range creatures {
		creatureIDs[i] = c.ID
	}
	hazardIDs := make([]int64, len(hazards))
	for i, h := range hazards {
		hazardIDs[i] = h.ID
	}
	return EncodeEncounter(Encounter{
		PartyLevels: levels,
		CreatureIDs: creatureIDs,
		HazardIDs:   hazardIDs,
		IsPWLOn:     isPWLOn,
	})
}

// DecodeEncounter decodes blob and re-fetches every referenced creature and
// hazard row.
func (s *Service) DecodeEncounter(ctx context.Context, blob string) (*HydratedEncounter, error) {
	decoded, err := DecodeEncounter(blob)
	if err != nil {
		return nil, err
	}
	hydrated := &HydratedEncounter{IsPWLOn: decoded.IsPWLOn}
	hydrated.PartyLevels = make([]int, len(decoded.PartyLevels))
	for i, v := range decoded.PartyLevels {
		hydrated.PartyLevels[i] = int(v)
	}
	for _, id := range decoded.CreatureIDs {
		creature, err := s.creatures.GetByID(ctx, id)
		if err != nil {
			return nil, badLink()
		}
		hydrated.Creatures = append(hydrated.Creatures, creature)
	}
	for _, id := range decoded.HazardIDs {
		hz, err := s.hazards.GetByID(ctx, id)
		if err != nil {
			return nil, badLink()
		}
		hydrated.Hazards = append(hydrated.Hazards, hz)
	}
	return hydrated, nil
}
