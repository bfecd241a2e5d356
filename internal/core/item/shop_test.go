// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package item

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
TestSplitEquipables_AlchemistForgesNothing checks that the alchemist
template routes every equipable into the generic equipment bucket.
*/
func TestSplitEquipables_AlchemistForgesNothing(t *testing.T) {
	for i := 0; i < 50; i++ {
		weapons, armors, shields, equipment := splitEquipables(TemplateAlchemist, 10)
		assert.Zero(t, weapons)
		assert.Zero(t, armors)
		assert.Zero(t, shields)
		assert.Equal(t, 10, equipment)
	}
}

/*
TestSplitEquipables_BlacksmithForgesAtLeastHalf checks that the blacksmith
template's weapon+armor+shield count never falls below half the equipable
total and that the forged and equipment counts sum to that total.
*/
func TestSplitEquipables_BlacksmithForgesAtLeastHalf(t *testing.T) {
	for i := 0; i < 200; i++ {
		weapons, armors, shields, equipment := splitEquipables(TemplateBlacksmith, 10)
		forged := weapons + armors + shields
		assert.GreaterOrEqual(t, forged, 5)
		assert.Equal(t, 10, forged+equipment)
	}
}

/*
TestSplitEquipables_ShieldsNeverExceedArmors checks the invariant called
out in splitEquipables' doc comment across every template and a range of
equipable counts.
*/
func TestSplitEquipables_ShieldsNeverExceedArmors(t *testing.T) {
	templates := []Template{TemplateBlacksmith, TemplateGeneral, TemplateAlchemist}
	for _, tmpl := range templates {
		for n := 0; n <= 20; n++ {
			for trial := 0; trial < 20; trial++ {
				_, armors, shields, _ := splitEquipables(tmpl, n)
				assert.LessOrEqualf(t, shields, armors, "template=%s n=%d", tmpl, n)
			}
		}
	}
}

/*
TestSplitEquipables_GeneralForgesAtMostHalf checks that the general
template's forged count never exceeds half the equipable total.
*/
func TestSplitEquipables_GeneralForgesAtMostHalf(t *testing.T) {
	for i := 0; i < 200; i++ {
		weapons, armors, _, _ := splitEquipables(TemplateGeneral, 10)
		assert.LessOrEqual(t, weapons+armors, 5)
	}
}

/*
TestSplitEquipables_ZeroForgedYieldsNoShieldsOrForgedCategories checks that
when forged is zero (alchemist template, zero equipables), every bucket
comes back empty.
*/
func TestSplitEquipables_ZeroForgedYieldsNoShieldsOrForgedCategories(t *testing.T) {
	weapons, armors, shields, equipment := splitEquipables(TemplateAlchemist, 0)
	assert.Zero(t, weapons)
	assert.Zero(t, armors)
	assert.Zero(t, shields)
	assert.Zero(t, equipment)
}

// fakeRepository is a minimal in-memory Repository stand-in for shop
// generation tests; Sample hands back up to n items from a fixed catalog.
type fakeRepository struct {
	catalog []*Item
}

func (f *fakeRepository) List(ctx context.Context, query ListQuery) ([]*Item, int, error) {
	return f.catalog, len(f.catalog), nil
}

func (f *fakeRepository) GetByID(ctx context.Context, id int64) (*Item, error) {
	for _, it := range f.catalog {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, nil
}

func (f *fakeRepository) Sample(ctx context.Context, filter Filter, n int) ([]*Item, error) {
	if n > len(f.catalog) {
		n = len(f.catalog)
	}
	return append([]*Item(nil), f.catalog[:n]...), nil
}

func (f *fakeRepository) Enumerate(ctx context.Context, facet Facet) ([]string, error) {
	return nil, nil
}

/*
TestFillBucket_ZeroTargetReturnsNil checks the target<=0 short-circuit.
*/
func TestFillBucket_ZeroTargetReturnsNil(t *testing.T) {
	repo := &fakeRepository{catalog: []*Item{{ID: 1}}}
	result, err := fillBucket(context.Background(), repo, Filter{}, 0)
	require.NoError(t, err)
	assert.Nil(t, result)
}

/*
TestFillBucket_ResamplesWhenPoolSmallerThanTarget checks that fillBucket
keeps requesting more items until it reaches target, given a catalog
smaller than the requested count (Sample returns whatever is available
each call, so a repeat call still returns the full small catalog).
*/
func TestFillBucket_ResamplesWhenPoolSmallerThanTarget(t *testing.T) {
	repo := &fakeRepository{catalog: []*Item{{ID: 1}, {ID: 2}}}
	result, err := fillBucket(context.Background(), repo, Filter{}, 5)
	require.NoError(t, err)
	assert.Len(t, result, 5)
}

/*
TestFillBucket_EmptyCatalogStopsWithoutLooping checks that an empty catalog
does not spin forever waiting for a target that can never be reached.
*/
func TestFillBucket_EmptyCatalogStopsWithoutLooping(t *testing.T) {
	repo := &fakeRepository{}
	result, err := fillBucket(context.Background(), repo, Filter{}, 5)
	require.NoError(t, err)
	assert.Empty(t, result)
}
