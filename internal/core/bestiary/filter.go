// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bestiary

// VersionFilter narrows a query to legacy rules, remastered rules, or both.
type VersionFilter string

const (
	VersionLegacy   VersionFilter = "legacy"
	VersionRemaster VersionFilter = "remaster"
	VersionAny      VersionFilter = "any"
)

// RoleBound is the inclusive [Lower, Upper] affinity range for one role
// filter. Defaults to [50, 100] per the query engine's documented defaults.
type RoleBound struct {
	Lower int
	Upper int
}

// DefaultRoleBound is applied whenever a caller names a role filter without
// supplying explicit bounds.
var DefaultRoleBound = RoleBound{Lower: 50, Upper: 100}

// Filter is the full set of narrowing criteria a creature list request may
// supply. Every field is optional; an empty/nil value omits that predicate
// entirely rather than matching nothing.
type Filter struct {
	Levels        []int
	Families      []string
	Sizes         []Size
	Rarities      []Rarity
	Sources       []string
	CreatureTypes []CreatureType

	IsMelee       *bool
	IsRanged      *bool
	IsSpellcaster *bool

	Roles  map[RoleName]RoleBound
	Traits []string

	Version VersionFilter
}

// anySlice converts a typed slice to []any so it can be handed to [InList].
func anySlice[T any](values []T) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// roleColumn maps a role name to its projection column, grounded on
// schema.CreatureCoreTable's Role* fields.
func roleColumn(table roleColumnSource, role RoleName) string {
	switch role {
	case RoleBrute:
		return table.RoleBrute
	case RoleMagicalStriker:
		return table.RoleMagicalStriker
	case RoleSkillParagon:
		return table.RoleSkillParagon
	case RoleSkirmisher:
		return table.RoleSkirmisher
	case RoleSniper:
		return table.RoleSniper
	case RoleSoldier:
		return table.RoleSoldier
	case RoleSpellcaster:
		return table.RoleSpellcaster
	}
	return ""
}

// roleColumnSource is the subset of schema.CreatureCoreTable the role-bound
// predicates need; kept narrow here so this file has no import cycle with
// the schema package's constructor signature.
type roleColumnSource struct {
	RoleBrute          string
	RoleMagicalStriker string
	RoleSkillParagon   string
	RoleSkirmisher     string
	RoleSniper         string
	RoleSoldier        string
	RoleSpellcaster    string
}

// BuildPredicates renders f into the expression-tree predicates the store
// composes into a WHERE clause. cols carries the concrete column names for
// the creature core table and its trait association/trait tables, all
// parameterized per game system by the caller.
func (f Filter) BuildPredicates(cols FilterColumns) []Predicate {
	predicates := []Predicate{
		InList{Column: cols.Level, Values: anySlice(f.Levels)},
		InList{Column: cols.Family, Values: anySlice(f.Families)},
		InList{Column: cols.Size, Values: anySlice(f.Sizes)},
		InList{Column: cols.Rarity, Values: anySlice(f.Rarities)},
		InList{Column: cols.Source, Values: anySlice(f.Sources)},
		InList{Column: cols.CreatureType, Values: anySlice(f.CreatureTypes)},
	}

	if f.IsMelee != nil {
		predicates = append(predicates, Equals{Column: cols.IsMelee, Value: *f.IsMelee})
	}
	if f.IsRanged != nil {
		predicates = append(predicates, Equals{Column: cols.IsRanged, Value: *f.IsRanged})
	}
	if f.IsSpellcaster != nil {
		predicates = append(predicates, Equals{Column: cols.IsSpellcaster, Value: *f.IsSpellcaster})
	}

	for role, bound := range f.Roles {
		column := roleColumn(roleColumnSource(cols.Roles), role)
		if column == "" {
			continue
		}
		predicates = append(predicates, Between{Column: column, Lower: bound.Lower, Upper: bound.Upper})
	}

	if len(f.Traits) > 0 {
		predicates = append(predicates, SubSelectTraits{
			IDColumn:                    cols.ID,
			AssociationTable:            cols.TraitAssociationTable,
			AssociationCreatureIDColumn: cols.TraitAssociationCreatureID,
			AssociationTraitNameColumn:  cols.TraitAssociationTraitName,
			TraitTable:                  cols.TraitTable,
			TraitNameColumn:             cols.TraitName,
			Names:                       f.Traits,
		})
	}

	switch f.Version {
	case VersionLegacy:
		predicates = append(predicates, Equals{Column: cols.Remaster, Value: false})
	case VersionRemaster:
		predicates = append(predicates, Equals{Column: cols.Remaster, Value: true})
	}

	return predicates
}

// FilterColumns carries every column name the filter predicates need,
// parameterized per game system by the store.
type FilterColumns struct {
	ID            string
	Level         string
	Family        string
	Size          string
	Rarity        string
	Source        string
	CreatureType  string
	IsMelee       string
	IsRanged      string
	IsSpellcaster string
	Remaster      string
	Roles         roleColumnSource

	TraitAssociationTable      string
	TraitAssociationCreatureID string
	TraitAssociationTraitName  string
	TraitTable                 string
	TraitName                  string
}
