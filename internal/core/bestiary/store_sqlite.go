// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bestiary

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/taibuivan/yomira/internal/platform/apperr"
	"github.com/taibuivan/yomira/internal/platform/database/schema"
	"github.com/taibuivan/yomira/internal/platform/dberr"
	"github.com/taibuivan/yomira/pkg/scales"
)

// sqliteRepository implements [Repository] against the embedded catalog database.
type sqliteRepository struct {
	db       *sql.DB
	gsPrefix string
	core     schema.CreatureCoreTable
	assoc    schema.TraitCreatureAssociationTable
	trait    schema.TraitTable
	tables   *scales.Tables
}

// NewSQLiteRepository constructs a creature repository for one game system.
func NewSQLiteRepository(db *sql.DB, gsPrefix string, tables *scales.Tables) Repository {
	return &sqliteRepository{
		db:       db,
		gsPrefix: gsPrefix,
		core:     schema.CreatureCore(gsPrefix),
		assoc:    schema.TraitCreatureAssociation(gsPrefix),
		trait:    schema.Trait(gsPrefix),
		tables:   tables,
	}
}

func (r *sqliteRepository) filterColumns() FilterColumns {
	return FilterColumns{
		ID:            r.core.ID,
		Level:         r.core.Level,
		Family:        r.core.Family,
		Size:          r.core.Size,
		Rarity:        r.core.Rarity,
		Source:        r.core.Source,
		CreatureType:  r.core.CreatureType,
		IsMelee:       r.core.IsMelee,
		IsRanged:      r.core.IsRanged,
		IsSpellcaster: r.core.IsSpellcaster,
		Remaster:      r.core.Remaster,
		Roles: roleColumnSource{
			RoleBrute:          r.core.RoleBrute,
			RoleMagicalStriker: r.core.RoleMagicalStriker,
			RoleSkillParagon:   r.core.RoleSkillParagon,
			RoleSkirmisher:     r.core.RoleSkirmisher,
			RoleSniper:         r.core.RoleSniper,
			RoleSoldier:        r.core.RoleSoldier,
			RoleSpellcaster:    r.core.RoleSpellcaster,
		},
		TraitAssociationTable:      r.assoc.Table,
		TraitAssociationCreatureID: r.assoc.CreatureID,
		TraitAssociationTraitName:  r.assoc.TraitID,
		TraitTable:                 r.trait.Table,
		TraitName:                  r.trait.Name,
	}
}

func (r *sqliteRepository) List(ctx context.Context, query ListQuery) ([]*Creature, int, error) {
	where, args := RenderWhere(query.Filter.BuildPredicates(r.filterColumns())...)

	countSQL := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s", r.core.Table, where)
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "bestiary: count creatures")
	}
	if total == 0 {
		return []*Creature{}, 0, nil
	}

	orderColumn := sanitizeSortColumn(r.core, query.SortBy)
	direction := "ASC"
	if query.Direction == SortDescending {
		direction = "DESC"
	}

	listSQL := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s ORDER BY %s %s",
		strings.Join(r.core.Columns(), ", "), r.core.Table, where, orderColumn, direction,
	)
	listArgs := append([]any{}, args...)
	if query.PageSize >= 0 {
		listSQL += " LIMIT ? OFFSET ?"
		listArgs = append(listArgs, query.PageSize, query.Cursor)
	} else if query.Cursor > 0 {
		listSQL += " LIMIT -1 OFFSET ?"
		listArgs = append(listArgs, query.Cursor)
	}
	rows, err := r.db.QueryContext(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "bestiary: list creatures")
	}
	defer rows.Close()

	creatures := make([]*Creature, 0)
	for rows.Next() {
		creature, err := r.scanCreature(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "bestiary: scan creature")
		}
		creatures = append(creatures, creature)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "bestiary: iterate creatures")
	}

	if err := r.attachTraits(ctx, creatures); err != nil {
		// Trait fetch failure is silently recovered: creatures keep empty Traits.
		for _, c := range creatures {
			if c.Traits == nil {
				c.Traits = []string{}
			}
		}
	}

	return creatures, total, nil
}

// sortFieldColumn maps the catalog's public sort_by keys to the projection
// table's underlying columns. "Trait" has no single backing column (traits
// are many-to-many), so it falls back to Family, the closest grouping axis.
func sortFieldColumn(core schema.CreatureCoreTable, field string) (string, bool) {
	switch field {
	case "Id":
		return core.ID, true
	case "Name":
		return core.Name, true
	case "Level":
		return core.Level, true
	case "Size":
		return core.Size, true
	case "Type":
		return core.CreatureType, true
	case "Hp":
		return core.HP, true
	case "Rarity":
		return core.Rarity, true
	case "Family", "Trait":
		return core.Family, true
	default:
		return "", false
	}
}

func sanitizeSortColumn(core schema.CreatureCoreTable, requested string) string {
	if col, ok := sortFieldColumn(core, requested); ok {
		return col
	}
	for _, col := range core.Columns() {
		if col == requested {
			return col
		}
	}
	return core.Level
}

func (r *sqliteRepository) GetByID(ctx context.Context, id int64) (*Creature, error) {
	querySQL := fmt.Sprintf("SELECT %s FROM %s WHERE %s = ?", strings.Join(r.core.Columns(), ", "), r.core.Table, r.core.ID)
	row := r.db.QueryRowContext(ctx, querySQL, id)

	creature, err := r.scanCreature(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.NotFound("Creature")
		}
		return nil, dberr.Wrap(err, "bestiary: get creature")
	}

	if err := r.attachTraits(ctx, []*Creature{creature}); err != nil {
		creature.Traits = []string{}
	}
	return creature, nil
}

// rowScanner abstracts over *sql.Row and *sql.Rows, both of which expose Scan.
type rowScanner interface {
	Scan(dest ...any) error
}

func (r *sqliteRepository) scanCreature(scanner rowScanner) (*Creature, error) {
	var c Creature
	var archiveID sql.NullInt64
	var focusPoints sql.NullInt64
	var alignmentRaw string
	roles := make(map[RoleName]int, len(AllRoles))
	roleVals := make([]int, len(AllRoles))
	roleDests := make([]any, len(AllRoles))
	for i := range roleVals {
		roleDests[i] = &roleVals[i]
	}

	dest := []any{
		&c.ID, &archiveID, &c.Name, &c.HP, &c.Level, &c.Size, &c.Rarity, &c.Family,
		&c.IsMelee, &c.IsRanged, &c.IsSpellcaster, &focusPoints, new(sql.NullString),
		&c.CreatureType, &c.License, &c.Source, &c.Remaster, &alignmentRaw,
	}
	dest = append(dest, roleDests...)

	if err := scanner.Scan(dest...); err != nil {
		return nil, err
	}

	if archiveID.Valid {
		c.ArchiveID = &archiveID.Int64
	}
	if focusPoints.Valid {
		c.FocusPoints = int(focusPoints.Int64)
	}
	c.ArchiveLink = ArchiveURLFor(c.ArchiveID, c.CreatureType)

	for i, role := range AllRoles {
		roles[role] = roleVals[i]
	}
	c.RolePercentages = roles

	// Alignment is recomputed on read from Traits, never trusted from the
	// stored column; Traits is populated by attachTraits after this scan, so
	// DeriveAlignment is invoked again once traits are known (see attachTraits).
	c.Alignment = ParseAlignment(alignmentRaw)

	return &c, nil
}

func (r *sqliteRepository) attachTraits(ctx context.Context, creatures []*Creature) error {
	if len(creatures) == 0 {
		return nil
	}
	ids := make([]any, len(creatures))
	placeholders := make([]string, len(creatures))
	byID := make(map[int64]*Creature, len(creatures))
	for i, c := range creatures {
		ids[i] = c.ID
		placeholders[i] = "?"
		byID[c.ID] = c
	}

	querySQL := fmt.Sprintf(
		"SELECT %s, %s FROM %s WHERE %s IN (%s)",
		r.assoc.CreatureID, r.assoc.TraitID, r.assoc.Table, r.assoc.CreatureID, strings.Join(placeholders, ", "),
	)
	rows, err := r.db.QueryContext(ctx, querySQL, ids...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var creatureID int64
		var traitName string
		if err := rows.Scan(&creatureID, &traitName); err != nil {
			return err
		}
		if c, ok := byID[creatureID]; ok {
			c.Traits = append(c.Traits, traitName)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, c := range creatures {
		c.Alignment = DeriveAlignment(c.Traits, c.Remaster)
	}
	return nil
}

// RebuildRoleScores runs the full startup denormalization pass: it rebuilds
// '<gs>_creature_core' from the normalized auxiliary schema (buildProjection)
// and then recomputes every creature's role-affinity columns from its real
// statline (recomputeRoleScores). Both steps are skipped entirely on a
// persistent startup; see [Config.IsCleanStartup].
func (r *sqliteRepository) RebuildRoleScores(ctx context.Context) error {
	if err := r.buildProjection(ctx); err != nil {
		return err
	}
	return r.recomputeRoleScores(ctx)
}

// alignmentValues lists every alignment the catalog recognizes, in the
// canonical order used across filtering and response payloads.
var alignmentValues = []string{
	string(AlignmentLG), string(AlignmentNG), string(AlignmentCG),
	string(AlignmentLN), string(AlignmentN), string(AlignmentCN),
	string(AlignmentLE), string(AlignmentNE), string(AlignmentCE),
	string(AlignmentNone),
}

// Enumerate returns the distinct values of one enumerable facet.
func (r *sqliteRepository) Enumerate(ctx context.Context, facet Facet) ([]string, error) {
	switch facet {
	case FacetAlignment:
		return append([]string{}, alignmentValues...), nil
	case FacetCreatureRole:
		roles := make([]string, len(AllRoles))
		for i, role := range AllRoles {
			roles[i] = string(role)
		}
		return roles, nil
	case FacetTrait:
		return r.distinctColumn(ctx, r.trait.Table, r.trait.Name)
	case FacetFamily:
		return r.distinctColumn(ctx, r.core.Table, r.core.Family)
	case FacetSource:
		return r.distinctColumn(ctx, r.core.Table, r.core.Source)
	case FacetRarity:
		return r.distinctColumn(ctx, r.core.Table, r.core.Rarity)
	case FacetSize:
		return r.distinctColumn(ctx, r.core.Table, r.core.Size)
	case FacetCreatureType:
		return r.distinctColumn(ctx, r.core.Table, r.core.CreatureType)
	default:
		return nil, apperr.ValidationError("unknown enumeration facet")
	}
}

func (r *sqliteRepository) distinctColumn(ctx context.Context, table, column string) ([]string, error) {
	querySQL := fmt.Sprintf("SELECT DISTINCT %s FROM %s WHERE %s != '' ORDER BY %s ASC", column, table, column, column)
	rows, err := r.db.QueryContext(ctx, querySQL)
	if err != nil {
		return nil, dberr.Wrap(err, "bestiary: enumerate "+column)
	}
	defer rows.Close()

	values := make([]string, 0)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, dberr.Wrap(err, "bestiary: scan enumeration value")
		}
		values = append(values, v)
	}
	return values, rows.Err()
}
