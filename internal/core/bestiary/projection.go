// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bestiary

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/taibuivan/yomira/internal/platform/database/schema"
	"github.com/taibuivan/yomira/internal/platform/dberr"
)

// parseSpeeds turns the creature table's comma-separated speed list
// ("25,40") into a slice of ints, skipping anything unparsable.
func parseSpeeds(raw string) []int {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		if v, err := strconv.Atoi(strings.TrimSpace(p)); err == nil {
			out = append(out, v)
		}
	}
	return out
}

// buildProjection runs the startup denormalization pass: it drops any
// existing '<gs>_creature_core' table, derives a fresh one from the
// normalized auxiliary schema via a JOIN/CASE-driven temporary table, and
// swaps it in. Role-affinity columns are created defaulted to 0; they are
// filled in by recomputeRoleScores immediately afterward.
func (r *sqliteRepository) buildProjection(ctx context.Context) error {
	source := schema.Creature(r.gsPrefix)
	weapons := schema.WeaponAssociation(r.gsPrefix)
	spells := schema.SpellAssociation(r.gsPrefix)
	tmpTable := r.gsPrefix + "_tmp_creature_core"

	if _, err := r.db.ExecContext(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", r.core.Table)); err != nil {
		return dberr.Wrap(err, "bestiary: drop creature core")
	}
	if _, err := r.db.ExecContext(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", tmpTable)); err != nil {
		return dberr.Wrap(err, "bestiary: drop stale temp creature core")
	}

	isMelee := fmt.Sprintf(
		"CASE WHEN EXISTS (SELECT 1 FROM %s w WHERE w.%s = c.%s AND w.%s = 0) THEN 1 ELSE 0 END",
		weapons.Table, weapons.CreatureID, source.ID, weapons.IsRanged,
	)
	isRanged := fmt.Sprintf(
		"CASE WHEN EXISTS (SELECT 1 FROM %s w WHERE w.%s = c.%s AND w.%s = 1) THEN 1 ELSE 0 END",
		weapons.Table, weapons.CreatureID, source.ID, weapons.IsRanged,
	)
	isSpellcaster := fmt.Sprintf(
		"CASE WHEN EXISTS (SELECT 1 FROM %s s WHERE s.%s = c.%s) THEN 1 ELSE 0 END",
		spells.Table, spells.CreatureID, source.ID,
	)
	archiveLink := fmt.Sprintf(
		`CASE WHEN c.%s IS NULL THEN NULL
		      WHEN c.%s = 'npc' THEN 'https://2e.aonprd.com/NPCs.aspx?ID=' || c.%s
		      ELSE 'https://2e.aonprd.com/Monsters.aspx?ID=' || c.%s END`,
		source.ArchiveID, source.CreatureType, source.ArchiveID, source.ArchiveID,
	)

	selectSQL := fmt.Sprintf(
		"CREATE TABLE %s AS SELECT c.%s, c.%s, c.%s, c.%s, c.%s, c.%s, c.%s, c.%s, "+
			"%s AS %s, %s AS %s, %s AS %s, c.%s, %s AS %s, c.%s, c.%s, c.%s, c.%s, "+
			"'none' AS %s, 0, 0, 0, 0, 0, 0, 0 FROM %s c",
		tmpTable,
		source.ID, source.ArchiveID, source.Name, source.HP, source.Level, source.Size, source.Rarity, source.Family,
		isMelee, r.core.IsMelee, isRanged, r.core.IsRanged, isSpellcaster, r.core.IsSpellcaster,
		source.FocusPoints, archiveLink, r.core.ArchiveLink,
		source.CreatureType, source.License, source.Source, source.Remaster,
		r.core.Alignment, source.Table,
	)
	if _, err := r.db.ExecContext(ctx, selectSQL); err != nil {
		return dberr.Wrap(err, "bestiary: build temp creature core")
	}

	createSQL := fmt.Sprintf(
		`CREATE TABLE %s (
			%s INTEGER PRIMARY KEY, %s INTEGER, %s TEXT NOT NULL, %s INTEGER NOT NULL,
			%s INTEGER NOT NULL, %s TEXT NOT NULL, %s TEXT NOT NULL, %s TEXT NOT NULL,
			%s INTEGER NOT NULL, %s INTEGER NOT NULL, %s INTEGER NOT NULL, %s INTEGER,
			%s TEXT, %s TEXT NOT NULL, %s TEXT NOT NULL, %s TEXT NOT NULL, %s INTEGER NOT NULL,
			%s TEXT NOT NULL,
			%s INTEGER NOT NULL DEFAULT 0, %s INTEGER NOT NULL DEFAULT 0, %s INTEGER NOT NULL DEFAULT 0,
			%s INTEGER NOT NULL DEFAULT 0, %s INTEGER NOT NULL DEFAULT 0, %s INTEGER NOT NULL DEFAULT 0,
			%s INTEGER NOT NULL DEFAULT 0
		)`,
		r.core.Table,
		r.core.ID, r.core.ArchiveID, r.core.Name, r.core.HP,
		r.core.Level, r.core.Size, r.core.Rarity, r.core.Family,
		r.core.IsMelee, r.core.IsRanged, r.core.IsSpellcaster, r.core.FocusPoints,
		r.core.ArchiveLink, r.core.CreatureType, r.core.License, r.core.Source, r.core.Remaster,
		r.core.Alignment,
		r.core.RoleBrute, r.core.RoleMagicalStriker, r.core.RoleSkillParagon, r.core.RoleSkirmisher,
		r.core.RoleSniper, r.core.RoleSoldier, r.core.RoleSpellcaster,
	)
	if _, err := r.db.ExecContext(ctx, createSQL); err != nil {
		return dberr.Wrap(err, "bestiary: create creature core")
	}

	insertSQL := fmt.Sprintf("INSERT INTO %s SELECT * FROM %s", r.core.Table, tmpTable)
	if _, err := r.db.ExecContext(ctx, insertSQL); err != nil {
		return dberr.Wrap(err, "bestiary: populate creature core")
	}

	if _, err := r.db.ExecContext(ctx, fmt.Sprintf("DROP TABLE %s", tmpTable)); err != nil {
		return dberr.Wrap(err, "bestiary: drop temp creature core")
	}

	return nil
}

// recomputeRoleScores assembles the full [RoleInput] for every creature from
// the normalized auxiliary tables (abilities, saves, perception, AC,
// weapons, skills, actions, spellcasting) and writes the resulting
// affinity percentages back onto the projection.
func (r *sqliteRepository) recomputeRoleScores(ctx context.Context) error {
	source := schema.Creature(r.gsPrefix)

	statSQL := fmt.Sprintf(
		"SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s FROM %s",
		source.ID, source.Level, source.HP, source.Perception, source.AC,
		source.StrMod, source.DexMod, source.ConMod, source.IntMod, source.WisMod, source.ChaMod,
		source.FortSave, source.ReflexSave, source.WillSave,
		source.HighestSpellDCMod, source.TotalSpellCount, source.Speeds, source.Table,
	)
	rows, err := r.db.QueryContext(ctx, statSQL)
	if err != nil {
		return dberr.Wrap(err, "bestiary: select creatures for role rebuild")
	}

	type creatureStat struct {
		id                int64
		in                RoleInput
		highestSpellDCMod sql.NullInt64
		speedsRaw         string
	}
	var stats []creatureStat
	for rows.Next() {
		var s creatureStat
		if err := rows.Scan(
			&s.id, &s.in.Level, &s.in.HP, &s.in.Perception, &s.in.AC,
			&s.in.Abilities.Strength, &s.in.Abilities.Dexterity, &s.in.Abilities.Constitution,
			&s.in.Abilities.Intelligence, &s.in.Abilities.Wisdom, &s.in.Abilities.Charisma,
			&s.in.Saves.Fortitude, &s.in.Saves.Reflex, &s.in.Saves.Will,
			&s.highestSpellDCMod, &s.in.TotalSpellCount, &s.speedsRaw,
		); err != nil {
			rows.Close()
			return dberr.Wrap(err, "bestiary: scan role rebuild row")
		}
		if s.highestSpellDCMod.Valid {
			v := int(s.highestSpellDCMod.Int64)
			s.in.HighestSpellDCMod = &v
		}
		s.in.Speeds = parseSpeeds(s.speedsRaw)
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return dberr.Wrap(err, "bestiary: iterate role rebuild rows")
	}
	rows.Close()

	for i := range stats {
		weapons, err := r.loadWeaponMetrics(ctx, stats[i].id)
		if err != nil {
			return err
		}
		skills, err := r.loadSkillMetrics(ctx, stats[i].id)
		if err != nil {
			return err
		}
		actions, err := r.loadActionMetrics(ctx, stats[i].id)
		if err != nil {
			return err
		}
		stats[i].in.Weapons = weapons
		stats[i].in.Skills = skills
		stats[i].in.Actions = actions
	}

	updateSQL := fmt.Sprintf(
		"UPDATE %s SET %s = ?, %s = ?, %s = ?, %s = ?, %s = ?, %s = ?, %s = ? WHERE %s = ?",
		r.core.Table,
		r.core.RoleBrute, r.core.RoleMagicalStriker, r.core.RoleSkillParagon, r.core.RoleSkirmisher,
		r.core.RoleSniper, r.core.RoleSoldier, r.core.RoleSpellcaster, r.core.ID,
	)

	for _, s := range stats {
		scores := ScoreRoles(s.in, r.tables)
		result, err := r.db.ExecContext(ctx, updateSQL,
			scores[RoleBrute], scores[RoleMagicalStriker], scores[RoleSkillParagon], scores[RoleSkirmisher],
			scores[RoleSniper], scores[RoleSoldier], scores[RoleSpellcaster], s.id,
		)
		if err != nil {
			return dberr.Wrap(err, "bestiary: update role scores")
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return dberr.Wrap(err, "bestiary: role rebuild rows affected")
		}
		if affected == 0 {
			return fmt.Errorf("bestiary: role rebuild affected zero rows for creature %d", s.id)
		}
	}
	return nil
}

func (r *sqliteRepository) loadWeaponMetrics(ctx context.Context, creatureID int64) ([]WeaponMetric, error) {
	w := schema.WeaponAssociation(r.gsPrefix)
	querySQL := fmt.Sprintf("SELECT %s, %s, %s FROM %s WHERE %s = ?", w.ToHit, w.AvgDamage, w.IsRanged, w.Table, w.CreatureID)
	rows, err := r.db.QueryContext(ctx, querySQL, creatureID)
	if err != nil {
		return nil, dberr.Wrap(err, "bestiary: load weapon metrics")
	}
	defer rows.Close()

	var out []WeaponMetric
	for rows.Next() {
		var m WeaponMetric
		if err := rows.Scan(&m.ToHitBonus, &m.AvgDamage, &m.Ranged); err != nil {
			return nil, dberr.Wrap(err, "bestiary: scan weapon metric")
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *sqliteRepository) loadSkillMetrics(ctx context.Context, creatureID int64) ([]SkillMetric, error) {
	s := schema.Skill(r.gsPrefix)
	querySQL := fmt.Sprintf("SELECT %s FROM %s WHERE %s = ?", s.Modifier, s.Table, s.CreatureID)
	rows, err := r.db.QueryContext(ctx, querySQL, creatureID)
	if err != nil {
		return nil, dberr.Wrap(err, "bestiary: load skill metrics")
	}
	defer rows.Close()

	var out []SkillMetric
	for rows.Next() {
		var m SkillMetric
		if err := rows.Scan(&m.Modifier); err != nil {
			return nil, dberr.Wrap(err, "bestiary: scan skill metric")
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *sqliteRepository) loadActionMetrics(ctx context.Context, creatureID int64) ([]ActionMetric, error) {
	a := schema.Action(r.gsPrefix)
	querySQL := fmt.Sprintf(
		"SELECT %s, %s, %s FROM %s WHERE %s = ?",
		a.Offensive, a.SingleAction, a.AttackOfOpportunity, a.Table, a.CreatureID,
	)
	rows, err := r.db.QueryContext(ctx, querySQL, creatureID)
	if err != nil {
		return nil, dberr.Wrap(err, "bestiary: load action metrics")
	}
	defer rows.Close()

	var out []ActionMetric
	for rows.Next() {
		var m ActionMetric
		if err := rows.Scan(&m.Offensive, &m.SingleAction, &m.IsAttackOfOpportunity); err != nil {
			return nil, dberr.Wrap(err, "bestiary: scan action metric")
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
