// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package scales

import (
	"database/sql"
	"fmt"
)

// Load reads every scale table for one game system from the auxiliary
// schema (bootstrapped by the migration runner ahead of the projection
// rebuild) and assembles a [Tables] value. It is called at most once per
// game system per process; the caller is responsible for memoizing it
// behind a guarded singleton.
func Load(db *sql.DB, gsPrefix string) (*Tables, error) {
	t := &Tables{
		Ability:     map[int]AbilityRow{},
		AC:          map[int]ACRow{},
		AreaDmg:     map[int]AreaDamageRow{},
		HP:          map[int]HPRow{},
		Item:        map[int]ItemRow{},
		Perception:  map[int]PerceptionRow{},
		ResWeak:     map[int]ResWeakRow{},
		SavingThrow: map[int]SavingThrowRow{},
		Skill:       map[int]SkillRow{},
		SpellDcAtk:  map[int]SpellDcAndAttackRow{},
		StrikeBonus: map[int]StrikeBonusRow{},
		StrikeDmg:   map[int]StrikeDamageRow{},
	}

	loaders := []func(*sql.DB, string, *Tables) error{
		loadAbility, loadAC, loadAreaDamage, loadHP, loadItem, loadPerception,
		loadResWeak, loadSavingThrow, loadSkill, loadSpellDcAtk, loadStrikeBonus, loadStrikeDamage,
	}
	for _, loader := range loaders {
		if err := loader(db, gsPrefix, t); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func loadPerception(db *sql.DB, gs string, t *Tables) error {
	rows, err := db.Query(fmt.Sprintf(
		"SELECT level, terrible, low, moderate, high, extreme FROM %s_perception_scales", gs))
	if err != nil {
		return fmt.Errorf("scales: load perception: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var level, terrible, low, moderate, high, extreme int
		if err := rows.Scan(&level, &terrible, &low, &moderate, &high, &extreme); err != nil {
			return err
		}
		t.Perception[level] = NewPerceptionRow(terrible, low, moderate, high, extreme)
	}
	return rows.Err()
}

func loadSavingThrow(db *sql.DB, gs string, t *Tables) error {
	rows, err := db.Query(fmt.Sprintf(
		"SELECT level, terrible, low, moderate, high, extreme FROM %s_saving_throw_scales", gs))
	if err != nil {
		return fmt.Errorf("scales: load saving throw: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var level, terrible, low, moderate, high, extreme int
		if err := rows.Scan(&level, &terrible, &low, &moderate, &high, &extreme); err != nil {
			return err
		}
		t.SavingThrow[level] = NewSavingThrowRow(terrible, low, moderate, high, extreme)
	}
	return rows.Err()
}

func loadAbility(db *sql.DB, gs string, t *Tables) error {
	rows, err := db.Query(fmt.Sprintf(
		"SELECT level, terrible, low, moderate, high, extreme FROM %s_ability_scales", gs))
	if err != nil {
		return fmt.Errorf("scales: load ability: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var level, terrible, low, moderate, high, extreme int
		if err := rows.Scan(&level, &terrible, &low, &moderate, &high, &extreme); err != nil {
			return err
		}
		t.Ability[level] = NewAbilityRow(terrible, low, moderate, high, extreme)
	}
	return rows.Err()
}

func loadSkill(db *sql.DB, gs string, t *Tables) error {
	rows, err := db.Query(fmt.Sprintf(
		"SELECT level, low_lb, low_ub, moderate, high, extreme FROM %s_skill_scales", gs))
	if err != nil {
		return fmt.Errorf("scales: load skill: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var level, lowLB, lowUB, moderate, high, extreme int
		if err := rows.Scan(&level, &lowLB, &lowUB, &moderate, &high, &extreme); err != nil {
			return err
		}
		t.Skill[level] = NewSkillRow(lowLB, lowUB, moderate, high, extreme)
	}
	return rows.Err()
}

func loadHP(db *sql.DB, gs string, t *Tables) error {
	rows, err := db.Query(fmt.Sprintf(
		"SELECT level, low_lb, low_ub, moderate_lb, moderate_ub, high_lb, high_ub FROM %s_hp_scales", gs))
	if err != nil {
		return fmt.Errorf("scales: load hp: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var level, lowLB, lowUB, modLB, modUB, highLB, highUB int
		if err := rows.Scan(&level, &lowLB, &lowUB, &modLB, &modUB, &highLB, &highUB); err != nil {
			return err
		}
		t.HP[level] = NewHPRow(lowLB, lowUB, modLB, modUB, highLB, highUB)
	}
	return rows.Err()
}

func loadAC(db *sql.DB, gs string, t *Tables) error {
	rows, err := db.Query(fmt.Sprintf(
		"SELECT level, moderate, high, extreme FROM %s_ac_scales", gs))
	if err != nil {
		return fmt.Errorf("scales: load ac: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var level, moderate, high, extreme int
		if err := rows.Scan(&level, &moderate, &high, &extreme); err != nil {
			return err
		}
		t.AC[level] = NewACRow(moderate, high, extreme)
	}
	return rows.Err()
}

func loadResWeak(db *sql.DB, gs string, t *Tables) error {
	rows, err := db.Query(fmt.Sprintf(
		"SELECT level, moderate, high, extreme FROM %s_res_weak_scales", gs))
	if err != nil {
		return fmt.Errorf("scales: load res/weak: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var level, moderate, high, extreme int
		if err := rows.Scan(&level, &moderate, &high, &extreme); err != nil {
			return err
		}
		t.ResWeak[level] = NewResWeakRow(moderate, high, extreme)
	}
	return rows.Err()
}

func loadStrikeBonus(db *sql.DB, gs string, t *Tables) error {
	rows, err := db.Query(fmt.Sprintf(
		"SELECT level, moderate, high, extreme FROM %s_strike_bonus_scales", gs))
	if err != nil {
		return fmt.Errorf("scales: load strike bonus: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var level, moderate, high, extreme int
		if err := rows.Scan(&level, &moderate, &high, &extreme); err != nil {
			return err
		}
		t.StrikeBonus[level] = NewStrikeBonusRow(moderate, high, extreme)
	}
	return rows.Err()
}

func loadSpellDcAtk(db *sql.DB, gs string, t *Tables) error {
	rows, err := db.Query(fmt.Sprintf(
		`SELECT level, moderate_dc, moderate_atk_bonus, high_dc, high_atk_bonus,
		        extreme_dc, extreme_atk_bonus FROM %s_spell_dc_and_atk_scales`, gs))
	if err != nil {
		return fmt.Errorf("scales: load spell dc/atk: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var level int
		var row SpellDcAndAttackRow
		if err := rows.Scan(&level, &row.ModerateDC, &row.ModerateAtk, &row.HighDC, &row.HighAtk, &row.ExtremeDC, &row.ExtremeAtk); err != nil {
			return err
		}
		t.SpellDcAtk[level] = row
	}
	return rows.Err()
}

func loadStrikeDamage(db *sql.DB, gs string, t *Tables) error {
	rows, err := db.Query(fmt.Sprintf(
		"SELECT level, low, moderate, high, extreme FROM %s_strike_dmg_scales", gs))
	if err != nil {
		return fmt.Errorf("scales: load strike damage: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var level int
		var low, moderate, high, extreme string
		if err := rows.Scan(&level, &low, &moderate, &high, &extreme); err != nil {
			return err
		}
		t.StrikeDmg[level] = StrikeDamageRow{
			Low:      ExtractAverage(low),
			Moderate: ExtractAverage(moderate),
			High:     ExtractAverage(high),
			Extreme:  ExtractAverage(extreme),
		}
	}
	return rows.Err()
}

func loadAreaDamage(db *sql.DB, gs string, t *Tables) error {
	rows, err := db.Query(fmt.Sprintf(
		"SELECT level, low, moderate, high, extreme FROM %s_area_dmg_scales", gs))
	if err != nil {
		return fmt.Errorf("scales: load area damage: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var level int
		var low, moderate, high, extreme string
		if err := rows.Scan(&level, &low, &moderate, &high, &extreme); err != nil {
			return err
		}
		t.AreaDmg[level] = AreaDamageRow{
			Low:      ExtractAverage(low),
			Moderate: ExtractAverage(moderate),
			High:     ExtractAverage(high),
			Extreme:  ExtractAverage(extreme),
		}
	}
	return rows.Err()
}

func loadItem(db *sql.DB, gs string, t *Tables) error {
	rows, err := db.Query(fmt.Sprintf("SELECT level, price FROM %s_item_scales", gs))
	if err != nil {
		return fmt.Errorf("scales: load item: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var level, price int
		if err := rows.Scan(&level, &price); err != nil {
			return err
		}
		t.Item[level] = ItemRow{Price: price}
	}
	return rows.Err()
}
