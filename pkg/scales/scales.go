// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package scales models the per-level difficulty-band lookup tables used by
role scoring (§4.3 of the design). Each table maps a creature level to a row
of named bands; a band is a half-open interval [LB, UB) against which a
statistic is compared.

Twelve tables exist: Ability, AC, AreaDamage, HP, Item, Perception,
ResistanceWeakness, SavingThrow, Skill, SpellDcAndAttack, StrikeBonus,
StrikeDamage. Rows for Perception/Skill/SavingThrow/Ability originate from
the source's per-level scalar thresholds (terrible/low/moderate/high/extreme)
reassembled here into contiguous bands; HP and Skill's "low" tier are stored
as pairs directly, mirroring the original structs. AC/ResistanceWeakness/
StrikeBonus were not present in the grounding material and are modeled by
the same terrible-absent, low/moderate/high/extreme pattern used by AC's
sibling tables, documented as a design decision in DESIGN.md rather than a
directly grounded source.
*/
package scales

// Band is a half-open interval: a value v belongs to the band when LB <= v < UB.
type Band struct {
	LB int
	UB int
}

// Contains reports whether v falls within the band.
func (b Band) Contains(v int) bool {
	return v >= b.LB && v < b.UB
}

// PerceptionRow / SavingThrowRow / AbilityRow / SkillRow share the same shape:
// five contiguous bands keyed by qualitative tier name.
type fiveTierRow struct {
	Terrible Band
	Low      Band
	Moderate Band
	High     Band
	Extreme  Band
}

type PerceptionRow fiveTierRow
type SavingThrowRow fiveTierRow
type AbilityRow fiveTierRow
type SkillRow fiveTierRow

// HPRow has three bands (low/moderate/high), no terrible or extreme tier.
type HPRow struct {
	Low      Band
	Moderate Band
	High     Band
}

// ACRow / ResWeakRow / StrikeBonusRow share four bands (no terrible tier).
type fourTierRow struct {
	Low      Band
	Moderate Band
	High     Band
	Extreme  Band
}

type ACRow fourTierRow
type ResWeakRow fourTierRow
type StrikeBonusRow fourTierRow

// SpellDcAndAttackRow pairs a spell DC with an attack-bonus threshold per tier.
type SpellDcAndAttackRow struct {
	ModerateDC, ModerateAtk int
	HighDC, HighAtk         int
	ExtremeDC, ExtremeAtk   int
}

// StrikeDamageRow / AreaDamageRow hold the extracted integer average of a
// damage-dice string (e.g. "2d6 (8)" -> 8) per tier.
type damageRow struct {
	Low      int
	Moderate int
	High     int
	Extreme  int
}

type StrikeDamageRow damageRow
type AreaDamageRow damageRow

// ItemRow holds the price-by-level reference point used for item valuation;
// kept minimal since no role-scoring constraint consumes it.
type ItemRow struct {
	Price int
}

// Tables aggregates every per-level scale table for one game system. It is
// built once per game system at startup (by [Load], from cmd/api's
// wireGameSystem) and is read-only thereafter.
type Tables struct {
	Ability   map[int]AbilityRow
	AC        map[int]ACRow
	AreaDmg   map[int]AreaDamageRow
	HP        map[int]HPRow
	Item      map[int]ItemRow
	Perception map[int]PerceptionRow
	ResWeak   map[int]ResWeakRow
	SavingThrow map[int]SavingThrowRow
	Skill     map[int]SkillRow
	SpellDcAtk map[int]SpellDcAndAttackRow
	StrikeBonus map[int]StrikeBonusRow
	StrikeDmg map[int]StrikeDamageRow
}

// buildFiveTier assembles contiguous bands from four ascending thresholds;
// the terrible tier runs from -infinity (modeled as a large negative floor)
// up to low's threshold.
func buildFiveTier(terrible, low, moderate, high, extreme int) fiveTierRow {
	const floor = -1 << 30
	const ceil = 1 << 30
	return fiveTierRow{
		Terrible: Band{floor, low},
		Low:      Band{low, moderate},
		Moderate: Band{moderate, high},
		High:     Band{high, extreme},
		Extreme:  Band{extreme, ceil},
	}
}

// NewPerceptionRow builds a row from the four threshold scalars recovered
// from the source (terrible is implicit: everything below low).
func NewPerceptionRow(terrible, low, moderate, high, extreme int) PerceptionRow {
	return PerceptionRow(buildFiveTier(terrible, low, moderate, high, extreme))
}

// NewSavingThrowRow mirrors NewPerceptionRow for saving throw modifiers.
func NewSavingThrowRow(terrible, low, moderate, high, extreme int) SavingThrowRow {
	return SavingThrowRow(buildFiveTier(terrible, low, moderate, high, extreme))
}

// NewAbilityRow mirrors NewPerceptionRow for ability modifiers.
func NewAbilityRow(terrible, low, moderate, high, extreme int) AbilityRow {
	return AbilityRow(buildFiveTier(terrible, low, moderate, high, extreme))
}

// NewSkillRow builds a skill row; low is an explicit pair per the source,
// the remaining tiers are contiguous thresholds.
func NewSkillRow(lowLB, lowUB, moderate, high, extreme int) SkillRow {
	const ceil = 1 << 30
	return SkillRow{
		Terrible: Band{-(1 << 30), lowLB},
		Low:      Band{lowLB, lowUB},
		Moderate: Band{lowUB, high},
		High:     Band{high, extreme},
		Extreme:  Band{extreme, ceil},
	}
}

// NewHPRow builds an HP row from three explicit [lb,ub) pairs.
func NewHPRow(lowLB, lowUB, modLB, modUB, highLB, highUB int) HPRow {
	return HPRow{
		Low:      Band{lowLB, lowUB},
		Moderate: Band{modLB, modUB},
		High:     Band{highLB, highUB},
	}
}

func buildFourTier(low, moderate, high, extreme int) fourTierRow {
	const floor = -1 << 30
	const ceil = 1 << 30
	return fourTierRow{
		Low:      Band{floor, moderate},
		Moderate: Band{moderate, high},
		High:     Band{high, extreme},
		Extreme:  Band{extreme, ceil},
	}
}

// NewACRow builds an AC row from three ascending thresholds.
func NewACRow(moderate, high, extreme int) ACRow {
	return ACRow(buildFourTier(0, moderate, high, extreme))
}

// NewResWeakRow builds a resistance/weakness row from three ascending thresholds.
func NewResWeakRow(moderate, high, extreme int) ResWeakRow {
	return ResWeakRow(buildFourTier(0, moderate, high, extreme))
}

// NewStrikeBonusRow builds a to-hit bonus row from three ascending thresholds.
func NewStrikeBonusRow(moderate, high, extreme int) StrikeBonusRow {
	return StrikeBonusRow(buildFourTier(0, moderate, high, extreme))
}

// ExtractAverage pulls the parenthesised integer average out of a damage-dice
// string such as "2d6 (8)", returning 0 if none is present. Stored damage
// scale rows keep the dice expression for display; scoring only ever needs
// the average.
func ExtractAverage(dice string) int {
	open := -1
	for i := 0; i < len(dice); i++ {
		if dice[i] == '(' {
			open = i
			break
		}
	}
	if open == -1 {
		return 0
	}
	close := -1
	for i := open + 1; i < len(dice); i++ {
		if dice[i] == ')' {
			close = i
			break
		}
	}
	if close == -1 {
		return 0
	}
	n := 0
	for i := open + 1; i < close; i++ {
		c := dice[i]
		if c < '0' || c > '9' {
			return 0
		}
		n = n*10 + int(c-'0')
	}
	return n
}
