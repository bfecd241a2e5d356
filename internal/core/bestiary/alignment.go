// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bestiary

import "strings"

// Alignment is one of the eight two-letter classical codes, "N" (true
// neutral), or "no alignment".
type Alignment string

const (
	AlignmentCE Alignment = "CE"
	AlignmentCN Alignment = "CN"
	AlignmentCG Alignment = "CG"
	AlignmentNE Alignment = "NE"
	AlignmentN  Alignment = "N"
	AlignmentNG Alignment = "NG"
	AlignmentLE Alignment = "LE"
	AlignmentLN Alignment = "LN"
	AlignmentLG Alignment = "LG"

	// AlignmentNone is the default: no alignment axis applies to this creature.
	AlignmentNone Alignment = "No Alignment"
)

// ParseAlignment resolves a raw code case-insensitively, defaulting to
// [AlignmentNone] for unrecognised strings.
func ParseAlignment(raw string) Alignment {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "CE":
		return AlignmentCE
	case "CN":
		return AlignmentCN
	case "CG":
		return AlignmentCG
	case "NE":
		return AlignmentNE
	case "N":
		return AlignmentN
	case "NG":
		return AlignmentNG
	case "LE":
		return AlignmentLE
	case "LN":
		return AlignmentLN
	case "LG":
		return AlignmentLG
	default:
		return AlignmentNone
	}
}

// DeriveAlignment computes a creature's alignment from its trait set and the
// remaster flag. Remastered rule lines dropped creature alignment entirely,
// so remaster=true always yields [AlignmentNone] regardless of traits.
//
// Every read path recomputes a creature's alignment with this function. The
// projection builder does not call it: it writes the placeholder "none" into
// the alignment column, so that column does not hold derived alignments.
func DeriveAlignment(traits []string, remaster bool) Alignment {
	if remaster {
		return AlignmentNone
	}

	var good, evil, chaotic, lawful bool
	for _, t := range traits {
		switch strings.ToUpper(strings.TrimSpace(t)) {
		case "GOOD":
			good = true
		case "EVIL":
			evil = true
		case "CHAOTIC":
			chaotic = true
		case "LAWFUL":
			lawful = true
		}
	}

	switch {
	case good && chaotic:
		return AlignmentCG
	case good && lawful:
		return AlignmentLG
	case good:
		return AlignmentNG
	case evil && chaotic:
		return AlignmentCE
	case evil && lawful:
		return AlignmentLE
	case evil:
		return AlignmentNE
	case chaotic:
		return AlignmentCN
	case lawful:
		return AlignmentLN
	default:
		return AlignmentN
	}
}
