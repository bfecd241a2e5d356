// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package npc

import (
	"encoding/json"
	"os"
)

// NameEntry is one gender's training list within an ancestry or culture.
type NameEntry struct {
	Gender Gender   `json:"gender"`
	List   []string `json:"list"`
}

// AncestryNames is one ancestry's per-gender training lists.
type AncestryNames struct {
	Ancestry string      `json:"ancestry"`
	Names    []NameEntry `json:"names"`
}

// RarityNames buckets ancestry entries by the rarity in which the ancestry
// appears in the catalog.
type RarityNames struct {
	Common   []AncestryNames `json:"common"`
	Uncommon []AncestryNames `json:"uncommon"`
	Rare     []AncestryNames `json:"rare"`
	Unique   []AncestryNames `json:"unique"`
}

// CultureNames is one culture's per-gender training lists.
type CultureNames struct {
	Culture string      `json:"culture"`
	Names   []NameEntry `json:"names"`
}

// GameSystemNames is the name corpus for one game system.
type GameSystemNames struct {
	ByAncestry struct {
		Rarity RarityNames `json:"rarity"`
	} `json:"by_ancestry"`
	ByCulture []CultureNames `json:"by_culture"`
}

// NamesCorpus is the top-level name corpus document: one section per
// game system.
type NamesCorpus struct {
	PFNames GameSystemNames `json:"pf_names"`
	SFNames GameSystemNames `json:"sf_names"`
}

// LoadNamesCorpus reads and parses the name corpus JSON file at path.
func LoadNamesCorpus(path string) (*NamesCorpus, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var corpus NamesCorpus
	if err := json.Unmarshal(raw, &corpus); err != nil {
		return nil, err
	}
	return &corpus, nil
}

// NicknameTerms is the adjective/noun word lists a nickname is composed from.
type NicknameTerms struct {
	Adjective []string `json:"adjective"`
	Nouns     []string `json:"nouns"`
}

// NicknameCorpus is the top-level nickname corpus document.
type NicknameCorpus struct {
	Terms NicknameTerms `json:"terms"`
}

// LoadNicknameCorpus reads and parses the nickname corpus JSON file at path.
func LoadNicknameCorpus(path string) (*NicknameCorpus, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var corpus NicknameCorpus
	if err := json.Unmarshal(raw, &corpus); err != nil {
		return nil, err
	}
	return &corpus, nil
}
