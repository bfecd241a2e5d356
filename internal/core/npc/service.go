// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package npc

import (
	"log/slog"
	"strings"

	"github.com/taibuivan/yomira/internal/platform/apperr"
	"github.com/taibuivan/yomira/pkg/dice"
	"github.com/taibuivan/yomira/pkg/markov"
)

// Service generates names, nicknames, levels, jobs, and classes.
type Service struct {
	chains    *ChainCache
	nicknames *NicknameCache
	logger    *slog.Logger
}

// NewService constructs an NPC generation service.
func NewService(chains *ChainCache, nicknames *NicknameCache, logger *slog.Logger) *Service {
	return &Service{chains: chains, nicknames: nicknames, logger: logger}
}

// NameRequest selects an origin axis (ancestry whitelist or culture
// whitelist — at least one must be non-empty, and the ancestry whitelist
// wins when both are), an optional gender whitelist, and generation bounds.
type NameRequest struct {
	GameSystem string
	Ancestries []Ancestry
	Cultures   []Culture
	Genders    []Gender
	MaxNames   int
	MaxLength  int
}

// NameResult is a generated name batch plus the origin it was drawn from.
type NameResult struct {
	Names    []string
	Gender   Gender
	Ancestry *Ancestry
	Culture  *Culture
}

const defaultMaxNames = 10

// GenerateNames resolves req's origin and gender axes, then repeatedly
// walks the memoized Markov chain for that (origin, gender) pair,
// title-casing and deduplicating the results.
func (s *Service) GenerateNames(req NameRequest) (*NameResult, error) {
	originKey, contextSizeHint, defaultLength, validGenders, result, err := s.resolveOrigin(req)
	if err != nil {
		return nil, err
	}

	gender, err := resolveGender(req.Genders, validGenders)
	if err != nil {
		return nil, err
	}
	result.Gender = gender

	chain, contextSize, err := s.chains.Get(req.GameSystem, originKey, gender)
	if err != nil {
		return nil, err
	}
	if contextSize == 0 {
		contextSize = contextSizeHint
	}

	maxLength := req.MaxLength
	if maxLength <= 0 {
		maxLength = defaultLength
	}
	maxNames := req.MaxNames
	if maxNames <= 0 {
		maxNames = defaultMaxNames
	}

	seen := map[string]bool{}
	names := make([]string, 0, maxNames)
	for i := 0; i < maxNames; i++ {
		generated := markov.Generate(chain, contextSize, maxLength)
		if generated == "" {
			continue
		}
		titled := titleCase(generated)
		if seen[titled] {
			continue
		}
		seen[titled] = true
		names = append(names, titled)
	}
	result.Names = names
	return result, nil
}

// resolveOrigin picks one ancestry or culture at random from whichever
// whitelist is non-empty (ancestry takes precedence when both are
// somehow supplied), and reports the chain key, context size hint,
// default name length, and the origin's valid gender set.
func (s *Service) resolveOrigin(req NameRequest) (string, int, int, []Gender, *NameResult, error) {
	switch {
	case len(req.Ancestries) > 0:
		ancestry := req.Ancestries[dice.UniformRange(0, len(req.Ancestries)-1)]
		return string(ancestry), ancestry.ContextSize(), ancestry.DefaultNameLength(), ancestry.ValidGenders(),
			&NameResult{Ancestry: &ancestry}, nil
	case len(req.Cultures) > 0:
		culture := req.Cultures[dice.UniformRange(0, len(req.Cultures)-1)]
		return string(culture), culture.ContextSize(), culture.DefaultNameLength(), AllGenders,
			&NameResult{Culture: &culture}, nil
	default:
		return "", 0, 0, nil, nil, apperr.ValidationError("must supply an ancestry or a culture whitelist")
	}
}

func resolveGender(requested, valid []Gender) (Gender, error) {
	candidates := valid
	if len(requested) > 0 {
		candidates = intersectGenders(requested, valid)
		if len(candidates) == 0 {
			return "", apperr.ValidationError("no possible genders to choose from")
		}
	}
	return candidates[dice.UniformRange(0, len(candidates)-1)], nil
}

func intersectGenders(requested, valid []Gender) []Gender {
	validSet := make(map[Gender]bool, len(valid))
	for _, g := range valid {
		validSet[g] = true
	}
	var out []Gender
	for _, g := range requested {
		if validSet[g] {
			out = append(out, g)
		}
	}
	return out
}

// titleCase capitalizes the first rune of s and of every substring
// following a space, leaving the rest of each word's casing untouched.
func titleCase(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		runes := []rune(w)
		runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// GenerateNickname composes one nickname from the nickname corpus.
func (s *Service) GenerateNickname() (string, error) {
	return s.nicknames.Generate()
}

const minLevel, maxLevel = -1, 25

// RandomLevel draws uniformly from [min,max], defaulting to the catalog's
// full level range when the bounds are absent or invalid (min > max).
func (s *Service) RandomLevel(min, max *int) int {
	lo, hi := minLevel, maxLevel
	if min != nil && max != nil && *min <= *max {
		lo, hi = *min, *max
	}
	return lo + dice.UniformRange(0, hi-lo)
}

// RandomJob draws uniformly from whitelist, or from every job in
// gameSystem's job list when whitelist is empty.
func (s *Service) RandomJob(gameSystem string, whitelist []Job) Job {
	all := PfJobs
	if gameSystem == "sf" {
		all = SfJobs
	}
	return pickOrRandom(whitelist, all)
}

// RandomClass draws uniformly from whitelist, or from every class in
// gameSystem's class list when whitelist is empty.
func (s *Service) RandomClass(gameSystem string, whitelist []Class) Class {
	all := PfClasses
	if gameSystem == "sf" {
		all = SfClasses
	}
	return pickOrRandom(whitelist, all)
}

func pickOrRandom[T any](whitelist, all []T) T {
	pool := whitelist
	if len(pool) == 0 {
		pool = all
	}
	return pool[dice.UniformRange(0, len(pool)-1)]
}
