// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package npc

import (
	"sync"

	"github.com/taibuivan/yomira/internal/platform/apperr"
	"github.com/taibuivan/yomira/pkg/dice"
	"github.com/taibuivan/yomira/pkg/markov"
)

type chainKey struct {
	gsPrefix  string
	originKey string
	gender    Gender
}

// ChainCache lazily loads the name corpus exactly once and memoizes a
// Markov chain per (game system, origin, gender). Population is
// single-writer: concurrent callers block on the same [sync.Once] and
// every late arrival observes the already-built result.
type ChainCache struct {
	path string

	once         sync.Once
	loadErr      error
	chains       map[chainKey]markov.Chain
	contextSizes map[chainKey]int
}

// NewChainCache constructs a cache backed by the corpus file at path. The
// file is not read until the first [ChainCache.Get] call.
func NewChainCache(path string) *ChainCache {
	return &ChainCache{path: path}
}

func (c *ChainCache) ensureLoaded() error {
	c.once.Do(func() {
		corpus, err := LoadNamesCorpus(c.path)
		if err != nil {
			c.loadErr = err
			return
		}
		c.chains = make(map[chainKey]markov.Chain)
		c.contextSizes = make(map[chainKey]int)
		c.buildGameSystem("pf", corpus.PFNames)
		c.buildGameSystem("sf", corpus.SFNames)
	})
	return c.loadErr
}

func (c *ChainCache) buildGameSystem(gsPrefix string, names GameSystemNames) {
	buckets := [][]AncestryNames{
		names.ByAncestry.Rarity.Common,
		names.ByAncestry.Rarity.Uncommon,
		names.ByAncestry.Rarity.Rare,
		names.ByAncestry.Rarity.Unique,
	}
	for _, bucket := range buckets {
		for _, entry := range bucket {
			contextSize := Ancestry(entry.Ancestry).ContextSize()
			for _, byGender := range entry.Names {
				key := chainKey{gsPrefix: gsPrefix, originKey: entry.Ancestry, gender: byGender.Gender}
				c.chains[key] = markov.Build(byGender.List, contextSize)
				c.contextSizes[key] = contextSize
			}
		}
	}
	for _, entry := range names.ByCulture {
		contextSize := Culture(entry.Culture).ContextSize()
		for _, byGender := range entry.Names {
			key := chainKey{gsPrefix: gsPrefix, originKey: entry.Culture, gender: byGender.Gender}
			c.chains[key] = markov.Build(byGender.List, contextSize)
			c.contextSizes[key] = contextSize
		}
	}
}

// Get returns the memoized chain and context size for (gsPrefix, originKey,
// gender), loading and building the full corpus on first use.
func (c *ChainCache) Get(gsPrefix, originKey string, gender Gender) (markov.Chain, int, error) {
	if err := c.ensureLoaded(); err != nil {
		return nil, 0, apperr.Internal(err)
	}
	key := chainKey{gsPrefix: gsPrefix, originKey: originKey, gender: gender}
	chain, ok := c.chains[key]
	if !ok {
		return nil, 0, apperr.NotFound("name chain for " + originKey)
	}
	return chain, c.contextSizes[key], nil
}

// NicknameCache lazily loads the nickname corpus once and composes
// nicknames from it.
type NicknameCache struct {
	path string

	once    sync.Once
	loadErr error
	corpus  *NicknameCorpus
}

// NewNicknameCache constructs a cache backed by the nickname corpus file
// at path.
func NewNicknameCache(path string) *NicknameCache {
	return &NicknameCache{path: path}
}

func (c *NicknameCache) ensureLoaded() error {
	c.once.Do(func() {
		corpus, err := LoadNicknameCorpus(c.path)
		if err != nil {
			c.loadErr = err
			return
		}
		c.corpus = corpus
	})
	return c.loadErr
}

// Generate composes one nickname as "{adj} {noun}" or "The {adj} {noun}",
// with an even chance of either form.
func (c *NicknameCache) Generate() (string, error) {
	if err := c.ensureLoaded(); err != nil {
		return "", apperr.Internal(err)
	}
	adjectives := c.corpus.Terms.Adjective
	nouns := c.corpus.Terms.Nouns
	if len(adjectives) == 0 || len(nouns) == 0 {
		return "", apperr.NotFound("nickname corpus terms")
	}
	adj := adjectives[dice.UniformRange(0, len(adjectives)-1)]
	noun := nouns[dice.UniformRange(0, len(nouns)-1)]
	if dice.UniformRange(0, 1) == 0 {
		return adj + " " + noun, nil
	}
	return "The " + adj + " " + noun, nil
}
