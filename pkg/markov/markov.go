// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package markov builds and walks fixed-order character Markov chains, the
generative model behind the name generator's per-origin name lists.
*/
package markov

import "github.com/taibuivan/yomira/pkg/dice"

// Chain maps a context window (contextSize runes) to every character
// observed to follow it in the training set, including the sentinel rune
// 0 for end-of-word.
type Chain map[string][]rune

const endOfWord rune = 0

// Build trains a Chain of the given context size from words. Each word is
// left-padded with contextSize spaces so the chain can generate its first
// character from a well-defined start state, and terminated with the
// end-of-word sentinel so generation can stop on its own.
func Build(words []string, contextSize int) Chain {
	chain := make(Chain)
	pad := make([]rune, contextSize)
	for i := range pad {
		pad[i] = ' '
	}
	for _, word := range words {
		runes := append(append([]rune{}, pad...), []rune(word)...)
		runes = append(runes, endOfWord)
		for i := 0; i+contextSize < len(runes); i++ {
			context := string(runes[i : i+contextSize])
			chain[context] = append(chain[context], runes[i+contextSize])
		}
	}
	return chain
}

// Generate walks chain from its start state, drawing one character at a
// time, until it emits the end-of-word sentinel, an unseen context, or
// maxLength characters — whichever comes first.
func Generate(chain Chain, contextSize, maxLength int) string {
	context := make([]rune, contextSize)
	for i := range context {
		context[i] = ' '
	}
	result := make([]rune, 0, maxLength)
	for len(result) < maxLength {
		candidates := chain[string(context)]
		if len(candidates) == 0 {
			break
		}
		next := candidates[dice.UniformRange(0, len(candidates)-1)]
		if next == endOfWord {
			break
		}
		result = append(result, next)
		context = append(context[1:], next)
	}
	return string(result)
}
