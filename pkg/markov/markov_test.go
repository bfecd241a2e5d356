// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package markov_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/yomira/pkg/markov"
)

/*
TestBuild_ProducesContextForEveryTrainingWord checks that a single-word
chain contains a transition out of the all-space start context.
*/
func TestBuild_ProducesContextForEveryTrainingWord(t *testing.T) {
	chain := markov.Build([]string{"amiri"}, 2)

	start := "  "
	assert.Contains(t, chain, start)
	assert.Equal(t, []rune("a"), chain[start])
}

/*
TestBuild_RepeatedWordsAccumulateCandidates verifies that training on
multiple words sharing a context widens the candidate set for that context
rather than overwriting it.
*/
func TestBuild_RepeatedWordsAccumulateCandidates(t *testing.T) {
	chain := markov.Build([]string{"aba", "aca"}, 1)

	// Context "a" is followed by 'b' and then the end-of-word sentinel (0) in
	// the first word, and by 'c' and the sentinel in the second.
	assert.ElementsMatch(t, []rune{'b', 0, 'c', 0}, chain["a"])
}

/*
TestGenerate_StopsOnEndOfWord walks a chain trained on a single repeated
word and checks generation terminates at or before the training length.
*/
func TestGenerate_StopsOnEndOfWord(t *testing.T) {
	chain := markov.Build([]string{"mira"}, 2)

	name := markov.Generate(chain, 2, 30)
	assert.LessOrEqual(t, len(name), 4)
	assert.NotEmpty(t, name)
}

/*
TestGenerate_UnseenContextStopsGeneration checks that an empty chain (no
training data) generates an empty string instead of panicking.
*/
func TestGenerate_UnseenContextStopsGeneration(t *testing.T) {
	chain := markov.Chain{}
	name := markov.Generate(chain, 2, 10)
	assert.Empty(t, name)
}

/*
TestGenerate_RespectsMaxLength checks that a chain with a self-loop never
produces a string longer than maxLength.
*/
func TestGenerate_RespectsMaxLength(t *testing.T) {
	chain := markov.Chain{
		"  ": {'x'},
		" x": {'x'},
		"xx": {'x'},
	}
	name := markov.Generate(chain, 2, 5)
	assert.Len(t, name, 5)
}
