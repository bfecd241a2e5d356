// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package dice rolls the NdM bundles the shop generator uses to decide item
counts, and the uniform-range draws the encounter and NPC generators use for
sampling. No dice-rolling or weighted-random library appears in any example
repository's go.mod, so this package is a thin wrapper over math/rand/v2 —
the one place in the service that falls back to the standard library rather
than an ecosystem dependency, since no third-party alternative was grounded
anywhere in the pack.
*/
package dice

import "math/rand/v2"

// Roll rolls n dice of m sides each (1..m) and returns the sum.
func Roll(n, sides int) int {
	if n <= 0 || sides <= 0 {
		return 0
	}
	total := 0
	for i := 0; i < n; i++ {
		total += rand.IntN(sides) + 1
	}
	return total
}

// UniformRange draws a uniform integer in [lo, hi] inclusive. If hi < lo it
// returns lo.
func UniformRange(lo, hi int) int {
	if hi < lo {
		return lo
	}
	return lo + rand.IntN(hi-lo+1)
}
