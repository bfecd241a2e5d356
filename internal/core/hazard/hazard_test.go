// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package hazard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/yomira/internal/core/hazard"
)

/*
TestComplexity_IsValid checks recognised versus unrecognised complexity
values.
*/
func TestComplexity_IsValid(t *testing.T) {
	assert.True(t, hazard.ComplexitySimple.IsValid())
	assert.True(t, hazard.ComplexityComplex.IsValid())
	assert.False(t, hazard.Complexity("multi_stage").IsValid())
}

/*
TestParseComplexity_DefaultsToSimple checks that an unrecognised raw string
falls back to Simple rather than erroring.
*/
func TestParseComplexity_DefaultsToSimple(t *testing.T) {
	assert.Equal(t, hazard.ComplexityComplex, hazard.ParseComplexity("complex"))
	assert.Equal(t, hazard.ComplexitySimple, hazard.ParseComplexity("simple"))
	assert.Equal(t, hazard.ComplexitySimple, hazard.ParseComplexity("bogus"))
	assert.Equal(t, hazard.ComplexitySimple, hazard.ParseComplexity(""))
}
