//
// Tencent is pleased to support the open source community by making trpc-ploteval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-ploteval-go is licensed under the Apache License Version 2.0.
//
//

package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExactMatch verifies exact matching semantics, including the empty-set
// boundary rules.
func TestExactMatch(t *testing.T) {
	m := NewExact()
	assert.Equal(t, "exact", m.Name())

	res := m.Match([]string{"a", "b"}, []string{"a", "c"})
	assert.Equal(t, 0.5, res.MatchFraction)
	assert.Equal(t, []string{"a"}, res.Matched)
	assert.Equal(t, map[string]string{"a": "a"}, res.Pairs)

	// Case-sensitive, no normalization.
	res = m.Match([]string{"Yield"}, []string{"yield"})
	assert.Equal(t, 0.0, res.MatchFraction)
	assert.Empty(t, res.Matched)

	// Both empty: vacuously perfect.
	res = m.Match(nil, nil)
	assert.Equal(t, 1.0, res.MatchFraction)

	// Nothing extracted.
	res = m.Match(nil, []string{"a"})
	assert.Equal(t, 0.0, res.MatchFraction)

	// Every predicted series hallucinated.
	res = m.Match([]string{"a"}, nil)
	assert.Equal(t, 0.0, res.MatchFraction)

	// Duplicates collapse to set semantics.
	res = m.Match([]string{"a", "a", "b"}, []string{"a"})
	assert.Equal(t, 0.5, res.MatchFraction)
}

// TestFuzzyMatch verifies similarity-based pairing and the one-to-one
// assignment of names.
func TestFuzzyMatch(t *testing.T) {
	m := NewFuzzy()
	assert.Equal(t, "fuzzy", m.Name())

	res := m.Match([]string{"Temperature (K)", "pressure"}, []string{"temperature (k)", "Pressure"})
	require.Len(t, res.Pairs, 2)
	assert.Equal(t, 1.0, res.MatchFraction)
	assert.Equal(t, "temperature (k)", res.Pairs["Temperature (K)"])
	assert.Equal(t, "Pressure", res.Pairs["pressure"])

	// Below threshold: unrelated names do not pair.
	res = m.Match([]string{"yield"}, []string{"temperature"})
	assert.Equal(t, 0.0, res.MatchFraction)
	assert.Empty(t, res.Pairs)

	// Each reference name is consumed at most once.
	res = m.Match([]string{"sample a", "sample a "}, []string{"sample a"})
	assert.Len(t, res.Pairs, 1)
	assert.Equal(t, 0.5, res.MatchFraction)
}

// TestFuzzyThresholdOption verifies the configurable similarity threshold.
func TestFuzzyThresholdOption(t *testing.T) {
	loose := NewFuzzy(WithThreshold(0.3))
	strict := NewFuzzy(WithThreshold(0.99))

	pred := []string{"catalyst yield"}
	ref := []string{"yield"}
	assert.Equal(t, 1.0, loose.Match(pred, ref).MatchFraction)
	assert.Equal(t, 0.0, strict.Match(pred, ref).MatchFraction)
}

// TestSimilarity verifies the similarity components.
func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("abc", "abc"))
	assert.Equal(t, 1.0, Similarity(" ABC ", "abc"))
	assert.Equal(t, 0.0, Similarity("", "abc"))
	assert.Equal(t, 0.0, Similarity("", ""))

	// Token overlap dominates for multi-word labels sharing most tokens.
	assert.Greater(t, Similarity("reaction yield percent", "reaction yield"), 0.6)
	// Single-character typo keeps similarity high via edit distance.
	assert.Greater(t, Similarity("temperature", "temperatur"), 0.9)
	// Containment contributes proportionally to length.
	assert.InDelta(t, 0.5, Similarity("abcd", "bc"), 1e-12)
}
