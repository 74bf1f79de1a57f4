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
	"sort"
	"strings"

	"trpc.group/trpc-go/trpc-ploteval-go/internal/editdist"
)

// DefaultFuzzyThreshold is the minimum similarity for a fuzzy pair.
const DefaultFuzzyThreshold = 0.75

// fuzzyMatcher matches series names by string similarity: the maximum of
// normalized edit distance similarity, token overlap and a substring
// containment heuristic, computed on trimmed lowercase names.
type fuzzyMatcher struct {
	threshold float64
}

// FuzzyOption configures the fuzzy matcher.
type FuzzyOption func(*fuzzyMatcher)

// WithThreshold sets the minimum similarity for a pair to count as matched.
func WithThreshold(threshold float64) FuzzyOption {
	return func(m *fuzzyMatcher) {
		m.threshold = threshold
	}
}

// NewFuzzy creates a fuzzy series name matcher.
func NewFuzzy(opt ...FuzzyOption) Matcher {
	m := &fuzzyMatcher{threshold: DefaultFuzzyThreshold}
	for _, o := range opt {
		o(m)
	}
	return m
}

// Name returns the strategy identifier.
func (*fuzzyMatcher) Name() string {
	return "fuzzy"
}

// candidate is one scored predicted/reference pairing.
type candidate struct {
	pred  string
	ref   string
	score float64
}

// Match greedily assigns the highest-similarity pairs above the threshold.
// Each predicted and each reference name is used at most once.
func (m *fuzzyMatcher) Match(predicted, reference []string) *Result {
	preds := uniqueNames(predicted)
	refs := uniqueNames(reference)
	candidates := make([]candidate, 0, len(preds)*len(refs))
	for _, p := range preds {
		for _, r := range refs {
			if score := Similarity(p, r); score >= m.threshold {
				candidates = append(candidates, candidate{pred: p, ref: r, score: score})
			}
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		if candidates[i].pred != candidates[j].pred {
			return candidates[i].pred < candidates[j].pred
		}
		return candidates[i].ref < candidates[j].ref
	})
	usedPred := make(map[string]struct{}, len(preds))
	usedRef := make(map[string]struct{}, len(refs))
	pairs := make(map[string]string)
	for _, c := range candidates {
		if _, ok := usedPred[c.pred]; ok {
			continue
		}
		if _, ok := usedRef[c.ref]; ok {
			continue
		}
		usedPred[c.pred] = struct{}{}
		usedRef[c.ref] = struct{}{}
		pairs[c.pred] = c.ref
	}
	return newResult(pairs, len(preds), len(refs))
}

// Similarity scores two names in [0, 1] as the maximum of edit distance
// similarity, token overlap and substring containment after trimming and
// lowercasing.
func Similarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == b {
		if a == "" {
			return 0
		}
		return 1
	}
	if a == "" || b == "" {
		return 0
	}
	score := 1 - editdist.Normalized(a, b)
	if s := tokenOverlap(a, b); s > score {
		score = s
	}
	if s := containment(a, b); s > score {
		score = s
	}
	return score
}

// tokenOverlap returns the Jaccard overlap of whitespace-delimited tokens.
func tokenOverlap(a, b string) float64 {
	ta := strings.Fields(a)
	tb := strings.Fields(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}
	setA := make(map[string]struct{}, len(ta))
	for _, tok := range ta {
		setA[tok] = struct{}{}
	}
	setB := make(map[string]struct{}, len(tb))
	for _, tok := range tb {
		setB[tok] = struct{}{}
	}
	common := 0
	for tok := range setA {
		if _, ok := setB[tok]; ok {
			common++
		}
	}
	union := len(setA) + len(setB) - common
	return float64(common) / float64(union)
}

// containment scores one name appearing inside the other, weighted by the
// length ratio so that trivial containments score low.
func containment(a, b string) float64 {
	shorter, longer := a, b
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if !strings.Contains(longer, shorter) {
		return 0
	}
	return float64(len(shorter)) / float64(len(longer))
}
