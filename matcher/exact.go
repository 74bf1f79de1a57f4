//
// Tencent is pleased to support the open source community by making trpc-ploteval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-ploteval-go is licensed under the Apache License Version 2.0.
//
//

package matcher

// exactMatcher matches series names by exact, case-sensitive string equality.
// No normalization is applied; axis labels digitized with different casing or
// whitespace do not match.
type exactMatcher struct{}

// NewExact creates the exact series name matcher.
func NewExact() Matcher {
	return exactMatcher{}
}

// Name returns the strategy identifier.
func (exactMatcher) Name() string {
	return "exact"
}

// Match intersects the two name sets.
func (exactMatcher) Match(predicted, reference []string) *Result {
	preds := uniqueNames(predicted)
	refs := uniqueNames(reference)
	refSet := make(map[string]struct{}, len(refs))
	for _, r := range refs {
		refSet[r] = struct{}{}
	}
	pairs := make(map[string]string)
	for _, p := range preds {
		if _, ok := refSet[p]; ok {
			pairs[p] = p
		}
	}
	return newResult(pairs, len(preds), len(refs))
}
